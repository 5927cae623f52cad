package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolations(t *testing.T) {
	wrapped := func(code string) error {
		return errors.Wrap(&pgconn.PgError{Code: code}, "insert")
	}

	assert.True(t, isUniqueConstraintViolation(wrapped(sqlStateUniqueViolation)))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isForeignKeyConstraintViolation(wrapped(sqlStateForeignKeyViolation)))
	assert.True(t, isNotNullConstraintViolation(wrapped(sqlStateNotNullViolation)))
	assert.True(t, isCheckConstraintViolation(wrapped(sqlStateCheckViolation)))

	assert.False(t, isNotNullConstraintViolation(errors.New("value is required")))
	assert.False(t, isUniqueConstraintViolation(wrapped(sqlStateForeignKeyViolation)))
}
