package postgres

import (
	"context"
	"testing"
	"time"

	"creaglass/internal/domain/entity"
	"creaglass/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_FindByUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	id := uuid.New()
	now := time.Now().UTC()
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1 AND deleted_at IS NULL`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "user_type", "password_hash", "is_active", "created_at", "updated_at", "deleted_at"}).
			AddRow(id.String(), "operator", "Master", "$2a$10$hash", true, now, now, nil))

	user, err := repo.FindByUsername(context.Background(), "operator")

	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, entity.UserTypeMaster, user.UserType)
	assert.True(t, user.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	user, err := repo.FindByID(context.Background(), uuid.New())

	assert.Nil(t, user)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ListActive(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	now := time.Now().UTC()
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE is_active = \$1 AND deleted_at IS NULL ORDER BY created_at DESC`).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "user_type", "password_hash", "is_active", "created_at", "updated_at", "deleted_at"}).
			AddRow(uuid.NewString(), "operator", "Viewer", "$2a$10$hash", true, now, now, nil))

	users, err := repo.ListActive(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "operator", users[0].Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Update_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`UPDATE "users" SET .* WHERE deleted_at IS NULL AND .*"id" = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &entity.User{ID: uuid.New(), Username: "operator", UserType: entity.UserTypeViewer})

	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
