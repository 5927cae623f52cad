package postgres

import (
	"context"
	"testing"

	"creaglass/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryRepository_DeleteItem_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInventoryRepository(db)

	mock.ExpectQuery(`DELETE FROM "inventory_items" WHERE id = \$1 RETURNING \*`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	item, err := repo.DeleteItem(context.Background(), uuid.New())

	assert.Nil(t, item)
	assert.ErrorIs(t, err, repository.ErrInventoryItemNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInventoryRepository_ListGroups(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInventoryRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "inventory_groups" ORDER BY name ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(uuid.NewString(), "Glass").
			AddRow(uuid.NewString(), "Supplies"))

	groups, err := repo.ListGroups(context.Background())

	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "Glass", groups[0].Name)
	assert.Equal(t, "Supplies", groups[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
