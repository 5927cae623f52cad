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

func TestEventRepository_ListEvents(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepository(db)

	now := time.Now().UTC()
	mock.ExpectQuery(`SELECT \* FROM "events" ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description", "created_by", "created_at"}).
			AddRow(uuid.NewString(), "Furnace maintenance", "", uuid.NewString(), now).
			AddRow(uuid.NewString(), "Inventory count", "Warehouse B", uuid.NewString(), now.Add(-time.Hour)))

	events, err := repo.ListEvents(context.Background())

	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Furnace maintenance", events[0].Title)
	assert.Equal(t, "Warehouse B", events[1].Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_FindEventByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "events" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	event, err := repo.FindEventByID(context.Background(), uuid.New())

	assert.Nil(t, event)
	assert.ErrorIs(t, err, repository.ErrEventNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_CreateEvent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepository(db)

	id := uuid.New()
	mock.ExpectQuery(`INSERT INTO "events"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id.String()))

	event := &entity.Event{Title: "Furnace maintenance", CreatedBy: uuid.New()}
	err := repo.CreateEvent(context.Background(), event)

	require.NoError(t, err)
	assert.Equal(t, id, event.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
