package postgres

import (
	"context"
	"sync"
	"testing"
	"time"

	"creaglass/internal/domain/entity"
	"creaglass/internal/domain/repository"
	"creaglass/internal/infra/persistence/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

var notificationColumns = []string{"id", "type", "payload_json", "target_user_id", "created_by_system", "created_at"}

func TestNotificationRepository_FindNotificationByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNotificationRepository(db)

	id := uuid.New()
	now := time.Now().UTC()
	mock.ExpectQuery(`SELECT \* FROM "notifications" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(notificationColumns).
			AddRow(id.String(), entity.NotificationTypeLowStock, []byte(`{"itemName":"Float 4mm","stock":2}`), nil, true, now))

	notification, err := repo.FindNotificationByID(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, id, notification.ID)
	assert.Equal(t, entity.NotificationTypeLowStock, notification.Type)
	assert.Nil(t, notification.TargetUserID)
	assert.True(t, notification.CreatedBySystem)
	assert.JSONEq(t, `{"itemName":"Float 4mm","stock":2}`, string(notification.PayloadJSON))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_FindNotificationByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNotificationRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "notifications"`).
		WillReturnRows(sqlmock.NewRows(notificationColumns))

	notification, err := repo.FindNotificationByID(context.Background(), uuid.New())

	assert.Nil(t, notification)
	assert.ErrorIs(t, err, repository.ErrNotificationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_CreateRead(t *testing.T) {
	tests := []struct {
		name         string
		rowsAffected int64
		wantInserted bool
	}{
		{name: "first receipt is inserted", rowsAffected: 1, wantInserted: true},
		{name: "existing receipt is kept", rowsAffected: 0, wantInserted: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewNotificationRepository(db)

			mock.ExpectExec(`INSERT INTO "notification_reads" .* ON CONFLICT DO NOTHING`).
				WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))

			inserted, err := repo.CreateRead(context.Background(), &entity.NotificationRead{
				NotificationID: uuid.New(),
				UserID:         uuid.New(),
				ReadAt:         time.Now(),
			})

			require.NoError(t, err)
			assert.Equal(t, tt.wantInserted, inserted)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestNotificationRepository_CountUnread(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNotificationRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM notifications AS n LEFT JOIN notification_reads r`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountUnread(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_DeleteTargetedNotifications_KeepsBroadcastReceipts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNotificationRepository(db)

	userID := uuid.New()
	id := uuid.New()
	mock.ExpectQuery(`DELETE FROM "notifications" WHERE target_user_id = \$1 RETURNING \*`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(notificationColumns).
			AddRow(id.String(), "info", nil, userID.String(), false, time.Now().UTC()))

	deleted, err := repo.DeleteTargetedNotifications(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, deleted, 1)
	assert.Equal(t, id, deleted[0].ID)
	// No statement touches notification_reads directly.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationModel_ReceiptsCascadeWithNotification(t *testing.T) {
	s, err := schema.Parse(&model.NotificationModel{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	reads, ok := s.Relationships.Relations["Reads"]
	require.True(t, ok)

	constraint := reads.ParseConstraint()
	require.NotNil(t, constraint)
	assert.Equal(t, "CASCADE", constraint.OnDelete)
	assert.Equal(t, "notification_reads", constraint.Schema.Table)
}
