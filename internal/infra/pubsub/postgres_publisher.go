package pubsub

import (
	"context"
	"log/slog"

	"creaglass/internal/domain/entity"
	"creaglass/internal/domain/service"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// maxNotifyPayload is the PostgreSQL NOTIFY payload limit minus headroom.
const maxNotifyPayload = 7900

// postgresNotifyPublisher emits change events with pg_notify on "<prefix><collection>".
type postgresNotifyPublisher struct {
	db     *gorm.DB
	prefix string
	logger *slog.Logger
}

// NewPostgresNotifyPublisher creates a publisher for the LISTEN/NOTIFY transport.
func NewPostgresNotifyPublisher(db *gorm.DB, prefix string, logger *slog.Logger) service.ChangePublisher {
	return &postgresNotifyPublisher{
		db:     db,
		prefix: prefix,
		logger: logger,
	}
}

// PublishChange sends the encoded event. Payloads over the NOTIFY limit lose their before image.
func (p *postgresNotifyPublisher) PublishChange(ctx context.Context, event *entity.ChangeEvent) error {
	data, err := encodeChange(event)
	if err != nil {
		return err
	}
	if len(data) > maxNotifyPayload && event.Kind != entity.ChangeDelete {
		trimmed := *event
		trimmed.Before = nil
		if data, err = encodeChange(&trimmed); err != nil {
			return err
		}
	}
	if len(data) > maxNotifyPayload {
		return errors.Errorf("change payload of %d bytes exceeds notify limit", len(data))
	}

	channel := p.prefix + string(event.Collection)
	if err := p.db.WithContext(ctx).Exec("SELECT pg_notify(?, ?)", channel, string(data)).Error; err != nil {
		return errors.Wrapf(err, "failed to notify channel %s", channel)
	}

	p.logger.Debug("[PostgresNotify] Change published",
		slog.String("channel", channel),
		slog.String("event_id", event.ID),
	)

	return nil
}

// Close is a no-op. The connection pool is owned by the database module.
func (p *postgresNotifyPublisher) Close() error {
	return nil
}
