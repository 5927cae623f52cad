package service

import (
	"context"

	"creaglass/internal/domain/entity"
)

// ChangePublisher emits change events for rows written by this service.
type ChangePublisher interface {
	// PublishChange publishes a change event to the configured feed
	PublishChange(ctx context.Context, event *entity.ChangeEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
