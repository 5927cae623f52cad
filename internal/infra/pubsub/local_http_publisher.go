package pubsub

import (
	"context"
	"log/slog"
	"time"

	"creaglass/internal/domain/entity"
	"creaglass/internal/domain/service"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

const localSubscription = "projects/local/subscriptions/realtime-changes"

// localHTTPPublisher implements ChangePublisher by POSTing push envelopes
// to a local endpoint, simulating Pub/Sub push behavior for development
type localHTTPPublisher struct {
	client *resty.Client
	logger *slog.Logger
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.ChangePublisher {
	client := resty.New().
		SetBaseURL(endpoint).
		SetTimeout(30*time.Second).
		SetRetryCount(3).
		SetRetryWaitTime(200*time.Millisecond).
		SetHeader("Content-Type", "application/json")

	return &localHTTPPublisher{
		client: client,
		logger: logger,
	}
}

// PublishChange publishes an event by sending HTTP POST to the local endpoint
func (p *localHTTPPublisher) PublishChange(ctx context.Context, event *entity.ChangeEvent) error {
	pushMsg, err := NewPushMessage(event, localSubscription)
	if err != nil {
		return err
	}

	req := p.client.R().SetContext(ctx).SetBody(pushMsg)
	if event.RequestID != "" {
		req.SetHeader("X-Request-Id", event.RequestID)
	}

	resp, err := req.Post("")
	if err != nil {
		return errors.WithStack(err)
	}
	if resp.IsError() {
		return errors.Errorf("push endpoint returned non-success status: %d", resp.StatusCode())
	}

	p.logger.Debug("[LocalPubSub] Change published",
		slog.String("event_id", event.ID),
		slog.String("collection", string(event.Collection)),
	)

	return nil
}

// Close releases resources (no-op for HTTP client)
func (p *localHTTPPublisher) Close() error {
	return nil
}
