package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"creaglass/config"
	deliverycontext "creaglass/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newBufferedGormLogger(cfg *config.Config) (*gormSlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(base, cfg).(*gormSlogLogger), &buf
}

func sqlRows() (string, int64) { return "SELECT 1", 1 }

func TestGormSlogLogger_Trace(t *testing.T) {
	t.Run("failed query carries request id", func(t *testing.T) {
		l, buf := newBufferedGormLogger(&config.Config{})
		reqLogger := l.logger.With(slog.String("request_id", "req-1"))
		ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

		l.Trace(ctx, time.Now(), sqlRows, errors.New("relation does not exist"))

		assert.Contains(t, buf.String(), "[GORM] Query failed")
		assert.Contains(t, buf.String(), "request_id=req-1")
	})

	t.Run("record not found is silent", func(t *testing.T) {
		l, buf := newBufferedGormLogger(&config.Config{})

		l.Trace(context.Background(), time.Now(), sqlRows, gorm.ErrRecordNotFound)

		assert.Zero(t, buf.Len())
	})

	t.Run("canceled query is debug", func(t *testing.T) {
		l, buf := newBufferedGormLogger(&config.Config{})

		l.Trace(context.Background(), time.Now(), sqlRows, errors.Wrap(context.Canceled, "query"))

		assert.Contains(t, buf.String(), "level=DEBUG")
		assert.Contains(t, buf.String(), "[GORM] Query canceled")
	})

	t.Run("slow query uses configured threshold", func(t *testing.T) {
		l, buf := newBufferedGormLogger(&config.Config{Database: &config.DatabaseConfig{SlowQueryThreshold: time.Millisecond}})

		l.Trace(context.Background(), time.Now().Add(-10*time.Millisecond), sqlRows, nil)

		assert.Contains(t, buf.String(), "[GORM] Slow query")
	})
}
