package notification

import (
	"context"
	"log/slog"
	"time"

	"creaglass/internal/domain/entity"
	"creaglass/internal/domain/service"
)

// logSurface records alerts in the log. Used in development and when no device channel is configured.
type logSurface struct {
	logger *slog.Logger
}

// NewLogSurface creates a surface that only logs.
func NewLogSurface(logger *slog.Logger) service.AlertSurface {
	return &logSurface{logger: logger}
}

func (s *logSurface) attrs(target entity.AlertTarget, action string) []any {
	return []any{
		slog.String("action", action),
		slog.String("user_id", target.UserID.String()),
		slog.String("session_id", target.SessionID.String()),
		slog.String("platform", string(target.Platform)),
	}
}

func (s *logSurface) PlaySound(ctx context.Context, target entity.AlertTarget, sound *service.SoundHandle) error {
	s.logger.InfoContext(ctx, "[Alert] Play sound",
		append(s.attrs(target, ActionPlaySound), slog.String("sound", sound.Key))...)

	return nil
}

func (s *logSurface) Vibrate(ctx context.Context, target entity.AlertTarget, duration time.Duration) error {
	s.logger.InfoContext(ctx, "[Alert] Vibrate",
		append(s.attrs(target, ActionVibrate), slog.Duration("duration", duration))...)

	return nil
}

func (s *logSurface) HapticSuccess(ctx context.Context, target entity.AlertTarget) error {
	s.logger.InfoContext(ctx, "[Alert] Haptic success", s.attrs(target, ActionHaptic)...)

	return nil
}

func (s *logSurface) ShowDialog(ctx context.Context, target entity.AlertTarget, title, message string) error {
	s.logger.InfoContext(ctx, "[Alert] Dialog",
		append(s.attrs(target, ActionDialog), slog.String("title", title), slog.String("message", message))...)

	return nil
}

func (s *logSurface) Close() error {
	return nil
}
