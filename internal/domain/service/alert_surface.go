package service

import (
	"context"
	"time"

	"creaglass/internal/domain/entity"
)

// SoundHandle describes the loaded alert sound.
type SoundHandle struct {
	Key         string
	ContentType string
	Checksum    string
	Size        int64
}

// SoundLibrary lazily loads the shared alert sound. At most one handle exists per process.
type SoundLibrary interface {
	// Load returns the cached handle, loading it on first use.
	Load(ctx context.Context) (*SoundHandle, error)
	// Release drops the cached handle. The next Load loads it again.
	Release(ctx context.Context) error
}

// AlertSurface delivers local alerts to a user's device. Every operation is best effort.
type AlertSurface interface {
	PlaySound(ctx context.Context, target entity.AlertTarget, sound *SoundHandle) error
	Vibrate(ctx context.Context, target entity.AlertTarget, duration time.Duration) error
	HapticSuccess(ctx context.Context, target entity.AlertTarget) error
	ShowDialog(ctx context.Context, target entity.AlertTarget, title, message string) error
	Close() error
}
