// Package sound loads the shared alert sound from blob storage.
package sound

import (
	"context"
	"log/slog"
	"sync"

	"creaglass/config"
	"creaglass/internal/domain/service"
	"creaglass/internal/errors"
	"creaglass/internal/util"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

// ErrNoSoundConfigured is returned by Load when no asset location is configured.
var ErrNoSoundConfigured = errors.New("alert sound not configured")

// library caches one handle per process. Load and Release are serialized.
type library struct {
	bucketURL string
	key       string
	logger    *slog.Logger

	mu     sync.Mutex
	handle *service.SoundHandle
}

// NewLibrary creates a lazily loading sound library over a gocloud blob URL.
func NewLibrary(bucketURL, key string, logger *slog.Logger) service.SoundLibrary {
	return &library{
		bucketURL: bucketURL,
		key:       key,
		logger:    logger,
	}
}

// Load verifies the asset and caches its handle. Concurrent callers share one load.
func (l *library) Load(ctx context.Context) (*service.SoundHandle, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.handle != nil {
		return l.handle, nil
	}
	if l.bucketURL == "" || l.key == "" {
		return nil, ErrNoSoundConfigured
	}

	bucket, err := blob.OpenBucket(ctx, l.bucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sound bucket")
	}
	defer bucket.Close()

	reader, err := bucket.NewReader(ctx, l.key, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open sound %s", l.key)
	}
	defer reader.Close()

	checksum, size, err := util.Checksum(reader)
	if err != nil {
		return nil, err
	}

	l.handle = &service.SoundHandle{
		Key:         l.key,
		ContentType: reader.ContentType(),
		Checksum:    checksum,
		Size:        size,
	}

	l.logger.Info("[Sound] Alert sound loaded",
		slog.String("key", l.key),
		slog.String("size", util.FormatBytes(size)),
		slog.String("checksum", checksum),
	)

	return l.handle, nil
}

// Release drops the cached handle.
func (l *library) Release(_ context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.handle = nil

	return nil
}

// Params holds dependencies for the sound library, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New creates the library from the alert configuration.
func New(params Params) service.SoundLibrary {
	return NewLibrary(params.Config.Alert.SoundBucketURL, params.Config.Alert.SoundKey, params.Logger)
}

// Module provides the sound library FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
