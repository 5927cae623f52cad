// Package storage keeps uploaded document content in gocloud blob storage.
package storage

import (
	"context"
	"io"
	"log/slog"
	"time"

	"creaglass/config"
	"creaglass/internal/domain/service"
	"creaglass/internal/errors"
	"creaglass/internal/util"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

type blobDocumentStorage struct {
	bucket *blob.Bucket
	urlTTL time.Duration
	logger *slog.Logger
}

// NewBlobDocumentStorage wraps an open bucket. The caller owns the bucket.
func NewBlobDocumentStorage(bucket *blob.Bucket, urlTTL time.Duration, logger *slog.Logger) service.DocumentStorage {
	return &blobDocumentStorage{
		bucket: bucket,
		urlTTL: urlTTL,
		logger: logger,
	}
}

// Put streams content into key while hashing it. A failed copy aborts the write.
func (s *blobDocumentStorage) Put(ctx context.Context, key, contentType string, content io.Reader) (*service.StoredObject, error) {
	writeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	writer, err := s.bucket.NewWriter(writeCtx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open writer for %s", key)
	}

	checksum, size, err := util.Checksum(io.TeeReader(content, writer))
	if err != nil {
		cancel()
		_ = writer.Close()

		return nil, errors.Wrapf(err, "failed to write %s", key)
	}
	if err := writer.Close(); err != nil {
		return nil, errors.Wrapf(err, "failed to commit %s", key)
	}

	s.logger.Debug("[Storage] Document stored",
		slog.String("key", key),
		slog.String("size", util.FormatBytes(size)),
	)

	return &service.StoredObject{Key: key, Size: size, Checksum: checksum}, nil
}

func (s *blobDocumentStorage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, errors.Wrap(service.ErrObjectNotFound, key)
		}

		return nil, errors.Wrapf(err, "failed to open %s", key)
	}

	return reader, nil
}

// SignedURL returns service.ErrSignedURLUnsupported for backends without signing, such as mem://.
func (s *blobDocumentStorage) SignedURL(ctx context.Context, key string) (string, error) {
	url, err := s.bucket.SignedURL(ctx, key, &blob.SignedURLOptions{Expiry: s.urlTTL})
	if err != nil {
		if gcerrors.Code(err) == gcerrors.Unimplemented {
			return "", service.ErrSignedURLUnsupported
		}

		return "", errors.Wrapf(err, "failed to sign url for %s", key)
	}

	return url, nil
}

func (s *blobDocumentStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete %s", key)
	}

	return nil
}

// Params holds dependencies for the document storage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and closes it on shutdown.
func New(params Params) (service.DocumentStorage, error) {
	bucket, err := blob.OpenBucket(context.Background(), params.Config.Documents.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open documents bucket")
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.Wrap(bucket.Close(), "failed to close documents bucket")
		},
	})
	params.Logger.Info("[Storage] Documents bucket opened", slog.String("url", params.Config.Documents.BucketURL))

	return NewBlobDocumentStorage(bucket, params.Config.Documents.URLTTL, params.Logger), nil
}

// Module provides the document storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
