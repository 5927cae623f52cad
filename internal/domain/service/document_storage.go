package service

import (
	"context"
	"errors"
	"io"
)

// ErrSignedURLUnsupported is returned by DocumentStorage.SignedURL when the backend cannot sign URLs.
var ErrSignedURLUnsupported = errors.New("signed urls not supported by document storage")

// ErrObjectNotFound is returned when no object exists under a key.
var ErrObjectNotFound = errors.New("document object not found")

// StoredObject describes content written to document storage.
type StoredObject struct {
	Key      string
	Size     int64
	Checksum string
}

// DocumentStorage keeps document content in blob storage.
type DocumentStorage interface {
	// Put streams content to key and reports its size and SHA256 checksum.
	Put(ctx context.Context, key, contentType string, content io.Reader) (*StoredObject, error)

	// Open returns a reader over the content of key. Callers close it.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// SignedURL returns a time-limited download URL for key.
	SignedURL(ctx context.Context, key string) (string, error)

	// Delete removes key. A missing key is not an error.
	Delete(ctx context.Context, key string) error
}
