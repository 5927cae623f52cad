package storage

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"creaglass/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newMemStorage(t *testing.T) (service.DocumentStorage, *blob.Bucket) {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return NewBlobDocumentStorage(bucket, time.Minute, discardLogger()), bucket
}

func TestBlobDocumentStorage_PutOpenDelete(t *testing.T) {
	storage, bucket := newMemStorage(t)
	ctx := context.Background()

	stored, err := storage.Put(ctx, "documents/a/notes.txt", "text/plain", strings.NewReader("abc"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), stored.Size)
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", stored.Checksum)

	attrs, err := bucket.Attributes(ctx, "documents/a/notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "text/plain", attrs.ContentType)

	reader, err := storage.Open(ctx, "documents/a/notes.txt")
	require.NoError(t, err)
	content, err := io.ReadAll(reader)
	require.NoError(t, err)
	require.NoError(t, reader.Close())
	assert.Equal(t, "abc", string(content))

	require.NoError(t, storage.Delete(ctx, "documents/a/notes.txt"))
	require.NoError(t, storage.Delete(ctx, "documents/a/notes.txt"))

	_, err = storage.Open(ctx, "documents/a/notes.txt")
	assert.ErrorIs(t, err, service.ErrObjectNotFound)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("client went away")
}

func TestBlobDocumentStorage_PutAbortsOnReadFailure(t *testing.T) {
	storage, bucket := newMemStorage(t)
	ctx := context.Background()

	_, err := storage.Put(ctx, "documents/b/broken.bin", "application/octet-stream", io.MultiReader(strings.NewReader("partial"), failingReader{}))
	require.Error(t, err)

	exists, err := bucket.Exists(ctx, "documents/b/broken.bin")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBlobDocumentStorage_SignedURL(t *testing.T) {
	t.Run("memory bucket cannot sign", func(t *testing.T) {
		storage, _ := newMemStorage(t)

		_, err := storage.SignedURL(context.Background(), "documents/a/notes.txt")

		assert.ErrorIs(t, err, service.ErrSignedURLUnsupported)
	})

	t.Run("file bucket signs with its secret", func(t *testing.T) {
		dir := t.TempDir()
		keyPath := filepath.Join(t.TempDir(), "secret.key")
		require.NoError(t, os.WriteFile(keyPath, []byte("signing-secret"), 0o600))

		bucket, err := blob.OpenBucket(context.Background(),
			"file://"+filepath.ToSlash(dir)+"?base_url=https://files.example.com/download&secret_key_path="+filepath.ToSlash(keyPath))
		require.NoError(t, err)
		t.Cleanup(func() { _ = bucket.Close() })

		storage := NewBlobDocumentStorage(bucket, time.Minute, discardLogger())
		url, err := storage.SignedURL(context.Background(), "documents/a/notes.txt")

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(url, "https://files.example.com/download?"))
		assert.Contains(t, url, "signature=")
	})
}
