package sound

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeAsset(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notification.mp3"), []byte(content), 0o600))

	return "file://" + filepath.ToSlash(dir)
}

func TestLibrary_LoadCachesHandle(t *testing.T) {
	lib := NewLibrary(writeAsset(t, "abc"), "notification.mp3", discardLogger())

	first, err := lib.Load(context.Background())
	require.NoError(t, err)
	second, err := lib.Load(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, "notification.mp3", first.Key)
	assert.Equal(t, int64(3), first.Size)
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", first.Checksum)
}

func TestLibrary_ReleaseForcesReload(t *testing.T) {
	lib := NewLibrary(writeAsset(t, "abc"), "notification.mp3", discardLogger())

	first, err := lib.Load(context.Background())
	require.NoError(t, err)
	require.NoError(t, lib.Release(context.Background()))
	require.NoError(t, lib.Release(context.Background()))

	second, err := lib.Load(context.Background())
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Equal(t, first.Checksum, second.Checksum)
}

func TestLibrary_ConcurrentLoadsShareHandle(t *testing.T) {
	lib := NewLibrary(writeAsset(t, "sound"), "notification.mp3", discardLogger())

	var wg sync.WaitGroup
	var mu sync.Mutex
	var handles []any
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			handle, err := lib.Load(context.Background())
			assert.NoError(t, err)
			mu.Lock()
			handles = append(handles, handle)
			mu.Unlock()
		}()
	}
	wg.Wait()

	for _, handle := range handles {
		assert.Same(t, handles[0], handle)
	}
}

func TestLibrary_MissingAsset(t *testing.T) {
	lib := NewLibrary(writeAsset(t, "abc"), "missing.mp3", discardLogger())

	handle, err := lib.Load(context.Background())

	assert.Nil(t, handle)
	assert.Error(t, err)
}

func TestLibrary_NotConfigured(t *testing.T) {
	lib := NewLibrary("", "", discardLogger())

	_, err := lib.Load(context.Background())

	assert.ErrorIs(t, err, ErrNoSoundConfigured)
}
