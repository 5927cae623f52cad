package impl

import (
	"io"
	"log/slog"
	"sync"
	"testing"

	"creaglass/internal/domain/entity"
	mockSvc "creaglass/internal/mocks/service"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newMissCache returns a cache that never hits and accepts every write and invalidation.
func newMissCache(t *testing.T) *mockSvc.MockQueryCache {
	cache := mockSvc.NewMockQueryCache(t)
	cache.EXPECT().Read(mock.Anything, mock.Anything, mock.Anything).Return(false, nil).Maybe()
	cache.EXPECT().Write(mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	cache.EXPECT().Invalidate(mock.Anything, mock.Anything).Return(nil).Maybe()

	return cache
}

func keyStrings(keys []entity.CacheKey) []string {
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		out = append(out, key.String())
	}

	return out
}

// fakeSubscription is a channel-backed subscription driven by the test.
type fakeSubscription struct {
	collection entity.Collection
	events     chan *entity.ChangeEvent
	errs       chan error
	done       chan struct{}
	closeErr   error

	once   sync.Once
	mu     sync.Mutex
	closes int
}

func newFakeSubscription(collection entity.Collection) *fakeSubscription {
	return &fakeSubscription{
		collection: collection,
		events:     make(chan *entity.ChangeEvent, 8),
		errs:       make(chan error, 8),
		done:       make(chan struct{}),
	}
}

func (f *fakeSubscription) Collection() entity.Collection      { return f.collection }
func (f *fakeSubscription) Events() <-chan *entity.ChangeEvent { return f.events }
func (f *fakeSubscription) Errors() <-chan error               { return f.errs }
func (f *fakeSubscription) Done() <-chan struct{}              { return f.done }

func (f *fakeSubscription) Close() error {
	f.mu.Lock()
	f.closes++
	f.mu.Unlock()
	f.once.Do(func() { close(f.done) })

	return f.closeErr
}

func (f *fakeSubscription) closeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.closes
}
