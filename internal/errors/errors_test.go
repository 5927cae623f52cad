package errors

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCanceled(t *testing.T) {
	assert.True(t, IsCanceled(context.Canceled))
	assert.True(t, IsCanceled(Wrap(context.DeadlineExceeded, "read stream")))
	assert.False(t, IsCanceled(New("connection reset")))
	assert.False(t, IsCanceled(nil))
}

func TestWrap_KeepsCause(t *testing.T) {
	sentinel := New("read not opened")

	assert.True(t, Is(Wrapf(sentinel, "confirm %s", "m1"), sentinel))
	assert.True(t, Is(Join(New("close a"), WithMessage(sentinel, "close b")), sentinel))
}
