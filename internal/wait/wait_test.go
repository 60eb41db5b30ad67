package wait

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPollImmediateSuccess(t *testing.T) {
	calls := 0
	found := Poll(context.Background(), time.Millisecond, 50*time.Millisecond, func() bool {
		calls++
		return true
	})
	assert.True(t, found)
	assert.Equal(t, 1, calls)
}

func TestPollEventualSuccess(t *testing.T) {
	calls := 0
	found := Poll(context.Background(), time.Millisecond, time.Second, func() bool {
		calls++
		return calls >= 3
	})
	assert.True(t, found)
	assert.GreaterOrEqual(t, calls, 3)
}

func TestPollTimeout(t *testing.T) {
	start := time.Now()
	found := Poll(context.Background(), 5*time.Millisecond, 30*time.Millisecond, func() bool {
		return false
	})
	assert.False(t, found)
	assert.Less(t, time.Since(start), time.Second)
}

func TestPollCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	found := Poll(ctx, time.Millisecond, time.Second, func() bool {
		return false
	})
	assert.False(t, found)
}
