package flash

import (
	"context"
	"testing"
	"time"

	"backoffice-api/internal/core/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQueue(t *testing.T, ttl time.Duration) (*Queue, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	adapter, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })

	return NewQueue(adapter, ttl), mr
}

func TestQueue_PushAndDrain(t *testing.T) {
	q, _ := newTestQueue(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, q.Push(ctx, "session-1", LevelSuccess, "Order status updated"))
	require.NoError(t, q.Push(ctx, "session-1", LevelError, "Failed to delete product"))

	notices, err := q.Drain(ctx, "session-1")
	require.NoError(t, err)
	require.Len(t, notices, 2)

	assert.Equal(t, LevelSuccess, notices[0].Level)
	assert.Equal(t, "Order status updated", notices[0].Text)
	assert.Equal(t, LevelError, notices[1].Level)

	// Draining consumes the queue.
	notices, err = q.Drain(ctx, "session-1")
	require.NoError(t, err)
	assert.Empty(t, notices)
}

func TestQueue_ScopesAreIndependent(t *testing.T) {
	q, _ := newTestQueue(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, q.Push(ctx, "a", LevelInfo, "for a"))
	require.NoError(t, q.Push(ctx, "b", LevelInfo, "for b"))

	notices, err := q.Drain(ctx, "a")
	require.NoError(t, err)
	require.Len(t, notices, 1)
	assert.Equal(t, "for a", notices[0].Text)

	notices, err = q.Drain(ctx, "b")
	require.NoError(t, err)
	require.Len(t, notices, 1)
	assert.Equal(t, "for b", notices[0].Text)
}

func TestQueue_AutoExpire(t *testing.T) {
	q, mr := newTestQueue(t, time.Second)
	ctx := context.Background()

	require.NoError(t, q.Push(ctx, "session-1", LevelInfo, "short lived"))

	mr.FastForward(2 * time.Second)

	notices, err := q.Drain(ctx, "session-1")
	require.NoError(t, err)
	assert.Empty(t, notices)
}

func TestQueue_DrainEmpty(t *testing.T) {
	q, _ := newTestQueue(t, time.Minute)

	notices, err := q.Drain(context.Background(), "missing")
	require.NoError(t, err)
	assert.Empty(t, notices)
}
