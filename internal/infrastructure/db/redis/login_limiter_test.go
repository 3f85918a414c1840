package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimiter(t *testing.T, max int, window time.Duration) (*LoginLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewLoginLimiter(client, max, window), mr
}

func TestLoginLimiter_BlocksAfterMaxFailures(t *testing.T) {
	ctx := context.Background()
	limiter, _ := newLimiter(t, 8, 15*time.Minute)

	for i := 0; i < 7; i++ {
		require.NoError(t, limiter.RecordFailure(ctx, "203.0.113.7"))
	}
	blocked, err := limiter.Blocked(ctx, "203.0.113.7")
	require.NoError(t, err)
	assert.False(t, blocked, "seven failures stay under the limit")

	require.NoError(t, limiter.RecordFailure(ctx, "203.0.113.7"))
	blocked, err = limiter.Blocked(ctx, "203.0.113.7")
	require.NoError(t, err)
	assert.True(t, blocked)

	other, err := limiter.Blocked(ctx, "198.51.100.1")
	require.NoError(t, err)
	assert.False(t, other, "clients are counted separately")
}

func TestLoginLimiter_WindowExpires(t *testing.T) {
	ctx := context.Background()
	limiter, mr := newLimiter(t, 2, time.Minute)

	require.NoError(t, limiter.RecordFailure(ctx, "client"))
	mr.FastForward(30 * time.Second)
	require.NoError(t, limiter.RecordFailure(ctx, "client"))

	// the window runs from the first failure
	assert.Equal(t, 30*time.Second, mr.TTL("login:fail:client"))

	blocked, err := limiter.Blocked(ctx, "client")
	require.NoError(t, err)
	assert.True(t, blocked)

	mr.FastForward(31 * time.Second)
	blocked, err = limiter.Blocked(ctx, "client")
	require.NoError(t, err)
	assert.False(t, blocked)
}

func TestLoginLimiter_FirstFailureStartsWindow(t *testing.T) {
	limiter, mr := newLimiter(t, 8, time.Minute)

	require.NoError(t, limiter.RecordFailure(context.Background(), "client"))

	got, err := mr.Get("login:fail:client")
	require.NoError(t, err)
	assert.Equal(t, "1", got)
	assert.Equal(t, time.Minute, mr.TTL("login:fail:client"))
}

func TestLoginLimiter_CounterWithoutTTLGetsWindow(t *testing.T) {
	limiter, mr := newLimiter(t, 8, time.Minute)
	require.NoError(t, mr.Set("login:fail:client", "8"))
	assert.Zero(t, mr.TTL("login:fail:client"))

	require.NoError(t, limiter.RecordFailure(context.Background(), "client"))
	assert.Equal(t, time.Minute, mr.TTL("login:fail:client"))

	mr.FastForward(time.Minute + time.Second)
	blocked, err := limiter.Blocked(context.Background(), "client")
	require.NoError(t, err)
	assert.False(t, blocked, "a stale counter must not lock the client out forever")
}

func TestLoginLimiter_Defaults(t *testing.T) {
	limiter := NewLoginLimiter(nil, 0, 0)
	assert.Equal(t, int64(DefaultLoginAttempts), limiter.max)
	assert.Equal(t, DefaultLoginWindow, limiter.window)
}

func TestLoginLimiter_Unavailable(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	limiter := NewLoginLimiter(client, 8, time.Minute)

	_, err := limiter.Blocked(context.Background(), "client")
	assert.Error(t, err)
}
