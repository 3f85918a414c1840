package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/retailnet/pos-admin/internal/core/ports"
)

var _ ports.LoginLimiter = (*LoginLimiter)(nil)

const (
	DefaultLoginAttempts = 8
	DefaultLoginWindow   = 15 * time.Minute
)

// LoginLimiter counts failed logins per client in a fixed window.
// Key format: login:fail:<client>
type LoginLimiter struct {
	client *redis.Client
	max    int64
	window time.Duration
}

// NewLoginLimiter blocks a client after max failures until window elapses
// from its first failure.
func NewLoginLimiter(client *redis.Client, max int, window time.Duration) *LoginLimiter {
	if max <= 0 {
		max = DefaultLoginAttempts
	}
	if window <= 0 {
		window = DefaultLoginWindow
	}
	return &LoginLimiter{client: client, max: int64(max), window: window}
}

// Blocked reports whether the client has used up its failures.
func (l *LoginLimiter) Blocked(ctx context.Context, key string) (bool, error) {
	n, err := l.client.Get(ctx, l.key(key)).Int64()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("login limiter get: %w", err)
	}
	return n >= l.max, nil
}

// RecordFailure increments the failure count, starting the window on the
// first one. INCR and EXPIRE NX run in one MULTI/EXEC so a counter never
// outlives its window.
func (l *LoginLimiter) RecordFailure(ctx context.Context, key string) error {
	k := l.key(key)
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, k)
		pipe.ExpireNX(ctx, k, l.window)
		return nil
	})
	if err != nil {
		return fmt.Errorf("login limiter record: %w", err)
	}
	return nil
}

func (l *LoginLimiter) key(client string) string {
	return "login:fail:" + client
}
