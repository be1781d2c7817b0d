package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	loginWindow      = time.Minute
	maxLoginAttempts = 10
)

// LoginThrottle caps login attempts per email within a fixed window,
// backed by a Redis counter with TTL.
// Key format: login_attempts:<email>
type LoginThrottle struct {
	client *redis.Client
}

// NewLoginThrottle creates a LoginThrottle wrapping the given Redis client.
func NewLoginThrottle(client *redis.Client) *LoginThrottle {
	return &LoginThrottle{client: client}
}

// Allow records one attempt for email and reports whether it is still within
// the window's budget. The first attempt of a window sets the key expiry.
func (t *LoginThrottle) Allow(ctx context.Context, email string) (bool, error) {
	key := t.key(email)

	n, err := t.client.Incr(ctx, key).Result()
	if err != nil {
		return true, fmt.Errorf("login throttle: %w", err)
	}
	if n == 1 {
		if err := t.client.Expire(ctx, key, loginWindow).Err(); err != nil {
			return true, fmt.Errorf("login throttle: %w", err)
		}
	}

	return n <= maxLoginAttempts, nil
}

func (t *LoginThrottle) key(email string) string {
	return "login_attempts:" + email
}
