// Package ratelimit throttles writing assistant calls with a Redis
// INCR + EXPIRE fixed window.
package ratelimit

import (
	"context"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/postwave/postwave/pkg/domain/interfaces"
	"github.com/redis/go-redis/v9"
)

// Rule defines a rate limiting policy: the Redis key prefix, maximum number of
// requests allowed in the window, and the window duration.
type Rule struct {
	Key    string
	Limit  int
	Window time.Duration
}

// DefaultAIRule allows 20 assistant calls per minute per user
var DefaultAIRule = Rule{Key: "pw:rl:ai:", Limit: 20, Window: time.Minute}

// Limiter performs rate limiting checks against Redis
type Limiter struct {
	client redis.Cmdable
	rule   Rule
}

var _ interfaces.RateLimiter = (*Limiter)(nil)

// New creates a Limiter backed by the given Redis client
func New(client redis.Cmdable, rule Rule) *Limiter {
	return &Limiter{client: client, rule: rule}
}

// Allow increments the counter of the key and sets the expiry on first
// access. On Redis errors it fails open: the request is allowed and the
// error is returned for logging.
func (l *Limiter) Allow(ctx context.Context, identifier string) (bool, error) {
	key := l.rule.Key + identifier

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		ctxlog.From(ctx).Warn("redis INCR failed, failing open", "key", key, "error", err)
		return true, goerr.Wrap(err, "failed to increment rate limit counter", goerr.V("key", key))
	}

	if count == 1 {
		if err := l.client.Expire(ctx, key, l.rule.Window).Err(); err != nil {
			// A key without TTL would block the identifier forever
			l.client.Del(ctx, key)
			ctxlog.From(ctx).Warn("redis EXPIRE failed, failing open", "key", key, "error", err)
			return true, goerr.Wrap(err, "failed to set rate limit window", goerr.V("key", key))
		}
	}

	return int(count) <= l.rule.Limit, nil
}

// Nop allows every request. Used when Redis is not configured.
type Nop struct{}

var _ interfaces.RateLimiter = Nop{}

// Allow always returns true
func (Nop) Allow(ctx context.Context, identifier string) (bool, error) {
	return true, nil
}
