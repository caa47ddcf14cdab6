package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/postwave/postwave/pkg/domain/interfaces"
	"github.com/postwave/postwave/pkg/service/ratelimit"
	"github.com/redis/go-redis/v9"
	"github.com/urfave/cli/v3"
)

// Redis holds the rate limiter backend settings
type Redis struct {
	Addr     string
	Password string
	DB       int

	AILimit  int
	AIWindow time.Duration
}

// Flags returns CLI flags for Redis configuration
func (r *Redis) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "redis-addr",
			Usage:       "Redis address for rate limiting. Rate limiting is disabled when empty",
			Category:    "Redis",
			Sources:     cli.EnvVars("POSTWAVE_REDIS_ADDR"),
			Destination: &r.Addr,
		},
		&cli.StringFlag{
			Name:        "redis-password",
			Usage:       "Redis password",
			Category:    "Redis",
			Sources:     cli.EnvVars("POSTWAVE_REDIS_PASSWORD"),
			Destination: &r.Password,
		},
		&cli.IntFlag{
			Name:        "redis-db",
			Usage:       "Redis database number",
			Category:    "Redis",
			Sources:     cli.EnvVars("POSTWAVE_REDIS_DB"),
			Destination: &r.DB,
		},
		&cli.IntFlag{
			Name:        "ai-rate-limit",
			Usage:       "Writing assistant calls allowed per user within the window",
			Category:    "Redis",
			Value:       ratelimit.DefaultAIRule.Limit,
			Sources:     cli.EnvVars("POSTWAVE_AI_RATE_LIMIT"),
			Destination: &r.AILimit,
		},
		&cli.DurationFlag{
			Name:        "ai-rate-window",
			Usage:       "Window of the writing assistant rate limit",
			Category:    "Redis",
			Value:       ratelimit.DefaultAIRule.Window,
			Sources:     cli.EnvVars("POSTWAVE_AI_RATE_WINDOW"),
			Destination: &r.AIWindow,
		},
	}
}

// Configure returns the assistant rate limiter and a closer for the Redis
// client. An unreachable Redis is logged and the limiter still fails open.
func (r *Redis) Configure(ctx context.Context) (interfaces.RateLimiter, func()) {
	logger := ctxlog.From(ctx)

	if r.Addr == "" {
		logger.Info("Redis not configured, assistant rate limiting is disabled")
		return ratelimit.Nop{}, func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     r.Addr,
		Password: r.Password,
		DB:       r.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("Redis is not reachable, requests are allowed until it recovers",
			"addr", r.Addr,
			"error", err,
		)
	}

	rule := ratelimit.DefaultAIRule
	rule.Limit = r.AILimit
	rule.Window = r.AIWindow

	closer := func() {
		if err := client.Close(); err != nil {
			logger.Warn("failed to close redis client", "error", err)
		}
	}
	return ratelimit.New(client, rule), closer
}

// LogValue returns structured log value
func (r Redis) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", r.Addr),
		slog.Bool("has_password", r.Password != ""),
		slog.Int("db", r.DB),
		slog.Int("ai_limit", r.AILimit),
		slog.Duration("ai_window", r.AIWindow),
	)
}
