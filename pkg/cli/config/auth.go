package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/postwave/postwave/pkg/domain/model"
	"github.com/postwave/postwave/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// minSecretLength is the shortest accepted HS256 signing secret
const minSecretLength = 32

// Auth holds access token settings
type Auth struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// Flags returns CLI flags for Auth configuration
func (a *Auth) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "jwt-secret",
			Usage:       "Secret used to sign access tokens (at least 32 bytes)",
			Category:    "Auth",
			Sources:     cli.EnvVars("POSTWAVE_JWT_SECRET"),
			Destination: &a.JWTSecret,
		},
		&cli.DurationFlag{
			Name:        "token-ttl",
			Usage:       "Lifetime of access tokens and their sessions",
			Category:    "Auth",
			Value:       usecase.DefaultTokenTTL,
			Sources:     cli.EnvVars("POSTWAVE_TOKEN_TTL"),
			Destination: &a.TokenTTL,
		},
	}
}

// Validate checks the signing secret and token lifetime
func (a *Auth) Validate() error {
	if len(a.JWTSecret) < minSecretLength {
		return goerr.New("jwt secret must be at least 32 bytes",
			goerr.T(model.ErrTagConfiguration),
			goerr.V("length", len(a.JWTSecret)))
	}
	if a.TokenTTL <= 0 {
		return goerr.New("token ttl must be positive",
			goerr.T(model.ErrTagConfiguration),
			goerr.V("ttl", a.TokenTTL))
	}
	return nil
}

// Options returns the auth use case options
func (a *Auth) Options() []usecase.AuthOption {
	return []usecase.AuthOption{usecase.WithTokenTTL(a.TokenTTL)}
}

// LogValue returns structured log value
func (a Auth) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_jwt_secret", a.JWTSecret != ""),
		slog.Duration("token_ttl", a.TokenTTL),
	)
}
