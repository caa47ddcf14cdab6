package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/postwave/postwave/pkg/domain/model"
	"github.com/postwave/postwave/pkg/domain/types"
	"github.com/postwave/postwave/pkg/usecase"
)

// Middleware provides common HTTP middleware
type Middleware struct {
	authUC usecase.AuthUseCase
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(authUC usecase.AuthUseCase) *Middleware {
	return &Middleware{
		authUC: authUC,
	}
}

// CORS middleware adds CORS headers
func (m *Middleware) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight requests
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireAuth rejects requests without a valid bearer token
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			writeError(w, r, goerr.New("missing bearer token", goerr.T(model.ErrTagUnauthorized)))
			return
		}

		authCtx, err := m.authUC.Authenticate(r.Context(), token)
		if err != nil {
			ctxlog.From(r.Context()).Debug("Token validation failed", "error", err)
			writeError(w, r, err)
			return
		}

		ctxlog.From(r.Context()).Debug("Authenticated request",
			"userID", authCtx.UserID,
			"sessionID", authCtx.SessionID,
		)
		next.ServeHTTP(w, r.WithContext(model.WithAuthContext(r.Context(), authCtx)))
	})
}

// OptionalAuth attaches the caller identity when a valid bearer token is
// present. Requests with a missing or invalid token continue anonymously.
func (m *Middleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		authCtx, err := m.authUC.Authenticate(r.Context(), token)
		if err != nil {
			ctxlog.From(r.Context()).Debug("Ignoring invalid token", "error", err)
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(model.WithAuthContext(r.Context(), authCtx)))
	})
}

// LoggingMiddleware creates a chi-compatible logging middleware
func LoggingMiddleware(ctx context.Context) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Embed logger from the initial context into request context
			logger := ctxlog.From(ctx).With("requestID", middleware.GetReqID(r.Context()))
			r = r.WithContext(ctxlog.With(r.Context(), logger))

			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("HTTP request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
			)
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// viewerID returns the authenticated user, or empty for anonymous requests
func viewerID(ctx context.Context) types.UserID {
	if authCtx, ok := model.GetAuthContext(ctx); ok {
		return authCtx.UserID
	}
	return ""
}
