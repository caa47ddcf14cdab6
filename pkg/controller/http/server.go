package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/postwave/postwave/pkg/service/metrics"
	"github.com/postwave/postwave/pkg/usecase"
)

// Config holds the HTTP surface settings
type Config struct {
	Addr string

	// MediaRoot is the storage root served under /media. Media serving is
	// disabled when empty.
	MediaRoot string

	// MaxUploadBytes bounds a single uploaded image
	MaxUploadBytes int64
}

// UseCases groups the use cases served over HTTP
type UseCases struct {
	Auth     usecase.AuthUseCase
	Posts    usecase.PostUseCase
	Comments usecase.CommentUseCase
	Feed     usecase.FeedUseCase
	AI       usecase.AIUseCase
}

// Server represents the HTTP server
type Server struct {
	*http.Server
	router chi.Router
}

// NewServer creates a new HTTP server
func NewServer(ctx context.Context, cfg Config, uc UseCases) (*Server, error) {
	router := chi.NewRouter()
	mw := NewMiddleware(uc.Auth)

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)
	router.Use(mw.CORS)

	authHandler := NewAuthHandler(uc.Auth)
	postHandler := NewPostHandler(uc.Posts, uc.Comments, uc.Feed, cfg.MaxUploadBytes)
	aiHandler := NewAIHandler(uc.AI)

	router.Get("/health", handleHealth)
	router.Handle("/metrics", metrics.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.HandleRegister)
			r.Post("/login", authHandler.HandleLogin)
			r.With(mw.RequireAuth).Post("/logout", authHandler.HandleLogout)
		})

		r.Route("/users", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(mw.RequireAuth)
				r.Get("/me", authHandler.HandleUserMe)
				r.Get("/me/posts", postHandler.HandleMyPosts)
			})
			r.Group(func(r chi.Router) {
				r.Use(mw.OptionalAuth)
				r.Get("/{userID}", authHandler.HandleGetUser)
				r.Get("/{userID}/posts", postHandler.HandleUserPosts)
			})
		})

		r.Route("/posts", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(mw.OptionalAuth)
				r.Get("/feed", postHandler.HandleFeed)
				r.Get("/{postID}", postHandler.HandleGetPost)
				r.Get("/{postID}/comments", postHandler.HandleListComments)
			})
			r.Group(func(r chi.Router) {
				r.Use(mw.RequireAuth)
				r.Post("/", postHandler.HandleCreatePost)
				r.Delete("/{postID}", postHandler.HandleDeletePost)
				r.Post("/{postID}/like", postHandler.HandleLike)
				r.Delete("/{postID}/like", postHandler.HandleUnlike)
				r.Post("/{postID}/comments", postHandler.HandleAddComment)
			})
		})

		r.Route("/hashtags", func(r chi.Router) {
			r.Use(mw.OptionalAuth)
			r.Get("/trending", postHandler.HandleTrendingHashtags)
			r.Get("/{tag}/posts", postHandler.HandleHashtagPosts)
		})

		r.Route("/ai", func(r chi.Router) {
			r.Use(mw.RequireAuth)
			r.Post("/generate-post", aiHandler.HandleGeneratePost)
			r.Post("/rewrite-post", aiHandler.HandleRewritePost)
		})
	})

	if cfg.MediaRoot != "" {
		media, err := NewMediaHandler(cfg.MediaRoot)
		if err != nil {
			return nil, err
		}
		router.Handle("/media/*", http.StripPrefix("/media", media))
		ctxlog.From(ctx).Info("Serving media files", "root", cfg.MediaRoot)
	}

	server := &Server{
		Server: &http.Server{
			Addr:              cfg.Addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router: router,
	}

	return server, nil
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "postwave",
	})
}
