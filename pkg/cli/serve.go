package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/postwave/postwave/pkg/cli/config"
	controller "github.com/postwave/postwave/pkg/controller/http"
	"github.com/postwave/postwave/pkg/service/llm"
	"github.com/postwave/postwave/pkg/usecase"
	"github.com/postwave/postwave/pkg/utils/async"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg    config.Server
		firestoreCfg config.Firestore
		safetyCfg    config.ContentSafety
		llmCfg       config.LLM
		authCfg      config.Auth
		mediaCfg     config.Media
		redisCfg     config.Redis
		slackCfg     config.Slack
	)

	flags := joinFlags(
		serverCfg.Flags(),
		firestoreCfg.Flags(),
		safetyCfg.Flags(),
		llmCfg.Flags(),
		authCfg.Flags(),
		mediaCfg.Flags(),
		redisCfg.Flags(),
		slackCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting postwave server",
				slog.Any("server", serverCfg),
				slog.Any("firestore", firestoreCfg),
				slog.Any("content_safety", safetyCfg),
				slog.Any("llm", llmCfg),
				slog.Any("auth", authCfg),
				slog.Any("media", mediaCfg),
				slog.Any("redis", redisCfg),
				slog.Any("slack", slackCfg),
			)

			// Configuration errors stop the process before anything is served
			classifier, thresholds, err := safetyCfg.Configure(ctx)
			if err != nil {
				return err
			}
			if err := authCfg.Validate(); err != nil {
				return err
			}
			fileStorage, err := mediaCfg.Configure()
			if err != nil {
				return err
			}
			llmClient, modelName, err := llmCfg.Configure(ctx)
			if err != nil {
				return err
			}

			repo, err := firestoreCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			limiter, closeRedis := redisCfg.Configure(ctx)
			defer closeRedis()

			notifier := slackCfg.Configure(ctx)

			moderation := usecase.NewModeration(classifier, thresholds)
			useCases := controller.UseCases{
				Auth: usecase.NewAuth(repo, []byte(authCfg.JWTSecret), authCfg.Options()...),
				Posts: usecase.NewPosts(repo, moderation, fileStorage,
					usecase.WithMaxUploadBytes(mediaCfg.MaxUploadBytes()),
					usecase.WithNotifier(notifier),
				),
				Comments: usecase.NewComments(repo, moderation),
				Feed:     usecase.NewFeed(repo),
				AI:       usecase.NewAI(repo, llm.NewAssistant(llmClient, modelName), moderation, limiter),
			}

			server, err := controller.NewServer(ctx, controller.Config{
				Addr:           serverCfg.Addr,
				MediaRoot:      fileStorage.Root(),
				MaxUploadBytes: int64(mediaCfg.MaxUploadBytes()),
			}, useCases)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			// Start server in goroutine
			errCh := make(chan error, 1)
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "HTTP server error", goerr.V("addr", serverCfg.Addr))
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			case err := <-errCh:
				return err
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(context.Background(), serverCfg.ShutdownTimeout)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}
			if err := async.Wait(shutdownCtx); err != nil {
				logger.Warn("Pending review notifications dropped", "error", err)
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
