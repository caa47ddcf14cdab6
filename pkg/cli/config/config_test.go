package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/postwave/postwave/pkg/cli/config"
	"github.com/postwave/postwave/pkg/domain/model"
)

func flagDefaults() config.ContentSafety {
	d := model.DefaultThresholds()
	return config.ContentSafety{
		TextBlock:   d.TextBlock,
		TextReview:  d.TextReview,
		ImageBlock:  d.ImageBlock,
		ImageReview: d.ImageReview,
	}
}

func writePolicy(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "policy.yaml")
	gt.NoError(t, os.WriteFile(path, []byte(body), 0o600)).Required()
	return path
}

func TestContentSafetyThresholds(t *testing.T) {
	t.Run("flags only", func(t *testing.T) {
		cfg := flagDefaults()
		th, err := cfg.Thresholds()
		gt.NoError(t, err).Required()
		gt.Equal(t, th, model.DefaultThresholds())
	})

	t.Run("policy file overrides the values it sets", func(t *testing.T) {
		cfg := flagDefaults()
		cfg.PolicyFile = writePolicy(t, "thresholds:\n  text_block: 6\n  text_review: 4\n")

		th, err := cfg.Thresholds()
		gt.NoError(t, err).Required()
		gt.Equal(t, th, model.Thresholds{TextBlock: 6, TextReview: 4, ImageBlock: 4, ImageReview: 2})
	})

	t.Run("inverted thresholds", func(t *testing.T) {
		cfg := flagDefaults()
		cfg.TextReview = 5
		_, err := cfg.Thresholds()
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, model.ErrTagConfiguration))
	})

	t.Run("missing policy file", func(t *testing.T) {
		cfg := flagDefaults()
		cfg.PolicyFile = filepath.Join(t.TempDir(), "none.yaml")
		_, err := cfg.Thresholds()
		gt.True(t, goerr.HasTag(err, model.ErrTagConfiguration))
	})

	t.Run("malformed policy file", func(t *testing.T) {
		cfg := flagDefaults()
		cfg.PolicyFile = writePolicy(t, "thresholds: [1, 2")
		_, err := cfg.Thresholds()
		gt.True(t, goerr.HasTag(err, model.ErrTagConfiguration))
	})
}

func TestContentSafetyConfigureRequiresCredentials(t *testing.T) {
	cfg := flagDefaults()
	cfg.Endpoint = "https://example.cognitiveservices.azure.com"

	classifier, _, err := cfg.Configure(context.Background())
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, model.ErrTagConfiguration))
	gt.True(t, classifier == nil)
}

func TestAuthValidate(t *testing.T) {
	valid := config.Auth{JWTSecret: "0123456789abcdef0123456789abcdef", TokenTTL: time.Hour}
	gt.NoError(t, valid.Validate())

	short := valid
	short.JWTSecret = "secret"
	gt.True(t, goerr.HasTag(short.Validate(), model.ErrTagConfiguration))

	noTTL := valid
	noTTL.TokenTTL = 0
	gt.True(t, goerr.HasTag(noTTL.Validate(), model.ErrTagConfiguration))
}

func TestLLMConfigure(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown provider", func(t *testing.T) {
		cfg := config.LLM{Provider: "mystery"}
		_, _, err := cfg.Configure(ctx)
		gt.True(t, goerr.HasTag(err, model.ErrTagConfiguration))
	})

	t.Run("gemini requires a project", func(t *testing.T) {
		cfg := config.LLM{Provider: "gemini"}
		_, _, err := cfg.Configure(ctx)
		gt.True(t, goerr.HasTag(err, model.ErrTagConfiguration))
	})

	t.Run("openai requires a key", func(t *testing.T) {
		cfg := config.LLM{Provider: "openai"}
		_, _, err := cfg.Configure(ctx)
		gt.True(t, goerr.HasTag(err, model.ErrTagConfiguration))
	})

	t.Run("model defaults per provider", func(t *testing.T) {
		gt.Equal(t, (&config.LLM{Provider: "openai"}).ModelName(), "gpt-4o-mini")
		gt.Equal(t, (&config.LLM{Provider: "gemini"}).ModelName(), "gemini-2.0-flash")
		gt.Equal(t, (&config.LLM{Provider: "gemini", Model: "gemini-pro"}).ModelName(), "gemini-pro")
	})
}

func TestLoggerValidate(t *testing.T) {
	cfg := config.Logger{Level: "verbose", Format: "json"}
	_, _, err := cfg.Configure()
	gt.True(t, goerr.HasTag(err, model.ErrTagConfiguration))

	cfg = config.Logger{Level: "info", Format: "json", Output: filepath.Join(t.TempDir(), "app.log")}
	logger, closer, err := cfg.Configure()
	gt.NoError(t, err).Required()
	defer closer()
	logger.Info("hello")
}

func TestMediaConfigure(t *testing.T) {
	root := filepath.Join(t.TempDir(), "media")
	cfg := config.Media{Root: root, MaxUploadMB: 2}

	fs, err := cfg.Configure()
	gt.NoError(t, err).Required()
	gt.Equal(t, fs.Root(), root)
	gt.Equal(t, cfg.MaxUploadBytes(), 2<<20)

	_, err = (&config.Media{Root: root}).Configure()
	gt.True(t, goerr.HasTag(err, model.ErrTagConfiguration))
}
