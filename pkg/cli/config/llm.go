package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gollem/llm/gemini"
	"github.com/m-mizutani/gollem/llm/openai"
	"github.com/postwave/postwave/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

const (
	providerGemini = "gemini"
	providerOpenAI = "openai"

	defaultGeminiModel = "gemini-2.0-flash"
	defaultOpenAIModel = "gpt-4o-mini"
)

// LLM holds the writing assistant provider settings
type LLM struct {
	Provider string
	Model    string

	GeminiProject  string
	GeminiLocation string

	OpenAIAPIKey string
}

// Flags returns CLI flags for LLM configuration
func (l *LLM) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "llm-provider",
			Usage:       "Writing assistant provider (gemini, openai)",
			Category:    "LLM",
			Value:       providerGemini,
			Sources:     cli.EnvVars("POSTWAVE_LLM_PROVIDER"),
			Destination: &l.Provider,
		},
		&cli.StringFlag{
			Name:        "llm-model",
			Usage:       "Model name. The provider default is used when empty",
			Category:    "LLM",
			Sources:     cli.EnvVars("POSTWAVE_LLM_MODEL"),
			Destination: &l.Model,
		},
		&cli.StringFlag{
			Name:        "gemini-project",
			Usage:       "GCP project ID for Gemini",
			Category:    "LLM",
			Sources:     cli.EnvVars("POSTWAVE_GEMINI_PROJECT"),
			Destination: &l.GeminiProject,
		},
		&cli.StringFlag{
			Name:        "gemini-location",
			Usage:       "Gemini location",
			Category:    "LLM",
			Value:       "us-central1",
			Sources:     cli.EnvVars("POSTWAVE_GEMINI_LOCATION"),
			Destination: &l.GeminiLocation,
		},
		&cli.StringFlag{
			Name:        "openai-api-key",
			Usage:       "OpenAI API key",
			Category:    "LLM",
			Sources:     cli.EnvVars("POSTWAVE_OPENAI_API_KEY"),
			Destination: &l.OpenAIAPIKey,
		},
	}
}

// Configure creates the LLM client of the selected provider and returns
// it with the model name in use
func (l *LLM) Configure(ctx context.Context) (gollem.LLMClient, string, error) {
	modelName := l.ModelName()

	var (
		client gollem.LLMClient
		err    error
	)
	switch l.Provider {
	case providerGemini:
		if l.GeminiProject == "" {
			return nil, "", goerr.New("gemini project is required", goerr.T(model.ErrTagConfiguration))
		}
		client, err = gemini.New(ctx, l.GeminiProject, l.GeminiLocation, gemini.WithModel(modelName))

	case providerOpenAI:
		if l.OpenAIAPIKey == "" {
			return nil, "", goerr.New("openai api key is required", goerr.T(model.ErrTagConfiguration))
		}
		client, err = openai.New(ctx, l.OpenAIAPIKey, openai.WithModel(modelName))

	default:
		return nil, "", goerr.New("unknown llm provider",
			goerr.T(model.ErrTagConfiguration),
			goerr.V("provider", l.Provider))
	}
	if err != nil {
		return nil, "", goerr.Wrap(err, "failed to create llm client",
			goerr.T(model.ErrTagConfiguration),
			goerr.V("provider", l.Provider))
	}

	ctxlog.From(ctx).Info("Configured writing assistant",
		slog.String("provider", l.Provider),
		slog.String("model", modelName),
	)
	return client, modelName, nil
}

// ModelName returns the configured model or the provider default
func (l *LLM) ModelName() string {
	if l.Model != "" {
		return l.Model
	}
	if l.Provider == providerOpenAI {
		return defaultOpenAIModel
	}
	return defaultGeminiModel
}

// LogValue returns structured log value
func (l LLM) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("provider", l.Provider),
		slog.String("model", l.ModelName()),
		slog.String("gemini_project", l.GeminiProject),
		slog.String("gemini_location", l.GeminiLocation),
		slog.Bool("has_openai_api_key", l.OpenAIAPIKey != ""),
	)
}
