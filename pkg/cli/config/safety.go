package config

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/postwave/postwave/pkg/domain/model"
	"github.com/postwave/postwave/pkg/service/safety"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// ContentSafety holds the classifier connection and the decision thresholds
type ContentSafety struct {
	Endpoint   string
	APIKey     string
	APIVersion string
	Timeout    time.Duration
	PolicyFile string

	TextBlock   int
	TextReview  int
	ImageBlock  int
	ImageReview int
}

// policyFile is the layout of the YAML policy file
type policyFile struct {
	Thresholds model.Thresholds `yaml:"thresholds"`
}

// Flags returns CLI flags for ContentSafety configuration
func (c *ContentSafety) Flags() []cli.Flag {
	defaults := model.DefaultThresholds()

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "content-safety-endpoint",
			Usage:       "Azure AI Content Safety endpoint URL",
			Category:    "Content Safety",
			Sources:     cli.EnvVars("POSTWAVE_CONTENT_SAFETY_ENDPOINT"),
			Destination: &c.Endpoint,
		},
		&cli.StringFlag{
			Name:        "content-safety-key",
			Usage:       "Azure AI Content Safety subscription key",
			Category:    "Content Safety",
			Sources:     cli.EnvVars("POSTWAVE_CONTENT_SAFETY_KEY"),
			Destination: &c.APIKey,
		},
		&cli.StringFlag{
			Name:        "content-safety-api-version",
			Usage:       "Azure AI Content Safety API version",
			Category:    "Content Safety",
			Value:       safety.DefaultAPIVersion,
			Sources:     cli.EnvVars("POSTWAVE_CONTENT_SAFETY_API_VERSION"),
			Destination: &c.APIVersion,
		},
		&cli.DurationFlag{
			Name:        "content-safety-timeout",
			Usage:       "Timeout of a single classifier call",
			Category:    "Content Safety",
			Value:       safety.DefaultTimeout,
			Sources:     cli.EnvVars("POSTWAVE_CONTENT_SAFETY_TIMEOUT"),
			Destination: &c.Timeout,
		},
		&cli.StringFlag{
			Name:        "moderation-policy",
			Usage:       "YAML file with moderation thresholds, overriding the threshold flags it sets",
			Category:    "Content Safety",
			Sources:     cli.EnvVars("POSTWAVE_MODERATION_POLICY"),
			Destination: &c.PolicyFile,
		},
		&cli.IntFlag{
			Name:        "text-block-threshold",
			Usage:       "Text severity at or above which a submission is blocked",
			Category:    "Content Safety",
			Value:       defaults.TextBlock,
			Sources:     cli.EnvVars("POSTWAVE_TEXT_BLOCK_THRESHOLD"),
			Destination: &c.TextBlock,
		},
		&cli.IntFlag{
			Name:        "text-review-threshold",
			Usage:       "Text severity at or above which a submission is held for review",
			Category:    "Content Safety",
			Value:       defaults.TextReview,
			Sources:     cli.EnvVars("POSTWAVE_TEXT_REVIEW_THRESHOLD"),
			Destination: &c.TextReview,
		},
		&cli.IntFlag{
			Name:        "image-block-threshold",
			Usage:       "Image severity at or above which a submission is blocked",
			Category:    "Content Safety",
			Value:       defaults.ImageBlock,
			Sources:     cli.EnvVars("POSTWAVE_IMAGE_BLOCK_THRESHOLD"),
			Destination: &c.ImageBlock,
		},
		&cli.IntFlag{
			Name:        "image-review-threshold",
			Usage:       "Image severity at or above which a submission is held for review",
			Category:    "Content Safety",
			Value:       defaults.ImageReview,
			Sources:     cli.EnvVars("POSTWAVE_IMAGE_REVIEW_THRESHOLD"),
			Destination: &c.ImageReview,
		},
	}
}

// Thresholds returns the validated decision thresholds. Values present in
// the policy file replace the flag values.
func (c *ContentSafety) Thresholds() (model.Thresholds, error) {
	policy := policyFile{
		Thresholds: model.Thresholds{
			TextBlock:   c.TextBlock,
			TextReview:  c.TextReview,
			ImageBlock:  c.ImageBlock,
			ImageReview: c.ImageReview,
		},
	}

	if c.PolicyFile != "" {
		data, err := os.ReadFile(c.PolicyFile)
		if err != nil {
			return model.Thresholds{}, goerr.Wrap(err, "failed to read moderation policy",
				goerr.T(model.ErrTagConfiguration),
				goerr.V("path", c.PolicyFile))
		}
		if err := yaml.Unmarshal(data, &policy); err != nil {
			return model.Thresholds{}, goerr.Wrap(err, "failed to parse moderation policy",
				goerr.T(model.ErrTagConfiguration),
				goerr.V("path", c.PolicyFile))
		}
	}

	if err := policy.Thresholds.Validate(); err != nil {
		return model.Thresholds{}, goerr.Wrap(err, "invalid moderation thresholds", goerr.V("path", c.PolicyFile))
	}
	return policy.Thresholds, nil
}

// Configure creates the severity classifier and the decision thresholds.
// The classifier endpoint and key are required.
func (c *ContentSafety) Configure(ctx context.Context) (*safety.Classifier, model.Thresholds, error) {
	thresholds, err := c.Thresholds()
	if err != nil {
		return nil, model.Thresholds{}, err
	}

	if c.Endpoint == "" || c.APIKey == "" {
		return nil, model.Thresholds{}, goerr.New("content safety endpoint and key are required",
			goerr.T(model.ErrTagConfiguration))
	}

	client, err := safety.NewAzureClient(c.Endpoint, c.APIKey, safety.WithAPIVersion(c.APIVersion))
	if err != nil {
		return nil, model.Thresholds{}, goerr.Wrap(err, "failed to create content safety client",
			goerr.T(model.ErrTagConfiguration))
	}

	ctxlog.From(ctx).Info("Configured content safety",
		"endpoint", c.Endpoint,
		"thresholds", thresholds,
	)

	return safety.NewClassifier(client, safety.WithTimeout(c.Timeout)), thresholds, nil
}

// LogValue returns structured log value
func (c ContentSafety) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("endpoint", c.Endpoint),
		slog.Bool("has_key", c.APIKey != ""),
		slog.String("api_version", c.APIVersion),
		slog.Duration("timeout", c.Timeout),
		slog.String("policy_file", c.PolicyFile),
	)
}
