package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/postwave/postwave/pkg/domain/interfaces"
	slackSvc "github.com/postwave/postwave/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds the review notification settings
type Slack struct {
	OAuthToken string
	ChannelID  string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack bot token used to post review notifications",
			Category:    "Slack",
			Sources:     cli.EnvVars("POSTWAVE_SLACK_OAUTH_TOKEN"),
			Destination: &s.OAuthToken,
		},
		&cli.StringFlag{
			Name:        "slack-review-channel",
			Usage:       "Slack channel ID receiving posts held for review",
			Category:    "Slack",
			Sources:     cli.EnvVars("POSTWAVE_SLACK_REVIEW_CHANNEL"),
			Destination: &s.ChannelID,
		},
	}
}

// Configure returns the review notifier. Notifications are dropped when
// Slack is not configured.
func (s *Slack) Configure(ctx context.Context) interfaces.Notifier {
	if !s.IsConfigured() {
		ctxlog.From(ctx).Info("Slack not configured, review notifications are disabled")
		return slackSvc.NopNotifier{}
	}

	ctxlog.From(ctx).Info("Configuring Slack review notifications", "channel", s.ChannelID)
	return slackSvc.NewNotifier(slackSvc.New(s.OAuthToken), s.ChannelID)
}

// IsConfigured checks if Slack is properly configured
func (s *Slack) IsConfigured() bool {
	return s.OAuthToken != "" && s.ChannelID != ""
}

// LogValue returns structured log value
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_oauth_token", s.OAuthToken != ""),
		slog.String("channel", s.ChannelID),
	)
}
