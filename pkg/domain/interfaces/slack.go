package interfaces

//go:generate moq -out mocks/slack_mock.go -pkg mocks . SlackClient Notifier

import (
	"context"

	"github.com/postwave/postwave/pkg/domain/model"
	"github.com/slack-go/slack"
)

// SlackClient is the subset of *slack.Client used for notifications
type SlackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ SlackClient = (*slack.Client)(nil)

// Notifier tells moderators about content held for review
type Notifier interface {
	NotifyReview(ctx context.Context, post *model.Post, verdict *model.Verdict) error
}
