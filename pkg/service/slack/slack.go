package slack

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/postwave/postwave/pkg/domain/interfaces"
	"github.com/postwave/postwave/pkg/domain/model"
	"github.com/slack-go/slack"
)

// Notifier posts review requests to a moderators' Slack channel
type Notifier struct {
	client    interfaces.SlackClient
	channelID string
	builder   *BlockBuilder
}

var _ interfaces.Notifier = (*Notifier)(nil)

// New creates a Slack API client for the bot token
func New(token string) *slack.Client {
	return slack.New(token)
}

// NewNotifier creates a new Notifier posting to channelID
func NewNotifier(client interfaces.SlackClient, channelID string) *Notifier {
	return &Notifier{
		client:    client,
		channelID: channelID,
		builder:   NewBlockBuilder(),
	}
}

// NotifyReview posts a message describing a post held for review
func (n *Notifier) NotifyReview(ctx context.Context, post *model.Post, verdict *model.Verdict) error {
	if n.channelID == "" {
		return goerr.New("channel ID is required")
	}
	if post == nil || verdict == nil {
		return goerr.New("post and verdict are required")
	}

	blocks := n.builder.BuildReviewBlocks(post, verdict)
	fallback := n.builder.BuildReviewText(post, verdict)

	channel, ts, err := n.client.PostMessageContext(ctx, n.channelID,
		slack.MsgOptionText(fallback, false),
		slack.MsgOptionBlocks(blocks...),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to post review message to Slack",
			goerr.V("channelID", n.channelID),
			goerr.V("postID", post.ID))
	}

	ctxlog.From(ctx).Debug("Review notification posted",
		"channel", channel,
		"ts", ts,
		"postID", post.ID,
	)

	return nil
}

// NopNotifier drops notifications, used when Slack is not configured
type NopNotifier struct{}

var _ interfaces.Notifier = NopNotifier{}

// NotifyReview implements interfaces.Notifier
func (NopNotifier) NotifyReview(ctx context.Context, post *model.Post, verdict *model.Verdict) error {
	return nil
}
