package slack_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/postwave/postwave/pkg/domain/interfaces/mocks"
	"github.com/postwave/postwave/pkg/domain/model"
	"github.com/postwave/postwave/pkg/domain/types"
	slackSvc "github.com/postwave/postwave/pkg/service/slack"
	"github.com/slack-go/slack"
)

func reviewVerdict() *model.Verdict {
	return &model.Verdict{
		Decision: types.DecisionReview,
		Label:    model.LabelNeedsReview,
		Evidence: model.Evidence{
			Text: model.NewSeverityResult([]model.CategoryScore{
				{Name: "Hate", Severity: 2},
				{Name: "Violence", Severity: 0},
			}),
			Image: model.NewImageSeverityResult([]model.SeverityResult{
				model.NewSeverityResult([]model.CategoryScore{{Name: "Sexual", Severity: 4}}),
			}),
		},
	}
}

func reviewPost(verdict *model.Verdict) *model.Post {
	return model.NewPost(types.NewUserID(), "Bugün hava çok güzel #hava", types.PostSourceUser, verdict)
}

func TestNotifier_NotifyReview(t *testing.T) {
	ctx := context.Background()
	verdict := reviewVerdict()
	post := reviewPost(verdict)

	client := &mocks.SlackClientMock{
		PostMessageContextFunc: func(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
			return channelID, "1700000000.000100", nil
		},
	}
	notifier := slackSvc.NewNotifier(client, "C0REVIEW")

	gt.NoError(t, notifier.NotifyReview(ctx, post, verdict))

	calls := client.PostMessageContextCalls()
	gt.Equal(t, len(calls), 1)
	gt.Equal(t, calls[0].ChannelID, "C0REVIEW")

	_, values, err := slack.UnsafeApplyMsgOptions("token", calls[0].ChannelID, "https://slack.com/api/", calls[0].Options...)
	gt.NoError(t, err)
	gt.S(t, values.Get("text")).Contains(post.ID.String())
	gt.S(t, values.Get("blocks")).Contains("Post held for review")
	gt.S(t, values.Get("blocks")).Contains("Bugün hava çok güzel")
}

func TestNotifier_NotifyReview_Failure(t *testing.T) {
	ctx := context.Background()
	verdict := reviewVerdict()

	failure := errors.New("channel_not_found")
	client := &mocks.SlackClientMock{
		PostMessageContextFunc: func(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
			return "", "", failure
		},
	}
	notifier := slackSvc.NewNotifier(client, "C0REVIEW")

	err := notifier.NotifyReview(ctx, reviewPost(verdict), verdict)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, failure))
}

func TestNotifier_NotifyReview_MissingChannel(t *testing.T) {
	client := &mocks.SlackClientMock{}
	notifier := slackSvc.NewNotifier(client, "")

	verdict := reviewVerdict()
	gt.Error(t, notifier.NotifyReview(context.Background(), reviewPost(verdict), verdict))
	gt.Equal(t, len(client.PostMessageContextCalls()), 0)
}

func TestNopNotifier(t *testing.T) {
	var notifier slackSvc.NopNotifier
	gt.NoError(t, notifier.NotifyReview(context.Background(), nil, nil))
}

func TestBlockBuilder_BuildReviewBlocks(t *testing.T) {
	builder := slackSvc.NewBlockBuilder()
	verdict := reviewVerdict()
	post := reviewPost(verdict)

	blocks := builder.BuildReviewBlocks(post, verdict)
	gt.Equal(t, len(blocks), 4)

	ctxBlock, ok := blocks[3].(*slack.ContextBlock)
	gt.True(t, ok)
	text, ok := ctxBlock.ContextElements.Elements[0].(*slack.TextBlockObject)
	gt.True(t, ok)
	gt.Equal(t, text.Text, "text: Hate=2, Violence=0 | image #1: Sexual=4")
}

func TestBlockBuilder_LongContentIsTruncated(t *testing.T) {
	builder := slackSvc.NewBlockBuilder()
	verdict := &model.Verdict{Decision: types.DecisionReview, Label: model.LabelNeedsReview}
	post := model.NewPost(types.NewUserID(), strings.Repeat("ş", 800), types.PostSourceUser, verdict)

	blocks := builder.BuildReviewBlocks(post, verdict)
	gt.Equal(t, len(blocks), 3)

	section, ok := blocks[1].(*slack.SectionBlock)
	gt.True(t, ok)
	gt.True(t, strings.HasSuffix(section.Text.Text, "..."))
	gt.True(t, len([]rune(section.Text.Text)) <= 502)
}

func TestGetSeverityEmoji(t *testing.T) {
	testCases := []struct {
		severity int
		expected string
	}{
		{0, "✅"},
		{1, "✅"},
		{2, "ℹ️"},
		{4, "⚠️"},
		{6, "🚨"},
		{7, "🚨"},
	}

	for _, tc := range testCases {
		gt.Equal(t, slackSvc.GetSeverityEmoji(tc.severity), tc.expected)
	}
}
