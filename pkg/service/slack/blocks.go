package slack

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/postwave/postwave/pkg/domain/model"
	"github.com/slack-go/slack"
)

// maxExcerptLength keeps the quoted post well below the 3000 character section limit
const maxExcerptLength = 500

// GetSeverityEmoji returns emoji based on a classifier severity (0-7)
func GetSeverityEmoji(severity int) string {
	switch {
	case severity >= 6:
		return "🚨"
	case severity >= 4:
		return "⚠️"
	case severity >= 2:
		return "ℹ️"
	default:
		return "✅"
	}
}

// BlockBuilder provides methods to build Slack message blocks
type BlockBuilder struct{}

// NewBlockBuilder creates a new BlockBuilder instance
func NewBlockBuilder() *BlockBuilder {
	return &BlockBuilder{}
}

// BuildReviewText returns the plain text fallback of a review message
func (b *BlockBuilder) BuildReviewText(post *model.Post, verdict *model.Verdict) string {
	return fmt.Sprintf("Post %s by %s needs review (%s)", post.ID, post.UserID, verdict.Label)
}

// BuildReviewBlocks creates the blocks describing a post held for review
func (b *BlockBuilder) BuildReviewBlocks(post *model.Post, verdict *model.Verdict) []slack.Block {
	evidence := verdict.Evidence

	header := slack.NewHeaderBlock(
		slack.NewTextBlockObject(slack.PlainTextType, "📝 Post held for review", true, false),
	)

	content := slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType, quote(excerpt(post.Content)), false, false),
		nil, nil,
	)

	fields := []*slack.TextBlockObject{
		slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Post ID:*\n`%s`", post.ID), false, false),
		slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Author:*\n`%s`", post.UserID), false, false),
		slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Label:*\n%s", verdict.Label), false, false),
		slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Source:*\n%s", post.Source), false, false),
		slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("*Text severity:*\n%s %d", GetSeverityEmoji(evidence.Text.MaxSeverity), evidence.Text.MaxSeverity), false, false),
		slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("*Image severity:*\n%s %d (%d images)", GetSeverityEmoji(evidence.Image.MaxSeverity), evidence.Image.MaxSeverity, len(evidence.Image.PerImage)), false, false),
	}
	details := slack.NewSectionBlock(nil, fields, nil)

	blocks := []slack.Block{header, content, details}

	if summary := categorySummary(evidence); summary != "" {
		blocks = append(blocks, slack.NewContextBlock("",
			slack.NewTextBlockObject(slack.MarkdownType, summary, false, false),
		))
	}

	return blocks
}

// categorySummary lists the text categories followed by each image's categories
func categorySummary(evidence model.Evidence) string {
	var parts []string
	if s := formatCategories(evidence.Text); s != "" {
		parts = append(parts, "text: "+s)
	}
	for _, img := range evidence.Image.PerImage {
		if s := formatCategories(img.SeverityResult); s != "" {
			parts = append(parts, fmt.Sprintf("image #%d: %s", img.Index+1, s))
		}
	}
	return strings.Join(parts, " | ")
}

func formatCategories(result model.SeverityResult) string {
	categories := append(append([]model.Category{}, model.KnownCategories...), model.CategoryUnrecognized)

	var items []string
	for _, c := range categories {
		if v, ok := result.Severity(c); ok {
			items = append(items, fmt.Sprintf("%s=%d", c, v))
		}
	}
	return strings.Join(items, ", ")
}

func excerpt(content string) string {
	if utf8.RuneCountInString(content) <= maxExcerptLength {
		return content
	}
	runes := []rune(content)
	return string(runes[:maxExcerptLength-3]) + "..."
}

func quote(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = "> " + line
	}
	return strings.Join(lines, "\n")
}
