package interfaces

//go:generate moq -out mocks/assistant_mock.go -pkg mocks . Assistant

import (
	"context"

	"github.com/postwave/postwave/pkg/domain/model"
)

// GenerateRequest describes the post the assistant should draft
type GenerateRequest struct {
	Topic     string
	Tone      string
	Audience  string
	WantImage bool
	MaxLength int
}

// RewriteRequest describes a rewrite of existing text
type RewriteRequest struct {
	Text       string
	Mode       model.RewriteMode
	TargetTone string
	MaxLength  int
}

// Assistant drafts and rewrites post text with an LLM
type Assistant interface {
	GeneratePost(ctx context.Context, req GenerateRequest) (*model.GeneratedPost, error)
	Rewrite(ctx context.Context, req RewriteRequest) (string, error)
	ModelName() string
}
