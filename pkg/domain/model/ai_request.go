package model

import (
	"time"

	"github.com/postwave/postwave/pkg/domain/types"
)

// AIRequest logs one call to the writing assistant
type AIRequest struct {
	ID         types.AIRequestID     `json:"id"`
	UserID     types.UserID          `json:"user_id"`
	Type       types.AIRequestType   `json:"type"`
	InputText  string                `json:"input_text"`
	OutputText string                `json:"output_text"`
	ModelName  string                `json:"model_name"`
	Meta       map[string]any        `json:"meta,omitempty"`
	Status     types.AIRequestStatus `json:"status"`
	CreatedAt  time.Time             `json:"created_at"`
}

// NewAIRequest creates a request log entry
func NewAIRequest(userID types.UserID, reqType types.AIRequestType, input string) *AIRequest {
	return &AIRequest{
		ID:        types.NewAIRequestID(),
		UserID:    userID,
		Type:      reqType,
		InputText: input,
		Meta:      map[string]any{},
		Status:    types.AIRequestStatusSuccess,
		CreatedAt: time.Now(),
	}
}

// GeneratedPost is the assistant's draft for a topic
type GeneratedPost struct {
	Content     string   `json:"content"`
	Hashtags    []string `json:"hashtags"`
	ImagePrompt string   `json:"image_prompt,omitempty"`
}

// RewriteMode selects how the assistant rewrites text
type RewriteMode string

const (
	RewriteModeGrammar RewriteMode = "grammar"
	RewriteModeImprove RewriteMode = "improve"
	RewriteModeShorten RewriteMode = "shorten"
	RewriteModeExpand  RewriteMode = "expand"
)

// IsValid checks if the mode is valid
func (m RewriteMode) IsValid() bool {
	switch m {
	case RewriteModeGrammar, RewriteModeImprove, RewriteModeShorten, RewriteModeExpand:
		return true
	default:
		return false
	}
}
