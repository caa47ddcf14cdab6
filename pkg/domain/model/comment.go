package model

import (
	"time"

	"github.com/postwave/postwave/pkg/domain/types"
)

const (
	CommentContentMinLength = 1
	CommentContentMaxLength = 500
)

// Comment is a moderated reply to a post
type Comment struct {
	ID           types.CommentID `json:"id"`
	PostID       types.PostID    `json:"post_id"`
	UserID       types.UserID    `json:"user_id"`
	Content      string          `json:"content"`
	Status       types.Decision  `json:"status"`
	SafetyLabel  Label           `json:"safety_label"`
	SafetyScores *Evidence       `json:"safety_scores,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// NewComment creates a comment carrying the moderation verdict
func NewComment(postID types.PostID, userID types.UserID, content string, verdict *Verdict) *Comment {
	evidence := verdict.Evidence.Clone()
	return &Comment{
		ID:           types.NewCommentID(),
		PostID:       postID,
		UserID:       userID,
		Content:      content,
		Status:       verdict.Decision,
		SafetyLabel:  verdict.Label,
		SafetyScores: &evidence,
		CreatedAt:    time.Now(),
	}
}

// IsPublished returns true if the comment is publicly visible
func (c *Comment) IsPublished() bool {
	return c.Status.IsVisible()
}

// CommentView is a published comment with its author
type CommentView struct {
	ID        types.CommentID `json:"id"`
	Content   string          `json:"content"`
	CreatedAt time.Time       `json:"created_at"`
	Owner     Owner           `json:"owner"`
}
