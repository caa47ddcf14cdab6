package model

import (
	"time"

	"github.com/postwave/postwave/pkg/domain/types"
)

// FeedItem is a post joined with its owner and engagement aggregates
type FeedItem struct {
	ID           types.PostID   `json:"id"`
	Content      string         `json:"content"`
	Status       types.Decision `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	Owner        Owner          `json:"owner"`
	LikeCount    int            `json:"like_count"`
	LikedByMe    bool           `json:"liked_by_me"`
	CommentCount int            `json:"comment_count"`
	ImageURLs    []string       `json:"image_urls"`
	Hashtags     []string       `json:"hashtags"`
}

// Page is a limit/offset window over an ordered listing
type Page struct {
	Limit  int
	Offset int
}

// Apply returns the window of items selected by the page
func Apply[T any](p Page, items []T) []T {
	if p.Offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if p.Limit > 0 && p.Offset+p.Limit < end {
		end = p.Offset + p.Limit
	}
	return items[p.Offset:end]
}
