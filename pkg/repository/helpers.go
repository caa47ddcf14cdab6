package repository

import (
	"sort"

	"github.com/postwave/postwave/pkg/domain/interfaces"
	"github.com/postwave/postwave/pkg/domain/model"
	"github.com/postwave/postwave/pkg/domain/types"
)

func matchPost(post *model.Post, query interfaces.PostQuery) bool {
	if query.UserID != "" && post.UserID != query.UserID {
		return false
	}
	if query.Status != "" && post.Status != query.Status {
		return false
	}
	if query.Hashtag != "" && !post.HasHashtag(query.Hashtag) {
		return false
	}
	return true
}

// sortPostsNewestFirst orders by CreatedAt desc, then ID desc
func sortPostsNewestFirst(posts []*model.Post) {
	sort.Slice(posts, func(i, j int) bool {
		if posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].ID > posts[j].ID
		}
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
}

func sortCommentsOldestFirst(comments []*model.Comment) {
	sort.Slice(comments, func(i, j int) bool {
		if comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].ID < comments[j].ID
		}
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})
}

func sortImagesByUpload(images []*model.PostImage) {
	sort.SliceStable(images, func(i, j int) bool {
		if images[i].Position != images[j].Position {
			return images[i].Position < images[j].Position
		}
		return images[i].CreatedAt.Before(images[j].CreatedAt)
	})
}

func idSet(ids []types.PostID) map[types.PostID]bool {
	set := make(map[types.PostID]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func clonePost(post *model.Post) *model.Post {
	postCopy := *post
	if post.Hashtags != nil {
		postCopy.Hashtags = append([]types.Hashtag(nil), post.Hashtags...)
	}
	if post.SafetyScores != nil {
		scores := post.SafetyScores.Clone()
		postCopy.SafetyScores = &scores
	}
	return &postCopy
}

func cloneComment(comment *model.Comment) *model.Comment {
	commentCopy := *comment
	if comment.SafetyScores != nil {
		scores := comment.SafetyScores.Clone()
		commentCopy.SafetyScores = &scores
	}
	return &commentCopy
}

func cloneMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}
	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
