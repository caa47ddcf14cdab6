package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/postwave/postwave/pkg/domain/model"
	"github.com/postwave/postwave/pkg/domain/types"
)

func TestNewPost(t *testing.T) {
	verdict := model.DefaultThresholds().Decide(textSeverity(2), imageSeverity())
	post := model.NewPost(types.UserID("u1"), "hello #World", types.PostSourceUser, verdict)

	gt.NotEqual(t, post.ID, types.PostID(""))
	gt.Equal(t, post.Status, types.DecisionReview)
	gt.Equal(t, post.SafetyLabel, model.LabelNeedsReview)
	gt.V(t, post.SafetyScores).NotNil()
	gt.Equal(t, post.SafetyScores.Text.MaxSeverity, 2)
	gt.Equal(t, post.Hashtags, []types.Hashtag{"world"})
	gt.True(t, post.HasHashtag("world"))
	gt.False(t, post.HasHashtag("hello"))

	// scores are a copy of the verdict evidence
	verdict.Evidence.Text.Categories[model.CategoryHate] = 6
	gt.Equal(t, post.SafetyScores.Text.Categories[model.CategoryHate], 2)
}

func TestPostVisibility(t *testing.T) {
	owner := types.UserID("owner")
	post := &model.Post{UserID: owner, Status: types.DecisionReview}

	gt.False(t, post.IsPublished())
	gt.True(t, post.IsVisibleTo(owner))
	gt.False(t, post.IsVisibleTo("someone"))
	gt.False(t, post.IsVisibleTo(""))

	post.Status = types.DecisionPublished
	gt.True(t, post.IsVisibleTo(""))
}

func TestPostImageURL(t *testing.T) {
	img := &model.PostImage{StoredFilename: "uploads/2025/09/abc.png"}
	gt.Equal(t, img.URL(), "/media/uploads/2025/09/abc.png")
}

func TestPageApply(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	gt.Equal(t, model.Apply(model.Page{Limit: 2, Offset: 0}, items), []int{1, 2})
	gt.Equal(t, model.Apply(model.Page{Limit: 2, Offset: 4}, items), []int{5})
	gt.Equal(t, model.Apply(model.Page{Limit: 10, Offset: 1}, items), []int{2, 3, 4, 5})
	gt.Equal(t, model.Apply(model.Page{Limit: 2, Offset: 5}, items), []int{})
}

func TestSession(t *testing.T) {
	session, err := model.NewSession(types.UserID("u1"), time.Hour)
	gt.NoError(t, err).Required()

	gt.True(t, session.IsValid())
	gt.False(t, session.IsExpired())
	gt.NotEqual(t, session.Secret, "")

	session.ExpiresAt = time.Now().Add(-time.Minute)
	gt.True(t, session.IsExpired())
	gt.False(t, session.IsValid())
}

func TestImageExtension(t *testing.T) {
	for contentType, want := range map[string]string{
		"image/png":  ".png",
		"image/jpeg": ".jpg",
		"image/gif":  ".gif",
		"image/webp": ".webp",
		"image/bmp":  ".bmp",
	} {
		ext, ok := model.ImageExtension(contentType)
		gt.True(t, ok)
		gt.Equal(t, ext, want)
	}

	for _, contentType := range []string{"image/svg+xml", "text/html; charset=utf-8", "text/xml; charset=utf-8", "image/x-icon", ""} {
		_, ok := model.ImageExtension(contentType)
		gt.False(t, ok)
	}
}
