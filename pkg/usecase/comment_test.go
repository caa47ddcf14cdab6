package usecase_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/postwave/postwave/pkg/domain/model"
	"github.com/postwave/postwave/pkg/domain/types"
	"github.com/postwave/postwave/pkg/usecase"
)

func TestComments(t *testing.T) {
	env := newPostEnv(t)
	ctx := testContext()
	author := newUser(t, env.repo, "author")
	reader := newUser(t, env.repo, "reader")
	comments := usecase.NewComments(env.repo, usecase.NewModeration(keywordClassifier(), testThresholds))

	item := publish(t, env, author.ID, "yorum bekleyen gönderi")

	first, err := comments.AddComment(ctx, reader.ID, item.ID, "  harika  ")
	gt.NoError(t, err).Required()
	gt.Equal(t, first.Content, "harika")
	gt.Equal(t, first.Status, types.DecisionPublished)

	held, err := comments.AddComment(ctx, reader.ID, item.ID, "çok "+wordReview)
	gt.NoError(t, err).Required()
	gt.Equal(t, held.Status, types.DecisionReview)

	blocked, err := comments.AddComment(ctx, reader.ID, item.ID, wordBlock+" içerik")
	gt.NoError(t, err).Required()
	gt.Equal(t, blocked.Status, types.DecisionBlocked)
	gt.Equal(t, blocked.SafetyLabel, model.LabelUnsafeContent)

	second, err := comments.AddComment(ctx, author.ID, item.ID, "teşekkürler")
	gt.NoError(t, err).Required()

	views, err := comments.ListComments(ctx, item.ID, 0, 0)
	gt.NoError(t, err).Required()
	gt.Equal(t, len(views), 2)
	gt.Equal(t, views[0].ID, first.ID)
	gt.Equal(t, views[0].Owner, reader.Owner())
	gt.Equal(t, views[1].ID, second.ID)
	gt.Equal(t, views[1].Owner, author.Owner())

	paged, err := comments.ListComments(ctx, item.ID, 1, 1)
	gt.NoError(t, err).Required()
	gt.Equal(t, len(paged), 1)
	gt.Equal(t, paged[0].ID, second.ID)

	feedItem, err := env.posts.GetPost(ctx, "", item.ID)
	gt.NoError(t, err).Required()
	gt.Equal(t, feedItem.CommentCount, 2)
}

func TestCommentsValidation(t *testing.T) {
	env := newPostEnv(t)
	ctx := testContext()
	author := newUser(t, env.repo, "author")
	comments := usecase.NewComments(env.repo, usecase.NewModeration(keywordClassifier(), testThresholds))

	item := publish(t, env, author.ID, "yorum bekleyen gönderi")
	held := publish(t, env, author.ID, "bekleyen "+wordReview+" gönderi")

	t.Run("empty comment", func(t *testing.T) {
		_, err := comments.AddComment(ctx, author.ID, item.ID, "   ")
		gt.Error(t, err)
		gt.B(t, goerr.HasTag(err, model.ErrTagValidation)).True()
	})

	t.Run("too long comment", func(t *testing.T) {
		_, err := comments.AddComment(ctx, author.ID, item.ID, strings.Repeat("a", 501))
		gt.Error(t, err)
		gt.B(t, goerr.HasTag(err, model.ErrTagValidation)).True()
	})

	t.Run("post not published", func(t *testing.T) {
		_, err := comments.AddComment(ctx, author.ID, held.ID, "merhaba")
		gt.Error(t, err)
		gt.B(t, goerr.HasTag(err, model.ErrTagNotFound)).True()

		_, err = comments.ListComments(ctx, held.ID, 0, 0)
		gt.B(t, goerr.HasTag(err, model.ErrTagNotFound)).True()
	})

	t.Run("limit out of range", func(t *testing.T) {
		_, err := comments.ListComments(ctx, item.ID, 101, 0)
		gt.Error(t, err)
		gt.B(t, goerr.HasTag(err, model.ErrTagValidation)).True()
	})
}
