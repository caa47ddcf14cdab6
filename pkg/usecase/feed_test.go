package usecase_test

import (
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/postwave/postwave/pkg/domain/model"
	"github.com/postwave/postwave/pkg/domain/types"
	"github.com/postwave/postwave/pkg/usecase"
)

func TestFeedListings(t *testing.T) {
	env := newPostEnv(t)
	ctx := testContext()
	feed := usecase.NewFeed(env.repo)
	alice := newUser(t, env.repo, "alice")
	bob := newUser(t, env.repo, "bob")

	p1 := publish(t, env, alice.ID, "ilk gönderi #Go", image(0))
	p2 := publish(t, env, bob.ID, "ikinci gönderi #go #chi")
	_ = publish(t, env, bob.ID, "gizli "+wordReview+" #go")
	_ = publish(t, env, alice.ID, wordBlock+" #go")
	p3 := publish(t, env, alice.ID, "üçüncü gönderi")

	gt.NoError(t, env.posts.LikePost(ctx, bob.ID, p1.ID))
	gt.NoError(t, env.posts.LikePost(ctx, alice.ID, p1.ID))

	t.Run("public feed is newest first and published only", func(t *testing.T) {
		items, err := feed.PublicFeed(ctx, bob.ID, 0, 0)
		gt.NoError(t, err).Required()
		gt.Equal(t, len(items), 3)
		gt.Equal(t, items[0].ID, p3.ID)
		gt.Equal(t, items[1].ID, p2.ID)
		gt.Equal(t, items[2].ID, p1.ID)

		gt.Equal(t, items[2].Owner, alice.Owner())
		gt.Equal(t, items[2].LikeCount, 2)
		gt.True(t, items[2].LikedByMe)
		gt.Equal(t, len(items[2].ImageURLs), 1)
		gt.Equal(t, items[2].Hashtags, []string{"#go"})
		gt.False(t, items[1].LikedByMe)
	})

	t.Run("paging", func(t *testing.T) {
		items, err := feed.PublicFeed(ctx, "", 1, 1)
		gt.NoError(t, err).Required()
		gt.Equal(t, len(items), 1)
		gt.Equal(t, items[0].ID, p2.ID)

		items, err = feed.PublicFeed(ctx, "", 10, 5)
		gt.NoError(t, err).Required()
		gt.Equal(t, len(items), 0)
	})

	t.Run("user posts", func(t *testing.T) {
		items, err := feed.UserPosts(ctx, "", alice.ID, 0, 0)
		gt.NoError(t, err).Required()
		gt.Equal(t, len(items), 2)
		gt.Equal(t, items[0].ID, p3.ID)
		gt.Equal(t, items[1].ID, p1.ID)
		gt.False(t, items[1].LikedByMe)

		mine, err := feed.MyPosts(ctx, alice.ID, 0, 0)
		gt.NoError(t, err).Required()
		gt.Equal(t, len(mine), 2)
		gt.True(t, mine[1].LikedByMe)

		_, err = feed.UserPosts(ctx, "", types.NewUserID(), 0, 0)
		gt.Error(t, err)
		gt.B(t, goerr.HasTag(err, model.ErrTagNotFound)).True()
	})

	t.Run("hashtag posts", func(t *testing.T) {
		for _, tag := range []string{"go", "#go", " #GO "} {
			items, err := feed.HashtagPosts(ctx, "", tag, 0, 0)
			gt.NoError(t, err).Required()
			gt.Equal(t, len(items), 2)
			gt.Equal(t, items[0].ID, p2.ID)
			gt.Equal(t, items[1].ID, p1.ID)
		}

		_, err := feed.HashtagPosts(ctx, "", "#", 0, 0)
		gt.Error(t, err)
		gt.B(t, goerr.HasTag(err, model.ErrTagValidation)).True()
	})

	t.Run("trending", func(t *testing.T) {
		trending, err := feed.TrendingHashtags(ctx, 0)
		gt.NoError(t, err).Required()
		gt.Equal(t, len(trending), 2)
		gt.Equal(t, *trending[0], model.TrendingHashtag{Tag: "go", Count: 2})
		gt.Equal(t, *trending[1], model.TrendingHashtag{Tag: "chi", Count: 1})

		top, err := feed.TrendingHashtags(ctx, 1)
		gt.NoError(t, err).Required()
		gt.Equal(t, len(top), 1)
	})
}

func TestTrendingTieBreaksAlphabetically(t *testing.T) {
	env := newPostEnv(t)
	feed := usecase.NewFeed(env.repo)
	user := newUser(t, env.repo, "user")

	publish(t, env, user.ID, "#zeytin #armut")
	publish(t, env, user.ID, "#kiraz")

	trending, err := feed.TrendingHashtags(testContext(), 0)
	gt.NoError(t, err).Required()
	gt.Equal(t, len(trending), 3)
	gt.Equal(t, trending[0].Tag, types.Hashtag("armut"))
	gt.Equal(t, trending[1].Tag, types.Hashtag("kiraz"))
	gt.Equal(t, trending[2].Tag, types.Hashtag("zeytin"))
}

func TestFeedLimits(t *testing.T) {
	feed := usecase.NewFeed(newPostEnv(t).repo)
	ctx := testContext()

	tests := []struct {
		name string
		call func() error
	}{
		{"feed limit too large", func() error { _, err := feed.PublicFeed(ctx, "", 101, 0); return err }},
		{"feed negative limit", func() error { _, err := feed.PublicFeed(ctx, "", -1, 0); return err }},
		{"feed negative offset", func() error { _, err := feed.PublicFeed(ctx, "", 10, -1); return err }},
		{"trending limit too large", func() error { _, err := feed.TrendingHashtags(ctx, 51); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			gt.Error(t, err)
			gt.B(t, goerr.HasTag(err, model.ErrTagValidation)).True()
		})
	}

	items, err := feed.PublicFeed(ctx, "", 100, 0)
	gt.NoError(t, err)
	gt.Equal(t, len(items), 0)
}
