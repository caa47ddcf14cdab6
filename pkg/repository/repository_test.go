package repository_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/postwave/postwave/pkg/domain/interfaces"
	"github.com/postwave/postwave/pkg/domain/model"
	"github.com/postwave/postwave/pkg/domain/types"
	"github.com/postwave/postwave/pkg/repository"
)

func newTestUser(suffix string) *model.User {
	now := time.Now().UnixNano()
	user := model.NewUser(
		fmt.Sprintf("%s-%d@example.com", suffix, now),
		fmt.Sprintf("%s-%d", suffix, now),
		"Test", "User",
	)
	user.PasswordHash = "hash"
	return user
}

func newTestPost(userID types.UserID, content string, decision types.Decision, createdAt time.Time) *model.Post {
	post := &model.Post{
		ID:          types.NewPostID(),
		UserID:      userID,
		Content:     content,
		Source:      types.PostSourceUser,
		Status:      decision,
		SafetyLabel: model.LabelSafe,
		Hashtags:    model.ExtractHashtags(content),
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
	return post
}

func testRepository(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Run("SaveAndGetUser", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		user := newTestUser("save")

		gt.NoError(t, repo.SaveUser(ctx, user)).Required()

		retrieved, err := repo.GetUser(ctx, user.ID)
		gt.NoError(t, err).Required()
		gt.Equal(t, retrieved.ID, user.ID)
		gt.Equal(t, retrieved.Email, user.Email)
		gt.Equal(t, retrieved.Username, user.Username)
		gt.Equal(t, retrieved.PasswordHash, "hash")

		byName, err := repo.GetUserByUsername(ctx, user.Username)
		gt.NoError(t, err).Required()
		gt.Equal(t, byName.ID, user.ID)

		byEmail, err := repo.GetUserByEmail(ctx, user.Email)
		gt.NoError(t, err).Required()
		gt.Equal(t, byEmail.ID, user.ID)
	})

	t.Run("GetUser_NotFound", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		_, err := repo.GetUser(ctx, types.NewUserID())
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrUserNotFound))
		gt.True(t, goerr.HasTag(err, model.ErrTagNotFound))

		_, err = repo.GetUserByUsername(ctx, fmt.Sprintf("nobody-%d", time.Now().UnixNano()))
		gt.True(t, errors.Is(err, model.ErrUserNotFound))
	})

	t.Run("GetUsers", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		u1 := newTestUser("batch1")
		u2 := newTestUser("batch2")
		gt.NoError(t, repo.SaveUser(ctx, u1)).Required()
		gt.NoError(t, repo.SaveUser(ctx, u2)).Required()

		users, err := repo.GetUsers(ctx, []types.UserID{u1.ID, u2.ID, u1.ID, types.NewUserID()})
		gt.NoError(t, err).Required()
		gt.Equal(t, len(users), 2)
		gt.Equal(t, users[u1.ID].Username, u1.Username)
		gt.Equal(t, users[u2.ID].Username, u2.Username)

		empty, err := repo.GetUsers(ctx, nil)
		gt.NoError(t, err)
		gt.Equal(t, len(empty), 0)
	})

	t.Run("Session", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		session, err := model.NewSession(types.NewUserID(), time.Hour)
		gt.NoError(t, err).Required()

		gt.NoError(t, repo.SaveSession(ctx, session)).Required()

		retrieved, err := repo.GetSession(ctx, session.ID)
		gt.NoError(t, err).Required()
		gt.Equal(t, retrieved.UserID, session.UserID)
		gt.Equal(t, retrieved.Secret, session.Secret)
		gt.True(t, session.ExpiresAt.Sub(retrieved.ExpiresAt).Abs() < time.Second)

		gt.NoError(t, repo.DeleteSession(ctx, session.ID))

		_, err = repo.GetSession(ctx, session.ID)
		gt.True(t, errors.Is(err, model.ErrSessionNotFound))

		err = repo.DeleteSession(ctx, session.ID)
		gt.Error(t, err)
	})

	t.Run("SaveAndGetPost", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		verdict := model.DefaultThresholds().Decide(
			model.NewSeverityResult([]model.CategoryScore{{Name: "Hate", Severity: 2}, {Name: "Sexual", Severity: 0}}),
			model.NewImageSeverityResult([]model.SeverityResult{
				model.NewSeverityResult([]model.CategoryScore{{Name: "Violence", Severity: 2}}),
			}),
		)
		post := model.NewPost(types.NewUserID(), "hello #Repo #test", types.PostSourceUser, verdict)

		gt.NoError(t, repo.SavePost(ctx, post)).Required()

		retrieved, err := repo.GetPost(ctx, post.ID)
		gt.NoError(t, err).Required()
		gt.Equal(t, retrieved.Content, post.Content)
		gt.Equal(t, retrieved.Status, types.DecisionReview)
		gt.Equal(t, retrieved.SafetyLabel, model.LabelNeedsReview)
		gt.Equal(t, retrieved.Hashtags, []types.Hashtag{"repo", "test"})
		gt.V(t, retrieved.SafetyScores).NotNil()
		gt.Equal(t, retrieved.SafetyScores.Text.MaxSeverity, 2)
		gt.Equal(t, retrieved.SafetyScores.Text.Categories[model.CategoryHate], 2)
		gt.Equal(t, len(retrieved.SafetyScores.Text.Categories), 2)
		gt.Equal(t, retrieved.SafetyScores.Image.MaxSeverity, 2)
		gt.Equal(t, retrieved.SafetyScores.Image.PerImage[0].Categories[model.CategoryViolence], 2)

		_, err = repo.GetPost(ctx, types.NewPostID())
		gt.True(t, errors.Is(err, model.ErrPostNotFound))
	})

	t.Run("ListPosts", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		userID := types.NewUserID()
		tag := types.Hashtag(fmt.Sprintf("tag%d", time.Now().UnixNano()))
		base := time.Now().Add(-time.Hour)

		oldest := newTestPost(userID, "first #"+tag.String(), types.DecisionPublished, base)
		middle := newTestPost(userID, "second", types.DecisionPublished, base.Add(time.Minute))
		newest := newTestPost(userID, "third #"+tag.String(), types.DecisionPublished, base.Add(2*time.Minute))
		blocked := newTestPost(userID, "blocked #"+tag.String(), types.DecisionBlocked, base.Add(3*time.Minute))
		for _, p := range []*model.Post{oldest, middle, newest, blocked} {
			gt.NoError(t, repo.SavePost(ctx, p)).Required()
		}

		posts, err := repo.ListPosts(ctx, interfaces.PostQuery{UserID: userID, Status: types.DecisionPublished})
		gt.NoError(t, err).Required()
		gt.Equal(t, len(posts), 3)
		gt.Equal(t, posts[0].ID, newest.ID)
		gt.Equal(t, posts[1].ID, middle.ID)
		gt.Equal(t, posts[2].ID, oldest.ID)

		paged, err := repo.ListPosts(ctx, interfaces.PostQuery{
			UserID: userID,
			Status: types.DecisionPublished,
			Page:   model.Page{Limit: 1, Offset: 1},
		})
		gt.NoError(t, err).Required()
		gt.Equal(t, len(paged), 1)
		gt.Equal(t, paged[0].ID, middle.ID)

		tagged, err := repo.ListPosts(ctx, interfaces.PostQuery{Hashtag: tag, Status: types.DecisionPublished})
		gt.NoError(t, err).Required()
		gt.Equal(t, len(tagged), 2)
		gt.Equal(t, tagged[0].ID, newest.ID)
		gt.Equal(t, tagged[1].ID, oldest.ID)

		all, err := repo.ListPosts(ctx, interfaces.PostQuery{UserID: userID})
		gt.NoError(t, err).Required()
		gt.Equal(t, len(all), 4)
		gt.Equal(t, all[0].ID, blocked.ID)

		counts, err := repo.CountHashtags(ctx, types.DecisionPublished)
		gt.NoError(t, err).Required()
		gt.Equal(t, counts[tag], 2)

		// posts created at the same time are ordered by ID, newest ID first
		twinA := newTestPost(userID, "twin a", types.DecisionReview, base)
		twinB := newTestPost(userID, "twin b", types.DecisionReview, base)
		for _, p := range []*model.Post{twinA, twinB} {
			gt.NoError(t, repo.SavePost(ctx, p)).Required()
		}
		first, second := twinA, twinB
		if twinB.ID > twinA.ID {
			first, second = twinB, twinA
		}
		twins, err := repo.ListPosts(ctx, interfaces.PostQuery{UserID: userID, Status: types.DecisionReview})
		gt.NoError(t, err).Required()
		gt.Equal(t, len(twins), 2)
		gt.Equal(t, twins[0].ID, first.ID)
		gt.Equal(t, twins[1].ID, second.ID)

		beyond, err := repo.ListPosts(ctx, interfaces.PostQuery{UserID: userID, Page: model.Page{Limit: 10, Offset: 10}})
		gt.NoError(t, err).Required()
		gt.Equal(t, len(beyond), 0)
	})

	t.Run("PostImages", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		postID := types.NewPostID()
		now := time.Now()
		images := []*model.PostImage{
			{ID: types.NewImageID(), PostID: postID, StoredFilename: "uploads/b.png", Position: 1, CreatedAt: now},
			{ID: types.NewImageID(), PostID: postID, StoredFilename: "uploads/a.png", Position: 0, CreatedAt: now},
		}
		gt.NoError(t, repo.SavePostImages(ctx, images)).Required()

		result, err := repo.ListPostImages(ctx, []types.PostID{postID, types.NewPostID()})
		gt.NoError(t, err).Required()
		gt.Equal(t, len(result), 1)
		gt.Equal(t, len(result[postID]), 2)
		gt.Equal(t, result[postID][0].StoredFilename, "uploads/a.png")
		gt.Equal(t, result[postID][1].StoredFilename, "uploads/b.png")
	})

	t.Run("Likes", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		postA := types.NewPostID()
		postB := types.NewPostID()
		alice := types.NewUserID()
		bob := types.NewUserID()

		gt.NoError(t, repo.PutLike(ctx, &model.Like{PostID: postA, UserID: alice, CreatedAt: time.Now()}))
		gt.NoError(t, repo.PutLike(ctx, &model.Like{PostID: postA, UserID: alice, CreatedAt: time.Now()}))
		gt.NoError(t, repo.PutLike(ctx, &model.Like{PostID: postA, UserID: bob, CreatedAt: time.Now()}))
		gt.NoError(t, repo.PutLike(ctx, &model.Like{PostID: postB, UserID: bob, CreatedAt: time.Now()}))

		counts, err := repo.CountLikes(ctx, []types.PostID{postA, postB})
		gt.NoError(t, err).Required()
		gt.Equal(t, counts[postA], 2)
		gt.Equal(t, counts[postB], 1)

		liked, err := repo.ListLikedPostIDs(ctx, alice, []types.PostID{postA, postB})
		gt.NoError(t, err).Required()
		gt.True(t, liked[postA])
		gt.False(t, liked[postB])

		gt.NoError(t, repo.DeleteLike(ctx, postA, alice))
		gt.NoError(t, repo.DeleteLike(ctx, postA, alice))

		counts, err = repo.CountLikes(ctx, []types.PostID{postA})
		gt.NoError(t, err).Required()
		gt.Equal(t, counts[postA], 1)
	})

	t.Run("Comments", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		postID := types.NewPostID()
		userID := types.NewUserID()
		base := time.Now().Add(-time.Hour)

		verdict := model.DefaultThresholds().Decide(
			model.NewSeverityResult([]model.CategoryScore{{Name: "Violence", Severity: 0}, {Name: "Hate", Severity: 0}}),
			model.NewImageSeverityResult(nil),
		)
		statuses := []types.Decision{types.DecisionPublished, types.DecisionReview, types.DecisionPublished, types.DecisionBlocked}
		var saved []*model.Comment
		for i, s := range statuses {
			evidence := verdict.Evidence.Clone()
			c := &model.Comment{
				ID:           types.NewCommentID(),
				PostID:       postID,
				UserID:       userID,
				Content:      fmt.Sprintf("comment %d", i),
				Status:       s,
				SafetyScores: &evidence,
				CreatedAt:    base.Add(time.Duration(i) * time.Minute),
			}
			gt.NoError(t, repo.SaveComment(ctx, c)).Required()
			saved = append(saved, c)
		}

		published, err := repo.ListComments(ctx, postID, types.DecisionPublished, model.Page{})
		gt.NoError(t, err).Required()
		gt.Equal(t, len(published), 2)
		gt.Equal(t, published[0].ID, saved[0].ID)
		gt.Equal(t, published[1].ID, saved[2].ID)
		gt.V(t, published[0].SafetyScores).NotNil()
		sev, ok := published[0].SafetyScores.Text.Severity(model.CategoryViolence)
		gt.True(t, ok)
		gt.Equal(t, sev, 0)

		counts, err := repo.CountComments(ctx, []types.PostID{postID}, types.DecisionPublished)
		gt.NoError(t, err).Required()
		gt.Equal(t, counts[postID], 2)
	})

	t.Run("DeletePost", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		userID := types.NewUserID()
		post := newTestPost(userID, "to be deleted", types.DecisionPublished, time.Now())
		gt.NoError(t, repo.SavePost(ctx, post)).Required()
		gt.NoError(t, repo.PutLike(ctx, &model.Like{PostID: post.ID, UserID: userID, CreatedAt: time.Now()})).Required()
		gt.NoError(t, repo.SaveComment(ctx, &model.Comment{
			ID: types.NewCommentID(), PostID: post.ID, UserID: userID,
			Content: "bye", Status: types.DecisionPublished, CreatedAt: time.Now(),
		})).Required()
		gt.NoError(t, repo.SavePostImages(ctx, []*model.PostImage{
			{ID: types.NewImageID(), PostID: post.ID, StoredFilename: "uploads/x.png", CreatedAt: time.Now()},
		})).Required()

		gt.NoError(t, repo.DeletePost(ctx, post.ID)).Required()

		_, err := repo.GetPost(ctx, post.ID)
		gt.True(t, errors.Is(err, model.ErrPostNotFound))

		likes, err := repo.CountLikes(ctx, []types.PostID{post.ID})
		gt.NoError(t, err)
		gt.Equal(t, likes[post.ID], 0)

		comments, err := repo.CountComments(ctx, []types.PostID{post.ID}, "")
		gt.NoError(t, err)
		gt.Equal(t, comments[post.ID], 0)

		images, err := repo.ListPostImages(ctx, []types.PostID{post.ID})
		gt.NoError(t, err)
		gt.Equal(t, len(images[post.ID]), 0)

		gt.True(t, errors.Is(repo.DeletePost(ctx, post.ID), model.ErrPostNotFound))
	})

	t.Run("AIRequests", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		userID := types.NewUserID()

		first := model.NewAIRequest(userID, types.AIRequestTypeGeneratePost, "topic")
		first.CreatedAt = time.Now().Add(-time.Minute)
		first.Meta["tone"] = "casual"
		second := model.NewAIRequest(userID, types.AIRequestTypeRewrite, "text")
		second.Status = types.AIRequestStatusError

		gt.NoError(t, repo.SaveAIRequest(ctx, first)).Required()
		gt.NoError(t, repo.SaveAIRequest(ctx, second)).Required()

		reqs, err := repo.ListAIRequests(ctx, userID)
		gt.NoError(t, err).Required()
		gt.Equal(t, len(reqs), 2)
		gt.Equal(t, reqs[0].ID, second.ID)
		gt.Equal(t, reqs[0].Status, types.AIRequestStatusError)
		gt.Equal(t, reqs[1].Meta["tone"], any("casual"))
	})
}

func TestMemoryRepository(t *testing.T) {
	testRepository(t, func(t *testing.T) interfaces.Repository {
		return repository.NewMemory()
	})
}

func TestMemoryRepositoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemory()

	post := newTestPost(types.NewUserID(), "copy #safe", types.DecisionPublished, time.Now())
	gt.NoError(t, repo.SavePost(ctx, post)).Required()

	post.Content = "changed"
	post.Hashtags[0] = "mutated"

	retrieved, err := repo.GetPost(ctx, post.ID)
	gt.NoError(t, err).Required()
	gt.Equal(t, retrieved.Content, "copy #safe")
	gt.Equal(t, retrieved.Hashtags[0], types.Hashtag("safe"))
}

func TestFirestoreRepository(t *testing.T) {
	projectID := os.Getenv("TEST_FIRESTORE_PROJECT")
	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE")

	if projectID == "" || databaseID == "" {
		t.Skip("Skipping Firestore test: TEST_FIRESTORE_PROJECT and TEST_FIRESTORE_DATABASE must be set")
	}

	testRepository(t, func(t *testing.T) interfaces.Repository {
		ctx := context.Background()
		logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
		ctx = ctxlog.With(ctx, logger)

		repo, err := repository.NewFirestore(ctx, projectID, databaseID)
		gt.NoError(t, err).Required()
		return repo
	})
}
