package usecase_test

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"
	"github.com/postwave/postwave/pkg/domain/interfaces"
	"github.com/postwave/postwave/pkg/domain/interfaces/mocks"
	"github.com/postwave/postwave/pkg/domain/model"
	"github.com/postwave/postwave/pkg/domain/types"
	"github.com/postwave/postwave/pkg/repository"
	"github.com/postwave/postwave/pkg/service/storage"
	"github.com/postwave/postwave/pkg/usecase"
	"golang.org/x/crypto/bcrypt"
)

// Words recognized by keywordClassifier
const (
	wordReview = "şüpheli"
	wordBlock  = "yasaklı"
)

func testContext() context.Context {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))
	return ctxlog.With(context.Background(), logger)
}

// keywordClassifier scores text by the words it contains and images by their
// first byte, so tests choose a decision through the content itself
func keywordClassifier() *mocks.ClassifierMock {
	return &mocks.ClassifierMock{
		AnalyzeTextFunc: func(ctx context.Context, text string) (model.SeverityResult, error) {
			sev := 0
			switch {
			case strings.Contains(text, wordBlock):
				sev = 7
			case strings.Contains(text, wordReview):
				sev = 4
			}
			return model.NewSeverityResult([]model.CategoryScore{{Name: "Hate", Severity: sev}}), nil
		},
		AnalyzeImagesFunc: func(ctx context.Context, images [][]byte) (model.ImageSeverityResult, error) {
			results := make([]model.SeverityResult, 0, len(images))
			for _, img := range images {
				results = append(results, model.NewSeverityResult([]model.CategoryScore{{Name: "Sexual", Severity: int(img[0])}}))
			}
			return model.NewImageSeverityResult(results), nil
		},
	}
}

// newUser registers a user directly in the repository
func newUser(t *testing.T, repo interfaces.Repository, username string) *model.User {
	t.Helper()
	user := model.NewUser(username+"@example.com", username, "Test", "User")
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	gt.NoError(t, err).Required()
	user.PasswordHash = string(hash)
	gt.NoError(t, repo.SaveUser(context.Background(), user)).Required()
	return user
}

type postEnv struct {
	repo    interfaces.Repository
	storage *storage.FileStorage
	posts   *usecase.Posts
}

func newPostEnv(t *testing.T, opts ...usecase.PostsOption) *postEnv {
	t.Helper()
	repo := repository.NewMemory()
	store, err := storage.NewFileStorage(t.TempDir())
	gt.NoError(t, err).Required()

	moderation := usecase.NewModeration(keywordClassifier(), testThresholds)
	return &postEnv{
		repo:    repo,
		storage: store,
		posts:   usecase.NewPosts(repo, moderation, store, opts...),
	}
}

// image returns an upload classified with the given severity
func image(severity int) model.ImageUpload {
	return model.ImageUpload{
		Filename:    "photo.PNG",
		ContentType: "image/png",
		Data:        []byte{byte(severity), 0x89, 'P', 'N', 'G'},
	}
}

func publish(t *testing.T, env *postEnv, userID types.UserID, content string, images ...model.ImageUpload) *model.FeedItem {
	t.Helper()
	item, err := env.posts.CreatePost(testContext(), userID, usecase.CreatePostInput{
		Content: content,
		Images:  images,
	})
	gt.NoError(t, err).Required()
	return item
}
