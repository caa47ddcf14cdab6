package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/postwave/postwave/pkg/domain/interfaces"
	"github.com/postwave/postwave/pkg/domain/model"
	"github.com/postwave/postwave/pkg/domain/types"
	"github.com/postwave/postwave/pkg/service/metrics"
	"github.com/postwave/postwave/pkg/utils/async"
)

// DefaultMaxUploadBytes is the size limit of a single image
const DefaultMaxUploadBytes = 5 << 20

// CreatePostInput is a post submission
type CreatePostInput struct {
	Content             string
	Source              types.PostSource
	GeneratedFromPrompt string
	ModelName           string
	Images              []model.ImageUpload
}

// Posts implements PostUseCase
type Posts struct {
	repo           interfaces.Repository
	moderation     ModerationUseCase
	storage        interfaces.Storage
	notifier       interfaces.Notifier
	builder        *feedBuilder
	maxUploadBytes int
}

// PostsOption configures Posts
type PostsOption func(*Posts)

// WithMaxUploadBytes sets the size limit of a single image
func WithMaxUploadBytes(n int) PostsOption {
	return func(p *Posts) {
		if n > 0 {
			p.maxUploadBytes = n
		}
	}
}

// WithNotifier sets the notifier told about posts held for review
func WithNotifier(notifier interfaces.Notifier) PostsOption {
	return func(p *Posts) {
		p.notifier = notifier
	}
}

// NewPosts creates a new Posts use case
func NewPosts(repo interfaces.Repository, moderation ModerationUseCase, storage interfaces.Storage, opts ...PostsOption) *Posts {
	p := &Posts{
		repo:           repo,
		moderation:     moderation,
		storage:        storage,
		builder:        newFeedBuilder(repo),
		maxUploadBytes: DefaultMaxUploadBytes,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// CreatePost moderates and persists a submission. Blocked posts are kept
// for audit without their images. A classification failure rejects the
// submission and nothing is persisted.
func (p *Posts) CreatePost(ctx context.Context, userID types.UserID, input CreatePostInput) (*model.FeedItem, error) {
	logger := ctxlog.From(ctx)

	content, length := normalizeText(input.Content)
	if length < model.PostContentMinLength || length > model.PostContentMaxLength {
		return nil, goerr.New("post content must be between 3 and 1000 characters",
			goerr.T(model.ErrTagValidation),
			goerr.V("field", "content"),
			goerr.V("length", length))
	}

	source := input.Source
	if source == "" {
		source = types.PostSourceUser
	}
	if !source.IsValid() {
		return nil, invalidField("source", "source must be user or ai_assist")
	}

	if err := p.validateImages(input.Images); err != nil {
		return nil, err
	}

	imageData := make([][]byte, len(input.Images))
	for i, img := range input.Images {
		imageData[i] = img.Data
	}

	verdict, err := p.moderation.Moderate(ctx, content, imageData)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to moderate post",
			goerr.V("userID", userID),
			goerr.V("images", len(input.Images)))
	}
	metrics.ObserveDecision(metrics.KindPost, verdict.Decision)

	post := model.NewPost(userID, content, source, verdict)
	post.GeneratedFromPrompt = strings.TrimSpace(input.GeneratedFromPrompt)
	post.ModelName = strings.TrimSpace(input.ModelName)

	var images []*model.PostImage
	if !verdict.IsBlocked() {
		images, err = p.storeImages(ctx, post, input.Images)
		if err != nil {
			return nil, err
		}
	}

	if err := p.repo.SavePost(ctx, post); err != nil {
		p.removeFiles(ctx, images)
		return nil, goerr.Wrap(err, "failed to save post", goerr.V("postID", post.ID))
	}

	if len(images) > 0 {
		if err := p.repo.SavePostImages(ctx, images); err != nil {
			p.removeFiles(ctx, images)
			if delErr := p.repo.DeletePost(ctx, post.ID); delErr != nil {
				logger.Warn("failed to roll back post", "postID", post.ID, "error", delErr)
			}
			return nil, goerr.Wrap(err, "failed to save post images", goerr.V("postID", post.ID))
		}
	}

	logger.Info("Created post",
		"postID", post.ID,
		"userID", userID,
		"decision", verdict.Decision,
		"label", verdict.Label,
		"images", len(images),
	)

	if verdict.NeedsReview() && p.notifier != nil {
		notified := *post
		async.Dispatch(ctx, func(ctx context.Context) error {
			return p.notifier.NotifyReview(ctx, &notified, verdict)
		})
	}

	owner := model.Owner{ID: userID}
	if user, err := p.repo.GetUser(ctx, userID); err == nil {
		owner = user.Owner()
	}

	return &model.FeedItem{
		ID:        post.ID,
		Content:   post.Content,
		Status:    post.Status,
		CreatedAt: post.CreatedAt,
		Owner:     owner,
		ImageURLs: imageURLs(images),
		Hashtags:  displayHashtags(post.Hashtags),
	}, nil
}

// GetPost returns a post visible to the viewer. Posts that are not
// published are reported as not found to anyone but their owner.
func (p *Posts) GetPost(ctx context.Context, viewerID types.UserID, postID types.PostID) (*model.FeedItem, error) {
	post, err := p.repo.GetPost(ctx, postID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get post", goerr.V("postID", postID))
	}
	if !post.IsVisibleTo(viewerID) {
		return nil, goerr.Wrap(model.ErrPostNotFound, "post is not visible", goerr.V("postID", postID))
	}

	items, err := p.builder.build(ctx, viewerID, []*model.Post{post})
	if err != nil {
		return nil, err
	}
	return items[0], nil
}

// DeletePost deletes a post of the caller together with its stored images
func (p *Posts) DeletePost(ctx context.Context, userID types.UserID, postID types.PostID) error {
	post, err := p.repo.GetPost(ctx, postID)
	if err != nil {
		return goerr.Wrap(err, "failed to get post", goerr.V("postID", postID))
	}
	if post.UserID != userID {
		return goerr.Wrap(model.ErrNotPostOwner, "failed to delete post",
			goerr.V("postID", postID),
			goerr.V("userID", userID))
	}

	imagesByPost, err := p.repo.ListPostImages(ctx, []types.PostID{postID})
	if err != nil {
		return goerr.Wrap(err, "failed to list post images", goerr.V("postID", postID))
	}

	if err := p.repo.DeletePost(ctx, postID); err != nil {
		return goerr.Wrap(err, "failed to delete post", goerr.V("postID", postID))
	}

	p.removeFiles(ctx, imagesByPost[postID])

	ctxlog.From(ctx).Info("Deleted post", "postID", postID, "userID", userID)
	return nil
}

// LikePost likes a published post. Liking twice is not an error.
func (p *Posts) LikePost(ctx context.Context, userID types.UserID, postID types.PostID) error {
	if _, err := p.getPublished(ctx, postID); err != nil {
		return err
	}

	like := &model.Like{PostID: postID, UserID: userID, CreatedAt: time.Now()}
	if err := p.repo.PutLike(ctx, like); err != nil {
		return goerr.Wrap(err, "failed to like post", goerr.V("postID", postID))
	}
	return nil
}

// UnlikePost removes a like. Removing a missing like is not an error.
func (p *Posts) UnlikePost(ctx context.Context, userID types.UserID, postID types.PostID) error {
	if _, err := p.getPublished(ctx, postID); err != nil {
		return err
	}

	if err := p.repo.DeleteLike(ctx, postID, userID); err != nil {
		return goerr.Wrap(err, "failed to unlike post", goerr.V("postID", postID))
	}
	return nil
}

func (p *Posts) getPublished(ctx context.Context, postID types.PostID) (*model.Post, error) {
	return getPublishedPost(ctx, p.repo, postID)
}

func (p *Posts) validateImages(images []model.ImageUpload) error {
	if len(images) > model.MaxImagesPerPost {
		return goerr.New("too many images",
			goerr.T(model.ErrTagValidation),
			goerr.V("field", "images"),
			goerr.V("count", len(images)),
			goerr.V("max", model.MaxImagesPerPost))
	}

	for i, img := range images {
		if len(img.Data) == 0 {
			return goerr.New("image is empty",
				goerr.T(model.ErrTagValidation),
				goerr.V("field", "images"),
				goerr.V("index", i))
		}
		if len(img.Data) > p.maxUploadBytes {
			return goerr.New("image is too large",
				goerr.T(model.ErrTagValidation),
				goerr.V("field", "images"),
				goerr.V("index", i),
				goerr.V("size", len(img.Data)),
				goerr.V("max", p.maxUploadBytes))
		}
		if _, ok := model.ImageExtension(img.ContentType); !ok {
			return goerr.New("unsupported image type",
				goerr.T(model.ErrTagValidation),
				goerr.V("field", "images"),
				goerr.V("index", i),
				goerr.V("contentType", img.ContentType))
		}
	}

	return nil
}

// storeImages writes the uploads to storage in submission order. The
// stored extension follows the content type, not the client filename.
// Files already written are removed if a later one fails.
func (p *Posts) storeImages(ctx context.Context, post *model.Post, uploads []model.ImageUpload) ([]*model.PostImage, error) {
	images := make([]*model.PostImage, 0, len(uploads))
	for i, upload := range uploads {
		ext, _ := model.ImageExtension(upload.ContentType)
		relPath, err := p.storage.Save(ctx, "image"+ext, upload.Data)
		if err != nil {
			p.removeFiles(ctx, images)
			return nil, goerr.Wrap(err, "failed to store image",
				goerr.V("postID", post.ID),
				goerr.V("index", i))
		}

		images = append(images, &model.PostImage{
			ID:             types.NewImageID(),
			PostID:         post.ID,
			UserID:         post.UserID,
			StoredFilename: relPath,
			ContentType:    upload.ContentType,
			SizeBytes:      len(upload.Data),
			Position:       i,
			CreatedAt:      post.CreatedAt,
		})
	}
	return images, nil
}

// removeFiles deletes stored files on a best-effort basis
func (p *Posts) removeFiles(ctx context.Context, images []*model.PostImage) {
	for _, img := range images {
		if err := p.storage.Delete(ctx, img.StoredFilename); err != nil {
			ctxlog.From(ctx).Warn("failed to remove stored image",
				"path", img.StoredFilename,
				"error", err,
			)
		}
	}
}

// getPublishedPost returns the post if it exists and is published
func getPublishedPost(ctx context.Context, repo interfaces.Repository, postID types.PostID) (*model.Post, error) {
	post, err := repo.GetPost(ctx, postID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get post", goerr.V("postID", postID))
	}
	if !post.IsPublished() {
		return nil, goerr.Wrap(model.ErrPostNotFound, "post is not published", goerr.V("postID", postID))
	}
	return post, nil
}
