package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/postwave/postwave/pkg/domain/interfaces"
	"github.com/postwave/postwave/pkg/domain/model"
	"github.com/postwave/postwave/pkg/domain/types"
	"github.com/postwave/postwave/pkg/service/metrics"
)

const (
	DefaultCommentLimit = 50
	MaxCommentLimit     = 100
)

// Comments implements CommentUseCase
type Comments struct {
	repo       interfaces.Repository
	moderation ModerationUseCase
}

// NewComments creates a new Comments use case
func NewComments(repo interfaces.Repository, moderation ModerationUseCase) *Comments {
	return &Comments{
		repo:       repo,
		moderation: moderation,
	}
}

// AddComment moderates and stores a comment on a published post
func (c *Comments) AddComment(ctx context.Context, userID types.UserID, postID types.PostID, content string) (*model.Comment, error) {
	content, length := normalizeText(content)
	if length < model.CommentContentMinLength || length > model.CommentContentMaxLength {
		return nil, goerr.New("comment must be between 1 and 500 characters",
			goerr.T(model.ErrTagValidation),
			goerr.V("field", "content"),
			goerr.V("length", length))
	}

	if _, err := getPublishedPost(ctx, c.repo, postID); err != nil {
		return nil, err
	}

	verdict, err := c.moderation.Moderate(ctx, content, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to moderate comment", goerr.V("postID", postID))
	}
	metrics.ObserveDecision(metrics.KindComment, verdict.Decision)

	comment := model.NewComment(postID, userID, content, verdict)
	if err := c.repo.SaveComment(ctx, comment); err != nil {
		return nil, goerr.Wrap(err, "failed to save comment", goerr.V("postID", postID))
	}

	ctxlog.From(ctx).Info("Created comment",
		"commentID", comment.ID,
		"postID", postID,
		"decision", verdict.Decision,
	)

	return comment, nil
}

// ListComments returns the published comments of a published post, oldest first
func (c *Comments) ListComments(ctx context.Context, postID types.PostID, limit, offset int) ([]*model.CommentView, error) {
	page, err := resolvePage(limit, offset, DefaultCommentLimit, MaxCommentLimit)
	if err != nil {
		return nil, err
	}

	if _, err := getPublishedPost(ctx, c.repo, postID); err != nil {
		return nil, err
	}

	comments, err := c.repo.ListComments(ctx, postID, types.DecisionPublished, page)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list comments", goerr.V("postID", postID))
	}
	if len(comments) == 0 {
		return []*model.CommentView{}, nil
	}

	userIDs := make([]types.UserID, 0, len(comments))
	for _, cm := range comments {
		userIDs = append(userIDs, cm.UserID)
	}
	users, err := c.repo.GetUsers(ctx, userIDs)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get comment authors", goerr.V("postID", postID))
	}

	views := make([]*model.CommentView, 0, len(comments))
	for _, cm := range comments {
		owner := model.Owner{ID: cm.UserID}
		if u, ok := users[cm.UserID]; ok {
			owner = u.Owner()
		}
		views = append(views, &model.CommentView{
			ID:        cm.ID,
			Content:   cm.Content,
			CreatedAt: cm.CreatedAt,
			Owner:     owner,
		})
	}

	return views, nil
}
