package usecase

import (
	"context"

	"github.com/postwave/postwave/pkg/domain/model"
	"github.com/postwave/postwave/pkg/domain/types"
)

// ModerationUseCase classifies submissions and decides their publication state
type ModerationUseCase interface {
	// Moderate classifies text and images and returns the verdict
	Moderate(ctx context.Context, text string, images [][]byte) (*model.Verdict, error)

	// ModerateOrContinue moderates text, tolerating classification failures
	// when policy is ContinueOnClassificationFailure
	ModerateOrContinue(ctx context.Context, text string, policy FailurePolicy) (*model.Verdict, error)
}

// AuthUseCase defines the interface for authentication operations
type AuthUseCase interface {
	// Register creates a new account
	Register(ctx context.Context, input RegisterInput) (*model.User, error)

	// Login opens a session and issues an access token
	Login(ctx context.Context, username, password string) (*model.AccessToken, error)

	// Authenticate validates an access token and returns the caller identity
	Authenticate(ctx context.Context, token string) (*model.AuthContext, error)

	// Logout revokes a session
	Logout(ctx context.Context, sessionID types.SessionID) error

	// GetUser returns a user by ID
	GetUser(ctx context.Context, id types.UserID) (*model.User, error)

	// GetMe returns the authenticated user
	GetMe(ctx context.Context) (*model.User, error)
}

// PostUseCase defines the interface for post operations
type PostUseCase interface {
	CreatePost(ctx context.Context, userID types.UserID, input CreatePostInput) (*model.FeedItem, error)
	GetPost(ctx context.Context, viewerID types.UserID, postID types.PostID) (*model.FeedItem, error)
	DeletePost(ctx context.Context, userID types.UserID, postID types.PostID) error
	LikePost(ctx context.Context, userID types.UserID, postID types.PostID) error
	UnlikePost(ctx context.Context, userID types.UserID, postID types.PostID) error
}

// CommentUseCase defines the interface for comment operations
type CommentUseCase interface {
	AddComment(ctx context.Context, userID types.UserID, postID types.PostID, content string) (*model.Comment, error)
	ListComments(ctx context.Context, postID types.PostID, limit, offset int) ([]*model.CommentView, error)
}

// FeedUseCase defines the interface for feed listings. A zero limit
// selects the listing's default.
type FeedUseCase interface {
	PublicFeed(ctx context.Context, viewerID types.UserID, limit, offset int) ([]*model.FeedItem, error)
	UserPosts(ctx context.Context, viewerID, userID types.UserID, limit, offset int) ([]*model.FeedItem, error)
	MyPosts(ctx context.Context, userID types.UserID, limit, offset int) ([]*model.FeedItem, error)
	HashtagPosts(ctx context.Context, viewerID types.UserID, tag string, limit, offset int) ([]*model.FeedItem, error)
	TrendingHashtags(ctx context.Context, limit int) ([]*model.TrendingHashtag, error)
}

// AIUseCase defines the interface for the writing assistant
type AIUseCase interface {
	GeneratePost(ctx context.Context, userID types.UserID, input GenerateInput) (*model.GeneratedPost, error)
	RewritePost(ctx context.Context, userID types.UserID, input RewriteInput) (*RewriteResult, error)
}

var (
	_ ModerationUseCase = (*Moderation)(nil)
	_ AuthUseCase       = (*Auth)(nil)
	_ PostUseCase       = (*Posts)(nil)
	_ CommentUseCase    = (*Comments)(nil)
	_ FeedUseCase       = (*Feed)(nil)
	_ AIUseCase         = (*AI)(nil)
)
