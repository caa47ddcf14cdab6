package interfaces

//go:generate moq -out mocks/repository_mock.go -pkg mocks . Repository

import (
	"context"

	"github.com/postwave/postwave/pkg/domain/model"
	"github.com/postwave/postwave/pkg/domain/types"
)

// PostQuery selects posts for a listing. Zero fields do not filter.
// Results are ordered newest first (CreatedAt desc, ID desc).
type PostQuery struct {
	UserID  types.UserID
	Hashtag types.Hashtag
	Status  types.Decision
	Page    model.Page
}

// Repository defines the interface for data persistence
type Repository interface {
	// User operations
	SaveUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id types.UserID) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUsers(ctx context.Context, ids []types.UserID) (map[types.UserID]*model.User, error)

	// Session operations
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, id types.SessionID) (*model.Session, error)
	DeleteSession(ctx context.Context, id types.SessionID) error

	// Post operations. DeletePost also removes the images, likes and
	// comments of the post.
	SavePost(ctx context.Context, post *model.Post) error
	GetPost(ctx context.Context, id types.PostID) (*model.Post, error)
	DeletePost(ctx context.Context, id types.PostID) error
	ListPosts(ctx context.Context, query PostQuery) ([]*model.Post, error)
	CountHashtags(ctx context.Context, status types.Decision) (map[types.Hashtag]int, error)

	// Post image operations. Images are returned in upload order.
	SavePostImages(ctx context.Context, images []*model.PostImage) error
	ListPostImages(ctx context.Context, postIDs []types.PostID) (map[types.PostID][]*model.PostImage, error)

	// Like operations. PutLike and DeleteLike are idempotent.
	PutLike(ctx context.Context, like *model.Like) error
	DeleteLike(ctx context.Context, postID types.PostID, userID types.UserID) error
	CountLikes(ctx context.Context, postIDs []types.PostID) (map[types.PostID]int, error)
	ListLikedPostIDs(ctx context.Context, userID types.UserID, postIDs []types.PostID) (map[types.PostID]bool, error)

	// Comment operations. Listing is ordered oldest first.
	SaveComment(ctx context.Context, comment *model.Comment) error
	ListComments(ctx context.Context, postID types.PostID, status types.Decision, page model.Page) ([]*model.Comment, error)
	CountComments(ctx context.Context, postIDs []types.PostID, status types.Decision) (map[types.PostID]int, error)

	// AI request log operations
	SaveAIRequest(ctx context.Context, req *model.AIRequest) error
	ListAIRequests(ctx context.Context, userID types.UserID) ([]*model.AIRequest, error)

	// Close closes the repository connection
	Close() error
}
