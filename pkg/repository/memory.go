package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/postwave/postwave/pkg/domain/interfaces"
	"github.com/postwave/postwave/pkg/domain/model"
	"github.com/postwave/postwave/pkg/domain/types"
)

// Memory implements Repository interface with in-memory storage
type Memory struct {
	mu         sync.RWMutex
	users      map[types.UserID]*model.User
	sessions   map[types.SessionID]*model.Session
	posts      map[types.PostID]*model.Post
	images     map[types.PostID][]*model.PostImage
	likes      map[string]*model.Like
	comments   map[types.CommentID]*model.Comment
	aiRequests map[types.AIRequestID]*model.AIRequest
}

var _ interfaces.Repository = (*Memory)(nil)

// NewMemory creates a new memory repository
func NewMemory() interfaces.Repository {
	return &Memory{
		users:      make(map[types.UserID]*model.User),
		sessions:   make(map[types.SessionID]*model.Session),
		posts:      make(map[types.PostID]*model.Post),
		images:     make(map[types.PostID][]*model.PostImage),
		likes:      make(map[string]*model.Like),
		comments:   make(map[types.CommentID]*model.Comment),
		aiRequests: make(map[types.AIRequestID]*model.AIRequest),
	}
}

// SaveUser saves a user to memory
func (m *Memory) SaveUser(ctx context.Context, user *model.User) error {
	if user == nil {
		return goerr.New("user is nil")
	}
	if user.ID == "" {
		return goerr.New("user ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	userCopy := *user
	m.users[user.ID] = &userCopy
	return nil
}

// GetUser retrieves a user by ID
func (m *Memory) GetUser(ctx context.Context, id types.UserID) (*model.User, error) {
	if id == "" {
		return nil, goerr.New("user ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	user, exists := m.users[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrUserNotFound, "failed to get user", goerr.V("user_id", id))
	}

	userCopy := *user
	return &userCopy, nil
}

// GetUserByUsername retrieves a user by username
func (m *Memory) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return m.findUser(func(u *model.User) bool {
		return u.Username == username
	}, goerr.V("username", username))
}

// GetUserByEmail retrieves a user by email
func (m *Memory) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return m.findUser(func(u *model.User) bool {
		return u.Email == email
	}, goerr.V("email", email))
}

func (m *Memory) findUser(match func(*model.User) bool, opt goerr.Option) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, user := range m.users {
		if match(user) {
			userCopy := *user
			return &userCopy, nil
		}
	}

	return nil, goerr.Wrap(model.ErrUserNotFound, "failed to find user", opt)
}

// GetUsers retrieves several users at once. Unknown IDs are skipped.
func (m *Memory) GetUsers(ctx context.Context, ids []types.UserID) (map[types.UserID]*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[types.UserID]*model.User, len(ids))
	for _, id := range ids {
		if user, ok := m.users[id]; ok {
			userCopy := *user
			result[id] = &userCopy
		}
	}
	return result, nil
}

// SaveSession saves a session to memory
func (m *Memory) SaveSession(ctx context.Context, session *model.Session) error {
	if session == nil {
		return goerr.New("session is nil")
	}
	if session.ID == "" {
		return goerr.New("session ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	sessionCopy := *session
	m.sessions[session.ID] = &sessionCopy
	return nil
}

// GetSession retrieves a session by ID
func (m *Memory) GetSession(ctx context.Context, id types.SessionID) (*model.Session, error) {
	if id == "" {
		return nil, goerr.New("session ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	session, exists := m.sessions[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrSessionNotFound, "failed to get session", goerr.V("session_id", id))
	}

	sessionCopy := *session
	return &sessionCopy, nil
}

// DeleteSession deletes a session
func (m *Memory) DeleteSession(ctx context.Context, id types.SessionID) error {
	if id == "" {
		return goerr.New("session ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sessions[id]; !exists {
		return goerr.Wrap(model.ErrSessionNotFound, "failed to delete session", goerr.V("session_id", id))
	}

	delete(m.sessions, id)
	return nil
}

// SavePost saves a post to memory
func (m *Memory) SavePost(ctx context.Context, post *model.Post) error {
	if post == nil {
		return goerr.New("post is nil")
	}
	if post.ID == "" {
		return goerr.New("post ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.posts[post.ID] = clonePost(post)
	return nil
}

// GetPost retrieves a post by ID
func (m *Memory) GetPost(ctx context.Context, id types.PostID) (*model.Post, error) {
	if id == "" {
		return nil, goerr.New("post ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	post, exists := m.posts[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrPostNotFound, "failed to get post", goerr.V("post_id", id))
	}

	return clonePost(post), nil
}

// DeletePost deletes a post with its images, likes and comments
func (m *Memory) DeletePost(ctx context.Context, id types.PostID) error {
	if id == "" {
		return goerr.New("post ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.posts[id]; !exists {
		return goerr.Wrap(model.ErrPostNotFound, "failed to delete post", goerr.V("post_id", id))
	}

	delete(m.posts, id)
	delete(m.images, id)
	for key, like := range m.likes {
		if like.PostID == id {
			delete(m.likes, key)
		}
	}
	for cid, comment := range m.comments {
		if comment.PostID == id {
			delete(m.comments, cid)
		}
	}

	return nil
}

// ListPosts lists posts matching the query, newest first
func (m *Memory) ListPosts(ctx context.Context, query interfaces.PostQuery) ([]*model.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var posts []*model.Post
	for _, post := range m.posts {
		if matchPost(post, query) {
			posts = append(posts, clonePost(post))
		}
	}

	sortPostsNewestFirst(posts)
	return model.Apply(query.Page, posts), nil
}

// CountHashtags counts hashtag usage over posts with the given status
func (m *Memory) CountHashtags(ctx context.Context, status types.Decision) (map[types.Hashtag]int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	counts := make(map[types.Hashtag]int)
	for _, post := range m.posts {
		if status != "" && post.Status != status {
			continue
		}
		for _, tag := range post.Hashtags {
			counts[tag]++
		}
	}
	return counts, nil
}

// SavePostImages saves image records of posts
func (m *Memory) SavePostImages(ctx context.Context, images []*model.PostImage) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, img := range images {
		if img == nil || img.ID == "" || img.PostID == "" {
			return goerr.New("invalid post image", goerr.V("image", img))
		}
		imgCopy := *img
		m.images[img.PostID] = append(m.images[img.PostID], &imgCopy)
	}
	return nil
}

// ListPostImages lists images of the posts in upload order
func (m *Memory) ListPostImages(ctx context.Context, postIDs []types.PostID) (map[types.PostID][]*model.PostImage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[types.PostID][]*model.PostImage, len(postIDs))
	for _, id := range postIDs {
		images := m.images[id]
		if len(images) == 0 {
			continue
		}
		copied := make([]*model.PostImage, 0, len(images))
		for _, img := range images {
			imgCopy := *img
			copied = append(copied, &imgCopy)
		}
		sortImagesByUpload(copied)
		result[id] = copied
	}
	return result, nil
}

// PutLike records a like. Liking twice keeps the first like.
func (m *Memory) PutLike(ctx context.Context, like *model.Like) error {
	if like == nil || like.PostID == "" || like.UserID == "" {
		return goerr.New("invalid like", goerr.V("like", like))
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.likes[like.Key()]; exists {
		return nil
	}
	likeCopy := *like
	m.likes[like.Key()] = &likeCopy
	return nil
}

// DeleteLike removes a like if present
func (m *Memory) DeleteLike(ctx context.Context, postID types.PostID, userID types.UserID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := (&model.Like{PostID: postID, UserID: userID}).Key()
	delete(m.likes, key)
	return nil
}

// CountLikes counts likes per post
func (m *Memory) CountLikes(ctx context.Context, postIDs []types.PostID) (map[types.PostID]int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	wanted := idSet(postIDs)
	counts := make(map[types.PostID]int)
	for _, like := range m.likes {
		if wanted[like.PostID] {
			counts[like.PostID]++
		}
	}
	return counts, nil
}

// ListLikedPostIDs returns which of the posts the user liked
func (m *Memory) ListLikedPostIDs(ctx context.Context, userID types.UserID, postIDs []types.PostID) (map[types.PostID]bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	wanted := idSet(postIDs)
	liked := make(map[types.PostID]bool)
	for _, like := range m.likes {
		if like.UserID == userID && wanted[like.PostID] {
			liked[like.PostID] = true
		}
	}
	return liked, nil
}

// SaveComment saves a comment to memory
func (m *Memory) SaveComment(ctx context.Context, comment *model.Comment) error {
	if comment == nil {
		return goerr.New("comment is nil")
	}
	if comment.ID == "" {
		return goerr.New("comment ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.comments[comment.ID] = cloneComment(comment)
	return nil
}

// ListComments lists comments of a post with the given status, oldest first
func (m *Memory) ListComments(ctx context.Context, postID types.PostID, status types.Decision, page model.Page) ([]*model.Comment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var comments []*model.Comment
	for _, c := range m.comments {
		if c.PostID == postID && (status == "" || c.Status == status) {
			comments = append(comments, cloneComment(c))
		}
	}

	sortCommentsOldestFirst(comments)
	return model.Apply(page, comments), nil
}

// CountComments counts comments per post with the given status
func (m *Memory) CountComments(ctx context.Context, postIDs []types.PostID, status types.Decision) (map[types.PostID]int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	wanted := idSet(postIDs)
	counts := make(map[types.PostID]int)
	for _, c := range m.comments {
		if wanted[c.PostID] && (status == "" || c.Status == status) {
			counts[c.PostID]++
		}
	}
	return counts, nil
}

// SaveAIRequest saves an assistant request log entry
func (m *Memory) SaveAIRequest(ctx context.Context, req *model.AIRequest) error {
	if req == nil {
		return goerr.New("ai request is nil")
	}
	if req.ID == "" {
		return goerr.New("ai request ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	reqCopy := *req
	reqCopy.Meta = cloneMeta(req.Meta)
	m.aiRequests[req.ID] = &reqCopy
	return nil
}

// ListAIRequests lists the assistant requests of a user, newest first
func (m *Memory) ListAIRequests(ctx context.Context, userID types.UserID) ([]*model.AIRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var reqs []*model.AIRequest
	for _, req := range m.aiRequests {
		if req.UserID == userID {
			reqCopy := *req
			reqCopy.Meta = cloneMeta(req.Meta)
			reqs = append(reqs, &reqCopy)
		}
	}

	sort.Slice(reqs, func(i, j int) bool {
		if reqs[i].CreatedAt.Equal(reqs[j].CreatedAt) {
			return reqs[i].ID > reqs[j].ID
		}
		return reqs[i].CreatedAt.After(reqs[j].CreatedAt)
	})
	return reqs, nil
}

// Close is a no-op for memory repository
func (m *Memory) Close() error {
	return nil
}
