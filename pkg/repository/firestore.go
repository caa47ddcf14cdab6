package repository

import (
	"context"
	"sort"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/postwave/postwave/pkg/domain/interfaces"
	"github.com/postwave/postwave/pkg/domain/model"
	"github.com/postwave/postwave/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// Collection names
	usersCollection      = "users"
	sessionsCollection   = "sessions"
	postsCollection      = "posts"
	postImagesCollection = "post_images"
	likesCollection      = "likes"
	commentsCollection   = "comments"
	aiRequestsCollection = "ai_requests"

	// Firestore limits the number of values of an "in" filter
	maxInValues = 10
)

// Firestore implements Repository interface with Firestore
type Firestore struct {
	client *firestore.Client
}

// NewFirestore creates a new Firestore repository
func NewFirestore(ctx context.Context, projectID, databaseID string) (interfaces.Repository, error) {
	logger := ctxlog.From(ctx)

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client")
	}

	// Fail fast if the project ID is invalid or if there are permission issues
	_, err = client.Collection(postsCollection).Limit(1).Documents(ctx).Next()
	if err != nil && err != iterator.Done {
		if status.Code(err) == codes.PermissionDenied || status.Code(err) == codes.Unauthenticated {
			_ = client.Close()
			return nil, goerr.Wrap(err, "failed to connect to firestore project",
				goerr.V("firestore error code", status.Code(err).String()),
			)
		}
		logger.Debug("Firestore connection test returned error (may be empty collection)",
			"error", err,
			"errorCode", status.Code(err).String(),
		)
	}

	logger.Info("Firestore repository initialized successfully",
		"projectID", projectID,
		"databaseID", databaseID,
	)

	return &Firestore{
		client: client,
	}, nil
}

// SaveUser saves a user to Firestore
func (f *Firestore) SaveUser(ctx context.Context, user *model.User) error {
	if user == nil {
		return goerr.New("user is nil")
	}
	if user.ID == "" {
		return goerr.New("user ID is empty")
	}

	_, err := f.client.Collection(usersCollection).Doc(user.ID.String()).Set(ctx, user)
	if err != nil {
		return goerr.Wrap(err, "failed to save user to firestore")
	}

	return nil
}

// GetUser retrieves a user by ID
func (f *Firestore) GetUser(ctx context.Context, id types.UserID) (*model.User, error) {
	if id == "" {
		return nil, goerr.New("user ID is empty")
	}

	doc, err := f.client.Collection(usersCollection).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrUserNotFound, "failed to get user", goerr.V("user_id", id))
		}
		return nil, goerr.Wrap(err, "failed to get user from firestore")
	}

	var user model.User
	if err := doc.DataTo(&user); err != nil {
		return nil, goerr.Wrap(err, "failed to decode user")
	}

	return &user, nil
}

// GetUserByUsername retrieves a user by username
func (f *Firestore) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return f.findUser(ctx, "Username", username)
}

// GetUserByEmail retrieves a user by email
func (f *Firestore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return f.findUser(ctx, "Email", email)
}

func (f *Firestore) findUser(ctx context.Context, field, value string) (*model.User, error) {
	if value == "" {
		return nil, goerr.New("lookup value is empty", goerr.V("field", field))
	}

	iter := f.client.Collection(usersCollection).
		Where(field, "==", value).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, goerr.Wrap(model.ErrUserNotFound, "failed to find user", goerr.V(field, value))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query user", goerr.V("field", field))
	}

	var user model.User
	if err := doc.DataTo(&user); err != nil {
		return nil, goerr.Wrap(err, "failed to decode user")
	}

	return &user, nil
}

// GetUsers retrieves several users at once. Unknown IDs are skipped.
func (f *Firestore) GetUsers(ctx context.Context, ids []types.UserID) (map[types.UserID]*model.User, error) {
	result := make(map[types.UserID]*model.User, len(ids))
	unique := uniqueUserIDs(ids)
	if len(unique) == 0 {
		return result, nil
	}

	refs := make([]*firestore.DocumentRef, 0, len(unique))
	for _, id := range unique {
		refs = append(refs, f.client.Collection(usersCollection).Doc(id.String()))
	}

	docs, err := f.client.GetAll(ctx, refs)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get users from firestore", goerr.V("count", len(refs)))
	}

	for _, doc := range docs {
		if !doc.Exists() {
			continue
		}
		var user model.User
		if err := doc.DataTo(&user); err != nil {
			return nil, goerr.Wrap(err, "failed to decode user", goerr.V("doc_id", doc.Ref.ID))
		}
		result[user.ID] = &user
	}

	return result, nil
}

// SaveSession saves a session to Firestore
func (f *Firestore) SaveSession(ctx context.Context, session *model.Session) error {
	if session == nil {
		return goerr.New("session is nil")
	}
	if session.ID == "" {
		return goerr.New("session ID is empty")
	}

	_, err := f.client.Collection(sessionsCollection).Doc(session.ID.String()).Set(ctx, session)
	if err != nil {
		return goerr.Wrap(err, "failed to save session to firestore")
	}

	return nil
}

// GetSession retrieves a session by ID
func (f *Firestore) GetSession(ctx context.Context, id types.SessionID) (*model.Session, error) {
	if id == "" {
		return nil, goerr.New("session ID is empty")
	}

	doc, err := f.client.Collection(sessionsCollection).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrSessionNotFound, "failed to get session", goerr.V("session_id", id))
		}
		return nil, goerr.Wrap(err, "failed to get session from firestore")
	}

	var session model.Session
	if err := doc.DataTo(&session); err != nil {
		return nil, goerr.Wrap(err, "failed to decode session")
	}

	return &session, nil
}

// DeleteSession deletes a session from Firestore
func (f *Firestore) DeleteSession(ctx context.Context, id types.SessionID) error {
	if id == "" {
		return goerr.New("session ID is empty")
	}

	doc := f.client.Collection(sessionsCollection).Doc(id.String())
	_, err := doc.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(model.ErrSessionNotFound, "failed to delete session", goerr.V("session_id", id))
		}
		return goerr.Wrap(err, "failed to check session existence")
	}

	if _, err := doc.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete session from firestore")
	}

	return nil
}

// SavePost saves a post to Firestore
func (f *Firestore) SavePost(ctx context.Context, post *model.Post) error {
	if post == nil {
		return goerr.New("post is nil")
	}
	if post.ID == "" {
		return goerr.New("post ID is empty")
	}

	_, err := f.client.Collection(postsCollection).Doc(post.ID.String()).Set(ctx, newPostDoc(post))
	if err != nil {
		return goerr.Wrap(err, "failed to save post to firestore", goerr.V("post_id", post.ID))
	}

	return nil
}

// GetPost retrieves a post by ID
func (f *Firestore) GetPost(ctx context.Context, id types.PostID) (*model.Post, error) {
	if id == "" {
		return nil, goerr.New("post ID is empty")
	}

	doc, err := f.client.Collection(postsCollection).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrPostNotFound, "failed to get post", goerr.V("post_id", id))
		}
		return nil, goerr.Wrap(err, "failed to get post from firestore")
	}

	var post postDoc
	if err := doc.DataTo(&post); err != nil {
		return nil, goerr.Wrap(err, "failed to decode post")
	}

	return post.toModel(), nil
}

// DeletePost deletes a post with its images, likes and comments
func (f *Firestore) DeletePost(ctx context.Context, id types.PostID) error {
	if id == "" {
		return goerr.New("post ID is empty")
	}

	doc := f.client.Collection(postsCollection).Doc(id.String())
	if _, err := doc.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(model.ErrPostNotFound, "failed to delete post", goerr.V("post_id", id))
		}
		return goerr.Wrap(err, "failed to check post existence")
	}

	for _, collection := range []string{postImagesCollection, likesCollection, commentsCollection} {
		if err := f.deleteWhere(ctx, collection, "PostID", id.String()); err != nil {
			return goerr.Wrap(err, "failed to delete post children",
				goerr.V("post_id", id),
				goerr.V("collection", collection))
		}
	}

	if _, err := doc.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete post from firestore", goerr.V("post_id", id))
	}

	return nil
}

func (f *Firestore) deleteWhere(ctx context.Context, collection, field, value string) error {
	iter := f.client.Collection(collection).Where(field, "==", value).Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			return goerr.Wrap(err, "failed to iterate documents")
		}
		if _, err := doc.Ref.Delete(ctx); err != nil {
			return goerr.Wrap(err, "failed to delete document", goerr.V("doc_id", doc.Ref.ID))
		}
	}
}

// ListPosts lists posts matching the query, newest first. Ordering and
// paging run in Firestore and need composite indexes on posts: each
// combination of the UserID, Status and Hashtags filters with
// CreatedAt desc, ID desc.
func (f *Firestore) ListPosts(ctx context.Context, query interfaces.PostQuery) ([]*model.Post, error) {
	q := f.postsQuery(query).
		OrderBy("CreatedAt", firestore.Desc).
		OrderBy("ID", firestore.Desc)
	if query.Page.Offset > 0 {
		q = q.Offset(query.Page.Offset)
	}
	if query.Page.Limit > 0 {
		q = q.Limit(query.Page.Limit)
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	posts := []*model.Post{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate posts")
		}

		var post postDoc
		if err := doc.DataTo(&post); err != nil {
			return nil, goerr.Wrap(err, "failed to decode post", goerr.V("doc_id", doc.Ref.ID))
		}
		posts = append(posts, post.toModel())
	}

	return posts, nil
}

func (f *Firestore) postsQuery(query interfaces.PostQuery) firestore.Query {
	q := f.client.Collection(postsCollection).Query
	if query.UserID != "" {
		q = q.Where("UserID", "==", query.UserID.String())
	}
	if query.Status != "" {
		q = q.Where("Status", "==", query.Status.String())
	}
	if query.Hashtag != "" {
		q = q.Where("Hashtags", "array-contains", query.Hashtag.String())
	}
	return q
}

// CountHashtags counts hashtag usage over posts with the given status. Only
// the Hashtags field of each post is read.
func (f *Firestore) CountHashtags(ctx context.Context, decision types.Decision) (map[types.Hashtag]int, error) {
	iter := f.postsQuery(interfaces.PostQuery{Status: decision}).Select("Hashtags").Documents(ctx)
	defer iter.Stop()

	counts := make(map[types.Hashtag]int)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate post hashtags")
		}

		var tagged struct {
			Hashtags []types.Hashtag
		}
		if err := doc.DataTo(&tagged); err != nil {
			return nil, goerr.Wrap(err, "failed to decode post hashtags", goerr.V("doc_id", doc.Ref.ID))
		}
		for _, tag := range tagged.Hashtags {
			counts[tag]++
		}
	}
	return counts, nil
}

// SavePostImages saves image records of posts
func (f *Firestore) SavePostImages(ctx context.Context, images []*model.PostImage) error {
	for _, img := range images {
		if img == nil || img.ID == "" || img.PostID == "" {
			return goerr.New("invalid post image", goerr.V("image", img))
		}
		if _, err := f.client.Collection(postImagesCollection).Doc(img.ID.String()).Set(ctx, img); err != nil {
			return goerr.Wrap(err, "failed to save post image", goerr.V("image_id", img.ID))
		}
	}
	return nil
}

// ListPostImages lists images of the posts in upload order
func (f *Firestore) ListPostImages(ctx context.Context, postIDs []types.PostID) (map[types.PostID][]*model.PostImage, error) {
	result := make(map[types.PostID][]*model.PostImage, len(postIDs))

	err := f.eachInChunk(ctx, postImagesCollection, "PostID", postIDs, nil, func(doc *firestore.DocumentSnapshot) error {
		var img model.PostImage
		if err := doc.DataTo(&img); err != nil {
			return goerr.Wrap(err, "failed to decode post image", goerr.V("doc_id", doc.Ref.ID))
		}
		result[img.PostID] = append(result[img.PostID], &img)
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, images := range result {
		sortImagesByUpload(images)
	}
	return result, nil
}

// PutLike records a like. Liking twice keeps the first like.
func (f *Firestore) PutLike(ctx context.Context, like *model.Like) error {
	if like == nil || like.PostID == "" || like.UserID == "" {
		return goerr.New("invalid like", goerr.V("like", like))
	}

	_, err := f.client.Collection(likesCollection).Doc(like.Key()).Create(ctx, like)
	if err != nil && status.Code(err) != codes.AlreadyExists {
		return goerr.Wrap(err, "failed to save like", goerr.V("post_id", like.PostID))
	}
	return nil
}

// DeleteLike removes a like if present
func (f *Firestore) DeleteLike(ctx context.Context, postID types.PostID, userID types.UserID) error {
	key := (&model.Like{PostID: postID, UserID: userID}).Key()
	// Deleting a missing document is not an error in Firestore
	if _, err := f.client.Collection(likesCollection).Doc(key).Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete like", goerr.V("post_id", postID))
	}
	return nil
}

// CountLikes counts likes per post
func (f *Firestore) CountLikes(ctx context.Context, postIDs []types.PostID) (map[types.PostID]int, error) {
	counts := make(map[types.PostID]int)
	err := f.eachInChunk(ctx, likesCollection, "PostID", postIDs, nil, func(doc *firestore.DocumentSnapshot) error {
		var like model.Like
		if err := doc.DataTo(&like); err != nil {
			return goerr.Wrap(err, "failed to decode like", goerr.V("doc_id", doc.Ref.ID))
		}
		counts[like.PostID]++
		return nil
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// ListLikedPostIDs returns which of the posts the user liked
func (f *Firestore) ListLikedPostIDs(ctx context.Context, userID types.UserID, postIDs []types.PostID) (map[types.PostID]bool, error) {
	liked := make(map[types.PostID]bool)
	if len(postIDs) == 0 {
		return liked, nil
	}

	refs := make([]*firestore.DocumentRef, 0, len(postIDs))
	for _, id := range postIDs {
		key := (&model.Like{PostID: id, UserID: userID}).Key()
		refs = append(refs, f.client.Collection(likesCollection).Doc(key))
	}

	docs, err := f.client.GetAll(ctx, refs)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get likes", goerr.V("user_id", userID))
	}
	for i, doc := range docs {
		if doc.Exists() {
			liked[postIDs[i]] = true
		}
	}
	return liked, nil
}

// SaveComment saves a comment to Firestore
func (f *Firestore) SaveComment(ctx context.Context, comment *model.Comment) error {
	if comment == nil {
		return goerr.New("comment is nil")
	}
	if comment.ID == "" {
		return goerr.New("comment ID is empty")
	}

	_, err := f.client.Collection(commentsCollection).Doc(comment.ID.String()).Set(ctx, newCommentDoc(comment))
	if err != nil {
		return goerr.Wrap(err, "failed to save comment to firestore", goerr.V("comment_id", comment.ID))
	}
	return nil
}

// ListComments lists comments of a post with the given status, oldest first
func (f *Firestore) ListComments(ctx context.Context, postID types.PostID, decision types.Decision, page model.Page) ([]*model.Comment, error) {
	q := f.client.Collection(commentsCollection).Where("PostID", "==", postID.String())
	if decision != "" {
		q = q.Where("Status", "==", decision.String())
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	var comments []*model.Comment
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate comments")
		}

		var comment commentDoc
		if err := doc.DataTo(&comment); err != nil {
			return nil, goerr.Wrap(err, "failed to decode comment", goerr.V("doc_id", doc.Ref.ID))
		}
		comments = append(comments, comment.toModel())
	}

	sortCommentsOldestFirst(comments)
	return model.Apply(page, comments), nil
}

// CountComments counts comments per post with the given status
func (f *Firestore) CountComments(ctx context.Context, postIDs []types.PostID, decision types.Decision) (map[types.PostID]int, error) {
	var extra []filter
	if decision != "" {
		extra = append(extra, filter{field: "Status", value: decision.String()})
	}

	counts := make(map[types.PostID]int)
	err := f.eachInChunk(ctx, commentsCollection, "PostID", postIDs, extra, func(doc *firestore.DocumentSnapshot) error {
		var comment commentDoc
		if err := doc.DataTo(&comment); err != nil {
			return goerr.Wrap(err, "failed to decode comment", goerr.V("doc_id", doc.Ref.ID))
		}
		counts[comment.PostID]++
		return nil
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// SaveAIRequest saves an assistant request log entry
func (f *Firestore) SaveAIRequest(ctx context.Context, req *model.AIRequest) error {
	if req == nil {
		return goerr.New("ai request is nil")
	}
	if req.ID == "" {
		return goerr.New("ai request ID is empty")
	}

	_, err := f.client.Collection(aiRequestsCollection).Doc(req.ID.String()).Set(ctx, req)
	if err != nil {
		return goerr.Wrap(err, "failed to save ai request to firestore", goerr.V("request_id", req.ID))
	}
	return nil
}

// ListAIRequests lists the assistant requests of a user, newest first
func (f *Firestore) ListAIRequests(ctx context.Context, userID types.UserID) ([]*model.AIRequest, error) {
	iter := f.client.Collection(aiRequestsCollection).
		Where("UserID", "==", userID.String()).
		Documents(ctx)
	defer iter.Stop()

	var reqs []*model.AIRequest
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate ai requests")
		}

		var req model.AIRequest
		if err := doc.DataTo(&req); err != nil {
			return nil, goerr.Wrap(err, "failed to decode ai request", goerr.V("doc_id", doc.Ref.ID))
		}
		reqs = append(reqs, &req)
	}

	sort.Slice(reqs, func(i, j int) bool {
		if reqs[i].CreatedAt.Equal(reqs[j].CreatedAt) {
			return reqs[i].ID > reqs[j].ID
		}
		return reqs[i].CreatedAt.After(reqs[j].CreatedAt)
	})
	return reqs, nil
}

type filter struct {
	field string
	value string
}

// eachInChunk runs an "in" query over ids in chunks Firestore accepts
func (f *Firestore) eachInChunk(ctx context.Context, collection, field string, ids []types.PostID, extra []filter, fn func(*firestore.DocumentSnapshot) error) error {
	values := make([]string, 0, len(ids))
	for id := range idSet(ids) {
		values = append(values, id.String())
	}

	for start := 0; start < len(values); start += maxInValues {
		end := min(start+maxInValues, len(values))

		q := f.client.Collection(collection).Where(field, "in", values[start:end])
		for _, ex := range extra {
			q = q.Where(ex.field, "==", ex.value)
		}

		iter := q.Documents(ctx)
		for {
			doc, err := iter.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				iter.Stop()
				return goerr.Wrap(err, "failed to iterate documents", goerr.V("collection", collection))
			}
			if err := fn(doc); err != nil {
				iter.Stop()
				return err
			}
		}
		iter.Stop()
	}

	return nil
}

func uniqueUserIDs(ids []types.UserID) []types.UserID {
	seen := make(map[types.UserID]bool, len(ids))
	result := make([]types.UserID, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		result = append(result, id)
	}
	return result
}

// Close closes the Firestore client
func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}

var _ interfaces.Repository = (*Firestore)(nil) // Compile-time interface check
