package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/postwave/postwave/pkg/domain/interfaces"
	"github.com/postwave/postwave/pkg/domain/model"
	"github.com/postwave/postwave/pkg/domain/types"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultFeedLimit     = 20
	DefaultUserPostLimit = 30
	MaxFeedLimit         = 100

	DefaultTrendingLimit = 10
	MaxTrendingLimit     = 50
)

// Feed implements FeedUseCase
type Feed struct {
	repo    interfaces.Repository
	builder *feedBuilder
}

// NewFeed creates a new Feed use case
func NewFeed(repo interfaces.Repository) *Feed {
	return &Feed{
		repo:    repo,
		builder: newFeedBuilder(repo),
	}
}

// PublicFeed lists all published posts, newest first
func (f *Feed) PublicFeed(ctx context.Context, viewerID types.UserID, limit, offset int) ([]*model.FeedItem, error) {
	page, err := resolvePage(limit, offset, DefaultFeedLimit, MaxFeedLimit)
	if err != nil {
		return nil, err
	}
	return f.list(ctx, viewerID, interfaces.PostQuery{Page: page})
}

// UserPosts lists the published posts of a user
func (f *Feed) UserPosts(ctx context.Context, viewerID, userID types.UserID, limit, offset int) ([]*model.FeedItem, error) {
	page, err := resolvePage(limit, offset, DefaultUserPostLimit, MaxFeedLimit)
	if err != nil {
		return nil, err
	}
	if _, err := f.repo.GetUser(ctx, userID); err != nil {
		return nil, goerr.Wrap(err, "failed to get user", goerr.V("userID", userID))
	}
	return f.list(ctx, viewerID, interfaces.PostQuery{UserID: userID, Page: page})
}

// MyPosts lists the published posts of the caller
func (f *Feed) MyPosts(ctx context.Context, userID types.UserID, limit, offset int) ([]*model.FeedItem, error) {
	page, err := resolvePage(limit, offset, DefaultUserPostLimit, MaxFeedLimit)
	if err != nil {
		return nil, err
	}
	return f.list(ctx, userID, interfaces.PostQuery{UserID: userID, Page: page})
}

// HashtagPosts lists published posts tagged with tag. A leading '#' is ignored.
func (f *Feed) HashtagPosts(ctx context.Context, viewerID types.UserID, tag string, limit, offset int) ([]*model.FeedItem, error) {
	page, err := resolvePage(limit, offset, DefaultFeedLimit, MaxFeedLimit)
	if err != nil {
		return nil, err
	}

	hashtag := model.NormalizeHashtag(tag)
	if hashtag == "" {
		return nil, invalidField("tag", "hashtag is required")
	}

	return f.list(ctx, viewerID, interfaces.PostQuery{Hashtag: hashtag, Page: page})
}

// TrendingHashtags returns the most used tags of published posts, by count
// then alphabetically
func (f *Feed) TrendingHashtags(ctx context.Context, limit int) ([]*model.TrendingHashtag, error) {
	page, err := resolvePage(limit, 0, DefaultTrendingLimit, MaxTrendingLimit)
	if err != nil {
		return nil, err
	}

	counts, err := f.repo.CountHashtags(ctx, types.DecisionPublished)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to count hashtags")
	}

	trending := make([]*model.TrendingHashtag, 0, len(counts))
	for tag, count := range counts {
		if count <= 0 {
			continue
		}
		trending = append(trending, &model.TrendingHashtag{Tag: tag, Count: count})
	}
	sort.Slice(trending, func(i, j int) bool {
		if trending[i].Count != trending[j].Count {
			return trending[i].Count > trending[j].Count
		}
		return trending[i].Tag < trending[j].Tag
	})

	return model.Apply(page, trending), nil
}

func (f *Feed) list(ctx context.Context, viewerID types.UserID, query interfaces.PostQuery) ([]*model.FeedItem, error) {
	query.Status = types.DecisionPublished

	posts, err := f.repo.ListPosts(ctx, query)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list posts",
			goerr.V("userID", query.UserID),
			goerr.V("hashtag", query.Hashtag))
	}

	return f.builder.build(ctx, viewerID, posts)
}

// feedBuilder joins posts with their owners and engagement aggregates
type feedBuilder struct {
	repo interfaces.Repository
}

func newFeedBuilder(repo interfaces.Repository) *feedBuilder {
	return &feedBuilder{repo: repo}
}

// build gathers the aggregates of all posts with one batched read per
// aggregate, run in parallel, and joins them in post order
func (b *feedBuilder) build(ctx context.Context, viewerID types.UserID, posts []*model.Post) ([]*model.FeedItem, error) {
	if len(posts) == 0 {
		return []*model.FeedItem{}, nil
	}

	postIDs := make([]types.PostID, len(posts))
	userIDs := make([]types.UserID, 0, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID
		userIDs = append(userIDs, p.UserID)
	}

	var (
		users    map[types.UserID]*model.User
		likes    map[types.PostID]int
		liked    map[types.PostID]bool
		comments map[types.PostID]int
		images   map[types.PostID][]*model.PostImage
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		users, err = b.repo.GetUsers(egCtx, userIDs)
		if err != nil {
			return goerr.Wrap(err, "failed to get post owners")
		}
		return nil
	})
	eg.Go(func() error {
		var err error
		likes, err = b.repo.CountLikes(egCtx, postIDs)
		if err != nil {
			return goerr.Wrap(err, "failed to count likes")
		}
		return nil
	})
	if viewerID != "" {
		eg.Go(func() error {
			var err error
			liked, err = b.repo.ListLikedPostIDs(egCtx, viewerID, postIDs)
			if err != nil {
				return goerr.Wrap(err, "failed to list liked posts", goerr.V("viewerID", viewerID))
			}
			return nil
		})
	}
	eg.Go(func() error {
		var err error
		comments, err = b.repo.CountComments(egCtx, postIDs, types.DecisionPublished)
		if err != nil {
			return goerr.Wrap(err, "failed to count comments")
		}
		return nil
	})
	eg.Go(func() error {
		var err error
		images, err = b.repo.ListPostImages(egCtx, postIDs)
		if err != nil {
			return goerr.Wrap(err, "failed to list post images")
		}
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	items := make([]*model.FeedItem, 0, len(posts))
	for _, p := range posts {
		owner := model.Owner{ID: p.UserID}
		if u, ok := users[p.UserID]; ok {
			owner = u.Owner()
		}

		items = append(items, &model.FeedItem{
			ID:           p.ID,
			Content:      p.Content,
			Status:       p.Status,
			CreatedAt:    p.CreatedAt,
			Owner:        owner,
			LikeCount:    likes[p.ID],
			LikedByMe:    liked[p.ID],
			CommentCount: comments[p.ID],
			ImageURLs:    imageURLs(images[p.ID]),
			Hashtags:     displayHashtags(p.Hashtags),
		})
	}

	return items, nil
}

func imageURLs(images []*model.PostImage) []string {
	urls := make([]string, 0, len(images))
	for _, img := range images {
		urls = append(urls, img.URL())
	}
	return urls
}

func displayHashtags(tags []types.Hashtag) []string {
	result := make([]string, 0, len(tags))
	for _, t := range tags {
		result = append(result, t.Display())
	}
	return result
}

// resolvePage applies the default to a zero limit and checks the bounds
func resolvePage(limit, offset, defaultLimit, maxLimit int) (model.Page, error) {
	if limit == 0 {
		limit = defaultLimit
	}
	if limit < 1 || limit > maxLimit {
		return model.Page{}, goerr.New("limit out of range",
			goerr.T(model.ErrTagValidation),
			goerr.V("field", "limit"),
			goerr.V("limit", limit),
			goerr.V("max", maxLimit))
	}
	if offset < 0 {
		return model.Page{}, goerr.New("offset must not be negative",
			goerr.T(model.ErrTagValidation),
			goerr.V("field", "offset"),
			goerr.V("offset", offset))
	}
	return model.Page{Limit: limit, Offset: offset}, nil
}

// normalizeText trims the content and returns its length in characters
func normalizeText(content string) (string, int) {
	content = strings.TrimSpace(content)
	return content, len([]rune(content))
}
