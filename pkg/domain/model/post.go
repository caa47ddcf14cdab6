package model

import (
	"strings"
	"time"

	"github.com/postwave/postwave/pkg/domain/types"
)

const (
	PostContentMinLength = 3
	PostContentMaxLength = 1000
	MaxImagesPerPost     = 4
)

// Post is a piece of user content together with its moderation outcome
type Post struct {
	ID                  types.PostID     `json:"id"`
	UserID              types.UserID     `json:"user_id"`
	Content             string           `json:"content"`
	Source              types.PostSource `json:"source"`
	GeneratedFromPrompt string           `json:"generated_from_prompt,omitempty"`
	ModelName           string           `json:"model_name,omitempty"`
	Status              types.Decision   `json:"status"`
	SafetyLabel         Label            `json:"safety_label"`
	SafetyScores        *Evidence        `json:"safety_scores,omitempty"`
	Hashtags            []types.Hashtag  `json:"hashtags"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
}

// NewPost creates a post from a moderation verdict. Status and safety
// fields are copied from the verdict.
func NewPost(userID types.UserID, content string, source types.PostSource, verdict *Verdict) *Post {
	now := time.Now()
	evidence := verdict.Evidence.Clone()
	return &Post{
		ID:           types.NewPostID(),
		UserID:       userID,
		Content:      content,
		Source:       source,
		Status:       verdict.Decision,
		SafetyLabel:  verdict.Label,
		SafetyScores: &evidence,
		Hashtags:     ExtractHashtags(content),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// IsPublished returns true if the post is publicly visible
func (p *Post) IsPublished() bool {
	return p.Status.IsVisible()
}

// IsVisibleTo returns true if the viewer may read the post. Owners can see
// their own posts regardless of moderation status.
func (p *Post) IsVisibleTo(viewer types.UserID) bool {
	return p.IsPublished() || (viewer != "" && viewer == p.UserID)
}

// HasHashtag checks if the post is tagged with the hashtag
func (p *Post) HasHashtag(tag types.Hashtag) bool {
	for _, h := range p.Hashtags {
		if h == tag {
			return true
		}
	}
	return false
}

// NormalizeContent trims surrounding whitespace
func NormalizeContent(content string) string {
	return strings.TrimSpace(content)
}

// PostImage is a stored image attached to a post
type PostImage struct {
	ID             types.ImageID `json:"id"`
	PostID         types.PostID  `json:"post_id"`
	UserID         types.UserID  `json:"user_id"`
	StoredFilename string        `json:"stored_filename"`
	ContentType    string        `json:"content_type"`
	SizeBytes      int           `json:"size_bytes"`
	Position       int           `json:"position"`
	CreatedAt      time.Time     `json:"created_at"`
}

// URL returns the public path of the image
func (img *PostImage) URL() string {
	return "/media/" + img.StoredFilename
}

// imageExtensions maps the raster image types accepted for upload to the
// extension they are stored with
var imageExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
	"image/bmp":  ".bmp",
}

// ImageExtension returns the stored file extension of an accepted image
// content type. Other types, including SVG, are not accepted.
func ImageExtension(contentType string) (string, bool) {
	ext, ok := imageExtensions[contentType]
	return ext, ok
}

// ImageUpload is an image received with a submission, before storage.
// ContentType is the sniffed type of Data.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Like records a user liking a post. A user likes a post at most once.
type Like struct {
	PostID    types.PostID `json:"post_id"`
	UserID    types.UserID `json:"user_id"`
	CreatedAt time.Time    `json:"created_at"`
}

// Key returns the unique key of the like
func (l *Like) Key() string {
	return l.PostID.String() + "_" + l.UserID.String()
}
