package repository

import (
	"time"

	"github.com/postwave/postwave/pkg/domain/model"
	"github.com/postwave/postwave/pkg/domain/types"
)

// Firestore decodes map keys as plain strings and cannot assign them to a
// named key type such as model.Category. Posts and comments are stored
// through the documents below, whose category maps are keyed by string.
// Field names match the model so that queries on UserID, PostID, Status,
// Hashtags and CreatedAt keep working.

type severityDoc struct {
	MaxSeverity int
	Categories  map[string]int
}

type imageSeverityDoc struct {
	Index       int
	MaxSeverity int
	Categories  map[string]int
}

type evidenceDoc struct {
	Text     severityDoc
	ImageMax int
	PerImage []imageSeverityDoc
}

type postDoc struct {
	ID                  types.PostID
	UserID              types.UserID
	Content             string
	Source              types.PostSource
	GeneratedFromPrompt string
	ModelName           string
	Status              types.Decision
	SafetyLabel         model.Label
	SafetyScores        *evidenceDoc
	Hashtags            []types.Hashtag
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type commentDoc struct {
	ID           types.CommentID
	PostID       types.PostID
	UserID       types.UserID
	Content      string
	Status       types.Decision
	SafetyLabel  model.Label
	SafetyScores *evidenceDoc
	CreatedAt    time.Time
}

func newPostDoc(post *model.Post) *postDoc {
	return &postDoc{
		ID:                  post.ID,
		UserID:              post.UserID,
		Content:             post.Content,
		Source:              post.Source,
		GeneratedFromPrompt: post.GeneratedFromPrompt,
		ModelName:           post.ModelName,
		Status:              post.Status,
		SafetyLabel:         post.SafetyLabel,
		SafetyScores:        newEvidenceDoc(post.SafetyScores),
		Hashtags:            post.Hashtags,
		CreatedAt:           post.CreatedAt,
		UpdatedAt:           post.UpdatedAt,
	}
}

func (d *postDoc) toModel() *model.Post {
	return &model.Post{
		ID:                  d.ID,
		UserID:              d.UserID,
		Content:             d.Content,
		Source:              d.Source,
		GeneratedFromPrompt: d.GeneratedFromPrompt,
		ModelName:           d.ModelName,
		Status:              d.Status,
		SafetyLabel:         d.SafetyLabel,
		SafetyScores:        d.SafetyScores.toModel(),
		Hashtags:            d.Hashtags,
		CreatedAt:           d.CreatedAt,
		UpdatedAt:           d.UpdatedAt,
	}
}

func newCommentDoc(comment *model.Comment) *commentDoc {
	return &commentDoc{
		ID:           comment.ID,
		PostID:       comment.PostID,
		UserID:       comment.UserID,
		Content:      comment.Content,
		Status:       comment.Status,
		SafetyLabel:  comment.SafetyLabel,
		SafetyScores: newEvidenceDoc(comment.SafetyScores),
		CreatedAt:    comment.CreatedAt,
	}
}

func (d *commentDoc) toModel() *model.Comment {
	return &model.Comment{
		ID:           d.ID,
		PostID:       d.PostID,
		UserID:       d.UserID,
		Content:      d.Content,
		Status:       d.Status,
		SafetyLabel:  d.SafetyLabel,
		SafetyScores: d.SafetyScores.toModel(),
		CreatedAt:    d.CreatedAt,
	}
}

func newEvidenceDoc(e *model.Evidence) *evidenceDoc {
	if e == nil {
		return nil
	}

	perImage := make([]imageSeverityDoc, 0, len(e.Image.PerImage))
	for _, img := range e.Image.PerImage {
		perImage = append(perImage, imageSeverityDoc{
			Index:       img.Index,
			MaxSeverity: img.MaxSeverity,
			Categories:  categoriesToDoc(img.Categories),
		})
	}

	return &evidenceDoc{
		Text: severityDoc{
			MaxSeverity: e.Text.MaxSeverity,
			Categories:  categoriesToDoc(e.Text.Categories),
		},
		ImageMax: e.Image.MaxSeverity,
		PerImage: perImage,
	}
}

func (d *evidenceDoc) toModel() *model.Evidence {
	if d == nil {
		return nil
	}

	perImage := make([]model.ImageSeverity, 0, len(d.PerImage))
	for _, img := range d.PerImage {
		perImage = append(perImage, model.ImageSeverity{
			Index: img.Index,
			SeverityResult: model.SeverityResult{
				MaxSeverity: img.MaxSeverity,
				Categories:  categoriesFromDoc(img.Categories),
			},
		})
	}

	return &model.Evidence{
		Text: model.SeverityResult{
			MaxSeverity: d.Text.MaxSeverity,
			Categories:  categoriesFromDoc(d.Text.Categories),
		},
		Image: model.ImageSeverityResult{
			MaxSeverity: d.ImageMax,
			PerImage:    perImage,
		},
	}
}

func categoriesToDoc(categories map[model.Category]int) map[string]int {
	result := make(map[string]int, len(categories))
	for c, v := range categories {
		result[c.String()] = v
	}
	return result
}

func categoriesFromDoc(categories map[string]int) map[model.Category]int {
	result := make(map[model.Category]int, len(categories))
	for name, v := range categories {
		result[model.Category(name)] = v
	}
	return result
}
