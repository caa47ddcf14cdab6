package model

import (
	"strings"

	"github.com/postwave/postwave/pkg/domain/types"
)

// Category is a harm category reported by the content safety classifier
type Category string

const (
	CategoryHate     Category = "Hate"
	CategorySelfHarm Category = "SelfHarm"
	CategorySexual   Category = "Sexual"
	CategoryViolence Category = "Violence"

	// CategoryUnrecognized collects every category name the classifier
	// reports that is not one of the known categories above.
	CategoryUnrecognized Category = "Unrecognized"
)

// KnownCategories lists the categories with a dedicated bucket
var KnownCategories = []Category{
	CategoryHate,
	CategorySelfHarm,
	CategorySexual,
	CategoryViolence,
}

// String returns the string representation
func (c Category) String() string {
	return string(c)
}

// ParseCategory maps a classifier category name to a known category.
// Matching ignores case and the separators '_', '-' and ' ', so
// "self_harm" and "SelfHarm" are the same category. Anything else is
// CategoryUnrecognized.
func ParseCategory(name string) Category {
	normalized := strings.ToLower(strings.NewReplacer("_", "", "-", "", " ", "").Replace(name))
	for _, c := range KnownCategories {
		if strings.ToLower(string(c)) == normalized {
			return c
		}
	}
	return CategoryUnrecognized
}

// CategoryScore is a single raw (category name, severity) pair returned by
// the content safety service
type CategoryScore struct {
	Name     string `json:"category"`
	Severity int    `json:"severity"`
}

// SeverityResult is the classification of one piece of content
type SeverityResult struct {
	MaxSeverity int              `json:"max_severity"`
	Categories  map[Category]int `json:"categories"`
}

// NewSeverityResult folds raw scores into a SeverityResult. Only reported
// categories are present. Several unrecognized names share the
// CategoryUnrecognized bucket, which keeps the highest severity among them.
// MaxSeverity is the largest reported severity, or 0 when nothing was
// reported.
func NewSeverityResult(scores []CategoryScore) SeverityResult {
	result := SeverityResult{
		Categories: make(map[Category]int, len(scores)),
	}

	for _, s := range scores {
		c := ParseCategory(s.Name)
		if prev, ok := result.Categories[c]; ok && prev >= s.Severity {
			continue
		}
		result.Categories[c] = s.Severity
	}

	for _, v := range result.Categories {
		if v > result.MaxSeverity {
			result.MaxSeverity = v
		}
	}

	return result
}

// Severity returns the severity reported for the category
func (r SeverityResult) Severity(c Category) (int, bool) {
	v, ok := r.Categories[c]
	return v, ok
}

// Clone returns a deep copy of the result
func (r SeverityResult) Clone() SeverityResult {
	categories := make(map[Category]int, len(r.Categories))
	for k, v := range r.Categories {
		categories[k] = v
	}
	return SeverityResult{
		MaxSeverity: r.MaxSeverity,
		Categories:  categories,
	}
}

// ImageSeverity is the classification of one image, keyed by its
// position in the submission
type ImageSeverity struct {
	Index          int `json:"index"`
	SeverityResult
}

// ImageSeverityResult aggregates the classification of all images of a
// submission
type ImageSeverityResult struct {
	MaxSeverity int             `json:"max_severity"`
	PerImage    []ImageSeverity `json:"per_image"`
}

// NewImageSeverityResult builds the aggregate from per-image results given
// in submission order
func NewImageSeverityResult(results []SeverityResult) ImageSeverityResult {
	agg := ImageSeverityResult{
		PerImage: make([]ImageSeverity, 0, len(results)),
	}
	for i, r := range results {
		agg.PerImage = append(agg.PerImage, ImageSeverity{Index: i, SeverityResult: r})
		if r.MaxSeverity > agg.MaxSeverity {
			agg.MaxSeverity = r.MaxSeverity
		}
	}
	return agg
}

// Clone returns a deep copy of the result
func (r ImageSeverityResult) Clone() ImageSeverityResult {
	perImage := make([]ImageSeverity, len(r.PerImage))
	for i, img := range r.PerImage {
		perImage[i] = ImageSeverity{Index: img.Index, SeverityResult: img.SeverityResult.Clone()}
	}
	return ImageSeverityResult{
		MaxSeverity: r.MaxSeverity,
		PerImage:    perImage,
	}
}

// Label is the human readable safety label paired with a decision
type Label string

const (
	LabelSafe          Label = "safe"
	LabelNeedsReview   Label = "needs_review"
	LabelUnsafeContent Label = "unsafe_content"
)

// String returns the string representation
func (l Label) String() string {
	return string(l)
}

// Evidence holds the classifier output a verdict was derived from
type Evidence struct {
	Text  SeverityResult      `json:"text"`
	Image ImageSeverityResult `json:"image"`
}

// Clone returns a deep copy of the evidence
func (e Evidence) Clone() Evidence {
	return Evidence{
		Text:  e.Text.Clone(),
		Image: e.Image.Clone(),
	}
}

// Verdict is the moderation outcome of a single submission. A verdict is
// created per submission and not modified afterwards.
type Verdict struct {
	Decision types.Decision `json:"decision"`
	Label    Label          `json:"label"`
	Evidence Evidence       `json:"evidence"`
}

// IsBlocked returns true if the content must not be published or stored
func (v *Verdict) IsBlocked() bool {
	return v.Decision == types.DecisionBlocked
}

// NeedsReview returns true if the content is held for a moderator
func (v *Verdict) NeedsReview() bool {
	return v.Decision == types.DecisionReview
}
