package model

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/postwave/postwave/pkg/domain/types"
)

// MaxSeverityLevel is the highest severity the classifier reports
const MaxSeverityLevel = 7

// Thresholds are the four severity levels that drive moderation decisions
type Thresholds struct {
	TextBlock   int `yaml:"text_block"`
	TextReview  int `yaml:"text_review"`
	ImageBlock  int `yaml:"image_block"`
	ImageReview int `yaml:"image_review"`
}

// DefaultThresholds matches the 0/2/4/6 severity scale of the classifier:
// medium severity is blocked and low severity is reviewed.
func DefaultThresholds() Thresholds {
	return Thresholds{
		TextBlock:   4,
		TextReview:  2,
		ImageBlock:  4,
		ImageReview: 2,
	}
}

// Validate rejects thresholds outside 0..MaxSeverityLevel and block levels
// below review levels
func (t Thresholds) Validate() error {
	values := []struct {
		name  string
		value int
	}{
		{"text_block", t.TextBlock},
		{"text_review", t.TextReview},
		{"image_block", t.ImageBlock},
		{"image_review", t.ImageReview},
	}
	for _, v := range values {
		if v.value < 0 || v.value > MaxSeverityLevel {
			return goerr.New("threshold must be between 0 and 7",
				goerr.T(ErrTagConfiguration),
				goerr.V("threshold", v.name),
				goerr.V("value", v.value),
				goerr.V("max", MaxSeverityLevel))
		}
	}

	if t.TextBlock < t.TextReview {
		return goerr.New("text block threshold is lower than review threshold",
			goerr.T(ErrTagConfiguration),
			goerr.V("text_block", t.TextBlock),
			goerr.V("text_review", t.TextReview))
	}
	if t.ImageBlock < t.ImageReview {
		return goerr.New("image block threshold is lower than review threshold",
			goerr.T(ErrTagConfiguration),
			goerr.V("image_block", t.ImageBlock),
			goerr.V("image_review", t.ImageReview))
	}

	return nil
}

// Decide maps text and image severities to a verdict. Blocking wins over
// review, review wins over publishing. Decide does not validate the
// thresholds and has no side effects.
func (t Thresholds) Decide(text SeverityResult, image ImageSeverityResult) *Verdict {
	evidence := Evidence{Text: text.Clone(), Image: image.Clone()}

	switch {
	case text.MaxSeverity >= t.TextBlock || image.MaxSeverity >= t.ImageBlock:
		return &Verdict{Decision: types.DecisionBlocked, Label: LabelUnsafeContent, Evidence: evidence}
	case text.MaxSeverity >= t.TextReview || image.MaxSeverity >= t.ImageReview:
		return &Verdict{Decision: types.DecisionReview, Label: LabelNeedsReview, Evidence: evidence}
	default:
		return &Verdict{Decision: types.DecisionPublished, Label: LabelSafe, Evidence: evidence}
	}
}

// LogValue implements slog.LogValuer
func (t Thresholds) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("text_block", t.TextBlock),
		slog.Int("text_review", t.TextReview),
		slog.Int("image_block", t.ImageBlock),
		slog.Int("image_review", t.ImageReview),
	)
}
