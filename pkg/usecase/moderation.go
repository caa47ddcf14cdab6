package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/postwave/postwave/pkg/domain/interfaces"
	"github.com/postwave/postwave/pkg/domain/model"
	"golang.org/x/sync/errgroup"
)

// FailurePolicy tells ModerateOrContinue what to do when the content
// safety service cannot classify the content
type FailurePolicy int

const (
	// FailOnClassificationFailure returns the classification error
	FailOnClassificationFailure FailurePolicy = iota

	// ContinueOnClassificationFailure lets the caller proceed with
	// unmoderated content. Only the rewrite assistant uses it.
	ContinueOnClassificationFailure
)

// String returns the policy name
func (p FailurePolicy) String() string {
	switch p {
	case ContinueOnClassificationFailure:
		return "continue_on_classification_failure"
	default:
		return "fail_on_classification_failure"
	}
}

// Moderation classifies submissions and applies the decision thresholds
type Moderation struct {
	classifier interfaces.Classifier
	thresholds model.Thresholds
}

// NewModeration creates a Moderation use case. The thresholds are expected
// to be validated by the caller.
func NewModeration(classifier interfaces.Classifier, thresholds model.Thresholds) *Moderation {
	return &Moderation{
		classifier: classifier,
		thresholds: thresholds,
	}
}

// Thresholds returns the decision thresholds in use
func (m *Moderation) Thresholds() model.Thresholds {
	return m.thresholds
}

// Moderate classifies text and images concurrently and decides the verdict.
// A classifier error is returned unchanged and no verdict is produced.
func (m *Moderation) Moderate(ctx context.Context, text string, images [][]byte) (*model.Verdict, error) {
	var (
		textResult  model.SeverityResult
		imageResult model.ImageSeverityResult
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		r, err := m.classifier.AnalyzeText(egCtx, text)
		if err != nil {
			return err
		}
		textResult = r
		return nil
	})
	eg.Go(func() error {
		r, err := m.classifier.AnalyzeImages(egCtx, images)
		if err != nil {
			return err
		}
		imageResult = r
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	verdict := m.thresholds.Decide(textResult, imageResult)
	ctxlog.From(ctx).Debug("moderation verdict",
		"decision", verdict.Decision,
		"label", verdict.Label,
		"text_severity", textResult.MaxSeverity,
		"image_severity", imageResult.MaxSeverity,
	)
	return verdict, nil
}

// ModerateOrContinue moderates text only. Under
// ContinueOnClassificationFailure a classification failure yields a nil
// verdict and a nil error; any other error is still returned.
func (m *Moderation) ModerateOrContinue(ctx context.Context, text string, policy FailurePolicy) (*model.Verdict, error) {
	verdict, err := m.Moderate(ctx, text, nil)
	if err == nil {
		return verdict, nil
	}

	if policy == ContinueOnClassificationFailure && goerr.HasTag(err, model.ErrTagClassificationFailure) {
		ctxlog.From(ctx).Warn("classification failed, continuing without moderation",
			"policy", policy.String(),
			"error", err,
		)
		return nil, nil
	}

	return nil, err
}
