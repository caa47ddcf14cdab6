package usecase_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/postwave/postwave/pkg/domain/interfaces/mocks"
	"github.com/postwave/postwave/pkg/domain/model"
	"github.com/postwave/postwave/pkg/domain/types"
	"github.com/postwave/postwave/pkg/service/safety"
	"github.com/postwave/postwave/pkg/usecase"
)

var testThresholds = model.Thresholds{TextBlock: 6, TextReview: 3, ImageBlock: 6, ImageReview: 3}

// fixedClassifier returns constant severities for every call
func fixedClassifier(text int, images ...int) *mocks.ClassifierMock {
	return &mocks.ClassifierMock{
		AnalyzeTextFunc: func(ctx context.Context, s string) (model.SeverityResult, error) {
			return model.NewSeverityResult([]model.CategoryScore{{Name: "Hate", Severity: text}}), nil
		},
		AnalyzeImagesFunc: func(ctx context.Context, imgs [][]byte) (model.ImageSeverityResult, error) {
			results := make([]model.SeverityResult, 0, len(imgs))
			for i := range imgs {
				sev := 0
				if i < len(images) {
					sev = images[i]
				}
				results = append(results, model.NewSeverityResult([]model.CategoryScore{{Name: "Violence", Severity: sev}}))
			}
			return model.NewImageSeverityResult(results), nil
		},
	}
}

func TestModerationModerate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		text     int
		images   []int
		decision types.Decision
		label    model.Label
	}{
		{"text severity 7 blocks", 7, nil, types.DecisionBlocked, model.LabelUnsafeContent},
		{"text severity 4 reviews", 4, []int{0}, types.DecisionReview, model.LabelNeedsReview},
		{"both severity 2 publishes", 2, []int{2}, types.DecisionPublished, model.LabelSafe},
		{"image block dominates", 3, []int{7}, types.DecisionBlocked, model.LabelUnsafeContent},
		{"worst image counts", 0, []int{0, 4, 1}, types.DecisionReview, model.LabelNeedsReview},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			images := make([][]byte, len(tt.images))
			for i := range images {
				images[i] = []byte{byte(i)}
			}

			m := usecase.NewModeration(fixedClassifier(tt.text, tt.images...), testThresholds)
			verdict, err := m.Moderate(ctx, "content", images)
			gt.NoError(t, err).Required()
			gt.Equal(t, verdict.Decision, tt.decision)
			gt.Equal(t, verdict.Label, tt.label)
			gt.Equal(t, verdict.Evidence.Text.MaxSeverity, tt.text)
			gt.Equal(t, len(verdict.Evidence.Image.PerImage), len(tt.images))
		})
	}
}

func TestModerationPropagatesImageFailure(t *testing.T) {
	ctx := context.Background()
	failure := goerr.New("image classification failed", goerr.T(model.ErrTagClassificationFailure))

	classifier := fixedClassifier(0)
	classifier.AnalyzeImagesFunc = func(ctx context.Context, imgs [][]byte) (model.ImageSeverityResult, error) {
		return model.ImageSeverityResult{}, failure
	}

	m := usecase.NewModeration(classifier, testThresholds)
	verdict, err := m.Moderate(ctx, "hello", [][]byte{[]byte("img")})

	gt.V(t, verdict).Nil()
	gt.True(t, err == error(failure))
	gt.True(t, errors.Is(err, failure))
	gt.True(t, goerr.HasTag(err, model.ErrTagClassificationFailure))
}

func TestModerationPropagatesTextFailure(t *testing.T) {
	ctx := context.Background()
	failure := errors.New("text classification failed")

	classifier := fixedClassifier(0)
	classifier.AnalyzeTextFunc = func(ctx context.Context, s string) (model.SeverityResult, error) {
		return model.SeverityResult{}, failure
	}

	m := usecase.NewModeration(classifier, testThresholds)
	_, err := m.Moderate(ctx, "hello", nil)
	gt.True(t, errors.Is(err, failure))
}

func TestModerationCallsClassifierOncePerInput(t *testing.T) {
	ctx := context.Background()
	var textCalls, imageCalls atomic.Int32

	client := &mocks.ContentSafetyClientMock{
		AnalyzeTextFunc: func(ctx context.Context, text string) ([]model.CategoryScore, error) {
			textCalls.Add(1)
			return []model.CategoryScore{{Name: "Hate", Severity: 0}}, nil
		},
		AnalyzeImageFunc: func(ctx context.Context, image []byte) ([]model.CategoryScore, error) {
			imageCalls.Add(1)
			return []model.CategoryScore{{Name: "Sexual", Severity: 0}}, nil
		},
	}
	m := usecase.NewModeration(safety.NewClassifier(client), testThresholds)

	verdict, err := m.Moderate(ctx, "   ", nil)
	gt.NoError(t, err).Required()
	gt.Equal(t, verdict.Decision, types.DecisionPublished)
	gt.Equal(t, textCalls.Load(), int32(0))
	gt.Equal(t, imageCalls.Load(), int32(0))

	_, err = m.Moderate(ctx, "hello", [][]byte{[]byte("a"), []byte("b"), []byte("c")})
	gt.NoError(t, err).Required()
	gt.Equal(t, textCalls.Load(), int32(1))
	gt.Equal(t, imageCalls.Load(), int32(3))
}

func TestModerationModerateOrContinue(t *testing.T) {
	ctx := context.Background()
	failing := func(err error) *mocks.ClassifierMock {
		c := fixedClassifier(0)
		c.AnalyzeTextFunc = func(ctx context.Context, s string) (model.SeverityResult, error) {
			return model.SeverityResult{}, err
		}
		return c
	}
	classificationErr := goerr.New("service down", goerr.T(model.ErrTagClassificationFailure))

	t.Run("continue policy swallows classification failure", func(t *testing.T) {
		m := usecase.NewModeration(failing(classificationErr), testThresholds)
		verdict, err := m.ModerateOrContinue(ctx, "text", usecase.ContinueOnClassificationFailure)
		gt.NoError(t, err)
		gt.V(t, verdict).Nil()
	})

	t.Run("fail policy returns classification failure", func(t *testing.T) {
		m := usecase.NewModeration(failing(classificationErr), testThresholds)
		verdict, err := m.ModerateOrContinue(ctx, "text", usecase.FailOnClassificationFailure)
		gt.V(t, verdict).Nil()
		gt.True(t, errors.Is(err, classificationErr))
	})

	t.Run("continue policy does not swallow other errors", func(t *testing.T) {
		other := errors.New("unexpected")
		m := usecase.NewModeration(failing(other), testThresholds)
		_, err := m.ModerateOrContinue(ctx, "text", usecase.ContinueOnClassificationFailure)
		gt.True(t, errors.Is(err, other))
	})

	t.Run("successful moderation returns verdict", func(t *testing.T) {
		m := usecase.NewModeration(fixedClassifier(7), testThresholds)
		verdict, err := m.ModerateOrContinue(ctx, "text", usecase.ContinueOnClassificationFailure)
		gt.NoError(t, err).Required()
		gt.Equal(t, verdict.Decision, types.DecisionBlocked)
	})
}
