package safety_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/postwave/postwave/pkg/domain/interfaces/mocks"
	"github.com/postwave/postwave/pkg/domain/model"
	"github.com/postwave/postwave/pkg/service/safety"
)

func TestClassifierAnalyzeTextShortCircuit(t *testing.T) {
	client := &mocks.ContentSafetyClientMock{
		AnalyzeTextFunc: func(ctx context.Context, text string) ([]model.CategoryScore, error) {
			return []model.CategoryScore{{Name: "Hate", Severity: 6}}, nil
		},
	}
	classifier := safety.NewClassifier(client)

	for _, text := range []string{"", "   ", "\n\t "} {
		result, err := classifier.AnalyzeText(context.Background(), text)
		gt.NoError(t, err).Required()
		gt.Equal(t, result.MaxSeverity, 0)
		gt.Equal(t, len(result.Categories), 0)
	}

	gt.Equal(t, len(client.AnalyzeTextCalls()), 0)
}

func TestClassifierAnalyzeText(t *testing.T) {
	client := &mocks.ContentSafetyClientMock{
		AnalyzeTextFunc: func(ctx context.Context, text string) ([]model.CategoryScore, error) {
			return []model.CategoryScore{
				{Name: "Hate", Severity: 2},
				{Name: "Violence", Severity: 4},
				{Name: "Spam", Severity: 6},
			}, nil
		},
	}
	classifier := safety.NewClassifier(client)

	result, err := classifier.AnalyzeText(context.Background(), "some text")
	gt.NoError(t, err).Required()
	gt.Equal(t, result.MaxSeverity, 6)
	gt.Equal(t, result.Categories[model.CategoryHate], 2)
	gt.Equal(t, result.Categories[model.CategoryViolence], 4)
	gt.Equal(t, result.Categories[model.CategoryUnrecognized], 6)

	_, reported := result.Severity(model.CategorySexual)
	gt.False(t, reported)

	calls := client.AnalyzeTextCalls()
	gt.Equal(t, len(calls), 1)
	gt.Equal(t, calls[0].Text, "some text")
}

func TestClassifierAnalyzeTextFailure(t *testing.T) {
	cause := errors.New("connection refused")
	client := &mocks.ContentSafetyClientMock{
		AnalyzeTextFunc: func(ctx context.Context, text string) ([]model.CategoryScore, error) {
			return nil, cause
		},
	}
	classifier := safety.NewClassifier(client)

	_, err := classifier.AnalyzeText(context.Background(), "hello")
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, model.ErrTagClassificationFailure))
	gt.True(t, errors.Is(err, cause))
	gt.Equal(t, len(client.AnalyzeTextCalls()), 1)
}

func TestClassifierAnalyzeImagesEmpty(t *testing.T) {
	client := &mocks.ContentSafetyClientMock{}
	classifier := safety.NewClassifier(client)

	result, err := classifier.AnalyzeImages(context.Background(), nil)
	gt.NoError(t, err).Required()
	gt.Equal(t, result.MaxSeverity, 0)
	gt.Equal(t, len(result.PerImage), 0)

	result, err = classifier.AnalyzeImages(context.Background(), [][]byte{})
	gt.NoError(t, err).Required()
	gt.Equal(t, len(result.PerImage), 0)

	gt.Equal(t, len(client.AnalyzeImageCalls()), 0)
}

func TestClassifierAnalyzeImagesKeepsOrder(t *testing.T) {
	severities := map[string]int{"first": 0, "second": 6, "third": 2}
	delays := map[string]time.Duration{"first": 30 * time.Millisecond, "second": 0, "third": 10 * time.Millisecond}

	client := &mocks.ContentSafetyClientMock{
		AnalyzeImageFunc: func(ctx context.Context, image []byte) ([]model.CategoryScore, error) {
			time.Sleep(delays[string(image)])
			return []model.CategoryScore{{Name: "Sexual", Severity: severities[string(image)]}}, nil
		},
	}
	classifier := safety.NewClassifier(client)

	result, err := classifier.AnalyzeImages(context.Background(), [][]byte{
		[]byte("first"), []byte("second"), []byte("third"),
	})
	gt.NoError(t, err).Required()
	gt.Equal(t, result.MaxSeverity, 6)
	gt.Equal(t, len(result.PerImage), 3)
	gt.Equal(t, result.PerImage[0].Index, 0)
	gt.Equal(t, result.PerImage[0].MaxSeverity, 0)
	gt.Equal(t, result.PerImage[1].MaxSeverity, 6)
	gt.Equal(t, result.PerImage[2].Index, 2)
	gt.Equal(t, result.PerImage[2].MaxSeverity, 2)

	gt.Equal(t, len(client.AnalyzeImageCalls()), 3)
}

func TestClassifierAnalyzeImagesFailure(t *testing.T) {
	cause := errors.New("bad gateway")
	client := &mocks.ContentSafetyClientMock{
		AnalyzeImageFunc: func(ctx context.Context, image []byte) ([]model.CategoryScore, error) {
			if string(image) == "broken" {
				return nil, cause
			}
			return []model.CategoryScore{{Name: "Hate", Severity: 0}}, nil
		},
	}
	classifier := safety.NewClassifier(client)

	_, err := classifier.AnalyzeImages(context.Background(), [][]byte{[]byte("ok"), []byte("broken")})
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, model.ErrTagClassificationFailure))
	gt.True(t, errors.Is(err, cause))
	gt.Equal(t, goerr.Values(err)["index"], any(1))
}

func TestClassifierTimeout(t *testing.T) {
	client := &mocks.ContentSafetyClientMock{
		AnalyzeTextFunc: func(ctx context.Context, text string) ([]model.CategoryScore, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}
	classifier := safety.NewClassifier(client, safety.WithTimeout(20*time.Millisecond))

	started := time.Now()
	_, err := classifier.AnalyzeText(context.Background(), "slow")
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, model.ErrTagClassificationFailure))
	gt.True(t, errors.Is(err, context.DeadlineExceeded))
	gt.True(t, time.Since(started) < 5*time.Second)
}

func TestClassifierCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := &mocks.ContentSafetyClientMock{
		AnalyzeImageFunc: func(ctx context.Context, image []byte) ([]model.CategoryScore, error) {
			return nil, ctx.Err()
		},
	}
	classifier := safety.NewClassifier(client)

	_, err := classifier.AnalyzeImages(ctx, [][]byte{[]byte("a")})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, context.Canceled))
	gt.True(t, goerr.HasTag(err, model.ErrTagClassificationFailure))
}
