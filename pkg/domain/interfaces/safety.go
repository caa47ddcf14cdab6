package interfaces

//go:generate moq -out mocks/safety_mock.go -pkg mocks . ContentSafetyClient Classifier

import (
	"context"

	"github.com/postwave/postwave/pkg/domain/model"
)

// ContentSafetyClient performs a single classification call against the
// external content safety service
type ContentSafetyClient interface {
	AnalyzeText(ctx context.Context, text string) ([]model.CategoryScore, error)
	AnalyzeImage(ctx context.Context, image []byte) ([]model.CategoryScore, error)
}

// Classifier normalizes content safety results into severities.
// Errors carry model.ErrTagClassificationFailure.
type Classifier interface {
	AnalyzeText(ctx context.Context, text string) (model.SeverityResult, error)
	AnalyzeImages(ctx context.Context, images [][]byte) (model.ImageSeverityResult, error)
}
