package safety

import (
	"context"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/postwave/postwave/pkg/domain/interfaces"
	"github.com/postwave/postwave/pkg/domain/model"
	"github.com/postwave/postwave/pkg/service/metrics"
	"golang.org/x/sync/errgroup"
)

// DefaultTimeout bounds a single content safety call
const DefaultTimeout = 10 * time.Second

// Classifier turns raw content safety output into severity results. It
// makes one call per non-empty text and one call per image.
type Classifier struct {
	client  interfaces.ContentSafetyClient
	timeout time.Duration
}

var _ interfaces.Classifier = (*Classifier)(nil)

// Option configures Classifier
type Option func(*Classifier)

// WithTimeout sets the per-call timeout. Zero or negative disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Classifier) {
		c.timeout = d
	}
}

// NewClassifier creates a Classifier over the content safety client
func NewClassifier(client interfaces.ContentSafetyClient, opts ...Option) *Classifier {
	c := &Classifier{
		client:  client,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AnalyzeText classifies the text. Empty or whitespace-only text yields a
// zero result without calling the service.
func (c *Classifier) AnalyzeText(ctx context.Context, text string) (model.SeverityResult, error) {
	if strings.TrimSpace(text) == "" {
		return model.NewSeverityResult(nil), nil
	}

	callCtx, cancel := c.withTimeout(ctx)
	defer cancel()

	started := time.Now()
	scores, err := c.client.AnalyzeText(callCtx, text)
	metrics.ObserveClassification(metrics.TargetText, started, err)
	if err != nil {
		return model.SeverityResult{}, classificationError(err, "failed to analyze text",
			goerr.V("text_length", len(text)))
	}

	result := model.NewSeverityResult(scores)
	ctxlog.From(ctx).Debug("text classified",
		"max_severity", result.MaxSeverity,
		"categories", len(result.Categories),
	)
	return result, nil
}

// AnalyzeImages classifies every image concurrently. Per-image results keep
// the input order. The first failure cancels the remaining calls.
func (c *Classifier) AnalyzeImages(ctx context.Context, images [][]byte) (model.ImageSeverityResult, error) {
	if len(images) == 0 {
		return model.NewImageSeverityResult(nil), nil
	}

	results := make([]model.SeverityResult, len(images))
	eg, egCtx := errgroup.WithContext(ctx)

	for i, img := range images {
		eg.Go(func() error {
			callCtx, cancel := c.withTimeout(egCtx)
			defer cancel()

			started := time.Now()
			scores, err := c.client.AnalyzeImage(callCtx, img)
			metrics.ObserveClassification(metrics.TargetImage, started, err)
			if err != nil {
				return classificationError(err, "failed to analyze image",
					goerr.V("index", i),
					goerr.V("size", len(img)))
			}

			results[i] = model.NewSeverityResult(scores)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return model.ImageSeverityResult{}, err
	}

	result := model.NewImageSeverityResult(results)
	ctxlog.From(ctx).Debug("images classified",
		"count", len(images),
		"max_severity", result.MaxSeverity,
	)
	return result, nil
}

func (c *Classifier) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

// classificationError wraps err so that it always carries the
// classification failure tag
func classificationError(err error, msg string, opts ...goerr.Option) error {
	opts = append(opts, goerr.T(model.ErrTagClassificationFailure))
	return goerr.Wrap(err, msg, opts...)
}
