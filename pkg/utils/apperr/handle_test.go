package apperr_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/postwave/postwave/pkg/utils/apperr"
)

func TestHandle(t *testing.T) {
	var buf bytes.Buffer
	ctx := ctxlog.With(context.Background(), slog.New(slog.NewTextHandler(&buf, nil)))

	apperr.Handle(ctx, goerr.New("disk full"))
	gt.S(t, buf.String()).Contains("level=ERROR")
	gt.S(t, buf.String()).Contains("disk full")

	buf.Reset()
	apperr.Handle(ctx, goerr.Wrap(context.Canceled, "failed to list posts"))
	gt.S(t, buf.String()).Contains("level=WARN")

	buf.Reset()
	apperr.Handle(ctx, nil)
	gt.Equal(t, buf.Len(), 0)
}
