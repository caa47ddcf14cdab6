// Package apperr reports errors that cannot be returned to a caller
package apperr

import (
	"context"
	"errors"

	"github.com/m-mizutani/ctxlog"
)

// Handle logs an unexpected error. Errors caused by a cancelled request are
// logged at warn level since the client went away.
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}

	logger := ctxlog.From(ctx)
	if errors.Is(err, context.Canceled) {
		logger.Warn("request cancelled", "error", err)
		return
	}
	logger.Error("application error", "error", err)
}
