package errs

import (
	"context"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/ctxlog"
)

// Handle logs err and reports it to Sentry. Without a configured Sentry
// client the capture is a no-op.
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}

	logger := ctxlog.From(ctx)

	hub := sentry.CurrentHub().Clone()
	evID := hub.CaptureException(err)

	if evID != nil {
		logger.Error(err.Error(), "error", err, "sentry_event_id", string(*evID))
		return
	}
	logger.Error(err.Error(), "error", err)
}
