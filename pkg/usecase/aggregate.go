package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/osintkit/pkg/domain/interfaces"
	"github.com/m-mizutani/osintkit/pkg/domain/model"
	"github.com/m-mizutani/osintkit/pkg/domain/types"
	"github.com/m-mizutani/osintkit/pkg/utils/async"
)

// withRun attaches a fresh run ID to the context logger. The ID is for log
// correlation only and never enters the report.
func withRun(ctx context.Context, subject model.Subject) (context.Context, *slog.Logger) {
	logger := ctxlog.From(ctx).With(
		"run_id", uuid.NewString(),
		"domain", subject.Domain(),
		"subject", subject.String(),
	)
	return ctxlog.With(ctx, logger), logger
}

// fetch calls a provider and guarantees a Result even if the provider breaks
// its contract by panicking.
func fetch[S model.Subject, T any](ctx context.Context, p interfaces.Provider[S, T], subject S) (result model.Result[T]) {
	err := async.Recover(ctx, func(ctx context.Context) error {
		result = p.Fetch(ctx, subject)
		return nil
	})
	if err != nil {
		result = model.Failure[T](model.NewProviderError(types.ErrorKindProviderPanicked, p.Name(), err))
	}
	return result
}

func sourceStatus[T any](provider string, result model.Result[T]) model.SourceStatus {
	if err := result.Err(); err != nil {
		return model.SourceStatus{Provider: provider, Kind: err.Kind}
	}
	return model.SourceStatus{Provider: provider, OK: true}
}

// failedReport logs a primary provider failure and builds the short-circuit report
func failedReport(logger *slog.Logger, domain types.Domain, err *model.ProviderError) *model.Report {
	logger.Warn("Primary provider failed, skipping secondary providers",
		"provider", err.Provider,
		"kind", err.Kind,
		"error", err,
	)
	return model.NewFailedReport(domain, err.Reason())
}
