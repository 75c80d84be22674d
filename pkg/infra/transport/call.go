package transport

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/osintkit/pkg/domain/model"
	"github.com/m-mizutani/osintkit/pkg/domain/types"
	"github.com/m-mizutani/osintkit/pkg/utils/async"
)

// DefaultTimeout bounds a provider call when no timeout is configured
const DefaultTimeout = 10 * time.Second

type outcome[T any] struct {
	payload T
	err     error
}

// Call is the provider client boundary. It runs fetch under timeout, turns
// panics and errors into a Failure and never lets either reach the caller.
// If fetch ignores ctx, Call still returns once the timeout expires and the
// late result is discarded.
func Call[T any](ctx context.Context, provider string, timeout time.Duration, fetch func(ctx context.Context) (T, error)) model.Result[T] {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	logger := ctxlog.From(ctx).With("provider", provider)
	started := time.Now()

	done := make(chan outcome[T], 1)
	go func() {
		var o outcome[T]
		o.err = async.Recover(ctx, func(ctx context.Context) error {
			var err error
			o.payload, err = fetch(ctx)
			return err
		})
		done <- o
	}()

	var o outcome[T]
	select {
	case o = <-done:
	case <-ctx.Done():
		o.err = ctx.Err()
	}

	if o.err != nil {
		perr := Classify(provider, o.err)
		logger.Warn("provider call failed",
			"kind", perr.Kind,
			"error", o.err,
			"duration_ms", time.Since(started).Milliseconds(),
		)
		return model.Failure[T](perr)
	}

	logger.Debug("provider call succeeded", "duration_ms", time.Since(started).Milliseconds())
	return model.Success(o.payload)
}

// Classify maps an error from a provider call to a ProviderError. A
// ProviderError already in the chain is returned as is.
func Classify(provider string, err error) *model.ProviderError {
	var perr *model.ProviderError
	if errors.As(err, &perr) {
		return perr
	}

	var (
		netErr    net.Error
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)

	switch {
	case errors.Is(err, async.ErrPanic):
		return model.NewProviderError(types.ErrorKindProviderPanicked, provider, err)
	case errors.Is(err, context.DeadlineExceeded):
		return model.NewProviderError(types.ErrorKindTimeout, provider, err)
	case errors.As(err, &netErr) && netErr.Timeout():
		return model.NewProviderError(types.ErrorKindTimeout, provider, err)
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr), errors.Is(err, io.ErrUnexpectedEOF):
		return model.NewProviderError(types.ErrorKindMalformedPayload, provider, err)
	default:
		return model.NewProviderError(types.ErrorKindUnreachable, provider, err)
	}
}
