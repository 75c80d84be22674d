package async

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"
)

// ErrPanic is wrapped by errors produced from a recovered panic
var ErrPanic = goerr.New("panic recovered")

// Recover runs handler in the current goroutine and converts a panic into an
// error wrapping ErrPanic. The panic value and stack are logged.
func Recover(ctx context.Context, handler func(ctx context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			ctxlog.From(ctx).Error("panic in handler",
				"recover", r,
				"stack", string(stack))
			err = goerr.Wrap(ErrPanic, fmt.Sprint(r))
		}
	}()

	return handler(ctx)
}

// Gather runs every handler concurrently and waits for all of them to
// finish, even when one fails. Handlers share ctx; a failing handler does not
// cancel its siblings. The first error (including recovered panics) is
// returned.
func Gather(ctx context.Context, handlers ...func(ctx context.Context) error) error {
	var eg errgroup.Group
	for _, handler := range handlers {
		eg.Go(func() error {
			return Recover(ctx, handler)
		})
	}
	return eg.Wait()
}
