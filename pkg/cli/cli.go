package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/osintkit/pkg/cli/config"
	"github.com/m-mizutani/osintkit/pkg/domain/types"
	"github.com/m-mizutani/osintkit/pkg/utils/errs"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	var (
		loggerCfg config.Logger
		sentryCfg config.Sentry
		flush     = func() {}
	)

	app := &cli.Command{
		Name:    "osintkit",
		Usage:   "OSINT report builder for GitHub repositories and phone numbers",
		Version: types.Version,
		Flags:   append(loggerCfg.Flags(), sentryCfg.Flags()...),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, err := loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)

			sentryFlush, err := sentryCfg.Configure()
			if err != nil {
				return nil, err
			}
			flush = sentryFlush
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdServe(),
			cmdRepo(),
			cmdPhone(),
		},
	}

	defer func() { flush() }()

	if err := app.Run(ctx, args); err != nil {
		errs.Handle(ctx, err)
		return err
	}

	return nil
}
