package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/osintkit/pkg/cli/config"
	controller "github.com/m-mizutani/osintkit/pkg/controller/http"
	"github.com/m-mizutani/osintkit/pkg/utils/errs"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg    config.Server
		providerCfg  config.Provider
		githubCfg    config.GitHub
		numlookupCfg config.NumLookup
	)

	flags := append(serverCfg.Flags(), providerCfg.Flags()...)
	flags = append(flags, githubCfg.Flags()...)
	flags = append(flags, numlookupCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server with the report form and JSON API",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting osintkit server",
				slog.String("addr", serverCfg.Addr),
				slog.Any("github", githubCfg),
				slog.Any("numlookup", numlookupCfg),
				slog.Duration("provider_timeout", providerCfg.Timeout),
			)

			repoUC, err := newRepositoryUseCase(ctx, githubCfg, providerCfg)
			if err != nil {
				return err
			}
			phoneUC := newPhoneUseCase(numlookupCfg, providerCfg)

			server, err := controller.NewServer(
				ctx,
				repoUC,
				phoneUC,
				controller.WithAddr(serverCfg.Addr),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errs.Handle(ctx, goerr.Wrap(err, "HTTP server error", goerr.V("addr", serverCfg.Addr)))
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
