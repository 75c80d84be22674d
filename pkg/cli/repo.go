package cli

import (
	"context"

	"github.com/m-mizutani/osintkit/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

func cmdRepo() *cli.Command {
	var (
		outputCfg   config.Output
		providerCfg config.Provider
		githubCfg   config.GitHub
	)

	flags := append(outputCfg.Flags(), providerCfg.Flags()...)
	flags = append(flags, githubCfg.Flags()...)

	return &cli.Command{
		Name:      "repo",
		Aliases:   []string{"r"},
		Usage:     "Build an OSINT report for a GitHub repository",
		ArgsUsage: "<owner/name>",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			renderer, err := outputCfg.NewRenderer(c.Root().Writer)
			if err != nil {
				return err
			}

			uc, err := newRepositoryUseCase(ctx, githubCfg, providerCfg)
			if err != nil {
				return err
			}

			return runRepositoryReport(ctx, uc, renderer, c.Args().First())
		},
	}
}
