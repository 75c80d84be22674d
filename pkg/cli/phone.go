package cli

import (
	"context"

	"github.com/m-mizutani/osintkit/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

func cmdPhone() *cli.Command {
	var (
		outputCfg    config.Output
		providerCfg  config.Provider
		numlookupCfg config.NumLookup
		region       string
	)

	flags := append(outputCfg.Flags(), providerCfg.Flags()...)
	flags = append(flags, numlookupCfg.Flags()...)
	flags = append(flags, &cli.StringFlag{
		Name:        "region",
		Usage:       "Default region (ISO 3166 code) for numbers without a + prefix",
		Destination: &region,
		Sources:     cli.EnvVars("OSINTKIT_PHONE_REGION"),
	})

	return &cli.Command{
		Name:      "phone",
		Aliases:   []string{"p"},
		Usage:     "Build an OSINT report for a phone number",
		ArgsUsage: "[number]",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			renderer, err := outputCfg.NewRenderer(c.Root().Writer)
			if err != nil {
				return err
			}

			raw := c.Args().First()
			if raw == "" {
				if raw, err = promptPhone(c.Root().Reader, c.Root().Writer); err != nil {
					return err
				}
			}

			return runPhoneReport(ctx, newPhoneUseCase(numlookupCfg, providerCfg), renderer, raw, region)
		},
	}
}
