package config

import (
	"context"

	"github.com/m-mizutani/osintkit/pkg/infra/github"
	"github.com/urfave/cli/v3"
)

// GitHub holds GitHub API configuration
type GitHub struct {
	Token   string `masq:"secret"`
	BaseURL string
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub API token (optional, raises the rate limit)",
			Destination: &c.Token,
			Sources:     cli.EnvVars("OSINTKIT_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "github-base-url",
			Usage:       "GitHub API base URL, for GitHub Enterprise",
			Destination: &c.BaseURL,
			Sources:     cli.EnvVars("OSINTKIT_GITHUB_BASE_URL"),
		},
	}
}

// NewClient builds the GitHub client used by the repository providers
func (c *GitHub) NewClient(ctx context.Context, provider Provider) (*github.Client, error) {
	opts := []github.Option{
		github.WithTimeout(provider.Timeout),
	}
	if c.BaseURL != "" {
		opts = append(opts, github.WithBaseURL(c.BaseURL))
	}
	return github.NewClient(ctx, c.Token, opts...)
}
