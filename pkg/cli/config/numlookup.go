package config

import (
	"github.com/m-mizutani/osintkit/pkg/infra/numlookup"
	"github.com/urfave/cli/v3"
)

// NumLookup holds the remote phone validation API configuration
type NumLookup struct {
	APIKey  string `masq:"secret"`
	BaseURL string
}

// Flags returns CLI flags for NumLookup configuration
func (c *NumLookup) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "numlookup-api-key",
			Usage:       "NumLookup API key. Remote phone fields are N/A without it",
			Destination: &c.APIKey,
			Sources:     cli.EnvVars("OSINTKIT_NUMLOOKUP_API_KEY", "NUMLOOKUP_API_KEY"),
		},
		&cli.StringFlag{
			Name:        "numlookup-base-url",
			Usage:       "NumLookup API base URL",
			Value:       numlookup.DefaultBaseURL,
			Destination: &c.BaseURL,
			Sources:     cli.EnvVars("OSINTKIT_NUMLOOKUP_BASE_URL"),
		},
	}
}

// NewClient builds the NumLookup client. A missing key is not an error here.
func (c *NumLookup) NewClient(provider Provider) *numlookup.Client {
	return numlookup.NewClient(c.APIKey,
		numlookup.WithBaseURL(c.BaseURL),
		numlookup.WithTimeout(provider.Timeout),
	)
}
