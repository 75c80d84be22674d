package config

import (
	"time"

	"github.com/m-mizutani/osintkit/pkg/infra/transport"
	"github.com/urfave/cli/v3"
)

// Provider holds settings shared by every provider call
type Provider struct {
	Timeout time.Duration
}

// Flags returns CLI flags for provider configuration
func (c *Provider) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.DurationFlag{
			Name:        "provider-timeout",
			Usage:       "Timeout of a single provider call",
			Value:       transport.DefaultTimeout,
			Destination: &c.Timeout,
			Sources:     cli.EnvVars("OSINTKIT_PROVIDER_TIMEOUT"),
		},
	}
}
