package config

import (
	"io"

	"github.com/m-mizutani/osintkit/pkg/controller/terminal"
	"github.com/urfave/cli/v3"
)

// Output holds terminal report configuration
type Output struct {
	Format string
}

// Flags returns CLI flags for output configuration
func (c *Output) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "format",
			Aliases:     []string{"f"},
			Usage:       "Report format (table, json, toml)",
			Value:       string(terminal.FormatTable),
			Destination: &c.Format,
			Sources:     cli.EnvVars("OSINTKIT_FORMAT"),
		},
	}
}

// NewRenderer validates the format and builds a renderer writing to w
func (c *Output) NewRenderer(w io.Writer) (*terminal.Renderer, error) {
	format, err := terminal.ParseFormat(c.Format)
	if err != nil {
		return nil, err
	}
	return terminal.NewRenderer(w, format), nil
}
