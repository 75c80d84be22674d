package terminal

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/osintkit/pkg/controller/view"
	"github.com/m-mizutani/osintkit/pkg/domain/model"
	"github.com/m-mizutani/osintkit/pkg/domain/types"
	"github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
)

// Format selects how a report is written to the terminal
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatTOML  Format = "toml"
)

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatTable, FormatJSON, FormatTOML:
		return f, nil
	default:
		return "", goerr.New("unknown output format", goerr.V("format", s))
	}
}

// Renderer writes reports to a terminal or any other writer
type Renderer struct {
	w      io.Writer
	format Format
}

func NewRenderer(w io.Writer, format Format) *Renderer {
	return &Renderer{w: w, format: format}
}

// Render writes the report. rawErr is an error raised before aggregation,
// e.g. a malformed subject; report may be nil in that case.
func (r *Renderer) Render(domain types.Domain, report *model.Report, rawErr string) error {
	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(view.NewDocument(report, rawErr)); err != nil {
			return goerr.Wrap(err, "failed to encode report as JSON")
		}
		return nil

	case FormatTOML:
		data, err := toml.Marshal(view.NewDocument(report, rawErr).WithoutNulls())
		if err != nil {
			return goerr.Wrap(err, "failed to encode report as TOML")
		}
		if _, err := r.w.Write(data); err != nil {
			return goerr.Wrap(err, "failed to write report")
		}
		return nil

	default:
		return r.renderTable(domain, report, rawErr)
	}
}

func (r *Renderer) renderTable(domain types.Domain, report *model.Report, rawErr string) error {
	title := color.New(color.FgCyan, color.Bold)

	errMsg := rawErr
	if errMsg == "" && report != nil && report.Failed() {
		errMsg = report.Error
	}
	if errMsg != "" || report == nil {
		if errMsg == "" {
			errMsg = "no report"
		}
		_, err := fmt.Fprintln(r.w, color.RedString(errMsg))
		return err
	}

	data := pterm.TableData{{"Category", "Details"}}
	for _, e := range report.Entries() {
		data = append(data, []string{e.Label, cellText(e)})
	}

	table, err := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithRowSeparator("-").
		WithData(data).
		Srender()
	if err != nil {
		return goerr.Wrap(err, "failed to render report table")
	}

	heading := "Report for: " + report.Summary
	if report.SourceLink != "" {
		heading += " (" + report.SourceLink + ")"
	}

	if _, err := fmt.Fprintf(r.w, "%s\n%s\n%s\n", title.Sprint(view.Title(domain)), heading, table); err != nil {
		return goerr.Wrap(err, "failed to write report")
	}
	return nil
}

func cellText(e model.Entry) string {
	switch e.State {
	case model.FieldUnavailable:
		return color.YellowString(e.Text())
	case model.FieldAbsent:
		return e.Text()
	}

	list, ok := e.List()
	if !ok {
		return e.Text()
	}
	if len(list) == 0 {
		return "(none)"
	}
	lines := make([]string, len(list))
	for i, item := range list {
		lines[i] = "- " + item
	}
	return strings.Join(lines, "\n")
}
