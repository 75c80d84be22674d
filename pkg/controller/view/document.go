// Package view converts a report into the shapes presentation adapters
// encode. It only formats; nothing here derives new data.
package view

import (
	"strings"

	"github.com/m-mizutani/osintkit/pkg/domain/model"
	"github.com/m-mizutani/osintkit/pkg/domain/types"
)

// UnavailableValue is how an Unavailable field is encoded in documents
const UnavailableValue = "N/A"

// Document is the structured (JSON / TOML) form of a report. A failed
// report, or a request rejected before aggregation, carries only Error.
type Document struct {
	Subject     string               `json:"subject,omitempty" toml:"subject,omitempty"`
	SourceLink  string               `json:"source_link,omitempty" toml:"source_link,omitempty"`
	Error       string               `json:"error,omitempty" toml:"error,omitempty"`
	Fields      map[string]any       `json:"fields,omitempty" toml:"fields,omitempty"`
	Unavailable []string             `json:"unavailable,omitempty" toml:"unavailable,omitempty"`
	Sources     []model.SourceStatus `json:"sources,omitempty" toml:"sources,omitempty"`
}

// NewDocument builds a Document. rawErr takes precedence over the report and
// report may be nil when rawErr is set. Absent fields are encoded as nil.
func NewDocument(report *model.Report, rawErr string) *Document {
	if rawErr != "" {
		return &Document{Error: rawErr}
	}
	if report == nil {
		return &Document{}
	}
	if report.Failed() {
		return &Document{Error: report.Error}
	}

	doc := &Document{
		Subject:    report.Summary,
		SourceLink: report.SourceLink,
		Fields:     map[string]any{},
		Sources:    report.Sources,
	}
	for _, e := range report.Entries() {
		switch e.State {
		case model.FieldUnavailable:
			doc.Fields[e.Key] = UnavailableValue
			doc.Unavailable = append(doc.Unavailable, e.Key)
		case model.FieldAbsent:
			doc.Fields[e.Key] = nil
		default:
			doc.Fields[e.Key] = e.Value
		}
	}
	return doc
}

// WithoutNulls returns a copy of the document without nil field values, for
// encodings that cannot represent null
func (d *Document) WithoutNulls() *Document {
	out := *d
	if d.Fields == nil {
		return &out
	}
	out.Fields = make(map[string]any, len(d.Fields))
	for k, v := range d.Fields {
		if v != nil {
			out.Fields[k] = v
		}
	}
	return &out
}

// Title is the heading used for a report of the given domain
func Title(domain types.Domain) string {
	if domain == types.DomainPhone {
		return "Phone Number OSINT Report"
	}
	return "GitHub Repo OSINT Report"
}

// InvalidInput is the user facing text for a subject rejected by the parser
func InvalidInput(err error) string {
	return "Invalid input: " + strings.TrimSuffix(err.Error(), ": "+model.ErrMalformedSubject.Error())
}
