package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/osintkit/pkg/controller/view"
	"github.com/m-mizutani/osintkit/pkg/domain/model"
	"github.com/m-mizutani/osintkit/pkg/domain/types"
)

//go:embed templates/*.html
var templateFS embed.FS

type pageRenderer struct {
	index *template.Template
}

func newPageRenderer() (*pageRenderer, error) {
	index, err := template.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse page template")
	}
	return &pageRenderer{index: index}, nil
}

// pageForm describes the input form of one domain page
type pageForm struct {
	Action      string
	InputName   string
	Placeholder string
	Value       string
	WithRegion  bool
	Region      string
}

type pageRow struct {
	Label       string
	Text        string
	List        []string
	IsList      bool
	Unavailable bool
}

type pageReport struct {
	Summary    string
	SourceLink string
	Rows       []pageRow
}

type pageData struct {
	Title  string
	Form   pageForm
	Error  string
	Report *pageReport
}

func newPageData(domain types.Domain, form pageForm, report *model.Report, rawErr string) *pageData {
	data := &pageData{
		Title: view.Title(domain),
		Form:  form,
		Error: rawErr,
	}
	if rawErr != "" || report == nil {
		return data
	}
	if report.Failed() {
		data.Error = report.Error
		return data
	}

	pr := &pageReport{
		Summary:    report.Summary,
		SourceLink: report.SourceLink,
	}
	for _, e := range report.Entries() {
		row := pageRow{
			Label:       e.Label,
			Text:        e.Text(),
			Unavailable: e.State == model.FieldUnavailable,
		}
		if list, ok := e.List(); ok && e.State == model.FieldPresent {
			row.List = list
			row.IsList = true
		}
		pr.Rows = append(pr.Rows, row)
	}
	data.Report = pr
	return data
}

func (p *pageRenderer) render(w http.ResponseWriter, r *http.Request, data *pageData) {
	var buf bytes.Buffer
	if err := p.index.Execute(&buf, data); err != nil {
		ctxlog.From(r.Context()).Error("Failed to render page", "error", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		ctxlog.From(r.Context()).Error("Failed to write page", "error", err)
	}
}
