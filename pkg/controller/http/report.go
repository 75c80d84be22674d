package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/osintkit/pkg/controller/view"
	"github.com/m-mizutani/osintkit/pkg/domain/interfaces"
	"github.com/m-mizutani/osintkit/pkg/domain/model"
	"github.com/m-mizutani/osintkit/pkg/domain/types"
)

type reportHandler struct {
	repoUC  interfaces.RepositoryReportUseCase
	phoneUC interfaces.PhoneReportUseCase
	pages   *pageRenderer
}

func (h *reportHandler) repositoryPage(w http.ResponseWriter, r *http.Request) {
	form := pageForm{
		Action:      "/",
		InputName:   "repo_name",
		Placeholder: "owner/repo",
	}

	if r.Method != http.MethodPost {
		h.pages.render(w, r, newPageData(types.DomainRepository, form, nil, ""))
		return
	}

	form.Value = strings.TrimSpace(r.PostFormValue("repo_name"))
	subject, err := model.ParseRepositorySubject(form.Value)
	if err != nil {
		ctxlog.From(r.Context()).Info("Rejected repository subject", "error", err)
		h.pages.render(w, r, newPageData(types.DomainRepository, form, nil, view.InvalidInput(err)))
		return
	}

	report := h.repoUC.BuildReport(r.Context(), subject)
	h.pages.render(w, r, newPageData(types.DomainRepository, form, report, ""))
}

func (h *reportHandler) phonePage(w http.ResponseWriter, r *http.Request) {
	form := pageForm{
		Action:      "/phone",
		InputName:   "phone",
		Placeholder: "+14155552671",
		WithRegion:  true,
	}

	if r.Method != http.MethodPost {
		h.pages.render(w, r, newPageData(types.DomainPhone, form, nil, ""))
		return
	}

	form.Value = strings.TrimSpace(r.PostFormValue("phone"))
	form.Region = strings.TrimSpace(r.PostFormValue("region"))
	subject, err := model.ParsePhoneSubject(form.Value, form.Region)
	if err != nil {
		ctxlog.From(r.Context()).Info("Rejected phone subject", "error", err)
		h.pages.render(w, r, newPageData(types.DomainPhone, form, nil, view.InvalidInput(err)))
		return
	}

	report := h.phoneUC.BuildReport(r.Context(), subject)
	h.pages.render(w, r, newPageData(types.DomainPhone, form, report, ""))
}

func (h *reportHandler) repositoryAPI(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "owner") + "/" + chi.URLParam(r, "name")
	subject, err := model.ParseRepositorySubject(raw)
	if err != nil {
		ctxlog.From(r.Context()).Info("Rejected API subject", "error", err)
		writeError(w, r, view.InvalidInput(err), http.StatusBadRequest)
		return
	}

	writeReport(w, r, h.repoUC.BuildReport(r.Context(), subject))
}

func (h *reportHandler) phoneAPI(w http.ResponseWriter, r *http.Request) {
	subject, err := model.ParsePhoneSubject(chi.URLParam(r, "number"), r.URL.Query().Get("region"))
	if err != nil {
		ctxlog.From(r.Context()).Info("Rejected API subject", "error", err)
		writeError(w, r, view.InvalidInput(err), http.StatusBadRequest)
		return
	}

	writeReport(w, r, h.phoneUC.BuildReport(r.Context(), subject))
}

// writeReport answers 502 when the primary source failed, 200 otherwise
func writeReport(w http.ResponseWriter, r *http.Request, report *model.Report) {
	status := http.StatusOK
	if report.Failed() {
		status = http.StatusBadGateway
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(view.NewDocument(report, "")); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode report response", "error", err)
	}
}
