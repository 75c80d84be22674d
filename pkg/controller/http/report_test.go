package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"
	controller "github.com/m-mizutani/osintkit/pkg/controller/http"
	"github.com/m-mizutani/osintkit/pkg/domain/model"
	"github.com/m-mizutani/osintkit/pkg/domain/types"
)

type mockRepoUC struct {
	buildFunc func(ctx context.Context, subject model.RepositorySubject) *model.Report
	calls     int
}

func (m *mockRepoUC) BuildReport(ctx context.Context, subject model.RepositorySubject) *model.Report {
	m.calls++
	return m.buildFunc(ctx, subject)
}

type mockPhoneUC struct {
	buildFunc func(ctx context.Context, subject model.PhoneSubject) *model.Report
	calls     int
}

func (m *mockPhoneUC) BuildReport(ctx context.Context, subject model.PhoneSubject) *model.Report {
	m.calls++
	return m.buildFunc(ctx, subject)
}

func repoReport(subject model.RepositorySubject) *model.Report {
	return &model.Report{
		Domain:     types.DomainRepository,
		Summary:    subject.String(),
		SourceLink: "https://github.com/" + subject.String(),
		Repository: &model.RepositoryReport{
			FullName:      model.Present(subject.String()),
			Stars:         model.Present(42),
			OpenPRsTitles: model.Present([]string{"Fix <typo>", "Add docs"}),
			LanguagesUsed: model.Unavailable[[]string](),
		},
	}
}

func newTestServer(t *testing.T, repoUC *mockRepoUC, phoneUC *mockPhoneUC) http.Handler {
	t.Helper()
	server, err := controller.NewServer(context.Background(), repoUC, phoneUC)
	gt.NoError(t, err)
	return server.Handler
}

func TestRepositoryAPI(t *testing.T) {
	repoUC := &mockRepoUC{
		buildFunc: func(_ context.Context, subject model.RepositorySubject) *model.Report {
			return repoReport(subject)
		},
	}
	handler := newTestServer(t, repoUC, &mockPhoneUC{})

	req := httptest.NewRequest(http.MethodGet, "/api/repos/octocat/Hello-World", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	gt.Value(t, w.Code).Equal(http.StatusOK)
	gt.Value(t, w.Header().Get("Content-Type")).Equal("application/json")

	var doc map[string]any
	gt.NoError(t, json.NewDecoder(w.Body).Decode(&doc))
	gt.Value(t, doc["subject"]).Equal(any("octocat/Hello-World"))

	fields := doc["fields"].(map[string]any)
	gt.Value(t, fields["Stars"]).Equal(any(float64(42)))
	gt.Value(t, fields["Languages Used"]).Equal(any("N/A"))
}

func TestRepositoryAPI_PrimaryFailure(t *testing.T) {
	repoUC := &mockRepoUC{
		buildFunc: func(_ context.Context, _ model.RepositorySubject) *model.Report {
			return model.NewFailedReport(types.DomainRepository, "404")
		},
	}
	handler := newTestServer(t, repoUC, &mockPhoneUC{})

	req := httptest.NewRequest(http.MethodGet, "/api/repos/octocat/missing", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	gt.Value(t, w.Code).Equal(http.StatusBadGateway)

	var doc map[string]any
	gt.NoError(t, json.NewDecoder(w.Body).Decode(&doc))
	gt.Value(t, doc["error"]).Equal(any("Failed to fetch repo: 404"))
	_, hasFields := doc["fields"]
	gt.False(t, hasFields)
}

func TestPhoneAPI(t *testing.T) {
	var got model.PhoneSubject
	phoneUC := &mockPhoneUC{
		buildFunc: func(_ context.Context, subject model.PhoneSubject) *model.Report {
			got = subject
			return &model.Report{
				Domain:  types.DomainPhone,
				Summary: "+1 415-555-2671",
				Phone: &model.PhoneReport{
					Valid:    model.Present(true),
					LineType: model.Unavailable[string](),
				},
			}
		},
	}
	handler := newTestServer(t, &mockRepoUC{}, phoneUC)

	req := httptest.NewRequest(http.MethodGet, "/api/phones/4155552671?region=us", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	gt.Value(t, w.Code).Equal(http.StatusOK)
	gt.Value(t, got.RawDigits).Equal("4155552671")
	gt.Value(t, got.CountryHint).Equal("US")
	gt.False(t, got.International)

	var doc map[string]any
	gt.NoError(t, json.NewDecoder(w.Body).Decode(&doc))
	fields := doc["fields"].(map[string]any)
	gt.Value(t, fields["valid"]).Equal(any(true))
	gt.Value(t, fields["Line Type"]).Equal(any("N/A"))
}

func TestAPI_MalformedSubject(t *testing.T) {
	repoUC := &mockRepoUC{}
	phoneUC := &mockPhoneUC{}
	handler := newTestServer(t, repoUC, phoneUC)

	tests := []struct {
		name string
		path string
		want string
	}{
		{
			name: "non digit",
			path: "/api/phones/415-555",
			want: "Invalid input: phone number must contain only digits",
		},
		{
			name: "too long",
			path: "/api/phones/" + strings.Repeat("1", 21),
			want: "Invalid input: phone number is too long",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			gt.Value(t, w.Code).Equal(http.StatusBadRequest)
			gt.Value(t, w.Header().Get("Content-Type")).Equal("application/json")

			var body map[string]string
			gt.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			gt.Value(t, body["error"]).Equal(tt.want)
		})
	}

	gt.Value(t, repoUC.calls).Equal(0)
	gt.Value(t, phoneUC.calls).Equal(0)
}

func TestAPI_RequestLoggerCarriesRequestID(t *testing.T) {
	var buf bytes.Buffer
	ctx := ctxlog.With(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

	server, err := controller.NewServer(ctx, &mockRepoUC{}, &mockPhoneUC{})
	gt.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/phones/415-555", nil)
	req.Header.Set("X-Request-Id", "req-123")
	w := httptest.NewRecorder()
	server.Handler.ServeHTTP(w, req)

	gt.Value(t, w.Code).Equal(http.StatusBadRequest)

	var rejected, access bool
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]any
		gt.NoError(t, json.Unmarshal([]byte(line), &entry))
		gt.Value(t, entry["request_id"]).Equal(any("req-123"))
		switch entry["msg"] {
		case "Rejected API subject":
			rejected = true
		case "HTTP request":
			access = true
		}
	}
	gt.True(t, rejected)
	gt.True(t, access)
}

func TestRepositoryPage(t *testing.T) {
	repoUC := &mockRepoUC{
		buildFunc: func(_ context.Context, subject model.RepositorySubject) *model.Report {
			return repoReport(subject)
		},
	}
	handler := newTestServer(t, repoUC, &mockPhoneUC{})

	t.Run("form", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		gt.Value(t, w.Code).Equal(http.StatusOK)
		body := w.Body.String()
		gt.String(t, body).Contains(`name="repo_name"`)
		gt.False(t, strings.Contains(body, "<table>"))
	})

	t.Run("report", func(t *testing.T) {
		form := url.Values{"repo_name": {" octocat/Hello-World "}}
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		gt.Value(t, w.Code).Equal(http.StatusOK)
		body := w.Body.String()
		gt.String(t, body).Contains(`href="https://github.com/octocat/Hello-World"`)
		gt.String(t, body).Contains("<li>Fix &lt;typo&gt;</li>")
		gt.String(t, body).Contains(`class="unavailable">N/A`)
		gt.String(t, body).Contains("<td>None</td>")
	})

	t.Run("malformed", func(t *testing.T) {
		calls := repoUC.calls
		form := url.Values{"repo_name": {"octocat"}}
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		gt.String(t, w.Body.String()).Contains(`class="error">Invalid input: repository must be in owner/name form<`)
		gt.Value(t, repoUC.calls).Equal(calls)
	})
}

func TestPhonePage_PrimaryFailure(t *testing.T) {
	phoneUC := &mockPhoneUC{
		buildFunc: func(_ context.Context, _ model.PhoneSubject) *model.Report {
			return model.NewFailedReport(types.DomainPhone, "invalid phone number")
		},
	}
	handler := newTestServer(t, &mockRepoUC{}, phoneUC)

	form := url.Values{"phone": {"+10005550000"}}
	req := httptest.NewRequest(http.MethodPost, "/phone", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	gt.Value(t, w.Code).Equal(http.StatusOK)
	body := w.Body.String()
	gt.String(t, body).Contains("Phone Number OSINT Report")
	gt.String(t, body).Contains("Failed to fetch phone number: invalid phone number")
	gt.False(t, strings.Contains(body, "<table>"))
}
