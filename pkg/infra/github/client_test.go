package github_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/osintkit/pkg/domain/model"
	"github.com/m-mizutani/osintkit/pkg/domain/types"

	githubinfra "github.com/m-mizutani/osintkit/pkg/infra/github"
)

var subject = model.RepositorySubject{Owner: "octocat", Name: "Hello-World"}

func newTestClient(t *testing.T, handler http.Handler, opts ...githubinfra.Option) *githubinfra.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	opts = append([]githubinfra.Option{githubinfra.WithBaseURL(server.URL)}, opts...)
	client, err := githubinfra.NewClient(context.Background(), "test-token", opts...)
	gt.NoError(t, err)
	return client
}

func TestMetadataProvider_Fetch(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		var authHeader string
		mux := http.NewServeMux()
		mux.HandleFunc("/repos/octocat/Hello-World", func(w http.ResponseWriter, r *http.Request) {
			authHeader = r.Header.Get("Authorization")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"full_name": "octocat/Hello-World",
				"owner": {"login": "octocat"},
				"stargazers_count": 1500,
				"license": null,
				"html_url": "https://github.com/octocat/Hello-World"
			}`))
		})

		client := newTestClient(t, mux)
		result := client.Metadata().Fetch(ctx, subject)

		repo, ok := result.Payload()
		gt.True(t, ok)
		gt.Value(t, repo.GetFullName()).Equal("octocat/Hello-World")
		gt.Value(t, repo.GetOwner().GetLogin()).Equal("octocat")
		gt.Value(t, repo.GetStargazersCount()).Equal(1500)
		gt.True(t, repo.License == nil)
		gt.Value(t, authHeader).Equal("Bearer test-token")
	})

	t.Run("not found", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/repos/octocat/Hello-World", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message": "Not Found"}`))
		})

		client := newTestClient(t, mux)
		result := client.Metadata().Fetch(ctx, subject)

		gt.False(t, result.OK())
		gt.Value(t, result.Err().Kind).Equal(types.ErrorKindBadStatus)
		gt.Value(t, result.Err().Reason()).Equal("404")
		gt.Value(t, result.Err().Provider).Equal("github.metadata")
	})

	t.Run("malformed body", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/repos/octocat/Hello-World", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"full_name": `))
		})

		client := newTestClient(t, mux)
		result := client.Metadata().Fetch(ctx, subject)

		gt.Value(t, result.Err().Kind).Equal(types.ErrorKindMalformedPayload)
	})

	t.Run("missing full_name", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/repos/octocat/Hello-World", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"id": 1}`))
		})

		client := newTestClient(t, mux)
		result := client.Metadata().Fetch(ctx, subject)

		gt.Value(t, result.Err().Kind).Equal(types.ErrorKindMalformedPayload)
	})

	t.Run("timeout", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/repos/octocat/Hello-World", func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(time.Second):
			}
		})

		client := newTestClient(t, mux, githubinfra.WithTimeout(20*time.Millisecond))
		result := client.Metadata().Fetch(ctx, subject)

		gt.Value(t, result.Err().Kind).Equal(types.ErrorKindTimeout)
	})
}

func TestPullRequestProvider_Fetch(t *testing.T) {
	ctx := context.Background()

	t.Run("lists open pull requests", func(t *testing.T) {
		var state string
		mux := http.NewServeMux()
		mux.HandleFunc("/repos/octocat/Hello-World/pulls", func(w http.ResponseWriter, r *http.Request) {
			state = r.URL.Query().Get("state")
			_, _ = w.Write([]byte(`[{"title": "Fix typo"}, {"title": "Add feature"}]`))
		})

		client := newTestClient(t, mux)
		prs, ok := client.PullRequests().Fetch(ctx, subject).Payload()

		gt.True(t, ok)
		gt.A(t, prs).Length(2)
		gt.Value(t, prs[0].GetTitle()).Equal("Fix typo")
		gt.Value(t, state).Equal("open")
	})

	t.Run("empty list", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/repos/octocat/Hello-World/pulls", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[]`))
		})

		client := newTestClient(t, mux)
		prs, ok := client.PullRequests().Fetch(ctx, subject).Payload()

		gt.True(t, ok)
		gt.A(t, prs).Length(0)
	})

	t.Run("server error", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/repos/octocat/Hello-World/pulls", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		client := newTestClient(t, mux)
		result := client.PullRequests().Fetch(ctx, subject)

		gt.Value(t, result.Err().Kind).Equal(types.ErrorKindBadStatus)
		gt.Value(t, result.Err().Status).Equal(http.StatusBadGateway)
	})
}

func TestLanguageProvider_Fetch(t *testing.T) {
	ctx := context.Background()

	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octocat/Hello-World/languages", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"C": 100, "Go": 2048}`))
	})

	client := newTestClient(t, mux)
	languages, ok := client.Languages().Fetch(ctx, subject).Payload()

	gt.True(t, ok)
	gt.Value(t, languages["C"]).Equal(100)
	gt.Value(t, languages["Go"]).Equal(2048)
}

func TestNewClient_InvalidBaseURL(t *testing.T) {
	_, err := githubinfra.NewClient(context.Background(), "", githubinfra.WithBaseURL("://bad"))
	gt.Error(t, err)
}
