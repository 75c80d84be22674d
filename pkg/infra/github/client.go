package github

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/osintkit/pkg/domain/interfaces"
	"github.com/m-mizutani/osintkit/pkg/domain/model"
	"github.com/m-mizutani/osintkit/pkg/infra/transport"
	"golang.org/x/oauth2"
)

// Client wraps the GitHub REST API and hands out one provider per data slice
type Client struct {
	githubClient *github.Client
	timeout      time.Duration
}

// Option is a functional option for Client
type Option func(*Client) error

// WithBaseURL points the client at another API root, e.g. GitHub Enterprise
func WithBaseURL(baseURL string) Option {
	return func(c *Client) error {
		if baseURL == "" {
			return nil
		}
		u, err := url.Parse(strings.TrimSuffix(baseURL, "/") + "/")
		if err != nil {
			return goerr.Wrap(err, "invalid GitHub API base URL", goerr.V("base_url", baseURL))
		}
		c.githubClient.BaseURL = u
		return nil
	}
}

// WithTimeout bounds every call made by the providers
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) error {
		c.timeout = timeout
		return nil
	}
}

// NewClient creates a GitHub client. An empty token gives anonymous access,
// which is subject to a much lower rate limit.
func NewClient(ctx context.Context, token string, opts ...Option) (*Client, error) {
	httpClient := &http.Client{}
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(ctx, ts)
	}

	c := &Client{
		githubClient: github.NewClient(httpClient),
		timeout:      transport.DefaultTimeout,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Metadata returns the primary repository provider
func (c *Client) Metadata() interfaces.RepositoryMetadataProvider {
	return &metadataProvider{client: c}
}

// PullRequests returns the open pull request provider
func (c *Client) PullRequests() interfaces.PullRequestProvider {
	return &pullRequestProvider{client: c}
}

// Languages returns the language breakdown provider
func (c *Client) Languages() interfaces.LanguageProvider {
	return &languageProvider{client: c}
}

// responseError turns a go-github error into a ProviderError when the server
// answered with a non-success status. Other errors are left for
// transport.Classify.
func responseError(provider string, resp *github.Response, err error) error {
	if resp != nil && resp.Response != nil && (resp.StatusCode < 200 || resp.StatusCode > 299) {
		return model.NewBadStatusError(provider, resp.StatusCode, err)
	}
	return err
}
