package github

import (
	"context"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/osintkit/pkg/domain/model"
	"github.com/m-mizutani/osintkit/pkg/domain/types"
	"github.com/m-mizutani/osintkit/pkg/infra/transport"
)

// openPullRequestsPerPage caps the open pull request listing to one page
const openPullRequestsPerPage = 100

type metadataProvider struct {
	client *Client
}

func (p *metadataProvider) Name() string { return "github.metadata" }

func (p *metadataProvider) Fetch(ctx context.Context, subject model.RepositorySubject) model.Result[*github.Repository] {
	return transport.Call(ctx, p.Name(), p.client.timeout, func(ctx context.Context) (*github.Repository, error) {
		repo, resp, err := p.client.githubClient.Repositories.Get(ctx, subject.Owner, subject.Name)
		if err != nil {
			return nil, responseError(p.Name(), resp, err)
		}

		if repo == nil || repo.FullName == nil {
			return nil, model.NewProviderError(types.ErrorKindMalformedPayload, p.Name(),
				goerr.New("repository payload has no full_name", goerr.V("subject", subject.String())))
		}

		return repo, nil
	})
}

type pullRequestProvider struct {
	client *Client
}

func (p *pullRequestProvider) Name() string { return "github.pulls" }

func (p *pullRequestProvider) Fetch(ctx context.Context, subject model.RepositorySubject) model.Result[[]*github.PullRequest] {
	return transport.Call(ctx, p.Name(), p.client.timeout, func(ctx context.Context) ([]*github.PullRequest, error) {
		prs, resp, err := p.client.githubClient.PullRequests.List(ctx, subject.Owner, subject.Name, &github.PullRequestListOptions{
			State:       "open",
			ListOptions: github.ListOptions{PerPage: openPullRequestsPerPage},
		})
		if err != nil {
			return nil, responseError(p.Name(), resp, err)
		}

		if prs == nil {
			prs = []*github.PullRequest{}
		}
		return prs, nil
	})
}

type languageProvider struct {
	client *Client
}

func (p *languageProvider) Name() string { return "github.languages" }

func (p *languageProvider) Fetch(ctx context.Context, subject model.RepositorySubject) model.Result[map[string]int] {
	return transport.Call(ctx, p.Name(), p.client.timeout, func(ctx context.Context) (map[string]int, error) {
		languages, resp, err := p.client.githubClient.Repositories.ListLanguages(ctx, subject.Owner, subject.Name)
		if err != nil {
			return nil, responseError(p.Name(), resp, err)
		}

		if languages == nil {
			languages = map[string]int{}
		}
		return languages, nil
	})
}
