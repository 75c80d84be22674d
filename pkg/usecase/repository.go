package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/osintkit/pkg/domain/interfaces"
	"github.com/m-mizutani/osintkit/pkg/domain/model"
	"github.com/m-mizutani/osintkit/pkg/domain/types"
	"github.com/m-mizutani/osintkit/pkg/utils/async"
)

type repositoryReport struct {
	metadata  interfaces.RepositoryMetadataProvider
	pulls     interfaces.PullRequestProvider
	languages interfaces.LanguageProvider
}

// NewRepositoryReport creates the repository aggregator. metadata is the
// primary provider; pulls and languages are secondary.
func NewRepositoryReport(
	metadata interfaces.RepositoryMetadataProvider,
	pulls interfaces.PullRequestProvider,
	languages interfaces.LanguageProvider,
) interfaces.RepositoryReportUseCase {
	return &repositoryReport{
		metadata:  metadata,
		pulls:     pulls,
		languages: languages,
	}
}

// BuildReport queries metadata first and stops there if it fails. Otherwise
// pull requests and languages are fetched concurrently and merged; their
// failures only mark their own fields Unavailable.
func (uc *repositoryReport) BuildReport(ctx context.Context, subject model.RepositorySubject) *model.Report {
	ctx, logger := withRun(ctx, subject)
	logger.Info("Building repository report")

	metaResult := fetch(ctx, uc.metadata, subject)
	repo, ok := metaResult.Payload()
	if !ok {
		return failedReport(logger, types.DomainRepository, metaResult.Err())
	}
	if repo == nil {
		return failedReport(logger, types.DomainRepository,
			model.NewProviderError(types.ErrorKindMalformedPayload, uc.metadata.Name(), nil))
	}

	var (
		pullsResult model.Result[[]*github.PullRequest]
		langsResult model.Result[map[string]int]
	)
	// Handlers never fail: fetch converts every outcome into a Result
	_ = async.Gather(ctx,
		func(ctx context.Context) error {
			pullsResult = fetch(ctx, uc.pulls, subject)
			return nil
		},
		func(ctx context.Context) error {
			langsResult = fetch(ctx, uc.languages, subject)
			return nil
		},
	)

	body := repositoryFields(repo)
	mergePullRequests(body, pullsResult)
	mergeLanguages(body, langsResult)

	report := &model.Report{
		Domain:     types.DomainRepository,
		Summary:    repo.GetFullName(),
		SourceLink: repo.GetHTMLURL(),
		Repository: body,
		Sources: []model.SourceStatus{
			sourceStatus(uc.metadata.Name(), metaResult),
			sourceStatus(uc.pulls.Name(), pullsResult),
			sourceStatus(uc.languages.Name(), langsResult),
		},
	}

	logger.Info("Repository report built",
		"pulls_ok", pullsResult.OK(),
		"languages_ok", langsResult.OK(),
	)
	return report
}

func repositoryFields(repo *github.Repository) *model.RepositoryReport {
	return &model.RepositoryReport{
		FullName:      model.FromPtr(repo.FullName),
		Description:   model.FromPtr(repo.Description),
		Owner:         ownerLogin(repo.Owner),
		Private:       model.FromPtr(repo.Private),
		Fork:          model.FromPtr(repo.Fork),
		Stars:         model.FromPtr(repo.StargazersCount),
		Forks:         model.FromPtr(repo.ForksCount),
		OpenIssues:    model.FromPtr(repo.OpenIssuesCount),
		Watchers:      model.FromPtr(repo.WatchersCount),
		DefaultBranch: model.FromPtr(repo.DefaultBranch),
		CreatedAt:     timestamp(repo.CreatedAt),
		UpdatedAt:     timestamp(repo.UpdatedAt),
		PushedAt:      timestamp(repo.PushedAt),
		Language:      model.FromPtr(repo.Language),
		License:       licenseName(repo.License),
		RepoURL:       model.FromPtr(repo.HTMLURL),
	}
}

func ownerLogin(owner *github.User) model.Field[string] {
	if owner == nil {
		return model.Absent[string]()
	}
	return model.FromPtr(owner.Login)
}

// licenseName is Absent when the license object itself is absent
func licenseName(license *github.License) model.Field[string] {
	if license == nil {
		return model.Absent[string]()
	}
	return model.FromPtr(license.Name)
}

func timestamp(ts *github.Timestamp) model.Field[string] {
	if ts == nil || ts.IsZero() {
		return model.Absent[string]()
	}
	return model.Present(ts.UTC().Format(time.RFC3339))
}

func mergePullRequests(body *model.RepositoryReport, result model.Result[[]*github.PullRequest]) {
	prs, ok := result.Payload()
	if !ok {
		body.OpenPRsCount = model.Unavailable[int]()
		body.OpenPRsTitles = model.Unavailable[[]string]()
		return
	}

	titles := make([]string, 0, len(prs))
	for _, pr := range prs {
		titles = append(titles, pr.GetTitle())
	}
	body.OpenPRsCount = model.Present(len(prs))
	body.OpenPRsTitles = model.Present(titles)
}

// mergeLanguages lists languages by descending byte count, then by name
func mergeLanguages(body *model.RepositoryReport, result model.Result[map[string]int]) {
	languages, ok := result.Payload()
	if !ok {
		body.LanguagesUsed = model.Unavailable[[]string]()
		return
	}

	names := make([]string, 0, len(languages))
	for name := range languages {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if languages[names[i]] != languages[names[j]] {
			return languages[names[i]] > languages[names[j]]
		}
		return names[i] < names[j]
	})
	body.LanguagesUsed = model.Present(names)
}
