package interfaces

import (
	"context"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/osintkit/pkg/domain/model"
)

// Provider is a single data source. Fetch performs at most one bounded round
// trip and never returns an error or panics: every failure is carried in the
// returned Result.
type Provider[S model.Subject, T any] interface {
	Name() string
	Fetch(ctx context.Context, subject S) model.Result[T]
}

type (
	// RepositoryMetadataProvider confirms the repository exists and returns its metadata
	RepositoryMetadataProvider = Provider[model.RepositorySubject, *github.Repository]

	// PullRequestProvider lists open pull requests
	PullRequestProvider = Provider[model.RepositorySubject, []*github.PullRequest]

	// LanguageProvider returns bytes of code per language
	LanguageProvider = Provider[model.RepositorySubject, map[string]int]

	// PhoneMetadataProvider resolves a number with the offline phone-number grammar
	PhoneMetadataProvider = Provider[model.PhoneSubject, *model.PhoneMetadata]

	// PhoneValidationProvider asks a remote validation API about a number
	PhoneValidationProvider = Provider[model.PhoneSubject, *model.PhoneValidation]
)
