package cli

import (
	"context"

	"github.com/m-mizutani/osintkit/pkg/cli/config"
	"github.com/m-mizutani/osintkit/pkg/domain/interfaces"
	"github.com/m-mizutani/osintkit/pkg/infra/phonemeta"
	"github.com/m-mizutani/osintkit/pkg/usecase"
)

func newRepositoryUseCase(ctx context.Context, githubCfg config.GitHub, providerCfg config.Provider) (interfaces.RepositoryReportUseCase, error) {
	client, err := githubCfg.NewClient(ctx, providerCfg)
	if err != nil {
		return nil, err
	}
	return usecase.NewRepositoryReport(client.Metadata(), client.PullRequests(), client.Languages()), nil
}

func newPhoneUseCase(numlookupCfg config.NumLookup, providerCfg config.Provider) interfaces.PhoneReportUseCase {
	return usecase.NewPhoneReport(
		phonemeta.New(phonemeta.WithTimeout(providerCfg.Timeout)),
		numlookupCfg.NewClient(providerCfg),
	)
}
