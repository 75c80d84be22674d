package interfaces

import (
	"context"

	"github.com/m-mizutani/osintkit/pkg/domain/model"
)

// RepositoryReportUseCase aggregates repository providers into a report
type RepositoryReportUseCase interface {
	BuildReport(ctx context.Context, subject model.RepositorySubject) *model.Report
}

// PhoneReportUseCase aggregates phone providers into a report
type PhoneReportUseCase interface {
	BuildReport(ctx context.Context, subject model.PhoneSubject) *model.Report
}
