package usecase

import (
	"context"
	"strings"

	"github.com/m-mizutani/osintkit/pkg/domain/interfaces"
	"github.com/m-mizutani/osintkit/pkg/domain/model"
	"github.com/m-mizutani/osintkit/pkg/domain/types"
)

type phoneReport struct {
	local  interfaces.PhoneMetadataProvider
	remote interfaces.PhoneValidationProvider
}

// NewPhoneReport creates the phone aggregator. local is the primary
// provider; remote is secondary.
func NewPhoneReport(
	local interfaces.PhoneMetadataProvider,
	remote interfaces.PhoneValidationProvider,
) interfaces.PhoneReportUseCase {
	return &phoneReport{
		local:  local,
		remote: remote,
	}
}

// BuildReport resolves the number offline first. If the number cannot be
// parsed the remote provider is not called. Carrier values from both sources
// are kept side by side without reconciliation.
func (uc *phoneReport) BuildReport(ctx context.Context, subject model.PhoneSubject) *model.Report {
	ctx, logger := withRun(ctx, subject)
	logger.Info("Building phone report")

	localResult := fetch(ctx, uc.local, subject)
	meta, ok := localResult.Payload()
	if !ok {
		return failedReport(logger, types.DomainPhone, localResult.Err())
	}
	if meta == nil {
		return failedReport(logger, types.DomainPhone,
			model.NewProviderError(types.ErrorKindMalformedPayload, uc.local.Name(), nil))
	}

	remoteResult := fetch(ctx, uc.remote, subject)

	body := &model.PhoneReport{
		Valid:               model.Present(meta.Valid),
		Possible:            model.Present(meta.Possible),
		Country:             model.Present(meta.Country),
		RegionCode:          model.Present(meta.RegionCode),
		StateOrRegion:       model.Present(stateOrRegion(meta.Geocode)),
		Carrier:             model.Present(meta.Carrier),
		Timezone:            model.Present(strings.Join(meta.Timezones, ", ")),
		InternationalFormat: model.Present(meta.International),
		NationalFormat:      model.Present(meta.National),
		E164Format:          model.Present(meta.E164),
	}
	mergeValidation(body, remoteResult)

	logger.Info("Phone report built", "remote_ok", remoteResult.OK())

	return &model.Report{
		Domain:  types.DomainPhone,
		Summary: meta.International,
		Phone:   body,
		Sources: []model.SourceStatus{
			sourceStatus(uc.local.Name(), localResult),
			sourceStatus(uc.remote.Name(), remoteResult),
		},
	}
}

// stateOrRegion takes the part of a geocode description before the first
// comma, e.g. "San Francisco, CA" -> "San Francisco".
func stateOrRegion(geocode string) string {
	if head, _, found := strings.Cut(geocode, ","); found {
		return strings.TrimSpace(head)
	}
	return geocode
}

func mergeValidation(body *model.PhoneReport, result model.Result[*model.PhoneValidation]) {
	v, ok := result.Payload()
	if !ok || v == nil {
		body.CallerName = model.Unavailable[string]()
		body.LineType = model.Unavailable[string]()
		body.Location = model.Unavailable[string]()
		body.CarrierAPI = model.Unavailable[string]()
		body.CountryCode = model.Unavailable[string]()
		return
	}

	body.CallerName = v.CallerName
	body.LineType = v.LineType
	body.Location = v.Location
	body.CarrierAPI = v.Carrier
	body.CountryCode = v.CountryCode
}
