package phonemeta

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/osintkit/pkg/domain/model"
	"github.com/m-mizutani/osintkit/pkg/domain/types"
	"github.com/m-mizutani/osintkit/pkg/infra/transport"
	"github.com/nyaruka/phonenumbers"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// lang is the language used for geocoding and carrier names
const lang = "en"

// Resolver is the offline phone provider. It answers from the metadata
// bundled with the phone-number grammar and performs no I/O.
type Resolver struct {
	timeout time.Duration
}

// Option is a functional option for Resolver
type Option func(*Resolver)

// WithTimeout bounds a resolution. Resolution is CPU bound, so this only
// guards against pathological inputs.
func WithTimeout(timeout time.Duration) Option {
	return func(r *Resolver) {
		r.timeout = timeout
	}
}

func New(opts ...Option) *Resolver {
	r := &Resolver{timeout: transport.DefaultTimeout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Resolver) Name() string { return "phonemeta" }

func (r *Resolver) Fetch(ctx context.Context, subject model.PhoneSubject) model.Result[*model.PhoneMetadata] {
	return transport.Call(ctx, r.Name(), r.timeout, func(ctx context.Context) (*model.PhoneMetadata, error) {
		return r.resolve(subject)
	})
}

func (r *Resolver) resolve(subject model.PhoneSubject) (*model.PhoneMetadata, error) {
	region := subject.CountryHint
	if subject.International {
		region = ""
	}

	num, err := phonenumbers.Parse(subject.String(), region)
	if err != nil {
		return nil, model.NewProviderError(types.ErrorKindInvalidNumber, r.Name(),
			goerr.Wrap(err, "failed to parse phone number", goerr.V("region", region)))
	}

	regionCode := phonenumbers.GetRegionCodeForNumber(num)

	// Lookup tables may have no entry for a number; empty strings are fine
	geocode, _ := phonenumbers.GetGeocodingForNumber(num, lang)
	carrier, _ := phonenumbers.GetCarrierForNumber(num, lang)
	timezones, _ := phonenumbers.GetTimezonesForNumber(num)

	return &model.PhoneMetadata{
		Valid:         phonenumbers.IsValidNumber(num),
		Possible:      phonenumbers.IsPossibleNumber(num),
		Country:       countryName(regionCode),
		RegionCode:    regionCode,
		Geocode:       geocode,
		Carrier:       carrier,
		Timezones:     timezones,
		International: phonenumbers.Format(num, phonenumbers.INTERNATIONAL),
		National:      phonenumbers.Format(num, phonenumbers.NATIONAL),
		E164:          phonenumbers.Format(num, phonenumbers.E164),
	}, nil
}

// countryName returns the English name of an ISO 3166 region code, or "" when
// the code is unknown (e.g. "ZZ" for non-geographic numbers).
func countryName(regionCode string) string {
	if regionCode == "" || regionCode == "ZZ" {
		return ""
	}
	region, err := language.ParseRegion(regionCode)
	if err != nil {
		return ""
	}
	return display.English.Regions().Name(region)
}
