package model

import (
	"fmt"

	"github.com/m-mizutani/osintkit/pkg/domain/types"
)

// SourceStatus records the outcome of one provider call within a run
type SourceStatus struct {
	Provider string          `json:"provider" toml:"provider"`
	OK       bool            `json:"ok" toml:"ok"`
	Kind     types.ErrorKind `json:"kind,omitempty" toml:"kind,omitempty"`
}

// Report is the merged result of one aggregation run. Exactly one of Error,
// Repository and Phone is set.
type Report struct {
	Domain     types.Domain
	Summary    string // canonical display identity of the subject
	SourceLink string // optional canonical URL of the subject
	Error      string

	Repository *RepositoryReport
	Phone      *PhoneReport

	Sources []SourceStatus
}

// NewFailedReport builds the report returned when the primary provider fails
func NewFailedReport(domain types.Domain, reason string) *Report {
	return &Report{
		Domain: domain,
		Error:  fmt.Sprintf("Failed to fetch %s: %s", domain.Noun(), reason),
	}
}

func (r *Report) Failed() bool {
	return r.Error != ""
}

// Entries lists every schema field of the report in display order. A failed
// report has no entries.
func (r *Report) Entries() []Entry {
	switch {
	case r.Failed():
		return nil
	case r.Repository != nil:
		return r.Repository.Entries()
	case r.Phone != nil:
		return r.Phone.Entries()
	default:
		return nil
	}
}

// RepositoryReport is the repository domain schema
type RepositoryReport struct {
	FullName      Field[string]
	Description   Field[string]
	Owner         Field[string]
	Private       Field[bool]
	Fork          Field[bool]
	Stars         Field[int]
	Forks         Field[int]
	OpenIssues    Field[int]
	Watchers      Field[int]
	DefaultBranch Field[string]
	CreatedAt     Field[string]
	UpdatedAt     Field[string]
	PushedAt      Field[string]
	Language      Field[string]
	License       Field[string]
	RepoURL       Field[string]
	OpenPRsCount  Field[int]
	OpenPRsTitles Field[[]string]
	LanguagesUsed Field[[]string]
}

func (r *RepositoryReport) Entries() []Entry {
	return []Entry{
		newEntry("Full Name", "Full Name", r.FullName),
		newEntry("Description", "Description", r.Description),
		newEntry("Owner", "Owner", r.Owner),
		newEntry("Private", "Private", r.Private),
		newEntry("Fork", "Fork", r.Fork),
		newEntry("Stars", "Stars", r.Stars),
		newEntry("Forks", "Forks", r.Forks),
		newEntry("Open Issues", "Open Issues", r.OpenIssues),
		newEntry("Watchers", "Watchers", r.Watchers),
		newEntry("Default Branch", "Default Branch", r.DefaultBranch),
		newEntry("Created At", "Created At", r.CreatedAt),
		newEntry("Updated At", "Updated At", r.UpdatedAt),
		newEntry("Pushed At", "Pushed At", r.PushedAt),
		newEntry("Language", "Language", r.Language),
		newEntry("License", "License", r.License),
		newEntry("Repo URL", "Repo URL", r.RepoURL),
		newEntry("Open PRs Count", "Open PRs Count", r.OpenPRsCount),
		newEntry("Open PRs Titles", "Open PRs Titles", r.OpenPRsTitles),
		newEntry("Languages Used", "Languages Used", r.LanguagesUsed),
	}
}

// PhoneReport is the phone domain schema. The first block comes from the
// local resolver, the second from the remote validation provider.
type PhoneReport struct {
	Valid               Field[bool]
	Possible            Field[bool]
	Country             Field[string]
	RegionCode          Field[string]
	StateOrRegion       Field[string]
	Carrier             Field[string]
	Timezone            Field[string]
	InternationalFormat Field[string]
	NationalFormat      Field[string]
	E164Format          Field[string]

	CallerName  Field[string]
	LineType    Field[string]
	Location    Field[string]
	CarrierAPI  Field[string]
	CountryCode Field[string]
}

func (r *PhoneReport) Entries() []Entry {
	return []Entry{
		newEntry("valid", "Valid Number", r.Valid),
		newEntry("possible", "Possible Number", r.Possible),
		newEntry("country", "Country", r.Country),
		newEntry("region_code", "Region Code", r.RegionCode),
		newEntry("state_or_region", "State/Region", r.StateOrRegion),
		newEntry("carrier", "Carrier", r.Carrier),
		newEntry("timezone", "Timezone", r.Timezone),
		newEntry("international_format", "International Format", r.InternationalFormat),
		newEntry("national_format", "National Format", r.NationalFormat),
		newEntry("e164_format", "E164 Format", r.E164Format),
		newEntry("Caller Name", "Caller Name", r.CallerName),
		newEntry("Line Type", "Line Type", r.LineType),
		newEntry("Location", "Location", r.Location),
		newEntry("Carrier (API)", "Carrier (API)", r.CarrierAPI),
		newEntry("Country Code", "Country Code", r.CountryCode),
	}
}
