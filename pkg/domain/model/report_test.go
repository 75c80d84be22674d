package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/osintkit/pkg/domain/model"
	"github.com/m-mizutani/osintkit/pkg/domain/types"
)

func TestNewFailedReport(t *testing.T) {
	report := model.NewFailedReport(types.DomainRepository, "404")

	gt.True(t, report.Failed())
	gt.Value(t, report.Error).Equal("Failed to fetch repo: 404")
	gt.A(t, report.Entries()).Length(0)
}

func TestRepositoryReport_EntriesCoverSchema(t *testing.T) {
	report := &model.Report{
		Domain:     types.DomainRepository,
		Repository: &model.RepositoryReport{},
	}

	want := []string{
		"Full Name", "Description", "Owner", "Private", "Fork", "Stars", "Forks",
		"Open Issues", "Watchers", "Default Branch", "Created At", "Updated At",
		"Pushed At", "Language", "License", "Repo URL", "Open PRs Count",
		"Open PRs Titles", "Languages Used",
	}

	entries := report.Entries()
	gt.A(t, entries).Length(len(want))
	for i, e := range entries {
		gt.Value(t, e.Key).Equal(want[i])
	}
}

func TestPhoneReport_EntriesCoverSchema(t *testing.T) {
	report := &model.Report{
		Domain: types.DomainPhone,
		Phone:  &model.PhoneReport{},
	}

	want := []string{
		"valid", "possible", "country", "region_code", "state_or_region", "carrier",
		"timezone", "international_format", "national_format", "e164_format",
		"Caller Name", "Line Type", "Location", "Carrier (API)", "Country Code",
	}

	entries := report.Entries()
	gt.A(t, entries).Length(len(want))
	for i, e := range entries {
		gt.Value(t, e.Key).Equal(want[i])
	}
}

func TestEntry_Text(t *testing.T) {
	report := &model.RepositoryReport{
		Stars:         model.Present(1500),
		License:       model.Absent[string](),
		OpenPRsCount:  model.Unavailable[int](),
		OpenPRsTitles: model.Present([]string{}),
		LanguagesUsed: model.Present([]string{"Go", "C"}),
		Private:       model.Present(false),
	}

	byKey := map[string]model.Entry{}
	for _, e := range report.Entries() {
		byKey[e.Key] = e
	}

	gt.Value(t, byKey["Stars"].Text()).Equal("1500")
	gt.Value(t, byKey["License"].Text()).Equal("None")
	gt.Value(t, byKey["Open PRs Count"].Text()).Equal("N/A")
	gt.Value(t, byKey["Open PRs Titles"].Text()).Equal("")
	gt.Value(t, byKey["Languages Used"].Text()).Equal("Go, C")
	gt.Value(t, byKey["Private"].Text()).Equal("false")
}

func TestFromPtr(t *testing.T) {
	name := "MIT License"
	gt.Value(t, model.FromPtr(&name)).Equal(model.Present("MIT License"))
	gt.Value(t, model.FromPtr[string](nil).State).Equal(model.FieldAbsent)
}

func TestResult(t *testing.T) {
	ok := model.Success(42)
	v, success := ok.Payload()
	gt.True(t, success)
	gt.Value(t, v).Equal(42)
	gt.True(t, ok.Err() == nil)

	failed := model.Failure[int](model.NewBadStatusError("github.metadata", 404, nil))
	_, success = failed.Payload()
	gt.False(t, success)
	gt.Value(t, failed.Err().Kind).Equal(types.ErrorKindBadStatus)
	gt.Value(t, failed.Err().Reason()).Equal("404")
	gt.Value(t, failed.Err().Error()).Equal("github.metadata: 404")
}
