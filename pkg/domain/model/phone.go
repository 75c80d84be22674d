package model

// PhoneMetadata is what the offline phone-number grammar knows about a number
type PhoneMetadata struct {
	Valid         bool
	Possible      bool
	Country       string // English name of RegionCode
	RegionCode    string
	Geocode       string // area description, e.g. "San Francisco, CA"
	Carrier       string
	Timezones     []string
	International string
	National      string
	E164          string
}

// PhoneValidation is the remote validation provider's view of a number.
// Fields the provider omitted are Absent.
type PhoneValidation struct {
	Valid       Field[bool]
	CallerName  Field[string]
	LineType    Field[string]
	Location    Field[string]
	Carrier     Field[string]
	CountryCode Field[string]
}
