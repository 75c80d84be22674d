package types

// Version is the application version, overridden at build time via ldflags
var Version = "dev"

// Domain identifies which kind of subject a lookup targets
type Domain string

const (
	DomainRepository Domain = "repository"
	DomainPhone      Domain = "phone"
)

// Noun returns the word used for the domain in user-facing error messages
func (d Domain) Noun() string {
	switch d {
	case DomainRepository:
		return "repo"
	case DomainPhone:
		return "phone number"
	default:
		return string(d)
	}
}

// ErrorKind classifies why a provider call did not produce a payload
type ErrorKind string

const (
	ErrorKindMalformedSubject ErrorKind = "malformed_subject"
	ErrorKindUnreachable      ErrorKind = "provider_unreachable"
	ErrorKindTimeout          ErrorKind = "timeout"
	ErrorKindBadStatus        ErrorKind = "provider_bad_status"
	ErrorKindMalformedPayload ErrorKind = "provider_malformed_payload"
	ErrorKindNotConfigured    ErrorKind = "provider_not_configured"
	ErrorKindInvalidNumber    ErrorKind = "invalid_phone_number"
	ErrorKindProviderPanicked ErrorKind = "provider_panicked"
)
