package model

import (
	"strings"
	"unicode"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/osintkit/pkg/domain/types"
)

// ErrMalformedSubject is wrapped by every subject parse failure
var ErrMalformedSubject = goerr.New("malformed subject")

// maxPhoneDigits is the longest digit string a phone number can have:
// a 3 digit country calling code plus a 17 digit national significant number.
const maxPhoneDigits = 20

// Subject is a validated lookup target
type Subject interface {
	Domain() types.Domain
	String() string
}

// RepositorySubject identifies a source-code repository as owner/name
type RepositorySubject struct {
	Owner string
	Name  string
}

func (s RepositorySubject) Domain() types.Domain { return types.DomainRepository }
func (s RepositorySubject) String() string { return s.Owner + "/" + s.Name }

// PhoneSubject is a phone number reduced to its digits. International is set
// when the raw input carried a leading '+', in which case CountryHint is not
// needed to interpret it.
type PhoneSubject struct {
	RawDigits     string
	International bool
	CountryHint   string
}

func (s PhoneSubject) Domain() types.Domain { return types.DomainPhone }

func (s PhoneSubject) String() string {
	if s.International {
		return "+" + s.RawDigits
	}
	return s.RawDigits
}

// ParseSubject parses raw user input for the given domain. No network access.
func ParseSubject(raw string, domain types.Domain) (Subject, error) {
	switch domain {
	case types.DomainRepository:
		return ParseRepositorySubject(raw)
	case types.DomainPhone:
		return ParsePhoneSubject(raw, "")
	default:
		return nil, goerr.Wrap(ErrMalformedSubject, "unknown subject domain", goerr.V("domain", domain))
	}
}

// ParseRepositorySubject accepts exactly "owner/name"
func ParseRepositorySubject(raw string) (RepositorySubject, error) {
	parts := strings.Split(strings.TrimSpace(raw), "/")
	if len(parts) != 2 {
		return RepositorySubject{}, goerr.Wrap(ErrMalformedSubject, "repository must be in owner/name form", goerr.V("raw", raw))
	}

	for _, part := range parts {
		if part == "" || strings.ContainsFunc(part, unicode.IsSpace) {
			return RepositorySubject{}, goerr.Wrap(ErrMalformedSubject, "repository owner and name must be non-empty without whitespace", goerr.V("raw", raw))
		}
	}

	return RepositorySubject{Owner: parts[0], Name: parts[1]}, nil
}

// ParsePhoneSubject strips whitespace and a single leading '+', then requires
// the remainder to be a bounded run of digits. countryHint is an optional
// ISO 3166 region code used when the number has no '+' prefix.
func ParsePhoneSubject(raw, countryHint string) (PhoneSubject, error) {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)

	international := strings.HasPrefix(stripped, "+")
	digits := strings.TrimPrefix(stripped, "+")

	if digits == "" {
		return PhoneSubject{}, goerr.Wrap(ErrMalformedSubject, "phone number has no digits", goerr.V("raw", raw))
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return PhoneSubject{}, goerr.Wrap(ErrMalformedSubject, "phone number must contain only digits", goerr.V("raw", raw))
		}
	}
	if len(digits) > maxPhoneDigits {
		return PhoneSubject{}, goerr.Wrap(ErrMalformedSubject, "phone number is too long",
			goerr.V("raw", raw),
			goerr.V("digits", len(digits)),
		)
	}

	return PhoneSubject{
		RawDigits:     digits,
		International: international,
		CountryHint:   strings.ToUpper(strings.TrimSpace(countryHint)),
	}, nil
}
