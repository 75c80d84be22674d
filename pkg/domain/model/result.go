package model

import (
	"fmt"
	"strconv"

	"github.com/m-mizutani/osintkit/pkg/domain/types"
)

// ProviderError is the typed failure of a single provider call
type ProviderError struct {
	Kind     types.ErrorKind
	Provider string
	Status   int // HTTP status, only set for ErrorKindBadStatus
	cause    error
}

// NewProviderError creates a ProviderError. cause may be nil.
func NewProviderError(kind types.ErrorKind, provider string, cause error) *ProviderError {
	return &ProviderError{Kind: kind, Provider: provider, cause: cause}
}

// NewBadStatusError creates a ProviderError for a non-success response code
func NewBadStatusError(provider string, status int, cause error) *ProviderError {
	return &ProviderError{Kind: types.ErrorKindBadStatus, Provider: provider, Status: status, cause: cause}
}

// Reason is the short user facing description of the failure
func (e *ProviderError) Reason() string {
	switch e.Kind {
	case types.ErrorKindBadStatus:
		return strconv.Itoa(e.Status)
	case types.ErrorKindTimeout:
		return "timeout"
	case types.ErrorKindUnreachable:
		return "provider unreachable"
	case types.ErrorKindMalformedPayload:
		return "malformed response"
	case types.ErrorKindNotConfigured:
		return "API key not configured"
	case types.ErrorKindInvalidNumber:
		return "invalid phone number"
	default:
		return "internal provider error"
	}
}

func (e *ProviderError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Provider, e.Reason(), e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Reason())
}

func (e *ProviderError) Unwrap() error {
	return e.cause
}

// Result is either a payload or a ProviderError. It cannot be modified after
// construction.
type Result[T any] struct {
	payload T
	err     *ProviderError
}

func Success[T any](payload T) Result[T] {
	return Result[T]{payload: payload}
}

func Failure[T any](err *ProviderError) Result[T] {
	return Result[T]{err: err}
}

// Payload returns the payload and true on success
func (r Result[T]) Payload() (T, bool) {
	return r.payload, r.err == nil
}

// Err returns the failure, or nil on success
func (r Result[T]) Err() *ProviderError {
	return r.err
}

func (r Result[T]) OK() bool {
	return r.err == nil
}
