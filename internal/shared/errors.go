package shared

import (
	"errors"
	"fmt"
)

var (
	// Configuration errors
	ErrMissingConfig      = fmt.Errorf("configuration not found")
	ErrInvalidConfig      = fmt.Errorf("invalid configuration")
	ErrMissingCredentials = fmt.Errorf("missing credentials")

	// Authentication errors
	ErrMissingCode      = fmt.Errorf("missing authorization code")
	ErrAuthFailed       = fmt.Errorf("authentication failed")
	ErrNotAuthenticated = fmt.Errorf("not authenticated")
	ErrRefreshFailed    = fmt.Errorf("token refresh failed")

	// API and service errors
	ErrAPIRequest         = fmt.Errorf("API request failed")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")
)

// Error tags a failure with one of the sentinel kinds above and carries the
// upstream detail as an opaque string. Upstream error types from the provider
// never cross the handler boundary directly; they are flattened into Detail.
type Error struct {
	Kind   error
	Detail string
}

// Errorf builds an [Error] of the given kind with a formatted detail string.
func Errorf(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.Detail)
}

// Unwrap exposes the sentinel kind so errors.Is selects on it.
func (e *Error) Unwrap() error { return e.Kind }

// ErrorDetail returns the opaque detail of a tagged [Error], or the full
// message for any other error. Never empty for a non-nil error.
func ErrorDetail(err error) string {
	var tagged *Error
	if errors.As(err, &tagged) && tagged.Detail != "" {
		return tagged.Detail
	}
	return err.Error()
}
