package inventory

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// ErrorCategory names a class of failure that ends a run.
type ErrorCategory string

const (
	CategoryNone           ErrorCategory = ""
	CategoryAuthentication ErrorCategory = "authentication"
	CategoryNotFound       ErrorCategory = "not-found"
	CategoryRateLimit      ErrorCategory = "rate-limit"
	CategoryTransient      ErrorCategory = "transient-network"
	CategoryIOWrite        ErrorCategory = "io-write"
	CategoryEncoding       ErrorCategory = "encoding"
	CategoryOther          ErrorCategory = "other"
)

// Process exit codes.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitAPIRefused  = 2
	ExitNetwork     = 3
	ExitOutputError = 4
)

// AuthenticationError is returned when GitHub rejects or lacks the credential.
type AuthenticationError struct {
	OrgName string
	Err     error
}

// Error implements error.
func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("GitHub rejected the credential while listing repositories of '%s': %v", e.OrgName, e.Err)
}

// Unwrap returns the underlying error.
func (e *AuthenticationError) Unwrap() error { return e.Err }

// NotFoundError is returned when the organisation, or a repository of it, does not exist or
// is not visible.
type NotFoundError struct {
	OrgName  string
	RepoName string // Empty when the organisation itself was not found
	Err      error
}

// Error implements error.
func (e *NotFoundError) Error() string {
	if e.RepoName != "" {
		return fmt.Sprintf("repository '%s/%s' does not exist or is not visible to the credential: %v",
			e.OrgName, e.RepoName, e.Err)
	}
	return fmt.Sprintf("organisation '%s' does not exist or is not visible to the credential: %v", e.OrgName, e.Err)
}

// Unwrap returns the underlying error.
func (e *NotFoundError) Unwrap() error { return e.Err }

// RateLimitError is returned when GitHub refuses a request because a rate limit was exceeded.
type RateLimitError struct {
	OrgName string
	Reset   time.Time // Zero when GitHub did not say when the limit resets
	Err     error
}

// Error implements error.
func (e *RateLimitError) Error() string {
	if e.Reset.IsZero() {
		return fmt.Sprintf("GitHub rate limit exceeded while listing repositories of '%s': %v", e.OrgName, e.Err)
	}
	return fmt.Sprintf("GitHub rate limit exceeded while listing repositories of '%s', resets at %s: %v",
		e.OrgName, e.Reset.UTC().Format(time.RFC3339), e.Err)
}

// Unwrap returns the underlying error.
func (e *RateLimitError) Unwrap() error { return e.Err }

// TransientNetworkError is returned for connection failures, timeouts and server errors.
type TransientNetworkError struct {
	OrgName string
	Err     error
}

// Error implements error.
func (e *TransientNetworkError) Error() string {
	return fmt.Sprintf("network failure while listing repositories of '%s': %v", e.OrgName, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransientNetworkError) Unwrap() error { return e.Err }

// IOWriteError is returned when the output cannot be created, written or stored.
type IOWriteError struct {
	Path string
	Err  error
}

// Error implements error.
func (e *IOWriteError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("could not write output: %v", e.Err)
	}
	return fmt.Sprintf("could not write '%s': %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *IOWriteError) Unwrap() error { return e.Err }

// EncodingError is returned when a field value cannot be represented in the output encoding.
type EncodingError struct {
	Repo   string
	Column string
}

// Error implements error.
func (e *EncodingError) Error() string {
	return fmt.Sprintf("column '%s' of repository '%s' is not valid UTF-8", e.Column, e.Repo)
}

// Category returns the ErrorCategory of err, looking through any wrapping.
func Category(err error) ErrorCategory {
	var (
		authErr      *AuthenticationError
		notFoundErr  *NotFoundError
		rateLimitErr *RateLimitError
		networkErr   *TransientNetworkError
		ioErr        *IOWriteError
		encodingErr  *EncodingError
	)

	switch {
	case err == nil:
		return CategoryNone
	case errors.As(err, &authErr):
		return CategoryAuthentication
	case errors.As(err, &notFoundErr):
		return CategoryNotFound
	case errors.As(err, &rateLimitErr):
		return CategoryRateLimit
	case errors.As(err, &networkErr):
		return CategoryTransient
	case errors.As(err, &ioErr):
		return CategoryIOWrite
	case errors.As(err, &encodingErr):
		return CategoryEncoding
	default:
		return CategoryOther
	}
}

// ExitCode returns the process exit code for err.
func ExitCode(err error) int {
	switch Category(err) {
	case CategoryNone:
		return ExitOK
	case CategoryAuthentication, CategoryNotFound, CategoryRateLimit:
		return ExitAPIRefused
	case CategoryTransient:
		return ExitNetwork
	case CategoryIOWrite, CategoryEncoding:
		return ExitOutputError
	default:
		return ExitFailure
	}
}

// IsRetryable reports whether err is worth another attempt. Only transient network
// failures qualify. Rate limits are never retried.
func IsRetryable(err error) bool {
	return Category(err) == CategoryTransient
}
