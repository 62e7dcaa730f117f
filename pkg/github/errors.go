package github

import (
	"context"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/github"
	"github.com/pkg/errors"

	"github.com/SEEK-Jobs/repoinv/pkg/inventory"
)

// asDomainError converts an error returned by the GitHub clients into one of the inventory
// error types. Errors that fit no category are returned unchanged.
func asDomainError(orgName string, err error) error {
	if err == nil {
		return nil
	}

	var (
		rateErr  *github.RateLimitError
		abuseErr *github.AbuseRateLimitError
		otpErr   *github.TwoFactorAuthError
		respErr  *github.ErrorResponse
	)

	switch {
	case errors.As(err, &rateErr):
		return &inventory.RateLimitError{OrgName: orgName, Reset: rateErr.Rate.Reset.Time, Err: err}
	case errors.As(err, &abuseErr):
		var reset time.Time
		if abuseErr.RetryAfter != nil {
			reset = time.Now().Add(*abuseErr.RetryAfter)
		}
		return &inventory.RateLimitError{OrgName: orgName, Reset: reset, Err: err}
	case errors.As(err, &otpErr):
		return &inventory.AuthenticationError{OrgName: orgName, Err: err}
	case errors.As(err, &respErr):
		return asDomainStatusError(orgName, respErr, err)
	case errors.Is(err, context.Canceled):
		return err
	case errors.Is(err, context.DeadlineExceeded), isNetworkError(err):
		return &inventory.TransientNetworkError{OrgName: orgName, Err: err}
	}

	return asDomainMessageError(orgName, err)
}

// asDomainRepoError converts an error returned while reading the specified repository of an
// organisation. Not found errors name the repository rather than the organisation.
func asDomainRepoError(orgName, repoName string, err error) error {
	err = asDomainError(orgName, err)

	var notFoundErr *inventory.NotFoundError
	if errors.As(err, &notFoundErr) {
		notFoundErr.RepoName = repoName
	}
	return err
}

// hasStatus reports whether err is a REST error response with the specified status code.
func hasStatus(err error, status int) bool {
	var respErr *github.ErrorResponse
	return errors.As(err, &respErr) && respErr.Response != nil && respErr.Response.StatusCode == status
}

// asDomainStatusError classifies a REST error response by its HTTP status code.
func asDomainStatusError(orgName string, respErr *github.ErrorResponse, err error) error {
	if respErr.Response == nil {
		return err
	}

	switch status := respErr.Response.StatusCode; {
	case status == http.StatusUnauthorized:
		return &inventory.AuthenticationError{OrgName: orgName, Err: err}
	case status == http.StatusForbidden:
		// Secondary rate limits are reported as a 403 with a message rather than a header
		if strings.Contains(strings.ToLower(respErr.Message), "rate limit") {
			return &inventory.RateLimitError{OrgName: orgName, Err: err}
		}
		return &inventory.AuthenticationError{OrgName: orgName, Err: err}
	case status == http.StatusNotFound:
		return &inventory.NotFoundError{OrgName: orgName, Err: err}
	case status == http.StatusTooManyRequests:
		return &inventory.RateLimitError{OrgName: orgName, Err: err}
	case status >= http.StatusInternalServerError:
		return &inventory.TransientNetworkError{OrgName: orgName, Err: err}
	}

	return err
}

// asDomainMessageError classifies an error by its message. The GraphQL client reports
// HTTP failures and API errors as plain errors so this is the only way to tell them apart.
func asDomainMessageError(orgName string, err error) error {
	msg := strings.ToLower(err.Error())

	switch {
	case containsAny(msg, "rate limit", "rate_limited", "429 too many requests"):
		return &inventory.RateLimitError{OrgName: orgName, Err: err}
	case containsAny(msg, "401 unauthorized", "403 forbidden", "bad credentials"):
		return &inventory.AuthenticationError{OrgName: orgName, Err: err}
	case containsAny(msg, "could not resolve to an organization", "404 not found"):
		return &inventory.NotFoundError{OrgName: orgName, Err: err}
	case containsAny(msg, "non-200 ok status code: 5", "connection refused", "connection reset", "no such host",
		"i/o timeout", "tls handshake", "network is unreachable", "unexpected eof"):
		return &inventory.TransientNetworkError{OrgName: orgName, Err: err}
	}

	return err
}

// isNetworkError reports whether err was raised by the transport rather than by GitHub.
func isNetworkError(err error) bool {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}

func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
