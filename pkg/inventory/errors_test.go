package inventory

import (
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestCategoryAndExitCode(t *testing.T) {
	cause := errors.New("cause")

	tests := []struct {
		name         string
		err          error
		wantCategory ErrorCategory
		wantExitCode int
	}{
		{"nil", nil, CategoryNone, ExitOK},
		{"authentication", &AuthenticationError{OrgName: "o", Err: cause}, CategoryAuthentication, ExitAPIRefused},
		{"not found", &NotFoundError{OrgName: "o", Err: cause}, CategoryNotFound, ExitAPIRefused},
		{"rate limit", &RateLimitError{OrgName: "o", Err: cause}, CategoryRateLimit, ExitAPIRefused},
		{"network", &TransientNetworkError{OrgName: "o", Err: cause}, CategoryTransient, ExitNetwork},
		{"io", &IOWriteError{Path: "p", Err: cause}, CategoryIOWrite, ExitOutputError},
		{"encoding", &EncodingError{Repo: "r", Column: "c"}, CategoryEncoding, ExitOutputError},
		{"wrapped", errors.Wrap(errors.Wrap(&NotFoundError{OrgName: "o"}, "inner"), "outer"), CategoryNotFound, ExitAPIRefused},
		{"other", cause, CategoryOther, ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Category(tt.err); got != tt.wantCategory {
				t.Errorf("category: expected %q, got %q", tt.wantCategory, got)
			}
			if got := ExitCode(tt.err); got != tt.wantExitCode {
				t.Errorf("exit code: expected %d, got %d", tt.wantExitCode, got)
			}
		})
	}
}

func TestRateLimitErrorMessage(t *testing.T) {
	err := &RateLimitError{
		OrgName: "SEEK-Jobs",
		Reset:   time.Date(2019, 7, 24, 16, 13, 41, 0, time.UTC),
		Err:     errors.New("API rate limit exceeded"),
	}

	want := "GitHub rate limit exceeded while listing repositories of 'SEEK-Jobs', resets at 2019-07-24T16:13:41Z: API rate limit exceeded"
	if got := err.Error(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestNotFoundErrorMessage(t *testing.T) {
	cause := errors.New("404 Not Found")

	org := &NotFoundError{OrgName: "SEEK-Jobs", Err: cause}
	want := "organisation 'SEEK-Jobs' does not exist or is not visible to the credential: 404 Not Found"
	if got := org.Error(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	repo := &NotFoundError{OrgName: "SEEK-Jobs", RepoName: "repo-2", Err: cause}
	want = "repository 'SEEK-Jobs/repo-2' does not exist or is not visible to the credential: 404 Not Found"
	if got := repo.Error(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestIsRetryable(t *testing.T) {
	if !IsRetryable(&TransientNetworkError{}) {
		t.Error("expected network errors to be retryable")
	}
	if IsRetryable(&RateLimitError{}) {
		t.Error("expected rate limit errors not to be retryable")
	}
	if IsRetryable(&AuthenticationError{}) {
		t.Error("expected authentication errors not to be retryable")
	}
}
