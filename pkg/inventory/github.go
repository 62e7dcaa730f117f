package inventory

import (
	"context"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Repository type filters understood by GitHub when listing an organisation's repositories.
const (
	RepoTypeAll     = "all"
	RepoTypePublic  = "public"
	RepoTypePrivate = "private"
	RepoTypeForks   = "forks"
	RepoTypeSources = "sources"
	RepoTypeMember  = "member"
)

// Sort fields and directions understood by GitHub when listing an organisation's repositories.
const (
	SortCreated  = "created"
	SortUpdated  = "updated"
	SortPushed   = "pushed"
	SortFullName = "full_name"

	DirectionAsc  = "asc"
	DirectionDesc = "desc"
)

// WalkReposFunc is the type of the function called for each repo in the GitHub org
// by the WalkRepos function. If the function returns an error walking stops.
type WalkReposFunc func(r *Repo) error

// WalkReposOptions narrows and orders the repositories returned by WalkRepos. The zero
// value lists every repository in GitHub's default order.
type WalkReposOptions struct {
	Type      string // One of the RepoType constants, empty for all
	Sort      string // One of the Sort constants, empty for GitHub's default
	Direction string // DirectionAsc or DirectionDesc, empty for GitHub's default
}

// GitHubService provides the domain interface for all GitHub interactions.
type GitHubService interface {
	// WalkRepos walks over all repos in the specified org page by page, passing each to the
	// walk function in the order GitHub returns them.
	WalkRepos(ctx context.Context, orgName string, opts *WalkReposOptions, walkFn WalkReposFunc) error

	// ListRepoTeams returns the teams that have been granted access to the specified repo.
	// A repo whose teams are not visible to the credential has no teams.
	ListRepoTeams(ctx context.Context, orgName, repoName string) ([]*TeamPermission, error)

	// GetFileContent returns the content of the file at path in the default branch of the
	// specified repo, or nil if the repo or the file does not exist.
	GetFileContent(ctx context.Context, orgName, repoName, path string) (*string, error)

	// ListBranchNames returns the names of all branches of the specified repo.
	ListBranchNames(ctx context.Context, orgName, repoName string) ([]string, error)

	// GetBranchStats returns the commit count and the last commit time of the specified
	// branch, or nil if the branch does not exist.
	GetBranchStats(ctx context.Context, orgName, repoName, branch string) (*BranchStats, error)

	// HasLicense reports whether GitHub detected a license file in the specified repo.
	HasLicense(ctx context.Context, orgName, repoName string) (bool, error)

	// ListOpenPullRequests returns the open pull requests of the specified repo.
	ListOpenPullRequests(ctx context.Context, orgName, repoName string) ([]*PullRequest, error)
}

// BranchStats describes the history of a branch.
type BranchStats struct {
	Commits      int        // Commits reachable from the head of the branch
	LastCommitAt *time.Time // Committer date of the head commit
}

// PullRequest is the part of a pull request used to audit a repository.
type PullRequest struct {
	Number int
	Title  string
	Author string // Login of the user that opened the pull request
}

// RetryConfig configures how transient failures are retried.
type RetryConfig struct {
	MaxRetries        int           // Number of retries after the first attempt
	InitialBackoff    time.Duration // Wait before the first retry
	MaxBackoff        time.Duration // Upper bound of any wait
	BackoffMultiplier float64       // Growth factor between retries
}

// DefaultRetryConfig returns a RetryConfig with the specified number of retries.
func DefaultRetryConfig(maxRetries int) *RetryConfig {
	return &RetryConfig{
		MaxRetries:        maxRetries,
		InitialBackoff:    time.Second,
		MaxBackoff:        30 * time.Second,
		BackoffMultiplier: 2.0,
	}
}

// retryService provides a GitHubService adapter that repeats whole operations against its
// delegate when they fail with a TransientNetworkError.
type retryService struct {
	delegate GitHubService
	config   *RetryConfig
	sleep    func(ctx context.Context, d time.Duration) error
}

// NewRetryingGitHubService returns a GitHubService that retries transient failures of the
// delegate. A config with no retries returns the delegate unchanged.
func NewRetryingGitHubService(delegate GitHubService, config *RetryConfig) GitHubService {
	if config == nil || config.MaxRetries <= 0 {
		return delegate
	}
	return &retryService{delegate: delegate, config: config, sleep: sleepContext}
}

// WalkRepos implements GitHubService. A walk is never resumed: every attempt starts again at
// the first page and repos already passed to walkFn by a failed attempt are not passed again.
func (s *retryService) WalkRepos(ctx context.Context, orgName string, opts *WalkReposOptions, walkFn WalkReposFunc) error {
	var attempt []*Repo
	err := s.retry(ctx, "WalkRepos", func() error {
		attempt = nil
		return s.delegate.WalkRepos(ctx, orgName, opts, func(r *Repo) error {
			attempt = append(attempt, r)
			return nil
		})
	})
	if err != nil {
		return err
	}

	for _, r := range attempt {
		if err := walkFn(r); err != nil {
			return err
		}
	}
	return nil
}

// ListRepoTeams implements GitHubService.
func (s *retryService) ListRepoTeams(ctx context.Context, orgName, repoName string) ([]*TeamPermission, error) {
	var teams []*TeamPermission
	err := s.retry(ctx, "ListRepoTeams", func() error {
		var err error
		teams, err = s.delegate.ListRepoTeams(ctx, orgName, repoName)
		return err
	})
	return teams, err
}

// GetFileContent implements GitHubService.
func (s *retryService) GetFileContent(ctx context.Context, orgName, repoName, path string) (*string, error) {
	var content *string
	err := s.retry(ctx, "GetFileContent", func() error {
		var err error
		content, err = s.delegate.GetFileContent(ctx, orgName, repoName, path)
		return err
	})
	return content, err
}

// ListBranchNames implements GitHubService.
func (s *retryService) ListBranchNames(ctx context.Context, orgName, repoName string) ([]string, error) {
	var names []string
	err := s.retry(ctx, "ListBranchNames", func() error {
		var err error
		names, err = s.delegate.ListBranchNames(ctx, orgName, repoName)
		return err
	})
	return names, err
}

// GetBranchStats implements GitHubService.
func (s *retryService) GetBranchStats(ctx context.Context, orgName, repoName, branch string) (*BranchStats, error) {
	var stats *BranchStats
	err := s.retry(ctx, "GetBranchStats", func() error {
		var err error
		stats, err = s.delegate.GetBranchStats(ctx, orgName, repoName, branch)
		return err
	})
	return stats, err
}

// HasLicense implements GitHubService.
func (s *retryService) HasLicense(ctx context.Context, orgName, repoName string) (bool, error) {
	var found bool
	err := s.retry(ctx, "HasLicense", func() error {
		var err error
		found, err = s.delegate.HasLicense(ctx, orgName, repoName)
		return err
	})
	return found, err
}

// ListOpenPullRequests implements GitHubService.
func (s *retryService) ListOpenPullRequests(ctx context.Context, orgName, repoName string) ([]*PullRequest, error) {
	var pulls []*PullRequest
	err := s.retry(ctx, "ListOpenPullRequests", func() error {
		var err error
		pulls, err = s.delegate.ListOpenPullRequests(ctx, orgName, repoName)
		return err
	})
	return pulls, err
}

// retry calls fn until it succeeds, fails with an error that is not retryable or the
// retries are used up.
func (s *retryService) retry(ctx context.Context, op string, fn func() error) error {
	var err error
	for attempt := 0; attempt <= s.config.MaxRetries; attempt++ {
		if err = fn(); err == nil || !IsRetryable(err) {
			return err
		}

		if attempt == s.config.MaxRetries {
			break
		}

		backoff := s.backoff(attempt)
		zerolog.Ctx(ctx).Warn().Err(err).Msgf("%s failed, retrying in %s (attempt %d/%d)",
			op, backoff, attempt+1, s.config.MaxRetries)

		if err := s.sleep(ctx, backoff); err != nil {
			return err
		}
	}

	return errors.Wrapf(err, "giving up after %d retries", s.config.MaxRetries)
}

// backoff returns the exponential wait before the retry following attempt, with up to
// 10% jitter and capped at MaxBackoff.
func (s *retryService) backoff(attempt int) time.Duration {
	d := float64(s.config.InitialBackoff)
	for i := 0; i < attempt; i++ {
		d *= s.config.BackoffMultiplier
	}
	if max := float64(s.config.MaxBackoff); max > 0 && d > max {
		d = max
	}
	d += d * 0.1 * rand.Float64()
	return time.Duration(d)
}

// sleepContext waits for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
