package github

import (
	"context"
	"net/http"

	"github.com/google/go-github/github"
	"github.com/pkg/errors"
	"github.com/rcrowley/go-metrics"

	"github.com/SEEK-Jobs/repoinv/pkg/inventory"
)

// GetFileContent implements inventory.GitHubService. A path that names a directory is treated
// as missing.
func (s *service) GetFileContent(ctx context.Context, orgName, repoName, path string) (*string, error) {
	v3, err := s.clients.V3Client(ctx)
	if err != nil {
		return nil, err
	}

	s.countAuditRequest()
	file, _, _, err := v3.Repositories.GetContents(ctx, orgName, repoName, path, nil)
	if hasStatus(err, http.StatusNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, asDomainRepoError(orgName, repoName, err)
	}

	if file == nil {
		return nil, nil
	}

	content, err := file.GetContent()
	if err != nil {
		return nil, errors.Wrapf(err, "could not decode '%s' of '%s/%s'", path, orgName, repoName)
	}

	return &content, nil
}

// ListBranchNames implements inventory.GitHubService.
func (s *service) ListBranchNames(ctx context.Context, orgName, repoName string) ([]string, error) {
	v3, err := s.clients.V3Client(ctx)
	if err != nil {
		return nil, err
	}

	opts := github.ListOptions{PerPage: pageSize}

	var names []string
	for {
		s.countAuditRequest()
		branches, r, err := v3.Repositories.ListBranches(ctx, orgName, repoName, &opts)
		if err != nil {
			return nil, asDomainRepoError(orgName, repoName, err)
		}

		for _, b := range branches {
			names = append(names, b.GetName())
		}

		if r.NextPage == 0 {
			break
		}
		opts.Page = r.NextPage
	}

	return names, nil
}

// GetBranchStats implements inventory.GitHubService. The commit count is read from the last
// page number of a listing with one commit per page.
func (s *service) GetBranchStats(ctx context.Context, orgName, repoName, branch string) (*inventory.BranchStats, error) {
	v3, err := s.clients.V3Client(ctx)
	if err != nil {
		return nil, err
	}

	s.countAuditRequest()
	b, _, err := v3.Repositories.GetBranch(ctx, orgName, repoName, branch)
	if hasStatus(err, http.StatusNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, asDomainRepoError(orgName, repoName, err)
	}

	stats := &inventory.BranchStats{}
	if date := b.GetCommit().GetCommit().GetCommitter().GetDate(); !date.IsZero() {
		stats.LastCommitAt = &date
	}

	s.countAuditRequest()
	commits, r, err := v3.Repositories.ListCommits(ctx, orgName, repoName, &github.CommitsListOptions{
		SHA:         branch,
		ListOptions: github.ListOptions{PerPage: 1},
	})
	switch {
	case hasStatus(err, http.StatusConflict):
		// The repository is empty
		return stats, nil
	case err != nil:
		return nil, asDomainRepoError(orgName, repoName, err)
	}

	stats.Commits = len(commits)
	if r.LastPage > 0 {
		stats.Commits = r.LastPage
	}

	return stats, nil
}

// HasLicense implements inventory.GitHubService.
func (s *service) HasLicense(ctx context.Context, orgName, repoName string) (bool, error) {
	v3, err := s.clients.V3Client(ctx)
	if err != nil {
		return false, err
	}

	s.countAuditRequest()
	_, _, err = v3.Repositories.License(ctx, orgName, repoName)
	if hasStatus(err, http.StatusNotFound) {
		return false, nil
	}
	if err != nil {
		return false, asDomainRepoError(orgName, repoName, err)
	}

	return true, nil
}

// ListOpenPullRequests implements inventory.GitHubService.
func (s *service) ListOpenPullRequests(ctx context.Context, orgName, repoName string) ([]*inventory.PullRequest, error) {
	v3, err := s.clients.V3Client(ctx)
	if err != nil {
		return nil, err
	}

	opts := github.PullRequestListOptions{
		State:       "open",
		ListOptions: github.ListOptions{PerPage: pageSize},
	}

	var pulls []*inventory.PullRequest
	for {
		s.countAuditRequest()
		page, r, err := v3.PullRequests.List(ctx, orgName, repoName, &opts)
		if err != nil {
			return nil, asDomainRepoError(orgName, repoName, err)
		}

		for _, p := range page {
			pulls = append(pulls, &inventory.PullRequest{
				Number: p.GetNumber(),
				Title:  p.GetTitle(),
				Author: p.GetUser().GetLogin(),
			})
		}

		if r.NextPage == 0 {
			break
		}
		opts.Page = r.NextPage
	}

	return pulls, nil
}

func (s *service) countAuditRequest() {
	metrics.GetOrRegisterCounter(metricsKeyAudit, s.registry).Inc(1)
}
