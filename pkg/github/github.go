package github

import (
	"context"
	"net/http"
	"time"

	"github.com/google/go-github/github"
	"github.com/rcrowley/go-metrics"
	"github.com/rs/zerolog"

	"github.com/SEEK-Jobs/repoinv/pkg/inventory"
)

const (
	// pageSize is the number of items to return per page in paged responses
	pageSize = 100

	// Names of the metrics recorded by the services in this package
	metricsKeyPages = "repoinv.pages"
	metricsKeyRepos = "repoinv.repos"
	metricsKeyTeams = "repoinv.teams"
	metricsKeyAudit = "repoinv.audit.requests"
)

// service provides the REST implementation of inventory.GitHubService.
type service struct {
	clients  Clients
	registry metrics.Registry
}

// NewService returns a GitHubService that lists repositories with the REST API.
func NewService(clients Clients, registry metrics.Registry) inventory.GitHubService {
	if registry == nil {
		registry = metrics.NewRegistry()
	}
	return &service{clients: clients, registry: registry}
}

// WalkRepos implements inventory.GitHubService.
func (s *service) WalkRepos(ctx context.Context, orgName string, opts *inventory.WalkReposOptions, walkFn inventory.WalkReposFunc) error {
	v3, err := s.clients.V3Client(ctx)
	if err != nil {
		return err
	}

	listOpts := orgReposOptions{ListOptions: github.ListOptions{PerPage: pageSize}}
	if opts != nil {
		listOpts.Type = opts.Type
		listOpts.Sort = opts.Sort
		listOpts.Direction = opts.Direction
	}

	logger := zerolog.Ctx(ctx)
	pages := metrics.GetOrRegisterCounter(metricsKeyPages, s.registry)
	walked := metrics.GetOrRegisterCounter(metricsKeyRepos, s.registry)

	// Loop until there are no more pages of repos
	for page := 1; ; page++ {
		repos, r, err := listOrgRepos(ctx, v3, orgName, &listOpts)
		if err != nil {
			return asDomainError(orgName, err)
		}

		pages.Inc(1)
		logger.Debug().Msgf("Fetched page %d of %s with %d repositories", page, orgName, len(repos))

		for _, repo := range repos {
			walked.Inc(1)
			if err := walkFn(asDomainRepo(repo)); err != nil {
				return err
			}
		}

		// Are we done with paging through the repos?
		if r.NextPage == 0 || len(repos) == 0 {
			break
		}

		// Not done yet
		listOpts.Page = r.NextPage
	}

	return nil
}

// ListRepoTeams implements inventory.GitHubService.
func (s *service) ListRepoTeams(ctx context.Context, orgName, repoName string) ([]*inventory.TeamPermission, error) {
	v3, err := s.clients.V3Client(ctx)
	if err != nil {
		return nil, err
	}

	opts := github.ListOptions{PerPage: pageSize}
	lookups := metrics.GetOrRegisterCounter(metricsKeyTeams, s.registry)

	var teams []*inventory.TeamPermission
	for {
		page, r, err := v3.Repositories.ListTeams(ctx, orgName, repoName, &opts)
		if hasStatus(err, http.StatusNotFound) {
			// The credential can see the repo but not its teams
			zerolog.Ctx(ctx).Debug().Msgf("Teams of %s/%s are not visible", orgName, repoName)
			return nil, nil
		}
		if err != nil {
			return nil, asDomainRepoError(orgName, repoName, err)
		}

		lookups.Inc(1)
		for _, t := range page {
			teams = append(teams, &inventory.TeamPermission{
				TeamName:   t.GetName(),
				Permission: inventory.RepoPermission(t.GetPermission()),
			})
		}

		if r.NextPage == 0 {
			break
		}
		opts.Page = r.NextPage
	}

	return teams, nil
}

// asDomainRepo converts the specified GitHub repository to an inventory.Repo.
func asDomainRepo(repo *github.Repository) *inventory.Repo {
	r := &inventory.Repo{
		ID:            repo.GetID(),
		Name:          repo.GetName(),
		FullName:      repo.GetFullName(),
		Description:   repo.Description,
		Language:      repo.Language,
		Stars:         repo.StargazersCount,
		Forks:         repo.ForksCount,
		OpenIssues:    repo.OpenIssuesCount,
		CreatedAt:     timestampPtr(repo.CreatedAt),
		UpdatedAt:     timestampPtr(repo.UpdatedAt),
		PushedAt:      timestampPtr(repo.PushedAt),
		Private:       repo.Private,
		Archived:      repo.Archived,
		Fork:          repo.Fork,
		DefaultBranch: repo.DefaultBranch,
		Topics:        repo.Topics,
		URL:           repo.HTMLURL,
	}

	if repo.License != nil {
		r.License = repo.License.SPDXID
	}

	return r
}

// timestampPtr returns a pointer to the time held by ts, or nil if ts is nil.
func timestampPtr(ts *github.Timestamp) *time.Time {
	if ts == nil {
		return nil
	}
	t := ts.Time
	return &t
}
