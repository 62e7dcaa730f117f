package github

import (
	"context"
	"time"

	"github.com/rcrowley/go-metrics"
	"github.com/rs/zerolog"
	"github.com/shurcooL/githubv4"

	"github.com/SEEK-Jobs/repoinv/pkg/inventory"
)

// querier is the part of githubv4.Client used by graphqlService.
type querier interface {
	Query(ctx context.Context, q interface{}, variables map[string]interface{}) error
}

// graphqlService provides the GraphQL implementation of inventory.GitHubService. Team
// permissions are not exposed by the GraphQL API so they come from the REST service.
type graphqlService struct {
	*service
	newQuerier func(ctx context.Context) (querier, error)
}

// reposQuery is used for retrieving information about repos from the Graphql API.
type reposQuery struct {
	Org struct {
		Repositories struct {
			PageInfo pageInfo
			Nodes    []repoNode
		} `graphql:"repositories(first: $first, after: $cursor, privacy: $privacy, isFork: $isFork, orderBy: $orderBy)"`
	} `graphql:"organization(login: $org)"`
}

// pageInfo is the information needed for paging the Graphql API.
type pageInfo struct {
	EndCursor   string
	HasNextPage bool
}

// repoNode is the repository information returned by the Graphql API.
type repoNode struct {
	DatabaseID      *githubv4.Int `graphql:"databaseId"`
	Name            githubv4.String
	NameWithOwner   githubv4.String
	Description     *githubv4.String
	PrimaryLanguage *struct {
		Name githubv4.String
	}
	Stargazers struct {
		TotalCount githubv4.Int
	}
	ForkCount githubv4.Int
	Issues    struct {
		TotalCount githubv4.Int
	} `graphql:"issues(states: OPEN)"`
	PullRequests struct {
		TotalCount githubv4.Int
	} `graphql:"pullRequests(states: OPEN)"`
	CreatedAt        *githubv4.DateTime
	UpdatedAt        *githubv4.DateTime
	PushedAt         *githubv4.DateTime
	IsPrivate        githubv4.Boolean
	IsArchived       githubv4.Boolean
	IsFork           githubv4.Boolean
	DefaultBranchRef *struct {
		Name githubv4.String
	}
	LicenseInfo *struct {
		SpdxID *githubv4.String `graphql:"spdxId"`
	}
	RepositoryTopics struct {
		Nodes []topicNode
	} `graphql:"repositoryTopics(first: 20)"`
	URL githubv4.URI `graphql:"url"`
}

// topicNode is the topic information returned by the Graphql API.
type topicNode struct {
	Topic struct {
		Name githubv4.String
	}
}

// NewGraphQLService returns a GitHubService that lists repositories with the GraphQL API.
func NewGraphQLService(clients Clients, registry metrics.Registry) inventory.GitHubService {
	rest := NewService(clients, registry).(*service)
	return &graphqlService{
		service: rest,
		newQuerier: func(ctx context.Context) (querier, error) {
			return clients.V4Client(ctx)
		},
	}
}

// WalkRepos implements inventory.GitHubService.
func (s *graphqlService) WalkRepos(ctx context.Context, orgName string, opts *inventory.WalkReposOptions, walkFn inventory.WalkReposFunc) error {
	v4, err := s.newQuerier(ctx)
	if err != nil {
		return err
	}

	if opts == nil {
		opts = &inventory.WalkReposOptions{}
	}

	cursor := ""
	vars := map[string]interface{}{
		"org":     githubv4.String(orgName),
		"first":   githubv4.Int(pageSize),
		"privacy": privacyFilter(opts.Type),
		"isFork":  forkFilter(opts.Type),
		"orderBy": repositoryOrder(opts.Sort, opts.Direction),
	}

	logger := zerolog.Ctx(ctx)
	pages := metrics.GetOrRegisterCounter(metricsKeyPages, s.registry)
	walked := metrics.GetOrRegisterCounter(metricsKeyRepos, s.registry)

	for page := 1; ; page++ {
		vars["cursor"] = gitHubV4StringPtr(cursor)

		var q reposQuery
		if err := v4.Query(ctx, &q, vars); err != nil {
			return asDomainError(orgName, err)
		}

		nodes := q.Org.Repositories.Nodes
		pages.Inc(1)
		logger.Debug().Msgf("Fetched page %d of %s with %d repositories", page, orgName, len(nodes))

		for i := range nodes {
			walked.Inc(1)
			if err := walkFn(nodes[i].asDomainRepo()); err != nil {
				return err
			}
		}

		if !q.Org.Repositories.PageInfo.HasNextPage || len(nodes) == 0 {
			break
		}
		cursor = q.Org.Repositories.PageInfo.EndCursor
	}

	return nil
}

// asDomainRepo converts the repository node to an inventory.Repo.
func (n *repoNode) asDomainRepo() *inventory.Repo {
	r := &inventory.Repo{
		Name:        string(n.Name),
		FullName:    string(n.NameWithOwner),
		Description: stringPtr(n.Description),
		Stars:       intPtr(n.Stargazers.TotalCount),
		Forks:       intPtr(n.ForkCount),
		// Matches the REST API where open issues include pull requests
		OpenIssues: intPtr(n.Issues.TotalCount + n.PullRequests.TotalCount),
		OpenPRs:    intPtr(n.PullRequests.TotalCount),
		CreatedAt:  dateTimePtr(n.CreatedAt),
		UpdatedAt:  dateTimePtr(n.UpdatedAt),
		PushedAt:   dateTimePtr(n.PushedAt),
		Private:    boolPtr(n.IsPrivate),
		Archived:   boolPtr(n.IsArchived),
		Fork:       boolPtr(n.IsFork),
	}

	if n.DatabaseID != nil {
		r.ID = int64(*n.DatabaseID)
	}
	if n.PrimaryLanguage != nil {
		r.Language = stringPtr(&n.PrimaryLanguage.Name)
	}
	if n.DefaultBranchRef != nil {
		r.DefaultBranch = stringPtr(&n.DefaultBranchRef.Name)
	}
	if n.LicenseInfo != nil {
		r.License = stringPtr(n.LicenseInfo.SpdxID)
	}
	if n.URL.URL != nil {
		u := n.URL.String()
		r.URL = &u
	}
	for _, t := range n.RepositoryTopics.Nodes {
		r.Topics = append(r.Topics, string(t.Topic.Name))
	}

	return r
}

// privacyFilter maps a repository type to the GraphQL privacy argument.
func privacyFilter(repoType string) *githubv4.RepositoryPrivacy {
	var p githubv4.RepositoryPrivacy
	switch repoType {
	case inventory.RepoTypePublic:
		p = githubv4.RepositoryPrivacyPublic
	case inventory.RepoTypePrivate:
		p = githubv4.RepositoryPrivacyPrivate
	default:
		return nil
	}
	return &p
}

// forkFilter maps a repository type to the GraphQL isFork argument.
func forkFilter(repoType string) *githubv4.Boolean {
	var b githubv4.Boolean
	switch repoType {
	case inventory.RepoTypeForks:
		b = true
	case inventory.RepoTypeSources:
		b = false
	default:
		return nil
	}
	return &b
}

// repositoryOrder maps a REST sort field and direction to the GraphQL orderBy argument. The
// direction defaults the way the REST API does: ascending by name, otherwise descending.
func repositoryOrder(sort, direction string) *githubv4.RepositoryOrder {
	var field githubv4.RepositoryOrderField
	switch sort {
	case inventory.SortCreated:
		field = githubv4.RepositoryOrderFieldCreatedAt
	case inventory.SortUpdated:
		field = githubv4.RepositoryOrderFieldUpdatedAt
	case inventory.SortPushed:
		field = githubv4.RepositoryOrderFieldPushedAt
	case inventory.SortFullName:
		field = githubv4.RepositoryOrderFieldName
	default:
		return nil
	}

	order := &githubv4.RepositoryOrder{Field: field, Direction: githubv4.OrderDirectionDesc}
	switch {
	case direction == inventory.DirectionAsc:
		order.Direction = githubv4.OrderDirectionAsc
	case direction == "" && sort == inventory.SortFullName:
		order.Direction = githubv4.OrderDirectionAsc
	}
	return order
}

// gitHubV4StringPtr is a helper function that githubv4.String pointer to the specified
// string if it is not empty, otherwise nil.
func gitHubV4StringPtr(value string) *githubv4.String {
	if value == "" {
		return nil
	}
	return (*githubv4.String)(&value)
}

func stringPtr(v *githubv4.String) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}

func intPtr(v githubv4.Int) *int {
	i := int(v)
	return &i
}

func boolPtr(v githubv4.Boolean) *bool {
	b := bool(v)
	return &b
}

func dateTimePtr(v *githubv4.DateTime) *time.Time {
	if v == nil {
		return nil
	}
	t := v.Time
	return &t
}
