package inventory

import (
	"context"
	"strings"

	set "github.com/deckarep/golang-set"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// ListRequest describes which repositories of an organisation to list.
type ListRequest struct {
	OrgName      string
	Options      WalkReposOptions
	SkipArchived bool   // Leave archived repositories out of the listing
	IncludeTeams bool   // Look up the teams that have access to each repository
	Audit        bool   // Check each repository against the organisation's conventions
	BotUser      string // Login of the bot whose open pull requests are reported by an audit
}

// Listing is the result of ListRepositories.
type Listing struct {
	Repos      []*Repo // Kept repositories in the order GitHub returned them
	Archived   int     // Archived repositories left out
	Duplicates int     // Repositories returned more than once across pages
	Total      int     // Every repository GitHub returned
}

// ListRepositories returns the repositories of the requested organisation. The listing is all
// or nothing: if any page fails the pages already fetched are discarded and the error returned.
func ListRepositories(ctx context.Context, plat Platform, req *ListRequest) (*Listing, error) {
	orgName := strings.TrimSpace(req.OrgName)
	if orgName == "" {
		return nil, errors.New("an organisation name is required")
	}

	logger := zerolog.Ctx(ctx)
	gitHub := plat.GitHubService()
	seen := set.NewThreadUnsafeSet()
	listing := &Listing{}

	logger.Info().Msgf("Listing repositories of %s", orgName)
	if err := gitHub.WalkRepos(ctx, orgName, &req.Options, func(r *Repo) error {
		listing.Total++

		if !seen.Add(r.key()) {
			logger.Debug().Msgf("Skipping repeated repository %s", r.FullName)
			listing.Duplicates++
			return nil
		}

		if req.SkipArchived && r.IsArchived() {
			logger.Debug().Msgf("Skipping archived repository %s", r.FullName)
			listing.Archived++
			return nil
		}

		listing.Repos = append(listing.Repos, r)
		return nil
	}); err != nil {
		return nil, errors.Wrapf(err, "could not list repositories of '%s'", orgName)
	}

	if req.IncludeTeams {
		for _, r := range listing.Repos {
			teams, err := gitHub.ListRepoTeams(ctx, orgName, r.Name)
			if err != nil {
				return nil, errors.Wrapf(err, "could not list teams of repository '%s'", r.FullName)
			}
			r.Teams = teams
		}
	}

	if req.Audit {
		a, err := newAuditor(ctx, gitHub, orgName, req.BotUser)
		if err != nil {
			return nil, errors.Wrapf(err, "could not read the default community files of '%s'", orgName)
		}

		for i, r := range listing.Repos {
			logger.Info().Msgf("Auditing %s, repository %d of %d", r.FullName, i+1, len(listing.Repos))
			if err := a.audit(ctx, r); err != nil {
				return nil, errors.Wrapf(err, "could not audit repository '%s'", r.FullName)
			}
		}
	}

	logger.Info().Msgf("%d to write | %d archived | %d duplicates | %d total",
		len(listing.Repos), listing.Archived, listing.Duplicates, listing.Total)

	return listing, nil
}
