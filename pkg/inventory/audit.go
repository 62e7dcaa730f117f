package inventory

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// orgDefaultRepo holds the community files shared by an organisation's repositories
	orgDefaultRepo = ".github"

	contributingFile   = "CONTRIBUTING.md"
	codeOfConductFile  = "CODE_OF_CONDUCT.md"
	whyPrivateFile     = "WHY_PRIVATE.md"
	travisCIConfigFile = ".travis.yml"

	renovateConfigureTitle = "Configure Renovate"
	renovateUser           = "renovate[bot]"

	defaultGitHubURL = "https://github.com"
)

// FileRelation describes how a repository's copy of a community file relates to the copy in
// the organisation's .github repository.
type FileRelation string

const (
	FileLinksToDefault FileRelation = "links to"
	FileMatchesDefault FileRelation = "matches"
	FileMissing        FileRelation = "missing"
	FileNoOrgDefault   FileRelation = "no organisation default"
	FileUnrelated      FileRelation = "unrelated"
)

// RepoAudit holds what was found when a repository was checked against the organisation's
// conventions.
type RepoAudit struct {
	CommitsOnDefaultBranch    *int         `json:"commitsOnDefaultBranch,omitempty" yaml:"commitsOnDefaultBranch,omitempty"`
	LastCommitToDefaultBranch *time.Time   `json:"lastCommitToDefaultBranch,omitempty" yaml:"lastCommitToDefaultBranch,omitempty"`
	HasMasterButNoMain        bool         `json:"hasMasterButNoMain" yaml:"hasMasterButNoMain"`
	HasLicenseFile            bool         `json:"hasLicenseFile" yaml:"hasLicenseFile"`
	Contributing              FileRelation `json:"contributing" yaml:"contributing"`
	CodeOfConduct             FileRelation `json:"codeOfConduct" yaml:"codeOfConduct"`
	MissingWhyPrivate         bool         `json:"missingWhyPrivate" yaml:"missingWhyPrivate"`
	UsesTravisCI              bool         `json:"usesTravisCI" yaml:"usesTravisCI"`
	HasConfigureRenovatePR    bool         `json:"hasConfigureRenovatePR" yaml:"hasConfigureRenovatePR"`
	HasBotPR                  *bool        `json:"hasBotPR,omitempty" yaml:"hasBotPR,omitempty"` // nil when no bot user was given
}

// auditor checks the repositories of one organisation against the organisation's defaults.
type auditor struct {
	gitHub        GitHubService
	orgName       string
	botUser       string
	contributing  *string // Organisation default CONTRIBUTING.md, nil if there is none
	codeOfConduct *string // Organisation default CODE_OF_CONDUCT.md, nil if there is none
}

// newAuditor returns an auditor for the specified org, reading the org's default community
// files once.
func newAuditor(ctx context.Context, gitHub GitHubService, orgName, botUser string) (*auditor, error) {
	contributing, err := gitHub.GetFileContent(ctx, orgName, orgDefaultRepo, contributingFile)
	if err != nil {
		return nil, err
	}

	codeOfConduct, err := gitHub.GetFileContent(ctx, orgName, orgDefaultRepo, codeOfConductFile)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().
		Bool("contributing", contributing != nil).
		Bool("codeOfConduct", codeOfConduct != nil).
		Msgf("Read default community files of %s", orgName)

	return &auditor{
		gitHub:        gitHub,
		orgName:       orgName,
		botUser:       botUser,
		contributing:  contributing,
		codeOfConduct: codeOfConduct,
	}, nil
}

// audit sets the Audit and OpenPRs of the specified repository.
func (a *auditor) audit(ctx context.Context, r *Repo) error {
	res := &RepoAudit{}

	if branch := formatString(r.DefaultBranch); branch != "" {
		stats, err := a.gitHub.GetBranchStats(ctx, a.orgName, r.Name, branch)
		if err != nil {
			return err
		}
		if stats != nil {
			commits := stats.Commits
			res.CommitsOnDefaultBranch = &commits
			res.LastCommitToDefaultBranch = stats.LastCommitAt
		}
	}

	branches, err := a.gitHub.ListBranchNames(ctx, a.orgName, r.Name)
	if err != nil {
		return err
	}
	res.HasMasterButNoMain = contains(branches, "master") && !contains(branches, "main")

	if res.HasLicenseFile, err = a.gitHub.HasLicense(ctx, a.orgName, r.Name); err != nil {
		return err
	}

	if res.Contributing, err = a.relationToDefault(ctx, r, contributingFile, a.contributing); err != nil {
		return err
	}
	if res.CodeOfConduct, err = a.relationToDefault(ctx, r, codeOfConductFile, a.codeOfConduct); err != nil {
		return err
	}

	if r.Private != nil && *r.Private {
		whyPrivate, err := a.gitHub.GetFileContent(ctx, a.orgName, r.Name, whyPrivateFile)
		if err != nil {
			return err
		}
		res.MissingWhyPrivate = whyPrivate == nil
	}

	travis, err := a.gitHub.GetFileContent(ctx, a.orgName, r.Name, travisCIConfigFile)
	if err != nil {
		return err
	}
	res.UsesTravisCI = travis != nil

	pulls, err := a.gitHub.ListOpenPullRequests(ctx, a.orgName, r.Name)
	if err != nil {
		return err
	}

	openPRs := len(pulls)
	r.OpenPRs = &openPRs

	var hasBotPR bool
	for _, p := range pulls {
		if p.Title == renovateConfigureTitle && p.Author == renovateUser {
			res.HasConfigureRenovatePR = true
		}
		if a.botUser != "" && p.Author == a.botUser {
			hasBotPR = true
		}
	}
	if a.botUser != "" {
		res.HasBotPR = &hasBotPR
	}

	r.Audit = res
	return nil
}

// relationToDefault compares the repository's copy of file with the organisation default.
func (a *auditor) relationToDefault(ctx context.Context, r *Repo, file string, orgDefault *string) (FileRelation, error) {
	if orgDefault == nil {
		return FileNoOrgDefault, nil
	}

	content, err := a.gitHub.GetFileContent(ctx, a.orgName, r.Name, file)
	if err != nil {
		return "", err
	}

	switch {
	case content == nil:
		return FileMissing, nil
	case *content == *orgDefault:
		return FileMatchesDefault, nil
	case strings.Contains(*content, a.defaultFileURL(r, file)):
		return FileLinksToDefault, nil
	default:
		return FileUnrelated, nil
	}
}

// defaultFileURL returns the web URL of the organisation default of file, on the same
// GitHub host as the repository.
func (a *auditor) defaultFileURL(r *Repo, file string) string {
	base := defaultGitHubURL
	if r.URL != nil {
		if u, err := url.Parse(*r.URL); err == nil && u.Host != "" {
			base = u.Scheme + "://" + u.Host
		}
	}
	return fmt.Sprintf("%s/%s/%s/blob/main/%s", base, a.orgName, orgDefaultRepo, file)
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
