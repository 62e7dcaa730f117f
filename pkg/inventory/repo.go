package inventory

import (
	"time"
)

// RepoPermission is the type used to define a team's access to a repository.
type RepoPermission string

const (
	RepoPermissionRead     RepoPermission = "pull"     // Read-only access
	RepoPermissionTriage   RepoPermission = "triage"   // Read and manage issues
	RepoPermissionWrite    RepoPermission = "push"     // Read-write access
	RepoPermissionMaintain RepoPermission = "maintain" // Write access plus some settings
	RepoPermissionAdmin    RepoPermission = "admin"    // Full access
)

// Repo is the metadata of a single repository as reported by GitHub. Optional attributes
// are pointers so that a missing value can be told apart from a zero value.
type Repo struct {
	ID            int64             `json:"id,omitempty" yaml:"id,omitempty"`
	Name          string            `json:"name" yaml:"name"`
	FullName      string            `json:"fullName" yaml:"fullName"`
	Description   *string           `json:"description,omitempty" yaml:"description,omitempty"`
	Language      *string           `json:"language,omitempty" yaml:"language,omitempty"`
	Stars         *int              `json:"stars,omitempty" yaml:"stars,omitempty"`
	Forks         *int              `json:"forks,omitempty" yaml:"forks,omitempty"`
	OpenIssues    *int              `json:"openIssues,omitempty" yaml:"openIssues,omitempty"`
	OpenPRs       *int              `json:"openPRs,omitempty" yaml:"openPRs,omitempty"`
	CreatedAt     *time.Time        `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
	UpdatedAt     *time.Time        `json:"updatedAt,omitempty" yaml:"updatedAt,omitempty"`
	PushedAt      *time.Time        `json:"pushedAt,omitempty" yaml:"pushedAt,omitempty"`
	Private       *bool             `json:"private,omitempty" yaml:"private,omitempty"`
	Archived      *bool             `json:"archived,omitempty" yaml:"archived,omitempty"`
	Fork          *bool             `json:"fork,omitempty" yaml:"fork,omitempty"`
	DefaultBranch *string           `json:"defaultBranch,omitempty" yaml:"defaultBranch,omitempty"`
	License       *string           `json:"license,omitempty" yaml:"license,omitempty"`
	Topics        []string          `json:"topics,omitempty" yaml:"topics,omitempty"`
	URL           *string           `json:"url,omitempty" yaml:"url,omitempty"`
	Teams         []*TeamPermission `json:"teams,omitempty" yaml:"teams,omitempty"`
	Audit         *RepoAudit        `json:"audit,omitempty" yaml:"audit,omitempty"`
}

// TeamPermission is a team's permission on a repository.
type TeamPermission struct {
	TeamName   string         `json:"team" yaml:"team"`
	Permission RepoPermission `json:"permission" yaml:"permission"`
}

// IsArchived reports whether GitHub marked the repository as archived.
func (r *Repo) IsArchived() bool {
	return r.Archived != nil && *r.Archived
}

// key returns the value used to recognise a repository that was already seen.
func (r *Repo) key() interface{} {
	if r.ID != 0 {
		return r.ID
	}
	return r.FullName
}
