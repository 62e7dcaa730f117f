package inventory

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// listSeparator joins multi-valued fields within a single column.
const listSeparator = ", "

// Column is one fixed output column.
type Column struct {
	Name  string
	Value func(r *Repo) string
}

// OutputRow holds the textual value of every column for one repository, in column order.
type OutputRow []string

// Columns are the output columns in the order they are written. Every row has every column;
// a missing value is written as an empty string.
var Columns = []Column{
	{Name: "name", Value: func(r *Repo) string { return r.Name }},
	{Name: "full_name", Value: func(r *Repo) string { return r.FullName }},
	{Name: "description", Value: func(r *Repo) string { return formatString(r.Description) }},
	{Name: "language", Value: func(r *Repo) string { return formatString(r.Language) }},
	{Name: "stars", Value: func(r *Repo) string { return formatInt(r.Stars) }},
	{Name: "forks", Value: func(r *Repo) string { return formatInt(r.Forks) }},
	{Name: "open_issues", Value: func(r *Repo) string { return formatInt(r.OpenIssues) }},
	{Name: "open_prs", Value: func(r *Repo) string { return formatInt(r.OpenPRs) }},
	{Name: "created_at", Value: func(r *Repo) string { return formatTime(r.CreatedAt) }},
	{Name: "updated_at", Value: func(r *Repo) string { return formatTime(r.UpdatedAt) }},
	{Name: "pushed_at", Value: func(r *Repo) string { return formatTime(r.PushedAt) }},
	{Name: "private", Value: func(r *Repo) string { return formatBool(r.Private) }},
	{Name: "archived", Value: func(r *Repo) string { return formatBool(r.Archived) }},
	{Name: "fork", Value: func(r *Repo) string { return formatBool(r.Fork) }},
	{Name: "default_branch", Value: func(r *Repo) string { return formatString(r.DefaultBranch) }},
	{Name: "license", Value: func(r *Repo) string { return formatString(r.License) }},
	{Name: "topics", Value: func(r *Repo) string { return strings.Join(r.Topics, listSeparator) }},
	{Name: "teams", Value: func(r *Repo) string { return formatTeams(r.Teams) }},
	{Name: "url", Value: func(r *Repo) string { return formatString(r.URL) }},

	// Audit columns are empty unless the repositories were audited
	{Name: "commits_on_default_branch", Value: auditValue(func(a *RepoAudit) string { return formatInt(a.CommitsOnDefaultBranch) })},
	{Name: "last_commit_to_default_branch", Value: auditValue(func(a *RepoAudit) string { return formatTime(a.LastCommitToDefaultBranch) })},
	{Name: "has_master_branch_but_no_main", Value: auditValue(func(a *RepoAudit) string { return strconv.FormatBool(a.HasMasterButNoMain) })},
	{Name: "has_license_file", Value: auditValue(func(a *RepoAudit) string { return strconv.FormatBool(a.HasLicenseFile) })},
	{Name: "contributing_relates_to_org_default", Value: auditValue(func(a *RepoAudit) string { return string(a.Contributing) })},
	{Name: "coc_relates_to_org_default", Value: auditValue(func(a *RepoAudit) string { return string(a.CodeOfConduct) })},
	{Name: "missing_why_private", Value: auditValue(func(a *RepoAudit) string { return strconv.FormatBool(a.MissingWhyPrivate) })},
	{Name: "uses_travis_ci", Value: auditValue(func(a *RepoAudit) string { return strconv.FormatBool(a.UsesTravisCI) })},
	{Name: "has_unmerged_configure_renovate_pr", Value: auditValue(func(a *RepoAudit) string { return strconv.FormatBool(a.HasConfigureRenovatePR) })},
	{Name: "has_unmerged_bot_pr", Value: auditValue(func(a *RepoAudit) string { return formatBool(a.HasBotPR) })},
}

// Header returns the column names in output order.
func Header() []string {
	header := make([]string, len(Columns))
	for i, c := range Columns {
		header[i] = c.Name
	}
	return header
}

// Project returns the OutputRow of the specified repository. An EncodingError is returned
// if any value is not valid UTF-8.
func Project(r *Repo) (OutputRow, error) {
	row := make(OutputRow, len(Columns))
	for i, c := range Columns {
		v := c.Value(r)
		if !utf8.ValidString(v) {
			return nil, &EncodingError{Repo: r.FullName, Column: c.Name}
		}
		row[i] = v
	}
	return row, nil
}

// auditValue returns a column value function that reads from the repository's audit.
func auditValue(value func(a *RepoAudit) string) func(r *Repo) string {
	return func(r *Repo) string {
		if r.Audit == nil {
			return ""
		}
		return value(r.Audit)
	}
}

func formatString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func formatBool(v *bool) string {
	if v == nil {
		return ""
	}
	return strconv.FormatBool(*v)
}

// formatTime renders timestamps as RFC 3339 in UTC.
func formatTime(v *time.Time) string {
	if v == nil || v.IsZero() {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}

// formatTeams renders team permissions as "team:permission" pairs.
func formatTeams(teams []*TeamPermission) string {
	pairs := make([]string, 0, len(teams))
	for _, t := range teams {
		pairs = append(pairs, fmt.Sprintf("%s:%s", t.TeamName, t.Permission))
	}
	return strings.Join(pairs, listSeparator)
}
