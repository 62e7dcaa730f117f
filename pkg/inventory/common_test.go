package inventory

import (
	"fmt"
	"time"
)

func stringPtr(v string) *string {
	return &v
}

func intPtr(v int) *int {
	return &v
}

func boolPtr(v bool) *bool {
	return &v
}

func timePtr(v time.Time) *time.Time {
	return &v
}

// testRepo returns a fully populated Repo with the specified ID.
func testRepo(id int64) *Repo {
	name := fmt.Sprintf("repo-%d", id)
	created := time.Date(2019, 3, 12, 23, 41, 36, 0, time.UTC)

	return &Repo{
		ID:            id,
		Name:          name,
		FullName:      "SEEK-Jobs/" + name,
		Description:   stringPtr("Repository " + name),
		Language:      stringPtr("Go"),
		Stars:         intPtr(int(id) * 10),
		Forks:         intPtr(int(id)),
		OpenIssues:    intPtr(0),
		CreatedAt:     timePtr(created),
		UpdatedAt:     timePtr(created.Add(24 * time.Hour)),
		PushedAt:      timePtr(created.Add(48 * time.Hour)),
		Private:       boolPtr(true),
		Archived:      boolPtr(false),
		Fork:          boolPtr(false),
		DefaultBranch: stringPtr("master"),
		License:       stringPtr("MIT"),
		Topics:        []string{"go", "tools"},
		URL:           stringPtr("https://github.com/SEEK-Jobs/" + name),
	}
}

// testRepos returns n fully populated repos with IDs 1 to n.
func testRepos(n int) []*Repo {
	var repos []*Repo
	for i := 1; i <= n; i++ {
		repos = append(repos, testRepo(int64(i)))
	}
	return repos
}
