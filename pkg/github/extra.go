package github

import (
	"context"
	"fmt"
	"net/url"
	"reflect"

	"github.com/google/go-github/github"
	"github.com/google/go-querystring/query"
)

// mediaTypeTopicsPreview is required for the topics of each repository to be returned.
const mediaTypeTopicsPreview = "application/vnd.github.mercy-preview+json"

// orgReposOptions extends github.RepositoryListByOrgOptions with the sort and direction
// parameters that the org repositories endpoint accepts.
type orgReposOptions struct {
	Type      string `url:"type,omitempty"`
	Sort      string `url:"sort,omitempty"`
	Direction string `url:"direction,omitempty"`

	github.ListOptions
}

// listOrgRepos is a copy of ListByOrg in github.com/google/go-github/github/repos.go
// modified to accept orgReposOptions so that the listing can be sorted.
func listOrgRepos(ctx context.Context, v3 *github.Client, orgName string, opt *orgReposOptions) ([]*github.Repository, *github.Response, error) {
	u, err := addOptions(fmt.Sprintf("orgs/%v/repos", orgName), opt)
	if err != nil {
		return nil, nil, err
	}

	req, err := v3.NewRequest("GET", u, nil)
	if err != nil {
		return nil, nil, err
	}

	req.Header.Set("Accept", mediaTypeTopicsPreview)

	var repos []*github.Repository
	resp, err := v3.Do(ctx, req, &repos)
	if err != nil {
		return nil, resp, err
	}

	return repos, resp, nil
}

// addOptions is a copy of addOptions in github.com/google/go-github/github/github.go
// which we need to support listOrgRepos above but which is private.
func addOptions(s string, opt interface{}) (string, error) {
	v := reflect.ValueOf(opt)
	if v.Kind() == reflect.Ptr && v.IsNil() {
		return s, nil
	}

	u, err := url.Parse(s)
	if err != nil {
		return s, err
	}

	qs, err := query.Values(opt)
	if err != nil {
		return s, err
	}

	u.RawQuery = qs.Encode()
	return u.String(), nil
}
