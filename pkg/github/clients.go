package github

import (
	"context"
	"errors"

	"github.com/google/go-github/github"
	"github.com/palantir/go-githubapp/githubapp"
	"github.com/shurcooL/githubv4"
)

var (
	// missingToken is the error returned when a client is requested without a token.
	missingToken = errors.New("no GitHub token configured")
)

// Clients provides the GitHub clients used by the services in this package.
type Clients interface {
	// V3Client returns a client for the REST API.
	V3Client(ctx context.Context) (*github.Client, error)

	// V4Client returns a client for the GraphQL API.
	V4Client(ctx context.Context) (*githubv4.Client, error)
}

// ClientFactory creates GitHub clients that authenticate with a personal access token.
type ClientFactory struct {
	token string
	githubapp.ClientCreator
}

// NewTokenClientFactory returns a ClientFactory that creates user token-based GitHub clients.
func NewTokenClientFactory(clientCreator githubapp.ClientCreator, token string) *ClientFactory {
	return &ClientFactory{token: token, ClientCreator: clientCreator}
}

// V3Client implements Clients.
func (f *ClientFactory) V3Client(ctx context.Context) (*github.Client, error) {
	if f.token == "" {
		return nil, missingToken
	}
	return f.NewTokenClient(f.token)
}

// V4Client implements Clients.
func (f *ClientFactory) V4Client(ctx context.Context) (*githubv4.Client, error) {
	if f.token == "" {
		return nil, missingToken
	}
	return f.NewTokenV4Client(f.token)
}
