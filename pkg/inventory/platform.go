package inventory

import (
	"context"
	"io"
)

// Platform provides the domain interface for interacting with the application configuration
// as well as all backend services.
type Platform interface {
	Config() *Config
	GitHubService() GitHubService
	Uploader() Uploader
}

// Uploader copies a finished export to remote storage.
type Uploader interface {
	// Upload stores body under the specified bucket and key.
	Upload(ctx context.Context, bucket, key string, body io.ReadSeeker) error
}

// Config provides the application configuration.
type Config struct {
	Name             string // Name of this application
	Version          string // Version of this application
	GitHubAPIURL     string // Base URL of the GitHub REST API
	GitHubGraphQLURL string // URL of the GitHub GraphQL API
	GitHubToken      string `json:"-" yaml:"-"` // Token used to authenticate with GitHub
	Region           string // AWS region used for uploads and secrets
}
