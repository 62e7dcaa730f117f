package cmd

import (
	"context"
	"fmt"
	"strings"

	awssdk "github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/palantir/go-githubapp/githubapp"
	"github.com/pkg/errors"

	"github.com/SEEK-Jobs/repoinv/pkg/aws"
	"github.com/SEEK-Jobs/repoinv/pkg/github"
	"github.com/SEEK-Jobs/repoinv/pkg/inventory"
)

const (
	// APIREST selects the GitHub REST API
	APIREST = "rest"
	// APIGraphQL selects the GitHub GraphQL API
	APIGraphQL = "graphql"
)

// PlatformOptions configures NewPlatform.
type PlatformOptions struct {
	Tokens           TokenSources
	API              string // APIREST or APIGraphQL
	Retries          int    // Retries of transient GitHub failures
	GitHubAPIURL     string // Overrides GITHUB_API_URL
	GitHubGraphQLURL string // Overrides GITHUB_GRAPHQL_URL
}

// platform provides the implementation of inventory.Platform.
type platform struct {
	config        *inventory.Config
	gitHubService inventory.GitHubService
	uploader      inventory.Uploader
}

// NewPlatform returns a new inventory.Platform.
func NewPlatform(ctx context.Context, opts *PlatformOptions) (inventory.Platform, error) {
	sess, err := NewAWSSession()
	if err != nil {
		return nil, err
	}

	secretsManager := aws.NewSecretsManager(sess)
	config, err := loadConfig(ctx, opts, secretsManager.SecretValue)
	if err != nil {
		return nil, err
	}

	clientFactory := newGitHubClientFactory(config)

	var gitHubService inventory.GitHubService
	switch strings.ToLower(opts.API) {
	case "", APIREST:
		gitHubService = github.NewService(clientFactory, metricsRegistry)
	case APIGraphQL:
		gitHubService = github.NewGraphQLService(clientFactory, metricsRegistry)
	default:
		return nil, errors.Errorf("unknown API '%s' (must be one of '%s' or '%s')", opts.API, APIREST, APIGraphQL)
	}

	return &platform{
		config:        config,
		gitHubService: inventory.NewRetryingGitHubService(gitHubService, inventory.DefaultRetryConfig(opts.Retries)),
		uploader:      aws.NewS3(sess),
	}, nil
}

// Config implements inventory.Platform.Config.
func (plat *platform) Config() *inventory.Config {
	return plat.config
}

// GitHubService implements inventory.Platform.GitHubService.
func (plat *platform) GitHubService() inventory.GitHubService {
	return plat.gitHubService
}

// Uploader implements inventory.Platform.Uploader.
func (plat *platform) Uploader() inventory.Uploader {
	return plat.uploader
}

// newGitHubClientFactory returns a configured github.ClientFactory.
func newGitHubClientFactory(c *inventory.Config) *github.ClientFactory {
	// Only token clients are created so the App ID and private key are never used
	clientCreator := githubapp.NewClientCreator(c.GitHubAPIURL, c.GitHubGraphQLURL, 0, nil,
		githubapp.WithClientUserAgent(fmt.Sprintf("%s/%s", c.Name, c.Version)),
		githubapp.WithClientMiddleware(
			githubapp.ClientMetrics(metricsRegistry),
		))

	return github.NewTokenClientFactory(clientCreator, c.GitHubToken)
}

// NewAWSSession creates a new AWS session.Session.
func NewAWSSession() (*session.Session, error) {
	region, err := LookupRegion()
	if err != nil {
		return nil, err
	}

	return session.NewSession(&awssdk.Config{Region: &region})
}
