package cmd

import (
	"context"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/SEEK-Jobs/repoinv/pkg/build"
	"github.com/SEEK-Jobs/repoinv/pkg/inventory"
	"github.com/SEEK-Jobs/repoinv/pkg/yaml"
)

// FileConfig is the optional YAML configuration file. Values set on the command line take
// precedence over the values in the file.
type FileConfig struct {
	OrgName          string `yaml:"orgName"`
	Output           string `yaml:"output"`
	API              string `yaml:"api"`
	Type             string `yaml:"type"`
	Sort             string `yaml:"sort"`
	Direction        string `yaml:"direction"`
	SkipArchived     *bool  `yaml:"skipArchived"`
	Teams            *bool  `yaml:"teams"`
	Audit            *bool  `yaml:"audit"`
	BotUser          string `yaml:"botUser"`
	Retries          *int   `yaml:"retries"`
	TokenFile        string `yaml:"tokenFile"`
	TokenSecretID    string `yaml:"tokenSecretID"`
	UploadBucket     string `yaml:"uploadBucket"`
	UploadKey        string `yaml:"uploadKey"`
	GitHubAPIURL     string `yaml:"gitHubAPIURL"`
	GitHubGraphQLURL string `yaml:"gitHubGraphQLURL"`
}

// LoadFileConfig reads the configuration file at path. Unknown keys are rejected.
func LoadFileConfig(path string) (*FileConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read config file '%s'", path)
	}

	var c FileConfig
	if err := yaml.NewCodec().Decode(b, &c); err != nil {
		return nil, errors.Wrapf(err, "could not parse config file '%s'", path)
	}

	return &c, nil
}

// TokenSources lists the places a GitHub token can come from, in order of precedence.
// The environment is consulted when none of them is set.
type TokenSources struct {
	Token    string // Literal token
	File     string // File containing the token
	SecretID string // ID of an AWS Secrets Manager secret containing the token
}

// secretValueFunc returns the value of the secret with the specified ID.
type secretValueFunc func(ctx context.Context, id string) (string, error)

// resolveToken returns the GitHub token from the first of the sources that is set.
func resolveToken(ctx context.Context, src TokenSources, secretValue secretValueFunc) (string, error) {
	var token string
	switch {
	case src.Token != "":
		token = src.Token
	case src.File != "":
		t, err := readTokenFile(src.File)
		if err != nil {
			return "", err
		}
		token = t
	case src.SecretID != "":
		t, err := secretValue(ctx, src.SecretID)
		if err != nil {
			return "", errors.Wrapf(err, "could not retrieve secret with ID '%s'", src.SecretID)
		}
		token = t
	default:
		file, err := LookupGitHubTokenFile()
		if err != nil {
			return "", err
		}

		if file != "" {
			t, err := readTokenFile(file)
			if err != nil {
				return "", err
			}
			token = t
		} else if token, err = LookupGitHubToken(); err != nil {
			return "", err
		}
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", errors.Errorf("a GitHub token is required: use --token, --token-file, --token-secret-id or set %s", gitHubTokenEnvKey)
	}

	return token, nil
}

// readTokenFile returns the token held in the specified file.
func readTokenFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "could not read token file '%s'", path)
	}
	return strings.TrimSpace(string(b)), nil
}

// loadConfig builds and returns the inventory.Config.
func loadConfig(ctx context.Context, opts *PlatformOptions, secretValue secretValueFunc) (*inventory.Config, error) {
	region, err := LookupRegion()
	if err != nil {
		return nil, err
	}

	apiURL := opts.GitHubAPIURL
	if apiURL == "" {
		if apiURL, err = LookupGitHubAPIURL(); err != nil {
			return nil, err
		}
	}

	graphQLURL := opts.GitHubGraphQLURL
	if graphQLURL == "" {
		if graphQLURL, err = LookupGitHubGraphQLURL(); err != nil {
			return nil, err
		}
	}

	token, err := resolveToken(ctx, opts.Tokens, secretValue)
	if err != nil {
		return nil, err
	}

	return &inventory.Config{
		Name:             build.Name,
		Version:          build.Version,
		GitHubAPIURL:     apiURL,
		GitHubGraphQLURL: graphQLURL,
		GitHubToken:      token,
		Region:           region,
	}, nil
}
