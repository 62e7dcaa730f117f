package cmd

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	regionEnvKey           = "REGION"
	gitHubTokenEnvKey      = "GITHUB_TOKEN"
	gitHubTokenFileEnvKey  = "GITHUB_TOKEN_FILE"
	gitHubAPIURLEnvKey     = "GITHUB_API_URL"
	gitHubGraphQLURLEnvKey = "GITHUB_GRAPHQL_URL"

	// Defaults config values
	defaultRegion           = "ap-southeast-2"
	defaultGitHubAPIURL     = "https://api.github.com"
	defaultGitHubGraphQLURL = "https://api.github.com/graphql"
)

func LookupRegion() (string, error) {
	return configValue(regionEnvKey, defaultRegion), nil
}

func LookupGitHubToken() (string, error) {
	return strings.TrimSpace(configValue(gitHubTokenEnvKey, "")), nil
}

func LookupGitHubTokenFile() (string, error) {
	return configValue(gitHubTokenFileEnvKey, ""), nil
}

func LookupGitHubAPIURL() (string, error) {
	return configValue(gitHubAPIURLEnvKey, defaultGitHubAPIURL), nil
}

func LookupGitHubGraphQLURL() (string, error) {
	return configValue(gitHubGraphQLURLEnvKey, defaultGitHubGraphQLURL), nil
}

// LoadDotEnv adds the variables in the specified .env files to the environment. Variables
// that are already set are left alone and missing files are ignored.
func LoadDotEnv(filenames ...string) error {
	for _, f := range filenames {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			continue
		}

		if err := godotenv.Load(f); err != nil {
			return errors.Wrapf(err, "could not load '%s'", f)
		}
	}
	return nil
}

func configValue(envKey, defaultValue string) string {
	if v, ok := os.LookupEnv(envKey); ok {
		return v
	}
	return defaultValue
}
