package inventory

import (
	"context"

	"github.com/golang/mock/gomock"
)

//go:generate mockgen -destination=mock_github.go -package=inventory github.com/SEEK-Jobs/repoinv/pkg/inventory GitHubService,Uploader

// TestPlatform provides a test implementation of Platform that contains mocks.
type TestPlatform struct {
	config *Config

	MockGitHubService *MockGitHubService
	MockUploader      *MockUploader
}

// NewTestPlatform returns a new TestPlatform instance.
func NewTestPlatform(ctrl *gomock.Controller) *TestPlatform {
	config := &Config{
		Name:        "repoinv",
		Version:     "1.0.0",
		GitHubToken: "token",
		Region:      "ap-southeast-2",
	}

	return &TestPlatform{
		config:            config,
		MockGitHubService: NewMockGitHubService(ctrl),
		MockUploader:      NewMockUploader(ctrl),
	}
}

// Config implements Platform.
func (plat *TestPlatform) Config() *Config {
	return plat.config
}

// GitHubService implements Platform.
func (plat *TestPlatform) GitHubService() GitHubService {
	return plat.MockGitHubService
}

// Uploader implements Platform.
func (plat *TestPlatform) Uploader() Uploader {
	return plat.MockUploader
}

// ExpectWalkRepos configures an expectation on the MockGitHubService for WalkRepos to be
// called once for orgName and to walk the specified repos, failing with err afterwards if
// err is not nil.
func (m *MockGitHubService) ExpectWalkRepos(orgName interface{}, repos []*Repo, err error) *gomock.Call {
	return m.
		EXPECT().
		WalkRepos(gomock.Any(), orgName, gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, orgName string, opts *WalkReposOptions, walkFn WalkReposFunc) error {
			for _, r := range repos {
				if err := walkFn(r); err != nil {
					return err
				}
			}
			return err
		})
}
