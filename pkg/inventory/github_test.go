package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

// newTestRetryService returns a retryService around delegate that records its waits
// instead of sleeping.
func newTestRetryService(delegate GitHubService, maxRetries int, waits *[]time.Duration) *retryService {
	return &retryService{
		delegate: delegate,
		config:   &RetryConfig{MaxRetries: maxRetries, InitialBackoff: time.Second, MaxBackoff: 3 * time.Second, BackoffMultiplier: 2},
		sleep: func(ctx context.Context, d time.Duration) error {
			*waits = append(*waits, d)
			return nil
		},
	}
}

func TestNewRetryingGitHubServiceWithoutRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	delegate := NewMockGitHubService(ctrl)

	if s := NewRetryingGitHubService(delegate, DefaultRetryConfig(0)); s != delegate {
		t.Error("expected the delegate to be returned when no retries are configured")
	}
}

func TestRetryServiceRestartsWalk(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	delegate := NewMockGitHubService(ctrl)
	haveRepos := testRepos(3)

	gomock.InOrder(
		delegate.ExpectWalkRepos("SEEK-Jobs", haveRepos[:2], &TransientNetworkError{OrgName: "SEEK-Jobs"}),
		delegate.ExpectWalkRepos("SEEK-Jobs", haveRepos, nil),
	)

	var waits []time.Duration
	s := newTestRetryService(delegate, 2, &waits)

	var got []*Repo
	if err := s.WalkRepos(context.Background(), "SEEK-Jobs", &WalkReposOptions{}, func(r *Repo) error {
		got = append(got, r)
		return nil
	}); err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(haveRepos, got); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}

	if len(waits) != 1 {
		t.Errorf("expected 1 wait, got %d", len(waits))
	}
}

func TestRetryServiceGivesUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	delegate := NewMockGitHubService(ctrl)
	delegate.
		EXPECT().
		WalkRepos(gomock.Any(), "SEEK-Jobs", gomock.Any(), gomock.Any()).
		Return(&TransientNetworkError{OrgName: "SEEK-Jobs"}).
		Times(3)

	var waits []time.Duration
	s := newTestRetryService(delegate, 2, &waits)

	err := s.WalkRepos(context.Background(), "SEEK-Jobs", &WalkReposOptions{}, func(r *Repo) error {
		t.Error("no repos expected")
		return nil
	})
	if got := Category(err); got != CategoryTransient {
		t.Errorf("expected %s, got %s", CategoryTransient, got)
	}

	if len(waits) != 2 {
		t.Fatalf("expected 2 waits, got %d", len(waits))
	}
	if waits[0] < time.Second || waits[1] < 2*time.Second {
		t.Errorf("expected exponential backoff, got %v", waits)
	}
}

func TestRetryServiceDoesNotRetryRateLimits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	delegate := NewMockGitHubService(ctrl)
	wantErr := &RateLimitError{OrgName: "SEEK-Jobs"}
	delegate.
		EXPECT().
		ListRepoTeams(gomock.Any(), "SEEK-Jobs", "repo-1").
		Return(nil, wantErr).
		Times(1)

	var waits []time.Duration
	s := newTestRetryService(delegate, 3, &waits)

	_, err := s.ListRepoTeams(context.Background(), "SEEK-Jobs", "repo-1")
	if errors.Cause(err) != wantErr {
		t.Errorf("expected %v, got %v", wantErr, err)
	}
	if len(waits) != 0 {
		t.Errorf("expected no waits, got %v", waits)
	}
}

func TestRetryServiceBackoffIsCapped(t *testing.T) {
	s := newTestRetryService(nil, 10, nil)

	// 10% jitter on top of the 3s cap
	if got := s.backoff(8); got < 3*time.Second || got > 3300*time.Millisecond {
		t.Errorf("expected backoff between 3s and 3.3s, got %s", got)
	}
}
