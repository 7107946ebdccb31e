package feedsync

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"changemakers-go/internal/model"
	"changemakers-go/internal/repositories/memory"
)

type staticSource struct {
	name     string
	projects []model.Project
	err      error
}

func (s *staticSource) Name() string { return s.name }

func (s *staticSource) Fetch(context.Context) ([]model.Project, error) {
	return s.projects, s.err
}

type recordingNotifier struct {
	mu  sync.Mutex
	got []model.Notification
}

func (r *recordingNotifier) Notify(n model.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, n)
}

func garden(raised float64) model.Project {
	return model.Project{ID: "1", Title: "Community Garden Initiative", Location: "Brooklyn, NY", FundingRaised: raised, FundingGoal: 20000, Volunteers: 28}
}

func TestService_SyncStoresAndCounts(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewProjectRepository()
	notifier := &recordingNotifier{}

	seed := &staticSource{name: "seed", projects: []model.Project{garden(15000), {ID: "2", Title: "Youth Tech", FundingGoal: 50000}}}
	broken := &staticSource{name: "feed", err: errors.New("connection refused")}
	svc := NewService(repo, notifier, []Source{seed, broken}, nil)

	stats, err := svc.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{Fetched: 2, Created: 2}, *stats["seed"])
	assert.Equal(t, Stats{}, *stats["feed"])

	stats, err = svc.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{Fetched: 2, Unchanged: 2}, *stats["seed"])
	assert.Empty(t, notifier.got)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestService_AnnouncesMilestones(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewProjectRepository()
	notifier := &recordingNotifier{}
	src := &staticSource{name: "seed", projects: []model.Project{garden(9000)}}
	svc := NewService(repo, notifier, []Source{src}, nil)

	_, err := svc.Sync(ctx)
	require.NoError(t, err)

	// 45% -> 80% crosses 50 and 75; only the highest is announced.
	src.projects = []model.Project{garden(16000)}
	stats, err := svc.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats["seed"].Updated)
	require.Len(t, notifier.got, 1)
	assert.Equal(t, model.NotificationProjectUpdate, notifier.got[0].Type)
	assert.Equal(t, "Community Garden Initiative has reached 75% of its funding goal!", notifier.got[0].Message)

	// Small change without a new milestone.
	src.projects = []model.Project{garden(17000)}
	_, err = svc.Sync(ctx)
	require.NoError(t, err)
	assert.Len(t, notifier.got, 1)

	src.projects = []model.Project{garden(20000)}
	_, err = svc.Sync(ctx)
	require.NoError(t, err)
	require.Len(t, notifier.got, 2)
	assert.Equal(t, "Community Garden Initiative is fully funded with $20,000 raised!", notifier.got[1].Message)
}

func TestService_SyncCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := NewService(memory.NewProjectRepository(), nil, []Source{&staticSource{name: "seed"}}, nil)
	_, err := svc.Sync(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

type blockingSource struct {
	started chan struct{}
	release chan struct{}
}

func (b *blockingSource) Name() string { return "blocking" }

func (b *blockingSource) Fetch(context.Context) ([]model.Project, error) {
	close(b.started)
	<-b.release
	return nil, nil
}

func TestService_RunSkipsOverlap(t *testing.T) {
	src := &blockingSource{started: make(chan struct{}), release: make(chan struct{})}
	svc := NewService(memory.NewProjectRepository(), nil, []Source{src}, nil)

	done := make(chan struct{})
	go func() {
		svc.Run(context.Background())
		close(done)
	}()
	<-src.started

	// Would panic on a second close(started) if it fetched again.
	svc.Run(context.Background())

	close(src.release)
	<-done
}

type waitingSource struct {
	started chan struct{}
}

func (w *waitingSource) Name() string { return "waiting" }

func (w *waitingSource) Fetch(ctx context.Context) ([]model.Project, error) {
	close(w.started)
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestService_CloseCancelsTriggeredSync(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	src := &waitingSource{started: make(chan struct{})}
	notifier := &recordingNotifier{}
	svc := NewService(memory.NewProjectRepository(), notifier, []Source{src}, nil)

	require.True(t, svc.Trigger())
	<-src.started

	svc.Close()
	assert.False(t, svc.Trigger())
	assert.Empty(t, notifier.got)
}
