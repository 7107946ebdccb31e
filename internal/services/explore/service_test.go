package explore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"changemakers-go/internal/filter"
	"changemakers-go/internal/model"
	"changemakers-go/internal/repositories"
	"changemakers-go/internal/repositories/memory"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	repo := memory.NewProjectRepository()
	for _, p := range []model.Project{
		{ID: "1", Title: "Community Garden Initiative", Location: "Brooklyn, NY", Category: "Environment", FundingRaised: 15000, FundingGoal: 20000, Volunteers: 28},
		{ID: "2", Title: "Youth Tech Education Program", Location: "San Francisco, CA", Category: "Education", FundingRaised: 25000, FundingGoal: 50000, Volunteers: 15},
		{ID: "3", Title: "Elderly Care Support Network", Location: "Chicago, IL", Category: "Healthcare", FundingRaised: 35000, FundingGoal: 40000, Volunteers: 42},
	} {
		_, _, err := repo.Upsert(context.Background(), p)
		require.NoError(t, err)
	}
	return NewService(repo, nil)
}

func projectIDs(projects []model.Project) []string {
	out := make([]string, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.ID)
	}
	return out
}

func TestService_Search(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	all, err := svc.Search(ctx, filter.Query{})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, projectIDs(all))

	got, err := svc.Search(ctx, filter.Query{
		Selection: model.Selection{model.DimensionVolunteers: model.Volunteers26To50},
		Search:    "care",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, projectIDs(got))

	_, err = svc.Search(ctx, filter.Query{Selection: model.Selection{model.DimensionFunding: "Half"}})
	assert.ErrorIs(t, err, filter.ErrUnknownOption)
}

func TestService_Project(t *testing.T) {
	svc := newTestService(t)

	p, err := svc.Project(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "Youth Tech Education Program", p.Title)

	_, err = svc.Project(context.Background(), "9")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestService_SessionLifecycle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	sess := svc.NewSession()
	require.NotEmpty(t, sess.ID)
	assert.Zero(t, sess.ActiveCount)
	assert.Equal(t, model.All, sess.Selection.Get(model.DimensionCategory))

	sess, err := svc.Select(sess.ID, model.DimensionFunding, model.FundingOver75)
	require.NoError(t, err)
	assert.Equal(t, 1, sess.ActiveCount)

	got, err := svc.SessionProjects(ctx, sess.ID, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3"}, projectIDs(got))

	got, err = svc.SessionProjects(ctx, sess.ID, "garden")
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, projectIDs(got))

	_, err = svc.Select(sess.ID, model.DimensionFunding, "Half")
	assert.ErrorIs(t, err, filter.ErrUnknownOption)
	current, err := svc.Session(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, model.FundingOver75, current.Selection.Get(model.DimensionFunding))

	sess, err = svc.Reset(sess.ID)
	require.NoError(t, err)
	assert.Zero(t, sess.ActiveCount)

	svc.CloseSession(sess.ID)
	_, err = svc.Session(sess.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = svc.Select(sess.ID, model.DimensionCategory, "Social")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestService_SessionsAreIndependent(t *testing.T) {
	svc := newTestService(t)

	a := svc.NewSession()
	b := svc.NewSession()
	_, err := svc.Select(a.ID, model.DimensionCategory, "Education")
	require.NoError(t, err)

	got, err := svc.Session(b.ID)
	require.NoError(t, err)
	assert.Equal(t, model.All, got.Selection.Get(model.DimensionCategory))
}

func TestService_Prune(t *testing.T) {
	svc := newTestService(t)
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	stale := svc.NewSession()
	now = now.Add(2 * time.Hour)
	fresh := svc.NewSession()

	assert.Equal(t, 1, svc.Prune(time.Hour))
	_, err := svc.Session(stale.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = svc.Session(fresh.ID)
	assert.NoError(t, err)
}

func TestService_ReadsKeepSessionAlive(t *testing.T) {
	svc := newTestService(t)
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	viewer := svc.NewSession()
	lister := svc.NewSession()
	idle := svc.NewSession()

	now = now.Add(90 * time.Minute)
	_, err := svc.Session(viewer.ID)
	require.NoError(t, err)
	_, err = svc.SessionProjects(context.Background(), lister.ID, "")
	require.NoError(t, err)

	now = now.Add(45 * time.Minute)
	assert.Equal(t, 1, svc.Prune(time.Hour))

	_, err = svc.Session(idle.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = svc.Session(viewer.ID)
	assert.NoError(t, err)
	_, err = svc.Session(lister.ID)
	assert.NoError(t, err)
}

func TestService_Create(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, NewProject{
		Title:       "  River Cleanup  ",
		Description: "Monthly cleanup along the river banks",
		Category:    "Environment",
		Location:    "Miami, FL",
		FundingGoal: 5000,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "River Cleanup", p.Title)
	assert.Zero(t, p.FundingRaised)

	stored, err := svc.Project(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, stored)

	all, err := svc.Search(ctx, filter.Query{})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", p.ID}, projectIDs(all))
}

func TestService_CreateValidation(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(context.Background(), NewProject{Title: " ", FundingGoal: 0})
	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "project", verr.Kind)
	assert.ElementsMatch(t,
		[]string{"title", "description", "category", "location", "fundingGoal"},
		mapKeys(verr.Fields),
	)

	_, err = svc.Create(context.Background(), NewProject{
		ID: "1", Title: "Dup", Description: "d", Category: "Social", Location: "Miami", FundingGoal: 10,
	})
	assert.ErrorIs(t, err, repositories.ErrAlreadyExists)
}

func mapKeys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
