package filter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"changemakers-go/internal/model"
)

func sampleProjects() []model.Project {
	return []model.Project{
		{ID: "1", Title: "Community Garden Initiative", Location: "Brooklyn, NY", Category: "Environment", Progress: 75, FundingRaised: 15000, FundingGoal: 20000, Volunteers: 28},
		{ID: "2", Title: "Youth Tech Education Program", Location: "San Francisco, CA", Category: "Education", Progress: 45, FundingRaised: 25000, FundingGoal: 50000, Volunteers: 15},
		{ID: "3", Title: "Elderly Care Support Network", Location: "Chicago, IL", Category: "Healthcare", Progress: 90, FundingRaised: 35000, FundingGoal: 40000, Volunteers: 42},
		{ID: "4", Title: "Clean Water Drive", Location: "Miami, FL", Category: "Social", Progress: 100, FundingRaised: 10000, FundingGoal: 10000, Volunteers: 8},
		{ID: "5", Title: "Solar Schools", Location: "New York, NY", Category: "Technology", Progress: 10, FundingRaised: 1000, FundingGoal: 20000, Volunteers: 60},
	}
}

func ids(projects []model.Project) []string {
	out := make([]string, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.ID)
	}
	return out
}

func TestApply_AllReturnsEverythingInOrder(t *testing.T) {
	projects := sampleProjects()
	got := Apply(projects, model.DefaultSelection())
	assert.Equal(t, projects, got)

	got = Apply(projects, nil)
	assert.Equal(t, projects, got)
}

func TestApply_EmptyInput(t *testing.T) {
	sel := model.Selection{model.DimensionFunding: model.FundingOver75}
	got := Apply(nil, sel)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	projects := sampleProjects()
	before := append([]model.Project(nil), projects...)
	got := Apply(projects, model.Selection{model.DimensionCategory: "Education"})
	require.Len(t, got, 1)
	got[0].Title = "changed"
	assert.Equal(t, before, projects)
}

func TestApply_Idempotent(t *testing.T) {
	sel := model.Selection{
		model.DimensionFunding:    model.FundingOver75,
		model.DimensionVolunteers: model.Volunteers26To50,
	}
	once := Apply(sampleProjects(), sel)
	twice := Apply(once, sel)
	assert.Equal(t, once, twice)
	assert.Equal(t, []string{"1", "3"}, ids(once))
}

func TestApply_Conjunction(t *testing.T) {
	tests := []struct {
		name string
		sel  model.Selection
		want []string
	}{
		{"category", model.Selection{model.DimensionCategory: "Healthcare"}, []string{"3"}},
		{"location substring", model.Selection{model.DimensionLocation: "San Francisco"}, []string{"2"}},
		{"location city not in state", model.Selection{model.DimensionLocation: "New York"}, []string{"5"}},
		{"funding under 25", model.Selection{model.DimensionFunding: model.FundingUnder25}, []string{"5"}},
		{"funding 25-50", model.Selection{model.DimensionFunding: model.Funding25To50}, []string{}},
		{"funding 50-75", model.Selection{model.DimensionFunding: model.Funding50To75}, []string{"2"}},
		{"funding over 75", model.Selection{model.DimensionFunding: model.FundingOver75}, []string{"1", "3", "4"}},
		{"fully funded", model.Selection{model.DimensionFunding: model.FundingFullyFunded}, []string{"4"}},
		{"volunteers 1-10", model.Selection{model.DimensionVolunteers: model.Volunteers1To10}, []string{"4"}},
		{"volunteers urgent", model.Selection{model.DimensionVolunteers: model.VolunteersUrgentNeed}, []string{"4"}},
		{"volunteers 50+", model.Selection{model.DimensionVolunteers: model.VolunteersOver50}, []string{"5"}},
		{
			"category and funding",
			model.Selection{model.DimensionCategory: "Environment", model.DimensionFunding: model.Funding50To75},
			[]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(sampleProjects(), tt.sel)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestMatchCategory_Reflexive(t *testing.T) {
	for _, p := range sampleProjects() {
		assert.True(t, MatchCategory(p, p.Category), p.ID)
	}
	assert.False(t, MatchCategory(model.Project{Category: "Education"}, "education"))
}

func TestMatchFunding_Boundaries(t *testing.T) {
	// Raised 15000 of 20000 is exactly 75%.
	a := model.Project{FundingRaised: 15000, FundingGoal: 20000}
	assert.False(t, MatchFunding(a, model.Funding50To75))
	assert.True(t, MatchFunding(a, model.FundingOver75))
	assert.False(t, MatchFunding(a, model.FundingFullyFunded))

	tests := []struct {
		raised float64
		want   string
	}{
		{0, model.FundingUnder25},
		{24.99, model.FundingUnder25},
		{25, model.Funding25To50},
		{49.99, model.Funding25To50},
		{50, model.Funding50To75},
		{74.99, model.Funding50To75},
	}
	for _, tt := range tests {
		p := model.Project{FundingRaised: tt.raised, FundingGoal: 100}
		for _, option := range []string{model.FundingUnder25, model.Funding25To50, model.Funding50To75} {
			assert.Equal(t, option == tt.want, MatchFunding(p, option), "raised=%v option=%s", tt.raised, option)
		}
	}
}

func TestMatchFunding_FullyFundedIffRaisedReachesGoal(t *testing.T) {
	for _, raised := range []float64{0, 9999, 10000, 10001, 25000} {
		p := model.Project{FundingRaised: raised, FundingGoal: 10000}
		assert.Equal(t, raised >= 10000, MatchFunding(p, model.FundingFullyFunded), "raised=%v", raised)
	}
}

func TestMatchFunding_ZeroGoal(t *testing.T) {
	p := model.Project{FundingRaised: 500, FundingGoal: 0}
	ratio := p.FundingRatio()
	assert.False(t, math.IsNaN(ratio) || math.IsInf(ratio, 0))
	assert.Equal(t, 0.0, ratio)
	assert.True(t, MatchFunding(p, model.FundingUnder25))
	assert.False(t, MatchFunding(p, model.FundingFullyFunded))
}

func TestMatchVolunteers_Boundaries(t *testing.T) {
	tests := []struct {
		volunteers int
		option     string
		want       bool
	}{
		{10, model.Volunteers1To10, true},
		{11, model.Volunteers1To10, false},
		{11, model.Volunteers11To25, true},
		{25, model.Volunteers11To25, true},
		{26, model.Volunteers11To25, false},
		{26, model.Volunteers26To50, true},
		{42, model.Volunteers26To50, true},
		{42, model.VolunteersOver50, false},
		{50, model.Volunteers26To50, true},
		{50, model.VolunteersOver50, false},
		{51, model.VolunteersOver50, true},
		{0, model.VolunteersUrgentNeed, true},
		{11, model.VolunteersUrgentNeed, false},
	}
	for _, tt := range tests {
		got := MatchVolunteers(model.Project{Volunteers: tt.volunteers}, tt.option)
		assert.Equal(t, tt.want, got, "volunteers=%d option=%s", tt.volunteers, tt.option)
	}
}

func TestUnknownOptionNeverExcludes(t *testing.T) {
	p := sampleProjects()[0]
	assert.True(t, MatchFunding(p, "Half"))
	assert.True(t, MatchVolunteers(p, "Lots"))
}

func TestRun_Search(t *testing.T) {
	tests := []struct {
		name  string
		query Query
		want  []string
	}{
		{"blank search", Query{Search: "   "}, []string{"1", "2", "3", "4", "5"}},
		{"title case-insensitive", Query{Search: "garden"}, []string{"1"}},
		{"location", Query{Search: "ny"}, []string{"1", "5"}},
		{"no match", Query{Search: "mars"}, []string{}},
		{
			"search and filter",
			Query{Search: "ny", Selection: model.Selection{model.DimensionFunding: model.FundingOver75}},
			[]string{"1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Run(sampleProjects(), tt.query)))
		})
	}
}

func TestMatchSearch(t *testing.T) {
	p := sampleProjects()[2]
	assert.True(t, MatchSearch(p, ""))
	assert.True(t, MatchSearch(p, "CHICAGO"))
	assert.True(t, MatchSearch(p, " elderly care "))
	assert.False(t, MatchSearch(p, "healthcare"))
}
