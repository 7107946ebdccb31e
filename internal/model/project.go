package model

// Project is a fundraising/volunteering initiative shown in the feed.
type Project struct {
	ID            string  `json:"id" yaml:"id"`
	Title         string  `json:"title" yaml:"title"`
	Description   string  `json:"description" yaml:"description"`
	Location      string  `json:"location" yaml:"location"`
	Category      string  `json:"category" yaml:"category"`
	Progress      int     `json:"progress" yaml:"progress"`
	FundingRaised float64 `json:"fundingRaised" yaml:"fundingRaised"`
	FundingGoal   float64 `json:"fundingGoal" yaml:"fundingGoal"`
	Volunteers    int     `json:"volunteers" yaml:"volunteers"`
	ImageURL      string  `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
	Members       int     `json:"members,omitempty" yaml:"members,omitempty"`
}

// FundingRatio returns raised/goal as a percentage. A non-positive goal
// yields 0 so callers never see NaN or Inf.
func (p Project) FundingRatio() float64 {
	if p.FundingGoal <= 0 {
		return 0
	}
	return p.FundingRaised / p.FundingGoal * 100
}

// FullyFunded reports whether the funding ratio reached 100%.
func (p Project) FullyFunded() bool {
	return p.FundingRatio() >= 100
}

// Milestones are the funding percentages announced as project updates.
var Milestones = []int{25, 50, 75, 100}

// CrossedMilestone returns the highest milestone that next reaches and prev
// did not. ok is false when no milestone was crossed.
func CrossedMilestone(prev, next Project) (milestone int, ok bool) {
	before, after := prev.FundingRatio(), next.FundingRatio()
	for _, m := range Milestones {
		if before < float64(m) && after >= float64(m) {
			milestone, ok = m, true
		}
	}
	return milestone, ok
}
