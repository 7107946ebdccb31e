// Package filter narrows the project feed by the explore screen's filter
// chips and search box.
package filter

import (
	"strings"

	"changemakers-go/internal/model"
)

// Predicate decides whether a project passes one dimension's option.
type Predicate func(p model.Project, option string) bool

var predicates = map[model.Dimension]Predicate{
	model.DimensionCategory:   MatchCategory,
	model.DimensionLocation:   MatchLocation,
	model.DimensionFunding:    MatchFunding,
	model.DimensionVolunteers: MatchVolunteers,
}

// PredicateFor returns the predicate bound to d, or nil for an unknown dimension.
func PredicateFor(d model.Dimension) Predicate {
	return predicates[d]
}

// MatchCategory is an exact, case-sensitive comparison.
func MatchCategory(p model.Project, option string) bool {
	return option == model.All || p.Category == option
}

// MatchLocation matches on substring: catalog entries are city names while
// project locations carry a region suffix ("Chicago, IL").
func MatchLocation(p model.Project, option string) bool {
	return option == model.All || strings.Contains(p.Location, option)
}

// MatchFunding buckets the funding ratio. Options outside the catalog
// never exclude.
func MatchFunding(p model.Project, option string) bool {
	if option == model.All {
		return true
	}
	ratio := p.FundingRatio()
	switch option {
	case model.FundingUnder25:
		return ratio < 25
	case model.Funding25To50:
		return ratio >= 25 && ratio < 50
	case model.Funding50To75:
		return ratio >= 50 && ratio < 75
	case model.FundingOver75:
		return ratio >= 75
	case model.FundingFullyFunded:
		return ratio >= 100
	}
	return true
}

// MatchVolunteers buckets the volunteer count. Options outside the catalog
// never exclude.
func MatchVolunteers(p model.Project, option string) bool {
	if option == model.All {
		return true
	}
	n := p.Volunteers
	switch option {
	case model.Volunteers1To10:
		return n <= 10
	case model.Volunteers11To25:
		return n >= 11 && n <= 25
	case model.Volunteers26To50:
		return n >= 26 && n <= 50
	case model.VolunteersOver50:
		return n > 50
	case model.VolunteersUrgentNeed:
		// Projects carry no required-volunteer count yet, so this shares
		// the 1-10 rule.
		return n <= 10
	}
	return true
}
