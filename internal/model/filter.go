package model

import "strings"

// All is the sentinel option that disables a dimension.
const All = "All"

type Dimension string

const (
	DimensionCategory   Dimension = "category"
	DimensionLocation   Dimension = "location"
	DimensionFunding    Dimension = "funding"
	DimensionVolunteers Dimension = "volunteers"
)

// Dimensions lists every filter dimension in display order.
var Dimensions = []Dimension{
	DimensionCategory,
	DimensionLocation,
	DimensionFunding,
	DimensionVolunteers,
}

// Label is the title shown on the filter chip.
func (d Dimension) Label() string {
	if d == "" {
		return ""
	}
	return strings.ToUpper(string(d[:1])) + string(d[1:])
}

// ParseDimension accepts either the lowercase key or the chip label.
func ParseDimension(value string) (Dimension, bool) {
	key := Dimension(strings.ToLower(strings.TrimSpace(value)))
	for _, d := range Dimensions {
		if d == key {
			return d, true
		}
	}
	return "", false
}

// Funding buckets.
const (
	FundingUnder25     = "Under 25%"
	Funding25To50      = "25-50%"
	Funding50To75      = "50-75%"
	FundingOver75      = "Over 75%"
	FundingFullyFunded = "Fully Funded"
)

// Volunteer buckets.
const (
	Volunteers1To10      = "1-10"
	Volunteers11To25     = "11-25"
	Volunteers26To50     = "26-50"
	VolunteersOver50     = "50+"
	VolunteersUrgentNeed = "Urgent Need"
)

var catalog = map[Dimension][]string{
	DimensionCategory:   {All, "Environment", "Education", "Healthcare", "Technology", "Social"},
	DimensionLocation:   {All, "New York", "San Francisco", "Chicago", "Los Angeles", "Miami"},
	DimensionFunding:    {All, FundingUnder25, Funding25To50, Funding50To75, FundingOver75, FundingFullyFunded},
	DimensionVolunteers: {All, Volunteers1To10, Volunteers11To25, Volunteers26To50, VolunteersOver50, VolunteersUrgentNeed},
}

// Options returns a copy of the selectable options for d, "All" first.
func Options(d Dimension) []string {
	opts := catalog[d]
	out := make([]string, len(opts))
	copy(out, opts)
	return out
}

// HasOption reports whether option is listed for d.
func HasOption(d Dimension, option string) bool {
	for _, o := range catalog[d] {
		if o == option {
			return true
		}
	}
	return false
}

// FilterGroup is one dimension with its options, as rendered by the UI.
type FilterGroup struct {
	Dimension Dimension `json:"dimension"`
	Label     string    `json:"label"`
	Options   []string  `json:"options"`
}

// Catalog returns every dimension's options in display order.
func Catalog() []FilterGroup {
	groups := make([]FilterGroup, 0, len(Dimensions))
	for _, d := range Dimensions {
		groups = append(groups, FilterGroup{Dimension: d, Label: d.Label(), Options: Options(d)})
	}
	return groups
}

// Selection maps each dimension to the chosen option. Missing keys read as All.
type Selection map[Dimension]string

// DefaultSelection has every dimension set to All.
func DefaultSelection() Selection {
	sel := make(Selection, len(Dimensions))
	for _, d := range Dimensions {
		sel[d] = All
	}
	return sel
}

// Get returns the option for d, defaulting to All.
func (s Selection) Get(d Dimension) string {
	if v, ok := s[d]; ok && v != "" {
		return v
	}
	return All
}

// Clone returns an independent copy with every dimension populated.
func (s Selection) Clone() Selection {
	out := DefaultSelection()
	for _, d := range Dimensions {
		out[d] = s.Get(d)
	}
	return out
}
