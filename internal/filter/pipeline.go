package filter

import (
	"strings"

	"golang.org/x/text/cases"

	"changemakers-go/internal/model"
)

// Match reports whether p passes every dimension of sel.
func Match(p model.Project, sel model.Selection) bool {
	for _, d := range model.Dimensions {
		if !predicates[d](p, sel.Get(d)) {
			return false
		}
	}
	return true
}

// Apply returns the projects passing sel, in input order. The input is not
// modified and the result is never nil.
func Apply(projects []model.Project, sel model.Selection) []model.Project {
	out := make([]model.Project, 0, len(projects))
	for _, p := range projects {
		if Match(p, sel) {
			out = append(out, p)
		}
	}
	return out
}

// Query combines the structured selection with the free-text search box.
type Query struct {
	Selection model.Selection
	Search    string
}

// Run applies q.Selection and, when q.Search is non-blank, keeps projects
// whose title or location contains the search text, ignoring case.
func Run(projects []model.Project, q Query) []model.Project {
	needle := fold(strings.TrimSpace(q.Search))
	out := make([]model.Project, 0, len(projects))
	for _, p := range projects {
		if !Match(p, q.Selection) {
			continue
		}
		if needle != "" && !matchesSearch(p, needle) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// MatchSearch reports whether search occurs in p's title or location,
// ignoring case. Blank search matches everything.
func MatchSearch(p model.Project, search string) bool {
	needle := fold(strings.TrimSpace(search))
	return needle == "" || matchesSearch(p, needle)
}

func matchesSearch(p model.Project, needle string) bool {
	return strings.Contains(fold(p.Title), needle) || strings.Contains(fold(p.Location), needle)
}

func fold(s string) string {
	// cases.Caser is stateful, so each call gets its own.
	return cases.Fold().String(s)
}
