package model

import (
	"sort"
	"strings"
)

// ValidationError maps input fields to their failure messages. Kind names
// the record being validated, such as "profile" or "project".
type ValidationError struct {
	Kind   string
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid " + e.Kind + ": " + strings.Join(parts, "; ")
}
