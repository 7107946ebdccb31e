package filter

import (
	"errors"
	"fmt"

	"changemakers-go/internal/model"
)

var (
	ErrUnknownDimension = errors.New("unknown filter dimension")
	ErrUnknownOption    = errors.New("unknown filter option")
)

// State is the explore screen's single-choice selection per dimension.
// Values are immutable; every transition returns a new State.
type State struct {
	sel model.Selection
}

func NewState() State {
	return State{sel: model.DefaultSelection()}
}

// StateFrom validates sel against the catalog and returns it as a State.
// Dimensions missing from sel read as All.
func StateFrom(sel model.Selection) (State, error) {
	st := NewState()
	for d, option := range sel {
		next, err := st.Select(d, option)
		if err != nil {
			return State{}, err
		}
		st = next
	}
	return st, nil
}

// Select replaces the option for d only.
func (s State) Select(d model.Dimension, option string) (State, error) {
	if PredicateFor(d) == nil {
		return s, fmt.Errorf("%w: %q", ErrUnknownDimension, d)
	}
	if !model.HasOption(d, option) {
		return s, fmt.Errorf("%w: %q for %s", ErrUnknownOption, option, d)
	}
	next := s.Selection()
	next[d] = option
	return State{sel: next}, nil
}

func (s State) Reset() State {
	return NewState()
}

// Selection returns a copy of the current choices.
func (s State) Selection() model.Selection {
	return s.sel.Clone()
}

// ActiveCount is the number of dimensions not set to All.
func (s State) ActiveCount() int {
	n := 0
	for _, d := range model.Dimensions {
		if s.sel.Get(d) != model.All {
			n++
		}
	}
	return n
}
