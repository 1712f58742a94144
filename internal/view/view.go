// Package view derives what the UI shows from the task list: the visible
// subset for a filter mode, the remaining count, and the pending input.
package view

import (
	"fmt"
	"strings"

	"github.com/idilsaglam/tasklist/internal/model"
)

// Filter selects which tasks are shown.
type Filter int

const (
	All Filter = iota
	Active
	Completed
)

// Filters lists every mode in display order.
func Filters() []Filter { return []Filter{All, Active, Completed} }

func (f Filter) String() string {
	switch f {
	case Active:
		return "active"
	case Completed:
		return "completed"
	default:
		return "all"
	}
}

// Label is the text of the selector control for f.
func (f Filter) Label() string {
	switch f {
	case Active:
		return "Active"
	case Completed:
		return "Completed"
	default:
		return "All"
	}
}

// Match reports whether t is visible under f.
func (f Filter) Match(t model.Task) bool {
	switch f {
	case Active:
		return !t.Completed
	case Completed:
		return t.Completed
	default:
		return true
	}
}

// ParseFilter maps a mode name to a Filter, ignoring case.
func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return All, nil
	case "active":
		return Active, nil
	case "completed":
		return Completed, nil
	}
	return All, fmt.Errorf("unknown filter %q (want all, active or completed)", s)
}

// Visible returns the tasks matching f in their original order.
func Visible(tasks []model.Task, f Filter) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

// Remaining counts incomplete tasks. Pass the full list, not a filtered one.
func Remaining(tasks []model.Task) int {
	n := 0
	for _, t := range tasks {
		if !t.Completed {
			n++
		}
	}
	return n
}

// ItemsLeft formats the remaining-count readout.
func ItemsLeft(n int) string { return fmt.Sprintf("%d items left", n) }

// State is the transient UI state next to the store.
type State struct {
	Filter Filter
	Input  string
}

// Submit hands back the pending input for an Add when it is not blank.
// On success the input is cleared; otherwise nothing changes.
func (s *State) Submit() (string, bool) {
	if strings.TrimSpace(s.Input) == "" {
		return "", false
	}
	text := s.Input
	s.Input = ""
	return text, true
}
