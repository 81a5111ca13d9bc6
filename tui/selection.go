// ABOUTME: Selection set of catalog indices marked for export
// ABOUTME: Index-based so selections survive search filtering and page changes

package tui

import (
	"slices"
)

// Selection is the set of catalog indices the user has marked. Membership is
// keyed on catalog index, never on view position, so filtering and paging
// never invalidate it. Indices are validated by the dispatcher before Toggle;
// an out-of-range index here is a programming error, not a runtime condition.
type Selection struct {
	members map[int]bool
}

// NewSelection creates an empty selection set
func NewSelection() *Selection {
	return &Selection{members: make(map[int]bool)}
}

// Toggle flips membership of the given catalog index
func (s *Selection) Toggle(i int) {
	if s.members[i] {
		delete(s.members, i)
	} else {
		s.members[i] = true
	}
}

// Contains reports whether the catalog index is selected
func (s *Selection) Contains(i int) bool {
	return s.members[i]
}

// Count returns the number of selected indices
func (s *Selection) Count() int {
	return len(s.members)
}

// Ordered returns the selected indices in ascending order, so exports preserve
// catalog order regardless of the order tracks were selected in
func (s *Selection) Ordered() []int {
	keys := make([]int, 0, len(s.members))
	for k := range s.members {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
