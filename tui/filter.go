// ABOUTME: Search filter deriving a filtered index subsequence from the catalog
// ABOUTME: Case-insensitive substring match on display names with a last-result cache

package tui

import "strings"

// Filter holds the active search state. When active, Result is the ordered
// list of catalog indices whose display name contains the keyword. An
// inactive filter is distinct from an active filter with zero matches: the
// former means "show everything", the latter drives the no-matches message.
type Filter struct {
	keyword string
	result  []int

	// Last computed result, so re-applying the same keyword is free
	cachedKeyword string
	cachedResult  []int
}

// Apply recomputes the filter for the given keyword over the catalog display
// names. An empty or whitespace-only keyword clears the filter.
func (f *Filter) Apply(names []string, keyword string) {
	needle := strings.ToLower(strings.TrimSpace(keyword))
	if needle == "" {
		f.Clear()
		return
	}

	if needle == f.cachedKeyword && f.cachedResult != nil {
		f.keyword = needle
		f.result = f.cachedResult

		return
	}

	result := make([]int, 0)

	for i, name := range names {
		if strings.Contains(strings.ToLower(name), needle) {
			result = append(result, i)
		}
	}

	f.keyword = needle
	f.result = result
	f.cachedKeyword = needle
	f.cachedResult = result
}

// Active reports whether a filter keyword is in effect
func (f *Filter) Active() bool {
	return f.keyword != ""
}

// Keyword returns the normalized keyword in effect, empty when inactive
func (f *Filter) Keyword() string {
	return f.keyword
}

// Result returns the matching catalog indices. Only meaningful while Active.
func (f *Filter) Result() []int {
	return f.result
}

// Clear deactivates the filter. The cache survives so re-entering the same
// search is cheap.
func (f *Filter) Clear() {
	f.keyword = ""
	f.result = nil
}
