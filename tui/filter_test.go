// ABOUTME: Unit tests for the search filter
// ABOUTME: Covers case-insensitive matching, the inactive sentinel, and result caching

package tui

import "testing"

var filterNames = []string{"Morning.mp3", "Evening Jazz.flac", "night drive.mp3", "JAZZ hands.ogg"}

func TestApplyMatchesCaseInsensitively(t *testing.T) {
	var f Filter

	f.Apply(filterNames, "jazz")

	if !f.Active() {
		t.Fatal("Expected filter to be active")
	}

	got := f.Result()
	want := []int{1, 3}

	if len(got) != len(want) {
		t.Fatalf("Expected %d matches, got %d: %v", len(want), len(got), got)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Result[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestApplyEmptyKeywordClears(t *testing.T) {
	var f Filter

	f.Apply(filterNames, "jazz")
	f.Apply(filterNames, "   ")

	if f.Active() {
		t.Error("Expected whitespace keyword to clear the filter")
	}
}

func TestNoMatchesIsDistinctFromInactive(t *testing.T) {
	var f Filter

	f.Apply(filterNames, "polka")

	// Zero matches with an active filter is not the same as no filter: the
	// caller uses the difference to pick the right message
	if !f.Active() {
		t.Error("Expected filter active even with zero matches")
	}

	if len(f.Result()) != 0 {
		t.Errorf("Expected empty result, got %v", f.Result())
	}
}

func TestClearKeepsCache(t *testing.T) {
	var f Filter

	f.Apply(filterNames, "jazz")
	first := f.Result()

	f.Clear()

	if f.Active() {
		t.Fatal("Expected inactive after Clear")
	}

	f.Apply(filterNames, "JAZZ")
	second := f.Result()

	if len(first) == 0 || len(second) == 0 {
		t.Fatal("Expected non-empty results")
	}

	// Same normalized keyword reuses the cached slice
	if &first[0] != &second[0] {
		t.Error("Expected re-applied keyword to hit the result cache")
	}
}

func TestKeywordIsNormalized(t *testing.T) {
	var f Filter

	f.Apply(filterNames, "  Jazz ")

	if f.Keyword() != "jazz" {
		t.Errorf("Expected normalized keyword \"jazz\", got %q", f.Keyword())
	}
}
