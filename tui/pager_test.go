// ABOUTME: Unit tests for page/cursor arithmetic
// ABOUTME: Covers page-follow reconciliation, clamping, and total page computation

package tui

import "testing"

func TestTotalPages(t *testing.T) {
	p := NewPager(5)

	tests := []struct {
		n    int
		want int
	}{
		{0, 1}, // Empty sequence still has one page to display
		{1, 1},
		{5, 1},
		{6, 2},
		{12, 3},
	}

	for _, tt := range tests {
		if got := p.TotalPages(tt.n); got != tt.want {
			t.Errorf("TotalPages(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestMoveDownFollowsPage(t *testing.T) {
	p := NewPager(5)
	n := 12

	for i := 0; i < 5; i++ {
		p.MoveDown(n)
	}

	if p.Cursor != 5 {
		t.Errorf("Expected cursor 5, got %d", p.Cursor)
	}

	if p.Page != 1 {
		t.Errorf("Expected page to follow cursor to 1, got %d", p.Page)
	}
}

func TestMoveUpFollowsPage(t *testing.T) {
	p := NewPager(5)
	p.Cursor = 5
	p.Page = 1

	p.MoveUp(12)

	if p.Cursor != 4 {
		t.Errorf("Expected cursor 4, got %d", p.Cursor)
	}

	if p.Page != 0 {
		t.Errorf("Expected page to follow cursor back to 0, got %d", p.Page)
	}
}

func TestMoveClampsAtBounds(t *testing.T) {
	p := NewPager(5)
	n := 3

	p.MoveUp(n)

	if p.Cursor != 0 {
		t.Errorf("MoveUp at top moved cursor to %d", p.Cursor)
	}

	p.Cursor = 2
	p.MoveDown(n)

	if p.Cursor != 2 {
		t.Errorf("MoveDown at bottom moved cursor to %d", p.Cursor)
	}
}

func TestNextPageJumpsToFirstItem(t *testing.T) {
	p := NewPager(5)
	n := 12

	p.Cursor = 3
	p.NextPage(n)

	if p.Page != 1 || p.Cursor != 5 {
		t.Errorf("Expected page 1 cursor 5, got page %d cursor %d", p.Page, p.Cursor)
	}

	// Clamp at the last page: no wrap, nothing changes
	p.NextPage(n)
	p.NextPage(n)

	if p.Page != 2 || p.Cursor != 10 {
		t.Errorf("Expected page 2 cursor 10 after clamping, got page %d cursor %d", p.Page, p.Cursor)
	}
}

func TestPrevPageAtTopIsNoOp(t *testing.T) {
	p := NewPager(5)
	p.Cursor = 3

	p.PrevPage(12)

	if p.Page != 0 || p.Cursor != 3 {
		t.Errorf("PrevPage at page 0 changed state: page %d cursor %d", p.Page, p.Cursor)
	}
}

func TestBounds(t *testing.T) {
	p := NewPager(5)
	p.Page = 2

	start, end := p.Bounds(12)

	if start != 10 || end != 12 {
		t.Errorf("Expected bounds [10, 12), got [%d, %d)", start, end)
	}

	p.Page = 0

	start, end = p.Bounds(0)
	if start != 0 || end != 0 {
		t.Errorf("Expected empty bounds [0, 0), got [%d, %d)", start, end)
	}
}

func TestResetReturnsToTop(t *testing.T) {
	p := NewPager(5)
	p.Cursor = 7
	p.Page = 1

	p.Reset()

	if p.Cursor != 0 || p.Page != 0 {
		t.Errorf("Expected cursor/page 0 after reset, got cursor %d page %d", p.Cursor, p.Page)
	}
}

func TestNewPagerEnforcesMinimumPageSize(t *testing.T) {
	p := NewPager(0)

	if p.PageSize != 1 {
		t.Errorf("Expected page size clamped to 1, got %d", p.PageSize)
	}
}
