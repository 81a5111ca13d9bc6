// ABOUTME: Page and cursor arithmetic for the track browser
// ABOUTME: Keeps cursor position and page number mutually consistent across every move

package tui

// Pager tracks the cursor and page over an "active sequence" of items. All
// positions are relative to that sequence (the full catalog, or the current
// search result); mapping a position back to a catalog index happens at the
// dispatcher boundary, not here.
//
// The page is not derived from the cursor on read: every cursor move must
// reconcile the page explicitly, and every page move must reposition the
// cursor. The methods below are the only mutation points, so the invariants
// 0 <= Cursor < n (for n > 0) and 0 <= Page < TotalPages(n) hold after each.
type Pager struct {
	PageSize int
	Cursor   int
	Page     int
}

// NewPager creates a pager with the given page size (minimum 1)
func NewPager(pageSize int) Pager {
	if pageSize < 1 {
		pageSize = 1
	}

	return Pager{PageSize: pageSize}
}

// TotalPages returns the page count for n items, never less than 1 so that
// "page X/Y" displays stay well-defined on an empty sequence
func (p Pager) TotalPages(n int) int {
	if n <= 0 {
		return 1
	}

	return (n + p.PageSize - 1) / p.PageSize
}

// Reset returns cursor and page to the top. Called on every filter change or
// mode switch, since prior positions are meaningless in the new sequence.
func (p *Pager) Reset() {
	p.Cursor = 0
	p.Page = 0
}

// follow recomputes the page from the cursor when the cursor has left the
// current page window. This is the auto-page-follow reconciliation.
func (p *Pager) follow(n int) {
	if p.Cursor >= p.Page*p.PageSize && p.Cursor < (p.Page+1)*p.PageSize {
		return
	}

	page := p.Cursor / p.PageSize

	last := p.TotalPages(n) - 1
	if page > last {
		page = last
	}

	if page < 0 {
		page = 0
	}

	p.Page = page
}

// MoveUp moves the cursor one position up, clamped at the top
func (p *Pager) MoveUp(n int) {
	if p.Cursor > 0 {
		p.Cursor--
		p.follow(n)
	}
}

// MoveDown moves the cursor one position down, clamped at n-1
func (p *Pager) MoveDown(n int) {
	if p.Cursor < n-1 {
		p.Cursor++
		p.follow(n)
	}
}

// PrevPage flips to the previous page and jumps the cursor to its first item.
// At the first page nothing changes.
func (p *Pager) PrevPage(n int) {
	if p.Page == 0 {
		return
	}

	p.Page--
	p.Cursor = p.Page * p.PageSize
}

// NextPage flips to the next page and jumps the cursor to its first item.
// At the last page nothing changes.
func (p *Pager) NextPage(n int) {
	if p.Page >= p.TotalPages(n)-1 {
		return
	}

	p.Page++
	p.Cursor = p.Page * p.PageSize
}

// Bounds returns the half-open [start, end) slice of the active sequence
// visible on the current page
func (p Pager) Bounds(n int) (start, end int) {
	start = p.Page * p.PageSize
	if start > n {
		start = n
	}

	end = start + p.PageSize
	if end > n {
		end = n
	}

	return start, end
}
