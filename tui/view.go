// ABOUTME: Rendering for the TUI
// ABOUTME: Implements the Bubble Tea View() function and all frame helpers

package tui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"m3u-weaver/playlist"
)

// View renders the current frame. It is a pure function of the model: all
// mutation happens in Update.
func (m model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case stateSearchInput:
		return m.renderPrompt("Search tracks", "Enter a keyword to filter by track name (empty clears the filter).")
	case stateNameInput:
		return m.renderPrompt("Save playlist", fmt.Sprintf("Saving %d tracks. Enter a playlist name (no .m3u suffix needed).", m.selection.Count()))
	case statePickPlaylist:
		return m.renderPicker()
	case stateConfirmAppend:
		return m.renderConfirm()
	case stateNotice:
		return m.renderNotice()
	}

	return m.renderBrowse()
}

// renderBrowse renders the paging frame: title, counts, rows, footer
func (m model) renderBrowse() string {
	var b strings.Builder

	n := m.activeLen()

	b.WriteString(titleStyle.Render(m.titleLine()) + "\n")
	b.WriteString(countStyle.Render(m.countsLine(n)) + "\n")

	if m.libraryStale {
		b.WriteString(warnStyle.Render("Music directory changed on disk; restart to rescan.") + "\n")
	}

	b.WriteString("\n")

	start, end := m.pager.Bounds(n)
	for pos := start; pos < end; pos++ {
		b.WriteString(m.renderRow(pos) + "\n")
	}

	// Pad short pages so the footer does not jump around
	for i := end - start; i < m.pager.PageSize; i++ {
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(statusStyle.Render(fmt.Sprintf("Page %d/%d", m.pager.Page+1, m.pager.TotalPages(n))) + "\n")
	b.WriteString(helpStyle.Render(m.helpLine()))

	return b.String()
}

// titleLine builds the header with mode, target, and search indicators
func (m model) titleLine() string {
	mode := "new playlist"
	if m.appendMode() {
		mode = "append → " + m.members.Path()
	}

	title := fmt.Sprintf("M3U Weaver (%s)", mode)

	if m.filter.Active() {
		title += fmt.Sprintf(" [search: %s]", m.filter.Keyword())
	}

	return title
}

// countsLine summarizes catalog, match, selection, and membership counts
func (m model) countsLine(n int) string {
	var line string

	if m.filter.Active() {
		line = fmt.Sprintf("%d of %d tracks match, %d selected", n, len(m.tracks), m.selection.Count())
	} else {
		line = fmt.Sprintf("%d tracks, %d selected", len(m.tracks), m.selection.Count())
	}

	if m.appendMode() {
		line += fmt.Sprintf(", %d already in playlist", m.members.Len())
	}

	return line
}

// renderRow renders one track row with cursor and state markers
func (m model) renderRow(pos int) string {
	idx := m.catalogIndex(pos)
	track := m.tracks[idx]

	cursor := "  "
	if pos == m.pager.Cursor {
		cursor = "▶ "
	}

	selected := m.selection.Contains(idx)
	member := m.members.Contains(track.Path)

	// In append mode ● marks already-present tracks and ○ marks tracks that
	// are both present and newly selected (the export will skip them)
	var mark string

	switch {
	case member && selected:
		mark = memberMarkStyle.Render("○") + " "
	case member:
		mark = memberMarkStyle.Render("●") + " "
	case selected:
		mark = selectedMarkStyle.Render("✓") + " "
	default:
		mark = "  "
	}

	// Width-aware truncation: track names are routinely CJK
	name := runewidth.Truncate(track.Name, nameMaxWidth, "...")

	row := cursor + mark + name
	if pos == m.pager.Cursor {
		return cursorRowStyle.Render(row)
	}

	return row
}

// helpLine returns the key help for the current mode
func (m model) helpLine() string {
	if m.filter.Active() {
		return "↑/↓ move | space select | ←/→ page | esc clear search | / search | s save | q quit"
	}

	return "↑/↓ move | space select | ←/→ page | / search | a append to existing | s save | q quit"
}

// renderPrompt renders a line-input suspension screen
func (m model) renderPrompt(title, detail string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title) + "\n\n")
	b.WriteString(detail + "\n\n")
	b.WriteString(m.input.View() + "\n\n")
	b.WriteString(helpStyle.Render("enter confirm | esc cancel"))

	return b.String()
}

// renderPicker renders the append-target selection screen
func (m model) renderPicker() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Append to existing playlist") + "\n\n")

	for i, p := range m.playlists {
		cursor := "  "
		if i == m.pick {
			cursor = "▶ "
		}

		row := cursor + p
		if i == m.pick {
			row = cursorRowStyle.Render(row)
		}

		b.WriteString(row + "\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ move | enter load | esc cancel"))

	return b.String()
}

// renderConfirm renders the append confirmation screen
func (m model) renderConfirm() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Confirm append") + "\n\n")
	b.WriteString(fmt.Sprintf("About to add %d new tracks to %s.\n", m.pendingAdd, m.members.Path()))

	if m.pendingSkip > 0 {
		b.WriteString(fmt.Sprintf("%d selected tracks are already present and will be skipped.\n", m.pendingSkip))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("y confirm | any other key cancel"))

	return b.String()
}

// renderNotice renders an acknowledgment screen
func (m model) renderNotice() string {
	return noticeStyle.Render(m.notice) + "\n\n" + helpStyle.Render("press any key to continue")
}

// summarizeCreate builds the post-session summary for a create-mode save
func summarizeCreate(res playlist.CreateResult) string {
	return fmt.Sprintf("Saved %d tracks to %s", res.Written, res.Path)
}

// summarizeAppend builds the post-session summary for an append-mode save
func summarizeAppend(res playlist.AppendResult) string {
	s := fmt.Sprintf("Added %d tracks to %s", res.Added, res.Path)
	if res.Skipped > 0 {
		s += fmt.Sprintf(" (%d duplicates skipped)", res.Skipped)
	}

	return s
}
