// ABOUTME: Event handling and state transitions for the TUI
// ABOUTME: Implements the Bubble Tea Update() function and per-state key handlers

package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"m3u-weaver/playlist"
)

// Update handles messages and updates the model
//
//nolint:ireturn // Bubble Tea framework requires returning tea.Model interface
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		return m, nil

	case libraryChangedMsg:
		m.libraryStale = true
		m.deps.Debugf("[TUI] Music directory changed on disk")

		return m, waitForLibraryChange(m.watcher)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Cursor blink and other component messages go to the text input while a
	// prompt is open
	if m.state == stateSearchInput || m.state == stateNameInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)

		return m, cmd
	}

	return m, nil
}

// handleKey routes a key press to the handler for the current state
func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateBrowse:
		return m.handleBrowseKey(msg)
	case stateSearchInput:
		return m.handleSearchInputKey(msg)
	case statePickPlaylist:
		return m.handlePickKey(msg)
	case stateNameInput:
		return m.handleNameInputKey(msg)
	case stateConfirmAppend:
		return m.handleConfirmKey(msg)
	case stateNotice:
		// Any key acknowledges the notice
		m.state = stateBrowse

		return m, nil
	}

	return m, nil
}

// ========== Browse state ==========

func (m model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := m.activeLen()

	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		m.outcome = Outcome{Message: "Exited without saving."}

		return m, tea.Quit

	case key.Matches(msg, keys.Save):
		return m.handleSaveKey()

	case key.Matches(msg, keys.Append):
		// Append-target picking is only reachable from the unfiltered view
		if !m.filter.Active() {
			m.openPlaylistPicker()
		}

	case key.Matches(msg, keys.Search):
		m.openPrompt("search keyword")
		m.state = stateSearchInput

		return m, textinput.Blink

	case key.Matches(msg, keys.Escape):
		if m.filter.Active() {
			m.filter.Clear()
			m.pager.Reset()
		}

	case key.Matches(msg, keys.Select):
		if n > 0 {
			m.selection.Toggle(m.catalogIndex(m.pager.Cursor))
		}

	case key.Matches(msg, keys.Up):
		m.pager.MoveUp(n)

	case key.Matches(msg, keys.Down):
		m.pager.MoveDown(n)

	case key.Matches(msg, keys.PrevPage):
		m.pager.PrevPage(n)

	case key.Matches(msg, keys.NextPage), key.Matches(msg, keys.Advance):
		m.pager.NextPage(n)
	}

	return m, nil
}

// handleSaveKey starts the export flow for the current mode
func (m model) handleSaveKey() (tea.Model, tea.Cmd) {
	if m.selection.Count() == 0 {
		m.showNotice("No tracks selected; nothing to save.")

		return m, nil
	}

	if m.appendMode() {
		fresh, dupes := playlist.Partition(m.members, m.selectedPaths())
		if len(fresh) == 0 {
			m.showNotice("All %d selected tracks are already in %s; nothing to add.",
				len(dupes), m.members.Path())

			return m, nil
		}

		m.pendingAdd = len(fresh)
		m.pendingSkip = len(dupes)
		m.state = stateConfirmAppend

		return m, nil
	}

	m.openPrompt("playlist name")
	m.state = stateNameInput

	return m, textinput.Blink
}

// openPrompt resets the shared text input for a new prompt; the caller picks
// the prompt state
func (m *model) openPrompt(placeholder string) {
	m.input.SetValue("")
	m.input.Placeholder = placeholder
	m.input.Focus()
}

// openPlaylistPicker loads the append-target candidates and opens the picker
func (m *model) openPlaylistPicker() {
	found, err := m.deps.ListPlaylists(m.playlistDir)
	if err != nil {
		m.showNotice("Could not list playlists: %v", err)

		return
	}

	if len(found) == 0 {
		m.showNotice("No .m3u playlists found in %s.", m.playlistDir)

		return
	}

	m.playlists = found
	m.pick = 0
	m.state = statePickPlaylist
}

// ========== Search prompt ==========

func (m model) handleSearchInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		keyword := m.input.Value()
		m.input.Blur()
		m.state = stateBrowse

		m.filter.Apply(m.names, keyword)

		if !m.filter.Active() {
			// Empty keyword clears any previous filter
			m.pager.Reset()

			return m, nil
		}

		if len(m.filter.Result()) == 0 {
			// Never enter an empty search view: fall back to the full catalog
			m.filter.Clear()
			m.pager.Reset()
			m.showNotice("No tracks match %q.", keyword)

			return m, nil
		}

		m.pager.Reset()

		return m, nil

	case tea.KeyEsc:
		// Cancel, keeping whatever filter was in effect before
		m.input.Blur()
		m.state = stateBrowse

		return m, nil

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)

		return m, cmd
	}
}

// ========== Append-target picker ==========

func (m model) handlePickKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if m.pick > 0 {
			m.pick--
		}

	case key.Matches(msg, keys.Down):
		if m.pick < len(m.playlists)-1 {
			m.pick++
		}

	case key.Matches(msg, keys.Advance):
		target := m.playlists[m.pick]

		members, err := m.deps.LoadMembership(target)
		if err != nil {
			// Session continues in non-append mode
			m.deps.Debugf("[TUI] Failed to load %s: %v", target, err)
			m.showNotice("Could not load %s: %v", target, err)

			return m, nil
		}

		m.members = members
		m.showNotice("Loaded %s with %d tracks. Already-present tracks are marked ●.",
			target, members.Len())

	case key.Matches(msg, keys.Escape), key.Matches(msg, keys.Quit):
		m.state = stateBrowse
	}

	return m, nil
}

// ========== Playlist name prompt ==========

func (m model) handleNameInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		name := m.input.Value()
		m.input.Blur()

		res, err := m.deps.CreatePlaylist(m.playlistDir, name, m.selectedPaths())
		if err != nil {
			// Abort this save attempt; session state is preserved for retry
			m.deps.Debugf("[TUI] Create failed: %v", err)
			m.showNotice("Save failed: %v", err)

			return m, nil
		}

		m.quitting = true
		m.outcome = Outcome{
			Saved:   true,
			Message: summarizeCreate(res),
		}

		return m, tea.Quit

	case tea.KeyEsc:
		m.input.Blur()
		m.state = stateBrowse

		return m, nil

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)

		return m, cmd
	}
}

// ========== Append confirmation ==========

func (m model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if s := msg.String(); s != "y" && s != "Y" {
		// Anything but an explicit yes cancels
		m.state = stateBrowse

		return m, nil
	}

	res, err := m.deps.AppendPlaylist(m.members, m.selectedPaths())
	if err != nil {
		if errors.Is(err, playlist.ErrNoNewTracks) {
			m.showNotice("All selected tracks are already in %s; nothing to add.", m.members.Path())

			return m, nil
		}

		// I/O failure: report and keep the session alive for a retry
		m.deps.Debugf("[TUI] Append failed: %v", err)
		m.showNotice("Append failed: %v", err)

		return m, nil
	}

	m.quitting = true
	m.outcome = Outcome{
		Saved:   true,
		Message: summarizeAppend(res),
	}

	return m, tea.Quit
}
