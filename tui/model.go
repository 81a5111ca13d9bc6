// ABOUTME: Terminal UI model and core session state
// ABOUTME: Bubble Tea model wiring the catalog, selection, filter, and pager together

// Package tui provides the interactive terminal UI for building and extending
// .m3u playlists from a scanned music catalog.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"

	"m3u-weaver/library"
	"m3u-weaver/playlist"
)

// sessionState identifies what the next key press means. stateBrowse is the
// paging loop; the others are suspension points where the loop is paused for
// a line of text, a pick, or an acknowledgment.
type sessionState int

const (
	stateBrowse sessionState = iota
	stateSearchInput
	statePickPlaylist
	stateNameInput
	stateConfirmAppend
	stateNotice
)

// Layout constants
const (
	nameMaxWidth = 68 // Display columns before a track name is truncated
	inputCharMax = 64 // Character limit for the search/name prompts
	inputWidth   = 40
	minPageSize  = 1
)

// Options contains configuration for running the TUI
type Options struct {
	MusicDir    string // Scanned music root (for the title and the watcher)
	PlaylistDir string // Directory playlists are discovered in and written to
	PageSize    int    // Tracks per page
}

// Dependencies holds the injected collaborators for the TUI
// This allows for clean dependency injection and easy testing
type Dependencies struct {
	ListPlaylists  func(dir string) ([]string, error)
	LoadMembership func(path string) (*playlist.Membership, error)
	CreatePlaylist func(dir, name string, paths []string) (playlist.CreateResult, error)
	AppendPlaylist func(members *playlist.Membership, paths []string) (playlist.AppendResult, error)
	Debugf         func(format string, args ...interface{})
}

// Outcome reports how the session ended, for the caller to echo after the
// alt screen has closed
type Outcome struct {
	Saved   bool   // A playlist file was written
	Message string // Human-readable summary
}

// model holds the TUI state
type model struct {
	// Injected dependencies
	deps Dependencies

	// Immutable session inputs
	tracks      []library.Track
	names       []string // Display names, parallel to tracks (filter input)
	musicDir    string
	playlistDir string

	// Core browsing state
	pager     Pager
	selection *Selection
	filter    Filter

	// Append mode; nil until a target playlist is loaded
	members *playlist.Membership

	// Suspension state
	state     sessionState
	input     textinput.Model
	notice    string
	playlists []string // Candidates shown by the append-target picker
	pick      int      // Picker cursor

	// Pending append counts, computed when the confirm prompt opens
	pendingAdd  int
	pendingSkip int

	// Library watcher
	watcher      *fsnotify.Watcher
	libraryStale bool

	// UI state
	width    int
	height   int
	quitting bool
	outcome  Outcome
}

// Key bindings
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Advance  key.Binding
	Select   key.Binding
	Search   key.Binding
	Append   key.Binding
	Save     key.Binding
	Escape   key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "move down"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("left", "pgup"),
		key.WithHelp("←/pgup", "previous page"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("right", "pgdown"),
		key.WithHelp("→/pgdn", "next page"),
	),
	Advance: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "next page"),
	),
	Select: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "select/deselect"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Append: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "append to existing"),
	),
	Save: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "save"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear search"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	cursorRowStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("240")).
			Foreground(lipgloss.Color("15"))

	selectedMarkStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("10"))

	memberMarkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("15")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)

// Run starts the interactive session over a scanned catalog and blocks until
// the user quits or saves. The returned Outcome describes what, if anything,
// was written.
func Run(tracks []library.Track, opts Options, deps Dependencies) (Outcome, error) {
	m := initModel(tracks, opts, deps)

	// Watch the music root so the status line can flag on-disk changes. The
	// catalog itself stays immutable for the session; this is only a hint.
	watcher, err := newLibraryWatcher(opts.MusicDir)
	if err != nil {
		deps.Debugf("[TUI] Library watcher unavailable: %v", err)
	} else {
		m.watcher = watcher

		defer func() {
			_ = watcher.Close()
		}()
	}

	p := tea.NewProgram(m, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return Outcome{}, fmt.Errorf("TUI error: %w", err)
	}

	if fm, ok := finalModel.(model); ok {
		return fm.outcome, nil
	}

	return Outcome{}, nil
}

// initModel creates the initial model
func initModel(tracks []library.Track, opts Options, deps Dependencies) model {
	names := make([]string, len(tracks))
	for i, t := range tracks {
		names[i] = t.Name
	}

	pageSize := opts.PageSize
	if pageSize < minPageSize {
		pageSize = minPageSize
	}

	playlistDir := opts.PlaylistDir
	if playlistDir == "" {
		playlistDir = "."
	}

	input := textinput.New()
	input.CharLimit = inputCharMax
	input.Width = inputWidth

	return model{
		deps:        deps,
		tracks:      tracks,
		names:       names,
		musicDir:    opts.MusicDir,
		playlistDir: playlistDir,
		pager:       NewPager(pageSize),
		selection:   NewSelection(),
		state:       stateBrowse,
		input:       input,
	}
}

// Init initializes the model
func (m model) Init() tea.Cmd {
	if m.watcher != nil {
		return waitForLibraryChange(m.watcher)
	}

	return nil
}

// ========== Index space mapping ==========

// activeLen returns the length of the active sequence: the search result when
// a filter is in effect, the full catalog otherwise
func (m *model) activeLen() int {
	if m.filter.Active() {
		return len(m.filter.Result())
	}

	return len(m.tracks)
}

// catalogIndex maps a position in the active sequence to a catalog index.
// This is the single place view positions and catalog indices meet; both
// selection toggling and rendering go through it.
func (m *model) catalogIndex(pos int) int {
	if m.filter.Active() {
		return m.filter.Result()[pos]
	}

	return pos
}

// selectedPaths returns the selected track paths in catalog order
func (m *model) selectedPaths() []string {
	indices := m.selection.Ordered()

	paths := make([]string, len(indices))
	for i, idx := range indices {
		paths[i] = m.tracks[idx].Path
	}

	return paths
}

// appendMode reports whether an append target has been loaded
func (m *model) appendMode() bool {
	return m.members != nil
}

// showNotice suspends the paging loop with a message until the next key press
func (m *model) showNotice(format string, args ...interface{}) {
	m.notice = fmt.Sprintf(format, args...)
	m.state = stateNotice
}
