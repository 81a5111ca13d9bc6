// ABOUTME: Music root file watching for the stale-library hint
// ABOUTME: Surfaces on-disk changes without mutating the immutable session catalog

package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// libraryChangedMsg is sent when something under the music root changed
type libraryChangedMsg struct{}

// newLibraryWatcher watches the music root directory. fsnotify does not
// recurse, so this catches top-level additions and removals only; good enough
// for a hint that a rescan is worthwhile.
func newLibraryWatcher(root string) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := watcher.Add(root); err != nil {
		_ = watcher.Close()

		return nil, fmt.Errorf("failed to watch music directory: %w", err)
	}

	return watcher, nil
}

// waitForLibraryChange returns a command that waits for file system events
func waitForLibraryChange(watcher *fsnotify.Watcher) tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}

				if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0 {
					// Debounce: wait a bit for batched writes to settle
					time.Sleep(100 * time.Millisecond)

					return libraryChangedMsg{}
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				// Keep watching; the hint is best-effort
			}
		}
	}
}
