// ABOUTME: Handles reading and writing M3U playlist files
// ABOUTME: Provides the membership index for append mode and the create/append exporters

// Package playlist handles .m3u playlist files: loading the set of paths an
// existing playlist already contains, and exporting track selections either as
// a fresh playlist or as an append-only, deduplicated update.
package playlist

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Header is the directive emitted as the first line of a new playlist
const Header = "#EXTM3U"

var (
	// ErrPlaylistNotFound is returned when the append target does not exist
	ErrPlaylistNotFound = errors.New("playlist file not found")

	// ErrNoNewTracks is returned by Append when every selected track is
	// already in the target playlist. Not a failure: nothing was written.
	ErrNoNewTracks = errors.New("no new tracks to append")
)

// pathDecoder reverses the HTML entities an upstream encoder may have left in
// scanned paths. Must stay exactly these two replacements for compatibility
// with existing playlists.
var pathDecoder = strings.NewReplacer("&nbsp;", " ", "&amp;", "&")

// Membership is the set of normalized paths already present in a playlist
// file. Built once when the target playlist is loaded and read-only afterwards.
type Membership struct {
	path    string
	entries map[string]bool
}

// LoadMembership reads a playlist file and indexes its non-directive lines.
// Blank lines and lines starting with '#' are skipped; everything else is
// normalized to forward-slash form.
func LoadMembership(path string) (*Membership, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrPlaylistNotFound, path)
		}
		return nil, fmt.Errorf("failed to open playlist: %w", err)
	}

	defer func() {
		_ = file.Close() // Explicitly ignore error for read-only file
	}()

	m := &Membership{
		path:    path,
		entries: make(map[string]bool),
	}

	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		m.entries[filepath.ToSlash(line)] = true
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading playlist: %w", err)
	}

	return m, nil
}

// Path returns the playlist file this index was loaded from
func (m *Membership) Path() string {
	if m == nil {
		return ""
	}

	return m.path
}

// Len returns the number of indexed entries
func (m *Membership) Len() int {
	if m == nil {
		return 0
	}

	return len(m.entries)
}

// Contains reports whether path is already in the playlist. A nil index
// (non-append session) contains nothing.
func (m *Membership) Contains(path string) bool {
	if m == nil {
		return false
	}

	return m.entries[filepath.ToSlash(path)]
}

// SanitizeName strips a user-supplied playlist name down to alphanumerics,
// spaces, hyphens and underscores. An empty result falls back to "playlist".
func SanitizeName(name string) string {
	var b strings.Builder

	for _, r := range strings.TrimSpace(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteRune(r)
		}
	}

	cleaned := strings.TrimSpace(b.String())
	if cleaned == "" {
		return "playlist"
	}

	return cleaned
}

// CreateResult reports a successful create-mode export
type CreateResult struct {
	Path    string // Playlist file that was written
	Written int    // Number of track lines written
}

// Create writes a new playlist file named after the sanitized name into dir.
// The file starts with the #EXTM3U header followed by one decoded path per
// line, in the order given (callers pass tracks in catalog order).
func Create(dir, name string, paths []string) (CreateResult, error) {
	target := filepath.Join(dir, SanitizeName(name)+".m3u")

	file, err := os.Create(target)
	if err != nil {
		return CreateResult{}, fmt.Errorf("failed to create playlist: %w", err)
	}

	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close playlist file: %w", closeErr)
		}
	}()

	writer := bufio.NewWriter(file)

	if _, err := writer.WriteString(Header + "\n"); err != nil {
		return CreateResult{}, fmt.Errorf("failed to write header: %w", err)
	}

	for _, p := range paths {
		if _, err := writer.WriteString(pathDecoder.Replace(p) + "\n"); err != nil {
			return CreateResult{}, fmt.Errorf("failed to write track: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		return CreateResult{}, fmt.Errorf("failed to flush writer: %w", err)
	}

	return CreateResult{Path: target, Written: len(paths)}, nil
}

// AppendResult reports a successful append-mode export
type AppendResult struct {
	Path    string // Playlist file that was appended to
	Added   int    // New lines written
	Skipped int    // Selected tracks already present, left untouched
}

// Partition splits paths into those not yet in the membership index and those
// already present. Order is preserved in both halves.
func Partition(members *Membership, paths []string) (fresh, dupes []string) {
	for _, p := range paths {
		if members.Contains(p) {
			dupes = append(dupes, p)
		} else {
			fresh = append(fresh, p)
		}
	}

	return fresh, dupes
}

// Append adds the not-yet-present paths to the playlist the membership index
// was loaded from. Existing lines are never rewritten; the file is opened
// append-only and no header is re-emitted. When every path is already present
// it returns ErrNoNewTracks without touching the file.
func Append(members *Membership, paths []string) (AppendResult, error) {
	fresh, dupes := Partition(members, paths)
	if len(fresh) == 0 {
		return AppendResult{}, ErrNoNewTracks
	}

	file, err := os.OpenFile(members.Path(), os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return AppendResult{}, fmt.Errorf("failed to open playlist for append: %w", err)
	}

	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close playlist file: %w", closeErr)
		}
	}()

	writer := bufio.NewWriter(file)

	for _, p := range fresh {
		if _, err := writer.WriteString(pathDecoder.Replace(p) + "\n"); err != nil {
			return AppendResult{}, fmt.Errorf("failed to append track: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		return AppendResult{}, fmt.Errorf("failed to flush writer: %w", err)
	}

	return AppendResult{
		Path:    members.Path(),
		Added:   len(fresh),
		Skipped: len(dupes),
	}, nil
}

// Discover lists the .m3u files in dir, sorted by the directory order
// filepath.Glob provides (lexical). Used by the append-mode target picker.
func Discover(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.m3u"))
	if err != nil {
		return nil, fmt.Errorf("failed to list playlists: %w", err)
	}

	return matches, nil
}
