// ABOUTME: Music library scanning and the immutable track catalog
// ABOUTME: Walks a directory tree and collects supported audio files as catalog entries

// Package library scans a music directory tree into an ordered track catalog.
// The catalog is built once per session and never mutated afterwards, so other
// components may reference tracks by index for the session's lifetime.
package library

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// ErrDirNotFound is returned when the scan root does not exist
var ErrDirNotFound = errors.New("music directory not found")

// musicExtensions is the set of supported audio file extensions (lowercase, with dot)
var musicExtensions = map[string]bool{
	".mp3":  true,
	".wav":  true,
	".flac": true,
	".aac":  true,
	".m4a":  true,
	".ogg":  true,
	".wma":  true,
}

// Track is a single catalog entry. Path is relative to the scan root's parent
// directory (so playlist lines carry the root directory name as a prefix) and
// always uses forward slashes. Name is the final path component, used for
// display and search.
type Track struct {
	Path string
	Name string
}

// Scan walks root recursively and returns all supported audio files sorted
// lexicographically by path. A missing root yields ErrDirNotFound; a root with
// no matching files yields an empty slice and no error (the caller decides
// whether an empty catalog is fatal).
func Scan(root string) ([]Track, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDirNotFound, root)
		}
		return nil, fmt.Errorf("failed to stat music directory: %w", err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrDirNotFound, root)
	}

	// Paths are made relative to the root's parent so the root directory name
	// survives in the playlist lines
	base := filepath.Dir(filepath.Clean(root))

	var tracks []Track

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Skip unreadable subtrees rather than aborting the whole scan
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(d.Name()))
		if !musicExtensions[ext] {
			return nil
		}

		rel, err := filepath.Rel(base, path)
		if err != nil {
			return fmt.Errorf("failed to relativize %s: %w", path, err)
		}

		tracks = append(tracks, Track{
			Path: filepath.ToSlash(rel),
			Name: d.Name(),
		})

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan music directory: %w", err)
	}

	slices.SortFunc(tracks, func(a, b Track) int {
		return strings.Compare(a.Path, b.Path)
	})

	return tracks, nil
}
