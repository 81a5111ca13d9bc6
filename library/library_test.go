// ABOUTME: Tests for music library scanning
// ABOUTME: Validates extension filtering, path relativization, and sort order

package library

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeFile creates an empty file, creating parent directories as needed
func writeFile(t *testing.T, path string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestScanFiltersAndSorts(t *testing.T) {
	tmp := t.TempDir()
	root := filepath.Join(tmp, "Music")

	writeFile(t, filepath.Join(root, "b.mp3"))
	writeFile(t, filepath.Join(root, "Album", "a.flac"))
	writeFile(t, filepath.Join(root, "Album", "cover.jpg"))
	writeFile(t, filepath.Join(root, "notes.txt"))
	writeFile(t, filepath.Join(root, "LOUD.MP3"))

	tracks, err := Scan(root)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(tracks) != 3 {
		t.Fatalf("Expected 3 tracks, got %d: %v", len(tracks), tracks)
	}

	// Paths are relative to the root's parent and sorted lexicographically
	want := []string{"Music/Album/a.flac", "Music/LOUD.MP3", "Music/b.mp3"}
	for i, w := range want {
		if tracks[i].Path != w {
			t.Errorf("Track %d: got path %q, want %q", i, tracks[i].Path, w)
		}
	}

	if tracks[0].Name != "a.flac" {
		t.Errorf("Expected display name a.flac, got %q", tracks[0].Name)
	}
}

func TestScanMissingDirectory(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "does-not-exist"))
	if !errors.Is(err, ErrDirNotFound) {
		t.Errorf("Expected ErrDirNotFound, got %v", err)
	}
}

func TestScanRootIsFile(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "single.mp3")
	writeFile(t, file)

	_, err := Scan(file)
	if !errors.Is(err, ErrDirNotFound) {
		t.Errorf("Expected ErrDirNotFound for non-directory root, got %v", err)
	}
}

func TestScanEmptyDirectory(t *testing.T) {
	root := filepath.Join(t.TempDir(), "Music")
	if err := os.MkdirAll(root, 0755); err != nil {
		t.Fatal(err)
	}

	tracks, err := Scan(root)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(tracks) != 0 {
		t.Errorf("Expected empty catalog, got %d tracks", len(tracks))
	}
}
