// ABOUTME: Tests for configuration load/save functionality
// ABOUTME: Validates TOML parsing and default config fallback behavior

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.PageSize != 20 {
		t.Errorf("Expected PageSize 20, got %d", cfg.PageSize)
	}

	if cfg.MusicDir == "" {
		t.Error("Expected non-empty default MusicDir")
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m3u-weaver.toml")

	cfg := Config{MusicDir: "/srv/music", PageSize: 30}
	if err := SaveConfig(path, cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if loaded.MusicDir != cfg.MusicDir {
		t.Errorf("MusicDir mismatch: got %q, want %q", loaded.MusicDir, cfg.MusicDir)
	}

	if loaded.PageSize != cfg.PageSize {
		t.Errorf("PageSize mismatch: got %d, want %d", loaded.PageSize, cfg.PageSize)
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	// Loading non-existent file should return defaults without error
	cfg, err := LoadConfig("/nonexistent/path/config.toml")
	if err != nil {
		t.Errorf("Expected no error for non-existent file, got: %v", err)
	}

	defaults := DefaultConfig()
	if cfg.PageSize != defaults.PageSize {
		t.Errorf("Expected default PageSize %d, got %d", defaults.PageSize, cfg.PageSize)
	}
}

func TestLoadConfigClampsPageSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m3u-weaver.toml")

	content := "music_dir = \"/srv/music\"\npage_size = 0\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.PageSize != DefaultConfig().PageSize {
		t.Errorf("Expected page_size 0 to fall back to default %d, got %d", DefaultConfig().PageSize, cfg.PageSize)
	}
}
