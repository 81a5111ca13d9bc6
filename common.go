// ABOUTME: Shared session setup for the weaver
// ABOUTME: Provides config resolution, catalog scanning, and debug logging

package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"m3u-weaver/config"
	"m3u-weaver/library"
)

var debugLog *log.Logger

// CatalogOptions contains the command-line overrides applied on top of the
// config file
type CatalogOptions struct {
	ConfigPath string
	MusicDir   string // Overrides config when non-empty, and is persisted
	PageSize   int    // Overrides config when positive
}

// SessionContext contains the scanned catalog and the resolved config
type SessionContext struct {
	Tracks []library.Track
	Config config.Config
}

// InitializeCatalog resolves config and overrides, persists a -dir override,
// and scans the music directory
func InitializeCatalog(opts CatalogOptions) (*SessionContext, error) {
	cfg, err := config.LoadConfig(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if opts.MusicDir != "" && opts.MusicDir != cfg.MusicDir {
		cfg.MusicDir = opts.MusicDir

		// A new music dir becomes the default for the next run. Persisting is
		// best-effort; the session works either way.
		if err := config.SaveConfig(opts.ConfigPath, cfg); err != nil {
			debugf("[INIT] Failed to persist music dir: %v", err)
		}
	}

	if opts.PageSize > 0 {
		cfg.PageSize = opts.PageSize
	}

	root, err := expandHome(cfg.MusicDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve music dir %q: %w", cfg.MusicDir, err)
	}

	cfg.MusicDir = root

	tracks, err := library.Scan(root)
	if err != nil {
		return nil, err
	}

	if len(tracks) == 0 {
		return nil, fmt.Errorf("no audio files found under %s", root)
	}

	debugf("[INIT] Scanned %d tracks under %s", len(tracks), root)

	return &SessionContext{
		Tracks: tracks,
		Config: cfg,
	}, nil
}

// expandHome resolves a leading ~ against the current user's home directory
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// SetupDebugLog initializes debug logging
func SetupDebugLog(filename string) error {
	if err := InitDebugLog(filename); err != nil {
		return fmt.Errorf("failed to initialize debug log: %w", err)
	}

	fileInfo, _ := os.Stdout.Stat()
	if (fileInfo.Mode() & os.ModeCharDevice) != 0 {
		fmt.Printf("Debug logging enabled: %s\n", filename)
	}

	return nil
}

// InitDebugLog initializes debug logging
func InitDebugLog(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create debug log file: %w", err)
	}

	debugLog = log.New(f, "", log.Ltime|log.Lmicroseconds)

	return nil
}

// debugf logs debug messages if enabled
func debugf(format string, args ...interface{}) {
	if debugLog != nil {
		debugLog.Printf(format, args...)
	}
}

// missingDirHint builds the user-facing message for a bad music directory
func missingDirHint(err error, configPath string) string {
	if !errors.Is(err, library.ErrDirNotFound) {
		return ""
	}

	return fmt.Sprintf("Point -dir at your music directory, or edit %s.", configPath)
}
