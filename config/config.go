// ABOUTME: Persisted configuration for the playlist builder
// ABOUTME: Handles loading/saving the TOML config file with fallback to defaults

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the persisted session settings
type Config struct {
	MusicDir string `toml:"music_dir"` // Root directory scanned for tracks
	PageSize int    `toml:"page_size"` // Tracks shown per page
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		MusicDir: "~/Music",
		PageSize: 20,
	}
}

// GetConfigPath returns the default config file path
// First tries current directory, then falls back to ~/.config/m3u-weaver/config.toml
func GetConfigPath() string {
	// First try current directory
	if _, err := os.Stat("./m3u-weaver.toml"); err == nil {
		return "./m3u-weaver.toml"
	}

	// Then try ~/.config/m3u-weaver/config.toml
	home, err := os.UserHomeDir()
	if err != nil {
		return "./m3u-weaver.toml"
	}

	return filepath.Join(home, ".config", "m3u-weaver", "config.toml")
}

// LoadConfig loads configuration from a TOML file
// If the file doesn't exist or fails to load, returns default config
func LoadConfig(path string) (Config, error) {
	// Try to read the file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// File doesn't exist, return defaults
			return DefaultConfig(), nil
		}
		return DefaultConfig(), fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse TOML
	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}

	// Guard against hand-edited nonsense values
	if config.PageSize < 1 {
		config.PageSize = DefaultConfig().PageSize
	}

	if config.MusicDir == "" {
		config.MusicDir = DefaultConfig().MusicDir
	}

	return config, nil
}

// SaveConfig saves configuration to a TOML file
func SaveConfig(path string, config Config) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Create file
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			fmt.Printf("Warning: failed to close config file: %v\n", err)
		}
	}()

	// Encode config as TOML
	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
