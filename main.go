// ABOUTME: Entry point for the m3u-weaver application
// ABOUTME: Handles command-line parsing, config bootstrap, and launching the TUI

// Package main provides the entry point for m3u-weaver, an interactive
// terminal tool for building and extending .m3u playlists from a music
// directory.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"m3u-weaver/config"
	"m3u-weaver/playlist"
	"m3u-weaver/tui"
)

func main() {
	os.Exit(run())
}

func run() int {
	dir := flag.String("dir", "", "music directory to scan (persisted as the new default)")
	pageSize := flag.Int("page-size", 0, "tracks shown per page (overrides config)")
	resetConfig := flag.Bool("reset-config", false, "write a default config file and exit")
	debug := flag.Bool("debug", false, "enable debug logging to m3u-weaver-debug.log")
	flag.Parse()

	if flag.NArg() != 0 {
		fmt.Println("Usage: m3u-weaver [flags]")
		fmt.Println("Example: m3u-weaver -dir ~/Music")
		fmt.Println("\nFlags:")
		flag.PrintDefaults()

		return 1
	}

	if *debug {
		if err := SetupDebugLog("m3u-weaver-debug.log"); err != nil {
			log.Printf("Failed to setup debug log: %v", err)

			return 1
		}
	}

	configPath := config.GetConfigPath()

	if *resetConfig {
		if err := config.SaveConfig(configPath, config.DefaultConfig()); err != nil {
			log.Printf("Failed to write config: %v", err)

			return 1
		}

		fmt.Printf("Wrote default config to %s\n", configPath)

		return 0
	}

	session, err := InitializeCatalog(CatalogOptions{
		ConfigPath: configPath,
		MusicDir:   *dir,
		PageSize:   *pageSize,
	})
	if err != nil {
		log.Printf("Error: %v", err)

		if hint := missingDirHint(err, configPath); hint != "" {
			fmt.Println(hint)
		}

		return 1
	}

	// Playlists live in the directory the tool is run from
	outcome, err := tui.Run(session.Tracks, tui.Options{
		MusicDir:    session.Config.MusicDir,
		PlaylistDir: ".",
		PageSize:    session.Config.PageSize,
	}, tui.Dependencies{
		ListPlaylists:  playlist.Discover,
		LoadMembership: playlist.LoadMembership,
		CreatePlaylist: playlist.Create,
		AppendPlaylist: playlist.Append,
		Debugf:         debugf,
	})
	if err != nil {
		log.Printf("TUI error: %v", err)

		return 1
	}

	if outcome.Message != "" {
		fmt.Println(outcome.Message)
	}

	return 0
}
