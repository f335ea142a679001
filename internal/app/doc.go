// Package app provides the orchestration layer for the ladle application.
//
// # Overview
//
// This package is the composition root: it loads configuration and
// preferences, builds the recipe API client and the demo panel, and hands
// them to the UI.
//
//	Run()
//	 ├─> config.Load()     Read ~/.config/ladle/config.toml
//	 ├─> prefs.Load()      Read theme preference
//	 ├─> recipes.NewClient()
//	 ├─> panel.New()       Selection + outcome store
//	 └─> ui.Run()          Start the TUI (blocks)
//
// # Backend Default Precedence
//
// The backend address the panel starts with is resolved once at startup:
// the -backend flag wins, then the LADLE_BACKEND environment variable (both
// read in main and passed in via Options.Backend), then the config file,
// then the hardcoded default. Components below this layer never read the
// environment themselves.
//
// # Error Handling
//
// Only startup problems are fatal here: an unreadable or malformed config
// file, or the UI failing to start. Request failures never reach this layer;
// the panel surfaces them inline and keeps running.
package app
