// Package config loads ladle's configuration file.
//
// The file lives at ~/.config/ladle/config.toml and is entirely optional:
//
//	backend = "http://localhost:8080"
//	known = ["http://kitchen.local:9000"]
//
// backend is the default base address the demo panel starts with; known lists
// extra addresses the selector offers alongside the built-in well-known set.
// A missing file falls back to defaults, a malformed one is an error.
//
// Environment precedence is handled by the caller: main reads LADLE_BACKEND
// once at startup and passes the value down explicitly, so nothing in this
// package (or below it) reads ambient process state.
package config
