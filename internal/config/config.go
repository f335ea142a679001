package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the fields ladle reads from its config file.
type Config struct {
	Backend string   // default backend base address
	Known   []string // additional addresses offered by the selector
}

const (
	defaultConfigPath = "~/.config/ladle/config.toml"
	defaultBackend    = "http://localhost:8080"
)

// DefaultBackend returns the hardcoded fallback backend address.
func DefaultBackend() string {
	return defaultBackend
}

// Load locates and parses the ladle config, falling back to defaults when the
// file is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{Backend: defaultBackend}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Backend string   `toml:"backend"`
		Known   []string `toml:"known"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.Backend = strings.TrimSpace(raw.Backend)
	if cfg.Backend == "" {
		cfg.Backend = defaultBackend
	}

	for _, addr := range raw.Known {
		addr = strings.TrimSpace(addr)
		if addr == "" {
			continue
		}
		cfg.Known = append(cfg.Known, addr)
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
