package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Backend != defaultBackend {
		t.Fatalf("Backend = %q, want %q", cfg.Backend, defaultBackend)
	}
	if len(cfg.Known) != 0 {
		t.Fatalf("Known = %v, want empty", cfg.Known)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
backend = "  http://10.0.0.5:9999  "
known = ["http://kitchen.local:9000", "  ", "http://oven.local:9000"]
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Backend != "http://10.0.0.5:9999" {
		t.Fatalf("Backend = %q, want trimmed address", cfg.Backend)
	}
	if len(cfg.Known) != 2 || cfg.Known[0] != "http://kitchen.local:9000" || cfg.Known[1] != "http://oven.local:9000" {
		t.Fatalf("Known = %v, want blanks dropped", cfg.Known)
	}
}

func TestLoad_MalformedConfigIsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`backend = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error for malformed TOML")
	}
}
