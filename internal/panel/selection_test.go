package panel

import "testing"

func TestNewSelection_DefaultFirstAndDeduped(t *testing.T) {
	sel := NewSelection("http://localhost:8080", []string{"http://kitchen.local:9000"})

	presets := sel.Presets()
	if len(presets) != len(WellKnownBackends)+1 {
		t.Fatalf("presets = %v, want well-known set plus one extra, deduped", presets)
	}
	if presets[0] != "http://localhost:8080" {
		t.Fatalf("presets[0] = %q, want supplied default first", presets[0])
	}
	if presets[len(presets)-1] != "http://kitchen.local:9000" {
		t.Fatalf("last preset = %q, want config extra last", presets[len(presets)-1])
	}
	if sel.Current() != "http://localhost:8080" {
		t.Fatalf("Current() = %q, want default", sel.Current())
	}
}

func TestNewSelection_NoDefaultFallsBackToWellKnown(t *testing.T) {
	sel := NewSelection("", nil)
	if sel.Current() != WellKnownBackends[0] {
		t.Fatalf("Current() = %q, want %q", sel.Current(), WellKnownBackends[0])
	}
}

func TestSelection_LastWriteWins(t *testing.T) {
	sel := NewSelection("http://localhost:8080", nil)

	sel.Use(WellKnownBackends[1])
	if sel.Current() != WellKnownBackends[1] {
		t.Fatalf("Current() = %q, want preset pick", sel.Current())
	}

	// Free text after a preset pick takes precedence; no reconciliation.
	sel.Use("http://10.0.0.9:8080")
	if sel.Current() != "http://10.0.0.9:8080" {
		t.Fatalf("Current() = %q, want free-text override", sel.Current())
	}

	sel.Use("  ")
	if sel.Current() != "http://10.0.0.9:8080" {
		t.Fatalf("Current() = %q, want blank input ignored", sel.Current())
	}
}

func TestSelection_PresetsAreCopied(t *testing.T) {
	sel := NewSelection("", nil)
	presets := sel.Presets()
	presets[0] = "mutated"
	if sel.Presets()[0] == "mutated" {
		t.Fatal("Presets should return a copy")
	}
}
