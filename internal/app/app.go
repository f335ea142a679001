package app

import (
	"context"
	"fmt"

	"github.com/ladle-tui/ladle/internal/config"
	"github.com/ladle-tui/ladle/internal/panel"
	"github.com/ladle-tui/ladle/internal/prefs"
	"github.com/ladle-tui/ladle/internal/recipes"
	"github.com/ladle-tui/ladle/internal/ui"
)

// Options configure the ladle application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/ladle/prefs.toml
	Backend    string // overrides the config default; from -backend or LADLE_BACKEND
}

// Run boots the ladle TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	backend := opts.Backend
	if backend == "" {
		backend = cfg.Backend
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	demoPanel := panel.New(recipes.NewClient(), backend, cfg.Known)

	uiOpts := ui.Options{
		Context:   ctx,
		Panel:     demoPanel,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
