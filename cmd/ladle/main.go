package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ladle-tui/ladle/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override ladle config path (optional)")
	prefsPath := flag.String("prefs", "", "override preferences path (optional)")
	backend := flag.String("backend", "", "backend base address (optional, overrides config)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		Backend:    *backend,
	}
	// The environment default is read exactly once, here, and passed down.
	if opts.Backend == "" {
		opts.Backend = os.Getenv("LADLE_BACKEND")
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "ladle: %v\n", err)
		return 1
	}
	return 0
}
