package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/ritzau/edgecolor/pkg/config"
	"github.com/ritzau/edgecolor/pkg/logging"
	"github.com/ritzau/edgecolor/pkg/runner"
	"github.com/ritzau/edgecolor/pkg/watcher"
	"github.com/spf13/pflag"
)

func main() {
	// Parse command-line flags
	flags := pflag.NewFlagSet("edgecolor", pflag.ExitOnError)
	config.RegisterFlags(flags)
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: edgecolor [flags] [instance.col | directory]\n\n")
		flags.PrintDefaults()
	}
	_ = flags.Parse(os.Args[1:])

	// A positional argument is shorthand for --input
	if flags.NArg() > 0 {
		_ = flags.Set("input", flags.Arg(0))
	}

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(runner.ExitError)
	}

	if cfg.LogFormat == "json" {
		logging.SetJSONOutput(cfg.LogLevel())
	} else {
		logging.SetLevel(cfg.LogLevel())
	}
	if cfg.NoColor {
		color.NoColor = true
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := runner.NewRunner(runner.Options{
		Seed:      cfg.Seed,
		OutputDir: cfg.Output,
		WriteCSV:  cfg.CSV,
	})

	reports, err := r.Run(ctx, cfg.Input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if !cfg.Watch {
			os.Exit(runner.ExitError)
		}
	}

	if !cfg.Watch {
		os.Exit(runner.ExitCode(reports))
	}

	if err := watch(ctx, r, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(runner.ExitError)
	}
}

// watch re-runs the affected instances whenever they change, until ctx ends
func watch(ctx context.Context, r *runner.Runner, cfg *config.Config) error {
	fw, err := watcher.NewFileWatcher(cfg.Input)
	if err != nil {
		return err
	}
	if err := fw.Start(ctx); err != nil {
		return err
	}

	debouncer := watcher.NewDebouncer(fw.Events(), 200*time.Millisecond, 2*time.Second)
	debouncer.Start(ctx)

	logging.Info("watching for changes, press Ctrl+C to stop", "input", cfg.Input)

	for event := range debouncer.Output() {
		if event.Type == watcher.ChangeTypeRemoved {
			logging.Warn("instance removed", "paths", event.Paths)
			continue
		}
		for _, path := range event.Paths {
			if _, err := r.RunInstance(ctx, path); err != nil {
				// Keep watching; the next save may fix the file
				logging.Error("re-run failed", "path", path, "error", err)
			}
		}
	}

	logging.Info("stopped watching")
	return nil
}
