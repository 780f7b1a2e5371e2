package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/ritzau/edgecolor/pkg/logging"
	"github.com/spf13/pflag"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	f := pflag.NewFlagSet("edgecolor", pflag.ContinueOnError)
	RegisterFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("Parse(%v) error = %v", args, err)
	}
	return f
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(newFlags(t), "")
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}

	if cfg.Input != "dsjc250.5.col" {
		t.Errorf("Expected default input, got %q", cfg.Input)
	}
	if cfg.Output != "." || !cfg.CSV || cfg.Seed != 0 || cfg.Watch {
		t.Errorf("Unexpected defaults: %+v", cfg)
	}
	if cfg.LogFormat != "compact" {
		t.Errorf("Expected compact log format, got %q", cfg.LogFormat)
	}
	if cfg.LogLevel() != slog.LevelInfo {
		t.Errorf("Expected info level, got %v", cfg.LogLevel())
	}
}

func TestLoadFlags(t *testing.T) {
	f := newFlags(t, "-i", "graphs/myciel3.col", "--seed", "42", "--csv=false", "-vv", "--output", "out")

	cfg, err := load(f, "")
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}

	if cfg.Input != "graphs/myciel3.col" {
		t.Errorf("Expected input from flag, got %q", cfg.Input)
	}
	if cfg.Seed != 42 {
		t.Errorf("Expected seed 42, got %d", cfg.Seed)
	}
	if cfg.CSV {
		t.Error("Expected csv disabled")
	}
	if cfg.Output != "out" {
		t.Errorf("Expected output 'out', got %q", cfg.Output)
	}
	if cfg.LogLevel() != logging.LevelTrace {
		t.Errorf("Expected trace level for -vv, got %v", cfg.LogLevel())
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("EDGECOLOR_SEED", "9")
	t.Setenv("EDGECOLOR_LOG_FORMAT", "json")
	t.Setenv("EDGECOLOR_INPUT", "env.col")

	cfg, err := load(newFlags(t, "--input", "flag.col"), "")
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}

	if cfg.Seed != 9 {
		t.Errorf("Expected seed from env, got %d", cfg.Seed)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("Expected json from env, got %q", cfg.LogFormat)
	}
	// Flags win over env
	if cfg.Input != "flag.col" {
		t.Errorf("Expected flag to override env, got %q", cfg.Input)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	content := "input = \"from-file.col\"\nverbosity = \"debug\"\nwatch = true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := load(newFlags(t), path)
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}

	if cfg.Input != "from-file.col" {
		t.Errorf("Expected input from file, got %q", cfg.Input)
	}
	if !cfg.Watch {
		t.Error("Expected watch from file")
	}
	if cfg.LogLevel() != slog.LevelDebug {
		t.Errorf("Expected debug level, got %v", cfg.LogLevel())
	}
}

func TestLoadMissingConfigFileIsIgnored(t *testing.T) {
	if _, err := load(newFlags(t), filepath.Join(t.TempDir(), "absent.toml")); err != nil {
		t.Errorf("Expected missing config file to be ignored, got %v", err)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"empty input", []string{"--input", ""}},
		{"bad verbosity", []string{"--verbosity", "chatty"}},
		{"bad log format", []string{"--log-format", "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := load(newFlags(t, tt.args...), ""); err == nil {
				t.Errorf("Expected error for %v", tt.args)
			}
		})
	}
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		cfg      Config
		expected slog.Level
	}{
		{Config{}, slog.LevelInfo},
		{Config{VerboseCnt: 1}, slog.LevelDebug},
		{Config{VerboseCnt: 3}, logging.LevelTrace},
		{Config{Verbosity: "warn", VerboseCnt: 2}, slog.LevelWarn},
	}

	for _, tt := range tests {
		if got := tt.cfg.LogLevel(); got != tt.expected {
			t.Errorf("LogLevel(%+v) = %v, want %v", tt.cfg, got, tt.expected)
		}
	}
}
