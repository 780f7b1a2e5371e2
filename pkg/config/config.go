package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/ritzau/edgecolor/pkg/logging"
	"github.com/spf13/pflag"
)

// FileName is the optional config file read from the working directory
const FileName = "edgecolor.toml"

// EnvPrefix prefixes environment overrides, e.g. EDGECOLOR_SEED=7
const EnvPrefix = "EDGECOLOR_"

// Config holds all configuration for the application
type Config struct {
	Input      string `koanf:"input"`  // instance file or directory of *.col files
	Output     string `koanf:"output"` // directory for result_<name>.csv
	CSV        bool   `koanf:"csv"`
	Seed       uint64 `koanf:"seed"` // 0 draws a random seed
	Watch      bool   `koanf:"watch"`
	Verbosity  string `koanf:"verbosity"`
	VerboseCnt int    `koanf:"verbose"`
	LogFormat  string `koanf:"log-format"`
	NoColor    bool   `koanf:"no-color"`
}

// Defaults returns the values used when nothing else is set
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"input":      "dsjc250.5.col",
		"output":     ".",
		"csv":        true,
		"seed":       0,
		"watch":      false,
		"verbosity":  "",
		"verbose":    0,
		"log-format": "compact",
		"no-color":   false,
	}
}

// RegisterFlags adds the command-line flags Load understands
func RegisterFlags(f *pflag.FlagSet) {
	f.StringP("input", "i", "dsjc250.5.col", "DIMACS instance file, or a directory of *.col files")
	f.StringP("output", "o", ".", "Directory for CSV summaries")
	f.Bool("csv", true, "Write result_<instance>.csv")
	f.Uint64("seed", 0, "Seed for the random ordering (0 = random)")
	f.BoolP("watch", "w", false, "Re-run when the input changes")
	f.String("verbosity", "", "Log level: trace, debug, info, warn, error")
	f.CountP("verbose", "v", "Increase verbosity (-v debug, -vv trace)")
	f.String("log-format", "compact", "Log format: compact or json")
	f.Bool("no-color", false, "Disable colored console output")
}

// Load loads configuration from defaults, config file, environment variables, and flags.
// Priority: Flags > Env > Config File > Defaults
func Load(f *pflag.FlagSet) (*Config, error) {
	return load(f, FileName)
}

func load(f *pflag.FlagSet, configFile string) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(makeMapProvider(Defaults()), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config File (optional); a missing file is not an error
	if configFile != "" {
		_ = k.Load(file.Provider(configFile), toml.Parser())
	}

	// 3. Environment Variables
	// Prefix: EDGECOLOR_ (e.g., EDGECOLOR_LOG_FORMAT=json)
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(
			strings.TrimPrefix(s, EnvPrefix)), "_", "-")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags; posflag only overrides with flags the user actually set
	if f != nil {
		if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	// Unmarshal into struct
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the program cannot act on
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Input) == "" {
		return fmt.Errorf("input path is required")
	}
	if _, err := logging.ParseLevel(c.Verbosity); err != nil {
		return fmt.Errorf("invalid verbosity: %w", err)
	}
	switch c.LogFormat {
	case "compact", "json":
	default:
		return fmt.Errorf("invalid log format %q (want compact or json)", c.LogFormat)
	}
	return nil
}

// LogLevel resolves the effective level. An explicit verbosity wins over
// -v counts.
func (c *Config) LogLevel() slog.Level {
	if c.Verbosity != "" {
		level, _ := logging.ParseLevel(c.Verbosity)
		return level
	}
	switch {
	case c.VerboseCnt >= 2:
		return logging.LevelTrace
	case c.VerboseCnt == 1:
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// Helper to use map as a provider
type mapProvider struct {
	m map[string]interface{}
}

func makeMapProvider(m map[string]interface{}) *mapProvider {
	return &mapProvider{m: m}
}

func (p *mapProvider) Read() (map[string]interface{}, error) {
	return p.m, nil
}

func (p *mapProvider) ReadBytes() ([]byte, error) {
	return nil, fmt.Errorf("not implemented")
}
