// Package config loads the TOML settings shared by the CLI, the REPL and
// the language server.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// EnvVar names the environment variable consulted when no path is given.
const EnvVar = "KIRI_CONFIG"

// DefaultFile is looked up in the working directory as a last resort.
const DefaultFile = "kiri.toml"

// Config holds the complete tool configuration
type Config struct {
	Output OutputConfig `toml:"output"`
	REPL   REPLConfig   `toml:"repl"`
	LSP    LSPConfig    `toml:"lsp"`
}

// OutputConfig controls how trees and diagnostics are printed
type OutputConfig struct {
	Color  *bool  `toml:"color"`
	Format string `toml:"format"` // "tree" or "yaml"
	Spans  bool   `toml:"spans"`
}

// REPLConfig holds interactive prompt settings
type REPLConfig struct {
	Prompt             string `toml:"prompt"`
	ContinuationPrompt string `toml:"continuation_prompt"`
	HistoryFile        string `toml:"history_file"`
}

// LSPConfig holds language server settings
type LSPConfig struct {
	Name         string `toml:"name"`
	LogVerbosity int    `toml:"log_verbosity"`
	LogFile      string `toml:"log_file"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

// Load reads the configuration from path. An empty path falls back to
// KIRI_CONFIG, then ./kiri.toml, then the built-in defaults.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvVar)
		explicit = path != ""
	}
	if !explicit {
		if _, err := os.Stat(DefaultFile); err != nil {
			return Default(), nil
		}
		path = DefaultFile
	}

	path = os.ExpandEnv(path)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// UseColor reports whether colored output is enabled. An unset value
// defers to the terminal detection of the color library.
func (c *Config) UseColor(detected bool) bool {
	if c.Output.Color == nil {
		return detected
	}
	return *c.Output.Color
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Output.Format == "" {
		c.Output.Format = "tree"
	}

	if c.REPL.Prompt == "" {
		c.REPL.Prompt = "kiri> "
	}
	if c.REPL.ContinuationPrompt == "" {
		c.REPL.ContinuationPrompt = "  ... "
	}
	if c.REPL.HistoryFile == "" {
		if home, err := os.UserHomeDir(); err == nil {
			c.REPL.HistoryFile = filepath.Join(home, ".kiri_history")
		}
	}

	if c.LSP.Name == "" {
		c.LSP.Name = "kiri"
	}
}

func (c *Config) validate() error {
	switch c.Output.Format {
	case "tree", "yaml":
	default:
		return fmt.Errorf("output.format must be \"tree\" or \"yaml\", got %q", c.Output.Format)
	}
	if c.LSP.LogVerbosity < 0 {
		return fmt.Errorf("lsp.log_verbosity must not be negative")
	}
	return nil
}
