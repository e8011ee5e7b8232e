// Package config loads console settings from defaults, an optional TOML file,
// and environment overrides, in that order.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds console settings.
type Config struct {
	Prompt   string `toml:"prompt"`
	Text     string `toml:"text"`
	LogFile  string `toml:"log_file"`
	LogLevel string `toml:"log_level"`
	NoColor  bool   `toml:"no_color"`
	Colors   Colors `toml:"colors"`
}

// Colors are lipgloss color strings (ANSI index or hex).
type Colors struct {
	Prompt string `toml:"prompt"`
	Text   string `toml:"text"`
	Cursor string `toml:"cursor"`
	Status string `toml:"status"`
}

// ParseError reports a malformed config file.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing config %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Environment variables read by ApplyEnv.
const (
	EnvPrompt   = "UNDOTEXT_PROMPT"
	EnvText     = "UNDOTEXT_TEXT"
	EnvLogFile  = "UNDOTEXT_LOG_FILE"
	EnvLogLevel = "UNDOTEXT_LOG_LEVEL"
	EnvNoColor  = "UNDOTEXT_NO_COLOR"
)

func Default() Config {
	return Config{
		Prompt:   "> ",
		LogLevel: "info",
		Colors: Colors{
			Prompt: "63",
			Status: "240",
		},
	}
}

// LoadFile reads path over Default. A missing file is not an error.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse decodes TOML data over Default. Unknown keys are rejected.
func Parse(source string, data []byte) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Default(), &ParseError{Path: source, Message: err.Error(), Err: err}
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return Default(), &ParseError{Path: source, Message: err.Error(), Err: err}
	}
	return cfg, nil
}

// ApplyEnv overlays environment variables on cfg. lookup is usually
// os.LookupEnv. The conventional NO_COLOR variable is honored too.
func ApplyEnv(cfg Config, lookup func(string) (string, bool)) Config {
	if v, ok := lookup(EnvPrompt); ok {
		cfg.Prompt = v
	}
	if v, ok := lookup(EnvText); ok {
		cfg.Text = v
	}
	if v, ok := lookup(EnvLogFile); ok {
		cfg.LogFile = v
	}
	if v, ok := lookup(EnvLogLevel); ok {
		if _, err := ParseLevel(v); err == nil {
			cfg.LogLevel = v
		}
	}
	if v, ok := lookup(EnvNoColor); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.NoColor = b
		}
	}
	if v, ok := lookup("NO_COLOR"); ok && v != "" {
		cfg.NoColor = true
	}
	return cfg
}

// ParseLevel maps a level name ("debug", "info", "warn", "error") to a
// slog.Level. Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return slog.LevelInfo, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
	return l, nil
}
