// Package config loads the shell's settings from an env-style rc file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	KeyLogLevel     = "MINISHELL_LOG_LEVEL"
	KeyNoColor      = "MINISHELL_NO_COLOR"
	KeyPreserveCase = "MINISHELL_SEARCH_PRESERVE_CASE"

	DefaultFileName = ".minishellrc"
)

// Config is the resolved shell configuration.
type Config struct {
	LogLevel     slog.Level
	NoColor      bool
	PreserveCase bool
}

// Default returns the configuration used when no rc file exists.
func Default() *Config {
	return &Config{
		LogLevel: slog.LevelWarn,
	}
}

type genericConfigProvider interface {
	Read(filenames ...string) (envMap map[string]string, err error)
}

type Handler struct {
	GenericHandler genericConfigProvider
}

func NewHandler(genericHandler genericConfigProvider) *Handler {
	return &Handler{
		GenericHandler: genericHandler,
	}
}

// DefaultPath is the rc file looked for in the home directory.
func DefaultPath(home string) string {
	return filepath.Join(home, DefaultFileName)
}

// Load reads path and applies its keys on top of [Default]. A missing file
// is only an error when it was asked for explicitly.
func (c *Handler) Load(path string, explicit bool) (*Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	envMap, err := c.GenericHandler.Read(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}

		return nil, fmt.Errorf("(config) failed to read %s: %w", path, err)
	}

	if value := c.MapKeyToString(envMap, KeyLogLevel); value != "" {
		level, err := ParseLevel(value)
		if err != nil {
			return nil, fmt.Errorf("(config) %s: %w", KeyLogLevel, err)
		}
		cfg.LogLevel = level
	}

	cfg.NoColor = c.MapKeyToBool(envMap, KeyNoColor)
	cfg.PreserveCase = c.MapKeyToBool(envMap, KeyPreserveCase)

	return cfg, nil
}

func (c *Handler) MapKeyToString(envMap map[string]string, key string) string {
	if value, exists := envMap[key]; exists {
		return value
	}

	return ""
}

func (c *Handler) MapKeyToBool(envMap map[string]string, key string) bool {
	value := c.MapKeyToString(envMap, key)
	if value == "" {
		return false
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return false
	}

	return boolValue
}

// ParseLevel maps a level name to its [slog.Level].
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return 0, fmt.Errorf("%q: %w", name, ErrInvalidLevel)
}
