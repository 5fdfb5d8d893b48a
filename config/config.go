// Package config loads clipact settings from ~/.config/clipact/config.yaml,
// an optional .env file, and CLIPACT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/iw2rmb/clipact/action"
	"github.com/iw2rmb/clipact/clipboard"
)

const (
	Dir       = ".config/clipact"
	File      = "config.yaml"
	EnvPrefix = "CLIPACT"

	DefaultBackend  = clipboard.BackendAuto
	DefaultAction   = "copy"
	DefaultLogLevel = "info"
)

// Config is the application configuration.
type Config struct {
	Clipboard ClipboardConfig `mapstructure:"clipboard"`
	Action    ActionConfig    `mapstructure:"action"`
	Log       LogConfig       `mapstructure:"log"`

	// Page is the YAML page used by the demo and by --target lookups.
	Page string `mapstructure:"page"`
}

type ClipboardConfig struct {
	Backend string `mapstructure:"backend"`
}

type ActionConfig struct {
	Default string `mapstructure:"default"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Path returns the config file path under the user's home directory.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, Dir, File), nil
}

// Load reads the config file (if present) and environment. A .env file in the
// working directory is applied first without overriding variables that are
// already set.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads configuration from path and the environment. A missing file
// is not an error.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("clipboard.backend", DefaultBackend)
	v.SetDefault("action.default", DefaultAction)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("page", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if readErr := v.ReadInConfig(); readErr != nil {
		if !errors.Is(readErr, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w (in %s)", err, path)
	}
	return &cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Clipboard.Backend) {
	case clipboard.BackendAuto, clipboard.BackendSystem, clipboard.BackendNative,
		clipboard.BackendOSC52, clipboard.BackendMemory:
	default:
		return fmt.Errorf("clipboard.backend must be one of auto|system|native|osc52|memory, got %q", c.Clipboard.Backend)
	}
	if _, err := action.ParseMode(c.Action.Default); err != nil {
		return fmt.Errorf("action.default: %w", err)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses Level (debug, info, warn, error).
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return lvl, nil
}
