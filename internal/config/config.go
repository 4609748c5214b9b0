package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// FileName is the config file looked up in the working directory
const FileName = ".toaster.json"

// Config represents the full toaster configuration
type Config struct {
	Toast   ToastConfig   `json:"toast"`
	Log     LogConfig     `json:"log"`
	Metrics MetricsConfig `json:"metrics"`
}

// ToastConfig contains notification display settings
type ToastConfig struct {
	DurationMs int `json:"durationMs"`
	Width      int `json:"width"`
	FrameMs    int `json:"frameMs"`
	MaxActive  int `json:"maxActive"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level string `json:"level"`
	File  string `json:"file"`
}

// MetricsConfig contains lifecycle metrics settings
type MetricsConfig struct {
	Disabled bool `json:"disabled"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Toast: ToastConfig{
			DurationMs: 5000,
			Width:      40,
			FrameMs:    100, // 10 redraws per second
			MaxActive:  0,   // unlimited
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Duration returns the auto-dismiss duration
func (c *Config) Duration() time.Duration {
	return time.Duration(c.Toast.DurationMs) * time.Millisecond
}

// Frame returns the progress bar redraw interval
func (c *Config) Frame() time.Duration {
	return time.Duration(c.Toast.FrameMs) * time.Millisecond
}

// SlogLevel parses the configured log level
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	return level, nil
}

// Validate checks that the values are usable
func (c *Config) Validate() error {
	var errs []error
	if c.Toast.DurationMs <= 0 {
		errs = append(errs, fmt.Errorf("toast.durationMs must be positive, got %d", c.Toast.DurationMs))
	}
	if c.Toast.Width < 0 {
		errs = append(errs, fmt.Errorf("toast.width must not be negative, got %d", c.Toast.Width))
	}
	if c.Toast.FrameMs < 0 {
		errs = append(errs, fmt.Errorf("toast.frameMs must not be negative, got %d", c.Toast.FrameMs))
	}
	if c.Toast.MaxActive < 0 {
		errs = append(errs, fmt.Errorf("toast.maxActive must not be negative, got %d", c.Toast.MaxActive))
	}
	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// LoadConfig loads configuration from project path with priority:
// 1. CLI flags (applied by the caller)
// 2. .toaster.json in project root (with version migration support)
// 3. Defaults
func LoadConfig(projectPath string) (*Config, error) {
	path := filepath.Join(projectPath, FileName)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return LoadFile(path)
}

// LoadFile loads configuration from an explicit path. Unlike LoadConfig a
// missing file is an error.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := ParseVersionedConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return MergeWithDefaults(cfg), nil
}

// SaveConfig saves configuration to the specified path with version information
func SaveConfig(cfg *Config, path string) error {
	data, err := MarshalVersionedConfig(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	// Merge Toast config; MaxActive keeps 0 since that means unlimited
	if cfg.Toast.DurationMs == 0 {
		cfg.Toast.DurationMs = defaults.Toast.DurationMs
	}
	if cfg.Toast.Width == 0 {
		cfg.Toast.Width = defaults.Toast.Width
	}
	if cfg.Toast.FrameMs == 0 {
		cfg.Toast.FrameMs = defaults.Toast.FrameMs
	}

	// Merge Log config
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}

	return cfg
}

// Load is a convenience function that loads config from current directory
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadConfig(cwd)
}
