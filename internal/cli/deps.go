package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/riordanpawley/toaster/internal/config"
	"github.com/riordanpawley/toaster/internal/feed"
	"github.com/riordanpawley/toaster/internal/metrics"
	"github.com/riordanpawley/toaster/internal/store"
)

// Dependencies holds everything the TUI needs, built from config and flags
type Dependencies struct {
	Config  *config.Config
	Store   *store.Store
	Metrics *metrics.Metrics // nil when disabled
	Script  *feed.Script     // nil without --script
	Logger  *slog.Logger

	logFile io.Closer
}

// LoadConfig loads the config file and applies flag overrides
func LoadConfig(f *Flags) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if f.ConfigPath != "" {
		cfg, err = config.LoadFile(f.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if f.IsSet("duration") {
		cfg.Toast.DurationMs = int(f.Duration.Milliseconds())
	}
	if f.IsSet("width") {
		cfg.Toast.Width = f.Width
	}
	if f.IsSet("max") {
		cfg.Toast.MaxActive = f.MaxActive
	}
	if f.IsSet("log-file") {
		cfg.Log.File = f.LogFile
	}
	if f.IsSet("log-level") {
		cfg.Log.Level = f.LogLevel
	}
	if f.IsSet("metrics") {
		cfg.Metrics.Disabled = !f.Metrics
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// NewDependencies creates a new Dependencies instance with all required services
func NewDependencies(cfg *config.Config, scriptPath string) (*Dependencies, error) {
	logger, logFile, err := NewLogger(cfg)
	if err != nil {
		return nil, err
	}

	deps := &Dependencies{
		Config:  cfg,
		Logger:  logger,
		logFile: logFile,
	}

	if scriptPath != "" {
		script, err := feed.Load(scriptPath)
		if err != nil {
			deps.Close()
			return nil, err
		}
		deps.Script = script
		logger.Info("script loaded", "path", scriptPath, "events", len(script.Events))
	}

	deps.Store = store.New(
		store.WithMaxActive(cfg.Toast.MaxActive),
		store.WithLogger(logger),
	)
	if !cfg.Metrics.Disabled {
		deps.Metrics = metrics.New()
	}

	return deps, nil
}

// NewLogger builds the slog logger. The TUI owns the terminal, so logs go
// to the configured file or nowhere.
func NewLogger(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	if cfg.Log.File == "" {
		return slog.New(slog.NewTextHandler(io.Discard, opts)), nil, nil
	}

	file, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(file, opts)), file, nil
}

// Close closes the store subscriptions and the log file
func (d *Dependencies) Close() error {
	if d.Store != nil {
		d.Store.Close()
	}
	if d.logFile != nil {
		return d.logFile.Close()
	}
	return nil
}
