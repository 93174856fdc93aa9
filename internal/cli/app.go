// Package cli wires configuration, logging and theming for the viewspace commands.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/bnema/viewspace/internal/cli/styles"
	"github.com/bnema/viewspace/internal/domain/build"
	"github.com/bnema/viewspace/internal/infrastructure/config"
	"github.com/bnema/viewspace/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp loads the configuration from configDir (empty means XDG) and
// builds a stderr logger from it.
func NewApp(configDir string) (*App, error) {
	mgr, err := config.NewManager(configDir)
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logger := logging.New(loggerConfig(cfg, os.Stderr))
	ctx := logging.WithContext(context.Background(), logger)
	logger.Debug().Str("config", mgr.GetConfigFile()).Msg("config loaded")

	return &App{
		Config:        cfg,
		ConfigManager: mgr,
		Theme:         styles.NewTheme(cfg),
		ctx:           ctx,
	}, nil
}

func loggerConfig(cfg *config.Config, out *os.File) logging.Config {
	c := logging.DefaultConfig()
	c.Level = logging.ParseLevel(cfg.Logging.Level)
	c.Format = cfg.Logging.Format
	c.TimeFormat = "15:04:05"
	if out != nil {
		c.Output = out
	}
	return c
}

// UseLogFile sends log output to the configured log file. The terminal
// belongs to the editor UI while it runs, so stderr cannot be used.
func (a *App) UseLogFile() (string, error) {
	path := a.Config.Logging.File
	if path == "" {
		var err error
		if path, err = config.GetLogFile(); err != nil {
			return "", fmt.Errorf("resolve log file: %w", err)
		}
	}

	w, err := logging.OpenFile(path, 0)
	if err != nil {
		return "", err
	}

	c := loggerConfig(a.Config, nil)
	c.Output = w
	logger := logging.New(c)

	if a.logCleanup != nil {
		a.logCleanup()
	}
	a.logCleanup = func() { _ = w.Close() }
	a.ctx = logging.WithContext(context.Background(), logger)
	logger.Info().Str("version", a.BuildInfo.Short()).Msg("viewspace starting")
	return path, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
		a.logCleanup = nil
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return logging.FromContext(a.ctx)
}
