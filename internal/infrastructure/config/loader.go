package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/bnema/viewspace/internal/domain/entity"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	dir       string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a configuration manager reading config.toml from dir.
// An empty dir means the XDG config directory.
func NewManager(dir string) (*Manager, error) {
	if dir == "" {
		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		dir = configDir
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(dir)

	// VIEWSPACE_LAYOUT_MIN_PANE_PERCENT and friends.
	v.SetEnvPrefix("VIEWSPACE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "VIEWSPACE_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind VIEWSPACE_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "VIEWSPACE_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind VIEWSPACE_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper: v,
		dir:   dir,
	}, nil
}

// Load loads the configuration from file and environment variables.
// A default config file is written when none exists.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions",
				m.configFilePath(), err)
		}
		if createErr := m.createDefaultConfig(); createErr != nil {
			return fmt.Errorf("failed to create default config at %s: %w", m.dir, createErr)
		}
		if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
			return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
		}
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	switch config.Logging.Level {
	case "":
		config.Logging.Level = defaultLogLevel
	case "warning":
		config.Logging.Level = "warn"
	case "off":
		config.Logging.Level = "disabled"
	}

	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "" || config.Logging.Format == "text" {
		config.Logging.Format = defaultLogFormat
	}
	config.Logging.File = strings.TrimSpace(config.Logging.File)

	if strings.TrimSpace(config.StatusBar.PositionFormat) == "" {
		config.StatusBar.PositionFormat = entity.DefaultPositionFormat
	}

	for name, keys := range config.Keybindings {
		cleaned := make([]string, 0, len(keys))
		for _, k := range keys {
			if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
				cleaned = append(cleaned, k)
			}
		}
		config.Keybindings[name] = cleaned
	}
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return m.configFilePath()
}

func (m *Manager) configFilePath() string {
	return filepath.Join(m.dir, "config.toml")
}

// createDefaultConfig writes the defaults to config.toml.
func (m *Manager) createDefaultConfig() error {
	if err := os.MkdirAll(m.dir, dirPerm); err != nil {
		return err
	}
	configFile := m.configFilePath()
	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.file", defaults.Logging.File)

	m.viper.SetDefault("layout.resize_step_percent", defaults.Layout.ResizeStepPercent)
	m.viper.SetDefault("layout.min_pane_percent", defaults.Layout.MinPanePercent)

	for name, keys := range defaults.Keybindings {
		m.viper.SetDefault("keybindings."+name, keys)
	}

	m.viper.SetDefault("statusbar.show", defaults.StatusBar.Show)
	m.viper.SetDefault("statusbar.position_format", defaults.StatusBar.PositionFormat)

	palette := defaults.Appearance.Palette
	m.viper.SetDefault("appearance.palette.background", palette.Background)
	m.viper.SetDefault("appearance.palette.surface", palette.Surface)
	m.viper.SetDefault("appearance.palette.text", palette.Text)
	m.viper.SetDefault("appearance.palette.muted", palette.Muted)
	m.viper.SetDefault("appearance.palette.accent", palette.Accent)
	m.viper.SetDefault("appearance.palette.border", palette.Border)
}
