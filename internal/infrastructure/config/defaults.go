package config

import (
	"github.com/bnema/viewspace/internal/domain/command"
	"github.com/bnema/viewspace/internal/domain/entity"
)

// Default configuration constants
const (
	defaultLogLevel  = "info"
	defaultLogFormat = "console"

	defaultResizeStepPercent = 5.0
	defaultMinPanePercent    = 10.0
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Layout: LayoutConfig{
			ResizeStepPercent: defaultResizeStepPercent,
			MinPanePercent:    defaultMinPanePercent,
		},
		Keybindings: DefaultKeybindings(),
		StatusBar: StatusBarConfig{
			Show:           true,
			PositionFormat: entity.DefaultPositionFormat,
		},
		Appearance: AppearanceConfig{
			Palette: DefaultPalette(),
		},
	}
}

// DefaultPalette returns the dark palette.
func DefaultPalette() ColorPalette {
	return ColorPalette{
		Background: "#0a0a0b",
		Surface:    "#1a1a1b",
		Text:       "#ffffff",
		Muted:      "#909090",
		Accent:     "#4ade80",
		Border:     "#333333",
	}
}

// DefaultKeybindings returns the default keys of every pane command.
func DefaultKeybindings() map[string][]string {
	out := make(map[string][]string, len(command.DefaultKeys))
	for id, keys := range command.DefaultKeys {
		out[string(id)] = append([]string(nil), keys...)
	}
	return out
}
