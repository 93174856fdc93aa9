package config

// Config represents the complete configuration for viewspace.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging"`
	// Layout controls pane resizing.
	Layout LayoutConfig `mapstructure:"layout" toml:"layout" json:"layout"`
	// Keybindings maps a command ID (e.g. "split-horizontal") to its keys.
	// Commands left out keep their default keys.
	Keybindings map[string][]string `mapstructure:"keybindings" toml:"keybindings" json:"keybindings,omitempty"`
	// StatusBar controls the per-pane status line.
	StatusBar StatusBarConfig `mapstructure:"statusbar" toml:"statusbar" json:"statusbar"`
	// Appearance holds the terminal color palette.
	Appearance AppearanceConfig `mapstructure:"appearance" toml:"appearance" json:"appearance"`
}

// LoggingConfig holds logging preferences.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	// File receives log output while the editor owns the terminal.
	// Empty means $XDG_STATE_HOME/viewspace/logs/viewspace.log.
	File string `mapstructure:"file" toml:"file" json:"file,omitempty"`
}

// LayoutConfig holds pane sizing preferences, in percent of the parent.
type LayoutConfig struct {
	ResizeStepPercent float64 `mapstructure:"resize_step_percent" toml:"resize_step_percent" json:"resize_step_percent" jsonschema:"exclusiveMinimum=0,maximum=50"`
	MinPanePercent    float64 `mapstructure:"min_pane_percent" toml:"min_pane_percent" json:"min_pane_percent" jsonschema:"exclusiveMinimum=0,exclusiveMaximum=50"`
}

// ResizeStep returns the resize step as a share of the parent.
func (l LayoutConfig) ResizeStep() float64 {
	return l.ResizeStepPercent / 100
}

// MinShare returns the minimum pane size as a share of the parent.
func (l LayoutConfig) MinShare() float64 {
	return l.MinPanePercent / 100
}

// StatusBarConfig controls the status line drawn under each pane.
type StatusBarConfig struct {
	Show bool `mapstructure:"show" toml:"show" json:"show"`
	// PositionFormat supports {line} and {column} placeholders.
	PositionFormat string `mapstructure:"position_format" toml:"position_format" json:"position_format"`
}

// AppearanceConfig holds the color palette used by the editor and the CLI.
type AppearanceConfig struct {
	Palette ColorPalette `mapstructure:"palette" toml:"palette" json:"palette"`
}

// ColorPalette holds hex colors (#rgb or #rrggbb).
type ColorPalette struct {
	Background string `mapstructure:"background" toml:"background" json:"background"`
	Surface    string `mapstructure:"surface" toml:"surface" json:"surface"`
	Text       string `mapstructure:"text" toml:"text" json:"text"`
	Muted      string `mapstructure:"muted" toml:"muted" json:"muted"`
	Accent     string `mapstructure:"accent" toml:"accent" json:"accent"`
	Border     string `mapstructure:"border" toml:"border" json:"border"`
}
