package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/bnema/viewspace/internal/domain/command"
)

// ErrInvalidRatio is wrapped when a layout percentage is out of range.
var ErrInvalidRatio = errors.New("invalid ratio")

// ValidationError lists every problem found in a configuration.
type ValidationError struct {
	Problems []string
	causes   []error
}

func (e *ValidationError) Error() string {
	return "config validation failed:\n  - " + strings.Join(e.Problems, "\n  - ")
}

// Unwrap exposes sentinel causes such as ErrInvalidRatio.
func (e *ValidationError) Unwrap() []error {
	return e.causes
}

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	verr := &ValidationError{}

	verr.Problems = append(verr.Problems, validateLogging(config)...)
	verr.Problems = append(verr.Problems, validateKeybindings(config)...)
	verr.Problems = append(verr.Problems, validateStatusBar(config)...)
	verr.Problems = append(verr.Problems, validatePalette(config.Appearance.Palette)...)
	if err := validateLayout(config); err != nil {
		verr.Problems = append(verr.Problems, err.Error())
		verr.causes = append(verr.causes, err)
	}

	if len(verr.Problems) > 0 {
		return verr
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "disabled":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error, disabled (got %q)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be console or json (got %q)", config.Logging.Format))
	}
	return validationErrors
}

func validateLayout(config *Config) error {
	step := config.Layout.ResizeStepPercent
	if step <= 0 || step > 50 {
		return fmt.Errorf("%w: layout.resize_step_percent must be in (0, 50] (got %v)", ErrInvalidRatio, step)
	}
	minPane := config.Layout.MinPanePercent
	if minPane <= 0 || minPane >= 50 {
		return fmt.Errorf("%w: layout.min_pane_percent must be in (0, 50) (got %v)", ErrInvalidRatio, minPane)
	}
	return nil
}

func validateKeybindings(config *Config) []string {
	var validationErrors []string
	for _, name := range slices.Sorted(maps.Keys(config.Keybindings)) {
		keys := config.Keybindings[name]
		if !command.Known(name) {
			validationErrors = append(validationErrors, fmt.Sprintf("keybindings.%s: unknown command", name))
			continue
		}
		if len(keys) == 0 {
			validationErrors = append(validationErrors, fmt.Sprintf("keybindings.%s: at least one key is required", name))
		}
		for _, k := range keys {
			if strings.TrimSpace(k) == "" {
				validationErrors = append(validationErrors, fmt.Sprintf("keybindings.%s: empty key", name))
			}
		}
	}
	return validationErrors
}

func validateStatusBar(config *Config) []string {
	format := config.StatusBar.PositionFormat
	if !strings.Contains(format, "{line}") || !strings.Contains(format, "{column}") {
		return []string{"statusbar.position_format must contain {line} and {column}"}
	}
	return nil
}

func validatePalette(p ColorPalette) []string {
	var validationErrors []string
	fields := []struct {
		name  string
		value string
	}{
		{"background", p.Background},
		{"surface", p.Surface},
		{"text", p.Text},
		{"muted", p.Muted},
		{"accent", p.Accent},
		{"border", p.Border},
	}
	for _, f := range fields {
		if !isHexColor(f.value) {
			validationErrors = append(validationErrors,
				fmt.Sprintf("appearance.palette.%s must be a hex color like #4ade80 (got %q)", f.name, f.value))
		}
	}
	return validationErrors
}

func isHexColor(s string) bool {
	if (len(s) != 4 && len(s) != 7) || s[0] != '#' {
		return false
	}
	for _, c := range s[1:] {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
