package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderPaths renders the config and log file locations.
func (r *ConfigRenderer) RenderPaths(configFile, logFile string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf("\n  %s Config %s\n  %s Logs   %s\n",
		iconStyle.Render(IconConfig), r.theme.Subtle.Render(configFile),
		iconStyle.Render(IconFile), r.theme.Subtle.Render(logFile),
	)
}

// RenderSchemaWritten renders the success message after writing the JSON schema.
func (r *ConfigRenderer) RenderSchemaWritten(path string) string {
	return fmt.Sprintf("\n  %s Schema written to %s\n",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Highlight.Render(path),
	)
}

// RenderError renders a config error.
func (r *ConfigRenderer) RenderError(err error) string {
	return fmt.Sprintf("\n  %s %s\n", r.theme.ErrorStyle.Render(IconInfo), r.theme.ErrorStyle.Render(err.Error()))
}
