// Package status holds the per view space decoration: cursor position,
// modified marker and document name, and renders it as a one-line bar.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/viewspace/internal/application/port"
	"github.com/bnema/viewspace/internal/domain/entity"
)

// DefaultPositionFormat is the cursor position template. {line} is 1-based,
// {column} is 0-based.
const DefaultPositionFormat = entity.DefaultPositionFormat

const modifiedMarker = "●"

// Status is the decoration state of one view space.
type Status struct {
	HasView  bool
	Line     int // 1-based
	Column   int // 0-based
	Modified bool
	Name     string
	// Enabled is true only for the active view space.
	Enabled bool
}

// FromView reads the decoration state of view. A nil view yields an empty status.
func FromView(view port.View, enabled bool) Status {
	if view == nil {
		return Status{Enabled: enabled}
	}
	line, column := view.CursorPosition()
	doc := view.Document()
	return Status{
		HasView:  true,
		Line:     line + 1,
		Column:   column,
		Modified: doc.IsModified(),
		Name:     doc.DocumentName(),
		Enabled:  enabled,
	}
}

// PositionText formats the cursor position using format, or the default when empty.
func (s Status) PositionText(format string) string {
	if !s.HasView {
		return ""
	}
	if format == "" {
		format = DefaultPositionFormat
	}
	r := strings.NewReplacer(
		"{line}", fmt.Sprint(s.Line),
		"{column}", fmt.Sprint(s.Column),
	)
	return r.Replace(format)
}

// Renderer draws status bars.
type Renderer struct {
	PositionFormat string

	Enabled  lipgloss.Style
	Disabled lipgloss.Style
	Modified lipgloss.Style
}

// NewRenderer creates a renderer with the given accent and muted colors.
func NewRenderer(accent, muted lipgloss.Color, positionFormat string) *Renderer {
	return &Renderer{
		PositionFormat: positionFormat,
		Enabled:        lipgloss.NewStyle().Bold(true),
		Disabled:       lipgloss.NewStyle().Foreground(muted),
		Modified:       lipgloss.NewStyle().Foreground(accent),
	}
}

// Render returns the status bar for s, padded or truncated to width cells.
func (r *Renderer) Render(s Status, width int) string {
	base := r.Disabled
	if s.Enabled {
		base = r.Enabled
	}

	var parts []string
	if pos := s.PositionText(r.PositionFormat); pos != "" {
		parts = append(parts, pos)
	}
	if s.Modified {
		marker := modifiedMarker
		if s.Enabled {
			marker = r.Modified.Render(modifiedMarker)
		}
		parts = append(parts, marker)
	}
	if s.Name != "" {
		parts = append(parts, s.Name)
	}

	line := strings.Join(parts, "  ")
	if width <= 0 {
		return base.Render(line)
	}
	return base.Width(width).MaxWidth(width).Render(line)
}
