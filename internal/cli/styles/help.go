package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// EditorKeyMap defines the editor keys that are not pane commands.
// Pane commands come from the view manager's action set.
type EditorKeyMap struct {
	Up             key.Binding
	Down           key.Binding
	Left           key.Binding
	Right          key.Binding
	FocusLeft      key.Binding
	FocusDown      key.Binding
	FocusUp        key.Binding
	FocusRight     key.Binding
	NextDocument   key.Binding
	PrevDocument   key.Binding
	FindDocument   key.Binding
	CloseDocument  key.Binding
	ToggleModified key.Binding
	Help           key.Binding
	Quit           key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k EditorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextDocument, k.CloseDocument, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k EditorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.FocusLeft, k.FocusDown, k.FocusUp, k.FocusRight},
		{k.NextDocument, k.PrevDocument, k.FindDocument, k.CloseDocument},
		{k.ToggleModified, k.Help, k.Quit},
	}
}

// DefaultEditorKeyMap returns the default editor keybindings.
func DefaultEditorKeyMap() EditorKeyMap {
	return EditorKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		FocusLeft: key.NewBinding(
			key.WithKeys("alt+h"),
			key.WithHelp("alt+h", "focus pane left"),
		),
		FocusDown: key.NewBinding(
			key.WithKeys("alt+j"),
			key.WithHelp("alt+j", "focus pane below"),
		),
		FocusUp: key.NewBinding(
			key.WithKeys("alt+k"),
			key.WithHelp("alt+k", "focus pane above"),
		),
		FocusRight: key.NewBinding(
			key.WithKeys("alt+l"),
			key.WithHelp("alt+l", "focus pane right"),
		),
		NextDocument: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next document"),
		),
		PrevDocument: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous document"),
		),
		FindDocument: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("ctrl+f", "next document, jump to open pane"),
		),
		CloseDocument: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("ctrl+w", "close document"),
		),
		ToggleModified: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "toggle modified"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+q"),
			key.WithHelp("ctrl+q", "quit"),
		),
	}
}

// NewStyledHelp creates a help model styled with the theme.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
