// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"slices"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bnema/viewspace/internal/application/port"
	"github.com/bnema/viewspace/internal/cli/styles"
	"github.com/bnema/viewspace/internal/domain/entity"
	"github.com/bnema/viewspace/internal/infrastructure/config"
	"github.com/bnema/viewspace/internal/logging"
	"github.com/bnema/viewspace/internal/ui/action"
	"github.com/bnema/viewspace/internal/ui/focus"
	"github.com/bnema/viewspace/internal/ui/layout"
	"github.com/bnema/viewspace/internal/ui/status"
	"github.com/bnema/viewspace/internal/ui/viewmanager"
	"github.com/bnema/viewspace/internal/ui/viewspace"
)

// Optional capabilities of documents and views supplied by the host.
type (
	textSource interface {
		Lines() []string
	}
	cursorMover interface {
		MoveCursor(dLine, dColumn int)
	}
	modifiable interface {
		SetModified(modified bool)
	}
)

// ConfigReloadedMsg carries a configuration that changed on disk.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// EditorModel is the Bubble Tea model of the split-pane editor.
type EditorModel struct {
	// UI components
	help   help.Model
	keys   styles.EditorKeyMap
	status *status.Renderer

	// State
	docs       []port.Document // Open order
	showStatus bool
	width      int
	height     int

	// Dependencies
	ctx     context.Context
	manager *viewmanager.Manager
	theme   *styles.Theme
}

// NewEditorModel creates the editor over manager and opens docs. The first
// document ends up active; the rest are stacked behind it in the first pane.
func NewEditorModel(ctx context.Context, theme *styles.Theme, manager *viewmanager.Manager, docs []port.Document, cfg *config.Config) EditorModel {
	log := logging.FromContext(ctx)
	log.Debug().Int("documents", len(docs)).Msg("creating editor model")

	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	m := EditorModel{
		help:       styles.NewStyledHelp(theme),
		keys:       styles.DefaultEditorKeyMap(),
		status:     status.NewRenderer(theme.Accent, theme.Muted, cfg.StatusBar.PositionFormat),
		docs:       slices.Clone(docs),
		showStatus: cfg.StatusBar.Show,
		ctx:        ctx,
		manager:    manager,
		theme:      theme,
		width:      80,
		height:     24,
	}

	for i := len(m.docs) - 1; i >= 0; i-- {
		manager.SetCurrentDocument(m.docs[i], false)
	}
	return m
}

// Init implements tea.Model.
func (m EditorModel) Init() tea.Cmd {
	return tea.SetWindowTitle("viewspace")
}

// Update implements tea.Model.
func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case ConfigReloadedMsg:
		return m.handleConfigReloaded(msg)
	}

	return m, nil
}

func (m EditorModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.manager.Actions().HandleKey(msg) {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, 0)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(0, 1)
	case key.Matches(msg, m.keys.FocusLeft):
		m.focusDirection(focus.Left)
	case key.Matches(msg, m.keys.FocusDown):
		m.focusDirection(focus.Down)
	case key.Matches(msg, m.keys.FocusUp):
		m.focusDirection(focus.Up)
	case key.Matches(msg, m.keys.FocusRight):
		m.focusDirection(focus.Right)
	case key.Matches(msg, m.keys.NextDocument):
		m.cycleDocument(1, false)
	case key.Matches(msg, m.keys.PrevDocument):
		m.cycleDocument(-1, false)
	case key.Matches(msg, m.keys.FindDocument):
		m.cycleDocument(1, true)
	case key.Matches(msg, m.keys.CloseDocument):
		m = m.closeDocument()
	case key.Matches(msg, m.keys.ToggleModified):
		m.toggleModified()
	}
	return m, nil
}

func (m EditorModel) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	geo, err := layout.Compute(m.manager.Root(), m.paneArea())
	if err != nil {
		return m, nil
	}
	if id, ok := geo.At(msg.X, msg.Y); ok {
		m.focusSpace(id)
	}
	return m, nil
}

func (m EditorModel) focusDirection(dir focus.Direction) {
	geo, err := layout.Compute(m.manager.Root(), m.paneArea())
	if err != nil {
		return
	}
	if id, ok := focus.Navigate(m.ctx, geo, m.manager.ActiveViewSpace().ID(), dir); ok {
		m.focusSpace(id)
	}
}

// focusSpace activates a view space through its view's focus-in, the way a
// host toolkit would, or directly when the space is empty.
func (m EditorModel) focusSpace(id entity.ViewSpaceID) {
	vs, ok := m.manager.ViewSpace(id)
	if !ok {
		return
	}
	if view := vs.ActiveView(); view != nil {
		view.SetFocus()
		return
	}
	m.manager.SetActiveViewSpace(vs)
}

func (m EditorModel) handleConfigReloaded(msg ConfigReloadedMsg) (tea.Model, tea.Cmd) {
	log := logging.FromContext(m.ctx)
	cfg := msg.Config
	if cfg == nil {
		return m, nil
	}

	if unknown := m.manager.Actions().ApplyKeys(cfg.Keybindings); len(unknown) > 0 {
		log.Warn().Strs("commands", unknown).Msg("ignoring keybindings for unknown commands")
	}
	m.status.PositionFormat = cfg.StatusBar.PositionFormat
	m.showStatus = cfg.StatusBar.Show
	log.Info().Msg("configuration reloaded")
	return m, nil
}

func (m EditorModel) moveCursor(dLine, dColumn int) {
	if mover, ok := m.manager.ActiveView().(cursorMover); ok {
		mover.MoveCursor(dLine, dColumn)
	}
}

func (m EditorModel) cycleDocument(step int, findOpenView bool) {
	n := len(m.docs)
	if n == 0 {
		return
	}
	idx := 0
	if current := m.manager.ActiveViewSpace().Document(); current != nil {
		if i := slices.Index(m.docs, current); i >= 0 {
			idx = ((i+step)%n + n) % n
		}
	}
	m.manager.SetCurrentDocument(m.docs[idx], findOpenView)
}

func (m EditorModel) closeDocument() EditorModel {
	doc := m.manager.ActiveViewSpace().Document()
	if doc == nil {
		return m
	}
	m.docs = slices.DeleteFunc(m.docs, func(d port.Document) bool { return d == doc })
	m.manager.DocumentClosed(doc)

	if m.manager.ActiveViewSpace().Document() == nil && len(m.docs) > 0 {
		m.manager.SetCurrentDocument(m.docs[len(m.docs)-1], false)
	}
	logging.FromContext(m.ctx).Debug().Str("document", doc.DocumentName()).Msg("document closed")
	return m
}

func (m EditorModel) toggleModified() {
	doc := m.manager.ActiveViewSpace().Document()
	if md, ok := doc.(modifiable); ok {
		md.SetModified(!doc.IsModified())
	}
}

// Documents returns the open documents in open order.
func (m EditorModel) Documents() []port.Document {
	return slices.Clone(m.docs)
}

// View implements tea.Model.
func (m EditorModel) View() string {
	helpView := m.help.View(editorHelp{actions: m.manager.Actions(), keys: m.keys})
	area := m.paneArea()

	geo, err := layout.Compute(m.manager.Root(), area)
	if err != nil {
		return m.theme.ErrorStyle.Render(err.Error())
	}

	var blocks []block
	for _, region := range geo.Regions {
		vs, ok := m.manager.ViewSpace(region.ViewSpace)
		if !ok {
			continue
		}
		blocks = append(blocks, block{rect: region.Rect, lines: m.renderPane(vs, region.Rect)})
	}
	for _, div := range geo.Dividers {
		blocks = append(blocks, block{rect: div.Rect, lines: m.renderDivider(div)})
	}

	return compose(area, blocks) + "\n" + helpView
}

func (m EditorModel) paneArea() layout.Rect {
	helpHeight := 1
	if m.help.ShowAll {
		helpHeight = lipgloss.Height(m.help.View(editorHelp{actions: m.manager.Actions(), keys: m.keys}))
	}
	return layout.Rect{Width: max(m.width, 1), Height: max(m.height-helpHeight, 1)}
}

func (m EditorModel) renderPane(vs *viewspace.ViewSpace, rect layout.Rect) []string {
	statusHeight := 0
	if m.showStatus && rect.Height > 1 {
		statusHeight = 1
	}
	contentHeight := rect.Height - statusHeight
	active := vs == m.manager.ActiveViewSpace()

	lines := make([]string, 0, rect.Height)
	view := vs.ActiveView()
	if view == nil {
		lines = append(lines, fit(m.theme.EmptyPane.Render(" no document"), rect.Width))
		for len(lines) < contentHeight {
			lines = append(lines, fit("", rect.Width))
		}
	} else {
		lines = append(lines, m.renderText(view, contentHeight, rect.Width, active)...)
	}

	if statusHeight > 0 {
		bar := m.status.Render(vs.Status(), rect.Width)
		bar, _, _ = strings.Cut(bar, "\n")
		lines = append(lines, fit(bar, rect.Width))
	}
	return lines
}

func (m EditorModel) renderText(view port.View, height, width int, active bool) []string {
	var text []string
	if src, ok := view.Document().(textSource); ok {
		text = src.Lines()
	}
	line, column := view.CursorPosition()
	top := max(0, line-height+1)

	out := make([]string, 0, height)
	for i := range height {
		idx := top + i
		if idx >= len(text) {
			out = append(out, fit(m.theme.Subtle.Render("~"), width))
			continue
		}
		s := text[idx]
		if active && idx == line {
			s = withCursor(s, column)
		}
		out = append(out, fit(s, width))
	}
	return out
}

func (m EditorModel) renderDivider(div layout.Divider) []string {
	// A horizontal splitter lays children side by side, so its dividers are vertical lines.
	glyph := "─"
	if div.Orientation == entity.OrientationHorizontal {
		glyph = "│"
	}
	line := lipgloss.NewStyle().Foreground(m.theme.Border).Render(strings.Repeat(glyph, div.Rect.Width))
	lines := make([]string, div.Rect.Height)
	for i := range lines {
		lines[i] = line
	}
	return lines
}

var cursorStyle = lipgloss.NewStyle().Reverse(true)

func withCursor(s string, column int) string {
	runes := []rune(s)
	if column >= len(runes) {
		return s + cursorStyle.Render(" ")
	}
	return string(runes[:column]) + cursorStyle.Render(string(runes[column])) + string(runes[column+1:])
}

// fit truncates or pads s to exactly width cells.
func fit(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	if pad := width - lipgloss.Width(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

type block struct {
	rect  layout.Rect
	lines []string
}

// compose stitches blocks that tile area into one string, row by row.
func compose(area layout.Rect, blocks []block) string {
	sort.Slice(blocks, func(i, j int) bool { return blocks[i].rect.X < blocks[j].rect.X })

	rows := make([]string, area.Height)
	for y := range area.Height {
		var sb strings.Builder
		for _, b := range blocks {
			row := y - b.rect.Y
			if row < 0 || row >= b.rect.Height || row >= len(b.lines) {
				continue
			}
			sb.WriteString(b.lines[row])
		}
		rows[y] = sb.String()
	}
	return strings.Join(rows, "\n")
}

// editorHelp merges pane commands and editor keys for the help view.
type editorHelp struct {
	actions *action.Set
	keys    styles.EditorKeyMap
}

func (h editorHelp) ShortHelp() []key.Binding {
	return append(h.actions.ShortHelp(), h.keys.ShortHelp()...)
}

func (h editorHelp) FullHelp() [][]key.Binding {
	return append(h.actions.FullHelp(), h.keys.FullHelp()...)
}
