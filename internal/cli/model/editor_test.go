package model

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/viewspace/internal/application/port"
	"github.com/bnema/viewspace/internal/cli/styles"
	"github.com/bnema/viewspace/internal/domain/entity"
	"github.com/bnema/viewspace/internal/infrastructure/config"
	"github.com/bnema/viewspace/internal/infrastructure/document"
	"github.com/bnema/viewspace/internal/ui/layout"
	"github.com/bnema/viewspace/internal/ui/viewmanager"
)

func altKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: true}
}

func newEditor(t *testing.T, docs ...port.Document) (EditorModel, *viewmanager.Manager) {
	t.Helper()
	n := 0
	mgr := viewmanager.New(context.Background(), viewmanager.WithIDGenerator(func() string {
		n++
		return "pane-" + string(rune('0'+n))
	}))
	t.Cleanup(mgr.Close)

	m := NewEditorModel(context.Background(), styles.NewTheme(nil), mgr, docs, config.DefaultConfig())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(EditorModel), mgr
}

func send(t *testing.T, m EditorModel, msg tea.Msg) (EditorModel, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(EditorModel), cmd
}

func TestNewEditorModel_FirstDocumentActive(t *testing.T) {
	a := document.New("a.txt", "/tmp/a.txt", "alpha\n")
	b := document.New("b.txt", "/tmp/b.txt", "beta\n")

	_, mgr := newEditor(t, a, b)

	vs := mgr.ActiveViewSpace()
	assert.Same(t, a, vs.Document())
	assert.Equal(t, 2, vs.Len())
}

func TestEditor_PaneKeysDriveManager(t *testing.T) {
	m, mgr := newEditor(t, document.New("a.txt", "", "alpha"))

	m, _ = send(t, m, altKey('v'))
	require.Equal(t, 2, mgr.Count())
	assert.Equal(t, entity.OrientationHorizontal, mgr.Root().Orientation)

	m, _ = send(t, m, altKey('s'))
	require.Equal(t, 3, mgr.Count())

	m, _ = send(t, m, altKey('w'))
	assert.Equal(t, 2, mgr.Count())
	require.NoError(t, mgr.Root().Validate())

	out := m.View()
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "│")
}

func TestEditor_ViewShowsEmptyPane(t *testing.T) {
	m, mgr := newEditor(t)

	assert.Contains(t, m.View(), "no document")
	assert.Equal(t, 1, mgr.Count())
}

func TestEditor_CycleAndCloseDocuments(t *testing.T) {
	a := document.New("a.txt", "", "alpha")
	b := document.New("b.txt", "", "beta")
	m, mgr := newEditor(t, a, b)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Same(t, b, mgr.ActiveViewSpace().Document())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Same(t, a, mgr.ActiveViewSpace().Document())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlW})
	assert.Same(t, b, mgr.ActiveViewSpace().Document())
	assert.Equal(t, []port.Document{b}, m.Documents())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlW})
	assert.Nil(t, mgr.ActiveViewSpace().Document())
	assert.Empty(t, m.Documents())
}

func TestEditor_FindDocumentJumpsToOpenPane(t *testing.T) {
	a := document.New("a.txt", "", "alpha")
	b := document.New("b.txt", "", "beta")
	m, mgr := newEditor(t, a, b)

	m, _ = send(t, m, altKey('v'))
	right := mgr.ActiveViewSpace()
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Same(t, b, right.Document())

	m, _ = send(t, m, altKey('n'))
	left := mgr.ActiveViewSpace()
	require.NotSame(t, right, left)

	_, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlF})
	assert.Same(t, right, mgr.ActiveViewSpace())
	assert.Same(t, a, left.Document())
}

func TestEditor_CursorAndModifiedReachStatus(t *testing.T) {
	a := document.New("a.txt", "", "one\ntwo\nthree")
	m, mgr := newEditor(t, a)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})

	st := mgr.ActiveViewSpace().Status()
	assert.Equal(t, 2, st.Line)
	assert.Equal(t, 1, st.Column)
	assert.True(t, st.Modified)
	assert.Contains(t, m.View(), "Line: 2, Col: 1")
}

func TestEditor_StatusColumnCountsCharacters(t *testing.T) {
	m, mgr := newEditor(t, document.New("a.txt", "", "héllo"))

	for range 8 {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	}

	assert.Equal(t, 5, mgr.ActiveViewSpace().Status().Column)
	assert.Contains(t, m.View(), "Line: 1, Col: 5")
	assert.Contains(t, m.View(), "héllo")
}

func TestEditor_MouseClickFocusesPane(t *testing.T) {
	m, mgr := newEditor(t, document.New("a.txt", "", "alpha"))
	first := mgr.ActiveViewSpace()

	m, _ = send(t, m, altKey('v'))
	require.NotSame(t, first, mgr.ActiveViewSpace())

	_, _ = send(t, m, tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Same(t, first, mgr.ActiveViewSpace())
}

func TestEditor_DirectionalFocus(t *testing.T) {
	m, mgr := newEditor(t, document.New("a.txt", "", "alpha"))
	left := mgr.ActiveViewSpace()

	m, _ = send(t, m, altKey('v'))
	right := mgr.ActiveViewSpace()
	m, _ = send(t, m, altKey('s'))
	bottom := mgr.ActiveViewSpace()
	require.NotSame(t, right, bottom)

	m, _ = send(t, m, altKey('k'))
	assert.Same(t, right, mgr.ActiveViewSpace())

	m, _ = send(t, m, altKey('h'))
	assert.Same(t, left, mgr.ActiveViewSpace())

	// Nothing further left; focus stays put.
	_, _ = send(t, m, altKey('h'))
	assert.Same(t, left, mgr.ActiveViewSpace())
}

func TestEditor_ConfigReloadRebindsKeys(t *testing.T) {
	m, mgr := newEditor(t, document.New("a.txt", "", "alpha"))

	cfg := config.DefaultConfig()
	cfg.Keybindings["split-vertical"] = []string{"ctrl+b"}
	cfg.StatusBar.Show = false
	m, _ = send(t, m, ConfigReloadedMsg{Config: cfg})

	m, _ = send(t, m, altKey('v'))
	assert.Equal(t, 1, mgr.Count())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlB})
	assert.Equal(t, 2, mgr.Count())
	assert.NotContains(t, m.View(), "Line:")
}

func TestEditor_Quit(t *testing.T) {
	m, _ := newEditor(t)

	_, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlQ})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestCompose_TilesRows(t *testing.T) {
	out := compose(layout.Rect{Width: 3, Height: 2}, []block{
		{rect: layout.Rect{X: 2, Width: 1, Height: 2}, lines: []string{"c", "f"}},
		{rect: layout.Rect{Width: 2, Height: 2}, lines: []string{"ab", "de"}},
	})
	assert.Equal(t, "abc\ndef", out)
}

func TestFit(t *testing.T) {
	assert.Equal(t, "ab  ", fit("ab", 4))
	assert.Equal(t, "abc", fit("abcdef", 3))
}
