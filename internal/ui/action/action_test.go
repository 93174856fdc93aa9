package action_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/viewspace/internal/ui/action"
)

func altRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: true}
}

func TestRegister_UsesDefaultsAndLabels(t *testing.T) {
	s := action.NewSet()
	cmd := s.Register(action.SplitHorizontal, func() {})

	assert.Equal(t, action.SplitHorizontal, cmd.ID())
	assert.Equal(t, "Split Horizontal", cmd.Label())
	assert.Equal(t, []string{"alt+s"}, cmd.Keys())
	assert.True(t, cmd.Enabled())
}

func TestTrigger_RespectsEnabledState(t *testing.T) {
	s := action.NewSet()
	calls := 0
	s.Register(action.ClosePane, func() { calls++ })

	assert.True(t, s.Trigger(action.ClosePane))
	s.SetEnabled(action.ClosePane, false)
	assert.False(t, s.Trigger(action.ClosePane))
	assert.False(t, s.Trigger("missing"))
	assert.Equal(t, 1, calls)
}

func TestSetEnabled_EmitsOnlyOnChange(t *testing.T) {
	s := action.NewSet()
	s.Register(action.NextPane, func() {})

	var changes []action.StateChange
	s.OnStateChanged(func(c action.StateChange) { changes = append(changes, c) })

	s.SetEnabled(action.NextPane, true)
	s.SetEnabled(action.NextPane, false)
	s.SetEnabled(action.NextPane, false)

	require.Len(t, changes, 1)
	assert.Equal(t, action.StateChange{ID: action.NextPane, Enabled: false}, changes[0])
}

func TestHandleKey_MatchesBindings(t *testing.T) {
	s := action.NewSet()
	var got []action.ID
	for _, id := range action.Order {
		id := id
		s.Register(id, func() { got = append(got, id) })
	}

	assert.True(t, s.HandleKey(altRune('v')))
	assert.True(t, s.HandleKey(tea.KeyMsg{Type: tea.KeyRight, Alt: true}))
	assert.False(t, s.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'v'}}))

	s.SetEnabled(action.SplitVertical, false)
	assert.False(t, s.HandleKey(altRune('v')))

	assert.Equal(t, []action.ID{action.SplitVertical, action.NextPane}, got)
}

func TestRebind_KeepsEnabledState(t *testing.T) {
	s := action.NewSet()
	s.Register(action.PreviousPane, func() {})
	s.SetEnabled(action.PreviousPane, false)

	require.NoError(t, s.Rebind(action.PreviousPane, "ctrl+p"))

	cmd, ok := s.Get(action.PreviousPane)
	require.True(t, ok)
	assert.Equal(t, []string{"ctrl+p"}, cmd.Keys())
	assert.False(t, cmd.Enabled())
	assert.Error(t, s.Rebind("missing", "x"))
	assert.Error(t, s.Rebind(action.PreviousPane))
}

func TestApplyKeys_ReportsUnknownCommands(t *testing.T) {
	s := action.NewSet()
	s.Register(action.SplitHorizontal, func() {})

	unknown := s.ApplyKeys(map[string][]string{
		"split-horizontal": {"ctrl+x"},
		"bogus":            {"ctrl+y"},
	})

	assert.Equal(t, []string{"bogus"}, unknown)
	id, ok := s.Match(tea.KeyMsg{Type: tea.KeyCtrlX})
	require.True(t, ok)
	assert.Equal(t, action.SplitHorizontal, id)
}

func TestHelp_ListsCommandsInOrder(t *testing.T) {
	s := action.NewSet()
	for _, id := range action.Order {
		s.Register(id, func() {})
	}

	full := s.FullHelp()
	require.Len(t, full, 1)
	require.Len(t, full[0], len(action.Order))
	assert.Equal(t, "Split Horizontal", full[0][0].Help().Desc)
	assert.Len(t, s.ShortHelp(), 4)
}
