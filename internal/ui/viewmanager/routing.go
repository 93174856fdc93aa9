package viewmanager

import (
	"github.com/bnema/viewspace/internal/application/port"
	"github.com/bnema/viewspace/internal/domain/entity"
	"github.com/bnema/viewspace/internal/ui/action"
)

// SetCurrentDocument shows doc in the active space. With findOpenView, a
// space that already shows doc is activated instead, most recent first.
// Afterwards every other empty space is filled with doc, and the active
// view gets keyboard focus.
func (m *Manager) SetCurrentDocument(doc port.Document, findOpenView bool) {
	if doc == nil {
		return
	}

	active := m.ActiveViewSpace()
	if doc != active.Document() {
		found := false
		if findOpenView {
			for i := len(m.recency) - 2; i >= 0; i-- {
				if m.recency[i].Document() == doc {
					m.SetActiveViewSpace(m.recency[i])
					found = true
					break
				}
			}
		}
		if !found {
			active.ShowDocument(doc)
		}
	}

	m.fillEmpty(doc)

	if view := m.ActiveView(); view != nil {
		view.SetFocus()
	}
}

// DocumentClosed drops doc from every space. Spaces left empty are filled
// with whatever the active space shows afterwards.
func (m *Manager) DocumentClosed(doc port.Document) {
	if doc == nil {
		return
	}
	before := m.ActiveViewSpace().Document()

	for _, vs := range m.ViewSpaces() {
		vs.RemoveDocument(doc)
	}

	after := m.ActiveViewSpace().Document()
	m.logger.Debug().
		Str("document", doc.DocumentName()).
		Bool("active_changed", before != after).
		Msg("document closed")

	// Backfill runs even when the active document kept its identity.
	if after != nil {
		m.fillEmpty(after)
	}
}

func (m *Manager) fillEmpty(doc port.Document) {
	spaces := m.ViewSpaces()
	for _, vs := range spaces[:len(spaces)-1] {
		if vs.Document() == nil {
			vs.ShowDocument(doc)
		}
	}
}

func (m *Manager) registerActions() {
	m.actions = action.NewSet()
	m.actions.Register(action.SplitHorizontal, func() {
		m.SplitViewSpace(m.ActiveViewSpace(), entity.OrientationVertical)
	})
	m.actions.Register(action.SplitVertical, func() {
		m.SplitViewSpace(m.ActiveViewSpace(), entity.OrientationHorizontal)
	})
	m.actions.Register(action.ClosePane, func() {
		m.CloseViewSpace(m.ActiveViewSpace())
	})
	m.actions.Register(action.NextPane, m.FocusNext)
	m.actions.Register(action.PreviousPane, m.FocusPrevious)
	m.actions.Register(action.GrowPane, func() { m.ResizeActive(m.resizeStep) })
	m.actions.Register(action.ShrinkPane, func() { m.ResizeActive(-m.resizeStep) })
	m.actions.Register(action.EqualizePanes, m.EqualizeActive)

	if unknown := m.actions.ApplyKeys(m.keyBindings); len(unknown) > 0 {
		m.logger.Warn().Strs("commands", unknown).Msg("ignoring key bindings for unknown commands")
	}
}

// updateActions enables the pane commands that need a second space.
func (m *Manager) updateActions() {
	multi := m.CanCloseViewSpace()
	for _, id := range []action.ID{
		action.ClosePane,
		action.NextPane,
		action.PreviousPane,
		action.GrowPane,
		action.ShrinkPane,
		action.EqualizePanes,
	} {
		m.actions.SetEnabled(id, multi)
	}
}
