// Package viewspace implements a view space: a stack of views over
// documents where the most recently shown view is the active one.
package viewspace

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bnema/viewspace/internal/application/port"
	"github.com/bnema/viewspace/internal/domain/entity"
	"github.com/bnema/viewspace/internal/logging"
	"github.com/bnema/viewspace/internal/ui/status"
	"github.com/bnema/viewspace/pkg/signal"
)

// ViewSpace holds an ordered stack of views. The last view is active.
//
// Reactive bindings to the active view (cursor, modification, focus-in and
// the document's URL) are held in one group that is cancelled whenever the
// active view changes or the space is cleared.
type ViewSpace struct {
	id       entity.ViewSpaceID
	views    []port.View
	bindings signal.Group
	status   status.Status
	logger   zerolog.Logger

	focusIn           signal.Signal[*ViewSpace]
	activeViewChanged signal.Signal[port.View]
	statusChanged     signal.Signal[status.Status]
}

// New creates an empty view space.
func New(ctx context.Context, id entity.ViewSpaceID) *ViewSpace {
	ctx = logging.WithViewSpaceID(ctx, string(id))
	return &ViewSpace{
		id:     id,
		logger: *logging.FromContext(ctx),
	}
}

// ID returns the view space identifier.
func (vs *ViewSpace) ID() entity.ViewSpaceID {
	return vs.id
}

// Views returns a copy of the view stack, oldest first.
func (vs *ViewSpace) Views() []port.View {
	out := make([]port.View, len(vs.views))
	copy(out, vs.views)
	return out
}

// Len returns the number of views.
func (vs *ViewSpace) Len() int {
	return len(vs.views)
}

// ActiveView returns the active view, or nil when the space is empty.
func (vs *ViewSpace) ActiveView() port.View {
	if len(vs.views) == 0 {
		return nil
	}
	return vs.views[len(vs.views)-1]
}

// Document returns the active view's document, or nil when the space is empty.
func (vs *ViewSpace) Document() port.Document {
	view := vs.ActiveView()
	if view == nil {
		return nil
	}
	return view.Document()
}

// ShowDocument makes doc the active document, reusing this space's existing
// view of it or creating a new one.
func (vs *ViewSpace) ShowDocument(doc port.Document) {
	if doc == nil || doc == vs.Document() {
		return
	}

	prev := vs.ActiveView()
	var view port.View
	for i, v := range vs.views {
		if v.Document() == doc {
			view = v
			vs.views = append(vs.views[:i], vs.views[i+1:]...)
			break
		}
	}
	if view == nil {
		view = doc.CreateView()
		vs.logger.Debug().Str("document", doc.DocumentName()).Msg("view created")
	}
	vs.views = append(vs.views, view)

	if prev != nil {
		vs.disconnect()
	}
	vs.connect(view)
	vs.activeViewChanged.Emit(view)
	vs.updateStatus()
}

// RemoveDocument closes this space's view of doc. When it was the active
// view, the next most recent view becomes active.
func (vs *ViewSpace) RemoveDocument(doc port.Document) {
	if doc == nil {
		return
	}
	active := doc == vs.Document()

	idx := -1
	for i, v := range vs.views {
		if v.Document() == doc {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	if active {
		vs.disconnect()
	}
	view := vs.views[idx]
	vs.views = append(vs.views[:idx], vs.views[idx+1:]...)
	view.Close()
	vs.logger.Debug().Str("document", doc.DocumentName()).Msg("view removed")

	if !active {
		return
	}
	next := vs.ActiveView()
	if next != nil {
		vs.connect(next)
	}
	vs.activeViewChanged.Emit(next)
	vs.updateStatus()
}

// Clear closes every view.
func (vs *ViewSpace) Clear() {
	vs.disconnect()
	for _, view := range vs.views {
		view.Close()
	}
	vs.views = nil
	vs.updateStatus()
}

// Status returns the current decoration state.
func (vs *ViewSpace) Status() status.Status {
	return vs.status
}

// SetStatusEnabled marks the decoration as belonging to the active space.
func (vs *ViewSpace) SetStatusEnabled(enabled bool) {
	if vs.status.Enabled == enabled {
		return
	}
	vs.status.Enabled = enabled
	vs.statusChanged.Emit(vs.status)
}

// OnFocusIn registers fn to run when the active view receives focus.
func (vs *ViewSpace) OnFocusIn(fn func(*ViewSpace)) *signal.Subscription {
	return vs.focusIn.Connect(fn)
}

// OnActiveViewChanged registers fn to run when the active view changes.
// fn receives nil when the space became empty.
func (vs *ViewSpace) OnActiveViewChanged(fn func(port.View)) *signal.Subscription {
	return vs.activeViewChanged.Connect(fn)
}

// OnStatusChanged registers fn to run after the decoration is refreshed.
func (vs *ViewSpace) OnStatusChanged(fn func(status.Status)) *signal.Subscription {
	return vs.statusChanged.Connect(fn)
}

// Bindings returns the number of live subscriptions on the active view.
func (vs *ViewSpace) Bindings() int {
	return vs.bindings.Len()
}

func (vs *ViewSpace) connect(view port.View) {
	vs.bindings.Add(
		view.OnCursorPositionChanged(vs.updateStatus),
		view.OnModificationChanged(vs.updateStatus),
		view.OnFocusIn(func() { vs.focusIn.Emit(vs) }),
		view.Document().OnURLChanged(vs.updateStatus),
	)
}

func (vs *ViewSpace) disconnect() {
	vs.bindings.Cancel()
}

func (vs *ViewSpace) updateStatus() {
	vs.status = status.FromView(vs.ActiveView(), vs.status.Enabled)
	vs.statusChanged.Emit(vs.status)
}
