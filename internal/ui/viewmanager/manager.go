// Package viewmanager owns the split tree of view spaces, tracks which space
// is active, and routes documents to spaces.
package viewmanager

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bnema/viewspace/internal/application/port"
	"github.com/bnema/viewspace/internal/application/usecase"
	"github.com/bnema/viewspace/internal/domain/entity"
	"github.com/bnema/viewspace/internal/logging"
	"github.com/bnema/viewspace/internal/ui/action"
	"github.com/bnema/viewspace/internal/ui/viewspace"
	"github.com/bnema/viewspace/pkg/signal"
)

const (
	defaultMinShare   = 0.1
	defaultResizeStep = 0.05
)

// Option configures a Manager.
type Option func(*Manager)

// WithIDGenerator overrides the generator used for view space and splitter IDs.
func WithIDGenerator(gen func() string) Option {
	return func(m *Manager) {
		if gen != nil {
			m.newID = gen
		}
	}
}

// WithMinShare sets the smallest share a pane can be resized down to.
func WithMinShare(share float64) Option {
	return func(m *Manager) {
		if share > 0 && share < 0.5 {
			m.minShare = share
		}
	}
}

// WithResizeStep sets the share moved by the grow and shrink commands.
func WithResizeStep(step float64) Option {
	return func(m *Manager) {
		if step > 0 && step < 1 {
			m.resizeStep = step
		}
	}
}

// WithKeyBindings overrides command keys, keyed by command ID.
func WithKeyBindings(bindings map[string][]string) Option {
	return func(m *Manager) {
		m.keyBindings = bindings
	}
}

// Manager coordinates a tree of view spaces.
//
// The recency list holds every live space, least recently active first; its
// last entry is the active space. The tree root is always a splitter, with a
// single child only when one space is left.
type Manager struct {
	ctx    context.Context
	logger *zerolog.Logger

	newID      func() string
	uc         *usecase.ManageViewSpacesUseCase
	minShare   float64
	resizeStep float64

	root    *entity.LayoutNode
	spaces  map[entity.ViewSpaceID]*viewspace.ViewSpace
	subs    map[entity.ViewSpaceID]*signal.Group
	recency []*viewspace.ViewSpace

	actions     *action.Set
	keyBindings map[string][]string

	viewChanged   signal.Signal[port.View]
	layoutChanged signal.Signal[struct{}]
	lastView      port.View
}

// New creates a manager with one empty view space.
func New(ctx context.Context, opts ...Option) *Manager {
	ctx = logging.WithComponent(ctx, "viewmanager")
	m := &Manager{
		ctx:        ctx,
		logger:     logging.FromContext(ctx),
		newID:      uuid.NewString,
		minShare:   defaultMinShare,
		resizeStep: defaultResizeStep,
		spaces:     make(map[entity.ViewSpaceID]*viewspace.ViewSpace),
		subs:       make(map[entity.ViewSpaceID]*signal.Group),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.uc = usecase.NewManageViewSpacesUseCase(m.newID)

	first := m.createViewSpace()
	m.root = entity.NewSplitter(m.newID(), entity.OrientationHorizontal)
	m.root.AppendChild(entity.NewLeaf(first.ID()), 1.0)
	m.recency = []*viewspace.ViewSpace{first}
	first.SetStatusEnabled(true)

	m.registerActions()
	m.updateActions()

	m.logger.Debug().Str("view_space", string(first.ID())).Msg("view manager created")
	return m
}

// Root returns the split tree.
func (m *Manager) Root() *entity.LayoutNode {
	return m.root
}

// Count returns the number of view spaces.
func (m *Manager) Count() int {
	return len(m.recency)
}

// ViewSpaces returns every view space, least recently active first.
func (m *Manager) ViewSpaces() []*viewspace.ViewSpace {
	out := make([]*viewspace.ViewSpace, len(m.recency))
	copy(out, m.recency)
	return out
}

// ViewSpace returns the space with the given ID.
func (m *Manager) ViewSpace(id entity.ViewSpaceID) (*viewspace.ViewSpace, bool) {
	vs, ok := m.spaces[id]
	return vs, ok
}

// ViewSpacesInLayoutOrder returns the spaces in tree order.
func (m *Manager) ViewSpacesInLayoutOrder() []*viewspace.ViewSpace {
	leaves := m.root.Leaves()
	out := make([]*viewspace.ViewSpace, 0, len(leaves))
	for _, leaf := range leaves {
		if vs, ok := m.spaces[leaf.ViewSpace]; ok {
			out = append(out, vs)
		}
	}
	return out
}

// ActiveViewSpace returns the active space. It is never nil.
func (m *Manager) ActiveViewSpace() *viewspace.ViewSpace {
	return m.recency[len(m.recency)-1]
}

// ActiveView returns the active space's active view, or nil when it is empty.
func (m *Manager) ActiveView() port.View {
	return m.ActiveViewSpace().ActiveView()
}

// CanCloseViewSpace reports whether more than one space exists.
func (m *Manager) CanCloseViewSpace() bool {
	return len(m.recency) > 1
}

// Actions returns the pane commands bound to this manager.
func (m *Manager) Actions() *action.Set {
	return m.actions
}

// OnViewChanged registers fn to run when the active view changes.
func (m *Manager) OnViewChanged(fn func(port.View)) *signal.Subscription {
	return m.viewChanged.Connect(fn)
}

// OnLayoutChanged registers fn to run after the tree shape or sizes change.
func (m *Manager) OnLayoutChanged(fn func()) *signal.Subscription {
	return m.layoutChanged.ConnectFunc(fn)
}

// SetActiveViewSpace makes space the active one. Unknown spaces and the
// already active space are ignored.
func (m *Manager) SetActiveViewSpace(space *viewspace.ViewSpace) {
	if !m.owns(space) {
		return
	}
	prev := m.ActiveViewSpace()
	if prev == space {
		return
	}

	m.removeFromRecency(space)
	m.recency = append(m.recency, space)
	prev.SetStatusEnabled(false)
	space.SetStatusEnabled(true)

	m.logger.Debug().
		Str("from", string(prev.ID())).
		Str("to", string(space.ID())).
		Msg("active view space changed")

	m.emitViewChanged(space.ActiveView())
}

// SplitViewSpace splits space in the given orientation and returns the new
// space, which shows the same document. When space was active the new space
// becomes active.
func (m *Manager) SplitViewSpace(space *viewspace.ViewSpace, orientation entity.Orientation) *viewspace.ViewSpace {
	if !m.owns(space) {
		return nil
	}
	leaf := m.root.FindLeaf(space.ID())
	if leaf == nil {
		return nil
	}
	wasActive := space == m.ActiveViewSpace()

	created := m.createViewSpace()
	_, err := m.uc.Split(m.ctx, usecase.SplitInput{
		Target:       leaf,
		NewViewSpace: created.ID(),
		Orientation:  orientation,
	})
	if err != nil {
		m.logger.Error().Err(err).Str("view_space", string(space.ID())).Msg("split failed")
		m.destroyViewSpace(created)
		return nil
	}

	if doc := space.Document(); doc != nil {
		created.ShowDocument(doc)
	}

	// Just below the active space, so closing the active one returns here.
	idx := len(m.recency) - 1
	m.recency = append(m.recency, nil)
	copy(m.recency[idx+1:], m.recency[idx:])
	m.recency[idx] = created

	if wasActive {
		m.focus(created)
	}

	m.updateActions()
	m.layoutChanged.Emit(struct{}{})
	return created
}

// CloseViewSpace removes space from the tree. The last space is never closed.
// When space was active, the previously active space takes over.
func (m *Manager) CloseViewSpace(space *viewspace.ViewSpace) {
	if !m.owns(space) || !m.CanCloseViewSpace() {
		return
	}
	if space == m.ActiveViewSpace() {
		m.focus(m.recency[len(m.recency)-2])
	}

	leaf := m.root.FindLeaf(space.ID())
	if leaf != nil {
		if _, err := m.uc.Close(m.ctx, leaf); err != nil {
			m.logger.Error().Err(err).Str("view_space", string(space.ID())).Msg("close failed")
			return
		}
	}
	m.destroyViewSpace(space)

	m.updateActions()
	m.layoutChanged.Emit(struct{}{})
}

// FocusNext activates the space after the active one in layout order, wrapping.
func (m *Manager) FocusNext() {
	m.focusRelative(1)
}

// FocusPrevious activates the space before the active one in layout order, wrapping.
func (m *Manager) FocusPrevious() {
	m.focusRelative(-1)
}

// ResizeActive grows the active space's share by delta, or shrinks it when
// delta is negative.
func (m *Manager) ResizeActive(delta float64) {
	leaf := m.root.FindLeaf(m.ActiveViewSpace().ID())
	if leaf == nil {
		return
	}
	if err := m.uc.Resize(m.ctx, leaf, delta, m.minShare); err != nil {
		m.logger.Debug().Err(err).Msg("resize skipped")
		return
	}
	m.layoutChanged.Emit(struct{}{})
}

// EqualizeActive evens out the shares of the active space and its siblings.
func (m *Manager) EqualizeActive() {
	leaf := m.root.FindLeaf(m.ActiveViewSpace().ID())
	if leaf == nil || leaf.Parent == nil {
		return
	}
	if err := m.uc.Equalize(m.ctx, leaf.Parent); err != nil {
		m.logger.Debug().Err(err).Msg("equalize skipped")
		return
	}
	m.layoutChanged.Emit(struct{}{})
}

// Close clears every view space and drops all subscriptions. The manager
// must not be used afterwards.
func (m *Manager) Close() {
	for _, vs := range m.ViewSpaces() {
		vs.Clear()
		if g := m.subs[vs.ID()]; g != nil {
			g.Cancel()
		}
	}
	m.lastView = nil
	m.logger.Debug().Int("view_spaces", len(m.recency)).Msg("view manager closed")
}

func (m *Manager) createViewSpace() *viewspace.ViewSpace {
	vs := viewspace.New(m.ctx, entity.ViewSpaceID(m.newID()))
	group := &signal.Group{}
	group.Add(
		vs.OnFocusIn(m.SetActiveViewSpace),
		vs.OnActiveViewChanged(func(view port.View) {
			if vs == m.ActiveViewSpace() {
				m.emitViewChanged(view)
			}
		}),
	)
	m.spaces[vs.ID()] = vs
	m.subs[vs.ID()] = group
	return vs
}

func (m *Manager) destroyViewSpace(vs *viewspace.ViewSpace) {
	if g := m.subs[vs.ID()]; g != nil {
		g.Cancel()
	}
	vs.Clear()
	delete(m.subs, vs.ID())
	delete(m.spaces, vs.ID())
	m.removeFromRecency(vs)
}

func (m *Manager) owns(vs *viewspace.ViewSpace) bool {
	if vs == nil {
		return false
	}
	return m.spaces[vs.ID()] == vs
}

func (m *Manager) removeFromRecency(vs *viewspace.ViewSpace) {
	for i, s := range m.recency {
		if s == vs {
			m.recency = append(m.recency[:i], m.recency[i+1:]...)
			return
		}
	}
}

// focus activates space and gives keyboard focus to its active view.
func (m *Manager) focus(space *viewspace.ViewSpace) {
	m.SetActiveViewSpace(space)
	if view := space.ActiveView(); view != nil {
		view.SetFocus()
	}
}

func (m *Manager) focusRelative(step int) {
	ordered := m.ViewSpacesInLayoutOrder()
	if len(ordered) < 2 {
		return
	}
	active := m.ActiveViewSpace()
	idx := 0
	for i, vs := range ordered {
		if vs == active {
			idx = i
			break
		}
	}
	next := (idx + step + len(ordered)) % len(ordered)
	m.focus(ordered[next])
}

func (m *Manager) emitViewChanged(view port.View) {
	if view == m.lastView {
		return
	}
	m.lastView = view
	if view == nil {
		return
	}
	m.viewChanged.Emit(view)
}
