// Package signal provides typed, single-threaded signals with cancellable
// subscriptions. A Subscription is the scoped handle for one connection:
// cancelling it detaches the handler, and a handler cancelled while an
// emission is in progress is not invoked for the rest of that emission.
//
// Signals are not safe for concurrent use. They are meant to be connected,
// emitted and cancelled from the same event loop.
package signal

type handler[T any] struct {
	fn      func(T)
	removed bool
}

// Signal is a list of handlers invoked in connection order on Emit.
// The zero value is ready to use.
type Signal[T any] struct {
	handlers []*handler[T]
}

// Connect registers fn and returns the subscription that detaches it.
func (s *Signal[T]) Connect(fn func(T)) *Subscription {
	h := &handler[T]{fn: fn}
	s.handlers = append(s.handlers, h)
	return &Subscription{cancel: func() { s.remove(h) }}
}

// ConnectFunc registers a handler that ignores the emitted value.
func (s *Signal[T]) ConnectFunc(fn func()) *Subscription {
	return s.Connect(func(T) { fn() })
}

// Emit invokes every connected handler with v.
func (s *Signal[T]) Emit(v T) {
	snapshot := make([]*handler[T], len(s.handlers))
	copy(snapshot, s.handlers)
	for _, h := range snapshot {
		if h.removed {
			continue
		}
		h.fn(v)
	}
}

// Len returns the number of connected handlers.
func (s *Signal[T]) Len() int {
	return len(s.handlers)
}

func (s *Signal[T]) remove(h *handler[T]) {
	h.removed = true
	for i, cur := range s.handlers {
		if cur == h {
			s.handlers = append(s.handlers[:i], s.handlers[i+1:]...)
			return
		}
	}
}

// Subscription detaches one handler from its signal.
type Subscription struct {
	cancel    func()
	cancelled bool
}

// Cancel detaches the handler. Calling Cancel more than once, or on a nil
// subscription, is a no-op.
func (s *Subscription) Cancel() {
	if s == nil || s.cancelled {
		return
	}
	s.cancelled = true
	if s.cancel != nil {
		s.cancel()
	}
}

// Active reports whether the handler is still connected.
func (s *Subscription) Active() bool {
	return s != nil && !s.cancelled
}

// Group holds subscriptions that share a lifetime.
type Group struct {
	subs []*Subscription
}

// Add appends subscriptions to the group. Nil entries are ignored.
func (g *Group) Add(subs ...*Subscription) {
	for _, sub := range subs {
		if sub != nil {
			g.subs = append(g.subs, sub)
		}
	}
}

// Cancel cancels every subscription in the group and empties it.
func (g *Group) Cancel() {
	for _, sub := range g.subs {
		sub.Cancel()
	}
	g.subs = nil
}

// Len returns the number of subscriptions held.
func (g *Group) Len() int {
	return len(g.subs)
}
