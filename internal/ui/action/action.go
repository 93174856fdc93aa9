// Package action holds the pane commands a view manager exposes to its host:
// a label, a key binding and an enabled flag per command.
package action

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/bnema/viewspace/internal/domain/command"
	"github.com/bnema/viewspace/pkg/signal"
)

// ID names a command. IDs double as configuration keys.
type ID = command.ID

// Pane commands.
const (
	SplitHorizontal = command.SplitHorizontal
	SplitVertical   = command.SplitVertical
	ClosePane       = command.ClosePane
	NextPane        = command.NextPane
	PreviousPane    = command.PreviousPane
	GrowPane        = command.GrowPane
	ShrinkPane      = command.ShrinkPane
	EqualizePanes   = command.EqualizePanes
)

// Labels, DefaultKeys and Order are shared with configuration.
var (
	Labels      = command.Labels
	DefaultKeys = command.DefaultKeys
	Order       = command.Order
)

// Command is a named, bindable operation.
type Command struct {
	id      ID
	binding key.Binding
	handler func()
}

// ID returns the command identifier.
func (c *Command) ID() ID {
	return c.id
}

// Label returns the user-facing name.
func (c *Command) Label() string {
	return c.binding.Help().Desc
}

// Keys returns the key strings that trigger the command.
func (c *Command) Keys() []string {
	return c.binding.Keys()
}

// Enabled reports whether the command can be triggered.
func (c *Command) Enabled() bool {
	return c.binding.Enabled()
}

// Binding returns the command's key binding.
func (c *Command) Binding() key.Binding {
	return c.binding
}

// StateChange is emitted when a command is enabled or disabled.
type StateChange struct {
	ID      ID
	Enabled bool
}

// Set is an ordered collection of commands owned by one view manager.
type Set struct {
	commands map[ID]*Command
	order    []ID
	changed  signal.Signal[StateChange]
}

// NewSet creates an empty command set.
func NewSet() *Set {
	return &Set{commands: make(map[ID]*Command)}
}

// Register adds a command. With no keys, DefaultKeys are used.
// Registering an existing ID replaces its handler and keys.
func (s *Set) Register(id ID, handler func(), keys ...string) *Command {
	if len(keys) == 0 {
		keys = DefaultKeys[id]
	}
	label := Labels[id]
	if label == "" {
		label = string(id)
	}

	cmd, ok := s.commands[id]
	if !ok {
		cmd = &Command{id: id}
		s.commands[id] = cmd
		s.order = append(s.order, id)
	}
	cmd.handler = handler
	cmd.binding = key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpKey(keys), label),
	)
	return cmd
}

// Get returns the command with the given ID.
func (s *Set) Get(id ID) (*Command, bool) {
	cmd, ok := s.commands[id]
	return cmd, ok
}

// Commands returns the commands in registration order.
func (s *Set) Commands() []*Command {
	out := make([]*Command, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.commands[id])
	}
	return out
}

// SetEnabled toggles a command and emits a StateChange when it changes.
func (s *Set) SetEnabled(id ID, enabled bool) {
	cmd, ok := s.commands[id]
	if !ok || cmd.binding.Enabled() == enabled {
		return
	}
	cmd.binding.SetEnabled(enabled)
	s.changed.Emit(StateChange{ID: id, Enabled: enabled})
}

// Rebind replaces the keys of a command.
func (s *Set) Rebind(id ID, keys ...string) error {
	cmd, ok := s.commands[id]
	if !ok {
		return fmt.Errorf("unknown command %q", id)
	}
	if len(keys) == 0 {
		return fmt.Errorf("command %q: no keys", id)
	}
	enabled := cmd.binding.Enabled()
	cmd.binding = key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpKey(keys), cmd.Label()),
	)
	cmd.binding.SetEnabled(enabled)
	return nil
}

// ApplyKeys rebinds every command named in bindings. Unknown names are
// returned so callers can report them.
func (s *Set) ApplyKeys(bindings map[string][]string) []string {
	var unknown []string
	for name, keys := range bindings {
		if err := s.Rebind(ID(name), keys...); err != nil {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// Trigger runs an enabled command. It reports whether the handler ran.
func (s *Set) Trigger(id ID) bool {
	cmd, ok := s.commands[id]
	if !ok || !cmd.binding.Enabled() || cmd.handler == nil {
		return false
	}
	cmd.handler()
	return true
}

// Match returns the enabled command bound to msg.
func (s *Set) Match(msg fmt.Stringer) (ID, bool) {
	for _, id := range s.order {
		if key.Matches(msg, s.commands[id].binding) {
			return id, true
		}
	}
	return "", false
}

// HandleKey triggers the command bound to msg, if any.
func (s *Set) HandleKey(msg fmt.Stringer) bool {
	id, ok := s.Match(msg)
	if !ok {
		return false
	}
	return s.Trigger(id)
}

// OnStateChanged registers fn to run when a command is enabled or disabled.
func (s *Set) OnStateChanged(fn func(StateChange)) *signal.Subscription {
	return s.changed.Connect(fn)
}

// ShortHelp implements help.KeyMap.
func (s *Set) ShortHelp() []key.Binding {
	var out []key.Binding
	for _, id := range []ID{SplitHorizontal, SplitVertical, ClosePane, NextPane} {
		if cmd, ok := s.commands[id]; ok {
			out = append(out, cmd.binding)
		}
	}
	return out
}

// FullHelp implements help.KeyMap.
func (s *Set) FullHelp() [][]key.Binding {
	bindings := make([]key.Binding, 0, len(s.order))
	for _, cmd := range s.Commands() {
		bindings = append(bindings, cmd.binding)
	}
	return [][]key.Binding{bindings}
}

func helpKey(keys []string) string {
	if len(keys) == 0 {
		return ""
	}
	return keys[0]
}
