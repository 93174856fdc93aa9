// Package command names the pane commands and their default keys. The names
// double as configuration keys.
package command

// ID names a pane command.
type ID string

// Pane commands.
const (
	SplitHorizontal ID = "split-horizontal"
	SplitVertical   ID = "split-vertical"
	ClosePane       ID = "close-pane"
	NextPane        ID = "next-pane"
	PreviousPane    ID = "previous-pane"
	GrowPane        ID = "grow-pane"
	ShrinkPane      ID = "shrink-pane"
	EqualizePanes   ID = "equalize-panes"
)

// Labels are the user-facing command names.
var Labels = map[ID]string{
	SplitHorizontal: "Split Horizontal",
	SplitVertical:   "Split Vertical",
	ClosePane:       "Close Pane",
	NextPane:        "Next Pane",
	PreviousPane:    "Previous Pane",
	GrowPane:        "Grow Pane",
	ShrinkPane:      "Shrink Pane",
	EqualizePanes:   "Equalize Panes",
}

// DefaultKeys are the bindings used when configuration leaves a command unset.
var DefaultKeys = map[ID][]string{
	SplitHorizontal: {"alt+s"},
	SplitVertical:   {"alt+v"},
	ClosePane:       {"alt+w"},
	NextPane:        {"alt+n", "alt+right"},
	PreviousPane:    {"alt+p", "alt+left"},
	GrowPane:        {"alt+="},
	ShrinkPane:      {"alt+-"},
	EqualizePanes:   {"alt+0"},
}

// Order lists the commands in menu order.
var Order = []ID{
	SplitHorizontal,
	SplitVertical,
	ClosePane,
	NextPane,
	PreviousPane,
	GrowPane,
	ShrinkPane,
	EqualizePanes,
}

// Known reports whether name is a pane command.
func Known(name string) bool {
	_, ok := Labels[ID(name)]
	return ok
}
