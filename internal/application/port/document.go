package port

import "github.com/bnema/viewspace/pkg/signal"

// Document is an open document supplied by the host application.
// Identity is the interface value itself: two Documents are the same
// document iff they compare equal with ==.
type Document interface {
	// CreateView returns a fresh view over this document with its own cursor.
	CreateView() View
	DocumentName() string
	IsModified() bool
	URL() string
	// OnURLChanged fires after the document is saved under a new location.
	OnURLChanged(fn func()) *signal.Subscription
}

// View displays a single document inside one view space.
type View interface {
	Document() Document
	// CursorPosition returns the 0-based line and column of the cursor.
	CursorPosition() (line, column int)
	// SetFocus gives keyboard focus to the view. Hosts emit focus-in from here.
	SetFocus()
	// Close releases the view. The view is not used afterwards.
	Close()

	OnCursorPositionChanged(fn func()) *signal.Subscription
	OnModificationChanged(fn func()) *signal.Subscription
	OnFocusIn(fn func()) *signal.Subscription
}
