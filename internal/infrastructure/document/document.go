// Package document provides in-memory documents and views that satisfy the
// host ports of the view space manager. Documents are loaded from disk or
// created empty; editing beyond cursor movement and the modified flag is out
// of scope.
package document

import (
	"strings"
	"unicode/utf8"

	"github.com/bnema/viewspace/internal/application/port"
	"github.com/bnema/viewspace/pkg/signal"
)

// Document is a named text buffer.
type Document struct {
	name     string
	url      string
	lines    []string
	modified bool

	urlChanged          signal.Signal[struct{}]
	modificationChanged signal.Signal[struct{}]
}

var _ port.Document = (*Document)(nil)

// New creates a document holding content.
func New(name, url, content string) *Document {
	content = strings.TrimSuffix(content, "\n")
	return &Document{
		name:  name,
		url:   url,
		lines: strings.Split(content, "\n"),
	}
}

// NewScratch creates an empty, unsaved document.
func NewScratch(name string) *Document {
	return New(name, "", "")
}

func (d *Document) CreateView() port.View {
	return &View{doc: d}
}

func (d *Document) DocumentName() string {
	return d.name
}

func (d *Document) IsModified() bool {
	return d.modified
}

func (d *Document) URL() string {
	return d.url
}

func (d *Document) OnURLChanged(fn func()) *signal.Subscription {
	return d.urlChanged.ConnectFunc(fn)
}

// Lines returns the document text split into lines.
func (d *Document) Lines() []string {
	return d.lines
}

// SetModified updates the modified flag and notifies views.
func (d *Document) SetModified(modified bool) {
	if d.modified == modified {
		return
	}
	d.modified = modified
	d.modificationChanged.Emit(struct{}{})
}

// SetURL relocates the document; the name follows the last path element.
func (d *Document) SetURL(url, name string) {
	if d.url == url && d.name == name {
		return
	}
	d.url = url
	d.name = name
	d.urlChanged.Emit(struct{}{})
}

// View is a cursor over a Document.
type View struct {
	doc    *Document
	line   int
	column int
	closed bool

	cursorChanged signal.Signal[struct{}]
	focusIn       signal.Signal[struct{}]
}

var _ port.View = (*View)(nil)

func (v *View) Document() port.Document {
	return v.doc
}

// Doc returns the concrete document.
func (v *View) Doc() *Document {
	return v.doc
}

func (v *View) CursorPosition() (int, int) {
	return v.line, v.column
}

// SetCursor moves the cursor, clamped to the document text. Columns count
// characters, not bytes.
func (v *View) SetCursor(line, column int) {
	lines := v.doc.lines
	line = max(0, min(line, len(lines)-1))
	column = max(0, min(column, utf8.RuneCountInString(lines[line])))
	if line == v.line && column == v.column {
		return
	}
	v.line = line
	v.column = column
	v.cursorChanged.Emit(struct{}{})
}

// MoveCursor moves the cursor by a relative offset.
func (v *View) MoveCursor(dLine, dColumn int) {
	v.SetCursor(v.line+dLine, v.column+dColumn)
}

func (v *View) SetFocus() {
	if v.closed {
		return
	}
	v.focusIn.Emit(struct{}{})
}

func (v *View) Close() {
	v.closed = true
}

// Closed reports whether Close was called.
func (v *View) Closed() bool {
	return v.closed
}

func (v *View) OnCursorPositionChanged(fn func()) *signal.Subscription {
	return v.cursorChanged.ConnectFunc(fn)
}

func (v *View) OnModificationChanged(fn func()) *signal.Subscription {
	return v.doc.modificationChanged.ConnectFunc(fn)
}

func (v *View) OnFocusIn(fn func()) *signal.Subscription {
	return v.focusIn.ConnectFunc(fn)
}
