// Package replay drives a view manager from a small line-based script.
//
//	# comment
//	open notes.txt
//	split v        # side by side
//	split h        # top and bottom
//	next
//	close
//	closedoc notes.txt
package replay

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/viewspace/internal/application/port"
	"github.com/bnema/viewspace/internal/domain/entity"
	"github.com/bnema/viewspace/internal/logging"
	"github.com/bnema/viewspace/internal/ui/viewspace"
)

// ErrUnknownCommand is returned for script lines that name no known operation.
var ErrUnknownCommand = errors.New("unknown command")

// ErrBadArgument is returned when an operation's argument is missing or invalid.
var ErrBadArgument = errors.New("bad argument")

// Op is a script operation.
type Op string

// Script operations.
const (
	OpSplit    Op = "split"
	OpClose    Op = "close"
	OpNext     Op = "next"
	OpPrev     Op = "prev"
	OpOpen     Op = "open"
	OpFind     Op = "find"
	OpCloseDoc Op = "closedoc"
	OpGrow     Op = "grow"
	OpShrink   Op = "shrink"
	OpEqualize Op = "equalize"
)

// Step is one parsed script line.
type Step struct {
	Line int
	Op   Op
	Arg  string
}

func (s Step) String() string {
	if s.Arg == "" {
		return string(s.Op)
	}
	return string(s.Op) + " " + s.Arg
}

//go:generate mockgen -source=replay.go -destination=mocks/mock_replay.go

// Workspace is the part of the view manager a script drives.
type Workspace interface {
	ActiveViewSpace() *viewspace.ViewSpace
	SplitViewSpace(space *viewspace.ViewSpace, orientation entity.Orientation) *viewspace.ViewSpace
	CloseViewSpace(space *viewspace.ViewSpace)
	FocusNext()
	FocusPrevious()
	SetCurrentDocument(doc port.Document, findOpenView bool)
	DocumentClosed(doc port.Document)
	ResizeActive(delta float64)
	EqualizeActive()
}

// DocumentSource resolves a script document name.
type DocumentSource func(name string) (port.Document, error)

// Parse reads a script. Blank lines and text after '#' are ignored.
func Parse(r io.Reader) ([]Step, error) {
	var steps []Step
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		step, err := parseStep(line, fields)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return steps, nil
}

func parseStep(line int, fields []string) (Step, error) {
	step := Step{Line: line, Op: Op(strings.ToLower(fields[0]))}
	args := fields[1:]

	switch step.Op {
	case OpSplit:
		if len(args) != 1 {
			return step, fmt.Errorf("line %d: %w: split takes h or v", line, ErrBadArgument)
		}
		switch strings.ToLower(args[0]) {
		case "h", "horizontal":
			step.Arg = "h"
		case "v", "vertical":
			step.Arg = "v"
		default:
			return step, fmt.Errorf("line %d: %w: split %q", line, ErrBadArgument, args[0])
		}
	case OpOpen, OpFind, OpCloseDoc:
		if len(args) != 1 {
			return step, fmt.Errorf("line %d: %w: %s takes a document name", line, ErrBadArgument, step.Op)
		}
		step.Arg = args[0]
	case OpClose, OpNext, OpPrev, OpGrow, OpShrink, OpEqualize:
		if len(args) != 0 {
			return step, fmt.Errorf("line %d: %w: %s takes no argument", line, ErrBadArgument, step.Op)
		}
	default:
		return step, fmt.Errorf("line %d: %w %q", line, ErrUnknownCommand, fields[0])
	}
	return step, nil
}

// Runner applies steps to a workspace.
type Runner struct {
	ws         Workspace
	source     DocumentSource
	docs       map[string]port.Document
	resizeStep float64

	// AfterStep, when set, runs after every applied step.
	AfterStep func(Step)
}

// NewRunner creates a runner. Documents are resolved once per name.
func NewRunner(ws Workspace, source DocumentSource, resizeStep float64) *Runner {
	return &Runner{
		ws:         ws,
		source:     source,
		docs:       make(map[string]port.Document),
		resizeStep: resizeStep,
	}
}

// Run applies steps in order, stopping at the first failure.
func (r *Runner) Run(ctx context.Context, steps []Step) error {
	log := logging.FromContext(ctx)

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.apply(step); err != nil {
			return fmt.Errorf("line %d (%s): %w", step.Line, step, err)
		}
		log.Debug().Int("line", step.Line).Str("step", step.String()).Msg("replay step applied")
		if r.AfterStep != nil {
			r.AfterStep(step)
		}
	}
	return nil
}

func (r *Runner) apply(step Step) error {
	switch step.Op {
	case OpSplit:
		orientation := entity.OrientationHorizontal
		if step.Arg == "h" {
			orientation = entity.OrientationVertical
		}
		r.ws.SplitViewSpace(r.ws.ActiveViewSpace(), orientation)
	case OpClose:
		r.ws.CloseViewSpace(r.ws.ActiveViewSpace())
	case OpNext:
		r.ws.FocusNext()
	case OpPrev:
		r.ws.FocusPrevious()
	case OpOpen, OpFind:
		doc, err := r.document(step.Arg)
		if err != nil {
			return err
		}
		r.ws.SetCurrentDocument(doc, step.Op == OpFind)
	case OpCloseDoc:
		doc, ok := r.docs[step.Arg]
		if !ok {
			return fmt.Errorf("%w: %q is not open", ErrBadArgument, step.Arg)
		}
		delete(r.docs, step.Arg)
		r.ws.DocumentClosed(doc)
	case OpGrow:
		r.ws.ResizeActive(r.resizeStep)
	case OpShrink:
		r.ws.ResizeActive(-r.resizeStep)
	case OpEqualize:
		r.ws.EqualizeActive()
	default:
		return fmt.Errorf("%w %q", ErrUnknownCommand, step.Op)
	}
	return nil
}

func (r *Runner) document(name string) (port.Document, error) {
	if doc, ok := r.docs[name]; ok {
		return doc, nil
	}
	doc, err := r.source(name)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", name, err)
	}
	r.docs[name] = doc
	return doc, nil
}
