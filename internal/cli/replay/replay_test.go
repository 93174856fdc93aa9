package replay_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/viewspace/internal/application/port"
	"github.com/bnema/viewspace/internal/cli/replay"
	mock_replay "github.com/bnema/viewspace/internal/cli/replay/mocks"
	"github.com/bnema/viewspace/internal/domain/entity"
	"github.com/bnema/viewspace/internal/infrastructure/document"
	"github.com/bnema/viewspace/internal/ui/viewmanager"
	"github.com/bnema/viewspace/internal/ui/viewspace"
)

func scratchSource(name string) (port.Document, error) {
	return document.NewScratch(name), nil
}

func TestParse(t *testing.T) {
	script := `
# build a layout
open notes.txt
split v      # side by side
SPLIT horizontal
next
prev
find notes.txt
closedoc notes.txt
grow
shrink
equalize
close
`
	steps, err := replay.Parse(strings.NewReader(script))
	require.NoError(t, err)

	var got []string
	for _, s := range steps {
		got = append(got, s.String())
	}
	assert.Equal(t, []string{
		"open notes.txt",
		"split v",
		"split h",
		"next",
		"prev",
		"find notes.txt",
		"closedoc notes.txt",
		"grow",
		"shrink",
		"equalize",
		"close",
	}, got)
	assert.Equal(t, 3, steps[0].Line)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   error
	}{
		{name: "unknown command", script: "zoom", want: replay.ErrUnknownCommand},
		{name: "split without direction", script: "split", want: replay.ErrBadArgument},
		{name: "split bad direction", script: "split x", want: replay.ErrBadArgument},
		{name: "open without name", script: "open", want: replay.ErrBadArgument},
		{name: "close with argument", script: "close now", want: replay.ErrBadArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := replay.Parse(strings.NewReader("next\n" + tt.script))
			require.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "line 2")
		})
	}
}

func TestRunner_DrivesWorkspace(t *testing.T) {
	ctrl := gomock.NewController(t)
	ws := mock_replay.NewMockWorkspace(ctrl)
	active := viewspace.New(context.Background(), "active")
	created := viewspace.New(context.Background(), "created")

	var opened port.Document
	gomock.InOrder(
		ws.EXPECT().SetCurrentDocument(gomock.Any(), false).Do(func(doc port.Document, _ bool) {
			opened = doc
		}),
		ws.EXPECT().ActiveViewSpace().Return(active),
		ws.EXPECT().SplitViewSpace(active, entity.OrientationHorizontal).Return(created),
		ws.EXPECT().ActiveViewSpace().Return(created),
		ws.EXPECT().SplitViewSpace(created, entity.OrientationVertical).Return(nil),
		ws.EXPECT().FocusNext(),
		ws.EXPECT().FocusPrevious(),
		ws.EXPECT().ResizeActive(0.1),
		ws.EXPECT().ResizeActive(-0.1),
		ws.EXPECT().EqualizeActive(),
		ws.EXPECT().SetCurrentDocument(gomock.Any(), true),
		ws.EXPECT().DocumentClosed(gomock.Any()).Do(func(doc port.Document) {
			assert.Same(t, opened, doc)
		}),
		ws.EXPECT().ActiveViewSpace().Return(created),
		ws.EXPECT().CloseViewSpace(created),
	)

	steps, err := replay.Parse(strings.NewReader(
		"open a\nsplit v\nsplit h\nnext\nprev\ngrow\nshrink\nequalize\nfind a\nclosedoc a\nclose\n"))
	require.NoError(t, err)

	var applied []string
	runner := replay.NewRunner(ws, scratchSource, 0.1)
	runner.AfterStep = func(s replay.Step) { applied = append(applied, s.String()) }

	require.NoError(t, runner.Run(context.Background(), steps))
	assert.Len(t, applied, len(steps))
}

func TestRunner_CloseDocNotOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	ws := mock_replay.NewMockWorkspace(ctrl)

	steps, err := replay.Parse(strings.NewReader("closedoc missing"))
	require.NoError(t, err)

	err = replay.NewRunner(ws, scratchSource, 0.1).Run(context.Background(), steps)
	require.ErrorIs(t, err, replay.ErrBadArgument)
	assert.Contains(t, err.Error(), "line 1")
}

func TestRunner_SourceFailureStops(t *testing.T) {
	ctrl := gomock.NewController(t)
	ws := mock_replay.NewMockWorkspace(ctrl)
	boom := errors.New("boom")

	steps, err := replay.Parse(strings.NewReader("open a\nnext"))
	require.NoError(t, err)

	err = replay.NewRunner(ws, func(string) (port.Document, error) { return nil, boom }, 0.1).
		Run(context.Background(), steps)
	require.ErrorIs(t, err, boom)
}

func TestRunner_AgainstManager(t *testing.T) {
	m := viewmanager.New(context.Background())
	t.Cleanup(m.Close)

	steps, err := replay.Parse(strings.NewReader(`
open p0
split v
split h
close
`))
	require.NoError(t, err)
	require.NoError(t, replay.NewRunner(m, scratchSource, 0.05).Run(context.Background(), steps))

	root := m.Root()
	require.NoError(t, root.Validate())
	assert.Equal(t, 2, m.Count())
	assert.Equal(t, entity.OrientationHorizontal, root.Orientation)
	assert.Equal(t, []float64{0.5, 0.5}, root.Sizes)
	for _, vs := range m.ViewSpaces() {
		require.NotNil(t, vs.Document())
		assert.Equal(t, "p0", vs.Document().DocumentName())
	}
}
