package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bnema/viewspace/internal/application/port"
	"github.com/bnema/viewspace/internal/cli/replay"
	"github.com/bnema/viewspace/internal/cli/styles"
	"github.com/bnema/viewspace/internal/domain/entity"
	"github.com/bnema/viewspace/internal/infrastructure/document"
	"github.com/bnema/viewspace/internal/ui/viewmanager"
)

var (
	replayTrace     bool
	replayOpenFiles bool
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Inspect pane layouts",
}

var layoutReplayCmd = &cobra.Command{
	Use:   "replay [script]",
	Short: "Replay a pane script and print the resulting layout",
	Long: `Run a script of pane operations against a fresh editor layout and
print the split tree. The script is read from stdin when omitted or "-".

Operations, one per line ('#' starts a comment):
  open NAME        show document NAME in the active pane
  find NAME        show NAME, jumping to a pane that already shows it
  closedoc NAME    close document NAME everywhere
  split h|v        split the active pane (h: top/bottom, v: side by side)
  close            close the active pane
  next | prev      focus the next or previous pane
  grow | shrink    resize the active pane
  equalize         give the active pane's siblings equal sizes

Examples:
  viewspace layout replay panes.txt
  printf 'open a\nsplit v\nsplit h\n' | viewspace layout replay --trace`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLayoutReplay,
}

func init() {
	rootCmd.AddCommand(layoutCmd)
	layoutCmd.AddCommand(layoutReplayCmd)
	layoutReplayCmd.Flags().BoolVarP(&replayTrace, "trace", "t", false, "print the layout after every step")
	layoutReplayCmd.Flags().BoolVar(&replayOpenFiles, "open-files", false, "load document names as files instead of empty documents")
}

func runLayoutReplay(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	in := cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		in = f
	}

	steps, err := replay.Parse(in)
	if err != nil {
		return err
	}

	n := 0
	manager := viewmanager.New(app.Ctx(),
		viewmanager.WithIDGenerator(func() string {
			n++
			return "vs-" + strconv.Itoa(n)
		}),
		viewmanager.WithMinShare(app.Config.Layout.MinShare()),
		viewmanager.WithResizeStep(app.Config.Layout.ResizeStep()),
	)
	defer manager.Close()

	out := cmd.OutOrStdout()
	renderer := styles.NewLayoutRenderer(app.Theme)

	runner := replay.NewRunner(manager, documentSource(replayOpenFiles), app.Config.Layout.ResizeStep())
	if replayTrace {
		runner.AfterStep = func(s replay.Step) {
			fmt.Fprintln(out, app.Theme.Subtle.Render(fmt.Sprintf("── %d: %s", s.Line, s)))
			printLayout(out, renderer, manager)
		}
	}

	if err := runner.Run(app.Ctx(), steps); err != nil {
		return err
	}

	if !replayTrace {
		printLayout(out, renderer, manager)
	}
	fmt.Fprintf(out, "%d view spaces, active %s\n", manager.Count(), manager.ActiveViewSpace().ID())
	return nil
}

func documentSource(fromFiles bool) replay.DocumentSource {
	if fromFiles {
		return func(name string) (port.Document, error) {
			return document.Open(name)
		}
	}
	return func(name string) (port.Document, error) {
		return document.NewScratch(name), nil
	}
}

func printLayout(out io.Writer, r *styles.LayoutRenderer, m *viewmanager.Manager) {
	label := func(id entity.ViewSpaceID) string {
		vs, ok := m.ViewSpace(id)
		if !ok || vs.Document() == nil {
			return "(empty)"
		}
		return vs.Document().DocumentName()
	}
	fmt.Fprintln(out, r.Render(m.Root(), m.ActiveViewSpace().ID(), label))
}
