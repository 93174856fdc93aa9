package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/viewspace/internal/application/port"
	"github.com/bnema/viewspace/internal/cli/model"
	"github.com/bnema/viewspace/internal/infrastructure/config"
	"github.com/bnema/viewspace/internal/infrastructure/document"
	"github.com/bnema/viewspace/internal/logging"
	"github.com/bnema/viewspace/internal/ui/mainloop"
	"github.com/bnema/viewspace/internal/ui/viewmanager"
)

const configSettleDelay = 150 * time.Millisecond

var editCmd = &cobra.Command{
	Use:   "edit [file...]",
	Short: "Open files in the split-pane editor",
	Long: `Open files in the split-pane editor. Without files an empty scratch
document is opened.

Examples:
  viewspace edit main.go README.md
  viewspace main.go               # same as 'edit'`,
	Args: cobra.ArbitraryArgs,
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	logFile, err := app.UseLogFile()
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()
	log := logging.FromContext(ctx)

	docs, err := openDocuments(ctx, args)
	if err != nil {
		return err
	}

	cfg := app.Config
	manager := viewmanager.New(ctx,
		viewmanager.WithMinShare(cfg.Layout.MinShare()),
		viewmanager.WithResizeStep(cfg.Layout.ResizeStep()),
		viewmanager.WithKeyBindings(cfg.Keybindings),
	)
	defer manager.Close()

	editor := model.NewEditorModel(ctx, app.Theme, manager, docs, cfg)
	p := tea.NewProgram(editor, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))

	// Editors often save in several writes; only the settled config reaches the model.
	reloads := mainloop.NewCoalescer(mainloop.AfterDelay(configSettleDelay))
	defer reloads.Stop()
	app.ConfigManager.OnConfigChange(func(c *config.Config) {
		reloads.Post("config", func() { p.Send(model.ConfigReloadedMsg{Config: c}) })
	})
	if err := app.ConfigManager.Watch(); err != nil {
		log.Warn().Err(err).Msg("config hot reload disabled")
	}

	log.Info().Int("documents", len(docs)).Str("log_file", logFile).Msg("editor started")
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run editor: %w", err)
	}
	log.Info().Msg("editor exited")
	return nil
}

func openDocuments(ctx context.Context, paths []string) ([]port.Document, error) {
	if len(paths) == 0 {
		return []port.Document{document.NewScratch("untitled")}, nil
	}
	loaded, err := document.Load(ctx, paths)
	if err != nil {
		return nil, err
	}
	docs := make([]port.Document, len(loaded))
	for i, d := range loaded {
		docs[i] = d
	}
	return docs, nil
}
