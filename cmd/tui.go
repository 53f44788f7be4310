package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ramanasai/wellness/internal/notify"
	"github.com/ramanasai/wellness/internal/ui"
)

// tuiCmd launches the Bubble Tea TUI. It is also what the bare command runs.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive journal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd.Context())
	},
}

func runTUI(ctx context.Context) error {
	store, gw, err := openJournal()
	if err != nil {
		return err
	}
	defer store.Close()

	toasts := ui.NewToasts()
	var n notify.Notifier = toasts
	if cfg.Notifications.Desktop {
		n = notify.Fanout{toasts, notify.Desktop{}}
	}
	ctrl := newController(gw, n)
	if err := ctrl.Load(); err != nil {
		return err
	}

	theme := ui.ThemeNamed(cfg.Theme)
	m := ui.New(ctrl, ui.WithTheme(theme), ui.WithToasts(toasts), ui.WithLogger(logger))
	reminders := cfg.Reminder.Enabled && os.Getenv("WELLNESS_NO_REMINDER") != "1"
	logger.Info("starting tui", zap.String("theme", theme.Name), zap.Bool("reminders", reminders))
	return ui.Run(ctx, m, cfg, reminders)
}
