package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ramanasai/wellness/internal/journal"
	"github.com/ramanasai/wellness/internal/notify"
	"github.com/ramanasai/wellness/internal/schedule"
)

var remindOnce bool

// remindCmd runs the daily reminder in the foreground until interrupted.
var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Send a desktop reminder at the configured time when you have not checked in",
	Long: `Runs until interrupted (Ctrl+C / SIGTERM). Configure it under "reminder"
in the config file:

	reminder:
	  time: "20:00"
	  workdays: [Mon, Tue, Wed, Thu, Fri]
	  holidays: ["2026-12-25"]`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if remindOnce {
			return remindIfPending(cmd)
		}
		next := schedule.NextAt(time.Now(), cfg)
		fmt.Fprintf(cmd.OutOrStdout(), "Next reminder: %s\n", next.Format("Mon Jan 2 15:04"))
		logger.Info("reminder loop started", zap.Time("next", next))

		schedule.RunConfigured(cmd.Context(), cfg, func() {
			if err := remindIfPending(cmd); err != nil {
				logger.Error("reminder failed", zap.Error(err))
			}
		})
		return nil
	},
}

// remindIfPending alerts when today has no check-in. Records are re-read
// each time since the TUI may have saved in the meantime.
func remindIfPending(cmd *cobra.Command) error {
	records, err := loadRecords()
	if err != nil {
		return err
	}
	now := time.Now().In(cfg.Location())
	sum := journal.Summarize(records, now)
	if sum.Today != nil {
		logger.Debug("already checked in, skipping reminder")
		return nil
	}
	title, msg := notify.FormatDailyPrompt(sum.Streak)
	fmt.Fprintln(cmd.OutOrStdout(), msg)
	return notify.Alert(title, msg)
}

func init() {
	remindCmd.Flags().BoolVar(&remindOnce, "once", false, "Check once now instead of waiting for the schedule")
}
