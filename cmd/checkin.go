package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ramanasai/wellness/internal/journal"
	"github.com/ramanasai/wellness/internal/notify"
)

var checkinMood int

var checkinCmd = &cobra.Command{
	Use:   "checkin [note]",
	Short: "Record today's mood with an optional note",
	Long: `Records (or replaces) today's check-in.

Examples:
	wellness checkin --mood 4
	wellness checkin -m 2 "long day, feeling anxious about exams"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, gw, err := openJournal()
		if err != nil {
			return err
		}
		defer store.Close()

		var n notify.Notifier = notify.Writer{W: cmd.OutOrStdout()}
		if cfg.Notifications.Desktop {
			n = notify.Fanout{n, notify.Desktop{}}
		}
		ctrl := newController(gw, n)
		if err := ctrl.Load(); err != nil {
			return err
		}
		if err := ctrl.SetSelectedMood(checkinMood); err != nil {
			return err
		}
		ctrl.SetNote(strings.Join(args, " "))

		rec, err := ctrl.HandleCheckIn()
		if err != nil {
			return err
		}
		mood, _ := journal.MoodFor(rec.Mood)
		line := fmt.Sprintf("%s  %s %s", rec.Date, mood.Glyph, mood.Label)
		if rec.Sentiment != "" {
			line += "  (" + string(rec.Sentiment) + ")"
		}
		fmt.Fprintln(cmd.OutOrStdout(), line)

		vm := ctrl.Snapshot()
		fmt.Fprintf(cmd.OutOrStdout(), "Streak: %d days\n", vm.Streak)
		if vm.Badge != nil {
			fmt.Fprintln(cmd.OutOrStdout(), vm.Badge.Icon+" "+vm.Badge.Text)
		}
		return nil
	},
}

func init() {
	checkinCmd.Flags().IntVarP(&checkinMood, "mood", "m", journal.DefaultMood, "Mood from 1 (very sad) to 5 (very happy)")
}
