package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ramanasai/wellness/internal/journal"
	"github.com/ramanasai/wellness/internal/utils"
)

var (
	trendDays    int
	trendFormat  string
	trendNoColor bool
)

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Show mood over the most recent check-ins",
	Long: `Examples:
	wellness trends                  # last 30 check-ins
	wellness trends --days 7         # the dashboard sparkline window
	wellness trends --format csv     # for spreadsheets`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if trendDays <= 0 {
			return fmt.Errorf("--days must be positive, got %d", trendDays)
		}
		r, err := newRenderer(trendFormat, trendNoColor)
		if err != nil {
			return err
		}
		records, err := loadRecords()
		if err != nil {
			return err
		}
		out, err := r.RenderSeries(journal.ChartSeries(records, trendDays, cfg.Location()))
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		if t := journal.TrendDirection(records); t != journal.TrendUnavailable && r.Format() == utils.FormatDefault {
			fmt.Fprintln(cmd.OutOrStdout(), t.Message())
		}
		return nil
	},
}

func init() {
	trendsCmd.Flags().IntVarP(&trendDays, "days", "d", journal.TrendPoints, "Number of check-ins to chart")
	trendsCmd.Flags().StringVarP(&trendFormat, "format", "f", "default", "Output format: default|table|json|csv")
	trendsCmd.Flags().BoolVar(&trendNoColor, "no-color", false, "Disable colored output")
}
