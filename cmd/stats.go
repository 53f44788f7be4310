package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ramanasai/wellness/internal/journal"
	"github.com/ramanasai/wellness/internal/utils"
)

var (
	statsFormat  string
	statsNoColor bool
)

// statsCmd prints the dashboard numbers: streak, average, badge and trend.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show streak, average mood and insights",
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRenderer(statsFormat, statsNoColor)
		if err != nil {
			return err
		}
		records, err := loadRecords()
		if err != nil {
			return err
		}
		sum := journal.Summarize(records, time.Now().In(cfg.Location()))
		out, err := r.RenderStats(utils.StatsFromSummary(sum))
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func newRenderer(format string, noColor bool) (*utils.Renderer, error) {
	f, err := utils.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	rc := utils.DefaultRenderConfig()
	rc.Format = f
	rc.Color = !noColor
	return utils.NewRenderer(rc), nil
}

func init() {
	statsCmd.Flags().StringVarP(&statsFormat, "format", "f", "default", "Output format: default|table|json|csv")
	statsCmd.Flags().BoolVar(&statsNoColor, "no-color", false, "Disable colored output")
}
