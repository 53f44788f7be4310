package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/ramanasai/wellness/internal/journal"
	"github.com/ramanasai/wellness/internal/utils"
)

var (
	historySince   string
	historyPreset  string
	historyLimit   int
	historyPage    int
	historyFormat  string
	historyNoColor bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past check-ins, newest first",
	Long: `Examples:
	wellness history                              # everything
	wellness history --since "2 weeks ago"        # since a relative date
	wellness history --preset month               # this calendar month
	wellness history --format table --limit 50    # table format
	wellness history --page 2                     # older check-ins`,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRenderer(historyFormat, historyNoColor)
		if err != nil {
			return err
		}
		now := time.Now().In(cfg.Location())

		var start, end time.Time
		var label string
		switch {
		case historyPreset != "":
			start, end, err = utils.GetDateRange(historyPreset, now)
			if err != nil {
				return fmt.Errorf("invalid preset %q: %w", historyPreset, err)
			}
			label = historyPreset
		case historySince != "":
			start, err = utils.ParseFlexibleDate(historySince, now)
			if err != nil {
				return fmt.Errorf("invalid --since date %q: %w", historySince, err)
			}
			label = journal.DateOf(start)
		}

		if historyLimit <= 0 || historyLimit > 1000 {
			historyLimit = 20
		}

		records, err := loadRecords()
		if err != nil {
			return err
		}
		if !start.IsZero() {
			records = utils.FilterRange(records, start, end)
		}
		sort.SliceStable(records, func(i, j int) bool { return records[i].Date > records[j].Date })

		p := utils.NewPagination(len(records), historyLimit, historyPage)
		out, err := r.RenderRecords(&utils.RecordList{
			Records:    utils.Paginate(records, p),
			Total:      p.Total,
			Page:       p.Current,
			PerPage:    p.PerPage,
			TotalPages: p.TotalPages,
			Since:      label,
		})
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	historyCmd.Flags().StringVarP(&historySince, "since", "s", "", "Show check-ins since (today|yesterday|7d|2 weeks ago|YYYY-MM-DD)")
	historyCmd.Flags().StringVar(&historyPreset, "preset", "", "Date preset: today|yesterday|week|month|year|last7days|last30days|last90days")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Check-ins per page")
	historyCmd.Flags().IntVarP(&historyPage, "page", "p", 1, "Page number")
	historyCmd.Flags().StringVarP(&historyFormat, "format", "f", "default", "Output format: default|table|json|csv")
	historyCmd.Flags().BoolVar(&historyNoColor, "no-color", false, "Disable colored output")
	historyCmd.MarkFlagsMutuallyExclusive("since", "preset")
}
