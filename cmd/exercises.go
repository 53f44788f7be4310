package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ramanasai/wellness/internal/app"
	"github.com/ramanasai/wellness/internal/journal"
	"github.com/ramanasai/wellness/internal/ui"
)

var exercisesStyle string

var exercisesCmd = &cobra.Command{
	Use:   "exercises [id]",
	Short: "List guided exercises or show the steps of one",
	Args:  cobra.MaximumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		ids := make([]string, 0, len(journal.Exercises))
		for _, ex := range journal.Exercises {
			ids = append(ids, ex.ID)
		}
		return ids, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if len(args) == 0 {
			for _, ex := range journal.Exercises {
				fmt.Fprintf(out, "%-14s %-16s %-10s %s\n", ex.ID, ex.Title, ex.Duration, ex.Category)
			}
			return nil
		}

		ex, ok := journal.ExerciseByID(args[0])
		if !ok {
			return fmt.Errorf("%w: %q", app.ErrUnknownExercise, args[0])
		}
		rendered, err := ui.RenderMarkdown(ui.ExerciseMarkdown(ex), exercisesStyle, 80)
		if err != nil {
			return err
		}
		fmt.Fprint(out, rendered)
		return nil
	},
}

func init() {
	exercisesCmd.Flags().StringVar(&exercisesStyle, "style", "dark", "Markdown style: dark|light|notty")
}
