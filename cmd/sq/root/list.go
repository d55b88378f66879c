package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"stepquest/internal/engine"
	"stepquest/internal/ui"
)

func newListCmd() *cobra.Command {
	var showDone bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List quests grouped by category",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			state := svc.Store().Snapshot()
			quests := state.Active
			if showDone {
				quests = state.Completed
			}
			if len(quests) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No quests. Run `sq new` to generate today's set."))
				return nil
			}

			for _, cat := range engine.AllCategories() {
				printed := false
				for _, q := range quests {
					if q.Category != cat {
						continue
					}
					if !printed {
						fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(ui.CategoryIcon(cat)+" "+ui.CategoryName(cat)))
						printed = true
					}
					mark := " "
					if q.Completed {
						mark = ui.IconDone
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n", mark, ui.DifficultyStars(q.Difficulty), q.Title, ui.Muted.Render(ui.FormatReward(q.Reward)))
					if q.Location != nil {
						fmt.Fprintf(cmd.OutOrStdout(), "   %s %s\n", ui.IconPin, ui.Muted.Render(q.Location.PlaceName))
					}
					fmt.Fprintf(cmd.OutOrStdout(), "   %s\n", ui.Muted.Render(q.ID))
				}
				if printed {
					fmt.Fprintln(cmd.OutOrStdout(), "")
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showDone, "done", false, "Show completed quests instead of active ones")

	return cmd
}
