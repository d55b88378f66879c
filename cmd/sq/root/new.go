package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"stepquest/internal/engine"
	"stepquest/internal/ui"
)

func newNewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Generate today's quests",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cfg, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			var origin *engine.Location
			if cfg.Home.IsSet() {
				origin = &engine.Location{
					Latitude:  cfg.Home.Latitude,
					Longitude: cfg.Home.Longitude,
					Address:   cfg.Home.Address,
				}
			}

			quests, err := svc.NewDay(ctx, origin)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSparkle, fmt.Sprintf("오늘의 퀘스트 %d개", len(quests))))
			for _, q := range quests {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
					ui.CategoryIcon(q.Category),
					ui.DifficultyStars(q.Difficulty),
					q.Title,
					ui.Muted.Render(ui.FormatReward(q.Reward)))
				fmt.Fprintf(cmd.OutOrStdout(), "   %s\n", ui.Muted.Render(q.ID))
			}
			if origin == nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("💡 Set [home] in ~/.stepquest.toml to attach nearby places."))
			}
			return nil
		},
	}

	return cmd
}
