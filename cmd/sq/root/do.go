package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"stepquest/internal/engine"
	"stepquest/internal/ui"
)

func newDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <quest_id>",
		Short: "Complete a quest",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("quest_id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.CompleteQuest(ctx, args[0])
			if err != nil {
				return err
			}
			switch res.Outcome {
			case engine.OutcomeNotFound:
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" No active quest with that id."))
				return nil
			case engine.OutcomeAlreadyCompleted:
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Already completed."))
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconDone+" 완료!"),
				res.Quest.Title,
				ui.Gold.Render(ui.FormatReward(res.ExpAwarded)))
			if res.LevelUp {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s Level %d → %d\n", ui.IconBolt, ui.BadgeLevelUp, res.LevelBefore, res.LevelAfter)
			}
			for _, id := range res.NewAchievements {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.IconTrophy, ui.Gold.Render(id))
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(fmt.Sprintf("💡 기록을 남겨보세요: sq journal add %s", res.Quest.ID)))
			return nil
		},
	}

	return cmd
}
