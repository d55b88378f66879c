package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"stepquest/internal/engine"
	"stepquest/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show level, experience, and achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			state := svc.Store().Snapshot()
			u := state.User
			total := u.TotalExp()
			toNext := engine.ExpToNextLevel(total)

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSparkle, u.Nickname))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Level", u.Level))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Total EXP", fmt.Sprintf("%d (%d to next level)", total, toNext)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Progress", fmt.Sprintf("%d%%", engine.ProgressPercent(total))))
			fmt.Fprintln(cmd.OutOrStdout(), "")

			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render("📊 Experience"))
			fmt.Fprintf(cmd.OutOrStdout(), "- 💪 용기: %d\n", u.CourageExp)
			fmt.Fprintf(cmd.OutOrStdout(), "- 🤝 사회성: %d\n", u.SocialExp)
			fmt.Fprintf(cmd.OutOrStdout(), "- %s %d/%d quests completed\n", ui.IconDone, u.CompletedQuests, u.TotalQuests)
			fmt.Fprintln(cmd.OutOrStdout(), "")

			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render("🔓 Categories"))
			unlocked := engine.AvailableCategories(u.Level)
			for _, cat := range engine.AllCategories() {
				ok := false
				for _, c := range unlocked {
					if c == cat {
						ok = true
						break
					}
				}
				label := ui.CategoryIcon(cat) + " " + ui.CategoryName(cat)
				if ok {
					fmt.Fprintf(cmd.OutOrStdout(), "- %s %s\n", label, ui.Good.Render("unlocked"))
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "- %s %s\n", label, ui.Bad.Render("locked"))
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), "")

			checker := engine.NewAchievementChecker(u, state.Completed, state.Records)
			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(fmt.Sprintf("%s Achievements (%d/%d)", ui.IconTrophy, checker.CountEarned(), checker.CountTotal())))
			for _, a := range checker.Achievements() {
				line := fmt.Sprintf("- %s %s %s", a.Icon, a.Title, ui.Muted.Render(a.Description))
				if !a.Earned {
					line = ui.Muted.Render(strings.ReplaceAll(line, a.Icon, "🔒"))
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}

			return nil
		},
	}

	return cmd
}
