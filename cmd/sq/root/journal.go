package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"stepquest/internal/engine"
	"stepquest/internal/ui"
)

func newJournalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Emotion journal for completed quests",
	}
	cmd.AddCommand(newJournalAddCmd(), newJournalListCmd())
	return cmd
}

func newJournalAddCmd() *cobra.Command {
	var note string

	cmd := &cobra.Command{
		Use:   "add <quest_id> <emotion>",
		Short: "Record how a quest felt",
		Long:  "Record an emotion for a quest. Emotions: " + strings.Join(emotionNames(), ", "),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("quest_id and emotion are required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			emotion, ok := engine.ParseEmotion(args[1])
			if !ok {
				return fmt.Errorf("unknown emotion %q (want one of: %s)", args[1], strings.Join(emotionNames(), ", "))
			}

			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			rec, err := svc.RecordEmotion(ctx, args[0], emotion, note)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconJournal+" 기록 완료"),
				ui.EmotionEmoji(rec.Emotion),
				ui.EmotionLabel(rec.Emotion))
			fmt.Fprintln(cmd.OutOrStdout(), ui.Key.Render("AI:"), rec.Feedback)
			return nil
		},
	}

	cmd.Flags().StringVarP(&note, "note", "n", "", "Free-form note about the experience")

	return cmd
}

func newJournalListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show journal entries (newest first)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			state := svc.Store().Snapshot()
			if len(state.Records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No entries yet. Complete a quest, then `sq journal add`."))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconJournal, "감정 일지"))
			for i := len(state.Records) - 1; i >= 0; i-- {
				rec := state.Records[i]
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
					ui.EmotionEmoji(rec.Emotion),
					ui.EmotionLabel(rec.Emotion),
					ui.Muted.Render(rec.CreatedAt.Local().Format("2006-01-02 15:04")))
				if rec.Note != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "   %s\n", rec.Note)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "   %s %s\n", ui.Key.Render("AI:"), ui.Muted.Render(rec.Feedback))
			}
			return nil
		},
	}

	return cmd
}

func emotionNames() []string {
	all := engine.AllEmotions()
	names := make([]string, len(all))
	for i, e := range all {
		names[i] = string(e)
	}
	return names
}
