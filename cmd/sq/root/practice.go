package root

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"stepquest/internal/ai"
	"stepquest/internal/config"
	"stepquest/internal/engine"
	"stepquest/internal/ui"
)

// replier is the conversational side of the AI clients.
type replier interface {
	Reply(ctx context.Context, sim *engine.Simulation, userText string) (string, error)
}

func newPracticeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "practice [scenario_id]",
		Short: "Rehearse a social scenario in chat",
		Long:  "Without arguments, lists the available scenarios. With a scenario id, starts an interactive rehearsal. Type /quit to stop.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return listScenarios(cmd)
			}
			return runPractice(cmd, args[0])
		},
	}

	return cmd
}

func listScenarios(cmd *cobra.Command) error {
	fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconChat, "연습 시나리오"))
	for _, sc := range ai.Scenarios() {
		fmt.Fprintf(cmd.OutOrStdout(), "- %s %s\n", ui.Key.Render(sc.ID), sc.Title)
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", ui.Muted.Render(sc.Description))
	}
	fmt.Fprintln(cmd.OutOrStdout(), "")
	fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Start one with: sq practice <scenario_id>"))
	return nil
}

func runPractice(cmd *cobra.Command, scenarioID string) error {
	ctx := context.Background()

	cfgPath, err := config.DefaultPath()
	if err != nil {
		return err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	var bot replier = ai.NewCanned(nil)
	if cfg.AI.APIKey != "" {
		gc, err := ai.NewGenAIClient(ctx, cfg.AI.APIKey, cfg.AI.Model)
		if err == nil {
			bot = gc
		}
	}

	sim, err := ai.CreateSimulation(scenarioID)
	if err != nil {
		return err
	}
	sc, _ := ai.ScenarioByID(scenarioID)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.Heading(ui.IconChat, sc.Title))
	fmt.Fprintln(out, ui.Muted.Render(sc.Description))
	fmt.Fprintln(out, "")
	fmt.Fprintf(out, "%s %s\n", ui.Key.Render(sim.Character+":"), sim.Messages[0].Text)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if text == "/quit" || text == "/q" {
			break
		}

		sim.Messages = append(sim.Messages, engine.ChatMessage{
			ID:        uuid.NewString(),
			Text:      text,
			FromUser:  true,
			Timestamp: time.Now().UTC(),
		})

		reply, err := bot.Reply(ctx, sim, text)
		if err != nil {
			fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" "+err.Error()))
			continue
		}
		sim.Messages = append(sim.Messages, engine.ChatMessage{
			ID:        uuid.NewString(),
			Text:      reply,
			FromUser:  false,
			Timestamp: time.Now().UTC(),
		})
		fmt.Fprintf(out, "%s %s\n", ui.Key.Render(sim.Character+":"), reply)
	}

	fmt.Fprintln(out, "")
	fmt.Fprintln(out, ui.Good.Render(ui.IconDone+" 연습 종료! 실전에서도 똑같이 하면 됩니다."))
	return scanner.Err()
}
