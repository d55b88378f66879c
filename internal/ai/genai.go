package ai

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"stepquest/internal/engine"
)

const defaultModel = "gemini-2.0-flash"

// GenAIClient generates replies and feedback through the Gemini API. Callers
// must treat errors as soft and fall back to the canned client or the
// built-in default messages.
type GenAIClient struct {
	client *genai.Client
	model  string
}

func NewGenAIClient(ctx context.Context, apiKey, model string) (*GenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("genai api key is required")
	}
	if model == "" {
		model = defaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GenAIClient{client: client, model: model}, nil
}

// Reply produces the counterpart's next line, conditioned on the scenario's
// system prompt and the conversation so far.
func (g *GenAIClient) Reply(ctx context.Context, sim *engine.Simulation, userText string) (string, error) {
	sc, ok := ScenarioByID(sim.ScenarioID)
	if !ok {
		return "", fmt.Errorf("unknown scenario: %s", sim.ScenarioID)
	}

	var history strings.Builder
	for _, m := range sim.Messages {
		if m.FromUser {
			history.WriteString("고객: ")
		} else {
			history.WriteString(sc.Character + ": ")
		}
		history.WriteString(m.Text)
		history.WriteString("\n")
	}
	history.WriteString("고객: " + userText + "\n")
	history.WriteString(sc.Character + ": ")

	contents := []*genai.Content{
		genai.NewContentFromText(history.String(), genai.RoleUser),
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(sc.SystemPrompt, genai.RoleUser),
	})
	if err != nil {
		return "", fmt.Errorf("genai reply: %w", err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("genai reply: empty response")
	}
	return text, nil
}

// GenerateEmotionFeedback satisfies engine.FeedbackClient.
func (g *GenAIClient) GenerateEmotionFeedback(ctx context.Context, emotion engine.Emotion, contextText string) (string, error) {
	prompt := fmt.Sprintf(
		"사용자가 사회불안 극복 퀘스트를 마치고 '%s' 감정을 기록했습니다. 상황: %s. 따뜻하고 구체적인 격려 메시지를 2~3문장으로 작성해주세요.",
		emotion, contextText)

	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("genai feedback: %w", err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("genai feedback: empty response")
	}
	return text, nil
}
