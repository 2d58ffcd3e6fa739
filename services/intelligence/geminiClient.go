// File: service/intelligence/geminiClient.go
package intelligence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"digitalmindset/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiProvider = "Gemini"

type GeminiClient struct {
	client    *genai.Client
	modelName string
}

func NewGeminiClient(ctx context.Context, apiKey, modelName string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{client: client, modelName: modelName}, nil
}

// GenerateText sends the last message as the prompt. System messages become
// the system instruction and the turns in between become chat history.
func (g *GeminiClient) GenerateText(ctx context.Context, messages []models.ChatMessage, temperature float32) (string, error) {
	if len(messages) == 0 {
		return "", upstream(geminiProvider, errors.New("no messages"))
	}

	model := g.client.GenerativeModel(g.modelName)
	model.SetTemperature(temperature)

	var system []string
	var turns []models.ChatMessage
	for _, m := range messages {
		if m.Role == models.RoleSystem {
			system = append(system, m.Content)
			continue
		}
		turns = append(turns, m)
	}
	if len(system) > 0 {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(strings.Join(system, "\n\n"))}}
	}
	if len(turns) == 0 {
		return "", upstream(geminiProvider, errors.New("no user message"))
	}

	cs := model.StartChat()
	for _, m := range turns[:len(turns)-1] {
		cs.History = append(cs.History, &genai.Content{Role: geminiRole(m.Role), Parts: []genai.Part{genai.Text(m.Content)}})
	}

	resp, err := cs.SendMessage(ctx, genai.Text(turns[len(turns)-1].Content))
	if err != nil {
		return "", upstream(geminiProvider, fmt.Errorf("gemini generate error: %w", err))
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", upstream(geminiProvider, errors.New("empty candidates"))
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String(), nil
}

func (g *GeminiClient) Close() error {
	return g.client.Close()
}

func geminiRole(role string) string {
	if role == models.RoleAssistant {
		return "model"
	}
	return "user"
}
