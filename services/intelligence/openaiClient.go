package intelligence

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"digitalmindset/models"
)

const openAIProvider = "OpenAI"

// OpenAIClient calls an OpenAI compatible chat completions endpoint.
type OpenAIClient struct {
	apiKey  string
	baseURL string
	model   string
	http    *http.Client
}

func NewOpenAIClient(apiKey, baseURL, model string, timeout time.Duration) *OpenAIClient {
	return &OpenAIClient{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		http:    &http.Client{Timeout: timeout},
	}
}

type chatCompletionRequest struct {
	Model       string               `json:"model"`
	Messages    []models.ChatMessage `json:"messages"`
	Temperature float32              `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message models.ChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (c *OpenAIClient) GenerateText(ctx context.Context, messages []models.ChatMessage, temperature float32) (string, error) {
	payload, err := json.Marshal(chatCompletionRequest{Model: c.model, Messages: messages, Temperature: temperature})
	if err != nil {
		return "", upstream(openAIProvider, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", upstream(openAIProvider, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", upstream(openAIProvider, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", upstream(openAIProvider, err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", upstream(openAIProvider, fmt.Errorf("OpenAI API error: %s", http.StatusText(resp.StatusCode)))
	}

	var out chatCompletionResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", upstream(openAIProvider, fmt.Errorf("decode response: %w", err))
	}
	if out.Error != nil {
		return "", upstream(openAIProvider, fmt.Errorf("OpenAI API error: %s", out.Error.Message))
	}
	if len(out.Choices) == 0 {
		return "", upstream(openAIProvider, fmt.Errorf("empty choices"))
	}
	return out.Choices[0].Message.Content, nil
}
