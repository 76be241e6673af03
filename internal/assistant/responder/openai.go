package responder

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/shoplight/shoplight/internal/assistant/domain"
	"github.com/shoplight/shoplight/internal/config"
	"go.uber.org/zap"
)

const fallbackReply = "Sorry, I could not generate a response."

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type completionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type completionErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

type openAIClient struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// Provide returns the OpenAI-backed responder, or an unconfigured
// responder that fails every call when no API key is set.
func Provide(cfg config.Config, log *zap.Logger) domain.Responder {
	if cfg.OpenAIAPIKey == "" {
		log.Warn("openai api key not configured, chat is unavailable")
		return &unconfigured{}
	}
	return &openAIClient{
		apiKey:  cfg.OpenAIAPIKey,
		baseURL: strings.TrimRight(cfg.OpenAIBaseURL, "/"),
		model:   cfg.OpenAIModel,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *openAIClient) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	body, err := json.Marshal(completionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userMessage},
		},
		MaxTokens:   500,
		Temperature: 0.7,
	})
	if err != nil {
		return "", &domain.ResponderError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", &domain.ResponderError{Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &domain.ResponderError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr completionErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil {
			return "", &domain.ResponderError{Err: errors.New("completion request failed")}
		}
		message := strings.TrimSpace(apiErr.Error.Message)
		if message == "" {
			message = "completion request failed"
		}
		return "", &domain.ResponderError{Err: errors.New(message)}
	}

	var completion completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", &domain.ResponderError{Err: err}
	}

	if len(completion.Choices) == 0 {
		return fallbackReply, nil
	}
	reply := strings.TrimSpace(completion.Choices[0].Message.Content)
	if reply == "" {
		return fallbackReply, nil
	}
	return reply, nil
}

type unconfigured struct{}

func (u *unconfigured) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	return "", domain.ErrResponderUnavailable
}
