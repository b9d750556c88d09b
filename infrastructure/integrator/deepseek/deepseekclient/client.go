package deepseekclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-monitor-api/internal/config"
)

// ErrMissingAPIKey signals that no credential is configured. Callers
// treat it as "generation unavailable", not as a failure.
var ErrMissingAPIKey = errors.New("deepseek api key is not configured")

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []Message      `json:"messages"`
	Temperature    float64        `json:"temperature"`
	MaxTokens      int            `json:"max_tokens"`
	ResponseFormat responseFormat `json:"response_format"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Client sends chat-completion requests in JSON mode and returns the raw
// message content.
type Client interface {
	ChatJSON(ctx context.Context, messages []Message) (string, error)
}

type DeepSeekClient struct {
	httpClient *http.Client
	cfg        config.DeepSeek
}

func NewClient(cfg config.DeepSeek) Client {
	return &DeepSeekClient{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		cfg: cfg,
	}
}

// ChatJSON calls the chat-completions endpoint with a fixed 1s pause
// between attempts. Temperature and token limits are pinned so repeated
// generations stay comparable.
func (c *DeepSeekClient) ChatJSON(ctx context.Context, messages []Message) (string, error) {
	if c.cfg.APIKey == "" {
		return "", ErrMissingAPIKey
	}

	var lastErr error
	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(1 * time.Second):
			}
		}

		content, err := c.doRequest(ctx, messages)
		if err == nil {
			return content, nil
		}
		lastErr = err
	}

	return "", lastErr
}

func (c *DeepSeekClient) doRequest(ctx context.Context, messages []Message) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       c.cfg.Model,
		Messages:    messages,
		Temperature: 0.3,
		MaxTokens:   1024,
		ResponseFormat: responseFormat{
			Type: "json_object",
		},
	})
	if err != nil {
		return "", fmt.Errorf("error encoding request: %w", err)
	}

	url := c.cfg.BaseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("error executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errorText, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("deepseek api error: %d - %s", resp.StatusCode, string(errorText))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("error decoding response: %w", err)
	}

	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", errors.New("deepseek response has no content")
	}

	return parsed.Choices[0].Message.Content, nil
}
