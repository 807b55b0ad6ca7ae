// Package completion relays conversations to an OpenAI-compatible chat
// completion endpoint.
package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/najimt9-dotcom/PortfolioNT/internal/assistant"
)

// Decoding parameters are fixed per request; only the model id is
// configurable.
const (
	maxTokens   = 300
	temperature = 0.7
)

// Client calls the chat completions API. One-shot request/response relay:
// no retries, no backoff, no streaming.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a completion client for the given provider credentials.
func NewClient(apiKey, baseURL, model string, logger zerolog.Logger) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		model:      model,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

type chatRequest struct {
	Model       string                     `json:"model"`
	Messages    []assistant.PayloadMessage `json:"messages"`
	MaxTokens   int                        `json:"max_tokens"`
	Temperature float64                    `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete forwards messages verbatim to the provider and returns the first
// choice's content. An empty string with a nil error means the provider
// returned no content; callers substitute their own apology text.
func (c *Client) Complete(ctx context.Context, messages []assistant.PayloadMessage) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		json.Unmarshal(respBody, &errResp)
		c.logger.Error().
			Int("status", resp.StatusCode).
			Str("provider_error", errResp.Error.Message).
			Msg("completion request rejected")
		return "", fmt.Errorf("completion error %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", err
	}

	if len(parsed.Choices) == 0 {
		return "", nil
	}
	return parsed.Choices[0].Message.Content, nil
}
