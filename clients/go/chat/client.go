// Package chat provides a client for the portfolio assistant's completion
// proxy.
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// DefaultEndpoint is the proxy URL used when none is configured.
const DefaultEndpoint = "http://localhost:3000/api/chat"

// Message is one role/content pair of an outbound conversation payload.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client is a portfolio assistant API client.
type Client struct {
	Endpoint   string // full URL of the chat route
	HTTPClient *http.Client
	Logger     zerolog.Logger
}

// NewClient creates a client for the given chat endpoint. An empty endpoint
// falls back to CHAT_API_URL, then DefaultEndpoint.
func NewClient(endpoint string) *Client {
	if endpoint == "" {
		endpoint = os.Getenv("CHAT_API_URL")
	}
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	return &Client{
		Endpoint:   endpoint,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		Logger:     zerolog.Nop(),
	}
}

// Send posts a conversation payload and returns the assistant's reply.
// The caller always receives either a usable string or ok=false: non-2xx
// statuses, network failures and malformed JSON are all absorbed here and
// logged, never returned as errors. A 2xx response whose reply field is
// absent yields ("", true).
func (c *Client) Send(ctx context.Context, payload []Message) (string, bool) {
	body, err := json.Marshal(map[string][]Message{"messages": payload})
	if err != nil {
		c.Logger.Error().Err(err).Msg("payload marshal failed")
		return "", false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		c.Logger.Error().Err(err).Msg("request build failed")
		return "", false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Logger.Error().Err(err).Msg("chat endpoint unreachable")
		return "", false
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Logger.Error().Err(err).Msg("response read failed")
		return "", false
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.Logger.Error().
			Int("status", resp.StatusCode).
			Str("body", string(respBody)).
			Msg("chat endpoint returned error")
		return "", false
	}

	var parsed struct {
		Reply string `json:"reply"`
	}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		c.Logger.Error().Err(err).Msg("malformed chat response")
		return "", false
	}

	return parsed.Reply, true
}

// apiGet fetches a sibling route of the chat endpoint and decodes the JSON
// response into out. Unlike Send, these helper calls do surface errors.
func (c *Client) apiGet(ctx context.Context, path string, out interface{}) error {
	base, err := url.Parse(c.Endpoint)
	if err != nil {
		return err
	}
	target := base.ResolveReference(&url.URL{Path: path})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error string `json:"error"`
		}
		json.Unmarshal(respBody, &errResp)
		return fmt.Errorf("assistant error %d: %s", resp.StatusCode, errResp.Error)
	}

	return json.Unmarshal(respBody, out)
}

// HealthResponse mirrors the server's health payload.
type HealthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// Health fetches the server health summary.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var resp HealthResponse
	if err := c.apiGet(ctx, "/health", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// QuestionsResponse mirrors the server's quick-questions payload.
type QuestionsResponse struct {
	Questions []string `json:"questions"`
}

// Questions fetches the suggested starter prompts.
func (c *Client) Questions(ctx context.Context) (*QuestionsResponse, error) {
	var resp QuestionsResponse
	if err := c.apiGet(ctx, "/api/questions", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// QuestionPreview is a truncated recent visitor question.
type QuestionPreview struct {
	ID        string `json:"id"`
	Question  string `json:"question"`
	Source    string `json:"source"`
	Timestamp int64  `json:"ts"`
}

// StatsResponse mirrors the server's stats payload.
type StatsResponse struct {
	TotalExchanges  int64             `json:"total_exchanges"`
	ApologiesServed int64             `json:"apologies_served"`
	LastActivity    string            `json:"last_activity"`
	RecentQuestions []QuestionPreview `json:"recent_questions"`
}

// Stats fetches assistant usage statistics.
func (c *Client) Stats(ctx context.Context) (*StatsResponse, error) {
	var resp StatsResponse
	if err := c.apiGet(ctx, "/api/stats", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
