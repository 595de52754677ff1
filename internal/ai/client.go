// Package ai wraps the external upsell suggestion service. The call is
// purely advisory: it has its own timeout, and any failure is reported to
// the caller as a condition the checkout flow ignores.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// CartItem is the only thing the advisory service learns about the cart.
type CartItem struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Advice is the suggestion payload surfaced to the POS UI.
type Advice struct {
	Suggestions []string `json:"suggestions"`
	Reasoning   string   `json:"reasoning"`
}

// Client calls an OpenAI-compatible chat-completions endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

func NewClient(baseURL, apiKey, model string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
	}
}

const systemPrompt = `You are a retail upsell assistant for a dispensary point of sale.
Given the cart contents, suggest up to three complementary products.
Respond with JSON only: {"suggestions": ["..."], "reasoning": "..."}`

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Suggest requests upsell suggestions for the given cart lines. The
// context bounds the call in addition to the client timeout.
func (c *Client) Suggest(ctx context.Context, items []CartItem) (Advice, error) {
	if c.apiKey == "" {
		return Advice{}, fmt.Errorf("advisory service not configured: missing API key")
	}
	if len(items) == 0 {
		return Advice{}, fmt.Errorf("empty cart")
	}

	var sb strings.Builder
	sb.WriteString("Cart contents:\n")
	for _, it := range items {
		fmt.Fprintf(&sb, "- %s (%s)\n", it.Name, it.Category)
	}

	reqBody, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: sb.String()},
		},
		Temperature: 0.7,
	})
	if err != nil {
		return Advice{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(reqBody))
	if err != nil {
		return Advice{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Advice{}, fmt.Errorf("advisory request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Advice{}, err
	}
	if resp.StatusCode != http.StatusOK {
		return Advice{}, fmt.Errorf("advisory service returned %d: %s", resp.StatusCode, truncate(string(raw), 200))
	}

	var cr chatResponse
	if err := json.Unmarshal(raw, &cr); err != nil {
		return Advice{}, fmt.Errorf("decode advisory response: %w", err)
	}
	if cr.Error != nil {
		return Advice{}, fmt.Errorf("advisory service error: %s", cr.Error.Message)
	}
	if len(cr.Choices) == 0 {
		return Advice{}, fmt.Errorf("advisory response had no choices")
	}

	return parseAdvice(cr.Choices[0].Message.Content)
}

// parseAdvice extracts the JSON advice object from the model reply, which
// may be wrapped in a markdown code fence.
func parseAdvice(content string) (Advice, error) {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if i := strings.LastIndex(content, "```"); i >= 0 {
			content = content[:i]
		}
		content = strings.TrimSpace(content)
	}
	var a Advice
	if err := json.Unmarshal([]byte(content), &a); err != nil {
		return Advice{}, fmt.Errorf("advisory reply was not valid JSON: %w", err)
	}
	return a, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
