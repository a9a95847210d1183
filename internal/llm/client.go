// Package llm is a minimal client for a hosted completion endpoint speaking the Responses API.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"bookapi/internal/config"
	"bookapi/internal/model"
)

const (
	defaultTimeout = 60 * time.Second
	// maxErrorBody bounds how much of a failed response is logged.
	maxErrorBody = 2048
)

// Client posts prompts to {base}/responses. It is safe for concurrent use.
type Client struct {
	http    *http.Client
	baseURL string
	model   string
	apiKey  string
	logger  *slog.Logger
}

// New creates a completion client with an instrumented transport.
func New(cfg config.LLMConfig, logger *slog.Logger) *Client {
	timeout := defaultTimeout
	if cfg.TimeoutSec > 0 {
		timeout = time.Duration(cfg.TimeoutSec) * time.Second
	}
	return &Client{
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
		apiKey:  cfg.APIKey,
		logger:  logger,
	}
}

// SummarizeBook asks for a 3-4 sentence summary of free-form book content.
func (c *Client) SummarizeBook(ctx context.Context, in BookContent) (string, error) {
	return c.complete(ctx, "summarize_book", bookSummaryPrompt(in))
}

// SummarizeReviews digests reviews into sentiment, themes and consensus.
// No request is made when there are no reviews.
func (c *Client) SummarizeReviews(ctx context.Context, reviews []model.Review) (string, error) {
	if len(reviews) == 0 {
		return NoReviews, nil
	}
	return c.complete(ctx, "summarize_reviews", reviewSummaryPrompt(reviews))
}

type request struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type response struct {
	Output []struct {
		Type    string `json:"type"`
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	} `json:"output"`
}

// text returns the first output_text item, falling back to the first content item.
func (r *response) text() string {
	for _, out := range r.Output {
		for _, item := range out.Content {
			if item.Type == "output_text" && item.Text != "" {
				return item.Text
			}
		}
	}
	if len(r.Output) > 0 && len(r.Output[0].Content) > 0 {
		return r.Output[0].Content[0].Text
	}
	return ""
}

func (c *Client) complete(ctx context.Context, op, prompt string) (string, error) {
	payload, err := json.Marshal(request{Model: c.model, Input: prompt})
	if err != nil {
		return "", &Error{Op: op, Err: fmt.Errorf("encode request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/responses", bytes.NewReader(payload))
	if err != nil {
		return "", &Error{Op: op, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("llm request failed", "op", op, "error", err)
		return "", &Error{Op: op, Err: fmt.Errorf("execute request: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}

	c.logger.Debug("llm request",
		"op", op,
		"model", c.model,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("llm request rejected",
			"op", op,
			"status", resp.StatusCode,
			"body", truncate(string(body), maxErrorBody),
		)
		return "", &Error{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var out response
	if err := json.Unmarshal(body, &out); err != nil {
		return "", &Error{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}

	text := strings.TrimSpace(out.text())
	if text == "" {
		return "", &Error{Op: op, StatusCode: resp.StatusCode, Err: ErrEmptyResponse}
	}
	return text, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
