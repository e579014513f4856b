// Package llm implements domain.ChatCompleter against an OpenAI-compatible
// chat completions API.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/siam-trails/travel-affiliate-service/internal/domain"
	"github.com/siam-trails/travel-affiliate-service/internal/infrastructure/logger"
)

const completionsPath = "/v1/chat/completions"

// maxErrorBody caps how much of an error response is kept for diagnostics.
const maxErrorBody = 512

// Client calls the chat completions endpoint of one upstream.
type Client struct {
	baseURL     string
	apiKey      string
	temperature float64
	hc          *http.Client
	log         *logger.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

// WithLogger injects a logger.
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) { c.log = l.WithComponent("llm") }
}

// WithTemperature sets the sampling temperature sent with every request.
func WithTemperature(t float64) Option {
	return func(c *Client) { c.temperature = t }
}

// NewClient creates a Client for the upstream at baseURL.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		apiKey:      apiKey,
		temperature: 0.7,
		hc:          &http.Client{},
		log:         logger.Nop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type completionRequest struct {
	Model       string               `json:"model"`
	Messages    []domain.ChatMessage `json:"messages"`
	Temperature float64              `json:"temperature"`
}

type completionResponse struct {
	Choices []struct {
		Message domain.ChatMessage `json:"message"`
	} `json:"choices"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Complete implements domain.ChatCompleter.
func (c *Client) Complete(ctx context.Context, model string, messages []domain.ChatMessage) (string, error) {
	body, err := json.Marshal(completionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: c.temperature,
	})
	if err != nil {
		return "", domain.NewUpstreamError(model, 0, fmt.Errorf("encode request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+completionsPath, bytes.NewReader(body))
	if err != nil {
		return "", domain.NewUpstreamError(model, 0, fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", domain.NewUpstreamTimeoutError(model)
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", domain.NewRetryableUpstreamError(model, 0, err)
	}
	defer resp.Body.Close()

	c.log.WithModel(model).Debug().
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("chat completion call")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", statusError(model, resp)
	}

	var parsed completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", domain.NewRetryableUpstreamError(model, resp.StatusCode, fmt.Errorf("decode response: %w", err))
	}
	if len(parsed.Choices) == 0 || strings.TrimSpace(parsed.Choices[0].Message.Content) == "" {
		return "", domain.NewRetryableUpstreamError(model, resp.StatusCode, errors.New("empty completion"))
	}

	return parsed.Choices[0].Message.Content, nil
}

// statusError classifies a non-2xx response.
func statusError(model string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	msg := strings.TrimSpace(string(raw))
	var parsed errorResponse
	if json.Unmarshal(raw, &parsed) == nil && parsed.Error.Message != "" {
		msg = parsed.Error.Message
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.NewUpstreamError(model, resp.StatusCode, fmt.Errorf("%w: %s", domain.ErrModelUnavailable, msg))
	case resp.StatusCode == http.StatusTooManyRequests, resp.StatusCode >= 500:
		return domain.NewRetryableUpstreamError(model, resp.StatusCode, errors.New(msg))
	default:
		return domain.NewUpstreamError(model, resp.StatusCode, errors.New(msg))
	}
}

// Ensure Client implements domain.ChatCompleter at compile time.
var _ domain.ChatCompleter = (*Client)(nil)
