package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"askgpt/pkg/types"
)

const (
	// DefaultBaseURL is the OpenAI API root
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultTimeout bounds the full request/response round trip
	DefaultTimeout = 30 * time.Second
)

// Client talks to an OpenAI-compatible chat completions API
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

// Option customizes a Client
type Option func(*Client)

// WithBaseURL points the client at a different API root
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithTimeout overrides the HTTP client timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = timeout }
}

// WithHTTPClient swaps the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a new API client authenticated with apiKey
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		userAgent:  "askgpt/1.0",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RequestChat sends one chat completion request and returns the parsed
// response. Errors are *ConfigError, *NetworkError, *APIError, or
// *DecodeError; none of them are retried here.
func (c *Client) RequestChat(ctx context.Context, req types.ChatRequest) (*types.ChatResponse, error) {
	if c.apiKey == "" {
		return nil, &ConfigError{Reason: "API key is not set"}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	slog.Debug("sending chat completion request",
		"url", c.baseURL+"/chat/completions",
		"model", req.Model,
		"messages", len(req.Messages),
		"api_key", maskKey(c.apiKey))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	slog.Debug("received chat completion response",
		"status", resp.StatusCode,
		"size", len(respBody))

	// Status comes first: an error envelope must not be mistaken for a
	// malformed completion body.
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apiErrorFrom(resp.StatusCode, respBody)
	}

	var chatResp types.ChatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return nil, &DecodeError{Err: err}
	}

	return &chatResp, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("User-Agent", c.userAgent)
}

func apiErrorFrom(status int, body []byte) *APIError {
	var envelope types.ErrorResponse
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Error.Message == "" {
		return &APIError{StatusCode: status, Message: string(body)}
	}
	return &APIError{
		StatusCode: status,
		Message:    envelope.Error.Message,
		Type:       envelope.Error.Type,
		Code:       envelope.Error.Code,
	}
}

func maskKey(key string) string {
	if len(key) <= 8 {
		return "***"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
