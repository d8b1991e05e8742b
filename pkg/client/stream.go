package client

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"askgpt/pkg/types"
)

// StreamHandler defines the interface for handling stream events
type StreamHandler interface {
	OnContent(content string)
	OnError(err error)
	OnComplete()
}

// StreamChat initiates a streaming chat completion request. Content deltas
// are delivered to the handler as they arrive; the error taxonomy matches
// RequestChat for everything up to the first received chunk.
func (c *Client) StreamChat(ctx context.Context, req types.ChatRequest, handler StreamHandler) error {
	if c.apiKey == "" {
		return &ConfigError{Reason: "API key is not set"}
	}

	req.Stream = true

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return apiErrorFrom(resp.StatusCode, respBody)
	}

	reader := bufio.NewReader(resp.Body)
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				break
			}
			netErr := &NetworkError{Err: err}
			handler.OnError(netErr)
			return netErr
		}

		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "data: ") {
			continue
		}

		data := strings.TrimPrefix(line, "data: ")
		if data == "[DONE]" {
			handler.OnComplete()
			break
		}

		var chunk types.StreamChunk
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			handler.OnError(&DecodeError{Err: err})
			continue
		}

		if len(chunk.Choices) > 0 && chunk.Choices[0].Delta.Content != "" {
			handler.OnContent(chunk.Choices[0].Delta.Content)
		}
	}

	return nil
}
