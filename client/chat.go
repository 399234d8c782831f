package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// ChatCompletion sends a chat completion request grounded on a document and
// waits for the full response. When req.ResponseFormat requests a JSON
// schema, the content is parsed and validated locally before being returned
// in ChatResult.ParsedJSON.
func (c *Client) ChatCompletion(ctx context.Context, req ChatRequest) (*ChatResult, error) {
	if len(req.Messages) == 0 {
		return nil, fmt.Errorf("chat requires at least one message")
	}

	var resp chatCompletionResponse
	wire := chatRequestWire{ChatRequest: req}
	if err := c.doJSON(ctx, http.MethodPost, "/chat/completions", wire, &resp); err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty choices in chat response (id=%s)", resp.ID)
	}

	result := &ChatResult{
		Content:          resp.Choices[0].Message.Content,
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
		TotalTokens:      resp.Usage.TotalTokens,
		Model:            resp.Model,
		FinishReason:     resp.Choices[0].FinishReason,
	}

	if req.ResponseFormat != nil && req.ResponseFormat.Type == "json_schema" {
		parsed, err := parseStructuredContent(result.Content, req.ResponseFormat.JSONSchema)
		if err != nil {
			return result, fmt.Errorf("structured output: %w", err)
		}
		result.ParsedJSON = parsed
	}

	return result, nil
}

// ChatCompletionStream sends a chat completion request with streaming enabled
// and returns a decoder over the live event stream. The caller must Close the
// decoder to release the connection.
func (c *Client) ChatCompletionStream(ctx context.Context, req ChatRequest, mode StreamMode) (*StreamDecoder, error) {
	if len(req.Messages) == 0 {
		return nil, fmt.Errorf("chat requires at least one message")
	}

	wire := chatRequestWire{ChatRequest: req, Stream: true}
	body, err := json.Marshal(wire)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := c.doStream(ctx, http.MethodPost, "/chat/completions", body)
	if err != nil {
		return nil, err
	}
	return NewStreamDecoder(resp.Body, mode), nil
}
