package client

import (
	"encoding/json"
	"time"
)

// DocumentStatus is the processing state of an uploaded document.
type DocumentStatus string

const (
	StatusQueued     DocumentStatus = "queued"
	StatusProcessing DocumentStatus = "processing"
	StatusCompleted  DocumentStatus = "completed"
	StatusFailed     DocumentStatus = "failed"
)

// Terminal returns true once processing can no longer advance.
func (s DocumentStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Document describes an uploaded document and its processing state.
type Document struct {
	ID        string         `json:"doc_id"`
	Filename  string         `json:"filename,omitempty"`
	Status    DocumentStatus `json:"status"`
	PageCount int            `json:"page_count,omitempty"`
	Error     string         `json:"error,omitempty"`
	CreatedAt time.Time      `json:"created_at,omitempty"`
}

// UploadOptions control document upload.
type UploadOptions struct {
	// Filename labels the upload; required when uploading from a reader.
	Filename string

	// PageCount, when known locally (see internal/pdfinfo), is sent as a
	// hint and echoed back on the returned Document.
	PageCount int
}

// OCRPage is one page of OCR output.
type OCRPage struct {
	PageIndex int    `json:"page_index"`
	Markdown  string `json:"markdown"`
}

// OCRResult is the per-page OCR output for a completed document.
type OCRResult struct {
	DocumentID string    `json:"doc_id"`
	Pages      []OCRPage `json:"pages"`
}

// TreeOptions control tree retrieval.
type TreeOptions struct {
	// IncludeText asks the server to inline each node's text payload.
	IncludeText bool
}

// QueryRequest asks for the document nodes most relevant to a question.
type QueryRequest struct {
	DocumentID string `json:"doc_id"`
	Question   string `json:"question"`
	TopK       int    `json:"top_k,omitempty"`
}

// RetrievedNode is one scored node from a semantic query.
type RetrievedNode struct {
	NodeID    string  `json:"node_id"`
	Title     string  `json:"title,omitempty"`
	PageIndex *int    `json:"page_index,omitempty"`
	Score     float64 `json:"score"`
	Text      string  `json:"text,omitempty"`
}

// QueryResult holds semantic query output.
type QueryResult struct {
	DocumentID string          `json:"doc_id"`
	Nodes      []RetrievedNode `json:"nodes"`
}

// Message is one chat message.
type Message struct {
	Role    string `json:"role"` // "system", "user", "assistant"
	Content string `json:"content"`
}

// ResponseFormat requests structured chat output.
type ResponseFormat struct {
	Type       string          `json:"type"` // "json_schema"
	JSONSchema json.RawMessage `json:"json_schema,omitempty"`
}

// ChatRequest is a chat completion request grounded on a document.
type ChatRequest struct {
	DocumentID     string          `json:"doc_id"`
	Messages       []Message       `json:"messages"`
	Model          string          `json:"model,omitempty"`
	Temperature    float64         `json:"temperature,omitempty"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
}

// ChatResult is a complete (non-streaming) chat response.
type ChatResult struct {
	Content    string          `json:"content"`
	ParsedJSON json.RawMessage `json:"parsed_json,omitempty"` // Set when ResponseFormat was requested

	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`

	Model        string `json:"model,omitempty"`
	FinishReason string `json:"finish_reason,omitempty"`
}

// Wire types for chat completion responses.

type chatCompletionResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Message      Message `json:"message"`
		FinishReason string  `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// chatRequestWire adds the stream flag the API expects.
type chatRequestWire struct {
	ChatRequest
	Stream bool `json:"stream,omitempty"`
}
