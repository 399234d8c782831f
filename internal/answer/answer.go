// Package answer synthesizes natural-language answers from semantic query
// results. The PageTree API retrieves relevant document nodes; this package
// makes the auxiliary language-model call that turns them into prose.
package answer

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/pkoukk/tiktoken-go"

	"github.com/pagetree-ai/pagetree-go/client"
)

const (
	defaultModel            = "gpt-4o-mini"
	defaultMaxContextTokens = 6000

	systemPrompt = `You answer questions about a document using only the provided sections.
Each section is labeled with its node id and start page.
Cite the node ids you relied on. If the sections do not contain the answer, say so.`
)

// Config holds configuration for the answer synthesizer.
type Config struct {
	APIKey string
	Model  string

	// MaxContextTokens bounds the token budget spent on retrieved section
	// text; sections that would exceed it are dropped lowest-score first
	// (the API returns nodes already ordered by score).
	MaxContextTokens int

	BaseURL    string       // Optional (tests)
	HTTPClient *http.Client // Optional (tests)
}

// Synthesizer generates answers over retrieved document nodes using the
// OpenAI chat completions API.
type Synthesizer struct {
	client           openai.Client
	model            string
	maxContextTokens int

	// countTokens is replaceable in tests; the default uses tiktoken.
	countTokens func(string) int
}

// New creates an answer synthesizer.
func New(cfg Config) *Synthesizer {
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.MaxContextTokens <= 0 {
		cfg.MaxContextTokens = defaultMaxContextTokens
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	}

	return &Synthesizer{
		client:           openai.NewClient(opts...),
		model:            cfg.Model,
		maxContextTokens: cfg.MaxContextTokens,
		countTokens:      tokenCounter(cfg.Model),
	}
}

// Result is a synthesized answer and the nodes that informed it.
type Result struct {
	Answer  string   `json:"answer"`
	NodeIDs []string `json:"node_ids"`
}

// Synthesize answers a question from retrieved nodes. At least one node must
// carry text; nodes are consumed in retrieval order until the token budget
// is spent.
func (s *Synthesizer) Synthesize(ctx context.Context, question string, nodes []client.RetrievedNode) (*Result, error) {
	contextText, used := s.buildContext(nodes)
	if contextText == "" {
		return nil, fmt.Errorf("no retrieved text to answer from")
	}

	prompt := fmt.Sprintf("Sections:\n\n%s\nQuestion: %s", contextText, question)

	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(s.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("answer synthesis failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty choices in synthesis response")
	}

	return &Result{
		Answer:  resp.Choices[0].Message.Content,
		NodeIDs: used,
	}, nil
}

// buildContext assembles labeled sections from node text within the token
// budget and returns the section block plus the node ids used.
func (s *Synthesizer) buildContext(nodes []client.RetrievedNode) (string, []string) {
	var sb strings.Builder
	var used []string
	remaining := s.maxContextTokens

	for _, n := range nodes {
		if n.Text == "" {
			continue
		}
		section := formatSection(n)
		cost := s.countTokens(section)
		if cost > remaining {
			continue
		}
		remaining -= cost
		sb.WriteString(section)
		used = append(used, n.NodeID)
	}
	return sb.String(), used
}

func formatSection(n client.RetrievedNode) string {
	page := "?"
	if n.PageIndex != nil {
		page = fmt.Sprintf("%d", *n.PageIndex)
	}
	return fmt.Sprintf("[node %s | %s | page %s]\n%s\n\n", n.NodeID, n.Title, page, n.Text)
}

// tokenCounter returns a token counting function for the model. Encoder
// construction is deferred and cached; if tiktoken has no encoding for the
// model it falls back to cl100k_base, then to a bytes/4 estimate.
func tokenCounter(model string) func(string) int {
	var once sync.Once
	var enc *tiktoken.Tiktoken

	return func(text string) int {
		once.Do(func() {
			var err error
			enc, err = tiktoken.EncodingForModel(model)
			if err != nil {
				enc, _ = tiktoken.GetEncoding("cl100k_base")
			}
		})
		if enc == nil {
			return len(text) / 4
		}
		return len(enc.Encode(text, nil, nil))
	}
}
