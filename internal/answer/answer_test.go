package answer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pagetree-ai/pagetree-go/client"
)

func intPtr(i int) *int { return &i }

// fakeTokens counts whitespace-separated words, keeping tests independent of
// tiktoken's vocabulary downloads.
func fakeTokens(s string) int {
	return len(strings.Fields(s))
}

func TestSynthesizer_BuildContext(t *testing.T) {
	nodes := []client.RetrievedNode{
		{NodeID: "a", Title: "Intro", PageIndex: intPtr(1), Text: "one two three"},
		{NodeID: "b", Title: "Body", PageIndex: intPtr(2), Text: strings.Repeat("word ", 50)},
		{NodeID: "c", Title: "End", Text: "four five"},
		{NodeID: "d", Title: "Empty"},
	}

	s := New(Config{APIKey: "test"})
	s.maxContextTokens = 30
	s.countTokens = fakeTokens

	contextText, used := s.buildContext(nodes)

	// b blows the budget and is skipped; a and c fit; d has no text.
	if len(used) != 2 || used[0] != "a" || used[1] != "c" {
		t.Errorf("used = %v, want [a c]", used)
	}
	if !strings.Contains(contextText, "[node a | Intro | page 1]") {
		t.Errorf("context missing section label:\n%s", contextText)
	}
	if !strings.Contains(contextText, "page ?") {
		t.Errorf("node without page should be labeled '?':\n%s", contextText)
	}
	if strings.Contains(contextText, "word word") {
		t.Error("over-budget section leaked into context")
	}
}

func TestSynthesizer_Synthesize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		var req map[string]any
		json.NewDecoder(r.Body).Decode(&req)
		msgs := req["messages"].([]any)
		if len(msgs) != 2 {
			t.Errorf("got %d messages, want system + user", len(msgs))
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id": "cmpl-1",
			"choices": []map[string]any{{
				"message": map[string]any{"role": "assistant", "content": "Revenue grew 10% (node s3)."},
			}},
		})
	}))
	defer server.Close()

	s := New(Config{APIKey: "test", BaseURL: server.URL})
	s.countTokens = fakeTokens

	result, err := s.Synthesize(context.Background(), "How did revenue do?", []client.RetrievedNode{
		{NodeID: "s3", Title: "Revenue", PageIndex: intPtr(12), Text: "Revenue grew 10% year over year."},
	})
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	if result.Answer != "Revenue grew 10% (node s3)." {
		t.Errorf("Answer = %q", result.Answer)
	}
	if len(result.NodeIDs) != 1 || result.NodeIDs[0] != "s3" {
		t.Errorf("NodeIDs = %v", result.NodeIDs)
	}
}

func TestSynthesizer_NoText(t *testing.T) {
	s := New(Config{APIKey: "test"})
	s.countTokens = fakeTokens

	_, err := s.Synthesize(context.Background(), "anything", []client.RetrievedNode{{NodeID: "x"}})
	if err == nil {
		t.Fatal("expected error when no node carries text")
	}
}
