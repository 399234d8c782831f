package tree

import (
	"reflect"
	"strings"
	"testing"
)

func TestFilterFields(t *testing.T) {
	t.Run("removes named fields at every depth", func(t *testing.T) {
		input := map[string]any{
			"node_id": "r",
			"text":    "secret",
			"nodes": []any{
				map[string]any{
					"node_id": "a",
					"text":    "also secret",
					"meta":    map[string]any{"text": "nested"},
				},
			},
		}

		got := FilterFields(input, FilterOptions{Remove: []string{"text"}})

		want := map[string]any{
			"node_id": "r",
			"nodes": []any{
				map[string]any{
					"node_id": "a",
					"meta":    map[string]any{},
				},
			},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("FilterFields() = %#v, want %#v", got, want)
		}
	})

	t.Run("input is not modified", func(t *testing.T) {
		input := map[string]any{"keep": "x", "drop": "y"}
		FilterFields(input, FilterOptions{Remove: []string{"drop"}})
		if _, ok := input["drop"]; !ok {
			t.Error("FilterFields() mutated its input")
		}
	})

	t.Run("scalars pass through untouched", func(t *testing.T) {
		input := map[string]any{"n": 3.5, "b": true, "nothing": nil}
		got := FilterFields(input, FilterOptions{Remove: []string{"absent"}})
		if !reflect.DeepEqual(got, input) {
			t.Errorf("FilterFields() = %#v, want %#v", got, input)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		input := map[string]any{
			"title": strings.Repeat("x", 50),
			"text":  "gone",
			"nodes": []any{map[string]any{"text": "gone too", "title": "short"}},
		}
		opts := FilterOptions{Remove: []string{"text"}, MaxTextLen: 10}

		once := FilterFields(input, opts)
		twice := FilterFields(once, opts)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("second application changed the result: %#v != %#v", once, twice)
		}
	})

	t.Run("truncation law", func(t *testing.T) {
		long := strings.Repeat("a", 25)
		got := FilterFields(long, FilterOptions{MaxTextLen: 10}).(string)

		if len(got) != 13 {
			t.Errorf("len = %d, want max_len+3 = 13", len(got))
		}
		if !strings.HasSuffix(got, "...") {
			t.Errorf("truncated string %q does not end with ellipsis", got)
		}

		exact := strings.Repeat("b", 10)
		if got := FilterFields(exact, FilterOptions{MaxTextLen: 10}); got != exact {
			t.Errorf("string at max_len changed: %q", got)
		}
	})
}

func TestPrintableForest(t *testing.T) {
	forest := []*Node{
		{
			NodeID:    "r",
			Title:     "Root",
			Text:      "full body text that should disappear",
			PageIndex: intPtr(1),
			Nodes: []*Node{
				{NodeID: "a", Title: strings.Repeat("long title ", 20), Text: "more body"},
			},
		},
	}

	view, err := PrintableForest(forest)
	if err != nil {
		t.Fatalf("PrintableForest() error = %v", err)
	}

	roots, ok := view.([]any)
	if !ok || len(roots) != 1 {
		t.Fatalf("view = %T, want one-element []any", view)
	}
	root := roots[0].(map[string]any)

	if _, ok := root["text"]; ok {
		t.Error("text field survived filtering")
	}
	if root["node_id"] != "r" {
		t.Errorf("node_id = %v, want r", root["node_id"])
	}

	child := root["nodes"].([]any)[0].(map[string]any)
	if _, ok := child["text"]; ok {
		t.Error("child text field survived filtering")
	}
	title := child["title"].(string)
	if len(title) != printableMaxTextLen+3 || !strings.HasSuffix(title, "...") {
		t.Errorf("child title not truncated: len=%d", len(title))
	}
}
