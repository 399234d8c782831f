package tree

import "encoding/json"

// FilterOptions controls FilterFields.
type FilterOptions struct {
	// Remove lists field names dropped at every nesting depth,
	// matched by exact key name regardless of parent type.
	Remove []string

	// MaxTextLen truncates string values longer than this many bytes,
	// appending "..." to the kept prefix. Zero disables truncation.
	MaxTextLen int
}

// FilterFields returns a structurally identical copy of arbitrary JSON-like
// data (maps, slices, scalars) with the named fields removed and long strings
// optionally truncated. The input is never modified. Filtering is a
// projection: applying the same options twice yields the same result.
func FilterFields(v any, opts FilterOptions) any {
	removed := make(map[string]bool, len(opts.Remove))
	for _, f := range opts.Remove {
		removed[f] = true
	}
	return filterValue(v, removed, opts.MaxTextLen)
}

func filterValue(v any, removed map[string]bool, maxLen int) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			if removed[k] {
				continue
			}
			out[k] = filterValue(item, removed, maxLen)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = filterValue(item, removed, maxLen)
		}
		return out
	case string:
		return truncate(val, maxLen)
	default:
		return v
	}
}

// truncate shortens s to n bytes plus an ellipsis marker. n <= 0 disables it.
func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// printableMaxTextLen bounds string values in PrintableForest output.
const printableMaxTextLen = 100

// PrintableForest renders the forest as generic maps with node text removed
// and long strings truncated, suitable for logging or CLI display.
func PrintableForest(roots []*Node) (any, error) {
	raw, err := json.Marshal(roots)
	if err != nil {
		return nil, err
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, err
	}
	return FilterFields(generic, FilterOptions{
		Remove:     []string{"text"},
		MaxTextLen: printableMaxTextLen,
	}), nil
}
