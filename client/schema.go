package client

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// parseStructuredContent parses model output as JSON, recovering from
// markdown code fences, and validates it against the requested schema.
func parseStructuredContent(content string, schemaRaw json.RawMessage) (json.RawMessage, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("empty structured output")
	}

	candidates := []string{content}
	if stripped := stripCodeFences(content); stripped != "" && stripped != content {
		candidates = append(candidates, stripped)
	}

	var parsed json.RawMessage
	var lastErr error
	for _, candidate := range candidates {
		if json.Valid([]byte(candidate)) {
			parsed = json.RawMessage(candidate)
			break
		}
		lastErr = fmt.Errorf("content is not valid JSON")
	}
	if parsed == nil {
		return nil, lastErr
	}

	if len(schemaRaw) > 0 {
		if err := validateAgainstSchema(parsed, schemaRaw); err != nil {
			return nil, err
		}
	}
	return parsed, nil
}

// validateAgainstSchema checks parsed output against a JSON schema. The
// schema may be bare or wrapped in the {"name": ..., "schema": {...}}
// envelope used by response_format requests.
func validateAgainstSchema(parsed, schemaRaw json.RawMessage) error {
	var envelope struct {
		Schema json.RawMessage `json:"schema"`
	}
	if err := json.Unmarshal(schemaRaw, &envelope); err == nil && len(envelope.Schema) > 0 {
		schemaRaw = envelope.Schema
	}

	schema, err := jsonschema.CompileString("response_format.json", string(schemaRaw))
	if err != nil {
		return fmt.Errorf("invalid response schema: %w", err)
	}

	var value any
	if err := json.Unmarshal(parsed, &value); err != nil {
		return fmt.Errorf("failed to parse structured output: %w", err)
	}
	if err := schema.Validate(value); err != nil {
		return fmt.Errorf("structured output failed validation: %w", err)
	}
	return nil
}

// stripCodeFences removes a surrounding markdown code fence, if present.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		// Drop the language tag line ("json" etc).
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
