package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // pass-through
	}
	for _, tt := range tests {
		if got := resolveModel(tt.input, geminiModels); got != tt.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{"type": "string"},
			"score":   map[string]any{"type": "number"},
			"focus": map[string]any{
				"type": "string",
				"enum": []any{"line-work", "shapes-and-form", "perspective"},
			},
			"tips": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"summary", "score"},
	}

	s := geminiSchema(def)

	if s.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", s.Type)
	}
	if len(s.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(s.Properties))
	}
	if s.Properties["summary"].Type != "STRING" {
		t.Fatalf("expected STRING for summary, got %s", s.Properties["summary"].Type)
	}
	if s.Properties["score"].Type != "NUMBER" {
		t.Fatalf("expected NUMBER for score, got %s", s.Properties["score"].Type)
	}
	if len(s.Properties["focus"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(s.Properties["focus"].Enum))
	}
	if s.Properties["tips"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for tips, got %s", s.Properties["tips"].Type)
	}
	if s.Properties["tips"].Items.Type != "STRING" {
		t.Fatalf("expected STRING for tips items, got %s", s.Properties["tips"].Items.Type)
	}
	if len(s.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(s.Required))
	}
}
