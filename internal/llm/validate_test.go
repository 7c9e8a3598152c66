package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func feedbackTestSchema() *Schema {
	return &Schema{
		Name:        "stroke-feedback",
		Description: "Coach feedback on one drill attempt",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"summary": map[string]any{"type": "string"},
				"score":   map[string]any{"type": "number", "minimum": 0, "maximum": 1},
				"focus": map[string]any{
					"type": "string",
					"enum": []any{"line-work", "shapes-and-form", "perspective"},
				},
			},
			"required": []any{"summary", "score"},
		},
	}
}

func TestConform_ValidReply(t *testing.T) {
	raw := json.RawMessage(`{"summary":"Steady strokes, slight arc drift.","score":0.72,"focus":"line-work"}`)
	if err := conform(feedbackTestSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestConform_OptionalFieldOmitted(t *testing.T) {
	raw := json.RawMessage(`{"summary":"Confident start.","score":0.55}`)
	if err := conform(feedbackTestSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestConform_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"summary":"No score attached."}`)
	err := conform(feedbackTestSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestConform_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"summary":"ok","score":"high"}`)
	err := conform(feedbackTestSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestConform_BadEnumValue(t *testing.T) {
	raw := json.RawMessage(`{"summary":"ok","score":0.8,"focus":"color-theory"}`)
	err := conform(feedbackTestSchema(), raw)
	if err == nil {
		t.Fatal("expected error for value outside the enum")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestConform_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := conform(feedbackTestSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestConform_EmptyReply(t *testing.T) {
	if err := conform(feedbackTestSchema(), json.RawMessage(``)); err == nil {
		t.Fatal("expected error for empty reply")
	}
}

func TestConform_NilSchemaAcceptsAnything(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := conform(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestConform_NestedDrill(t *testing.T) {
	schema := &Schema{
		Name:        "warmup-drill",
		Description: "A warmup drill with ordered steps",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"drill": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{"type": "string"},
					},
					"required": []any{"title"},
				},
				"step_minutes": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "integer"},
				},
			},
			"required": []any{"drill", "step_minutes"},
		},
	}

	valid := json.RawMessage(`{"drill":{"title":"Ghosted line ladder"},"step_minutes":[2,3,5]}`)
	if err := conform(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"drill":{"title":"Ghosted line ladder"},"step_minutes":["two","three"]}`)
	if err := conform(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}
