// Package llm abstracts the language-model backends the drawing coach
// can talk to. Every call is a single turn: one system prompt, one user
// prompt, and a JSON reply shaped by an optional schema.
package llm

import (
	"context"
	"encoding/json"
)

// Provider answers single-turn structured generation calls.
type Provider interface {
	// Generate sends one prompt and returns the model's reply. When the
	// request carries a Schema the reply Content is JSON validated
	// against it.
	Generate(ctx context.Context, req Request) (*Reply, error)

	// ModelID reports the model this provider is configured to call.
	ModelID() string
}

// Request is one coaching call. The coach never holds a conversation,
// so there is no message history, just the two prompts.
type Request struct {
	// System frames the model's role, e.g. "you are a drawing coach".
	System string

	// Prompt is the user-side content: the attempt being reviewed or
	// the learner context for a warmup.
	Prompt string

	// Schema, when set, constrains the reply to a JSON shape using the
	// backend's native structured-output mechanism.
	Schema *Schema

	// MaxTokens caps the reply length.
	MaxTokens int

	// Temperature in [0,1]. Zero means deterministic.
	Temperature float64
}

// Schema names a JSON Schema the reply must conform to.
type Schema struct {
	// Name is a kebab-case identifier, e.g. "attempt-feedback". It
	// doubles as the structured-output name sent to the backend and as
	// the cache key for the compiled schema.
	Name string

	// Description tells the model what the shape represents.
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Reply is the model's answer to one Request.
type Reply struct {
	// Content is the generated JSON. Validated when the request carried
	// a schema, raw otherwise.
	Content json.RawMessage

	// Usage reports token consumption for this call.
	Usage Usage

	// Model is the model that actually served the call, which may be a
	// more specific ID than the one requested.
	Model string

	// Truncated is set when generation stopped at the MaxTokens cap
	// rather than at a natural end.
	Truncated bool
}

// Usage counts tokens for one call.
type Usage struct {
	InputTokens  int
	OutputTokens int
}
