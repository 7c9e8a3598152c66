package coach

import "github.com/alecrj/atelier/internal/llm"

// FeedbackSchema defines the JSON schema for attempt feedback responses.
var FeedbackSchema = &llm.Schema{
	Name:        "attempt-feedback",
	Description: "Coaching feedback on a scored drawing exercise attempt",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "One or two sentences assessing the attempt against the exercise goal",
			},
			"tips": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    1,
				"maxItems":    3,
				"description": "Concrete, physical adjustments to try on the next attempt (grip, speed, arm motion)",
			},
			"encouragement": map[string]any{
				"type":        "string",
				"description": "One short, specific encouraging sentence. No generic praise.",
			},
		},
		"required":             []any{"summary", "tips", "encouragement"},
		"additionalProperties": false,
	},
}

// WarmupSchema defines the JSON schema for warmup suggestion responses.
var WarmupSchema = &llm.Schema{
	Name:        "warmup-suggestion",
	Description: "A short pre-session drawing drill tailored to the learner",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Short drill name, e.g. 'Ghosted ellipse ladder'",
			},
			"description": map[string]any{
				"type":        "string",
				"description": "Two to four sentences describing exactly what to draw and how",
			},
			"duration_minutes": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"maximum":     15,
				"description": "How long the drill should take",
			},
			"category": map[string]any{
				"type":        "string",
				"description": "The skill category this drill trains, from the provided list",
			},
		},
		"required":             []any{"title", "description", "duration_minutes", "category"},
		"additionalProperties": false,
	},
}
