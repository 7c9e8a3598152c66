package coach

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alecrj/atelier/internal/curriculum"
	"github.com/alecrj/atelier/internal/llm"
)

const maxTips = 3

// Config holds generation parameters for coach requests.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.5,
	}
}

// Service generates coaching feedback and warmup drills via an LLM provider.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a coach service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// FeedbackOnAttempt generates coaching feedback for a scored step attempt.
func (s *Service) FeedbackOnAttempt(ctx context.Context, ac AttemptContext) (*Feedback, error) {
	ctx = llm.WithPurpose(ctx, "attempt-feedback")

	userMsg, err := buildFeedbackMessage(ac)
	if err != nil {
		return nil, fmt.Errorf("build feedback prompt: %w", err)
	}

	req := llm.Request{
		System:      feedbackSystemPrompt,
		Prompt:      userMsg,
		Schema:      FeedbackSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("coach feedback failed: %w", err)
	}

	var fb Feedback
	if err := json.Unmarshal(resp.Content, &fb); err != nil {
		return nil, fmt.Errorf("failed to parse feedback response: %w", err)
	}
	if fb.Summary == "" {
		return nil, fmt.Errorf("feedback response missing summary")
	}
	if len(fb.Tips) > maxTips {
		fb.Tips = fb.Tips[:maxTips]
	}

	return &fb, nil
}

// SuggestWarmup generates a short pre-session drill for the learner.
func (s *Service) SuggestWarmup(ctx context.Context, lc LearnerContext) (*WarmupSuggestion, error) {
	ctx = llm.WithPurpose(ctx, "warmup-suggestion")

	req := llm.Request{
		System:      warmupSystemPrompt,
		Prompt:      buildWarmupMessage(lc),
		Schema:      WarmupSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("coach warmup failed: %w", err)
	}

	var ws WarmupSuggestion
	if err := json.Unmarshal(resp.Content, &ws); err != nil {
		return nil, fmt.Errorf("failed to parse warmup response: %w", err)
	}
	if ws.Title == "" || ws.Description == "" {
		return nil, fmt.Errorf("warmup response missing title or description")
	}

	// The model occasionally returns a display name instead of the ID.
	// Fall back to the learner's weakest skill rather than rejecting.
	if !validCategory(ws.Category) {
		ws.Category = string(lc.WeakestSkill)
	}

	return &ws, nil
}

func validCategory(id string) bool {
	for _, c := range curriculum.AllCategories() {
		if string(c) == id {
			return true
		}
	}
	return false
}
