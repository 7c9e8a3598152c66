package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func stubOpenAI(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = server.URL + "/v1"

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(cfg),
		model:  "gpt-4o-mini",
	}
}

func openaiCompletion(content, finishReason string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1234567890,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{
			{
				"index": 0,
				"message": map[string]any{
					"role":    "assistant",
					"content": content,
				},
				"finish_reason": finishReason,
			},
		},
		"usage": map[string]any{
			"prompt_tokens":     90,
			"completion_tokens": 35,
			"total_tokens":      125,
		},
	}
}

func TestOpenAIProvider_CoachReply(t *testing.T) {
	feedback := `{"summary":"Ellipses collapse on the minor axis.","tips":["Slow the return stroke"]}`
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(openaiCompletion(feedback, "stop"))
	}

	p := stubOpenAI(t, handler)
	reply, err := p.Generate(context.Background(), Request{
		System:    "You are a patient drawing coach.",
		Prompt:    "The learner scored 0.58 on the ellipse drill.",
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(reply.Content) != feedback {
		t.Fatalf("unexpected content: %s", reply.Content)
	}
	if reply.Usage.InputTokens != 90 || reply.Usage.OutputTokens != 35 {
		t.Fatalf("unexpected usage: %+v", reply.Usage)
	}
	if reply.Truncated {
		t.Fatal("reply should not be truncated")
	}
}

func TestOpenAIProvider_TruncatedStructuredReply(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(openaiCompletion(`{"summary":"The curve work is`, "length"))
	}

	p := stubOpenAI(t, handler)
	_, err := p.Generate(context.Background(), Request{
		Prompt:    "Review this attempt.",
		Schema:    feedbackTestSchema(),
		MaxTokens: 16,
	})
	if err == nil {
		t.Fatal("expected error")
	}
	var truncated *ErrTruncated
	if !errors.As(err, &truncated) {
		t.Fatalf("expected ErrTruncated, got: %T (%v)", err, err)
	}
}

func TestOpenAIProvider_RateLimit(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"type":    "tokens",
				"message": "Rate limit exceeded",
				"code":    "rate_limit_exceeded",
			},
		})
	}

	p := stubOpenAI(t, handler)
	_, err := p.Generate(context.Background(), Request{Prompt: "review", MaxTokens: 100})
	if err == nil {
		t.Fatal("expected error")
	}
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T (%v)", err, err)
	}
}

func TestOpenAIProvider_ServerError(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"type":    "server_error",
				"message": "Internal server error",
			},
		})
	}

	p := stubOpenAI(t, handler)
	_, err := p.Generate(context.Background(), Request{Prompt: "review", MaxTokens: 100})
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T (%v)", err, err)
	}
}

func TestOpenAIProvider_ModelID(t *testing.T) {
	p := &OpenAIProvider{model: "gpt-4o-mini"}
	if p.ModelID() != "gpt-4o-mini" {
		t.Fatalf("unexpected model ID: %q", p.ModelID())
	}
}

func TestOpenAIProvider_BaseURLOverride(t *testing.T) {
	cfg := OpenAIConfig{
		APIKey:  "test-key",
		Model:   "gpt-4o",
		BaseURL: "https://llm-proxy.internal/v1",
	}
	p, err := NewOpenAIProvider(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "gpt-4o" {
		t.Fatalf("unexpected model ID: %q", p.ModelID())
	}
}
