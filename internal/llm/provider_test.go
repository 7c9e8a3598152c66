package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProvider_PlaysScriptInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockReply{Content: json.RawMessage(`{"summary":"first"}`), Usage: Usage{InputTokens: 10, OutputTokens: 5}},
		MockReply{Content: json.RawMessage(`{"summary":"second"}`)},
	)

	first, err := mock.Generate(context.Background(), Request{Prompt: "review attempt one"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(first.Content) != `{"summary":"first"}` {
		t.Fatalf("unexpected first reply: %s", first.Content)
	}
	if first.Usage.InputTokens != 10 || first.Usage.OutputTokens != 5 {
		t.Fatalf("unexpected usage: %+v", first.Usage)
	}
	if first.Truncated {
		t.Fatal("scripted replies are never truncated")
	}

	second, err := mock.Generate(context.Background(), Request{Prompt: "review attempt two"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(second.Content) != `{"summary":"second"}` {
		t.Fatalf("unexpected second reply: %s", second.Content)
	}
}

func TestMockProvider_ExhaustedScript(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error from exhausted script")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestMockProvider_RecordsRequests(t *testing.T) {
	mock := NewMockProvider(MockReply{Content: json.RawMessage(`{}`)})

	req := Request{
		System: "You are a drawing coach.",
		Prompt: "The learner scored 0.65 on ghosted lines.",
	}
	_, _ = mock.Generate(context.Background(), req)

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	if mock.Requests[0].System != "You are a drawing coach." {
		t.Fatalf("unexpected system prompt: %q", mock.Requests[0].System)
	}
	if mock.Requests[0].Prompt != req.Prompt {
		t.Fatalf("unexpected prompt: %q", mock.Requests[0].Prompt)
	}
}

func TestMockProvider_ScriptedError(t *testing.T) {
	mock := NewMockProvider(MockReply{Err: &ErrRateLimit{RetryAfter: 0}})

	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T", err)
	}
}

func TestMockProvider_Enqueue(t *testing.T) {
	mock := NewMockProvider()
	mock.Enqueue(MockReply{Content: json.RawMessage(`{"summary":"queued"}`)})

	reply, err := mock.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(reply.Content) != `{"summary":"queued"}` {
		t.Fatalf("unexpected reply: %s", reply.Content)
	}
}

func TestMockProvider_ModelID(t *testing.T) {
	if NewMockProvider().ModelID() != "mock" {
		t.Fatal("expected model ID 'mock'")
	}
}

func TestPurposeLabel(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("expected 'unknown', got %q", p)
	}

	ctx = WithPurpose(ctx, "attempt-feedback")
	if p := PurposeFrom(ctx); p != "attempt-feedback" {
		t.Fatalf("expected 'attempt-feedback', got %q", p)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "anthropic without key",
			cfg:     Config{Provider: "anthropic"},
			wantErr: true,
		},
		{
			name:    "anthropic with key",
			cfg:     Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}},
			wantErr: false,
		},
		{
			name:    "openai without key",
			cfg:     Config{Provider: "openai"},
			wantErr: true,
		},
		{
			name:    "gemini with key",
			cfg:     Config{Provider: "gemini", Gemini: GeminiConfig{APIKey: "g-test"}},
			wantErr: false,
		},
		{
			name:    "mock needs no key",
			cfg:     Config{Provider: "mock"},
			wantErr: false,
		},
		{
			name:    "unknown provider",
			cfg:     Config{Provider: "bard"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
