package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func fastRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 1 * time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

var steadyReply = json.RawMessage(`{"summary":"steady"}`)

func TestRetry_FirstAttemptSucceeds(t *testing.T) {
	mock := NewMockProvider(MockReply{Content: steadyReply})
	p := WithRetry(mock, fastRetryConfig())

	reply, err := p.Generate(context.Background(), Request{Prompt: "review"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(reply.Content) != string(steadyReply) {
		t.Fatalf("unexpected content: %s", reply.Content)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestRetry_OutageThenSuccess(t *testing.T) {
	mock := NewMockProvider(
		MockReply{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockReply{Content: steadyReply},
	)
	p := WithRetry(mock, fastRetryConfig())

	reply, err := p.Generate(context.Background(), Request{Prompt: "review"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(reply.Content) != string(steadyReply) {
		t.Fatalf("unexpected content: %s", reply.Content)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_GivesUpAfterMaxAttempts(t *testing.T) {
	mock := NewMockProvider(
		MockReply{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockReply{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockReply{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
	)
	p := WithRetry(mock, fastRetryConfig())

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}
	if mock.CallCount() != 3 {
		t.Fatalf("expected 3 calls, got %d", mock.CallCount())
	}
}

func TestRetry_TruncationNotRetried(t *testing.T) {
	mock := NewMockProvider(
		MockReply{Err: &ErrTruncated{Content: json.RawMessage(`{"summary":"Good start on the`)}},
		MockReply{Content: steadyReply},
	)
	p := WithRetry(mock, fastRetryConfig())

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	var truncated *ErrTruncated
	if !errors.As(err, &truncated) {
		t.Fatalf("expected ErrTruncated, got: %T", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call (no retry), got %d", mock.CallCount())
	}
}

func TestRetry_BadReplyRetriedOnce(t *testing.T) {
	mock := NewMockProvider(
		MockReply{Err: &ErrInvalidResponse{Content: json.RawMessage(`oops`), Err: errors.New("bad")}},
		MockReply{Err: &ErrInvalidResponse{Content: json.RawMessage(`oops`), Err: errors.New("bad")}},
		MockReply{Content: steadyReply}, // never reached
	)
	p := WithRetry(mock, fastRetryConfig())

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_CanceledContext(t *testing.T) {
	mock := NewMockProvider(
		MockReply{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockReply{Content: steadyReply},
	)
	p := WithRetry(mock, fastRetryConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Generate(ctx, Request{}); err == nil {
		t.Fatal("expected error")
	}
}

func TestRetry_RateLimitWaitIsHonored(t *testing.T) {
	mock := NewMockProvider(
		MockReply{Err: &ErrRateLimit{RetryAfter: 1 * time.Millisecond, Err: errors.New("429")}},
		MockReply{Content: steadyReply},
	)
	p := WithRetry(mock, fastRetryConfig())

	reply, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(reply.Content) != string(steadyReply) {
		t.Fatalf("unexpected content: %s", reply.Content)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_ModelIDDelegates(t *testing.T) {
	p := WithRetry(NewMockProvider(), fastRetryConfig())
	if p.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", p.ModelID())
	}
}
