package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockReply is one scripted answer for the MockProvider.
type MockReply struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider replays scripted replies in order and records every
// request it sees. An exhausted script answers with
// ErrProviderUnavailable, which doubles as the "coach offline" path in
// tests.
type MockProvider struct {
	mu       sync.Mutex
	script   []MockReply
	Requests []Request
}

// NewMockProvider builds a provider that will play back the given
// replies.
func NewMockProvider(script ...MockReply) *MockProvider {
	return &MockProvider{script: script}
}

// Enqueue appends a reply to the script.
func (m *MockProvider) Enqueue(r MockReply) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, r)
}

func (m *MockProvider) Generate(_ context.Context, req Request) (*Reply, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Requests = append(m.Requests, req)

	if len(m.script) == 0 {
		return nil, &ErrProviderUnavailable{}
	}
	next := m.script[0]
	m.script = m.script[1:]

	if next.Err != nil {
		return nil, next.Err
	}
	return &Reply{
		Content: next.Content,
		Usage:   next.Usage,
		Model:   "mock",
	}, nil
}

func (m *MockProvider) ModelID() string { return "mock" }

// CallCount reports how many Generate calls have been made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Requests)
}
