package llm

import (
	"context"
	"sync"
)

// MockProvider replays canned replies in order and records every call.
type MockProvider struct {
	mu      sync.Mutex
	replies []MockReply
	Calls   [][]Message
}

type MockReply struct {
	Text string
	Err  error
}

func NewMockProvider(replies ...MockReply) *MockProvider {
	return &MockProvider{replies: replies}
}

func (m *MockProvider) Name() string { return "mock" }

func (m *MockProvider) Chat(_ context.Context, messages []Message) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, messages)
	if len(m.replies) == 0 {
		return "", &StatusError{Provider: "mock", Code: 503, Err: ErrDisabled}
	}
	r := m.replies[0]
	m.replies = m.replies[1:]
	return r.Text, r.Err
}

func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
