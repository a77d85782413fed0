package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig() ResilientConfig {
	cfg := DefaultResilientConfig()
	cfg.InitialDelay = time.Millisecond
	cfg.MaxDelay = 2 * time.Millisecond
	return cfg
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(&StatusError{Code: 429}))
	assert.True(t, IsRetryable(&StatusError{Code: 503}))
	assert.False(t, IsRetryable(&StatusError{Code: 400}))
	assert.False(t, IsRetryable(errors.New("boom")))
}

func TestResilientProvider_RetriesServerErrors(t *testing.T) {
	mock := NewMockProvider(
		MockReply{Err: &StatusError{Provider: "mock", Code: 502, Err: errors.New("bad gateway")}},
		MockReply{Text: "a stack is LIFO"},
	)
	p := NewResilientProvider(mock, fastConfig())

	text, err := p.Chat(context.Background(), []Message{{Role: RoleUser, Content: "why"}})
	require.NoError(t, err)
	assert.Equal(t, "a stack is LIFO", text)
	assert.Equal(t, 2, mock.CallCount())
}

func TestResilientProvider_DoesNotRetryClientErrors(t *testing.T) {
	mock := NewMockProvider(
		MockReply{Err: &StatusError{Provider: "mock", Code: 401, Err: errors.New("bad key")}},
		MockReply{Text: "unused"},
	)
	p := NewResilientProvider(mock, fastConfig())

	_, err := p.Chat(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, 1, mock.CallCount())
}

func TestSplitSystem(t *testing.T) {
	system, rest := splitSystem([]Message{
		{Role: RoleSystem, Content: "be brief"},
		{Role: RoleUser, Content: "hi"},
		{Role: RoleSystem, Content: "use python"},
	})
	assert.Equal(t, "be brief\n\nuse python", system)
	assert.Equal(t, []Message{{Role: RoleUser, Content: "hi"}}, rest)
}

func TestToOpenAIMessages(t *testing.T) {
	out := toOpenAIMessages([]Message{{Role: RoleSystem, Content: "s"}, {Role: RoleAssistant, Content: "a"}, {Role: "other", Content: "u"}})
	require.Len(t, out, 3)
	assert.Equal(t, "system", out[0].Role)
	assert.Equal(t, "assistant", out[1].Role)
	assert.Equal(t, "user", out[2].Role)
}
