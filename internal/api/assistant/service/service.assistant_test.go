// Package assistantsvc - Test trợ lý chat: persona hệ thống luôn đứng đầu hội thoại.
package assistantsvc

import (
	"context"
	"errors"
	"testing"

	"adcraft/internal/provider"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeText struct {
	received []provider.Message
	reply    string
	err      error
}

func (f *fakeText) Complete(ctx context.Context, messages []provider.Message) (string, error) {
	f.received = messages
	return f.reply, f.err
}

func (f *fakeText) ModelName() string { return "fake-model" }

func TestChat_PrependsSystemPersona(t *testing.T) {
	text := &fakeText{reply: "Try a morning-rush discount hook."}
	s := NewAssistantService(text)

	reply, err := s.Chat(context.Background(), []provider.Message{
		{Role: provider.RoleUser, Content: "Give me a hook for my coffee shop"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Try a morning-rush discount hook.", reply)

	require.Len(t, text.received, 2)
	assert.Equal(t, provider.RoleSystem, text.received[0].Role)
	assert.Contains(t, text.received[0].Content, "Shraddha")
	assert.Contains(t, text.received[0].Content, "advertising assistant")
	assert.Equal(t, provider.RoleUser, text.received[1].Role)
}

func TestChat_KeepsConversationOrder(t *testing.T) {
	text := &fakeText{reply: "ok"}
	s := NewAssistantService(text)

	_, err := s.Chat(context.Background(), []provider.Message{
		{Role: provider.RoleUser, Content: "first"},
		{Role: provider.RoleAssistant, Content: "second"},
		{Role: provider.RoleUser, Content: "third"},
	})
	require.NoError(t, err)

	require.Len(t, text.received, 4)
	assert.Equal(t, "first", text.received[1].Content)
	assert.Equal(t, "second", text.received[2].Content)
	assert.Equal(t, "third", text.received[3].Content)
}

func TestChat_ProviderErrorPropagated(t *testing.T) {
	text := &fakeText{err: errors.New("provider down")}
	s := NewAssistantService(text)

	_, err := s.Chat(context.Background(), []provider.Message{
		{Role: provider.RoleUser, Content: "hello"},
	})
	assert.Error(t, err)
}
