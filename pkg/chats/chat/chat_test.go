package chat_test

import (
	"testing"

	"github.com/germanamz/promptour/pkg/chats/chat"
	"github.com/germanamz/promptour/pkg/chats/message"
	"github.com/germanamz/promptour/pkg/chats/role"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroValueIsUsable(t *testing.T) {
	var c chat.Chat

	assert.Equal(t, 0, c.Len())

	_, ok := c.Last()
	assert.False(t, ok)

	c.Append(message.New(role.User, "hi"))
	assert.Equal(t, 1, c.Len())
}

func TestAppendAndLast(t *testing.T) {
	c := chat.New(message.New(role.User, "first"))
	c.Append(message.New(role.Assistant, "second"))

	last, ok := c.Last()
	require.True(t, ok)
	assert.Equal(t, role.Assistant, last.Role)
	assert.Equal(t, "second", last.Text)
}

func TestMessagesReturnsCopy(t *testing.T) {
	c := chat.New(message.New(role.User, "hi"))

	msgs := c.Messages()
	msgs[0].Text = "mutated"

	orig, ok := c.Last()
	require.True(t, ok)
	assert.Equal(t, "hi", orig.Text)
}

func TestSystemPrompt(t *testing.T) {
	c := chat.New(
		message.New(role.System, "You are terse."),
		message.New(role.User, "hi"),
	)

	assert.Equal(t, "You are terse.", c.SystemPrompt())
}

func TestSystemPromptEmptyWhenAbsent(t *testing.T) {
	c := chat.New(message.New(role.User, "hi"))

	assert.Empty(t, c.SystemPrompt())
}
