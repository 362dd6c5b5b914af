package message_test

import (
	"testing"

	"github.com/germanamz/promptour/pkg/chats/message"
	"github.com/germanamz/promptour/pkg/chats/role"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	m := message.New(role.User, "hello")

	assert.Equal(t, role.User, m.Role)
	assert.Equal(t, "hello", m.Text)
	assert.False(t, m.IsZero())
}

func TestIsZero(t *testing.T) {
	assert.True(t, message.Message{}.IsZero())
	assert.False(t, message.New(role.Assistant, "").IsZero())
}

func TestRoleValid(t *testing.T) {
	assert.True(t, role.System.Valid())
	assert.True(t, role.User.Valid())
	assert.True(t, role.Assistant.Valid())
	assert.False(t, role.Role("narrator").Valid())
}
