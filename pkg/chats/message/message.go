// Package message defines the Message type used in LLM conversations.
package message

import "github.com/germanamz/promptour/pkg/chats/role"

// Message represents a single text turn in a conversation.
// It is a value type that copies cheaply.
type Message struct {
	Role role.Role
	Text string
}

// New creates a message with the given role and text.
func New(r role.Role, text string) Message {
	return Message{Role: r, Text: text}
}

// IsZero reports whether the message carries neither role nor text.
func (m Message) IsZero() bool {
	return m.Role == "" && m.Text == ""
}
