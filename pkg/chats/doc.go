// Package chats provides a provider-agnostic data model for LLM chat interactions.
//
// It is organized into sub-packages:
//   - [github.com/germanamz/promptour/pkg/chats/role] — conversation roles (system, user, assistant)
//   - [github.com/germanamz/promptour/pkg/chats/message] — a single text turn with a role
//   - [github.com/germanamz/promptour/pkg/chats/chat] — mutable conversation container
//
// No provider or API code is included — chats is a foundation layer
// that adapters can build on.
package chats
