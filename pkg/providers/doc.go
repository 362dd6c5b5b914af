// Package providers groups the concrete LLM completion adapters.
//
// It is organized into sub-packages:
//   - [github.com/germanamz/promptour/pkg/providers/openai] — OpenAI Chat Completions API
//   - [github.com/germanamz/promptour/pkg/providers/anthropic] — Anthropic Messages API
//
// This package contains no provider-specific code — shared plumbing lives in
// [github.com/germanamz/promptour/pkg/modeladapter].
package providers
