// Package ai provides the chat backends for the assistant feature. A
// Responder turns a user message plus conversation history into a reply;
// implementations cover the free canned-response mode and the DeepSeek API.
package ai

import "context"

// Message is one turn of a conversation. Role is "user", "assistant" or
// "system".
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ProviderInfo describes the currently configured backend.
type ProviderInfo struct {
	Current     string `json:"current"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Enabled     bool   `json:"enabled"`
}

// Responder generates assistant replies.
type Responder interface {
	Respond(ctx context.Context, message string, history []Message) (string, error)
	Info() ProviderInfo
}
