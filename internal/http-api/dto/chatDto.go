package dto

// ChatTurn is one prior exchange forwarded with an AI chat request
type ChatTurn struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// ChatRequest for POST /ai/chat
type ChatRequest struct {
	Message string     `json:"message"`
	History []ChatTurn `json:"history"`
}

// ChatPayload carries the AI reply; Source says which provider answered
// ("deepseek" or "mock" after a fallback).
type ChatPayload struct {
	Response string `json:"response"`
	Source   string `json:"source"`
}

// ProviderInfoPayload for GET /ai/config — display metadata only, no secrets
type ProviderInfoPayload struct {
	Current     string `json:"current"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Enabled     bool   `json:"enabled"`
}
