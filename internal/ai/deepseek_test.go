package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeepSeekResponder_Success(t *testing.T) {
	var captured chatCompletionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "机器学习是..."}},
			},
		})
	}))
	defer srv.Close()

	r := NewDeepSeekResponder("sk-test", srv.URL, "deepseek-chat")
	history := []Message{{Role: "user", Content: "之前的问题"}, {Role: "assistant", Content: "之前的回答"}}

	got, err := r.Respond(context.Background(), "什么是机器学习", history)
	require.NoError(t, err)
	assert.Equal(t, "机器学习是...", got)

	// system prompt + history + the new user turn
	require.Len(t, captured.Messages, 4)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "什么是机器学习", captured.Messages[3].Content)
	assert.Equal(t, "deepseek-chat", captured.Model)
	assert.Equal(t, 1024, captured.MaxTokens)
}

func TestDeepSeekResponder_InsufficientBalance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{
				"message": "Insufficient Balance",
				"type":    "invalid_request_error",
			},
		})
	}))
	defer srv.Close()

	r := NewDeepSeekResponder("sk-test", srv.URL, "deepseek-chat")

	_, err := r.Respond(context.Background(), "你好", nil)
	assert.ErrorIs(t, err, ErrInsufficientBalance)
}

func TestDeepSeekResponder_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"message": "boom", "type": "server_error"},
		})
	}))
	defer srv.Close()

	r := NewDeepSeekResponder("sk-test", srv.URL, "deepseek-chat")

	_, err := r.Respond(context.Background(), "你好", nil)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInsufficientBalance)
}

func TestDeepSeekResponder_Info(t *testing.T) {
	assert.True(t, NewDeepSeekResponder("sk-test", "https://api.deepseek.com", "deepseek-chat").Info().Enabled)
	assert.False(t, NewDeepSeekResponder("", "https://api.deepseek.com", "deepseek-chat").Info().Enabled)
}
