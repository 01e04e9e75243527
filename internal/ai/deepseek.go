package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	// Rate limiting: keep well under the provider's per-minute quota
	deepseekRateLimit = 2 // requests per second
	deepseekRateBurst = 5

	systemPrompt = `你是一位专业、友好、有耐心的AI助手，名字叫"大熊的AI助手"。

你的特点：
1. 回答问题时清晰、准确、有条理
2. 擅长用通俗易懂的语言解释复杂概念
3. 乐于帮助用户解决问题
4. 适当使用emoji让对话更生动
5. 如果不确定的问题，会诚实告知

请用中文回答用户的问题。`
)

// ErrInsufficientBalance means the account cannot pay for the request; the
// caller should fall back to the template backend.
var ErrInsufficientBalance = errors.New("deepseek account balance insufficient")

// DeepSeekResponder calls the DeepSeek chat completions API with rate
// limiting.
type DeepSeekResponder struct {
	apiKey      string
	baseURL     string
	model       string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
}

func NewDeepSeekResponder(apiKey, baseURL, model string) *DeepSeekResponder {
	return &DeepSeekResponder{
		apiKey:      apiKey,
		baseURL:     baseURL,
		model:       model,
		rateLimiter: rate.NewLimiter(rate.Limit(deepseekRateLimit), deepseekRateBurst),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type chatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error,omitempty"`
}

func (d *DeepSeekResponder) Respond(ctx context.Context, message string, history []Message) (string, error) {
	if err := d.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}

	messages := make([]Message, 0, len(history)+2)
	messages = append(messages, Message{Role: "system", Content: systemPrompt})
	messages = append(messages, history...)
	messages = append(messages, Message{Role: "user", Content: message})

	body, err := json.Marshal(chatCompletionRequest{
		Model:       d.model,
		Messages:    messages,
		MaxTokens:   1024,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+d.apiKey)

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("deepseek request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(raw, &completion); err != nil {
		return "", fmt.Errorf("failed to decode response (status %d): %w", resp.StatusCode, err)
	}

	if completion.Error != nil {
		// The provider reports an exhausted balance as an invalid request
		if completion.Error.Type == "invalid_request_error" || completion.Error.Code == "insufficient_balance" {
			return "", ErrInsufficientBalance
		}
		return "", fmt.Errorf("deepseek error: %s", completion.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("deepseek returned status %d", resp.StatusCode)
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("deepseek returned no choices")
	}
	return completion.Choices[0].Message.Content, nil
}

func (d *DeepSeekResponder) Info() ProviderInfo {
	return ProviderInfo{
		Current:     "deepseek",
		Name:        "DeepSeek",
		Description: "DeepSeek 对话模型，性价比高",
		Enabled:     d.apiKey != "",
	}
}
