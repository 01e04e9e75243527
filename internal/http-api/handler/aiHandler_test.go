package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bearworld/internal/http-api/dto"
	"bearworld/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockChatService struct {
	mock.Mock
}

func (m *MockChatService) Chat(ctx context.Context, userID string, req *dto.ChatRequest) (*dto.ChatPayload, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ChatPayload), args.Error(1)
}

func (m *MockChatService) ProviderInfo() dto.ProviderInfoPayload {
	args := m.Called()
	return args.Get(0).(dto.ProviderInfoPayload)
}

func TestChat_Success(t *testing.T) {
	mockChat := new(MockChatService)
	handler := NewAIHandler(mockChat)
	router := setupRouter()
	router.POST("/ai/chat", func(c *gin.Context) {
		c.Set("userID", "user-123")
		handler.Chat(c)
	})

	mockChat.On("Chat", mock.Anything, "user-123", mock.Anything).
		Return(&dto.ChatPayload{Response: "你好！我是大熊的AI助手", Source: "mock"}, nil)

	w := postJSON(router, "/ai/chat", dto.ChatRequest{Message: "你好"})

	assert.Equal(t, http.StatusOK, w.Code)

	var response Envelope
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.True(t, response.Success)

	data := response.Data.(map[string]any)
	assert.Equal(t, "mock", data["source"])
	assert.NotEmpty(t, data["response"])

	mockChat.AssertExpectations(t)
}

func TestChat_EmptyMessage(t *testing.T) {
	mockChat := new(MockChatService)
	handler := NewAIHandler(mockChat)
	router := setupRouter()
	router.POST("/ai/chat", handler.Chat)

	mockChat.On("Chat", mock.Anything, "", mock.Anything).
		Return(nil, service.ErrEmptyMessage)

	w := postJSON(router, "/ai/chat", dto.ChatRequest{Message: "   "})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response Envelope
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "消息不能为空", response.Message)
}

func TestAIConfig(t *testing.T) {
	mockChat := new(MockChatService)
	handler := NewAIHandler(mockChat)
	router := setupRouter()
	router.GET("/ai/config", handler.Config)

	mockChat.On("ProviderInfo").Return(dto.ProviderInfoPayload{
		Current:     "mock",
		Name:        "模拟响应",
		Description: "返回预设的模拟响应，完全免费",
		Enabled:     true,
	})

	req, _ := http.NewRequest("GET", "/ai/config", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response Envelope
	json.Unmarshal(w.Body.Bytes(), &response)
	data := response.Data.(map[string]any)
	assert.Equal(t, "mock", data["current"])
	assert.Equal(t, true, data["enabled"])
}
