package handler

import (
	"errors"
	"net/http"

	"bearworld/internal/http-api/dto"
	"bearworld/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type AIHandler struct {
	chatService service.ChatService
}

func NewAIHandler(chatService service.ChatService) *AIHandler {
	return &AIHandler{chatService: chatService}
}

func (h *AIHandler) Chat(c *gin.Context) {
	var req dto.ChatRequest
	bindJSON(c, &req)

	payload, err := h.chatService.Chat(c.Request.Context(), c.GetString("userID"), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmptyMessage) {
			fail(c, http.StatusBadRequest, "消息不能为空")
			return
		}
		fail(c, http.StatusInternalServerError, "服务器错误")
		return
	}
	ok(c, http.StatusOK, payload)
}

// Config handles GET /ai/config — provider metadata only, never credentials.
func (h *AIHandler) Config(c *gin.Context) {
	ok(c, http.StatusOK, h.chatService.ProviderInfo())
}
