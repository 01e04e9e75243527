package handler

import (
	"errors"
	"net/http"

	"bearworld/internal/http-api/dto"
	"bearworld/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	messageService service.MessageService
}

func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// List handles GET /messages, no auth required.
func (h *MessageHandler) List(c *gin.Context) {
	messages, err := h.messageService.ListRecent(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, "服务器错误")
		return
	}
	ok(c, http.StatusOK, messages)
}

func (h *MessageHandler) Create(c *gin.Context) {
	var req dto.CreateMessageRequest
	bindJSON(c, &req)

	message, err := h.messageService.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrIncompleteMessage) {
			fail(c, http.StatusBadRequest, "请填写完整信息")
			return
		}
		fail(c, http.StatusInternalServerError, "服务器错误")
		return
	}
	okMessageData(c, http.StatusOK, "留言成功", message)
}
