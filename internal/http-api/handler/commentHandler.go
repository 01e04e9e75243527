package handler

import (
	"errors"
	"net/http"
	"strconv"

	"bearworld/internal/http-api/dto"
	"bearworld/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) Create(c *gin.Context) {
	var req dto.CreateCommentRequest
	bindJSON(c, &req)

	comment, err := h.commentService.Create(c.Request.Context(), c.GetString("userID"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyComment), errors.Is(err, service.ErrCommentTarget):
			fail(c, http.StatusBadRequest, "请填写完整信息")
		default:
			fail(c, http.StatusInternalServerError, "服务器错误")
		}
		return
	}
	okMessageData(c, http.StatusOK, "评论成功", comment)
}

func (h *CommentHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusNotFound, "评论不存在")
		return
	}

	if err := h.commentService.Delete(c.Request.Context(), id, c.GetString("userID")); err != nil {
		if errors.Is(err, service.ErrCommentNotOwned) {
			fail(c, http.StatusNotFound, "评论不存在")
			return
		}
		fail(c, http.StatusInternalServerError, "服务器错误")
		return
	}
	okMessage(c, http.StatusOK, "删除成功")
}
