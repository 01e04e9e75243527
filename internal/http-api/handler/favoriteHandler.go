package handler

import (
	"errors"
	"net/http"
	"strconv"

	"bearworld/internal/http-api/dto"
	"bearworld/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	favoriteService service.FavoriteService
}

func NewFavoriteHandler(favoriteService service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

func (h *FavoriteHandler) List(c *gin.Context) {
	favorites, err := h.favoriteService.List(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		fail(c, http.StatusInternalServerError, "服务器错误")
		return
	}
	ok(c, http.StatusOK, favorites)
}

func (h *FavoriteHandler) Add(c *gin.Context) {
	var req dto.CreateFavoriteRequest
	bindJSON(c, &req)

	favorite, err := h.favoriteService.Add(c.Request.Context(), c.GetString("userID"), &req)
	if err != nil {
		if errors.Is(err, service.ErrFavoriteTarget) {
			fail(c, http.StatusBadRequest, "请填写完整信息")
			return
		}
		fail(c, http.StatusInternalServerError, "服务器错误")
		return
	}
	okMessageData(c, http.StatusOK, "收藏成功", favorite)
}

func (h *FavoriteHandler) Remove(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusNotFound, "收藏不存在")
		return
	}

	if err := h.favoriteService.Remove(c.Request.Context(), id, c.GetString("userID")); err != nil {
		if errors.Is(err, service.ErrFavoriteNotFound) {
			fail(c, http.StatusNotFound, "收藏不存在")
			return
		}
		fail(c, http.StatusInternalServerError, "服务器错误")
		return
	}
	okMessage(c, http.StatusOK, "删除成功")
}
