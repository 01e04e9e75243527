package handler

import (
	"errors"
	"net/http"

	"bearworld/internal/http-api/dto"
	"bearworld/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type ConfigHandler struct {
	configService service.ConfigService
}

func NewConfigHandler(configService service.ConfigService) *ConfigHandler {
	return &ConfigHandler{configService: configService}
}

func (h *ConfigHandler) List(c *gin.Context) {
	entries, err := h.configService.List(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, "服务器错误")
		return
	}
	ok(c, http.StatusOK, entries)
}

func (h *ConfigHandler) Get(c *gin.Context) {
	value, err := h.configService.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		if errors.Is(err, service.ErrConfigNotFound) {
			fail(c, http.StatusNotFound, "配置不存在")
			return
		}
		fail(c, http.StatusInternalServerError, "服务器错误")
		return
	}
	ok(c, http.StatusOK, gin.H{"key": c.Param("key"), "value": value})
}

func (h *ConfigHandler) Set(c *gin.Context) {
	var req dto.SetConfigRequest
	bindJSON(c, &req)

	if req.Key == "" {
		fail(c, http.StatusBadRequest, "请填写完整信息")
		return
	}

	if err := h.configService.Set(c.Request.Context(), req.Key, req.Value); err != nil {
		fail(c, http.StatusInternalServerError, "服务器错误")
		return
	}
	okMessage(c, http.StatusOK, "更新成功")
}
