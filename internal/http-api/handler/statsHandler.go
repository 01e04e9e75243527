package handler

import (
	"net/http"

	"bearworld/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsService service.StatsService
}

func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Get handles GET /stats
func (h *StatsHandler) Get(c *gin.Context) {
	stats, err := h.statsService.SiteStats(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, "服务器错误")
		return
	}
	ok(c, http.StatusOK, stats)
}
