package handler

import (
	"errors"
	"net/http"

	"bearworld/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	searchService service.SearchService
}

func NewSearchHandler(searchService service.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// Search handles GET /search?q=&type=
func (h *SearchHandler) Search(c *gin.Context) {
	results, err := h.searchService.Search(c.Request.Context(), c.Query("q"), c.DefaultQuery("type", "all"))
	if err != nil {
		if errors.Is(err, service.ErrSearchTermTooShort) {
			fail(c, http.StatusBadRequest, "关键词至少2个字符")
			return
		}
		fail(c, http.StatusInternalServerError, "服务器错误")
		return
	}
	ok(c, http.StatusOK, results)
}
