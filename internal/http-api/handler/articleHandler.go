package handler

import (
	"errors"
	"net/http"
	"strconv"

	"bearworld/internal/http-api/dto"
	"bearworld/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleService service.ArticleService
	commentService service.CommentService
}

func NewArticleHandler(articleService service.ArticleService, commentService service.CommentService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, commentService: commentService}
}

// List handles GET /articles?category=&search=&page=&limit=
func (h *ArticleHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	list, err := h.articleService.List(c.Request.Context(), c.Query("category"), c.Query("search"), page, limit)
	if err != nil {
		fail(c, http.StatusInternalServerError, "服务器错误")
		return
	}
	ok(c, http.StatusOK, list)
}

// Get handles GET /articles/:slug. Reading an article bumps its view counter
// and returns its comments inline.
func (h *ArticleHandler) Get(c *gin.Context) {
	article, err := h.articleService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			fail(c, http.StatusNotFound, "文章不存在")
			return
		}
		fail(c, http.StatusInternalServerError, "服务器错误")
		return
	}

	if err := h.articleService.RecordView(c.Request.Context(), article.ID); err == nil {
		article.Views++
	}

	comments, err := h.commentService.ListForArticle(c.Request.Context(), article.ID)
	if err != nil {
		fail(c, http.StatusInternalServerError, "服务器错误")
		return
	}

	ok(c, http.StatusOK, dto.ArticleDetailResponse{Article: *article, Comments: comments})
}

func (h *ArticleHandler) Create(c *gin.Context) {
	var req dto.CreateArticleRequest
	bindJSON(c, &req)

	if req.Title == "" || req.Content == "" {
		fail(c, http.StatusBadRequest, "请填写完整信息")
		return
	}

	article, err := h.articleService.Create(c.Request.Context(), c.GetString("userID"), &req)
	if err != nil {
		fail(c, http.StatusInternalServerError, "服务器错误")
		return
	}
	ok(c, http.StatusOK, article)
}

// Update handles PUT /articles/:slug where the wildcard carries a numeric id.
func (h *ArticleHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("slug"), 10, 64)
	if err != nil {
		fail(c, http.StatusNotFound, "文章不存在")
		return
	}

	var req dto.UpdateArticleRequest
	bindJSON(c, &req)
	if req.Title == "" || req.Content == "" {
		fail(c, http.StatusBadRequest, "请填写完整信息")
		return
	}

	if err := h.articleService.Update(c.Request.Context(), id, c.GetString("userID"), &req); err != nil {
		if errors.Is(err, service.ErrNotArticleOwner) {
			fail(c, http.StatusNotFound, "文章不存在")
			return
		}
		fail(c, http.StatusInternalServerError, "服务器错误")
		return
	}
	okMessage(c, http.StatusOK, "更新成功")
}

func (h *ArticleHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("slug"), 10, 64)
	if err != nil {
		fail(c, http.StatusNotFound, "文章不存在")
		return
	}

	if err := h.articleService.Delete(c.Request.Context(), id, c.GetString("userID")); err != nil {
		if errors.Is(err, service.ErrNotArticleOwner) {
			fail(c, http.StatusNotFound, "文章不存在")
			return
		}
		fail(c, http.StatusInternalServerError, "服务器错误")
		return
	}
	okMessage(c, http.StatusOK, "删除成功")
}

// Like handles POST /articles/:slug/like; no login required.
func (h *ArticleHandler) Like(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("slug"), 10, 64)
	if err != nil {
		fail(c, http.StatusNotFound, "文章不存在")
		return
	}

	likes, err := h.articleService.Like(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			fail(c, http.StatusNotFound, "文章不存在")
			return
		}
		fail(c, http.StatusInternalServerError, "服务器错误")
		return
	}
	okMessageData(c, http.StatusOK, "点赞成功", dto.LikePayload{Likes: likes})
}
