package handler

import (
	"errors"
	"net/http"
	"strconv"

	"bearworld/internal/http-api/dto"
	"bearworld/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projectService service.ProjectService
}

func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// List handles GET /projects?featured=1
func (h *ProjectHandler) List(c *gin.Context) {
	featuredOnly := c.Query("featured") == "1"
	projects, err := h.projectService.List(c.Request.Context(), featuredOnly)
	if err != nil {
		fail(c, http.StatusInternalServerError, "服务器错误")
		return
	}
	ok(c, http.StatusOK, projects)
}

func (h *ProjectHandler) Get(c *gin.Context) {
	project, err := h.projectService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			fail(c, http.StatusNotFound, "项目不存在")
			return
		}
		fail(c, http.StatusInternalServerError, "服务器错误")
		return
	}
	ok(c, http.StatusOK, project)
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req dto.CreateProjectRequest
	bindJSON(c, &req)

	if req.Title == "" {
		fail(c, http.StatusBadRequest, "请填写完整信息")
		return
	}

	project, err := h.projectService.Create(c.Request.Context(), &req)
	if err != nil {
		fail(c, http.StatusInternalServerError, "服务器错误")
		return
	}
	ok(c, http.StatusOK, project)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("slug"), 10, 64)
	if err != nil {
		fail(c, http.StatusNotFound, "项目不存在")
		return
	}

	var req dto.UpdateProjectRequest
	bindJSON(c, &req)
	if req.Title == "" {
		fail(c, http.StatusBadRequest, "请填写完整信息")
		return
	}

	if err := h.projectService.Update(c.Request.Context(), id, &req); err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			fail(c, http.StatusNotFound, "项目不存在")
			return
		}
		fail(c, http.StatusInternalServerError, "服务器错误")
		return
	}
	okMessage(c, http.StatusOK, "更新成功")
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("slug"), 10, 64)
	if err != nil {
		fail(c, http.StatusNotFound, "项目不存在")
		return
	}

	if err := h.projectService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			fail(c, http.StatusNotFound, "项目不存在")
			return
		}
		fail(c, http.StatusInternalServerError, "服务器错误")
		return
	}
	okMessage(c, http.StatusOK, "删除成功")
}
