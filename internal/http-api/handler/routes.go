package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handlers bundles every endpoint group for route registration.
type Handlers struct {
	Auth     *AuthHandler
	Article  *ArticleHandler
	Project  *ProjectHandler
	Comment  *CommentHandler
	Message  *MessageHandler
	Favorite *FavoriteHandler
	Search   *SearchHandler
	Stats    *StatsHandler
	AI       *AIHandler
	Config   *ConfigHandler
}

// route is one row of the declarative table below.
type route struct {
	method  string
	path    string
	auth    bool // requires a valid token
	handler gin.HandlerFunc
}

// RegisterRoutes mounts the whole API on the given group. requireAuth guards
// the rows marked auth; optionalAuth runs on everything else so handlers can
// still see the identity when a token is sent.
func (h *Handlers) RegisterRoutes(api *gin.RouterGroup, requireAuth, optionalAuth gin.HandlerFunc) {
	routes := []route{
		// auth
		{http.MethodPost, "/auth/register", false, h.Auth.Register},
		{http.MethodPost, "/auth/login", false, h.Auth.Login},
		{http.MethodPost, "/auth/refresh", false, h.Auth.RefreshToken},
		{http.MethodPost, "/auth/logout", false, h.Auth.Logout},
		{http.MethodGet, "/auth/me", true, h.Auth.Me},

		// user profile
		{http.MethodPut, "/users/profile", true, h.Auth.UpdateProfile},
		{http.MethodPut, "/users/password", true, h.Auth.UpdatePassword},

		// articles; the :slug segment carries a numeric id on write routes
		{http.MethodGet, "/articles", false, h.Article.List},
		{http.MethodGet, "/articles/:slug", false, h.Article.Get},
		{http.MethodPost, "/articles", true, h.Article.Create},
		{http.MethodPut, "/articles/:slug", true, h.Article.Update},
		{http.MethodDelete, "/articles/:slug", true, h.Article.Delete},
		{http.MethodPost, "/articles/:slug/like", false, h.Article.Like},

		// projects
		{http.MethodGet, "/projects", false, h.Project.List},
		{http.MethodGet, "/projects/:slug", false, h.Project.Get},
		{http.MethodPost, "/projects", true, h.Project.Create},
		{http.MethodPut, "/projects/:slug", true, h.Project.Update},
		{http.MethodDelete, "/projects/:slug", true, h.Project.Delete},

		// comments
		{http.MethodPost, "/comments", true, h.Comment.Create},
		{http.MethodDelete, "/comments/:id", true, h.Comment.Delete},

		// guestbook
		{http.MethodGet, "/messages", false, h.Message.List},
		{http.MethodPost, "/messages", false, h.Message.Create},

		// favorites
		{http.MethodGet, "/favorites", true, h.Favorite.List},
		{http.MethodPost, "/favorites", true, h.Favorite.Add},
		{http.MethodDelete, "/favorites/:id", true, h.Favorite.Remove},

		// search and stats
		{http.MethodGet, "/search", false, h.Search.Search},
		{http.MethodGet, "/stats", false, h.Stats.Get},

		// AI assistant
		{http.MethodGet, "/ai/config", false, h.AI.Config},
		{http.MethodPost, "/ai/chat", true, h.AI.Chat},

		// operator settings
		{http.MethodGet, "/config", true, h.Config.List},
		{http.MethodGet, "/config/:key", true, h.Config.Get},
		{http.MethodPost, "/config", true, h.Config.Set},
	}

	for _, r := range routes {
		if r.auth {
			api.Handle(r.method, r.path, requireAuth, r.handler)
		} else {
			api.Handle(r.method, r.path, optionalAuth, r.handler)
		}
	}
}

// NotFound is the catch-all for unmatched API paths.
func NotFound(c *gin.Context) {
	fail(c, http.StatusNotFound, "API不存在")
}
