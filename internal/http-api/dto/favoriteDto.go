package dto

import (
	"time"

	"bearworld/internal/http-api/models"
)

// CreateFavoriteRequest targets exactly one of article_id/project_id
type CreateFavoriteRequest struct {
	ArticleID *int64 `json:"article_id"`
	ProjectID *int64 `json:"project_id"`
}

// FavoriteResponse joins target titles/slugs for list rendering
type FavoriteResponse struct {
	ID           int64     `json:"id"`
	ArticleID    *int64    `json:"article_id,omitempty"`
	ProjectID    *int64    `json:"project_id,omitempty"`
	ArticleTitle string    `json:"article_title,omitempty"`
	ArticleSlug  string    `json:"article_slug,omitempty"`
	ProjectTitle string    `json:"project_title,omitempty"`
	ProjectSlug  string    `json:"project_slug,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// FromModelToFavoriteResponse converts a Favorite model to FavoriteResponse DTO
func FromModelToFavoriteResponse(f *models.Favorite) *FavoriteResponse {
	resp := &FavoriteResponse{
		ID:        f.ID,
		ArticleID: f.ArticleID,
		ProjectID: f.ProjectID,
		CreatedAt: f.CreatedAt,
	}
	if f.Article != nil {
		resp.ArticleTitle = f.Article.Title
		resp.ArticleSlug = f.Article.Slug
	}
	if f.Project != nil {
		resp.ProjectTitle = f.Project.Title
		resp.ProjectSlug = f.Project.Slug
	}
	return resp
}
