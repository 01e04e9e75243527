package dto

import (
	"time"

	"bearworld/internal/http-api/models"
)

// ArticleSearchHit is the trimmed article view returned by GET /search
type ArticleSearchHit struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Excerpt   string    `json:"excerpt"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

// ProjectSearchHit is the trimmed project view returned by GET /search
type ProjectSearchHit struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	TechStack   string    `json:"tech_stack"`
	CreatedAt   time.Time `json:"created_at"`
}

// SearchResults for GET /search
type SearchResults struct {
	Articles []ArticleSearchHit `json:"articles"`
	Projects []ProjectSearchHit `json:"projects"`
}

func FromModelToArticleSearchHit(a *models.Article) ArticleSearchHit {
	return ArticleSearchHit{
		ID:        a.ID,
		Title:     a.Title,
		Slug:      a.Slug,
		Excerpt:   a.Excerpt,
		Category:  a.Category,
		CreatedAt: a.CreatedAt,
	}
}

func FromModelToProjectSearchHit(p *models.Project) ProjectSearchHit {
	return ProjectSearchHit{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Description: p.Description,
		TechStack:   p.TechStack,
		CreatedAt:   p.CreatedAt,
	}
}
