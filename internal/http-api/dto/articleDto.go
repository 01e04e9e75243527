package dto

import (
	"time"

	"bearworld/internal/http-api/models"
)

// CreateArticleRequest for publishing a new article
type CreateArticleRequest struct {
	Title      string `json:"title"`
	Excerpt    string `json:"excerpt"`
	Content    string `json:"content"`
	CoverImage string `json:"cover_image"`
	Category   string `json:"category"`
	Tags       string `json:"tags"`
}

// UpdateArticleRequest for editing an existing article
type UpdateArticleRequest struct {
	Title      string `json:"title"`
	Excerpt    string `json:"excerpt"`
	Content    string `json:"content"`
	CoverImage string `json:"cover_image"`
	Category   string `json:"category"`
	Tags       string `json:"tags"`
}

// ArticleResponse flattens the author association into a username
type ArticleResponse struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	Excerpt    string    `json:"excerpt"`
	Content    string    `json:"content"`
	CoverImage string    `json:"cover_image,omitempty"`
	Category   string    `json:"category"`
	Tags       string    `json:"tags"`
	Author     string    `json:"author"`
	AuthorID   string    `json:"author_id"`
	Views      int64     `json:"views"`
	Likes      int64     `json:"likes"`
	CreatedAt  time.Time `json:"created_at"`
}

// FromModelToArticleResponse converts an Article model to ArticleResponse DTO
func FromModelToArticleResponse(a *models.Article) *ArticleResponse {
	return &ArticleResponse{
		ID:         a.ID,
		Title:      a.Title,
		Slug:       a.Slug,
		Excerpt:    a.Excerpt,
		Content:    a.Content,
		CoverImage: a.CoverImage,
		Category:   a.Category,
		Tags:       a.Tags,
		Author:     a.Author.Username,
		AuthorID:   a.AuthorID,
		Views:      a.Views,
		Likes:      a.Likes,
		CreatedAt:  a.CreatedAt,
	}
}

// ArticleListResponse for GET /articles
type ArticleListResponse struct {
	Articles []ArticleResponse `json:"articles"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Pages    int               `json:"pages"`
}

// NewArticleListResponse builds the paginated list payload
func NewArticleListResponse(articles []models.Article, total int64, page, limit int) *ArticleListResponse {
	items := make([]ArticleResponse, 0, len(articles))
	for i := range articles {
		items = append(items, *FromModelToArticleResponse(&articles[i]))
	}

	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}

	return &ArticleListResponse{
		Articles: items,
		Total:    total,
		Page:     page,
		Pages:    pages,
	}
}

// ArticleDetailResponse for GET /articles/:slug
type ArticleDetailResponse struct {
	Article  ArticleResponse   `json:"article"`
	Comments []CommentResponse `json:"comments"`
}

// LikePayload for POST /articles/:id/like
type LikePayload struct {
	Likes int64 `json:"likes"`
}
