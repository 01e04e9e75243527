package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"bearworld/internal/http-api/dto"
	"bearworld/internal/http-api/models"
	"bearworld/internal/http-api/repository"
	"bearworld/internal/sanitize"

	"gorm.io/gorm"
)

var (
	ErrArticleNotFound = errors.New("article not found")
	ErrNotArticleOwner = errors.New("article not found or not owned by user")
)

var slugStripRe = regexp.MustCompile(`[^a-z0-9]+`)

// GenerateSlug builds a URL slug from the title plus a millisecond suffix so
// two articles with the same title never collide.
func GenerateSlug(title string) string {
	s := slugStripRe.ReplaceAllString(strings.ToLower(title), "-")
	s = strings.Trim(s, "-")
	return fmt.Sprintf("%s-%d", s, time.Now().UnixMilli())
}

type ArticleService interface {
	List(ctx context.Context, category, search string, page, limit int) (*dto.ArticleListResponse, error)
	GetBySlug(ctx context.Context, slug string) (*dto.ArticleResponse, error)
	Create(ctx context.Context, authorID string, req *dto.CreateArticleRequest) (*dto.ArticleResponse, error)
	Update(ctx context.Context, id int64, authorID string, req *dto.UpdateArticleRequest) error
	Delete(ctx context.Context, id int64, authorID string) error
	RecordView(ctx context.Context, id int64) error
	Like(ctx context.Context, id int64) (int64, error)
}

type articleService struct {
	articleRepo repository.ArticleRepository
}

func NewArticleService(articleRepo repository.ArticleRepository) ArticleService {
	return &articleService{articleRepo: articleRepo}
}

func (s *articleService) List(ctx context.Context, category, search string, page, limit int) (*dto.ArticleListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	articles, total, err := s.articleRepo.List(ctx, category, search, page, limit)
	if err != nil {
		return nil, err
	}
	return dto.NewArticleListResponse(articles, total, page, limit), nil
}

func (s *articleService) GetBySlug(ctx context.Context, slug string) (*dto.ArticleResponse, error) {
	article, err := s.articleRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return dto.FromModelToArticleResponse(article), nil
}

func (s *articleService) Create(ctx context.Context, authorID string, req *dto.CreateArticleRequest) (*dto.ArticleResponse, error) {
	article := &models.Article{
		Title:       sanitize.Clean(req.Title),
		Slug:        GenerateSlug(req.Title),
		Excerpt:     sanitize.Clean(req.Excerpt),
		Content:     sanitize.Clean(req.Content),
		CoverImage:  req.CoverImage,
		Category:    req.Category,
		Tags:        req.Tags,
		AuthorID:    authorID,
		IsPublished: true,
	}
	if err := s.articleRepo.Create(ctx, article); err != nil {
		return nil, err
	}
	// Reload so the Author association is populated
	created, err := s.articleRepo.FindByID(ctx, article.ID)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToArticleResponse(created), nil
}

func (s *articleService) Update(ctx context.Context, id int64, authorID string, req *dto.UpdateArticleRequest) error {
	updates := map[string]any{
		"title":       sanitize.Clean(req.Title),
		"excerpt":     sanitize.Clean(req.Excerpt),
		"content":     sanitize.Clean(req.Content),
		"cover_image": req.CoverImage,
		"category":    req.Category,
		"tags":        req.Tags,
	}
	err := s.articleRepo.Update(ctx, id, authorID, updates)
	if errors.Is(err, repository.ErrNoRowsAffected) {
		return ErrNotArticleOwner
	}
	return err
}

func (s *articleService) Delete(ctx context.Context, id int64, authorID string) error {
	err := s.articleRepo.Delete(ctx, id, authorID)
	if errors.Is(err, repository.ErrNoRowsAffected) {
		return ErrNotArticleOwner
	}
	return err
}

func (s *articleService) RecordView(ctx context.Context, id int64) error {
	return s.articleRepo.IncrementViews(ctx, id)
}

func (s *articleService) Like(ctx context.Context, id int64) (int64, error) {
	likes, err := s.articleRepo.IncrementLikes(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrArticleNotFound
	}
	return likes, err
}
