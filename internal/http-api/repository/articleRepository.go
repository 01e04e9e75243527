package repository

import (
	"context"
	"errors"
	"fmt"

	"bearworld/internal/http-api/models"

	"gorm.io/gorm"
)

var ErrNoRowsAffected = errors.New("no rows affected")

type ArticleRepository interface {
	List(ctx context.Context, category, search string, page, limit int) ([]models.Article, int64, error)
	FindBySlug(ctx context.Context, slug string) (*models.Article, error)
	FindByID(ctx context.Context, id int64) (*models.Article, error)
	Create(ctx context.Context, a *models.Article) error
	Update(ctx context.Context, id int64, authorID string, updates map[string]any) error
	Delete(ctx context.Context, id int64, authorID string) error
	IncrementViews(ctx context.Context, id int64) error
	IncrementLikes(ctx context.Context, id int64) (int64, error)
	Search(ctx context.Context, term string, limit int) ([]models.Article, error)
	Count(ctx context.Context) (int64, error)
	SumViews(ctx context.Context) (int64, error)
	SumLikes(ctx context.Context) (int64, error)
}

type ArticleRepo struct {
	db *gorm.DB
}

func NewArticleRepo(db *gorm.DB) *ArticleRepo {
	return &ArticleRepo{db: db}
}

// List returns published articles newest-first, optionally filtered by exact
// category and a case-insensitive substring over title/excerpt.
func (r *ArticleRepo) List(ctx context.Context, category, search string, page, limit int) ([]models.Article, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Article{}).Where("is_published = ?", true)

	if category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}
	if search != "" {
		p := "%" + search + "%"
		query = query.Where("(title ILIKE ? OR COALESCE(excerpt,'') ILIKE ?)", p, p)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []models.Article
	offset := (page - 1) * limit
	if err := query.
		Preload("Author").
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *ArticleRepo) FindBySlug(ctx context.Context, slug string) (*models.Article, error) {
	var a models.Article
	if err := r.db.WithContext(ctx).Preload("Author").Where("slug = ?", slug).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ArticleRepo) FindByID(ctx context.Context, id int64) (*models.Article, error) {
	var a models.Article
	if err := r.db.WithContext(ctx).Preload("Author").First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ArticleRepo) Create(ctx context.Context, a *models.Article) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return fmt.Errorf("create article: %w", err)
	}
	// GORM populates a.ID and a.CreatedAt
	return nil
}

// Update writes the editable columns, scoped to the owning author.
func (r *ArticleRepo) Update(ctx context.Context, id int64, authorID string, updates map[string]any) error {
	result := r.db.WithContext(ctx).
		Model(&models.Article{}).
		Where("id = ? AND author_id = ?", id, authorID).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("update article: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

// Delete removes an article, scoped to the owning author.
func (r *ArticleRepo) Delete(ctx context.Context, id int64, authorID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND author_id = ?", id, authorID).
		Delete(&models.Article{})
	if result.Error != nil {
		return fmt.Errorf("delete article: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

// IncrementViews bumps the view counter without racing concurrent readers.
func (r *ArticleRepo) IncrementViews(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Model(&models.Article{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

// IncrementLikes bumps the like counter and returns the new value.
func (r *ArticleRepo) IncrementLikes(ctx context.Context, id int64) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Article{}).
		Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("likes + 1"))
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}

	var likes int64
	if err := r.db.WithContext(ctx).
		Model(&models.Article{}).
		Where("id = ?", id).
		Pluck("likes", &likes).Error; err != nil {
		return 0, err
	}
	return likes, nil
}

// Search performs a case-insensitive substring match over title/excerpt for
// the site-wide search endpoint, capped at limit rows.
func (r *ArticleRepo) Search(ctx context.Context, term string, limit int) ([]models.Article, error) {
	var list []models.Article
	p := "%" + term + "%"
	if err := r.db.WithContext(ctx).
		Where("is_published = ? AND (title ILIKE ? OR COALESCE(excerpt,'') ILIKE ?)", true, p, p).
		Order("created_at desc").
		Limit(limit).
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("search articles: %w", err)
	}
	return list, nil
}

func (r *ArticleRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Article{}).Where("is_published = ?", true).Count(&count).Error
	return count, err
}

// SumViews totals the view counters across published articles.
func (r *ArticleRepo) SumViews(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.Article{}).
		Where("is_published = ?", true).
		Select("COALESCE(SUM(views), 0)").
		Scan(&total).Error
	return total, err
}

// SumLikes totals the like counters across published articles.
func (r *ArticleRepo) SumLikes(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.Article{}).
		Where("is_published = ?", true).
		Select("COALESCE(SUM(likes), 0)").
		Scan(&total).Error
	return total, err
}
