package repository

import (
	"context"
	"fmt"

	"bearworld/internal/http-api/models"

	"gorm.io/gorm"
)

type ProjectRepository interface {
	List(ctx context.Context, featuredOnly bool) ([]models.Project, error)
	FindBySlug(ctx context.Context, slug string) (*models.Project, error)
	FindByID(ctx context.Context, id int64) (*models.Project, error)
	Create(ctx context.Context, p *models.Project) error
	Update(ctx context.Context, id int64, updates map[string]any) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, term string, limit int) ([]models.Project, error)
	Count(ctx context.Context) (int64, error)
}

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db: db}
}

// List returns projects newest-first; featuredOnly narrows to the showcase set.
func (r *ProjectRepo) List(ctx context.Context, featuredOnly bool) ([]models.Project, error) {
	query := r.db.WithContext(ctx).Model(&models.Project{})
	if featuredOnly {
		query = query.Where("featured = ?", true)
	}

	var list []models.Project
	if err := query.Order("created_at desc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *ProjectRepo) FindBySlug(ctx context.Context, slug string) (*models.Project, error) {
	var p models.Project
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepo) FindByID(ctx context.Context, id int64) (*models.Project, error) {
	var p models.Project
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepo) Create(ctx context.Context, p *models.Project) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("create project: %w", err)
	}
	return nil
}

func (r *ProjectRepo) Update(ctx context.Context, id int64, updates map[string]any) error {
	result := r.db.WithContext(ctx).
		Model(&models.Project{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("update project: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

func (r *ProjectRepo) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Project{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete project: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

// Search performs a case-insensitive substring match over title/description,
// capped at limit rows.
func (r *ProjectRepo) Search(ctx context.Context, term string, limit int) ([]models.Project, error) {
	var list []models.Project
	p := "%" + term + "%"
	if err := r.db.WithContext(ctx).
		Where("title ILIKE ? OR COALESCE(description,'') ILIKE ?", p, p).
		Order("created_at desc").
		Limit(limit).
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("search projects: %w", err)
	}
	return list, nil
}

func (r *ProjectRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Project{}).Count(&count).Error
	return count, err
}
