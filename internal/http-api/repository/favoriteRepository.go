package repository

import (
	"context"
	"errors"
	"fmt"

	"bearworld/internal/http-api/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrAlreadyFavorited is returned when the user already has the target in
// their favorites. Adding twice is not an error for callers that want
// idempotent behavior; the service layer decides.
var ErrAlreadyFavorited = errors.New("already favorited")

type FavoriteRepository interface {
	Add(ctx context.Context, favorite *models.Favorite) error
	ListByUser(ctx context.Context, userID string) ([]models.Favorite, error)
	Remove(ctx context.Context, favoriteID int64, userID string) error
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Add inserts a favorite. The partial unique indexes on (user_id, article_id)
// and (user_id, project_id) turn duplicates into ErrAlreadyFavorited.
func (r *favoriteRepository) Add(ctx context.Context, favorite *models.Favorite) error {
	err := r.db.WithContext(ctx).Create(favorite).Error
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrAlreadyFavorited
		}
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

func (r *favoriteRepository) ListByUser(ctx context.Context, userID string) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Article").
		Preload("Project").
		Order("created_at DESC").
		Find(&favorites).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return favorites, nil
}

// Remove deletes a favorite owned by the given user.
func (r *favoriteRepository) Remove(ctx context.Context, favoriteID int64, userID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", favoriteID, userID).
		Delete(&models.Favorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNoRowsAffected
	}
	return nil
}
