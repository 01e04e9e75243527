package repository

import (
	"context"
	"fmt"

	"bearworld/internal/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ConfigRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	List(ctx context.Context) ([]models.ConfigEntry, error)
}

type configRepository struct {
	db *gorm.DB
}

func NewConfigRepository(db *gorm.DB) ConfigRepository {
	return &configRepository{db: db}
}

func (r *configRepository) Get(ctx context.Context, key string) (string, error) {
	var entry models.ConfigEntry
	err := r.db.WithContext(ctx).Where("key = ?", key).First(&entry).Error
	if err != nil {
		return "", err
	}
	return entry.Value, nil
}

// Set upserts a key/value pair.
func (r *configRepository) Set(ctx context.Context, key, value string) error {
	entry := models.ConfigEntry{Key: key, Value: value}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
	if err != nil {
		return fmt.Errorf("failed to set config %q: %w", key, err)
	}
	return nil
}

func (r *configRepository) List(ctx context.Context) ([]models.ConfigEntry, error) {
	var entries []models.ConfigEntry
	err := r.db.WithContext(ctx).Order("key ASC").Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
