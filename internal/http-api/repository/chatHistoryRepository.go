package repository

import (
	"context"

	"bearworld/internal/http-api/models"

	"gorm.io/gorm"
)

type ChatHistoryRepository interface {
	Create(ctx context.Context, history *models.ChatHistory) error
}

type chatHistoryRepository struct {
	db *gorm.DB
}

func NewChatHistoryRepository(db *gorm.DB) ChatHistoryRepository {
	return &chatHistoryRepository{db: db}
}

func (r *chatHistoryRepository) Create(ctx context.Context, history *models.ChatHistory) error {
	return r.db.WithContext(ctx).Create(history).Error
}
