package service

import (
	"context"
	"errors"

	"bearworld/internal/http-api/models"
	"bearworld/internal/http-api/repository"

	"gorm.io/gorm"
)

var (
	ErrConfigKeyMissing = errors.New("config key is empty")
	ErrConfigNotFound   = errors.New("config key not found")
)

type ConfigService interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	List(ctx context.Context) ([]models.ConfigEntry, error)
}

type configService struct {
	configRepo repository.ConfigRepository
}

func NewConfigService(configRepo repository.ConfigRepository) ConfigService {
	return &configService{configRepo: configRepo}
}

func (s *configService) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrConfigKeyMissing
	}
	value, err := s.configRepo.Get(ctx, key)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrConfigNotFound
	}
	return value, err
}

func (s *configService) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrConfigKeyMissing
	}
	return s.configRepo.Set(ctx, key, value)
}

func (s *configService) List(ctx context.Context) ([]models.ConfigEntry, error) {
	return s.configRepo.List(ctx)
}
