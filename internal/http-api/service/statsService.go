package service

import (
	"context"
	"log/slog"

	"bearworld/internal/cache"
	"bearworld/internal/http-api/dto"
	"bearworld/internal/http-api/repository"
)

type StatsService interface {
	SiteStats(ctx context.Context) (*dto.SiteStats, error)
}

type statsService struct {
	articleRepo repository.ArticleRepository
	projectRepo repository.ProjectRepository
	commentRepo repository.CommentRepository
	userRepo    repository.UserRepository
	messageRepo repository.MessageRepository
	statsCache  *cache.StatsCache
	logger      *slog.Logger
}

func NewStatsService(
	articleRepo repository.ArticleRepository,
	projectRepo repository.ProjectRepository,
	commentRepo repository.CommentRepository,
	userRepo repository.UserRepository,
	messageRepo repository.MessageRepository,
	statsCache *cache.StatsCache,
	logger *slog.Logger,
) StatsService {
	return &statsService{
		articleRepo: articleRepo,
		projectRepo: projectRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		messageRepo: messageRepo,
		statsCache:  statsCache,
		logger:      logger,
	}
}

// SiteStats serves from the Redis cache when possible and falls through to
// direct aggregation. Cache errors degrade to the database, never to the
// client.
func (s *statsService) SiteStats(ctx context.Context) (*dto.SiteStats, error) {
	if cached, err := s.statsCache.GetStats(ctx); err != nil {
		s.logger.Warn("stats cache read failed", "error", err)
	} else if cached != nil {
		return cached, nil
	}

	stats := &dto.SiteStats{}
	var err error
	if stats.Articles, err = s.articleRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Projects, err = s.projectRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Comments, err = s.commentRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Users, err = s.userRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Messages, err = s.messageRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Views, err = s.articleRepo.SumViews(ctx); err != nil {
		return nil, err
	}
	if stats.Likes, err = s.articleRepo.SumLikes(ctx); err != nil {
		return nil, err
	}

	if err := s.statsCache.SetStats(ctx, stats); err != nil {
		s.logger.Warn("stats cache write failed", "error", err)
	}
	return stats, nil
}
