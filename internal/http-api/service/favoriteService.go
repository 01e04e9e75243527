package service

import (
	"context"
	"errors"

	"bearworld/internal/http-api/dto"
	"bearworld/internal/http-api/models"
	"bearworld/internal/http-api/repository"
)

var (
	ErrFavoriteTarget   = errors.New("favorite must target an article or a project")
	ErrFavoriteNotFound = errors.New("favorite not found")
)

type FavoriteService interface {
	Add(ctx context.Context, userID string, req *dto.CreateFavoriteRequest) (*dto.FavoriteResponse, error)
	List(ctx context.Context, userID string) ([]dto.FavoriteResponse, error)
	Remove(ctx context.Context, favoriteID int64, userID string) error
}

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
}

func NewFavoriteService(favoriteRepo repository.FavoriteRepository) FavoriteService {
	return &favoriteService{favoriteRepo: favoriteRepo}
}

// Add is idempotent: favoriting something twice succeeds without inserting a
// second row.
func (s *favoriteService) Add(ctx context.Context, userID string, req *dto.CreateFavoriteRequest) (*dto.FavoriteResponse, error) {
	if req.ArticleID == nil && req.ProjectID == nil {
		return nil, ErrFavoriteTarget
	}

	favorite := &models.Favorite{
		UserID:    userID,
		ArticleID: req.ArticleID,
		ProjectID: req.ProjectID,
	}
	err := s.favoriteRepo.Add(ctx, favorite)
	if err != nil && !errors.Is(err, repository.ErrAlreadyFavorited) {
		return nil, err
	}
	return dto.FromModelToFavoriteResponse(favorite), nil
}

func (s *favoriteService) List(ctx context.Context, userID string) ([]dto.FavoriteResponse, error) {
	favorites, err := s.favoriteRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FavoriteResponse, 0, len(favorites))
	for i := range favorites {
		out = append(out, *dto.FromModelToFavoriteResponse(&favorites[i]))
	}
	return out, nil
}

func (s *favoriteService) Remove(ctx context.Context, favoriteID int64, userID string) error {
	err := s.favoriteRepo.Remove(ctx, favoriteID, userID)
	if errors.Is(err, repository.ErrNoRowsAffected) {
		return ErrFavoriteNotFound
	}
	return err
}
