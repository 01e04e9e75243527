package service

import (
	"context"
	"errors"

	"bearworld/internal/http-api/dto"
	"bearworld/internal/http-api/models"
	"bearworld/internal/http-api/repository"
	"bearworld/internal/sanitize"
)

var (
	ErrEmptyComment    = errors.New("comment content is empty")
	ErrCommentTarget   = errors.New("comment must target an article or a project")
	ErrCommentNotOwned = errors.New("comment not found or not owned by user")
)

type CommentService interface {
	Create(ctx context.Context, userID string, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	Delete(ctx context.Context, commentID int64, userID string) error
	ListForArticle(ctx context.Context, articleID int64) ([]dto.CommentResponse, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
}

func NewCommentService(commentRepo repository.CommentRepository) CommentService {
	return &commentService{commentRepo: commentRepo}
}

func (s *commentService) Create(ctx context.Context, userID string, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	content := sanitize.Clean(req.Content)
	if content == "" {
		return nil, ErrEmptyComment
	}
	if req.ArticleID == nil && req.ProjectID == nil {
		return nil, ErrCommentTarget
	}

	comment := &models.Comment{
		ArticleID: req.ArticleID,
		ProjectID: req.ProjectID,
		UserID:    userID,
		Content:   content,
		ParentID:  req.ParentID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	// Reload to pick up the User association for the response
	created, err := s.commentRepo.GetByID(ctx, comment.ID)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToCommentResponse(created), nil
}

func (s *commentService) Delete(ctx context.Context, commentID int64, userID string) error {
	err := s.commentRepo.Delete(ctx, commentID, userID)
	if errors.Is(err, repository.ErrNoRowsAffected) {
		return ErrCommentNotOwned
	}
	return err
}

func (s *commentService) ListForArticle(ctx context.Context, articleID int64) ([]dto.CommentResponse, error) {
	comments, err := s.commentRepo.GetByArticle(ctx, articleID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, *dto.FromModelToCommentResponse(&comments[i]))
	}
	return out, nil
}
