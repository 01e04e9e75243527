package service

import (
	"context"
	"errors"

	"bearworld/internal/http-api/dto"
	"bearworld/internal/http-api/models"
	"bearworld/internal/http-api/repository"
	"bearworld/internal/sanitize"

	"gorm.io/gorm"
)

var ErrProjectNotFound = errors.New("project not found")

type ProjectService interface {
	List(ctx context.Context, featuredOnly bool) ([]models.Project, error)
	GetBySlug(ctx context.Context, slug string) (*models.Project, error)
	Create(ctx context.Context, req *dto.CreateProjectRequest) (*models.Project, error)
	Update(ctx context.Context, id int64, req *dto.UpdateProjectRequest) error
	Delete(ctx context.Context, id int64) error
}

type projectService struct {
	projectRepo repository.ProjectRepository
}

func NewProjectService(projectRepo repository.ProjectRepository) ProjectService {
	return &projectService{projectRepo: projectRepo}
}

func (s *projectService) List(ctx context.Context, featuredOnly bool) ([]models.Project, error) {
	return s.projectRepo.List(ctx, featuredOnly)
}

func (s *projectService) GetBySlug(ctx context.Context, slug string) (*models.Project, error) {
	project, err := s.projectRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return project, nil
}

func (s *projectService) Create(ctx context.Context, req *dto.CreateProjectRequest) (*models.Project, error) {
	project := &models.Project{
		Title:       sanitize.Clean(req.Title),
		Slug:        GenerateSlug(req.Title),
		Description: sanitize.Clean(req.Description),
		Content:     sanitize.Clean(req.Content),
		Image:       req.Image,
		DemoURL:     req.DemoURL,
		GithubURL:   req.GithubURL,
		TechStack:   req.TechStack,
		Featured:    req.Featured,
	}
	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *projectService) Update(ctx context.Context, id int64, req *dto.UpdateProjectRequest) error {
	updates := map[string]any{
		"title":       sanitize.Clean(req.Title),
		"description": sanitize.Clean(req.Description),
		"content":     sanitize.Clean(req.Content),
		"image":       req.Image,
		"demo_url":    req.DemoURL,
		"github_url":  req.GithubURL,
		"tech_stack":  req.TechStack,
		"featured":    req.Featured,
	}
	err := s.projectRepo.Update(ctx, id, updates)
	if errors.Is(err, repository.ErrNoRowsAffected) {
		return ErrProjectNotFound
	}
	return err
}

func (s *projectService) Delete(ctx context.Context, id int64) error {
	err := s.projectRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNoRowsAffected) {
		return ErrProjectNotFound
	}
	return err
}
