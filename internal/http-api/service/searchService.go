package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"bearworld/internal/http-api/dto"
	"bearworld/internal/http-api/repository"
)

// searchResultLimit caps each result bucket.
const searchResultLimit = 10

var ErrSearchTermTooShort = errors.New("search term must be at least 2 characters")

type SearchService interface {
	Search(ctx context.Context, term, searchType string) (*dto.SearchResults, error)
}

type searchService struct {
	articleRepo repository.ArticleRepository
	projectRepo repository.ProjectRepository
}

func NewSearchService(articleRepo repository.ArticleRepository, projectRepo repository.ProjectRepository) SearchService {
	return &searchService{articleRepo: articleRepo, projectRepo: projectRepo}
}

// Search queries one or both buckets; searchType is "all", "articles" or
// "projects" (unknown values behave like "all" minus everything).
func (s *searchService) Search(ctx context.Context, term, searchType string) (*dto.SearchResults, error) {
	term = strings.TrimSpace(term)
	if utf8.RuneCountInString(term) < 2 {
		return nil, ErrSearchTermTooShort
	}
	if searchType == "" {
		searchType = "all"
	}

	results := &dto.SearchResults{
		Articles: []dto.ArticleSearchHit{},
		Projects: []dto.ProjectSearchHit{},
	}

	if searchType == "all" || searchType == "articles" {
		articles, err := s.articleRepo.Search(ctx, term, searchResultLimit)
		if err != nil {
			return nil, err
		}
		for i := range articles {
			results.Articles = append(results.Articles, dto.FromModelToArticleSearchHit(&articles[i]))
		}
	}
	if searchType == "all" || searchType == "projects" {
		projects, err := s.projectRepo.Search(ctx, term, searchResultLimit)
		if err != nil {
			return nil, err
		}
		for i := range projects {
			results.Projects = append(results.Projects, dto.FromModelToProjectSearchHit(&projects[i]))
		}
	}
	return results, nil
}
