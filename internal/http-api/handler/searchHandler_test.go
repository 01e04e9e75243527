package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bearworld/internal/http-api/dto"
	"bearworld/internal/http-api/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockSearchService struct {
	mock.Mock
}

func (m *MockSearchService) Search(ctx context.Context, term, searchType string) (*dto.SearchResults, error) {
	args := m.Called(ctx, term, searchType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SearchResults), args.Error(1)
}

func TestSearch_TermTooShort(t *testing.T) {
	mockSearch := new(MockSearchService)
	handler := NewSearchHandler(mockSearch)
	router := setupRouter()
	router.GET("/search", handler.Search)

	mockSearch.On("Search", mock.Anything, "a", "all").
		Return(nil, service.ErrSearchTermTooShort)

	req, _ := http.NewRequest("GET", "/search?q=a", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response Envelope
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "关键词至少2个字符", response.Message)
}

func TestSearch_Results(t *testing.T) {
	mockSearch := new(MockSearchService)
	handler := NewSearchHandler(mockSearch)
	router := setupRouter()
	router.GET("/search", handler.Search)

	results := &dto.SearchResults{
		Articles: []dto.ArticleSearchHit{{ID: 1, Title: "AI写作入门", Slug: "ai-writing-basics"}},
		Projects: []dto.ProjectSearchHit{},
	}
	mockSearch.On("Search", mock.Anything, "AI", "articles").Return(results, nil)

	req, _ := http.NewRequest("GET", "/search?q=AI&type=articles", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response Envelope
	json.Unmarshal(w.Body.Bytes(), &response)
	data := response.Data.(map[string]any)
	assert.Len(t, data["articles"].([]any), 1)
	assert.Empty(t, data["projects"])
}
