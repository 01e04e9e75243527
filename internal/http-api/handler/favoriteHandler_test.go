package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bearworld/internal/http-api/dto"
	"bearworld/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockFavoriteService struct {
	mock.Mock
}

func (m *MockFavoriteService) Add(ctx context.Context, userID string, req *dto.CreateFavoriteRequest) (*dto.FavoriteResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.FavoriteResponse), args.Error(1)
}

func (m *MockFavoriteService) List(ctx context.Context, userID string) ([]dto.FavoriteResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.FavoriteResponse), args.Error(1)
}

func (m *MockFavoriteService) Remove(ctx context.Context, favoriteID int64, userID string) error {
	args := m.Called(ctx, favoriteID, userID)
	return args.Error(0)
}

func removeFavorite(t *testing.T, svcErr error) *httptest.ResponseRecorder {
	t.Helper()
	mockFavorites := new(MockFavoriteService)
	handler := NewFavoriteHandler(mockFavorites)
	router := setupRouter()
	router.DELETE("/favorites/:id", func(c *gin.Context) {
		c.Set("userID", "user-1")
		handler.Remove(c)
	})

	mockFavorites.On("Remove", mock.Anything, int64(7), "user-1").Return(svcErr)

	req, _ := http.NewRequest("DELETE", "/favorites/7", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRemoveFavorite_NotFound(t *testing.T) {
	w := removeFavorite(t, service.ErrFavoriteNotFound)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var response Envelope
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "收藏不存在", response.Message)
}

func TestRemoveFavorite_StorageError(t *testing.T) {
	w := removeFavorite(t, assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var response Envelope
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "服务器错误", response.Message)
}
