package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bearworld/internal/http-api/dto"
	"bearworld/internal/http-api/models"
	"bearworld/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAuthService mocks the AuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	args := m.Called(ctx, username, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, string, *models.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(2) == nil {
		return args.String(0), args.String(1), nil, args.Error(3)
	}
	return args.String(0), args.String(1), args.Get(2).(*models.User), args.Error(3)
}

func (m *MockAuthService) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, refreshToken string) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Claims), args.Error(1)
}

func (m *MockAuthService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) UpdateProfile(ctx context.Context, userID, bio, avatar string) (*models.User, error) {
	args := m.Called(ctx, userID, bio, avatar)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	args := m.Called(ctx, userID, currentPassword, newPassword)
	return args.Error(0)
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func postJSON(router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegister_Success(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService)
	router := setupRouter()
	router.POST("/register", handler.Register)

	user := &models.User{
		ID:       "user-123",
		Username: "testuser",
		Email:    "test@example.com",
	}

	mockAuthService.On("Register", mock.Anything, "testuser", "test@example.com", "password123").Return(user, nil)
	mockAuthService.On("Login", mock.Anything, "test@example.com", "password123").
		Return("access-token", "refresh-token", user, nil)

	w := postJSON(router, "/register", dto.RegisterRequest{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "password123",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var response Envelope
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.True(t, response.Success)

	data := response.Data.(map[string]any)
	assert.Equal(t, "access-token", data["token"])
	assert.Equal(t, "testuser", data["user"].(map[string]any)["username"])

	mockAuthService.AssertExpectations(t)
}

func TestRegister_EmailInUse(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService)
	router := setupRouter()
	router.POST("/register", handler.Register)

	mockAuthService.On("Register", mock.Anything, "testuser", "test@example.com", "password123").
		Return(nil, service.ErrEmailInUse)

	w := postJSON(router, "/register", dto.RegisterRequest{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "password123",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response Envelope
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.False(t, response.Success)
	assert.Equal(t, "邮箱已存在", response.Message)

	mockAuthService.AssertExpectations(t)
}

func TestRegister_MissingFields(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService)
	router := setupRouter()
	router.POST("/register", handler.Register)

	w := postJSON(router, "/register", dto.RegisterRequest{Username: "testuser"})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response Envelope
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "请填写完整信息", response.Message)

	// The service is never reached when validation fails
	mockAuthService.AssertNotCalled(t, "Register")
}

func TestRegister_ShortPassword(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService)
	router := setupRouter()
	router.POST("/register", handler.Register)

	mockAuthService.On("Register", mock.Anything, "testuser", "test@example.com", "abc").
		Return(nil, service.ErrPasswordTooShort)

	w := postJSON(router, "/register", dto.RegisterRequest{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "abc",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response Envelope
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.False(t, response.Success)
	assert.Equal(t, "密码至少需要6位", response.Message)

	// A rejected password never reaches the login step
	mockAuthService.AssertNotCalled(t, "Login")
}

func TestLogin_Success(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService)
	router := setupRouter()
	router.POST("/login", handler.Login)

	user := &models.User{
		ID:       "user-123",
		Username: "testuser",
		Email:    "test@example.com",
	}
	mockAuthService.On("Login", mock.Anything, "test@example.com", "password123").
		Return("access-token", "refresh-token", user, nil)

	w := postJSON(router, "/login", dto.LoginRequest{
		Email:    "test@example.com",
		Password: "password123",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var response Envelope
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.True(t, response.Success)

	data := response.Data.(map[string]any)
	assert.Equal(t, "access-token", data["token"])
	assert.Equal(t, "refresh-token", data["refresh_token"])

	mockAuthService.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService)
	router := setupRouter()
	router.POST("/login", handler.Login)

	mockAuthService.On("Login", mock.Anything, "test@example.com", "wrong").
		Return("", "", nil, service.ErrInvalidCredentials)

	w := postJSON(router, "/login", dto.LoginRequest{
		Email:    "test@example.com",
		Password: "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var response Envelope
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.False(t, response.Success)
	assert.Equal(t, "邮箱或密码错误", response.Message)

	mockAuthService.AssertExpectations(t)
}

func TestLogin_MalformedBody(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService)
	router := setupRouter()
	router.POST("/login", handler.Login)

	// A garbage body is treated as empty credentials, not a parse error
	mockAuthService.On("Login", mock.Anything, "", "").
		Return("", "", nil, service.ErrInvalidCredentials)

	req, _ := http.NewRequest("POST", "/login", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockAuthService.AssertExpectations(t)
}

func TestUpdatePassword_WrongCurrent(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService)
	router := setupRouter()
	router.PUT("/users/password", func(c *gin.Context) {
		c.Set("userID", "user-123")
		handler.UpdatePassword(c)
	})

	mockAuthService.On("ChangePassword", mock.Anything, "user-123", "oldpass", "newpass").
		Return(service.ErrWrongPassword)

	body, _ := json.Marshal(dto.UpdatePasswordRequest{CurrentPassword: "oldpass", NewPassword: "newpass"})
	req, _ := http.NewRequest("PUT", "/users/password", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response Envelope
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "当前密码错误", response.Message)

	mockAuthService.AssertExpectations(t)
}

func TestUpdatePassword_NewPasswordTooShort(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService)
	router := setupRouter()
	router.PUT("/users/password", func(c *gin.Context) {
		c.Set("userID", "user-123")
		handler.UpdatePassword(c)
	})

	mockAuthService.On("ChangePassword", mock.Anything, "user-123", "oldpass", "abc").
		Return(service.ErrPasswordTooShort)

	body, _ := json.Marshal(dto.UpdatePasswordRequest{CurrentPassword: "oldpass", NewPassword: "abc"})
	req, _ := http.NewRequest("PUT", "/users/password", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response Envelope
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "新密码至少需要6位", response.Message)

	mockAuthService.AssertExpectations(t)
}
