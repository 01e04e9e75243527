package handler

import (
	"errors"
	"net/http"

	"bearworld/internal/http-api/dto"
	"bearworld/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	bindJSON(c, &req)

	if req.Username == "" || req.Email == "" || req.Password == "" {
		fail(c, http.StatusBadRequest, "请填写完整信息")
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordTooShort):
			fail(c, http.StatusBadRequest, "密码至少需要6位")
		case errors.Is(err, service.ErrEmailInUse):
			fail(c, http.StatusBadRequest, "邮箱已存在")
		case errors.Is(err, service.ErrNameInUse):
			fail(c, http.StatusBadRequest, "用户名已存在")
		default:
			fail(c, http.StatusInternalServerError, "服务器错误")
		}
		return
	}

	// Registration logs the user in right away
	accessToken, refreshToken, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, http.StatusInternalServerError, "服务器错误")
		return
	}

	ok(c, http.StatusOK, dto.AuthPayload{
		Token:        accessToken,
		RefreshToken: refreshToken,
		User:         dto.FromModelToUserResponse(user),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	bindJSON(c, &req)

	accessToken, refreshToken, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			fail(c, http.StatusUnauthorized, "邮箱或密码错误")
			return
		}
		fail(c, http.StatusInternalServerError, "服务器错误")
		return
	}

	ok(c, http.StatusOK, dto.AuthPayload{
		Token:        accessToken,
		RefreshToken: refreshToken,
		User:         dto.FromModelToUserResponse(user),
	})
}

func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	bindJSON(c, &req)

	newAccessToken, err := h.authService.RefreshAccessToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		fail(c, http.StatusUnauthorized, "未登录")
		return
	}

	ok(c, http.StatusOK, dto.RefreshPayload{
		Token:        newAccessToken,
		RefreshToken: req.RefreshToken,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.RefreshTokenRequest
	bindJSON(c, &req)

	// Always report success so tokens cannot be probed
	_ = h.authService.Logout(c.Request.Context(), req.RefreshToken)
	okMessage(c, http.StatusOK, "已退出登录")
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString("userID")
	user, err := h.authService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		fail(c, http.StatusUnauthorized, "未登录")
		return
	}
	ok(c, http.StatusOK, dto.FromModelToUserResponse(user))
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	bindJSON(c, &req)

	userID := c.GetString("userID")
	user, err := h.authService.UpdateProfile(c.Request.Context(), userID, req.Bio, req.Avatar)
	if err != nil {
		fail(c, http.StatusInternalServerError, "服务器错误")
		return
	}
	okMessageData(c, http.StatusOK, "更新成功", dto.FromModelToUserResponse(user))
}

func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	var req dto.UpdatePasswordRequest
	bindJSON(c, &req)

	if req.CurrentPassword == "" || req.NewPassword == "" {
		fail(c, http.StatusBadRequest, "请填写完整信息")
		return
	}

	userID := c.GetString("userID")
	err := h.authService.ChangePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordTooShort):
			fail(c, http.StatusBadRequest, "新密码至少需要6位")
		case errors.Is(err, service.ErrWrongPassword):
			fail(c, http.StatusBadRequest, "当前密码错误")
		default:
			fail(c, http.StatusInternalServerError, "服务器错误")
		}
		return
	}
	okMessage(c, http.StatusOK, "密码修改成功")
}
