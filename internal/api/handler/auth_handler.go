package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/vahbuna0615/assignment-submission-api/internal/dto"
	"github.com/vahbuna0615/assignment-submission-api/internal/service"
	"github.com/vahbuna0615/assignment-submission-api/pkg/response"
)

// AuthHandler 认证模块 HTTP 处理器
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler 创建 AuthHandler
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Register 注册新用户
// POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, "参数校验失败", err)
		return
	}

	result, err := h.authSvc.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmailExists) {
			response.BadRequest(c, "该邮箱已被注册")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.Created(c, result)
}

// Login 用户登录
// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, "参数校验失败", err)
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, "该邮箱对应的用户不存在")
		case errors.Is(err, service.ErrInvalidCredentials):
			response.Unauthorized(c, "邮箱或密码错误")
		default:
			response.InternalError(c, err)
		}
		return
	}

	response.Created(c, result)
}

// Logout 用户登出，将当前 Token 加入黑名单
// POST /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := MustGetClaims(c)
	if !ok {
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), claims.ID, claims.ExpiresAt.Time); err != nil {
		response.InternalError(c, err)
		return
	}

	response.OK(c, gin.H{"message": "已登出"})
}
