package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/vahbuna0615/assignment-submission-api/internal/api/middleware"
	"github.com/vahbuna0615/assignment-submission-api/internal/model"
	"github.com/vahbuna0615/assignment-submission-api/pkg/jwt"
	"github.com/vahbuna0615/assignment-submission-api/pkg/response"
)

// MustGetCurrentUser 从 Gin 上下文中安全提取认证中间件注入的用户。
// 如果 JWT 中间件未正确注入，返回 false 并写入 401 响应。
// 调用方应在 ok=false 时直接 return。
func MustGetCurrentUser(c *gin.Context) (*model.User, bool) {
	v, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		response.Unauthorized(c, "未认证")
		return nil, false
	}
	user, ok := v.(*model.User)
	if !ok || user == nil {
		response.Unauthorized(c, "未认证")
		return nil, false
	}
	return user, true
}

// MustGetClaims 从 Gin 上下文中安全提取 Token 声明
func MustGetClaims(c *gin.Context) (*jwt.Claims, bool) {
	v, exists := c.Get(middleware.ContextClaimsKey)
	if !exists {
		response.Unauthorized(c, "未认证")
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	if !ok || claims == nil {
		response.Unauthorized(c, "未认证")
		return nil, false
	}
	return claims, true
}
