package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vahbuna0615/assignment-submission-api/internal/model"
	"github.com/vahbuna0615/assignment-submission-api/internal/repository"
	"github.com/vahbuna0615/assignment-submission-api/pkg/jwt"
	"github.com/vahbuna0615/assignment-submission-api/pkg/redis"
	"github.com/vahbuna0615/assignment-submission-api/pkg/response"
)

// gin 上下文注入键
const (
	ContextUserKey   = "current_user"
	ContextClaimsKey = "claims"
)

// JWTAuth JWT 认证中间件（守卫链第一级）
// 从 Authorization: Bearer <token> 中提取并验证 Token，
// 再按 Token 内嵌的用户 ID 加载用户注入上下文（每个请求恰好一次读库）。
// rdb 为 nil 时跳过黑名单检查。
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "缺少认证头")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "认证头格式无效")
			c.Abort()
			return
		}

		claims, err := jwtMgr.Parse(parts[1])
		if err != nil {
			response.Unauthorized(c, "Token 无效或已过期")
			c.Abort()
			return
		}

		// 已登出的 Token 拒绝访问
		if rdb != nil {
			blacklisted, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			if err == nil && blacklisted {
				response.Unauthorized(c, "Token 已失效")
				c.Abort()
				return
			}
		}

		user, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Unauthorized(c, "用户不存在")
			} else {
				response.InternalError(c, err)
			}
			c.Abort()
			return
		}

		// 将用户与声明注入上下文
		c.Set(ContextUserKey, user)
		c.Set(ContextClaimsKey, claims)

		c.Next()
	}
}

// RoleAuth 角色权限中间件（守卫链第二级，必须在 JWTAuth 之后）
// 检查已注入用户是否具有指定角色之一。
// 按本系统约定，角色不符返回 401 而非 403。
func RoleAuth(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, exists := c.Get(ContextUserKey)
		if !exists {
			response.Unauthorized(c, "未认证")
			c.Abort()
			return
		}

		user := v.(*model.User)
		for _, r := range allowedRoles {
			if user.Role == r {
				c.Next()
				return
			}
		}

		response.Unauthorized(c, "仅限管理员访问")
		c.Abort()
	}
}
