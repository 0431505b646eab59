package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vahbuna0615/assignment-submission-api/config"
	"github.com/vahbuna0615/assignment-submission-api/internal/api/handler"
	"github.com/vahbuna0615/assignment-submission-api/internal/api/middleware"
	"github.com/vahbuna0615/assignment-submission-api/internal/model"
	"github.com/vahbuna0615/assignment-submission-api/internal/repository"
	"github.com/vahbuna0615/assignment-submission-api/pkg/jwt"
	"github.com/vahbuna0615/assignment-submission-api/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(
	cfg *config.Config,
	h *handler.Handler,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	repo *repository.Repository,
	logger *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── 认证模块（无需认证）──
	r.POST("/register", h.Auth.Register)
	r.POST("/login", h.Auth.Login)

	// ── Google OAuth 登录 ──
	r.GET("/", h.OAuth.Redirect)
	r.GET("/google/callback", h.OAuth.Callback)

	// ── 需要认证的路由 ──
	authorized := r.Group("")
	authorized.Use(middleware.JWTAuth(jwtMgr, rdb, repo.User))
	{
		authorized.POST("/logout", h.Auth.Logout)
		authorized.POST("/upload", h.Assignment.Upload)
		authorized.GET("/admins", h.User.ListAdmins)

		// 作业管理，仅限管理员
		assignments := authorized.Group("/assignments")
		assignments.Use(middleware.RoleAuth(model.RoleAdmin))
		{
			assignments.GET("", h.Assignment.List)
			assignments.GET("/export", h.Assignment.Export)
			assignments.POST("/:id/accept", h.Assignment.Accept)
			assignments.POST("/:id/reject", h.Assignment.Reject)
		}
	}

	return r
}
