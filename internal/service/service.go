package service

import (
	"go.uber.org/zap"

	"github.com/vahbuna0615/assignment-submission-api/config"
	"github.com/vahbuna0615/assignment-submission-api/internal/repository"
	"github.com/vahbuna0615/assignment-submission-api/pkg/jwt"
	"github.com/vahbuna0615/assignment-submission-api/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth       AuthService
	User       UserService
	Assignment AssignmentService
	Export     ExportService
	OAuth      OAuthService
}

// NewService 创建 Service 聚合
// rdb 允许为 nil，此时登出黑名单降级为空操作
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:       NewAuthService(repo, jwtMgr, rdb, logger),
		User:       NewUserService(repo, logger),
		Assignment: NewAssignmentService(repo, logger),
		Export:     NewExportService(repo, logger),
		OAuth:      NewOAuthService(&cfg.Google, repo, jwtMgr, logger),
	}
}
