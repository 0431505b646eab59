package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/vahbuna0615/assignment-submission-api/internal/model"
	"github.com/vahbuna0615/assignment-submission-api/internal/repository"
)

// UserService 用户业务接口
type UserService interface {
	// ListAdmins 返回全部管理员，供提交作业时选择受理人
	ListAdmins(ctx context.Context) ([]model.User, error)
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService 创建 UserService 实例
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

func (s *userService) ListAdmins(ctx context.Context) ([]model.User, error) {
	admins, err := s.repo.User.ListAdmins(ctx)
	if err != nil {
		s.logger.Error("查询管理员列表失败", zap.Error(err))
		return nil, err
	}
	if admins == nil {
		admins = []model.User{}
	}
	return admins, nil
}
