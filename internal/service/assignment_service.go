package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vahbuna0615/assignment-submission-api/internal/dto"
	"github.com/vahbuna0615/assignment-submission-api/internal/model"
	"github.com/vahbuna0615/assignment-submission-api/internal/repository"
)

// ── 作业模块业务错误 ──

var (
	ErrAdminNotFound      = errors.New("指定的管理员不存在")
	ErrAssignmentNotFound = errors.New("作业不存在")
)

// AssignmentService 作业业务接口
type AssignmentService interface {
	Submit(ctx context.Context, submitterID string, req *dto.UploadRequest) (*model.Assignment, error)
	ListForAdmin(ctx context.Context, adminID string) ([]model.Assignment, error)
	UpdateStatus(ctx context.Context, id, status string) (*model.Assignment, error)
}

type assignmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAssignmentService 创建 AssignmentService 实例
func NewAssignmentService(repo *repository.Repository, logger *zap.Logger) AssignmentService {
	return &assignmentService{repo: repo, logger: logger}
}

func (s *assignmentService) Submit(ctx context.Context, submitterID string, req *dto.UploadRequest) (*model.Assignment, error) {
	// 1. 受理人必须是存在的管理员
	admin, err := s.repo.User.GetAdminByID(ctx, req.Admin)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		s.logger.Error("查询管理员失败", zap.Error(err))
		return nil, err
	}

	// 2. 创建 pending 状态的提交
	assignment := &model.Assignment{
		UserID:  submitterID,
		AdminID: admin.UserID,
		Task:    req.Task,
		Status:  model.StatusPending,
	}

	if err := s.repo.Assignment.Create(ctx, assignment); err != nil {
		s.logger.Error("创建作业提交失败", zap.Error(err))
		return nil, err
	}

	return assignment, nil
}

func (s *assignmentService) ListForAdmin(ctx context.Context, adminID string) ([]model.Assignment, error) {
	assignments, err := s.repo.Assignment.ListByAdmin(ctx, adminID)
	if err != nil {
		s.logger.Error("查询作业列表失败", zap.Error(err))
		return nil, err
	}
	if assignments == nil {
		assignments = []model.Assignment{}
	}
	return assignments, nil
}

// UpdateStatus 将作业状态覆盖为 status 并返回更新后的记录
// 仅校验记录存在；不校验状态是否为合法的前向转移，
// 也不校验调用方是否为该作业指定的管理员
func (s *assignmentService) UpdateStatus(ctx context.Context, id, status string) (*model.Assignment, error) {
	if _, err := s.repo.Assignment.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		s.logger.Error("查询作业失败", zap.Error(err))
		return nil, err
	}

	if err := s.repo.Assignment.UpdateStatus(ctx, id, status); err != nil {
		s.logger.Error("更新作业状态失败", zap.Error(err))
		return nil, err
	}

	updated, err := s.repo.Assignment.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("重新加载作业失败", zap.Error(err))
		return nil, err
	}

	return updated, nil
}
