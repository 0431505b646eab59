package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/vahbuna0615/assignment-submission-api/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoAssignments = errors.New("暂无可导出的作业提交")
	ErrExportGenerateFail  = errors.New("生成 Excel 文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 将管理员名下全部作业提交导出为 Excel (.xlsx)
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportForAdmin 导出指定管理员的作业收件箱
	ExportForAdmin(ctx context.Context, adminID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// Excel 列头
var exportHeaders = []string{"任务", "提交人", "状态", "提交时间", "更新时间"}

func (s *exportService) ExportForAdmin(ctx context.Context, adminID string) (*bytes.Buffer, string, error) {
	// 1. 查询该管理员名下的作业
	assignments, err := s.repo.Assignment.ListByAdmin(ctx, adminID)
	if err != nil {
		s.logger.Error("查询作业列表失败", zap.Error(err))
		return nil, "", err
	}
	if len(assignments) == 0 {
		return nil, "", ErrExportNoAssignments
	}

	// 2. 生成工作簿
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, "", ErrExportGenerateFail
		}
	}

	for row, a := range assignments {
		submitter := a.UserID
		if a.User != nil {
			submitter = a.User.Name
		}
		values := []interface{}{
			a.Task,
			submitter,
			a.Status,
			a.SubmissionDate.Format("2006-01-02 15:04:05"),
			a.UpdatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, "", ErrExportGenerateFail
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("写入 Excel 缓冲失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("assignments-%s.xlsx", time.Now().Format("20060102"))
	return buf, filename, nil
}
