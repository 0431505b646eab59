package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vahbuna0615/assignment-submission-api/internal/dto"
	"github.com/vahbuna0615/assignment-submission-api/internal/model"
	"github.com/vahbuna0615/assignment-submission-api/internal/service"
	"github.com/vahbuna0615/assignment-submission-api/pkg/response"
)

// AssignmentHandler 作业模块 HTTP 处理器
type AssignmentHandler struct {
	assignmentSvc service.AssignmentService
	exportSvc     service.ExportService
}

// NewAssignmentHandler 创建 AssignmentHandler
func NewAssignmentHandler(assignmentSvc service.AssignmentService, exportSvc service.ExportService) *AssignmentHandler {
	return &AssignmentHandler{assignmentSvc: assignmentSvc, exportSvc: exportSvc}
}

// Upload 提交作业给指定管理员
// POST /upload
func (h *AssignmentHandler) Upload(c *gin.Context) {
	user, ok := MustGetCurrentUser(c)
	if !ok {
		return
	}

	var req dto.UploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, "参数校验失败", err)
		return
	}

	assignment, err := h.assignmentSvc.Submit(c.Request.Context(), user.UserID, &req)
	if err != nil {
		if errors.Is(err, service.ErrAdminNotFound) {
			response.NotFound(c, "指定的管理员不存在")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.Created(c, assignment)
}

// List 获取当前管理员名下的全部作业
// GET /assignments
func (h *AssignmentHandler) List(c *gin.Context) {
	user, ok := MustGetCurrentUser(c)
	if !ok {
		return
	}

	assignments, err := h.assignmentSvc.ListForAdmin(c.Request.Context(), user.UserID)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	response.OK(c, assignments)
}

// Accept 受理作业
// POST /assignments/:id/accept
func (h *AssignmentHandler) Accept(c *gin.Context) {
	h.transition(c, model.StatusAccepted, "已受理该作业")
}

// Reject 驳回作业
// POST /assignments/:id/reject
func (h *AssignmentHandler) Reject(c *gin.Context) {
	h.transition(c, model.StatusRejected, "已驳回该作业")
}

// transition 状态转移的公共路径：先做路径参数的结构校验，再调用工作流
func (h *AssignmentHandler) transition(c *gin.Context, status, message string) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.BadRequest(c, "作业 id 格式无效")
		return
	}

	assignment, err := h.assignmentSvc.UpdateStatus(c.Request.Context(), id, status)
	if err != nil {
		if errors.Is(err, service.ErrAssignmentNotFound) {
			response.NotFound(c, "作业不存在")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, dto.TransitionResponse{
		Message:    message,
		Assignment: assignment,
	})
}

// Export 导出当前管理员的作业收件箱为 Excel
// GET /assignments/export
func (h *AssignmentHandler) Export(c *gin.Context) {
	user, ok := MustGetCurrentUser(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportForAdmin(c.Request.Context(), user.UserID)
	if err != nil {
		if errors.Is(err, service.ErrExportNoAssignments) {
			response.NotFound(c, "暂无可导出的作业提交")
			return
		}
		response.InternalError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
