package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/vahbuna0615/assignment-submission-api/internal/service"
	"github.com/vahbuna0615/assignment-submission-api/pkg/response"
)

// UserHandler 用户模块 HTTP 处理器
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler 创建 UserHandler
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// ListAdmins 获取全部管理员
// GET /admins
func (h *UserHandler) ListAdmins(c *gin.Context) {
	admins, err := h.userSvc.ListAdmins(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}

	response.OK(c, admins)
}
