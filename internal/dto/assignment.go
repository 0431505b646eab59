package dto

// ── 作业模块 DTO ──

// UploadRequest 作业提交请求
// admin 为受理管理员的用户 ID
type UploadRequest struct {
	Task  string `json:"task"  binding:"required"`
	Admin string `json:"admin" binding:"required,uuid"`
}

// TransitionResponse 受理 / 驳回成功响应
type TransitionResponse struct {
	Message    string      `json:"message"`
	Assignment interface{} `json:"assignment,omitempty"`
}
