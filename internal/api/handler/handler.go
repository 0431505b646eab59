package handler

import "github.com/vahbuna0615/assignment-submission-api/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth       *AuthHandler
	User       *UserHandler
	Assignment *AssignmentHandler
	OAuth      *OAuthHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(svc.Auth),
		User:       NewUserHandler(svc.User),
		Assignment: NewAssignmentHandler(svc.Assignment, svc.Export),
		OAuth:      NewOAuthHandler(svc.OAuth),
	}
}
