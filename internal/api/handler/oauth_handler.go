package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vahbuna0615/assignment-submission-api/internal/service"
	"github.com/vahbuna0615/assignment-submission-api/pkg/response"
)

// OAuthHandler Google OAuth 登录 HTTP 处理器
type OAuthHandler struct {
	oauthSvc service.OAuthService
}

// NewOAuthHandler 创建 OAuthHandler
func NewOAuthHandler(oauthSvc service.OAuthService) *OAuthHandler {
	return &OAuthHandler{oauthSvc: oauthSvc}
}

// Redirect 重定向到 Google 授权页
// GET /
func (h *OAuthHandler) Redirect(c *gin.Context) {
	c.Redirect(http.StatusFound, h.oauthSvc.AuthURL())
}

// Callback Google 授权回调
// GET /google/callback?code=...
// 外部调用的任何失败统一作为 500 传播，不做重试
func (h *OAuthHandler) Callback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		response.BadRequest(c, "缺少授权码")
		return
	}

	result, err := h.oauthSvc.HandleCallback(c.Request.Context(), code)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	response.OK(c, result)
}
