package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gorm.io/gorm"

	"github.com/vahbuna0615/assignment-submission-api/config"
	"github.com/vahbuna0615/assignment-submission-api/internal/dto"
	"github.com/vahbuna0615/assignment-submission-api/internal/model"
	"github.com/vahbuna0615/assignment-submission-api/internal/repository"
	"github.com/vahbuna0615/assignment-submission-api/pkg/jwt"
)

const userinfoEndpoint = "https://www.googleapis.com/oauth2/v2/userinfo"

// 回调创建的用户拿不到本地密码，写入固定占位值的哈希
const oauthPlaceholderPassword = "google-oauth-login"

// OAuthService Google OAuth 登录桥接
//
// 流程：重定向到授权页 → 用 code 换取 access token → 拉取用户资料
// → 按邮箱 upsert 用户 → 签发本系统 Token。
// 外部调用失败不重试、不区分错误类型，统一向上传播。
type OAuthService interface {
	// AuthURL 构造 Google 授权页地址，state 为固定配置值
	AuthURL() string
	HandleCallback(ctx context.Context, code string) (*dto.AuthResponse, error)
}

type oauthService struct {
	oauth  *oauth2.Config
	state  string
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	logger *zap.Logger
}

// NewOAuthService 创建 OAuthService 实例
func NewOAuthService(
	cfg *config.GoogleConfig,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	logger *zap.Logger,
) OAuthService {
	return &oauthService{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
		state:  cfg.State,
		repo:   repo,
		jwtMgr: jwtMgr,
		logger: logger,
	}
}

func (s *oauthService) AuthURL() string {
	return s.oauth.AuthCodeURL(s.state)
}

// googleProfile userinfo 响应中本系统关心的字段
type googleProfile struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (s *oauthService) HandleCallback(ctx context.Context, code string) (*dto.AuthResponse, error) {
	// 1. 用授权码换取 access token
	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		s.logger.Error("OAuth 换取 token 失败", zap.Error(err))
		return nil, fmt.Errorf("换取 access token 失败: %w", err)
	}

	// 2. 拉取用户资料
	profile, err := s.fetchProfile(ctx, token)
	if err != nil {
		s.logger.Error("拉取 Google 用户资料失败", zap.Error(err))
		return nil, err
	}

	// 3. 按邮箱 upsert 用户
	user, err := s.upsertUser(ctx, profile)
	if err != nil {
		return nil, err
	}

	// 4. 签发本系统 Token
	jwtToken, err := s.jwtMgr.Generate(user.UserID)
	if err != nil {
		s.logger.Error("签发 Token 失败", zap.Error(err))
		return nil, err
	}

	return &dto.AuthResponse{
		ID:    user.UserID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
		Token: jwtToken,
	}, nil
}

func (s *oauthService) fetchProfile(ctx context.Context, token *oauth2.Token) (*googleProfile, error) {
	resp, err := s.oauth.Client(ctx, token).Get(userinfoEndpoint)
	if err != nil {
		return nil, fmt.Errorf("请求 userinfo 失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo 返回异常状态 %d", resp.StatusCode)
	}

	var profile googleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("解析 userinfo 响应失败: %w", err)
	}
	if profile.Email == "" {
		return nil, fmt.Errorf("userinfo 响应缺少 email")
	}

	return &profile, nil
}

func (s *oauthService) upsertUser(ctx context.Context, profile *googleProfile) (*model.User, error) {
	email := strings.ToLower(profile.Email)

	user, err := s.repo.User.GetByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(oauthPlaceholderPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user = &model.User{
		Name:         profile.Name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.RoleUser,
	}
	if err := s.repo.User.Create(ctx, user); err != nil {
		s.logger.Error("创建用户失败", zap.Error(err))
		return nil, err
	}

	return user, nil
}
