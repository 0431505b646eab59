package service

import (
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/vahbuna0615/assignment-submission-api/config"
)

func TestAuthURL_CarriesStaticState(t *testing.T) {
	svc := NewOAuthService(&config.GoogleConfig{
		ClientID:     "client-id-123",
		ClientSecret: "client-secret",
		RedirectURL:  "http://localhost:3000/google/callback",
		State:        "fixed-state-value",
	}, newTestRepository(newMockUserRepo(), newMockAssignmentRepo()), newTestJWTManager(), zap.NewNop())

	url := svc.AuthURL()

	// state 为固定配置值，每次构造的授权地址都相同
	if url != svc.AuthURL() {
		t.Error("固定 state 下授权地址应保持一致")
	}
	if !strings.Contains(url, "state=fixed-state-value") {
		t.Errorf("授权地址应携带配置的 state，实际=%s", url)
	}
	if !strings.Contains(url, "client_id=client-id-123") {
		t.Errorf("授权地址应携带 client_id，实际=%s", url)
	}
	if !strings.Contains(url, "accounts.google.com") {
		t.Errorf("授权地址应指向 Google，实际=%s", url)
	}
}
