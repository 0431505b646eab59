package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/vahbuna0615/assignment-submission-api/internal/dto"
	"github.com/vahbuna0615/assignment-submission-api/internal/model"
)

func newTestAssignmentService(users *mockUserRepo, assignments *mockAssignmentRepo) AssignmentService {
	return NewAssignmentService(newTestRepository(users, assignments), zap.NewNop())
}

// ══ Submit ══

func TestSubmit_Success(t *testing.T) {
	users := newMockUserRepo()
	admin := mustRegisterUser(t, users, "管理员", "admin@example.com", "secret123", model.RoleAdmin)
	submitter := mustRegisterUser(t, users, "小明", "xiaoming@example.com", "secret123", model.RoleUser)
	svc := newTestAssignmentService(users, newMockAssignmentRepo())

	assignment, err := svc.Submit(context.Background(), submitter.UserID, &dto.UploadRequest{
		Task:  "第一次作业",
		Admin: admin.UserID,
	})
	if err != nil {
		t.Fatalf("Submit 失败: %v", err)
	}

	if assignment.Status != model.StatusPending {
		t.Errorf("新提交状态期望 pending，实际=%s", assignment.Status)
	}
	if assignment.UserID != submitter.UserID {
		t.Errorf("提交人期望 %s，实际=%s", submitter.UserID, assignment.UserID)
	}
	if assignment.AdminID != admin.UserID {
		t.Errorf("受理人期望 %s，实际=%s", admin.UserID, assignment.AdminID)
	}
}

func TestSubmit_AdminNotFound(t *testing.T) {
	users := newMockUserRepo()
	submitter := mustRegisterUser(t, users, "小明", "xiaoming@example.com", "secret123", model.RoleUser)
	svc := newTestAssignmentService(users, newMockAssignmentRepo())

	_, err := svc.Submit(context.Background(), submitter.UserID, &dto.UploadRequest{
		Task:  "第一次作业",
		Admin: "no-such-admin",
	})
	if err != ErrAdminNotFound {
		t.Errorf("期望 ErrAdminNotFound，实际: %v", err)
	}
}

func TestSubmit_AdminRoleMismatch(t *testing.T) {
	users := newMockUserRepo()
	plainUser := mustRegisterUser(t, users, "小红", "xiaohong@example.com", "secret123", model.RoleUser)
	submitter := mustRegisterUser(t, users, "小明", "xiaoming@example.com", "secret123", model.RoleUser)
	svc := newTestAssignmentService(users, newMockAssignmentRepo())

	// 受理人存在但角色是 user，同样按不存在处理
	_, err := svc.Submit(context.Background(), submitter.UserID, &dto.UploadRequest{
		Task:  "第一次作业",
		Admin: plainUser.UserID,
	})
	if err != ErrAdminNotFound {
		t.Errorf("期望 ErrAdminNotFound，实际: %v", err)
	}
}

// ══ ListForAdmin ══

func TestListForAdmin_FiltersByAdmin(t *testing.T) {
	users := newMockUserRepo()
	adminA := mustRegisterUser(t, users, "管理员A", "admin-a@example.com", "secret123", model.RoleAdmin)
	adminB := mustRegisterUser(t, users, "管理员B", "admin-b@example.com", "secret123", model.RoleAdmin)
	submitter := mustRegisterUser(t, users, "小明", "xiaoming@example.com", "secret123", model.RoleUser)

	assignments := newMockAssignmentRepo()
	svc := newTestAssignmentService(users, assignments)

	for i := 0; i < 3; i++ {
		if _, err := svc.Submit(context.Background(), submitter.UserID, &dto.UploadRequest{Task: "给A的作业", Admin: adminA.UserID}); err != nil {
			t.Fatalf("Submit 失败: %v", err)
		}
	}
	if _, err := svc.Submit(context.Background(), submitter.UserID, &dto.UploadRequest{Task: "给B的作业", Admin: adminB.UserID}); err != nil {
		t.Fatalf("Submit 失败: %v", err)
	}

	listA, err := svc.ListForAdmin(context.Background(), adminA.UserID)
	if err != nil {
		t.Fatalf("ListForAdmin 失败: %v", err)
	}
	if len(listA) != 3 {
		t.Errorf("管理员A 期望 3 条，实际=%d", len(listA))
	}
	for _, a := range listA {
		if a.AdminID != adminA.UserID {
			t.Errorf("列表包含其他管理员的作业: %s", a.AdminID)
		}
	}
}

func TestListForAdmin_Empty(t *testing.T) {
	svc := newTestAssignmentService(newMockUserRepo(), newMockAssignmentRepo())

	list, err := svc.ListForAdmin(context.Background(), "admin-without-assignments")
	if err != nil {
		t.Fatalf("ListForAdmin 失败: %v", err)
	}
	if list == nil {
		t.Error("空结果应返回空切片而非 nil")
	}
	if len(list) != 0 {
		t.Errorf("期望空列表，实际=%d 条", len(list))
	}
}

// ══ UpdateStatus ══

func TestUpdateStatus_NotFound(t *testing.T) {
	svc := newTestAssignmentService(newMockUserRepo(), newMockAssignmentRepo())

	_, err := svc.UpdateStatus(context.Background(), "no-such-id", model.StatusAccepted)
	if err != ErrAssignmentNotFound {
		t.Errorf("期望 ErrAssignmentNotFound，实际: %v", err)
	}
}

func TestUpdateStatus_AcceptPersisted(t *testing.T) {
	users := newMockUserRepo()
	admin := mustRegisterUser(t, users, "管理员", "admin@example.com", "secret123", model.RoleAdmin)
	submitter := mustRegisterUser(t, users, "小明", "xiaoming@example.com", "secret123", model.RoleUser)

	assignments := newMockAssignmentRepo()
	svc := newTestAssignmentService(users, assignments)

	created, err := svc.Submit(context.Background(), submitter.UserID, &dto.UploadRequest{Task: "作业", Admin: admin.UserID})
	if err != nil {
		t.Fatalf("Submit 失败: %v", err)
	}

	updated, err := svc.UpdateStatus(context.Background(), created.AssignmentID, model.StatusAccepted)
	if err != nil {
		t.Fatalf("UpdateStatus 失败: %v", err)
	}
	if updated.Status != model.StatusAccepted {
		t.Errorf("期望状态 accepted，实际=%s", updated.Status)
	}

	// 后续读取应反映新状态
	reloaded, err := assignments.GetByID(context.Background(), created.AssignmentID)
	if err != nil {
		t.Fatalf("GetByID 失败: %v", err)
	}
	if reloaded.Status != model.StatusAccepted {
		t.Errorf("持久化状态期望 accepted，实际=%s", reloaded.Status)
	}
}

func TestUpdateStatus_PermissiveRetransition(t *testing.T) {
	users := newMockUserRepo()
	admin := mustRegisterUser(t, users, "管理员", "admin@example.com", "secret123", model.RoleAdmin)
	submitter := mustRegisterUser(t, users, "小明", "xiaoming@example.com", "secret123", model.RoleUser)

	svc := newTestAssignmentService(users, newMockAssignmentRepo())

	created, err := svc.Submit(context.Background(), submitter.UserID, &dto.UploadRequest{Task: "作业", Admin: admin.UserID})
	if err != nil {
		t.Fatalf("Submit 失败: %v", err)
	}

	if _, err := svc.UpdateStatus(context.Background(), created.AssignmentID, model.StatusAccepted); err != nil {
		t.Fatalf("首次转移失败: %v", err)
	}

	// 状态转移不校验前向合法性，已受理的作业仍可被覆盖为驳回
	updated, err := svc.UpdateStatus(context.Background(), created.AssignmentID, model.StatusRejected)
	if err != nil {
		t.Fatalf("覆盖转移失败: %v", err)
	}
	if updated.Status != model.StatusRejected {
		t.Errorf("期望状态 rejected，实际=%s", updated.Status)
	}
}

// ══ 端到端流程 ══

func TestEndToEnd_SubmitAcceptFlow(t *testing.T) {
	users := newMockUserRepo()
	assignments := newMockAssignmentRepo()
	authSvc := NewAuthService(newTestRepository(users, assignments), newTestJWTManager(), nil, zap.NewNop())
	assignmentSvc := newTestAssignmentService(users, assignments)

	// 注册普通用户与管理员
	u, err := authSvc.Register(context.Background(), &dto.RegisterRequest{Name: "小明", Email: "u@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("注册用户失败: %v", err)
	}
	m, err := authSvc.Register(context.Background(), &dto.RegisterRequest{Name: "管理员", Email: "m@example.com", Password: "secret123", Role: model.RoleAdmin})
	if err != nil {
		t.Fatalf("注册管理员失败: %v", err)
	}

	// 登录普通用户并提交作业
	if _, err := authSvc.Login(context.Background(), &dto.LoginRequest{Email: "u@example.com", Password: "secret123"}); err != nil {
		t.Fatalf("用户登录失败: %v", err)
	}
	created, err := assignmentSvc.Submit(context.Background(), u.ID, &dto.UploadRequest{Task: "期末大作业", Admin: m.ID})
	if err != nil {
		t.Fatalf("提交作业失败: %v", err)
	}

	// 登录管理员，列表应包含 pending 状态的提交
	if _, err := authSvc.Login(context.Background(), &dto.LoginRequest{Email: "m@example.com", Password: "secret123"}); err != nil {
		t.Fatalf("管理员登录失败: %v", err)
	}
	list, err := assignmentSvc.ListForAdmin(context.Background(), m.ID)
	if err != nil {
		t.Fatalf("ListForAdmin 失败: %v", err)
	}
	if len(list) != 1 || list[0].Task != "期末大作业" || list[0].Status != model.StatusPending {
		t.Fatalf("列表内容不符: %+v", list)
	}

	// 受理后重新拉取，状态应为 accepted
	if _, err := assignmentSvc.UpdateStatus(context.Background(), created.AssignmentID, model.StatusAccepted); err != nil {
		t.Fatalf("受理失败: %v", err)
	}
	list, err = assignmentSvc.ListForAdmin(context.Background(), m.ID)
	if err != nil {
		t.Fatalf("ListForAdmin 失败: %v", err)
	}
	if list[0].Status != model.StatusAccepted {
		t.Errorf("重新拉取后状态期望 accepted，实际=%s", list[0].Status)
	}
}
