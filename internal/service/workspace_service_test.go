package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"kanban-workspace-api/internal/domain"
	"kanban-workspace-api/internal/dto"
	"kanban-workspace-api/internal/notifier"
	"kanban-workspace-api/internal/response"
)

func newWorkspaceService(t *testing.T, wsRepo *MockWorkspaceRepository, memberRepo *MockWorkspaceMemberRepository, boardMembers *MockBoardMemberRepository, n *MockNotifier) WorkspaceService {
	t.Helper()
	if n == nil {
		n = &MockNotifier{}
	}
	return NewWorkspaceService(newTxDB(t), wsRepo, memberRepo, boardMembers, n, nil, zap.NewNop())
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *response.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}

func TestCreateWorkspace_EnrollsCreatorAsOwner(t *testing.T) {
	actorID := uuid.New()
	var createdMember *domain.WorkspaceMember

	wsRepo := &MockWorkspaceRepository{
		CreateFunc: func(ctx context.Context, workspace *domain.Workspace) error {
			workspace.ID = uuid.New()
			return nil
		},
	}
	memberRepo := &MockWorkspaceMemberRepository{
		CreateFunc: func(ctx context.Context, member *domain.WorkspaceMember) error {
			createdMember = member
			return nil
		},
	}

	svc := newWorkspaceService(t, wsRepo, memberRepo, &MockBoardMemberRepository{}, nil)
	resp, err := svc.CreateWorkspace(ctxWithUser(actorID), &dto.CreateWorkspaceRequest{Name: "Engineering"})

	require.NoError(t, err)
	assert.Equal(t, "Engineering", resp.Name)
	require.NotNil(t, createdMember)
	assert.Equal(t, actorID, createdMember.UserID)
	assert.Equal(t, domain.WorkspaceRoleOwner, createdMember.Role)
	assert.Equal(t, domain.PolicyAdminsOnly, resp.PrivateBoardCreation)
	assert.Equal(t, domain.PolicyAdminsOnly, resp.SharedBoardCreation)
}

func TestCreateWorkspace_Unauthenticated(t *testing.T) {
	svc := newWorkspaceService(t, &MockWorkspaceRepository{}, &MockWorkspaceMemberRepository{}, &MockBoardMemberRepository{}, nil)

	_, err := svc.CreateWorkspace(context.Background(), &dto.CreateWorkspaceRequest{Name: "x"})

	assertAppErrorCode(t, err, response.ErrCodeUnauthorized)
}

func TestGetWorkspace_NonMemberForbidden(t *testing.T) {
	workspaceID := uuid.New()
	wsRepo := &MockWorkspaceRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
			return &domain.Workspace{BaseModel: domain.BaseModel{ID: workspaceID}, Name: "ws"}, nil
		},
	}

	svc := newWorkspaceService(t, wsRepo, &MockWorkspaceMemberRepository{}, &MockBoardMemberRepository{}, nil)
	_, err := svc.GetWorkspace(ctxWithUser(uuid.New()), workspaceID)

	assertAppErrorCode(t, err, response.ErrCodeForbidden)
}

func TestGetWorkspace_NotFound(t *testing.T) {
	svc := newWorkspaceService(t, &MockWorkspaceRepository{}, &MockWorkspaceMemberRepository{}, &MockBoardMemberRepository{}, nil)

	_, err := svc.GetWorkspace(ctxWithUser(uuid.New()), uuid.New())

	assertAppErrorCode(t, err, response.ErrCodeNotFound)
}

func TestChangeMemberRole_OwnerRoleRejected(t *testing.T) {
	svc := newWorkspaceService(t, &MockWorkspaceRepository{}, &MockWorkspaceMemberRepository{}, &MockBoardMemberRepository{}, nil)

	_, err := svc.ChangeMemberRole(ctxWithUser(uuid.New()), uuid.New(), uuid.New(), &dto.ChangeWorkspaceRoleRequest{Role: domain.WorkspaceRoleOwner})

	assertAppErrorCode(t, err, response.ErrCodeValidation)
}

func TestChangeMemberRole_CannotChangeOwner(t *testing.T) {
	workspaceID := uuid.New()
	actorID := uuid.New()
	ownerID := uuid.New()

	wsRepo := &MockWorkspaceRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
			return &domain.Workspace{BaseModel: domain.BaseModel{ID: workspaceID}}, nil
		},
	}
	memberRepo := &MockWorkspaceMemberRepository{
		FindByWorkspaceAndUserFunc: func(ctx context.Context, wsID, userID uuid.UUID) (*domain.WorkspaceMember, error) {
			switch userID {
			case actorID:
				return &domain.WorkspaceMember{WorkspaceID: wsID, UserID: userID, Role: domain.WorkspaceRoleAdmin}, nil
			case ownerID:
				return &domain.WorkspaceMember{WorkspaceID: wsID, UserID: userID, Role: domain.WorkspaceRoleOwner}, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := newWorkspaceService(t, wsRepo, memberRepo, &MockBoardMemberRepository{}, nil)
	_, err := svc.ChangeMemberRole(ctxWithUser(actorID), workspaceID, ownerID, &dto.ChangeWorkspaceRoleRequest{Role: domain.WorkspaceRoleMember})

	assertAppErrorCode(t, err, response.ErrCodeForbidden)
}

func TestChangeMemberRole_MemberNotFound(t *testing.T) {
	workspaceID := uuid.New()
	actorID := uuid.New()

	wsRepo := &MockWorkspaceRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
			return &domain.Workspace{BaseModel: domain.BaseModel{ID: workspaceID}}, nil
		},
	}
	memberRepo := &MockWorkspaceMemberRepository{
		FindByWorkspaceAndUserFunc: func(ctx context.Context, wsID, userID uuid.UUID) (*domain.WorkspaceMember, error) {
			if userID == actorID {
				return &domain.WorkspaceMember{WorkspaceID: wsID, UserID: userID, Role: domain.WorkspaceRoleOwner}, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := newWorkspaceService(t, wsRepo, memberRepo, &MockBoardMemberRepository{}, nil)
	_, err := svc.ChangeMemberRole(ctxWithUser(actorID), workspaceID, uuid.New(), &dto.ChangeWorkspaceRoleRequest{Role: domain.WorkspaceRoleMember})

	assertAppErrorCode(t, err, response.ErrCodeNotFound)
}

func TestRemoveMember_SelfRejected(t *testing.T) {
	actorID := uuid.New()
	svc := newWorkspaceService(t, &MockWorkspaceRepository{}, &MockWorkspaceMemberRepository{}, &MockBoardMemberRepository{}, nil)

	err := svc.RemoveMember(ctxWithUser(actorID), uuid.New(), actorID)

	assertAppErrorCode(t, err, response.ErrCodeValidation)
}

func TestRemoveMember_OwnerCannotBeRemoved(t *testing.T) {
	workspaceID := uuid.New()
	actorID := uuid.New()
	ownerID := uuid.New()

	wsRepo := &MockWorkspaceRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
			return &domain.Workspace{BaseModel: domain.BaseModel{ID: workspaceID}}, nil
		},
	}
	memberRepo := &MockWorkspaceMemberRepository{
		FindByWorkspaceAndUserFunc: func(ctx context.Context, wsID, userID uuid.UUID) (*domain.WorkspaceMember, error) {
			switch userID {
			case actorID:
				return &domain.WorkspaceMember{WorkspaceID: wsID, UserID: userID, Role: domain.WorkspaceRoleAdmin}, nil
			case ownerID:
				return &domain.WorkspaceMember{WorkspaceID: wsID, UserID: userID, Role: domain.WorkspaceRoleOwner}, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := newWorkspaceService(t, wsRepo, memberRepo, &MockBoardMemberRepository{}, nil)
	err := svc.RemoveMember(ctxWithUser(actorID), workspaceID, ownerID)

	assertAppErrorCode(t, err, response.ErrCodeForbidden)
}

func TestRemoveMember_CascadesBoardMemberships(t *testing.T) {
	workspaceID := uuid.New()
	actorID := uuid.New()
	targetID := uuid.New()
	cascaded := false
	deleted := false

	wsRepo := &MockWorkspaceRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
			return &domain.Workspace{BaseModel: domain.BaseModel{ID: workspaceID}}, nil
		},
	}
	memberRepo := &MockWorkspaceMemberRepository{
		FindByWorkspaceAndUserFunc: func(ctx context.Context, wsID, userID uuid.UUID) (*domain.WorkspaceMember, error) {
			if userID == actorID {
				return &domain.WorkspaceMember{WorkspaceID: wsID, UserID: userID, Role: domain.WorkspaceRoleOwner}, nil
			}
			return &domain.WorkspaceMember{WorkspaceID: wsID, UserID: userID, Role: domain.WorkspaceRoleMember}, nil
		},
		DeleteFunc: func(ctx context.Context, wsID, userID uuid.UUID) error {
			deleted = true
			assert.Equal(t, targetID, userID)
			return nil
		},
	}
	boardMembers := &MockBoardMemberRepository{
		DeleteByWorkspaceAndUserFunc: func(ctx context.Context, wsID, userID uuid.UUID) error {
			cascaded = true
			assert.Equal(t, workspaceID, wsID)
			assert.Equal(t, targetID, userID)
			return nil
		},
	}
	n := &MockNotifier{}

	svc := newWorkspaceService(t, wsRepo, memberRepo, boardMembers, n)
	err := svc.RemoveMember(ctxWithUser(actorID), workspaceID, targetID)

	require.NoError(t, err)
	assert.True(t, cascaded)
	assert.True(t, deleted)
	assert.Contains(t, n.Types(), notifier.EventMemberRemoved)
}

func TestLeaveWorkspace_OwnerMustTransferFirst(t *testing.T) {
	workspaceID := uuid.New()
	ownerID := uuid.New()

	wsRepo := &MockWorkspaceRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
			return &domain.Workspace{BaseModel: domain.BaseModel{ID: workspaceID}}, nil
		},
	}
	memberRepo := &MockWorkspaceMemberRepository{
		FindByWorkspaceAndUserFunc: func(ctx context.Context, wsID, userID uuid.UUID) (*domain.WorkspaceMember, error) {
			return &domain.WorkspaceMember{WorkspaceID: wsID, UserID: userID, Role: domain.WorkspaceRoleOwner}, nil
		},
	}

	svc := newWorkspaceService(t, wsRepo, memberRepo, &MockBoardMemberRepository{}, nil)
	err := svc.LeaveWorkspace(ctxWithUser(ownerID), workspaceID)

	assertAppErrorCode(t, err, response.ErrCodeForbidden)
}

func TestTransferOwnership_SelfTargetRejected(t *testing.T) {
	workspaceID := uuid.New()
	actorID := uuid.New()

	wsRepo := &MockWorkspaceRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
			return &domain.Workspace{BaseModel: domain.BaseModel{ID: workspaceID}}, nil
		},
	}

	svc := newWorkspaceService(t, wsRepo, &MockWorkspaceMemberRepository{}, &MockBoardMemberRepository{}, nil)
	err := svc.TransferOwnership(ctxWithUser(actorID), workspaceID, &dto.TransferOwnershipRequest{NewOwnerID: actorID})

	assertAppErrorCode(t, err, response.ErrCodeValidation)
}

func TestTransferOwnership_OnlyOwnerMayTransfer(t *testing.T) {
	workspaceID := uuid.New()
	actorID := uuid.New()

	wsRepo := &MockWorkspaceRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
			return &domain.Workspace{BaseModel: domain.BaseModel{ID: workspaceID}}, nil
		},
	}
	memberRepo := &MockWorkspaceMemberRepository{
		FindByWorkspaceAndUserFunc: func(ctx context.Context, wsID, userID uuid.UUID) (*domain.WorkspaceMember, error) {
			return &domain.WorkspaceMember{WorkspaceID: wsID, UserID: userID, Role: domain.WorkspaceRoleAdmin}, nil
		},
	}

	svc := newWorkspaceService(t, wsRepo, memberRepo, &MockBoardMemberRepository{}, nil)
	err := svc.TransferOwnership(ctxWithUser(actorID), workspaceID, &dto.TransferOwnershipRequest{NewOwnerID: uuid.New()})

	assertAppErrorCode(t, err, response.ErrCodeForbidden)
}

func TestTransferOwnership_SwapsBothRoles(t *testing.T) {
	workspaceID := uuid.New()
	actorID := uuid.New()
	targetID := uuid.New()
	roles := map[uuid.UUID]domain.WorkspaceRole{
		actorID:  domain.WorkspaceRoleOwner,
		targetID: domain.WorkspaceRoleMember,
	}

	wsRepo := &MockWorkspaceRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
			return &domain.Workspace{BaseModel: domain.BaseModel{ID: workspaceID}}, nil
		},
	}
	memberRepo := &MockWorkspaceMemberRepository{
		FindByWorkspaceAndUserFunc: func(ctx context.Context, wsID, userID uuid.UUID) (*domain.WorkspaceMember, error) {
			role, ok := roles[userID]
			if !ok {
				return nil, gorm.ErrRecordNotFound
			}
			return &domain.WorkspaceMember{WorkspaceID: wsID, UserID: userID, Role: role}, nil
		},
		UpdateRoleFunc: func(ctx context.Context, wsID, userID uuid.UUID, role domain.WorkspaceRole) error {
			roles[userID] = role
			return nil
		},
	}

	svc := newWorkspaceService(t, wsRepo, memberRepo, &MockBoardMemberRepository{}, nil)
	err := svc.TransferOwnership(ctxWithUser(actorID), workspaceID, &dto.TransferOwnershipRequest{NewOwnerID: targetID})

	require.NoError(t, err)
	assert.Equal(t, domain.WorkspaceRoleAdmin, roles[actorID])
	assert.Equal(t, domain.WorkspaceRoleOwner, roles[targetID])
}

func TestTransferOwnership_TargetMustBeMember(t *testing.T) {
	workspaceID := uuid.New()
	actorID := uuid.New()

	wsRepo := &MockWorkspaceRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
			return &domain.Workspace{BaseModel: domain.BaseModel{ID: workspaceID}}, nil
		},
	}
	memberRepo := &MockWorkspaceMemberRepository{
		FindByWorkspaceAndUserFunc: func(ctx context.Context, wsID, userID uuid.UUID) (*domain.WorkspaceMember, error) {
			if userID == actorID {
				return &domain.WorkspaceMember{WorkspaceID: wsID, UserID: userID, Role: domain.WorkspaceRoleOwner}, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := newWorkspaceService(t, wsRepo, memberRepo, &MockBoardMemberRepository{}, nil)
	err := svc.TransferOwnership(ctxWithUser(actorID), workspaceID, &dto.TransferOwnershipRequest{NewOwnerID: uuid.New()})

	assertAppErrorCode(t, err, response.ErrCodeNotFound)
}

func TestDeleteWorkspace_AdminForbidden(t *testing.T) {
	workspaceID := uuid.New()
	actorID := uuid.New()

	wsRepo := &MockWorkspaceRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
			return &domain.Workspace{BaseModel: domain.BaseModel{ID: workspaceID}}, nil
		},
	}
	memberRepo := &MockWorkspaceMemberRepository{
		FindByWorkspaceAndUserFunc: func(ctx context.Context, wsID, userID uuid.UUID) (*domain.WorkspaceMember, error) {
			return &domain.WorkspaceMember{WorkspaceID: wsID, UserID: userID, Role: domain.WorkspaceRoleAdmin}, nil
		},
	}

	svc := newWorkspaceService(t, wsRepo, memberRepo, &MockBoardMemberRepository{}, nil)
	err := svc.DeleteWorkspace(ctxWithUser(actorID), workspaceID)

	assertAppErrorCode(t, err, response.ErrCodeForbidden)
}

func TestUpdateWorkspace_RepoFailureWrapped(t *testing.T) {
	workspaceID := uuid.New()
	actorID := uuid.New()
	name := "renamed"

	wsRepo := &MockWorkspaceRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
			return &domain.Workspace{BaseModel: domain.BaseModel{ID: workspaceID}}, nil
		},
		UpdateFunc: func(ctx context.Context, workspace *domain.Workspace) error {
			return errors.New("connection reset")
		},
	}
	memberRepo := &MockWorkspaceMemberRepository{
		FindByWorkspaceAndUserFunc: func(ctx context.Context, wsID, userID uuid.UUID) (*domain.WorkspaceMember, error) {
			return &domain.WorkspaceMember{WorkspaceID: wsID, UserID: userID, Role: domain.WorkspaceRoleOwner}, nil
		},
	}

	svc := newWorkspaceService(t, wsRepo, memberRepo, &MockBoardMemberRepository{}, nil)
	_, err := svc.UpdateWorkspace(ctxWithUser(actorID), workspaceID, &dto.UpdateWorkspaceRequest{Name: &name})

	assertAppErrorCode(t, err, response.ErrCodeInternal)
}
