package service

import (
	"context"
	"testing"
	"time"

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

type inviteServiceFixture struct {
	userRepo     *MockUserRepository
	wsRepo       *MockWorkspaceRepository
	boardRepo    *MockBoardRepository
	wsMemberRepo *MockWorkspaceMemberRepository
	bMemberRepo  *MockBoardMemberRepository
	wsInviteRepo *MockWorkspaceInviteRepository
	bInviteRepo  *MockBoardInviteRepository
	notifier     *MockNotifier
	svc          *inviteServiceImpl
}

func newInviteServiceFixture(t *testing.T) *inviteServiceFixture {
	t.Helper()
	f := &inviteServiceFixture{
		userRepo:     &MockUserRepository{},
		wsRepo:       &MockWorkspaceRepository{},
		boardRepo:    &MockBoardRepository{},
		wsMemberRepo: &MockWorkspaceMemberRepository{},
		bMemberRepo:  &MockBoardMemberRepository{},
		wsInviteRepo: &MockWorkspaceInviteRepository{},
		bInviteRepo:  &MockBoardInviteRepository{},
		notifier:     &MockNotifier{},
	}
	svc := NewInviteService(newTxDB(t), f.userRepo, f.wsRepo, f.boardRepo,
		f.wsMemberRepo, f.bMemberRepo, f.wsInviteRepo, f.bInviteRepo,
		f.notifier, nil, zap.NewNop())
	f.svc = svc.(*inviteServiceImpl)
	return f
}

func TestCreateWorkspaceInvite_SetsExpiryAndPublishes(t *testing.T) {
	workspaceID := uuid.New()
	actorID := uuid.New()
	inviteeID := uuid.New()
	frozen := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	var created *domain.WorkspaceInvite

	f := newInviteServiceFixture(t)
	f.svc.now = func() time.Time { return frozen }
	f.wsRepo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
		return &domain.Workspace{BaseModel: domain.BaseModel{ID: workspaceID}}, nil
	}
	f.wsMemberRepo.FindByWorkspaceAndUserFunc = func(ctx context.Context, wsID, userID uuid.UUID) (*domain.WorkspaceMember, error) {
		if userID == actorID {
			return &domain.WorkspaceMember{WorkspaceID: wsID, UserID: userID, Role: domain.WorkspaceRoleAdmin}, nil
		}
		return nil, gorm.ErrRecordNotFound
	}
	f.userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		return &domain.User{ID: inviteeID, Email: email}, nil
	}
	f.wsInviteRepo.CreateFunc = func(ctx context.Context, invite *domain.WorkspaceInvite) error {
		invite.ID = uuid.New()
		created = invite
		return nil
	}

	resp, err := f.svc.CreateWorkspaceInvite(ctxWithUser(actorID), workspaceID, &dto.CreateWorkspaceInviteRequest{
		InviteeEmail: "new@example.com",
		Role:         domain.WorkspaceRoleMember,
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, frozen.Add(domain.InviteTTL), created.ExpiresAt)
	assert.Equal(t, domain.InviteStatusPending, created.Status)
	assert.Equal(t, domain.InviteStatusPending, resp.Status)
	require.Len(t, f.notifier.Events, 1)
	assert.Equal(t, notifier.EventInviteCreated, f.notifier.Events[0].Event.Type)
	assert.Equal(t, notifier.UserQueueTopic(inviteeID), f.notifier.Events[0].Topic)
}

func TestCreateWorkspaceInvite_UnknownEmail(t *testing.T) {
	workspaceID := uuid.New()
	actorID := uuid.New()

	f := newInviteServiceFixture(t)
	f.wsRepo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
		return &domain.Workspace{BaseModel: domain.BaseModel{ID: workspaceID}}, nil
	}
	f.wsMemberRepo.FindByWorkspaceAndUserFunc = func(ctx context.Context, wsID, userID uuid.UUID) (*domain.WorkspaceMember, error) {
		return &domain.WorkspaceMember{WorkspaceID: wsID, UserID: userID, Role: domain.WorkspaceRoleOwner}, nil
	}

	_, err := f.svc.CreateWorkspaceInvite(ctxWithUser(actorID), workspaceID, &dto.CreateWorkspaceInviteRequest{
		InviteeEmail: "nobody@example.com",
		Role:         domain.WorkspaceRoleMember,
	})

	assertAppErrorCode(t, err, response.ErrCodeNotFound)
}

func TestCreateWorkspaceInvite_AlreadyMemberConflicts(t *testing.T) {
	workspaceID := uuid.New()
	actorID := uuid.New()
	inviteeID := uuid.New()

	f := newInviteServiceFixture(t)
	f.wsRepo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
		return &domain.Workspace{BaseModel: domain.BaseModel{ID: workspaceID}}, nil
	}
	f.userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		return &domain.User{ID: inviteeID, Email: email}, nil
	}
	f.wsMemberRepo.FindByWorkspaceAndUserFunc = func(ctx context.Context, wsID, userID uuid.UUID) (*domain.WorkspaceMember, error) {
		if userID == actorID {
			return &domain.WorkspaceMember{WorkspaceID: wsID, UserID: userID, Role: domain.WorkspaceRoleAdmin}, nil
		}
		return &domain.WorkspaceMember{WorkspaceID: wsID, UserID: userID, Role: domain.WorkspaceRoleMember}, nil
	}

	_, err := f.svc.CreateWorkspaceInvite(ctxWithUser(actorID), workspaceID, &dto.CreateWorkspaceInviteRequest{
		InviteeEmail: "member@example.com",
		Role:         domain.WorkspaceRoleMember,
	})

	assertAppErrorCode(t, err, response.ErrCodeAlreadyExists)
}

func TestCreateWorkspaceInvite_DuplicatePendingConflicts(t *testing.T) {
	workspaceID := uuid.New()
	actorID := uuid.New()
	inviteeID := uuid.New()

	f := newInviteServiceFixture(t)
	f.wsRepo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
		return &domain.Workspace{BaseModel: domain.BaseModel{ID: workspaceID}}, nil
	}
	f.wsMemberRepo.FindByWorkspaceAndUserFunc = func(ctx context.Context, wsID, userID uuid.UUID) (*domain.WorkspaceMember, error) {
		if userID == actorID {
			return &domain.WorkspaceMember{WorkspaceID: wsID, UserID: userID, Role: domain.WorkspaceRoleAdmin}, nil
		}
		return nil, gorm.ErrRecordNotFound
	}
	f.userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		return &domain.User{ID: inviteeID, Email: email}, nil
	}
	f.wsInviteRepo.FindPendingByWorkspaceAndInviteeFunc = func(ctx context.Context, wsID, userID uuid.UUID) (*domain.WorkspaceInvite, error) {
		return &domain.WorkspaceInvite{WorkspaceID: wsID, InviteeID: userID, Status: domain.InviteStatusPending}, nil
	}

	_, err := f.svc.CreateWorkspaceInvite(ctxWithUser(actorID), workspaceID, &dto.CreateWorkspaceInviteRequest{
		InviteeEmail: "pending@example.com",
		Role:         domain.WorkspaceRoleMember,
	})

	assertAppErrorCode(t, err, response.ErrCodeAlreadyExists)
}

func TestAcceptWorkspaceInvite_OnlyInvitee(t *testing.T) {
	inviteID := uuid.New()

	f := newInviteServiceFixture(t)
	f.wsInviteRepo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.WorkspaceInvite, error) {
		return &domain.WorkspaceInvite{
			BaseModel: domain.BaseModel{ID: inviteID},
			InviteeID: uuid.New(),
			Status:    domain.InviteStatusPending,
		}, nil
	}

	_, err := f.svc.AcceptWorkspaceInvite(ctxWithUser(uuid.New()), inviteID)

	assertAppErrorCode(t, err, response.ErrCodeForbidden)
}

func TestAcceptWorkspaceInvite_ExpiredIsPersisted(t *testing.T) {
	inviteID := uuid.New()
	inviteeID := uuid.New()
	frozen := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	var persisted *domain.WorkspaceInvite

	f := newInviteServiceFixture(t)
	f.svc.now = func() time.Time { return frozen }
	f.wsInviteRepo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.WorkspaceInvite, error) {
		return &domain.WorkspaceInvite{
			BaseModel: domain.BaseModel{ID: inviteID},
			InviteeID: inviteeID,
			Status:    domain.InviteStatusPending,
			ExpiresAt: frozen.Add(-time.Hour),
		}, nil
	}
	f.wsInviteRepo.UpdateFunc = func(ctx context.Context, invite *domain.WorkspaceInvite) error {
		persisted = invite
		return nil
	}

	_, err := f.svc.AcceptWorkspaceInvite(ctxWithUser(inviteeID), inviteID)

	assertAppErrorCode(t, err, response.ErrCodeValidation)
	require.NotNil(t, persisted)
	assert.Equal(t, domain.InviteStatusExpired, persisted.Status)
}

func TestAcceptWorkspaceInvite_CreatesMembershipWithInvitedRole(t *testing.T) {
	workspaceID := uuid.New()
	inviteID := uuid.New()
	inviteeID := uuid.New()
	var member *domain.WorkspaceMember

	f := newInviteServiceFixture(t)
	f.wsInviteRepo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.WorkspaceInvite, error) {
		return &domain.WorkspaceInvite{
			BaseModel:   domain.BaseModel{ID: inviteID},
			WorkspaceID: workspaceID,
			InviteeID:   inviteeID,
			Role:        domain.WorkspaceRoleGuest,
			Status:      domain.InviteStatusPending,
			ExpiresAt:   time.Now().Add(time.Hour),
		}, nil
	}
	f.wsMemberRepo.CreateFunc = func(ctx context.Context, m *domain.WorkspaceMember) error {
		member = m
		return nil
	}

	resp, err := f.svc.AcceptWorkspaceInvite(ctxWithUser(inviteeID), inviteID)

	require.NoError(t, err)
	require.NotNil(t, member)
	assert.Equal(t, domain.WorkspaceRoleGuest, member.Role)
	assert.Equal(t, domain.InviteStatusAccepted, resp.Status)
	assert.Contains(t, f.notifier.Types(), notifier.EventMemberJoined)
}

func TestAcceptWorkspaceInvite_RaceKeepsInvitePending(t *testing.T) {
	workspaceID := uuid.New()
	inviteID := uuid.New()
	inviteeID := uuid.New()
	invite := &domain.WorkspaceInvite{
		BaseModel:   domain.BaseModel{ID: inviteID},
		WorkspaceID: workspaceID,
		InviteeID:   inviteeID,
		Role:        domain.WorkspaceRoleMember,
		Status:      domain.InviteStatusPending,
		ExpiresAt:   time.Now().Add(time.Hour),
	}

	f := newInviteServiceFixture(t)
	f.wsInviteRepo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.WorkspaceInvite, error) {
		return invite, nil
	}
	f.wsMemberRepo.CreateFunc = func(ctx context.Context, m *domain.WorkspaceMember) error {
		return gorm.ErrDuplicatedKey
	}

	_, err := f.svc.AcceptWorkspaceInvite(ctxWithUser(inviteeID), inviteID)

	assertAppErrorCode(t, err, response.ErrCodeAlreadyExists)
	assert.Equal(t, domain.InviteStatusPending, invite.Status)
}

func TestAcceptBoardInvite_OutsiderGainsWorkspaceGuest(t *testing.T) {
	workspaceID := uuid.New()
	boardID := uuid.New()
	inviteID := uuid.New()
	inviteeID := uuid.New()
	var boardMember *domain.BoardMember
	var guest *domain.WorkspaceMember

	f := newInviteServiceFixture(t)
	f.bInviteRepo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.BoardInvite, error) {
		return &domain.BoardInvite{
			BaseModel: domain.BaseModel{ID: inviteID},
			BoardID:   boardID,
			InviteeID: inviteeID,
			Role:      domain.BoardRoleObserver,
			Status:    domain.InviteStatusPending,
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil
	}
	f.boardRepo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
		return &domain.Board{BaseModel: domain.BaseModel{ID: boardID}, WorkspaceID: workspaceID}, nil
	}
	f.bMemberRepo.CreateFunc = func(ctx context.Context, m *domain.BoardMember) error {
		boardMember = m
		return nil
	}
	f.wsMemberRepo.CreateFunc = func(ctx context.Context, m *domain.WorkspaceMember) error {
		guest = m
		return nil
	}

	resp, err := f.svc.AcceptBoardInvite(ctxWithUser(inviteeID), inviteID)

	require.NoError(t, err)
	require.NotNil(t, boardMember)
	assert.Equal(t, domain.BoardRoleObserver, boardMember.Role)
	require.NotNil(t, guest)
	assert.Equal(t, workspaceID, guest.WorkspaceID)
	assert.Equal(t, domain.WorkspaceRoleGuest, guest.Role)
	assert.Equal(t, domain.InviteStatusAccepted, resp.Status)
}

func TestAcceptBoardInvite_WorkspaceMemberGetsNoGuestRow(t *testing.T) {
	workspaceID := uuid.New()
	boardID := uuid.New()
	inviteID := uuid.New()
	inviteeID := uuid.New()
	guestCreated := false

	f := newInviteServiceFixture(t)
	f.bInviteRepo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.BoardInvite, error) {
		return &domain.BoardInvite{
			BaseModel: domain.BaseModel{ID: inviteID},
			BoardID:   boardID,
			InviteeID: inviteeID,
			Role:      domain.BoardRoleMember,
			Status:    domain.InviteStatusPending,
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil
	}
	f.boardRepo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
		return &domain.Board{BaseModel: domain.BaseModel{ID: boardID}, WorkspaceID: workspaceID}, nil
	}
	f.wsMemberRepo.FindByWorkspaceAndUserFunc = func(ctx context.Context, wsID, userID uuid.UUID) (*domain.WorkspaceMember, error) {
		return &domain.WorkspaceMember{WorkspaceID: wsID, UserID: userID, Role: domain.WorkspaceRoleMember}, nil
	}
	f.wsMemberRepo.CreateFunc = func(ctx context.Context, m *domain.WorkspaceMember) error {
		guestCreated = true
		return nil
	}

	_, err := f.svc.AcceptBoardInvite(ctxWithUser(inviteeID), inviteID)

	require.NoError(t, err)
	assert.False(t, guestCreated)
}

func TestDeclineWorkspaceInvite_TerminalStatusRejected(t *testing.T) {
	inviteID := uuid.New()
	inviteeID := uuid.New()

	f := newInviteServiceFixture(t)
	f.wsInviteRepo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.WorkspaceInvite, error) {
		return &domain.WorkspaceInvite{
			BaseModel: domain.BaseModel{ID: inviteID},
			InviteeID: inviteeID,
			Status:    domain.InviteStatusDeclined,
		}, nil
	}

	err := f.svc.DeclineWorkspaceInvite(ctxWithUser(inviteeID), inviteID)

	assertAppErrorCode(t, err, response.ErrCodeValidation)
}

func TestCancelWorkspaceInvite_InviterMayCancel(t *testing.T) {
	inviteID := uuid.New()
	inviterID := uuid.New()
	inviteeID := uuid.New()
	var updated *domain.WorkspaceInvite

	f := newInviteServiceFixture(t)
	f.wsInviteRepo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.WorkspaceInvite, error) {
		return &domain.WorkspaceInvite{
			BaseModel: domain.BaseModel{ID: inviteID},
			InviterID: inviterID,
			InviteeID: inviteeID,
			Status:    domain.InviteStatusPending,
		}, nil
	}
	f.wsInviteRepo.UpdateFunc = func(ctx context.Context, invite *domain.WorkspaceInvite) error {
		updated = invite
		return nil
	}

	err := f.svc.CancelWorkspaceInvite(ctxWithUser(inviterID), inviteID)

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, domain.InviteStatusCancelled, updated.Status)
	assert.Contains(t, f.notifier.Types(), notifier.EventInviteRevoked)
}

func TestCancelWorkspaceInvite_OutsiderForbidden(t *testing.T) {
	inviteID := uuid.New()

	f := newInviteServiceFixture(t)
	f.wsInviteRepo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.WorkspaceInvite, error) {
		return &domain.WorkspaceInvite{
			BaseModel: domain.BaseModel{ID: inviteID},
			InviterID: uuid.New(),
			InviteeID: uuid.New(),
			Status:    domain.InviteStatusPending,
		}, nil
	}

	err := f.svc.CancelWorkspaceInvite(ctxWithUser(uuid.New()), inviteID)

	assertAppErrorCode(t, err, response.ErrCodeForbidden)
}

func TestListMyInvites_CombinesScopes(t *testing.T) {
	actorID := uuid.New()

	f := newInviteServiceFixture(t)
	f.wsInviteRepo.FindPendingByInviteeFunc = func(ctx context.Context, inviteeID uuid.UUID) ([]*domain.WorkspaceInvite, error) {
		return []*domain.WorkspaceInvite{
			{BaseModel: domain.BaseModel{ID: uuid.New()}, InviteeID: inviteeID, Status: domain.InviteStatusPending},
		}, nil
	}
	f.bInviteRepo.FindPendingByInviteeFunc = func(ctx context.Context, inviteeID uuid.UUID) ([]*domain.BoardInvite, error) {
		return []*domain.BoardInvite{
			{BaseModel: domain.BaseModel{ID: uuid.New()}, InviteeID: inviteeID, Status: domain.InviteStatusPending},
			{BaseModel: domain.BaseModel{ID: uuid.New()}, InviteeID: inviteeID, Status: domain.InviteStatusPending},
		}, nil
	}

	resp, err := f.svc.ListMyInvites(ctxWithUser(actorID))

	require.NoError(t, err)
	assert.Len(t, resp.Workspace, 1)
	assert.Len(t, resp.Board, 2)
}

func TestExpireStale_SweepsBothScopes(t *testing.T) {
	now := time.Now()
	wsUpdated := 0
	boardUpdated := 0

	f := newInviteServiceFixture(t)
	f.wsInviteRepo.FindStalePendingFunc = func(ctx context.Context, cutoff time.Time) ([]*domain.WorkspaceInvite, error) {
		return []*domain.WorkspaceInvite{
			{BaseModel: domain.BaseModel{ID: uuid.New()}, Status: domain.InviteStatusPending},
			{BaseModel: domain.BaseModel{ID: uuid.New()}, Status: domain.InviteStatusPending},
		}, nil
	}
	f.wsInviteRepo.UpdateFunc = func(ctx context.Context, invite *domain.WorkspaceInvite) error {
		assert.Equal(t, domain.InviteStatusExpired, invite.Status)
		wsUpdated++
		return nil
	}
	f.bInviteRepo.FindStalePendingFunc = func(ctx context.Context, cutoff time.Time) ([]*domain.BoardInvite, error) {
		return []*domain.BoardInvite{
			{BaseModel: domain.BaseModel{ID: uuid.New()}, Status: domain.InviteStatusPending},
		}, nil
	}
	f.bInviteRepo.UpdateFunc = func(ctx context.Context, invite *domain.BoardInvite) error {
		boardUpdated++
		return nil
	}

	swept, err := f.svc.ExpireStale(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, 3, swept)
	assert.Equal(t, 2, wsUpdated)
	assert.Equal(t, 1, boardUpdated)
}
