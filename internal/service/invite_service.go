package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"kanban-workspace-api/internal/domain"
	"kanban-workspace-api/internal/dto"
	"kanban-workspace-api/internal/metrics"
	"kanban-workspace-api/internal/notifier"
	"kanban-workspace-api/internal/policy"
	"kanban-workspace-api/internal/repository"
	"kanban-workspace-api/internal/response"
)

// InviteService drives the invite lifecycle for both workspaces and boards.
// pending -> {accepted, declined, cancelled, expired}; terminals are final.
type InviteService interface {
	CreateWorkspaceInvite(ctx context.Context, workspaceID uuid.UUID, req *dto.CreateWorkspaceInviteRequest) (*dto.WorkspaceInviteResponse, error)
	ListWorkspaceInvites(ctx context.Context, workspaceID uuid.UUID) ([]*dto.WorkspaceInviteResponse, error)
	AcceptWorkspaceInvite(ctx context.Context, inviteID uuid.UUID) (*dto.WorkspaceInviteResponse, error)
	DeclineWorkspaceInvite(ctx context.Context, inviteID uuid.UUID) error
	CancelWorkspaceInvite(ctx context.Context, inviteID uuid.UUID) error

	CreateBoardInvite(ctx context.Context, boardID uuid.UUID, req *dto.CreateBoardInviteRequest) (*dto.BoardInviteResponse, error)
	ListBoardInvites(ctx context.Context, boardID uuid.UUID) ([]*dto.BoardInviteResponse, error)
	AcceptBoardInvite(ctx context.Context, inviteID uuid.UUID) (*dto.BoardInviteResponse, error)
	DeclineBoardInvite(ctx context.Context, inviteID uuid.UUID) error
	CancelBoardInvite(ctx context.Context, inviteID uuid.UUID) error

	ListMyInvites(ctx context.Context) (*dto.MyInvitesResponse, error)
	ExpireStale(ctx context.Context, now time.Time) (int, error)
}

// inviteServiceImpl is the implementation of InviteService
type inviteServiceImpl struct {
	db            *gorm.DB
	userRepo      repository.UserRepository
	workspaceRepo repository.WorkspaceRepository
	boardRepo     repository.BoardRepository
	wsMemberRepo  repository.WorkspaceMemberRepository
	bMemberRepo   repository.BoardMemberRepository
	wsInviteRepo  repository.WorkspaceInviteRepository
	bInviteRepo   repository.BoardInviteRepository
	notifier      notifier.Notifier
	metrics       *metrics.Metrics
	logger        *zap.Logger
	now           func() time.Time
}

// NewInviteService creates a new instance of InviteService
func NewInviteService(
	db *gorm.DB,
	userRepo repository.UserRepository,
	workspaceRepo repository.WorkspaceRepository,
	boardRepo repository.BoardRepository,
	wsMemberRepo repository.WorkspaceMemberRepository,
	bMemberRepo repository.BoardMemberRepository,
	wsInviteRepo repository.WorkspaceInviteRepository,
	bInviteRepo repository.BoardInviteRepository,
	n notifier.Notifier,
	m *metrics.Metrics,
	logger *zap.Logger,
) InviteService {
	return &inviteServiceImpl{
		db:            db,
		userRepo:      userRepo,
		workspaceRepo: workspaceRepo,
		boardRepo:     boardRepo,
		wsMemberRepo:  wsMemberRepo,
		bMemberRepo:   bMemberRepo,
		wsInviteRepo:  wsInviteRepo,
		bInviteRepo:   bInviteRepo,
		notifier:      n,
		metrics:       m,
		logger:        logger,
		now:           time.Now,
	}
}

// CreateWorkspaceInvite invites a user (by email) into a workspace
func (s *inviteServiceImpl) CreateWorkspaceInvite(ctx context.Context, workspaceID uuid.UUID, req *dto.CreateWorkspaceInviteRequest) (*dto.WorkspaceInviteResponse, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.workspaceRepo.FindByID(ctx, workspaceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Workspace not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch workspace", err.Error())
	}

	actorRole, isMember, err := workspaceRoleOf(ctx, s.wsMemberRepo, workspaceID, actorID)
	if err != nil {
		return nil, err
	}
	if !isMember || !policy.CanManageWorkspace(actorRole) {
		return nil, response.NewForbiddenError("Insufficient role to invite members")
	}

	invitee, err := s.userRepo.FindByEmail(ctx, req.InviteeEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("No user with that email")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to look up user", err.Error())
	}

	_, alreadyMember, err := workspaceRoleOf(ctx, s.wsMemberRepo, workspaceID, invitee.ID)
	if err != nil {
		return nil, err
	}
	if alreadyMember {
		return nil, response.NewConflictError("User is already a member of this workspace")
	}

	if _, err := s.wsInviteRepo.FindPendingByWorkspaceAndInvitee(ctx, workspaceID, invitee.ID); err == nil {
		return nil, response.NewConflictError("A pending invite already exists for this user")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check pending invites", err.Error())
	}

	invite := &domain.WorkspaceInvite{
		WorkspaceID: workspaceID,
		InviteeID:   invitee.ID,
		InviterID:   actorID,
		Role:        req.Role,
		Status:      domain.InviteStatusPending,
		ExpiresAt:   s.now().Add(domain.InviteTTL),
	}
	if err := s.wsInviteRepo.Create(ctx, invite); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create invite", err.Error())
	}
	invite.Invitee = invitee

	if s.metrics != nil {
		s.metrics.IncrementInviteSent("workspace")
	}
	s.notifier.Publish(ctx, notifier.UserQueueTopic(invitee.ID),
		notifier.NewEvent(notifier.EventInviteCreated, actorID, invite.ID))

	return dto.ToWorkspaceInviteResponse(invite), nil
}

// ListWorkspaceInvites lists pending invites for a workspace. Managers only.
func (s *inviteServiceImpl) ListWorkspaceInvites(ctx context.Context, workspaceID uuid.UUID) ([]*dto.WorkspaceInviteResponse, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	actorRole, isMember, err := workspaceRoleOf(ctx, s.wsMemberRepo, workspaceID, actorID)
	if err != nil {
		return nil, err
	}
	if !isMember || !policy.CanManageWorkspace(actorRole) {
		return nil, response.NewForbiddenError("Insufficient role to list invites")
	}

	invites, err := s.wsInviteRepo.FindPendingByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch invites", err.Error())
	}

	responses := make([]*dto.WorkspaceInviteResponse, len(invites))
	for i, inv := range invites {
		responses[i] = dto.ToWorkspaceInviteResponse(inv)
	}
	return responses, nil
}

// AcceptWorkspaceInvite turns a pending invite into a membership.
// An expired invite is marked EXPIRED before the call fails; that status
// write commits even though the accept itself is rejected.
func (s *inviteServiceImpl) AcceptWorkspaceInvite(ctx context.Context, inviteID uuid.UUID) (*dto.WorkspaceInviteResponse, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	invite, err := s.wsInviteRepo.FindByID(ctx, inviteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Invite not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch invite", err.Error())
	}
	if invite.InviteeID != actorID {
		return nil, response.NewForbiddenError("Only the invitee can accept an invite")
	}
	if invite.Status != domain.InviteStatusPending {
		return nil, response.NewValidationError("Invite is no longer pending")
	}

	if invite.Expired(s.now()) {
		invite.Status = domain.InviteStatusExpired
		if err := s.wsInviteRepo.Update(ctx, invite); err != nil {
			s.logger.Error("Failed to persist lazy invite expiry",
				zap.String("invite_id", invite.ID.String()),
				zap.Error(err))
		}
		return nil, response.NewValidationError("Invite has expired")
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		member := &domain.WorkspaceMember{
			WorkspaceID: invite.WorkspaceID,
			UserID:      invite.InviteeID,
			Role:        invite.Role,
			JoinedAt:    time.Now(),
			UpdatedAt:   time.Now(),
		}
		if err := s.wsMemberRepo.WithTx(tx).Create(ctx, member); err != nil {
			if isDuplicateKeyError(err) {
				// Invite stays PENDING when a concurrent join won the race
				return response.NewConflictError("Already a member of this workspace")
			}
			return response.NewAppError(response.ErrCodeInternal, "Failed to create membership", err.Error())
		}
		invite.Status = domain.InviteStatusAccepted
		if err := s.wsInviteRepo.WithTx(tx).Update(ctx, invite); err != nil {
			return response.NewAppError(response.ErrCodeInternal, "Failed to update invite", err.Error())
		}
		return nil
	})
	if err != nil {
		invite.Status = domain.InviteStatusPending
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.IncrementInviteAccepted("workspace")
	}
	s.notifier.Publish(ctx, notifier.WorkspaceTopic(invite.WorkspaceID),
		notifier.NewEvent(notifier.EventMemberJoined, actorID, map[string]interface{}{
			"user_id": actorID,
			"role":    invite.Role,
		}))

	return dto.ToWorkspaceInviteResponse(invite), nil
}

// DeclineWorkspaceInvite declines a pending invite. Invitee only.
func (s *inviteServiceImpl) DeclineWorkspaceInvite(ctx context.Context, inviteID uuid.UUID) error {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return err
	}

	invite, err := s.wsInviteRepo.FindByID(ctx, inviteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Invite not found")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch invite", err.Error())
	}
	if invite.InviteeID != actorID {
		return response.NewForbiddenError("Only the invitee can decline an invite")
	}
	if invite.Status != domain.InviteStatusPending {
		return response.NewValidationError("Invite is no longer pending")
	}

	invite.Status = domain.InviteStatusDeclined
	if err := s.wsInviteRepo.Update(ctx, invite); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to decline invite", err.Error())
	}
	return nil
}

// CancelWorkspaceInvite cancels a pending invite. Inviter or workspace manager.
func (s *inviteServiceImpl) CancelWorkspaceInvite(ctx context.Context, inviteID uuid.UUID) error {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return err
	}

	invite, err := s.wsInviteRepo.FindByID(ctx, inviteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Invite not found")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch invite", err.Error())
	}
	if invite.Status != domain.InviteStatusPending {
		return response.NewValidationError("Invite is no longer pending")
	}

	if invite.InviterID != actorID {
		actorRole, isMember, err := workspaceRoleOf(ctx, s.wsMemberRepo, invite.WorkspaceID, actorID)
		if err != nil {
			return err
		}
		if !isMember || !policy.CanManageWorkspace(actorRole) {
			return response.NewForbiddenError("Insufficient role to cancel this invite")
		}
	}

	invite.Status = domain.InviteStatusCancelled
	if err := s.wsInviteRepo.Update(ctx, invite); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to cancel invite", err.Error())
	}

	s.notifier.Publish(ctx, notifier.UserQueueTopic(invite.InviteeID),
		notifier.NewEvent(notifier.EventInviteRevoked, actorID, invite.ID))
	return nil
}

// CreateBoardInvite invites a user (by email) onto a board
func (s *inviteServiceImpl) CreateBoardInvite(ctx context.Context, boardID uuid.UUID, req *dto.CreateBoardInviteRequest) (*dto.BoardInviteResponse, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.boardRepo.FindByID(ctx, boardID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Board not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch board", err.Error())
	}

	actorRole, isMember, err := boardRoleOf(ctx, s.bMemberRepo, boardID, actorID)
	if err != nil {
		return nil, err
	}
	if !isMember || !policy.CanManageBoard(actorRole) {
		return nil, response.NewForbiddenError("Insufficient role to invite members")
	}

	invitee, err := s.userRepo.FindByEmail(ctx, req.InviteeEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("No user with that email")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to look up user", err.Error())
	}

	_, alreadyMember, err := boardRoleOf(ctx, s.bMemberRepo, boardID, invitee.ID)
	if err != nil {
		return nil, err
	}
	if alreadyMember {
		return nil, response.NewConflictError("User is already a member of this board")
	}

	if _, err := s.bInviteRepo.FindPendingByBoardAndInvitee(ctx, boardID, invitee.ID); err == nil {
		return nil, response.NewConflictError("A pending invite already exists for this user")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check pending invites", err.Error())
	}

	invite := &domain.BoardInvite{
		BoardID:   boardID,
		InviteeID: invitee.ID,
		InviterID: actorID,
		Role:      req.Role,
		Status:    domain.InviteStatusPending,
		ExpiresAt: s.now().Add(domain.InviteTTL),
	}
	if err := s.bInviteRepo.Create(ctx, invite); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create invite", err.Error())
	}
	invite.Invitee = invitee

	if s.metrics != nil {
		s.metrics.IncrementInviteSent("board")
	}
	s.notifier.Publish(ctx, notifier.UserQueueTopic(invitee.ID),
		notifier.NewEvent(notifier.EventInviteCreated, actorID, invite.ID))

	return dto.ToBoardInviteResponse(invite), nil
}

// ListBoardInvites lists pending invites for a board. Board admins only.
func (s *inviteServiceImpl) ListBoardInvites(ctx context.Context, boardID uuid.UUID) ([]*dto.BoardInviteResponse, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	actorRole, isMember, err := boardRoleOf(ctx, s.bMemberRepo, boardID, actorID)
	if err != nil {
		return nil, err
	}
	if !isMember || !policy.CanManageBoard(actorRole) {
		return nil, response.NewForbiddenError("Insufficient role to list invites")
	}

	invites, err := s.bInviteRepo.FindPendingByBoard(ctx, boardID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch invites", err.Error())
	}

	responses := make([]*dto.BoardInviteResponse, len(invites))
	for i, inv := range invites {
		responses[i] = dto.ToBoardInviteResponse(inv)
	}
	return responses, nil
}

// AcceptBoardInvite turns a pending board invite into a board membership.
// An invitee from outside the workspace is enrolled as a workspace GUEST in
// the same transaction.
func (s *inviteServiceImpl) AcceptBoardInvite(ctx context.Context, inviteID uuid.UUID) (*dto.BoardInviteResponse, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	invite, err := s.bInviteRepo.FindByID(ctx, inviteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Invite not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch invite", err.Error())
	}
	if invite.InviteeID != actorID {
		return nil, response.NewForbiddenError("Only the invitee can accept an invite")
	}
	if invite.Status != domain.InviteStatusPending {
		return nil, response.NewValidationError("Invite is no longer pending")
	}

	if invite.Expired(s.now()) {
		invite.Status = domain.InviteStatusExpired
		if err := s.bInviteRepo.Update(ctx, invite); err != nil {
			s.logger.Error("Failed to persist lazy invite expiry",
				zap.String("invite_id", invite.ID.String()),
				zap.Error(err))
		}
		return nil, response.NewValidationError("Invite has expired")
	}

	board, err := s.boardRepo.FindByID(ctx, invite.BoardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Board not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch board", err.Error())
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		member := &domain.BoardMember{
			BoardID:   invite.BoardID,
			UserID:    invite.InviteeID,
			Role:      invite.Role,
			JoinedAt:  time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := s.bMemberRepo.WithTx(tx).Create(ctx, member); err != nil {
			if isDuplicateKeyError(err) {
				return response.NewConflictError("Already a member of this board")
			}
			return response.NewAppError(response.ErrCodeInternal, "Failed to create membership", err.Error())
		}

		// Grant workspace GUEST standing to invitees outside the workspace
		_, inWorkspace, err := workspaceRoleOf(ctx, s.wsMemberRepo.WithTx(tx), board.WorkspaceID, invite.InviteeID)
		if err != nil {
			return err
		}
		if !inWorkspace {
			guest := &domain.WorkspaceMember{
				WorkspaceID: board.WorkspaceID,
				UserID:      invite.InviteeID,
				Role:        domain.WorkspaceRoleGuest,
				JoinedAt:    time.Now(),
				UpdatedAt:   time.Now(),
			}
			if err := s.wsMemberRepo.WithTx(tx).Create(ctx, guest); err != nil {
				return response.NewAppError(response.ErrCodeInternal, "Failed to create guest membership", err.Error())
			}
		}

		invite.Status = domain.InviteStatusAccepted
		if err := s.bInviteRepo.WithTx(tx).Update(ctx, invite); err != nil {
			return response.NewAppError(response.ErrCodeInternal, "Failed to update invite", err.Error())
		}
		return nil
	})
	if err != nil {
		invite.Status = domain.InviteStatusPending
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.IncrementInviteAccepted("board")
	}
	s.notifier.Publish(ctx, notifier.BoardTopic(invite.BoardID),
		notifier.NewEvent(notifier.EventMemberJoined, actorID, map[string]interface{}{
			"user_id": actorID,
			"role":    invite.Role,
		}))

	return dto.ToBoardInviteResponse(invite), nil
}

// DeclineBoardInvite declines a pending invite. Invitee only.
func (s *inviteServiceImpl) DeclineBoardInvite(ctx context.Context, inviteID uuid.UUID) error {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return err
	}

	invite, err := s.bInviteRepo.FindByID(ctx, inviteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Invite not found")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch invite", err.Error())
	}
	if invite.InviteeID != actorID {
		return response.NewForbiddenError("Only the invitee can decline an invite")
	}
	if invite.Status != domain.InviteStatusPending {
		return response.NewValidationError("Invite is no longer pending")
	}

	invite.Status = domain.InviteStatusDeclined
	if err := s.bInviteRepo.Update(ctx, invite); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to decline invite", err.Error())
	}
	return nil
}

// CancelBoardInvite cancels a pending invite. Inviter or board admin.
func (s *inviteServiceImpl) CancelBoardInvite(ctx context.Context, inviteID uuid.UUID) error {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return err
	}

	invite, err := s.bInviteRepo.FindByID(ctx, inviteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Invite not found")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch invite", err.Error())
	}
	if invite.Status != domain.InviteStatusPending {
		return response.NewValidationError("Invite is no longer pending")
	}

	if invite.InviterID != actorID {
		actorRole, isMember, err := boardRoleOf(ctx, s.bMemberRepo, invite.BoardID, actorID)
		if err != nil {
			return err
		}
		if !isMember || !policy.CanManageBoard(actorRole) {
			return response.NewForbiddenError("Insufficient role to cancel this invite")
		}
	}

	invite.Status = domain.InviteStatusCancelled
	if err := s.bInviteRepo.Update(ctx, invite); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to cancel invite", err.Error())
	}

	s.notifier.Publish(ctx, notifier.UserQueueTopic(invite.InviteeID),
		notifier.NewEvent(notifier.EventInviteRevoked, actorID, invite.ID))
	return nil
}

// ListMyInvites returns the caller's pending invites across both scopes
func (s *inviteServiceImpl) ListMyInvites(ctx context.Context) (*dto.MyInvitesResponse, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	wsInvites, err := s.wsInviteRepo.FindPendingByInvitee(ctx, actorID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch workspace invites", err.Error())
	}
	boardInvites, err := s.bInviteRepo.FindPendingByInvitee(ctx, actorID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch board invites", err.Error())
	}

	resp := &dto.MyInvitesResponse{
		Workspace: make([]*dto.WorkspaceInviteResponse, len(wsInvites)),
		Board:     make([]*dto.BoardInviteResponse, len(boardInvites)),
	}
	for i, inv := range wsInvites {
		resp.Workspace[i] = dto.ToWorkspaceInviteResponse(inv)
	}
	for i, inv := range boardInvites {
		resp.Board[i] = dto.ToBoardInviteResponse(inv)
	}
	return resp, nil
}

// ExpireStale marks every past-deadline pending invite EXPIRED and returns
// how many were swept. Used by the background job; Accept performs its own
// lazy expiry so this sweep is pure housekeeping.
func (s *inviteServiceImpl) ExpireStale(ctx context.Context, now time.Time) (int, error) {
	expired := 0

	wsStale, err := s.wsInviteRepo.FindStalePending(ctx, now)
	if err != nil {
		return 0, response.NewAppError(response.ErrCodeInternal, "Failed to fetch stale workspace invites", err.Error())
	}
	for _, invite := range wsStale {
		invite.Status = domain.InviteStatusExpired
		if err := s.wsInviteRepo.Update(ctx, invite); err != nil {
			s.logger.Error("Failed to expire workspace invite",
				zap.String("invite_id", invite.ID.String()),
				zap.Error(err))
			continue
		}
		expired++
	}

	boardStale, err := s.bInviteRepo.FindStalePending(ctx, now)
	if err != nil {
		return expired, response.NewAppError(response.ErrCodeInternal, "Failed to fetch stale board invites", err.Error())
	}
	for _, invite := range boardStale {
		invite.Status = domain.InviteStatusExpired
		if err := s.bInviteRepo.Update(ctx, invite); err != nil {
			s.logger.Error("Failed to expire board invite",
				zap.String("invite_id", invite.ID.String()),
				zap.Error(err))
			continue
		}
		expired++
	}

	return expired, nil
}
