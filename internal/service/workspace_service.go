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

// WorkspaceService defines the interface for workspace business logic
type WorkspaceService interface {
	CreateWorkspace(ctx context.Context, req *dto.CreateWorkspaceRequest) (*dto.WorkspaceResponse, error)
	GetWorkspace(ctx context.Context, workspaceID uuid.UUID) (*dto.WorkspaceResponse, error)
	ListMyWorkspaces(ctx context.Context) ([]*dto.WorkspaceResponse, error)
	UpdateWorkspace(ctx context.Context, workspaceID uuid.UUID, req *dto.UpdateWorkspaceRequest) (*dto.WorkspaceResponse, error)
	UpdateSettings(ctx context.Context, workspaceID uuid.UUID, req *dto.UpdateWorkspaceSettingsRequest) (*dto.WorkspaceResponse, error)
	DeleteWorkspace(ctx context.Context, workspaceID uuid.UUID) error
	ListMembers(ctx context.Context, workspaceID uuid.UUID) ([]*dto.WorkspaceMemberResponse, error)
	ChangeMemberRole(ctx context.Context, workspaceID, targetUserID uuid.UUID, req *dto.ChangeWorkspaceRoleRequest) (*dto.WorkspaceMemberResponse, error)
	RemoveMember(ctx context.Context, workspaceID, targetUserID uuid.UUID) error
	LeaveWorkspace(ctx context.Context, workspaceID uuid.UUID) error
	TransferOwnership(ctx context.Context, workspaceID uuid.UUID, req *dto.TransferOwnershipRequest) error
}

// workspaceServiceImpl is the implementation of WorkspaceService
type workspaceServiceImpl struct {
	db            *gorm.DB
	workspaceRepo repository.WorkspaceRepository
	memberRepo    repository.WorkspaceMemberRepository
	boardMembers  repository.BoardMemberRepository
	notifier      notifier.Notifier
	metrics       *metrics.Metrics
	logger        *zap.Logger
}

// NewWorkspaceService creates a new instance of WorkspaceService
func NewWorkspaceService(
	db *gorm.DB,
	workspaceRepo repository.WorkspaceRepository,
	memberRepo repository.WorkspaceMemberRepository,
	boardMembers repository.BoardMemberRepository,
	n notifier.Notifier,
	m *metrics.Metrics,
	logger *zap.Logger,
) WorkspaceService {
	return &workspaceServiceImpl{
		db:            db,
		workspaceRepo: workspaceRepo,
		memberRepo:    memberRepo,
		boardMembers:  boardMembers,
		notifier:      n,
		metrics:       m,
		logger:        logger,
	}
}

// CreateWorkspace creates a workspace and enrolls the creator as its OWNER
func (s *workspaceServiceImpl) CreateWorkspace(ctx context.Context, req *dto.CreateWorkspaceRequest) (*dto.WorkspaceResponse, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	workspace := &domain.Workspace{
		Name:                 req.Name,
		Description:          req.Description,
		PrivateBoardCreation: domain.PolicyAdminsOnly,
		SharedBoardCreation:  domain.PolicyAdminsOnly,
	}

	// Workspace and its OWNER row are created atomically
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.workspaceRepo.WithTx(tx).Create(ctx, workspace); err != nil {
			return err
		}
		owner := &domain.WorkspaceMember{
			WorkspaceID: workspace.ID,
			UserID:      actorID,
			Role:        domain.WorkspaceRoleOwner,
			JoinedAt:    time.Now(),
			UpdatedAt:   time.Now(),
		}
		return s.memberRepo.WithTx(tx).Create(ctx, owner)
	})
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create workspace", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementWorkspaceCreated()
	}
	s.logger.Info("Workspace created",
		zap.String("workspace_id", workspace.ID.String()),
		zap.String("owner_id", actorID.String()))

	return dto.ToWorkspaceResponse(workspace), nil
}

// GetWorkspace returns a workspace the caller belongs to
func (s *workspaceServiceImpl) GetWorkspace(ctx context.Context, workspaceID uuid.UUID) (*dto.WorkspaceResponse, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	workspace, err := s.findWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	_, isMember, err := workspaceRoleOf(ctx, s.memberRepo, workspaceID, actorID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, response.NewForbiddenError("Not a member of this workspace")
	}

	return dto.ToWorkspaceResponse(workspace), nil
}

// ListMyWorkspaces returns every workspace the caller is a member of
func (s *workspaceServiceImpl) ListMyWorkspaces(ctx context.Context) ([]*dto.WorkspaceResponse, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	workspaces, err := s.workspaceRepo.FindByUser(ctx, actorID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch workspaces", err.Error())
	}

	responses := make([]*dto.WorkspaceResponse, len(workspaces))
	for i, w := range workspaces {
		responses[i] = dto.ToWorkspaceResponse(w)
	}
	return responses, nil
}

// UpdateWorkspace updates name and description
func (s *workspaceServiceImpl) UpdateWorkspace(ctx context.Context, workspaceID uuid.UUID, req *dto.UpdateWorkspaceRequest) (*dto.WorkspaceResponse, error) {
	workspace, err := s.requireManageable(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		workspace.Name = *req.Name
	}
	if req.Description != nil {
		workspace.Description = *req.Description
	}

	if err := s.workspaceRepo.Update(ctx, workspace); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update workspace", err.Error())
	}

	s.publishWorkspaceEvent(ctx, workspace.ID, notifier.EventWorkspaceUpdated, workspace.ID)
	return dto.ToWorkspaceResponse(workspace), nil
}

// UpdateSettings changes the board-creation policies
func (s *workspaceServiceImpl) UpdateSettings(ctx context.Context, workspaceID uuid.UUID, req *dto.UpdateWorkspaceSettingsRequest) (*dto.WorkspaceResponse, error) {
	workspace, err := s.requireManageable(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	if req.PrivateBoardCreation != nil {
		workspace.PrivateBoardCreation = *req.PrivateBoardCreation
	}
	if req.SharedBoardCreation != nil {
		workspace.SharedBoardCreation = *req.SharedBoardCreation
	}

	if err := s.workspaceRepo.Update(ctx, workspace); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update workspace settings", err.Error())
	}

	s.publishWorkspaceEvent(ctx, workspace.ID, notifier.EventWorkspaceUpdated, workspace.ID)
	return dto.ToWorkspaceResponse(workspace), nil
}

// DeleteWorkspace removes the workspace and everything it owns. Owner only.
func (s *workspaceServiceImpl) DeleteWorkspace(ctx context.Context, workspaceID uuid.UUID) error {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return err
	}

	if _, err := s.findWorkspace(ctx, workspaceID); err != nil {
		return err
	}

	role, isMember, err := workspaceRoleOf(ctx, s.memberRepo, workspaceID, actorID)
	if err != nil {
		return err
	}
	if !isMember || !policy.CanDeleteWorkspace(role) {
		return response.NewForbiddenError("Only the workspace owner can delete it")
	}

	if err := s.workspaceRepo.DeleteCascade(ctx, workspaceID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete workspace", err.Error())
	}

	s.publishWorkspaceEvent(ctx, workspaceID, notifier.EventWorkspaceDeleted, workspaceID)
	s.logger.Info("Workspace deleted",
		zap.String("workspace_id", workspaceID.String()),
		zap.String("actor_id", actorID.String()))
	return nil
}

// ListMembers returns the workspace roster. Member-only.
func (s *workspaceServiceImpl) ListMembers(ctx context.Context, workspaceID uuid.UUID) ([]*dto.WorkspaceMemberResponse, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.findWorkspace(ctx, workspaceID); err != nil {
		return nil, err
	}

	_, isMember, err := workspaceRoleOf(ctx, s.memberRepo, workspaceID, actorID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, response.NewForbiddenError("Not a member of this workspace")
	}

	members, err := s.memberRepo.FindByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch members", err.Error())
	}

	responses := make([]*dto.WorkspaceMemberResponse, len(members))
	for i, m := range members {
		responses[i] = dto.ToWorkspaceMemberResponse(m)
	}
	return responses, nil
}

// ChangeMemberRole assigns a new role to a member. OWNER cannot be granted
// through this path and the current owner's role cannot be changed.
func (s *workspaceServiceImpl) ChangeMemberRole(ctx context.Context, workspaceID, targetUserID uuid.UUID, req *dto.ChangeWorkspaceRoleRequest) (*dto.WorkspaceMemberResponse, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if req.Role == domain.WorkspaceRoleOwner {
		return nil, response.NewValidationError("Ownership is granted via transfer-ownership, not role change")
	}

	if _, err := s.findWorkspace(ctx, workspaceID); err != nil {
		return nil, err
	}

	actorRole, isMember, err := workspaceRoleOf(ctx, s.memberRepo, workspaceID, actorID)
	if err != nil {
		return nil, err
	}
	if !isMember || !policy.CanManageWorkspace(actorRole) {
		return nil, response.NewForbiddenError("Insufficient role to manage members")
	}

	var updated *domain.WorkspaceMember
	err = s.db.Transaction(func(tx *gorm.DB) error {
		memberRepo := s.memberRepo.WithTx(tx)

		target, err := memberRepo.FindByWorkspaceAndUser(ctx, workspaceID, targetUserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NewNotFoundError("Member not found")
			}
			return response.NewAppError(response.ErrCodeInternal, "Failed to fetch member", err.Error())
		}
		if target.Role == domain.WorkspaceRoleOwner {
			return response.NewForbiddenError("The owner's role cannot be changed")
		}

		if err := memberRepo.UpdateRole(ctx, workspaceID, targetUserID, req.Role); err != nil {
			return response.NewAppError(response.ErrCodeInternal, "Failed to change role", err.Error())
		}
		target.Role = req.Role
		updated = target
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishWorkspaceEvent(ctx, workspaceID, notifier.EventRoleChanged, map[string]interface{}{
		"user_id": targetUserID,
		"role":    req.Role,
	})
	return dto.ToWorkspaceMemberResponse(updated), nil
}

// RemoveMember removes another member from the workspace and cascades the
// removal across that user's board memberships inside the workspace
func (s *workspaceServiceImpl) RemoveMember(ctx context.Context, workspaceID, targetUserID uuid.UUID) error {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return err
	}

	if actorID == targetUserID {
		return response.NewValidationError("Use leave to remove yourself")
	}

	if _, err := s.findWorkspace(ctx, workspaceID); err != nil {
		return err
	}

	actorRole, isMember, err := workspaceRoleOf(ctx, s.memberRepo, workspaceID, actorID)
	if err != nil {
		return err
	}
	if !isMember || !policy.CanManageWorkspace(actorRole) {
		return response.NewForbiddenError("Insufficient role to manage members")
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		memberRepo := s.memberRepo.WithTx(tx)

		target, err := memberRepo.FindByWorkspaceAndUser(ctx, workspaceID, targetUserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NewNotFoundError("Member not found")
			}
			return response.NewAppError(response.ErrCodeInternal, "Failed to fetch member", err.Error())
		}
		if target.Role == domain.WorkspaceRoleOwner {
			return response.NewForbiddenError("The owner cannot be removed")
		}

		if err := s.boardMembers.WithTx(tx).DeleteByWorkspaceAndUser(ctx, workspaceID, targetUserID); err != nil {
			return response.NewAppError(response.ErrCodeInternal, "Failed to remove board memberships", err.Error())
		}
		if err := memberRepo.Delete(ctx, workspaceID, targetUserID); err != nil {
			return response.NewAppError(response.ErrCodeInternal, "Failed to remove member", err.Error())
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.publishWorkspaceEvent(ctx, workspaceID, notifier.EventMemberRemoved, map[string]interface{}{
		"user_id": targetUserID,
	})
	return nil
}

// LeaveWorkspace removes the caller from the workspace. The owner must
// transfer ownership first.
func (s *workspaceServiceImpl) LeaveWorkspace(ctx context.Context, workspaceID uuid.UUID) error {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return err
	}

	if _, err := s.findWorkspace(ctx, workspaceID); err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		memberRepo := s.memberRepo.WithTx(tx)

		member, err := memberRepo.FindByWorkspaceAndUser(ctx, workspaceID, actorID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NewForbiddenError("Not a member of this workspace")
			}
			return response.NewAppError(response.ErrCodeInternal, "Failed to fetch membership", err.Error())
		}
		if member.Role == domain.WorkspaceRoleOwner {
			return response.NewForbiddenError("The owner must transfer ownership before leaving")
		}

		if err := s.boardMembers.WithTx(tx).DeleteByWorkspaceAndUser(ctx, workspaceID, actorID); err != nil {
			return response.NewAppError(response.ErrCodeInternal, "Failed to remove board memberships", err.Error())
		}
		if err := memberRepo.Delete(ctx, workspaceID, actorID); err != nil {
			return response.NewAppError(response.ErrCodeInternal, "Failed to leave workspace", err.Error())
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.publishWorkspaceEvent(ctx, workspaceID, notifier.EventMemberLeft, map[string]interface{}{
		"user_id": actorID,
	})
	return nil
}

// TransferOwnership atomically demotes the current owner to ADMIN and
// promotes the target member to OWNER
func (s *workspaceServiceImpl) TransferOwnership(ctx context.Context, workspaceID uuid.UUID, req *dto.TransferOwnershipRequest) error {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return err
	}

	if _, err := s.findWorkspace(ctx, workspaceID); err != nil {
		return err
	}

	if req.NewOwnerID == actorID {
		return response.NewValidationError("Cannot transfer ownership to yourself")
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		memberRepo := s.memberRepo.WithTx(tx)

		actor, err := memberRepo.FindByWorkspaceAndUser(ctx, workspaceID, actorID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NewForbiddenError("Not a member of this workspace")
			}
			return response.NewAppError(response.ErrCodeInternal, "Failed to fetch membership", err.Error())
		}
		if actor.Role != domain.WorkspaceRoleOwner {
			return response.NewForbiddenError("Only the owner can transfer ownership")
		}

		if _, err := memberRepo.FindByWorkspaceAndUser(ctx, workspaceID, req.NewOwnerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NewNotFoundError("Target member not found")
			}
			return response.NewAppError(response.ErrCodeInternal, "Failed to fetch target member", err.Error())
		}

		// Both rows change in the same transaction so exactly one OWNER
		// exists at every commit point
		if err := memberRepo.UpdateRole(ctx, workspaceID, actorID, domain.WorkspaceRoleAdmin); err != nil {
			return response.NewAppError(response.ErrCodeInternal, "Failed to demote current owner", err.Error())
		}
		if err := memberRepo.UpdateRole(ctx, workspaceID, req.NewOwnerID, domain.WorkspaceRoleOwner); err != nil {
			return response.NewAppError(response.ErrCodeInternal, "Failed to promote new owner", err.Error())
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.publishWorkspaceEvent(ctx, workspaceID, notifier.EventRoleChanged, map[string]interface{}{
		"user_id": req.NewOwnerID,
		"role":    domain.WorkspaceRoleOwner,
	})
	s.logger.Info("Workspace ownership transferred",
		zap.String("workspace_id", workspaceID.String()),
		zap.String("from", actorID.String()),
		zap.String("to", req.NewOwnerID.String()))
	return nil
}

// findWorkspace fetches a workspace mapping gorm.ErrRecordNotFound to NotFound
func (s *workspaceServiceImpl) findWorkspace(ctx context.Context, workspaceID uuid.UUID) (*domain.Workspace, error) {
	workspace, err := s.workspaceRepo.FindByID(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Workspace not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch workspace", err.Error())
	}
	return workspace, nil
}

// requireManageable loads the workspace and checks the caller may manage it
func (s *workspaceServiceImpl) requireManageable(ctx context.Context, workspaceID uuid.UUID) (*domain.Workspace, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	workspace, err := s.findWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	role, isMember, err := workspaceRoleOf(ctx, s.memberRepo, workspaceID, actorID)
	if err != nil {
		return nil, err
	}
	if !isMember || !policy.CanManageWorkspace(role) {
		return nil, response.NewForbiddenError("Insufficient role to manage this workspace")
	}
	return workspace, nil
}

// publishWorkspaceEvent publishes to the workspace topic. Actor resolution
// failures are impossible here because callers already resolved the actor.
func (s *workspaceServiceImpl) publishWorkspaceEvent(ctx context.Context, workspaceID uuid.UUID, eventType notifier.EventType, payload interface{}) {
	actorID, _ := ctx.Value("user_id").(uuid.UUID)
	s.notifier.Publish(ctx, notifier.WorkspaceTopic(workspaceID), notifier.NewEvent(eventType, actorID, payload))
	if s.metrics != nil {
		s.metrics.IncrementEventPublished(string(eventType))
	}
}
