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

// BoardService defines the interface for board business logic
type BoardService interface {
	CreateBoard(ctx context.Context, req *dto.CreateBoardRequest) (*dto.BoardResponse, error)
	GetBoard(ctx context.Context, boardID uuid.UUID) (*dto.BoardResponse, error)
	ListBoardsByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]*dto.BoardResponse, error)
	UpdateBoard(ctx context.Context, boardID uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardResponse, error)
	DeleteBoard(ctx context.Context, boardID uuid.UUID) error
	JoinBoard(ctx context.Context, boardID uuid.UUID) (*dto.BoardMemberResponse, error)
	LeaveBoard(ctx context.Context, boardID uuid.UUID) error
	ListMembers(ctx context.Context, boardID uuid.UUID) ([]*dto.BoardMemberResponse, error)
	AddMember(ctx context.Context, boardID uuid.UUID, req *dto.AddBoardMemberRequest) (*dto.BoardMemberResponse, error)
	ChangeMemberRole(ctx context.Context, boardID, targetUserID uuid.UUID, req *dto.ChangeBoardRoleRequest) (*dto.BoardMemberResponse, error)
	RemoveMember(ctx context.Context, boardID, targetUserID uuid.UUID) error
}

// boardServiceImpl is the implementation of BoardService
type boardServiceImpl struct {
	db             *gorm.DB
	boardRepo      repository.BoardRepository
	memberRepo     repository.BoardMemberRepository
	workspaceRepo  repository.WorkspaceRepository
	wsMemberRepo   repository.WorkspaceMemberRepository
	notifier       notifier.Notifier
	metrics        *metrics.Metrics
	logger         *zap.Logger
}

// NewBoardService creates a new instance of BoardService
func NewBoardService(
	db *gorm.DB,
	boardRepo repository.BoardRepository,
	memberRepo repository.BoardMemberRepository,
	workspaceRepo repository.WorkspaceRepository,
	wsMemberRepo repository.WorkspaceMemberRepository,
	n notifier.Notifier,
	m *metrics.Metrics,
	logger *zap.Logger,
) BoardService {
	return &boardServiceImpl{
		db:            db,
		boardRepo:     boardRepo,
		memberRepo:    memberRepo,
		workspaceRepo: workspaceRepo,
		wsMemberRepo:  wsMemberRepo,
		notifier:      n,
		metrics:       m,
		logger:        logger,
	}
}

// CreateBoard creates a board gated by the workspace's board-creation policy.
// The creator becomes the board's first ADMIN.
func (s *boardServiceImpl) CreateBoard(ctx context.Context, req *dto.CreateBoardRequest) (*dto.BoardResponse, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	workspace, err := s.workspaceRepo.FindByID(ctx, req.WorkspaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Workspace not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch workspace", err.Error())
	}

	wsRole, isMember, err := workspaceRoleOf(ctx, s.wsMemberRepo, req.WorkspaceID, actorID)
	if err != nil {
		return nil, err
	}
	if !isMember || !policy.CanCreateBoard(wsRole, req.Visibility, workspace) {
		return nil, response.NewForbiddenError("Insufficient role to create a board here")
	}

	board := &domain.Board{
		WorkspaceID: req.WorkspaceID,
		Title:       req.Title,
		Description: req.Description,
		Visibility:  req.Visibility,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.boardRepo.WithTx(tx).Create(ctx, board); err != nil {
			return err
		}
		creator := &domain.BoardMember{
			BoardID:   board.ID,
			UserID:    actorID,
			Role:      domain.BoardRoleAdmin,
			JoinedAt:  time.Now(),
			UpdatedAt: time.Now(),
		}
		return s.memberRepo.WithTx(tx).Create(ctx, creator)
	})
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create board", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementBoardCreated()
	}
	s.logger.Info("Board created",
		zap.String("board_id", board.ID.String()),
		zap.String("workspace_id", board.WorkspaceID.String()),
		zap.String("creator_id", actorID.String()))

	return dto.ToBoardResponse(board), nil
}

// GetBoard returns a board the caller may view
func (s *boardServiceImpl) GetBoard(ctx context.Context, boardID uuid.UUID) (*dto.BoardResponse, error) {
	board, _, err := s.requireViewable(ctx, boardID)
	if err != nil {
		return nil, err
	}
	return dto.ToBoardResponse(board), nil
}

// ListBoardsByWorkspace returns the workspace's boards visible to the caller
func (s *boardServiceImpl) ListBoardsByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]*dto.BoardResponse, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	wsRole, isWSMember, err := workspaceRoleOf(ctx, s.wsMemberRepo, workspaceID, actorID)
	if err != nil {
		return nil, err
	}
	if !isWSMember {
		return nil, response.NewForbiddenError("Not a member of this workspace")
	}

	boards, err := s.boardRepo.FindByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch boards", err.Error())
	}

	responses := make([]*dto.BoardResponse, 0, len(boards))
	for _, board := range boards {
		_, isBoardMember, err := boardRoleOf(ctx, s.memberRepo, board.ID, actorID)
		if err != nil {
			return nil, err
		}
		if policy.CanViewBoard(isBoardMember, wsRole, isWSMember, board.Visibility) {
			responses = append(responses, dto.ToBoardResponse(board))
		}
	}
	return responses, nil
}

// UpdateBoard updates title, description and visibility. Board admin only.
func (s *boardServiceImpl) UpdateBoard(ctx context.Context, boardID uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardResponse, error) {
	board, _, err := s.requireManageable(ctx, boardID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		board.Title = *req.Title
	}
	if req.Description != nil {
		board.Description = *req.Description
	}
	if req.Visibility != nil {
		board.Visibility = *req.Visibility
	}

	if err := s.boardRepo.Update(ctx, board); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update board", err.Error())
	}

	s.publishBoardEvent(ctx, board.ID, notifier.EventBoardUpdated, board.ID)
	return dto.ToBoardResponse(board), nil
}

// DeleteBoard removes the board and everything it owns. Board admin only.
func (s *boardServiceImpl) DeleteBoard(ctx context.Context, boardID uuid.UUID) error {
	board, actorID, err := s.requireManageable(ctx, boardID)
	if err != nil {
		return err
	}

	if err := s.boardRepo.DeleteCascade(ctx, boardID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete board", err.Error())
	}

	s.publishBoardEvent(ctx, boardID, notifier.EventBoardDeleted, boardID)
	s.logger.Info("Board deleted",
		zap.String("board_id", board.ID.String()),
		zap.String("actor_id", actorID.String()))
	return nil
}

// JoinBoard lets a workspace member join a WORKSPACE-visible board as MEMBER
func (s *boardServiceImpl) JoinBoard(ctx context.Context, boardID uuid.UUID) (*dto.BoardMemberResponse, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	board, err := s.findBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}

	wsRole, isWSMember, err := workspaceRoleOf(ctx, s.wsMemberRepo, board.WorkspaceID, actorID)
	if err != nil {
		return nil, err
	}
	if !isWSMember || wsRole == domain.WorkspaceRoleGuest || board.Visibility != domain.BoardVisibilityWorkspace {
		return nil, response.NewForbiddenError("This board is not open for joining")
	}

	member := &domain.BoardMember{
		BoardID:   boardID,
		UserID:    actorID,
		Role:      domain.BoardRoleMember,
		JoinedAt:  time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.memberRepo.Create(ctx, member); err != nil {
		if isDuplicateKeyError(err) {
			return nil, response.NewConflictError("Already a member of this board")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to join board", err.Error())
	}

	s.publishBoardEvent(ctx, boardID, notifier.EventMemberJoined, map[string]interface{}{
		"user_id": actorID,
	})
	return dto.ToBoardMemberResponse(member), nil
}

// LeaveBoard removes the caller from the board. The last member and the
// sole ADMIN of a multi-member board cannot leave.
func (s *boardServiceImpl) LeaveBoard(ctx context.Context, boardID uuid.UUID) error {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return err
	}

	if _, err := s.findBoard(ctx, boardID); err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		memberRepo := s.memberRepo.WithTx(tx)

		member, err := memberRepo.FindByBoardAndUser(ctx, boardID, actorID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NewForbiddenError("Not a member of this board")
			}
			return response.NewAppError(response.ErrCodeInternal, "Failed to fetch membership", err.Error())
		}

		total, err := memberRepo.CountByBoard(ctx, boardID)
		if err != nil {
			return response.NewAppError(response.ErrCodeInternal, "Failed to count members", err.Error())
		}
		if total == 1 {
			return response.NewForbiddenError("The last member cannot leave; delete the board instead")
		}
		if member.Role == domain.BoardRoleAdmin {
			admins, err := memberRepo.CountByRole(ctx, boardID, domain.BoardRoleAdmin)
			if err != nil {
				return response.NewAppError(response.ErrCodeInternal, "Failed to count admins", err.Error())
			}
			if admins == 1 {
				return response.NewForbiddenError("The only admin cannot leave; promote another member first")
			}
		}

		return memberRepo.Delete(ctx, boardID, actorID)
	})
	if err != nil {
		var appErr *response.AppError
		if errors.As(err, &appErr) {
			return err
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to leave board", err.Error())
	}

	s.publishBoardEvent(ctx, boardID, notifier.EventMemberLeft, map[string]interface{}{
		"user_id": actorID,
	})
	return nil
}

// ListMembers returns the board roster for anyone who can view the board
func (s *boardServiceImpl) ListMembers(ctx context.Context, boardID uuid.UUID) ([]*dto.BoardMemberResponse, error) {
	if _, _, err := s.requireViewable(ctx, boardID); err != nil {
		return nil, err
	}

	members, err := s.memberRepo.FindByBoard(ctx, boardID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch members", err.Error())
	}

	responses := make([]*dto.BoardMemberResponse, len(members))
	for i, m := range members {
		responses[i] = dto.ToBoardMemberResponse(m)
	}
	return responses, nil
}

// AddMember adds a workspace member directly to the board. Board admin only.
func (s *boardServiceImpl) AddMember(ctx context.Context, boardID uuid.UUID, req *dto.AddBoardMemberRequest) (*dto.BoardMemberResponse, error) {
	board, _, err := s.requireManageable(ctx, boardID)
	if err != nil {
		return nil, err
	}

	_, isWSMember, err := workspaceRoleOf(ctx, s.wsMemberRepo, board.WorkspaceID, req.UserID)
	if err != nil {
		return nil, err
	}
	if !isWSMember {
		return nil, response.NewValidationError("Target user is not a member of the workspace")
	}

	role := req.Role
	if role == "" {
		role = domain.BoardRoleMember
	}

	member := &domain.BoardMember{
		BoardID:   boardID,
		UserID:    req.UserID,
		Role:      role,
		JoinedAt:  time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.memberRepo.Create(ctx, member); err != nil {
		if isDuplicateKeyError(err) {
			return nil, response.NewConflictError("Already a member of this board")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to add member", err.Error())
	}

	s.publishBoardEvent(ctx, boardID, notifier.EventMemberJoined, map[string]interface{}{
		"user_id": req.UserID,
		"role":    role,
	})
	return dto.ToBoardMemberResponse(member), nil
}

// ChangeMemberRole assigns a new board role. Demoting the sole ADMIN is
// rejected so the board never loses its last admin.
func (s *boardServiceImpl) ChangeMemberRole(ctx context.Context, boardID, targetUserID uuid.UUID, req *dto.ChangeBoardRoleRequest) (*dto.BoardMemberResponse, error) {
	if _, _, err := s.requireManageable(ctx, boardID); err != nil {
		return nil, err
	}

	var updated *domain.BoardMember
	err := s.db.Transaction(func(tx *gorm.DB) error {
		memberRepo := s.memberRepo.WithTx(tx)

		target, err := memberRepo.FindByBoardAndUser(ctx, boardID, targetUserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NewNotFoundError("Member not found")
			}
			return response.NewAppError(response.ErrCodeInternal, "Failed to fetch member", err.Error())
		}

		if target.Role == domain.BoardRoleAdmin && req.Role != domain.BoardRoleAdmin {
			admins, err := memberRepo.CountByRole(ctx, boardID, domain.BoardRoleAdmin)
			if err != nil {
				return response.NewAppError(response.ErrCodeInternal, "Failed to count admins", err.Error())
			}
			if admins == 1 {
				return response.NewForbiddenError("Cannot demote the only admin")
			}
		}

		if err := memberRepo.UpdateRole(ctx, boardID, targetUserID, req.Role); err != nil {
			return response.NewAppError(response.ErrCodeInternal, "Failed to change role", err.Error())
		}
		target.Role = req.Role
		updated = target
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishBoardEvent(ctx, boardID, notifier.EventRoleChanged, map[string]interface{}{
		"user_id": targetUserID,
		"role":    req.Role,
	})
	return dto.ToBoardMemberResponse(updated), nil
}

// RemoveMember removes another member from the board with the same guards
// as LeaveBoard
func (s *boardServiceImpl) RemoveMember(ctx context.Context, boardID, targetUserID uuid.UUID) error {
	_, actorID, err := s.requireManageable(ctx, boardID)
	if err != nil {
		return err
	}
	if actorID == targetUserID {
		return response.NewValidationError("Use leave to remove yourself")
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		memberRepo := s.memberRepo.WithTx(tx)

		target, err := memberRepo.FindByBoardAndUser(ctx, boardID, targetUserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NewNotFoundError("Member not found")
			}
			return response.NewAppError(response.ErrCodeInternal, "Failed to fetch member", err.Error())
		}

		total, err := memberRepo.CountByBoard(ctx, boardID)
		if err != nil {
			return response.NewAppError(response.ErrCodeInternal, "Failed to count members", err.Error())
		}
		if total == 1 {
			return response.NewForbiddenError("The last member cannot be removed; delete the board instead")
		}
		if target.Role == domain.BoardRoleAdmin {
			admins, err := memberRepo.CountByRole(ctx, boardID, domain.BoardRoleAdmin)
			if err != nil {
				return response.NewAppError(response.ErrCodeInternal, "Failed to count admins", err.Error())
			}
			if admins == 1 {
				return response.NewForbiddenError("Cannot remove the only admin")
			}
		}

		return memberRepo.Delete(ctx, boardID, targetUserID)
	})
	if err != nil {
		var appErr *response.AppError
		if errors.As(err, &appErr) {
			return err
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to remove member", err.Error())
	}

	s.publishBoardEvent(ctx, boardID, notifier.EventMemberRemoved, map[string]interface{}{
		"user_id": targetUserID,
	})
	return nil
}

// findBoard fetches a board mapping gorm.ErrRecordNotFound to NotFound
func (s *boardServiceImpl) findBoard(ctx context.Context, boardID uuid.UUID) (*domain.Board, error) {
	board, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Board not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch board", err.Error())
	}
	return board, nil
}

// requireViewable loads the board and checks the caller may view it
func (s *boardServiceImpl) requireViewable(ctx context.Context, boardID uuid.UUID) (*domain.Board, uuid.UUID, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return nil, uuid.Nil, err
	}

	board, err := s.findBoard(ctx, boardID)
	if err != nil {
		return nil, uuid.Nil, err
	}

	_, isBoardMember, err := boardRoleOf(ctx, s.memberRepo, boardID, actorID)
	if err != nil {
		return nil, uuid.Nil, err
	}
	wsRole, isWSMember, err := workspaceRoleOf(ctx, s.wsMemberRepo, board.WorkspaceID, actorID)
	if err != nil {
		return nil, uuid.Nil, err
	}
	if !policy.CanViewBoard(isBoardMember, wsRole, isWSMember, board.Visibility) {
		return nil, uuid.Nil, response.NewForbiddenError("No access to this board")
	}
	return board, actorID, nil
}

// requireManageable loads the board and checks the caller is a board admin
func (s *boardServiceImpl) requireManageable(ctx context.Context, boardID uuid.UUID) (*domain.Board, uuid.UUID, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return nil, uuid.Nil, err
	}

	board, err := s.findBoard(ctx, boardID)
	if err != nil {
		return nil, uuid.Nil, err
	}

	role, isMember, err := boardRoleOf(ctx, s.memberRepo, boardID, actorID)
	if err != nil {
		return nil, uuid.Nil, err
	}
	if !isMember || !policy.CanManageBoard(role) {
		return nil, uuid.Nil, response.NewForbiddenError("Insufficient role to manage this board")
	}
	return board, actorID, nil
}

// publishBoardEvent publishes to the board topic
func (s *boardServiceImpl) publishBoardEvent(ctx context.Context, boardID uuid.UUID, eventType notifier.EventType, payload interface{}) {
	actorID, _ := ctx.Value("user_id").(uuid.UUID)
	s.notifier.Publish(ctx, notifier.BoardTopic(boardID), notifier.NewEvent(eventType, actorID, payload))
	if s.metrics != nil {
		s.metrics.IncrementEventPublished(string(eventType))
	}
}
