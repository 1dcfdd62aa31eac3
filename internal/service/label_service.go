package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"kanban-workspace-api/internal/domain"
	"kanban-workspace-api/internal/dto"
	"kanban-workspace-api/internal/notifier"
	"kanban-workspace-api/internal/policy"
	"kanban-workspace-api/internal/repository"
	"kanban-workspace-api/internal/response"
)

// LabelService defines the interface for board label management
type LabelService interface {
	CreateLabel(ctx context.Context, boardID uuid.UUID, req *dto.CreateLabelRequest) (*dto.LabelResponse, error)
	ListLabels(ctx context.Context, boardID uuid.UUID) ([]*dto.LabelResponse, error)
	UpdateLabel(ctx context.Context, boardID, labelID uuid.UUID, req *dto.UpdateLabelRequest) (*dto.LabelResponse, error)
	DeleteLabel(ctx context.Context, boardID, labelID uuid.UUID) error
}

type labelServiceImpl struct {
	boardRepo    repository.BoardRepository
	memberRepo   repository.BoardMemberRepository
	wsMemberRepo repository.WorkspaceMemberRepository
	labelRepo    repository.LabelRepository
	notifier     notifier.Notifier
	logger       *zap.Logger
}

// NewLabelService creates a new instance of LabelService
func NewLabelService(
	boardRepo repository.BoardRepository,
	memberRepo repository.BoardMemberRepository,
	wsMemberRepo repository.WorkspaceMemberRepository,
	labelRepo repository.LabelRepository,
	n notifier.Notifier,
	logger *zap.Logger,
) LabelService {
	return &labelServiceImpl{
		boardRepo:    boardRepo,
		memberRepo:   memberRepo,
		wsMemberRepo: wsMemberRepo,
		labelRepo:    labelRepo,
		notifier:     n,
		logger:       logger,
	}
}

// CreateLabel adds a label to the board's palette. Board admins only.
func (s *labelServiceImpl) CreateLabel(ctx context.Context, boardID uuid.UUID, req *dto.CreateLabelRequest) (*dto.LabelResponse, error) {
	if err := s.requireAdmin(ctx, boardID); err != nil {
		return nil, err
	}

	label := &domain.Label{
		BoardID: boardID,
		Name:    req.Name,
		Color:   req.Color,
	}
	if err := s.labelRepo.Create(ctx, label); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create label", err.Error())
	}

	s.publishLabelEvent(ctx, boardID, label.ID)
	return dto.ToLabelResponse(label), nil
}

// ListLabels returns all labels of a board. Any viewer may list.
func (s *labelServiceImpl) ListLabels(ctx context.Context, boardID uuid.UUID) ([]*dto.LabelResponse, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	board, err := s.findBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}

	_, hasBoardRole, err := boardRoleOf(ctx, s.memberRepo, boardID, actorID)
	if err != nil {
		return nil, err
	}
	wsRole, hasWSRole, err := workspaceRoleOf(ctx, s.wsMemberRepo, board.WorkspaceID, actorID)
	if err != nil {
		return nil, err
	}
	if !policy.CanViewBoard(hasBoardRole, wsRole, hasWSRole, board.Visibility) {
		return nil, response.NewForbiddenError("You do not have access to this board")
	}

	labels, err := s.labelRepo.FindByBoard(ctx, boardID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch labels", err.Error())
	}

	responses := make([]*dto.LabelResponse, len(labels))
	for i, l := range labels {
		responses[i] = dto.ToLabelResponse(l)
	}
	return responses, nil
}

// UpdateLabel renames or recolors a label. Board admins only.
func (s *labelServiceImpl) UpdateLabel(ctx context.Context, boardID, labelID uuid.UUID, req *dto.UpdateLabelRequest) (*dto.LabelResponse, error) {
	if err := s.requireAdmin(ctx, boardID); err != nil {
		return nil, err
	}

	label, err := s.findLabel(ctx, boardID, labelID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		label.Name = *req.Name
	}
	if req.Color != nil {
		label.Color = *req.Color
	}
	if err := s.labelRepo.Update(ctx, label); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update label", err.Error())
	}

	s.publishLabelEvent(ctx, boardID, label.ID)
	return dto.ToLabelResponse(label), nil
}

// DeleteLabel removes a label from the board. Board admins only.
// Cards keep stale label IDs until next read, which the responses filter out.
func (s *labelServiceImpl) DeleteLabel(ctx context.Context, boardID, labelID uuid.UUID) error {
	if err := s.requireAdmin(ctx, boardID); err != nil {
		return err
	}

	if _, err := s.findLabel(ctx, boardID, labelID); err != nil {
		return err
	}

	if err := s.labelRepo.Delete(ctx, labelID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete label", err.Error())
	}

	s.publishLabelEvent(ctx, boardID, labelID)
	return nil
}

func (s *labelServiceImpl) findBoard(ctx context.Context, boardID uuid.UUID) (*domain.Board, error) {
	board, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Board not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch board", err.Error())
	}
	return board, nil
}

func (s *labelServiceImpl) findLabel(ctx context.Context, boardID, labelID uuid.UUID) (*domain.Label, error) {
	label, err := s.labelRepo.FindByID(ctx, labelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Label not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch label", err.Error())
	}
	if label.BoardID != boardID {
		return nil, response.NewNotFoundError("Label not found")
	}
	return label, nil
}

func (s *labelServiceImpl) requireAdmin(ctx context.Context, boardID uuid.UUID) error {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return err
	}
	if _, err := s.findBoard(ctx, boardID); err != nil {
		return err
	}
	role, ok, err := boardRoleOf(ctx, s.memberRepo, boardID, actorID)
	if err != nil {
		return err
	}
	if !ok || !policy.CanManageBoard(role) {
		return response.NewForbiddenError("Only board admins can manage labels")
	}
	return nil
}

func (s *labelServiceImpl) publishLabelEvent(ctx context.Context, boardID, labelID uuid.UUID) {
	if s.notifier == nil {
		return
	}
	actorID, _ := actorFromContext(ctx)
	event := notifier.NewEvent(notifier.EventBoardUpdated, actorID, map[string]interface{}{
		"board_id": boardID,
		"label_id": labelID,
	})
	s.notifier.Publish(ctx, notifier.BoardTopic(boardID), event)
}
