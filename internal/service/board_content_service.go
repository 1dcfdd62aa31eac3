package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"kanban-workspace-api/internal/domain"
	"kanban-workspace-api/internal/dto"
	"kanban-workspace-api/internal/metrics"
	"kanban-workspace-api/internal/notifier"
	"kanban-workspace-api/internal/policy"
	"kanban-workspace-api/internal/position"
	"kanban-workspace-api/internal/repository"
	"kanban-workspace-api/internal/response"
)

// BoardContentService orchestrates everything inside a board: lists, cards,
// checklists, assignees, labels on cards, and comments
type BoardContentService interface {
	CreateList(ctx context.Context, boardID uuid.UUID, req *dto.CreateListRequest) (*dto.ListResponse, error)
	ListLists(ctx context.Context, boardID uuid.UUID) ([]*dto.ListResponse, error)
	RenameList(ctx context.Context, boardID, listID uuid.UUID, req *dto.UpdateListRequest) (*dto.ListResponse, error)
	MoveList(ctx context.Context, boardID, listID uuid.UUID, req *dto.MoveRequest) (*dto.ListResponse, error)
	DeleteList(ctx context.Context, boardID, listID uuid.UUID) error

	CreateCard(ctx context.Context, boardID uuid.UUID, req *dto.CreateCardRequest) (*dto.CardResponse, error)
	GetCard(ctx context.Context, boardID, cardID uuid.UUID) (*dto.CardResponse, error)
	ListCards(ctx context.Context, boardID uuid.UUID, listID *uuid.UUID) ([]*dto.CardResponse, error)
	UpdateCard(ctx context.Context, boardID, cardID uuid.UUID, req *dto.UpdateCardRequest) (*dto.CardResponse, error)
	MoveCard(ctx context.Context, boardID, cardID uuid.UUID, req *dto.MoveRequest) (*dto.CardResponse, error)
	DeleteCard(ctx context.Context, boardID, cardID uuid.UUID) error

	AssignMember(ctx context.Context, boardID, cardID uuid.UUID, req *dto.AssigneeRequest) (*dto.CardResponse, error)
	UnassignMember(ctx context.Context, boardID, cardID, userID uuid.UUID) (*dto.CardResponse, error)
	AttachLabel(ctx context.Context, boardID, cardID uuid.UUID, req *dto.CardLabelRequest) (*dto.CardResponse, error)
	DetachLabel(ctx context.Context, boardID, cardID, labelID uuid.UUID) (*dto.CardResponse, error)

	AddChecklist(ctx context.Context, boardID, cardID uuid.UUID, req *dto.ChecklistRequest) (*dto.CardResponse, error)
	RemoveChecklist(ctx context.Context, boardID, cardID, checklistID uuid.UUID) (*dto.CardResponse, error)
	AddChecklistItem(ctx context.Context, boardID, cardID, checklistID uuid.UUID, req *dto.ChecklistItemRequest) (*dto.CardResponse, error)
	ToggleChecklistItem(ctx context.Context, boardID, cardID, checklistID, itemID uuid.UUID, req *dto.ChecklistItemToggleRequest) (*dto.CardResponse, error)
	RemoveChecklistItem(ctx context.Context, boardID, cardID, checklistID, itemID uuid.UUID) (*dto.CardResponse, error)

	AddComment(ctx context.Context, boardID, cardID uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	ListComments(ctx context.Context, boardID, cardID uuid.UUID) ([]*dto.CommentResponse, error)
	UpdateComment(ctx context.Context, boardID, commentID uuid.UUID, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error)
	DeleteComment(ctx context.Context, boardID, commentID uuid.UUID) error
}

// boardContentServiceImpl is the implementation of BoardContentService
type boardContentServiceImpl struct {
	db           *gorm.DB
	boardRepo    repository.BoardRepository
	memberRepo   repository.BoardMemberRepository
	wsMemberRepo repository.WorkspaceMemberRepository
	listRepo     repository.KanbanListRepository
	cardRepo     repository.KanbanCardRepository
	commentRepo  repository.CommentRepository
	labelRepo    repository.LabelRepository
	notifier     notifier.Notifier
	metrics      *metrics.Metrics
	logger       *zap.Logger
}

// NewBoardContentService creates a new instance of BoardContentService
func NewBoardContentService(
	db *gorm.DB,
	boardRepo repository.BoardRepository,
	memberRepo repository.BoardMemberRepository,
	wsMemberRepo repository.WorkspaceMemberRepository,
	listRepo repository.KanbanListRepository,
	cardRepo repository.KanbanCardRepository,
	commentRepo repository.CommentRepository,
	labelRepo repository.LabelRepository,
	n notifier.Notifier,
	m *metrics.Metrics,
	logger *zap.Logger,
) BoardContentService {
	return &boardContentServiceImpl{
		db:           db,
		boardRepo:    boardRepo,
		memberRepo:   memberRepo,
		wsMemberRepo: wsMemberRepo,
		listRepo:     listRepo,
		cardRepo:     cardRepo,
		commentRepo:  commentRepo,
		labelRepo:    labelRepo,
		notifier:     n,
		metrics:      m,
		logger:       logger,
	}
}

// CreateList creates a list at the requested position, rebalancing the
// board's lists when the request collides or sits too close to zero
func (s *boardContentServiceImpl) CreateList(ctx context.Context, boardID uuid.UUID, req *dto.CreateListRequest) (*dto.ListResponse, error) {
	if _, err := s.requireContentEditor(ctx, boardID); err != nil {
		return nil, err
	}

	lists, err := s.listRepo.FindByBoard(ctx, boardID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch lists", err.Error())
	}

	newID := uuid.New()
	pos, rebalanced := position.AssignOnCreate(listItems(lists), newID, req.Position)

	list := &domain.KanbanList{
		BaseModel: domain.BaseModel{ID: newID},
		BoardID:   boardID,
		Title:     req.Title,
		Position:  pos,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.listRepo.WithTx(tx).Create(ctx, list); err != nil {
			return err
		}
		if rebalanced != nil {
			return s.applyListRebalance(ctx, tx, lists, rebalanced)
		}
		return nil
	})
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create list", err.Error())
	}

	if rebalanced != nil && s.metrics != nil {
		s.metrics.IncrementRebalance("list")
	}
	s.publishContentEvent(ctx, boardID, notifier.EventListCreated, list.ID)
	return dto.ToListResponse(list), nil
}

// ListLists returns the board's lists ordered by position
func (s *boardContentServiceImpl) ListLists(ctx context.Context, boardID uuid.UUID) ([]*dto.ListResponse, error) {
	if _, err := s.requireViewer(ctx, boardID); err != nil {
		return nil, err
	}

	lists, err := s.listRepo.FindByBoard(ctx, boardID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch lists", err.Error())
	}

	responses := make([]*dto.ListResponse, len(lists))
	for i, l := range lists {
		responses[i] = dto.ToListResponse(l)
	}
	return responses, nil
}

// RenameList updates a list's title
func (s *boardContentServiceImpl) RenameList(ctx context.Context, boardID, listID uuid.UUID, req *dto.UpdateListRequest) (*dto.ListResponse, error) {
	if _, err := s.requireContentEditor(ctx, boardID); err != nil {
		return nil, err
	}

	list, err := s.findList(ctx, boardID, listID)
	if err != nil {
		return nil, err
	}

	list.Title = req.Title
	if err := s.listRepo.Save(ctx, list); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to rename list", err.Error())
	}

	s.publishContentEvent(ctx, boardID, notifier.EventListUpdated, list.ID)
	return dto.ToListResponse(list), nil
}

// MoveList repositions a list within its board
func (s *boardContentServiceImpl) MoveList(ctx context.Context, boardID, listID uuid.UUID, req *dto.MoveRequest) (*dto.ListResponse, error) {
	if _, err := s.requireContentEditor(ctx, boardID); err != nil {
		return nil, err
	}

	list, err := s.findList(ctx, boardID, listID)
	if err != nil {
		return nil, err
	}

	lists, err := s.listRepo.FindByBoard(ctx, boardID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch lists", err.Error())
	}

	pos, rebalanced, err := position.Move(listItems(lists), listID, req.Position)
	if err != nil {
		return nil, mapPositionError(err)
	}

	list.Position = pos
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if rebalanced != nil {
			return s.applyListRebalance(ctx, tx, lists, rebalanced)
		}
		return s.listRepo.WithTx(tx).Save(ctx, list)
	})
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to move list", err.Error())
	}

	if rebalanced != nil && s.metrics != nil {
		s.metrics.IncrementRebalance("list")
	}
	s.publishContentEvent(ctx, boardID, notifier.EventListMoved, map[string]interface{}{
		"list_id":  listID,
		"position": pos,
	})
	return dto.ToListResponse(list), nil
}

// DeleteList removes a list together with its cards
func (s *boardContentServiceImpl) DeleteList(ctx context.Context, boardID, listID uuid.UUID) error {
	if _, err := s.requireContentEditor(ctx, boardID); err != nil {
		return err
	}

	if _, err := s.findList(ctx, boardID, listID); err != nil {
		return err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.cardRepo.WithTx(tx).DeleteByList(ctx, listID); err != nil {
			return err
		}
		return s.listRepo.WithTx(tx).Delete(ctx, listID)
	})
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete list", err.Error())
	}

	s.publishContentEvent(ctx, boardID, notifier.EventListDeleted, listID)
	return nil
}

// findList loads a list and checks it belongs to the given board
func (s *boardContentServiceImpl) findList(ctx context.Context, boardID, listID uuid.UUID) (*domain.KanbanList, error) {
	list, err := s.listRepo.FindByID(ctx, listID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("List not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch list", err.Error())
	}
	if list.BoardID != boardID {
		return nil, response.NewNotFoundError("List not found")
	}
	return list, nil
}

// applyListRebalance writes rebalanced positions back to the board's lists
// in one transaction scope
func (s *boardContentServiceImpl) applyListRebalance(ctx context.Context, tx *gorm.DB, lists []*domain.KanbanList, rebalanced []position.Item) error {
	byID := make(map[uuid.UUID]float64, len(rebalanced))
	for _, item := range rebalanced {
		byID[item.ID] = item.Pos
	}
	changed := make([]*domain.KanbanList, 0, len(lists))
	for _, l := range lists {
		if pos, ok := byID[l.ID]; ok && pos != l.Position {
			l.Position = pos
			changed = append(changed, l)
		}
	}
	return s.listRepo.WithTx(tx).SaveAll(ctx, changed)
}

// requireViewer checks the caller may view the board's content
func (s *boardContentServiceImpl) requireViewer(ctx context.Context, boardID uuid.UUID) (uuid.UUID, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return uuid.Nil, err
	}

	board, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, response.NewNotFoundError("Board not found")
		}
		return uuid.Nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch board", err.Error())
	}

	_, isBoardMember, err := boardRoleOf(ctx, s.memberRepo, boardID, actorID)
	if err != nil {
		return uuid.Nil, err
	}
	wsRole, isWSMember, err := workspaceRoleOf(ctx, s.wsMemberRepo, board.WorkspaceID, actorID)
	if err != nil {
		return uuid.Nil, err
	}
	if !policy.CanViewBoard(isBoardMember, wsRole, isWSMember, board.Visibility) {
		return uuid.Nil, response.NewForbiddenError("No access to this board")
	}
	return actorID, nil
}

// requireContentEditor checks the caller holds a content-editing board role
func (s *boardContentServiceImpl) requireContentEditor(ctx context.Context, boardID uuid.UUID) (uuid.UUID, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return uuid.Nil, err
	}

	if _, err := s.boardRepo.FindByID(ctx, boardID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, response.NewNotFoundError("Board not found")
		}
		return uuid.Nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch board", err.Error())
	}

	role, isMember, err := boardRoleOf(ctx, s.memberRepo, boardID, actorID)
	if err != nil {
		return uuid.Nil, err
	}
	if !isMember || !policy.CanEditBoardContent(role) {
		return uuid.Nil, response.NewForbiddenError("Insufficient role to edit board content")
	}
	return actorID, nil
}

// publishContentEvent publishes to the board topic
func (s *boardContentServiceImpl) publishContentEvent(ctx context.Context, boardID uuid.UUID, eventType notifier.EventType, payload interface{}) {
	actorID, _ := ctx.Value("user_id").(uuid.UUID)
	s.notifier.Publish(ctx, notifier.BoardTopic(boardID), notifier.NewEvent(eventType, actorID, payload))
	if s.metrics != nil {
		s.metrics.IncrementEventPublished(string(eventType))
	}
}

// publishCardEvent publishes to the board topic and to the card's own topic,
// so subscribers watching a single card receive its changes without the
// board-wide stream
func (s *boardContentServiceImpl) publishCardEvent(ctx context.Context, boardID, cardID uuid.UUID, eventType notifier.EventType, payload interface{}) {
	actorID, _ := ctx.Value("user_id").(uuid.UUID)
	event := notifier.NewEvent(eventType, actorID, payload)
	s.notifier.Publish(ctx, notifier.BoardTopic(boardID), event)
	s.notifier.Publish(ctx, notifier.CardTopic(boardID, cardID), event)
	if s.metrics != nil {
		s.metrics.IncrementEventPublished(string(eventType))
	}
}

// mapPositionError translates allocator errors into transport errors
func mapPositionError(err error) error {
	switch {
	case errors.Is(err, position.ErrInvalidPosition):
		return response.NewValidationError("Target position is out of range")
	case errors.Is(err, position.ErrItemNotFound):
		return response.NewNotFoundError("Item not found among its siblings")
	default:
		return response.NewAppError(response.ErrCodeInternal, "Position allocation failed", err.Error())
	}
}

func listItems(lists []*domain.KanbanList) []position.Item {
	items := make([]position.Item, len(lists))
	for i, l := range lists {
		items[i] = position.Item{ID: l.ID, Pos: l.Position}
	}
	return items
}

func cardItems(cards []*domain.KanbanCard) []position.Item {
	items := make([]position.Item, len(cards))
	for i, c := range cards {
		items[i] = position.Item{ID: c.ID, Pos: c.Position}
	}
	return items
}
