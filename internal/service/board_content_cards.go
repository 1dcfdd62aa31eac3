package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kanban-workspace-api/internal/domain"
	"kanban-workspace-api/internal/dto"
	"kanban-workspace-api/internal/notifier"
	"kanban-workspace-api/internal/position"
	"kanban-workspace-api/internal/response"
)

// CreateCard creates a card in a list at the requested position
func (s *boardContentServiceImpl) CreateCard(ctx context.Context, boardID uuid.UUID, req *dto.CreateCardRequest) (*dto.CardResponse, error) {
	if _, err := s.requireContentEditor(ctx, boardID); err != nil {
		return nil, err
	}

	if _, err := s.findList(ctx, boardID, req.ListID); err != nil {
		return nil, err
	}

	cards, err := s.cardRepo.FindByList(ctx, req.ListID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch cards", err.Error())
	}

	newID := uuid.New()
	pos, rebalanced := position.AssignOnCreate(cardItems(cards), newID, req.Position)

	card := &domain.KanbanCard{
		BaseModel:   domain.BaseModel{ID: newID},
		BoardID:     boardID,
		ListID:      req.ListID,
		Title:       req.Title,
		Description: req.Description,
		Position:    pos,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.cardRepo.WithTx(tx).Create(ctx, card); err != nil {
			return err
		}
		if rebalanced != nil {
			return s.applyCardRebalance(ctx, tx, cards, rebalanced)
		}
		return nil
	})
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create card", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementCardCreated()
		if rebalanced != nil {
			s.metrics.IncrementRebalance("card")
		}
	}
	s.publishCardEvent(ctx, boardID, card.ID, notifier.EventCardCreated, card.ID)
	return dto.ToCardResponse(card), nil
}

// GetCard returns a single card
func (s *boardContentServiceImpl) GetCard(ctx context.Context, boardID, cardID uuid.UUID) (*dto.CardResponse, error) {
	if _, err := s.requireViewer(ctx, boardID); err != nil {
		return nil, err
	}

	card, err := s.findCard(ctx, boardID, cardID)
	if err != nil {
		return nil, err
	}
	return dto.ToCardResponse(card), nil
}

// ListCards returns cards for a list, or the whole board when listID is nil,
// ordered by position
func (s *boardContentServiceImpl) ListCards(ctx context.Context, boardID uuid.UUID, listID *uuid.UUID) ([]*dto.CardResponse, error) {
	if _, err := s.requireViewer(ctx, boardID); err != nil {
		return nil, err
	}

	var (
		cards []*domain.KanbanCard
		err   error
	)
	if listID != nil {
		if _, err := s.findList(ctx, boardID, *listID); err != nil {
			return nil, err
		}
		cards, err = s.cardRepo.FindByList(ctx, *listID)
	} else {
		cards, err = s.cardRepo.FindByBoard(ctx, boardID)
	}
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch cards", err.Error())
	}

	responses := make([]*dto.CardResponse, len(cards))
	for i, c := range cards {
		responses[i] = dto.ToCardResponse(c)
	}
	return responses, nil
}

// UpdateCard updates title, description and dates
func (s *boardContentServiceImpl) UpdateCard(ctx context.Context, boardID, cardID uuid.UUID, req *dto.UpdateCardRequest) (*dto.CardResponse, error) {
	if _, err := s.requireContentEditor(ctx, boardID); err != nil {
		return nil, err
	}

	card, err := s.findCard(ctx, boardID, cardID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		card.Title = *req.Title
	}
	if req.Description != nil {
		card.Description = *req.Description
	}
	if req.StartDate != nil {
		card.StartDate = req.StartDate
	}
	if req.DueDate != nil {
		card.DueDate = req.DueDate
	}
	if card.StartDate != nil && card.DueDate != nil && card.StartDate.After(*card.DueDate) {
		return nil, response.NewValidationError("Start date must not be after due date")
	}

	if err := s.cardRepo.Save(ctx, card); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update card", err.Error())
	}

	s.publishCardEvent(ctx, boardID, card.ID, notifier.EventCardUpdated, card.ID)
	return dto.ToCardResponse(card), nil
}

// MoveCard repositions a card, optionally into another list of the same board
func (s *boardContentServiceImpl) MoveCard(ctx context.Context, boardID, cardID uuid.UUID, req *dto.MoveRequest) (*dto.CardResponse, error) {
	if _, err := s.requireContentEditor(ctx, boardID); err != nil {
		return nil, err
	}

	card, err := s.findCard(ctx, boardID, cardID)
	if err != nil {
		return nil, err
	}

	targetListID := card.ListID
	if req.ListID != nil {
		targetListID = *req.ListID
		if _, err := s.findList(ctx, boardID, targetListID); err != nil {
			return nil, err
		}
	}

	siblings, err := s.cardRepo.FindByList(ctx, targetListID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch cards", err.Error())
	}

	// A card entering another list is not among that list's siblings yet
	items := cardItems(siblings)
	found := false
	for _, it := range items {
		if it.ID == cardID {
			found = true
			break
		}
	}
	if !found {
		items = append(items, position.Item{ID: cardID, Pos: card.Position})
	}

	pos, rebalanced, err := position.Move(items, cardID, req.Position)
	if err != nil {
		return nil, mapPositionError(err)
	}

	card.ListID = targetListID
	card.Position = pos
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.cardRepo.WithTx(tx).Save(ctx, card); err != nil {
			return err
		}
		if rebalanced != nil {
			return s.applyCardRebalance(ctx, tx, siblings, rebalanced)
		}
		return nil
	})
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to move card", err.Error())
	}

	if rebalanced != nil && s.metrics != nil {
		s.metrics.IncrementRebalance("card")
	}
	s.publishCardEvent(ctx, boardID, cardID, notifier.EventCardMoved, map[string]interface{}{
		"card_id":  cardID,
		"list_id":  targetListID,
		"position": pos,
	})
	return dto.ToCardResponse(card), nil
}

// DeleteCard removes a card and its comments
func (s *boardContentServiceImpl) DeleteCard(ctx context.Context, boardID, cardID uuid.UUID) error {
	if _, err := s.requireContentEditor(ctx, boardID); err != nil {
		return err
	}

	if _, err := s.findCard(ctx, boardID, cardID); err != nil {
		return err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.commentRepo.WithTx(tx).DeleteByCard(ctx, cardID); err != nil {
			return err
		}
		return s.cardRepo.WithTx(tx).Delete(ctx, cardID)
	})
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete card", err.Error())
	}

	s.publishCardEvent(ctx, boardID, cardID, notifier.EventCardDeleted, cardID)
	return nil
}

// AssignMember adds a board member to the card's assignee set
func (s *boardContentServiceImpl) AssignMember(ctx context.Context, boardID, cardID uuid.UUID, req *dto.AssigneeRequest) (*dto.CardResponse, error) {
	if _, err := s.requireContentEditor(ctx, boardID); err != nil {
		return nil, err
	}

	card, err := s.findCard(ctx, boardID, cardID)
	if err != nil {
		return nil, err
	}

	_, isMember, err := boardRoleOf(ctx, s.memberRepo, boardID, req.UserID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, response.NewValidationError("Assignee must be a member of the board")
	}

	assignees, err := card.DecodeAssignees()
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to decode assignees", err.Error())
	}
	for _, id := range assignees {
		if id == req.UserID {
			return nil, response.NewConflictError("User is already assigned to this card")
		}
	}
	if err := card.EncodeAssignees(append(assignees, req.UserID)); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to encode assignees", err.Error())
	}

	if err := s.cardRepo.Save(ctx, card); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update card", err.Error())
	}

	s.publishCardEvent(ctx, boardID, card.ID, notifier.EventCardUpdated, card.ID)
	return dto.ToCardResponse(card), nil
}

// UnassignMember removes a user from the card's assignee set
func (s *boardContentServiceImpl) UnassignMember(ctx context.Context, boardID, cardID, userID uuid.UUID) (*dto.CardResponse, error) {
	if _, err := s.requireContentEditor(ctx, boardID); err != nil {
		return nil, err
	}

	card, err := s.findCard(ctx, boardID, cardID)
	if err != nil {
		return nil, err
	}

	assignees, err := card.DecodeAssignees()
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to decode assignees", err.Error())
	}
	kept := assignees[:0]
	removed := false
	for _, id := range assignees {
		if id == userID {
			removed = true
			continue
		}
		kept = append(kept, id)
	}
	if !removed {
		return nil, response.NewNotFoundError("User is not assigned to this card")
	}
	if err := card.EncodeAssignees(kept); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to encode assignees", err.Error())
	}

	if err := s.cardRepo.Save(ctx, card); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update card", err.Error())
	}

	s.publishCardEvent(ctx, boardID, card.ID, notifier.EventCardUpdated, card.ID)
	return dto.ToCardResponse(card), nil
}

// AttachLabel adds a board label to the card
func (s *boardContentServiceImpl) AttachLabel(ctx context.Context, boardID, cardID uuid.UUID, req *dto.CardLabelRequest) (*dto.CardResponse, error) {
	if _, err := s.requireContentEditor(ctx, boardID); err != nil {
		return nil, err
	}

	card, err := s.findCard(ctx, boardID, cardID)
	if err != nil {
		return nil, err
	}

	label, err := s.labelRepo.FindByID(ctx, req.LabelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Label not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch label", err.Error())
	}
	if label.BoardID != boardID {
		return nil, response.NewNotFoundError("Label not found")
	}

	labels, err := card.DecodeLabels()
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to decode labels", err.Error())
	}
	for _, id := range labels {
		if id == req.LabelID {
			return nil, response.NewConflictError("Label is already attached to this card")
		}
	}
	if err := card.EncodeLabels(append(labels, req.LabelID)); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to encode labels", err.Error())
	}

	if err := s.cardRepo.Save(ctx, card); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update card", err.Error())
	}

	s.publishCardEvent(ctx, boardID, card.ID, notifier.EventCardUpdated, card.ID)
	return dto.ToCardResponse(card), nil
}

// DetachLabel removes a label from the card
func (s *boardContentServiceImpl) DetachLabel(ctx context.Context, boardID, cardID, labelID uuid.UUID) (*dto.CardResponse, error) {
	if _, err := s.requireContentEditor(ctx, boardID); err != nil {
		return nil, err
	}

	card, err := s.findCard(ctx, boardID, cardID)
	if err != nil {
		return nil, err
	}

	labels, err := card.DecodeLabels()
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to decode labels", err.Error())
	}
	kept := labels[:0]
	removed := false
	for _, id := range labels {
		if id == labelID {
			removed = true
			continue
		}
		kept = append(kept, id)
	}
	if !removed {
		return nil, response.NewNotFoundError("Label is not attached to this card")
	}
	if err := card.EncodeLabels(kept); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to encode labels", err.Error())
	}

	if err := s.cardRepo.Save(ctx, card); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update card", err.Error())
	}

	s.publishCardEvent(ctx, boardID, card.ID, notifier.EventCardUpdated, card.ID)
	return dto.ToCardResponse(card), nil
}

// AddChecklist appends a new checklist to the card
func (s *boardContentServiceImpl) AddChecklist(ctx context.Context, boardID, cardID uuid.UUID, req *dto.ChecklistRequest) (*dto.CardResponse, error) {
	return s.mutateChecklists(ctx, boardID, cardID, func(checklists []domain.Checklist) ([]domain.Checklist, error) {
		return append(checklists, domain.Checklist{
			ID:    uuid.New(),
			Title: req.Title,
			Items: []domain.ChecklistItem{},
		}), nil
	})
}

// RemoveChecklist deletes a checklist from the card
func (s *boardContentServiceImpl) RemoveChecklist(ctx context.Context, boardID, cardID, checklistID uuid.UUID) (*dto.CardResponse, error) {
	return s.mutateChecklists(ctx, boardID, cardID, func(checklists []domain.Checklist) ([]domain.Checklist, error) {
		kept := checklists[:0]
		removed := false
		for _, cl := range checklists {
			if cl.ID == checklistID {
				removed = true
				continue
			}
			kept = append(kept, cl)
		}
		if !removed {
			return nil, response.NewNotFoundError("Checklist not found")
		}
		return kept, nil
	})
}

// AddChecklistItem appends an item to a checklist
func (s *boardContentServiceImpl) AddChecklistItem(ctx context.Context, boardID, cardID, checklistID uuid.UUID, req *dto.ChecklistItemRequest) (*dto.CardResponse, error) {
	return s.mutateChecklists(ctx, boardID, cardID, func(checklists []domain.Checklist) ([]domain.Checklist, error) {
		for i := range checklists {
			if checklists[i].ID == checklistID {
				checklists[i].Items = append(checklists[i].Items, domain.ChecklistItem{
					ID:    uuid.New(),
					Title: req.Title,
				})
				return checklists, nil
			}
		}
		return nil, response.NewNotFoundError("Checklist not found")
	})
}

// ToggleChecklistItem sets an item's done flag
func (s *boardContentServiceImpl) ToggleChecklistItem(ctx context.Context, boardID, cardID, checklistID, itemID uuid.UUID, req *dto.ChecklistItemToggleRequest) (*dto.CardResponse, error) {
	return s.mutateChecklists(ctx, boardID, cardID, func(checklists []domain.Checklist) ([]domain.Checklist, error) {
		for i := range checklists {
			if checklists[i].ID != checklistID {
				continue
			}
			for j := range checklists[i].Items {
				if checklists[i].Items[j].ID == itemID {
					checklists[i].Items[j].Done = req.Done
					return checklists, nil
				}
			}
			return nil, response.NewNotFoundError("Checklist item not found")
		}
		return nil, response.NewNotFoundError("Checklist not found")
	})
}

// RemoveChecklistItem deletes an item from a checklist
func (s *boardContentServiceImpl) RemoveChecklistItem(ctx context.Context, boardID, cardID, checklistID, itemID uuid.UUID) (*dto.CardResponse, error) {
	return s.mutateChecklists(ctx, boardID, cardID, func(checklists []domain.Checklist) ([]domain.Checklist, error) {
		for i := range checklists {
			if checklists[i].ID != checklistID {
				continue
			}
			items := checklists[i].Items
			kept := items[:0]
			removed := false
			for _, item := range items {
				if item.ID == itemID {
					removed = true
					continue
				}
				kept = append(kept, item)
			}
			if !removed {
				return nil, response.NewNotFoundError("Checklist item not found")
			}
			checklists[i].Items = kept
			return checklists, nil
		}
		return nil, response.NewNotFoundError("Checklist not found")
	})
}

// mutateChecklists loads the card, applies fn to its checklists and saves.
// The card aggregate owns its checklists so the write is a single row update.
func (s *boardContentServiceImpl) mutateChecklists(ctx context.Context, boardID, cardID uuid.UUID, fn func([]domain.Checklist) ([]domain.Checklist, error)) (*dto.CardResponse, error) {
	if _, err := s.requireContentEditor(ctx, boardID); err != nil {
		return nil, err
	}

	card, err := s.findCard(ctx, boardID, cardID)
	if err != nil {
		return nil, err
	}

	checklists, err := card.DecodeChecklists()
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to decode checklists", err.Error())
	}
	if checklists == nil {
		checklists = []domain.Checklist{}
	}

	updated, err := fn(checklists)
	if err != nil {
		return nil, err
	}
	if err := card.EncodeChecklists(updated); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to encode checklists", err.Error())
	}

	if err := s.cardRepo.Save(ctx, card); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update card", err.Error())
	}

	s.publishCardEvent(ctx, boardID, card.ID, notifier.EventCardUpdated, card.ID)
	return dto.ToCardResponse(card), nil
}

// findCard loads a card and checks it belongs to the given board
func (s *boardContentServiceImpl) findCard(ctx context.Context, boardID, cardID uuid.UUID) (*domain.KanbanCard, error) {
	card, err := s.cardRepo.FindByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Card not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch card", err.Error())
	}
	if card.BoardID != boardID {
		return nil, response.NewNotFoundError("Card not found")
	}
	return card, nil
}

// applyCardRebalance writes rebalanced positions back to the list's cards
func (s *boardContentServiceImpl) applyCardRebalance(ctx context.Context, tx *gorm.DB, cards []*domain.KanbanCard, rebalanced []position.Item) error {
	byID := make(map[uuid.UUID]float64, len(rebalanced))
	for _, item := range rebalanced {
		byID[item.ID] = item.Pos
	}
	changed := make([]*domain.KanbanCard, 0, len(cards))
	for _, c := range cards {
		if pos, ok := byID[c.ID]; ok && pos != c.Position {
			c.Position = pos
			changed = append(changed, c)
		}
	}
	return s.cardRepo.WithTx(tx).SaveAll(ctx, changed)
}
