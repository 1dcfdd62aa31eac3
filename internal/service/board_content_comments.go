package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kanban-workspace-api/internal/domain"
	"kanban-workspace-api/internal/dto"
	"kanban-workspace-api/internal/notifier"
	"kanban-workspace-api/internal/policy"
	"kanban-workspace-api/internal/response"
)

// AddComment creates a comment on a card, authored by the caller
func (s *boardContentServiceImpl) AddComment(ctx context.Context, boardID, cardID uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	actorID, err := s.requireContentEditor(ctx, boardID)
	if err != nil {
		return nil, err
	}

	card, err := s.findCard(ctx, boardID, cardID)
	if err != nil {
		return nil, err
	}

	comment := &domain.CardComment{
		CardID:   card.ID,
		BoardID:  card.BoardID,
		AuthorID: actorID,
		Content:  req.Content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create comment", err.Error())
	}

	s.publishCardEvent(ctx, boardID, card.ID, notifier.EventCommentAdded, map[string]interface{}{
		"card_id":    card.ID,
		"comment_id": comment.ID,
	})
	return dto.ToCommentResponse(comment), nil
}

// ListComments returns a card's comments, oldest first
func (s *boardContentServiceImpl) ListComments(ctx context.Context, boardID, cardID uuid.UUID) ([]*dto.CommentResponse, error) {
	if _, err := s.requireViewer(ctx, boardID); err != nil {
		return nil, err
	}

	card, err := s.findCard(ctx, boardID, cardID)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.FindByCard(ctx, card.ID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch comments", err.Error())
	}

	responses := make([]*dto.CommentResponse, len(comments))
	for i, c := range comments {
		responses[i] = dto.ToCommentResponse(c)
	}
	return responses, nil
}

// UpdateComment edits a comment's content. Only the author may edit.
func (s *boardContentServiceImpl) UpdateComment(ctx context.Context, boardID, commentID uuid.UUID, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error) {
	actorID, err := s.requireContentEditor(ctx, boardID)
	if err != nil {
		return nil, err
	}

	comment, err := s.findComment(ctx, boardID, commentID)
	if err != nil {
		return nil, err
	}
	if comment.AuthorID != actorID {
		return nil, response.NewForbiddenError("Only the author can edit a comment")
	}

	comment.Content = req.Content
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update comment", err.Error())
	}

	s.publishCardEvent(ctx, boardID, comment.CardID, notifier.EventCommentUpdated, map[string]interface{}{
		"card_id":    comment.CardID,
		"comment_id": comment.ID,
	})
	return dto.ToCommentResponse(comment), nil
}

// DeleteComment removes a comment. The author or a board admin may delete.
func (s *boardContentServiceImpl) DeleteComment(ctx context.Context, boardID, commentID uuid.UUID) error {
	actorID, err := s.requireViewer(ctx, boardID)
	if err != nil {
		return err
	}

	comment, err := s.findComment(ctx, boardID, commentID)
	if err != nil {
		return err
	}

	if comment.AuthorID != actorID {
		role, ok, err := boardRoleOf(ctx, s.memberRepo, boardID, actorID)
		if err != nil {
			return err
		}
		if !ok || !policy.CanManageBoard(role) {
			return response.NewForbiddenError("Only the author or a board admin can delete a comment")
		}
	}

	if err := s.commentRepo.Delete(ctx, comment.ID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete comment", err.Error())
	}

	s.publishCardEvent(ctx, boardID, comment.CardID, notifier.EventCommentDeleted, map[string]interface{}{
		"card_id":    comment.CardID,
		"comment_id": comment.ID,
	})
	return nil
}

// findComment loads a comment and checks it belongs to a card of the board
func (s *boardContentServiceImpl) findComment(ctx context.Context, boardID, commentID uuid.UUID) (*domain.CardComment, error) {
	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Comment not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch comment", err.Error())
	}
	if _, err := s.findCard(ctx, boardID, comment.CardID); err != nil {
		return nil, response.NewNotFoundError("Comment not found")
	}
	return comment, nil
}
