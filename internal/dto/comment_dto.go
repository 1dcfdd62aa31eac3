package dto

import (
	"time"

	"github.com/google/uuid"

	"kanban-workspace-api/internal/domain"
)

// CreateCommentRequest represents the request to comment on a card
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,max=4000"`
}

// UpdateCommentRequest represents the request to edit a comment
type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required,max=4000"`
}

// CommentResponse represents a card comment in API responses
type CommentResponse struct {
	ID        uuid.UUID `json:"id"`
	CardID    uuid.UUID `json:"card_id"`
	BoardID   uuid.UUID `json:"board_id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToCommentResponse converts a domain comment to its response shape
func ToCommentResponse(c *domain.CardComment) *CommentResponse {
	return &CommentResponse{
		ID:        c.ID,
		CardID:    c.CardID,
		BoardID:   c.BoardID,
		AuthorID:  c.AuthorID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
