package dto

import (
	"github.com/google/uuid"

	"kanban-workspace-api/internal/domain"
)

// CreateLabelRequest represents the request to create a board label
type CreateLabelRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Color string `json:"color" binding:"required,max=32"`
}

// UpdateLabelRequest represents the request to update a board label
type UpdateLabelRequest struct {
	Name  *string `json:"name,omitempty" binding:"omitempty,max=100"`
	Color *string `json:"color,omitempty" binding:"omitempty,max=32"`
}

// LabelResponse represents a label in API responses
type LabelResponse struct {
	ID      uuid.UUID `json:"id"`
	BoardID uuid.UUID `json:"board_id"`
	Name    string    `json:"name"`
	Color   string    `json:"color"`
}

// ToLabelResponse converts a domain label to its response shape
func ToLabelResponse(l *domain.Label) *LabelResponse {
	return &LabelResponse{
		ID:      l.ID,
		BoardID: l.BoardID,
		Name:    l.Name,
		Color:   l.Color,
	}
}
