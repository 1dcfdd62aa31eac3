package dto

import (
	"time"

	"github.com/google/uuid"

	"kanban-workspace-api/internal/domain"
)

// CreateListRequest represents the request to create a kanban list
type CreateListRequest struct {
	Title    string  `json:"title" binding:"required,max=255"`
	Position float64 `json:"position"`
}

// UpdateListRequest represents the request to rename a kanban list
type UpdateListRequest struct {
	Title string `json:"title" binding:"required,max=255"`
}

// MoveRequest represents the request to move a list or card to a new position
type MoveRequest struct {
	Position float64    `json:"position" binding:"required"`
	ListID   *uuid.UUID `json:"list_id,omitempty"`
}

// ListResponse represents a kanban list in API responses
type ListResponse struct {
	ID        uuid.UUID `json:"id"`
	BoardID   uuid.UUID `json:"board_id"`
	Title     string    `json:"title"`
	Position  float64   `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToListResponse converts a domain list to its response shape
func ToListResponse(l *domain.KanbanList) *ListResponse {
	return &ListResponse{
		ID:        l.ID,
		BoardID:   l.BoardID,
		Title:     l.Title,
		Position:  l.Position,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

// CreateCardRequest represents the request to create a card in a list
type CreateCardRequest struct {
	ListID      uuid.UUID `json:"list_id" binding:"required"`
	Title       string    `json:"title" binding:"required,max=255"`
	Description string    `json:"description"`
	Position    float64   `json:"position"`
}

// UpdateCardRequest represents the request to update a card's fields
type UpdateCardRequest struct {
	Title       *string    `json:"title,omitempty" binding:"omitempty,max=255"`
	Description *string    `json:"description,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// CardResponse represents a card in API responses
type CardResponse struct {
	ID          uuid.UUID          `json:"id"`
	BoardID     uuid.UUID          `json:"board_id"`
	ListID      uuid.UUID          `json:"list_id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Position    float64            `json:"position"`
	StartDate   *time.Time         `json:"start_date,omitempty"`
	DueDate     *time.Time         `json:"due_date,omitempty"`
	Labels      []uuid.UUID        `json:"labels"`
	Assignees   []uuid.UUID        `json:"assignees"`
	Checklists  []domain.Checklist `json:"checklists"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// ToCardResponse converts a domain card to its response shape.
// JSON columns that fail to decode are rendered as empty collections.
func ToCardResponse(c *domain.KanbanCard) *CardResponse {
	resp := &CardResponse{
		ID:          c.ID,
		BoardID:     c.BoardID,
		ListID:      c.ListID,
		Title:       c.Title,
		Description: c.Description,
		Position:    c.Position,
		StartDate:   c.StartDate,
		DueDate:     c.DueDate,
		Labels:      []uuid.UUID{},
		Assignees:   []uuid.UUID{},
		Checklists:  []domain.Checklist{},
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	if labels, err := c.DecodeLabels(); err == nil && labels != nil {
		resp.Labels = labels
	}
	if assignees, err := c.DecodeAssignees(); err == nil && assignees != nil {
		resp.Assignees = assignees
	}
	if checklists, err := c.DecodeChecklists(); err == nil && checklists != nil {
		resp.Checklists = checklists
	}
	return resp
}

// AssigneeRequest represents the request to assign or unassign a card member
type AssigneeRequest struct {
	UserID uuid.UUID `json:"user_id" binding:"required"`
}

// CardLabelRequest represents the request to attach or detach a label on a card
type CardLabelRequest struct {
	LabelID uuid.UUID `json:"label_id" binding:"required"`
}

// ChecklistRequest represents the request to add a checklist to a card
type ChecklistRequest struct {
	Title string `json:"title" binding:"required,max=255"`
}

// ChecklistItemRequest represents the request to add an item to a checklist
type ChecklistItemRequest struct {
	Title string `json:"title" binding:"required,max=255"`
}

// ChecklistItemToggleRequest represents the request to mark an item done or not
type ChecklistItemToggleRequest struct {
	Done bool `json:"done"`
}
