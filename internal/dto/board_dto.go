package dto

import (
	"time"

	"github.com/google/uuid"

	"kanban-workspace-api/internal/domain"
)

// CreateBoardRequest represents the request to create a board
type CreateBoardRequest struct {
	WorkspaceID uuid.UUID              `json:"workspace_id" binding:"required"`
	Title       string                 `json:"title" binding:"required,max=255"`
	Description string                 `json:"description"`
	Visibility  domain.BoardVisibility `json:"visibility" binding:"required,oneof=PRIVATE WORKSPACE"`
}

// UpdateBoardRequest represents the request to update a board
type UpdateBoardRequest struct {
	Title       *string                 `json:"title,omitempty" binding:"omitempty,max=255"`
	Description *string                 `json:"description,omitempty"`
	Visibility  *domain.BoardVisibility `json:"visibility,omitempty" binding:"omitempty,oneof=PRIVATE WORKSPACE"`
}

// BoardResponse represents a board in API responses
type BoardResponse struct {
	ID          uuid.UUID              `json:"id"`
	WorkspaceID uuid.UUID              `json:"workspace_id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Visibility  domain.BoardVisibility `json:"visibility"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

// ToBoardResponse converts a domain board to its response shape
func ToBoardResponse(b *domain.Board) *BoardResponse {
	return &BoardResponse{
		ID:          b.ID,
		WorkspaceID: b.WorkspaceID,
		Title:       b.Title,
		Description: b.Description,
		Visibility:  b.Visibility,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// BoardMemberResponse represents a board member in API responses
type BoardMemberResponse struct {
	ID        uuid.UUID        `json:"id"`
	BoardID   uuid.UUID        `json:"board_id"`
	UserID    uuid.UUID        `json:"user_id"`
	Role      domain.BoardRole `json:"role"`
	JoinedAt  time.Time        `json:"joined_at"`
	UserEmail string           `json:"user_email,omitempty"`
	UserName  string           `json:"user_name,omitempty"`
}

// ToBoardMemberResponse converts a domain membership to its response shape
func ToBoardMemberResponse(m *domain.BoardMember) *BoardMemberResponse {
	resp := &BoardMemberResponse{
		ID:       m.ID,
		BoardID:  m.BoardID,
		UserID:   m.UserID,
		Role:     m.Role,
		JoinedAt: m.JoinedAt,
	}
	if m.User != nil {
		resp.UserEmail = m.User.Email
		resp.UserName = m.User.Name
	}
	return resp
}

// ChangeBoardRoleRequest represents the request to change a board member's role
type ChangeBoardRoleRequest struct {
	Role domain.BoardRole `json:"role" binding:"required,oneof=ADMIN MEMBER OBSERVER"`
}

// AddBoardMemberRequest represents the request to add a workspace member
// directly to a board without going through an invite
type AddBoardMemberRequest struct {
	UserID uuid.UUID        `json:"user_id" binding:"required"`
	Role   domain.BoardRole `json:"role" binding:"omitempty,oneof=ADMIN MEMBER OBSERVER"`
}
