package dto

import (
	"time"

	"github.com/google/uuid"

	"kanban-workspace-api/internal/domain"
)

// CreateWorkspaceInviteRequest represents the request to invite a user to a workspace
type CreateWorkspaceInviteRequest struct {
	InviteeEmail string               `json:"invitee_email" binding:"required,email"`
	Role         domain.WorkspaceRole `json:"role" binding:"required,oneof=ADMIN MEMBER GUEST"`
}

// CreateBoardInviteRequest represents the request to invite a user to a board
type CreateBoardInviteRequest struct {
	InviteeEmail string           `json:"invitee_email" binding:"required,email"`
	Role         domain.BoardRole `json:"role" binding:"required,oneof=ADMIN MEMBER OBSERVER"`
}

// WorkspaceInviteResponse represents a workspace invite in API responses
type WorkspaceInviteResponse struct {
	ID           uuid.UUID            `json:"id"`
	WorkspaceID  uuid.UUID            `json:"workspace_id"`
	InviterID    uuid.UUID            `json:"inviter_id"`
	InviteeID    uuid.UUID            `json:"invitee_id"`
	InviteeEmail string               `json:"invitee_email,omitempty"`
	Role         domain.WorkspaceRole `json:"role"`
	Status       domain.InviteStatus  `json:"status"`
	ExpiresAt    time.Time            `json:"expires_at"`
	CreatedAt    time.Time            `json:"created_at"`
}

// ToWorkspaceInviteResponse converts a domain invite to its response shape
func ToWorkspaceInviteResponse(inv *domain.WorkspaceInvite) *WorkspaceInviteResponse {
	resp := &WorkspaceInviteResponse{
		ID:          inv.ID,
		WorkspaceID: inv.WorkspaceID,
		InviterID:   inv.InviterID,
		InviteeID:   inv.InviteeID,
		Role:        inv.Role,
		Status:      inv.Status,
		ExpiresAt:   inv.ExpiresAt,
		CreatedAt:   inv.CreatedAt,
	}
	if inv.Invitee != nil {
		resp.InviteeEmail = inv.Invitee.Email
	}
	return resp
}

// MyInvitesResponse groups the caller's pending invites across both scopes
type MyInvitesResponse struct {
	Workspace []*WorkspaceInviteResponse `json:"workspace"`
	Board     []*BoardInviteResponse     `json:"board"`
}

// BoardInviteResponse represents a board invite in API responses
type BoardInviteResponse struct {
	ID           uuid.UUID           `json:"id"`
	BoardID      uuid.UUID           `json:"board_id"`
	InviterID    uuid.UUID           `json:"inviter_id"`
	InviteeID    uuid.UUID           `json:"invitee_id"`
	InviteeEmail string              `json:"invitee_email,omitempty"`
	Role         domain.BoardRole    `json:"role"`
	Status       domain.InviteStatus `json:"status"`
	ExpiresAt    time.Time           `json:"expires_at"`
	CreatedAt    time.Time           `json:"created_at"`
}

// ToBoardInviteResponse converts a domain invite to its response shape
func ToBoardInviteResponse(inv *domain.BoardInvite) *BoardInviteResponse {
	resp := &BoardInviteResponse{
		ID:        inv.ID,
		BoardID:   inv.BoardID,
		InviterID: inv.InviterID,
		InviteeID: inv.InviteeID,
		Role:      inv.Role,
		Status:    inv.Status,
		ExpiresAt: inv.ExpiresAt,
		CreatedAt: inv.CreatedAt,
	}
	if inv.Invitee != nil {
		resp.InviteeEmail = inv.Invitee.Email
	}
	return resp
}
