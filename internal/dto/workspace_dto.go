package dto

import (
	"time"

	"github.com/google/uuid"

	"kanban-workspace-api/internal/domain"
)

// CreateWorkspaceRequest represents the request to create a workspace
type CreateWorkspaceRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description"`
}

// UpdateWorkspaceRequest represents the request to update a workspace
type UpdateWorkspaceRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,max=255"`
	Description *string `json:"description,omitempty"`
}

// UpdateWorkspaceSettingsRequest represents the request to change board-creation policies
type UpdateWorkspaceSettingsRequest struct {
	PrivateBoardCreation *domain.BoardCreationPolicy `json:"private_board_creation,omitempty" binding:"omitempty,oneof=ADMINS_ONLY ANY_MEMBER"`
	SharedBoardCreation  *domain.BoardCreationPolicy `json:"shared_board_creation,omitempty" binding:"omitempty,oneof=ADMINS_ONLY ANY_MEMBER"`
}

// WorkspaceResponse represents a workspace in API responses
type WorkspaceResponse struct {
	ID                   uuid.UUID                  `json:"id"`
	Name                 string                     `json:"name"`
	Description          string                     `json:"description"`
	PrivateBoardCreation domain.BoardCreationPolicy `json:"private_board_creation"`
	SharedBoardCreation  domain.BoardCreationPolicy `json:"shared_board_creation"`
	CreatedAt            time.Time                  `json:"created_at"`
	UpdatedAt            time.Time                  `json:"updated_at"`
}

// ToWorkspaceResponse converts a domain workspace to its response shape
func ToWorkspaceResponse(w *domain.Workspace) *WorkspaceResponse {
	return &WorkspaceResponse{
		ID:                   w.ID,
		Name:                 w.Name,
		Description:          w.Description,
		PrivateBoardCreation: w.PrivateBoardCreation,
		SharedBoardCreation:  w.SharedBoardCreation,
		CreatedAt:            w.CreatedAt,
		UpdatedAt:            w.UpdatedAt,
	}
}

// WorkspaceMemberResponse represents a workspace member in API responses
type WorkspaceMemberResponse struct {
	ID          uuid.UUID            `json:"id"`
	WorkspaceID uuid.UUID            `json:"workspace_id"`
	UserID      uuid.UUID            `json:"user_id"`
	Role        domain.WorkspaceRole `json:"role"`
	JoinedAt    time.Time            `json:"joined_at"`
	UserEmail   string               `json:"user_email,omitempty"`
	UserName    string               `json:"user_name,omitempty"`
}

// ToWorkspaceMemberResponse converts a domain membership to its response shape
func ToWorkspaceMemberResponse(m *domain.WorkspaceMember) *WorkspaceMemberResponse {
	resp := &WorkspaceMemberResponse{
		ID:          m.ID,
		WorkspaceID: m.WorkspaceID,
		UserID:      m.UserID,
		Role:        m.Role,
		JoinedAt:    m.JoinedAt,
	}
	if m.User != nil {
		resp.UserEmail = m.User.Email
		resp.UserName = m.User.Name
	}
	return resp
}

// ChangeWorkspaceRoleRequest represents the request to change a member's role
type ChangeWorkspaceRoleRequest struct {
	Role domain.WorkspaceRole `json:"role" binding:"required,oneof=ADMIN MEMBER GUEST OWNER"`
}

// TransferOwnershipRequest represents the request to hand the workspace to another member
type TransferOwnershipRequest struct {
	NewOwnerID uuid.UUID `json:"new_owner_id" binding:"required"`
}
