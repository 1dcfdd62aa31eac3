// Package policy holds the stateless authorization predicates evaluated by the
// service layer before every privileged state transition. Callers must pass the
// caller's current role, fetched fresh for the request; roles are never cached.
package policy

import (
	"kanban-workspace-api/internal/domain"
)

// CanDeleteWorkspace reports whether the caller may delete the workspace
func CanDeleteWorkspace(role domain.WorkspaceRole) bool {
	return role == domain.WorkspaceRoleOwner
}

// CanManageWorkspace reports whether the caller may invite members, edit
// memberships or change workspace settings
func CanManageWorkspace(role domain.WorkspaceRole) bool {
	return role == domain.WorkspaceRoleOwner || role == domain.WorkspaceRoleAdmin
}

// CanCreateBoard reports whether the caller may create a board with the given
// visibility. Owners and admins always may; members only when the workspace's
// creation policy for that visibility is ANY_MEMBER; guests never may.
func CanCreateBoard(role domain.WorkspaceRole, visibility domain.BoardVisibility, ws *domain.Workspace) bool {
	switch role {
	case domain.WorkspaceRoleOwner, domain.WorkspaceRoleAdmin:
		return true
	case domain.WorkspaceRoleMember:
		if visibility == domain.BoardVisibilityPrivate {
			return ws.PrivateBoardCreation == domain.PolicyAnyMember
		}
		return ws.SharedBoardCreation == domain.PolicyAnyMember
	default:
		return false
	}
}

// CanManageBoard reports whether the caller may manage board members, settings
// or delete the board
func CanManageBoard(role domain.BoardRole) bool {
	return role == domain.BoardRoleAdmin
}

// CanEditBoardContent reports whether the caller may mutate lists, cards,
// comments and checklists. Observers are read-only.
func CanEditBoardContent(role domain.BoardRole) bool {
	return role == domain.BoardRoleAdmin || role == domain.BoardRoleMember
}

// CanViewBoard reports whether the caller may read a board: any board member,
// any workspace owner/admin, or any workspace member when the board is
// workspace-visible. Callers with no membership at all are denied.
func CanViewBoard(hasBoardRole bool, wsRole domain.WorkspaceRole, hasWSRole bool, visibility domain.BoardVisibility) bool {
	if hasBoardRole {
		return true
	}
	if !hasWSRole {
		return false
	}
	if wsRole == domain.WorkspaceRoleOwner || wsRole == domain.WorkspaceRoleAdmin {
		return true
	}
	return visibility == domain.BoardVisibilityWorkspace
}
