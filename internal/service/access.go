package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kanban-workspace-api/internal/domain"
	"kanban-workspace-api/internal/repository"
	"kanban-workspace-api/internal/response"
)

// actorFromContext extracts the authenticated user id placed into the
// context by the auth middleware
func actorFromContext(ctx context.Context) (uuid.UUID, error) {
	actorID, ok := ctx.Value("user_id").(uuid.UUID)
	if !ok {
		return uuid.Nil, response.NewAppError(response.ErrCodeUnauthorized, "User ID not found in context", "")
	}
	return actorID, nil
}

// workspaceRoleOf returns the caller's workspace role. The second return
// distinguishes "not a member" from lookup failure.
func workspaceRoleOf(ctx context.Context, repo repository.WorkspaceMemberRepository, workspaceID, userID uuid.UUID) (domain.WorkspaceRole, bool, error) {
	member, err := repo.FindByWorkspaceAndUser(ctx, workspaceID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, response.NewAppError(response.ErrCodeInternal, "Failed to resolve workspace membership", err.Error())
	}
	return member.Role, true, nil
}

// boardRoleOf returns the caller's board role
func boardRoleOf(ctx context.Context, repo repository.BoardMemberRepository, boardID, userID uuid.UUID) (domain.BoardRole, bool, error) {
	member, err := repo.FindByBoardAndUser(ctx, boardID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, response.NewAppError(response.ErrCodeInternal, "Failed to resolve board membership", err.Error())
	}
	return member.Role, true, nil
}

// isDuplicateKeyError recognizes unique-constraint violations across the
// postgres and sqlite drivers
func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}
