package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kanban-workspace-api/internal/domain"
)

// WorkspaceRepository defines the interface for workspace data access
type WorkspaceRepository interface {
	WithTx(tx *gorm.DB) WorkspaceRepository
	Create(ctx context.Context, workspace *domain.Workspace) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Workspace, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Workspace, error)
	Update(ctx context.Context, workspace *domain.Workspace) error
	DeleteCascade(ctx context.Context, id uuid.UUID) error
}

// workspaceRepositoryImpl is the GORM implementation of WorkspaceRepository
type workspaceRepositoryImpl struct {
	db *gorm.DB
}

// NewWorkspaceRepository creates a new instance of WorkspaceRepository
func NewWorkspaceRepository(db *gorm.DB) WorkspaceRepository {
	return &workspaceRepositoryImpl{db: db}
}

// WithTx rebinds the repository to a transaction scope
func (r *workspaceRepositoryImpl) WithTx(tx *gorm.DB) WorkspaceRepository {
	return &workspaceRepositoryImpl{db: tx}
}

// Create creates a new workspace
func (r *workspaceRepositoryImpl) Create(ctx context.Context, workspace *domain.Workspace) error {
	return r.db.WithContext(ctx).Create(workspace).Error
}

// FindByID finds a workspace by its ID
func (r *workspaceRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
	var workspace domain.Workspace
	if err := r.db.WithContext(ctx).First(&workspace, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &workspace, nil
}

// FindByUser finds all workspaces the user is a member of
func (r *workspaceRepositoryImpl) FindByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Workspace, error) {
	var workspaces []*domain.Workspace
	if err := r.db.WithContext(ctx).
		Joins("JOIN workspace_members ON workspace_members.workspace_id = workspaces.id").
		Where("workspace_members.user_id = ?", userID).
		Order("workspaces.created_at ASC").
		Find(&workspaces).Error; err != nil {
		return nil, err
	}
	return workspaces, nil
}

// Update updates a workspace
func (r *workspaceRepositoryImpl) Update(ctx context.Context, workspace *domain.Workspace) error {
	return r.db.WithContext(ctx).Save(workspace).Error
}

// DeleteCascade deletes a workspace together with everything it owns:
// members, invites, and every board (including that board's members, invites,
// kanban content, comments and labels). Runs in one transaction so a partial
// cascade never commits.
func (r *workspaceRepositoryImpl) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var boardIDs []uuid.UUID
		if err := tx.Model(&domain.Board{}).Where("workspace_id = ?", id).Pluck("id", &boardIDs).Error; err != nil {
			return err
		}

		if len(boardIDs) > 0 {
			for _, model := range []interface{}{
				&domain.CardComment{},
				&domain.KanbanCard{},
				&domain.KanbanList{},
				&domain.Label{},
				&domain.BoardInvite{},
				&domain.BoardMember{},
			} {
				if err := tx.Where("board_id IN ?", boardIDs).Delete(model).Error; err != nil {
					return err
				}
			}
			if err := tx.Where("id IN ?", boardIDs).Delete(&domain.Board{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("workspace_id = ?", id).Delete(&domain.WorkspaceInvite{}).Error; err != nil {
			return err
		}
		if err := tx.Where("workspace_id = ?", id).Delete(&domain.WorkspaceMember{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Workspace{}, "id = ?", id).Error
	})
}
