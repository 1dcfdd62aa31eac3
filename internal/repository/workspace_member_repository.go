package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kanban-workspace-api/internal/domain"
)

// WorkspaceMemberRepository defines the interface for workspace membership data
// access. Invariant-guarded mutations are expected to run against a WithTx
// rebinding so count reads and writes share one transaction.
type WorkspaceMemberRepository interface {
	WithTx(tx *gorm.DB) WorkspaceMemberRepository
	Create(ctx context.Context, member *domain.WorkspaceMember) error
	FindByWorkspaceAndUser(ctx context.Context, workspaceID, userID uuid.UUID) (*domain.WorkspaceMember, error)
	FindByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]*domain.WorkspaceMember, error)
	GetRole(ctx context.Context, workspaceID, userID uuid.UUID) (domain.WorkspaceRole, error)
	UpdateRole(ctx context.Context, workspaceID, userID uuid.UUID, role domain.WorkspaceRole) error
	Delete(ctx context.Context, workspaceID, userID uuid.UUID) error
	CountByWorkspace(ctx context.Context, workspaceID uuid.UUID) (int64, error)
	CountByRole(ctx context.Context, workspaceID uuid.UUID, role domain.WorkspaceRole) (int64, error)
}

// workspaceMemberRepositoryImpl is the GORM implementation of WorkspaceMemberRepository
type workspaceMemberRepositoryImpl struct {
	db *gorm.DB
}

// NewWorkspaceMemberRepository creates a new instance of WorkspaceMemberRepository
func NewWorkspaceMemberRepository(db *gorm.DB) WorkspaceMemberRepository {
	return &workspaceMemberRepositoryImpl{db: db}
}

// WithTx rebinds the repository to a transaction scope
func (r *workspaceMemberRepositoryImpl) WithTx(tx *gorm.DB) WorkspaceMemberRepository {
	return &workspaceMemberRepositoryImpl{db: tx}
}

// Create creates a new workspace membership
func (r *workspaceMemberRepositoryImpl) Create(ctx context.Context, member *domain.WorkspaceMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

// FindByWorkspaceAndUser finds a membership by its unique (workspace, user) pair
func (r *workspaceMemberRepositoryImpl) FindByWorkspaceAndUser(ctx context.Context, workspaceID, userID uuid.UUID) (*domain.WorkspaceMember, error) {
	var member domain.WorkspaceMember
	if err := r.db.WithContext(ctx).
		Where("workspace_id = ? AND user_id = ?", workspaceID, userID).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// FindByWorkspace finds all members of a workspace with user info preloaded
func (r *workspaceMemberRepositoryImpl) FindByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]*domain.WorkspaceMember, error) {
	var members []*domain.WorkspaceMember
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("workspace_id = ?", workspaceID).
		Order("joined_at ASC").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// GetRole returns the caller's current role in the workspace
func (r *workspaceMemberRepositoryImpl) GetRole(ctx context.Context, workspaceID, userID uuid.UUID) (domain.WorkspaceRole, error) {
	member, err := r.FindByWorkspaceAndUser(ctx, workspaceID, userID)
	if err != nil {
		return "", err
	}
	return member.Role, nil
}

// UpdateRole sets a member's role
func (r *workspaceMemberRepositoryImpl) UpdateRole(ctx context.Context, workspaceID, userID uuid.UUID, role domain.WorkspaceRole) error {
	return r.db.WithContext(ctx).
		Model(&domain.WorkspaceMember{}).
		Where("workspace_id = ? AND user_id = ?", workspaceID, userID).
		Update("role", role).Error
}

// Delete removes a membership record
func (r *workspaceMemberRepositoryImpl) Delete(ctx context.Context, workspaceID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("workspace_id = ? AND user_id = ?", workspaceID, userID).
		Delete(&domain.WorkspaceMember{}).Error
}

// CountByWorkspace returns the live member count for a workspace
func (r *workspaceMemberRepositoryImpl) CountByWorkspace(ctx context.Context, workspaceID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.WorkspaceMember{}).
		Where("workspace_id = ?", workspaceID).
		Count(&count).Error
	return count, err
}

// CountByRole returns the live count of members holding the given role
func (r *workspaceMemberRepositoryImpl) CountByRole(ctx context.Context, workspaceID uuid.UUID, role domain.WorkspaceRole) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.WorkspaceMember{}).
		Where("workspace_id = ? AND role = ?", workspaceID, role).
		Count(&count).Error
	return count, err
}
