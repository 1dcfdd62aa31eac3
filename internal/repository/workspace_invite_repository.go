package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kanban-workspace-api/internal/domain"
)

// WorkspaceInviteRepository defines the interface for workspace invite data access
type WorkspaceInviteRepository interface {
	WithTx(tx *gorm.DB) WorkspaceInviteRepository
	Create(ctx context.Context, invite *domain.WorkspaceInvite) error
	Update(ctx context.Context, invite *domain.WorkspaceInvite) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.WorkspaceInvite, error)
	FindPendingByWorkspaceAndInvitee(ctx context.Context, workspaceID, inviteeID uuid.UUID) (*domain.WorkspaceInvite, error)
	FindPendingByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]*domain.WorkspaceInvite, error)
	FindPendingByInvitee(ctx context.Context, inviteeID uuid.UUID) ([]*domain.WorkspaceInvite, error)
	FindStalePending(ctx context.Context, now time.Time) ([]*domain.WorkspaceInvite, error)
}

// workspaceInviteRepositoryImpl is the GORM implementation of WorkspaceInviteRepository
type workspaceInviteRepositoryImpl struct {
	db *gorm.DB
}

// NewWorkspaceInviteRepository creates a new instance of WorkspaceInviteRepository
func NewWorkspaceInviteRepository(db *gorm.DB) WorkspaceInviteRepository {
	return &workspaceInviteRepositoryImpl{db: db}
}

// WithTx rebinds the repository to a transaction scope
func (r *workspaceInviteRepositoryImpl) WithTx(tx *gorm.DB) WorkspaceInviteRepository {
	return &workspaceInviteRepositoryImpl{db: tx}
}

// Create creates a new invite
func (r *workspaceInviteRepositoryImpl) Create(ctx context.Context, invite *domain.WorkspaceInvite) error {
	return r.db.WithContext(ctx).Create(invite).Error
}

// Update persists a status transition
func (r *workspaceInviteRepositoryImpl) Update(ctx context.Context, invite *domain.WorkspaceInvite) error {
	return r.db.WithContext(ctx).Save(invite).Error
}

// FindByID finds an invite by its ID
func (r *workspaceInviteRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.WorkspaceInvite, error) {
	var invite domain.WorkspaceInvite
	if err := r.db.WithContext(ctx).First(&invite, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &invite, nil
}

// FindPendingByWorkspaceAndInvitee finds the single pending invite for a
// (workspace, invitee) pair, if one exists
func (r *workspaceInviteRepositoryImpl) FindPendingByWorkspaceAndInvitee(ctx context.Context, workspaceID, inviteeID uuid.UUID) (*domain.WorkspaceInvite, error) {
	var invite domain.WorkspaceInvite
	if err := r.db.WithContext(ctx).
		Where("workspace_id = ? AND invitee_id = ? AND status = ?", workspaceID, inviteeID, domain.InviteStatusPending).
		First(&invite).Error; err != nil {
		return nil, err
	}
	return &invite, nil
}

// FindPendingByWorkspace lists pending invites for a workspace
func (r *workspaceInviteRepositoryImpl) FindPendingByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]*domain.WorkspaceInvite, error) {
	var invites []*domain.WorkspaceInvite
	if err := r.db.WithContext(ctx).
		Preload("Invitee").
		Where("workspace_id = ? AND status = ?", workspaceID, domain.InviteStatusPending).
		Order("created_at DESC").
		Find(&invites).Error; err != nil {
		return nil, err
	}
	return invites, nil
}

// FindPendingByInvitee lists a user's pending invites across workspaces
func (r *workspaceInviteRepositoryImpl) FindPendingByInvitee(ctx context.Context, inviteeID uuid.UUID) ([]*domain.WorkspaceInvite, error) {
	var invites []*domain.WorkspaceInvite
	if err := r.db.WithContext(ctx).
		Where("invitee_id = ? AND status = ?", inviteeID, domain.InviteStatusPending).
		Order("created_at DESC").
		Find(&invites).Error; err != nil {
		return nil, err
	}
	return invites, nil
}

// FindStalePending lists pending invites whose deadline has passed, for the
// background expiry sweep
func (r *workspaceInviteRepositoryImpl) FindStalePending(ctx context.Context, now time.Time) ([]*domain.WorkspaceInvite, error) {
	var invites []*domain.WorkspaceInvite
	if err := r.db.WithContext(ctx).
		Where("status = ? AND expires_at < ?", domain.InviteStatusPending, now).
		Find(&invites).Error; err != nil {
		return nil, err
	}
	return invites, nil
}
