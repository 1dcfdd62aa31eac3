package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kanban-workspace-api/internal/domain"
)

// BoardInviteRepository defines the interface for board invite data access
type BoardInviteRepository interface {
	WithTx(tx *gorm.DB) BoardInviteRepository
	Create(ctx context.Context, invite *domain.BoardInvite) error
	Update(ctx context.Context, invite *domain.BoardInvite) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.BoardInvite, error)
	FindPendingByBoardAndInvitee(ctx context.Context, boardID, inviteeID uuid.UUID) (*domain.BoardInvite, error)
	FindPendingByBoard(ctx context.Context, boardID uuid.UUID) ([]*domain.BoardInvite, error)
	FindPendingByInvitee(ctx context.Context, inviteeID uuid.UUID) ([]*domain.BoardInvite, error)
	FindStalePending(ctx context.Context, now time.Time) ([]*domain.BoardInvite, error)
}

// boardInviteRepositoryImpl is the GORM implementation of BoardInviteRepository
type boardInviteRepositoryImpl struct {
	db *gorm.DB
}

// NewBoardInviteRepository creates a new instance of BoardInviteRepository
func NewBoardInviteRepository(db *gorm.DB) BoardInviteRepository {
	return &boardInviteRepositoryImpl{db: db}
}

// WithTx rebinds the repository to a transaction scope
func (r *boardInviteRepositoryImpl) WithTx(tx *gorm.DB) BoardInviteRepository {
	return &boardInviteRepositoryImpl{db: tx}
}

// Create creates a new invite
func (r *boardInviteRepositoryImpl) Create(ctx context.Context, invite *domain.BoardInvite) error {
	return r.db.WithContext(ctx).Create(invite).Error
}

// Update persists a status transition
func (r *boardInviteRepositoryImpl) Update(ctx context.Context, invite *domain.BoardInvite) error {
	return r.db.WithContext(ctx).Save(invite).Error
}

// FindByID finds an invite by its ID
func (r *boardInviteRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.BoardInvite, error) {
	var invite domain.BoardInvite
	if err := r.db.WithContext(ctx).First(&invite, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &invite, nil
}

// FindPendingByBoardAndInvitee finds the single pending invite for a
// (board, invitee) pair, if one exists
func (r *boardInviteRepositoryImpl) FindPendingByBoardAndInvitee(ctx context.Context, boardID, inviteeID uuid.UUID) (*domain.BoardInvite, error) {
	var invite domain.BoardInvite
	if err := r.db.WithContext(ctx).
		Where("board_id = ? AND invitee_id = ? AND status = ?", boardID, inviteeID, domain.InviteStatusPending).
		First(&invite).Error; err != nil {
		return nil, err
	}
	return &invite, nil
}

// FindPendingByBoard lists pending invites for a board
func (r *boardInviteRepositoryImpl) FindPendingByBoard(ctx context.Context, boardID uuid.UUID) ([]*domain.BoardInvite, error) {
	var invites []*domain.BoardInvite
	if err := r.db.WithContext(ctx).
		Preload("Invitee").
		Where("board_id = ? AND status = ?", boardID, domain.InviteStatusPending).
		Order("created_at DESC").
		Find(&invites).Error; err != nil {
		return nil, err
	}
	return invites, nil
}

// FindPendingByInvitee lists a user's pending invites across boards
func (r *boardInviteRepositoryImpl) FindPendingByInvitee(ctx context.Context, inviteeID uuid.UUID) ([]*domain.BoardInvite, error) {
	var invites []*domain.BoardInvite
	if err := r.db.WithContext(ctx).
		Where("invitee_id = ? AND status = ?", inviteeID, domain.InviteStatusPending).
		Order("created_at DESC").
		Find(&invites).Error; err != nil {
		return nil, err
	}
	return invites, nil
}

// FindStalePending lists pending invites whose deadline has passed
func (r *boardInviteRepositoryImpl) FindStalePending(ctx context.Context, now time.Time) ([]*domain.BoardInvite, error) {
	var invites []*domain.BoardInvite
	if err := r.db.WithContext(ctx).
		Where("status = ? AND expires_at < ?", domain.InviteStatusPending, now).
		Find(&invites).Error; err != nil {
		return nil, err
	}
	return invites, nil
}
