package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kanban-workspace-api/internal/domain"
)

// BoardMemberRepository defines the interface for board membership data access
type BoardMemberRepository interface {
	WithTx(tx *gorm.DB) BoardMemberRepository
	Create(ctx context.Context, member *domain.BoardMember) error
	FindByBoardAndUser(ctx context.Context, boardID, userID uuid.UUID) (*domain.BoardMember, error)
	FindByBoard(ctx context.Context, boardID uuid.UUID) ([]*domain.BoardMember, error)
	GetRole(ctx context.Context, boardID, userID uuid.UUID) (domain.BoardRole, error)
	UpdateRole(ctx context.Context, boardID, userID uuid.UUID, role domain.BoardRole) error
	Delete(ctx context.Context, boardID, userID uuid.UUID) error
	DeleteByWorkspaceAndUser(ctx context.Context, workspaceID, userID uuid.UUID) error
	CountByBoard(ctx context.Context, boardID uuid.UUID) (int64, error)
	CountByRole(ctx context.Context, boardID uuid.UUID, role domain.BoardRole) (int64, error)
}

// boardMemberRepositoryImpl is the GORM implementation of BoardMemberRepository
type boardMemberRepositoryImpl struct {
	db *gorm.DB
}

// NewBoardMemberRepository creates a new instance of BoardMemberRepository
func NewBoardMemberRepository(db *gorm.DB) BoardMemberRepository {
	return &boardMemberRepositoryImpl{db: db}
}

// WithTx rebinds the repository to a transaction scope
func (r *boardMemberRepositoryImpl) WithTx(tx *gorm.DB) BoardMemberRepository {
	return &boardMemberRepositoryImpl{db: tx}
}

// Create creates a new board membership
func (r *boardMemberRepositoryImpl) Create(ctx context.Context, member *domain.BoardMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

// FindByBoardAndUser finds a membership by its unique (board, user) pair
func (r *boardMemberRepositoryImpl) FindByBoardAndUser(ctx context.Context, boardID, userID uuid.UUID) (*domain.BoardMember, error) {
	var member domain.BoardMember
	if err := r.db.WithContext(ctx).
		Where("board_id = ? AND user_id = ?", boardID, userID).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// FindByBoard finds all members of a board with user info preloaded
func (r *boardMemberRepositoryImpl) FindByBoard(ctx context.Context, boardID uuid.UUID) ([]*domain.BoardMember, error) {
	var members []*domain.BoardMember
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("board_id = ?", boardID).
		Order("joined_at ASC").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// GetRole returns the caller's current role on the board
func (r *boardMemberRepositoryImpl) GetRole(ctx context.Context, boardID, userID uuid.UUID) (domain.BoardRole, error) {
	member, err := r.FindByBoardAndUser(ctx, boardID, userID)
	if err != nil {
		return "", err
	}
	return member.Role, nil
}

// UpdateRole sets a member's role
func (r *boardMemberRepositoryImpl) UpdateRole(ctx context.Context, boardID, userID uuid.UUID, role domain.BoardRole) error {
	return r.db.WithContext(ctx).
		Model(&domain.BoardMember{}).
		Where("board_id = ? AND user_id = ?", boardID, userID).
		Update("role", role).Error
}

// Delete removes a membership record
func (r *boardMemberRepositoryImpl) Delete(ctx context.Context, boardID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("board_id = ? AND user_id = ?", boardID, userID).
		Delete(&domain.BoardMember{}).Error
}

// DeleteByWorkspaceAndUser removes the user's memberships on every board that
// belongs to the given workspace. Used when a workspace membership is removed.
func (r *boardMemberRepositoryImpl) DeleteByWorkspaceAndUser(ctx context.Context, workspaceID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND board_id IN (?)",
			userID,
			r.db.Model(&domain.Board{}).Select("id").Where("workspace_id = ?", workspaceID),
		).
		Delete(&domain.BoardMember{}).Error
}

// CountByBoard returns the live member count for a board
func (r *boardMemberRepositoryImpl) CountByBoard(ctx context.Context, boardID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.BoardMember{}).
		Where("board_id = ?", boardID).
		Count(&count).Error
	return count, err
}

// CountByRole returns the live count of members holding the given role
func (r *boardMemberRepositoryImpl) CountByRole(ctx context.Context, boardID uuid.UUID, role domain.BoardRole) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.BoardMember{}).
		Where("board_id = ? AND role = ?", boardID, role).
		Count(&count).Error
	return count, err
}
