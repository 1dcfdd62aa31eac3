package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kanban-workspace-api/internal/domain"
)

// BoardRepository defines the interface for board data access
type BoardRepository interface {
	WithTx(tx *gorm.DB) BoardRepository
	Create(ctx context.Context, board *domain.Board) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	FindByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]*domain.Board, error)
	Update(ctx context.Context, board *domain.Board) error
	DeleteCascade(ctx context.Context, id uuid.UUID) error
}

// boardRepositoryImpl is the GORM implementation of BoardRepository
type boardRepositoryImpl struct {
	db *gorm.DB
}

// NewBoardRepository creates a new instance of BoardRepository
func NewBoardRepository(db *gorm.DB) BoardRepository {
	return &boardRepositoryImpl{db: db}
}

// WithTx rebinds the repository to a transaction scope
func (r *boardRepositoryImpl) WithTx(tx *gorm.DB) BoardRepository {
	return &boardRepositoryImpl{db: tx}
}

// Create creates a new board
func (r *boardRepositoryImpl) Create(ctx context.Context, board *domain.Board) error {
	return r.db.WithContext(ctx).Create(board).Error
}

// FindByID finds a board by its ID
func (r *boardRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	var board domain.Board
	if err := r.db.WithContext(ctx).First(&board, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

// FindByWorkspace finds all boards that belong to a workspace
func (r *boardRepositoryImpl) FindByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]*domain.Board, error) {
	var boards []*domain.Board
	if err := r.db.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Order("created_at ASC").
		Find(&boards).Error; err != nil {
		return nil, err
	}
	return boards, nil
}

// Update updates a board
func (r *boardRepositoryImpl) Update(ctx context.Context, board *domain.Board) error {
	return r.db.WithContext(ctx).Save(board).Error
}

// DeleteCascade deletes a board together with its members, invites, kanban
// content, comments and labels in one transaction
func (r *boardRepositoryImpl) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&domain.CardComment{},
			&domain.KanbanCard{},
			&domain.KanbanList{},
			&domain.Label{},
			&domain.BoardInvite{},
			&domain.BoardMember{},
		} {
			if err := tx.Where("board_id = ?", id).Delete(model).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&domain.Board{}, "id = ?", id).Error
	})
}
