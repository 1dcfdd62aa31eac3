package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kanban-workspace-api/internal/domain"
)

// CommentRepository defines the interface for card comment data access
type CommentRepository interface {
	WithTx(tx *gorm.DB) CommentRepository
	Create(ctx context.Context, comment *domain.CardComment) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.CardComment, error)
	FindByCard(ctx context.Context, cardID uuid.UUID) ([]*domain.CardComment, error)
	Update(ctx context.Context, comment *domain.CardComment) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByCard(ctx context.Context, cardID uuid.UUID) error
}

// commentRepositoryImpl is the GORM implementation of CommentRepository
type commentRepositoryImpl struct {
	db *gorm.DB
}

// NewCommentRepository creates a new instance of CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepositoryImpl{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *commentRepositoryImpl) WithTx(tx *gorm.DB) CommentRepository {
	return &commentRepositoryImpl{db: tx}
}

// Create creates a new comment
func (r *commentRepositoryImpl) Create(ctx context.Context, comment *domain.CardComment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// FindByID finds a comment by its ID
func (r *commentRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.CardComment, error) {
	var comment domain.CardComment
	if err := r.db.WithContext(ctx).First(&comment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// FindByCard finds all comments of a card, oldest first
func (r *commentRepositoryImpl) FindByCard(ctx context.Context, cardID uuid.UUID) ([]*domain.CardComment, error) {
	var comments []*domain.CardComment
	if err := r.db.WithContext(ctx).
		Where("card_id = ?", cardID).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// Update updates a comment
func (r *commentRepositoryImpl) Update(ctx context.Context, comment *domain.CardComment) error {
	return r.db.WithContext(ctx).Save(comment).Error
}

// Delete removes a comment
func (r *commentRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.CardComment{}, "id = ?", id).Error
}

// DeleteByCard removes every comment on a card, used when the card is deleted
func (r *commentRepositoryImpl) DeleteByCard(ctx context.Context, cardID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("card_id = ?", cardID).Delete(&domain.CardComment{}).Error
}
