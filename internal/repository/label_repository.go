package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kanban-workspace-api/internal/domain"
)

// LabelRepository defines the interface for board label data access
type LabelRepository interface {
	Create(ctx context.Context, label *domain.Label) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Label, error)
	FindByBoard(ctx context.Context, boardID uuid.UUID) ([]*domain.Label, error)
	Update(ctx context.Context, label *domain.Label) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// labelRepositoryImpl is the GORM implementation of LabelRepository
type labelRepositoryImpl struct {
	db *gorm.DB
}

// NewLabelRepository creates a new instance of LabelRepository
func NewLabelRepository(db *gorm.DB) LabelRepository {
	return &labelRepositoryImpl{db: db}
}

// Create creates a new label
func (r *labelRepositoryImpl) Create(ctx context.Context, label *domain.Label) error {
	return r.db.WithContext(ctx).Create(label).Error
}

// FindByID finds a label by its ID
func (r *labelRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Label, error) {
	var label domain.Label
	if err := r.db.WithContext(ctx).First(&label, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &label, nil
}

// FindByBoard finds all labels of a board
func (r *labelRepositoryImpl) FindByBoard(ctx context.Context, boardID uuid.UUID) ([]*domain.Label, error) {
	var labels []*domain.Label
	if err := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Order("created_at ASC").
		Find(&labels).Error; err != nil {
		return nil, err
	}
	return labels, nil
}

// Update updates a label
func (r *labelRepositoryImpl) Update(ctx context.Context, label *domain.Label) error {
	return r.db.WithContext(ctx).Save(label).Error
}

// Delete removes a label
func (r *labelRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Label{}, "id = ?", id).Error
}
