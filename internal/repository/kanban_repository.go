package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kanban-workspace-api/internal/domain"
)

// KanbanListRepository defines the interface for list data access. SaveAll is
// the bulk position write used after a rebalance; callers serialize rebalances
// per board by running them inside one transaction.
type KanbanListRepository interface {
	WithTx(tx *gorm.DB) KanbanListRepository
	Create(ctx context.Context, list *domain.KanbanList) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.KanbanList, error)
	FindByBoard(ctx context.Context, boardID uuid.UUID) ([]*domain.KanbanList, error)
	Save(ctx context.Context, list *domain.KanbanList) error
	SaveAll(ctx context.Context, lists []*domain.KanbanList) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// kanbanListRepositoryImpl is the GORM implementation of KanbanListRepository
type kanbanListRepositoryImpl struct {
	db *gorm.DB
}

// NewKanbanListRepository creates a new instance of KanbanListRepository
func NewKanbanListRepository(db *gorm.DB) KanbanListRepository {
	return &kanbanListRepositoryImpl{db: db}
}

// WithTx rebinds the repository to a transaction scope
func (r *kanbanListRepositoryImpl) WithTx(tx *gorm.DB) KanbanListRepository {
	return &kanbanListRepositoryImpl{db: tx}
}

// Create creates a new list
func (r *kanbanListRepositoryImpl) Create(ctx context.Context, list *domain.KanbanList) error {
	return r.db.WithContext(ctx).Create(list).Error
}

// FindByID finds a list by its ID
func (r *kanbanListRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.KanbanList, error) {
	var list domain.KanbanList
	if err := r.db.WithContext(ctx).First(&list, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

// FindByBoard finds all lists of a board ordered by position
func (r *kanbanListRepositoryImpl) FindByBoard(ctx context.Context, boardID uuid.UUID) ([]*domain.KanbanList, error) {
	var lists []*domain.KanbanList
	if err := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Order("position ASC").
		Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}

// Save persists a single list
func (r *kanbanListRepositoryImpl) Save(ctx context.Context, list *domain.KanbanList) error {
	return r.db.WithContext(ctx).Save(list).Error
}

// SaveAll persists every list in one transaction (bulk position write)
func (r *kanbanListRepositoryImpl) SaveAll(ctx context.Context, lists []*domain.KanbanList) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, list := range lists {
			if err := tx.Save(list).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes a list
func (r *kanbanListRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.KanbanList{}, "id = ?", id).Error
}

// KanbanCardRepository defines the interface for card data access
type KanbanCardRepository interface {
	WithTx(tx *gorm.DB) KanbanCardRepository
	Create(ctx context.Context, card *domain.KanbanCard) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.KanbanCard, error)
	FindByList(ctx context.Context, listID uuid.UUID) ([]*domain.KanbanCard, error)
	FindByBoard(ctx context.Context, boardID uuid.UUID) ([]*domain.KanbanCard, error)
	Save(ctx context.Context, card *domain.KanbanCard) error
	SaveAll(ctx context.Context, cards []*domain.KanbanCard) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByList(ctx context.Context, listID uuid.UUID) error
}

// kanbanCardRepositoryImpl is the GORM implementation of KanbanCardRepository
type kanbanCardRepositoryImpl struct {
	db *gorm.DB
}

// NewKanbanCardRepository creates a new instance of KanbanCardRepository
func NewKanbanCardRepository(db *gorm.DB) KanbanCardRepository {
	return &kanbanCardRepositoryImpl{db: db}
}

// WithTx rebinds the repository to a transaction scope
func (r *kanbanCardRepositoryImpl) WithTx(tx *gorm.DB) KanbanCardRepository {
	return &kanbanCardRepositoryImpl{db: tx}
}

// Create creates a new card
func (r *kanbanCardRepositoryImpl) Create(ctx context.Context, card *domain.KanbanCard) error {
	return r.db.WithContext(ctx).Create(card).Error
}

// FindByID finds a card by its ID
func (r *kanbanCardRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.KanbanCard, error) {
	var card domain.KanbanCard
	if err := r.db.WithContext(ctx).First(&card, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

// FindByList finds all cards of a list ordered by position
func (r *kanbanCardRepositoryImpl) FindByList(ctx context.Context, listID uuid.UUID) ([]*domain.KanbanCard, error) {
	var cards []*domain.KanbanCard
	if err := r.db.WithContext(ctx).
		Where("list_id = ?", listID).
		Order("position ASC").
		Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

// FindByBoard finds all cards of a board ordered by list and position
func (r *kanbanCardRepositoryImpl) FindByBoard(ctx context.Context, boardID uuid.UUID) ([]*domain.KanbanCard, error) {
	var cards []*domain.KanbanCard
	if err := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Order("list_id ASC, position ASC").
		Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

// Save persists a single card
func (r *kanbanCardRepositoryImpl) Save(ctx context.Context, card *domain.KanbanCard) error {
	return r.db.WithContext(ctx).Save(card).Error
}

// SaveAll persists every card in one transaction (bulk position write)
func (r *kanbanCardRepositoryImpl) SaveAll(ctx context.Context, cards []*domain.KanbanCard) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, card := range cards {
			if err := tx.Save(card).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes a card
func (r *kanbanCardRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.KanbanCard{}, "id = ?", id).Error
}

// DeleteByList removes every card in a list, used when the list is deleted
func (r *kanbanCardRepositoryImpl) DeleteByList(ctx context.Context, listID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("list_id = ?", listID).Delete(&domain.KanbanCard{}).Error
}
