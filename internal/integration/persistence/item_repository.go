// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/homeplan/backend/internal/application/adapter"
	"github.com/homeplan/backend/internal/domain/entity"
	domainerror "github.com/homeplan/backend/internal/domain/error"
	"github.com/homeplan/backend/internal/integration/persistence/model"
)

// itemRepository implements the adapter.ItemRepository interface.
type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates a new item repository instance.
func NewItemRepository(db *gorm.DB) adapter.ItemRepository {
	return &itemRepository{
		db: db,
	}
}

// Create creates a new item and its candidates in the database.
func (r *itemRepository) Create(ctx context.Context, item *entity.Item) error {
	itemModel := model.ItemFromEntity(item)
	result := r.db.WithContext(ctx).Create(itemModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an item by its ID, including its candidates in
// insertion order.
func (r *itemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	var itemModel model.ItemModel
	result := r.db.WithContext(ctx).
		Preload("Candidates", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("id = ?", id).
		First(&itemModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrItemNotFound
		}
		return nil, result.Error
	}
	return itemModel.ToEntity(), nil
}

// FindByUserID retrieves all items for a given user, newest first.
func (r *itemRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Item, error) {
	var itemModels []model.ItemModel
	result := r.db.WithContext(ctx).
		Preload("Candidates", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&itemModels)
	if result.Error != nil {
		return nil, result.Error
	}

	items := make([]*entity.Item, len(itemModels))
	for i, im := range itemModels {
		items[i] = im.ToEntity()
	}
	return items, nil
}

// Update updates an existing item and replaces its candidate list in a
// single transaction.
func (r *itemRepository) Update(ctx context.Context, item *entity.Item) error {
	itemModel := model.ItemFromEntity(item)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("item_id = ?", itemModel.ID).Delete(&model.CandidateModel{}).Error; err != nil {
			return err
		}
		candidates := itemModel.Candidates
		itemModel.Candidates = nil
		if err := tx.Save(itemModel).Error; err != nil {
			return err
		}
		if len(candidates) > 0 {
			if err := tx.Create(&candidates).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes an item and its candidates from the database.
func (r *itemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("item_id = ?", id).Delete(&model.CandidateModel{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.ItemModel{}, "id = ?", id).Error; err != nil {
			return err
		}
		return nil
	})
}
