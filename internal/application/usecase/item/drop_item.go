// Package item contains item-related use cases.
package item

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/homeplan/backend/internal/application/adapter"
	"github.com/homeplan/backend/internal/domain/entity"
)

// DropItemInput represents the input for dropping an item.
type DropItemInput struct {
	ItemID uuid.UUID
	UserID uuid.UUID
}

// DropItemOutput represents the output of dropping an item.
type DropItemOutput struct {
	Item *entity.Item
}

// DropItemUseCase handles excluding an item from planning without deleting it.
type DropItemUseCase struct {
	itemRepo adapter.ItemRepository
	feed     adapter.ChangeFeed
}

// NewDropItemUseCase creates a new DropItemUseCase instance.
func NewDropItemUseCase(itemRepo adapter.ItemRepository, feed adapter.ChangeFeed) *DropItemUseCase {
	return &DropItemUseCase{
		itemRepo: itemRepo,
		feed:     feed,
	}
}

// Execute drops the item. Dropped items keep their candidates but are
// excluded from cost metrics until restored.
func (uc *DropItemUseCase) Execute(ctx context.Context, input DropItemInput) (*DropItemOutput, error) {
	item, err := findOwnedItem(ctx, uc.itemRepo, input.ItemID, input.UserID)
	if err != nil {
		return nil, err
	}

	if err := item.Drop(); err != nil {
		return nil, wrapTransitionError(err)
	}

	if err := uc.itemRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to drop item: %w", err)
	}

	notifyChanged(ctx, uc.feed, input.UserID)

	return &DropItemOutput{Item: item}, nil
}
