// Package item contains item-related use cases.
package item

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/homeplan/backend/internal/application/adapter"
	"github.com/homeplan/backend/internal/domain/entity"
)

// RestoreItemInput represents the input for restoring a dropped item.
type RestoreItemInput struct {
	ItemID uuid.UUID
	UserID uuid.UUID
}

// RestoreItemOutput represents the output of restoring a dropped item.
type RestoreItemOutput struct {
	Item *entity.Item
}

// RestoreItemUseCase handles bringing a dropped item back into planning.
type RestoreItemUseCase struct {
	itemRepo adapter.ItemRepository
	feed     adapter.ChangeFeed
}

// NewRestoreItemUseCase creates a new RestoreItemUseCase instance.
func NewRestoreItemUseCase(itemRepo adapter.ItemRepository, feed adapter.ChangeFeed) *RestoreItemUseCase {
	return &RestoreItemUseCase{
		itemRepo: itemRepo,
		feed:     feed,
	}
}

// Execute restores the item: back to decided when a selected candidate
// survives, otherwise to researching.
func (uc *RestoreItemUseCase) Execute(ctx context.Context, input RestoreItemInput) (*RestoreItemOutput, error) {
	item, err := findOwnedItem(ctx, uc.itemRepo, input.ItemID, input.UserID)
	if err != nil {
		return nil, err
	}

	if err := item.Restore(); err != nil {
		return nil, wrapTransitionError(err)
	}

	if err := uc.itemRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to restore item: %w", err)
	}

	notifyChanged(ctx, uc.feed, input.UserID)

	return &RestoreItemOutput{Item: item}, nil
}
