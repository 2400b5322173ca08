// Package item contains item-related use cases.
package item

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/homeplan/backend/internal/application/adapter"
)

// DeleteItemInput represents the input for item deletion.
type DeleteItemInput struct {
	ItemID uuid.UUID
	UserID uuid.UUID
}

// DeleteItemOutput represents the output of item deletion.
type DeleteItemOutput struct{}

// DeleteItemUseCase handles item deletion logic. Deletion is permanent:
// there is no soft delete or undo, and confirmation happens at the
// presentation boundary before this use case is ever called.
type DeleteItemUseCase struct {
	itemRepo adapter.ItemRepository
	feed     adapter.ChangeFeed
}

// NewDeleteItemUseCase creates a new DeleteItemUseCase instance.
func NewDeleteItemUseCase(itemRepo adapter.ItemRepository, feed adapter.ChangeFeed) *DeleteItemUseCase {
	return &DeleteItemUseCase{
		itemRepo: itemRepo,
		feed:     feed,
	}
}

// Execute performs the item deletion.
func (uc *DeleteItemUseCase) Execute(ctx context.Context, input DeleteItemInput) (*DeleteItemOutput, error) {
	item, err := findOwnedItem(ctx, uc.itemRepo, input.ItemID, input.UserID)
	if err != nil {
		return nil, err
	}

	if err := uc.itemRepo.Delete(ctx, item.ID); err != nil {
		return nil, fmt.Errorf("failed to delete item: %w", err)
	}

	notifyChanged(ctx, uc.feed, input.UserID)

	return &DeleteItemOutput{}, nil
}
