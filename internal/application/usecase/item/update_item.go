// Package item contains item-related use cases.
package item

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/homeplan/backend/internal/application/adapter"
	"github.com/homeplan/backend/internal/domain/entity"
	domainerror "github.com/homeplan/backend/internal/domain/error"
)

// UpdateItemInput represents the input for item update. Status transitions
// are not part of this operation; they happen through the lifecycle use
// cases (candidate selection, purchase, drop, restore).
type UpdateItemInput struct {
	ItemID   uuid.UUID
	UserID   uuid.UUID
	Name     *string          // Optional
	Category *entity.Category // Optional
	Priority *entity.Priority // Optional
	Notes    *string          // Optional
	Link     *string          // Optional
}

// UpdateItemOutput represents the output of item update.
type UpdateItemOutput struct {
	Item *entity.Item
}

// UpdateItemUseCase handles item update logic.
type UpdateItemUseCase struct {
	itemRepo adapter.ItemRepository
	feed     adapter.ChangeFeed
}

// NewUpdateItemUseCase creates a new UpdateItemUseCase instance.
func NewUpdateItemUseCase(itemRepo adapter.ItemRepository, feed adapter.ChangeFeed) *UpdateItemUseCase {
	return &UpdateItemUseCase{
		itemRepo: itemRepo,
		feed:     feed,
	}
}

// Execute performs the item update.
func (uc *UpdateItemUseCase) Execute(ctx context.Context, input UpdateItemInput) (*UpdateItemOutput, error) {
	item, err := findOwnedItem(ctx, uc.itemRepo, input.ItemID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewItemError(
				domainerror.ErrCodeEmptyItemName,
				"item name must not be empty",
				domainerror.ErrEmptyItemName,
			)
		}
		item.Name = name
	}

	if input.Category != nil {
		item.Category = entity.NormalizeCategory(*input.Category)
	}

	if input.Priority != nil {
		if !entity.IsValidPriority(*input.Priority) {
			return nil, domainerror.NewItemError(
				domainerror.ErrCodeInvalidPriority,
				"priority must be 'essential', 'desired', or 'defer'",
				domainerror.ErrInvalidPriority,
			)
		}
		item.Priority = *input.Priority
	}

	if input.Notes != nil {
		item.Notes = *input.Notes
	}

	if input.Link != nil {
		item.Link = *input.Link
	}

	item.UpdatedAt = time.Now().UTC()

	if err := uc.itemRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	notifyChanged(ctx, uc.feed, input.UserID)

	return &UpdateItemOutput{Item: item}, nil
}
