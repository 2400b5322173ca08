// Package item contains item-related use cases.
package item

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/homeplan/backend/internal/application/adapter"
	"github.com/homeplan/backend/internal/domain/entity"
	domainerror "github.com/homeplan/backend/internal/domain/error"
)

// CreateItemInput represents the input for item creation.
type CreateItemInput struct {
	UserID   uuid.UUID
	Name     string
	Category entity.Category
	Priority *entity.Priority // Optional, defaults to desired
	Notes    string
	Link     string
}

// CreateItemOutput represents the output of item creation.
type CreateItemOutput struct {
	Item *entity.Item
}

// CreateItemUseCase handles item creation logic.
type CreateItemUseCase struct {
	itemRepo adapter.ItemRepository
	feed     adapter.ChangeFeed
}

// NewCreateItemUseCase creates a new CreateItemUseCase instance.
func NewCreateItemUseCase(itemRepo adapter.ItemRepository, feed adapter.ChangeFeed) *CreateItemUseCase {
	return &CreateItemUseCase{
		itemRepo: itemRepo,
		feed:     feed,
	}
}

// Execute performs the item creation. New items start in researching status
// with no candidates.
func (uc *CreateItemUseCase) Execute(ctx context.Context, input CreateItemInput) (*CreateItemOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewItemError(
			domainerror.ErrCodeEmptyItemName,
			"item name must not be empty",
			domainerror.ErrEmptyItemName,
		)
	}

	// Apply defaults
	priority := entity.PriorityDesired
	if input.Priority != nil {
		if !entity.IsValidPriority(*input.Priority) {
			return nil, domainerror.NewItemError(
				domainerror.ErrCodeInvalidPriority,
				"priority must be 'essential', 'desired', or 'defer'",
				domainerror.ErrInvalidPriority,
			)
		}
		priority = *input.Priority
	}

	// Stale or unknown categories are kept, bucketed under "other".
	category := entity.NormalizeCategory(input.Category)

	item := entity.NewItem(input.UserID, name, category, priority, input.Notes, input.Link)

	if err := uc.itemRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	notifyChanged(ctx, uc.feed, input.UserID)

	return &CreateItemOutput{Item: item}, nil
}
