// Package item contains item-related use cases.
package item

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/homeplan/backend/internal/application/adapter"
	"github.com/homeplan/backend/internal/domain/entity"
	domainerror "github.com/homeplan/backend/internal/domain/error"
)

// findOwnedItem loads an item and verifies it belongs to the requesting user.
func findOwnedItem(ctx context.Context, repo adapter.ItemRepository, itemID, userID uuid.UUID) (*entity.Item, error) {
	item, err := repo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, domainerror.ErrItemNotFound) {
			return nil, domainerror.NewItemError(
				domainerror.ErrCodeItemNotFound,
				"item not found",
				domainerror.ErrItemNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find item: %w", err)
	}

	if item.UserID != userID {
		return nil, domainerror.NewItemError(
			domainerror.ErrCodeUnauthorizedItemAccess,
			"not authorized to access this item",
			domainerror.ErrUnauthorizedItemAccess,
		)
	}

	return item, nil
}

// wrapTransitionError maps entity state machine errors onto coded item errors.
func wrapTransitionError(err error) error {
	switch {
	case errors.Is(err, domainerror.ErrItemPurchased):
		return domainerror.NewItemError(
			domainerror.ErrCodeItemPurchased,
			"purchased items cannot be modified",
			err,
		)
	case errors.Is(err, domainerror.ErrItemNotDecided):
		return domainerror.NewItemError(
			domainerror.ErrCodeItemNotDecided,
			"item has no selected candidate to confirm",
			err,
		)
	case errors.Is(err, domainerror.ErrItemNotDropped):
		return domainerror.NewItemError(
			domainerror.ErrCodeItemNotDropped,
			"only dropped items can be restored",
			err,
		)
	case errors.Is(err, domainerror.ErrCandidateNotFound):
		return domainerror.NewItemError(
			domainerror.ErrCodeCandidateNotFound,
			"candidate not found",
			err,
		)
	case errors.Is(err, domainerror.ErrNegativePrice):
		return domainerror.NewItemError(
			domainerror.ErrCodeNegativePrice,
			"price must not be negative",
			err,
		)
	default:
		return err
	}
}
