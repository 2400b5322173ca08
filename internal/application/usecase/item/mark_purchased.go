// Package item contains item-related use cases.
package item

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/homeplan/backend/internal/application/adapter"
	"github.com/homeplan/backend/internal/domain/entity"
)

// MarkPurchasedInput represents the input for confirming a purchase.
// FinalAmount is the raw form value for the amount actually paid; when
// absent, unparsable, or negative the selected candidate's price is recorded
// instead.
type MarkPurchasedInput struct {
	ItemID      uuid.UUID
	UserID      uuid.UUID
	FinalAmount *string
}

// MarkPurchasedOutput represents the output of confirming a purchase.
type MarkPurchasedOutput struct {
	Item *entity.Item
}

// MarkPurchasedUseCase handles confirming the purchase of a decided item.
type MarkPurchasedUseCase struct {
	itemRepo adapter.ItemRepository
	feed     adapter.ChangeFeed
}

// NewMarkPurchasedUseCase creates a new MarkPurchasedUseCase instance.
func NewMarkPurchasedUseCase(itemRepo adapter.ItemRepository, feed adapter.ChangeFeed) *MarkPurchasedUseCase {
	return &MarkPurchasedUseCase{
		itemRepo: itemRepo,
		feed:     feed,
	}
}

// Execute moves a decided item to purchased. Purchasing from researching is
// rejected: with no selected candidate there is no price to confirm.
func (uc *MarkPurchasedUseCase) Execute(ctx context.Context, input MarkPurchasedInput) (*MarkPurchasedOutput, error) {
	item, err := findOwnedItem(ctx, uc.itemRepo, input.ItemID, input.UserID)
	if err != nil {
		return nil, err
	}

	var finalAmount *decimal.Decimal
	if input.FinalAmount != nil {
		raw := strings.TrimSpace(*input.FinalAmount)
		if amount, parseErr := decimal.NewFromString(raw); parseErr == nil && !amount.IsNegative() {
			finalAmount = &amount
		}
	}

	if err := item.MarkPurchased(finalAmount); err != nil {
		return nil, wrapTransitionError(err)
	}

	if err := uc.itemRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to save purchase: %w", err)
	}

	notifyChanged(ctx, uc.feed, input.UserID)

	return &MarkPurchasedOutput{Item: item}, nil
}
