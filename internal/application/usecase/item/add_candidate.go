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
	domainerror "github.com/homeplan/backend/internal/domain/error"
)

// AddCandidateInput represents the input for adding a candidate to an item.
// Price arrives as the raw form value; anything that does not parse as a
// number defaults to zero (a zero price is a valid free item, not "no price").
type AddCandidateInput struct {
	ItemID uuid.UUID
	UserID uuid.UUID
	Name   string
	Price  string
	Link   string
}

// AddCandidateOutput represents the output of adding a candidate.
type AddCandidateOutput struct {
	Item      *entity.Item
	Candidate entity.Candidate
}

// AddCandidateUseCase handles adding a product candidate to an item.
type AddCandidateUseCase struct {
	itemRepo adapter.ItemRepository
	feed     adapter.ChangeFeed
}

// NewAddCandidateUseCase creates a new AddCandidateUseCase instance.
func NewAddCandidateUseCase(itemRepo adapter.ItemRepository, feed adapter.ChangeFeed) *AddCandidateUseCase {
	return &AddCandidateUseCase{
		itemRepo: itemRepo,
		feed:     feed,
	}
}

// Execute appends a candidate to the item. The item's first candidate is
// auto-selected and moves the item to decided.
func (uc *AddCandidateUseCase) Execute(ctx context.Context, input AddCandidateInput) (*AddCandidateOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewItemError(
			domainerror.ErrCodeEmptyCandidateName,
			"candidate name must not be empty",
			domainerror.ErrEmptyCandidateName,
		)
	}

	price := parsePrice(input.Price)
	if price.IsNegative() {
		return nil, domainerror.NewItemError(
			domainerror.ErrCodeNegativePrice,
			"candidate price must not be negative",
			domainerror.ErrNegativePrice,
		)
	}

	item, err := findOwnedItem(ctx, uc.itemRepo, input.ItemID, input.UserID)
	if err != nil {
		return nil, err
	}

	candidate := entity.NewCandidate(name, price, strings.TrimSpace(input.Link))
	if err := item.AddCandidate(candidate); err != nil {
		return nil, wrapTransitionError(err)
	}

	if err := uc.itemRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to save candidate: %w", err)
	}

	notifyChanged(ctx, uc.feed, input.UserID)

	// The stored copy may have been auto-selected.
	stored := item.Candidates[len(item.Candidates)-1]

	return &AddCandidateOutput{
		Item:      item,
		Candidate: stored,
	}, nil
}

// parsePrice parses a raw price value, defaulting to zero when unparsable.
func parsePrice(raw string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero
	}
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return price
}
