// Package item contains item-related use cases.
package item

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/homeplan/backend/internal/application/adapter"
	"github.com/homeplan/backend/internal/domain/entity"
)

// SelectCandidateInput represents the input for selecting a candidate.
type SelectCandidateInput struct {
	ItemID      uuid.UUID
	UserID      uuid.UUID
	CandidateID uuid.UUID
}

// SelectCandidateOutput represents the output of selecting a candidate.
type SelectCandidateOutput struct {
	Item *entity.Item
}

// SelectCandidateUseCase handles marking one candidate as the chosen option.
type SelectCandidateUseCase struct {
	itemRepo adapter.ItemRepository
	feed     adapter.ChangeFeed
}

// NewSelectCandidateUseCase creates a new SelectCandidateUseCase instance.
func NewSelectCandidateUseCase(itemRepo adapter.ItemRepository, feed adapter.ChangeFeed) *SelectCandidateUseCase {
	return &SelectCandidateUseCase{
		itemRepo: itemRepo,
		feed:     feed,
	}
}

// Execute selects exactly the given candidate, deselecting all others, and
// moves the item to decided. Selecting the same candidate twice yields the
// same resulting state.
func (uc *SelectCandidateUseCase) Execute(ctx context.Context, input SelectCandidateInput) (*SelectCandidateOutput, error) {
	item, err := findOwnedItem(ctx, uc.itemRepo, input.ItemID, input.UserID)
	if err != nil {
		return nil, err
	}

	if err := item.SelectCandidate(input.CandidateID); err != nil {
		return nil, wrapTransitionError(err)
	}

	if err := uc.itemRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to save selection: %w", err)
	}

	notifyChanged(ctx, uc.feed, input.UserID)

	return &SelectCandidateOutput{Item: item}, nil
}
