// Package item contains item-related use cases.
package item

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/homeplan/backend/internal/application/adapter"
	"github.com/homeplan/backend/internal/domain/entity"
)

// RemoveCandidateInput represents the input for removing a candidate.
type RemoveCandidateInput struct {
	ItemID      uuid.UUID
	UserID      uuid.UUID
	CandidateID uuid.UUID
}

// RemoveCandidateOutput represents the output of removing a candidate.
type RemoveCandidateOutput struct {
	Item *entity.Item
}

// RemoveCandidateUseCase handles removing a product candidate from an item.
type RemoveCandidateUseCase struct {
	itemRepo adapter.ItemRepository
	feed     adapter.ChangeFeed
}

// NewRemoveCandidateUseCase creates a new RemoveCandidateUseCase instance.
func NewRemoveCandidateUseCase(itemRepo adapter.ItemRepository, feed adapter.ChangeFeed) *RemoveCandidateUseCase {
	return &RemoveCandidateUseCase{
		itemRepo: itemRepo,
		feed:     feed,
	}
}

// Execute removes the candidate. Removing the selected candidate resets the
// selected price and reverts the item to researching.
func (uc *RemoveCandidateUseCase) Execute(ctx context.Context, input RemoveCandidateInput) (*RemoveCandidateOutput, error) {
	item, err := findOwnedItem(ctx, uc.itemRepo, input.ItemID, input.UserID)
	if err != nil {
		return nil, err
	}

	if err := item.RemoveCandidate(input.CandidateID); err != nil {
		return nil, wrapTransitionError(err)
	}

	if err := uc.itemRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to remove candidate: %w", err)
	}

	notifyChanged(ctx, uc.feed, input.UserID)

	return &RemoveCandidateOutput{Item: item}, nil
}
