// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/homeplan/backend/internal/application/adapter"
	domainerror "github.com/homeplan/backend/internal/domain/error"
)

// GetSummaryInput represents the input for getting the planner summary.
type GetSummaryInput struct {
	UserID uuid.UUID
}

// GetSummaryOutput represents the output of getting the planner summary.
type GetSummaryOutput struct {
	Summary *Summary
	Budget  decimal.Decimal
}

// GetSummaryUseCase computes the dashboard metrics from the current item
// snapshot and budget.
type GetSummaryUseCase struct {
	itemRepo     adapter.ItemRepository
	settingsRepo adapter.SettingsRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(itemRepo adapter.ItemRepository, settingsRepo adapter.SettingsRepository) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		itemRepo:     itemRepo,
		settingsRepo: settingsRepo,
	}
}

// Execute loads the user's items and budget and reduces them to a summary.
// A user without settings has an unset (zero) budget.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	items, err := uc.itemRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}

	budget := decimal.Zero
	settings, err := uc.settingsRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		if !errors.Is(err, domainerror.ErrSettingsNotFound) {
			return nil, fmt.Errorf("failed to load settings: %w", err)
		}
	} else {
		budget = settings.Budget
	}

	return &GetSummaryOutput{
		Summary: ComputeSummary(items, budget),
		Budget:  budget,
	}, nil
}
