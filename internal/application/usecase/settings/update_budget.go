// Package settings contains settings-related use cases.
package settings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/homeplan/backend/internal/application/adapter"
	"github.com/homeplan/backend/internal/domain/entity"
	domainerror "github.com/homeplan/backend/internal/domain/error"
)

// UpdateBudgetInput represents the input for updating the budget.
type UpdateBudgetInput struct {
	UserID uuid.UUID
	Budget decimal.Decimal
}

// UpdateBudgetOutput represents the output of updating the budget.
type UpdateBudgetOutput struct {
	Settings *entity.Settings
}

// UpdateBudgetUseCase handles budget updates.
type UpdateBudgetUseCase struct {
	settingsRepo adapter.SettingsRepository
	feed         adapter.ChangeFeed
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(settingsRepo adapter.SettingsRepository, feed adapter.ChangeFeed) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		settingsRepo: settingsRepo,
		feed:         feed,
	}
}

// Execute sets the user's budget. Zero is a valid value meaning unset.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	if input.Budget.IsNegative() {
		return nil, domainerror.NewSettingsError(
			domainerror.ErrCodeNegativeBudget,
			"budget must not be negative",
			domainerror.ErrNegativeBudget,
		)
	}

	settings, err := uc.settingsRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		if !errors.Is(err, domainerror.ErrSettingsNotFound) {
			return nil, fmt.Errorf("failed to load settings: %w", err)
		}
		settings = entity.NewSettings(input.UserID)
	}

	settings.Budget = input.Budget
	settings.UpdatedAt = time.Now().UTC()

	if err := uc.settingsRepo.Upsert(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	// Fire-and-forget: the write committed and the next notification
	// repairs any missed delivery.
	if uc.feed != nil {
		if err := uc.feed.NotifyChanged(ctx, input.UserID); err != nil {
			slog.Warn("Failed to publish change notification",
				"user_id", input.UserID,
				"error", err,
			)
		}
	}

	return &UpdateBudgetOutput{Settings: settings}, nil
}
