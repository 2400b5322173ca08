// Package settings contains settings-related use cases.
package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/homeplan/backend/internal/application/adapter"
	"github.com/homeplan/backend/internal/domain/entity"
	domainerror "github.com/homeplan/backend/internal/domain/error"
)

// GetSettingsInput represents the input for retrieving settings.
type GetSettingsInput struct {
	UserID uuid.UUID
}

// GetSettingsOutput represents the output of retrieving settings.
type GetSettingsOutput struct {
	Settings *entity.Settings
}

// GetSettingsUseCase handles settings retrieval, creating the default
// document on first access the way the planner client initializes its
// settings on first login.
type GetSettingsUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewGetSettingsUseCase creates a new GetSettingsUseCase instance.
func NewGetSettingsUseCase(settingsRepo adapter.SettingsRepository) *GetSettingsUseCase {
	return &GetSettingsUseCase{
		settingsRepo: settingsRepo,
	}
}

// Execute retrieves the user's settings, initializing defaults when absent.
func (uc *GetSettingsUseCase) Execute(ctx context.Context, input GetSettingsInput) (*GetSettingsOutput, error) {
	settings, err := uc.settingsRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		if !errors.Is(err, domainerror.ErrSettingsNotFound) {
			return nil, fmt.Errorf("failed to load settings: %w", err)
		}

		settings = entity.NewSettings(input.UserID)
		if err := uc.settingsRepo.Upsert(ctx, settings); err != nil {
			return nil, fmt.Errorf("failed to initialize settings: %w", err)
		}
	}

	return &GetSettingsOutput{Settings: settings}, nil
}
