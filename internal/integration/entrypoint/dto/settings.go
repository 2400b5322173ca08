package dto

import (
	"time"

	"github.com/homeplan/backend/internal/domain/entity"
)

// UpdateBudgetRequest represents the request body for updating the budget.
// The budget arrives as a string so fractional cents survive the wire.
type UpdateBudgetRequest struct {
	Budget string `json:"budget" binding:"required"`
}

// SettingsResponse represents the user settings in API responses.
type SettingsResponse struct {
	UserID    string    `json:"user_id"`
	Budget    string    `json:"budget"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToSettingsResponse converts a domain Settings entity to a SettingsResponse DTO.
func ToSettingsResponse(settings *entity.Settings) SettingsResponse {
	return SettingsResponse{
		UserID:    settings.UserID.String(),
		Budget:    settings.Budget.String(),
		CreatedAt: settings.CreatedAt,
		UpdatedAt: settings.UpdatedAt,
	}
}
