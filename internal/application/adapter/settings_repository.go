// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/homeplan/backend/internal/domain/entity"
)

// SettingsRepository defines the interface for the per-user settings singleton.
type SettingsRepository interface {
	// FindByUserID retrieves the settings for a user.
	// Returns domain error ErrSettingsNotFound when none exist yet.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Settings, error)

	// Upsert creates or replaces the settings for a user.
	Upsert(ctx context.Context, settings *entity.Settings) error
}
