// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Settings represents the per-user planner settings singleton.
type Settings struct {
	UserID    uuid.UUID
	Budget    decimal.Decimal // Zero means unset
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSettings creates the default settings for a user with an unset budget.
func NewSettings(userID uuid.UUID) *Settings {
	now := time.Now().UTC()

	return &Settings{
		UserID:    userID,
		Budget:    decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
