// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/homeplan/backend/internal/domain/entity"
)

// ItemRepository defines the interface for item persistence operations.
// Items are always loaded and stored together with their candidates so
// the selection invariant is persisted atomically.
type ItemRepository interface {
	// Create creates a new item in the store.
	Create(ctx context.Context, item *entity.Item) error

	// FindByID retrieves an item with its candidates by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Item, error)

	// FindByUserID retrieves all items for a given user, newest first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Item, error)

	// Update persists an item and its full candidate list in one transaction.
	Update(ctx context.Context, item *entity.Item) error

	// Delete permanently removes an item and its candidates.
	Delete(ctx context.Context, id uuid.UUID) error
}
