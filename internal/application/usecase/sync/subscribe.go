// Package sync contains snapshot subscription use cases.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/homeplan/backend/internal/application/adapter"
	"github.com/homeplan/backend/internal/domain/entity"
	domainerror "github.com/homeplan/backend/internal/domain/error"
)

// Snapshot is a full-replacement view of one user's planner: the complete
// item collection plus the budget. Every delivery replaces the previous one
// wholesale; consumers must not treat it as a diff.
type Snapshot struct {
	Items  []*entity.Item
	Budget decimal.Decimal
}

// SubscribeInput represents the input for opening a snapshot subscription.
type SubscribeInput struct {
	UserID uuid.UUID
}

// SubscribeOutput represents an open snapshot subscription. Snapshots is
// closed when the subscription context is done.
type SubscribeOutput struct {
	Snapshots <-chan Snapshot
}

// SubscribeUseCase turns change notifications into full snapshots: an
// initial snapshot on subscribe, then one re-read of the authoritative
// state per notification. Delivery between the item and settings streams is
// deliberately unordered upstream; reading both inside one tick makes the
// combined snapshot consistent enough for last-write-wins semantics.
type SubscribeUseCase struct {
	itemRepo     adapter.ItemRepository
	settingsRepo adapter.SettingsRepository
	feed         adapter.ChangeFeed
}

// NewSubscribeUseCase creates a new SubscribeUseCase instance.
func NewSubscribeUseCase(
	itemRepo adapter.ItemRepository,
	settingsRepo adapter.SettingsRepository,
	feed adapter.ChangeFeed,
) *SubscribeUseCase {
	return &SubscribeUseCase{
		itemRepo:     itemRepo,
		settingsRepo: settingsRepo,
		feed:         feed,
	}
}

// Execute opens the subscription. The returned channel delivers the current
// snapshot immediately, then a fresh one after every change notification,
// and closes when ctx is done.
func (uc *SubscribeUseCase) Execute(ctx context.Context, input SubscribeInput) (*SubscribeOutput, error) {
	ticks, err := uc.feed.Subscribe(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewSyncError(
			domainerror.ErrCodeFeedClosed,
			"failed to subscribe to change feed",
			err,
		)
	}

	snapshots := make(chan Snapshot, 1)

	go func() {
		defer close(snapshots)

		uc.deliver(ctx, input.UserID, snapshots)

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-ticks:
				if !ok {
					return
				}
				uc.deliver(ctx, input.UserID, snapshots)
			}
		}
	}()

	return &SubscribeOutput{Snapshots: snapshots}, nil
}

// deliver reads the authoritative state and pushes one snapshot. A failed
// read is logged and skipped; the subscriber keeps its previous snapshot
// until the next notification.
func (uc *SubscribeUseCase) deliver(ctx context.Context, userID uuid.UUID, out chan<- Snapshot) {
	snapshot, err := uc.load(ctx, userID)
	if err != nil {
		slog.Warn("Failed to build snapshot", "user_id", userID, "error", err)
		return
	}

	select {
	case out <- *snapshot:
	case <-ctx.Done():
	}
}

// load reads the full item collection and budget in one pass.
func (uc *SubscribeUseCase) load(ctx context.Context, userID uuid.UUID) (*Snapshot, error) {
	items, err := uc.itemRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}

	budget := decimal.Zero
	settings, err := uc.settingsRepo.FindByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, domainerror.ErrSettingsNotFound) {
			return nil, fmt.Errorf("failed to load settings: %w", err)
		}
	} else {
		budget = settings.Budget
	}

	return &Snapshot{
		Items:  items,
		Budget: budget,
	}, nil
}
