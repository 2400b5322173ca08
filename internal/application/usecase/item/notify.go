// Package item contains item-related use cases.
package item

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/homeplan/backend/internal/application/adapter"
)

// notifyChanged publishes a change notification for the user's planner.
// Publishing is fire-and-forget: the mutation already committed and the
// next notification repairs any missed delivery, so failures are only logged.
func notifyChanged(ctx context.Context, feed adapter.ChangeFeed, userID uuid.UUID) {
	if feed == nil {
		return
	}
	if err := feed.NotifyChanged(ctx, userID); err != nil {
		slog.Warn("Failed to publish change notification",
			"user_id", userID,
			"error", err,
		)
	}
}
