// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// ChangeFeed transports change notifications between writers and snapshot
// subscribers. Notifications carry no payload: on every tick the subscriber
// re-reads the full authoritative snapshot from the store, which gives the
// replace-in-full semantics the snapshot stream promises. Publishing is
// fire-and-forget from the mutation's point of view; a lost notification is
// repaired by the next one.
type ChangeFeed interface {
	// NotifyChanged publishes a change notification for the user's planner.
	NotifyChanged(ctx context.Context, userID uuid.UUID) error

	// Subscribe returns a channel that ticks on every change notification
	// for the user. The channel is closed when ctx is done.
	Subscribe(ctx context.Context, userID uuid.UUID) (<-chan struct{}, error)
}
