// Package syncfeed implements the change feed on top of Redis pub/sub.
package syncfeed

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/homeplan/backend/internal/application/adapter"
	domainerror "github.com/homeplan/backend/internal/domain/error"
)

const channelPrefix = "planner:changes:"

// redisChangeFeed implements adapter.ChangeFeed using Redis pub/sub, so
// notifications reach subscribers on every running instance.
type redisChangeFeed struct {
	client *redis.Client
}

// NewRedisChangeFeed creates a change feed backed by the given Redis client.
func NewRedisChangeFeed(client *redis.Client) adapter.ChangeFeed {
	return &redisChangeFeed{
		client: client,
	}
}

func channelFor(userID uuid.UUID) string {
	return channelPrefix + userID.String()
}

// NotifyChanged publishes a change notification for the user's planner.
func (f *redisChangeFeed) NotifyChanged(ctx context.Context, userID uuid.UUID) error {
	if err := f.client.Publish(ctx, channelFor(userID), "1").Err(); err != nil {
		return domainerror.NewSyncError(domainerror.ErrCodePublishFailed, domainerror.ErrPublishFailed.Error(), err)
	}
	return nil
}

// Subscribe returns a channel that ticks on every change notification for
// the user. The channel is closed when ctx is done.
func (f *redisChangeFeed) Subscribe(ctx context.Context, userID uuid.UUID) (<-chan struct{}, error) {
	sub := f.client.Subscribe(ctx, channelFor(userID))

	// Wait for the subscription to be confirmed so callers cannot miss
	// notifications published right after Subscribe returns.
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, domainerror.NewSyncError(domainerror.ErrCodeFeedClosed, domainerror.ErrFeedClosed.Error(), err)
	}

	ticks := make(chan struct{}, 1)
	go func() {
		defer close(ticks)
		defer func() {
			if err := sub.Close(); err != nil {
				slog.Warn("failed to close feed subscription", "user_id", userID, "error", err)
			}
		}()

		msgs := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-msgs:
				if !ok {
					return
				}
				// Coalesce bursts: one pending tick is enough because
				// subscribers re-read the full snapshot on every tick.
				select {
				case ticks <- struct{}{}:
				default:
				}
			}
		}
	}()

	return ticks, nil
}
