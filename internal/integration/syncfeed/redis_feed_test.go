package syncfeed

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func newTestFeed(t *testing.T) *redisChangeFeed {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return &redisChangeFeed{client: client}
}

func TestRedisChangeFeed_NotifyReachesSubscriber(t *testing.T) {
	feed := newTestFeed(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	userID := uuid.New()

	ticks, err := feed.Subscribe(ctx, userID)
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}

	if err := feed.NotifyChanged(ctx, userID); err != nil {
		t.Fatalf("NotifyChanged() error = %v", err)
	}

	select {
	case _, ok := <-ticks:
		if !ok {
			t.Fatal("tick channel closed before delivering notification")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change notification")
	}
}

func TestRedisChangeFeed_SubscriberScopedToUser(t *testing.T) {
	feed := newTestFeed(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	subscriber := uuid.New()
	other := uuid.New()

	ticks, err := feed.Subscribe(ctx, subscriber)
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}

	if err := feed.NotifyChanged(ctx, other); err != nil {
		t.Fatalf("NotifyChanged() error = %v", err)
	}

	select {
	case <-ticks:
		t.Fatal("received notification for another user's planner")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestRedisChangeFeed_SubscribeClosesOnContextCancel(t *testing.T) {
	feed := newTestFeed(t)
	ctx, cancel := context.WithCancel(context.Background())

	ticks, err := feed.Subscribe(ctx, uuid.New())
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}

	cancel()

	select {
	case _, ok := <-ticks:
		if ok {
			// A tick may already be buffered; the close must follow.
			if _, stillOpen := <-ticks; stillOpen {
				t.Fatal("tick channel not closed after context cancel")
			}
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for tick channel to close")
	}
}
