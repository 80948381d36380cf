package graph

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemQueueDeliversJobs(t *testing.T) {
	q := NewMemQueue()
	var mu sync.Mutex
	var seen []string
	require.NoError(t, q.Work("ticks", WorkOptions{BatchSize: 1}, func(ctx context.Context, p TickPayload) error {
		mu.Lock()
		seen = append(seen, p.GraphID)
		mu.Unlock()
		return nil
	}))
	require.NoError(t, q.Start(context.Background()))
	defer q.Stop()

	require.NoError(t, q.Send(context.Background(), "ticks", TickPayload{GraphID: "g1"}, SendOptions{}))
	require.NoError(t, q.Send(context.Background(), "ticks", TickPayload{GraphID: "g2"}, SendOptions{}))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(seen) == 2
	}, 2*time.Second, 5*time.Millisecond)

	mu.Lock()
	assert.Equal(t, []string{"g1", "g2"}, seen, "FIFO order")
	mu.Unlock()
}

func TestMemQueueSingletonKeyDeduplicates(t *testing.T) {
	q := NewMemQueue()
	delivered := 0
	require.NoError(t, q.Work("ticks", WorkOptions{}, func(ctx context.Context, p TickPayload) error {
		delivered++
		return nil
	}))

	// Before the queue starts draining, repeated sends for the same
	// graph collapse to a single pending job.
	opts := SendOptions{SingletonKey: "g1", ExpireInSeconds: 60}
	require.NoError(t, q.Send(context.Background(), "ticks", TickPayload{GraphID: "g1"}, opts))
	require.NoError(t, q.Send(context.Background(), "ticks", TickPayload{GraphID: "g1"}, opts))
	require.NoError(t, q.Send(context.Background(), "ticks", TickPayload{GraphID: "g1"}, opts))

	require.NoError(t, q.Start(context.Background()))
	defer q.Stop()

	require.Eventually(t, q.Idle, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, delivered)

	// Once delivered, the key is free again.
	require.NoError(t, q.Send(context.Background(), "ticks", TickPayload{GraphID: "g1"}, opts))
	require.Eventually(t, func() bool { return delivered == 2 }, 2*time.Second, 5*time.Millisecond)
}

func TestMemQueueRedeliversOnHandlerError(t *testing.T) {
	q := NewMemQueue()
	var mu sync.Mutex
	attempts := 0
	require.NoError(t, q.Work("ticks", WorkOptions{}, func(ctx context.Context, p TickPayload) error {
		mu.Lock()
		defer mu.Unlock()
		attempts++
		if attempts == 1 {
			return assert.AnError
		}
		return nil
	}))
	require.NoError(t, q.Start(context.Background()))
	defer q.Stop()

	require.NoError(t, q.Send(context.Background(), "ticks", TickPayload{GraphID: "g1"}, SendOptions{SingletonKey: "g1"}))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return attempts == 2
	}, 2*time.Second, 5*time.Millisecond)
}

func TestMemQueueStopHaltsDelivery(t *testing.T) {
	q := NewMemQueue()
	delivered := make(chan struct{}, 16)
	require.NoError(t, q.Work("ticks", WorkOptions{}, func(ctx context.Context, p TickPayload) error {
		delivered <- struct{}{}
		return nil
	}))
	require.NoError(t, q.Start(context.Background()))

	require.NoError(t, q.Send(context.Background(), "ticks", TickPayload{GraphID: "g1"}, SendOptions{}))
	select {
	case <-delivered:
	case <-time.After(2 * time.Second):
		t.Fatal("job never delivered")
	}

	q.Stop()
	require.NoError(t, q.Send(context.Background(), "ticks", TickPayload{GraphID: "g2"}, SendOptions{}))
	select {
	case <-delivered:
		t.Fatal("delivery after Stop")
	case <-time.After(50 * time.Millisecond):
	}
}
