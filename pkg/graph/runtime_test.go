package graph

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stepScheduler advances every node one step per tick: pending → running,
// then running → done, settling the graph once all nodes are terminal.
type stepScheduler struct{}

func (stepScheduler) Tick(g *Graph, now time.Time) TickResult {
	for _, n := range g.Nodes {
		switch n.Status {
		case StatusPending:
			started := now
			n.Status = StatusRunning
			n.StartedAt = &started
		case StatusRunning:
			completed := now
			n.Status = StatusDone
			n.CompletedAt = &completed
		}
	}
	settleIfTerminal(g, now)
	return TickResult{Graph: g}
}

// oneShotScheduler finishes every node in a single tick.
type oneShotScheduler struct{}

func (oneShotScheduler) Tick(g *Graph, now time.Time) TickResult {
	for _, n := range g.Nodes {
		if !n.Status.Terminal() {
			completed := now
			n.Status = StatusDone
			n.CompletedAt = &completed
		}
	}
	settleIfTerminal(g, now)
	return TickResult{Graph: g}
}

// gatedScheduler blocks each tick on a permit; once the permit channel is
// closed, further ticks are no-ops.
type gatedScheduler struct {
	inner   Scheduler
	permits chan struct{}
}

func (s *gatedScheduler) Tick(g *Graph, now time.Time) TickResult {
	if _, ok := <-s.permits; !ok {
		return TickResult{Graph: g}
	}
	return s.inner.Tick(g, now)
}

// recordScheduler notes whether it was ever invoked.
type recordScheduler struct {
	mu     sync.Mutex
	called bool
}

func (s *recordScheduler) Tick(g *Graph, now time.Time) TickResult {
	s.mu.Lock()
	s.called = true
	s.mu.Unlock()
	return TickResult{Graph: g}
}

func (s *recordScheduler) wasCalled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.called
}

func settleIfTerminal(g *Graph, now time.Time) {
	for _, n := range g.Nodes {
		if !n.Status.Terminal() {
			return
		}
	}
	if g.CompletedAt == nil {
		completed := now
		g.Status = GraphStatusCompleted
		g.CompletedAt = &completed
	}
}

func nodeStatus(t *testing.T, st Store, graphID, nodeID string) NodeStatus {
	t.Helper()
	g, err := st.GetGraph(context.Background(), graphID)
	require.NoError(t, err)
	return g.Nodes[nodeID].Status
}

func TestRuntimeSurvivesRestartMidGraph(t *testing.T) {
	ctx := context.Background()
	st := NewMemStore()
	for _, id := range []string{"g1", "g2"} {
		_, err := st.CreateGraph(ctx, workGraph(id, "n1"))
		require.NoError(t, err)
	}

	// Runtime A gets exactly two scheduler permits: one tick per graph.
	permits := make(chan struct{}, 2)
	permits <- struct{}{}
	permits <- struct{}{}
	rtA := NewRuntime(st, NewMemQueue(), &gatedScheduler{inner: stepScheduler{}, permits: permits}, RuntimeOptions{})
	require.NoError(t, rtA.Start(ctx))

	require.Eventually(t, func() bool {
		return nodeStatus(t, st, "g1", "n1") == StatusRunning &&
			nodeStatus(t, st, "g2", "n1") == StatusRunning
	}, 5*time.Second, 10*time.Millisecond, "both graphs must reach the mid-state")

	close(permits)
	rtA.Stop()

	// Runtime B resumes from the store alone: its queue starts empty and
	// recovery re-enqueues every in-progress graph.
	qB := NewMemQueue()
	rtB := NewRuntime(st, qB, stepScheduler{}, RuntimeOptions{})
	require.NoError(t, rtB.Start(ctx))
	defer rtB.Stop()

	require.Eventually(t, func() bool {
		return nodeStatus(t, st, "g1", "n1") == StatusDone &&
			nodeStatus(t, st, "g2", "n1") == StatusDone && qB.Idle()
	}, 5*time.Second, 10*time.Millisecond)

	for _, id := range []string{"g1", "g2"} {
		g, err := st.GetGraph(ctx, id)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, g.GraphVersion, int64(3), "graph %s", id)
		assert.Equal(t, GraphStatusCompleted, g.Status)
		require.NotNil(t, g.CompletedAt)
	}
}

// conflictOnce simulates a concurrent writer: the first replace attempt
// bumps the stored version out from under the caller and reports a
// conflict.
type conflictOnce struct {
	Store
	mu        sync.Mutex
	injected  bool
	conflicts int
}

func (c *conflictOnce) ReplaceGraph(ctx context.Context, id string, next *Graph, ifMatchVersion int64) (*Graph, error) {
	c.mu.Lock()
	if !c.injected {
		c.injected = true
		c.conflicts++
		c.mu.Unlock()

		current, err := c.Store.GetGraph(ctx, id)
		if err != nil {
			return nil, err
		}
		bumped, err := c.Store.ReplaceGraph(ctx, id, current, current.GraphVersion)
		if err != nil {
			return nil, err
		}
		return nil, &GraphVersionConflictError{
			GraphID:         id,
			ExpectedVersion: ifMatchVersion,
			ActualVersion:   bumped.GraphVersion,
		}
	}
	c.mu.Unlock()
	return c.Store.ReplaceGraph(ctx, id, next, ifMatchVersion)
}

func (c *conflictOnce) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conflicts
}

func TestRuntimeRetriesVersionConflict(t *testing.T) {
	ctx := context.Background()
	st := &conflictOnce{Store: NewMemStore()}
	_, err := st.CreateGraph(ctx, workGraph("g1", "n1"))
	require.NoError(t, err)

	q := NewMemQueue()
	rt := NewRuntime(st, q, oneShotScheduler{}, RuntimeOptions{ConflictRetryDelay: time.Millisecond})
	require.NoError(t, rt.Start(ctx))
	defer rt.Stop()

	require.Eventually(t, func() bool {
		return nodeStatus(t, st, "g1", "n1") == StatusDone && q.Idle()
	}, 5*time.Second, 10*time.Millisecond)

	g, err := st.GetGraph(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, 1, st.count(), "exactly one injected conflict")
	assert.GreaterOrEqual(t, g.GraphVersion, int64(3), "create + injected bump + retried write")
}

// budgetScheduler starts n1 and spends one verify budget unit, then
// finishes it on the following tick.
type budgetScheduler struct{}

func (budgetScheduler) Tick(g *Graph, now time.Time) TickResult {
	n1 := g.Nodes["n1"]
	var events []Event
	switch n1.Status {
	case StatusPending:
		started := now
		n1.Status = StatusRunning
		n1.StartedAt = &started
		events = append(events, Event{
			EventType:     EventBudgetConsumed,
			BudgetType:    BudgetVerify,
			Remaining:     2,
			TriggerNodeID: "n1",
		})
	case StatusRunning:
		completed := now
		n1.Status = StatusDone
		n1.CompletedAt = &completed
	}
	settleIfTerminal(g, now)
	return TickResult{Graph: g, Events: events}
}

func TestRuntimePersistsDerivedAndSchedulerEvents(t *testing.T) {
	ctx := context.Background()
	st := NewMemStore()
	_, err := st.CreateGraph(ctx, workGraph("g1", "n1"))
	require.NoError(t, err)

	q := NewMemQueue()
	rt := NewRuntime(st, q, budgetScheduler{}, RuntimeOptions{})
	require.NoError(t, rt.Start(ctx))
	defer rt.Stop()

	require.Eventually(t, func() bool {
		return nodeStatus(t, st, "g1", "n1") == StatusDone && q.Idle()
	}, 5*time.Second, 10*time.Millisecond)

	events, err := st.GetEvents(ctx, "g1")
	require.NoError(t, err)

	var sawStart, sawBudget bool
	for _, ev := range events {
		switch {
		case ev.EventType == EventNodeStatus && ev.FromStatus == StatusPending && ev.ToStatus == StatusRunning:
			sawStart = true
			assert.Equal(t, "g1", ev.GraphID)
			assert.Equal(t, "n1", ev.NodeID)
			assert.False(t, ev.Timestamp.IsZero())
		case ev.EventType == EventBudgetConsumed:
			sawBudget = true
			assert.Equal(t, "g1", ev.GraphID, "driver stamps graphId on scheduler events")
			assert.False(t, ev.Timestamp.IsZero(), "driver stamps missing timestamps")
			assert.Equal(t, BudgetVerify, ev.BudgetType)
			assert.Equal(t, 2, ev.Remaining)
			assert.Equal(t, "n1", ev.TriggerNodeID)
		}
	}
	assert.True(t, sawStart, "node_status pending→running must be derived")
	assert.True(t, sawBudget, "budget_consumed must pass through")
}

func TestRuntimeGraphTimeoutSkipsScheduler(t *testing.T) {
	ctx := context.Background()
	st := NewMemStore()
	g := workGraph("g1", "n1")
	g.CreatedAt = time.Now().UTC().Add(-2 * time.Hour)
	g.Policy.GraphTimeoutMs = 500
	_, err := st.CreateGraph(ctx, g)
	require.NoError(t, err)

	sched := &recordScheduler{}
	q := NewMemQueue()
	rt := NewRuntime(st, q, sched, RuntimeOptions{})
	require.NoError(t, rt.Start(ctx))
	defer rt.Stop()

	require.Eventually(t, func() bool {
		stored, err := st.GetGraph(ctx, "g1")
		return err == nil && stored.TimedOutAt != nil && q.Idle()
	}, 5*time.Second, 10*time.Millisecond)

	stored, err := st.GetGraph(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, GraphStatusTimedOut, stored.Status)
	require.NotNil(t, stored.CompletedAt)
	assert.Equal(t, StatusFailed, stored.Nodes["n1"].Status)
	assert.Equal(t, "graph_timeout", stored.Nodes["n1"].Error)
	assert.False(t, sched.wasCalled(), "timed-out graphs never reach the scheduler")

	events, err := st.GetEvents(ctx, "g1")
	require.NoError(t, err)
	var sawFailure bool
	for _, ev := range events {
		if ev.EventType == EventNodeStatus && ev.FromStatus == StatusPending && ev.ToStatus == StatusFailed {
			sawFailure = true
		}
	}
	assert.True(t, sawFailure)
}

func TestRuntimeDropsTickForMissingGraph(t *testing.T) {
	ctx := context.Background()
	st := NewMemStore()
	q := NewMemQueue()
	rt := NewRuntime(st, q, stepScheduler{}, RuntimeOptions{})
	require.NoError(t, rt.Start(ctx))
	defer rt.Stop()

	require.NoError(t, q.Send(ctx, TickQueueName, TickPayload{GraphID: "ghost"}, SendOptions{SingletonKey: "ghost"}))
	require.Eventually(t, q.Idle, 2*time.Second, 5*time.Millisecond, "missing graphs are dropped, not redelivered")
}

func TestRuntimeCompleteNode(t *testing.T) {
	ctx := context.Background()
	st := NewMemStore()
	g := workGraph("g1", "n1")
	g.Nodes["n1"].Status = StatusRunning
	_, err := st.CreateGraph(ctx, g)
	require.NoError(t, err)

	q := NewMemQueue()
	rt := NewRuntime(st, q, stepScheduler{}, RuntimeOptions{})

	require.NoError(t, rt.CompleteNode(ctx, "g1", "n1", StatusDone, map[string]any{"result": "ok"}, ""))

	stored, err := st.GetGraph(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, StatusDone, stored.Nodes["n1"].Status)
	assert.Equal(t, "ok", stored.Nodes["n1"].Output["result"])
	require.NotNil(t, stored.Nodes["n1"].CompletedAt)
	assert.Equal(t, int64(2), stored.GraphVersion)

	events, err := st.GetEvents(ctx, "g1")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, EventNodeStatus, events[0].EventType)
	assert.Equal(t, StatusRunning, events[0].FromStatus)
	assert.Equal(t, StatusDone, events[0].ToStatus)

	assert.False(t, q.Idle(), "a follow-up tick is queued")

	err = rt.CompleteNode(ctx, "g1", "ghost", StatusDone, nil, "")
	assert.Error(t, err)
}

func TestRuntimeCompleteNodeOnSettledGraph(t *testing.T) {
	ctx := context.Background()
	st := NewMemStore()
	g := workGraph("g1", "n1")
	g.Nodes["n1"].Status = StatusDone
	now := time.Now().UTC()
	g.CompletedAt = &now
	g.Status = GraphStatusCompleted
	_, err := st.CreateGraph(ctx, g)
	require.NoError(t, err)

	rt := NewRuntime(st, NewMemQueue(), stepScheduler{}, RuntimeOptions{})
	err = rt.CompleteNode(ctx, "g1", "n1", StatusFailed, nil, "late result")
	assert.Error(t, err, "settled graphs are quiescent")
}

func TestTickExpireSeconds(t *testing.T) {
	assert.Equal(t, 90, tickExpireSeconds(90_000))
	assert.Equal(t, 91, tickExpireSeconds(90_001))
	assert.Equal(t, defaultTickExpireSeconds, tickExpireSeconds(0))
	assert.Equal(t, defaultTickExpireSeconds, tickExpireSeconds(500))
}
