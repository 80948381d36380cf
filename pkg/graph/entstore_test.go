package graph

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/agx-dev/agx/test/database"
)

func newEntStore(t *testing.T) *EntStore {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}
	return NewEntStore(testdb.NewTestClient(t))
}

func TestEntStoreRoundTrip(t *testing.T) {
	st := newEntStore(t)
	ctx := context.Background()

	g := workGraph("g1", "n1", "n2")
	g.Nodes["n2"].Deps = []string{"n1"}
	g.Edges = []Edge{{From: "n1", To: "n2", Type: EdgeHard}}
	g.Policy.VerifyBudget = Budget{Remaining: 3, Initial: 3}
	g.Policy.NodeTimeoutMs = 90_000
	g.DoneCriteria.CompletionSinkNodeIDs = []string{"n2"}

	created, err := st.CreateGraph(ctx, g)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.GraphVersion)

	got, err := st.GetGraph(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, "task-g1", got.TaskID)
	assert.Equal(t, ModeSimple, got.Mode)
	assert.Equal(t, []string{"n1"}, got.Nodes["n2"].Deps)
	assert.Equal(t, 3, got.Policy.VerifyBudget.Remaining)
	assert.Equal(t, []string{"n2"}, got.DoneCriteria.CompletionSinkNodeIDs)

	_, err = st.GetGraph(ctx, "missing")
	assert.ErrorIs(t, err, ErrGraphNotFound)
}

func TestEntStoreReplaceGuard(t *testing.T) {
	st := newEntStore(t)
	ctx := context.Background()

	created, err := st.CreateGraph(ctx, workGraph("g1", "n1"))
	require.NoError(t, err)
	createdAt := created.CreatedAt

	next := created.Clone()
	started := time.Now().UTC()
	next.Nodes["n1"].Status = StatusRunning
	next.Nodes["n1"].StartedAt = &started
	persisted, err := st.ReplaceGraph(ctx, "g1", next, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), persisted.GraphVersion)
	assert.Equal(t, StatusRunning, persisted.Nodes["n1"].Status)
	assert.WithinDuration(t, createdAt, persisted.CreatedAt, time.Second, "createdAt survives replacement")

	// Stale version loses.
	_, err = st.ReplaceGraph(ctx, "g1", next, 1)
	var conflict *GraphVersionConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, int64(1), conflict.ExpectedVersion)
	assert.Equal(t, int64(2), conflict.ActualVersion)
}

func TestEntStoreListInProgress(t *testing.T) {
	st := newEntStore(t)
	ctx := context.Background()

	_, err := st.CreateGraph(ctx, workGraph("active", "n1"))
	require.NoError(t, err)

	settled := workGraph("settled", "n1")
	settled.Nodes["n1"].Status = StatusDone
	now := time.Now().UTC()
	settled.CompletedAt = &now
	settled.Status = GraphStatusCompleted
	_, err = st.CreateGraph(ctx, settled)
	require.NoError(t, err)

	graphs, err := st.ListInProgressGraphs(ctx)
	require.NoError(t, err)
	require.Len(t, graphs, 1)
	assert.Equal(t, "active", graphs[0].ID)
}

func TestEntStoreEventLogOrder(t *testing.T) {
	st := newEntStore(t)
	ctx := context.Background()

	_, err := st.CreateGraph(ctx, workGraph("g1", "n1"))
	require.NoError(t, err)

	now := time.Now().UTC()
	require.NoError(t, st.AppendEvent(ctx, "g1", Event{
		EventType: EventNodeStatus, NodeID: "n1",
		FromStatus: StatusPending, ToStatus: StatusRunning, Timestamp: now,
	}))
	require.NoError(t, st.AppendEvent(ctx, "g1", Event{
		EventType: EventBudgetConsumed, BudgetType: BudgetVerify,
		Remaining: 2, TriggerNodeID: "n1", Timestamp: now,
	}))

	events, err := st.GetEvents(ctx, "g1")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, EventNodeStatus, events[0].EventType)
	assert.Equal(t, "g1", events[0].GraphID, "graphId stamped on append")
	assert.Equal(t, StatusRunning, events[0].ToStatus)
	assert.Equal(t, EventBudgetConsumed, events[1].EventType)
	assert.Equal(t, 2, events[1].Remaining)
}

func TestEntQueueDeliversAndDeduplicates(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}
	client := testdb.NewTestClient(t)
	q := NewEntQueue(client)
	ctx := context.Background()

	delivered := make(chan TickPayload, 16)
	require.NoError(t, q.Work("ticks", WorkOptions{BatchSize: 5}, func(ctx context.Context, p TickPayload) error {
		delivered <- p
		return nil
	}))

	opts := SendOptions{SingletonKey: "g1", ExpireInSeconds: 60}
	require.NoError(t, q.Send(ctx, "ticks", TickPayload{GraphID: "g1"}, opts))
	require.NoError(t, q.Send(ctx, "ticks", TickPayload{GraphID: "g1"}, opts), "duplicate send is absorbed")

	require.NoError(t, q.Start(ctx))
	defer q.Stop()

	select {
	case p := <-delivered:
		assert.Equal(t, "g1", p.GraphID)
	case <-time.After(10 * time.Second):
		t.Fatal("job never delivered")
	}
	select {
	case p := <-delivered:
		t.Fatalf("unexpected duplicate delivery: %+v", p)
	case <-time.After(time.Second):
	}
}

func TestEntQueueRedeliversOnHandlerError(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}
	client := testdb.NewTestClient(t)
	q := NewEntQueue(client)
	ctx := context.Background()

	attempts := make(chan int, 16)
	calls := 0
	require.NoError(t, q.Work("ticks", WorkOptions{}, func(ctx context.Context, p TickPayload) error {
		calls++
		attempts <- calls
		if calls == 1 {
			return assert.AnError
		}
		return nil
	}))
	require.NoError(t, q.Start(ctx))
	defer q.Stop()

	require.NoError(t, q.Send(ctx, "ticks", TickPayload{GraphID: "g1"}, SendOptions{SingletonKey: "g1"}))

	deadline := time.After(15 * time.Second)
	for seen := 0; seen < 2; {
		select {
		case <-attempts:
			seen++
		case <-deadline:
			t.Fatalf("expected redelivery, saw %d attempts", seen)
		}
	}
}
