package graph

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStoreCreateAndGet(t *testing.T) {
	st := NewMemStore()
	ctx := context.Background()

	created, err := st.CreateGraph(ctx, workGraph("g1", "n1"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.GraphVersion)

	got, err := st.GetGraph(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.GraphVersion)

	// Returned graphs are clones, not aliases into the store.
	got.Nodes["n1"].Status = StatusDone
	again, err := st.GetGraph(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, again.Nodes["n1"].Status)

	_, err = st.CreateGraph(ctx, workGraph("g1", "n1"))
	assert.Error(t, err, "duplicate create must fail")

	_, err = st.GetGraph(ctx, "missing")
	assert.ErrorIs(t, err, ErrGraphNotFound)
}

func TestMemStoreReplaceBumpsVersionByOne(t *testing.T) {
	st := NewMemStore()
	ctx := context.Background()

	created, err := st.CreateGraph(ctx, workGraph("g1", "n1"))
	require.NoError(t, err)
	createdAt := created.CreatedAt

	next := created.Clone()
	next.Nodes["n1"].Status = StatusRunning
	persisted, err := st.ReplaceGraph(ctx, "g1", next, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), persisted.GraphVersion)
	assert.True(t, persisted.CreatedAt.Equal(createdAt), "createdAt must survive replacement")
	assert.False(t, persisted.UpdatedAt.Before(createdAt))
	assert.Equal(t, StatusRunning, persisted.Nodes["n1"].Status)

	persisted, err = st.ReplaceGraph(ctx, "g1", persisted, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), persisted.GraphVersion)
}

func TestMemStoreReplaceConflict(t *testing.T) {
	st := NewMemStore()
	ctx := context.Background()

	created, err := st.CreateGraph(ctx, workGraph("g1", "n1"))
	require.NoError(t, err)

	_, err = st.ReplaceGraph(ctx, "g1", created, 7)
	var conflict *GraphVersionConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "g1", conflict.GraphID)
	assert.Equal(t, int64(7), conflict.ExpectedVersion)
	assert.Equal(t, int64(1), conflict.ActualVersion)

	_, err = st.ReplaceGraph(ctx, "missing", created, 1)
	assert.ErrorIs(t, err, ErrGraphNotFound)
}

func TestMemStoreListInProgress(t *testing.T) {
	st := NewMemStore()
	ctx := context.Background()

	_, err := st.CreateGraph(ctx, workGraph("active", "n1"))
	require.NoError(t, err)

	settled := workGraph("settled", "n1")
	settled.Nodes["n1"].Status = StatusDone
	now := time.Now().UTC()
	settled.CompletedAt = &now
	_, err = st.CreateGraph(ctx, settled)
	require.NoError(t, err)

	graphs, err := st.ListInProgressGraphs(ctx)
	require.NoError(t, err)
	require.Len(t, graphs, 1)
	assert.Equal(t, "active", graphs[0].ID)
}

func TestMemStoreEventLog(t *testing.T) {
	st := NewMemStore()
	ctx := context.Background()

	require.NoError(t, st.AppendEvent(ctx, "g1", Event{EventType: EventNodeStatus, NodeID: "n1"}))
	require.NoError(t, st.AppendEvent(ctx, "g1", Event{EventType: EventBudgetConsumed, BudgetType: BudgetVerify}))

	events, err := st.GetEvents(ctx, "g1")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, EventNodeStatus, events[0].EventType)
	assert.Equal(t, EventBudgetConsumed, events[1].EventType)

	empty, err := st.GetEvents(ctx, "unknown")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
