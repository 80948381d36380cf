package graph

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func workGraph(id string, nodeIDs ...string) *Graph {
	nodes := make(map[string]*Node, len(nodeIDs))
	for _, nid := range nodeIDs {
		nodes[nid] = &Node{ID: nid, Type: NodeWork, Status: StatusPending}
	}
	return &Graph{
		ID:        id,
		TaskID:    "task-" + id,
		Mode:      ModeSimple,
		Nodes:     nodes,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
}

func TestCloneIsDeep(t *testing.T) {
	started := time.Now().UTC()
	g := workGraph("g1", "n1")
	g.StartedAt = &started
	g.Nodes["n1"].Deps = []string{"n0"}
	g.Nodes["n1"].Output = map[string]any{"ok": true}
	g.Edges = []Edge{{From: "n0", To: "n1", Type: EdgeHard, DataMapping: map[string]string{"a": "b"}}}
	g.DoneCriteria.CompletionSinkNodeIDs = []string{"n1"}

	c := g.Clone()
	c.Nodes["n1"].Status = StatusDone
	c.Nodes["n1"].Deps[0] = "mutated"
	c.Nodes["n1"].Output["ok"] = false
	c.Edges[0].DataMapping["a"] = "mutated"
	c.DoneCriteria.CompletionSinkNodeIDs[0] = "mutated"
	*c.StartedAt = c.StartedAt.Add(time.Hour)

	assert.Equal(t, StatusPending, g.Nodes["n1"].Status)
	assert.Equal(t, []string{"n0"}, g.Nodes["n1"].Deps)
	assert.Equal(t, true, g.Nodes["n1"].Output["ok"])
	assert.Equal(t, "b", g.Edges[0].DataMapping["a"])
	assert.Equal(t, []string{"n1"}, g.DoneCriteria.CompletionSinkNodeIDs)
	assert.True(t, g.StartedAt.Equal(started))
}

func TestCloneNil(t *testing.T) {
	var g *Graph
	require.Nil(t, g.Clone())
}

func TestInProgress(t *testing.T) {
	g := workGraph("g1", "n1")
	assert.True(t, g.InProgress(), "pending node keeps the graph in progress")

	g.Nodes["n1"].Status = StatusAwaitingHuman
	assert.True(t, g.InProgress())

	g.Nodes["n1"].Status = StatusDone
	assert.False(t, g.InProgress(), "all nodes terminal")

	g.Nodes["n1"].Status = StatusRunning
	now := time.Now().UTC()
	g.CompletedAt = &now
	assert.False(t, g.InProgress(), "terminal timestamp wins over node status")

	g.CompletedAt = nil
	g.TimedOutAt = &now
	assert.False(t, g.InProgress())
}

func TestNodeStatusTerminal(t *testing.T) {
	terminal := []NodeStatus{StatusDone, StatusPassed, StatusFailed, StatusSkipped}
	for _, s := range terminal {
		assert.True(t, s.Terminal(), string(s))
	}
	open := []NodeStatus{StatusPending, StatusRunning, StatusAwaitingHuman, StatusBlocked}
	for _, s := range open {
		assert.False(t, s.Terminal(), string(s))
	}

	assert.True(t, StatusDone.successful())
	assert.True(t, StatusPassed.successful())
	assert.False(t, StatusFailed.successful())
	assert.False(t, StatusSkipped.successful())
}
