package graph

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tickN(t *testing.T, s Scheduler, g *Graph, now time.Time, n int) *Graph {
	t.Helper()
	for i := 0; i < n; i++ {
		g = s.Tick(g.Clone(), now).Graph
	}
	return g
}

func TestSchedulerStartsReadyWork(t *testing.T) {
	s := NewDefaultScheduler()
	g := workGraph("g1", "a", "b")
	g.Nodes["b"].Deps = []string{"a"}
	now := time.Now().UTC()

	out := s.Tick(g.Clone(), now).Graph
	require.NotNil(t, out.StartedAt)
	assert.Equal(t, GraphStatusInProgress, out.Status)
	assert.Equal(t, StatusRunning, out.Nodes["a"].Status)
	assert.Equal(t, StatusPending, out.Nodes["b"].Status, "b waits for a")
	require.NotNil(t, out.Nodes["a"].StartedAt)
}

func TestSchedulerMaxConcurrentAndPriority(t *testing.T) {
	s := NewDefaultScheduler()
	g := workGraph("g1", "long", "short")
	g.Policy.MaxConcurrent = 1
	g.Policy.PriorityMode = PriorityShortestFirst
	g.Nodes["long"].EstimateMs = 5000
	g.Nodes["short"].EstimateMs = 100

	out := s.Tick(g.Clone(), time.Now().UTC()).Graph
	assert.Equal(t, StatusRunning, out.Nodes["short"].Status)
	assert.Equal(t, StatusPending, out.Nodes["long"].Status)
}

func TestSchedulerCriticalPathPriority(t *testing.T) {
	s := NewDefaultScheduler()
	g := workGraph("g1", "root", "mid", "leaf", "isolated")
	g.Nodes["mid"].Deps = []string{"root"}
	g.Nodes["leaf"].Deps = []string{"mid"}
	g.Policy.MaxConcurrent = 1
	g.Policy.PriorityMode = PriorityCriticalPath

	out := s.Tick(g.Clone(), time.Now().UTC()).Graph
	assert.Equal(t, StatusRunning, out.Nodes["root"].Status, "longest chain runs first")
	assert.Equal(t, StatusPending, out.Nodes["isolated"].Status)
}

func TestSchedulerNodeTimeout(t *testing.T) {
	s := NewDefaultScheduler()
	g := workGraph("g1", "a")
	g.Policy.NodeTimeoutMs = 1000
	started := time.Now().UTC().Add(-time.Minute)
	g.Nodes["a"].Status = StatusRunning
	g.Nodes["a"].StartedAt = &started

	out := s.Tick(g.Clone(), time.Now().UTC()).Graph
	assert.Equal(t, StatusFailed, out.Nodes["a"].Status)
	assert.Equal(t, "node_timeout", out.Nodes["a"].Error)
	require.NotNil(t, out.Nodes["a"].CompletedAt)
}

func TestSchedulerForkFansOut(t *testing.T) {
	s := NewDefaultScheduler()
	g := workGraph("g1", "w1", "w2")
	g.Nodes["fork"] = &Node{ID: "fork", Type: NodeFork, Status: StatusPending}
	g.Nodes["w1"].Deps = []string{"fork"}
	g.Nodes["w2"].Deps = []string{"fork"}

	out := s.Tick(g.Clone(), time.Now().UTC()).Graph
	assert.Equal(t, StatusDone, out.Nodes["fork"].Status)
	assert.Equal(t, StatusRunning, out.Nodes["w1"].Status, "fork settles and fans out in one tick")
	assert.Equal(t, StatusRunning, out.Nodes["w2"].Status)
}

func TestSchedulerJoinWaitsForAllDeps(t *testing.T) {
	s := NewDefaultScheduler()
	g := workGraph("g1", "w1", "w2")
	g.Nodes["join"] = &Node{ID: "join", Type: NodeJoin, Status: StatusPending, Deps: []string{"w1", "w2"}}
	g.Nodes["w1"].Status = StatusDone
	g.Nodes["w2"].Status = StatusRunning

	out := s.Tick(g.Clone(), time.Now().UTC()).Graph
	assert.Equal(t, StatusPending, out.Nodes["join"].Status)

	out.Nodes["w2"].Status = StatusDone
	out = s.Tick(out.Clone(), time.Now().UTC()).Graph
	assert.Equal(t, StatusDone, out.Nodes["join"].Status)
}

func TestSchedulerConditionalPrunesBranch(t *testing.T) {
	s := NewDefaultScheduler()
	g := workGraph("g1", "probe", "yes", "no")
	g.Nodes["probe"].Status = StatusDone
	g.Nodes["probe"].Output = map[string]any{"needs_fix": true}
	g.Nodes["cond"] = &Node{
		ID:         "cond",
		Type:       NodeConditional,
		Status:     StatusPending,
		Deps:       []string{"probe"},
		Expression: "needs_fix",
		Input:      "probe",
		Then:       []string{"yes"},
		Else:       []string{"no"},
	}
	g.Nodes["yes"].Deps = []string{"cond"}
	g.Nodes["no"].Deps = []string{"cond"}

	out := s.Tick(g.Clone(), time.Now().UTC()).Graph
	assert.Equal(t, StatusPassed, out.Nodes["cond"].Status)
	assert.Equal(t, "true", out.Nodes["cond"].Result)
	assert.Equal(t, StatusSkipped, out.Nodes["no"].Status)
	assert.Equal(t, StatusRunning, out.Nodes["yes"].Status)
}

func TestSchedulerConditionalFalseLiteral(t *testing.T) {
	s := NewDefaultScheduler()
	g := workGraph("g1", "yes")
	g.Nodes["cond"] = &Node{
		ID:         "cond",
		Type:       NodeConditional,
		Status:     StatusPending,
		Expression: "false",
		Then:       []string{"yes"},
	}
	g.Nodes["yes"].Deps = []string{"cond"}

	out := s.Tick(g.Clone(), time.Now().UTC()).Graph
	assert.Equal(t, "false", out.Nodes["cond"].Result)
	assert.Equal(t, StatusSkipped, out.Nodes["yes"].Status)
}

func TestSchedulerAutoGateConsumesVerifyBudget(t *testing.T) {
	s := NewDefaultScheduler()
	g := workGraph("g1", "w")
	g.Nodes["w"].Status = StatusDone
	g.Nodes["gate"] = &Node{ID: "gate", Type: NodeGate, Status: StatusPending, Deps: []string{"w"}, Strategy: "auto", Required: true}
	g.Policy.VerifyBudget = Budget{Remaining: 3, Initial: 3}

	result := s.Tick(g.Clone(), time.Now().UTC())
	out := result.Graph
	assert.Equal(t, StatusPassed, out.Nodes["gate"].Status)
	assert.Equal(t, "passed", out.Nodes["gate"].Result)
	assert.Equal(t, 2, out.Policy.VerifyBudget.Remaining)

	require.Len(t, result.Events, 1)
	ev := result.Events[0]
	assert.Equal(t, EventBudgetConsumed, ev.EventType)
	assert.Equal(t, BudgetVerify, ev.BudgetType)
	assert.Equal(t, 2, ev.Remaining)
	assert.Equal(t, "gate", ev.TriggerNodeID)
}

func TestSchedulerGateBudgetExhausted(t *testing.T) {
	s := NewDefaultScheduler()
	g := workGraph("g1", "w")
	g.Nodes["w"].Status = StatusDone
	g.Nodes["gate"] = &Node{ID: "gate", Type: NodeGate, Status: StatusPending, Deps: []string{"w"}, Strategy: "auto"}
	g.Policy.VerifyBudget = Budget{Remaining: 0, Initial: 3}

	result := s.Tick(g.Clone(), time.Now().UTC())
	assert.Equal(t, StatusAwaitingHuman, result.Graph.Nodes["gate"].Status)
	assert.Empty(t, result.Events)
}

func TestSchedulerHumanGateParks(t *testing.T) {
	s := NewDefaultScheduler()
	g := workGraph("g1", "w")
	g.Nodes["w"].Status = StatusDone
	g.Nodes["gate"] = &Node{ID: "gate", Type: NodeGate, Status: StatusPending, Deps: []string{"w"}, Strategy: "human"}
	g.Policy.VerifyBudget = Budget{Remaining: 3, Initial: 3}

	result := s.Tick(g.Clone(), time.Now().UTC())
	assert.Equal(t, StatusAwaitingHuman, result.Graph.Nodes["gate"].Status)
	assert.Equal(t, 3, result.Graph.Policy.VerifyBudget.Remaining, "human gates never spend budget")
}

func TestSchedulerAutoCheckConcurrencyCap(t *testing.T) {
	s := NewDefaultScheduler()
	g := &Graph{ID: "g1", Nodes: map[string]*Node{
		"g-a": {ID: "g-a", Type: NodeGate, Status: StatusPending, Strategy: "auto"},
		"g-b": {ID: "g-b", Type: NodeGate, Status: StatusPending, Strategy: "auto"},
	}}
	g.Policy.VerifyBudget = Budget{Remaining: 5, Initial: 5}
	g.Policy.MaxConcurrentAutoChecks = 1

	result := s.Tick(g.Clone(), time.Now().UTC())
	require.Len(t, result.Events, 1, "only one auto check per tick")
	assert.Equal(t, StatusPassed, result.Graph.Nodes["g-a"].Status, "lowest id goes first")
	assert.Equal(t, StatusPending, result.Graph.Nodes["g-b"].Status)

	result = s.Tick(result.Graph.Clone(), time.Now().UTC())
	assert.Equal(t, StatusPassed, result.Graph.Nodes["g-b"].Status)
}

func TestSchedulerOnFailureEdge(t *testing.T) {
	s := NewDefaultScheduler()
	g := workGraph("g1", "risky", "cleanup", "next")
	g.Edges = []Edge{
		{From: "risky", To: "cleanup", Type: EdgeHard, Condition: CondOnFailure},
		{From: "risky", To: "next", Type: EdgeHard},
	}
	g.Nodes["risky"].Status = StatusFailed

	out := s.Tick(g.Clone(), time.Now().UTC()).Graph
	assert.Equal(t, StatusRunning, out.Nodes["cleanup"].Status, "failure path activates")
	assert.Equal(t, StatusSkipped, out.Nodes["next"].Status, "success path can never fire")
}

func TestSchedulerSoftEdgeDoesNotGate(t *testing.T) {
	s := NewDefaultScheduler()
	g := workGraph("g1", "producer", "consumer")
	g.Edges = []Edge{{From: "producer", To: "consumer", Type: EdgeSoft, DataMapping: map[string]string{"out": "in"}}}

	out := s.Tick(g.Clone(), time.Now().UTC()).Graph
	assert.Equal(t, StatusRunning, out.Nodes["consumer"].Status, "soft edges carry data only")
}

func TestSchedulerCompletionSinkNodes(t *testing.T) {
	s := NewDefaultScheduler()
	g := workGraph("g1", "final", "optional")
	g.Nodes["final"].Status = StatusDone
	g.DoneCriteria.CompletionSinkNodeIDs = []string{"final"}

	out := s.Tick(g.Clone(), time.Now().UTC()).Graph
	assert.Equal(t, GraphStatusCompleted, out.Status)
	require.NotNil(t, out.CompletedAt)
	assert.Equal(t, StatusSkipped, out.Nodes["optional"].Status, "leftover pending work is skipped on completion")
}

func TestSchedulerRequiredGatesCriteria(t *testing.T) {
	s := NewDefaultScheduler()
	g := &Graph{ID: "g1", Nodes: map[string]*Node{
		"w":    {ID: "w", Type: NodeWork, Status: StatusDone},
		"gate": {ID: "gate", Type: NodeGate, Status: StatusPassed, Required: true},
	}}
	g.DoneCriteria.AllRequiredGatesPassed = true

	out := s.Tick(g.Clone(), time.Now().UTC()).Graph
	assert.Equal(t, GraphStatusCompleted, out.Status)
}

func TestSchedulerDeadEndFailsGraph(t *testing.T) {
	s := NewDefaultScheduler()
	g := workGraph("g1", "a", "b")
	g.Nodes["a"].Status = StatusFailed
	g.Nodes["b"].Deps = []string{"a"}
	g.DoneCriteria.CompletionSinkNodeIDs = []string{"b"}

	out := s.Tick(g.Clone(), time.Now().UTC()).Graph
	assert.Equal(t, StatusSkipped, out.Nodes["b"].Status)
	assert.Equal(t, GraphStatusFailed, out.Status)
	require.NotNil(t, out.CompletedAt)
}

func TestSchedulerIsPure(t *testing.T) {
	s := NewDefaultScheduler()
	g := workGraph("g1", "a", "b")
	g.Nodes["b"].Deps = []string{"a"}
	now := time.Now().UTC()

	first := s.Tick(g.Clone(), now).Graph
	second := s.Tick(g.Clone(), now).Graph
	assert.Equal(t, first, second, "same input, same output")
	assert.Equal(t, StatusPending, g.Nodes["a"].Status, "input clone untouched")
}

func TestSchedulerQuiescentGraphUnchanged(t *testing.T) {
	s := NewDefaultScheduler()
	g := workGraph("g1", "a")
	g.Nodes["a"].Status = StatusDone
	now := time.Now().UTC()
	g.Status = GraphStatusCompleted
	g.CompletedAt = &now

	out := tickN(t, s, g, now.Add(time.Second), 2)
	assert.Equal(t, GraphStatusCompleted, out.Status)
	assert.True(t, out.CompletedAt.Equal(now))
}
