// Package graph is the durable plan-as-DAG runtime: an optimistically
// versioned graph store, a pure scheduler, and a tick driver fed by a
// durable queue so graphs survive restarts.
package graph

import (
	"time"
)

// Graph modes.
const (
	ModeSimple  = "SIMPLE"
	ModeProject = "PROJECT"
)

// Graph statuses.
const (
	GraphStatusInProgress = "in_progress"
	GraphStatusCompleted  = "completed"
	GraphStatusFailed     = "failed"
	GraphStatusTimedOut   = "timed_out"
)

// NodeType identifies a node's behavior in the DAG.
type NodeType string

// Node types.
const (
	NodeWork        NodeType = "work"
	NodeGate        NodeType = "gate"
	NodeFork        NodeType = "fork"
	NodeJoin        NodeType = "join"
	NodeConditional NodeType = "conditional"
)

// NodeStatus is a node's lifecycle status.
type NodeStatus string

// Node statuses.
const (
	StatusPending       NodeStatus = "pending"
	StatusRunning       NodeStatus = "running"
	StatusAwaitingHuman NodeStatus = "awaiting_human"
	StatusDone          NodeStatus = "done"
	StatusPassed        NodeStatus = "passed"
	StatusFailed        NodeStatus = "failed"
	StatusBlocked       NodeStatus = "blocked"
	StatusSkipped       NodeStatus = "skipped"
)

// Terminal reports whether a node status is final.
func (s NodeStatus) Terminal() bool {
	switch s {
	case StatusDone, StatusPassed, StatusFailed, StatusSkipped:
		return true
	}
	return false
}

// successful reports whether a terminal status satisfies an on_success
// edge condition.
func (s NodeStatus) successful() bool {
	return s == StatusDone || s == StatusPassed
}

// EdgeType distinguishes blocking from advisory edges.
type EdgeType string

// Edge types. Hard edges gate readiness; soft edges only carry data.
const (
	EdgeHard EdgeType = "hard"
	EdgeSoft EdgeType = "soft"
)

// EdgeCondition controls when an edge is satisfied.
type EdgeCondition string

// Edge conditions.
const (
	CondOnSuccess EdgeCondition = "on_success"
	CondOnFailure EdgeCondition = "on_failure"
	CondAlways    EdgeCondition = "always"
)

// Edge connects two nodes.
type Edge struct {
	From        string            `json:"from"`
	To          string            `json:"to"`
	Type        EdgeType          `json:"type"`
	Condition   EdgeCondition     `json:"condition,omitempty"`
	DataMapping map[string]string `json:"data_mapping,omitempty"`
}

// RetryPolicy is a work node's retry budget.
type RetryPolicy struct {
	MaxAttempts int `json:"max_attempts"`
	Attempts    int `json:"attempts"`
}

// Node is one vertex of an execution graph.
type Node struct {
	ID          string     `json:"id"`
	Type        NodeType   `json:"type"`
	Status      NodeStatus `json:"status"`
	Deps        []string   `json:"deps,omitempty"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Error       string     `json:"error,omitempty"`

	// Work node fields.
	Retry      *RetryPolicy   `json:"retry,omitempty"`
	Output     map[string]any `json:"output,omitempty"`
	EstimateMs int64          `json:"estimate_ms,omitempty"`

	// Gate node fields.
	Strategy string `json:"strategy,omitempty"` // auto | human
	Required bool   `json:"required,omitempty"`
	Result   string `json:"result,omitempty"`

	// Conditional node fields.
	Expression string   `json:"expression,omitempty"`
	Input      string   `json:"input,omitempty"` // node id whose output binds the expression
	Then       []string `json:"then,omitempty"`
	Else       []string `json:"else,omitempty"`
}

// Budget is a consumable counter in the execution policy.
type Budget struct {
	Remaining int `json:"remaining"`
	Initial   int `json:"initial"`
}

// Priority modes for ready-work ordering.
const (
	PriorityFIFO          = "fifo"
	PriorityCriticalPath  = "critical_path"
	PriorityShortestFirst = "shortest_first"
)

// Policy is a graph's execution policy.
type Policy struct {
	ReplanBudget            Budget `json:"replan_budget"`
	VerifyBudget            Budget `json:"verify_budget"`
	MaxConcurrentAutoChecks int    `json:"max_concurrent_auto_checks"`
	ImmutableRequiredGates  bool   `json:"immutable_required_gates"`
	MaxConcurrent           int    `json:"max_concurrent"`
	PriorityMode            string `json:"priority_mode"`
	NodeTimeoutMs           int64  `json:"node_timeout_ms"`
	GraphTimeoutMs          int64  `json:"graph_timeout_ms"`
}

// DoneCriteria declares when a graph is complete.
type DoneCriteria struct {
	AllRequiredGatesPassed  bool     `json:"all_required_gates_passed"`
	NoRunnableOrPendingWork bool     `json:"no_runnable_or_pending_work"`
	CompletionSinkNodeIDs   []string `json:"completion_sink_node_ids,omitempty"`
	CustomCriteria          string   `json:"custom_criteria,omitempty"`
}

// Graph is one execution graph. GraphVersion increases by exactly one on
// every successful store write.
type Graph struct {
	ID           string           `json:"id"`
	TaskID       string           `json:"task_id"`
	GraphVersion int64            `json:"graph_version"`
	Mode         string           `json:"mode"`
	Nodes        map[string]*Node `json:"nodes"`
	Edges        []Edge           `json:"edges,omitempty"`
	Policy       Policy           `json:"policy"`
	DoneCriteria DoneCriteria     `json:"done_criteria"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	StartedAt    *time.Time       `json:"started_at,omitempty"`
	CompletedAt  *time.Time       `json:"completed_at,omitempty"`
	TimedOutAt   *time.Time       `json:"timed_out_at,omitempty"`
	Status       string           `json:"status,omitempty"`
}

// InProgress reports whether the graph still has schedulable work: no
// terminal timestamp and at least one node in a non-settled status.
func (g *Graph) InProgress() bool {
	if g.CompletedAt != nil || g.TimedOutAt != nil {
		return false
	}
	for _, node := range g.Nodes {
		switch node.Status {
		case StatusPending, StatusRunning, StatusAwaitingHuman, StatusBlocked:
			return true
		}
	}
	return false
}

// Clone returns a deep copy. The scheduler always receives a clone so a
// failed persistence attempt cannot leak mutations.
func (g *Graph) Clone() *Graph {
	if g == nil {
		return nil
	}
	next := *g
	next.StartedAt = cloneTime(g.StartedAt)
	next.CompletedAt = cloneTime(g.CompletedAt)
	next.TimedOutAt = cloneTime(g.TimedOutAt)

	next.Nodes = make(map[string]*Node, len(g.Nodes))
	for id, node := range g.Nodes {
		next.Nodes[id] = node.clone()
	}
	next.Edges = make([]Edge, len(g.Edges))
	for i, edge := range g.Edges {
		next.Edges[i] = edge
		if edge.DataMapping != nil {
			mapping := make(map[string]string, len(edge.DataMapping))
			for k, v := range edge.DataMapping {
				mapping[k] = v
			}
			next.Edges[i].DataMapping = mapping
		}
	}
	next.DoneCriteria.CompletionSinkNodeIDs = append([]string(nil), g.DoneCriteria.CompletionSinkNodeIDs...)
	return &next
}

func (n *Node) clone() *Node {
	next := *n
	next.StartedAt = cloneTime(n.StartedAt)
	next.CompletedAt = cloneTime(n.CompletedAt)
	next.Deps = append([]string(nil), n.Deps...)
	next.Then = append([]string(nil), n.Then...)
	next.Else = append([]string(nil), n.Else...)
	if n.Retry != nil {
		retry := *n.Retry
		next.Retry = &retry
	}
	if n.Output != nil {
		next.Output = make(map[string]any, len(n.Output))
		for k, v := range n.Output {
			next.Output[k] = v
		}
	}
	return &next
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// Event types.
const (
	EventNodeStatus     = "node_status"
	EventBudgetConsumed = "budget_consumed"
)

// Budget types for budget_consumed events.
const (
	BudgetReplan = "replan"
	BudgetVerify = "verify"
)

// Event is one append-only graph event record.
type Event struct {
	EventType string    `json:"eventType"`
	GraphID   string    `json:"graphId"`
	Timestamp time.Time `json:"timestamp"`

	// node_status fields.
	NodeID     string     `json:"nodeId,omitempty"`
	FromStatus NodeStatus `json:"fromStatus,omitempty"`
	ToStatus   NodeStatus `json:"toStatus,omitempty"`

	// budget_consumed fields.
	BudgetType    string `json:"budgetType,omitempty"`
	Remaining     int    `json:"remaining,omitempty"`
	TriggerNodeID string `json:"triggerNodeId,omitempty"`
}
