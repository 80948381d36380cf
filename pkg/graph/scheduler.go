package graph

import (
	"fmt"
	"sort"
	"time"
)

// TickResult is one scheduler step: the advanced graph plus any events the
// scheduler wants persisted beyond the driver's status diff.
type TickResult struct {
	Graph  *Graph
	Events []Event
}

// Scheduler advances a graph by one step. Implementations must be pure:
// given the same (graph, now) they produce the same result, and they only
// mutate the graph they were handed (the driver always passes a clone).
type Scheduler interface {
	Tick(g *Graph, now time.Time) TickResult
}

// DefaultScheduler is the built-in scheduling policy: dependency-driven
// readiness with edge conditions, bounded work concurrency, auto gates
// consuming the verify budget, conditional branch pruning, and declarative
// done criteria.
type DefaultScheduler struct{}

// NewDefaultScheduler creates the standard scheduler.
func NewDefaultScheduler() *DefaultScheduler {
	return &DefaultScheduler{}
}

// Tick advances the graph in place and returns it with any budget events.
func (s *DefaultScheduler) Tick(g *Graph, now time.Time) TickResult {
	var events []Event

	if g.StartedAt == nil {
		started := now
		g.StartedAt = &started
	}
	if g.Status == "" {
		g.Status = GraphStatusInProgress
	}

	s.expireRunningNodes(g, now)

	// Structural nodes settle in cascades: a fork completing can make its
	// children ready within the same tick. Bound by node count.
	for i := 0; i <= len(g.Nodes); i++ {
		changed := s.settleStructuralNodes(g, now, &events)
		changed = s.propagateSkips(g, now) || changed
		if !changed {
			break
		}
	}

	if !s.finishIfDone(g, now) {
		s.startReadyWork(g, now)
		s.failIfDeadEnd(g, now)
	}

	return TickResult{Graph: g, Events: events}
}

// expireRunningNodes fails running nodes that exceeded the node timeout.
func (s *DefaultScheduler) expireRunningNodes(g *Graph, now time.Time) {
	timeout := g.Policy.NodeTimeoutMs
	if timeout <= 0 {
		return
	}
	for _, node := range g.Nodes {
		if node.Status != StatusRunning || node.StartedAt == nil {
			continue
		}
		if now.Sub(*node.StartedAt) >= time.Duration(timeout)*time.Millisecond {
			completed := now
			node.Status = StatusFailed
			node.Error = "node_timeout"
			node.CompletedAt = &completed
		}
	}
}

// settleStructuralNodes resolves ready fork/join/conditional/gate nodes.
// Returns true if any node changed status.
func (s *DefaultScheduler) settleStructuralNodes(g *Graph, now time.Time, events *[]Event) bool {
	changed := false
	for _, id := range sortedNodeIDs(g) {
		node := g.Nodes[id]
		if node.Status != StatusPending || node.Type == NodeWork {
			continue
		}
		ready, _ := s.readiness(g, node)
		if !ready {
			continue
		}
		completed := now
		switch node.Type {
		case NodeFork, NodeJoin:
			node.Status = StatusDone
			node.CompletedAt = &completed
			changed = true
		case NodeConditional:
			s.decideConditional(g, node, now)
			changed = true
		case NodeGate:
			if s.settleGate(g, node, now, events) {
				changed = true
			}
		}
	}
	return changed
}

// decideConditional evaluates the expression against the bound input
// node's output and skips the losing branch.
func (s *DefaultScheduler) decideConditional(g *Graph, node *Node, now time.Time) {
	completed := now
	truthy := evalExpression(g, node)
	node.Status = StatusPassed
	node.Result = fmt.Sprintf("%t", truthy)
	node.CompletedAt = &completed

	losers := node.Else
	if !truthy {
		losers = node.Then
	}
	for _, id := range losers {
		branch, ok := g.Nodes[id]
		if !ok || branch.Status.Terminal() {
			continue
		}
		branch.Status = StatusSkipped
		branch.CompletedAt = &completed
	}
}

// settleGate passes auto gates while verify budget remains; exhausted
// budget or a human strategy parks the gate for human review.
func (s *DefaultScheduler) settleGate(g *Graph, node *Node, now time.Time, events *[]Event) bool {
	if node.Strategy != "" && node.Strategy != "auto" {
		node.Status = StatusAwaitingHuman
		return true
	}
	if max := g.Policy.MaxConcurrentAutoChecks; max > 0 && autoChecksThisTick(*events) >= max {
		return false // retry next tick
	}
	if g.Policy.VerifyBudget.Remaining <= 0 {
		node.Status = StatusAwaitingHuman
		return true
	}
	g.Policy.VerifyBudget.Remaining--
	*events = append(*events, Event{
		EventType:     EventBudgetConsumed,
		BudgetType:    BudgetVerify,
		Remaining:     g.Policy.VerifyBudget.Remaining,
		TriggerNodeID: node.ID,
	})
	completed := now
	node.Status = StatusPassed
	node.Result = "passed"
	node.CompletedAt = &completed
	return true
}

func autoChecksThisTick(events []Event) int {
	n := 0
	for _, ev := range events {
		if ev.EventType == EventBudgetConsumed && ev.BudgetType == BudgetVerify {
			n++
		}
	}
	return n
}

// propagateSkips marks pending nodes whose dependencies can no longer be
// satisfied. Returns true if any node changed status.
func (s *DefaultScheduler) propagateSkips(g *Graph, now time.Time) bool {
	changed := false
	for _, id := range sortedNodeIDs(g) {
		node := g.Nodes[id]
		if node.Status != StatusPending {
			continue
		}
		if _, dead := s.readiness(g, node); dead {
			completed := now
			node.Status = StatusSkipped
			node.CompletedAt = &completed
			changed = true
		}
	}
	return changed
}

// readiness reports whether a node's dependencies are all satisfied, and
// whether they can never be (a dep settled against its edge condition).
func (s *DefaultScheduler) readiness(g *Graph, node *Node) (ready, dead bool) {
	ready = true
	for _, dep := range s.dependencies(g, node) {
		from, ok := g.Nodes[dep.id]
		if !ok {
			return false, true
		}
		if !from.Status.Terminal() {
			ready = false
			continue
		}
		switch dep.condition {
		case CondAlways:
		case CondOnFailure:
			if from.Status != StatusFailed {
				return false, true
			}
		default: // on_success
			if !from.Status.successful() {
				return false, true
			}
		}
	}
	return ready, false
}

type dependency struct {
	id        string
	condition EdgeCondition
}

// dependencies merges the node's deps list with incoming hard edges.
// Soft edges carry data only and never gate readiness.
func (s *DefaultScheduler) dependencies(g *Graph, node *Node) []dependency {
	seen := make(map[string]bool, len(node.Deps))
	out := make([]dependency, 0, len(node.Deps))
	for _, id := range node.Deps {
		seen[id] = true
		out = append(out, dependency{id: id, condition: CondOnSuccess})
	}
	for _, edge := range g.Edges {
		if edge.To != node.ID || edge.Type == EdgeSoft {
			continue
		}
		cond := edge.Condition
		if cond == "" {
			cond = CondOnSuccess
		}
		if seen[edge.From] {
			// Explicit edge condition wins over the implicit deps entry.
			for i := range out {
				if out[i].id == edge.From {
					out[i].condition = cond
				}
			}
			continue
		}
		seen[edge.From] = true
		out = append(out, dependency{id: edge.From, condition: cond})
	}
	return out
}

// startReadyWork promotes ready work nodes to running, bounded by
// maxConcurrent and ordered by the priority mode.
func (s *DefaultScheduler) startReadyWork(g *Graph, now time.Time) {
	running := 0
	for _, node := range g.Nodes {
		if node.Status == StatusRunning {
			running++
		}
	}

	var ready []*Node
	for _, id := range sortedNodeIDs(g) {
		node := g.Nodes[id]
		if node.Type != NodeWork || node.Status != StatusPending {
			continue
		}
		if ok, _ := s.readiness(g, node); ok {
			ready = append(ready, node)
		}
	}
	s.orderByPriority(g, ready)

	for _, node := range ready {
		if max := g.Policy.MaxConcurrent; max > 0 && running >= max {
			break
		}
		started := now
		node.Status = StatusRunning
		node.StartedAt = &started
		running++
	}
}

// orderByPriority sorts ready work deterministically. FIFO and all ties
// fall back to node id order.
func (s *DefaultScheduler) orderByPriority(g *Graph, ready []*Node) {
	switch g.Policy.PriorityMode {
	case PriorityShortestFirst:
		sort.SliceStable(ready, func(i, j int) bool {
			if ready[i].EstimateMs != ready[j].EstimateMs {
				return ready[i].EstimateMs < ready[j].EstimateMs
			}
			return ready[i].ID < ready[j].ID
		})
	case PriorityCriticalPath:
		depth := downstreamDepths(g)
		sort.SliceStable(ready, func(i, j int) bool {
			if depth[ready[i].ID] != depth[ready[j].ID] {
				return depth[ready[i].ID] > depth[ready[j].ID]
			}
			return ready[i].ID < ready[j].ID
		})
	default:
		sort.SliceStable(ready, func(i, j int) bool {
			return ready[i].ID < ready[j].ID
		})
	}
}

// downstreamDepths computes, per node, the length of the longest chain of
// dependents hanging off it.
func downstreamDepths(g *Graph) map[string]int {
	dependents := make(map[string][]string)
	for _, node := range g.Nodes {
		for _, dep := range node.Deps {
			dependents[dep] = append(dependents[dep], node.ID)
		}
	}
	for _, edge := range g.Edges {
		if edge.Type != EdgeSoft {
			dependents[edge.From] = append(dependents[edge.From], edge.To)
		}
	}

	memo := make(map[string]int, len(g.Nodes))
	var walk func(id string, seen map[string]bool) int
	walk = func(id string, seen map[string]bool) int {
		if d, ok := memo[id]; ok {
			return d
		}
		if seen[id] {
			return 0 // cycle guard
		}
		seen[id] = true
		best := 0
		for _, next := range dependents[id] {
			if d := walk(next, seen) + 1; d > best {
				best = d
			}
		}
		delete(seen, id)
		memo[id] = best
		return best
	}
	for id := range g.Nodes {
		walk(id, make(map[string]bool))
	}
	return memo
}

// finishIfDone applies the declarative done criteria. Leftover pending
// nodes are skipped rather than started once the criteria hold.
func (s *DefaultScheduler) finishIfDone(g *Graph, now time.Time) bool {
	if g.CompletedAt != nil || g.TimedOutAt != nil {
		return true
	}
	if !s.doneCriteriaMet(g) {
		return false
	}
	completed := now
	for _, node := range g.Nodes {
		if node.Status == StatusPending || node.Status == StatusBlocked {
			node.Status = StatusSkipped
			node.CompletedAt = &completed
		}
	}
	g.Status = GraphStatusCompleted
	g.CompletedAt = &completed
	return true
}

// failIfDeadEnd fails the graph when every node settled without the done
// criteria ever holding.
func (s *DefaultScheduler) failIfDeadEnd(g *Graph, now time.Time) {
	if g.InProgress() {
		return
	}
	completed := now
	g.Status = GraphStatusFailed
	g.CompletedAt = &completed
}

func (s *DefaultScheduler) doneCriteriaMet(g *Graph) bool {
	crit := g.DoneCriteria

	if len(crit.CompletionSinkNodeIDs) > 0 {
		for _, id := range crit.CompletionSinkNodeIDs {
			node, ok := g.Nodes[id]
			if !ok || !node.Status.successful() {
				return false
			}
		}
		return true
	}

	met := false
	if crit.AllRequiredGatesPassed {
		for _, node := range g.Nodes {
			if node.Type == NodeGate && node.Required && node.Status != StatusPassed {
				return false
			}
		}
		met = true
	}
	if crit.NoRunnableOrPendingWork {
		for _, node := range g.Nodes {
			if node.Type == NodeWork && (node.Status == StatusPending || node.Status == StatusRunning) {
				return false
			}
		}
		met = true
	}
	return met
}

// evalExpression resolves a conditional's expression against the bound
// input node's output. Literals "true"/"false" short-circuit; otherwise
// the expression names an output key whose value is tested for truthiness.
func evalExpression(g *Graph, node *Node) bool {
	switch node.Expression {
	case "true":
		return true
	case "false", "":
		return false
	}
	input, ok := g.Nodes[node.Input]
	if !ok || input.Output == nil {
		return false
	}
	switch v := input.Output[node.Expression].(type) {
	case bool:
		return v
	case string:
		return v != "" && v != "false"
	case float64:
		return v != 0
	case int:
		return v != 0
	default:
		return v != nil
	}
}

func sortedNodeIDs(g *Graph) []string {
	ids := make([]string, 0, len(g.Nodes))
	for id := range g.Nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
