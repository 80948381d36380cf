package graph

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// TickQueueName is the queue the runtime drains.
const TickQueueName = "graph-tick"

const (
	defaultMaxConflictRetries = 3
	defaultConflictRetryDelay = 50 * time.Millisecond
	defaultTickExpireSeconds  = 60
)

// RuntimeOptions tunes the tick driver.
type RuntimeOptions struct {
	MaxConflictRetries int
	ConflictRetryDelay time.Duration
}

// Runtime drives graphs forward: each tick job reads a graph, advances it
// through the scheduler, persists it under an optimistic version guard,
// appends the derived events, and re-enqueues itself while the graph is
// in progress.
type Runtime struct {
	store     Store
	queue     TickQueue
	scheduler Scheduler
	logger    *slog.Logger

	maxConflictRetries int
	conflictRetryDelay time.Duration
	clock              func() time.Time
}

// NewRuntime creates a tick driver over the given store and queue.
func NewRuntime(st Store, queue TickQueue, scheduler Scheduler, opts RuntimeOptions) *Runtime {
	if opts.MaxConflictRetries <= 0 {
		opts.MaxConflictRetries = defaultMaxConflictRetries
	}
	if opts.ConflictRetryDelay <= 0 {
		opts.ConflictRetryDelay = defaultConflictRetryDelay
	}
	return &Runtime{
		store:              st,
		queue:              queue,
		scheduler:          scheduler,
		logger:             slog.Default().With("component", "graph_runtime"),
		maxConflictRetries: opts.MaxConflictRetries,
		conflictRetryDelay: opts.ConflictRetryDelay,
		clock:              time.Now,
	}
}

// Start registers the tick worker, starts the queue, and resumes every
// in-progress graph by enqueueing one tick each.
func (r *Runtime) Start(ctx context.Context) error {
	if err := r.queue.Work(TickQueueName, WorkOptions{BatchSize: 1}, r.handleTick); err != nil {
		return fmt.Errorf("failed to register tick worker: %w", err)
	}
	if err := r.queue.Start(ctx); err != nil {
		return fmt.Errorf("failed to start tick queue: %w", err)
	}

	graphs, err := r.store.ListInProgressGraphs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list in-progress graphs: %w", err)
	}
	for _, g := range graphs {
		if err := r.EnqueueTick(ctx, g); err != nil {
			return err
		}
	}
	if len(graphs) > 0 {
		r.logger.Info("Resumed in-progress graphs", "count", len(graphs))
	}
	return nil
}

// Stop halts tick processing. Pending jobs stay queued for the next start.
func (r *Runtime) Stop() {
	r.queue.Stop()
}

// EnqueueTick schedules one tick for the graph. The singleton key keeps
// at most one pending tick per graph in the queue.
func (r *Runtime) EnqueueTick(ctx context.Context, g *Graph) error {
	return r.queue.Send(ctx, TickQueueName, TickPayload{GraphID: g.ID}, SendOptions{
		SingletonKey:    g.ID,
		ExpireInSeconds: tickExpireSeconds(g.Policy.NodeTimeoutMs),
	})
}

// tickExpireSeconds keeps the job's visibility window at least as long as
// one node timeout.
func tickExpireSeconds(nodeTimeoutMs int64) int {
	expire := int((nodeTimeoutMs + 999) / 1000)
	if expire < defaultTickExpireSeconds {
		expire = defaultTickExpireSeconds
	}
	return expire
}

// handleTick processes one tick job end to end, retrying version
// conflicts with a fresh read each attempt.
func (r *Runtime) handleTick(ctx context.Context, payload TickPayload) error {
	g, err := r.store.GetGraph(ctx, payload.GraphID)
	if errors.Is(err, ErrGraphNotFound) {
		r.logger.Debug("Dropping tick for missing graph", "graph_id", payload.GraphID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load graph %s: %w", payload.GraphID, err)
	}

	conflicts := 0
	for {
		err := r.tickOnce(ctx, g)
		var conflict *GraphVersionConflictError
		if !errors.As(err, &conflict) {
			return err
		}

		conflicts++
		if conflicts >= r.maxConflictRetries {
			return fmt.Errorf("tick for graph %s exhausted %d conflict retries: %w",
				g.ID, r.maxConflictRetries, err)
		}
		r.logger.Warn("Graph version conflict, retrying tick",
			"graph_id", g.ID,
			"expected_version", conflict.ExpectedVersion,
			"actual_version", conflict.ActualVersion,
			"attempt", conflicts)
		time.Sleep(r.conflictRetryDelay * time.Duration(conflicts))

		// Re-read so the retry schedules against the version that won.
		g, err = r.store.GetGraph(ctx, payload.GraphID)
		if errors.Is(err, ErrGraphNotFound) {
			r.logger.Debug("Graph deleted during conflict retry", "graph_id", payload.GraphID)
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to reload graph %s: %w", payload.GraphID, err)
		}
	}
}

// tickOnce runs a single schedule-and-persist attempt against one read of
// the graph.
func (r *Runtime) tickOnce(ctx context.Context, g *Graph) error {
	now := r.clock().UTC()

	var next *Graph
	var schedEvents []Event
	if graphTimedOut(g, now) {
		next = g.Clone()
		applyGraphTimeout(next, now)
	} else {
		result := r.scheduler.Tick(g.Clone(), now)
		next = result.Graph
		schedEvents = result.Events
	}

	events := deriveEvents(g, next, schedEvents, now)

	persisted, err := r.store.ReplaceGraph(ctx, g.ID, next, g.GraphVersion)
	if err != nil {
		return err
	}
	for _, ev := range events {
		if err := r.store.AppendEvent(ctx, g.ID, ev); err != nil {
			return fmt.Errorf("failed to append event for graph %s: %w", g.ID, err)
		}
	}

	if persisted.InProgress() {
		return r.EnqueueTick(ctx, persisted)
	}
	r.logger.Info("Graph settled", "graph_id", g.ID, "status", persisted.Status, "graph_version", persisted.GraphVersion)
	return nil
}

// graphTimedOut reports whether the graph's wall-clock budget is spent.
// The reference instant falls back from startedAt to createdAt to
// updatedAt.
func graphTimedOut(g *Graph, now time.Time) bool {
	if g.Policy.GraphTimeoutMs <= 0 {
		return false
	}
	base := g.UpdatedAt
	if !g.CreatedAt.IsZero() {
		base = g.CreatedAt
	}
	if g.StartedAt != nil {
		base = *g.StartedAt
	}
	return now.Sub(base) >= time.Duration(g.Policy.GraphTimeoutMs)*time.Millisecond
}

// applyGraphTimeout settles the graph as timed out without consulting the
// scheduler: every non-terminal node fails with error "graph_timeout".
func applyGraphTimeout(g *Graph, now time.Time) {
	completed := now
	g.Status = GraphStatusTimedOut
	g.TimedOutAt = &completed
	g.CompletedAt = &completed
	for _, node := range g.Nodes {
		if node.Status.Terminal() {
			continue
		}
		node.Status = StatusFailed
		node.Error = "graph_timeout"
		node.CompletedAt = &completed
	}
}

// deriveEvents synthesizes node_status events from the (pre, post) status
// diff in node-id order, then appends the scheduler's own events with
// graphId and timestamp stamped where missing.
func deriveEvents(pre, post *Graph, schedEvents []Event, now time.Time) []Event {
	var events []Event
	for _, id := range sortedNodeIDs(post) {
		after := post.Nodes[id]
		var before NodeStatus
		if preNode, ok := pre.Nodes[id]; ok {
			before = preNode.Status
		}
		if before == after.Status {
			continue
		}
		events = append(events, Event{
			EventType:  EventNodeStatus,
			GraphID:    pre.ID,
			Timestamp:  now,
			NodeID:     id,
			FromStatus: before,
			ToStatus:   after.Status,
		})
	}
	for _, ev := range schedEvents {
		if ev.GraphID == "" {
			ev.GraphID = pre.ID
		}
		if ev.Timestamp.IsZero() {
			ev.Timestamp = now
		}
		events = append(events, ev)
	}
	return events
}

// CompleteNode records an externally observed node result (a worker
// finishing, a human approving a gate) and schedules a follow-up tick.
func (r *Runtime) CompleteNode(ctx context.Context, graphID, nodeID string, status NodeStatus, output map[string]any, nodeErr string) error {
	for attempt := 1; ; attempt++ {
		g, err := r.store.GetGraph(ctx, graphID)
		if err != nil {
			return fmt.Errorf("failed to load graph %s: %w", graphID, err)
		}
		if g.CompletedAt != nil || g.TimedOutAt != nil {
			return fmt.Errorf("graph %s is already settled", graphID)
		}

		next := g.Clone()
		node, ok := next.Nodes[nodeID]
		if !ok {
			return fmt.Errorf("graph %s has no node %s", graphID, nodeID)
		}
		now := r.clock().UTC()
		node.Status = status
		node.Error = nodeErr
		if output != nil {
			node.Output = output
		}
		if status.Terminal() {
			completed := now
			node.CompletedAt = &completed
		}

		persisted, err := r.store.ReplaceGraph(ctx, graphID, next, g.GraphVersion)
		var conflict *GraphVersionConflictError
		if errors.As(err, &conflict) {
			if attempt >= r.maxConflictRetries {
				return fmt.Errorf("completing node %s on graph %s exhausted %d conflict retries: %w",
					nodeID, graphID, r.maxConflictRetries, err)
			}
			time.Sleep(r.conflictRetryDelay * time.Duration(attempt))
			continue
		}
		if err != nil {
			return err
		}

		var before NodeStatus
		if preNode, ok := g.Nodes[nodeID]; ok {
			before = preNode.Status
		}
		if before != status {
			_ = r.store.AppendEvent(ctx, graphID, Event{
				EventType:  EventNodeStatus,
				GraphID:    graphID,
				Timestamp:  now,
				NodeID:     nodeID,
				FromStatus: before,
				ToStatus:   status,
			})
		}
		return r.EnqueueTick(ctx, persisted)
	}
}
