package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/agx-dev/agx/ent"
	"github.com/agx-dev/agx/ent/executiongraph"
	"github.com/agx-dev/agx/ent/graphevent"
	"github.com/agx-dev/agx/pkg/database"
)

// EntStore is the PostgreSQL-backed Store. The graph body is one JSONB
// document; graph_version, status, and timestamps are extracted into
// columns so the optimistic guard and recovery listing stay in SQL.
type EntStore struct {
	client *database.Client
}

// NewEntStore creates a durable graph store over the database client.
func NewEntStore(client *database.Client) *EntStore {
	return &EntStore{client: client}
}

// CreateGraph persists a new graph at version 1.
func (s *EntStore) CreateGraph(ctx context.Context, g *Graph) (*Graph, error) {
	stored := g.Clone()
	stored.GraphVersion = 1
	now := time.Now().UTC()
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now

	doc, err := graphDoc(stored)
	if err != nil {
		return nil, err
	}
	row, err := s.client.ExecutionGraph.Create().
		SetID(stored.ID).
		SetTaskID(stored.TaskID).
		SetGraphVersion(stored.GraphVersion).
		SetMode(executiongraph.Mode(modeOrDefault(stored.Mode))).
		SetDoc(doc).
		SetStatus(executiongraph.Status(statusOrDefault(stored.Status))).
		SetInProgress(stored.InProgress()).
		SetCreatedAt(stored.CreatedAt).
		SetUpdatedAt(stored.UpdatedAt).
		SetNillableStartedAt(stored.StartedAt).
		SetNillableCompletedAt(stored.CompletedAt).
		SetNillableTimedOutAt(stored.TimedOutAt).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create graph %s: %w", g.ID, err)
	}
	return rowToGraph(row)
}

// GetGraph loads one graph.
func (s *EntStore) GetGraph(ctx context.Context, id string) (*Graph, error) {
	row, err := s.client.ExecutionGraph.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, ErrGraphNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load graph %s: %w", id, err)
	}
	return rowToGraph(row)
}

// ListInProgressGraphs returns every graph with schedulable work left.
func (s *EntStore) ListInProgressGraphs(ctx context.Context) ([]*Graph, error) {
	rows, err := s.client.ExecutionGraph.Query().
		Where(executiongraph.InProgress(true)).
		Order(ent.Asc(executiongraph.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list in-progress graphs: %w", err)
	}
	out := make([]*Graph, 0, len(rows))
	for _, row := range rows {
		g, err := rowToGraph(row)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, nil
}

// ReplaceGraph swaps the stored document under the version guard: the
// UPDATE is predicated on graph_version, so a zero row count means a
// concurrent writer won.
func (s *EntStore) ReplaceGraph(ctx context.Context, id string, next *Graph, ifMatchVersion int64) (*Graph, error) {
	stored := next.Clone()
	stored.ID = id
	stored.GraphVersion = ifMatchVersion + 1
	stored.UpdatedAt = time.Now().UTC()

	doc, err := graphDoc(stored)
	if err != nil {
		return nil, err
	}
	n, err := s.client.ExecutionGraph.Update().
		Where(
			executiongraph.ID(id),
			executiongraph.GraphVersionEQ(ifMatchVersion),
		).
		SetGraphVersion(stored.GraphVersion).
		SetDoc(doc).
		SetStatus(executiongraph.Status(statusOrDefault(stored.Status))).
		SetInProgress(stored.InProgress()).
		SetUpdatedAt(stored.UpdatedAt).
		SetNillableStartedAt(stored.StartedAt).
		SetNillableCompletedAt(stored.CompletedAt).
		SetNillableTimedOutAt(stored.TimedOutAt).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to replace graph %s: %w", id, err)
	}
	if n == 0 {
		current, err := s.client.ExecutionGraph.Get(ctx, id)
		if ent.IsNotFound(err) {
			return nil, ErrGraphNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load graph %s after conflict: %w", id, err)
		}
		return nil, &GraphVersionConflictError{
			GraphID:         id,
			ExpectedVersion: ifMatchVersion,
			ActualVersion:   current.GraphVersion,
		}
	}
	// CreatedAt is immutable in the schema, so reload for the full row.
	return s.GetGraph(ctx, id)
}

// AppendEvent appends one event to the graph's log.
func (s *EntStore) AppendEvent(ctx context.Context, id string, ev Event) error {
	if ev.GraphID == "" {
		ev.GraphID = id
	}
	payload, err := eventPayload(ev)
	if err != nil {
		return err
	}
	_, err = s.client.GraphEvent.Create().
		SetID(ulid.Make().String()).
		SetGraphID(id).
		SetEventType(graphevent.EventType(ev.EventType)).
		SetPayload(payload).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to append event for graph %s: %w", id, err)
	}
	return nil
}

// GetEvents returns the graph's event log in append order.
func (s *EntStore) GetEvents(ctx context.Context, id string) ([]Event, error) {
	rows, err := s.client.GraphEvent.Query().
		Where(graphevent.GraphID(id)).
		Order(ent.Asc(graphevent.FieldCreatedAt), ent.Asc(graphevent.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events for graph %s: %w", id, err)
	}
	events := make([]Event, 0, len(rows))
	for _, row := range rows {
		var ev Event
		if err := remarshal(row.Payload, &ev); err != nil {
			return nil, fmt.Errorf("corrupt event %s for graph %s: %w", row.ID, id, err)
		}
		events = append(events, ev)
	}
	return events, nil
}

func graphDoc(g *Graph) (map[string]interface{}, error) {
	var doc map[string]interface{}
	if err := remarshal(g, &doc); err != nil {
		return nil, fmt.Errorf("failed to encode graph %s: %w", g.ID, err)
	}
	return doc, nil
}

func eventPayload(ev Event) (map[string]interface{}, error) {
	var payload map[string]interface{}
	if err := remarshal(ev, &payload); err != nil {
		return nil, fmt.Errorf("failed to encode event: %w", err)
	}
	return payload, nil
}

// rowToGraph decodes the JSONB document and overlays the columns, which
// are authoritative for the version guard and lifecycle timestamps.
func rowToGraph(row *ent.ExecutionGraph) (*Graph, error) {
	var g Graph
	if err := remarshal(row.Doc, &g); err != nil {
		return nil, fmt.Errorf("corrupt document for graph %s: %w", row.ID, err)
	}
	g.ID = row.ID
	g.TaskID = row.TaskID
	g.GraphVersion = row.GraphVersion
	g.Mode = string(row.Mode)
	g.Status = string(row.Status)
	g.CreatedAt = row.CreatedAt
	g.UpdatedAt = row.UpdatedAt
	g.StartedAt = row.StartedAt
	g.CompletedAt = row.CompletedAt
	g.TimedOutAt = row.TimedOutAt
	return &g, nil
}

// remarshal converts between JSON-shaped values via encoding/json.
func remarshal(from, to any) error {
	data, err := json.Marshal(from)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, to)
}

func modeOrDefault(mode string) string {
	if mode == "" {
		return ModeSimple
	}
	return mode
}

func statusOrDefault(status string) string {
	if status == "" {
		return GraphStatusInProgress
	}
	return status
}
