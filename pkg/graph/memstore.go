package graph

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// MemStore is the in-memory Store used by unit tests and single-process
// runs without a database. All reads and writes exchange deep clones so
// callers can never alias stored state.
type MemStore struct {
	mu     sync.Mutex
	graphs map[string]*Graph
	events map[string][]Event
}

// NewMemStore creates an empty in-memory graph store.
func NewMemStore() *MemStore {
	return &MemStore{
		graphs: make(map[string]*Graph),
		events: make(map[string][]Event),
	}
}

// CreateGraph stores a new graph at version 1.
func (s *MemStore) CreateGraph(ctx context.Context, g *Graph) (*Graph, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.graphs[g.ID]; exists {
		return nil, fmt.Errorf("graph %s already exists", g.ID)
	}
	stored := g.Clone()
	stored.GraphVersion = 1
	now := time.Now().UTC()
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now
	s.graphs[g.ID] = stored
	return stored.Clone(), nil
}

// GetGraph returns a clone of the stored graph.
func (s *MemStore) GetGraph(ctx context.Context, id string) (*Graph, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.graphs[id]
	if !ok {
		return nil, ErrGraphNotFound
	}
	return g.Clone(), nil
}

// ListInProgressGraphs returns clones of all non-terminal graphs.
func (s *MemStore) ListInProgressGraphs(ctx context.Context) ([]*Graph, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*Graph
	for _, g := range s.graphs {
		if g.InProgress() {
			out = append(out, g.Clone())
		}
	}
	return out, nil
}

// ReplaceGraph swaps the stored graph under an optimistic version guard.
func (s *MemStore) ReplaceGraph(ctx context.Context, id string, next *Graph, ifMatchVersion int64) (*Graph, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.graphs[id]
	if !ok {
		return nil, ErrGraphNotFound
	}
	if current.GraphVersion != ifMatchVersion {
		return nil, &GraphVersionConflictError{
			GraphID:         id,
			ExpectedVersion: ifMatchVersion,
			ActualVersion:   current.GraphVersion,
		}
	}

	stored := next.Clone()
	stored.ID = id
	stored.GraphVersion = current.GraphVersion + 1
	stored.CreatedAt = current.CreatedAt
	stored.UpdatedAt = time.Now().UTC()
	s.graphs[id] = stored
	return stored.Clone(), nil
}

// AppendEvent appends one event to the graph's log.
func (s *MemStore) AppendEvent(ctx context.Context, id string, ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[id] = append(s.events[id], ev)
	return nil
}

// GetEvents returns the graph's event log in append order.
func (s *MemStore) GetEvents(ctx context.Context, id string) ([]Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Event(nil), s.events[id]...), nil
}
