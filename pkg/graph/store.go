package graph

import (
	"context"
	"errors"
	"fmt"
)

// ErrGraphNotFound is returned by Store lookups for unknown graph ids.
var ErrGraphNotFound = errors.New("graph not found")

// GraphVersionConflictError signals an optimistic-concurrency failure:
// the stored graphVersion no longer matches the caller's read.
type GraphVersionConflictError struct {
	GraphID         string
	ExpectedVersion int64
	ActualVersion   int64
}

func (e *GraphVersionConflictError) Error() string {
	return fmt.Sprintf("graph %s version conflict: expected %d, actual %d",
		e.GraphID, e.ExpectedVersion, e.ActualVersion)
}

// Store persists execution graphs and their append-only event logs.
//
// ReplaceGraph is the only mutation path: it fails with
// *GraphVersionConflictError when ifMatchVersion does not equal the
// current graphVersion; on success the persisted graphVersion is exactly
// current+1, createdAt is preserved, and updatedAt is set to now.
type Store interface {
	CreateGraph(ctx context.Context, g *Graph) (*Graph, error)
	GetGraph(ctx context.Context, id string) (*Graph, error)
	ListInProgressGraphs(ctx context.Context) ([]*Graph, error)
	ReplaceGraph(ctx context.Context, id string, next *Graph, ifMatchVersion int64) (*Graph, error)
	AppendEvent(ctx context.Context, id string, ev Event) error
	GetEvents(ctx context.Context, id string) ([]Event, error)
}
