// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ExecutionGraph is the predicate function for executiongraph builders.
type ExecutionGraph func(*sql.Selector)

// GraphEvent is the predicate function for graphevent builders.
type GraphEvent func(*sql.Selector)

// TickJob is the predicate function for tickjob builders.
type TickJob func(*sql.Selector)
