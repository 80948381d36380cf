// Code generated by ent, DO NOT EDIT.

package graphevent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the graphevent type in the database.
	Label = "graph_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "event_id"
	// FieldGraphID holds the string denoting the graph_id field in the database.
	FieldGraphID = "graph_id"
	// FieldEventType holds the string denoting the event_type field in the database.
	FieldEventType = "event_type"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeGraph holds the string denoting the graph edge name in mutations.
	EdgeGraph = "graph"
	// ExecutionGraphFieldID holds the string denoting the ID field of the ExecutionGraph.
	ExecutionGraphFieldID = "graph_id"
	// Table holds the table name of the graphevent in the database.
	Table = "graph_events"
	// GraphTable is the table that holds the graph relation/edge.
	GraphTable = "graph_events"
	// GraphInverseTable is the table name for the ExecutionGraph entity.
	// It exists in this package in order to avoid circular dependency with the "executiongraph" package.
	GraphInverseTable = "execution_graphs"
	// GraphColumn is the table column denoting the graph relation/edge.
	GraphColumn = "graph_id"
)

// Columns holds all SQL columns for graphevent fields.
var Columns = []string{
	FieldID,
	FieldGraphID,
	FieldEventType,
	FieldPayload,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// EventType defines the type for the "event_type" enum field.
type EventType string

// EventType values.
const (
	EventTypeNodeStatus     EventType = "node_status"
	EventTypeBudgetConsumed EventType = "budget_consumed"
)

func (et EventType) String() string {
	return string(et)
}

// EventTypeValidator is a validator for the "event_type" field enum values. It is called by the builders before save.
func EventTypeValidator(et EventType) error {
	switch et {
	case EventTypeNodeStatus, EventTypeBudgetConsumed:
		return nil
	default:
		return fmt.Errorf("graphevent: invalid enum value for event_type field: %q", et)
	}
}

// OrderOption defines the ordering options for the GraphEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByGraphID orders the results by the graph_id field.
func ByGraphID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGraphID, opts...).ToFunc()
}

// ByEventType orders the results by the event_type field.
func ByEventType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventType, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByGraphField orders the results by graph field.
func ByGraphField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newGraphStep(), sql.OrderByField(field, opts...))
	}
}
func newGraphStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(GraphInverseTable, ExecutionGraphFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, GraphTable, GraphColumn),
	)
}
