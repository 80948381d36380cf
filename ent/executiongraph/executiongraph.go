// Code generated by ent, DO NOT EDIT.

package executiongraph

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the executiongraph type in the database.
	Label = "execution_graph"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "graph_id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldGraphVersion holds the string denoting the graph_version field in the database.
	FieldGraphVersion = "graph_version"
	// FieldMode holds the string denoting the mode field in the database.
	FieldMode = "mode"
	// FieldDoc holds the string denoting the doc field in the database.
	FieldDoc = "doc"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldInProgress holds the string denoting the in_progress field in the database.
	FieldInProgress = "in_progress"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldTimedOutAt holds the string denoting the timed_out_at field in the database.
	FieldTimedOutAt = "timed_out_at"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// GraphEventFieldID holds the string denoting the ID field of the GraphEvent.
	GraphEventFieldID = "event_id"
	// Table holds the table name of the executiongraph in the database.
	Table = "execution_graphs"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "graph_events"
	// EventsInverseTable is the table name for the GraphEvent entity.
	// It exists in this package in order to avoid circular dependency with the "graphevent" package.
	EventsInverseTable = "graph_events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "graph_id"
)

// Columns holds all SQL columns for executiongraph fields.
var Columns = []string{
	FieldID,
	FieldTaskID,
	FieldGraphVersion,
	FieldMode,
	FieldDoc,
	FieldStatus,
	FieldInProgress,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldStartedAt,
	FieldCompletedAt,
	FieldTimedOutAt,
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
	// DefaultGraphVersion holds the default value on creation for the "graph_version" field.
	DefaultGraphVersion int64
	// DefaultInProgress holds the default value on creation for the "in_progress" field.
	DefaultInProgress bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
)

// Mode defines the type for the "mode" enum field.
type Mode string

// ModeSIMPLE is the default value of the Mode enum.
const DefaultMode = ModeSIMPLE

// Mode values.
const (
	ModeSIMPLE  Mode = "SIMPLE"
	ModePROJECT Mode = "PROJECT"
)

func (m Mode) String() string {
	return string(m)
}

// ModeValidator is a validator for the "mode" field enum values. It is called by the builders before save.
func ModeValidator(m Mode) error {
	switch m {
	case ModeSIMPLE, ModePROJECT:
		return nil
	default:
		return fmt.Errorf("executiongraph: invalid enum value for mode field: %q", m)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusInProgress is the default value of the Status enum.
const DefaultStatus = StatusInProgress

// Status values.
const (
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusTimedOut   Status = "timed_out"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusInProgress, StatusCompleted, StatusFailed, StatusTimedOut:
		return nil
	default:
		return fmt.Errorf("executiongraph: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ExecutionGraph queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByGraphVersion orders the results by the graph_version field.
func ByGraphVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGraphVersion, opts...).ToFunc()
}

// ByMode orders the results by the mode field.
func ByMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMode, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByInProgress orders the results by the in_progress field.
func ByInProgress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInProgress, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByTimedOutAt orders the results by the timed_out_at field.
func ByTimedOutAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimedOutAt, opts...).ToFunc()
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, GraphEventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
