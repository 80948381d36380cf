// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agx-dev/agx/ent/executiongraph"
)

// ExecutionGraph is the model entity for the ExecutionGraph schema.
type ExecutionGraph struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Cloud task this graph plans for
	TaskID string `json:"task_id,omitempty"`
	// Bumped by exactly one on every successful replace
	GraphVersion int64 `json:"graph_version,omitempty"`
	// Mode holds the value of the "mode" field.
	Mode executiongraph.Mode `json:"mode,omitempty"`
	// Full graph document: nodes, edges, policy, done criteria
	Doc map[string]interface{} `json:"doc,omitempty"`
	// Status holds the value of the "status" field.
	Status executiongraph.Status `json:"status,omitempty"`
	// Denormalized from node statuses for recovery listing
	InProgress bool `json:"in_progress,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// TimedOutAt holds the value of the "timed_out_at" field.
	TimedOutAt *time.Time `json:"timed_out_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExecutionGraphQuery when eager-loading is set.
	Edges        ExecutionGraphEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExecutionGraphEdges holds the relations/edges for other nodes in the graph.
type ExecutionGraphEdges struct {
	// Events holds the value of the events edge.
	Events []*GraphEvent `json:"events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e ExecutionGraphEdges) EventsOrErr() ([]*GraphEvent, error) {
	if e.loadedTypes[0] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExecutionGraph) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case executiongraph.FieldDoc:
			values[i] = new([]byte)
		case executiongraph.FieldInProgress:
			values[i] = new(sql.NullBool)
		case executiongraph.FieldGraphVersion:
			values[i] = new(sql.NullInt64)
		case executiongraph.FieldID, executiongraph.FieldTaskID, executiongraph.FieldMode, executiongraph.FieldStatus:
			values[i] = new(sql.NullString)
		case executiongraph.FieldCreatedAt, executiongraph.FieldUpdatedAt, executiongraph.FieldStartedAt, executiongraph.FieldCompletedAt, executiongraph.FieldTimedOutAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExecutionGraph fields.
func (_m *ExecutionGraph) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case executiongraph.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case executiongraph.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case executiongraph.FieldGraphVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field graph_version", values[i])
			} else if value.Valid {
				_m.GraphVersion = value.Int64
			}
		case executiongraph.FieldMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mode", values[i])
			} else if value.Valid {
				_m.Mode = executiongraph.Mode(value.String)
			}
		case executiongraph.FieldDoc:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field doc", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Doc); err != nil {
					return fmt.Errorf("unmarshal field doc: %w", err)
				}
			}
		case executiongraph.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = executiongraph.Status(value.String)
			}
		case executiongraph.FieldInProgress:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field in_progress", values[i])
			} else if value.Valid {
				_m.InProgress = value.Bool
			}
		case executiongraph.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case executiongraph.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case executiongraph.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case executiongraph.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case executiongraph.FieldTimedOutAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timed_out_at", values[i])
			} else if value.Valid {
				_m.TimedOutAt = new(time.Time)
				*_m.TimedOutAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExecutionGraph.
// This includes values selected through modifiers, order, etc.
func (_m *ExecutionGraph) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEvents queries the "events" edge of the ExecutionGraph entity.
func (_m *ExecutionGraph) QueryEvents() *GraphEventQuery {
	return NewExecutionGraphClient(_m.config).QueryEvents(_m)
}

// Update returns a builder for updating this ExecutionGraph.
// Note that you need to call ExecutionGraph.Unwrap() before calling this method if this ExecutionGraph
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExecutionGraph) Update() *ExecutionGraphUpdateOne {
	return NewExecutionGraphClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExecutionGraph entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExecutionGraph) Unwrap() *ExecutionGraph {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExecutionGraph is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExecutionGraph) String() string {
	var builder strings.Builder
	builder.WriteString("ExecutionGraph(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("graph_version=")
	builder.WriteString(fmt.Sprintf("%v", _m.GraphVersion))
	builder.WriteString(", ")
	builder.WriteString("mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.Mode))
	builder.WriteString(", ")
	builder.WriteString("doc=")
	builder.WriteString(fmt.Sprintf("%v", _m.Doc))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("in_progress=")
	builder.WriteString(fmt.Sprintf("%v", _m.InProgress))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.TimedOutAt; v != nil {
		builder.WriteString("timed_out_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ExecutionGraphs is a parsable slice of ExecutionGraph.
type ExecutionGraphs []*ExecutionGraph
