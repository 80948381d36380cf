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
	"github.com/agx-dev/agx/ent/graphevent"
)

// GraphEvent is the model entity for the GraphEvent schema.
type GraphEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// GraphID holds the value of the "graph_id" field.
	GraphID string `json:"graph_id,omitempty"`
	// EventType holds the value of the "event_type" field.
	EventType graphevent.EventType `json:"event_type,omitempty"`
	// The full event record, including the timestamp
	Payload map[string]interface{} `json:"payload,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the GraphEventQuery when eager-loading is set.
	Edges        GraphEventEdges `json:"edges"`
	selectValues sql.SelectValues
}

// GraphEventEdges holds the relations/edges for other nodes in the graph.
type GraphEventEdges struct {
	// Graph holds the value of the graph edge.
	Graph *ExecutionGraph `json:"graph,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// GraphOrErr returns the Graph value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e GraphEventEdges) GraphOrErr() (*ExecutionGraph, error) {
	if e.Graph != nil {
		return e.Graph, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: executiongraph.Label}
	}
	return nil, &NotLoadedError{edge: "graph"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GraphEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case graphevent.FieldPayload:
			values[i] = new([]byte)
		case graphevent.FieldID, graphevent.FieldGraphID, graphevent.FieldEventType:
			values[i] = new(sql.NullString)
		case graphevent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GraphEvent fields.
func (_m *GraphEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case graphevent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case graphevent.FieldGraphID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field graph_id", values[i])
			} else if value.Valid {
				_m.GraphID = value.String
			}
		case graphevent.FieldEventType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_type", values[i])
			} else if value.Valid {
				_m.EventType = graphevent.EventType(value.String)
			}
		case graphevent.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case graphevent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GraphEvent.
// This includes values selected through modifiers, order, etc.
func (_m *GraphEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryGraph queries the "graph" edge of the GraphEvent entity.
func (_m *GraphEvent) QueryGraph() *ExecutionGraphQuery {
	return NewGraphEventClient(_m.config).QueryGraph(_m)
}

// Update returns a builder for updating this GraphEvent.
// Note that you need to call GraphEvent.Unwrap() before calling this method if this GraphEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GraphEvent) Update() *GraphEventUpdateOne {
	return NewGraphEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GraphEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GraphEvent) Unwrap() *GraphEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GraphEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GraphEvent) String() string {
	var builder strings.Builder
	builder.WriteString("GraphEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("graph_id=")
	builder.WriteString(_m.GraphID)
	builder.WriteString(", ")
	builder.WriteString("event_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.EventType))
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// GraphEvents is a parsable slice of GraphEvent.
type GraphEvents []*GraphEvent
