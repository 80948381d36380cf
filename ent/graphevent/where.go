// Code generated by ent, DO NOT EDIT.

package graphevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/agx-dev/agx/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.GraphEvent {
	return predicate.GraphEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.GraphEvent {
	return predicate.GraphEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.GraphEvent {
	return predicate.GraphEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.GraphEvent {
	return predicate.GraphEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.GraphEvent {
	return predicate.GraphEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.GraphEvent {
	return predicate.GraphEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.GraphEvent {
	return predicate.GraphEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.GraphEvent {
	return predicate.GraphEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.GraphEvent {
	return predicate.GraphEvent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.GraphEvent {
	return predicate.GraphEvent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.GraphEvent {
	return predicate.GraphEvent(sql.FieldContainsFold(FieldID, id))
}

// GraphID applies equality check predicate on the "graph_id" field. It's identical to GraphIDEQ.
func GraphID(v string) predicate.GraphEvent {
	return predicate.GraphEvent(sql.FieldEQ(FieldGraphID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.GraphEvent {
	return predicate.GraphEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// GraphIDEQ applies the EQ predicate on the "graph_id" field.
func GraphIDEQ(v string) predicate.GraphEvent {
	return predicate.GraphEvent(sql.FieldEQ(FieldGraphID, v))
}

// GraphIDNEQ applies the NEQ predicate on the "graph_id" field.
func GraphIDNEQ(v string) predicate.GraphEvent {
	return predicate.GraphEvent(sql.FieldNEQ(FieldGraphID, v))
}

// GraphIDIn applies the In predicate on the "graph_id" field.
func GraphIDIn(vs ...string) predicate.GraphEvent {
	return predicate.GraphEvent(sql.FieldIn(FieldGraphID, vs...))
}

// GraphIDNotIn applies the NotIn predicate on the "graph_id" field.
func GraphIDNotIn(vs ...string) predicate.GraphEvent {
	return predicate.GraphEvent(sql.FieldNotIn(FieldGraphID, vs...))
}

// GraphIDGT applies the GT predicate on the "graph_id" field.
func GraphIDGT(v string) predicate.GraphEvent {
	return predicate.GraphEvent(sql.FieldGT(FieldGraphID, v))
}

// GraphIDGTE applies the GTE predicate on the "graph_id" field.
func GraphIDGTE(v string) predicate.GraphEvent {
	return predicate.GraphEvent(sql.FieldGTE(FieldGraphID, v))
}

// GraphIDLT applies the LT predicate on the "graph_id" field.
func GraphIDLT(v string) predicate.GraphEvent {
	return predicate.GraphEvent(sql.FieldLT(FieldGraphID, v))
}

// GraphIDLTE applies the LTE predicate on the "graph_id" field.
func GraphIDLTE(v string) predicate.GraphEvent {
	return predicate.GraphEvent(sql.FieldLTE(FieldGraphID, v))
}

// GraphIDContains applies the Contains predicate on the "graph_id" field.
func GraphIDContains(v string) predicate.GraphEvent {
	return predicate.GraphEvent(sql.FieldContains(FieldGraphID, v))
}

// GraphIDHasPrefix applies the HasPrefix predicate on the "graph_id" field.
func GraphIDHasPrefix(v string) predicate.GraphEvent {
	return predicate.GraphEvent(sql.FieldHasPrefix(FieldGraphID, v))
}

// GraphIDHasSuffix applies the HasSuffix predicate on the "graph_id" field.
func GraphIDHasSuffix(v string) predicate.GraphEvent {
	return predicate.GraphEvent(sql.FieldHasSuffix(FieldGraphID, v))
}

// GraphIDEqualFold applies the EqualFold predicate on the "graph_id" field.
func GraphIDEqualFold(v string) predicate.GraphEvent {
	return predicate.GraphEvent(sql.FieldEqualFold(FieldGraphID, v))
}

// GraphIDContainsFold applies the ContainsFold predicate on the "graph_id" field.
func GraphIDContainsFold(v string) predicate.GraphEvent {
	return predicate.GraphEvent(sql.FieldContainsFold(FieldGraphID, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v EventType) predicate.GraphEvent {
	return predicate.GraphEvent(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v EventType) predicate.GraphEvent {
	return predicate.GraphEvent(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...EventType) predicate.GraphEvent {
	return predicate.GraphEvent(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...EventType) predicate.GraphEvent {
	return predicate.GraphEvent(sql.FieldNotIn(FieldEventType, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.GraphEvent {
	return predicate.GraphEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.GraphEvent {
	return predicate.GraphEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.GraphEvent {
	return predicate.GraphEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.GraphEvent {
	return predicate.GraphEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.GraphEvent {
	return predicate.GraphEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.GraphEvent {
	return predicate.GraphEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.GraphEvent {
	return predicate.GraphEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.GraphEvent {
	return predicate.GraphEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// HasGraph applies the HasEdge predicate on the "graph" edge.
func HasGraph() predicate.GraphEvent {
	return predicate.GraphEvent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, GraphTable, GraphColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasGraphWith applies the HasEdge predicate on the "graph" edge with a given conditions (other predicates).
func HasGraphWith(preds ...predicate.ExecutionGraph) predicate.GraphEvent {
	return predicate.GraphEvent(func(s *sql.Selector) {
		step := newGraphStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GraphEvent) predicate.GraphEvent {
	return predicate.GraphEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GraphEvent) predicate.GraphEvent {
	return predicate.GraphEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GraphEvent) predicate.GraphEvent {
	return predicate.GraphEvent(sql.NotPredicates(p))
}
