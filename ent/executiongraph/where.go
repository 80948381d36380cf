// Code generated by ent, DO NOT EDIT.

package executiongraph

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/agx-dev/agx/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldEQ(FieldTaskID, v))
}

// GraphVersion applies equality check predicate on the "graph_version" field. It's identical to GraphVersionEQ.
func GraphVersion(v int64) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldEQ(FieldGraphVersion, v))
}

// InProgress applies equality check predicate on the "in_progress" field. It's identical to InProgressEQ.
func InProgress(v bool) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldEQ(FieldInProgress, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldEQ(FieldUpdatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldEQ(FieldCompletedAt, v))
}

// TimedOutAt applies equality check predicate on the "timed_out_at" field. It's identical to TimedOutAtEQ.
func TimedOutAt(v time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldEQ(FieldTimedOutAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldContainsFold(FieldTaskID, v))
}

// GraphVersionEQ applies the EQ predicate on the "graph_version" field.
func GraphVersionEQ(v int64) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldEQ(FieldGraphVersion, v))
}

// GraphVersionNEQ applies the NEQ predicate on the "graph_version" field.
func GraphVersionNEQ(v int64) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldNEQ(FieldGraphVersion, v))
}

// GraphVersionIn applies the In predicate on the "graph_version" field.
func GraphVersionIn(vs ...int64) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldIn(FieldGraphVersion, vs...))
}

// GraphVersionNotIn applies the NotIn predicate on the "graph_version" field.
func GraphVersionNotIn(vs ...int64) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldNotIn(FieldGraphVersion, vs...))
}

// GraphVersionGT applies the GT predicate on the "graph_version" field.
func GraphVersionGT(v int64) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldGT(FieldGraphVersion, v))
}

// GraphVersionGTE applies the GTE predicate on the "graph_version" field.
func GraphVersionGTE(v int64) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldGTE(FieldGraphVersion, v))
}

// GraphVersionLT applies the LT predicate on the "graph_version" field.
func GraphVersionLT(v int64) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldLT(FieldGraphVersion, v))
}

// GraphVersionLTE applies the LTE predicate on the "graph_version" field.
func GraphVersionLTE(v int64) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldLTE(FieldGraphVersion, v))
}

// ModeEQ applies the EQ predicate on the "mode" field.
func ModeEQ(v Mode) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldEQ(FieldMode, v))
}

// ModeNEQ applies the NEQ predicate on the "mode" field.
func ModeNEQ(v Mode) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldNEQ(FieldMode, v))
}

// ModeIn applies the In predicate on the "mode" field.
func ModeIn(vs ...Mode) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldIn(FieldMode, vs...))
}

// ModeNotIn applies the NotIn predicate on the "mode" field.
func ModeNotIn(vs ...Mode) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldNotIn(FieldMode, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldNotIn(FieldStatus, vs...))
}

// InProgressEQ applies the EQ predicate on the "in_progress" field.
func InProgressEQ(v bool) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldEQ(FieldInProgress, v))
}

// InProgressNEQ applies the NEQ predicate on the "in_progress" field.
func InProgressNEQ(v bool) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldNEQ(FieldInProgress, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldLTE(FieldUpdatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldNotNull(FieldCompletedAt))
}

// TimedOutAtEQ applies the EQ predicate on the "timed_out_at" field.
func TimedOutAtEQ(v time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldEQ(FieldTimedOutAt, v))
}

// TimedOutAtNEQ applies the NEQ predicate on the "timed_out_at" field.
func TimedOutAtNEQ(v time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldNEQ(FieldTimedOutAt, v))
}

// TimedOutAtIn applies the In predicate on the "timed_out_at" field.
func TimedOutAtIn(vs ...time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldIn(FieldTimedOutAt, vs...))
}

// TimedOutAtNotIn applies the NotIn predicate on the "timed_out_at" field.
func TimedOutAtNotIn(vs ...time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldNotIn(FieldTimedOutAt, vs...))
}

// TimedOutAtGT applies the GT predicate on the "timed_out_at" field.
func TimedOutAtGT(v time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldGT(FieldTimedOutAt, v))
}

// TimedOutAtGTE applies the GTE predicate on the "timed_out_at" field.
func TimedOutAtGTE(v time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldGTE(FieldTimedOutAt, v))
}

// TimedOutAtLT applies the LT predicate on the "timed_out_at" field.
func TimedOutAtLT(v time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldLT(FieldTimedOutAt, v))
}

// TimedOutAtLTE applies the LTE predicate on the "timed_out_at" field.
func TimedOutAtLTE(v time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldLTE(FieldTimedOutAt, v))
}

// TimedOutAtIsNil applies the IsNil predicate on the "timed_out_at" field.
func TimedOutAtIsNil() predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldIsNull(FieldTimedOutAt))
}

// TimedOutAtNotNil applies the NotNil predicate on the "timed_out_at" field.
func TimedOutAtNotNil() predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldNotNull(FieldTimedOutAt))
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.ExecutionGraph {
	return predicate.ExecutionGraph(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.GraphEvent) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExecutionGraph) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExecutionGraph) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExecutionGraph) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.NotPredicates(p))
}
