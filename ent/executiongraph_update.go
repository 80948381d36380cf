// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agx-dev/agx/ent/executiongraph"
	"github.com/agx-dev/agx/ent/graphevent"
	"github.com/agx-dev/agx/ent/predicate"
)

// ExecutionGraphUpdate is the builder for updating ExecutionGraph entities.
type ExecutionGraphUpdate struct {
	config
	hooks    []Hook
	mutation *ExecutionGraphMutation
}

// Where appends a list predicates to the ExecutionGraphUpdate builder.
func (_u *ExecutionGraphUpdate) Where(ps ...predicate.ExecutionGraph) *ExecutionGraphUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *ExecutionGraphUpdate) SetTaskID(v string) *ExecutionGraphUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *ExecutionGraphUpdate) SetNillableTaskID(v *string) *ExecutionGraphUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetGraphVersion sets the "graph_version" field.
func (_u *ExecutionGraphUpdate) SetGraphVersion(v int64) *ExecutionGraphUpdate {
	_u.mutation.ResetGraphVersion()
	_u.mutation.SetGraphVersion(v)
	return _u
}

// SetNillableGraphVersion sets the "graph_version" field if the given value is not nil.
func (_u *ExecutionGraphUpdate) SetNillableGraphVersion(v *int64) *ExecutionGraphUpdate {
	if v != nil {
		_u.SetGraphVersion(*v)
	}
	return _u
}

// AddGraphVersion adds value to the "graph_version" field.
func (_u *ExecutionGraphUpdate) AddGraphVersion(v int64) *ExecutionGraphUpdate {
	_u.mutation.AddGraphVersion(v)
	return _u
}

// SetMode sets the "mode" field.
func (_u *ExecutionGraphUpdate) SetMode(v executiongraph.Mode) *ExecutionGraphUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *ExecutionGraphUpdate) SetNillableMode(v *executiongraph.Mode) *ExecutionGraphUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetDoc sets the "doc" field.
func (_u *ExecutionGraphUpdate) SetDoc(v map[string]interface{}) *ExecutionGraphUpdate {
	_u.mutation.SetDoc(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExecutionGraphUpdate) SetStatus(v executiongraph.Status) *ExecutionGraphUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExecutionGraphUpdate) SetNillableStatus(v *executiongraph.Status) *ExecutionGraphUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetInProgress sets the "in_progress" field.
func (_u *ExecutionGraphUpdate) SetInProgress(v bool) *ExecutionGraphUpdate {
	_u.mutation.SetInProgress(v)
	return _u
}

// SetNillableInProgress sets the "in_progress" field if the given value is not nil.
func (_u *ExecutionGraphUpdate) SetNillableInProgress(v *bool) *ExecutionGraphUpdate {
	if v != nil {
		_u.SetInProgress(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExecutionGraphUpdate) SetUpdatedAt(v time.Time) *ExecutionGraphUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *ExecutionGraphUpdate) SetNillableUpdatedAt(v *time.Time) *ExecutionGraphUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExecutionGraphUpdate) SetStartedAt(v time.Time) *ExecutionGraphUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExecutionGraphUpdate) SetNillableStartedAt(v *time.Time) *ExecutionGraphUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ExecutionGraphUpdate) ClearStartedAt() *ExecutionGraphUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ExecutionGraphUpdate) SetCompletedAt(v time.Time) *ExecutionGraphUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ExecutionGraphUpdate) SetNillableCompletedAt(v *time.Time) *ExecutionGraphUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ExecutionGraphUpdate) ClearCompletedAt() *ExecutionGraphUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetTimedOutAt sets the "timed_out_at" field.
func (_u *ExecutionGraphUpdate) SetTimedOutAt(v time.Time) *ExecutionGraphUpdate {
	_u.mutation.SetTimedOutAt(v)
	return _u
}

// SetNillableTimedOutAt sets the "timed_out_at" field if the given value is not nil.
func (_u *ExecutionGraphUpdate) SetNillableTimedOutAt(v *time.Time) *ExecutionGraphUpdate {
	if v != nil {
		_u.SetTimedOutAt(*v)
	}
	return _u
}

// ClearTimedOutAt clears the value of the "timed_out_at" field.
func (_u *ExecutionGraphUpdate) ClearTimedOutAt() *ExecutionGraphUpdate {
	_u.mutation.ClearTimedOutAt()
	return _u
}

// AddEventIDs adds the "events" edge to the GraphEvent entity by IDs.
func (_u *ExecutionGraphUpdate) AddEventIDs(ids ...string) *ExecutionGraphUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the GraphEvent entity.
func (_u *ExecutionGraphUpdate) AddEvents(v ...*GraphEvent) *ExecutionGraphUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the ExecutionGraphMutation object of the builder.
func (_u *ExecutionGraphUpdate) Mutation() *ExecutionGraphMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the GraphEvent entity.
func (_u *ExecutionGraphUpdate) ClearEvents() *ExecutionGraphUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to GraphEvent entities by IDs.
func (_u *ExecutionGraphUpdate) RemoveEventIDs(ids ...string) *ExecutionGraphUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to GraphEvent entities.
func (_u *ExecutionGraphUpdate) RemoveEvents(v ...*GraphEvent) *ExecutionGraphUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExecutionGraphUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionGraphUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExecutionGraphUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionGraphUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutionGraphUpdate) check() error {
	if v, ok := _u.mutation.Mode(); ok {
		if err := executiongraph.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "ExecutionGraph.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := executiongraph.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExecutionGraph.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ExecutionGraphUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(executiongraph.Table, executiongraph.Columns, sqlgraph.NewFieldSpec(executiongraph.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(executiongraph.FieldTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GraphVersion(); ok {
		_spec.SetField(executiongraph.FieldGraphVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedGraphVersion(); ok {
		_spec.AddField(executiongraph.FieldGraphVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(executiongraph.FieldMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Doc(); ok {
		_spec.SetField(executiongraph.FieldDoc, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(executiongraph.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.InProgress(); ok {
		_spec.SetField(executiongraph.FieldInProgress, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(executiongraph.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(executiongraph.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(executiongraph.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(executiongraph.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(executiongraph.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TimedOutAt(); ok {
		_spec.SetField(executiongraph.FieldTimedOutAt, field.TypeTime, value)
	}
	if _u.mutation.TimedOutAtCleared() {
		_spec.ClearField(executiongraph.FieldTimedOutAt, field.TypeTime)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   executiongraph.EventsTable,
			Columns: []string{executiongraph.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(graphevent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   executiongraph.EventsTable,
			Columns: []string{executiongraph.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(graphevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   executiongraph.EventsTable,
			Columns: []string{executiongraph.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(graphevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{executiongraph.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExecutionGraphUpdateOne is the builder for updating a single ExecutionGraph entity.
type ExecutionGraphUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExecutionGraphMutation
}

// SetTaskID sets the "task_id" field.
func (_u *ExecutionGraphUpdateOne) SetTaskID(v string) *ExecutionGraphUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *ExecutionGraphUpdateOne) SetNillableTaskID(v *string) *ExecutionGraphUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetGraphVersion sets the "graph_version" field.
func (_u *ExecutionGraphUpdateOne) SetGraphVersion(v int64) *ExecutionGraphUpdateOne {
	_u.mutation.ResetGraphVersion()
	_u.mutation.SetGraphVersion(v)
	return _u
}

// SetNillableGraphVersion sets the "graph_version" field if the given value is not nil.
func (_u *ExecutionGraphUpdateOne) SetNillableGraphVersion(v *int64) *ExecutionGraphUpdateOne {
	if v != nil {
		_u.SetGraphVersion(*v)
	}
	return _u
}

// AddGraphVersion adds value to the "graph_version" field.
func (_u *ExecutionGraphUpdateOne) AddGraphVersion(v int64) *ExecutionGraphUpdateOne {
	_u.mutation.AddGraphVersion(v)
	return _u
}

// SetMode sets the "mode" field.
func (_u *ExecutionGraphUpdateOne) SetMode(v executiongraph.Mode) *ExecutionGraphUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *ExecutionGraphUpdateOne) SetNillableMode(v *executiongraph.Mode) *ExecutionGraphUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetDoc sets the "doc" field.
func (_u *ExecutionGraphUpdateOne) SetDoc(v map[string]interface{}) *ExecutionGraphUpdateOne {
	_u.mutation.SetDoc(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExecutionGraphUpdateOne) SetStatus(v executiongraph.Status) *ExecutionGraphUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExecutionGraphUpdateOne) SetNillableStatus(v *executiongraph.Status) *ExecutionGraphUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetInProgress sets the "in_progress" field.
func (_u *ExecutionGraphUpdateOne) SetInProgress(v bool) *ExecutionGraphUpdateOne {
	_u.mutation.SetInProgress(v)
	return _u
}

// SetNillableInProgress sets the "in_progress" field if the given value is not nil.
func (_u *ExecutionGraphUpdateOne) SetNillableInProgress(v *bool) *ExecutionGraphUpdateOne {
	if v != nil {
		_u.SetInProgress(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExecutionGraphUpdateOne) SetUpdatedAt(v time.Time) *ExecutionGraphUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *ExecutionGraphUpdateOne) SetNillableUpdatedAt(v *time.Time) *ExecutionGraphUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExecutionGraphUpdateOne) SetStartedAt(v time.Time) *ExecutionGraphUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExecutionGraphUpdateOne) SetNillableStartedAt(v *time.Time) *ExecutionGraphUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ExecutionGraphUpdateOne) ClearStartedAt() *ExecutionGraphUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ExecutionGraphUpdateOne) SetCompletedAt(v time.Time) *ExecutionGraphUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ExecutionGraphUpdateOne) SetNillableCompletedAt(v *time.Time) *ExecutionGraphUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ExecutionGraphUpdateOne) ClearCompletedAt() *ExecutionGraphUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetTimedOutAt sets the "timed_out_at" field.
func (_u *ExecutionGraphUpdateOne) SetTimedOutAt(v time.Time) *ExecutionGraphUpdateOne {
	_u.mutation.SetTimedOutAt(v)
	return _u
}

// SetNillableTimedOutAt sets the "timed_out_at" field if the given value is not nil.
func (_u *ExecutionGraphUpdateOne) SetNillableTimedOutAt(v *time.Time) *ExecutionGraphUpdateOne {
	if v != nil {
		_u.SetTimedOutAt(*v)
	}
	return _u
}

// ClearTimedOutAt clears the value of the "timed_out_at" field.
func (_u *ExecutionGraphUpdateOne) ClearTimedOutAt() *ExecutionGraphUpdateOne {
	_u.mutation.ClearTimedOutAt()
	return _u
}

// AddEventIDs adds the "events" edge to the GraphEvent entity by IDs.
func (_u *ExecutionGraphUpdateOne) AddEventIDs(ids ...string) *ExecutionGraphUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the GraphEvent entity.
func (_u *ExecutionGraphUpdateOne) AddEvents(v ...*GraphEvent) *ExecutionGraphUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the ExecutionGraphMutation object of the builder.
func (_u *ExecutionGraphUpdateOne) Mutation() *ExecutionGraphMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the GraphEvent entity.
func (_u *ExecutionGraphUpdateOne) ClearEvents() *ExecutionGraphUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to GraphEvent entities by IDs.
func (_u *ExecutionGraphUpdateOne) RemoveEventIDs(ids ...string) *ExecutionGraphUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to GraphEvent entities.
func (_u *ExecutionGraphUpdateOne) RemoveEvents(v ...*GraphEvent) *ExecutionGraphUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Where appends a list predicates to the ExecutionGraphUpdate builder.
func (_u *ExecutionGraphUpdateOne) Where(ps ...predicate.ExecutionGraph) *ExecutionGraphUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExecutionGraphUpdateOne) Select(field string, fields ...string) *ExecutionGraphUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExecutionGraph entity.
func (_u *ExecutionGraphUpdateOne) Save(ctx context.Context) (*ExecutionGraph, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionGraphUpdateOne) SaveX(ctx context.Context) *ExecutionGraph {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExecutionGraphUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionGraphUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutionGraphUpdateOne) check() error {
	if v, ok := _u.mutation.Mode(); ok {
		if err := executiongraph.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "ExecutionGraph.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := executiongraph.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExecutionGraph.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ExecutionGraphUpdateOne) sqlSave(ctx context.Context) (_node *ExecutionGraph, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(executiongraph.Table, executiongraph.Columns, sqlgraph.NewFieldSpec(executiongraph.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExecutionGraph.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, executiongraph.FieldID)
		for _, f := range fields {
			if !executiongraph.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != executiongraph.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(executiongraph.FieldTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GraphVersion(); ok {
		_spec.SetField(executiongraph.FieldGraphVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedGraphVersion(); ok {
		_spec.AddField(executiongraph.FieldGraphVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(executiongraph.FieldMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Doc(); ok {
		_spec.SetField(executiongraph.FieldDoc, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(executiongraph.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.InProgress(); ok {
		_spec.SetField(executiongraph.FieldInProgress, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(executiongraph.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(executiongraph.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(executiongraph.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(executiongraph.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(executiongraph.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TimedOutAt(); ok {
		_spec.SetField(executiongraph.FieldTimedOutAt, field.TypeTime, value)
	}
	if _u.mutation.TimedOutAtCleared() {
		_spec.ClearField(executiongraph.FieldTimedOutAt, field.TypeTime)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   executiongraph.EventsTable,
			Columns: []string{executiongraph.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(graphevent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   executiongraph.EventsTable,
			Columns: []string{executiongraph.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(graphevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   executiongraph.EventsTable,
			Columns: []string{executiongraph.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(graphevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExecutionGraph{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{executiongraph.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
