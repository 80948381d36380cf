// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agx-dev/agx/ent/executiongraph"
	"github.com/agx-dev/agx/ent/graphevent"
	"github.com/agx-dev/agx/ent/predicate"
)

// GraphEventUpdate is the builder for updating GraphEvent entities.
type GraphEventUpdate struct {
	config
	hooks    []Hook
	mutation *GraphEventMutation
}

// Where appends a list predicates to the GraphEventUpdate builder.
func (_u *GraphEventUpdate) Where(ps ...predicate.GraphEvent) *GraphEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetGraphID sets the "graph_id" field.
func (_u *GraphEventUpdate) SetGraphID(v string) *GraphEventUpdate {
	_u.mutation.SetGraphID(v)
	return _u
}

// SetNillableGraphID sets the "graph_id" field if the given value is not nil.
func (_u *GraphEventUpdate) SetNillableGraphID(v *string) *GraphEventUpdate {
	if v != nil {
		_u.SetGraphID(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *GraphEventUpdate) SetEventType(v graphevent.EventType) *GraphEventUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *GraphEventUpdate) SetNillableEventType(v *graphevent.EventType) *GraphEventUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *GraphEventUpdate) SetPayload(v map[string]interface{}) *GraphEventUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetGraph sets the "graph" edge to the ExecutionGraph entity.
func (_u *GraphEventUpdate) SetGraph(v *ExecutionGraph) *GraphEventUpdate {
	return _u.SetGraphID(v.ID)
}

// Mutation returns the GraphEventMutation object of the builder.
func (_u *GraphEventUpdate) Mutation() *GraphEventMutation {
	return _u.mutation
}

// ClearGraph clears the "graph" edge to the ExecutionGraph entity.
func (_u *GraphEventUpdate) ClearGraph() *GraphEventUpdate {
	_u.mutation.ClearGraph()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GraphEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GraphEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GraphEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GraphEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GraphEventUpdate) check() error {
	if v, ok := _u.mutation.EventType(); ok {
		if err := graphevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "GraphEvent.event_type": %w`, err)}
		}
	}
	if _u.mutation.GraphCleared() && len(_u.mutation.GraphIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GraphEvent.graph"`)
	}
	return nil
}

func (_u *GraphEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(graphevent.Table, graphevent.Columns, sqlgraph.NewFieldSpec(graphevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(graphevent.FieldEventType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(graphevent.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.GraphCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   graphevent.GraphTable,
			Columns: []string{graphevent.GraphColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executiongraph.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GraphIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   graphevent.GraphTable,
			Columns: []string{graphevent.GraphColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executiongraph.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{graphevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GraphEventUpdateOne is the builder for updating a single GraphEvent entity.
type GraphEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GraphEventMutation
}

// SetGraphID sets the "graph_id" field.
func (_u *GraphEventUpdateOne) SetGraphID(v string) *GraphEventUpdateOne {
	_u.mutation.SetGraphID(v)
	return _u
}

// SetNillableGraphID sets the "graph_id" field if the given value is not nil.
func (_u *GraphEventUpdateOne) SetNillableGraphID(v *string) *GraphEventUpdateOne {
	if v != nil {
		_u.SetGraphID(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *GraphEventUpdateOne) SetEventType(v graphevent.EventType) *GraphEventUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *GraphEventUpdateOne) SetNillableEventType(v *graphevent.EventType) *GraphEventUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *GraphEventUpdateOne) SetPayload(v map[string]interface{}) *GraphEventUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetGraph sets the "graph" edge to the ExecutionGraph entity.
func (_u *GraphEventUpdateOne) SetGraph(v *ExecutionGraph) *GraphEventUpdateOne {
	return _u.SetGraphID(v.ID)
}

// Mutation returns the GraphEventMutation object of the builder.
func (_u *GraphEventUpdateOne) Mutation() *GraphEventMutation {
	return _u.mutation
}

// ClearGraph clears the "graph" edge to the ExecutionGraph entity.
func (_u *GraphEventUpdateOne) ClearGraph() *GraphEventUpdateOne {
	_u.mutation.ClearGraph()
	return _u
}

// Where appends a list predicates to the GraphEventUpdate builder.
func (_u *GraphEventUpdateOne) Where(ps ...predicate.GraphEvent) *GraphEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GraphEventUpdateOne) Select(field string, fields ...string) *GraphEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GraphEvent entity.
func (_u *GraphEventUpdateOne) Save(ctx context.Context) (*GraphEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GraphEventUpdateOne) SaveX(ctx context.Context) *GraphEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GraphEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GraphEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GraphEventUpdateOne) check() error {
	if v, ok := _u.mutation.EventType(); ok {
		if err := graphevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "GraphEvent.event_type": %w`, err)}
		}
	}
	if _u.mutation.GraphCleared() && len(_u.mutation.GraphIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GraphEvent.graph"`)
	}
	return nil
}

func (_u *GraphEventUpdateOne) sqlSave(ctx context.Context) (_node *GraphEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(graphevent.Table, graphevent.Columns, sqlgraph.NewFieldSpec(graphevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GraphEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, graphevent.FieldID)
		for _, f := range fields {
			if !graphevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != graphevent.FieldID {
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
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(graphevent.FieldEventType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(graphevent.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.GraphCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   graphevent.GraphTable,
			Columns: []string{graphevent.GraphColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executiongraph.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GraphIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   graphevent.GraphTable,
			Columns: []string{graphevent.GraphColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executiongraph.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &GraphEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{graphevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
