// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agx-dev/agx/ent/executiongraph"
	"github.com/agx-dev/agx/ent/graphevent"
)

// ExecutionGraphCreate is the builder for creating a ExecutionGraph entity.
type ExecutionGraphCreate struct {
	config
	mutation *ExecutionGraphMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *ExecutionGraphCreate) SetTaskID(v string) *ExecutionGraphCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetGraphVersion sets the "graph_version" field.
func (_c *ExecutionGraphCreate) SetGraphVersion(v int64) *ExecutionGraphCreate {
	_c.mutation.SetGraphVersion(v)
	return _c
}

// SetNillableGraphVersion sets the "graph_version" field if the given value is not nil.
func (_c *ExecutionGraphCreate) SetNillableGraphVersion(v *int64) *ExecutionGraphCreate {
	if v != nil {
		_c.SetGraphVersion(*v)
	}
	return _c
}

// SetMode sets the "mode" field.
func (_c *ExecutionGraphCreate) SetMode(v executiongraph.Mode) *ExecutionGraphCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_c *ExecutionGraphCreate) SetNillableMode(v *executiongraph.Mode) *ExecutionGraphCreate {
	if v != nil {
		_c.SetMode(*v)
	}
	return _c
}

// SetDoc sets the "doc" field.
func (_c *ExecutionGraphCreate) SetDoc(v map[string]interface{}) *ExecutionGraphCreate {
	_c.mutation.SetDoc(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExecutionGraphCreate) SetStatus(v executiongraph.Status) *ExecutionGraphCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ExecutionGraphCreate) SetNillableStatus(v *executiongraph.Status) *ExecutionGraphCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetInProgress sets the "in_progress" field.
func (_c *ExecutionGraphCreate) SetInProgress(v bool) *ExecutionGraphCreate {
	_c.mutation.SetInProgress(v)
	return _c
}

// SetNillableInProgress sets the "in_progress" field if the given value is not nil.
func (_c *ExecutionGraphCreate) SetNillableInProgress(v *bool) *ExecutionGraphCreate {
	if v != nil {
		_c.SetInProgress(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExecutionGraphCreate) SetCreatedAt(v time.Time) *ExecutionGraphCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExecutionGraphCreate) SetNillableCreatedAt(v *time.Time) *ExecutionGraphCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ExecutionGraphCreate) SetUpdatedAt(v time.Time) *ExecutionGraphCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ExecutionGraphCreate) SetNillableUpdatedAt(v *time.Time) *ExecutionGraphCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ExecutionGraphCreate) SetStartedAt(v time.Time) *ExecutionGraphCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ExecutionGraphCreate) SetNillableStartedAt(v *time.Time) *ExecutionGraphCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ExecutionGraphCreate) SetCompletedAt(v time.Time) *ExecutionGraphCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ExecutionGraphCreate) SetNillableCompletedAt(v *time.Time) *ExecutionGraphCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetTimedOutAt sets the "timed_out_at" field.
func (_c *ExecutionGraphCreate) SetTimedOutAt(v time.Time) *ExecutionGraphCreate {
	_c.mutation.SetTimedOutAt(v)
	return _c
}

// SetNillableTimedOutAt sets the "timed_out_at" field if the given value is not nil.
func (_c *ExecutionGraphCreate) SetNillableTimedOutAt(v *time.Time) *ExecutionGraphCreate {
	if v != nil {
		_c.SetTimedOutAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExecutionGraphCreate) SetID(v string) *ExecutionGraphCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddEventIDs adds the "events" edge to the GraphEvent entity by IDs.
func (_c *ExecutionGraphCreate) AddEventIDs(ids ...string) *ExecutionGraphCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the GraphEvent entity.
func (_c *ExecutionGraphCreate) AddEvents(v ...*GraphEvent) *ExecutionGraphCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// Mutation returns the ExecutionGraphMutation object of the builder.
func (_c *ExecutionGraphCreate) Mutation() *ExecutionGraphMutation {
	return _c.mutation
}

// Save creates the ExecutionGraph in the database.
func (_c *ExecutionGraphCreate) Save(ctx context.Context) (*ExecutionGraph, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExecutionGraphCreate) SaveX(ctx context.Context) *ExecutionGraph {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionGraphCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionGraphCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExecutionGraphCreate) defaults() {
	if _, ok := _c.mutation.GraphVersion(); !ok {
		v := executiongraph.DefaultGraphVersion
		_c.mutation.SetGraphVersion(v)
	}
	if _, ok := _c.mutation.Mode(); !ok {
		v := executiongraph.DefaultMode
		_c.mutation.SetMode(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := executiongraph.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.InProgress(); !ok {
		v := executiongraph.DefaultInProgress
		_c.mutation.SetInProgress(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := executiongraph.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := executiongraph.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExecutionGraphCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "ExecutionGraph.task_id"`)}
	}
	if _, ok := _c.mutation.GraphVersion(); !ok {
		return &ValidationError{Name: "graph_version", err: errors.New(`ent: missing required field "ExecutionGraph.graph_version"`)}
	}
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "ExecutionGraph.mode"`)}
	}
	if v, ok := _c.mutation.Mode(); ok {
		if err := executiongraph.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "ExecutionGraph.mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Doc(); !ok {
		return &ValidationError{Name: "doc", err: errors.New(`ent: missing required field "ExecutionGraph.doc"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ExecutionGraph.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := executiongraph.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExecutionGraph.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.InProgress(); !ok {
		return &ValidationError{Name: "in_progress", err: errors.New(`ent: missing required field "ExecutionGraph.in_progress"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExecutionGraph.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ExecutionGraph.updated_at"`)}
	}
	return nil
}

func (_c *ExecutionGraphCreate) sqlSave(ctx context.Context) (*ExecutionGraph, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ExecutionGraph.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExecutionGraphCreate) createSpec() (*ExecutionGraph, *sqlgraph.CreateSpec) {
	var (
		_node = &ExecutionGraph{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(executiongraph.Table, sqlgraph.NewFieldSpec(executiongraph.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(executiongraph.FieldTaskID, field.TypeString, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.GraphVersion(); ok {
		_spec.SetField(executiongraph.FieldGraphVersion, field.TypeInt64, value)
		_node.GraphVersion = value
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(executiongraph.FieldMode, field.TypeEnum, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.Doc(); ok {
		_spec.SetField(executiongraph.FieldDoc, field.TypeJSON, value)
		_node.Doc = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(executiongraph.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.InProgress(); ok {
		_spec.SetField(executiongraph.FieldInProgress, field.TypeBool, value)
		_node.InProgress = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(executiongraph.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(executiongraph.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(executiongraph.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(executiongraph.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.TimedOutAt(); ok {
		_spec.SetField(executiongraph.FieldTimedOutAt, field.TypeTime, value)
		_node.TimedOutAt = &value
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExecutionGraphCreateBulk is the builder for creating many ExecutionGraph entities in bulk.
type ExecutionGraphCreateBulk struct {
	config
	err      error
	builders []*ExecutionGraphCreate
}

// Save creates the ExecutionGraph entities in the database.
func (_c *ExecutionGraphCreateBulk) Save(ctx context.Context) ([]*ExecutionGraph, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExecutionGraph, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExecutionGraphMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ExecutionGraphCreateBulk) SaveX(ctx context.Context) []*ExecutionGraph {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionGraphCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionGraphCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
