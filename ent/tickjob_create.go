// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agx-dev/agx/ent/tickjob"
)

// TickJobCreate is the builder for creating a TickJob entity.
type TickJobCreate struct {
	config
	mutation *TickJobMutation
	hooks    []Hook
}

// SetQueue sets the "queue" field.
func (_c *TickJobCreate) SetQueue(v string) *TickJobCreate {
	_c.mutation.SetQueue(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *TickJobCreate) SetPayload(v map[string]interface{}) *TickJobCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetSingletonKey sets the "singleton_key" field.
func (_c *TickJobCreate) SetSingletonKey(v string) *TickJobCreate {
	_c.mutation.SetSingletonKey(v)
	return _c
}

// SetNillableSingletonKey sets the "singleton_key" field if the given value is not nil.
func (_c *TickJobCreate) SetNillableSingletonKey(v *string) *TickJobCreate {
	if v != nil {
		_c.SetSingletonKey(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *TickJobCreate) SetState(v tickjob.State) *TickJobCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *TickJobCreate) SetNillableState(v *tickjob.State) *TickJobCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetExpireInSeconds sets the "expire_in_seconds" field.
func (_c *TickJobCreate) SetExpireInSeconds(v int) *TickJobCreate {
	_c.mutation.SetExpireInSeconds(v)
	return _c
}

// SetNillableExpireInSeconds sets the "expire_in_seconds" field if the given value is not nil.
func (_c *TickJobCreate) SetNillableExpireInSeconds(v *int) *TickJobCreate {
	if v != nil {
		_c.SetExpireInSeconds(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *TickJobCreate) SetAttempts(v int) *TickJobCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *TickJobCreate) SetNillableAttempts(v *int) *TickJobCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TickJobCreate) SetCreatedAt(v time.Time) *TickJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TickJobCreate) SetNillableCreatedAt(v *time.Time) *TickJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *TickJobCreate) SetStartedAt(v time.Time) *TickJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *TickJobCreate) SetNillableStartedAt(v *time.Time) *TickJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *TickJobCreate) SetFinishedAt(v time.Time) *TickJobCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *TickJobCreate) SetNillableFinishedAt(v *time.Time) *TickJobCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TickJobCreate) SetID(v string) *TickJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the TickJobMutation object of the builder.
func (_c *TickJobCreate) Mutation() *TickJobMutation {
	return _c.mutation
}

// Save creates the TickJob in the database.
func (_c *TickJobCreate) Save(ctx context.Context) (*TickJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TickJobCreate) SaveX(ctx context.Context) *TickJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TickJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TickJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TickJobCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := tickjob.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.ExpireInSeconds(); !ok {
		v := tickjob.DefaultExpireInSeconds
		_c.mutation.SetExpireInSeconds(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := tickjob.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tickjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TickJobCreate) check() error {
	if _, ok := _c.mutation.Queue(); !ok {
		return &ValidationError{Name: "queue", err: errors.New(`ent: missing required field "TickJob.queue"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "TickJob.payload"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "TickJob.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := tickjob.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "TickJob.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExpireInSeconds(); !ok {
		return &ValidationError{Name: "expire_in_seconds", err: errors.New(`ent: missing required field "TickJob.expire_in_seconds"`)}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "TickJob.attempts"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TickJob.created_at"`)}
	}
	return nil
}

func (_c *TickJobCreate) sqlSave(ctx context.Context) (*TickJob, error) {
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
			return nil, fmt.Errorf("unexpected TickJob.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TickJobCreate) createSpec() (*TickJob, *sqlgraph.CreateSpec) {
	var (
		_node = &TickJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tickjob.Table, sqlgraph.NewFieldSpec(tickjob.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Queue(); ok {
		_spec.SetField(tickjob.FieldQueue, field.TypeString, value)
		_node.Queue = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(tickjob.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.SingletonKey(); ok {
		_spec.SetField(tickjob.FieldSingletonKey, field.TypeString, value)
		_node.SingletonKey = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(tickjob.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.ExpireInSeconds(); ok {
		_spec.SetField(tickjob.FieldExpireInSeconds, field.TypeInt, value)
		_node.ExpireInSeconds = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(tickjob.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tickjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(tickjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(tickjob.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	return _node, _spec
}

// TickJobCreateBulk is the builder for creating many TickJob entities in bulk.
type TickJobCreateBulk struct {
	config
	err      error
	builders []*TickJobCreate
}

// Save creates the TickJob entities in the database.
func (_c *TickJobCreateBulk) Save(ctx context.Context) ([]*TickJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TickJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TickJobMutation)
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
func (_c *TickJobCreateBulk) SaveX(ctx context.Context) []*TickJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TickJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TickJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
