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
	"github.com/agx-dev/agx/ent/predicate"
	"github.com/agx-dev/agx/ent/tickjob"
)

// TickJobUpdate is the builder for updating TickJob entities.
type TickJobUpdate struct {
	config
	hooks    []Hook
	mutation *TickJobMutation
}

// Where appends a list predicates to the TickJobUpdate builder.
func (_u *TickJobUpdate) Where(ps ...predicate.TickJob) *TickJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQueue sets the "queue" field.
func (_u *TickJobUpdate) SetQueue(v string) *TickJobUpdate {
	_u.mutation.SetQueue(v)
	return _u
}

// SetNillableQueue sets the "queue" field if the given value is not nil.
func (_u *TickJobUpdate) SetNillableQueue(v *string) *TickJobUpdate {
	if v != nil {
		_u.SetQueue(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *TickJobUpdate) SetPayload(v map[string]interface{}) *TickJobUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetSingletonKey sets the "singleton_key" field.
func (_u *TickJobUpdate) SetSingletonKey(v string) *TickJobUpdate {
	_u.mutation.SetSingletonKey(v)
	return _u
}

// SetNillableSingletonKey sets the "singleton_key" field if the given value is not nil.
func (_u *TickJobUpdate) SetNillableSingletonKey(v *string) *TickJobUpdate {
	if v != nil {
		_u.SetSingletonKey(*v)
	}
	return _u
}

// ClearSingletonKey clears the value of the "singleton_key" field.
func (_u *TickJobUpdate) ClearSingletonKey() *TickJobUpdate {
	_u.mutation.ClearSingletonKey()
	return _u
}

// SetState sets the "state" field.
func (_u *TickJobUpdate) SetState(v tickjob.State) *TickJobUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *TickJobUpdate) SetNillableState(v *tickjob.State) *TickJobUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetExpireInSeconds sets the "expire_in_seconds" field.
func (_u *TickJobUpdate) SetExpireInSeconds(v int) *TickJobUpdate {
	_u.mutation.ResetExpireInSeconds()
	_u.mutation.SetExpireInSeconds(v)
	return _u
}

// SetNillableExpireInSeconds sets the "expire_in_seconds" field if the given value is not nil.
func (_u *TickJobUpdate) SetNillableExpireInSeconds(v *int) *TickJobUpdate {
	if v != nil {
		_u.SetExpireInSeconds(*v)
	}
	return _u
}

// AddExpireInSeconds adds value to the "expire_in_seconds" field.
func (_u *TickJobUpdate) AddExpireInSeconds(v int) *TickJobUpdate {
	_u.mutation.AddExpireInSeconds(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *TickJobUpdate) SetAttempts(v int) *TickJobUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *TickJobUpdate) SetNillableAttempts(v *int) *TickJobUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *TickJobUpdate) AddAttempts(v int) *TickJobUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TickJobUpdate) SetStartedAt(v time.Time) *TickJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TickJobUpdate) SetNillableStartedAt(v *time.Time) *TickJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *TickJobUpdate) ClearStartedAt() *TickJobUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *TickJobUpdate) SetFinishedAt(v time.Time) *TickJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *TickJobUpdate) SetNillableFinishedAt(v *time.Time) *TickJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *TickJobUpdate) ClearFinishedAt() *TickJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// Mutation returns the TickJobMutation object of the builder.
func (_u *TickJobUpdate) Mutation() *TickJobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TickJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TickJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TickJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TickJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TickJobUpdate) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := tickjob.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "TickJob.state": %w`, err)}
		}
	}
	return nil
}

func (_u *TickJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tickjob.Table, tickjob.Columns, sqlgraph.NewFieldSpec(tickjob.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Queue(); ok {
		_spec.SetField(tickjob.FieldQueue, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(tickjob.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.SingletonKey(); ok {
		_spec.SetField(tickjob.FieldSingletonKey, field.TypeString, value)
	}
	if _u.mutation.SingletonKeyCleared() {
		_spec.ClearField(tickjob.FieldSingletonKey, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(tickjob.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExpireInSeconds(); ok {
		_spec.SetField(tickjob.FieldExpireInSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExpireInSeconds(); ok {
		_spec.AddField(tickjob.FieldExpireInSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(tickjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(tickjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(tickjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(tickjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(tickjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(tickjob.FieldFinishedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tickjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TickJobUpdateOne is the builder for updating a single TickJob entity.
type TickJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TickJobMutation
}

// SetQueue sets the "queue" field.
func (_u *TickJobUpdateOne) SetQueue(v string) *TickJobUpdateOne {
	_u.mutation.SetQueue(v)
	return _u
}

// SetNillableQueue sets the "queue" field if the given value is not nil.
func (_u *TickJobUpdateOne) SetNillableQueue(v *string) *TickJobUpdateOne {
	if v != nil {
		_u.SetQueue(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *TickJobUpdateOne) SetPayload(v map[string]interface{}) *TickJobUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetSingletonKey sets the "singleton_key" field.
func (_u *TickJobUpdateOne) SetSingletonKey(v string) *TickJobUpdateOne {
	_u.mutation.SetSingletonKey(v)
	return _u
}

// SetNillableSingletonKey sets the "singleton_key" field if the given value is not nil.
func (_u *TickJobUpdateOne) SetNillableSingletonKey(v *string) *TickJobUpdateOne {
	if v != nil {
		_u.SetSingletonKey(*v)
	}
	return _u
}

// ClearSingletonKey clears the value of the "singleton_key" field.
func (_u *TickJobUpdateOne) ClearSingletonKey() *TickJobUpdateOne {
	_u.mutation.ClearSingletonKey()
	return _u
}

// SetState sets the "state" field.
func (_u *TickJobUpdateOne) SetState(v tickjob.State) *TickJobUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *TickJobUpdateOne) SetNillableState(v *tickjob.State) *TickJobUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetExpireInSeconds sets the "expire_in_seconds" field.
func (_u *TickJobUpdateOne) SetExpireInSeconds(v int) *TickJobUpdateOne {
	_u.mutation.ResetExpireInSeconds()
	_u.mutation.SetExpireInSeconds(v)
	return _u
}

// SetNillableExpireInSeconds sets the "expire_in_seconds" field if the given value is not nil.
func (_u *TickJobUpdateOne) SetNillableExpireInSeconds(v *int) *TickJobUpdateOne {
	if v != nil {
		_u.SetExpireInSeconds(*v)
	}
	return _u
}

// AddExpireInSeconds adds value to the "expire_in_seconds" field.
func (_u *TickJobUpdateOne) AddExpireInSeconds(v int) *TickJobUpdateOne {
	_u.mutation.AddExpireInSeconds(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *TickJobUpdateOne) SetAttempts(v int) *TickJobUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *TickJobUpdateOne) SetNillableAttempts(v *int) *TickJobUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *TickJobUpdateOne) AddAttempts(v int) *TickJobUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TickJobUpdateOne) SetStartedAt(v time.Time) *TickJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TickJobUpdateOne) SetNillableStartedAt(v *time.Time) *TickJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *TickJobUpdateOne) ClearStartedAt() *TickJobUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *TickJobUpdateOne) SetFinishedAt(v time.Time) *TickJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *TickJobUpdateOne) SetNillableFinishedAt(v *time.Time) *TickJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *TickJobUpdateOne) ClearFinishedAt() *TickJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// Mutation returns the TickJobMutation object of the builder.
func (_u *TickJobUpdateOne) Mutation() *TickJobMutation {
	return _u.mutation
}

// Where appends a list predicates to the TickJobUpdate builder.
func (_u *TickJobUpdateOne) Where(ps ...predicate.TickJob) *TickJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TickJobUpdateOne) Select(field string, fields ...string) *TickJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TickJob entity.
func (_u *TickJobUpdateOne) Save(ctx context.Context) (*TickJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TickJobUpdateOne) SaveX(ctx context.Context) *TickJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TickJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TickJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TickJobUpdateOne) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := tickjob.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "TickJob.state": %w`, err)}
		}
	}
	return nil
}

func (_u *TickJobUpdateOne) sqlSave(ctx context.Context) (_node *TickJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tickjob.Table, tickjob.Columns, sqlgraph.NewFieldSpec(tickjob.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TickJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tickjob.FieldID)
		for _, f := range fields {
			if !tickjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tickjob.FieldID {
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
	if value, ok := _u.mutation.Queue(); ok {
		_spec.SetField(tickjob.FieldQueue, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(tickjob.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.SingletonKey(); ok {
		_spec.SetField(tickjob.FieldSingletonKey, field.TypeString, value)
	}
	if _u.mutation.SingletonKeyCleared() {
		_spec.ClearField(tickjob.FieldSingletonKey, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(tickjob.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExpireInSeconds(); ok {
		_spec.SetField(tickjob.FieldExpireInSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExpireInSeconds(); ok {
		_spec.AddField(tickjob.FieldExpireInSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(tickjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(tickjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(tickjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(tickjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(tickjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(tickjob.FieldFinishedAt, field.TypeTime)
	}
	_node = &TickJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tickjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
