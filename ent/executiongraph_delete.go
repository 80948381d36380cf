// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agx-dev/agx/ent/executiongraph"
	"github.com/agx-dev/agx/ent/predicate"
)

// ExecutionGraphDelete is the builder for deleting a ExecutionGraph entity.
type ExecutionGraphDelete struct {
	config
	hooks    []Hook
	mutation *ExecutionGraphMutation
}

// Where appends a list predicates to the ExecutionGraphDelete builder.
func (_d *ExecutionGraphDelete) Where(ps ...predicate.ExecutionGraph) *ExecutionGraphDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ExecutionGraphDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExecutionGraphDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ExecutionGraphDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(executiongraph.Table, sqlgraph.NewFieldSpec(executiongraph.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ExecutionGraphDeleteOne is the builder for deleting a single ExecutionGraph entity.
type ExecutionGraphDeleteOne struct {
	_d *ExecutionGraphDelete
}

// Where appends a list predicates to the ExecutionGraphDelete builder.
func (_d *ExecutionGraphDeleteOne) Where(ps ...predicate.ExecutionGraph) *ExecutionGraphDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ExecutionGraphDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{executiongraph.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExecutionGraphDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
