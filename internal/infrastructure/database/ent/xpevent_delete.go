// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/predicate"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/xpevent"
)

// XpEventDelete is the builder for deleting a XpEvent entity.
type XpEventDelete struct {
	config
	hooks    []Hook
	mutation *XpEventMutation
}

// Where appends a list predicates to the XpEventDelete builder.
func (xed *XpEventDelete) Where(ps ...predicate.XpEvent) *XpEventDelete {
	xed.mutation.Where(ps...)
	return xed
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (xed *XpEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, xed.sqlExec, xed.mutation, xed.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (xed *XpEventDelete) ExecX(ctx context.Context) int {
	n, err := xed.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (xed *XpEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(xpevent.Table, sqlgraph.NewFieldSpec(xpevent.FieldID, field.TypeInt))
	if ps := xed.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, xed.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	xed.mutation.done = true
	return affected, err
}

// XpEventDeleteOne is the builder for deleting a single XpEvent entity.
type XpEventDeleteOne struct {
	xed *XpEventDelete
}

// Where appends a list predicates to the XpEventDelete builder.
func (xedo *XpEventDeleteOne) Where(ps ...predicate.XpEvent) *XpEventDeleteOne {
	xedo.xed.mutation.Where(ps...)
	return xedo
}

// Exec executes the deletion query.
func (xedo *XpEventDeleteOne) Exec(ctx context.Context) error {
	n, err := xedo.xed.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{xpevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (xedo *XpEventDeleteOne) ExecX(ctx context.Context) {
	if err := xedo.Exec(ctx); err != nil {
		panic(err)
	}
}
