// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/predicate"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/userxp"
)

// UserXpDelete is the builder for deleting a UserXp entity.
type UserXpDelete struct {
	config
	hooks    []Hook
	mutation *UserXpMutation
}

// Where appends a list predicates to the UserXpDelete builder.
func (uxd *UserXpDelete) Where(ps ...predicate.UserXp) *UserXpDelete {
	uxd.mutation.Where(ps...)
	return uxd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (uxd *UserXpDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, uxd.sqlExec, uxd.mutation, uxd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (uxd *UserXpDelete) ExecX(ctx context.Context) int {
	n, err := uxd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (uxd *UserXpDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(userxp.Table, sqlgraph.NewFieldSpec(userxp.FieldID, field.TypeInt))
	if ps := uxd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, uxd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	uxd.mutation.done = true
	return affected, err
}

// UserXpDeleteOne is the builder for deleting a single UserXp entity.
type UserXpDeleteOne struct {
	uxd *UserXpDelete
}

// Where appends a list predicates to the UserXpDelete builder.
func (uxdo *UserXpDeleteOne) Where(ps ...predicate.UserXp) *UserXpDeleteOne {
	uxdo.uxd.mutation.Where(ps...)
	return uxdo
}

// Exec executes the deletion query.
func (uxdo *UserXpDeleteOne) Exec(ctx context.Context) error {
	n, err := uxdo.uxd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{userxp.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (uxdo *UserXpDeleteOne) ExecX(ctx context.Context) {
	if err := uxdo.Exec(ctx); err != nil {
		panic(err)
	}
}
