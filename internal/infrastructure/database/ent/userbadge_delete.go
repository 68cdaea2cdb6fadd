// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/predicate"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/userbadge"
)

// UserBadgeDelete is the builder for deleting a UserBadge entity.
type UserBadgeDelete struct {
	config
	hooks    []Hook
	mutation *UserBadgeMutation
}

// Where appends a list predicates to the UserBadgeDelete builder.
func (ubd *UserBadgeDelete) Where(ps ...predicate.UserBadge) *UserBadgeDelete {
	ubd.mutation.Where(ps...)
	return ubd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (ubd *UserBadgeDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, ubd.sqlExec, ubd.mutation, ubd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (ubd *UserBadgeDelete) ExecX(ctx context.Context) int {
	n, err := ubd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (ubd *UserBadgeDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(userbadge.Table, sqlgraph.NewFieldSpec(userbadge.FieldID, field.TypeInt))
	if ps := ubd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, ubd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	ubd.mutation.done = true
	return affected, err
}

// UserBadgeDeleteOne is the builder for deleting a single UserBadge entity.
type UserBadgeDeleteOne struct {
	ubd *UserBadgeDelete
}

// Where appends a list predicates to the UserBadgeDelete builder.
func (ubdo *UserBadgeDeleteOne) Where(ps ...predicate.UserBadge) *UserBadgeDeleteOne {
	ubdo.ubd.mutation.Where(ps...)
	return ubdo
}

// Exec executes the deletion query.
func (ubdo *UserBadgeDeleteOne) Exec(ctx context.Context) error {
	n, err := ubdo.ubd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{userbadge.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (ubdo *UserBadgeDeleteOne) ExecX(ctx context.Context) {
	if err := ubdo.Exec(ctx); err != nil {
		panic(err)
	}
}
