// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/irregularverb"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/predicate"
)

// IrregularVerbDelete is the builder for deleting a IrregularVerb entity.
type IrregularVerbDelete struct {
	config
	hooks    []Hook
	mutation *IrregularVerbMutation
}

// Where appends a list predicates to the IrregularVerbDelete builder.
func (ivd *IrregularVerbDelete) Where(ps ...predicate.IrregularVerb) *IrregularVerbDelete {
	ivd.mutation.Where(ps...)
	return ivd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (ivd *IrregularVerbDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, ivd.sqlExec, ivd.mutation, ivd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (ivd *IrregularVerbDelete) ExecX(ctx context.Context) int {
	n, err := ivd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (ivd *IrregularVerbDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(irregularverb.Table, sqlgraph.NewFieldSpec(irregularverb.FieldID, field.TypeInt))
	if ps := ivd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, ivd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	ivd.mutation.done = true
	return affected, err
}

// IrregularVerbDeleteOne is the builder for deleting a single IrregularVerb entity.
type IrregularVerbDeleteOne struct {
	ivd *IrregularVerbDelete
}

// Where appends a list predicates to the IrregularVerbDelete builder.
func (ivdo *IrregularVerbDeleteOne) Where(ps ...predicate.IrregularVerb) *IrregularVerbDeleteOne {
	ivdo.ivd.mutation.Where(ps...)
	return ivdo
}

// Exec executes the deletion query.
func (ivdo *IrregularVerbDeleteOne) Exec(ctx context.Context) error {
	n, err := ivdo.ivd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{irregularverb.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (ivdo *IrregularVerbDeleteOne) ExecX(ctx context.Context) {
	if err := ivdo.Exec(ctx); err != nil {
		panic(err)
	}
}
