// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/predicate"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/vocabpack"
)

// VocabPackDelete is the builder for deleting a VocabPack entity.
type VocabPackDelete struct {
	config
	hooks    []Hook
	mutation *VocabPackMutation
}

// Where appends a list predicates to the VocabPackDelete builder.
func (vpd *VocabPackDelete) Where(ps ...predicate.VocabPack) *VocabPackDelete {
	vpd.mutation.Where(ps...)
	return vpd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (vpd *VocabPackDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, vpd.sqlExec, vpd.mutation, vpd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (vpd *VocabPackDelete) ExecX(ctx context.Context) int {
	n, err := vpd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (vpd *VocabPackDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(vocabpack.Table, sqlgraph.NewFieldSpec(vocabpack.FieldID, field.TypeInt))
	if ps := vpd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, vpd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	vpd.mutation.done = true
	return affected, err
}

// VocabPackDeleteOne is the builder for deleting a single VocabPack entity.
type VocabPackDeleteOne struct {
	vpd *VocabPackDelete
}

// Where appends a list predicates to the VocabPackDelete builder.
func (vpdo *VocabPackDeleteOne) Where(ps ...predicate.VocabPack) *VocabPackDeleteOne {
	vpdo.vpd.mutation.Where(ps...)
	return vpdo
}

// Exec executes the deletion query.
func (vpdo *VocabPackDeleteOne) Exec(ctx context.Context) error {
	n, err := vpdo.vpd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{vocabpack.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (vpdo *VocabPackDeleteOne) ExecX(ctx context.Context) {
	if err := vpdo.Exec(ctx); err != nil {
		panic(err)
	}
}
