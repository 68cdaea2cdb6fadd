// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/predicate"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/vocabcluster"
)

// VocabClusterDelete is the builder for deleting a VocabCluster entity.
type VocabClusterDelete struct {
	config
	hooks    []Hook
	mutation *VocabClusterMutation
}

// Where appends a list predicates to the VocabClusterDelete builder.
func (vcd *VocabClusterDelete) Where(ps ...predicate.VocabCluster) *VocabClusterDelete {
	vcd.mutation.Where(ps...)
	return vcd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (vcd *VocabClusterDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, vcd.sqlExec, vcd.mutation, vcd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (vcd *VocabClusterDelete) ExecX(ctx context.Context) int {
	n, err := vcd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (vcd *VocabClusterDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(vocabcluster.Table, sqlgraph.NewFieldSpec(vocabcluster.FieldID, field.TypeInt))
	if ps := vcd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, vcd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	vcd.mutation.done = true
	return affected, err
}

// VocabClusterDeleteOne is the builder for deleting a single VocabCluster entity.
type VocabClusterDeleteOne struct {
	vcd *VocabClusterDelete
}

// Where appends a list predicates to the VocabClusterDelete builder.
func (vcdo *VocabClusterDeleteOne) Where(ps ...predicate.VocabCluster) *VocabClusterDeleteOne {
	vcdo.vcd.mutation.Where(ps...)
	return vcdo
}

// Exec executes the deletion query.
func (vcdo *VocabClusterDeleteOne) Exec(ctx context.Context) error {
	n, err := vcdo.vcd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{vocabcluster.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (vcdo *VocabClusterDeleteOne) ExecX(ctx context.Context) {
	if err := vcdo.Exec(ctx); err != nil {
		panic(err)
	}
}
