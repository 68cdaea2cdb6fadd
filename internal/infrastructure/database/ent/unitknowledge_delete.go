// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/predicate"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/unitknowledge"
)

// UnitKnowledgeDelete is the builder for deleting a UnitKnowledge entity.
type UnitKnowledgeDelete struct {
	config
	hooks    []Hook
	mutation *UnitKnowledgeMutation
}

// Where appends a list predicates to the UnitKnowledgeDelete builder.
func (ukd *UnitKnowledgeDelete) Where(ps ...predicate.UnitKnowledge) *UnitKnowledgeDelete {
	ukd.mutation.Where(ps...)
	return ukd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (ukd *UnitKnowledgeDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, ukd.sqlExec, ukd.mutation, ukd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (ukd *UnitKnowledgeDelete) ExecX(ctx context.Context) int {
	n, err := ukd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (ukd *UnitKnowledgeDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(unitknowledge.Table, sqlgraph.NewFieldSpec(unitknowledge.FieldID, field.TypeInt))
	if ps := ukd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, ukd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	ukd.mutation.done = true
	return affected, err
}

// UnitKnowledgeDeleteOne is the builder for deleting a single UnitKnowledge entity.
type UnitKnowledgeDeleteOne struct {
	ukd *UnitKnowledgeDelete
}

// Where appends a list predicates to the UnitKnowledgeDelete builder.
func (ukdo *UnitKnowledgeDeleteOne) Where(ps ...predicate.UnitKnowledge) *UnitKnowledgeDeleteOne {
	ukdo.ukd.mutation.Where(ps...)
	return ukdo
}

// Exec executes the deletion query.
func (ukdo *UnitKnowledgeDeleteOne) Exec(ctx context.Context) error {
	n, err := ukdo.ukd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{unitknowledge.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (ukdo *UnitKnowledgeDeleteOne) ExecX(ctx context.Context) {
	if err := ukdo.Exec(ctx); err != nil {
		panic(err)
	}
}
