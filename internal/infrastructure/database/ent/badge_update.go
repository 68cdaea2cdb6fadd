// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/badge"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/predicate"
)

// BadgeUpdate is the builder for updating Badge entities.
type BadgeUpdate struct {
	config
	hooks    []Hook
	mutation *BadgeMutation
}

// Where appends a list predicates to the BadgeUpdate builder.
func (bu *BadgeUpdate) Where(ps ...predicate.Badge) *BadgeUpdate {
	bu.mutation.Where(ps...)
	return bu
}

// SetSlug sets the "slug" field.
func (bu *BadgeUpdate) SetSlug(s string) *BadgeUpdate {
	bu.mutation.SetSlug(s)
	return bu
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (bu *BadgeUpdate) SetNillableSlug(s *string) *BadgeUpdate {
	if s != nil {
		bu.SetSlug(*s)
	}
	return bu
}

// SetName sets the "name" field.
func (bu *BadgeUpdate) SetName(s string) *BadgeUpdate {
	bu.mutation.SetName(s)
	return bu
}

// SetNillableName sets the "name" field if the given value is not nil.
func (bu *BadgeUpdate) SetNillableName(s *string) *BadgeUpdate {
	if s != nil {
		bu.SetName(*s)
	}
	return bu
}

// SetDescription sets the "description" field.
func (bu *BadgeUpdate) SetDescription(s string) *BadgeUpdate {
	bu.mutation.SetDescription(s)
	return bu
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (bu *BadgeUpdate) SetNillableDescription(s *string) *BadgeUpdate {
	if s != nil {
		bu.SetDescription(*s)
	}
	return bu
}

// SetIcon sets the "icon" field.
func (bu *BadgeUpdate) SetIcon(s string) *BadgeUpdate {
	bu.mutation.SetIcon(s)
	return bu
}

// SetNillableIcon sets the "icon" field if the given value is not nil.
func (bu *BadgeUpdate) SetNillableIcon(s *string) *BadgeUpdate {
	if s != nil {
		bu.SetIcon(*s)
	}
	return bu
}

// Mutation returns the BadgeMutation object of the builder.
func (bu *BadgeUpdate) Mutation() *BadgeMutation {
	return bu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (bu *BadgeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, bu.sqlSave, bu.mutation, bu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (bu *BadgeUpdate) SaveX(ctx context.Context) int {
	affected, err := bu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (bu *BadgeUpdate) Exec(ctx context.Context) error {
	_, err := bu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (bu *BadgeUpdate) ExecX(ctx context.Context) {
	if err := bu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (bu *BadgeUpdate) check() error {
	if v, ok := bu.mutation.Slug(); ok {
		if err := badge.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Badge.slug": %w`, err)}
		}
	}
	if v, ok := bu.mutation.Name(); ok {
		if err := badge.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Badge.name": %w`, err)}
		}
	}
	return nil
}

func (bu *BadgeUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := bu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(badge.Table, badge.Columns, sqlgraph.NewFieldSpec(badge.FieldID, field.TypeInt))
	if ps := bu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := bu.mutation.Slug(); ok {
		_spec.SetField(badge.FieldSlug, field.TypeString, value)
	}
	if value, ok := bu.mutation.Name(); ok {
		_spec.SetField(badge.FieldName, field.TypeString, value)
	}
	if value, ok := bu.mutation.Description(); ok {
		_spec.SetField(badge.FieldDescription, field.TypeString, value)
	}
	if value, ok := bu.mutation.Icon(); ok {
		_spec.SetField(badge.FieldIcon, field.TypeString, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, bu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{badge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	bu.mutation.done = true
	return n, nil
}

// BadgeUpdateOne is the builder for updating a single Badge entity.
type BadgeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BadgeMutation
}

// SetSlug sets the "slug" field.
func (buo *BadgeUpdateOne) SetSlug(s string) *BadgeUpdateOne {
	buo.mutation.SetSlug(s)
	return buo
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (buo *BadgeUpdateOne) SetNillableSlug(s *string) *BadgeUpdateOne {
	if s != nil {
		buo.SetSlug(*s)
	}
	return buo
}

// SetName sets the "name" field.
func (buo *BadgeUpdateOne) SetName(s string) *BadgeUpdateOne {
	buo.mutation.SetName(s)
	return buo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (buo *BadgeUpdateOne) SetNillableName(s *string) *BadgeUpdateOne {
	if s != nil {
		buo.SetName(*s)
	}
	return buo
}

// SetDescription sets the "description" field.
func (buo *BadgeUpdateOne) SetDescription(s string) *BadgeUpdateOne {
	buo.mutation.SetDescription(s)
	return buo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (buo *BadgeUpdateOne) SetNillableDescription(s *string) *BadgeUpdateOne {
	if s != nil {
		buo.SetDescription(*s)
	}
	return buo
}

// SetIcon sets the "icon" field.
func (buo *BadgeUpdateOne) SetIcon(s string) *BadgeUpdateOne {
	buo.mutation.SetIcon(s)
	return buo
}

// SetNillableIcon sets the "icon" field if the given value is not nil.
func (buo *BadgeUpdateOne) SetNillableIcon(s *string) *BadgeUpdateOne {
	if s != nil {
		buo.SetIcon(*s)
	}
	return buo
}

// Mutation returns the BadgeMutation object of the builder.
func (buo *BadgeUpdateOne) Mutation() *BadgeMutation {
	return buo.mutation
}

// Where appends a list predicates to the BadgeUpdate builder.
func (buo *BadgeUpdateOne) Where(ps ...predicate.Badge) *BadgeUpdateOne {
	buo.mutation.Where(ps...)
	return buo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (buo *BadgeUpdateOne) Select(field string, fields ...string) *BadgeUpdateOne {
	buo.fields = append([]string{field}, fields...)
	return buo
}

// Save executes the query and returns the updated Badge entity.
func (buo *BadgeUpdateOne) Save(ctx context.Context) (*Badge, error) {
	return withHooks(ctx, buo.sqlSave, buo.mutation, buo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (buo *BadgeUpdateOne) SaveX(ctx context.Context) *Badge {
	node, err := buo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (buo *BadgeUpdateOne) Exec(ctx context.Context) error {
	_, err := buo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (buo *BadgeUpdateOne) ExecX(ctx context.Context) {
	if err := buo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (buo *BadgeUpdateOne) check() error {
	if v, ok := buo.mutation.Slug(); ok {
		if err := badge.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Badge.slug": %w`, err)}
		}
	}
	if v, ok := buo.mutation.Name(); ok {
		if err := badge.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Badge.name": %w`, err)}
		}
	}
	return nil
}

func (buo *BadgeUpdateOne) sqlSave(ctx context.Context) (_node *Badge, err error) {
	if err := buo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(badge.Table, badge.Columns, sqlgraph.NewFieldSpec(badge.FieldID, field.TypeInt))
	id, ok := buo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Badge.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := buo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, badge.FieldID)
		for _, f := range fields {
			if !badge.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != badge.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := buo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := buo.mutation.Slug(); ok {
		_spec.SetField(badge.FieldSlug, field.TypeString, value)
	}
	if value, ok := buo.mutation.Name(); ok {
		_spec.SetField(badge.FieldName, field.TypeString, value)
	}
	if value, ok := buo.mutation.Description(); ok {
		_spec.SetField(badge.FieldDescription, field.TypeString, value)
	}
	if value, ok := buo.mutation.Icon(); ok {
		_spec.SetField(badge.FieldIcon, field.TypeString, value)
	}
	_node = &Badge{config: buo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, buo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{badge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	buo.mutation.done = true
	return _node, nil
}
