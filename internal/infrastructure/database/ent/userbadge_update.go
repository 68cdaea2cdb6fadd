// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/predicate"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/userbadge"
)

// UserBadgeUpdate is the builder for updating UserBadge entities.
type UserBadgeUpdate struct {
	config
	hooks    []Hook
	mutation *UserBadgeMutation
}

// Where appends a list predicates to the UserBadgeUpdate builder.
func (ubu *UserBadgeUpdate) Where(ps ...predicate.UserBadge) *UserBadgeUpdate {
	ubu.mutation.Where(ps...)
	return ubu
}

// SetUserID sets the "user_id" field.
func (ubu *UserBadgeUpdate) SetUserID(i int64) *UserBadgeUpdate {
	ubu.mutation.ResetUserID()
	ubu.mutation.SetUserID(i)
	return ubu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (ubu *UserBadgeUpdate) SetNillableUserID(i *int64) *UserBadgeUpdate {
	if i != nil {
		ubu.SetUserID(*i)
	}
	return ubu
}

// AddUserID adds i to the "user_id" field.
func (ubu *UserBadgeUpdate) AddUserID(i int64) *UserBadgeUpdate {
	ubu.mutation.AddUserID(i)
	return ubu
}

// SetBadgeSlug sets the "badge_slug" field.
func (ubu *UserBadgeUpdate) SetBadgeSlug(s string) *UserBadgeUpdate {
	ubu.mutation.SetBadgeSlug(s)
	return ubu
}

// SetNillableBadgeSlug sets the "badge_slug" field if the given value is not nil.
func (ubu *UserBadgeUpdate) SetNillableBadgeSlug(s *string) *UserBadgeUpdate {
	if s != nil {
		ubu.SetBadgeSlug(*s)
	}
	return ubu
}

// Mutation returns the UserBadgeMutation object of the builder.
func (ubu *UserBadgeUpdate) Mutation() *UserBadgeMutation {
	return ubu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (ubu *UserBadgeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, ubu.sqlSave, ubu.mutation, ubu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ubu *UserBadgeUpdate) SaveX(ctx context.Context) int {
	affected, err := ubu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (ubu *UserBadgeUpdate) Exec(ctx context.Context) error {
	_, err := ubu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ubu *UserBadgeUpdate) ExecX(ctx context.Context) {
	if err := ubu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ubu *UserBadgeUpdate) check() error {
	if v, ok := ubu.mutation.BadgeSlug(); ok {
		if err := userbadge.BadgeSlugValidator(v); err != nil {
			return &ValidationError{Name: "badge_slug", err: fmt.Errorf(`ent: validator failed for field "UserBadge.badge_slug": %w`, err)}
		}
	}
	return nil
}

func (ubu *UserBadgeUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := ubu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(userbadge.Table, userbadge.Columns, sqlgraph.NewFieldSpec(userbadge.FieldID, field.TypeInt))
	if ps := ubu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ubu.mutation.UserID(); ok {
		_spec.SetField(userbadge.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := ubu.mutation.AddedUserID(); ok {
		_spec.AddField(userbadge.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := ubu.mutation.BadgeSlug(); ok {
		_spec.SetField(userbadge.FieldBadgeSlug, field.TypeString, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, ubu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userbadge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	ubu.mutation.done = true
	return n, nil
}

// UserBadgeUpdateOne is the builder for updating a single UserBadge entity.
type UserBadgeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserBadgeMutation
}

// SetUserID sets the "user_id" field.
func (ubuo *UserBadgeUpdateOne) SetUserID(i int64) *UserBadgeUpdateOne {
	ubuo.mutation.ResetUserID()
	ubuo.mutation.SetUserID(i)
	return ubuo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (ubuo *UserBadgeUpdateOne) SetNillableUserID(i *int64) *UserBadgeUpdateOne {
	if i != nil {
		ubuo.SetUserID(*i)
	}
	return ubuo
}

// AddUserID adds i to the "user_id" field.
func (ubuo *UserBadgeUpdateOne) AddUserID(i int64) *UserBadgeUpdateOne {
	ubuo.mutation.AddUserID(i)
	return ubuo
}

// SetBadgeSlug sets the "badge_slug" field.
func (ubuo *UserBadgeUpdateOne) SetBadgeSlug(s string) *UserBadgeUpdateOne {
	ubuo.mutation.SetBadgeSlug(s)
	return ubuo
}

// SetNillableBadgeSlug sets the "badge_slug" field if the given value is not nil.
func (ubuo *UserBadgeUpdateOne) SetNillableBadgeSlug(s *string) *UserBadgeUpdateOne {
	if s != nil {
		ubuo.SetBadgeSlug(*s)
	}
	return ubuo
}

// Mutation returns the UserBadgeMutation object of the builder.
func (ubuo *UserBadgeUpdateOne) Mutation() *UserBadgeMutation {
	return ubuo.mutation
}

// Where appends a list predicates to the UserBadgeUpdate builder.
func (ubuo *UserBadgeUpdateOne) Where(ps ...predicate.UserBadge) *UserBadgeUpdateOne {
	ubuo.mutation.Where(ps...)
	return ubuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (ubuo *UserBadgeUpdateOne) Select(field string, fields ...string) *UserBadgeUpdateOne {
	ubuo.fields = append([]string{field}, fields...)
	return ubuo
}

// Save executes the query and returns the updated UserBadge entity.
func (ubuo *UserBadgeUpdateOne) Save(ctx context.Context) (*UserBadge, error) {
	return withHooks(ctx, ubuo.sqlSave, ubuo.mutation, ubuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ubuo *UserBadgeUpdateOne) SaveX(ctx context.Context) *UserBadge {
	node, err := ubuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (ubuo *UserBadgeUpdateOne) Exec(ctx context.Context) error {
	_, err := ubuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ubuo *UserBadgeUpdateOne) ExecX(ctx context.Context) {
	if err := ubuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ubuo *UserBadgeUpdateOne) check() error {
	if v, ok := ubuo.mutation.BadgeSlug(); ok {
		if err := userbadge.BadgeSlugValidator(v); err != nil {
			return &ValidationError{Name: "badge_slug", err: fmt.Errorf(`ent: validator failed for field "UserBadge.badge_slug": %w`, err)}
		}
	}
	return nil
}

func (ubuo *UserBadgeUpdateOne) sqlSave(ctx context.Context) (_node *UserBadge, err error) {
	if err := ubuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userbadge.Table, userbadge.Columns, sqlgraph.NewFieldSpec(userbadge.FieldID, field.TypeInt))
	id, ok := ubuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserBadge.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := ubuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userbadge.FieldID)
		for _, f := range fields {
			if !userbadge.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != userbadge.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := ubuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ubuo.mutation.UserID(); ok {
		_spec.SetField(userbadge.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := ubuo.mutation.AddedUserID(); ok {
		_spec.AddField(userbadge.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := ubuo.mutation.BadgeSlug(); ok {
		_spec.SetField(userbadge.FieldBadgeSlug, field.TypeString, value)
	}
	_node = &UserBadge{config: ubuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, ubuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userbadge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	ubuo.mutation.done = true
	return _node, nil
}
