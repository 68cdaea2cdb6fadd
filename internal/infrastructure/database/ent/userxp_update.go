// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/predicate"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/userxp"
)

// UserXpUpdate is the builder for updating UserXp entities.
type UserXpUpdate struct {
	config
	hooks    []Hook
	mutation *UserXpMutation
}

// Where appends a list predicates to the UserXpUpdate builder.
func (uxu *UserXpUpdate) Where(ps ...predicate.UserXp) *UserXpUpdate {
	uxu.mutation.Where(ps...)
	return uxu
}

// SetUserID sets the "user_id" field.
func (uxu *UserXpUpdate) SetUserID(i int64) *UserXpUpdate {
	uxu.mutation.ResetUserID()
	uxu.mutation.SetUserID(i)
	return uxu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (uxu *UserXpUpdate) SetNillableUserID(i *int64) *UserXpUpdate {
	if i != nil {
		uxu.SetUserID(*i)
	}
	return uxu
}

// AddUserID adds i to the "user_id" field.
func (uxu *UserXpUpdate) AddUserID(i int64) *UserXpUpdate {
	uxu.mutation.AddUserID(i)
	return uxu
}

// SetXpTotal sets the "xp_total" field.
func (uxu *UserXpUpdate) SetXpTotal(i int64) *UserXpUpdate {
	uxu.mutation.ResetXpTotal()
	uxu.mutation.SetXpTotal(i)
	return uxu
}

// SetNillableXpTotal sets the "xp_total" field if the given value is not nil.
func (uxu *UserXpUpdate) SetNillableXpTotal(i *int64) *UserXpUpdate {
	if i != nil {
		uxu.SetXpTotal(*i)
	}
	return uxu
}

// AddXpTotal adds i to the "xp_total" field.
func (uxu *UserXpUpdate) AddXpTotal(i int64) *UserXpUpdate {
	uxu.mutation.AddXpTotal(i)
	return uxu
}

// SetLevel sets the "level" field.
func (uxu *UserXpUpdate) SetLevel(i int64) *UserXpUpdate {
	uxu.mutation.ResetLevel()
	uxu.mutation.SetLevel(i)
	return uxu
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (uxu *UserXpUpdate) SetNillableLevel(i *int64) *UserXpUpdate {
	if i != nil {
		uxu.SetLevel(*i)
	}
	return uxu
}

// AddLevel adds i to the "level" field.
func (uxu *UserXpUpdate) AddLevel(i int64) *UserXpUpdate {
	uxu.mutation.AddLevel(i)
	return uxu
}

// SetUpdatedAt sets the "updated_at" field.
func (uxu *UserXpUpdate) SetUpdatedAt(t time.Time) *UserXpUpdate {
	uxu.mutation.SetUpdatedAt(t)
	return uxu
}

// Mutation returns the UserXpMutation object of the builder.
func (uxu *UserXpUpdate) Mutation() *UserXpMutation {
	return uxu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (uxu *UserXpUpdate) Save(ctx context.Context) (int, error) {
	uxu.defaults()
	return withHooks(ctx, uxu.sqlSave, uxu.mutation, uxu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (uxu *UserXpUpdate) SaveX(ctx context.Context) int {
	affected, err := uxu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (uxu *UserXpUpdate) Exec(ctx context.Context) error {
	_, err := uxu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (uxu *UserXpUpdate) ExecX(ctx context.Context) {
	if err := uxu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (uxu *UserXpUpdate) defaults() {
	if _, ok := uxu.mutation.UpdatedAt(); !ok {
		v := userxp.UpdateDefaultUpdatedAt()
		uxu.mutation.SetUpdatedAt(v)
	}
}

func (uxu *UserXpUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(userxp.Table, userxp.Columns, sqlgraph.NewFieldSpec(userxp.FieldID, field.TypeInt))
	if ps := uxu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := uxu.mutation.UserID(); ok {
		_spec.SetField(userxp.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := uxu.mutation.AddedUserID(); ok {
		_spec.AddField(userxp.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := uxu.mutation.XpTotal(); ok {
		_spec.SetField(userxp.FieldXpTotal, field.TypeInt64, value)
	}
	if value, ok := uxu.mutation.AddedXpTotal(); ok {
		_spec.AddField(userxp.FieldXpTotal, field.TypeInt64, value)
	}
	if value, ok := uxu.mutation.Level(); ok {
		_spec.SetField(userxp.FieldLevel, field.TypeInt64, value)
	}
	if value, ok := uxu.mutation.AddedLevel(); ok {
		_spec.AddField(userxp.FieldLevel, field.TypeInt64, value)
	}
	if value, ok := uxu.mutation.UpdatedAt(); ok {
		_spec.SetField(userxp.FieldUpdatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, uxu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userxp.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	uxu.mutation.done = true
	return n, nil
}

// UserXpUpdateOne is the builder for updating a single UserXp entity.
type UserXpUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserXpMutation
}

// SetUserID sets the "user_id" field.
func (uxuo *UserXpUpdateOne) SetUserID(i int64) *UserXpUpdateOne {
	uxuo.mutation.ResetUserID()
	uxuo.mutation.SetUserID(i)
	return uxuo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (uxuo *UserXpUpdateOne) SetNillableUserID(i *int64) *UserXpUpdateOne {
	if i != nil {
		uxuo.SetUserID(*i)
	}
	return uxuo
}

// AddUserID adds i to the "user_id" field.
func (uxuo *UserXpUpdateOne) AddUserID(i int64) *UserXpUpdateOne {
	uxuo.mutation.AddUserID(i)
	return uxuo
}

// SetXpTotal sets the "xp_total" field.
func (uxuo *UserXpUpdateOne) SetXpTotal(i int64) *UserXpUpdateOne {
	uxuo.mutation.ResetXpTotal()
	uxuo.mutation.SetXpTotal(i)
	return uxuo
}

// SetNillableXpTotal sets the "xp_total" field if the given value is not nil.
func (uxuo *UserXpUpdateOne) SetNillableXpTotal(i *int64) *UserXpUpdateOne {
	if i != nil {
		uxuo.SetXpTotal(*i)
	}
	return uxuo
}

// AddXpTotal adds i to the "xp_total" field.
func (uxuo *UserXpUpdateOne) AddXpTotal(i int64) *UserXpUpdateOne {
	uxuo.mutation.AddXpTotal(i)
	return uxuo
}

// SetLevel sets the "level" field.
func (uxuo *UserXpUpdateOne) SetLevel(i int64) *UserXpUpdateOne {
	uxuo.mutation.ResetLevel()
	uxuo.mutation.SetLevel(i)
	return uxuo
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (uxuo *UserXpUpdateOne) SetNillableLevel(i *int64) *UserXpUpdateOne {
	if i != nil {
		uxuo.SetLevel(*i)
	}
	return uxuo
}

// AddLevel adds i to the "level" field.
func (uxuo *UserXpUpdateOne) AddLevel(i int64) *UserXpUpdateOne {
	uxuo.mutation.AddLevel(i)
	return uxuo
}

// SetUpdatedAt sets the "updated_at" field.
func (uxuo *UserXpUpdateOne) SetUpdatedAt(t time.Time) *UserXpUpdateOne {
	uxuo.mutation.SetUpdatedAt(t)
	return uxuo
}

// Mutation returns the UserXpMutation object of the builder.
func (uxuo *UserXpUpdateOne) Mutation() *UserXpMutation {
	return uxuo.mutation
}

// Where appends a list predicates to the UserXpUpdate builder.
func (uxuo *UserXpUpdateOne) Where(ps ...predicate.UserXp) *UserXpUpdateOne {
	uxuo.mutation.Where(ps...)
	return uxuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (uxuo *UserXpUpdateOne) Select(field string, fields ...string) *UserXpUpdateOne {
	uxuo.fields = append([]string{field}, fields...)
	return uxuo
}

// Save executes the query and returns the updated UserXp entity.
func (uxuo *UserXpUpdateOne) Save(ctx context.Context) (*UserXp, error) {
	uxuo.defaults()
	return withHooks(ctx, uxuo.sqlSave, uxuo.mutation, uxuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (uxuo *UserXpUpdateOne) SaveX(ctx context.Context) *UserXp {
	node, err := uxuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (uxuo *UserXpUpdateOne) Exec(ctx context.Context) error {
	_, err := uxuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (uxuo *UserXpUpdateOne) ExecX(ctx context.Context) {
	if err := uxuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (uxuo *UserXpUpdateOne) defaults() {
	if _, ok := uxuo.mutation.UpdatedAt(); !ok {
		v := userxp.UpdateDefaultUpdatedAt()
		uxuo.mutation.SetUpdatedAt(v)
	}
}

func (uxuo *UserXpUpdateOne) sqlSave(ctx context.Context) (_node *UserXp, err error) {
	_spec := sqlgraph.NewUpdateSpec(userxp.Table, userxp.Columns, sqlgraph.NewFieldSpec(userxp.FieldID, field.TypeInt))
	id, ok := uxuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserXp.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := uxuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userxp.FieldID)
		for _, f := range fields {
			if !userxp.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != userxp.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := uxuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := uxuo.mutation.UserID(); ok {
		_spec.SetField(userxp.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := uxuo.mutation.AddedUserID(); ok {
		_spec.AddField(userxp.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := uxuo.mutation.XpTotal(); ok {
		_spec.SetField(userxp.FieldXpTotal, field.TypeInt64, value)
	}
	if value, ok := uxuo.mutation.AddedXpTotal(); ok {
		_spec.AddField(userxp.FieldXpTotal, field.TypeInt64, value)
	}
	if value, ok := uxuo.mutation.Level(); ok {
		_spec.SetField(userxp.FieldLevel, field.TypeInt64, value)
	}
	if value, ok := uxuo.mutation.AddedLevel(); ok {
		_spec.AddField(userxp.FieldLevel, field.TypeInt64, value)
	}
	if value, ok := uxuo.mutation.UpdatedAt(); ok {
		_spec.SetField(userxp.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &UserXp{config: uxuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, uxuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userxp.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	uxuo.mutation.done = true
	return _node, nil
}
