// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/answerevent"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/predicate"
)

// AnswerEventUpdate is the builder for updating AnswerEvent entities.
type AnswerEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerEventMutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (aeu *AnswerEventUpdate) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdate {
	aeu.mutation.Where(ps...)
	return aeu
}

// SetUserID sets the "user_id" field.
func (aeu *AnswerEventUpdate) SetUserID(i int64) *AnswerEventUpdate {
	aeu.mutation.ResetUserID()
	aeu.mutation.SetUserID(i)
	return aeu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (aeu *AnswerEventUpdate) SetNillableUserID(i *int64) *AnswerEventUpdate {
	if i != nil {
		aeu.SetUserID(*i)
	}
	return aeu
}

// AddUserID adds i to the "user_id" field.
func (aeu *AnswerEventUpdate) AddUserID(i int64) *AnswerEventUpdate {
	aeu.mutation.AddUserID(i)
	return aeu
}

// SetKind sets the "kind" field.
func (aeu *AnswerEventUpdate) SetKind(s string) *AnswerEventUpdate {
	aeu.mutation.SetKind(s)
	return aeu
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (aeu *AnswerEventUpdate) SetNillableKind(s *string) *AnswerEventUpdate {
	if s != nil {
		aeu.SetKind(*s)
	}
	return aeu
}

// SetContextSlug sets the "context_slug" field.
func (aeu *AnswerEventUpdate) SetContextSlug(s string) *AnswerEventUpdate {
	aeu.mutation.SetContextSlug(s)
	return aeu
}

// SetNillableContextSlug sets the "context_slug" field if the given value is not nil.
func (aeu *AnswerEventUpdate) SetNillableContextSlug(s *string) *AnswerEventUpdate {
	if s != nil {
		aeu.SetContextSlug(*s)
	}
	return aeu
}

// SetSessionID sets the "session_id" field.
func (aeu *AnswerEventUpdate) SetSessionID(s string) *AnswerEventUpdate {
	aeu.mutation.SetSessionID(s)
	return aeu
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (aeu *AnswerEventUpdate) SetNillableSessionID(s *string) *AnswerEventUpdate {
	if s != nil {
		aeu.SetSessionID(*s)
	}
	return aeu
}

// SetPrompt sets the "prompt" field.
func (aeu *AnswerEventUpdate) SetPrompt(s string) *AnswerEventUpdate {
	aeu.mutation.SetPrompt(s)
	return aeu
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (aeu *AnswerEventUpdate) SetNillablePrompt(s *string) *AnswerEventUpdate {
	if s != nil {
		aeu.SetPrompt(*s)
	}
	return aeu
}

// SetExpected sets the "expected" field.
func (aeu *AnswerEventUpdate) SetExpected(s string) *AnswerEventUpdate {
	aeu.mutation.SetExpected(s)
	return aeu
}

// SetNillableExpected sets the "expected" field if the given value is not nil.
func (aeu *AnswerEventUpdate) SetNillableExpected(s *string) *AnswerEventUpdate {
	if s != nil {
		aeu.SetExpected(*s)
	}
	return aeu
}

// SetGiven sets the "given" field.
func (aeu *AnswerEventUpdate) SetGiven(s string) *AnswerEventUpdate {
	aeu.mutation.SetGiven(s)
	return aeu
}

// SetNillableGiven sets the "given" field if the given value is not nil.
func (aeu *AnswerEventUpdate) SetNillableGiven(s *string) *AnswerEventUpdate {
	if s != nil {
		aeu.SetGiven(*s)
	}
	return aeu
}

// SetCorrect sets the "correct" field.
func (aeu *AnswerEventUpdate) SetCorrect(b bool) *AnswerEventUpdate {
	aeu.mutation.SetCorrect(b)
	return aeu
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (aeu *AnswerEventUpdate) SetNillableCorrect(b *bool) *AnswerEventUpdate {
	if b != nil {
		aeu.SetCorrect(*b)
	}
	return aeu
}

// Mutation returns the AnswerEventMutation object of the builder.
func (aeu *AnswerEventUpdate) Mutation() *AnswerEventMutation {
	return aeu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (aeu *AnswerEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, aeu.sqlSave, aeu.mutation, aeu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aeu *AnswerEventUpdate) SaveX(ctx context.Context) int {
	affected, err := aeu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (aeu *AnswerEventUpdate) Exec(ctx context.Context) error {
	_, err := aeu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aeu *AnswerEventUpdate) ExecX(ctx context.Context) {
	if err := aeu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aeu *AnswerEventUpdate) check() error {
	if v, ok := aeu.mutation.Kind(); ok {
		if err := answerevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.kind": %w`, err)}
		}
	}
	if v, ok := aeu.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (aeu *AnswerEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := aeu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	if ps := aeu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := aeu.mutation.UserID(); ok {
		_spec.SetField(answerevent.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := aeu.mutation.AddedUserID(); ok {
		_spec.AddField(answerevent.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := aeu.mutation.Kind(); ok {
		_spec.SetField(answerevent.FieldKind, field.TypeString, value)
	}
	if value, ok := aeu.mutation.ContextSlug(); ok {
		_spec.SetField(answerevent.FieldContextSlug, field.TypeString, value)
	}
	if value, ok := aeu.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := aeu.mutation.Prompt(); ok {
		_spec.SetField(answerevent.FieldPrompt, field.TypeString, value)
	}
	if value, ok := aeu.mutation.Expected(); ok {
		_spec.SetField(answerevent.FieldExpected, field.TypeString, value)
	}
	if value, ok := aeu.mutation.Given(); ok {
		_spec.SetField(answerevent.FieldGiven, field.TypeString, value)
	}
	if value, ok := aeu.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, aeu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	aeu.mutation.done = true
	return n, nil
}

// AnswerEventUpdateOne is the builder for updating a single AnswerEvent entity.
type AnswerEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerEventMutation
}

// SetUserID sets the "user_id" field.
func (aeuo *AnswerEventUpdateOne) SetUserID(i int64) *AnswerEventUpdateOne {
	aeuo.mutation.ResetUserID()
	aeuo.mutation.SetUserID(i)
	return aeuo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (aeuo *AnswerEventUpdateOne) SetNillableUserID(i *int64) *AnswerEventUpdateOne {
	if i != nil {
		aeuo.SetUserID(*i)
	}
	return aeuo
}

// AddUserID adds i to the "user_id" field.
func (aeuo *AnswerEventUpdateOne) AddUserID(i int64) *AnswerEventUpdateOne {
	aeuo.mutation.AddUserID(i)
	return aeuo
}

// SetKind sets the "kind" field.
func (aeuo *AnswerEventUpdateOne) SetKind(s string) *AnswerEventUpdateOne {
	aeuo.mutation.SetKind(s)
	return aeuo
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (aeuo *AnswerEventUpdateOne) SetNillableKind(s *string) *AnswerEventUpdateOne {
	if s != nil {
		aeuo.SetKind(*s)
	}
	return aeuo
}

// SetContextSlug sets the "context_slug" field.
func (aeuo *AnswerEventUpdateOne) SetContextSlug(s string) *AnswerEventUpdateOne {
	aeuo.mutation.SetContextSlug(s)
	return aeuo
}

// SetNillableContextSlug sets the "context_slug" field if the given value is not nil.
func (aeuo *AnswerEventUpdateOne) SetNillableContextSlug(s *string) *AnswerEventUpdateOne {
	if s != nil {
		aeuo.SetContextSlug(*s)
	}
	return aeuo
}

// SetSessionID sets the "session_id" field.
func (aeuo *AnswerEventUpdateOne) SetSessionID(s string) *AnswerEventUpdateOne {
	aeuo.mutation.SetSessionID(s)
	return aeuo
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (aeuo *AnswerEventUpdateOne) SetNillableSessionID(s *string) *AnswerEventUpdateOne {
	if s != nil {
		aeuo.SetSessionID(*s)
	}
	return aeuo
}

// SetPrompt sets the "prompt" field.
func (aeuo *AnswerEventUpdateOne) SetPrompt(s string) *AnswerEventUpdateOne {
	aeuo.mutation.SetPrompt(s)
	return aeuo
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (aeuo *AnswerEventUpdateOne) SetNillablePrompt(s *string) *AnswerEventUpdateOne {
	if s != nil {
		aeuo.SetPrompt(*s)
	}
	return aeuo
}

// SetExpected sets the "expected" field.
func (aeuo *AnswerEventUpdateOne) SetExpected(s string) *AnswerEventUpdateOne {
	aeuo.mutation.SetExpected(s)
	return aeuo
}

// SetNillableExpected sets the "expected" field if the given value is not nil.
func (aeuo *AnswerEventUpdateOne) SetNillableExpected(s *string) *AnswerEventUpdateOne {
	if s != nil {
		aeuo.SetExpected(*s)
	}
	return aeuo
}

// SetGiven sets the "given" field.
func (aeuo *AnswerEventUpdateOne) SetGiven(s string) *AnswerEventUpdateOne {
	aeuo.mutation.SetGiven(s)
	return aeuo
}

// SetNillableGiven sets the "given" field if the given value is not nil.
func (aeuo *AnswerEventUpdateOne) SetNillableGiven(s *string) *AnswerEventUpdateOne {
	if s != nil {
		aeuo.SetGiven(*s)
	}
	return aeuo
}

// SetCorrect sets the "correct" field.
func (aeuo *AnswerEventUpdateOne) SetCorrect(b bool) *AnswerEventUpdateOne {
	aeuo.mutation.SetCorrect(b)
	return aeuo
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (aeuo *AnswerEventUpdateOne) SetNillableCorrect(b *bool) *AnswerEventUpdateOne {
	if b != nil {
		aeuo.SetCorrect(*b)
	}
	return aeuo
}

// Mutation returns the AnswerEventMutation object of the builder.
func (aeuo *AnswerEventUpdateOne) Mutation() *AnswerEventMutation {
	return aeuo.mutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (aeuo *AnswerEventUpdateOne) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdateOne {
	aeuo.mutation.Where(ps...)
	return aeuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (aeuo *AnswerEventUpdateOne) Select(field string, fields ...string) *AnswerEventUpdateOne {
	aeuo.fields = append([]string{field}, fields...)
	return aeuo
}

// Save executes the query and returns the updated AnswerEvent entity.
func (aeuo *AnswerEventUpdateOne) Save(ctx context.Context) (*AnswerEvent, error) {
	return withHooks(ctx, aeuo.sqlSave, aeuo.mutation, aeuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aeuo *AnswerEventUpdateOne) SaveX(ctx context.Context) *AnswerEvent {
	node, err := aeuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (aeuo *AnswerEventUpdateOne) Exec(ctx context.Context) error {
	_, err := aeuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aeuo *AnswerEventUpdateOne) ExecX(ctx context.Context) {
	if err := aeuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aeuo *AnswerEventUpdateOne) check() error {
	if v, ok := aeuo.mutation.Kind(); ok {
		if err := answerevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.kind": %w`, err)}
		}
	}
	if v, ok := aeuo.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (aeuo *AnswerEventUpdateOne) sqlSave(ctx context.Context) (_node *AnswerEvent, err error) {
	if err := aeuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	id, ok := aeuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnswerEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := aeuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answerevent.FieldID)
		for _, f := range fields {
			if !answerevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answerevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := aeuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := aeuo.mutation.UserID(); ok {
		_spec.SetField(answerevent.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := aeuo.mutation.AddedUserID(); ok {
		_spec.AddField(answerevent.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := aeuo.mutation.Kind(); ok {
		_spec.SetField(answerevent.FieldKind, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.ContextSlug(); ok {
		_spec.SetField(answerevent.FieldContextSlug, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.Prompt(); ok {
		_spec.SetField(answerevent.FieldPrompt, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.Expected(); ok {
		_spec.SetField(answerevent.FieldExpected, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.Given(); ok {
		_spec.SetField(answerevent.FieldGiven, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	_node = &AnswerEvent{config: aeuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, aeuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	aeuo.mutation.done = true
	return _node, nil
}
