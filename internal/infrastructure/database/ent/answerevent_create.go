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
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/answerevent"
)

// AnswerEventCreate is the builder for creating a AnswerEvent entity.
type AnswerEventCreate struct {
	config
	mutation *AnswerEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (aec *AnswerEventCreate) SetUserID(i int64) *AnswerEventCreate {
	aec.mutation.SetUserID(i)
	return aec
}

// SetKind sets the "kind" field.
func (aec *AnswerEventCreate) SetKind(s string) *AnswerEventCreate {
	aec.mutation.SetKind(s)
	return aec
}

// SetContextSlug sets the "context_slug" field.
func (aec *AnswerEventCreate) SetContextSlug(s string) *AnswerEventCreate {
	aec.mutation.SetContextSlug(s)
	return aec
}

// SetNillableContextSlug sets the "context_slug" field if the given value is not nil.
func (aec *AnswerEventCreate) SetNillableContextSlug(s *string) *AnswerEventCreate {
	if s != nil {
		aec.SetContextSlug(*s)
	}
	return aec
}

// SetSessionID sets the "session_id" field.
func (aec *AnswerEventCreate) SetSessionID(s string) *AnswerEventCreate {
	aec.mutation.SetSessionID(s)
	return aec
}

// SetPrompt sets the "prompt" field.
func (aec *AnswerEventCreate) SetPrompt(s string) *AnswerEventCreate {
	aec.mutation.SetPrompt(s)
	return aec
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (aec *AnswerEventCreate) SetNillablePrompt(s *string) *AnswerEventCreate {
	if s != nil {
		aec.SetPrompt(*s)
	}
	return aec
}

// SetExpected sets the "expected" field.
func (aec *AnswerEventCreate) SetExpected(s string) *AnswerEventCreate {
	aec.mutation.SetExpected(s)
	return aec
}

// SetNillableExpected sets the "expected" field if the given value is not nil.
func (aec *AnswerEventCreate) SetNillableExpected(s *string) *AnswerEventCreate {
	if s != nil {
		aec.SetExpected(*s)
	}
	return aec
}

// SetGiven sets the "given" field.
func (aec *AnswerEventCreate) SetGiven(s string) *AnswerEventCreate {
	aec.mutation.SetGiven(s)
	return aec
}

// SetNillableGiven sets the "given" field if the given value is not nil.
func (aec *AnswerEventCreate) SetNillableGiven(s *string) *AnswerEventCreate {
	if s != nil {
		aec.SetGiven(*s)
	}
	return aec
}

// SetCorrect sets the "correct" field.
func (aec *AnswerEventCreate) SetCorrect(b bool) *AnswerEventCreate {
	aec.mutation.SetCorrect(b)
	return aec
}

// SetCreatedAt sets the "created_at" field.
func (aec *AnswerEventCreate) SetCreatedAt(t time.Time) *AnswerEventCreate {
	aec.mutation.SetCreatedAt(t)
	return aec
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (aec *AnswerEventCreate) SetNillableCreatedAt(t *time.Time) *AnswerEventCreate {
	if t != nil {
		aec.SetCreatedAt(*t)
	}
	return aec
}

// Mutation returns the AnswerEventMutation object of the builder.
func (aec *AnswerEventCreate) Mutation() *AnswerEventMutation {
	return aec.mutation
}

// Save creates the AnswerEvent in the database.
func (aec *AnswerEventCreate) Save(ctx context.Context) (*AnswerEvent, error) {
	aec.defaults()
	return withHooks(ctx, aec.sqlSave, aec.mutation, aec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (aec *AnswerEventCreate) SaveX(ctx context.Context) *AnswerEvent {
	v, err := aec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (aec *AnswerEventCreate) Exec(ctx context.Context) error {
	_, err := aec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aec *AnswerEventCreate) ExecX(ctx context.Context) {
	if err := aec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (aec *AnswerEventCreate) defaults() {
	if _, ok := aec.mutation.ContextSlug(); !ok {
		v := answerevent.DefaultContextSlug
		aec.mutation.SetContextSlug(v)
	}
	if _, ok := aec.mutation.Prompt(); !ok {
		v := answerevent.DefaultPrompt
		aec.mutation.SetPrompt(v)
	}
	if _, ok := aec.mutation.Expected(); !ok {
		v := answerevent.DefaultExpected
		aec.mutation.SetExpected(v)
	}
	if _, ok := aec.mutation.Given(); !ok {
		v := answerevent.DefaultGiven
		aec.mutation.SetGiven(v)
	}
	if _, ok := aec.mutation.CreatedAt(); !ok {
		v := answerevent.DefaultCreatedAt()
		aec.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aec *AnswerEventCreate) check() error {
	if _, ok := aec.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "AnswerEvent.user_id"`)}
	}
	if _, ok := aec.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "AnswerEvent.kind"`)}
	}
	if v, ok := aec.mutation.Kind(); ok {
		if err := answerevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.kind": %w`, err)}
		}
	}
	if _, ok := aec.mutation.ContextSlug(); !ok {
		return &ValidationError{Name: "context_slug", err: errors.New(`ent: missing required field "AnswerEvent.context_slug"`)}
	}
	if _, ok := aec.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AnswerEvent.session_id"`)}
	}
	if v, ok := aec.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if _, ok := aec.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "AnswerEvent.prompt"`)}
	}
	if _, ok := aec.mutation.Expected(); !ok {
		return &ValidationError{Name: "expected", err: errors.New(`ent: missing required field "AnswerEvent.expected"`)}
	}
	if _, ok := aec.mutation.Given(); !ok {
		return &ValidationError{Name: "given", err: errors.New(`ent: missing required field "AnswerEvent.given"`)}
	}
	if _, ok := aec.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "AnswerEvent.correct"`)}
	}
	if _, ok := aec.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AnswerEvent.created_at"`)}
	}
	return nil
}

func (aec *AnswerEventCreate) sqlSave(ctx context.Context) (*AnswerEvent, error) {
	if err := aec.check(); err != nil {
		return nil, err
	}
	_node, _spec := aec.createSpec()
	if err := sqlgraph.CreateNode(ctx, aec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	aec.mutation.id = &_node.ID
	aec.mutation.done = true
	return _node, nil
}

func (aec *AnswerEventCreate) createSpec() (*AnswerEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AnswerEvent{config: aec.config}
		_spec = sqlgraph.NewCreateSpec(answerevent.Table, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = aec.conflict
	if value, ok := aec.mutation.UserID(); ok {
		_spec.SetField(answerevent.FieldUserID, field.TypeInt64, value)
		_node.UserID = value
	}
	if value, ok := aec.mutation.Kind(); ok {
		_spec.SetField(answerevent.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := aec.mutation.ContextSlug(); ok {
		_spec.SetField(answerevent.FieldContextSlug, field.TypeString, value)
		_node.ContextSlug = value
	}
	if value, ok := aec.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := aec.mutation.Prompt(); ok {
		_spec.SetField(answerevent.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := aec.mutation.Expected(); ok {
		_spec.SetField(answerevent.FieldExpected, field.TypeString, value)
		_node.Expected = value
	}
	if value, ok := aec.mutation.Given(); ok {
		_spec.SetField(answerevent.FieldGiven, field.TypeString, value)
		_node.Given = value
	}
	if value, ok := aec.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := aec.mutation.CreatedAt(); ok {
		_spec.SetField(answerevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AnswerEvent.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AnswerEventUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (aec *AnswerEventCreate) OnConflict(opts ...sql.ConflictOption) *AnswerEventUpsertOne {
	aec.conflict = opts
	return &AnswerEventUpsertOne{
		create: aec,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AnswerEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (aec *AnswerEventCreate) OnConflictColumns(columns ...string) *AnswerEventUpsertOne {
	aec.conflict = append(aec.conflict, sql.ConflictColumns(columns...))
	return &AnswerEventUpsertOne{
		create: aec,
	}
}

type (
	// AnswerEventUpsertOne is the builder for "upsert"-ing
	//  one AnswerEvent node.
	AnswerEventUpsertOne struct {
		create *AnswerEventCreate
	}

	// AnswerEventUpsert is the "OnConflict" setter.
	AnswerEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *AnswerEventUpsert) SetUserID(v int64) *AnswerEventUpsert {
	u.Set(answerevent.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AnswerEventUpsert) UpdateUserID() *AnswerEventUpsert {
	u.SetExcluded(answerevent.FieldUserID)
	return u
}

// AddUserID adds v to the "user_id" field.
func (u *AnswerEventUpsert) AddUserID(v int64) *AnswerEventUpsert {
	u.Add(answerevent.FieldUserID, v)
	return u
}

// SetKind sets the "kind" field.
func (u *AnswerEventUpsert) SetKind(v string) *AnswerEventUpsert {
	u.Set(answerevent.FieldKind, v)
	return u
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *AnswerEventUpsert) UpdateKind() *AnswerEventUpsert {
	u.SetExcluded(answerevent.FieldKind)
	return u
}

// SetContextSlug sets the "context_slug" field.
func (u *AnswerEventUpsert) SetContextSlug(v string) *AnswerEventUpsert {
	u.Set(answerevent.FieldContextSlug, v)
	return u
}

// UpdateContextSlug sets the "context_slug" field to the value that was provided on create.
func (u *AnswerEventUpsert) UpdateContextSlug() *AnswerEventUpsert {
	u.SetExcluded(answerevent.FieldContextSlug)
	return u
}

// SetSessionID sets the "session_id" field.
func (u *AnswerEventUpsert) SetSessionID(v string) *AnswerEventUpsert {
	u.Set(answerevent.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *AnswerEventUpsert) UpdateSessionID() *AnswerEventUpsert {
	u.SetExcluded(answerevent.FieldSessionID)
	return u
}

// SetPrompt sets the "prompt" field.
func (u *AnswerEventUpsert) SetPrompt(v string) *AnswerEventUpsert {
	u.Set(answerevent.FieldPrompt, v)
	return u
}

// UpdatePrompt sets the "prompt" field to the value that was provided on create.
func (u *AnswerEventUpsert) UpdatePrompt() *AnswerEventUpsert {
	u.SetExcluded(answerevent.FieldPrompt)
	return u
}

// SetExpected sets the "expected" field.
func (u *AnswerEventUpsert) SetExpected(v string) *AnswerEventUpsert {
	u.Set(answerevent.FieldExpected, v)
	return u
}

// UpdateExpected sets the "expected" field to the value that was provided on create.
func (u *AnswerEventUpsert) UpdateExpected() *AnswerEventUpsert {
	u.SetExcluded(answerevent.FieldExpected)
	return u
}

// SetGiven sets the "given" field.
func (u *AnswerEventUpsert) SetGiven(v string) *AnswerEventUpsert {
	u.Set(answerevent.FieldGiven, v)
	return u
}

// UpdateGiven sets the "given" field to the value that was provided on create.
func (u *AnswerEventUpsert) UpdateGiven() *AnswerEventUpsert {
	u.SetExcluded(answerevent.FieldGiven)
	return u
}

// SetCorrect sets the "correct" field.
func (u *AnswerEventUpsert) SetCorrect(v bool) *AnswerEventUpsert {
	u.Set(answerevent.FieldCorrect, v)
	return u
}

// UpdateCorrect sets the "correct" field to the value that was provided on create.
func (u *AnswerEventUpsert) UpdateCorrect() *AnswerEventUpsert {
	u.SetExcluded(answerevent.FieldCorrect)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.AnswerEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AnswerEventUpsertOne) UpdateNewValues() *AnswerEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(answerevent.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AnswerEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AnswerEventUpsertOne) Ignore() *AnswerEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AnswerEventUpsertOne) DoNothing() *AnswerEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AnswerEventCreate.OnConflict
// documentation for more info.
func (u *AnswerEventUpsertOne) Update(set func(*AnswerEventUpsert)) *AnswerEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AnswerEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *AnswerEventUpsertOne) SetUserID(v int64) *AnswerEventUpsertOne {
	return u.Update(func(s *AnswerEventUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *AnswerEventUpsertOne) AddUserID(v int64) *AnswerEventUpsertOne {
	return u.Update(func(s *AnswerEventUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AnswerEventUpsertOne) UpdateUserID() *AnswerEventUpsertOne {
	return u.Update(func(s *AnswerEventUpsert) {
		s.UpdateUserID()
	})
}

// SetKind sets the "kind" field.
func (u *AnswerEventUpsertOne) SetKind(v string) *AnswerEventUpsertOne {
	return u.Update(func(s *AnswerEventUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *AnswerEventUpsertOne) UpdateKind() *AnswerEventUpsertOne {
	return u.Update(func(s *AnswerEventUpsert) {
		s.UpdateKind()
	})
}

// SetContextSlug sets the "context_slug" field.
func (u *AnswerEventUpsertOne) SetContextSlug(v string) *AnswerEventUpsertOne {
	return u.Update(func(s *AnswerEventUpsert) {
		s.SetContextSlug(v)
	})
}

// UpdateContextSlug sets the "context_slug" field to the value that was provided on create.
func (u *AnswerEventUpsertOne) UpdateContextSlug() *AnswerEventUpsertOne {
	return u.Update(func(s *AnswerEventUpsert) {
		s.UpdateContextSlug()
	})
}

// SetSessionID sets the "session_id" field.
func (u *AnswerEventUpsertOne) SetSessionID(v string) *AnswerEventUpsertOne {
	return u.Update(func(s *AnswerEventUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *AnswerEventUpsertOne) UpdateSessionID() *AnswerEventUpsertOne {
	return u.Update(func(s *AnswerEventUpsert) {
		s.UpdateSessionID()
	})
}

// SetPrompt sets the "prompt" field.
func (u *AnswerEventUpsertOne) SetPrompt(v string) *AnswerEventUpsertOne {
	return u.Update(func(s *AnswerEventUpsert) {
		s.SetPrompt(v)
	})
}

// UpdatePrompt sets the "prompt" field to the value that was provided on create.
func (u *AnswerEventUpsertOne) UpdatePrompt() *AnswerEventUpsertOne {
	return u.Update(func(s *AnswerEventUpsert) {
		s.UpdatePrompt()
	})
}

// SetExpected sets the "expected" field.
func (u *AnswerEventUpsertOne) SetExpected(v string) *AnswerEventUpsertOne {
	return u.Update(func(s *AnswerEventUpsert) {
		s.SetExpected(v)
	})
}

// UpdateExpected sets the "expected" field to the value that was provided on create.
func (u *AnswerEventUpsertOne) UpdateExpected() *AnswerEventUpsertOne {
	return u.Update(func(s *AnswerEventUpsert) {
		s.UpdateExpected()
	})
}

// SetGiven sets the "given" field.
func (u *AnswerEventUpsertOne) SetGiven(v string) *AnswerEventUpsertOne {
	return u.Update(func(s *AnswerEventUpsert) {
		s.SetGiven(v)
	})
}

// UpdateGiven sets the "given" field to the value that was provided on create.
func (u *AnswerEventUpsertOne) UpdateGiven() *AnswerEventUpsertOne {
	return u.Update(func(s *AnswerEventUpsert) {
		s.UpdateGiven()
	})
}

// SetCorrect sets the "correct" field.
func (u *AnswerEventUpsertOne) SetCorrect(v bool) *AnswerEventUpsertOne {
	return u.Update(func(s *AnswerEventUpsert) {
		s.SetCorrect(v)
	})
}

// UpdateCorrect sets the "correct" field to the value that was provided on create.
func (u *AnswerEventUpsertOne) UpdateCorrect() *AnswerEventUpsertOne {
	return u.Update(func(s *AnswerEventUpsert) {
		s.UpdateCorrect()
	})
}

// Exec executes the query.
func (u *AnswerEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AnswerEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AnswerEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AnswerEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AnswerEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AnswerEventCreateBulk is the builder for creating many AnswerEvent entities in bulk.
type AnswerEventCreateBulk struct {
	config
	err      error
	builders []*AnswerEventCreate
	conflict []sql.ConflictOption
}

// Save creates the AnswerEvent entities in the database.
func (aecb *AnswerEventCreateBulk) Save(ctx context.Context) ([]*AnswerEvent, error) {
	if aecb.err != nil {
		return nil, aecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(aecb.builders))
	nodes := make([]*AnswerEvent, len(aecb.builders))
	mutators := make([]Mutator, len(aecb.builders))
	for i := range aecb.builders {
		func(i int, root context.Context) {
			builder := aecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnswerEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, aecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = aecb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, aecb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, aecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (aecb *AnswerEventCreateBulk) SaveX(ctx context.Context) []*AnswerEvent {
	v, err := aecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (aecb *AnswerEventCreateBulk) Exec(ctx context.Context) error {
	_, err := aecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aecb *AnswerEventCreateBulk) ExecX(ctx context.Context) {
	if err := aecb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AnswerEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AnswerEventUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (aecb *AnswerEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *AnswerEventUpsertBulk {
	aecb.conflict = opts
	return &AnswerEventUpsertBulk{
		create: aecb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AnswerEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (aecb *AnswerEventCreateBulk) OnConflictColumns(columns ...string) *AnswerEventUpsertBulk {
	aecb.conflict = append(aecb.conflict, sql.ConflictColumns(columns...))
	return &AnswerEventUpsertBulk{
		create: aecb,
	}
}

// AnswerEventUpsertBulk is the builder for "upsert"-ing
// a bulk of AnswerEvent nodes.
type AnswerEventUpsertBulk struct {
	create *AnswerEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AnswerEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AnswerEventUpsertBulk) UpdateNewValues() *AnswerEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(answerevent.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AnswerEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AnswerEventUpsertBulk) Ignore() *AnswerEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AnswerEventUpsertBulk) DoNothing() *AnswerEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AnswerEventCreateBulk.OnConflict
// documentation for more info.
func (u *AnswerEventUpsertBulk) Update(set func(*AnswerEventUpsert)) *AnswerEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AnswerEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *AnswerEventUpsertBulk) SetUserID(v int64) *AnswerEventUpsertBulk {
	return u.Update(func(s *AnswerEventUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *AnswerEventUpsertBulk) AddUserID(v int64) *AnswerEventUpsertBulk {
	return u.Update(func(s *AnswerEventUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AnswerEventUpsertBulk) UpdateUserID() *AnswerEventUpsertBulk {
	return u.Update(func(s *AnswerEventUpsert) {
		s.UpdateUserID()
	})
}

// SetKind sets the "kind" field.
func (u *AnswerEventUpsertBulk) SetKind(v string) *AnswerEventUpsertBulk {
	return u.Update(func(s *AnswerEventUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *AnswerEventUpsertBulk) UpdateKind() *AnswerEventUpsertBulk {
	return u.Update(func(s *AnswerEventUpsert) {
		s.UpdateKind()
	})
}

// SetContextSlug sets the "context_slug" field.
func (u *AnswerEventUpsertBulk) SetContextSlug(v string) *AnswerEventUpsertBulk {
	return u.Update(func(s *AnswerEventUpsert) {
		s.SetContextSlug(v)
	})
}

// UpdateContextSlug sets the "context_slug" field to the value that was provided on create.
func (u *AnswerEventUpsertBulk) UpdateContextSlug() *AnswerEventUpsertBulk {
	return u.Update(func(s *AnswerEventUpsert) {
		s.UpdateContextSlug()
	})
}

// SetSessionID sets the "session_id" field.
func (u *AnswerEventUpsertBulk) SetSessionID(v string) *AnswerEventUpsertBulk {
	return u.Update(func(s *AnswerEventUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *AnswerEventUpsertBulk) UpdateSessionID() *AnswerEventUpsertBulk {
	return u.Update(func(s *AnswerEventUpsert) {
		s.UpdateSessionID()
	})
}

// SetPrompt sets the "prompt" field.
func (u *AnswerEventUpsertBulk) SetPrompt(v string) *AnswerEventUpsertBulk {
	return u.Update(func(s *AnswerEventUpsert) {
		s.SetPrompt(v)
	})
}

// UpdatePrompt sets the "prompt" field to the value that was provided on create.
func (u *AnswerEventUpsertBulk) UpdatePrompt() *AnswerEventUpsertBulk {
	return u.Update(func(s *AnswerEventUpsert) {
		s.UpdatePrompt()
	})
}

// SetExpected sets the "expected" field.
func (u *AnswerEventUpsertBulk) SetExpected(v string) *AnswerEventUpsertBulk {
	return u.Update(func(s *AnswerEventUpsert) {
		s.SetExpected(v)
	})
}

// UpdateExpected sets the "expected" field to the value that was provided on create.
func (u *AnswerEventUpsertBulk) UpdateExpected() *AnswerEventUpsertBulk {
	return u.Update(func(s *AnswerEventUpsert) {
		s.UpdateExpected()
	})
}

// SetGiven sets the "given" field.
func (u *AnswerEventUpsertBulk) SetGiven(v string) *AnswerEventUpsertBulk {
	return u.Update(func(s *AnswerEventUpsert) {
		s.SetGiven(v)
	})
}

// UpdateGiven sets the "given" field to the value that was provided on create.
func (u *AnswerEventUpsertBulk) UpdateGiven() *AnswerEventUpsertBulk {
	return u.Update(func(s *AnswerEventUpsert) {
		s.UpdateGiven()
	})
}

// SetCorrect sets the "correct" field.
func (u *AnswerEventUpsertBulk) SetCorrect(v bool) *AnswerEventUpsertBulk {
	return u.Update(func(s *AnswerEventUpsert) {
		s.SetCorrect(v)
	})
}

// UpdateCorrect sets the "correct" field to the value that was provided on create.
func (u *AnswerEventUpsertBulk) UpdateCorrect() *AnswerEventUpsertBulk {
	return u.Update(func(s *AnswerEventUpsert) {
		s.UpdateCorrect()
	})
}

// Exec executes the query.
func (u *AnswerEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AnswerEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AnswerEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AnswerEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
