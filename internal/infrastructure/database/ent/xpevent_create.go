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
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/xpevent"
)

// XpEventCreate is the builder for creating a XpEvent entity.
type XpEventCreate struct {
	config
	mutation *XpEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (xec *XpEventCreate) SetUserID(i int64) *XpEventCreate {
	xec.mutation.SetUserID(i)
	return xec
}

// SetSource sets the "source" field.
func (xec *XpEventCreate) SetSource(s string) *XpEventCreate {
	xec.mutation.SetSource(s)
	return xec
}

// SetSourceSlug sets the "source_slug" field.
func (xec *XpEventCreate) SetSourceSlug(s string) *XpEventCreate {
	xec.mutation.SetSourceSlug(s)
	return xec
}

// SetNillableSourceSlug sets the "source_slug" field if the given value is not nil.
func (xec *XpEventCreate) SetNillableSourceSlug(s *string) *XpEventCreate {
	if s != nil {
		xec.SetSourceSlug(*s)
	}
	return xec
}

// SetSessionID sets the "session_id" field.
func (xec *XpEventCreate) SetSessionID(s string) *XpEventCreate {
	xec.mutation.SetSessionID(s)
	return xec
}

// SetDedupeKey sets the "dedupe_key" field.
func (xec *XpEventCreate) SetDedupeKey(s string) *XpEventCreate {
	xec.mutation.SetDedupeKey(s)
	return xec
}

// SetAwardedOn sets the "awarded_on" field.
func (xec *XpEventCreate) SetAwardedOn(s string) *XpEventCreate {
	xec.mutation.SetAwardedOn(s)
	return xec
}

// SetXp sets the "xp" field.
func (xec *XpEventCreate) SetXp(i int64) *XpEventCreate {
	xec.mutation.SetXp(i)
	return xec
}

// SetPerfect sets the "perfect" field.
func (xec *XpEventCreate) SetPerfect(b bool) *XpEventCreate {
	xec.mutation.SetPerfect(b)
	return xec
}

// SetNillablePerfect sets the "perfect" field if the given value is not nil.
func (xec *XpEventCreate) SetNillablePerfect(b *bool) *XpEventCreate {
	if b != nil {
		xec.SetPerfect(*b)
	}
	return xec
}

// SetMeta sets the "meta" field.
func (xec *XpEventCreate) SetMeta(m map[string]string) *XpEventCreate {
	xec.mutation.SetMeta(m)
	return xec
}

// SetCreatedAt sets the "created_at" field.
func (xec *XpEventCreate) SetCreatedAt(t time.Time) *XpEventCreate {
	xec.mutation.SetCreatedAt(t)
	return xec
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (xec *XpEventCreate) SetNillableCreatedAt(t *time.Time) *XpEventCreate {
	if t != nil {
		xec.SetCreatedAt(*t)
	}
	return xec
}

// Mutation returns the XpEventMutation object of the builder.
func (xec *XpEventCreate) Mutation() *XpEventMutation {
	return xec.mutation
}

// Save creates the XpEvent in the database.
func (xec *XpEventCreate) Save(ctx context.Context) (*XpEvent, error) {
	xec.defaults()
	return withHooks(ctx, xec.sqlSave, xec.mutation, xec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (xec *XpEventCreate) SaveX(ctx context.Context) *XpEvent {
	v, err := xec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (xec *XpEventCreate) Exec(ctx context.Context) error {
	_, err := xec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (xec *XpEventCreate) ExecX(ctx context.Context) {
	if err := xec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (xec *XpEventCreate) defaults() {
	if _, ok := xec.mutation.SourceSlug(); !ok {
		v := xpevent.DefaultSourceSlug
		xec.mutation.SetSourceSlug(v)
	}
	if _, ok := xec.mutation.Perfect(); !ok {
		v := xpevent.DefaultPerfect
		xec.mutation.SetPerfect(v)
	}
	if _, ok := xec.mutation.Meta(); !ok {
		v := xpevent.DefaultMeta
		xec.mutation.SetMeta(v)
	}
	if _, ok := xec.mutation.CreatedAt(); !ok {
		v := xpevent.DefaultCreatedAt()
		xec.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (xec *XpEventCreate) check() error {
	if _, ok := xec.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "XpEvent.user_id"`)}
	}
	if _, ok := xec.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "XpEvent.source"`)}
	}
	if v, ok := xec.mutation.Source(); ok {
		if err := xpevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "XpEvent.source": %w`, err)}
		}
	}
	if _, ok := xec.mutation.SourceSlug(); !ok {
		return &ValidationError{Name: "source_slug", err: errors.New(`ent: missing required field "XpEvent.source_slug"`)}
	}
	if _, ok := xec.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "XpEvent.session_id"`)}
	}
	if v, ok := xec.mutation.SessionID(); ok {
		if err := xpevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "XpEvent.session_id": %w`, err)}
		}
	}
	if _, ok := xec.mutation.DedupeKey(); !ok {
		return &ValidationError{Name: "dedupe_key", err: errors.New(`ent: missing required field "XpEvent.dedupe_key"`)}
	}
	if v, ok := xec.mutation.DedupeKey(); ok {
		if err := xpevent.DedupeKeyValidator(v); err != nil {
			return &ValidationError{Name: "dedupe_key", err: fmt.Errorf(`ent: validator failed for field "XpEvent.dedupe_key": %w`, err)}
		}
	}
	if _, ok := xec.mutation.AwardedOn(); !ok {
		return &ValidationError{Name: "awarded_on", err: errors.New(`ent: missing required field "XpEvent.awarded_on"`)}
	}
	if v, ok := xec.mutation.AwardedOn(); ok {
		if err := xpevent.AwardedOnValidator(v); err != nil {
			return &ValidationError{Name: "awarded_on", err: fmt.Errorf(`ent: validator failed for field "XpEvent.awarded_on": %w`, err)}
		}
	}
	if _, ok := xec.mutation.Xp(); !ok {
		return &ValidationError{Name: "xp", err: errors.New(`ent: missing required field "XpEvent.xp"`)}
	}
	if _, ok := xec.mutation.Perfect(); !ok {
		return &ValidationError{Name: "perfect", err: errors.New(`ent: missing required field "XpEvent.perfect"`)}
	}
	if _, ok := xec.mutation.Meta(); !ok {
		return &ValidationError{Name: "meta", err: errors.New(`ent: missing required field "XpEvent.meta"`)}
	}
	if _, ok := xec.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "XpEvent.created_at"`)}
	}
	return nil
}

func (xec *XpEventCreate) sqlSave(ctx context.Context) (*XpEvent, error) {
	if err := xec.check(); err != nil {
		return nil, err
	}
	_node, _spec := xec.createSpec()
	if err := sqlgraph.CreateNode(ctx, xec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	xec.mutation.id = &_node.ID
	xec.mutation.done = true
	return _node, nil
}

func (xec *XpEventCreate) createSpec() (*XpEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &XpEvent{config: xec.config}
		_spec = sqlgraph.NewCreateSpec(xpevent.Table, sqlgraph.NewFieldSpec(xpevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = xec.conflict
	if value, ok := xec.mutation.UserID(); ok {
		_spec.SetField(xpevent.FieldUserID, field.TypeInt64, value)
		_node.UserID = value
	}
	if value, ok := xec.mutation.Source(); ok {
		_spec.SetField(xpevent.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := xec.mutation.SourceSlug(); ok {
		_spec.SetField(xpevent.FieldSourceSlug, field.TypeString, value)
		_node.SourceSlug = value
	}
	if value, ok := xec.mutation.SessionID(); ok {
		_spec.SetField(xpevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := xec.mutation.DedupeKey(); ok {
		_spec.SetField(xpevent.FieldDedupeKey, field.TypeString, value)
		_node.DedupeKey = value
	}
	if value, ok := xec.mutation.AwardedOn(); ok {
		_spec.SetField(xpevent.FieldAwardedOn, field.TypeString, value)
		_node.AwardedOn = value
	}
	if value, ok := xec.mutation.Xp(); ok {
		_spec.SetField(xpevent.FieldXp, field.TypeInt64, value)
		_node.Xp = value
	}
	if value, ok := xec.mutation.Perfect(); ok {
		_spec.SetField(xpevent.FieldPerfect, field.TypeBool, value)
		_node.Perfect = value
	}
	if value, ok := xec.mutation.Meta(); ok {
		_spec.SetField(xpevent.FieldMeta, field.TypeJSON, value)
		_node.Meta = value
	}
	if value, ok := xec.mutation.CreatedAt(); ok {
		_spec.SetField(xpevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.XpEvent.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.XpEventUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (xec *XpEventCreate) OnConflict(opts ...sql.ConflictOption) *XpEventUpsertOne {
	xec.conflict = opts
	return &XpEventUpsertOne{
		create: xec,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.XpEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (xec *XpEventCreate) OnConflictColumns(columns ...string) *XpEventUpsertOne {
	xec.conflict = append(xec.conflict, sql.ConflictColumns(columns...))
	return &XpEventUpsertOne{
		create: xec,
	}
}

type (
	// XpEventUpsertOne is the builder for "upsert"-ing
	//  one XpEvent node.
	XpEventUpsertOne struct {
		create *XpEventCreate
	}

	// XpEventUpsert is the "OnConflict" setter.
	XpEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *XpEventUpsert) SetUserID(v int64) *XpEventUpsert {
	u.Set(xpevent.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *XpEventUpsert) UpdateUserID() *XpEventUpsert {
	u.SetExcluded(xpevent.FieldUserID)
	return u
}

// AddUserID adds v to the "user_id" field.
func (u *XpEventUpsert) AddUserID(v int64) *XpEventUpsert {
	u.Add(xpevent.FieldUserID, v)
	return u
}

// SetSource sets the "source" field.
func (u *XpEventUpsert) SetSource(v string) *XpEventUpsert {
	u.Set(xpevent.FieldSource, v)
	return u
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *XpEventUpsert) UpdateSource() *XpEventUpsert {
	u.SetExcluded(xpevent.FieldSource)
	return u
}

// SetSourceSlug sets the "source_slug" field.
func (u *XpEventUpsert) SetSourceSlug(v string) *XpEventUpsert {
	u.Set(xpevent.FieldSourceSlug, v)
	return u
}

// UpdateSourceSlug sets the "source_slug" field to the value that was provided on create.
func (u *XpEventUpsert) UpdateSourceSlug() *XpEventUpsert {
	u.SetExcluded(xpevent.FieldSourceSlug)
	return u
}

// SetSessionID sets the "session_id" field.
func (u *XpEventUpsert) SetSessionID(v string) *XpEventUpsert {
	u.Set(xpevent.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *XpEventUpsert) UpdateSessionID() *XpEventUpsert {
	u.SetExcluded(xpevent.FieldSessionID)
	return u
}

// SetDedupeKey sets the "dedupe_key" field.
func (u *XpEventUpsert) SetDedupeKey(v string) *XpEventUpsert {
	u.Set(xpevent.FieldDedupeKey, v)
	return u
}

// UpdateDedupeKey sets the "dedupe_key" field to the value that was provided on create.
func (u *XpEventUpsert) UpdateDedupeKey() *XpEventUpsert {
	u.SetExcluded(xpevent.FieldDedupeKey)
	return u
}

// SetAwardedOn sets the "awarded_on" field.
func (u *XpEventUpsert) SetAwardedOn(v string) *XpEventUpsert {
	u.Set(xpevent.FieldAwardedOn, v)
	return u
}

// UpdateAwardedOn sets the "awarded_on" field to the value that was provided on create.
func (u *XpEventUpsert) UpdateAwardedOn() *XpEventUpsert {
	u.SetExcluded(xpevent.FieldAwardedOn)
	return u
}

// SetXp sets the "xp" field.
func (u *XpEventUpsert) SetXp(v int64) *XpEventUpsert {
	u.Set(xpevent.FieldXp, v)
	return u
}

// UpdateXp sets the "xp" field to the value that was provided on create.
func (u *XpEventUpsert) UpdateXp() *XpEventUpsert {
	u.SetExcluded(xpevent.FieldXp)
	return u
}

// AddXp adds v to the "xp" field.
func (u *XpEventUpsert) AddXp(v int64) *XpEventUpsert {
	u.Add(xpevent.FieldXp, v)
	return u
}

// SetPerfect sets the "perfect" field.
func (u *XpEventUpsert) SetPerfect(v bool) *XpEventUpsert {
	u.Set(xpevent.FieldPerfect, v)
	return u
}

// UpdatePerfect sets the "perfect" field to the value that was provided on create.
func (u *XpEventUpsert) UpdatePerfect() *XpEventUpsert {
	u.SetExcluded(xpevent.FieldPerfect)
	return u
}

// SetMeta sets the "meta" field.
func (u *XpEventUpsert) SetMeta(v map[string]string) *XpEventUpsert {
	u.Set(xpevent.FieldMeta, v)
	return u
}

// UpdateMeta sets the "meta" field to the value that was provided on create.
func (u *XpEventUpsert) UpdateMeta() *XpEventUpsert {
	u.SetExcluded(xpevent.FieldMeta)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.XpEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *XpEventUpsertOne) UpdateNewValues() *XpEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(xpevent.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.XpEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *XpEventUpsertOne) Ignore() *XpEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *XpEventUpsertOne) DoNothing() *XpEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the XpEventCreate.OnConflict
// documentation for more info.
func (u *XpEventUpsertOne) Update(set func(*XpEventUpsert)) *XpEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&XpEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *XpEventUpsertOne) SetUserID(v int64) *XpEventUpsertOne {
	return u.Update(func(s *XpEventUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *XpEventUpsertOne) AddUserID(v int64) *XpEventUpsertOne {
	return u.Update(func(s *XpEventUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *XpEventUpsertOne) UpdateUserID() *XpEventUpsertOne {
	return u.Update(func(s *XpEventUpsert) {
		s.UpdateUserID()
	})
}

// SetSource sets the "source" field.
func (u *XpEventUpsertOne) SetSource(v string) *XpEventUpsertOne {
	return u.Update(func(s *XpEventUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *XpEventUpsertOne) UpdateSource() *XpEventUpsertOne {
	return u.Update(func(s *XpEventUpsert) {
		s.UpdateSource()
	})
}

// SetSourceSlug sets the "source_slug" field.
func (u *XpEventUpsertOne) SetSourceSlug(v string) *XpEventUpsertOne {
	return u.Update(func(s *XpEventUpsert) {
		s.SetSourceSlug(v)
	})
}

// UpdateSourceSlug sets the "source_slug" field to the value that was provided on create.
func (u *XpEventUpsertOne) UpdateSourceSlug() *XpEventUpsertOne {
	return u.Update(func(s *XpEventUpsert) {
		s.UpdateSourceSlug()
	})
}

// SetSessionID sets the "session_id" field.
func (u *XpEventUpsertOne) SetSessionID(v string) *XpEventUpsertOne {
	return u.Update(func(s *XpEventUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *XpEventUpsertOne) UpdateSessionID() *XpEventUpsertOne {
	return u.Update(func(s *XpEventUpsert) {
		s.UpdateSessionID()
	})
}

// SetDedupeKey sets the "dedupe_key" field.
func (u *XpEventUpsertOne) SetDedupeKey(v string) *XpEventUpsertOne {
	return u.Update(func(s *XpEventUpsert) {
		s.SetDedupeKey(v)
	})
}

// UpdateDedupeKey sets the "dedupe_key" field to the value that was provided on create.
func (u *XpEventUpsertOne) UpdateDedupeKey() *XpEventUpsertOne {
	return u.Update(func(s *XpEventUpsert) {
		s.UpdateDedupeKey()
	})
}

// SetAwardedOn sets the "awarded_on" field.
func (u *XpEventUpsertOne) SetAwardedOn(v string) *XpEventUpsertOne {
	return u.Update(func(s *XpEventUpsert) {
		s.SetAwardedOn(v)
	})
}

// UpdateAwardedOn sets the "awarded_on" field to the value that was provided on create.
func (u *XpEventUpsertOne) UpdateAwardedOn() *XpEventUpsertOne {
	return u.Update(func(s *XpEventUpsert) {
		s.UpdateAwardedOn()
	})
}

// SetXp sets the "xp" field.
func (u *XpEventUpsertOne) SetXp(v int64) *XpEventUpsertOne {
	return u.Update(func(s *XpEventUpsert) {
		s.SetXp(v)
	})
}

// AddXp adds v to the "xp" field.
func (u *XpEventUpsertOne) AddXp(v int64) *XpEventUpsertOne {
	return u.Update(func(s *XpEventUpsert) {
		s.AddXp(v)
	})
}

// UpdateXp sets the "xp" field to the value that was provided on create.
func (u *XpEventUpsertOne) UpdateXp() *XpEventUpsertOne {
	return u.Update(func(s *XpEventUpsert) {
		s.UpdateXp()
	})
}

// SetPerfect sets the "perfect" field.
func (u *XpEventUpsertOne) SetPerfect(v bool) *XpEventUpsertOne {
	return u.Update(func(s *XpEventUpsert) {
		s.SetPerfect(v)
	})
}

// UpdatePerfect sets the "perfect" field to the value that was provided on create.
func (u *XpEventUpsertOne) UpdatePerfect() *XpEventUpsertOne {
	return u.Update(func(s *XpEventUpsert) {
		s.UpdatePerfect()
	})
}

// SetMeta sets the "meta" field.
func (u *XpEventUpsertOne) SetMeta(v map[string]string) *XpEventUpsertOne {
	return u.Update(func(s *XpEventUpsert) {
		s.SetMeta(v)
	})
}

// UpdateMeta sets the "meta" field to the value that was provided on create.
func (u *XpEventUpsertOne) UpdateMeta() *XpEventUpsertOne {
	return u.Update(func(s *XpEventUpsert) {
		s.UpdateMeta()
	})
}

// Exec executes the query.
func (u *XpEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for XpEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *XpEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *XpEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *XpEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// XpEventCreateBulk is the builder for creating many XpEvent entities in bulk.
type XpEventCreateBulk struct {
	config
	err      error
	builders []*XpEventCreate
	conflict []sql.ConflictOption
}

// Save creates the XpEvent entities in the database.
func (xecb *XpEventCreateBulk) Save(ctx context.Context) ([]*XpEvent, error) {
	if xecb.err != nil {
		return nil, xecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(xecb.builders))
	nodes := make([]*XpEvent, len(xecb.builders))
	mutators := make([]Mutator, len(xecb.builders))
	for i := range xecb.builders {
		func(i int, root context.Context) {
			builder := xecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*XpEventMutation)
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
					_, err = mutators[i+1].Mutate(root, xecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = xecb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, xecb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, xecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (xecb *XpEventCreateBulk) SaveX(ctx context.Context) []*XpEvent {
	v, err := xecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (xecb *XpEventCreateBulk) Exec(ctx context.Context) error {
	_, err := xecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (xecb *XpEventCreateBulk) ExecX(ctx context.Context) {
	if err := xecb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.XpEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.XpEventUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (xecb *XpEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *XpEventUpsertBulk {
	xecb.conflict = opts
	return &XpEventUpsertBulk{
		create: xecb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.XpEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (xecb *XpEventCreateBulk) OnConflictColumns(columns ...string) *XpEventUpsertBulk {
	xecb.conflict = append(xecb.conflict, sql.ConflictColumns(columns...))
	return &XpEventUpsertBulk{
		create: xecb,
	}
}

// XpEventUpsertBulk is the builder for "upsert"-ing
// a bulk of XpEvent nodes.
type XpEventUpsertBulk struct {
	create *XpEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.XpEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *XpEventUpsertBulk) UpdateNewValues() *XpEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(xpevent.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.XpEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *XpEventUpsertBulk) Ignore() *XpEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *XpEventUpsertBulk) DoNothing() *XpEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the XpEventCreateBulk.OnConflict
// documentation for more info.
func (u *XpEventUpsertBulk) Update(set func(*XpEventUpsert)) *XpEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&XpEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *XpEventUpsertBulk) SetUserID(v int64) *XpEventUpsertBulk {
	return u.Update(func(s *XpEventUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *XpEventUpsertBulk) AddUserID(v int64) *XpEventUpsertBulk {
	return u.Update(func(s *XpEventUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *XpEventUpsertBulk) UpdateUserID() *XpEventUpsertBulk {
	return u.Update(func(s *XpEventUpsert) {
		s.UpdateUserID()
	})
}

// SetSource sets the "source" field.
func (u *XpEventUpsertBulk) SetSource(v string) *XpEventUpsertBulk {
	return u.Update(func(s *XpEventUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *XpEventUpsertBulk) UpdateSource() *XpEventUpsertBulk {
	return u.Update(func(s *XpEventUpsert) {
		s.UpdateSource()
	})
}

// SetSourceSlug sets the "source_slug" field.
func (u *XpEventUpsertBulk) SetSourceSlug(v string) *XpEventUpsertBulk {
	return u.Update(func(s *XpEventUpsert) {
		s.SetSourceSlug(v)
	})
}

// UpdateSourceSlug sets the "source_slug" field to the value that was provided on create.
func (u *XpEventUpsertBulk) UpdateSourceSlug() *XpEventUpsertBulk {
	return u.Update(func(s *XpEventUpsert) {
		s.UpdateSourceSlug()
	})
}

// SetSessionID sets the "session_id" field.
func (u *XpEventUpsertBulk) SetSessionID(v string) *XpEventUpsertBulk {
	return u.Update(func(s *XpEventUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *XpEventUpsertBulk) UpdateSessionID() *XpEventUpsertBulk {
	return u.Update(func(s *XpEventUpsert) {
		s.UpdateSessionID()
	})
}

// SetDedupeKey sets the "dedupe_key" field.
func (u *XpEventUpsertBulk) SetDedupeKey(v string) *XpEventUpsertBulk {
	return u.Update(func(s *XpEventUpsert) {
		s.SetDedupeKey(v)
	})
}

// UpdateDedupeKey sets the "dedupe_key" field to the value that was provided on create.
func (u *XpEventUpsertBulk) UpdateDedupeKey() *XpEventUpsertBulk {
	return u.Update(func(s *XpEventUpsert) {
		s.UpdateDedupeKey()
	})
}

// SetAwardedOn sets the "awarded_on" field.
func (u *XpEventUpsertBulk) SetAwardedOn(v string) *XpEventUpsertBulk {
	return u.Update(func(s *XpEventUpsert) {
		s.SetAwardedOn(v)
	})
}

// UpdateAwardedOn sets the "awarded_on" field to the value that was provided on create.
func (u *XpEventUpsertBulk) UpdateAwardedOn() *XpEventUpsertBulk {
	return u.Update(func(s *XpEventUpsert) {
		s.UpdateAwardedOn()
	})
}

// SetXp sets the "xp" field.
func (u *XpEventUpsertBulk) SetXp(v int64) *XpEventUpsertBulk {
	return u.Update(func(s *XpEventUpsert) {
		s.SetXp(v)
	})
}

// AddXp adds v to the "xp" field.
func (u *XpEventUpsertBulk) AddXp(v int64) *XpEventUpsertBulk {
	return u.Update(func(s *XpEventUpsert) {
		s.AddXp(v)
	})
}

// UpdateXp sets the "xp" field to the value that was provided on create.
func (u *XpEventUpsertBulk) UpdateXp() *XpEventUpsertBulk {
	return u.Update(func(s *XpEventUpsert) {
		s.UpdateXp()
	})
}

// SetPerfect sets the "perfect" field.
func (u *XpEventUpsertBulk) SetPerfect(v bool) *XpEventUpsertBulk {
	return u.Update(func(s *XpEventUpsert) {
		s.SetPerfect(v)
	})
}

// UpdatePerfect sets the "perfect" field to the value that was provided on create.
func (u *XpEventUpsertBulk) UpdatePerfect() *XpEventUpsertBulk {
	return u.Update(func(s *XpEventUpsert) {
		s.UpdatePerfect()
	})
}

// SetMeta sets the "meta" field.
func (u *XpEventUpsertBulk) SetMeta(v map[string]string) *XpEventUpsertBulk {
	return u.Update(func(s *XpEventUpsert) {
		s.SetMeta(v)
	})
}

// UpdateMeta sets the "meta" field to the value that was provided on create.
func (u *XpEventUpsertBulk) UpdateMeta() *XpEventUpsertBulk {
	return u.Update(func(s *XpEventUpsert) {
		s.UpdateMeta()
	})
}

// Exec executes the query.
func (u *XpEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the XpEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for XpEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *XpEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
