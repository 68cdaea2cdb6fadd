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
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/userbadge"
)

// UserBadgeCreate is the builder for creating a UserBadge entity.
type UserBadgeCreate struct {
	config
	mutation *UserBadgeMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (ubc *UserBadgeCreate) SetUserID(i int64) *UserBadgeCreate {
	ubc.mutation.SetUserID(i)
	return ubc
}

// SetBadgeSlug sets the "badge_slug" field.
func (ubc *UserBadgeCreate) SetBadgeSlug(s string) *UserBadgeCreate {
	ubc.mutation.SetBadgeSlug(s)
	return ubc
}

// SetAwardedAt sets the "awarded_at" field.
func (ubc *UserBadgeCreate) SetAwardedAt(t time.Time) *UserBadgeCreate {
	ubc.mutation.SetAwardedAt(t)
	return ubc
}

// SetNillableAwardedAt sets the "awarded_at" field if the given value is not nil.
func (ubc *UserBadgeCreate) SetNillableAwardedAt(t *time.Time) *UserBadgeCreate {
	if t != nil {
		ubc.SetAwardedAt(*t)
	}
	return ubc
}

// Mutation returns the UserBadgeMutation object of the builder.
func (ubc *UserBadgeCreate) Mutation() *UserBadgeMutation {
	return ubc.mutation
}

// Save creates the UserBadge in the database.
func (ubc *UserBadgeCreate) Save(ctx context.Context) (*UserBadge, error) {
	ubc.defaults()
	return withHooks(ctx, ubc.sqlSave, ubc.mutation, ubc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ubc *UserBadgeCreate) SaveX(ctx context.Context) *UserBadge {
	v, err := ubc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ubc *UserBadgeCreate) Exec(ctx context.Context) error {
	_, err := ubc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ubc *UserBadgeCreate) ExecX(ctx context.Context) {
	if err := ubc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ubc *UserBadgeCreate) defaults() {
	if _, ok := ubc.mutation.AwardedAt(); !ok {
		v := userbadge.DefaultAwardedAt()
		ubc.mutation.SetAwardedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ubc *UserBadgeCreate) check() error {
	if _, ok := ubc.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UserBadge.user_id"`)}
	}
	if _, ok := ubc.mutation.BadgeSlug(); !ok {
		return &ValidationError{Name: "badge_slug", err: errors.New(`ent: missing required field "UserBadge.badge_slug"`)}
	}
	if v, ok := ubc.mutation.BadgeSlug(); ok {
		if err := userbadge.BadgeSlugValidator(v); err != nil {
			return &ValidationError{Name: "badge_slug", err: fmt.Errorf(`ent: validator failed for field "UserBadge.badge_slug": %w`, err)}
		}
	}
	if _, ok := ubc.mutation.AwardedAt(); !ok {
		return &ValidationError{Name: "awarded_at", err: errors.New(`ent: missing required field "UserBadge.awarded_at"`)}
	}
	return nil
}

func (ubc *UserBadgeCreate) sqlSave(ctx context.Context) (*UserBadge, error) {
	if err := ubc.check(); err != nil {
		return nil, err
	}
	_node, _spec := ubc.createSpec()
	if err := sqlgraph.CreateNode(ctx, ubc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	ubc.mutation.id = &_node.ID
	ubc.mutation.done = true
	return _node, nil
}

func (ubc *UserBadgeCreate) createSpec() (*UserBadge, *sqlgraph.CreateSpec) {
	var (
		_node = &UserBadge{config: ubc.config}
		_spec = sqlgraph.NewCreateSpec(userbadge.Table, sqlgraph.NewFieldSpec(userbadge.FieldID, field.TypeInt))
	)
	_spec.OnConflict = ubc.conflict
	if value, ok := ubc.mutation.UserID(); ok {
		_spec.SetField(userbadge.FieldUserID, field.TypeInt64, value)
		_node.UserID = value
	}
	if value, ok := ubc.mutation.BadgeSlug(); ok {
		_spec.SetField(userbadge.FieldBadgeSlug, field.TypeString, value)
		_node.BadgeSlug = value
	}
	if value, ok := ubc.mutation.AwardedAt(); ok {
		_spec.SetField(userbadge.FieldAwardedAt, field.TypeTime, value)
		_node.AwardedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UserBadge.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserBadgeUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (ubc *UserBadgeCreate) OnConflict(opts ...sql.ConflictOption) *UserBadgeUpsertOne {
	ubc.conflict = opts
	return &UserBadgeUpsertOne{
		create: ubc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UserBadge.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (ubc *UserBadgeCreate) OnConflictColumns(columns ...string) *UserBadgeUpsertOne {
	ubc.conflict = append(ubc.conflict, sql.ConflictColumns(columns...))
	return &UserBadgeUpsertOne{
		create: ubc,
	}
}

type (
	// UserBadgeUpsertOne is the builder for "upsert"-ing
	//  one UserBadge node.
	UserBadgeUpsertOne struct {
		create *UserBadgeCreate
	}

	// UserBadgeUpsert is the "OnConflict" setter.
	UserBadgeUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *UserBadgeUpsert) SetUserID(v int64) *UserBadgeUpsert {
	u.Set(userbadge.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *UserBadgeUpsert) UpdateUserID() *UserBadgeUpsert {
	u.SetExcluded(userbadge.FieldUserID)
	return u
}

// AddUserID adds v to the "user_id" field.
func (u *UserBadgeUpsert) AddUserID(v int64) *UserBadgeUpsert {
	u.Add(userbadge.FieldUserID, v)
	return u
}

// SetBadgeSlug sets the "badge_slug" field.
func (u *UserBadgeUpsert) SetBadgeSlug(v string) *UserBadgeUpsert {
	u.Set(userbadge.FieldBadgeSlug, v)
	return u
}

// UpdateBadgeSlug sets the "badge_slug" field to the value that was provided on create.
func (u *UserBadgeUpsert) UpdateBadgeSlug() *UserBadgeUpsert {
	u.SetExcluded(userbadge.FieldBadgeSlug)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.UserBadge.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *UserBadgeUpsertOne) UpdateNewValues() *UserBadgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.AwardedAt(); exists {
			s.SetIgnore(userbadge.FieldAwardedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UserBadge.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *UserBadgeUpsertOne) Ignore() *UserBadgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserBadgeUpsertOne) DoNothing() *UserBadgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserBadgeCreate.OnConflict
// documentation for more info.
func (u *UserBadgeUpsertOne) Update(set func(*UserBadgeUpsert)) *UserBadgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserBadgeUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *UserBadgeUpsertOne) SetUserID(v int64) *UserBadgeUpsertOne {
	return u.Update(func(s *UserBadgeUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *UserBadgeUpsertOne) AddUserID(v int64) *UserBadgeUpsertOne {
	return u.Update(func(s *UserBadgeUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *UserBadgeUpsertOne) UpdateUserID() *UserBadgeUpsertOne {
	return u.Update(func(s *UserBadgeUpsert) {
		s.UpdateUserID()
	})
}

// SetBadgeSlug sets the "badge_slug" field.
func (u *UserBadgeUpsertOne) SetBadgeSlug(v string) *UserBadgeUpsertOne {
	return u.Update(func(s *UserBadgeUpsert) {
		s.SetBadgeSlug(v)
	})
}

// UpdateBadgeSlug sets the "badge_slug" field to the value that was provided on create.
func (u *UserBadgeUpsertOne) UpdateBadgeSlug() *UserBadgeUpsertOne {
	return u.Update(func(s *UserBadgeUpsert) {
		s.UpdateBadgeSlug()
	})
}

// Exec executes the query.
func (u *UserBadgeUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UserBadgeCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserBadgeUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *UserBadgeUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *UserBadgeUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// UserBadgeCreateBulk is the builder for creating many UserBadge entities in bulk.
type UserBadgeCreateBulk struct {
	config
	err      error
	builders []*UserBadgeCreate
	conflict []sql.ConflictOption
}

// Save creates the UserBadge entities in the database.
func (ubcb *UserBadgeCreateBulk) Save(ctx context.Context) ([]*UserBadge, error) {
	if ubcb.err != nil {
		return nil, ubcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(ubcb.builders))
	nodes := make([]*UserBadge, len(ubcb.builders))
	mutators := make([]Mutator, len(ubcb.builders))
	for i := range ubcb.builders {
		func(i int, root context.Context) {
			builder := ubcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserBadgeMutation)
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
					_, err = mutators[i+1].Mutate(root, ubcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = ubcb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, ubcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, ubcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (ubcb *UserBadgeCreateBulk) SaveX(ctx context.Context) []*UserBadge {
	v, err := ubcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ubcb *UserBadgeCreateBulk) Exec(ctx context.Context) error {
	_, err := ubcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ubcb *UserBadgeCreateBulk) ExecX(ctx context.Context) {
	if err := ubcb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UserBadge.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserBadgeUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (ubcb *UserBadgeCreateBulk) OnConflict(opts ...sql.ConflictOption) *UserBadgeUpsertBulk {
	ubcb.conflict = opts
	return &UserBadgeUpsertBulk{
		create: ubcb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UserBadge.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (ubcb *UserBadgeCreateBulk) OnConflictColumns(columns ...string) *UserBadgeUpsertBulk {
	ubcb.conflict = append(ubcb.conflict, sql.ConflictColumns(columns...))
	return &UserBadgeUpsertBulk{
		create: ubcb,
	}
}

// UserBadgeUpsertBulk is the builder for "upsert"-ing
// a bulk of UserBadge nodes.
type UserBadgeUpsertBulk struct {
	create *UserBadgeCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.UserBadge.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *UserBadgeUpsertBulk) UpdateNewValues() *UserBadgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.AwardedAt(); exists {
				s.SetIgnore(userbadge.FieldAwardedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UserBadge.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *UserBadgeUpsertBulk) Ignore() *UserBadgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserBadgeUpsertBulk) DoNothing() *UserBadgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserBadgeCreateBulk.OnConflict
// documentation for more info.
func (u *UserBadgeUpsertBulk) Update(set func(*UserBadgeUpsert)) *UserBadgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserBadgeUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *UserBadgeUpsertBulk) SetUserID(v int64) *UserBadgeUpsertBulk {
	return u.Update(func(s *UserBadgeUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *UserBadgeUpsertBulk) AddUserID(v int64) *UserBadgeUpsertBulk {
	return u.Update(func(s *UserBadgeUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *UserBadgeUpsertBulk) UpdateUserID() *UserBadgeUpsertBulk {
	return u.Update(func(s *UserBadgeUpsert) {
		s.UpdateUserID()
	})
}

// SetBadgeSlug sets the "badge_slug" field.
func (u *UserBadgeUpsertBulk) SetBadgeSlug(v string) *UserBadgeUpsertBulk {
	return u.Update(func(s *UserBadgeUpsert) {
		s.SetBadgeSlug(v)
	})
}

// UpdateBadgeSlug sets the "badge_slug" field to the value that was provided on create.
func (u *UserBadgeUpsertBulk) UpdateBadgeSlug() *UserBadgeUpsertBulk {
	return u.Update(func(s *UserBadgeUpsert) {
		s.UpdateBadgeSlug()
	})
}

// Exec executes the query.
func (u *UserBadgeUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the UserBadgeCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UserBadgeCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserBadgeUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
