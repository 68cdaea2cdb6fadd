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
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/userxp"
)

// UserXpCreate is the builder for creating a UserXp entity.
type UserXpCreate struct {
	config
	mutation *UserXpMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (uxc *UserXpCreate) SetUserID(i int64) *UserXpCreate {
	uxc.mutation.SetUserID(i)
	return uxc
}

// SetXpTotal sets the "xp_total" field.
func (uxc *UserXpCreate) SetXpTotal(i int64) *UserXpCreate {
	uxc.mutation.SetXpTotal(i)
	return uxc
}

// SetNillableXpTotal sets the "xp_total" field if the given value is not nil.
func (uxc *UserXpCreate) SetNillableXpTotal(i *int64) *UserXpCreate {
	if i != nil {
		uxc.SetXpTotal(*i)
	}
	return uxc
}

// SetLevel sets the "level" field.
func (uxc *UserXpCreate) SetLevel(i int64) *UserXpCreate {
	uxc.mutation.SetLevel(i)
	return uxc
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (uxc *UserXpCreate) SetNillableLevel(i *int64) *UserXpCreate {
	if i != nil {
		uxc.SetLevel(*i)
	}
	return uxc
}

// SetUpdatedAt sets the "updated_at" field.
func (uxc *UserXpCreate) SetUpdatedAt(t time.Time) *UserXpCreate {
	uxc.mutation.SetUpdatedAt(t)
	return uxc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (uxc *UserXpCreate) SetNillableUpdatedAt(t *time.Time) *UserXpCreate {
	if t != nil {
		uxc.SetUpdatedAt(*t)
	}
	return uxc
}

// Mutation returns the UserXpMutation object of the builder.
func (uxc *UserXpCreate) Mutation() *UserXpMutation {
	return uxc.mutation
}

// Save creates the UserXp in the database.
func (uxc *UserXpCreate) Save(ctx context.Context) (*UserXp, error) {
	uxc.defaults()
	return withHooks(ctx, uxc.sqlSave, uxc.mutation, uxc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (uxc *UserXpCreate) SaveX(ctx context.Context) *UserXp {
	v, err := uxc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (uxc *UserXpCreate) Exec(ctx context.Context) error {
	_, err := uxc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (uxc *UserXpCreate) ExecX(ctx context.Context) {
	if err := uxc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (uxc *UserXpCreate) defaults() {
	if _, ok := uxc.mutation.XpTotal(); !ok {
		v := userxp.DefaultXpTotal
		uxc.mutation.SetXpTotal(v)
	}
	if _, ok := uxc.mutation.Level(); !ok {
		v := userxp.DefaultLevel
		uxc.mutation.SetLevel(v)
	}
	if _, ok := uxc.mutation.UpdatedAt(); !ok {
		v := userxp.DefaultUpdatedAt()
		uxc.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (uxc *UserXpCreate) check() error {
	if _, ok := uxc.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UserXp.user_id"`)}
	}
	if _, ok := uxc.mutation.XpTotal(); !ok {
		return &ValidationError{Name: "xp_total", err: errors.New(`ent: missing required field "UserXp.xp_total"`)}
	}
	if _, ok := uxc.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "UserXp.level"`)}
	}
	if _, ok := uxc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "UserXp.updated_at"`)}
	}
	return nil
}

func (uxc *UserXpCreate) sqlSave(ctx context.Context) (*UserXp, error) {
	if err := uxc.check(); err != nil {
		return nil, err
	}
	_node, _spec := uxc.createSpec()
	if err := sqlgraph.CreateNode(ctx, uxc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	uxc.mutation.id = &_node.ID
	uxc.mutation.done = true
	return _node, nil
}

func (uxc *UserXpCreate) createSpec() (*UserXp, *sqlgraph.CreateSpec) {
	var (
		_node = &UserXp{config: uxc.config}
		_spec = sqlgraph.NewCreateSpec(userxp.Table, sqlgraph.NewFieldSpec(userxp.FieldID, field.TypeInt))
	)
	_spec.OnConflict = uxc.conflict
	if value, ok := uxc.mutation.UserID(); ok {
		_spec.SetField(userxp.FieldUserID, field.TypeInt64, value)
		_node.UserID = value
	}
	if value, ok := uxc.mutation.XpTotal(); ok {
		_spec.SetField(userxp.FieldXpTotal, field.TypeInt64, value)
		_node.XpTotal = value
	}
	if value, ok := uxc.mutation.Level(); ok {
		_spec.SetField(userxp.FieldLevel, field.TypeInt64, value)
		_node.Level = value
	}
	if value, ok := uxc.mutation.UpdatedAt(); ok {
		_spec.SetField(userxp.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UserXp.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserXpUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (uxc *UserXpCreate) OnConflict(opts ...sql.ConflictOption) *UserXpUpsertOne {
	uxc.conflict = opts
	return &UserXpUpsertOne{
		create: uxc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UserXp.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (uxc *UserXpCreate) OnConflictColumns(columns ...string) *UserXpUpsertOne {
	uxc.conflict = append(uxc.conflict, sql.ConflictColumns(columns...))
	return &UserXpUpsertOne{
		create: uxc,
	}
}

type (
	// UserXpUpsertOne is the builder for "upsert"-ing
	//  one UserXp node.
	UserXpUpsertOne struct {
		create *UserXpCreate
	}

	// UserXpUpsert is the "OnConflict" setter.
	UserXpUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *UserXpUpsert) SetUserID(v int64) *UserXpUpsert {
	u.Set(userxp.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *UserXpUpsert) UpdateUserID() *UserXpUpsert {
	u.SetExcluded(userxp.FieldUserID)
	return u
}

// AddUserID adds v to the "user_id" field.
func (u *UserXpUpsert) AddUserID(v int64) *UserXpUpsert {
	u.Add(userxp.FieldUserID, v)
	return u
}

// SetXpTotal sets the "xp_total" field.
func (u *UserXpUpsert) SetXpTotal(v int64) *UserXpUpsert {
	u.Set(userxp.FieldXpTotal, v)
	return u
}

// UpdateXpTotal sets the "xp_total" field to the value that was provided on create.
func (u *UserXpUpsert) UpdateXpTotal() *UserXpUpsert {
	u.SetExcluded(userxp.FieldXpTotal)
	return u
}

// AddXpTotal adds v to the "xp_total" field.
func (u *UserXpUpsert) AddXpTotal(v int64) *UserXpUpsert {
	u.Add(userxp.FieldXpTotal, v)
	return u
}

// SetLevel sets the "level" field.
func (u *UserXpUpsert) SetLevel(v int64) *UserXpUpsert {
	u.Set(userxp.FieldLevel, v)
	return u
}

// UpdateLevel sets the "level" field to the value that was provided on create.
func (u *UserXpUpsert) UpdateLevel() *UserXpUpsert {
	u.SetExcluded(userxp.FieldLevel)
	return u
}

// AddLevel adds v to the "level" field.
func (u *UserXpUpsert) AddLevel(v int64) *UserXpUpsert {
	u.Add(userxp.FieldLevel, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UserXpUpsert) SetUpdatedAt(v time.Time) *UserXpUpsert {
	u.Set(userxp.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UserXpUpsert) UpdateUpdatedAt() *UserXpUpsert {
	u.SetExcluded(userxp.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.UserXp.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *UserXpUpsertOne) UpdateNewValues() *UserXpUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UserXp.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *UserXpUpsertOne) Ignore() *UserXpUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserXpUpsertOne) DoNothing() *UserXpUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserXpCreate.OnConflict
// documentation for more info.
func (u *UserXpUpsertOne) Update(set func(*UserXpUpsert)) *UserXpUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserXpUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *UserXpUpsertOne) SetUserID(v int64) *UserXpUpsertOne {
	return u.Update(func(s *UserXpUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *UserXpUpsertOne) AddUserID(v int64) *UserXpUpsertOne {
	return u.Update(func(s *UserXpUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *UserXpUpsertOne) UpdateUserID() *UserXpUpsertOne {
	return u.Update(func(s *UserXpUpsert) {
		s.UpdateUserID()
	})
}

// SetXpTotal sets the "xp_total" field.
func (u *UserXpUpsertOne) SetXpTotal(v int64) *UserXpUpsertOne {
	return u.Update(func(s *UserXpUpsert) {
		s.SetXpTotal(v)
	})
}

// AddXpTotal adds v to the "xp_total" field.
func (u *UserXpUpsertOne) AddXpTotal(v int64) *UserXpUpsertOne {
	return u.Update(func(s *UserXpUpsert) {
		s.AddXpTotal(v)
	})
}

// UpdateXpTotal sets the "xp_total" field to the value that was provided on create.
func (u *UserXpUpsertOne) UpdateXpTotal() *UserXpUpsertOne {
	return u.Update(func(s *UserXpUpsert) {
		s.UpdateXpTotal()
	})
}

// SetLevel sets the "level" field.
func (u *UserXpUpsertOne) SetLevel(v int64) *UserXpUpsertOne {
	return u.Update(func(s *UserXpUpsert) {
		s.SetLevel(v)
	})
}

// AddLevel adds v to the "level" field.
func (u *UserXpUpsertOne) AddLevel(v int64) *UserXpUpsertOne {
	return u.Update(func(s *UserXpUpsert) {
		s.AddLevel(v)
	})
}

// UpdateLevel sets the "level" field to the value that was provided on create.
func (u *UserXpUpsertOne) UpdateLevel() *UserXpUpsertOne {
	return u.Update(func(s *UserXpUpsert) {
		s.UpdateLevel()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UserXpUpsertOne) SetUpdatedAt(v time.Time) *UserXpUpsertOne {
	return u.Update(func(s *UserXpUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UserXpUpsertOne) UpdateUpdatedAt() *UserXpUpsertOne {
	return u.Update(func(s *UserXpUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *UserXpUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UserXpCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserXpUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *UserXpUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *UserXpUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// UserXpCreateBulk is the builder for creating many UserXp entities in bulk.
type UserXpCreateBulk struct {
	config
	err      error
	builders []*UserXpCreate
	conflict []sql.ConflictOption
}

// Save creates the UserXp entities in the database.
func (uxcb *UserXpCreateBulk) Save(ctx context.Context) ([]*UserXp, error) {
	if uxcb.err != nil {
		return nil, uxcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(uxcb.builders))
	nodes := make([]*UserXp, len(uxcb.builders))
	mutators := make([]Mutator, len(uxcb.builders))
	for i := range uxcb.builders {
		func(i int, root context.Context) {
			builder := uxcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserXpMutation)
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
					_, err = mutators[i+1].Mutate(root, uxcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = uxcb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, uxcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, uxcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (uxcb *UserXpCreateBulk) SaveX(ctx context.Context) []*UserXp {
	v, err := uxcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (uxcb *UserXpCreateBulk) Exec(ctx context.Context) error {
	_, err := uxcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (uxcb *UserXpCreateBulk) ExecX(ctx context.Context) {
	if err := uxcb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UserXp.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserXpUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (uxcb *UserXpCreateBulk) OnConflict(opts ...sql.ConflictOption) *UserXpUpsertBulk {
	uxcb.conflict = opts
	return &UserXpUpsertBulk{
		create: uxcb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UserXp.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (uxcb *UserXpCreateBulk) OnConflictColumns(columns ...string) *UserXpUpsertBulk {
	uxcb.conflict = append(uxcb.conflict, sql.ConflictColumns(columns...))
	return &UserXpUpsertBulk{
		create: uxcb,
	}
}

// UserXpUpsertBulk is the builder for "upsert"-ing
// a bulk of UserXp nodes.
type UserXpUpsertBulk struct {
	create *UserXpCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.UserXp.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *UserXpUpsertBulk) UpdateNewValues() *UserXpUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UserXp.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *UserXpUpsertBulk) Ignore() *UserXpUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserXpUpsertBulk) DoNothing() *UserXpUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserXpCreateBulk.OnConflict
// documentation for more info.
func (u *UserXpUpsertBulk) Update(set func(*UserXpUpsert)) *UserXpUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserXpUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *UserXpUpsertBulk) SetUserID(v int64) *UserXpUpsertBulk {
	return u.Update(func(s *UserXpUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *UserXpUpsertBulk) AddUserID(v int64) *UserXpUpsertBulk {
	return u.Update(func(s *UserXpUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *UserXpUpsertBulk) UpdateUserID() *UserXpUpsertBulk {
	return u.Update(func(s *UserXpUpsert) {
		s.UpdateUserID()
	})
}

// SetXpTotal sets the "xp_total" field.
func (u *UserXpUpsertBulk) SetXpTotal(v int64) *UserXpUpsertBulk {
	return u.Update(func(s *UserXpUpsert) {
		s.SetXpTotal(v)
	})
}

// AddXpTotal adds v to the "xp_total" field.
func (u *UserXpUpsertBulk) AddXpTotal(v int64) *UserXpUpsertBulk {
	return u.Update(func(s *UserXpUpsert) {
		s.AddXpTotal(v)
	})
}

// UpdateXpTotal sets the "xp_total" field to the value that was provided on create.
func (u *UserXpUpsertBulk) UpdateXpTotal() *UserXpUpsertBulk {
	return u.Update(func(s *UserXpUpsert) {
		s.UpdateXpTotal()
	})
}

// SetLevel sets the "level" field.
func (u *UserXpUpsertBulk) SetLevel(v int64) *UserXpUpsertBulk {
	return u.Update(func(s *UserXpUpsert) {
		s.SetLevel(v)
	})
}

// AddLevel adds v to the "level" field.
func (u *UserXpUpsertBulk) AddLevel(v int64) *UserXpUpsertBulk {
	return u.Update(func(s *UserXpUpsert) {
		s.AddLevel(v)
	})
}

// UpdateLevel sets the "level" field to the value that was provided on create.
func (u *UserXpUpsertBulk) UpdateLevel() *UserXpUpsertBulk {
	return u.Update(func(s *UserXpUpsert) {
		s.UpdateLevel()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UserXpUpsertBulk) SetUpdatedAt(v time.Time) *UserXpUpsertBulk {
	return u.Update(func(s *UserXpUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UserXpUpsertBulk) UpdateUpdatedAt() *UserXpUpsertBulk {
	return u.Update(func(s *UserXpUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *UserXpUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the UserXpCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UserXpCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserXpUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
