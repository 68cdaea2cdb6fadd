// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/irregularverb"
)

// IrregularVerbCreate is the builder for creating a IrregularVerb entity.
type IrregularVerbCreate struct {
	config
	mutation *IrregularVerbMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetBase sets the "base" field.
func (ivc *IrregularVerbCreate) SetBase(s string) *IrregularVerbCreate {
	ivc.mutation.SetBase(s)
	return ivc
}

// SetPast sets the "past" field.
func (ivc *IrregularVerbCreate) SetPast(s string) *IrregularVerbCreate {
	ivc.mutation.SetPast(s)
	return ivc
}

// SetParticiple sets the "participle" field.
func (ivc *IrregularVerbCreate) SetParticiple(s string) *IrregularVerbCreate {
	ivc.mutation.SetParticiple(s)
	return ivc
}

// SetTranslation sets the "translation" field.
func (ivc *IrregularVerbCreate) SetTranslation(s string) *IrregularVerbCreate {
	ivc.mutation.SetTranslation(s)
	return ivc
}

// SetNillableTranslation sets the "translation" field if the given value is not nil.
func (ivc *IrregularVerbCreate) SetNillableTranslation(s *string) *IrregularVerbCreate {
	if s != nil {
		ivc.SetTranslation(*s)
	}
	return ivc
}

// Mutation returns the IrregularVerbMutation object of the builder.
func (ivc *IrregularVerbCreate) Mutation() *IrregularVerbMutation {
	return ivc.mutation
}

// Save creates the IrregularVerb in the database.
func (ivc *IrregularVerbCreate) Save(ctx context.Context) (*IrregularVerb, error) {
	ivc.defaults()
	return withHooks(ctx, ivc.sqlSave, ivc.mutation, ivc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ivc *IrregularVerbCreate) SaveX(ctx context.Context) *IrregularVerb {
	v, err := ivc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ivc *IrregularVerbCreate) Exec(ctx context.Context) error {
	_, err := ivc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ivc *IrregularVerbCreate) ExecX(ctx context.Context) {
	if err := ivc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ivc *IrregularVerbCreate) defaults() {
	if _, ok := ivc.mutation.Translation(); !ok {
		v := irregularverb.DefaultTranslation
		ivc.mutation.SetTranslation(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ivc *IrregularVerbCreate) check() error {
	if _, ok := ivc.mutation.Base(); !ok {
		return &ValidationError{Name: "base", err: errors.New(`ent: missing required field "IrregularVerb.base"`)}
	}
	if v, ok := ivc.mutation.Base(); ok {
		if err := irregularverb.BaseValidator(v); err != nil {
			return &ValidationError{Name: "base", err: fmt.Errorf(`ent: validator failed for field "IrregularVerb.base": %w`, err)}
		}
	}
	if _, ok := ivc.mutation.Past(); !ok {
		return &ValidationError{Name: "past", err: errors.New(`ent: missing required field "IrregularVerb.past"`)}
	}
	if v, ok := ivc.mutation.Past(); ok {
		if err := irregularverb.PastValidator(v); err != nil {
			return &ValidationError{Name: "past", err: fmt.Errorf(`ent: validator failed for field "IrregularVerb.past": %w`, err)}
		}
	}
	if _, ok := ivc.mutation.Participle(); !ok {
		return &ValidationError{Name: "participle", err: errors.New(`ent: missing required field "IrregularVerb.participle"`)}
	}
	if v, ok := ivc.mutation.Participle(); ok {
		if err := irregularverb.ParticipleValidator(v); err != nil {
			return &ValidationError{Name: "participle", err: fmt.Errorf(`ent: validator failed for field "IrregularVerb.participle": %w`, err)}
		}
	}
	if _, ok := ivc.mutation.Translation(); !ok {
		return &ValidationError{Name: "translation", err: errors.New(`ent: missing required field "IrregularVerb.translation"`)}
	}
	return nil
}

func (ivc *IrregularVerbCreate) sqlSave(ctx context.Context) (*IrregularVerb, error) {
	if err := ivc.check(); err != nil {
		return nil, err
	}
	_node, _spec := ivc.createSpec()
	if err := sqlgraph.CreateNode(ctx, ivc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	ivc.mutation.id = &_node.ID
	ivc.mutation.done = true
	return _node, nil
}

func (ivc *IrregularVerbCreate) createSpec() (*IrregularVerb, *sqlgraph.CreateSpec) {
	var (
		_node = &IrregularVerb{config: ivc.config}
		_spec = sqlgraph.NewCreateSpec(irregularverb.Table, sqlgraph.NewFieldSpec(irregularverb.FieldID, field.TypeInt))
	)
	_spec.OnConflict = ivc.conflict
	if value, ok := ivc.mutation.Base(); ok {
		_spec.SetField(irregularverb.FieldBase, field.TypeString, value)
		_node.Base = value
	}
	if value, ok := ivc.mutation.Past(); ok {
		_spec.SetField(irregularverb.FieldPast, field.TypeString, value)
		_node.Past = value
	}
	if value, ok := ivc.mutation.Participle(); ok {
		_spec.SetField(irregularverb.FieldParticiple, field.TypeString, value)
		_node.Participle = value
	}
	if value, ok := ivc.mutation.Translation(); ok {
		_spec.SetField(irregularverb.FieldTranslation, field.TypeString, value)
		_node.Translation = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.IrregularVerb.Create().
//		SetBase(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.IrregularVerbUpsert) {
//			SetBase(v+v).
//		}).
//		Exec(ctx)
func (ivc *IrregularVerbCreate) OnConflict(opts ...sql.ConflictOption) *IrregularVerbUpsertOne {
	ivc.conflict = opts
	return &IrregularVerbUpsertOne{
		create: ivc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.IrregularVerb.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (ivc *IrregularVerbCreate) OnConflictColumns(columns ...string) *IrregularVerbUpsertOne {
	ivc.conflict = append(ivc.conflict, sql.ConflictColumns(columns...))
	return &IrregularVerbUpsertOne{
		create: ivc,
	}
}

type (
	// IrregularVerbUpsertOne is the builder for "upsert"-ing
	//  one IrregularVerb node.
	IrregularVerbUpsertOne struct {
		create *IrregularVerbCreate
	}

	// IrregularVerbUpsert is the "OnConflict" setter.
	IrregularVerbUpsert struct {
		*sql.UpdateSet
	}
)

// SetBase sets the "base" field.
func (u *IrregularVerbUpsert) SetBase(v string) *IrregularVerbUpsert {
	u.Set(irregularverb.FieldBase, v)
	return u
}

// UpdateBase sets the "base" field to the value that was provided on create.
func (u *IrregularVerbUpsert) UpdateBase() *IrregularVerbUpsert {
	u.SetExcluded(irregularverb.FieldBase)
	return u
}

// SetPast sets the "past" field.
func (u *IrregularVerbUpsert) SetPast(v string) *IrregularVerbUpsert {
	u.Set(irregularverb.FieldPast, v)
	return u
}

// UpdatePast sets the "past" field to the value that was provided on create.
func (u *IrregularVerbUpsert) UpdatePast() *IrregularVerbUpsert {
	u.SetExcluded(irregularverb.FieldPast)
	return u
}

// SetParticiple sets the "participle" field.
func (u *IrregularVerbUpsert) SetParticiple(v string) *IrregularVerbUpsert {
	u.Set(irregularverb.FieldParticiple, v)
	return u
}

// UpdateParticiple sets the "participle" field to the value that was provided on create.
func (u *IrregularVerbUpsert) UpdateParticiple() *IrregularVerbUpsert {
	u.SetExcluded(irregularverb.FieldParticiple)
	return u
}

// SetTranslation sets the "translation" field.
func (u *IrregularVerbUpsert) SetTranslation(v string) *IrregularVerbUpsert {
	u.Set(irregularverb.FieldTranslation, v)
	return u
}

// UpdateTranslation sets the "translation" field to the value that was provided on create.
func (u *IrregularVerbUpsert) UpdateTranslation() *IrregularVerbUpsert {
	u.SetExcluded(irregularverb.FieldTranslation)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.IrregularVerb.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *IrregularVerbUpsertOne) UpdateNewValues() *IrregularVerbUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.IrregularVerb.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *IrregularVerbUpsertOne) Ignore() *IrregularVerbUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *IrregularVerbUpsertOne) DoNothing() *IrregularVerbUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the IrregularVerbCreate.OnConflict
// documentation for more info.
func (u *IrregularVerbUpsertOne) Update(set func(*IrregularVerbUpsert)) *IrregularVerbUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&IrregularVerbUpsert{UpdateSet: update})
	}))
	return u
}

// SetBase sets the "base" field.
func (u *IrregularVerbUpsertOne) SetBase(v string) *IrregularVerbUpsertOne {
	return u.Update(func(s *IrregularVerbUpsert) {
		s.SetBase(v)
	})
}

// UpdateBase sets the "base" field to the value that was provided on create.
func (u *IrregularVerbUpsertOne) UpdateBase() *IrregularVerbUpsertOne {
	return u.Update(func(s *IrregularVerbUpsert) {
		s.UpdateBase()
	})
}

// SetPast sets the "past" field.
func (u *IrregularVerbUpsertOne) SetPast(v string) *IrregularVerbUpsertOne {
	return u.Update(func(s *IrregularVerbUpsert) {
		s.SetPast(v)
	})
}

// UpdatePast sets the "past" field to the value that was provided on create.
func (u *IrregularVerbUpsertOne) UpdatePast() *IrregularVerbUpsertOne {
	return u.Update(func(s *IrregularVerbUpsert) {
		s.UpdatePast()
	})
}

// SetParticiple sets the "participle" field.
func (u *IrregularVerbUpsertOne) SetParticiple(v string) *IrregularVerbUpsertOne {
	return u.Update(func(s *IrregularVerbUpsert) {
		s.SetParticiple(v)
	})
}

// UpdateParticiple sets the "participle" field to the value that was provided on create.
func (u *IrregularVerbUpsertOne) UpdateParticiple() *IrregularVerbUpsertOne {
	return u.Update(func(s *IrregularVerbUpsert) {
		s.UpdateParticiple()
	})
}

// SetTranslation sets the "translation" field.
func (u *IrregularVerbUpsertOne) SetTranslation(v string) *IrregularVerbUpsertOne {
	return u.Update(func(s *IrregularVerbUpsert) {
		s.SetTranslation(v)
	})
}

// UpdateTranslation sets the "translation" field to the value that was provided on create.
func (u *IrregularVerbUpsertOne) UpdateTranslation() *IrregularVerbUpsertOne {
	return u.Update(func(s *IrregularVerbUpsert) {
		s.UpdateTranslation()
	})
}

// Exec executes the query.
func (u *IrregularVerbUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for IrregularVerbCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *IrregularVerbUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *IrregularVerbUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *IrregularVerbUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// IrregularVerbCreateBulk is the builder for creating many IrregularVerb entities in bulk.
type IrregularVerbCreateBulk struct {
	config
	err      error
	builders []*IrregularVerbCreate
	conflict []sql.ConflictOption
}

// Save creates the IrregularVerb entities in the database.
func (ivcb *IrregularVerbCreateBulk) Save(ctx context.Context) ([]*IrregularVerb, error) {
	if ivcb.err != nil {
		return nil, ivcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(ivcb.builders))
	nodes := make([]*IrregularVerb, len(ivcb.builders))
	mutators := make([]Mutator, len(ivcb.builders))
	for i := range ivcb.builders {
		func(i int, root context.Context) {
			builder := ivcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IrregularVerbMutation)
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
					_, err = mutators[i+1].Mutate(root, ivcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = ivcb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, ivcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, ivcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (ivcb *IrregularVerbCreateBulk) SaveX(ctx context.Context) []*IrregularVerb {
	v, err := ivcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ivcb *IrregularVerbCreateBulk) Exec(ctx context.Context) error {
	_, err := ivcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ivcb *IrregularVerbCreateBulk) ExecX(ctx context.Context) {
	if err := ivcb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.IrregularVerb.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.IrregularVerbUpsert) {
//			SetBase(v+v).
//		}).
//		Exec(ctx)
func (ivcb *IrregularVerbCreateBulk) OnConflict(opts ...sql.ConflictOption) *IrregularVerbUpsertBulk {
	ivcb.conflict = opts
	return &IrregularVerbUpsertBulk{
		create: ivcb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.IrregularVerb.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (ivcb *IrregularVerbCreateBulk) OnConflictColumns(columns ...string) *IrregularVerbUpsertBulk {
	ivcb.conflict = append(ivcb.conflict, sql.ConflictColumns(columns...))
	return &IrregularVerbUpsertBulk{
		create: ivcb,
	}
}

// IrregularVerbUpsertBulk is the builder for "upsert"-ing
// a bulk of IrregularVerb nodes.
type IrregularVerbUpsertBulk struct {
	create *IrregularVerbCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.IrregularVerb.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *IrregularVerbUpsertBulk) UpdateNewValues() *IrregularVerbUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.IrregularVerb.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *IrregularVerbUpsertBulk) Ignore() *IrregularVerbUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *IrregularVerbUpsertBulk) DoNothing() *IrregularVerbUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the IrregularVerbCreateBulk.OnConflict
// documentation for more info.
func (u *IrregularVerbUpsertBulk) Update(set func(*IrregularVerbUpsert)) *IrregularVerbUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&IrregularVerbUpsert{UpdateSet: update})
	}))
	return u
}

// SetBase sets the "base" field.
func (u *IrregularVerbUpsertBulk) SetBase(v string) *IrregularVerbUpsertBulk {
	return u.Update(func(s *IrregularVerbUpsert) {
		s.SetBase(v)
	})
}

// UpdateBase sets the "base" field to the value that was provided on create.
func (u *IrregularVerbUpsertBulk) UpdateBase() *IrregularVerbUpsertBulk {
	return u.Update(func(s *IrregularVerbUpsert) {
		s.UpdateBase()
	})
}

// SetPast sets the "past" field.
func (u *IrregularVerbUpsertBulk) SetPast(v string) *IrregularVerbUpsertBulk {
	return u.Update(func(s *IrregularVerbUpsert) {
		s.SetPast(v)
	})
}

// UpdatePast sets the "past" field to the value that was provided on create.
func (u *IrregularVerbUpsertBulk) UpdatePast() *IrregularVerbUpsertBulk {
	return u.Update(func(s *IrregularVerbUpsert) {
		s.UpdatePast()
	})
}

// SetParticiple sets the "participle" field.
func (u *IrregularVerbUpsertBulk) SetParticiple(v string) *IrregularVerbUpsertBulk {
	return u.Update(func(s *IrregularVerbUpsert) {
		s.SetParticiple(v)
	})
}

// UpdateParticiple sets the "participle" field to the value that was provided on create.
func (u *IrregularVerbUpsertBulk) UpdateParticiple() *IrregularVerbUpsertBulk {
	return u.Update(func(s *IrregularVerbUpsert) {
		s.UpdateParticiple()
	})
}

// SetTranslation sets the "translation" field.
func (u *IrregularVerbUpsertBulk) SetTranslation(v string) *IrregularVerbUpsertBulk {
	return u.Update(func(s *IrregularVerbUpsert) {
		s.SetTranslation(v)
	})
}

// UpdateTranslation sets the "translation" field to the value that was provided on create.
func (u *IrregularVerbUpsertBulk) UpdateTranslation() *IrregularVerbUpsertBulk {
	return u.Update(func(s *IrregularVerbUpsert) {
		s.UpdateTranslation()
	})
}

// Exec executes the query.
func (u *IrregularVerbUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the IrregularVerbCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for IrregularVerbCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *IrregularVerbUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
