// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/vocabpack"
)

// VocabPackCreate is the builder for creating a VocabPack entity.
type VocabPackCreate struct {
	config
	mutation *VocabPackMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSlug sets the "slug" field.
func (vpc *VocabPackCreate) SetSlug(s string) *VocabPackCreate {
	vpc.mutation.SetSlug(s)
	return vpc
}

// SetName sets the "name" field.
func (vpc *VocabPackCreate) SetName(s string) *VocabPackCreate {
	vpc.mutation.SetName(s)
	return vpc
}

// SetDescription sets the "description" field.
func (vpc *VocabPackCreate) SetDescription(s string) *VocabPackCreate {
	vpc.mutation.SetDescription(s)
	return vpc
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (vpc *VocabPackCreate) SetNillableDescription(s *string) *VocabPackCreate {
	if s != nil {
		vpc.SetDescription(*s)
	}
	return vpc
}

// SetLanguage sets the "language" field.
func (vpc *VocabPackCreate) SetLanguage(s string) *VocabPackCreate {
	vpc.mutation.SetLanguage(s)
	return vpc
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (vpc *VocabPackCreate) SetNillableLanguage(s *string) *VocabPackCreate {
	if s != nil {
		vpc.SetLanguage(*s)
	}
	return vpc
}

// SetFlagship sets the "flagship" field.
func (vpc *VocabPackCreate) SetFlagship(b bool) *VocabPackCreate {
	vpc.mutation.SetFlagship(b)
	return vpc
}

// SetNillableFlagship sets the "flagship" field if the given value is not nil.
func (vpc *VocabPackCreate) SetNillableFlagship(b *bool) *VocabPackCreate {
	if b != nil {
		vpc.SetFlagship(*b)
	}
	return vpc
}

// Mutation returns the VocabPackMutation object of the builder.
func (vpc *VocabPackCreate) Mutation() *VocabPackMutation {
	return vpc.mutation
}

// Save creates the VocabPack in the database.
func (vpc *VocabPackCreate) Save(ctx context.Context) (*VocabPack, error) {
	vpc.defaults()
	return withHooks(ctx, vpc.sqlSave, vpc.mutation, vpc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (vpc *VocabPackCreate) SaveX(ctx context.Context) *VocabPack {
	v, err := vpc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (vpc *VocabPackCreate) Exec(ctx context.Context) error {
	_, err := vpc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (vpc *VocabPackCreate) ExecX(ctx context.Context) {
	if err := vpc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (vpc *VocabPackCreate) defaults() {
	if _, ok := vpc.mutation.Description(); !ok {
		v := vocabpack.DefaultDescription
		vpc.mutation.SetDescription(v)
	}
	if _, ok := vpc.mutation.Language(); !ok {
		v := vocabpack.DefaultLanguage
		vpc.mutation.SetLanguage(v)
	}
	if _, ok := vpc.mutation.Flagship(); !ok {
		v := vocabpack.DefaultFlagship
		vpc.mutation.SetFlagship(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (vpc *VocabPackCreate) check() error {
	if _, ok := vpc.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`ent: missing required field "VocabPack.slug"`)}
	}
	if v, ok := vpc.mutation.Slug(); ok {
		if err := vocabpack.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "VocabPack.slug": %w`, err)}
		}
	}
	if _, ok := vpc.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "VocabPack.name"`)}
	}
	if v, ok := vpc.mutation.Name(); ok {
		if err := vocabpack.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "VocabPack.name": %w`, err)}
		}
	}
	if _, ok := vpc.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "VocabPack.description"`)}
	}
	if _, ok := vpc.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "VocabPack.language"`)}
	}
	if _, ok := vpc.mutation.Flagship(); !ok {
		return &ValidationError{Name: "flagship", err: errors.New(`ent: missing required field "VocabPack.flagship"`)}
	}
	return nil
}

func (vpc *VocabPackCreate) sqlSave(ctx context.Context) (*VocabPack, error) {
	if err := vpc.check(); err != nil {
		return nil, err
	}
	_node, _spec := vpc.createSpec()
	if err := sqlgraph.CreateNode(ctx, vpc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	vpc.mutation.id = &_node.ID
	vpc.mutation.done = true
	return _node, nil
}

func (vpc *VocabPackCreate) createSpec() (*VocabPack, *sqlgraph.CreateSpec) {
	var (
		_node = &VocabPack{config: vpc.config}
		_spec = sqlgraph.NewCreateSpec(vocabpack.Table, sqlgraph.NewFieldSpec(vocabpack.FieldID, field.TypeInt))
	)
	_spec.OnConflict = vpc.conflict
	if value, ok := vpc.mutation.Slug(); ok {
		_spec.SetField(vocabpack.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := vpc.mutation.Name(); ok {
		_spec.SetField(vocabpack.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := vpc.mutation.Description(); ok {
		_spec.SetField(vocabpack.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := vpc.mutation.Language(); ok {
		_spec.SetField(vocabpack.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := vpc.mutation.Flagship(); ok {
		_spec.SetField(vocabpack.FieldFlagship, field.TypeBool, value)
		_node.Flagship = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.VocabPack.Create().
//		SetSlug(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.VocabPackUpsert) {
//			SetSlug(v+v).
//		}).
//		Exec(ctx)
func (vpc *VocabPackCreate) OnConflict(opts ...sql.ConflictOption) *VocabPackUpsertOne {
	vpc.conflict = opts
	return &VocabPackUpsertOne{
		create: vpc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.VocabPack.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (vpc *VocabPackCreate) OnConflictColumns(columns ...string) *VocabPackUpsertOne {
	vpc.conflict = append(vpc.conflict, sql.ConflictColumns(columns...))
	return &VocabPackUpsertOne{
		create: vpc,
	}
}

type (
	// VocabPackUpsertOne is the builder for "upsert"-ing
	//  one VocabPack node.
	VocabPackUpsertOne struct {
		create *VocabPackCreate
	}

	// VocabPackUpsert is the "OnConflict" setter.
	VocabPackUpsert struct {
		*sql.UpdateSet
	}
)

// SetSlug sets the "slug" field.
func (u *VocabPackUpsert) SetSlug(v string) *VocabPackUpsert {
	u.Set(vocabpack.FieldSlug, v)
	return u
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *VocabPackUpsert) UpdateSlug() *VocabPackUpsert {
	u.SetExcluded(vocabpack.FieldSlug)
	return u
}

// SetName sets the "name" field.
func (u *VocabPackUpsert) SetName(v string) *VocabPackUpsert {
	u.Set(vocabpack.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *VocabPackUpsert) UpdateName() *VocabPackUpsert {
	u.SetExcluded(vocabpack.FieldName)
	return u
}

// SetDescription sets the "description" field.
func (u *VocabPackUpsert) SetDescription(v string) *VocabPackUpsert {
	u.Set(vocabpack.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *VocabPackUpsert) UpdateDescription() *VocabPackUpsert {
	u.SetExcluded(vocabpack.FieldDescription)
	return u
}

// SetLanguage sets the "language" field.
func (u *VocabPackUpsert) SetLanguage(v string) *VocabPackUpsert {
	u.Set(vocabpack.FieldLanguage, v)
	return u
}

// UpdateLanguage sets the "language" field to the value that was provided on create.
func (u *VocabPackUpsert) UpdateLanguage() *VocabPackUpsert {
	u.SetExcluded(vocabpack.FieldLanguage)
	return u
}

// SetFlagship sets the "flagship" field.
func (u *VocabPackUpsert) SetFlagship(v bool) *VocabPackUpsert {
	u.Set(vocabpack.FieldFlagship, v)
	return u
}

// UpdateFlagship sets the "flagship" field to the value that was provided on create.
func (u *VocabPackUpsert) UpdateFlagship() *VocabPackUpsert {
	u.SetExcluded(vocabpack.FieldFlagship)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.VocabPack.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *VocabPackUpsertOne) UpdateNewValues() *VocabPackUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.VocabPack.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *VocabPackUpsertOne) Ignore() *VocabPackUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *VocabPackUpsertOne) DoNothing() *VocabPackUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the VocabPackCreate.OnConflict
// documentation for more info.
func (u *VocabPackUpsertOne) Update(set func(*VocabPackUpsert)) *VocabPackUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&VocabPackUpsert{UpdateSet: update})
	}))
	return u
}

// SetSlug sets the "slug" field.
func (u *VocabPackUpsertOne) SetSlug(v string) *VocabPackUpsertOne {
	return u.Update(func(s *VocabPackUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *VocabPackUpsertOne) UpdateSlug() *VocabPackUpsertOne {
	return u.Update(func(s *VocabPackUpsert) {
		s.UpdateSlug()
	})
}

// SetName sets the "name" field.
func (u *VocabPackUpsertOne) SetName(v string) *VocabPackUpsertOne {
	return u.Update(func(s *VocabPackUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *VocabPackUpsertOne) UpdateName() *VocabPackUpsertOne {
	return u.Update(func(s *VocabPackUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *VocabPackUpsertOne) SetDescription(v string) *VocabPackUpsertOne {
	return u.Update(func(s *VocabPackUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *VocabPackUpsertOne) UpdateDescription() *VocabPackUpsertOne {
	return u.Update(func(s *VocabPackUpsert) {
		s.UpdateDescription()
	})
}

// SetLanguage sets the "language" field.
func (u *VocabPackUpsertOne) SetLanguage(v string) *VocabPackUpsertOne {
	return u.Update(func(s *VocabPackUpsert) {
		s.SetLanguage(v)
	})
}

// UpdateLanguage sets the "language" field to the value that was provided on create.
func (u *VocabPackUpsertOne) UpdateLanguage() *VocabPackUpsertOne {
	return u.Update(func(s *VocabPackUpsert) {
		s.UpdateLanguage()
	})
}

// SetFlagship sets the "flagship" field.
func (u *VocabPackUpsertOne) SetFlagship(v bool) *VocabPackUpsertOne {
	return u.Update(func(s *VocabPackUpsert) {
		s.SetFlagship(v)
	})
}

// UpdateFlagship sets the "flagship" field to the value that was provided on create.
func (u *VocabPackUpsertOne) UpdateFlagship() *VocabPackUpsertOne {
	return u.Update(func(s *VocabPackUpsert) {
		s.UpdateFlagship()
	})
}

// Exec executes the query.
func (u *VocabPackUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for VocabPackCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *VocabPackUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *VocabPackUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *VocabPackUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// VocabPackCreateBulk is the builder for creating many VocabPack entities in bulk.
type VocabPackCreateBulk struct {
	config
	err      error
	builders []*VocabPackCreate
	conflict []sql.ConflictOption
}

// Save creates the VocabPack entities in the database.
func (vpcb *VocabPackCreateBulk) Save(ctx context.Context) ([]*VocabPack, error) {
	if vpcb.err != nil {
		return nil, vpcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(vpcb.builders))
	nodes := make([]*VocabPack, len(vpcb.builders))
	mutators := make([]Mutator, len(vpcb.builders))
	for i := range vpcb.builders {
		func(i int, root context.Context) {
			builder := vpcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VocabPackMutation)
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
					_, err = mutators[i+1].Mutate(root, vpcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = vpcb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, vpcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, vpcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (vpcb *VocabPackCreateBulk) SaveX(ctx context.Context) []*VocabPack {
	v, err := vpcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (vpcb *VocabPackCreateBulk) Exec(ctx context.Context) error {
	_, err := vpcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (vpcb *VocabPackCreateBulk) ExecX(ctx context.Context) {
	if err := vpcb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.VocabPack.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.VocabPackUpsert) {
//			SetSlug(v+v).
//		}).
//		Exec(ctx)
func (vpcb *VocabPackCreateBulk) OnConflict(opts ...sql.ConflictOption) *VocabPackUpsertBulk {
	vpcb.conflict = opts
	return &VocabPackUpsertBulk{
		create: vpcb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.VocabPack.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (vpcb *VocabPackCreateBulk) OnConflictColumns(columns ...string) *VocabPackUpsertBulk {
	vpcb.conflict = append(vpcb.conflict, sql.ConflictColumns(columns...))
	return &VocabPackUpsertBulk{
		create: vpcb,
	}
}

// VocabPackUpsertBulk is the builder for "upsert"-ing
// a bulk of VocabPack nodes.
type VocabPackUpsertBulk struct {
	create *VocabPackCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.VocabPack.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *VocabPackUpsertBulk) UpdateNewValues() *VocabPackUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.VocabPack.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *VocabPackUpsertBulk) Ignore() *VocabPackUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *VocabPackUpsertBulk) DoNothing() *VocabPackUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the VocabPackCreateBulk.OnConflict
// documentation for more info.
func (u *VocabPackUpsertBulk) Update(set func(*VocabPackUpsert)) *VocabPackUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&VocabPackUpsert{UpdateSet: update})
	}))
	return u
}

// SetSlug sets the "slug" field.
func (u *VocabPackUpsertBulk) SetSlug(v string) *VocabPackUpsertBulk {
	return u.Update(func(s *VocabPackUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *VocabPackUpsertBulk) UpdateSlug() *VocabPackUpsertBulk {
	return u.Update(func(s *VocabPackUpsert) {
		s.UpdateSlug()
	})
}

// SetName sets the "name" field.
func (u *VocabPackUpsertBulk) SetName(v string) *VocabPackUpsertBulk {
	return u.Update(func(s *VocabPackUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *VocabPackUpsertBulk) UpdateName() *VocabPackUpsertBulk {
	return u.Update(func(s *VocabPackUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *VocabPackUpsertBulk) SetDescription(v string) *VocabPackUpsertBulk {
	return u.Update(func(s *VocabPackUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *VocabPackUpsertBulk) UpdateDescription() *VocabPackUpsertBulk {
	return u.Update(func(s *VocabPackUpsert) {
		s.UpdateDescription()
	})
}

// SetLanguage sets the "language" field.
func (u *VocabPackUpsertBulk) SetLanguage(v string) *VocabPackUpsertBulk {
	return u.Update(func(s *VocabPackUpsert) {
		s.SetLanguage(v)
	})
}

// UpdateLanguage sets the "language" field to the value that was provided on create.
func (u *VocabPackUpsertBulk) UpdateLanguage() *VocabPackUpsertBulk {
	return u.Update(func(s *VocabPackUpsert) {
		s.UpdateLanguage()
	})
}

// SetFlagship sets the "flagship" field.
func (u *VocabPackUpsertBulk) SetFlagship(v bool) *VocabPackUpsertBulk {
	return u.Update(func(s *VocabPackUpsert) {
		s.SetFlagship(v)
	})
}

// UpdateFlagship sets the "flagship" field to the value that was provided on create.
func (u *VocabPackUpsertBulk) UpdateFlagship() *VocabPackUpsertBulk {
	return u.Update(func(s *VocabPackUpsert) {
		s.UpdateFlagship()
	})
}

// Exec executes the query.
func (u *VocabPackUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the VocabPackCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for VocabPackCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *VocabPackUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
