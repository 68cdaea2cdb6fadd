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
)

// BadgeCreate is the builder for creating a Badge entity.
type BadgeCreate struct {
	config
	mutation *BadgeMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSlug sets the "slug" field.
func (bc *BadgeCreate) SetSlug(s string) *BadgeCreate {
	bc.mutation.SetSlug(s)
	return bc
}

// SetName sets the "name" field.
func (bc *BadgeCreate) SetName(s string) *BadgeCreate {
	bc.mutation.SetName(s)
	return bc
}

// SetDescription sets the "description" field.
func (bc *BadgeCreate) SetDescription(s string) *BadgeCreate {
	bc.mutation.SetDescription(s)
	return bc
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (bc *BadgeCreate) SetNillableDescription(s *string) *BadgeCreate {
	if s != nil {
		bc.SetDescription(*s)
	}
	return bc
}

// SetIcon sets the "icon" field.
func (bc *BadgeCreate) SetIcon(s string) *BadgeCreate {
	bc.mutation.SetIcon(s)
	return bc
}

// SetNillableIcon sets the "icon" field if the given value is not nil.
func (bc *BadgeCreate) SetNillableIcon(s *string) *BadgeCreate {
	if s != nil {
		bc.SetIcon(*s)
	}
	return bc
}

// Mutation returns the BadgeMutation object of the builder.
func (bc *BadgeCreate) Mutation() *BadgeMutation {
	return bc.mutation
}

// Save creates the Badge in the database.
func (bc *BadgeCreate) Save(ctx context.Context) (*Badge, error) {
	bc.defaults()
	return withHooks(ctx, bc.sqlSave, bc.mutation, bc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (bc *BadgeCreate) SaveX(ctx context.Context) *Badge {
	v, err := bc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (bc *BadgeCreate) Exec(ctx context.Context) error {
	_, err := bc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (bc *BadgeCreate) ExecX(ctx context.Context) {
	if err := bc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (bc *BadgeCreate) defaults() {
	if _, ok := bc.mutation.Description(); !ok {
		v := badge.DefaultDescription
		bc.mutation.SetDescription(v)
	}
	if _, ok := bc.mutation.Icon(); !ok {
		v := badge.DefaultIcon
		bc.mutation.SetIcon(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (bc *BadgeCreate) check() error {
	if _, ok := bc.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`ent: missing required field "Badge.slug"`)}
	}
	if v, ok := bc.mutation.Slug(); ok {
		if err := badge.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Badge.slug": %w`, err)}
		}
	}
	if _, ok := bc.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Badge.name"`)}
	}
	if v, ok := bc.mutation.Name(); ok {
		if err := badge.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Badge.name": %w`, err)}
		}
	}
	if _, ok := bc.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Badge.description"`)}
	}
	if _, ok := bc.mutation.Icon(); !ok {
		return &ValidationError{Name: "icon", err: errors.New(`ent: missing required field "Badge.icon"`)}
	}
	return nil
}

func (bc *BadgeCreate) sqlSave(ctx context.Context) (*Badge, error) {
	if err := bc.check(); err != nil {
		return nil, err
	}
	_node, _spec := bc.createSpec()
	if err := sqlgraph.CreateNode(ctx, bc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	bc.mutation.id = &_node.ID
	bc.mutation.done = true
	return _node, nil
}

func (bc *BadgeCreate) createSpec() (*Badge, *sqlgraph.CreateSpec) {
	var (
		_node = &Badge{config: bc.config}
		_spec = sqlgraph.NewCreateSpec(badge.Table, sqlgraph.NewFieldSpec(badge.FieldID, field.TypeInt))
	)
	_spec.OnConflict = bc.conflict
	if value, ok := bc.mutation.Slug(); ok {
		_spec.SetField(badge.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := bc.mutation.Name(); ok {
		_spec.SetField(badge.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := bc.mutation.Description(); ok {
		_spec.SetField(badge.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := bc.mutation.Icon(); ok {
		_spec.SetField(badge.FieldIcon, field.TypeString, value)
		_node.Icon = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Badge.Create().
//		SetSlug(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BadgeUpsert) {
//			SetSlug(v+v).
//		}).
//		Exec(ctx)
func (bc *BadgeCreate) OnConflict(opts ...sql.ConflictOption) *BadgeUpsertOne {
	bc.conflict = opts
	return &BadgeUpsertOne{
		create: bc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Badge.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (bc *BadgeCreate) OnConflictColumns(columns ...string) *BadgeUpsertOne {
	bc.conflict = append(bc.conflict, sql.ConflictColumns(columns...))
	return &BadgeUpsertOne{
		create: bc,
	}
}

type (
	// BadgeUpsertOne is the builder for "upsert"-ing
	//  one Badge node.
	BadgeUpsertOne struct {
		create *BadgeCreate
	}

	// BadgeUpsert is the "OnConflict" setter.
	BadgeUpsert struct {
		*sql.UpdateSet
	}
)

// SetSlug sets the "slug" field.
func (u *BadgeUpsert) SetSlug(v string) *BadgeUpsert {
	u.Set(badge.FieldSlug, v)
	return u
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *BadgeUpsert) UpdateSlug() *BadgeUpsert {
	u.SetExcluded(badge.FieldSlug)
	return u
}

// SetName sets the "name" field.
func (u *BadgeUpsert) SetName(v string) *BadgeUpsert {
	u.Set(badge.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *BadgeUpsert) UpdateName() *BadgeUpsert {
	u.SetExcluded(badge.FieldName)
	return u
}

// SetDescription sets the "description" field.
func (u *BadgeUpsert) SetDescription(v string) *BadgeUpsert {
	u.Set(badge.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *BadgeUpsert) UpdateDescription() *BadgeUpsert {
	u.SetExcluded(badge.FieldDescription)
	return u
}

// SetIcon sets the "icon" field.
func (u *BadgeUpsert) SetIcon(v string) *BadgeUpsert {
	u.Set(badge.FieldIcon, v)
	return u
}

// UpdateIcon sets the "icon" field to the value that was provided on create.
func (u *BadgeUpsert) UpdateIcon() *BadgeUpsert {
	u.SetExcluded(badge.FieldIcon)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Badge.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *BadgeUpsertOne) UpdateNewValues() *BadgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Badge.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BadgeUpsertOne) Ignore() *BadgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BadgeUpsertOne) DoNothing() *BadgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BadgeCreate.OnConflict
// documentation for more info.
func (u *BadgeUpsertOne) Update(set func(*BadgeUpsert)) *BadgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BadgeUpsert{UpdateSet: update})
	}))
	return u
}

// SetSlug sets the "slug" field.
func (u *BadgeUpsertOne) SetSlug(v string) *BadgeUpsertOne {
	return u.Update(func(s *BadgeUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *BadgeUpsertOne) UpdateSlug() *BadgeUpsertOne {
	return u.Update(func(s *BadgeUpsert) {
		s.UpdateSlug()
	})
}

// SetName sets the "name" field.
func (u *BadgeUpsertOne) SetName(v string) *BadgeUpsertOne {
	return u.Update(func(s *BadgeUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *BadgeUpsertOne) UpdateName() *BadgeUpsertOne {
	return u.Update(func(s *BadgeUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *BadgeUpsertOne) SetDescription(v string) *BadgeUpsertOne {
	return u.Update(func(s *BadgeUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *BadgeUpsertOne) UpdateDescription() *BadgeUpsertOne {
	return u.Update(func(s *BadgeUpsert) {
		s.UpdateDescription()
	})
}

// SetIcon sets the "icon" field.
func (u *BadgeUpsertOne) SetIcon(v string) *BadgeUpsertOne {
	return u.Update(func(s *BadgeUpsert) {
		s.SetIcon(v)
	})
}

// UpdateIcon sets the "icon" field to the value that was provided on create.
func (u *BadgeUpsertOne) UpdateIcon() *BadgeUpsertOne {
	return u.Update(func(s *BadgeUpsert) {
		s.UpdateIcon()
	})
}

// Exec executes the query.
func (u *BadgeUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BadgeCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BadgeUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BadgeUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BadgeUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BadgeCreateBulk is the builder for creating many Badge entities in bulk.
type BadgeCreateBulk struct {
	config
	err      error
	builders []*BadgeCreate
	conflict []sql.ConflictOption
}

// Save creates the Badge entities in the database.
func (bcb *BadgeCreateBulk) Save(ctx context.Context) ([]*Badge, error) {
	if bcb.err != nil {
		return nil, bcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(bcb.builders))
	nodes := make([]*Badge, len(bcb.builders))
	mutators := make([]Mutator, len(bcb.builders))
	for i := range bcb.builders {
		func(i int, root context.Context) {
			builder := bcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BadgeMutation)
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
					_, err = mutators[i+1].Mutate(root, bcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = bcb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, bcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, bcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (bcb *BadgeCreateBulk) SaveX(ctx context.Context) []*Badge {
	v, err := bcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (bcb *BadgeCreateBulk) Exec(ctx context.Context) error {
	_, err := bcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (bcb *BadgeCreateBulk) ExecX(ctx context.Context) {
	if err := bcb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Badge.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BadgeUpsert) {
//			SetSlug(v+v).
//		}).
//		Exec(ctx)
func (bcb *BadgeCreateBulk) OnConflict(opts ...sql.ConflictOption) *BadgeUpsertBulk {
	bcb.conflict = opts
	return &BadgeUpsertBulk{
		create: bcb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Badge.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (bcb *BadgeCreateBulk) OnConflictColumns(columns ...string) *BadgeUpsertBulk {
	bcb.conflict = append(bcb.conflict, sql.ConflictColumns(columns...))
	return &BadgeUpsertBulk{
		create: bcb,
	}
}

// BadgeUpsertBulk is the builder for "upsert"-ing
// a bulk of Badge nodes.
type BadgeUpsertBulk struct {
	create *BadgeCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Badge.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *BadgeUpsertBulk) UpdateNewValues() *BadgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Badge.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BadgeUpsertBulk) Ignore() *BadgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BadgeUpsertBulk) DoNothing() *BadgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BadgeCreateBulk.OnConflict
// documentation for more info.
func (u *BadgeUpsertBulk) Update(set func(*BadgeUpsert)) *BadgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BadgeUpsert{UpdateSet: update})
	}))
	return u
}

// SetSlug sets the "slug" field.
func (u *BadgeUpsertBulk) SetSlug(v string) *BadgeUpsertBulk {
	return u.Update(func(s *BadgeUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *BadgeUpsertBulk) UpdateSlug() *BadgeUpsertBulk {
	return u.Update(func(s *BadgeUpsert) {
		s.UpdateSlug()
	})
}

// SetName sets the "name" field.
func (u *BadgeUpsertBulk) SetName(v string) *BadgeUpsertBulk {
	return u.Update(func(s *BadgeUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *BadgeUpsertBulk) UpdateName() *BadgeUpsertBulk {
	return u.Update(func(s *BadgeUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *BadgeUpsertBulk) SetDescription(v string) *BadgeUpsertBulk {
	return u.Update(func(s *BadgeUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *BadgeUpsertBulk) UpdateDescription() *BadgeUpsertBulk {
	return u.Update(func(s *BadgeUpsert) {
		s.UpdateDescription()
	})
}

// SetIcon sets the "icon" field.
func (u *BadgeUpsertBulk) SetIcon(v string) *BadgeUpsertBulk {
	return u.Update(func(s *BadgeUpsert) {
		s.SetIcon(v)
	})
}

// UpdateIcon sets the "icon" field to the value that was provided on create.
func (u *BadgeUpsertBulk) UpdateIcon() *BadgeUpsertBulk {
	return u.Update(func(s *BadgeUpsert) {
		s.UpdateIcon()
	})
}

// Exec executes the query.
func (u *BadgeUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the BadgeCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BadgeCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BadgeUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
