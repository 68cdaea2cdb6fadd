// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/vocabsense"
)

// VocabSenseCreate is the builder for creating a VocabSense entity.
type VocabSenseCreate struct {
	config
	mutation *VocabSenseMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWord sets the "word" field.
func (vsc *VocabSenseCreate) SetWord(s string) *VocabSenseCreate {
	vsc.mutation.SetWord(s)
	return vsc
}

// SetTranslation sets the "translation" field.
func (vsc *VocabSenseCreate) SetTranslation(s string) *VocabSenseCreate {
	vsc.mutation.SetTranslation(s)
	return vsc
}

// SetNillableTranslation sets the "translation" field if the given value is not nil.
func (vsc *VocabSenseCreate) SetNillableTranslation(s *string) *VocabSenseCreate {
	if s != nil {
		vsc.SetTranslation(*s)
	}
	return vsc
}

// SetPackSlug sets the "pack_slug" field.
func (vsc *VocabSenseCreate) SetPackSlug(s string) *VocabSenseCreate {
	vsc.mutation.SetPackSlug(s)
	return vsc
}

// SetNillablePackSlug sets the "pack_slug" field if the given value is not nil.
func (vsc *VocabSenseCreate) SetNillablePackSlug(s *string) *VocabSenseCreate {
	if s != nil {
		vsc.SetPackSlug(*s)
	}
	return vsc
}

// SetClusterSlug sets the "cluster_slug" field.
func (vsc *VocabSenseCreate) SetClusterSlug(s string) *VocabSenseCreate {
	vsc.mutation.SetClusterSlug(s)
	return vsc
}

// SetNillableClusterSlug sets the "cluster_slug" field if the given value is not nil.
func (vsc *VocabSenseCreate) SetNillableClusterSlug(s *string) *VocabSenseCreate {
	if s != nil {
		vsc.SetClusterSlug(*s)
	}
	return vsc
}

// Mutation returns the VocabSenseMutation object of the builder.
func (vsc *VocabSenseCreate) Mutation() *VocabSenseMutation {
	return vsc.mutation
}

// Save creates the VocabSense in the database.
func (vsc *VocabSenseCreate) Save(ctx context.Context) (*VocabSense, error) {
	vsc.defaults()
	return withHooks(ctx, vsc.sqlSave, vsc.mutation, vsc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (vsc *VocabSenseCreate) SaveX(ctx context.Context) *VocabSense {
	v, err := vsc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (vsc *VocabSenseCreate) Exec(ctx context.Context) error {
	_, err := vsc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (vsc *VocabSenseCreate) ExecX(ctx context.Context) {
	if err := vsc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (vsc *VocabSenseCreate) defaults() {
	if _, ok := vsc.mutation.Translation(); !ok {
		v := vocabsense.DefaultTranslation
		vsc.mutation.SetTranslation(v)
	}
	if _, ok := vsc.mutation.PackSlug(); !ok {
		v := vocabsense.DefaultPackSlug
		vsc.mutation.SetPackSlug(v)
	}
	if _, ok := vsc.mutation.ClusterSlug(); !ok {
		v := vocabsense.DefaultClusterSlug
		vsc.mutation.SetClusterSlug(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (vsc *VocabSenseCreate) check() error {
	if _, ok := vsc.mutation.Word(); !ok {
		return &ValidationError{Name: "word", err: errors.New(`ent: missing required field "VocabSense.word"`)}
	}
	if v, ok := vsc.mutation.Word(); ok {
		if err := vocabsense.WordValidator(v); err != nil {
			return &ValidationError{Name: "word", err: fmt.Errorf(`ent: validator failed for field "VocabSense.word": %w`, err)}
		}
	}
	if _, ok := vsc.mutation.Translation(); !ok {
		return &ValidationError{Name: "translation", err: errors.New(`ent: missing required field "VocabSense.translation"`)}
	}
	if _, ok := vsc.mutation.PackSlug(); !ok {
		return &ValidationError{Name: "pack_slug", err: errors.New(`ent: missing required field "VocabSense.pack_slug"`)}
	}
	if _, ok := vsc.mutation.ClusterSlug(); !ok {
		return &ValidationError{Name: "cluster_slug", err: errors.New(`ent: missing required field "VocabSense.cluster_slug"`)}
	}
	return nil
}

func (vsc *VocabSenseCreate) sqlSave(ctx context.Context) (*VocabSense, error) {
	if err := vsc.check(); err != nil {
		return nil, err
	}
	_node, _spec := vsc.createSpec()
	if err := sqlgraph.CreateNode(ctx, vsc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	vsc.mutation.id = &_node.ID
	vsc.mutation.done = true
	return _node, nil
}

func (vsc *VocabSenseCreate) createSpec() (*VocabSense, *sqlgraph.CreateSpec) {
	var (
		_node = &VocabSense{config: vsc.config}
		_spec = sqlgraph.NewCreateSpec(vocabsense.Table, sqlgraph.NewFieldSpec(vocabsense.FieldID, field.TypeInt))
	)
	_spec.OnConflict = vsc.conflict
	if value, ok := vsc.mutation.Word(); ok {
		_spec.SetField(vocabsense.FieldWord, field.TypeString, value)
		_node.Word = value
	}
	if value, ok := vsc.mutation.Translation(); ok {
		_spec.SetField(vocabsense.FieldTranslation, field.TypeString, value)
		_node.Translation = value
	}
	if value, ok := vsc.mutation.PackSlug(); ok {
		_spec.SetField(vocabsense.FieldPackSlug, field.TypeString, value)
		_node.PackSlug = value
	}
	if value, ok := vsc.mutation.ClusterSlug(); ok {
		_spec.SetField(vocabsense.FieldClusterSlug, field.TypeString, value)
		_node.ClusterSlug = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.VocabSense.Create().
//		SetWord(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.VocabSenseUpsert) {
//			SetWord(v+v).
//		}).
//		Exec(ctx)
func (vsc *VocabSenseCreate) OnConflict(opts ...sql.ConflictOption) *VocabSenseUpsertOne {
	vsc.conflict = opts
	return &VocabSenseUpsertOne{
		create: vsc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.VocabSense.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (vsc *VocabSenseCreate) OnConflictColumns(columns ...string) *VocabSenseUpsertOne {
	vsc.conflict = append(vsc.conflict, sql.ConflictColumns(columns...))
	return &VocabSenseUpsertOne{
		create: vsc,
	}
}

type (
	// VocabSenseUpsertOne is the builder for "upsert"-ing
	//  one VocabSense node.
	VocabSenseUpsertOne struct {
		create *VocabSenseCreate
	}

	// VocabSenseUpsert is the "OnConflict" setter.
	VocabSenseUpsert struct {
		*sql.UpdateSet
	}
)

// SetWord sets the "word" field.
func (u *VocabSenseUpsert) SetWord(v string) *VocabSenseUpsert {
	u.Set(vocabsense.FieldWord, v)
	return u
}

// UpdateWord sets the "word" field to the value that was provided on create.
func (u *VocabSenseUpsert) UpdateWord() *VocabSenseUpsert {
	u.SetExcluded(vocabsense.FieldWord)
	return u
}

// SetTranslation sets the "translation" field.
func (u *VocabSenseUpsert) SetTranslation(v string) *VocabSenseUpsert {
	u.Set(vocabsense.FieldTranslation, v)
	return u
}

// UpdateTranslation sets the "translation" field to the value that was provided on create.
func (u *VocabSenseUpsert) UpdateTranslation() *VocabSenseUpsert {
	u.SetExcluded(vocabsense.FieldTranslation)
	return u
}

// SetPackSlug sets the "pack_slug" field.
func (u *VocabSenseUpsert) SetPackSlug(v string) *VocabSenseUpsert {
	u.Set(vocabsense.FieldPackSlug, v)
	return u
}

// UpdatePackSlug sets the "pack_slug" field to the value that was provided on create.
func (u *VocabSenseUpsert) UpdatePackSlug() *VocabSenseUpsert {
	u.SetExcluded(vocabsense.FieldPackSlug)
	return u
}

// SetClusterSlug sets the "cluster_slug" field.
func (u *VocabSenseUpsert) SetClusterSlug(v string) *VocabSenseUpsert {
	u.Set(vocabsense.FieldClusterSlug, v)
	return u
}

// UpdateClusterSlug sets the "cluster_slug" field to the value that was provided on create.
func (u *VocabSenseUpsert) UpdateClusterSlug() *VocabSenseUpsert {
	u.SetExcluded(vocabsense.FieldClusterSlug)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.VocabSense.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *VocabSenseUpsertOne) UpdateNewValues() *VocabSenseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.VocabSense.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *VocabSenseUpsertOne) Ignore() *VocabSenseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *VocabSenseUpsertOne) DoNothing() *VocabSenseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the VocabSenseCreate.OnConflict
// documentation for more info.
func (u *VocabSenseUpsertOne) Update(set func(*VocabSenseUpsert)) *VocabSenseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&VocabSenseUpsert{UpdateSet: update})
	}))
	return u
}

// SetWord sets the "word" field.
func (u *VocabSenseUpsertOne) SetWord(v string) *VocabSenseUpsertOne {
	return u.Update(func(s *VocabSenseUpsert) {
		s.SetWord(v)
	})
}

// UpdateWord sets the "word" field to the value that was provided on create.
func (u *VocabSenseUpsertOne) UpdateWord() *VocabSenseUpsertOne {
	return u.Update(func(s *VocabSenseUpsert) {
		s.UpdateWord()
	})
}

// SetTranslation sets the "translation" field.
func (u *VocabSenseUpsertOne) SetTranslation(v string) *VocabSenseUpsertOne {
	return u.Update(func(s *VocabSenseUpsert) {
		s.SetTranslation(v)
	})
}

// UpdateTranslation sets the "translation" field to the value that was provided on create.
func (u *VocabSenseUpsertOne) UpdateTranslation() *VocabSenseUpsertOne {
	return u.Update(func(s *VocabSenseUpsert) {
		s.UpdateTranslation()
	})
}

// SetPackSlug sets the "pack_slug" field.
func (u *VocabSenseUpsertOne) SetPackSlug(v string) *VocabSenseUpsertOne {
	return u.Update(func(s *VocabSenseUpsert) {
		s.SetPackSlug(v)
	})
}

// UpdatePackSlug sets the "pack_slug" field to the value that was provided on create.
func (u *VocabSenseUpsertOne) UpdatePackSlug() *VocabSenseUpsertOne {
	return u.Update(func(s *VocabSenseUpsert) {
		s.UpdatePackSlug()
	})
}

// SetClusterSlug sets the "cluster_slug" field.
func (u *VocabSenseUpsertOne) SetClusterSlug(v string) *VocabSenseUpsertOne {
	return u.Update(func(s *VocabSenseUpsert) {
		s.SetClusterSlug(v)
	})
}

// UpdateClusterSlug sets the "cluster_slug" field to the value that was provided on create.
func (u *VocabSenseUpsertOne) UpdateClusterSlug() *VocabSenseUpsertOne {
	return u.Update(func(s *VocabSenseUpsert) {
		s.UpdateClusterSlug()
	})
}

// Exec executes the query.
func (u *VocabSenseUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for VocabSenseCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *VocabSenseUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *VocabSenseUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *VocabSenseUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// VocabSenseCreateBulk is the builder for creating many VocabSense entities in bulk.
type VocabSenseCreateBulk struct {
	config
	err      error
	builders []*VocabSenseCreate
	conflict []sql.ConflictOption
}

// Save creates the VocabSense entities in the database.
func (vscb *VocabSenseCreateBulk) Save(ctx context.Context) ([]*VocabSense, error) {
	if vscb.err != nil {
		return nil, vscb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(vscb.builders))
	nodes := make([]*VocabSense, len(vscb.builders))
	mutators := make([]Mutator, len(vscb.builders))
	for i := range vscb.builders {
		func(i int, root context.Context) {
			builder := vscb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VocabSenseMutation)
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
					_, err = mutators[i+1].Mutate(root, vscb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = vscb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, vscb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, vscb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (vscb *VocabSenseCreateBulk) SaveX(ctx context.Context) []*VocabSense {
	v, err := vscb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (vscb *VocabSenseCreateBulk) Exec(ctx context.Context) error {
	_, err := vscb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (vscb *VocabSenseCreateBulk) ExecX(ctx context.Context) {
	if err := vscb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.VocabSense.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.VocabSenseUpsert) {
//			SetWord(v+v).
//		}).
//		Exec(ctx)
func (vscb *VocabSenseCreateBulk) OnConflict(opts ...sql.ConflictOption) *VocabSenseUpsertBulk {
	vscb.conflict = opts
	return &VocabSenseUpsertBulk{
		create: vscb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.VocabSense.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (vscb *VocabSenseCreateBulk) OnConflictColumns(columns ...string) *VocabSenseUpsertBulk {
	vscb.conflict = append(vscb.conflict, sql.ConflictColumns(columns...))
	return &VocabSenseUpsertBulk{
		create: vscb,
	}
}

// VocabSenseUpsertBulk is the builder for "upsert"-ing
// a bulk of VocabSense nodes.
type VocabSenseUpsertBulk struct {
	create *VocabSenseCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.VocabSense.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *VocabSenseUpsertBulk) UpdateNewValues() *VocabSenseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.VocabSense.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *VocabSenseUpsertBulk) Ignore() *VocabSenseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *VocabSenseUpsertBulk) DoNothing() *VocabSenseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the VocabSenseCreateBulk.OnConflict
// documentation for more info.
func (u *VocabSenseUpsertBulk) Update(set func(*VocabSenseUpsert)) *VocabSenseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&VocabSenseUpsert{UpdateSet: update})
	}))
	return u
}

// SetWord sets the "word" field.
func (u *VocabSenseUpsertBulk) SetWord(v string) *VocabSenseUpsertBulk {
	return u.Update(func(s *VocabSenseUpsert) {
		s.SetWord(v)
	})
}

// UpdateWord sets the "word" field to the value that was provided on create.
func (u *VocabSenseUpsertBulk) UpdateWord() *VocabSenseUpsertBulk {
	return u.Update(func(s *VocabSenseUpsert) {
		s.UpdateWord()
	})
}

// SetTranslation sets the "translation" field.
func (u *VocabSenseUpsertBulk) SetTranslation(v string) *VocabSenseUpsertBulk {
	return u.Update(func(s *VocabSenseUpsert) {
		s.SetTranslation(v)
	})
}

// UpdateTranslation sets the "translation" field to the value that was provided on create.
func (u *VocabSenseUpsertBulk) UpdateTranslation() *VocabSenseUpsertBulk {
	return u.Update(func(s *VocabSenseUpsert) {
		s.UpdateTranslation()
	})
}

// SetPackSlug sets the "pack_slug" field.
func (u *VocabSenseUpsertBulk) SetPackSlug(v string) *VocabSenseUpsertBulk {
	return u.Update(func(s *VocabSenseUpsert) {
		s.SetPackSlug(v)
	})
}

// UpdatePackSlug sets the "pack_slug" field to the value that was provided on create.
func (u *VocabSenseUpsertBulk) UpdatePackSlug() *VocabSenseUpsertBulk {
	return u.Update(func(s *VocabSenseUpsert) {
		s.UpdatePackSlug()
	})
}

// SetClusterSlug sets the "cluster_slug" field.
func (u *VocabSenseUpsertBulk) SetClusterSlug(v string) *VocabSenseUpsertBulk {
	return u.Update(func(s *VocabSenseUpsert) {
		s.SetClusterSlug(v)
	})
}

// UpdateClusterSlug sets the "cluster_slug" field to the value that was provided on create.
func (u *VocabSenseUpsertBulk) UpdateClusterSlug() *VocabSenseUpsertBulk {
	return u.Update(func(s *VocabSenseUpsert) {
		s.UpdateClusterSlug()
	})
}

// Exec executes the query.
func (u *VocabSenseUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the VocabSenseCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for VocabSenseCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *VocabSenseUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
