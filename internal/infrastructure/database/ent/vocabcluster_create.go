// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/vocabcluster"
)

// VocabClusterCreate is the builder for creating a VocabCluster entity.
type VocabClusterCreate struct {
	config
	mutation *VocabClusterMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSlug sets the "slug" field.
func (vcc *VocabClusterCreate) SetSlug(s string) *VocabClusterCreate {
	vcc.mutation.SetSlug(s)
	return vcc
}

// SetName sets the "name" field.
func (vcc *VocabClusterCreate) SetName(s string) *VocabClusterCreate {
	vcc.mutation.SetName(s)
	return vcc
}

// SetTopic sets the "topic" field.
func (vcc *VocabClusterCreate) SetTopic(s string) *VocabClusterCreate {
	vcc.mutation.SetTopic(s)
	return vcc
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (vcc *VocabClusterCreate) SetNillableTopic(s *string) *VocabClusterCreate {
	if s != nil {
		vcc.SetTopic(*s)
	}
	return vcc
}

// Mutation returns the VocabClusterMutation object of the builder.
func (vcc *VocabClusterCreate) Mutation() *VocabClusterMutation {
	return vcc.mutation
}

// Save creates the VocabCluster in the database.
func (vcc *VocabClusterCreate) Save(ctx context.Context) (*VocabCluster, error) {
	vcc.defaults()
	return withHooks(ctx, vcc.sqlSave, vcc.mutation, vcc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (vcc *VocabClusterCreate) SaveX(ctx context.Context) *VocabCluster {
	v, err := vcc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (vcc *VocabClusterCreate) Exec(ctx context.Context) error {
	_, err := vcc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (vcc *VocabClusterCreate) ExecX(ctx context.Context) {
	if err := vcc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (vcc *VocabClusterCreate) defaults() {
	if _, ok := vcc.mutation.Topic(); !ok {
		v := vocabcluster.DefaultTopic
		vcc.mutation.SetTopic(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (vcc *VocabClusterCreate) check() error {
	if _, ok := vcc.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`ent: missing required field "VocabCluster.slug"`)}
	}
	if v, ok := vcc.mutation.Slug(); ok {
		if err := vocabcluster.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "VocabCluster.slug": %w`, err)}
		}
	}
	if _, ok := vcc.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "VocabCluster.name"`)}
	}
	if v, ok := vcc.mutation.Name(); ok {
		if err := vocabcluster.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "VocabCluster.name": %w`, err)}
		}
	}
	if _, ok := vcc.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "VocabCluster.topic"`)}
	}
	return nil
}

func (vcc *VocabClusterCreate) sqlSave(ctx context.Context) (*VocabCluster, error) {
	if err := vcc.check(); err != nil {
		return nil, err
	}
	_node, _spec := vcc.createSpec()
	if err := sqlgraph.CreateNode(ctx, vcc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	vcc.mutation.id = &_node.ID
	vcc.mutation.done = true
	return _node, nil
}

func (vcc *VocabClusterCreate) createSpec() (*VocabCluster, *sqlgraph.CreateSpec) {
	var (
		_node = &VocabCluster{config: vcc.config}
		_spec = sqlgraph.NewCreateSpec(vocabcluster.Table, sqlgraph.NewFieldSpec(vocabcluster.FieldID, field.TypeInt))
	)
	_spec.OnConflict = vcc.conflict
	if value, ok := vcc.mutation.Slug(); ok {
		_spec.SetField(vocabcluster.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := vcc.mutation.Name(); ok {
		_spec.SetField(vocabcluster.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := vcc.mutation.Topic(); ok {
		_spec.SetField(vocabcluster.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.VocabCluster.Create().
//		SetSlug(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.VocabClusterUpsert) {
//			SetSlug(v+v).
//		}).
//		Exec(ctx)
func (vcc *VocabClusterCreate) OnConflict(opts ...sql.ConflictOption) *VocabClusterUpsertOne {
	vcc.conflict = opts
	return &VocabClusterUpsertOne{
		create: vcc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.VocabCluster.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (vcc *VocabClusterCreate) OnConflictColumns(columns ...string) *VocabClusterUpsertOne {
	vcc.conflict = append(vcc.conflict, sql.ConflictColumns(columns...))
	return &VocabClusterUpsertOne{
		create: vcc,
	}
}

type (
	// VocabClusterUpsertOne is the builder for "upsert"-ing
	//  one VocabCluster node.
	VocabClusterUpsertOne struct {
		create *VocabClusterCreate
	}

	// VocabClusterUpsert is the "OnConflict" setter.
	VocabClusterUpsert struct {
		*sql.UpdateSet
	}
)

// SetSlug sets the "slug" field.
func (u *VocabClusterUpsert) SetSlug(v string) *VocabClusterUpsert {
	u.Set(vocabcluster.FieldSlug, v)
	return u
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *VocabClusterUpsert) UpdateSlug() *VocabClusterUpsert {
	u.SetExcluded(vocabcluster.FieldSlug)
	return u
}

// SetName sets the "name" field.
func (u *VocabClusterUpsert) SetName(v string) *VocabClusterUpsert {
	u.Set(vocabcluster.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *VocabClusterUpsert) UpdateName() *VocabClusterUpsert {
	u.SetExcluded(vocabcluster.FieldName)
	return u
}

// SetTopic sets the "topic" field.
func (u *VocabClusterUpsert) SetTopic(v string) *VocabClusterUpsert {
	u.Set(vocabcluster.FieldTopic, v)
	return u
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *VocabClusterUpsert) UpdateTopic() *VocabClusterUpsert {
	u.SetExcluded(vocabcluster.FieldTopic)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.VocabCluster.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *VocabClusterUpsertOne) UpdateNewValues() *VocabClusterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.VocabCluster.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *VocabClusterUpsertOne) Ignore() *VocabClusterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *VocabClusterUpsertOne) DoNothing() *VocabClusterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the VocabClusterCreate.OnConflict
// documentation for more info.
func (u *VocabClusterUpsertOne) Update(set func(*VocabClusterUpsert)) *VocabClusterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&VocabClusterUpsert{UpdateSet: update})
	}))
	return u
}

// SetSlug sets the "slug" field.
func (u *VocabClusterUpsertOne) SetSlug(v string) *VocabClusterUpsertOne {
	return u.Update(func(s *VocabClusterUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *VocabClusterUpsertOne) UpdateSlug() *VocabClusterUpsertOne {
	return u.Update(func(s *VocabClusterUpsert) {
		s.UpdateSlug()
	})
}

// SetName sets the "name" field.
func (u *VocabClusterUpsertOne) SetName(v string) *VocabClusterUpsertOne {
	return u.Update(func(s *VocabClusterUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *VocabClusterUpsertOne) UpdateName() *VocabClusterUpsertOne {
	return u.Update(func(s *VocabClusterUpsert) {
		s.UpdateName()
	})
}

// SetTopic sets the "topic" field.
func (u *VocabClusterUpsertOne) SetTopic(v string) *VocabClusterUpsertOne {
	return u.Update(func(s *VocabClusterUpsert) {
		s.SetTopic(v)
	})
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *VocabClusterUpsertOne) UpdateTopic() *VocabClusterUpsertOne {
	return u.Update(func(s *VocabClusterUpsert) {
		s.UpdateTopic()
	})
}

// Exec executes the query.
func (u *VocabClusterUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for VocabClusterCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *VocabClusterUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *VocabClusterUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *VocabClusterUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// VocabClusterCreateBulk is the builder for creating many VocabCluster entities in bulk.
type VocabClusterCreateBulk struct {
	config
	err      error
	builders []*VocabClusterCreate
	conflict []sql.ConflictOption
}

// Save creates the VocabCluster entities in the database.
func (vccb *VocabClusterCreateBulk) Save(ctx context.Context) ([]*VocabCluster, error) {
	if vccb.err != nil {
		return nil, vccb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(vccb.builders))
	nodes := make([]*VocabCluster, len(vccb.builders))
	mutators := make([]Mutator, len(vccb.builders))
	for i := range vccb.builders {
		func(i int, root context.Context) {
			builder := vccb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VocabClusterMutation)
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
					_, err = mutators[i+1].Mutate(root, vccb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = vccb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, vccb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, vccb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (vccb *VocabClusterCreateBulk) SaveX(ctx context.Context) []*VocabCluster {
	v, err := vccb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (vccb *VocabClusterCreateBulk) Exec(ctx context.Context) error {
	_, err := vccb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (vccb *VocabClusterCreateBulk) ExecX(ctx context.Context) {
	if err := vccb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.VocabCluster.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.VocabClusterUpsert) {
//			SetSlug(v+v).
//		}).
//		Exec(ctx)
func (vccb *VocabClusterCreateBulk) OnConflict(opts ...sql.ConflictOption) *VocabClusterUpsertBulk {
	vccb.conflict = opts
	return &VocabClusterUpsertBulk{
		create: vccb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.VocabCluster.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (vccb *VocabClusterCreateBulk) OnConflictColumns(columns ...string) *VocabClusterUpsertBulk {
	vccb.conflict = append(vccb.conflict, sql.ConflictColumns(columns...))
	return &VocabClusterUpsertBulk{
		create: vccb,
	}
}

// VocabClusterUpsertBulk is the builder for "upsert"-ing
// a bulk of VocabCluster nodes.
type VocabClusterUpsertBulk struct {
	create *VocabClusterCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.VocabCluster.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *VocabClusterUpsertBulk) UpdateNewValues() *VocabClusterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.VocabCluster.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *VocabClusterUpsertBulk) Ignore() *VocabClusterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *VocabClusterUpsertBulk) DoNothing() *VocabClusterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the VocabClusterCreateBulk.OnConflict
// documentation for more info.
func (u *VocabClusterUpsertBulk) Update(set func(*VocabClusterUpsert)) *VocabClusterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&VocabClusterUpsert{UpdateSet: update})
	}))
	return u
}

// SetSlug sets the "slug" field.
func (u *VocabClusterUpsertBulk) SetSlug(v string) *VocabClusterUpsertBulk {
	return u.Update(func(s *VocabClusterUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *VocabClusterUpsertBulk) UpdateSlug() *VocabClusterUpsertBulk {
	return u.Update(func(s *VocabClusterUpsert) {
		s.UpdateSlug()
	})
}

// SetName sets the "name" field.
func (u *VocabClusterUpsertBulk) SetName(v string) *VocabClusterUpsertBulk {
	return u.Update(func(s *VocabClusterUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *VocabClusterUpsertBulk) UpdateName() *VocabClusterUpsertBulk {
	return u.Update(func(s *VocabClusterUpsert) {
		s.UpdateName()
	})
}

// SetTopic sets the "topic" field.
func (u *VocabClusterUpsertBulk) SetTopic(v string) *VocabClusterUpsertBulk {
	return u.Update(func(s *VocabClusterUpsert) {
		s.SetTopic(v)
	})
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *VocabClusterUpsertBulk) UpdateTopic() *VocabClusterUpsertBulk {
	return u.Update(func(s *VocabClusterUpsert) {
		s.UpdateTopic()
	})
}

// Exec executes the query.
func (u *VocabClusterUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the VocabClusterCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for VocabClusterCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *VocabClusterUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
