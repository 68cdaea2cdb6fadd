// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/predicate"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/vocabcluster"
)

// VocabClusterUpdate is the builder for updating VocabCluster entities.
type VocabClusterUpdate struct {
	config
	hooks    []Hook
	mutation *VocabClusterMutation
}

// Where appends a list predicates to the VocabClusterUpdate builder.
func (vcu *VocabClusterUpdate) Where(ps ...predicate.VocabCluster) *VocabClusterUpdate {
	vcu.mutation.Where(ps...)
	return vcu
}

// SetSlug sets the "slug" field.
func (vcu *VocabClusterUpdate) SetSlug(s string) *VocabClusterUpdate {
	vcu.mutation.SetSlug(s)
	return vcu
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (vcu *VocabClusterUpdate) SetNillableSlug(s *string) *VocabClusterUpdate {
	if s != nil {
		vcu.SetSlug(*s)
	}
	return vcu
}

// SetName sets the "name" field.
func (vcu *VocabClusterUpdate) SetName(s string) *VocabClusterUpdate {
	vcu.mutation.SetName(s)
	return vcu
}

// SetNillableName sets the "name" field if the given value is not nil.
func (vcu *VocabClusterUpdate) SetNillableName(s *string) *VocabClusterUpdate {
	if s != nil {
		vcu.SetName(*s)
	}
	return vcu
}

// SetTopic sets the "topic" field.
func (vcu *VocabClusterUpdate) SetTopic(s string) *VocabClusterUpdate {
	vcu.mutation.SetTopic(s)
	return vcu
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (vcu *VocabClusterUpdate) SetNillableTopic(s *string) *VocabClusterUpdate {
	if s != nil {
		vcu.SetTopic(*s)
	}
	return vcu
}

// Mutation returns the VocabClusterMutation object of the builder.
func (vcu *VocabClusterUpdate) Mutation() *VocabClusterMutation {
	return vcu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (vcu *VocabClusterUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, vcu.sqlSave, vcu.mutation, vcu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (vcu *VocabClusterUpdate) SaveX(ctx context.Context) int {
	affected, err := vcu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (vcu *VocabClusterUpdate) Exec(ctx context.Context) error {
	_, err := vcu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (vcu *VocabClusterUpdate) ExecX(ctx context.Context) {
	if err := vcu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (vcu *VocabClusterUpdate) check() error {
	if v, ok := vcu.mutation.Slug(); ok {
		if err := vocabcluster.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "VocabCluster.slug": %w`, err)}
		}
	}
	if v, ok := vcu.mutation.Name(); ok {
		if err := vocabcluster.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "VocabCluster.name": %w`, err)}
		}
	}
	return nil
}

func (vcu *VocabClusterUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := vcu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(vocabcluster.Table, vocabcluster.Columns, sqlgraph.NewFieldSpec(vocabcluster.FieldID, field.TypeInt))
	if ps := vcu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := vcu.mutation.Slug(); ok {
		_spec.SetField(vocabcluster.FieldSlug, field.TypeString, value)
	}
	if value, ok := vcu.mutation.Name(); ok {
		_spec.SetField(vocabcluster.FieldName, field.TypeString, value)
	}
	if value, ok := vcu.mutation.Topic(); ok {
		_spec.SetField(vocabcluster.FieldTopic, field.TypeString, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, vcu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vocabcluster.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	vcu.mutation.done = true
	return n, nil
}

// VocabClusterUpdateOne is the builder for updating a single VocabCluster entity.
type VocabClusterUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VocabClusterMutation
}

// SetSlug sets the "slug" field.
func (vcuo *VocabClusterUpdateOne) SetSlug(s string) *VocabClusterUpdateOne {
	vcuo.mutation.SetSlug(s)
	return vcuo
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (vcuo *VocabClusterUpdateOne) SetNillableSlug(s *string) *VocabClusterUpdateOne {
	if s != nil {
		vcuo.SetSlug(*s)
	}
	return vcuo
}

// SetName sets the "name" field.
func (vcuo *VocabClusterUpdateOne) SetName(s string) *VocabClusterUpdateOne {
	vcuo.mutation.SetName(s)
	return vcuo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (vcuo *VocabClusterUpdateOne) SetNillableName(s *string) *VocabClusterUpdateOne {
	if s != nil {
		vcuo.SetName(*s)
	}
	return vcuo
}

// SetTopic sets the "topic" field.
func (vcuo *VocabClusterUpdateOne) SetTopic(s string) *VocabClusterUpdateOne {
	vcuo.mutation.SetTopic(s)
	return vcuo
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (vcuo *VocabClusterUpdateOne) SetNillableTopic(s *string) *VocabClusterUpdateOne {
	if s != nil {
		vcuo.SetTopic(*s)
	}
	return vcuo
}

// Mutation returns the VocabClusterMutation object of the builder.
func (vcuo *VocabClusterUpdateOne) Mutation() *VocabClusterMutation {
	return vcuo.mutation
}

// Where appends a list predicates to the VocabClusterUpdate builder.
func (vcuo *VocabClusterUpdateOne) Where(ps ...predicate.VocabCluster) *VocabClusterUpdateOne {
	vcuo.mutation.Where(ps...)
	return vcuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (vcuo *VocabClusterUpdateOne) Select(field string, fields ...string) *VocabClusterUpdateOne {
	vcuo.fields = append([]string{field}, fields...)
	return vcuo
}

// Save executes the query and returns the updated VocabCluster entity.
func (vcuo *VocabClusterUpdateOne) Save(ctx context.Context) (*VocabCluster, error) {
	return withHooks(ctx, vcuo.sqlSave, vcuo.mutation, vcuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (vcuo *VocabClusterUpdateOne) SaveX(ctx context.Context) *VocabCluster {
	node, err := vcuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (vcuo *VocabClusterUpdateOne) Exec(ctx context.Context) error {
	_, err := vcuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (vcuo *VocabClusterUpdateOne) ExecX(ctx context.Context) {
	if err := vcuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (vcuo *VocabClusterUpdateOne) check() error {
	if v, ok := vcuo.mutation.Slug(); ok {
		if err := vocabcluster.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "VocabCluster.slug": %w`, err)}
		}
	}
	if v, ok := vcuo.mutation.Name(); ok {
		if err := vocabcluster.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "VocabCluster.name": %w`, err)}
		}
	}
	return nil
}

func (vcuo *VocabClusterUpdateOne) sqlSave(ctx context.Context) (_node *VocabCluster, err error) {
	if err := vcuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vocabcluster.Table, vocabcluster.Columns, sqlgraph.NewFieldSpec(vocabcluster.FieldID, field.TypeInt))
	id, ok := vcuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VocabCluster.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := vcuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, vocabcluster.FieldID)
		for _, f := range fields {
			if !vocabcluster.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != vocabcluster.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := vcuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := vcuo.mutation.Slug(); ok {
		_spec.SetField(vocabcluster.FieldSlug, field.TypeString, value)
	}
	if value, ok := vcuo.mutation.Name(); ok {
		_spec.SetField(vocabcluster.FieldName, field.TypeString, value)
	}
	if value, ok := vcuo.mutation.Topic(); ok {
		_spec.SetField(vocabcluster.FieldTopic, field.TypeString, value)
	}
	_node = &VocabCluster{config: vcuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, vcuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vocabcluster.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	vcuo.mutation.done = true
	return _node, nil
}
