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
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/vocabsense"
)

// VocabSenseUpdate is the builder for updating VocabSense entities.
type VocabSenseUpdate struct {
	config
	hooks    []Hook
	mutation *VocabSenseMutation
}

// Where appends a list predicates to the VocabSenseUpdate builder.
func (vsu *VocabSenseUpdate) Where(ps ...predicate.VocabSense) *VocabSenseUpdate {
	vsu.mutation.Where(ps...)
	return vsu
}

// SetWord sets the "word" field.
func (vsu *VocabSenseUpdate) SetWord(s string) *VocabSenseUpdate {
	vsu.mutation.SetWord(s)
	return vsu
}

// SetNillableWord sets the "word" field if the given value is not nil.
func (vsu *VocabSenseUpdate) SetNillableWord(s *string) *VocabSenseUpdate {
	if s != nil {
		vsu.SetWord(*s)
	}
	return vsu
}

// SetTranslation sets the "translation" field.
func (vsu *VocabSenseUpdate) SetTranslation(s string) *VocabSenseUpdate {
	vsu.mutation.SetTranslation(s)
	return vsu
}

// SetNillableTranslation sets the "translation" field if the given value is not nil.
func (vsu *VocabSenseUpdate) SetNillableTranslation(s *string) *VocabSenseUpdate {
	if s != nil {
		vsu.SetTranslation(*s)
	}
	return vsu
}

// SetPackSlug sets the "pack_slug" field.
func (vsu *VocabSenseUpdate) SetPackSlug(s string) *VocabSenseUpdate {
	vsu.mutation.SetPackSlug(s)
	return vsu
}

// SetNillablePackSlug sets the "pack_slug" field if the given value is not nil.
func (vsu *VocabSenseUpdate) SetNillablePackSlug(s *string) *VocabSenseUpdate {
	if s != nil {
		vsu.SetPackSlug(*s)
	}
	return vsu
}

// SetClusterSlug sets the "cluster_slug" field.
func (vsu *VocabSenseUpdate) SetClusterSlug(s string) *VocabSenseUpdate {
	vsu.mutation.SetClusterSlug(s)
	return vsu
}

// SetNillableClusterSlug sets the "cluster_slug" field if the given value is not nil.
func (vsu *VocabSenseUpdate) SetNillableClusterSlug(s *string) *VocabSenseUpdate {
	if s != nil {
		vsu.SetClusterSlug(*s)
	}
	return vsu
}

// Mutation returns the VocabSenseMutation object of the builder.
func (vsu *VocabSenseUpdate) Mutation() *VocabSenseMutation {
	return vsu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (vsu *VocabSenseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, vsu.sqlSave, vsu.mutation, vsu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (vsu *VocabSenseUpdate) SaveX(ctx context.Context) int {
	affected, err := vsu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (vsu *VocabSenseUpdate) Exec(ctx context.Context) error {
	_, err := vsu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (vsu *VocabSenseUpdate) ExecX(ctx context.Context) {
	if err := vsu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (vsu *VocabSenseUpdate) check() error {
	if v, ok := vsu.mutation.Word(); ok {
		if err := vocabsense.WordValidator(v); err != nil {
			return &ValidationError{Name: "word", err: fmt.Errorf(`ent: validator failed for field "VocabSense.word": %w`, err)}
		}
	}
	return nil
}

func (vsu *VocabSenseUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := vsu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(vocabsense.Table, vocabsense.Columns, sqlgraph.NewFieldSpec(vocabsense.FieldID, field.TypeInt))
	if ps := vsu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := vsu.mutation.Word(); ok {
		_spec.SetField(vocabsense.FieldWord, field.TypeString, value)
	}
	if value, ok := vsu.mutation.Translation(); ok {
		_spec.SetField(vocabsense.FieldTranslation, field.TypeString, value)
	}
	if value, ok := vsu.mutation.PackSlug(); ok {
		_spec.SetField(vocabsense.FieldPackSlug, field.TypeString, value)
	}
	if value, ok := vsu.mutation.ClusterSlug(); ok {
		_spec.SetField(vocabsense.FieldClusterSlug, field.TypeString, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, vsu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vocabsense.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	vsu.mutation.done = true
	return n, nil
}

// VocabSenseUpdateOne is the builder for updating a single VocabSense entity.
type VocabSenseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VocabSenseMutation
}

// SetWord sets the "word" field.
func (vsuo *VocabSenseUpdateOne) SetWord(s string) *VocabSenseUpdateOne {
	vsuo.mutation.SetWord(s)
	return vsuo
}

// SetNillableWord sets the "word" field if the given value is not nil.
func (vsuo *VocabSenseUpdateOne) SetNillableWord(s *string) *VocabSenseUpdateOne {
	if s != nil {
		vsuo.SetWord(*s)
	}
	return vsuo
}

// SetTranslation sets the "translation" field.
func (vsuo *VocabSenseUpdateOne) SetTranslation(s string) *VocabSenseUpdateOne {
	vsuo.mutation.SetTranslation(s)
	return vsuo
}

// SetNillableTranslation sets the "translation" field if the given value is not nil.
func (vsuo *VocabSenseUpdateOne) SetNillableTranslation(s *string) *VocabSenseUpdateOne {
	if s != nil {
		vsuo.SetTranslation(*s)
	}
	return vsuo
}

// SetPackSlug sets the "pack_slug" field.
func (vsuo *VocabSenseUpdateOne) SetPackSlug(s string) *VocabSenseUpdateOne {
	vsuo.mutation.SetPackSlug(s)
	return vsuo
}

// SetNillablePackSlug sets the "pack_slug" field if the given value is not nil.
func (vsuo *VocabSenseUpdateOne) SetNillablePackSlug(s *string) *VocabSenseUpdateOne {
	if s != nil {
		vsuo.SetPackSlug(*s)
	}
	return vsuo
}

// SetClusterSlug sets the "cluster_slug" field.
func (vsuo *VocabSenseUpdateOne) SetClusterSlug(s string) *VocabSenseUpdateOne {
	vsuo.mutation.SetClusterSlug(s)
	return vsuo
}

// SetNillableClusterSlug sets the "cluster_slug" field if the given value is not nil.
func (vsuo *VocabSenseUpdateOne) SetNillableClusterSlug(s *string) *VocabSenseUpdateOne {
	if s != nil {
		vsuo.SetClusterSlug(*s)
	}
	return vsuo
}

// Mutation returns the VocabSenseMutation object of the builder.
func (vsuo *VocabSenseUpdateOne) Mutation() *VocabSenseMutation {
	return vsuo.mutation
}

// Where appends a list predicates to the VocabSenseUpdate builder.
func (vsuo *VocabSenseUpdateOne) Where(ps ...predicate.VocabSense) *VocabSenseUpdateOne {
	vsuo.mutation.Where(ps...)
	return vsuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (vsuo *VocabSenseUpdateOne) Select(field string, fields ...string) *VocabSenseUpdateOne {
	vsuo.fields = append([]string{field}, fields...)
	return vsuo
}

// Save executes the query and returns the updated VocabSense entity.
func (vsuo *VocabSenseUpdateOne) Save(ctx context.Context) (*VocabSense, error) {
	return withHooks(ctx, vsuo.sqlSave, vsuo.mutation, vsuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (vsuo *VocabSenseUpdateOne) SaveX(ctx context.Context) *VocabSense {
	node, err := vsuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (vsuo *VocabSenseUpdateOne) Exec(ctx context.Context) error {
	_, err := vsuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (vsuo *VocabSenseUpdateOne) ExecX(ctx context.Context) {
	if err := vsuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (vsuo *VocabSenseUpdateOne) check() error {
	if v, ok := vsuo.mutation.Word(); ok {
		if err := vocabsense.WordValidator(v); err != nil {
			return &ValidationError{Name: "word", err: fmt.Errorf(`ent: validator failed for field "VocabSense.word": %w`, err)}
		}
	}
	return nil
}

func (vsuo *VocabSenseUpdateOne) sqlSave(ctx context.Context) (_node *VocabSense, err error) {
	if err := vsuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vocabsense.Table, vocabsense.Columns, sqlgraph.NewFieldSpec(vocabsense.FieldID, field.TypeInt))
	id, ok := vsuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VocabSense.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := vsuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, vocabsense.FieldID)
		for _, f := range fields {
			if !vocabsense.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != vocabsense.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := vsuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := vsuo.mutation.Word(); ok {
		_spec.SetField(vocabsense.FieldWord, field.TypeString, value)
	}
	if value, ok := vsuo.mutation.Translation(); ok {
		_spec.SetField(vocabsense.FieldTranslation, field.TypeString, value)
	}
	if value, ok := vsuo.mutation.PackSlug(); ok {
		_spec.SetField(vocabsense.FieldPackSlug, field.TypeString, value)
	}
	if value, ok := vsuo.mutation.ClusterSlug(); ok {
		_spec.SetField(vocabsense.FieldClusterSlug, field.TypeString, value)
	}
	_node = &VocabSense{config: vsuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, vsuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vocabsense.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	vsuo.mutation.done = true
	return _node, nil
}
