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
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/vocabpack"
)

// VocabPackUpdate is the builder for updating VocabPack entities.
type VocabPackUpdate struct {
	config
	hooks    []Hook
	mutation *VocabPackMutation
}

// Where appends a list predicates to the VocabPackUpdate builder.
func (vpu *VocabPackUpdate) Where(ps ...predicate.VocabPack) *VocabPackUpdate {
	vpu.mutation.Where(ps...)
	return vpu
}

// SetSlug sets the "slug" field.
func (vpu *VocabPackUpdate) SetSlug(s string) *VocabPackUpdate {
	vpu.mutation.SetSlug(s)
	return vpu
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (vpu *VocabPackUpdate) SetNillableSlug(s *string) *VocabPackUpdate {
	if s != nil {
		vpu.SetSlug(*s)
	}
	return vpu
}

// SetName sets the "name" field.
func (vpu *VocabPackUpdate) SetName(s string) *VocabPackUpdate {
	vpu.mutation.SetName(s)
	return vpu
}

// SetNillableName sets the "name" field if the given value is not nil.
func (vpu *VocabPackUpdate) SetNillableName(s *string) *VocabPackUpdate {
	if s != nil {
		vpu.SetName(*s)
	}
	return vpu
}

// SetDescription sets the "description" field.
func (vpu *VocabPackUpdate) SetDescription(s string) *VocabPackUpdate {
	vpu.mutation.SetDescription(s)
	return vpu
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (vpu *VocabPackUpdate) SetNillableDescription(s *string) *VocabPackUpdate {
	if s != nil {
		vpu.SetDescription(*s)
	}
	return vpu
}

// SetLanguage sets the "language" field.
func (vpu *VocabPackUpdate) SetLanguage(s string) *VocabPackUpdate {
	vpu.mutation.SetLanguage(s)
	return vpu
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (vpu *VocabPackUpdate) SetNillableLanguage(s *string) *VocabPackUpdate {
	if s != nil {
		vpu.SetLanguage(*s)
	}
	return vpu
}

// SetFlagship sets the "flagship" field.
func (vpu *VocabPackUpdate) SetFlagship(b bool) *VocabPackUpdate {
	vpu.mutation.SetFlagship(b)
	return vpu
}

// SetNillableFlagship sets the "flagship" field if the given value is not nil.
func (vpu *VocabPackUpdate) SetNillableFlagship(b *bool) *VocabPackUpdate {
	if b != nil {
		vpu.SetFlagship(*b)
	}
	return vpu
}

// Mutation returns the VocabPackMutation object of the builder.
func (vpu *VocabPackUpdate) Mutation() *VocabPackMutation {
	return vpu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (vpu *VocabPackUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, vpu.sqlSave, vpu.mutation, vpu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (vpu *VocabPackUpdate) SaveX(ctx context.Context) int {
	affected, err := vpu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (vpu *VocabPackUpdate) Exec(ctx context.Context) error {
	_, err := vpu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (vpu *VocabPackUpdate) ExecX(ctx context.Context) {
	if err := vpu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (vpu *VocabPackUpdate) check() error {
	if v, ok := vpu.mutation.Slug(); ok {
		if err := vocabpack.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "VocabPack.slug": %w`, err)}
		}
	}
	if v, ok := vpu.mutation.Name(); ok {
		if err := vocabpack.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "VocabPack.name": %w`, err)}
		}
	}
	return nil
}

func (vpu *VocabPackUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := vpu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(vocabpack.Table, vocabpack.Columns, sqlgraph.NewFieldSpec(vocabpack.FieldID, field.TypeInt))
	if ps := vpu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := vpu.mutation.Slug(); ok {
		_spec.SetField(vocabpack.FieldSlug, field.TypeString, value)
	}
	if value, ok := vpu.mutation.Name(); ok {
		_spec.SetField(vocabpack.FieldName, field.TypeString, value)
	}
	if value, ok := vpu.mutation.Description(); ok {
		_spec.SetField(vocabpack.FieldDescription, field.TypeString, value)
	}
	if value, ok := vpu.mutation.Language(); ok {
		_spec.SetField(vocabpack.FieldLanguage, field.TypeString, value)
	}
	if value, ok := vpu.mutation.Flagship(); ok {
		_spec.SetField(vocabpack.FieldFlagship, field.TypeBool, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, vpu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vocabpack.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	vpu.mutation.done = true
	return n, nil
}

// VocabPackUpdateOne is the builder for updating a single VocabPack entity.
type VocabPackUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VocabPackMutation
}

// SetSlug sets the "slug" field.
func (vpuo *VocabPackUpdateOne) SetSlug(s string) *VocabPackUpdateOne {
	vpuo.mutation.SetSlug(s)
	return vpuo
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (vpuo *VocabPackUpdateOne) SetNillableSlug(s *string) *VocabPackUpdateOne {
	if s != nil {
		vpuo.SetSlug(*s)
	}
	return vpuo
}

// SetName sets the "name" field.
func (vpuo *VocabPackUpdateOne) SetName(s string) *VocabPackUpdateOne {
	vpuo.mutation.SetName(s)
	return vpuo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (vpuo *VocabPackUpdateOne) SetNillableName(s *string) *VocabPackUpdateOne {
	if s != nil {
		vpuo.SetName(*s)
	}
	return vpuo
}

// SetDescription sets the "description" field.
func (vpuo *VocabPackUpdateOne) SetDescription(s string) *VocabPackUpdateOne {
	vpuo.mutation.SetDescription(s)
	return vpuo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (vpuo *VocabPackUpdateOne) SetNillableDescription(s *string) *VocabPackUpdateOne {
	if s != nil {
		vpuo.SetDescription(*s)
	}
	return vpuo
}

// SetLanguage sets the "language" field.
func (vpuo *VocabPackUpdateOne) SetLanguage(s string) *VocabPackUpdateOne {
	vpuo.mutation.SetLanguage(s)
	return vpuo
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (vpuo *VocabPackUpdateOne) SetNillableLanguage(s *string) *VocabPackUpdateOne {
	if s != nil {
		vpuo.SetLanguage(*s)
	}
	return vpuo
}

// SetFlagship sets the "flagship" field.
func (vpuo *VocabPackUpdateOne) SetFlagship(b bool) *VocabPackUpdateOne {
	vpuo.mutation.SetFlagship(b)
	return vpuo
}

// SetNillableFlagship sets the "flagship" field if the given value is not nil.
func (vpuo *VocabPackUpdateOne) SetNillableFlagship(b *bool) *VocabPackUpdateOne {
	if b != nil {
		vpuo.SetFlagship(*b)
	}
	return vpuo
}

// Mutation returns the VocabPackMutation object of the builder.
func (vpuo *VocabPackUpdateOne) Mutation() *VocabPackMutation {
	return vpuo.mutation
}

// Where appends a list predicates to the VocabPackUpdate builder.
func (vpuo *VocabPackUpdateOne) Where(ps ...predicate.VocabPack) *VocabPackUpdateOne {
	vpuo.mutation.Where(ps...)
	return vpuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (vpuo *VocabPackUpdateOne) Select(field string, fields ...string) *VocabPackUpdateOne {
	vpuo.fields = append([]string{field}, fields...)
	return vpuo
}

// Save executes the query and returns the updated VocabPack entity.
func (vpuo *VocabPackUpdateOne) Save(ctx context.Context) (*VocabPack, error) {
	return withHooks(ctx, vpuo.sqlSave, vpuo.mutation, vpuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (vpuo *VocabPackUpdateOne) SaveX(ctx context.Context) *VocabPack {
	node, err := vpuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (vpuo *VocabPackUpdateOne) Exec(ctx context.Context) error {
	_, err := vpuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (vpuo *VocabPackUpdateOne) ExecX(ctx context.Context) {
	if err := vpuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (vpuo *VocabPackUpdateOne) check() error {
	if v, ok := vpuo.mutation.Slug(); ok {
		if err := vocabpack.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "VocabPack.slug": %w`, err)}
		}
	}
	if v, ok := vpuo.mutation.Name(); ok {
		if err := vocabpack.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "VocabPack.name": %w`, err)}
		}
	}
	return nil
}

func (vpuo *VocabPackUpdateOne) sqlSave(ctx context.Context) (_node *VocabPack, err error) {
	if err := vpuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vocabpack.Table, vocabpack.Columns, sqlgraph.NewFieldSpec(vocabpack.FieldID, field.TypeInt))
	id, ok := vpuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VocabPack.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := vpuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, vocabpack.FieldID)
		for _, f := range fields {
			if !vocabpack.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != vocabpack.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := vpuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := vpuo.mutation.Slug(); ok {
		_spec.SetField(vocabpack.FieldSlug, field.TypeString, value)
	}
	if value, ok := vpuo.mutation.Name(); ok {
		_spec.SetField(vocabpack.FieldName, field.TypeString, value)
	}
	if value, ok := vpuo.mutation.Description(); ok {
		_spec.SetField(vocabpack.FieldDescription, field.TypeString, value)
	}
	if value, ok := vpuo.mutation.Language(); ok {
		_spec.SetField(vocabpack.FieldLanguage, field.TypeString, value)
	}
	if value, ok := vpuo.mutation.Flagship(); ok {
		_spec.SetField(vocabpack.FieldFlagship, field.TypeBool, value)
	}
	_node = &VocabPack{config: vpuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, vpuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vocabpack.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	vpuo.mutation.done = true
	return _node, nil
}
