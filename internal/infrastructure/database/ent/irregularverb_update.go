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
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/predicate"
)

// IrregularVerbUpdate is the builder for updating IrregularVerb entities.
type IrregularVerbUpdate struct {
	config
	hooks    []Hook
	mutation *IrregularVerbMutation
}

// Where appends a list predicates to the IrregularVerbUpdate builder.
func (ivu *IrregularVerbUpdate) Where(ps ...predicate.IrregularVerb) *IrregularVerbUpdate {
	ivu.mutation.Where(ps...)
	return ivu
}

// SetBase sets the "base" field.
func (ivu *IrregularVerbUpdate) SetBase(s string) *IrregularVerbUpdate {
	ivu.mutation.SetBase(s)
	return ivu
}

// SetNillableBase sets the "base" field if the given value is not nil.
func (ivu *IrregularVerbUpdate) SetNillableBase(s *string) *IrregularVerbUpdate {
	if s != nil {
		ivu.SetBase(*s)
	}
	return ivu
}

// SetPast sets the "past" field.
func (ivu *IrregularVerbUpdate) SetPast(s string) *IrregularVerbUpdate {
	ivu.mutation.SetPast(s)
	return ivu
}

// SetNillablePast sets the "past" field if the given value is not nil.
func (ivu *IrregularVerbUpdate) SetNillablePast(s *string) *IrregularVerbUpdate {
	if s != nil {
		ivu.SetPast(*s)
	}
	return ivu
}

// SetParticiple sets the "participle" field.
func (ivu *IrregularVerbUpdate) SetParticiple(s string) *IrregularVerbUpdate {
	ivu.mutation.SetParticiple(s)
	return ivu
}

// SetNillableParticiple sets the "participle" field if the given value is not nil.
func (ivu *IrregularVerbUpdate) SetNillableParticiple(s *string) *IrregularVerbUpdate {
	if s != nil {
		ivu.SetParticiple(*s)
	}
	return ivu
}

// SetTranslation sets the "translation" field.
func (ivu *IrregularVerbUpdate) SetTranslation(s string) *IrregularVerbUpdate {
	ivu.mutation.SetTranslation(s)
	return ivu
}

// SetNillableTranslation sets the "translation" field if the given value is not nil.
func (ivu *IrregularVerbUpdate) SetNillableTranslation(s *string) *IrregularVerbUpdate {
	if s != nil {
		ivu.SetTranslation(*s)
	}
	return ivu
}

// Mutation returns the IrregularVerbMutation object of the builder.
func (ivu *IrregularVerbUpdate) Mutation() *IrregularVerbMutation {
	return ivu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (ivu *IrregularVerbUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, ivu.sqlSave, ivu.mutation, ivu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ivu *IrregularVerbUpdate) SaveX(ctx context.Context) int {
	affected, err := ivu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (ivu *IrregularVerbUpdate) Exec(ctx context.Context) error {
	_, err := ivu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ivu *IrregularVerbUpdate) ExecX(ctx context.Context) {
	if err := ivu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ivu *IrregularVerbUpdate) check() error {
	if v, ok := ivu.mutation.Base(); ok {
		if err := irregularverb.BaseValidator(v); err != nil {
			return &ValidationError{Name: "base", err: fmt.Errorf(`ent: validator failed for field "IrregularVerb.base": %w`, err)}
		}
	}
	if v, ok := ivu.mutation.Past(); ok {
		if err := irregularverb.PastValidator(v); err != nil {
			return &ValidationError{Name: "past", err: fmt.Errorf(`ent: validator failed for field "IrregularVerb.past": %w`, err)}
		}
	}
	if v, ok := ivu.mutation.Participle(); ok {
		if err := irregularverb.ParticipleValidator(v); err != nil {
			return &ValidationError{Name: "participle", err: fmt.Errorf(`ent: validator failed for field "IrregularVerb.participle": %w`, err)}
		}
	}
	return nil
}

func (ivu *IrregularVerbUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := ivu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(irregularverb.Table, irregularverb.Columns, sqlgraph.NewFieldSpec(irregularverb.FieldID, field.TypeInt))
	if ps := ivu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ivu.mutation.Base(); ok {
		_spec.SetField(irregularverb.FieldBase, field.TypeString, value)
	}
	if value, ok := ivu.mutation.Past(); ok {
		_spec.SetField(irregularverb.FieldPast, field.TypeString, value)
	}
	if value, ok := ivu.mutation.Participle(); ok {
		_spec.SetField(irregularverb.FieldParticiple, field.TypeString, value)
	}
	if value, ok := ivu.mutation.Translation(); ok {
		_spec.SetField(irregularverb.FieldTranslation, field.TypeString, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, ivu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{irregularverb.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	ivu.mutation.done = true
	return n, nil
}

// IrregularVerbUpdateOne is the builder for updating a single IrregularVerb entity.
type IrregularVerbUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IrregularVerbMutation
}

// SetBase sets the "base" field.
func (ivuo *IrregularVerbUpdateOne) SetBase(s string) *IrregularVerbUpdateOne {
	ivuo.mutation.SetBase(s)
	return ivuo
}

// SetNillableBase sets the "base" field if the given value is not nil.
func (ivuo *IrregularVerbUpdateOne) SetNillableBase(s *string) *IrregularVerbUpdateOne {
	if s != nil {
		ivuo.SetBase(*s)
	}
	return ivuo
}

// SetPast sets the "past" field.
func (ivuo *IrregularVerbUpdateOne) SetPast(s string) *IrregularVerbUpdateOne {
	ivuo.mutation.SetPast(s)
	return ivuo
}

// SetNillablePast sets the "past" field if the given value is not nil.
func (ivuo *IrregularVerbUpdateOne) SetNillablePast(s *string) *IrregularVerbUpdateOne {
	if s != nil {
		ivuo.SetPast(*s)
	}
	return ivuo
}

// SetParticiple sets the "participle" field.
func (ivuo *IrregularVerbUpdateOne) SetParticiple(s string) *IrregularVerbUpdateOne {
	ivuo.mutation.SetParticiple(s)
	return ivuo
}

// SetNillableParticiple sets the "participle" field if the given value is not nil.
func (ivuo *IrregularVerbUpdateOne) SetNillableParticiple(s *string) *IrregularVerbUpdateOne {
	if s != nil {
		ivuo.SetParticiple(*s)
	}
	return ivuo
}

// SetTranslation sets the "translation" field.
func (ivuo *IrregularVerbUpdateOne) SetTranslation(s string) *IrregularVerbUpdateOne {
	ivuo.mutation.SetTranslation(s)
	return ivuo
}

// SetNillableTranslation sets the "translation" field if the given value is not nil.
func (ivuo *IrregularVerbUpdateOne) SetNillableTranslation(s *string) *IrregularVerbUpdateOne {
	if s != nil {
		ivuo.SetTranslation(*s)
	}
	return ivuo
}

// Mutation returns the IrregularVerbMutation object of the builder.
func (ivuo *IrregularVerbUpdateOne) Mutation() *IrregularVerbMutation {
	return ivuo.mutation
}

// Where appends a list predicates to the IrregularVerbUpdate builder.
func (ivuo *IrregularVerbUpdateOne) Where(ps ...predicate.IrregularVerb) *IrregularVerbUpdateOne {
	ivuo.mutation.Where(ps...)
	return ivuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (ivuo *IrregularVerbUpdateOne) Select(field string, fields ...string) *IrregularVerbUpdateOne {
	ivuo.fields = append([]string{field}, fields...)
	return ivuo
}

// Save executes the query and returns the updated IrregularVerb entity.
func (ivuo *IrregularVerbUpdateOne) Save(ctx context.Context) (*IrregularVerb, error) {
	return withHooks(ctx, ivuo.sqlSave, ivuo.mutation, ivuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ivuo *IrregularVerbUpdateOne) SaveX(ctx context.Context) *IrregularVerb {
	node, err := ivuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (ivuo *IrregularVerbUpdateOne) Exec(ctx context.Context) error {
	_, err := ivuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ivuo *IrregularVerbUpdateOne) ExecX(ctx context.Context) {
	if err := ivuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ivuo *IrregularVerbUpdateOne) check() error {
	if v, ok := ivuo.mutation.Base(); ok {
		if err := irregularverb.BaseValidator(v); err != nil {
			return &ValidationError{Name: "base", err: fmt.Errorf(`ent: validator failed for field "IrregularVerb.base": %w`, err)}
		}
	}
	if v, ok := ivuo.mutation.Past(); ok {
		if err := irregularverb.PastValidator(v); err != nil {
			return &ValidationError{Name: "past", err: fmt.Errorf(`ent: validator failed for field "IrregularVerb.past": %w`, err)}
		}
	}
	if v, ok := ivuo.mutation.Participle(); ok {
		if err := irregularverb.ParticipleValidator(v); err != nil {
			return &ValidationError{Name: "participle", err: fmt.Errorf(`ent: validator failed for field "IrregularVerb.participle": %w`, err)}
		}
	}
	return nil
}

func (ivuo *IrregularVerbUpdateOne) sqlSave(ctx context.Context) (_node *IrregularVerb, err error) {
	if err := ivuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(irregularverb.Table, irregularverb.Columns, sqlgraph.NewFieldSpec(irregularverb.FieldID, field.TypeInt))
	id, ok := ivuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "IrregularVerb.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := ivuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, irregularverb.FieldID)
		for _, f := range fields {
			if !irregularverb.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != irregularverb.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := ivuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ivuo.mutation.Base(); ok {
		_spec.SetField(irregularverb.FieldBase, field.TypeString, value)
	}
	if value, ok := ivuo.mutation.Past(); ok {
		_spec.SetField(irregularverb.FieldPast, field.TypeString, value)
	}
	if value, ok := ivuo.mutation.Participle(); ok {
		_spec.SetField(irregularverb.FieldParticiple, field.TypeString, value)
	}
	if value, ok := ivuo.mutation.Translation(); ok {
		_spec.SetField(irregularverb.FieldTranslation, field.TypeString, value)
	}
	_node = &IrregularVerb{config: ivuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, ivuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{irregularverb.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	ivuo.mutation.done = true
	return _node, nil
}
