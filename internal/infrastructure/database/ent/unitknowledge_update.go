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
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/predicate"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/unitknowledge"
)

// UnitKnowledgeUpdate is the builder for updating UnitKnowledge entities.
type UnitKnowledgeUpdate struct {
	config
	hooks    []Hook
	mutation *UnitKnowledgeMutation
}

// Where appends a list predicates to the UnitKnowledgeUpdate builder.
func (uku *UnitKnowledgeUpdate) Where(ps ...predicate.UnitKnowledge) *UnitKnowledgeUpdate {
	uku.mutation.Where(ps...)
	return uku
}

// SetUserID sets the "user_id" field.
func (uku *UnitKnowledgeUpdate) SetUserID(i int64) *UnitKnowledgeUpdate {
	uku.mutation.ResetUserID()
	uku.mutation.SetUserID(i)
	return uku
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (uku *UnitKnowledgeUpdate) SetNillableUserID(i *int64) *UnitKnowledgeUpdate {
	if i != nil {
		uku.SetUserID(*i)
	}
	return uku
}

// AddUserID adds i to the "user_id" field.
func (uku *UnitKnowledgeUpdate) AddUserID(i int64) *UnitKnowledgeUpdate {
	uku.mutation.AddUserID(i)
	return uku
}

// SetUnitType sets the "unit_type" field.
func (uku *UnitKnowledgeUpdate) SetUnitType(s string) *UnitKnowledgeUpdate {
	uku.mutation.SetUnitType(s)
	return uku
}

// SetNillableUnitType sets the "unit_type" field if the given value is not nil.
func (uku *UnitKnowledgeUpdate) SetNillableUnitType(s *string) *UnitKnowledgeUpdate {
	if s != nil {
		uku.SetUnitType(*s)
	}
	return uku
}

// SetUnitID sets the "unit_id" field.
func (uku *UnitKnowledgeUpdate) SetUnitID(i int64) *UnitKnowledgeUpdate {
	uku.mutation.ResetUnitID()
	uku.mutation.SetUnitID(i)
	return uku
}

// SetNillableUnitID sets the "unit_id" field if the given value is not nil.
func (uku *UnitKnowledgeUpdate) SetNillableUnitID(i *int64) *UnitKnowledgeUpdate {
	if i != nil {
		uku.SetUnitID(*i)
	}
	return uku
}

// AddUnitID adds i to the "unit_id" field.
func (uku *UnitKnowledgeUpdate) AddUnitID(i int64) *UnitKnowledgeUpdate {
	uku.mutation.AddUnitID(i)
	return uku
}

// SetTotalAttempts sets the "total_attempts" field.
func (uku *UnitKnowledgeUpdate) SetTotalAttempts(i int64) *UnitKnowledgeUpdate {
	uku.mutation.ResetTotalAttempts()
	uku.mutation.SetTotalAttempts(i)
	return uku
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (uku *UnitKnowledgeUpdate) SetNillableTotalAttempts(i *int64) *UnitKnowledgeUpdate {
	if i != nil {
		uku.SetTotalAttempts(*i)
	}
	return uku
}

// AddTotalAttempts adds i to the "total_attempts" field.
func (uku *UnitKnowledgeUpdate) AddTotalAttempts(i int64) *UnitKnowledgeUpdate {
	uku.mutation.AddTotalAttempts(i)
	return uku
}

// SetCorrectCount sets the "correct_count" field.
func (uku *UnitKnowledgeUpdate) SetCorrectCount(i int64) *UnitKnowledgeUpdate {
	uku.mutation.ResetCorrectCount()
	uku.mutation.SetCorrectCount(i)
	return uku
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (uku *UnitKnowledgeUpdate) SetNillableCorrectCount(i *int64) *UnitKnowledgeUpdate {
	if i != nil {
		uku.SetCorrectCount(*i)
	}
	return uku
}

// AddCorrectCount adds i to the "correct_count" field.
func (uku *UnitKnowledgeUpdate) AddCorrectCount(i int64) *UnitKnowledgeUpdate {
	uku.mutation.AddCorrectCount(i)
	return uku
}

// SetWrongCount sets the "wrong_count" field.
func (uku *UnitKnowledgeUpdate) SetWrongCount(i int64) *UnitKnowledgeUpdate {
	uku.mutation.ResetWrongCount()
	uku.mutation.SetWrongCount(i)
	return uku
}

// SetNillableWrongCount sets the "wrong_count" field if the given value is not nil.
func (uku *UnitKnowledgeUpdate) SetNillableWrongCount(i *int64) *UnitKnowledgeUpdate {
	if i != nil {
		uku.SetWrongCount(*i)
	}
	return uku
}

// AddWrongCount adds i to the "wrong_count" field.
func (uku *UnitKnowledgeUpdate) AddWrongCount(i int64) *UnitKnowledgeUpdate {
	uku.mutation.AddWrongCount(i)
	return uku
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (uku *UnitKnowledgeUpdate) SetLastAttemptAt(t time.Time) *UnitKnowledgeUpdate {
	uku.mutation.SetLastAttemptAt(t)
	return uku
}

// SetNillableLastAttemptAt sets the "last_attempt_at" field if the given value is not nil.
func (uku *UnitKnowledgeUpdate) SetNillableLastAttemptAt(t *time.Time) *UnitKnowledgeUpdate {
	if t != nil {
		uku.SetLastAttemptAt(*t)
	}
	return uku
}

// SetLastCorrectAt sets the "last_correct_at" field.
func (uku *UnitKnowledgeUpdate) SetLastCorrectAt(t time.Time) *UnitKnowledgeUpdate {
	uku.mutation.SetLastCorrectAt(t)
	return uku
}

// SetNillableLastCorrectAt sets the "last_correct_at" field if the given value is not nil.
func (uku *UnitKnowledgeUpdate) SetNillableLastCorrectAt(t *time.Time) *UnitKnowledgeUpdate {
	if t != nil {
		uku.SetLastCorrectAt(*t)
	}
	return uku
}

// ClearLastCorrectAt clears the value of the "last_correct_at" field.
func (uku *UnitKnowledgeUpdate) ClearLastCorrectAt() *UnitKnowledgeUpdate {
	uku.mutation.ClearLastCorrectAt()
	return uku
}

// SetLastWrongAt sets the "last_wrong_at" field.
func (uku *UnitKnowledgeUpdate) SetLastWrongAt(t time.Time) *UnitKnowledgeUpdate {
	uku.mutation.SetLastWrongAt(t)
	return uku
}

// SetNillableLastWrongAt sets the "last_wrong_at" field if the given value is not nil.
func (uku *UnitKnowledgeUpdate) SetNillableLastWrongAt(t *time.Time) *UnitKnowledgeUpdate {
	if t != nil {
		uku.SetLastWrongAt(*t)
	}
	return uku
}

// ClearLastWrongAt clears the value of the "last_wrong_at" field.
func (uku *UnitKnowledgeUpdate) ClearLastWrongAt() *UnitKnowledgeUpdate {
	uku.mutation.ClearLastWrongAt()
	return uku
}

// SetStabilityScore sets the "stability_score" field.
func (uku *UnitKnowledgeUpdate) SetStabilityScore(i int64) *UnitKnowledgeUpdate {
	uku.mutation.ResetStabilityScore()
	uku.mutation.SetStabilityScore(i)
	return uku
}

// SetNillableStabilityScore sets the "stability_score" field if the given value is not nil.
func (uku *UnitKnowledgeUpdate) SetNillableStabilityScore(i *int64) *UnitKnowledgeUpdate {
	if i != nil {
		uku.SetStabilityScore(*i)
	}
	return uku
}

// AddStabilityScore adds i to the "stability_score" field.
func (uku *UnitKnowledgeUpdate) AddStabilityScore(i int64) *UnitKnowledgeUpdate {
	uku.mutation.AddStabilityScore(i)
	return uku
}

// SetState sets the "state" field.
func (uku *UnitKnowledgeUpdate) SetState(s string) *UnitKnowledgeUpdate {
	uku.mutation.SetState(s)
	return uku
}

// SetNillableState sets the "state" field if the given value is not nil.
func (uku *UnitKnowledgeUpdate) SetNillableState(s *string) *UnitKnowledgeUpdate {
	if s != nil {
		uku.SetState(*s)
	}
	return uku
}

// SetUpdatedAt sets the "updated_at" field.
func (uku *UnitKnowledgeUpdate) SetUpdatedAt(t time.Time) *UnitKnowledgeUpdate {
	uku.mutation.SetUpdatedAt(t)
	return uku
}

// Mutation returns the UnitKnowledgeMutation object of the builder.
func (uku *UnitKnowledgeUpdate) Mutation() *UnitKnowledgeMutation {
	return uku.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (uku *UnitKnowledgeUpdate) Save(ctx context.Context) (int, error) {
	uku.defaults()
	return withHooks(ctx, uku.sqlSave, uku.mutation, uku.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (uku *UnitKnowledgeUpdate) SaveX(ctx context.Context) int {
	affected, err := uku.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (uku *UnitKnowledgeUpdate) Exec(ctx context.Context) error {
	_, err := uku.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (uku *UnitKnowledgeUpdate) ExecX(ctx context.Context) {
	if err := uku.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (uku *UnitKnowledgeUpdate) defaults() {
	if _, ok := uku.mutation.UpdatedAt(); !ok {
		v := unitknowledge.UpdateDefaultUpdatedAt()
		uku.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (uku *UnitKnowledgeUpdate) check() error {
	if v, ok := uku.mutation.UnitType(); ok {
		if err := unitknowledge.UnitTypeValidator(v); err != nil {
			return &ValidationError{Name: "unit_type", err: fmt.Errorf(`ent: validator failed for field "UnitKnowledge.unit_type": %w`, err)}
		}
	}
	if v, ok := uku.mutation.State(); ok {
		if err := unitknowledge.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "UnitKnowledge.state": %w`, err)}
		}
	}
	return nil
}

func (uku *UnitKnowledgeUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := uku.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(unitknowledge.Table, unitknowledge.Columns, sqlgraph.NewFieldSpec(unitknowledge.FieldID, field.TypeInt))
	if ps := uku.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := uku.mutation.UserID(); ok {
		_spec.SetField(unitknowledge.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := uku.mutation.AddedUserID(); ok {
		_spec.AddField(unitknowledge.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := uku.mutation.UnitType(); ok {
		_spec.SetField(unitknowledge.FieldUnitType, field.TypeString, value)
	}
	if value, ok := uku.mutation.UnitID(); ok {
		_spec.SetField(unitknowledge.FieldUnitID, field.TypeInt64, value)
	}
	if value, ok := uku.mutation.AddedUnitID(); ok {
		_spec.AddField(unitknowledge.FieldUnitID, field.TypeInt64, value)
	}
	if value, ok := uku.mutation.TotalAttempts(); ok {
		_spec.SetField(unitknowledge.FieldTotalAttempts, field.TypeInt64, value)
	}
	if value, ok := uku.mutation.AddedTotalAttempts(); ok {
		_spec.AddField(unitknowledge.FieldTotalAttempts, field.TypeInt64, value)
	}
	if value, ok := uku.mutation.CorrectCount(); ok {
		_spec.SetField(unitknowledge.FieldCorrectCount, field.TypeInt64, value)
	}
	if value, ok := uku.mutation.AddedCorrectCount(); ok {
		_spec.AddField(unitknowledge.FieldCorrectCount, field.TypeInt64, value)
	}
	if value, ok := uku.mutation.WrongCount(); ok {
		_spec.SetField(unitknowledge.FieldWrongCount, field.TypeInt64, value)
	}
	if value, ok := uku.mutation.AddedWrongCount(); ok {
		_spec.AddField(unitknowledge.FieldWrongCount, field.TypeInt64, value)
	}
	if value, ok := uku.mutation.LastAttemptAt(); ok {
		_spec.SetField(unitknowledge.FieldLastAttemptAt, field.TypeTime, value)
	}
	if value, ok := uku.mutation.LastCorrectAt(); ok {
		_spec.SetField(unitknowledge.FieldLastCorrectAt, field.TypeTime, value)
	}
	if uku.mutation.LastCorrectAtCleared() {
		_spec.ClearField(unitknowledge.FieldLastCorrectAt, field.TypeTime)
	}
	if value, ok := uku.mutation.LastWrongAt(); ok {
		_spec.SetField(unitknowledge.FieldLastWrongAt, field.TypeTime, value)
	}
	if uku.mutation.LastWrongAtCleared() {
		_spec.ClearField(unitknowledge.FieldLastWrongAt, field.TypeTime)
	}
	if value, ok := uku.mutation.StabilityScore(); ok {
		_spec.SetField(unitknowledge.FieldStabilityScore, field.TypeInt64, value)
	}
	if value, ok := uku.mutation.AddedStabilityScore(); ok {
		_spec.AddField(unitknowledge.FieldStabilityScore, field.TypeInt64, value)
	}
	if value, ok := uku.mutation.State(); ok {
		_spec.SetField(unitknowledge.FieldState, field.TypeString, value)
	}
	if value, ok := uku.mutation.UpdatedAt(); ok {
		_spec.SetField(unitknowledge.FieldUpdatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, uku.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{unitknowledge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	uku.mutation.done = true
	return n, nil
}

// UnitKnowledgeUpdateOne is the builder for updating a single UnitKnowledge entity.
type UnitKnowledgeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UnitKnowledgeMutation
}

// SetUserID sets the "user_id" field.
func (ukuo *UnitKnowledgeUpdateOne) SetUserID(i int64) *UnitKnowledgeUpdateOne {
	ukuo.mutation.ResetUserID()
	ukuo.mutation.SetUserID(i)
	return ukuo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (ukuo *UnitKnowledgeUpdateOne) SetNillableUserID(i *int64) *UnitKnowledgeUpdateOne {
	if i != nil {
		ukuo.SetUserID(*i)
	}
	return ukuo
}

// AddUserID adds i to the "user_id" field.
func (ukuo *UnitKnowledgeUpdateOne) AddUserID(i int64) *UnitKnowledgeUpdateOne {
	ukuo.mutation.AddUserID(i)
	return ukuo
}

// SetUnitType sets the "unit_type" field.
func (ukuo *UnitKnowledgeUpdateOne) SetUnitType(s string) *UnitKnowledgeUpdateOne {
	ukuo.mutation.SetUnitType(s)
	return ukuo
}

// SetNillableUnitType sets the "unit_type" field if the given value is not nil.
func (ukuo *UnitKnowledgeUpdateOne) SetNillableUnitType(s *string) *UnitKnowledgeUpdateOne {
	if s != nil {
		ukuo.SetUnitType(*s)
	}
	return ukuo
}

// SetUnitID sets the "unit_id" field.
func (ukuo *UnitKnowledgeUpdateOne) SetUnitID(i int64) *UnitKnowledgeUpdateOne {
	ukuo.mutation.ResetUnitID()
	ukuo.mutation.SetUnitID(i)
	return ukuo
}

// SetNillableUnitID sets the "unit_id" field if the given value is not nil.
func (ukuo *UnitKnowledgeUpdateOne) SetNillableUnitID(i *int64) *UnitKnowledgeUpdateOne {
	if i != nil {
		ukuo.SetUnitID(*i)
	}
	return ukuo
}

// AddUnitID adds i to the "unit_id" field.
func (ukuo *UnitKnowledgeUpdateOne) AddUnitID(i int64) *UnitKnowledgeUpdateOne {
	ukuo.mutation.AddUnitID(i)
	return ukuo
}

// SetTotalAttempts sets the "total_attempts" field.
func (ukuo *UnitKnowledgeUpdateOne) SetTotalAttempts(i int64) *UnitKnowledgeUpdateOne {
	ukuo.mutation.ResetTotalAttempts()
	ukuo.mutation.SetTotalAttempts(i)
	return ukuo
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (ukuo *UnitKnowledgeUpdateOne) SetNillableTotalAttempts(i *int64) *UnitKnowledgeUpdateOne {
	if i != nil {
		ukuo.SetTotalAttempts(*i)
	}
	return ukuo
}

// AddTotalAttempts adds i to the "total_attempts" field.
func (ukuo *UnitKnowledgeUpdateOne) AddTotalAttempts(i int64) *UnitKnowledgeUpdateOne {
	ukuo.mutation.AddTotalAttempts(i)
	return ukuo
}

// SetCorrectCount sets the "correct_count" field.
func (ukuo *UnitKnowledgeUpdateOne) SetCorrectCount(i int64) *UnitKnowledgeUpdateOne {
	ukuo.mutation.ResetCorrectCount()
	ukuo.mutation.SetCorrectCount(i)
	return ukuo
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (ukuo *UnitKnowledgeUpdateOne) SetNillableCorrectCount(i *int64) *UnitKnowledgeUpdateOne {
	if i != nil {
		ukuo.SetCorrectCount(*i)
	}
	return ukuo
}

// AddCorrectCount adds i to the "correct_count" field.
func (ukuo *UnitKnowledgeUpdateOne) AddCorrectCount(i int64) *UnitKnowledgeUpdateOne {
	ukuo.mutation.AddCorrectCount(i)
	return ukuo
}

// SetWrongCount sets the "wrong_count" field.
func (ukuo *UnitKnowledgeUpdateOne) SetWrongCount(i int64) *UnitKnowledgeUpdateOne {
	ukuo.mutation.ResetWrongCount()
	ukuo.mutation.SetWrongCount(i)
	return ukuo
}

// SetNillableWrongCount sets the "wrong_count" field if the given value is not nil.
func (ukuo *UnitKnowledgeUpdateOne) SetNillableWrongCount(i *int64) *UnitKnowledgeUpdateOne {
	if i != nil {
		ukuo.SetWrongCount(*i)
	}
	return ukuo
}

// AddWrongCount adds i to the "wrong_count" field.
func (ukuo *UnitKnowledgeUpdateOne) AddWrongCount(i int64) *UnitKnowledgeUpdateOne {
	ukuo.mutation.AddWrongCount(i)
	return ukuo
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (ukuo *UnitKnowledgeUpdateOne) SetLastAttemptAt(t time.Time) *UnitKnowledgeUpdateOne {
	ukuo.mutation.SetLastAttemptAt(t)
	return ukuo
}

// SetNillableLastAttemptAt sets the "last_attempt_at" field if the given value is not nil.
func (ukuo *UnitKnowledgeUpdateOne) SetNillableLastAttemptAt(t *time.Time) *UnitKnowledgeUpdateOne {
	if t != nil {
		ukuo.SetLastAttemptAt(*t)
	}
	return ukuo
}

// SetLastCorrectAt sets the "last_correct_at" field.
func (ukuo *UnitKnowledgeUpdateOne) SetLastCorrectAt(t time.Time) *UnitKnowledgeUpdateOne {
	ukuo.mutation.SetLastCorrectAt(t)
	return ukuo
}

// SetNillableLastCorrectAt sets the "last_correct_at" field if the given value is not nil.
func (ukuo *UnitKnowledgeUpdateOne) SetNillableLastCorrectAt(t *time.Time) *UnitKnowledgeUpdateOne {
	if t != nil {
		ukuo.SetLastCorrectAt(*t)
	}
	return ukuo
}

// ClearLastCorrectAt clears the value of the "last_correct_at" field.
func (ukuo *UnitKnowledgeUpdateOne) ClearLastCorrectAt() *UnitKnowledgeUpdateOne {
	ukuo.mutation.ClearLastCorrectAt()
	return ukuo
}

// SetLastWrongAt sets the "last_wrong_at" field.
func (ukuo *UnitKnowledgeUpdateOne) SetLastWrongAt(t time.Time) *UnitKnowledgeUpdateOne {
	ukuo.mutation.SetLastWrongAt(t)
	return ukuo
}

// SetNillableLastWrongAt sets the "last_wrong_at" field if the given value is not nil.
func (ukuo *UnitKnowledgeUpdateOne) SetNillableLastWrongAt(t *time.Time) *UnitKnowledgeUpdateOne {
	if t != nil {
		ukuo.SetLastWrongAt(*t)
	}
	return ukuo
}

// ClearLastWrongAt clears the value of the "last_wrong_at" field.
func (ukuo *UnitKnowledgeUpdateOne) ClearLastWrongAt() *UnitKnowledgeUpdateOne {
	ukuo.mutation.ClearLastWrongAt()
	return ukuo
}

// SetStabilityScore sets the "stability_score" field.
func (ukuo *UnitKnowledgeUpdateOne) SetStabilityScore(i int64) *UnitKnowledgeUpdateOne {
	ukuo.mutation.ResetStabilityScore()
	ukuo.mutation.SetStabilityScore(i)
	return ukuo
}

// SetNillableStabilityScore sets the "stability_score" field if the given value is not nil.
func (ukuo *UnitKnowledgeUpdateOne) SetNillableStabilityScore(i *int64) *UnitKnowledgeUpdateOne {
	if i != nil {
		ukuo.SetStabilityScore(*i)
	}
	return ukuo
}

// AddStabilityScore adds i to the "stability_score" field.
func (ukuo *UnitKnowledgeUpdateOne) AddStabilityScore(i int64) *UnitKnowledgeUpdateOne {
	ukuo.mutation.AddStabilityScore(i)
	return ukuo
}

// SetState sets the "state" field.
func (ukuo *UnitKnowledgeUpdateOne) SetState(s string) *UnitKnowledgeUpdateOne {
	ukuo.mutation.SetState(s)
	return ukuo
}

// SetNillableState sets the "state" field if the given value is not nil.
func (ukuo *UnitKnowledgeUpdateOne) SetNillableState(s *string) *UnitKnowledgeUpdateOne {
	if s != nil {
		ukuo.SetState(*s)
	}
	return ukuo
}

// SetUpdatedAt sets the "updated_at" field.
func (ukuo *UnitKnowledgeUpdateOne) SetUpdatedAt(t time.Time) *UnitKnowledgeUpdateOne {
	ukuo.mutation.SetUpdatedAt(t)
	return ukuo
}

// Mutation returns the UnitKnowledgeMutation object of the builder.
func (ukuo *UnitKnowledgeUpdateOne) Mutation() *UnitKnowledgeMutation {
	return ukuo.mutation
}

// Where appends a list predicates to the UnitKnowledgeUpdate builder.
func (ukuo *UnitKnowledgeUpdateOne) Where(ps ...predicate.UnitKnowledge) *UnitKnowledgeUpdateOne {
	ukuo.mutation.Where(ps...)
	return ukuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (ukuo *UnitKnowledgeUpdateOne) Select(field string, fields ...string) *UnitKnowledgeUpdateOne {
	ukuo.fields = append([]string{field}, fields...)
	return ukuo
}

// Save executes the query and returns the updated UnitKnowledge entity.
func (ukuo *UnitKnowledgeUpdateOne) Save(ctx context.Context) (*UnitKnowledge, error) {
	ukuo.defaults()
	return withHooks(ctx, ukuo.sqlSave, ukuo.mutation, ukuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ukuo *UnitKnowledgeUpdateOne) SaveX(ctx context.Context) *UnitKnowledge {
	node, err := ukuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (ukuo *UnitKnowledgeUpdateOne) Exec(ctx context.Context) error {
	_, err := ukuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ukuo *UnitKnowledgeUpdateOne) ExecX(ctx context.Context) {
	if err := ukuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ukuo *UnitKnowledgeUpdateOne) defaults() {
	if _, ok := ukuo.mutation.UpdatedAt(); !ok {
		v := unitknowledge.UpdateDefaultUpdatedAt()
		ukuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ukuo *UnitKnowledgeUpdateOne) check() error {
	if v, ok := ukuo.mutation.UnitType(); ok {
		if err := unitknowledge.UnitTypeValidator(v); err != nil {
			return &ValidationError{Name: "unit_type", err: fmt.Errorf(`ent: validator failed for field "UnitKnowledge.unit_type": %w`, err)}
		}
	}
	if v, ok := ukuo.mutation.State(); ok {
		if err := unitknowledge.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "UnitKnowledge.state": %w`, err)}
		}
	}
	return nil
}

func (ukuo *UnitKnowledgeUpdateOne) sqlSave(ctx context.Context) (_node *UnitKnowledge, err error) {
	if err := ukuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(unitknowledge.Table, unitknowledge.Columns, sqlgraph.NewFieldSpec(unitknowledge.FieldID, field.TypeInt))
	id, ok := ukuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UnitKnowledge.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := ukuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, unitknowledge.FieldID)
		for _, f := range fields {
			if !unitknowledge.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != unitknowledge.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := ukuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ukuo.mutation.UserID(); ok {
		_spec.SetField(unitknowledge.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := ukuo.mutation.AddedUserID(); ok {
		_spec.AddField(unitknowledge.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := ukuo.mutation.UnitType(); ok {
		_spec.SetField(unitknowledge.FieldUnitType, field.TypeString, value)
	}
	if value, ok := ukuo.mutation.UnitID(); ok {
		_spec.SetField(unitknowledge.FieldUnitID, field.TypeInt64, value)
	}
	if value, ok := ukuo.mutation.AddedUnitID(); ok {
		_spec.AddField(unitknowledge.FieldUnitID, field.TypeInt64, value)
	}
	if value, ok := ukuo.mutation.TotalAttempts(); ok {
		_spec.SetField(unitknowledge.FieldTotalAttempts, field.TypeInt64, value)
	}
	if value, ok := ukuo.mutation.AddedTotalAttempts(); ok {
		_spec.AddField(unitknowledge.FieldTotalAttempts, field.TypeInt64, value)
	}
	if value, ok := ukuo.mutation.CorrectCount(); ok {
		_spec.SetField(unitknowledge.FieldCorrectCount, field.TypeInt64, value)
	}
	if value, ok := ukuo.mutation.AddedCorrectCount(); ok {
		_spec.AddField(unitknowledge.FieldCorrectCount, field.TypeInt64, value)
	}
	if value, ok := ukuo.mutation.WrongCount(); ok {
		_spec.SetField(unitknowledge.FieldWrongCount, field.TypeInt64, value)
	}
	if value, ok := ukuo.mutation.AddedWrongCount(); ok {
		_spec.AddField(unitknowledge.FieldWrongCount, field.TypeInt64, value)
	}
	if value, ok := ukuo.mutation.LastAttemptAt(); ok {
		_spec.SetField(unitknowledge.FieldLastAttemptAt, field.TypeTime, value)
	}
	if value, ok := ukuo.mutation.LastCorrectAt(); ok {
		_spec.SetField(unitknowledge.FieldLastCorrectAt, field.TypeTime, value)
	}
	if ukuo.mutation.LastCorrectAtCleared() {
		_spec.ClearField(unitknowledge.FieldLastCorrectAt, field.TypeTime)
	}
	if value, ok := ukuo.mutation.LastWrongAt(); ok {
		_spec.SetField(unitknowledge.FieldLastWrongAt, field.TypeTime, value)
	}
	if ukuo.mutation.LastWrongAtCleared() {
		_spec.ClearField(unitknowledge.FieldLastWrongAt, field.TypeTime)
	}
	if value, ok := ukuo.mutation.StabilityScore(); ok {
		_spec.SetField(unitknowledge.FieldStabilityScore, field.TypeInt64, value)
	}
	if value, ok := ukuo.mutation.AddedStabilityScore(); ok {
		_spec.AddField(unitknowledge.FieldStabilityScore, field.TypeInt64, value)
	}
	if value, ok := ukuo.mutation.State(); ok {
		_spec.SetField(unitknowledge.FieldState, field.TypeString, value)
	}
	if value, ok := ukuo.mutation.UpdatedAt(); ok {
		_spec.SetField(unitknowledge.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &UnitKnowledge{config: ukuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, ukuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{unitknowledge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	ukuo.mutation.done = true
	return _node, nil
}
