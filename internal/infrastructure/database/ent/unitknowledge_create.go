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
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/unitknowledge"
)

// UnitKnowledgeCreate is the builder for creating a UnitKnowledge entity.
type UnitKnowledgeCreate struct {
	config
	mutation *UnitKnowledgeMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (ukc *UnitKnowledgeCreate) SetUserID(i int64) *UnitKnowledgeCreate {
	ukc.mutation.SetUserID(i)
	return ukc
}

// SetUnitType sets the "unit_type" field.
func (ukc *UnitKnowledgeCreate) SetUnitType(s string) *UnitKnowledgeCreate {
	ukc.mutation.SetUnitType(s)
	return ukc
}

// SetUnitID sets the "unit_id" field.
func (ukc *UnitKnowledgeCreate) SetUnitID(i int64) *UnitKnowledgeCreate {
	ukc.mutation.SetUnitID(i)
	return ukc
}

// SetTotalAttempts sets the "total_attempts" field.
func (ukc *UnitKnowledgeCreate) SetTotalAttempts(i int64) *UnitKnowledgeCreate {
	ukc.mutation.SetTotalAttempts(i)
	return ukc
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (ukc *UnitKnowledgeCreate) SetNillableTotalAttempts(i *int64) *UnitKnowledgeCreate {
	if i != nil {
		ukc.SetTotalAttempts(*i)
	}
	return ukc
}

// SetCorrectCount sets the "correct_count" field.
func (ukc *UnitKnowledgeCreate) SetCorrectCount(i int64) *UnitKnowledgeCreate {
	ukc.mutation.SetCorrectCount(i)
	return ukc
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (ukc *UnitKnowledgeCreate) SetNillableCorrectCount(i *int64) *UnitKnowledgeCreate {
	if i != nil {
		ukc.SetCorrectCount(*i)
	}
	return ukc
}

// SetWrongCount sets the "wrong_count" field.
func (ukc *UnitKnowledgeCreate) SetWrongCount(i int64) *UnitKnowledgeCreate {
	ukc.mutation.SetWrongCount(i)
	return ukc
}

// SetNillableWrongCount sets the "wrong_count" field if the given value is not nil.
func (ukc *UnitKnowledgeCreate) SetNillableWrongCount(i *int64) *UnitKnowledgeCreate {
	if i != nil {
		ukc.SetWrongCount(*i)
	}
	return ukc
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (ukc *UnitKnowledgeCreate) SetLastAttemptAt(t time.Time) *UnitKnowledgeCreate {
	ukc.mutation.SetLastAttemptAt(t)
	return ukc
}

// SetLastCorrectAt sets the "last_correct_at" field.
func (ukc *UnitKnowledgeCreate) SetLastCorrectAt(t time.Time) *UnitKnowledgeCreate {
	ukc.mutation.SetLastCorrectAt(t)
	return ukc
}

// SetNillableLastCorrectAt sets the "last_correct_at" field if the given value is not nil.
func (ukc *UnitKnowledgeCreate) SetNillableLastCorrectAt(t *time.Time) *UnitKnowledgeCreate {
	if t != nil {
		ukc.SetLastCorrectAt(*t)
	}
	return ukc
}

// SetLastWrongAt sets the "last_wrong_at" field.
func (ukc *UnitKnowledgeCreate) SetLastWrongAt(t time.Time) *UnitKnowledgeCreate {
	ukc.mutation.SetLastWrongAt(t)
	return ukc
}

// SetNillableLastWrongAt sets the "last_wrong_at" field if the given value is not nil.
func (ukc *UnitKnowledgeCreate) SetNillableLastWrongAt(t *time.Time) *UnitKnowledgeCreate {
	if t != nil {
		ukc.SetLastWrongAt(*t)
	}
	return ukc
}

// SetStabilityScore sets the "stability_score" field.
func (ukc *UnitKnowledgeCreate) SetStabilityScore(i int64) *UnitKnowledgeCreate {
	ukc.mutation.SetStabilityScore(i)
	return ukc
}

// SetNillableStabilityScore sets the "stability_score" field if the given value is not nil.
func (ukc *UnitKnowledgeCreate) SetNillableStabilityScore(i *int64) *UnitKnowledgeCreate {
	if i != nil {
		ukc.SetStabilityScore(*i)
	}
	return ukc
}

// SetState sets the "state" field.
func (ukc *UnitKnowledgeCreate) SetState(s string) *UnitKnowledgeCreate {
	ukc.mutation.SetState(s)
	return ukc
}

// SetCreatedAt sets the "created_at" field.
func (ukc *UnitKnowledgeCreate) SetCreatedAt(t time.Time) *UnitKnowledgeCreate {
	ukc.mutation.SetCreatedAt(t)
	return ukc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (ukc *UnitKnowledgeCreate) SetNillableCreatedAt(t *time.Time) *UnitKnowledgeCreate {
	if t != nil {
		ukc.SetCreatedAt(*t)
	}
	return ukc
}

// SetUpdatedAt sets the "updated_at" field.
func (ukc *UnitKnowledgeCreate) SetUpdatedAt(t time.Time) *UnitKnowledgeCreate {
	ukc.mutation.SetUpdatedAt(t)
	return ukc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (ukc *UnitKnowledgeCreate) SetNillableUpdatedAt(t *time.Time) *UnitKnowledgeCreate {
	if t != nil {
		ukc.SetUpdatedAt(*t)
	}
	return ukc
}

// Mutation returns the UnitKnowledgeMutation object of the builder.
func (ukc *UnitKnowledgeCreate) Mutation() *UnitKnowledgeMutation {
	return ukc.mutation
}

// Save creates the UnitKnowledge in the database.
func (ukc *UnitKnowledgeCreate) Save(ctx context.Context) (*UnitKnowledge, error) {
	ukc.defaults()
	return withHooks(ctx, ukc.sqlSave, ukc.mutation, ukc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ukc *UnitKnowledgeCreate) SaveX(ctx context.Context) *UnitKnowledge {
	v, err := ukc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ukc *UnitKnowledgeCreate) Exec(ctx context.Context) error {
	_, err := ukc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ukc *UnitKnowledgeCreate) ExecX(ctx context.Context) {
	if err := ukc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ukc *UnitKnowledgeCreate) defaults() {
	if _, ok := ukc.mutation.TotalAttempts(); !ok {
		v := unitknowledge.DefaultTotalAttempts
		ukc.mutation.SetTotalAttempts(v)
	}
	if _, ok := ukc.mutation.CorrectCount(); !ok {
		v := unitknowledge.DefaultCorrectCount
		ukc.mutation.SetCorrectCount(v)
	}
	if _, ok := ukc.mutation.WrongCount(); !ok {
		v := unitknowledge.DefaultWrongCount
		ukc.mutation.SetWrongCount(v)
	}
	if _, ok := ukc.mutation.StabilityScore(); !ok {
		v := unitknowledge.DefaultStabilityScore
		ukc.mutation.SetStabilityScore(v)
	}
	if _, ok := ukc.mutation.CreatedAt(); !ok {
		v := unitknowledge.DefaultCreatedAt()
		ukc.mutation.SetCreatedAt(v)
	}
	if _, ok := ukc.mutation.UpdatedAt(); !ok {
		v := unitknowledge.DefaultUpdatedAt()
		ukc.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ukc *UnitKnowledgeCreate) check() error {
	if _, ok := ukc.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UnitKnowledge.user_id"`)}
	}
	if _, ok := ukc.mutation.UnitType(); !ok {
		return &ValidationError{Name: "unit_type", err: errors.New(`ent: missing required field "UnitKnowledge.unit_type"`)}
	}
	if v, ok := ukc.mutation.UnitType(); ok {
		if err := unitknowledge.UnitTypeValidator(v); err != nil {
			return &ValidationError{Name: "unit_type", err: fmt.Errorf(`ent: validator failed for field "UnitKnowledge.unit_type": %w`, err)}
		}
	}
	if _, ok := ukc.mutation.UnitID(); !ok {
		return &ValidationError{Name: "unit_id", err: errors.New(`ent: missing required field "UnitKnowledge.unit_id"`)}
	}
	if _, ok := ukc.mutation.TotalAttempts(); !ok {
		return &ValidationError{Name: "total_attempts", err: errors.New(`ent: missing required field "UnitKnowledge.total_attempts"`)}
	}
	if _, ok := ukc.mutation.CorrectCount(); !ok {
		return &ValidationError{Name: "correct_count", err: errors.New(`ent: missing required field "UnitKnowledge.correct_count"`)}
	}
	if _, ok := ukc.mutation.WrongCount(); !ok {
		return &ValidationError{Name: "wrong_count", err: errors.New(`ent: missing required field "UnitKnowledge.wrong_count"`)}
	}
	if _, ok := ukc.mutation.LastAttemptAt(); !ok {
		return &ValidationError{Name: "last_attempt_at", err: errors.New(`ent: missing required field "UnitKnowledge.last_attempt_at"`)}
	}
	if _, ok := ukc.mutation.StabilityScore(); !ok {
		return &ValidationError{Name: "stability_score", err: errors.New(`ent: missing required field "UnitKnowledge.stability_score"`)}
	}
	if _, ok := ukc.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "UnitKnowledge.state"`)}
	}
	if v, ok := ukc.mutation.State(); ok {
		if err := unitknowledge.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "UnitKnowledge.state": %w`, err)}
		}
	}
	if _, ok := ukc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UnitKnowledge.created_at"`)}
	}
	if _, ok := ukc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "UnitKnowledge.updated_at"`)}
	}
	return nil
}

func (ukc *UnitKnowledgeCreate) sqlSave(ctx context.Context) (*UnitKnowledge, error) {
	if err := ukc.check(); err != nil {
		return nil, err
	}
	_node, _spec := ukc.createSpec()
	if err := sqlgraph.CreateNode(ctx, ukc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	ukc.mutation.id = &_node.ID
	ukc.mutation.done = true
	return _node, nil
}

func (ukc *UnitKnowledgeCreate) createSpec() (*UnitKnowledge, *sqlgraph.CreateSpec) {
	var (
		_node = &UnitKnowledge{config: ukc.config}
		_spec = sqlgraph.NewCreateSpec(unitknowledge.Table, sqlgraph.NewFieldSpec(unitknowledge.FieldID, field.TypeInt))
	)
	_spec.OnConflict = ukc.conflict
	if value, ok := ukc.mutation.UserID(); ok {
		_spec.SetField(unitknowledge.FieldUserID, field.TypeInt64, value)
		_node.UserID = value
	}
	if value, ok := ukc.mutation.UnitType(); ok {
		_spec.SetField(unitknowledge.FieldUnitType, field.TypeString, value)
		_node.UnitType = value
	}
	if value, ok := ukc.mutation.UnitID(); ok {
		_spec.SetField(unitknowledge.FieldUnitID, field.TypeInt64, value)
		_node.UnitID = value
	}
	if value, ok := ukc.mutation.TotalAttempts(); ok {
		_spec.SetField(unitknowledge.FieldTotalAttempts, field.TypeInt64, value)
		_node.TotalAttempts = value
	}
	if value, ok := ukc.mutation.CorrectCount(); ok {
		_spec.SetField(unitknowledge.FieldCorrectCount, field.TypeInt64, value)
		_node.CorrectCount = value
	}
	if value, ok := ukc.mutation.WrongCount(); ok {
		_spec.SetField(unitknowledge.FieldWrongCount, field.TypeInt64, value)
		_node.WrongCount = value
	}
	if value, ok := ukc.mutation.LastAttemptAt(); ok {
		_spec.SetField(unitknowledge.FieldLastAttemptAt, field.TypeTime, value)
		_node.LastAttemptAt = value
	}
	if value, ok := ukc.mutation.LastCorrectAt(); ok {
		_spec.SetField(unitknowledge.FieldLastCorrectAt, field.TypeTime, value)
		_node.LastCorrectAt = &value
	}
	if value, ok := ukc.mutation.LastWrongAt(); ok {
		_spec.SetField(unitknowledge.FieldLastWrongAt, field.TypeTime, value)
		_node.LastWrongAt = &value
	}
	if value, ok := ukc.mutation.StabilityScore(); ok {
		_spec.SetField(unitknowledge.FieldStabilityScore, field.TypeInt64, value)
		_node.StabilityScore = value
	}
	if value, ok := ukc.mutation.State(); ok {
		_spec.SetField(unitknowledge.FieldState, field.TypeString, value)
		_node.State = value
	}
	if value, ok := ukc.mutation.CreatedAt(); ok {
		_spec.SetField(unitknowledge.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := ukc.mutation.UpdatedAt(); ok {
		_spec.SetField(unitknowledge.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UnitKnowledge.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UnitKnowledgeUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (ukc *UnitKnowledgeCreate) OnConflict(opts ...sql.ConflictOption) *UnitKnowledgeUpsertOne {
	ukc.conflict = opts
	return &UnitKnowledgeUpsertOne{
		create: ukc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UnitKnowledge.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (ukc *UnitKnowledgeCreate) OnConflictColumns(columns ...string) *UnitKnowledgeUpsertOne {
	ukc.conflict = append(ukc.conflict, sql.ConflictColumns(columns...))
	return &UnitKnowledgeUpsertOne{
		create: ukc,
	}
}

type (
	// UnitKnowledgeUpsertOne is the builder for "upsert"-ing
	//  one UnitKnowledge node.
	UnitKnowledgeUpsertOne struct {
		create *UnitKnowledgeCreate
	}

	// UnitKnowledgeUpsert is the "OnConflict" setter.
	UnitKnowledgeUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *UnitKnowledgeUpsert) SetUserID(v int64) *UnitKnowledgeUpsert {
	u.Set(unitknowledge.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *UnitKnowledgeUpsert) UpdateUserID() *UnitKnowledgeUpsert {
	u.SetExcluded(unitknowledge.FieldUserID)
	return u
}

// AddUserID adds v to the "user_id" field.
func (u *UnitKnowledgeUpsert) AddUserID(v int64) *UnitKnowledgeUpsert {
	u.Add(unitknowledge.FieldUserID, v)
	return u
}

// SetUnitType sets the "unit_type" field.
func (u *UnitKnowledgeUpsert) SetUnitType(v string) *UnitKnowledgeUpsert {
	u.Set(unitknowledge.FieldUnitType, v)
	return u
}

// UpdateUnitType sets the "unit_type" field to the value that was provided on create.
func (u *UnitKnowledgeUpsert) UpdateUnitType() *UnitKnowledgeUpsert {
	u.SetExcluded(unitknowledge.FieldUnitType)
	return u
}

// SetUnitID sets the "unit_id" field.
func (u *UnitKnowledgeUpsert) SetUnitID(v int64) *UnitKnowledgeUpsert {
	u.Set(unitknowledge.FieldUnitID, v)
	return u
}

// UpdateUnitID sets the "unit_id" field to the value that was provided on create.
func (u *UnitKnowledgeUpsert) UpdateUnitID() *UnitKnowledgeUpsert {
	u.SetExcluded(unitknowledge.FieldUnitID)
	return u
}

// AddUnitID adds v to the "unit_id" field.
func (u *UnitKnowledgeUpsert) AddUnitID(v int64) *UnitKnowledgeUpsert {
	u.Add(unitknowledge.FieldUnitID, v)
	return u
}

// SetTotalAttempts sets the "total_attempts" field.
func (u *UnitKnowledgeUpsert) SetTotalAttempts(v int64) *UnitKnowledgeUpsert {
	u.Set(unitknowledge.FieldTotalAttempts, v)
	return u
}

// UpdateTotalAttempts sets the "total_attempts" field to the value that was provided on create.
func (u *UnitKnowledgeUpsert) UpdateTotalAttempts() *UnitKnowledgeUpsert {
	u.SetExcluded(unitknowledge.FieldTotalAttempts)
	return u
}

// AddTotalAttempts adds v to the "total_attempts" field.
func (u *UnitKnowledgeUpsert) AddTotalAttempts(v int64) *UnitKnowledgeUpsert {
	u.Add(unitknowledge.FieldTotalAttempts, v)
	return u
}

// SetCorrectCount sets the "correct_count" field.
func (u *UnitKnowledgeUpsert) SetCorrectCount(v int64) *UnitKnowledgeUpsert {
	u.Set(unitknowledge.FieldCorrectCount, v)
	return u
}

// UpdateCorrectCount sets the "correct_count" field to the value that was provided on create.
func (u *UnitKnowledgeUpsert) UpdateCorrectCount() *UnitKnowledgeUpsert {
	u.SetExcluded(unitknowledge.FieldCorrectCount)
	return u
}

// AddCorrectCount adds v to the "correct_count" field.
func (u *UnitKnowledgeUpsert) AddCorrectCount(v int64) *UnitKnowledgeUpsert {
	u.Add(unitknowledge.FieldCorrectCount, v)
	return u
}

// SetWrongCount sets the "wrong_count" field.
func (u *UnitKnowledgeUpsert) SetWrongCount(v int64) *UnitKnowledgeUpsert {
	u.Set(unitknowledge.FieldWrongCount, v)
	return u
}

// UpdateWrongCount sets the "wrong_count" field to the value that was provided on create.
func (u *UnitKnowledgeUpsert) UpdateWrongCount() *UnitKnowledgeUpsert {
	u.SetExcluded(unitknowledge.FieldWrongCount)
	return u
}

// AddWrongCount adds v to the "wrong_count" field.
func (u *UnitKnowledgeUpsert) AddWrongCount(v int64) *UnitKnowledgeUpsert {
	u.Add(unitknowledge.FieldWrongCount, v)
	return u
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (u *UnitKnowledgeUpsert) SetLastAttemptAt(v time.Time) *UnitKnowledgeUpsert {
	u.Set(unitknowledge.FieldLastAttemptAt, v)
	return u
}

// UpdateLastAttemptAt sets the "last_attempt_at" field to the value that was provided on create.
func (u *UnitKnowledgeUpsert) UpdateLastAttemptAt() *UnitKnowledgeUpsert {
	u.SetExcluded(unitknowledge.FieldLastAttemptAt)
	return u
}

// SetLastCorrectAt sets the "last_correct_at" field.
func (u *UnitKnowledgeUpsert) SetLastCorrectAt(v time.Time) *UnitKnowledgeUpsert {
	u.Set(unitknowledge.FieldLastCorrectAt, v)
	return u
}

// UpdateLastCorrectAt sets the "last_correct_at" field to the value that was provided on create.
func (u *UnitKnowledgeUpsert) UpdateLastCorrectAt() *UnitKnowledgeUpsert {
	u.SetExcluded(unitknowledge.FieldLastCorrectAt)
	return u
}

// ClearLastCorrectAt clears the value of the "last_correct_at" field.
func (u *UnitKnowledgeUpsert) ClearLastCorrectAt() *UnitKnowledgeUpsert {
	u.SetNull(unitknowledge.FieldLastCorrectAt)
	return u
}

// SetLastWrongAt sets the "last_wrong_at" field.
func (u *UnitKnowledgeUpsert) SetLastWrongAt(v time.Time) *UnitKnowledgeUpsert {
	u.Set(unitknowledge.FieldLastWrongAt, v)
	return u
}

// UpdateLastWrongAt sets the "last_wrong_at" field to the value that was provided on create.
func (u *UnitKnowledgeUpsert) UpdateLastWrongAt() *UnitKnowledgeUpsert {
	u.SetExcluded(unitknowledge.FieldLastWrongAt)
	return u
}

// ClearLastWrongAt clears the value of the "last_wrong_at" field.
func (u *UnitKnowledgeUpsert) ClearLastWrongAt() *UnitKnowledgeUpsert {
	u.SetNull(unitknowledge.FieldLastWrongAt)
	return u
}

// SetStabilityScore sets the "stability_score" field.
func (u *UnitKnowledgeUpsert) SetStabilityScore(v int64) *UnitKnowledgeUpsert {
	u.Set(unitknowledge.FieldStabilityScore, v)
	return u
}

// UpdateStabilityScore sets the "stability_score" field to the value that was provided on create.
func (u *UnitKnowledgeUpsert) UpdateStabilityScore() *UnitKnowledgeUpsert {
	u.SetExcluded(unitknowledge.FieldStabilityScore)
	return u
}

// AddStabilityScore adds v to the "stability_score" field.
func (u *UnitKnowledgeUpsert) AddStabilityScore(v int64) *UnitKnowledgeUpsert {
	u.Add(unitknowledge.FieldStabilityScore, v)
	return u
}

// SetState sets the "state" field.
func (u *UnitKnowledgeUpsert) SetState(v string) *UnitKnowledgeUpsert {
	u.Set(unitknowledge.FieldState, v)
	return u
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *UnitKnowledgeUpsert) UpdateState() *UnitKnowledgeUpsert {
	u.SetExcluded(unitknowledge.FieldState)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UnitKnowledgeUpsert) SetUpdatedAt(v time.Time) *UnitKnowledgeUpsert {
	u.Set(unitknowledge.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UnitKnowledgeUpsert) UpdateUpdatedAt() *UnitKnowledgeUpsert {
	u.SetExcluded(unitknowledge.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.UnitKnowledge.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *UnitKnowledgeUpsertOne) UpdateNewValues() *UnitKnowledgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(unitknowledge.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UnitKnowledge.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *UnitKnowledgeUpsertOne) Ignore() *UnitKnowledgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UnitKnowledgeUpsertOne) DoNothing() *UnitKnowledgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UnitKnowledgeCreate.OnConflict
// documentation for more info.
func (u *UnitKnowledgeUpsertOne) Update(set func(*UnitKnowledgeUpsert)) *UnitKnowledgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UnitKnowledgeUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *UnitKnowledgeUpsertOne) SetUserID(v int64) *UnitKnowledgeUpsertOne {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *UnitKnowledgeUpsertOne) AddUserID(v int64) *UnitKnowledgeUpsertOne {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *UnitKnowledgeUpsertOne) UpdateUserID() *UnitKnowledgeUpsertOne {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.UpdateUserID()
	})
}

// SetUnitType sets the "unit_type" field.
func (u *UnitKnowledgeUpsertOne) SetUnitType(v string) *UnitKnowledgeUpsertOne {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.SetUnitType(v)
	})
}

// UpdateUnitType sets the "unit_type" field to the value that was provided on create.
func (u *UnitKnowledgeUpsertOne) UpdateUnitType() *UnitKnowledgeUpsertOne {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.UpdateUnitType()
	})
}

// SetUnitID sets the "unit_id" field.
func (u *UnitKnowledgeUpsertOne) SetUnitID(v int64) *UnitKnowledgeUpsertOne {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.SetUnitID(v)
	})
}

// AddUnitID adds v to the "unit_id" field.
func (u *UnitKnowledgeUpsertOne) AddUnitID(v int64) *UnitKnowledgeUpsertOne {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.AddUnitID(v)
	})
}

// UpdateUnitID sets the "unit_id" field to the value that was provided on create.
func (u *UnitKnowledgeUpsertOne) UpdateUnitID() *UnitKnowledgeUpsertOne {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.UpdateUnitID()
	})
}

// SetTotalAttempts sets the "total_attempts" field.
func (u *UnitKnowledgeUpsertOne) SetTotalAttempts(v int64) *UnitKnowledgeUpsertOne {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.SetTotalAttempts(v)
	})
}

// AddTotalAttempts adds v to the "total_attempts" field.
func (u *UnitKnowledgeUpsertOne) AddTotalAttempts(v int64) *UnitKnowledgeUpsertOne {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.AddTotalAttempts(v)
	})
}

// UpdateTotalAttempts sets the "total_attempts" field to the value that was provided on create.
func (u *UnitKnowledgeUpsertOne) UpdateTotalAttempts() *UnitKnowledgeUpsertOne {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.UpdateTotalAttempts()
	})
}

// SetCorrectCount sets the "correct_count" field.
func (u *UnitKnowledgeUpsertOne) SetCorrectCount(v int64) *UnitKnowledgeUpsertOne {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.SetCorrectCount(v)
	})
}

// AddCorrectCount adds v to the "correct_count" field.
func (u *UnitKnowledgeUpsertOne) AddCorrectCount(v int64) *UnitKnowledgeUpsertOne {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.AddCorrectCount(v)
	})
}

// UpdateCorrectCount sets the "correct_count" field to the value that was provided on create.
func (u *UnitKnowledgeUpsertOne) UpdateCorrectCount() *UnitKnowledgeUpsertOne {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.UpdateCorrectCount()
	})
}

// SetWrongCount sets the "wrong_count" field.
func (u *UnitKnowledgeUpsertOne) SetWrongCount(v int64) *UnitKnowledgeUpsertOne {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.SetWrongCount(v)
	})
}

// AddWrongCount adds v to the "wrong_count" field.
func (u *UnitKnowledgeUpsertOne) AddWrongCount(v int64) *UnitKnowledgeUpsertOne {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.AddWrongCount(v)
	})
}

// UpdateWrongCount sets the "wrong_count" field to the value that was provided on create.
func (u *UnitKnowledgeUpsertOne) UpdateWrongCount() *UnitKnowledgeUpsertOne {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.UpdateWrongCount()
	})
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (u *UnitKnowledgeUpsertOne) SetLastAttemptAt(v time.Time) *UnitKnowledgeUpsertOne {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.SetLastAttemptAt(v)
	})
}

// UpdateLastAttemptAt sets the "last_attempt_at" field to the value that was provided on create.
func (u *UnitKnowledgeUpsertOne) UpdateLastAttemptAt() *UnitKnowledgeUpsertOne {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.UpdateLastAttemptAt()
	})
}

// SetLastCorrectAt sets the "last_correct_at" field.
func (u *UnitKnowledgeUpsertOne) SetLastCorrectAt(v time.Time) *UnitKnowledgeUpsertOne {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.SetLastCorrectAt(v)
	})
}

// UpdateLastCorrectAt sets the "last_correct_at" field to the value that was provided on create.
func (u *UnitKnowledgeUpsertOne) UpdateLastCorrectAt() *UnitKnowledgeUpsertOne {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.UpdateLastCorrectAt()
	})
}

// ClearLastCorrectAt clears the value of the "last_correct_at" field.
func (u *UnitKnowledgeUpsertOne) ClearLastCorrectAt() *UnitKnowledgeUpsertOne {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.ClearLastCorrectAt()
	})
}

// SetLastWrongAt sets the "last_wrong_at" field.
func (u *UnitKnowledgeUpsertOne) SetLastWrongAt(v time.Time) *UnitKnowledgeUpsertOne {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.SetLastWrongAt(v)
	})
}

// UpdateLastWrongAt sets the "last_wrong_at" field to the value that was provided on create.
func (u *UnitKnowledgeUpsertOne) UpdateLastWrongAt() *UnitKnowledgeUpsertOne {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.UpdateLastWrongAt()
	})
}

// ClearLastWrongAt clears the value of the "last_wrong_at" field.
func (u *UnitKnowledgeUpsertOne) ClearLastWrongAt() *UnitKnowledgeUpsertOne {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.ClearLastWrongAt()
	})
}

// SetStabilityScore sets the "stability_score" field.
func (u *UnitKnowledgeUpsertOne) SetStabilityScore(v int64) *UnitKnowledgeUpsertOne {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.SetStabilityScore(v)
	})
}

// AddStabilityScore adds v to the "stability_score" field.
func (u *UnitKnowledgeUpsertOne) AddStabilityScore(v int64) *UnitKnowledgeUpsertOne {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.AddStabilityScore(v)
	})
}

// UpdateStabilityScore sets the "stability_score" field to the value that was provided on create.
func (u *UnitKnowledgeUpsertOne) UpdateStabilityScore() *UnitKnowledgeUpsertOne {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.UpdateStabilityScore()
	})
}

// SetState sets the "state" field.
func (u *UnitKnowledgeUpsertOne) SetState(v string) *UnitKnowledgeUpsertOne {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *UnitKnowledgeUpsertOne) UpdateState() *UnitKnowledgeUpsertOne {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.UpdateState()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UnitKnowledgeUpsertOne) SetUpdatedAt(v time.Time) *UnitKnowledgeUpsertOne {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UnitKnowledgeUpsertOne) UpdateUpdatedAt() *UnitKnowledgeUpsertOne {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *UnitKnowledgeUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UnitKnowledgeCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UnitKnowledgeUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *UnitKnowledgeUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *UnitKnowledgeUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// UnitKnowledgeCreateBulk is the builder for creating many UnitKnowledge entities in bulk.
type UnitKnowledgeCreateBulk struct {
	config
	err      error
	builders []*UnitKnowledgeCreate
	conflict []sql.ConflictOption
}

// Save creates the UnitKnowledge entities in the database.
func (ukcb *UnitKnowledgeCreateBulk) Save(ctx context.Context) ([]*UnitKnowledge, error) {
	if ukcb.err != nil {
		return nil, ukcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(ukcb.builders))
	nodes := make([]*UnitKnowledge, len(ukcb.builders))
	mutators := make([]Mutator, len(ukcb.builders))
	for i := range ukcb.builders {
		func(i int, root context.Context) {
			builder := ukcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UnitKnowledgeMutation)
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
					_, err = mutators[i+1].Mutate(root, ukcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = ukcb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, ukcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, ukcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (ukcb *UnitKnowledgeCreateBulk) SaveX(ctx context.Context) []*UnitKnowledge {
	v, err := ukcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ukcb *UnitKnowledgeCreateBulk) Exec(ctx context.Context) error {
	_, err := ukcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ukcb *UnitKnowledgeCreateBulk) ExecX(ctx context.Context) {
	if err := ukcb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UnitKnowledge.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UnitKnowledgeUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (ukcb *UnitKnowledgeCreateBulk) OnConflict(opts ...sql.ConflictOption) *UnitKnowledgeUpsertBulk {
	ukcb.conflict = opts
	return &UnitKnowledgeUpsertBulk{
		create: ukcb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UnitKnowledge.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (ukcb *UnitKnowledgeCreateBulk) OnConflictColumns(columns ...string) *UnitKnowledgeUpsertBulk {
	ukcb.conflict = append(ukcb.conflict, sql.ConflictColumns(columns...))
	return &UnitKnowledgeUpsertBulk{
		create: ukcb,
	}
}

// UnitKnowledgeUpsertBulk is the builder for "upsert"-ing
// a bulk of UnitKnowledge nodes.
type UnitKnowledgeUpsertBulk struct {
	create *UnitKnowledgeCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.UnitKnowledge.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *UnitKnowledgeUpsertBulk) UpdateNewValues() *UnitKnowledgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(unitknowledge.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UnitKnowledge.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *UnitKnowledgeUpsertBulk) Ignore() *UnitKnowledgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UnitKnowledgeUpsertBulk) DoNothing() *UnitKnowledgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UnitKnowledgeCreateBulk.OnConflict
// documentation for more info.
func (u *UnitKnowledgeUpsertBulk) Update(set func(*UnitKnowledgeUpsert)) *UnitKnowledgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UnitKnowledgeUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *UnitKnowledgeUpsertBulk) SetUserID(v int64) *UnitKnowledgeUpsertBulk {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *UnitKnowledgeUpsertBulk) AddUserID(v int64) *UnitKnowledgeUpsertBulk {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *UnitKnowledgeUpsertBulk) UpdateUserID() *UnitKnowledgeUpsertBulk {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.UpdateUserID()
	})
}

// SetUnitType sets the "unit_type" field.
func (u *UnitKnowledgeUpsertBulk) SetUnitType(v string) *UnitKnowledgeUpsertBulk {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.SetUnitType(v)
	})
}

// UpdateUnitType sets the "unit_type" field to the value that was provided on create.
func (u *UnitKnowledgeUpsertBulk) UpdateUnitType() *UnitKnowledgeUpsertBulk {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.UpdateUnitType()
	})
}

// SetUnitID sets the "unit_id" field.
func (u *UnitKnowledgeUpsertBulk) SetUnitID(v int64) *UnitKnowledgeUpsertBulk {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.SetUnitID(v)
	})
}

// AddUnitID adds v to the "unit_id" field.
func (u *UnitKnowledgeUpsertBulk) AddUnitID(v int64) *UnitKnowledgeUpsertBulk {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.AddUnitID(v)
	})
}

// UpdateUnitID sets the "unit_id" field to the value that was provided on create.
func (u *UnitKnowledgeUpsertBulk) UpdateUnitID() *UnitKnowledgeUpsertBulk {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.UpdateUnitID()
	})
}

// SetTotalAttempts sets the "total_attempts" field.
func (u *UnitKnowledgeUpsertBulk) SetTotalAttempts(v int64) *UnitKnowledgeUpsertBulk {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.SetTotalAttempts(v)
	})
}

// AddTotalAttempts adds v to the "total_attempts" field.
func (u *UnitKnowledgeUpsertBulk) AddTotalAttempts(v int64) *UnitKnowledgeUpsertBulk {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.AddTotalAttempts(v)
	})
}

// UpdateTotalAttempts sets the "total_attempts" field to the value that was provided on create.
func (u *UnitKnowledgeUpsertBulk) UpdateTotalAttempts() *UnitKnowledgeUpsertBulk {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.UpdateTotalAttempts()
	})
}

// SetCorrectCount sets the "correct_count" field.
func (u *UnitKnowledgeUpsertBulk) SetCorrectCount(v int64) *UnitKnowledgeUpsertBulk {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.SetCorrectCount(v)
	})
}

// AddCorrectCount adds v to the "correct_count" field.
func (u *UnitKnowledgeUpsertBulk) AddCorrectCount(v int64) *UnitKnowledgeUpsertBulk {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.AddCorrectCount(v)
	})
}

// UpdateCorrectCount sets the "correct_count" field to the value that was provided on create.
func (u *UnitKnowledgeUpsertBulk) UpdateCorrectCount() *UnitKnowledgeUpsertBulk {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.UpdateCorrectCount()
	})
}

// SetWrongCount sets the "wrong_count" field.
func (u *UnitKnowledgeUpsertBulk) SetWrongCount(v int64) *UnitKnowledgeUpsertBulk {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.SetWrongCount(v)
	})
}

// AddWrongCount adds v to the "wrong_count" field.
func (u *UnitKnowledgeUpsertBulk) AddWrongCount(v int64) *UnitKnowledgeUpsertBulk {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.AddWrongCount(v)
	})
}

// UpdateWrongCount sets the "wrong_count" field to the value that was provided on create.
func (u *UnitKnowledgeUpsertBulk) UpdateWrongCount() *UnitKnowledgeUpsertBulk {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.UpdateWrongCount()
	})
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (u *UnitKnowledgeUpsertBulk) SetLastAttemptAt(v time.Time) *UnitKnowledgeUpsertBulk {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.SetLastAttemptAt(v)
	})
}

// UpdateLastAttemptAt sets the "last_attempt_at" field to the value that was provided on create.
func (u *UnitKnowledgeUpsertBulk) UpdateLastAttemptAt() *UnitKnowledgeUpsertBulk {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.UpdateLastAttemptAt()
	})
}

// SetLastCorrectAt sets the "last_correct_at" field.
func (u *UnitKnowledgeUpsertBulk) SetLastCorrectAt(v time.Time) *UnitKnowledgeUpsertBulk {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.SetLastCorrectAt(v)
	})
}

// UpdateLastCorrectAt sets the "last_correct_at" field to the value that was provided on create.
func (u *UnitKnowledgeUpsertBulk) UpdateLastCorrectAt() *UnitKnowledgeUpsertBulk {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.UpdateLastCorrectAt()
	})
}

// ClearLastCorrectAt clears the value of the "last_correct_at" field.
func (u *UnitKnowledgeUpsertBulk) ClearLastCorrectAt() *UnitKnowledgeUpsertBulk {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.ClearLastCorrectAt()
	})
}

// SetLastWrongAt sets the "last_wrong_at" field.
func (u *UnitKnowledgeUpsertBulk) SetLastWrongAt(v time.Time) *UnitKnowledgeUpsertBulk {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.SetLastWrongAt(v)
	})
}

// UpdateLastWrongAt sets the "last_wrong_at" field to the value that was provided on create.
func (u *UnitKnowledgeUpsertBulk) UpdateLastWrongAt() *UnitKnowledgeUpsertBulk {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.UpdateLastWrongAt()
	})
}

// ClearLastWrongAt clears the value of the "last_wrong_at" field.
func (u *UnitKnowledgeUpsertBulk) ClearLastWrongAt() *UnitKnowledgeUpsertBulk {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.ClearLastWrongAt()
	})
}

// SetStabilityScore sets the "stability_score" field.
func (u *UnitKnowledgeUpsertBulk) SetStabilityScore(v int64) *UnitKnowledgeUpsertBulk {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.SetStabilityScore(v)
	})
}

// AddStabilityScore adds v to the "stability_score" field.
func (u *UnitKnowledgeUpsertBulk) AddStabilityScore(v int64) *UnitKnowledgeUpsertBulk {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.AddStabilityScore(v)
	})
}

// UpdateStabilityScore sets the "stability_score" field to the value that was provided on create.
func (u *UnitKnowledgeUpsertBulk) UpdateStabilityScore() *UnitKnowledgeUpsertBulk {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.UpdateStabilityScore()
	})
}

// SetState sets the "state" field.
func (u *UnitKnowledgeUpsertBulk) SetState(v string) *UnitKnowledgeUpsertBulk {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *UnitKnowledgeUpsertBulk) UpdateState() *UnitKnowledgeUpsertBulk {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.UpdateState()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UnitKnowledgeUpsertBulk) SetUpdatedAt(v time.Time) *UnitKnowledgeUpsertBulk {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UnitKnowledgeUpsertBulk) UpdateUpdatedAt() *UnitKnowledgeUpsertBulk {
	return u.Update(func(s *UnitKnowledgeUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *UnitKnowledgeUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the UnitKnowledgeCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UnitKnowledgeCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UnitKnowledgeUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
