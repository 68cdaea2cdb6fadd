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
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/xpevent"
)

// XpEventUpdate is the builder for updating XpEvent entities.
type XpEventUpdate struct {
	config
	hooks    []Hook
	mutation *XpEventMutation
}

// Where appends a list predicates to the XpEventUpdate builder.
func (xeu *XpEventUpdate) Where(ps ...predicate.XpEvent) *XpEventUpdate {
	xeu.mutation.Where(ps...)
	return xeu
}

// SetUserID sets the "user_id" field.
func (xeu *XpEventUpdate) SetUserID(i int64) *XpEventUpdate {
	xeu.mutation.ResetUserID()
	xeu.mutation.SetUserID(i)
	return xeu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (xeu *XpEventUpdate) SetNillableUserID(i *int64) *XpEventUpdate {
	if i != nil {
		xeu.SetUserID(*i)
	}
	return xeu
}

// AddUserID adds i to the "user_id" field.
func (xeu *XpEventUpdate) AddUserID(i int64) *XpEventUpdate {
	xeu.mutation.AddUserID(i)
	return xeu
}

// SetSource sets the "source" field.
func (xeu *XpEventUpdate) SetSource(s string) *XpEventUpdate {
	xeu.mutation.SetSource(s)
	return xeu
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (xeu *XpEventUpdate) SetNillableSource(s *string) *XpEventUpdate {
	if s != nil {
		xeu.SetSource(*s)
	}
	return xeu
}

// SetSourceSlug sets the "source_slug" field.
func (xeu *XpEventUpdate) SetSourceSlug(s string) *XpEventUpdate {
	xeu.mutation.SetSourceSlug(s)
	return xeu
}

// SetNillableSourceSlug sets the "source_slug" field if the given value is not nil.
func (xeu *XpEventUpdate) SetNillableSourceSlug(s *string) *XpEventUpdate {
	if s != nil {
		xeu.SetSourceSlug(*s)
	}
	return xeu
}

// SetSessionID sets the "session_id" field.
func (xeu *XpEventUpdate) SetSessionID(s string) *XpEventUpdate {
	xeu.mutation.SetSessionID(s)
	return xeu
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (xeu *XpEventUpdate) SetNillableSessionID(s *string) *XpEventUpdate {
	if s != nil {
		xeu.SetSessionID(*s)
	}
	return xeu
}

// SetDedupeKey sets the "dedupe_key" field.
func (xeu *XpEventUpdate) SetDedupeKey(s string) *XpEventUpdate {
	xeu.mutation.SetDedupeKey(s)
	return xeu
}

// SetNillableDedupeKey sets the "dedupe_key" field if the given value is not nil.
func (xeu *XpEventUpdate) SetNillableDedupeKey(s *string) *XpEventUpdate {
	if s != nil {
		xeu.SetDedupeKey(*s)
	}
	return xeu
}

// SetAwardedOn sets the "awarded_on" field.
func (xeu *XpEventUpdate) SetAwardedOn(s string) *XpEventUpdate {
	xeu.mutation.SetAwardedOn(s)
	return xeu
}

// SetNillableAwardedOn sets the "awarded_on" field if the given value is not nil.
func (xeu *XpEventUpdate) SetNillableAwardedOn(s *string) *XpEventUpdate {
	if s != nil {
		xeu.SetAwardedOn(*s)
	}
	return xeu
}

// SetXp sets the "xp" field.
func (xeu *XpEventUpdate) SetXp(i int64) *XpEventUpdate {
	xeu.mutation.ResetXp()
	xeu.mutation.SetXp(i)
	return xeu
}

// SetNillableXp sets the "xp" field if the given value is not nil.
func (xeu *XpEventUpdate) SetNillableXp(i *int64) *XpEventUpdate {
	if i != nil {
		xeu.SetXp(*i)
	}
	return xeu
}

// AddXp adds i to the "xp" field.
func (xeu *XpEventUpdate) AddXp(i int64) *XpEventUpdate {
	xeu.mutation.AddXp(i)
	return xeu
}

// SetPerfect sets the "perfect" field.
func (xeu *XpEventUpdate) SetPerfect(b bool) *XpEventUpdate {
	xeu.mutation.SetPerfect(b)
	return xeu
}

// SetNillablePerfect sets the "perfect" field if the given value is not nil.
func (xeu *XpEventUpdate) SetNillablePerfect(b *bool) *XpEventUpdate {
	if b != nil {
		xeu.SetPerfect(*b)
	}
	return xeu
}

// SetMeta sets the "meta" field.
func (xeu *XpEventUpdate) SetMeta(m map[string]string) *XpEventUpdate {
	xeu.mutation.SetMeta(m)
	return xeu
}

// Mutation returns the XpEventMutation object of the builder.
func (xeu *XpEventUpdate) Mutation() *XpEventMutation {
	return xeu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (xeu *XpEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, xeu.sqlSave, xeu.mutation, xeu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (xeu *XpEventUpdate) SaveX(ctx context.Context) int {
	affected, err := xeu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (xeu *XpEventUpdate) Exec(ctx context.Context) error {
	_, err := xeu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (xeu *XpEventUpdate) ExecX(ctx context.Context) {
	if err := xeu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (xeu *XpEventUpdate) check() error {
	if v, ok := xeu.mutation.Source(); ok {
		if err := xpevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "XpEvent.source": %w`, err)}
		}
	}
	if v, ok := xeu.mutation.SessionID(); ok {
		if err := xpevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "XpEvent.session_id": %w`, err)}
		}
	}
	if v, ok := xeu.mutation.DedupeKey(); ok {
		if err := xpevent.DedupeKeyValidator(v); err != nil {
			return &ValidationError{Name: "dedupe_key", err: fmt.Errorf(`ent: validator failed for field "XpEvent.dedupe_key": %w`, err)}
		}
	}
	if v, ok := xeu.mutation.AwardedOn(); ok {
		if err := xpevent.AwardedOnValidator(v); err != nil {
			return &ValidationError{Name: "awarded_on", err: fmt.Errorf(`ent: validator failed for field "XpEvent.awarded_on": %w`, err)}
		}
	}
	return nil
}

func (xeu *XpEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := xeu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(xpevent.Table, xpevent.Columns, sqlgraph.NewFieldSpec(xpevent.FieldID, field.TypeInt))
	if ps := xeu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := xeu.mutation.UserID(); ok {
		_spec.SetField(xpevent.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := xeu.mutation.AddedUserID(); ok {
		_spec.AddField(xpevent.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := xeu.mutation.Source(); ok {
		_spec.SetField(xpevent.FieldSource, field.TypeString, value)
	}
	if value, ok := xeu.mutation.SourceSlug(); ok {
		_spec.SetField(xpevent.FieldSourceSlug, field.TypeString, value)
	}
	if value, ok := xeu.mutation.SessionID(); ok {
		_spec.SetField(xpevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := xeu.mutation.DedupeKey(); ok {
		_spec.SetField(xpevent.FieldDedupeKey, field.TypeString, value)
	}
	if value, ok := xeu.mutation.AwardedOn(); ok {
		_spec.SetField(xpevent.FieldAwardedOn, field.TypeString, value)
	}
	if value, ok := xeu.mutation.Xp(); ok {
		_spec.SetField(xpevent.FieldXp, field.TypeInt64, value)
	}
	if value, ok := xeu.mutation.AddedXp(); ok {
		_spec.AddField(xpevent.FieldXp, field.TypeInt64, value)
	}
	if value, ok := xeu.mutation.Perfect(); ok {
		_spec.SetField(xpevent.FieldPerfect, field.TypeBool, value)
	}
	if value, ok := xeu.mutation.Meta(); ok {
		_spec.SetField(xpevent.FieldMeta, field.TypeJSON, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, xeu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{xpevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	xeu.mutation.done = true
	return n, nil
}

// XpEventUpdateOne is the builder for updating a single XpEvent entity.
type XpEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *XpEventMutation
}

// SetUserID sets the "user_id" field.
func (xeuo *XpEventUpdateOne) SetUserID(i int64) *XpEventUpdateOne {
	xeuo.mutation.ResetUserID()
	xeuo.mutation.SetUserID(i)
	return xeuo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (xeuo *XpEventUpdateOne) SetNillableUserID(i *int64) *XpEventUpdateOne {
	if i != nil {
		xeuo.SetUserID(*i)
	}
	return xeuo
}

// AddUserID adds i to the "user_id" field.
func (xeuo *XpEventUpdateOne) AddUserID(i int64) *XpEventUpdateOne {
	xeuo.mutation.AddUserID(i)
	return xeuo
}

// SetSource sets the "source" field.
func (xeuo *XpEventUpdateOne) SetSource(s string) *XpEventUpdateOne {
	xeuo.mutation.SetSource(s)
	return xeuo
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (xeuo *XpEventUpdateOne) SetNillableSource(s *string) *XpEventUpdateOne {
	if s != nil {
		xeuo.SetSource(*s)
	}
	return xeuo
}

// SetSourceSlug sets the "source_slug" field.
func (xeuo *XpEventUpdateOne) SetSourceSlug(s string) *XpEventUpdateOne {
	xeuo.mutation.SetSourceSlug(s)
	return xeuo
}

// SetNillableSourceSlug sets the "source_slug" field if the given value is not nil.
func (xeuo *XpEventUpdateOne) SetNillableSourceSlug(s *string) *XpEventUpdateOne {
	if s != nil {
		xeuo.SetSourceSlug(*s)
	}
	return xeuo
}

// SetSessionID sets the "session_id" field.
func (xeuo *XpEventUpdateOne) SetSessionID(s string) *XpEventUpdateOne {
	xeuo.mutation.SetSessionID(s)
	return xeuo
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (xeuo *XpEventUpdateOne) SetNillableSessionID(s *string) *XpEventUpdateOne {
	if s != nil {
		xeuo.SetSessionID(*s)
	}
	return xeuo
}

// SetDedupeKey sets the "dedupe_key" field.
func (xeuo *XpEventUpdateOne) SetDedupeKey(s string) *XpEventUpdateOne {
	xeuo.mutation.SetDedupeKey(s)
	return xeuo
}

// SetNillableDedupeKey sets the "dedupe_key" field if the given value is not nil.
func (xeuo *XpEventUpdateOne) SetNillableDedupeKey(s *string) *XpEventUpdateOne {
	if s != nil {
		xeuo.SetDedupeKey(*s)
	}
	return xeuo
}

// SetAwardedOn sets the "awarded_on" field.
func (xeuo *XpEventUpdateOne) SetAwardedOn(s string) *XpEventUpdateOne {
	xeuo.mutation.SetAwardedOn(s)
	return xeuo
}

// SetNillableAwardedOn sets the "awarded_on" field if the given value is not nil.
func (xeuo *XpEventUpdateOne) SetNillableAwardedOn(s *string) *XpEventUpdateOne {
	if s != nil {
		xeuo.SetAwardedOn(*s)
	}
	return xeuo
}

// SetXp sets the "xp" field.
func (xeuo *XpEventUpdateOne) SetXp(i int64) *XpEventUpdateOne {
	xeuo.mutation.ResetXp()
	xeuo.mutation.SetXp(i)
	return xeuo
}

// SetNillableXp sets the "xp" field if the given value is not nil.
func (xeuo *XpEventUpdateOne) SetNillableXp(i *int64) *XpEventUpdateOne {
	if i != nil {
		xeuo.SetXp(*i)
	}
	return xeuo
}

// AddXp adds i to the "xp" field.
func (xeuo *XpEventUpdateOne) AddXp(i int64) *XpEventUpdateOne {
	xeuo.mutation.AddXp(i)
	return xeuo
}

// SetPerfect sets the "perfect" field.
func (xeuo *XpEventUpdateOne) SetPerfect(b bool) *XpEventUpdateOne {
	xeuo.mutation.SetPerfect(b)
	return xeuo
}

// SetNillablePerfect sets the "perfect" field if the given value is not nil.
func (xeuo *XpEventUpdateOne) SetNillablePerfect(b *bool) *XpEventUpdateOne {
	if b != nil {
		xeuo.SetPerfect(*b)
	}
	return xeuo
}

// SetMeta sets the "meta" field.
func (xeuo *XpEventUpdateOne) SetMeta(m map[string]string) *XpEventUpdateOne {
	xeuo.mutation.SetMeta(m)
	return xeuo
}

// Mutation returns the XpEventMutation object of the builder.
func (xeuo *XpEventUpdateOne) Mutation() *XpEventMutation {
	return xeuo.mutation
}

// Where appends a list predicates to the XpEventUpdate builder.
func (xeuo *XpEventUpdateOne) Where(ps ...predicate.XpEvent) *XpEventUpdateOne {
	xeuo.mutation.Where(ps...)
	return xeuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (xeuo *XpEventUpdateOne) Select(field string, fields ...string) *XpEventUpdateOne {
	xeuo.fields = append([]string{field}, fields...)
	return xeuo
}

// Save executes the query and returns the updated XpEvent entity.
func (xeuo *XpEventUpdateOne) Save(ctx context.Context) (*XpEvent, error) {
	return withHooks(ctx, xeuo.sqlSave, xeuo.mutation, xeuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (xeuo *XpEventUpdateOne) SaveX(ctx context.Context) *XpEvent {
	node, err := xeuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (xeuo *XpEventUpdateOne) Exec(ctx context.Context) error {
	_, err := xeuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (xeuo *XpEventUpdateOne) ExecX(ctx context.Context) {
	if err := xeuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (xeuo *XpEventUpdateOne) check() error {
	if v, ok := xeuo.mutation.Source(); ok {
		if err := xpevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "XpEvent.source": %w`, err)}
		}
	}
	if v, ok := xeuo.mutation.SessionID(); ok {
		if err := xpevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "XpEvent.session_id": %w`, err)}
		}
	}
	if v, ok := xeuo.mutation.DedupeKey(); ok {
		if err := xpevent.DedupeKeyValidator(v); err != nil {
			return &ValidationError{Name: "dedupe_key", err: fmt.Errorf(`ent: validator failed for field "XpEvent.dedupe_key": %w`, err)}
		}
	}
	if v, ok := xeuo.mutation.AwardedOn(); ok {
		if err := xpevent.AwardedOnValidator(v); err != nil {
			return &ValidationError{Name: "awarded_on", err: fmt.Errorf(`ent: validator failed for field "XpEvent.awarded_on": %w`, err)}
		}
	}
	return nil
}

func (xeuo *XpEventUpdateOne) sqlSave(ctx context.Context) (_node *XpEvent, err error) {
	if err := xeuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(xpevent.Table, xpevent.Columns, sqlgraph.NewFieldSpec(xpevent.FieldID, field.TypeInt))
	id, ok := xeuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "XpEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := xeuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, xpevent.FieldID)
		for _, f := range fields {
			if !xpevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != xpevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := xeuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := xeuo.mutation.UserID(); ok {
		_spec.SetField(xpevent.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := xeuo.mutation.AddedUserID(); ok {
		_spec.AddField(xpevent.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := xeuo.mutation.Source(); ok {
		_spec.SetField(xpevent.FieldSource, field.TypeString, value)
	}
	if value, ok := xeuo.mutation.SourceSlug(); ok {
		_spec.SetField(xpevent.FieldSourceSlug, field.TypeString, value)
	}
	if value, ok := xeuo.mutation.SessionID(); ok {
		_spec.SetField(xpevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := xeuo.mutation.DedupeKey(); ok {
		_spec.SetField(xpevent.FieldDedupeKey, field.TypeString, value)
	}
	if value, ok := xeuo.mutation.AwardedOn(); ok {
		_spec.SetField(xpevent.FieldAwardedOn, field.TypeString, value)
	}
	if value, ok := xeuo.mutation.Xp(); ok {
		_spec.SetField(xpevent.FieldXp, field.TypeInt64, value)
	}
	if value, ok := xeuo.mutation.AddedXp(); ok {
		_spec.AddField(xpevent.FieldXp, field.TypeInt64, value)
	}
	if value, ok := xeuo.mutation.Perfect(); ok {
		_spec.SetField(xpevent.FieldPerfect, field.TypeBool, value)
	}
	if value, ok := xeuo.mutation.Meta(); ok {
		_spec.SetField(xpevent.FieldMeta, field.TypeJSON, value)
	}
	_node = &XpEvent{config: xeuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, xeuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{xpevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	xeuo.mutation.done = true
	return _node, nil
}
