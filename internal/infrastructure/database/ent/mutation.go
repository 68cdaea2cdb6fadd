// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/answerevent"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/badge"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/irregularverb"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/predicate"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/unitknowledge"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/userbadge"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/userxp"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/vocabcluster"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/vocabpack"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/vocabsense"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/xpevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnswerEvent   = "AnswerEvent"
	TypeBadge         = "Badge"
	TypeIrregularVerb = "IrregularVerb"
	TypeUnitKnowledge = "UnitKnowledge"
	TypeUserBadge     = "UserBadge"
	TypeUserXp        = "UserXp"
	TypeVocabCluster  = "VocabCluster"
	TypeVocabPack     = "VocabPack"
	TypeVocabSense    = "VocabSense"
	TypeXpEvent       = "XpEvent"
)

// AnswerEventMutation represents an operation that mutates the AnswerEvent nodes in the graph.
type AnswerEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	user_id       *int64
	adduser_id    *int64
	kind          *string
	context_slug  *string
	session_id    *string
	prompt        *string
	expected      *string
	given         *string
	correct       *bool
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AnswerEvent, error)
	predicates    []predicate.AnswerEvent
}

var _ ent.Mutation = (*AnswerEventMutation)(nil)

// answereventOption allows management of the mutation configuration using functional options.
type answereventOption func(*AnswerEventMutation)

// newAnswerEventMutation creates new mutation for the AnswerEvent entity.
func newAnswerEventMutation(c config, op Op, opts ...answereventOption) *AnswerEventMutation {
	m := &AnswerEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAnswerEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnswerEventID sets the ID field of the mutation.
func withAnswerEventID(id int) answereventOption {
	return func(m *AnswerEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AnswerEvent
		)
		m.oldValue = func(ctx context.Context) (*AnswerEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnswerEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnswerEvent sets the old AnswerEvent of the mutation.
func withAnswerEvent(node *AnswerEvent) answereventOption {
	return func(m *AnswerEventMutation) {
		m.oldValue = func(context.Context) (*AnswerEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnswerEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnswerEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnswerEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnswerEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnswerEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *AnswerEventMutation) SetUserID(i int64) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AnswerEventMutation) UserID() (r int64, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldUserID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *AnswerEventMutation) AddUserID(i int64) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *AnswerEventMutation) AddedUserID() (r int64, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AnswerEventMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetKind sets the "kind" field.
func (m *AnswerEventMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *AnswerEventMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *AnswerEventMutation) ResetKind() {
	m.kind = nil
}

// SetContextSlug sets the "context_slug" field.
func (m *AnswerEventMutation) SetContextSlug(s string) {
	m.context_slug = &s
}

// ContextSlug returns the value of the "context_slug" field in the mutation.
func (m *AnswerEventMutation) ContextSlug() (r string, exists bool) {
	v := m.context_slug
	if v == nil {
		return
	}
	return *v, true
}

// OldContextSlug returns the old "context_slug" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldContextSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContextSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContextSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContextSlug: %w", err)
	}
	return oldValue.ContextSlug, nil
}

// ResetContextSlug resets all changes to the "context_slug" field.
func (m *AnswerEventMutation) ResetContextSlug() {
	m.context_slug = nil
}

// SetSessionID sets the "session_id" field.
func (m *AnswerEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *AnswerEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *AnswerEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetPrompt sets the "prompt" field.
func (m *AnswerEventMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *AnswerEventMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *AnswerEventMutation) ResetPrompt() {
	m.prompt = nil
}

// SetExpected sets the "expected" field.
func (m *AnswerEventMutation) SetExpected(s string) {
	m.expected = &s
}

// Expected returns the value of the "expected" field in the mutation.
func (m *AnswerEventMutation) Expected() (r string, exists bool) {
	v := m.expected
	if v == nil {
		return
	}
	return *v, true
}

// OldExpected returns the old "expected" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldExpected(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpected is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpected requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpected: %w", err)
	}
	return oldValue.Expected, nil
}

// ResetExpected resets all changes to the "expected" field.
func (m *AnswerEventMutation) ResetExpected() {
	m.expected = nil
}

// SetGiven sets the "given" field.
func (m *AnswerEventMutation) SetGiven(s string) {
	m.given = &s
}

// Given returns the value of the "given" field in the mutation.
func (m *AnswerEventMutation) Given() (r string, exists bool) {
	v := m.given
	if v == nil {
		return
	}
	return *v, true
}

// OldGiven returns the old "given" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldGiven(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGiven is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGiven requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGiven: %w", err)
	}
	return oldValue.Given, nil
}

// ResetGiven resets all changes to the "given" field.
func (m *AnswerEventMutation) ResetGiven() {
	m.given = nil
}

// SetCorrect sets the "correct" field.
func (m *AnswerEventMutation) SetCorrect(b bool) {
	m.correct = &b
}

// Correct returns the value of the "correct" field in the mutation.
func (m *AnswerEventMutation) Correct() (r bool, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// ResetCorrect resets all changes to the "correct" field.
func (m *AnswerEventMutation) ResetCorrect() {
	m.correct = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AnswerEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AnswerEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AnswerEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AnswerEventMutation builder.
func (m *AnswerEventMutation) Where(ps ...predicate.AnswerEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnswerEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnswerEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnswerEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnswerEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnswerEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnswerEvent).
func (m *AnswerEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnswerEventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.user_id != nil {
		fields = append(fields, answerevent.FieldUserID)
	}
	if m.kind != nil {
		fields = append(fields, answerevent.FieldKind)
	}
	if m.context_slug != nil {
		fields = append(fields, answerevent.FieldContextSlug)
	}
	if m.session_id != nil {
		fields = append(fields, answerevent.FieldSessionID)
	}
	if m.prompt != nil {
		fields = append(fields, answerevent.FieldPrompt)
	}
	if m.expected != nil {
		fields = append(fields, answerevent.FieldExpected)
	}
	if m.given != nil {
		fields = append(fields, answerevent.FieldGiven)
	}
	if m.correct != nil {
		fields = append(fields, answerevent.FieldCorrect)
	}
	if m.created_at != nil {
		fields = append(fields, answerevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnswerEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case answerevent.FieldUserID:
		return m.UserID()
	case answerevent.FieldKind:
		return m.Kind()
	case answerevent.FieldContextSlug:
		return m.ContextSlug()
	case answerevent.FieldSessionID:
		return m.SessionID()
	case answerevent.FieldPrompt:
		return m.Prompt()
	case answerevent.FieldExpected:
		return m.Expected()
	case answerevent.FieldGiven:
		return m.Given()
	case answerevent.FieldCorrect:
		return m.Correct()
	case answerevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnswerEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case answerevent.FieldUserID:
		return m.OldUserID(ctx)
	case answerevent.FieldKind:
		return m.OldKind(ctx)
	case answerevent.FieldContextSlug:
		return m.OldContextSlug(ctx)
	case answerevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case answerevent.FieldPrompt:
		return m.OldPrompt(ctx)
	case answerevent.FieldExpected:
		return m.OldExpected(ctx)
	case answerevent.FieldGiven:
		return m.OldGiven(ctx)
	case answerevent.FieldCorrect:
		return m.OldCorrect(ctx)
	case answerevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AnswerEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnswerEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case answerevent.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case answerevent.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case answerevent.FieldContextSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContextSlug(v)
		return nil
	case answerevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case answerevent.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case answerevent.FieldExpected:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpected(v)
		return nil
	case answerevent.FieldGiven:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGiven(v)
		return nil
	case answerevent.FieldCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	case answerevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AnswerEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnswerEventMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, answerevent.FieldUserID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnswerEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case answerevent.FieldUserID:
		return m.AddedUserID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnswerEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case answerevent.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	}
	return fmt.Errorf("unknown AnswerEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnswerEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnswerEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnswerEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AnswerEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnswerEventMutation) ResetField(name string) error {
	switch name {
	case answerevent.FieldUserID:
		m.ResetUserID()
		return nil
	case answerevent.FieldKind:
		m.ResetKind()
		return nil
	case answerevent.FieldContextSlug:
		m.ResetContextSlug()
		return nil
	case answerevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case answerevent.FieldPrompt:
		m.ResetPrompt()
		return nil
	case answerevent.FieldExpected:
		m.ResetExpected()
		return nil
	case answerevent.FieldGiven:
		m.ResetGiven()
		return nil
	case answerevent.FieldCorrect:
		m.ResetCorrect()
		return nil
	case answerevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AnswerEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnswerEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnswerEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnswerEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnswerEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnswerEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnswerEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnswerEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AnswerEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnswerEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AnswerEvent edge %s", name)
}

// BadgeMutation represents an operation that mutates the Badge nodes in the graph.
type BadgeMutation struct {
	config
	op            Op
	typ           string
	id            *int
	slug          *string
	name          *string
	description   *string
	icon          *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Badge, error)
	predicates    []predicate.Badge
}

var _ ent.Mutation = (*BadgeMutation)(nil)

// badgeOption allows management of the mutation configuration using functional options.
type badgeOption func(*BadgeMutation)

// newBadgeMutation creates new mutation for the Badge entity.
func newBadgeMutation(c config, op Op, opts ...badgeOption) *BadgeMutation {
	m := &BadgeMutation{
		config:        c,
		op:            op,
		typ:           TypeBadge,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBadgeID sets the ID field of the mutation.
func withBadgeID(id int) badgeOption {
	return func(m *BadgeMutation) {
		var (
			err   error
			once  sync.Once
			value *Badge
		)
		m.oldValue = func(ctx context.Context) (*Badge, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Badge.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBadge sets the old Badge of the mutation.
func withBadge(node *Badge) badgeOption {
	return func(m *BadgeMutation) {
		m.oldValue = func(context.Context) (*Badge, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BadgeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BadgeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BadgeMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BadgeMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Badge.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSlug sets the "slug" field.
func (m *BadgeMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *BadgeMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the Badge entity.
// If the Badge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BadgeMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *BadgeMutation) ResetSlug() {
	m.slug = nil
}

// SetName sets the "name" field.
func (m *BadgeMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *BadgeMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Badge entity.
// If the Badge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BadgeMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *BadgeMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *BadgeMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *BadgeMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Badge entity.
// If the Badge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BadgeMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *BadgeMutation) ResetDescription() {
	m.description = nil
}

// SetIcon sets the "icon" field.
func (m *BadgeMutation) SetIcon(s string) {
	m.icon = &s
}

// Icon returns the value of the "icon" field in the mutation.
func (m *BadgeMutation) Icon() (r string, exists bool) {
	v := m.icon
	if v == nil {
		return
	}
	return *v, true
}

// OldIcon returns the old "icon" field's value of the Badge entity.
// If the Badge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BadgeMutation) OldIcon(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIcon is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIcon requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIcon: %w", err)
	}
	return oldValue.Icon, nil
}

// ResetIcon resets all changes to the "icon" field.
func (m *BadgeMutation) ResetIcon() {
	m.icon = nil
}

// Where appends a list predicates to the BadgeMutation builder.
func (m *BadgeMutation) Where(ps ...predicate.Badge) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BadgeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BadgeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Badge, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BadgeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BadgeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Badge).
func (m *BadgeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BadgeMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.slug != nil {
		fields = append(fields, badge.FieldSlug)
	}
	if m.name != nil {
		fields = append(fields, badge.FieldName)
	}
	if m.description != nil {
		fields = append(fields, badge.FieldDescription)
	}
	if m.icon != nil {
		fields = append(fields, badge.FieldIcon)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BadgeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case badge.FieldSlug:
		return m.Slug()
	case badge.FieldName:
		return m.Name()
	case badge.FieldDescription:
		return m.Description()
	case badge.FieldIcon:
		return m.Icon()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BadgeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case badge.FieldSlug:
		return m.OldSlug(ctx)
	case badge.FieldName:
		return m.OldName(ctx)
	case badge.FieldDescription:
		return m.OldDescription(ctx)
	case badge.FieldIcon:
		return m.OldIcon(ctx)
	}
	return nil, fmt.Errorf("unknown Badge field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BadgeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case badge.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case badge.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case badge.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case badge.FieldIcon:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIcon(v)
		return nil
	}
	return fmt.Errorf("unknown Badge field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BadgeMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BadgeMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BadgeMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Badge numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BadgeMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BadgeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BadgeMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Badge nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BadgeMutation) ResetField(name string) error {
	switch name {
	case badge.FieldSlug:
		m.ResetSlug()
		return nil
	case badge.FieldName:
		m.ResetName()
		return nil
	case badge.FieldDescription:
		m.ResetDescription()
		return nil
	case badge.FieldIcon:
		m.ResetIcon()
		return nil
	}
	return fmt.Errorf("unknown Badge field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BadgeMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BadgeMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BadgeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BadgeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BadgeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BadgeMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BadgeMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Badge unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BadgeMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Badge edge %s", name)
}

// IrregularVerbMutation represents an operation that mutates the IrregularVerb nodes in the graph.
type IrregularVerbMutation struct {
	config
	op            Op
	typ           string
	id            *int
	base          *string
	past          *string
	participle    *string
	translation   *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*IrregularVerb, error)
	predicates    []predicate.IrregularVerb
}

var _ ent.Mutation = (*IrregularVerbMutation)(nil)

// irregularverbOption allows management of the mutation configuration using functional options.
type irregularverbOption func(*IrregularVerbMutation)

// newIrregularVerbMutation creates new mutation for the IrregularVerb entity.
func newIrregularVerbMutation(c config, op Op, opts ...irregularverbOption) *IrregularVerbMutation {
	m := &IrregularVerbMutation{
		config:        c,
		op:            op,
		typ:           TypeIrregularVerb,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIrregularVerbID sets the ID field of the mutation.
func withIrregularVerbID(id int) irregularverbOption {
	return func(m *IrregularVerbMutation) {
		var (
			err   error
			once  sync.Once
			value *IrregularVerb
		)
		m.oldValue = func(ctx context.Context) (*IrregularVerb, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().IrregularVerb.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIrregularVerb sets the old IrregularVerb of the mutation.
func withIrregularVerb(node *IrregularVerb) irregularverbOption {
	return func(m *IrregularVerbMutation) {
		m.oldValue = func(context.Context) (*IrregularVerb, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IrregularVerbMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IrregularVerbMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IrregularVerbMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IrregularVerbMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().IrregularVerb.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBase sets the "base" field.
func (m *IrregularVerbMutation) SetBase(s string) {
	m.base = &s
}

// Base returns the value of the "base" field in the mutation.
func (m *IrregularVerbMutation) Base() (r string, exists bool) {
	v := m.base
	if v == nil {
		return
	}
	return *v, true
}

// OldBase returns the old "base" field's value of the IrregularVerb entity.
// If the IrregularVerb object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IrregularVerbMutation) OldBase(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBase: %w", err)
	}
	return oldValue.Base, nil
}

// ResetBase resets all changes to the "base" field.
func (m *IrregularVerbMutation) ResetBase() {
	m.base = nil
}

// SetPast sets the "past" field.
func (m *IrregularVerbMutation) SetPast(s string) {
	m.past = &s
}

// Past returns the value of the "past" field in the mutation.
func (m *IrregularVerbMutation) Past() (r string, exists bool) {
	v := m.past
	if v == nil {
		return
	}
	return *v, true
}

// OldPast returns the old "past" field's value of the IrregularVerb entity.
// If the IrregularVerb object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IrregularVerbMutation) OldPast(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPast is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPast requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPast: %w", err)
	}
	return oldValue.Past, nil
}

// ResetPast resets all changes to the "past" field.
func (m *IrregularVerbMutation) ResetPast() {
	m.past = nil
}

// SetParticiple sets the "participle" field.
func (m *IrregularVerbMutation) SetParticiple(s string) {
	m.participle = &s
}

// Participle returns the value of the "participle" field in the mutation.
func (m *IrregularVerbMutation) Participle() (r string, exists bool) {
	v := m.participle
	if v == nil {
		return
	}
	return *v, true
}

// OldParticiple returns the old "participle" field's value of the IrregularVerb entity.
// If the IrregularVerb object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IrregularVerbMutation) OldParticiple(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParticiple is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParticiple requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParticiple: %w", err)
	}
	return oldValue.Participle, nil
}

// ResetParticiple resets all changes to the "participle" field.
func (m *IrregularVerbMutation) ResetParticiple() {
	m.participle = nil
}

// SetTranslation sets the "translation" field.
func (m *IrregularVerbMutation) SetTranslation(s string) {
	m.translation = &s
}

// Translation returns the value of the "translation" field in the mutation.
func (m *IrregularVerbMutation) Translation() (r string, exists bool) {
	v := m.translation
	if v == nil {
		return
	}
	return *v, true
}

// OldTranslation returns the old "translation" field's value of the IrregularVerb entity.
// If the IrregularVerb object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IrregularVerbMutation) OldTranslation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranslation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranslation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranslation: %w", err)
	}
	return oldValue.Translation, nil
}

// ResetTranslation resets all changes to the "translation" field.
func (m *IrregularVerbMutation) ResetTranslation() {
	m.translation = nil
}

// Where appends a list predicates to the IrregularVerbMutation builder.
func (m *IrregularVerbMutation) Where(ps ...predicate.IrregularVerb) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IrregularVerbMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IrregularVerbMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.IrregularVerb, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IrregularVerbMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IrregularVerbMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (IrregularVerb).
func (m *IrregularVerbMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IrregularVerbMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.base != nil {
		fields = append(fields, irregularverb.FieldBase)
	}
	if m.past != nil {
		fields = append(fields, irregularverb.FieldPast)
	}
	if m.participle != nil {
		fields = append(fields, irregularverb.FieldParticiple)
	}
	if m.translation != nil {
		fields = append(fields, irregularverb.FieldTranslation)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IrregularVerbMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case irregularverb.FieldBase:
		return m.Base()
	case irregularverb.FieldPast:
		return m.Past()
	case irregularverb.FieldParticiple:
		return m.Participle()
	case irregularverb.FieldTranslation:
		return m.Translation()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IrregularVerbMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case irregularverb.FieldBase:
		return m.OldBase(ctx)
	case irregularverb.FieldPast:
		return m.OldPast(ctx)
	case irregularverb.FieldParticiple:
		return m.OldParticiple(ctx)
	case irregularverb.FieldTranslation:
		return m.OldTranslation(ctx)
	}
	return nil, fmt.Errorf("unknown IrregularVerb field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IrregularVerbMutation) SetField(name string, value ent.Value) error {
	switch name {
	case irregularverb.FieldBase:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBase(v)
		return nil
	case irregularverb.FieldPast:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPast(v)
		return nil
	case irregularverb.FieldParticiple:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParticiple(v)
		return nil
	case irregularverb.FieldTranslation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranslation(v)
		return nil
	}
	return fmt.Errorf("unknown IrregularVerb field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IrregularVerbMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IrregularVerbMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IrregularVerbMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown IrregularVerb numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IrregularVerbMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IrregularVerbMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IrregularVerbMutation) ClearField(name string) error {
	return fmt.Errorf("unknown IrregularVerb nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IrregularVerbMutation) ResetField(name string) error {
	switch name {
	case irregularverb.FieldBase:
		m.ResetBase()
		return nil
	case irregularverb.FieldPast:
		m.ResetPast()
		return nil
	case irregularverb.FieldParticiple:
		m.ResetParticiple()
		return nil
	case irregularverb.FieldTranslation:
		m.ResetTranslation()
		return nil
	}
	return fmt.Errorf("unknown IrregularVerb field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IrregularVerbMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IrregularVerbMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IrregularVerbMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IrregularVerbMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IrregularVerbMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IrregularVerbMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IrregularVerbMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown IrregularVerb unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IrregularVerbMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown IrregularVerb edge %s", name)
}

// UnitKnowledgeMutation represents an operation that mutates the UnitKnowledge nodes in the graph.
type UnitKnowledgeMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	user_id            *int64
	adduser_id         *int64
	unit_type          *string
	unit_id            *int64
	addunit_id         *int64
	total_attempts     *int64
	addtotal_attempts  *int64
	correct_count      *int64
	addcorrect_count   *int64
	wrong_count        *int64
	addwrong_count     *int64
	last_attempt_at    *time.Time
	last_correct_at    *time.Time
	last_wrong_at      *time.Time
	stability_score    *int64
	addstability_score *int64
	state              *string
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*UnitKnowledge, error)
	predicates         []predicate.UnitKnowledge
}

var _ ent.Mutation = (*UnitKnowledgeMutation)(nil)

// unitknowledgeOption allows management of the mutation configuration using functional options.
type unitknowledgeOption func(*UnitKnowledgeMutation)

// newUnitKnowledgeMutation creates new mutation for the UnitKnowledge entity.
func newUnitKnowledgeMutation(c config, op Op, opts ...unitknowledgeOption) *UnitKnowledgeMutation {
	m := &UnitKnowledgeMutation{
		config:        c,
		op:            op,
		typ:           TypeUnitKnowledge,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUnitKnowledgeID sets the ID field of the mutation.
func withUnitKnowledgeID(id int) unitknowledgeOption {
	return func(m *UnitKnowledgeMutation) {
		var (
			err   error
			once  sync.Once
			value *UnitKnowledge
		)
		m.oldValue = func(ctx context.Context) (*UnitKnowledge, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UnitKnowledge.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUnitKnowledge sets the old UnitKnowledge of the mutation.
func withUnitKnowledge(node *UnitKnowledge) unitknowledgeOption {
	return func(m *UnitKnowledgeMutation) {
		m.oldValue = func(context.Context) (*UnitKnowledge, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UnitKnowledgeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UnitKnowledgeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UnitKnowledgeMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UnitKnowledgeMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UnitKnowledge.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *UnitKnowledgeMutation) SetUserID(i int64) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UnitKnowledgeMutation) UserID() (r int64, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UnitKnowledge entity.
// If the UnitKnowledge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitKnowledgeMutation) OldUserID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *UnitKnowledgeMutation) AddUserID(i int64) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *UnitKnowledgeMutation) AddedUserID() (r int64, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UnitKnowledgeMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetUnitType sets the "unit_type" field.
func (m *UnitKnowledgeMutation) SetUnitType(s string) {
	m.unit_type = &s
}

// UnitType returns the value of the "unit_type" field in the mutation.
func (m *UnitKnowledgeMutation) UnitType() (r string, exists bool) {
	v := m.unit_type
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitType returns the old "unit_type" field's value of the UnitKnowledge entity.
// If the UnitKnowledge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitKnowledgeMutation) OldUnitType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitType: %w", err)
	}
	return oldValue.UnitType, nil
}

// ResetUnitType resets all changes to the "unit_type" field.
func (m *UnitKnowledgeMutation) ResetUnitType() {
	m.unit_type = nil
}

// SetUnitID sets the "unit_id" field.
func (m *UnitKnowledgeMutation) SetUnitID(i int64) {
	m.unit_id = &i
	m.addunit_id = nil
}

// UnitID returns the value of the "unit_id" field in the mutation.
func (m *UnitKnowledgeMutation) UnitID() (r int64, exists bool) {
	v := m.unit_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitID returns the old "unit_id" field's value of the UnitKnowledge entity.
// If the UnitKnowledge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitKnowledgeMutation) OldUnitID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitID: %w", err)
	}
	return oldValue.UnitID, nil
}

// AddUnitID adds i to the "unit_id" field.
func (m *UnitKnowledgeMutation) AddUnitID(i int64) {
	if m.addunit_id != nil {
		*m.addunit_id += i
	} else {
		m.addunit_id = &i
	}
}

// AddedUnitID returns the value that was added to the "unit_id" field in this mutation.
func (m *UnitKnowledgeMutation) AddedUnitID() (r int64, exists bool) {
	v := m.addunit_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUnitID resets all changes to the "unit_id" field.
func (m *UnitKnowledgeMutation) ResetUnitID() {
	m.unit_id = nil
	m.addunit_id = nil
}

// SetTotalAttempts sets the "total_attempts" field.
func (m *UnitKnowledgeMutation) SetTotalAttempts(i int64) {
	m.total_attempts = &i
	m.addtotal_attempts = nil
}

// TotalAttempts returns the value of the "total_attempts" field in the mutation.
func (m *UnitKnowledgeMutation) TotalAttempts() (r int64, exists bool) {
	v := m.total_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalAttempts returns the old "total_attempts" field's value of the UnitKnowledge entity.
// If the UnitKnowledge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitKnowledgeMutation) OldTotalAttempts(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalAttempts: %w", err)
	}
	return oldValue.TotalAttempts, nil
}

// AddTotalAttempts adds i to the "total_attempts" field.
func (m *UnitKnowledgeMutation) AddTotalAttempts(i int64) {
	if m.addtotal_attempts != nil {
		*m.addtotal_attempts += i
	} else {
		m.addtotal_attempts = &i
	}
}

// AddedTotalAttempts returns the value that was added to the "total_attempts" field in this mutation.
func (m *UnitKnowledgeMutation) AddedTotalAttempts() (r int64, exists bool) {
	v := m.addtotal_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalAttempts resets all changes to the "total_attempts" field.
func (m *UnitKnowledgeMutation) ResetTotalAttempts() {
	m.total_attempts = nil
	m.addtotal_attempts = nil
}

// SetCorrectCount sets the "correct_count" field.
func (m *UnitKnowledgeMutation) SetCorrectCount(i int64) {
	m.correct_count = &i
	m.addcorrect_count = nil
}

// CorrectCount returns the value of the "correct_count" field in the mutation.
func (m *UnitKnowledgeMutation) CorrectCount() (r int64, exists bool) {
	v := m.correct_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectCount returns the old "correct_count" field's value of the UnitKnowledge entity.
// If the UnitKnowledge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitKnowledgeMutation) OldCorrectCount(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectCount: %w", err)
	}
	return oldValue.CorrectCount, nil
}

// AddCorrectCount adds i to the "correct_count" field.
func (m *UnitKnowledgeMutation) AddCorrectCount(i int64) {
	if m.addcorrect_count != nil {
		*m.addcorrect_count += i
	} else {
		m.addcorrect_count = &i
	}
}

// AddedCorrectCount returns the value that was added to the "correct_count" field in this mutation.
func (m *UnitKnowledgeMutation) AddedCorrectCount() (r int64, exists bool) {
	v := m.addcorrect_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectCount resets all changes to the "correct_count" field.
func (m *UnitKnowledgeMutation) ResetCorrectCount() {
	m.correct_count = nil
	m.addcorrect_count = nil
}

// SetWrongCount sets the "wrong_count" field.
func (m *UnitKnowledgeMutation) SetWrongCount(i int64) {
	m.wrong_count = &i
	m.addwrong_count = nil
}

// WrongCount returns the value of the "wrong_count" field in the mutation.
func (m *UnitKnowledgeMutation) WrongCount() (r int64, exists bool) {
	v := m.wrong_count
	if v == nil {
		return
	}
	return *v, true
}

// OldWrongCount returns the old "wrong_count" field's value of the UnitKnowledge entity.
// If the UnitKnowledge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitKnowledgeMutation) OldWrongCount(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWrongCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWrongCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWrongCount: %w", err)
	}
	return oldValue.WrongCount, nil
}

// AddWrongCount adds i to the "wrong_count" field.
func (m *UnitKnowledgeMutation) AddWrongCount(i int64) {
	if m.addwrong_count != nil {
		*m.addwrong_count += i
	} else {
		m.addwrong_count = &i
	}
}

// AddedWrongCount returns the value that was added to the "wrong_count" field in this mutation.
func (m *UnitKnowledgeMutation) AddedWrongCount() (r int64, exists bool) {
	v := m.addwrong_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetWrongCount resets all changes to the "wrong_count" field.
func (m *UnitKnowledgeMutation) ResetWrongCount() {
	m.wrong_count = nil
	m.addwrong_count = nil
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (m *UnitKnowledgeMutation) SetLastAttemptAt(t time.Time) {
	m.last_attempt_at = &t
}

// LastAttemptAt returns the value of the "last_attempt_at" field in the mutation.
func (m *UnitKnowledgeMutation) LastAttemptAt() (r time.Time, exists bool) {
	v := m.last_attempt_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastAttemptAt returns the old "last_attempt_at" field's value of the UnitKnowledge entity.
// If the UnitKnowledge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitKnowledgeMutation) OldLastAttemptAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastAttemptAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastAttemptAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastAttemptAt: %w", err)
	}
	return oldValue.LastAttemptAt, nil
}

// ResetLastAttemptAt resets all changes to the "last_attempt_at" field.
func (m *UnitKnowledgeMutation) ResetLastAttemptAt() {
	m.last_attempt_at = nil
}

// SetLastCorrectAt sets the "last_correct_at" field.
func (m *UnitKnowledgeMutation) SetLastCorrectAt(t time.Time) {
	m.last_correct_at = &t
}

// LastCorrectAt returns the value of the "last_correct_at" field in the mutation.
func (m *UnitKnowledgeMutation) LastCorrectAt() (r time.Time, exists bool) {
	v := m.last_correct_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastCorrectAt returns the old "last_correct_at" field's value of the UnitKnowledge entity.
// If the UnitKnowledge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitKnowledgeMutation) OldLastCorrectAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastCorrectAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastCorrectAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastCorrectAt: %w", err)
	}
	return oldValue.LastCorrectAt, nil
}

// ClearLastCorrectAt clears the value of the "last_correct_at" field.
func (m *UnitKnowledgeMutation) ClearLastCorrectAt() {
	m.last_correct_at = nil
	m.clearedFields[unitknowledge.FieldLastCorrectAt] = struct{}{}
}

// LastCorrectAtCleared returns if the "last_correct_at" field was cleared in this mutation.
func (m *UnitKnowledgeMutation) LastCorrectAtCleared() bool {
	_, ok := m.clearedFields[unitknowledge.FieldLastCorrectAt]
	return ok
}

// ResetLastCorrectAt resets all changes to the "last_correct_at" field.
func (m *UnitKnowledgeMutation) ResetLastCorrectAt() {
	m.last_correct_at = nil
	delete(m.clearedFields, unitknowledge.FieldLastCorrectAt)
}

// SetLastWrongAt sets the "last_wrong_at" field.
func (m *UnitKnowledgeMutation) SetLastWrongAt(t time.Time) {
	m.last_wrong_at = &t
}

// LastWrongAt returns the value of the "last_wrong_at" field in the mutation.
func (m *UnitKnowledgeMutation) LastWrongAt() (r time.Time, exists bool) {
	v := m.last_wrong_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastWrongAt returns the old "last_wrong_at" field's value of the UnitKnowledge entity.
// If the UnitKnowledge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitKnowledgeMutation) OldLastWrongAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastWrongAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastWrongAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastWrongAt: %w", err)
	}
	return oldValue.LastWrongAt, nil
}

// ClearLastWrongAt clears the value of the "last_wrong_at" field.
func (m *UnitKnowledgeMutation) ClearLastWrongAt() {
	m.last_wrong_at = nil
	m.clearedFields[unitknowledge.FieldLastWrongAt] = struct{}{}
}

// LastWrongAtCleared returns if the "last_wrong_at" field was cleared in this mutation.
func (m *UnitKnowledgeMutation) LastWrongAtCleared() bool {
	_, ok := m.clearedFields[unitknowledge.FieldLastWrongAt]
	return ok
}

// ResetLastWrongAt resets all changes to the "last_wrong_at" field.
func (m *UnitKnowledgeMutation) ResetLastWrongAt() {
	m.last_wrong_at = nil
	delete(m.clearedFields, unitknowledge.FieldLastWrongAt)
}

// SetStabilityScore sets the "stability_score" field.
func (m *UnitKnowledgeMutation) SetStabilityScore(i int64) {
	m.stability_score = &i
	m.addstability_score = nil
}

// StabilityScore returns the value of the "stability_score" field in the mutation.
func (m *UnitKnowledgeMutation) StabilityScore() (r int64, exists bool) {
	v := m.stability_score
	if v == nil {
		return
	}
	return *v, true
}

// OldStabilityScore returns the old "stability_score" field's value of the UnitKnowledge entity.
// If the UnitKnowledge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitKnowledgeMutation) OldStabilityScore(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStabilityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStabilityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStabilityScore: %w", err)
	}
	return oldValue.StabilityScore, nil
}

// AddStabilityScore adds i to the "stability_score" field.
func (m *UnitKnowledgeMutation) AddStabilityScore(i int64) {
	if m.addstability_score != nil {
		*m.addstability_score += i
	} else {
		m.addstability_score = &i
	}
}

// AddedStabilityScore returns the value that was added to the "stability_score" field in this mutation.
func (m *UnitKnowledgeMutation) AddedStabilityScore() (r int64, exists bool) {
	v := m.addstability_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetStabilityScore resets all changes to the "stability_score" field.
func (m *UnitKnowledgeMutation) ResetStabilityScore() {
	m.stability_score = nil
	m.addstability_score = nil
}

// SetState sets the "state" field.
func (m *UnitKnowledgeMutation) SetState(s string) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *UnitKnowledgeMutation) State() (r string, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the UnitKnowledge entity.
// If the UnitKnowledge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitKnowledgeMutation) OldState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *UnitKnowledgeMutation) ResetState() {
	m.state = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UnitKnowledgeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UnitKnowledgeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UnitKnowledge entity.
// If the UnitKnowledge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitKnowledgeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UnitKnowledgeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UnitKnowledgeMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UnitKnowledgeMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the UnitKnowledge entity.
// If the UnitKnowledge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitKnowledgeMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UnitKnowledgeMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the UnitKnowledgeMutation builder.
func (m *UnitKnowledgeMutation) Where(ps ...predicate.UnitKnowledge) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UnitKnowledgeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UnitKnowledgeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UnitKnowledge, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UnitKnowledgeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UnitKnowledgeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UnitKnowledge).
func (m *UnitKnowledgeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UnitKnowledgeMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.user_id != nil {
		fields = append(fields, unitknowledge.FieldUserID)
	}
	if m.unit_type != nil {
		fields = append(fields, unitknowledge.FieldUnitType)
	}
	if m.unit_id != nil {
		fields = append(fields, unitknowledge.FieldUnitID)
	}
	if m.total_attempts != nil {
		fields = append(fields, unitknowledge.FieldTotalAttempts)
	}
	if m.correct_count != nil {
		fields = append(fields, unitknowledge.FieldCorrectCount)
	}
	if m.wrong_count != nil {
		fields = append(fields, unitknowledge.FieldWrongCount)
	}
	if m.last_attempt_at != nil {
		fields = append(fields, unitknowledge.FieldLastAttemptAt)
	}
	if m.last_correct_at != nil {
		fields = append(fields, unitknowledge.FieldLastCorrectAt)
	}
	if m.last_wrong_at != nil {
		fields = append(fields, unitknowledge.FieldLastWrongAt)
	}
	if m.stability_score != nil {
		fields = append(fields, unitknowledge.FieldStabilityScore)
	}
	if m.state != nil {
		fields = append(fields, unitknowledge.FieldState)
	}
	if m.created_at != nil {
		fields = append(fields, unitknowledge.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, unitknowledge.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UnitKnowledgeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case unitknowledge.FieldUserID:
		return m.UserID()
	case unitknowledge.FieldUnitType:
		return m.UnitType()
	case unitknowledge.FieldUnitID:
		return m.UnitID()
	case unitknowledge.FieldTotalAttempts:
		return m.TotalAttempts()
	case unitknowledge.FieldCorrectCount:
		return m.CorrectCount()
	case unitknowledge.FieldWrongCount:
		return m.WrongCount()
	case unitknowledge.FieldLastAttemptAt:
		return m.LastAttemptAt()
	case unitknowledge.FieldLastCorrectAt:
		return m.LastCorrectAt()
	case unitknowledge.FieldLastWrongAt:
		return m.LastWrongAt()
	case unitknowledge.FieldStabilityScore:
		return m.StabilityScore()
	case unitknowledge.FieldState:
		return m.State()
	case unitknowledge.FieldCreatedAt:
		return m.CreatedAt()
	case unitknowledge.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UnitKnowledgeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case unitknowledge.FieldUserID:
		return m.OldUserID(ctx)
	case unitknowledge.FieldUnitType:
		return m.OldUnitType(ctx)
	case unitknowledge.FieldUnitID:
		return m.OldUnitID(ctx)
	case unitknowledge.FieldTotalAttempts:
		return m.OldTotalAttempts(ctx)
	case unitknowledge.FieldCorrectCount:
		return m.OldCorrectCount(ctx)
	case unitknowledge.FieldWrongCount:
		return m.OldWrongCount(ctx)
	case unitknowledge.FieldLastAttemptAt:
		return m.OldLastAttemptAt(ctx)
	case unitknowledge.FieldLastCorrectAt:
		return m.OldLastCorrectAt(ctx)
	case unitknowledge.FieldLastWrongAt:
		return m.OldLastWrongAt(ctx)
	case unitknowledge.FieldStabilityScore:
		return m.OldStabilityScore(ctx)
	case unitknowledge.FieldState:
		return m.OldState(ctx)
	case unitknowledge.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case unitknowledge.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UnitKnowledge field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UnitKnowledgeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case unitknowledge.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case unitknowledge.FieldUnitType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitType(v)
		return nil
	case unitknowledge.FieldUnitID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitID(v)
		return nil
	case unitknowledge.FieldTotalAttempts:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalAttempts(v)
		return nil
	case unitknowledge.FieldCorrectCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectCount(v)
		return nil
	case unitknowledge.FieldWrongCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWrongCount(v)
		return nil
	case unitknowledge.FieldLastAttemptAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastAttemptAt(v)
		return nil
	case unitknowledge.FieldLastCorrectAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastCorrectAt(v)
		return nil
	case unitknowledge.FieldLastWrongAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastWrongAt(v)
		return nil
	case unitknowledge.FieldStabilityScore:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStabilityScore(v)
		return nil
	case unitknowledge.FieldState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case unitknowledge.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case unitknowledge.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UnitKnowledge field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UnitKnowledgeMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, unitknowledge.FieldUserID)
	}
	if m.addunit_id != nil {
		fields = append(fields, unitknowledge.FieldUnitID)
	}
	if m.addtotal_attempts != nil {
		fields = append(fields, unitknowledge.FieldTotalAttempts)
	}
	if m.addcorrect_count != nil {
		fields = append(fields, unitknowledge.FieldCorrectCount)
	}
	if m.addwrong_count != nil {
		fields = append(fields, unitknowledge.FieldWrongCount)
	}
	if m.addstability_score != nil {
		fields = append(fields, unitknowledge.FieldStabilityScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UnitKnowledgeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case unitknowledge.FieldUserID:
		return m.AddedUserID()
	case unitknowledge.FieldUnitID:
		return m.AddedUnitID()
	case unitknowledge.FieldTotalAttempts:
		return m.AddedTotalAttempts()
	case unitknowledge.FieldCorrectCount:
		return m.AddedCorrectCount()
	case unitknowledge.FieldWrongCount:
		return m.AddedWrongCount()
	case unitknowledge.FieldStabilityScore:
		return m.AddedStabilityScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UnitKnowledgeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case unitknowledge.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case unitknowledge.FieldUnitID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUnitID(v)
		return nil
	case unitknowledge.FieldTotalAttempts:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalAttempts(v)
		return nil
	case unitknowledge.FieldCorrectCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectCount(v)
		return nil
	case unitknowledge.FieldWrongCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWrongCount(v)
		return nil
	case unitknowledge.FieldStabilityScore:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStabilityScore(v)
		return nil
	}
	return fmt.Errorf("unknown UnitKnowledge numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UnitKnowledgeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(unitknowledge.FieldLastCorrectAt) {
		fields = append(fields, unitknowledge.FieldLastCorrectAt)
	}
	if m.FieldCleared(unitknowledge.FieldLastWrongAt) {
		fields = append(fields, unitknowledge.FieldLastWrongAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UnitKnowledgeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UnitKnowledgeMutation) ClearField(name string) error {
	switch name {
	case unitknowledge.FieldLastCorrectAt:
		m.ClearLastCorrectAt()
		return nil
	case unitknowledge.FieldLastWrongAt:
		m.ClearLastWrongAt()
		return nil
	}
	return fmt.Errorf("unknown UnitKnowledge nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UnitKnowledgeMutation) ResetField(name string) error {
	switch name {
	case unitknowledge.FieldUserID:
		m.ResetUserID()
		return nil
	case unitknowledge.FieldUnitType:
		m.ResetUnitType()
		return nil
	case unitknowledge.FieldUnitID:
		m.ResetUnitID()
		return nil
	case unitknowledge.FieldTotalAttempts:
		m.ResetTotalAttempts()
		return nil
	case unitknowledge.FieldCorrectCount:
		m.ResetCorrectCount()
		return nil
	case unitknowledge.FieldWrongCount:
		m.ResetWrongCount()
		return nil
	case unitknowledge.FieldLastAttemptAt:
		m.ResetLastAttemptAt()
		return nil
	case unitknowledge.FieldLastCorrectAt:
		m.ResetLastCorrectAt()
		return nil
	case unitknowledge.FieldLastWrongAt:
		m.ResetLastWrongAt()
		return nil
	case unitknowledge.FieldStabilityScore:
		m.ResetStabilityScore()
		return nil
	case unitknowledge.FieldState:
		m.ResetState()
		return nil
	case unitknowledge.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case unitknowledge.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown UnitKnowledge field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UnitKnowledgeMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UnitKnowledgeMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UnitKnowledgeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UnitKnowledgeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UnitKnowledgeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UnitKnowledgeMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UnitKnowledgeMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UnitKnowledge unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UnitKnowledgeMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UnitKnowledge edge %s", name)
}

// UserBadgeMutation represents an operation that mutates the UserBadge nodes in the graph.
type UserBadgeMutation struct {
	config
	op            Op
	typ           string
	id            *int
	user_id       *int64
	adduser_id    *int64
	badge_slug    *string
	awarded_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*UserBadge, error)
	predicates    []predicate.UserBadge
}

var _ ent.Mutation = (*UserBadgeMutation)(nil)

// userbadgeOption allows management of the mutation configuration using functional options.
type userbadgeOption func(*UserBadgeMutation)

// newUserBadgeMutation creates new mutation for the UserBadge entity.
func newUserBadgeMutation(c config, op Op, opts ...userbadgeOption) *UserBadgeMutation {
	m := &UserBadgeMutation{
		config:        c,
		op:            op,
		typ:           TypeUserBadge,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserBadgeID sets the ID field of the mutation.
func withUserBadgeID(id int) userbadgeOption {
	return func(m *UserBadgeMutation) {
		var (
			err   error
			once  sync.Once
			value *UserBadge
		)
		m.oldValue = func(ctx context.Context) (*UserBadge, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserBadge.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserBadge sets the old UserBadge of the mutation.
func withUserBadge(node *UserBadge) userbadgeOption {
	return func(m *UserBadgeMutation) {
		m.oldValue = func(context.Context) (*UserBadge, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserBadgeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserBadgeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserBadgeMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserBadgeMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserBadge.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *UserBadgeMutation) SetUserID(i int64) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UserBadgeMutation) UserID() (r int64, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UserBadge entity.
// If the UserBadge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserBadgeMutation) OldUserID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *UserBadgeMutation) AddUserID(i int64) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *UserBadgeMutation) AddedUserID() (r int64, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UserBadgeMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetBadgeSlug sets the "badge_slug" field.
func (m *UserBadgeMutation) SetBadgeSlug(s string) {
	m.badge_slug = &s
}

// BadgeSlug returns the value of the "badge_slug" field in the mutation.
func (m *UserBadgeMutation) BadgeSlug() (r string, exists bool) {
	v := m.badge_slug
	if v == nil {
		return
	}
	return *v, true
}

// OldBadgeSlug returns the old "badge_slug" field's value of the UserBadge entity.
// If the UserBadge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserBadgeMutation) OldBadgeSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBadgeSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBadgeSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBadgeSlug: %w", err)
	}
	return oldValue.BadgeSlug, nil
}

// ResetBadgeSlug resets all changes to the "badge_slug" field.
func (m *UserBadgeMutation) ResetBadgeSlug() {
	m.badge_slug = nil
}

// SetAwardedAt sets the "awarded_at" field.
func (m *UserBadgeMutation) SetAwardedAt(t time.Time) {
	m.awarded_at = &t
}

// AwardedAt returns the value of the "awarded_at" field in the mutation.
func (m *UserBadgeMutation) AwardedAt() (r time.Time, exists bool) {
	v := m.awarded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAwardedAt returns the old "awarded_at" field's value of the UserBadge entity.
// If the UserBadge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserBadgeMutation) OldAwardedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAwardedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAwardedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAwardedAt: %w", err)
	}
	return oldValue.AwardedAt, nil
}

// ResetAwardedAt resets all changes to the "awarded_at" field.
func (m *UserBadgeMutation) ResetAwardedAt() {
	m.awarded_at = nil
}

// Where appends a list predicates to the UserBadgeMutation builder.
func (m *UserBadgeMutation) Where(ps ...predicate.UserBadge) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserBadgeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserBadgeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserBadge, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserBadgeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserBadgeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserBadge).
func (m *UserBadgeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserBadgeMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.user_id != nil {
		fields = append(fields, userbadge.FieldUserID)
	}
	if m.badge_slug != nil {
		fields = append(fields, userbadge.FieldBadgeSlug)
	}
	if m.awarded_at != nil {
		fields = append(fields, userbadge.FieldAwardedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserBadgeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case userbadge.FieldUserID:
		return m.UserID()
	case userbadge.FieldBadgeSlug:
		return m.BadgeSlug()
	case userbadge.FieldAwardedAt:
		return m.AwardedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserBadgeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case userbadge.FieldUserID:
		return m.OldUserID(ctx)
	case userbadge.FieldBadgeSlug:
		return m.OldBadgeSlug(ctx)
	case userbadge.FieldAwardedAt:
		return m.OldAwardedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UserBadge field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserBadgeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case userbadge.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case userbadge.FieldBadgeSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBadgeSlug(v)
		return nil
	case userbadge.FieldAwardedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAwardedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UserBadge field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserBadgeMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, userbadge.FieldUserID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserBadgeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case userbadge.FieldUserID:
		return m.AddedUserID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserBadgeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case userbadge.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	}
	return fmt.Errorf("unknown UserBadge numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserBadgeMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserBadgeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserBadgeMutation) ClearField(name string) error {
	return fmt.Errorf("unknown UserBadge nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserBadgeMutation) ResetField(name string) error {
	switch name {
	case userbadge.FieldUserID:
		m.ResetUserID()
		return nil
	case userbadge.FieldBadgeSlug:
		m.ResetBadgeSlug()
		return nil
	case userbadge.FieldAwardedAt:
		m.ResetAwardedAt()
		return nil
	}
	return fmt.Errorf("unknown UserBadge field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserBadgeMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserBadgeMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserBadgeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserBadgeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserBadgeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserBadgeMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserBadgeMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UserBadge unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserBadgeMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UserBadge edge %s", name)
}

// UserXpMutation represents an operation that mutates the UserXp nodes in the graph.
type UserXpMutation struct {
	config
	op            Op
	typ           string
	id            *int
	user_id       *int64
	adduser_id    *int64
	xp_total      *int64
	addxp_total   *int64
	level         *int64
	addlevel      *int64
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*UserXp, error)
	predicates    []predicate.UserXp
}

var _ ent.Mutation = (*UserXpMutation)(nil)

// userxpOption allows management of the mutation configuration using functional options.
type userxpOption func(*UserXpMutation)

// newUserXpMutation creates new mutation for the UserXp entity.
func newUserXpMutation(c config, op Op, opts ...userxpOption) *UserXpMutation {
	m := &UserXpMutation{
		config:        c,
		op:            op,
		typ:           TypeUserXp,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserXpID sets the ID field of the mutation.
func withUserXpID(id int) userxpOption {
	return func(m *UserXpMutation) {
		var (
			err   error
			once  sync.Once
			value *UserXp
		)
		m.oldValue = func(ctx context.Context) (*UserXp, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserXp.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserXp sets the old UserXp of the mutation.
func withUserXp(node *UserXp) userxpOption {
	return func(m *UserXpMutation) {
		m.oldValue = func(context.Context) (*UserXp, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserXpMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserXpMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserXpMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserXpMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserXp.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *UserXpMutation) SetUserID(i int64) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UserXpMutation) UserID() (r int64, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UserXp entity.
// If the UserXp object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserXpMutation) OldUserID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *UserXpMutation) AddUserID(i int64) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *UserXpMutation) AddedUserID() (r int64, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UserXpMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetXpTotal sets the "xp_total" field.
func (m *UserXpMutation) SetXpTotal(i int64) {
	m.xp_total = &i
	m.addxp_total = nil
}

// XpTotal returns the value of the "xp_total" field in the mutation.
func (m *UserXpMutation) XpTotal() (r int64, exists bool) {
	v := m.xp_total
	if v == nil {
		return
	}
	return *v, true
}

// OldXpTotal returns the old "xp_total" field's value of the UserXp entity.
// If the UserXp object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserXpMutation) OldXpTotal(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldXpTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldXpTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldXpTotal: %w", err)
	}
	return oldValue.XpTotal, nil
}

// AddXpTotal adds i to the "xp_total" field.
func (m *UserXpMutation) AddXpTotal(i int64) {
	if m.addxp_total != nil {
		*m.addxp_total += i
	} else {
		m.addxp_total = &i
	}
}

// AddedXpTotal returns the value that was added to the "xp_total" field in this mutation.
func (m *UserXpMutation) AddedXpTotal() (r int64, exists bool) {
	v := m.addxp_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetXpTotal resets all changes to the "xp_total" field.
func (m *UserXpMutation) ResetXpTotal() {
	m.xp_total = nil
	m.addxp_total = nil
}

// SetLevel sets the "level" field.
func (m *UserXpMutation) SetLevel(i int64) {
	m.level = &i
	m.addlevel = nil
}

// Level returns the value of the "level" field in the mutation.
func (m *UserXpMutation) Level() (r int64, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the UserXp entity.
// If the UserXp object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserXpMutation) OldLevel(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// AddLevel adds i to the "level" field.
func (m *UserXpMutation) AddLevel(i int64) {
	if m.addlevel != nil {
		*m.addlevel += i
	} else {
		m.addlevel = &i
	}
}

// AddedLevel returns the value that was added to the "level" field in this mutation.
func (m *UserXpMutation) AddedLevel() (r int64, exists bool) {
	v := m.addlevel
	if v == nil {
		return
	}
	return *v, true
}

// ResetLevel resets all changes to the "level" field.
func (m *UserXpMutation) ResetLevel() {
	m.level = nil
	m.addlevel = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserXpMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserXpMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the UserXp entity.
// If the UserXp object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserXpMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserXpMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the UserXpMutation builder.
func (m *UserXpMutation) Where(ps ...predicate.UserXp) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserXpMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserXpMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserXp, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserXpMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserXpMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserXp).
func (m *UserXpMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserXpMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.user_id != nil {
		fields = append(fields, userxp.FieldUserID)
	}
	if m.xp_total != nil {
		fields = append(fields, userxp.FieldXpTotal)
	}
	if m.level != nil {
		fields = append(fields, userxp.FieldLevel)
	}
	if m.updated_at != nil {
		fields = append(fields, userxp.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserXpMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case userxp.FieldUserID:
		return m.UserID()
	case userxp.FieldXpTotal:
		return m.XpTotal()
	case userxp.FieldLevel:
		return m.Level()
	case userxp.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserXpMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case userxp.FieldUserID:
		return m.OldUserID(ctx)
	case userxp.FieldXpTotal:
		return m.OldXpTotal(ctx)
	case userxp.FieldLevel:
		return m.OldLevel(ctx)
	case userxp.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UserXp field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserXpMutation) SetField(name string, value ent.Value) error {
	switch name {
	case userxp.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case userxp.FieldXpTotal:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetXpTotal(v)
		return nil
	case userxp.FieldLevel:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case userxp.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UserXp field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserXpMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, userxp.FieldUserID)
	}
	if m.addxp_total != nil {
		fields = append(fields, userxp.FieldXpTotal)
	}
	if m.addlevel != nil {
		fields = append(fields, userxp.FieldLevel)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserXpMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case userxp.FieldUserID:
		return m.AddedUserID()
	case userxp.FieldXpTotal:
		return m.AddedXpTotal()
	case userxp.FieldLevel:
		return m.AddedLevel()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserXpMutation) AddField(name string, value ent.Value) error {
	switch name {
	case userxp.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case userxp.FieldXpTotal:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddXpTotal(v)
		return nil
	case userxp.FieldLevel:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLevel(v)
		return nil
	}
	return fmt.Errorf("unknown UserXp numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserXpMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserXpMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserXpMutation) ClearField(name string) error {
	return fmt.Errorf("unknown UserXp nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserXpMutation) ResetField(name string) error {
	switch name {
	case userxp.FieldUserID:
		m.ResetUserID()
		return nil
	case userxp.FieldXpTotal:
		m.ResetXpTotal()
		return nil
	case userxp.FieldLevel:
		m.ResetLevel()
		return nil
	case userxp.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown UserXp field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserXpMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserXpMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserXpMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserXpMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserXpMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserXpMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserXpMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UserXp unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserXpMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UserXp edge %s", name)
}

// VocabClusterMutation represents an operation that mutates the VocabCluster nodes in the graph.
type VocabClusterMutation struct {
	config
	op            Op
	typ           string
	id            *int
	slug          *string
	name          *string
	topic         *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*VocabCluster, error)
	predicates    []predicate.VocabCluster
}

var _ ent.Mutation = (*VocabClusterMutation)(nil)

// vocabclusterOption allows management of the mutation configuration using functional options.
type vocabclusterOption func(*VocabClusterMutation)

// newVocabClusterMutation creates new mutation for the VocabCluster entity.
func newVocabClusterMutation(c config, op Op, opts ...vocabclusterOption) *VocabClusterMutation {
	m := &VocabClusterMutation{
		config:        c,
		op:            op,
		typ:           TypeVocabCluster,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVocabClusterID sets the ID field of the mutation.
func withVocabClusterID(id int) vocabclusterOption {
	return func(m *VocabClusterMutation) {
		var (
			err   error
			once  sync.Once
			value *VocabCluster
		)
		m.oldValue = func(ctx context.Context) (*VocabCluster, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().VocabCluster.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVocabCluster sets the old VocabCluster of the mutation.
func withVocabCluster(node *VocabCluster) vocabclusterOption {
	return func(m *VocabClusterMutation) {
		m.oldValue = func(context.Context) (*VocabCluster, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VocabClusterMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VocabClusterMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VocabClusterMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VocabClusterMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().VocabCluster.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSlug sets the "slug" field.
func (m *VocabClusterMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *VocabClusterMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the VocabCluster entity.
// If the VocabCluster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VocabClusterMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *VocabClusterMutation) ResetSlug() {
	m.slug = nil
}

// SetName sets the "name" field.
func (m *VocabClusterMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *VocabClusterMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the VocabCluster entity.
// If the VocabCluster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VocabClusterMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *VocabClusterMutation) ResetName() {
	m.name = nil
}

// SetTopic sets the "topic" field.
func (m *VocabClusterMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *VocabClusterMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the VocabCluster entity.
// If the VocabCluster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VocabClusterMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *VocabClusterMutation) ResetTopic() {
	m.topic = nil
}

// Where appends a list predicates to the VocabClusterMutation builder.
func (m *VocabClusterMutation) Where(ps ...predicate.VocabCluster) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VocabClusterMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VocabClusterMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.VocabCluster, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VocabClusterMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VocabClusterMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (VocabCluster).
func (m *VocabClusterMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VocabClusterMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.slug != nil {
		fields = append(fields, vocabcluster.FieldSlug)
	}
	if m.name != nil {
		fields = append(fields, vocabcluster.FieldName)
	}
	if m.topic != nil {
		fields = append(fields, vocabcluster.FieldTopic)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VocabClusterMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case vocabcluster.FieldSlug:
		return m.Slug()
	case vocabcluster.FieldName:
		return m.Name()
	case vocabcluster.FieldTopic:
		return m.Topic()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VocabClusterMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case vocabcluster.FieldSlug:
		return m.OldSlug(ctx)
	case vocabcluster.FieldName:
		return m.OldName(ctx)
	case vocabcluster.FieldTopic:
		return m.OldTopic(ctx)
	}
	return nil, fmt.Errorf("unknown VocabCluster field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VocabClusterMutation) SetField(name string, value ent.Value) error {
	switch name {
	case vocabcluster.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case vocabcluster.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case vocabcluster.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	}
	return fmt.Errorf("unknown VocabCluster field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VocabClusterMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VocabClusterMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VocabClusterMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown VocabCluster numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VocabClusterMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VocabClusterMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VocabClusterMutation) ClearField(name string) error {
	return fmt.Errorf("unknown VocabCluster nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VocabClusterMutation) ResetField(name string) error {
	switch name {
	case vocabcluster.FieldSlug:
		m.ResetSlug()
		return nil
	case vocabcluster.FieldName:
		m.ResetName()
		return nil
	case vocabcluster.FieldTopic:
		m.ResetTopic()
		return nil
	}
	return fmt.Errorf("unknown VocabCluster field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VocabClusterMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VocabClusterMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VocabClusterMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VocabClusterMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VocabClusterMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VocabClusterMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VocabClusterMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown VocabCluster unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VocabClusterMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown VocabCluster edge %s", name)
}

// VocabPackMutation represents an operation that mutates the VocabPack nodes in the graph.
type VocabPackMutation struct {
	config
	op            Op
	typ           string
	id            *int
	slug          *string
	name          *string
	description   *string
	language      *string
	flagship      *bool
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*VocabPack, error)
	predicates    []predicate.VocabPack
}

var _ ent.Mutation = (*VocabPackMutation)(nil)

// vocabpackOption allows management of the mutation configuration using functional options.
type vocabpackOption func(*VocabPackMutation)

// newVocabPackMutation creates new mutation for the VocabPack entity.
func newVocabPackMutation(c config, op Op, opts ...vocabpackOption) *VocabPackMutation {
	m := &VocabPackMutation{
		config:        c,
		op:            op,
		typ:           TypeVocabPack,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVocabPackID sets the ID field of the mutation.
func withVocabPackID(id int) vocabpackOption {
	return func(m *VocabPackMutation) {
		var (
			err   error
			once  sync.Once
			value *VocabPack
		)
		m.oldValue = func(ctx context.Context) (*VocabPack, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().VocabPack.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVocabPack sets the old VocabPack of the mutation.
func withVocabPack(node *VocabPack) vocabpackOption {
	return func(m *VocabPackMutation) {
		m.oldValue = func(context.Context) (*VocabPack, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VocabPackMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VocabPackMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VocabPackMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VocabPackMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().VocabPack.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSlug sets the "slug" field.
func (m *VocabPackMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *VocabPackMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the VocabPack entity.
// If the VocabPack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VocabPackMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *VocabPackMutation) ResetSlug() {
	m.slug = nil
}

// SetName sets the "name" field.
func (m *VocabPackMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *VocabPackMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the VocabPack entity.
// If the VocabPack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VocabPackMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *VocabPackMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *VocabPackMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *VocabPackMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the VocabPack entity.
// If the VocabPack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VocabPackMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *VocabPackMutation) ResetDescription() {
	m.description = nil
}

// SetLanguage sets the "language" field.
func (m *VocabPackMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *VocabPackMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the VocabPack entity.
// If the VocabPack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VocabPackMutation) OldLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ResetLanguage resets all changes to the "language" field.
func (m *VocabPackMutation) ResetLanguage() {
	m.language = nil
}

// SetFlagship sets the "flagship" field.
func (m *VocabPackMutation) SetFlagship(b bool) {
	m.flagship = &b
}

// Flagship returns the value of the "flagship" field in the mutation.
func (m *VocabPackMutation) Flagship() (r bool, exists bool) {
	v := m.flagship
	if v == nil {
		return
	}
	return *v, true
}

// OldFlagship returns the old "flagship" field's value of the VocabPack entity.
// If the VocabPack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VocabPackMutation) OldFlagship(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFlagship is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFlagship requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFlagship: %w", err)
	}
	return oldValue.Flagship, nil
}

// ResetFlagship resets all changes to the "flagship" field.
func (m *VocabPackMutation) ResetFlagship() {
	m.flagship = nil
}

// Where appends a list predicates to the VocabPackMutation builder.
func (m *VocabPackMutation) Where(ps ...predicate.VocabPack) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VocabPackMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VocabPackMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.VocabPack, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VocabPackMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VocabPackMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (VocabPack).
func (m *VocabPackMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VocabPackMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.slug != nil {
		fields = append(fields, vocabpack.FieldSlug)
	}
	if m.name != nil {
		fields = append(fields, vocabpack.FieldName)
	}
	if m.description != nil {
		fields = append(fields, vocabpack.FieldDescription)
	}
	if m.language != nil {
		fields = append(fields, vocabpack.FieldLanguage)
	}
	if m.flagship != nil {
		fields = append(fields, vocabpack.FieldFlagship)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VocabPackMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case vocabpack.FieldSlug:
		return m.Slug()
	case vocabpack.FieldName:
		return m.Name()
	case vocabpack.FieldDescription:
		return m.Description()
	case vocabpack.FieldLanguage:
		return m.Language()
	case vocabpack.FieldFlagship:
		return m.Flagship()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VocabPackMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case vocabpack.FieldSlug:
		return m.OldSlug(ctx)
	case vocabpack.FieldName:
		return m.OldName(ctx)
	case vocabpack.FieldDescription:
		return m.OldDescription(ctx)
	case vocabpack.FieldLanguage:
		return m.OldLanguage(ctx)
	case vocabpack.FieldFlagship:
		return m.OldFlagship(ctx)
	}
	return nil, fmt.Errorf("unknown VocabPack field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VocabPackMutation) SetField(name string, value ent.Value) error {
	switch name {
	case vocabpack.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case vocabpack.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case vocabpack.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case vocabpack.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case vocabpack.FieldFlagship:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFlagship(v)
		return nil
	}
	return fmt.Errorf("unknown VocabPack field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VocabPackMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VocabPackMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VocabPackMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown VocabPack numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VocabPackMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VocabPackMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VocabPackMutation) ClearField(name string) error {
	return fmt.Errorf("unknown VocabPack nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VocabPackMutation) ResetField(name string) error {
	switch name {
	case vocabpack.FieldSlug:
		m.ResetSlug()
		return nil
	case vocabpack.FieldName:
		m.ResetName()
		return nil
	case vocabpack.FieldDescription:
		m.ResetDescription()
		return nil
	case vocabpack.FieldLanguage:
		m.ResetLanguage()
		return nil
	case vocabpack.FieldFlagship:
		m.ResetFlagship()
		return nil
	}
	return fmt.Errorf("unknown VocabPack field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VocabPackMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VocabPackMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VocabPackMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VocabPackMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VocabPackMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VocabPackMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VocabPackMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown VocabPack unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VocabPackMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown VocabPack edge %s", name)
}

// VocabSenseMutation represents an operation that mutates the VocabSense nodes in the graph.
type VocabSenseMutation struct {
	config
	op            Op
	typ           string
	id            *int
	word          *string
	translation   *string
	pack_slug     *string
	cluster_slug  *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*VocabSense, error)
	predicates    []predicate.VocabSense
}

var _ ent.Mutation = (*VocabSenseMutation)(nil)

// vocabsenseOption allows management of the mutation configuration using functional options.
type vocabsenseOption func(*VocabSenseMutation)

// newVocabSenseMutation creates new mutation for the VocabSense entity.
func newVocabSenseMutation(c config, op Op, opts ...vocabsenseOption) *VocabSenseMutation {
	m := &VocabSenseMutation{
		config:        c,
		op:            op,
		typ:           TypeVocabSense,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVocabSenseID sets the ID field of the mutation.
func withVocabSenseID(id int) vocabsenseOption {
	return func(m *VocabSenseMutation) {
		var (
			err   error
			once  sync.Once
			value *VocabSense
		)
		m.oldValue = func(ctx context.Context) (*VocabSense, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().VocabSense.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVocabSense sets the old VocabSense of the mutation.
func withVocabSense(node *VocabSense) vocabsenseOption {
	return func(m *VocabSenseMutation) {
		m.oldValue = func(context.Context) (*VocabSense, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VocabSenseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VocabSenseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VocabSenseMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VocabSenseMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().VocabSense.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWord sets the "word" field.
func (m *VocabSenseMutation) SetWord(s string) {
	m.word = &s
}

// Word returns the value of the "word" field in the mutation.
func (m *VocabSenseMutation) Word() (r string, exists bool) {
	v := m.word
	if v == nil {
		return
	}
	return *v, true
}

// OldWord returns the old "word" field's value of the VocabSense entity.
// If the VocabSense object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VocabSenseMutation) OldWord(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWord is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWord requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWord: %w", err)
	}
	return oldValue.Word, nil
}

// ResetWord resets all changes to the "word" field.
func (m *VocabSenseMutation) ResetWord() {
	m.word = nil
}

// SetTranslation sets the "translation" field.
func (m *VocabSenseMutation) SetTranslation(s string) {
	m.translation = &s
}

// Translation returns the value of the "translation" field in the mutation.
func (m *VocabSenseMutation) Translation() (r string, exists bool) {
	v := m.translation
	if v == nil {
		return
	}
	return *v, true
}

// OldTranslation returns the old "translation" field's value of the VocabSense entity.
// If the VocabSense object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VocabSenseMutation) OldTranslation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranslation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranslation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranslation: %w", err)
	}
	return oldValue.Translation, nil
}

// ResetTranslation resets all changes to the "translation" field.
func (m *VocabSenseMutation) ResetTranslation() {
	m.translation = nil
}

// SetPackSlug sets the "pack_slug" field.
func (m *VocabSenseMutation) SetPackSlug(s string) {
	m.pack_slug = &s
}

// PackSlug returns the value of the "pack_slug" field in the mutation.
func (m *VocabSenseMutation) PackSlug() (r string, exists bool) {
	v := m.pack_slug
	if v == nil {
		return
	}
	return *v, true
}

// OldPackSlug returns the old "pack_slug" field's value of the VocabSense entity.
// If the VocabSense object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VocabSenseMutation) OldPackSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPackSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPackSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPackSlug: %w", err)
	}
	return oldValue.PackSlug, nil
}

// ResetPackSlug resets all changes to the "pack_slug" field.
func (m *VocabSenseMutation) ResetPackSlug() {
	m.pack_slug = nil
}

// SetClusterSlug sets the "cluster_slug" field.
func (m *VocabSenseMutation) SetClusterSlug(s string) {
	m.cluster_slug = &s
}

// ClusterSlug returns the value of the "cluster_slug" field in the mutation.
func (m *VocabSenseMutation) ClusterSlug() (r string, exists bool) {
	v := m.cluster_slug
	if v == nil {
		return
	}
	return *v, true
}

// OldClusterSlug returns the old "cluster_slug" field's value of the VocabSense entity.
// If the VocabSense object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VocabSenseMutation) OldClusterSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClusterSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClusterSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClusterSlug: %w", err)
	}
	return oldValue.ClusterSlug, nil
}

// ResetClusterSlug resets all changes to the "cluster_slug" field.
func (m *VocabSenseMutation) ResetClusterSlug() {
	m.cluster_slug = nil
}

// Where appends a list predicates to the VocabSenseMutation builder.
func (m *VocabSenseMutation) Where(ps ...predicate.VocabSense) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VocabSenseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VocabSenseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.VocabSense, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VocabSenseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VocabSenseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (VocabSense).
func (m *VocabSenseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VocabSenseMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.word != nil {
		fields = append(fields, vocabsense.FieldWord)
	}
	if m.translation != nil {
		fields = append(fields, vocabsense.FieldTranslation)
	}
	if m.pack_slug != nil {
		fields = append(fields, vocabsense.FieldPackSlug)
	}
	if m.cluster_slug != nil {
		fields = append(fields, vocabsense.FieldClusterSlug)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VocabSenseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case vocabsense.FieldWord:
		return m.Word()
	case vocabsense.FieldTranslation:
		return m.Translation()
	case vocabsense.FieldPackSlug:
		return m.PackSlug()
	case vocabsense.FieldClusterSlug:
		return m.ClusterSlug()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VocabSenseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case vocabsense.FieldWord:
		return m.OldWord(ctx)
	case vocabsense.FieldTranslation:
		return m.OldTranslation(ctx)
	case vocabsense.FieldPackSlug:
		return m.OldPackSlug(ctx)
	case vocabsense.FieldClusterSlug:
		return m.OldClusterSlug(ctx)
	}
	return nil, fmt.Errorf("unknown VocabSense field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VocabSenseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case vocabsense.FieldWord:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWord(v)
		return nil
	case vocabsense.FieldTranslation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranslation(v)
		return nil
	case vocabsense.FieldPackSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPackSlug(v)
		return nil
	case vocabsense.FieldClusterSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClusterSlug(v)
		return nil
	}
	return fmt.Errorf("unknown VocabSense field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VocabSenseMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VocabSenseMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VocabSenseMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown VocabSense numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VocabSenseMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VocabSenseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VocabSenseMutation) ClearField(name string) error {
	return fmt.Errorf("unknown VocabSense nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VocabSenseMutation) ResetField(name string) error {
	switch name {
	case vocabsense.FieldWord:
		m.ResetWord()
		return nil
	case vocabsense.FieldTranslation:
		m.ResetTranslation()
		return nil
	case vocabsense.FieldPackSlug:
		m.ResetPackSlug()
		return nil
	case vocabsense.FieldClusterSlug:
		m.ResetClusterSlug()
		return nil
	}
	return fmt.Errorf("unknown VocabSense field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VocabSenseMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VocabSenseMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VocabSenseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VocabSenseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VocabSenseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VocabSenseMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VocabSenseMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown VocabSense unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VocabSenseMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown VocabSense edge %s", name)
}

// XpEventMutation represents an operation that mutates the XpEvent nodes in the graph.
type XpEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	user_id       *int64
	adduser_id    *int64
	source        *string
	source_slug   *string
	session_id    *string
	dedupe_key    *string
	awarded_on    *string
	xp            *int64
	addxp         *int64
	perfect       *bool
	meta          *map[string]string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*XpEvent, error)
	predicates    []predicate.XpEvent
}

var _ ent.Mutation = (*XpEventMutation)(nil)

// xpeventOption allows management of the mutation configuration using functional options.
type xpeventOption func(*XpEventMutation)

// newXpEventMutation creates new mutation for the XpEvent entity.
func newXpEventMutation(c config, op Op, opts ...xpeventOption) *XpEventMutation {
	m := &XpEventMutation{
		config:        c,
		op:            op,
		typ:           TypeXpEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withXpEventID sets the ID field of the mutation.
func withXpEventID(id int) xpeventOption {
	return func(m *XpEventMutation) {
		var (
			err   error
			once  sync.Once
			value *XpEvent
		)
		m.oldValue = func(ctx context.Context) (*XpEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().XpEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withXpEvent sets the old XpEvent of the mutation.
func withXpEvent(node *XpEvent) xpeventOption {
	return func(m *XpEventMutation) {
		m.oldValue = func(context.Context) (*XpEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m XpEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m XpEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *XpEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *XpEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().XpEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *XpEventMutation) SetUserID(i int64) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *XpEventMutation) UserID() (r int64, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the XpEvent entity.
// If the XpEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *XpEventMutation) OldUserID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *XpEventMutation) AddUserID(i int64) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *XpEventMutation) AddedUserID() (r int64, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *XpEventMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetSource sets the "source" field.
func (m *XpEventMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *XpEventMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the XpEvent entity.
// If the XpEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *XpEventMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *XpEventMutation) ResetSource() {
	m.source = nil
}

// SetSourceSlug sets the "source_slug" field.
func (m *XpEventMutation) SetSourceSlug(s string) {
	m.source_slug = &s
}

// SourceSlug returns the value of the "source_slug" field in the mutation.
func (m *XpEventMutation) SourceSlug() (r string, exists bool) {
	v := m.source_slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceSlug returns the old "source_slug" field's value of the XpEvent entity.
// If the XpEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *XpEventMutation) OldSourceSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceSlug: %w", err)
	}
	return oldValue.SourceSlug, nil
}

// ResetSourceSlug resets all changes to the "source_slug" field.
func (m *XpEventMutation) ResetSourceSlug() {
	m.source_slug = nil
}

// SetSessionID sets the "session_id" field.
func (m *XpEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *XpEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the XpEvent entity.
// If the XpEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *XpEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *XpEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetDedupeKey sets the "dedupe_key" field.
func (m *XpEventMutation) SetDedupeKey(s string) {
	m.dedupe_key = &s
}

// DedupeKey returns the value of the "dedupe_key" field in the mutation.
func (m *XpEventMutation) DedupeKey() (r string, exists bool) {
	v := m.dedupe_key
	if v == nil {
		return
	}
	return *v, true
}

// OldDedupeKey returns the old "dedupe_key" field's value of the XpEvent entity.
// If the XpEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *XpEventMutation) OldDedupeKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDedupeKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDedupeKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDedupeKey: %w", err)
	}
	return oldValue.DedupeKey, nil
}

// ResetDedupeKey resets all changes to the "dedupe_key" field.
func (m *XpEventMutation) ResetDedupeKey() {
	m.dedupe_key = nil
}

// SetAwardedOn sets the "awarded_on" field.
func (m *XpEventMutation) SetAwardedOn(s string) {
	m.awarded_on = &s
}

// AwardedOn returns the value of the "awarded_on" field in the mutation.
func (m *XpEventMutation) AwardedOn() (r string, exists bool) {
	v := m.awarded_on
	if v == nil {
		return
	}
	return *v, true
}

// OldAwardedOn returns the old "awarded_on" field's value of the XpEvent entity.
// If the XpEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *XpEventMutation) OldAwardedOn(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAwardedOn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAwardedOn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAwardedOn: %w", err)
	}
	return oldValue.AwardedOn, nil
}

// ResetAwardedOn resets all changes to the "awarded_on" field.
func (m *XpEventMutation) ResetAwardedOn() {
	m.awarded_on = nil
}

// SetXp sets the "xp" field.
func (m *XpEventMutation) SetXp(i int64) {
	m.xp = &i
	m.addxp = nil
}

// Xp returns the value of the "xp" field in the mutation.
func (m *XpEventMutation) Xp() (r int64, exists bool) {
	v := m.xp
	if v == nil {
		return
	}
	return *v, true
}

// OldXp returns the old "xp" field's value of the XpEvent entity.
// If the XpEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *XpEventMutation) OldXp(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldXp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldXp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldXp: %w", err)
	}
	return oldValue.Xp, nil
}

// AddXp adds i to the "xp" field.
func (m *XpEventMutation) AddXp(i int64) {
	if m.addxp != nil {
		*m.addxp += i
	} else {
		m.addxp = &i
	}
}

// AddedXp returns the value that was added to the "xp" field in this mutation.
func (m *XpEventMutation) AddedXp() (r int64, exists bool) {
	v := m.addxp
	if v == nil {
		return
	}
	return *v, true
}

// ResetXp resets all changes to the "xp" field.
func (m *XpEventMutation) ResetXp() {
	m.xp = nil
	m.addxp = nil
}

// SetPerfect sets the "perfect" field.
func (m *XpEventMutation) SetPerfect(b bool) {
	m.perfect = &b
}

// Perfect returns the value of the "perfect" field in the mutation.
func (m *XpEventMutation) Perfect() (r bool, exists bool) {
	v := m.perfect
	if v == nil {
		return
	}
	return *v, true
}

// OldPerfect returns the old "perfect" field's value of the XpEvent entity.
// If the XpEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *XpEventMutation) OldPerfect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPerfect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPerfect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPerfect: %w", err)
	}
	return oldValue.Perfect, nil
}

// ResetPerfect resets all changes to the "perfect" field.
func (m *XpEventMutation) ResetPerfect() {
	m.perfect = nil
}

// SetMeta sets the "meta" field.
func (m *XpEventMutation) SetMeta(value map[string]string) {
	m.meta = &value
}

// Meta returns the value of the "meta" field in the mutation.
func (m *XpEventMutation) Meta() (r map[string]string, exists bool) {
	v := m.meta
	if v == nil {
		return
	}
	return *v, true
}

// OldMeta returns the old "meta" field's value of the XpEvent entity.
// If the XpEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *XpEventMutation) OldMeta(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeta is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeta requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeta: %w", err)
	}
	return oldValue.Meta, nil
}

// ResetMeta resets all changes to the "meta" field.
func (m *XpEventMutation) ResetMeta() {
	m.meta = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *XpEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *XpEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the XpEvent entity.
// If the XpEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *XpEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *XpEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the XpEventMutation builder.
func (m *XpEventMutation) Where(ps ...predicate.XpEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the XpEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *XpEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.XpEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *XpEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *XpEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (XpEvent).
func (m *XpEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *XpEventMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.user_id != nil {
		fields = append(fields, xpevent.FieldUserID)
	}
	if m.source != nil {
		fields = append(fields, xpevent.FieldSource)
	}
	if m.source_slug != nil {
		fields = append(fields, xpevent.FieldSourceSlug)
	}
	if m.session_id != nil {
		fields = append(fields, xpevent.FieldSessionID)
	}
	if m.dedupe_key != nil {
		fields = append(fields, xpevent.FieldDedupeKey)
	}
	if m.awarded_on != nil {
		fields = append(fields, xpevent.FieldAwardedOn)
	}
	if m.xp != nil {
		fields = append(fields, xpevent.FieldXp)
	}
	if m.perfect != nil {
		fields = append(fields, xpevent.FieldPerfect)
	}
	if m.meta != nil {
		fields = append(fields, xpevent.FieldMeta)
	}
	if m.created_at != nil {
		fields = append(fields, xpevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *XpEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case xpevent.FieldUserID:
		return m.UserID()
	case xpevent.FieldSource:
		return m.Source()
	case xpevent.FieldSourceSlug:
		return m.SourceSlug()
	case xpevent.FieldSessionID:
		return m.SessionID()
	case xpevent.FieldDedupeKey:
		return m.DedupeKey()
	case xpevent.FieldAwardedOn:
		return m.AwardedOn()
	case xpevent.FieldXp:
		return m.Xp()
	case xpevent.FieldPerfect:
		return m.Perfect()
	case xpevent.FieldMeta:
		return m.Meta()
	case xpevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *XpEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case xpevent.FieldUserID:
		return m.OldUserID(ctx)
	case xpevent.FieldSource:
		return m.OldSource(ctx)
	case xpevent.FieldSourceSlug:
		return m.OldSourceSlug(ctx)
	case xpevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case xpevent.FieldDedupeKey:
		return m.OldDedupeKey(ctx)
	case xpevent.FieldAwardedOn:
		return m.OldAwardedOn(ctx)
	case xpevent.FieldXp:
		return m.OldXp(ctx)
	case xpevent.FieldPerfect:
		return m.OldPerfect(ctx)
	case xpevent.FieldMeta:
		return m.OldMeta(ctx)
	case xpevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown XpEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *XpEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case xpevent.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case xpevent.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case xpevent.FieldSourceSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceSlug(v)
		return nil
	case xpevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case xpevent.FieldDedupeKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDedupeKey(v)
		return nil
	case xpevent.FieldAwardedOn:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAwardedOn(v)
		return nil
	case xpevent.FieldXp:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetXp(v)
		return nil
	case xpevent.FieldPerfect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPerfect(v)
		return nil
	case xpevent.FieldMeta:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeta(v)
		return nil
	case xpevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown XpEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *XpEventMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, xpevent.FieldUserID)
	}
	if m.addxp != nil {
		fields = append(fields, xpevent.FieldXp)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *XpEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case xpevent.FieldUserID:
		return m.AddedUserID()
	case xpevent.FieldXp:
		return m.AddedXp()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *XpEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case xpevent.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case xpevent.FieldXp:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddXp(v)
		return nil
	}
	return fmt.Errorf("unknown XpEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *XpEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *XpEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *XpEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown XpEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *XpEventMutation) ResetField(name string) error {
	switch name {
	case xpevent.FieldUserID:
		m.ResetUserID()
		return nil
	case xpevent.FieldSource:
		m.ResetSource()
		return nil
	case xpevent.FieldSourceSlug:
		m.ResetSourceSlug()
		return nil
	case xpevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case xpevent.FieldDedupeKey:
		m.ResetDedupeKey()
		return nil
	case xpevent.FieldAwardedOn:
		m.ResetAwardedOn()
		return nil
	case xpevent.FieldXp:
		m.ResetXp()
		return nil
	case xpevent.FieldPerfect:
		m.ResetPerfect()
		return nil
	case xpevent.FieldMeta:
		m.ResetMeta()
		return nil
	case xpevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown XpEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *XpEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *XpEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *XpEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *XpEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *XpEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *XpEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *XpEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown XpEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *XpEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown XpEvent edge %s", name)
}
