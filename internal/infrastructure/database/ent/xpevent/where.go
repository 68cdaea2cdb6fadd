// Code generated by ent, DO NOT EDIT.

package xpevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int64) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldEQ(FieldUserID, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldEQ(FieldSource, v))
}

// SourceSlug applies equality check predicate on the "source_slug" field. It's identical to SourceSlugEQ.
func SourceSlug(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldEQ(FieldSourceSlug, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldEQ(FieldSessionID, v))
}

// DedupeKey applies equality check predicate on the "dedupe_key" field. It's identical to DedupeKeyEQ.
func DedupeKey(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldEQ(FieldDedupeKey, v))
}

// AwardedOn applies equality check predicate on the "awarded_on" field. It's identical to AwardedOnEQ.
func AwardedOn(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldEQ(FieldAwardedOn, v))
}

// Xp applies equality check predicate on the "xp" field. It's identical to XpEQ.
func Xp(v int64) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldEQ(FieldXp, v))
}

// Perfect applies equality check predicate on the "perfect" field. It's identical to PerfectEQ.
func Perfect(v bool) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldEQ(FieldPerfect, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int64) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int64) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int64) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int64) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int64) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int64) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int64) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int64) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldLTE(FieldUserID, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldContainsFold(FieldSource, v))
}

// SourceSlugEQ applies the EQ predicate on the "source_slug" field.
func SourceSlugEQ(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldEQ(FieldSourceSlug, v))
}

// SourceSlugNEQ applies the NEQ predicate on the "source_slug" field.
func SourceSlugNEQ(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldNEQ(FieldSourceSlug, v))
}

// SourceSlugIn applies the In predicate on the "source_slug" field.
func SourceSlugIn(vs ...string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldIn(FieldSourceSlug, vs...))
}

// SourceSlugNotIn applies the NotIn predicate on the "source_slug" field.
func SourceSlugNotIn(vs ...string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldNotIn(FieldSourceSlug, vs...))
}

// SourceSlugGT applies the GT predicate on the "source_slug" field.
func SourceSlugGT(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldGT(FieldSourceSlug, v))
}

// SourceSlugGTE applies the GTE predicate on the "source_slug" field.
func SourceSlugGTE(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldGTE(FieldSourceSlug, v))
}

// SourceSlugLT applies the LT predicate on the "source_slug" field.
func SourceSlugLT(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldLT(FieldSourceSlug, v))
}

// SourceSlugLTE applies the LTE predicate on the "source_slug" field.
func SourceSlugLTE(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldLTE(FieldSourceSlug, v))
}

// SourceSlugContains applies the Contains predicate on the "source_slug" field.
func SourceSlugContains(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldContains(FieldSourceSlug, v))
}

// SourceSlugHasPrefix applies the HasPrefix predicate on the "source_slug" field.
func SourceSlugHasPrefix(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldHasPrefix(FieldSourceSlug, v))
}

// SourceSlugHasSuffix applies the HasSuffix predicate on the "source_slug" field.
func SourceSlugHasSuffix(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldHasSuffix(FieldSourceSlug, v))
}

// SourceSlugEqualFold applies the EqualFold predicate on the "source_slug" field.
func SourceSlugEqualFold(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldEqualFold(FieldSourceSlug, v))
}

// SourceSlugContainsFold applies the ContainsFold predicate on the "source_slug" field.
func SourceSlugContainsFold(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldContainsFold(FieldSourceSlug, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// DedupeKeyEQ applies the EQ predicate on the "dedupe_key" field.
func DedupeKeyEQ(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldEQ(FieldDedupeKey, v))
}

// DedupeKeyNEQ applies the NEQ predicate on the "dedupe_key" field.
func DedupeKeyNEQ(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldNEQ(FieldDedupeKey, v))
}

// DedupeKeyIn applies the In predicate on the "dedupe_key" field.
func DedupeKeyIn(vs ...string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldIn(FieldDedupeKey, vs...))
}

// DedupeKeyNotIn applies the NotIn predicate on the "dedupe_key" field.
func DedupeKeyNotIn(vs ...string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldNotIn(FieldDedupeKey, vs...))
}

// DedupeKeyGT applies the GT predicate on the "dedupe_key" field.
func DedupeKeyGT(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldGT(FieldDedupeKey, v))
}

// DedupeKeyGTE applies the GTE predicate on the "dedupe_key" field.
func DedupeKeyGTE(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldGTE(FieldDedupeKey, v))
}

// DedupeKeyLT applies the LT predicate on the "dedupe_key" field.
func DedupeKeyLT(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldLT(FieldDedupeKey, v))
}

// DedupeKeyLTE applies the LTE predicate on the "dedupe_key" field.
func DedupeKeyLTE(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldLTE(FieldDedupeKey, v))
}

// DedupeKeyContains applies the Contains predicate on the "dedupe_key" field.
func DedupeKeyContains(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldContains(FieldDedupeKey, v))
}

// DedupeKeyHasPrefix applies the HasPrefix predicate on the "dedupe_key" field.
func DedupeKeyHasPrefix(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldHasPrefix(FieldDedupeKey, v))
}

// DedupeKeyHasSuffix applies the HasSuffix predicate on the "dedupe_key" field.
func DedupeKeyHasSuffix(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldHasSuffix(FieldDedupeKey, v))
}

// DedupeKeyEqualFold applies the EqualFold predicate on the "dedupe_key" field.
func DedupeKeyEqualFold(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldEqualFold(FieldDedupeKey, v))
}

// DedupeKeyContainsFold applies the ContainsFold predicate on the "dedupe_key" field.
func DedupeKeyContainsFold(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldContainsFold(FieldDedupeKey, v))
}

// AwardedOnEQ applies the EQ predicate on the "awarded_on" field.
func AwardedOnEQ(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldEQ(FieldAwardedOn, v))
}

// AwardedOnNEQ applies the NEQ predicate on the "awarded_on" field.
func AwardedOnNEQ(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldNEQ(FieldAwardedOn, v))
}

// AwardedOnIn applies the In predicate on the "awarded_on" field.
func AwardedOnIn(vs ...string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldIn(FieldAwardedOn, vs...))
}

// AwardedOnNotIn applies the NotIn predicate on the "awarded_on" field.
func AwardedOnNotIn(vs ...string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldNotIn(FieldAwardedOn, vs...))
}

// AwardedOnGT applies the GT predicate on the "awarded_on" field.
func AwardedOnGT(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldGT(FieldAwardedOn, v))
}

// AwardedOnGTE applies the GTE predicate on the "awarded_on" field.
func AwardedOnGTE(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldGTE(FieldAwardedOn, v))
}

// AwardedOnLT applies the LT predicate on the "awarded_on" field.
func AwardedOnLT(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldLT(FieldAwardedOn, v))
}

// AwardedOnLTE applies the LTE predicate on the "awarded_on" field.
func AwardedOnLTE(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldLTE(FieldAwardedOn, v))
}

// AwardedOnContains applies the Contains predicate on the "awarded_on" field.
func AwardedOnContains(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldContains(FieldAwardedOn, v))
}

// AwardedOnHasPrefix applies the HasPrefix predicate on the "awarded_on" field.
func AwardedOnHasPrefix(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldHasPrefix(FieldAwardedOn, v))
}

// AwardedOnHasSuffix applies the HasSuffix predicate on the "awarded_on" field.
func AwardedOnHasSuffix(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldHasSuffix(FieldAwardedOn, v))
}

// AwardedOnEqualFold applies the EqualFold predicate on the "awarded_on" field.
func AwardedOnEqualFold(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldEqualFold(FieldAwardedOn, v))
}

// AwardedOnContainsFold applies the ContainsFold predicate on the "awarded_on" field.
func AwardedOnContainsFold(v string) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldContainsFold(FieldAwardedOn, v))
}

// XpEQ applies the EQ predicate on the "xp" field.
func XpEQ(v int64) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldEQ(FieldXp, v))
}

// XpNEQ applies the NEQ predicate on the "xp" field.
func XpNEQ(v int64) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldNEQ(FieldXp, v))
}

// XpIn applies the In predicate on the "xp" field.
func XpIn(vs ...int64) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldIn(FieldXp, vs...))
}

// XpNotIn applies the NotIn predicate on the "xp" field.
func XpNotIn(vs ...int64) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldNotIn(FieldXp, vs...))
}

// XpGT applies the GT predicate on the "xp" field.
func XpGT(v int64) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldGT(FieldXp, v))
}

// XpGTE applies the GTE predicate on the "xp" field.
func XpGTE(v int64) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldGTE(FieldXp, v))
}

// XpLT applies the LT predicate on the "xp" field.
func XpLT(v int64) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldLT(FieldXp, v))
}

// XpLTE applies the LTE predicate on the "xp" field.
func XpLTE(v int64) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldLTE(FieldXp, v))
}

// PerfectEQ applies the EQ predicate on the "perfect" field.
func PerfectEQ(v bool) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldEQ(FieldPerfect, v))
}

// PerfectNEQ applies the NEQ predicate on the "perfect" field.
func PerfectNEQ(v bool) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldNEQ(FieldPerfect, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.XpEvent {
	return predicate.XpEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.XpEvent) predicate.XpEvent {
	return predicate.XpEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.XpEvent) predicate.XpEvent {
	return predicate.XpEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.XpEvent) predicate.XpEvent {
	return predicate.XpEvent(sql.NotPredicates(p))
}
