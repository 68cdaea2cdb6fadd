// Code generated by ent, DO NOT EDIT.

package userbadge

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int64) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldEQ(FieldUserID, v))
}

// BadgeSlug applies equality check predicate on the "badge_slug" field. It's identical to BadgeSlugEQ.
func BadgeSlug(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldEQ(FieldBadgeSlug, v))
}

// AwardedAt applies equality check predicate on the "awarded_at" field. It's identical to AwardedAtEQ.
func AwardedAt(v time.Time) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldEQ(FieldAwardedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int64) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int64) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int64) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int64) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int64) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int64) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int64) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int64) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldLTE(FieldUserID, v))
}

// BadgeSlugEQ applies the EQ predicate on the "badge_slug" field.
func BadgeSlugEQ(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldEQ(FieldBadgeSlug, v))
}

// BadgeSlugNEQ applies the NEQ predicate on the "badge_slug" field.
func BadgeSlugNEQ(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldNEQ(FieldBadgeSlug, v))
}

// BadgeSlugIn applies the In predicate on the "badge_slug" field.
func BadgeSlugIn(vs ...string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldIn(FieldBadgeSlug, vs...))
}

// BadgeSlugNotIn applies the NotIn predicate on the "badge_slug" field.
func BadgeSlugNotIn(vs ...string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldNotIn(FieldBadgeSlug, vs...))
}

// BadgeSlugGT applies the GT predicate on the "badge_slug" field.
func BadgeSlugGT(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldGT(FieldBadgeSlug, v))
}

// BadgeSlugGTE applies the GTE predicate on the "badge_slug" field.
func BadgeSlugGTE(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldGTE(FieldBadgeSlug, v))
}

// BadgeSlugLT applies the LT predicate on the "badge_slug" field.
func BadgeSlugLT(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldLT(FieldBadgeSlug, v))
}

// BadgeSlugLTE applies the LTE predicate on the "badge_slug" field.
func BadgeSlugLTE(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldLTE(FieldBadgeSlug, v))
}

// BadgeSlugContains applies the Contains predicate on the "badge_slug" field.
func BadgeSlugContains(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldContains(FieldBadgeSlug, v))
}

// BadgeSlugHasPrefix applies the HasPrefix predicate on the "badge_slug" field.
func BadgeSlugHasPrefix(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldHasPrefix(FieldBadgeSlug, v))
}

// BadgeSlugHasSuffix applies the HasSuffix predicate on the "badge_slug" field.
func BadgeSlugHasSuffix(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldHasSuffix(FieldBadgeSlug, v))
}

// BadgeSlugEqualFold applies the EqualFold predicate on the "badge_slug" field.
func BadgeSlugEqualFold(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldEqualFold(FieldBadgeSlug, v))
}

// BadgeSlugContainsFold applies the ContainsFold predicate on the "badge_slug" field.
func BadgeSlugContainsFold(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldContainsFold(FieldBadgeSlug, v))
}

// AwardedAtEQ applies the EQ predicate on the "awarded_at" field.
func AwardedAtEQ(v time.Time) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldEQ(FieldAwardedAt, v))
}

// AwardedAtNEQ applies the NEQ predicate on the "awarded_at" field.
func AwardedAtNEQ(v time.Time) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldNEQ(FieldAwardedAt, v))
}

// AwardedAtIn applies the In predicate on the "awarded_at" field.
func AwardedAtIn(vs ...time.Time) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldIn(FieldAwardedAt, vs...))
}

// AwardedAtNotIn applies the NotIn predicate on the "awarded_at" field.
func AwardedAtNotIn(vs ...time.Time) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldNotIn(FieldAwardedAt, vs...))
}

// AwardedAtGT applies the GT predicate on the "awarded_at" field.
func AwardedAtGT(v time.Time) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldGT(FieldAwardedAt, v))
}

// AwardedAtGTE applies the GTE predicate on the "awarded_at" field.
func AwardedAtGTE(v time.Time) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldGTE(FieldAwardedAt, v))
}

// AwardedAtLT applies the LT predicate on the "awarded_at" field.
func AwardedAtLT(v time.Time) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldLT(FieldAwardedAt, v))
}

// AwardedAtLTE applies the LTE predicate on the "awarded_at" field.
func AwardedAtLTE(v time.Time) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldLTE(FieldAwardedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserBadge) predicate.UserBadge {
	return predicate.UserBadge(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserBadge) predicate.UserBadge {
	return predicate.UserBadge(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserBadge) predicate.UserBadge {
	return predicate.UserBadge(sql.NotPredicates(p))
}
