// Code generated by ent, DO NOT EDIT.

package userxp

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.UserXp {
	return predicate.UserXp(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.UserXp {
	return predicate.UserXp(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.UserXp {
	return predicate.UserXp(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.UserXp {
	return predicate.UserXp(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.UserXp {
	return predicate.UserXp(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.UserXp {
	return predicate.UserXp(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.UserXp {
	return predicate.UserXp(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.UserXp {
	return predicate.UserXp(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.UserXp {
	return predicate.UserXp(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int64) predicate.UserXp {
	return predicate.UserXp(sql.FieldEQ(FieldUserID, v))
}

// XpTotal applies equality check predicate on the "xp_total" field. It's identical to XpTotalEQ.
func XpTotal(v int64) predicate.UserXp {
	return predicate.UserXp(sql.FieldEQ(FieldXpTotal, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v int64) predicate.UserXp {
	return predicate.UserXp(sql.FieldEQ(FieldLevel, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.UserXp {
	return predicate.UserXp(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int64) predicate.UserXp {
	return predicate.UserXp(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int64) predicate.UserXp {
	return predicate.UserXp(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int64) predicate.UserXp {
	return predicate.UserXp(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int64) predicate.UserXp {
	return predicate.UserXp(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int64) predicate.UserXp {
	return predicate.UserXp(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int64) predicate.UserXp {
	return predicate.UserXp(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int64) predicate.UserXp {
	return predicate.UserXp(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int64) predicate.UserXp {
	return predicate.UserXp(sql.FieldLTE(FieldUserID, v))
}

// XpTotalEQ applies the EQ predicate on the "xp_total" field.
func XpTotalEQ(v int64) predicate.UserXp {
	return predicate.UserXp(sql.FieldEQ(FieldXpTotal, v))
}

// XpTotalNEQ applies the NEQ predicate on the "xp_total" field.
func XpTotalNEQ(v int64) predicate.UserXp {
	return predicate.UserXp(sql.FieldNEQ(FieldXpTotal, v))
}

// XpTotalIn applies the In predicate on the "xp_total" field.
func XpTotalIn(vs ...int64) predicate.UserXp {
	return predicate.UserXp(sql.FieldIn(FieldXpTotal, vs...))
}

// XpTotalNotIn applies the NotIn predicate on the "xp_total" field.
func XpTotalNotIn(vs ...int64) predicate.UserXp {
	return predicate.UserXp(sql.FieldNotIn(FieldXpTotal, vs...))
}

// XpTotalGT applies the GT predicate on the "xp_total" field.
func XpTotalGT(v int64) predicate.UserXp {
	return predicate.UserXp(sql.FieldGT(FieldXpTotal, v))
}

// XpTotalGTE applies the GTE predicate on the "xp_total" field.
func XpTotalGTE(v int64) predicate.UserXp {
	return predicate.UserXp(sql.FieldGTE(FieldXpTotal, v))
}

// XpTotalLT applies the LT predicate on the "xp_total" field.
func XpTotalLT(v int64) predicate.UserXp {
	return predicate.UserXp(sql.FieldLT(FieldXpTotal, v))
}

// XpTotalLTE applies the LTE predicate on the "xp_total" field.
func XpTotalLTE(v int64) predicate.UserXp {
	return predicate.UserXp(sql.FieldLTE(FieldXpTotal, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v int64) predicate.UserXp {
	return predicate.UserXp(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v int64) predicate.UserXp {
	return predicate.UserXp(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...int64) predicate.UserXp {
	return predicate.UserXp(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...int64) predicate.UserXp {
	return predicate.UserXp(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v int64) predicate.UserXp {
	return predicate.UserXp(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v int64) predicate.UserXp {
	return predicate.UserXp(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v int64) predicate.UserXp {
	return predicate.UserXp(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v int64) predicate.UserXp {
	return predicate.UserXp(sql.FieldLTE(FieldLevel, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.UserXp {
	return predicate.UserXp(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.UserXp {
	return predicate.UserXp(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.UserXp {
	return predicate.UserXp(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.UserXp {
	return predicate.UserXp(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.UserXp {
	return predicate.UserXp(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.UserXp {
	return predicate.UserXp(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.UserXp {
	return predicate.UserXp(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.UserXp {
	return predicate.UserXp(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserXp) predicate.UserXp {
	return predicate.UserXp(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserXp) predicate.UserXp {
	return predicate.UserXp(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserXp) predicate.UserXp {
	return predicate.UserXp(sql.NotPredicates(p))
}
