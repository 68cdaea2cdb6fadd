// Code generated by ent, DO NOT EDIT.

package unitknowledge

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int64) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldEQ(FieldUserID, v))
}

// UnitType applies equality check predicate on the "unit_type" field. It's identical to UnitTypeEQ.
func UnitType(v string) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldEQ(FieldUnitType, v))
}

// UnitID applies equality check predicate on the "unit_id" field. It's identical to UnitIDEQ.
func UnitID(v int64) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldEQ(FieldUnitID, v))
}

// TotalAttempts applies equality check predicate on the "total_attempts" field. It's identical to TotalAttemptsEQ.
func TotalAttempts(v int64) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldEQ(FieldTotalAttempts, v))
}

// CorrectCount applies equality check predicate on the "correct_count" field. It's identical to CorrectCountEQ.
func CorrectCount(v int64) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldEQ(FieldCorrectCount, v))
}

// WrongCount applies equality check predicate on the "wrong_count" field. It's identical to WrongCountEQ.
func WrongCount(v int64) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldEQ(FieldWrongCount, v))
}

// LastAttemptAt applies equality check predicate on the "last_attempt_at" field. It's identical to LastAttemptAtEQ.
func LastAttemptAt(v time.Time) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldEQ(FieldLastAttemptAt, v))
}

// LastCorrectAt applies equality check predicate on the "last_correct_at" field. It's identical to LastCorrectAtEQ.
func LastCorrectAt(v time.Time) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldEQ(FieldLastCorrectAt, v))
}

// LastWrongAt applies equality check predicate on the "last_wrong_at" field. It's identical to LastWrongAtEQ.
func LastWrongAt(v time.Time) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldEQ(FieldLastWrongAt, v))
}

// StabilityScore applies equality check predicate on the "stability_score" field. It's identical to StabilityScoreEQ.
func StabilityScore(v int64) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldEQ(FieldStabilityScore, v))
}

// State applies equality check predicate on the "state" field. It's identical to StateEQ.
func State(v string) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldEQ(FieldState, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int64) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int64) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int64) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int64) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int64) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int64) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int64) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int64) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldLTE(FieldUserID, v))
}

// UnitTypeEQ applies the EQ predicate on the "unit_type" field.
func UnitTypeEQ(v string) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldEQ(FieldUnitType, v))
}

// UnitTypeNEQ applies the NEQ predicate on the "unit_type" field.
func UnitTypeNEQ(v string) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldNEQ(FieldUnitType, v))
}

// UnitTypeIn applies the In predicate on the "unit_type" field.
func UnitTypeIn(vs ...string) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldIn(FieldUnitType, vs...))
}

// UnitTypeNotIn applies the NotIn predicate on the "unit_type" field.
func UnitTypeNotIn(vs ...string) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldNotIn(FieldUnitType, vs...))
}

// UnitTypeGT applies the GT predicate on the "unit_type" field.
func UnitTypeGT(v string) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldGT(FieldUnitType, v))
}

// UnitTypeGTE applies the GTE predicate on the "unit_type" field.
func UnitTypeGTE(v string) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldGTE(FieldUnitType, v))
}

// UnitTypeLT applies the LT predicate on the "unit_type" field.
func UnitTypeLT(v string) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldLT(FieldUnitType, v))
}

// UnitTypeLTE applies the LTE predicate on the "unit_type" field.
func UnitTypeLTE(v string) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldLTE(FieldUnitType, v))
}

// UnitTypeContains applies the Contains predicate on the "unit_type" field.
func UnitTypeContains(v string) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldContains(FieldUnitType, v))
}

// UnitTypeHasPrefix applies the HasPrefix predicate on the "unit_type" field.
func UnitTypeHasPrefix(v string) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldHasPrefix(FieldUnitType, v))
}

// UnitTypeHasSuffix applies the HasSuffix predicate on the "unit_type" field.
func UnitTypeHasSuffix(v string) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldHasSuffix(FieldUnitType, v))
}

// UnitTypeEqualFold applies the EqualFold predicate on the "unit_type" field.
func UnitTypeEqualFold(v string) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldEqualFold(FieldUnitType, v))
}

// UnitTypeContainsFold applies the ContainsFold predicate on the "unit_type" field.
func UnitTypeContainsFold(v string) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldContainsFold(FieldUnitType, v))
}

// UnitIDEQ applies the EQ predicate on the "unit_id" field.
func UnitIDEQ(v int64) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldEQ(FieldUnitID, v))
}

// UnitIDNEQ applies the NEQ predicate on the "unit_id" field.
func UnitIDNEQ(v int64) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldNEQ(FieldUnitID, v))
}

// UnitIDIn applies the In predicate on the "unit_id" field.
func UnitIDIn(vs ...int64) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldIn(FieldUnitID, vs...))
}

// UnitIDNotIn applies the NotIn predicate on the "unit_id" field.
func UnitIDNotIn(vs ...int64) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldNotIn(FieldUnitID, vs...))
}

// UnitIDGT applies the GT predicate on the "unit_id" field.
func UnitIDGT(v int64) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldGT(FieldUnitID, v))
}

// UnitIDGTE applies the GTE predicate on the "unit_id" field.
func UnitIDGTE(v int64) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldGTE(FieldUnitID, v))
}

// UnitIDLT applies the LT predicate on the "unit_id" field.
func UnitIDLT(v int64) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldLT(FieldUnitID, v))
}

// UnitIDLTE applies the LTE predicate on the "unit_id" field.
func UnitIDLTE(v int64) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldLTE(FieldUnitID, v))
}

// TotalAttemptsEQ applies the EQ predicate on the "total_attempts" field.
func TotalAttemptsEQ(v int64) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldEQ(FieldTotalAttempts, v))
}

// TotalAttemptsNEQ applies the NEQ predicate on the "total_attempts" field.
func TotalAttemptsNEQ(v int64) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldNEQ(FieldTotalAttempts, v))
}

// TotalAttemptsIn applies the In predicate on the "total_attempts" field.
func TotalAttemptsIn(vs ...int64) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldIn(FieldTotalAttempts, vs...))
}

// TotalAttemptsNotIn applies the NotIn predicate on the "total_attempts" field.
func TotalAttemptsNotIn(vs ...int64) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldNotIn(FieldTotalAttempts, vs...))
}

// TotalAttemptsGT applies the GT predicate on the "total_attempts" field.
func TotalAttemptsGT(v int64) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldGT(FieldTotalAttempts, v))
}

// TotalAttemptsGTE applies the GTE predicate on the "total_attempts" field.
func TotalAttemptsGTE(v int64) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldGTE(FieldTotalAttempts, v))
}

// TotalAttemptsLT applies the LT predicate on the "total_attempts" field.
func TotalAttemptsLT(v int64) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldLT(FieldTotalAttempts, v))
}

// TotalAttemptsLTE applies the LTE predicate on the "total_attempts" field.
func TotalAttemptsLTE(v int64) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldLTE(FieldTotalAttempts, v))
}

// CorrectCountEQ applies the EQ predicate on the "correct_count" field.
func CorrectCountEQ(v int64) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldEQ(FieldCorrectCount, v))
}

// CorrectCountNEQ applies the NEQ predicate on the "correct_count" field.
func CorrectCountNEQ(v int64) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldNEQ(FieldCorrectCount, v))
}

// CorrectCountIn applies the In predicate on the "correct_count" field.
func CorrectCountIn(vs ...int64) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldIn(FieldCorrectCount, vs...))
}

// CorrectCountNotIn applies the NotIn predicate on the "correct_count" field.
func CorrectCountNotIn(vs ...int64) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldNotIn(FieldCorrectCount, vs...))
}

// CorrectCountGT applies the GT predicate on the "correct_count" field.
func CorrectCountGT(v int64) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldGT(FieldCorrectCount, v))
}

// CorrectCountGTE applies the GTE predicate on the "correct_count" field.
func CorrectCountGTE(v int64) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldGTE(FieldCorrectCount, v))
}

// CorrectCountLT applies the LT predicate on the "correct_count" field.
func CorrectCountLT(v int64) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldLT(FieldCorrectCount, v))
}

// CorrectCountLTE applies the LTE predicate on the "correct_count" field.
func CorrectCountLTE(v int64) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldLTE(FieldCorrectCount, v))
}

// WrongCountEQ applies the EQ predicate on the "wrong_count" field.
func WrongCountEQ(v int64) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldEQ(FieldWrongCount, v))
}

// WrongCountNEQ applies the NEQ predicate on the "wrong_count" field.
func WrongCountNEQ(v int64) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldNEQ(FieldWrongCount, v))
}

// WrongCountIn applies the In predicate on the "wrong_count" field.
func WrongCountIn(vs ...int64) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldIn(FieldWrongCount, vs...))
}

// WrongCountNotIn applies the NotIn predicate on the "wrong_count" field.
func WrongCountNotIn(vs ...int64) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldNotIn(FieldWrongCount, vs...))
}

// WrongCountGT applies the GT predicate on the "wrong_count" field.
func WrongCountGT(v int64) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldGT(FieldWrongCount, v))
}

// WrongCountGTE applies the GTE predicate on the "wrong_count" field.
func WrongCountGTE(v int64) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldGTE(FieldWrongCount, v))
}

// WrongCountLT applies the LT predicate on the "wrong_count" field.
func WrongCountLT(v int64) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldLT(FieldWrongCount, v))
}

// WrongCountLTE applies the LTE predicate on the "wrong_count" field.
func WrongCountLTE(v int64) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldLTE(FieldWrongCount, v))
}

// LastAttemptAtEQ applies the EQ predicate on the "last_attempt_at" field.
func LastAttemptAtEQ(v time.Time) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldEQ(FieldLastAttemptAt, v))
}

// LastAttemptAtNEQ applies the NEQ predicate on the "last_attempt_at" field.
func LastAttemptAtNEQ(v time.Time) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldNEQ(FieldLastAttemptAt, v))
}

// LastAttemptAtIn applies the In predicate on the "last_attempt_at" field.
func LastAttemptAtIn(vs ...time.Time) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldIn(FieldLastAttemptAt, vs...))
}

// LastAttemptAtNotIn applies the NotIn predicate on the "last_attempt_at" field.
func LastAttemptAtNotIn(vs ...time.Time) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldNotIn(FieldLastAttemptAt, vs...))
}

// LastAttemptAtGT applies the GT predicate on the "last_attempt_at" field.
func LastAttemptAtGT(v time.Time) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldGT(FieldLastAttemptAt, v))
}

// LastAttemptAtGTE applies the GTE predicate on the "last_attempt_at" field.
func LastAttemptAtGTE(v time.Time) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldGTE(FieldLastAttemptAt, v))
}

// LastAttemptAtLT applies the LT predicate on the "last_attempt_at" field.
func LastAttemptAtLT(v time.Time) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldLT(FieldLastAttemptAt, v))
}

// LastAttemptAtLTE applies the LTE predicate on the "last_attempt_at" field.
func LastAttemptAtLTE(v time.Time) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldLTE(FieldLastAttemptAt, v))
}

// LastCorrectAtEQ applies the EQ predicate on the "last_correct_at" field.
func LastCorrectAtEQ(v time.Time) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldEQ(FieldLastCorrectAt, v))
}

// LastCorrectAtNEQ applies the NEQ predicate on the "last_correct_at" field.
func LastCorrectAtNEQ(v time.Time) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldNEQ(FieldLastCorrectAt, v))
}

// LastCorrectAtIn applies the In predicate on the "last_correct_at" field.
func LastCorrectAtIn(vs ...time.Time) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldIn(FieldLastCorrectAt, vs...))
}

// LastCorrectAtNotIn applies the NotIn predicate on the "last_correct_at" field.
func LastCorrectAtNotIn(vs ...time.Time) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldNotIn(FieldLastCorrectAt, vs...))
}

// LastCorrectAtGT applies the GT predicate on the "last_correct_at" field.
func LastCorrectAtGT(v time.Time) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldGT(FieldLastCorrectAt, v))
}

// LastCorrectAtGTE applies the GTE predicate on the "last_correct_at" field.
func LastCorrectAtGTE(v time.Time) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldGTE(FieldLastCorrectAt, v))
}

// LastCorrectAtLT applies the LT predicate on the "last_correct_at" field.
func LastCorrectAtLT(v time.Time) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldLT(FieldLastCorrectAt, v))
}

// LastCorrectAtLTE applies the LTE predicate on the "last_correct_at" field.
func LastCorrectAtLTE(v time.Time) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldLTE(FieldLastCorrectAt, v))
}

// LastCorrectAtIsNil applies the IsNil predicate on the "last_correct_at" field.
func LastCorrectAtIsNil() predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldIsNull(FieldLastCorrectAt))
}

// LastCorrectAtNotNil applies the NotNil predicate on the "last_correct_at" field.
func LastCorrectAtNotNil() predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldNotNull(FieldLastCorrectAt))
}

// LastWrongAtEQ applies the EQ predicate on the "last_wrong_at" field.
func LastWrongAtEQ(v time.Time) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldEQ(FieldLastWrongAt, v))
}

// LastWrongAtNEQ applies the NEQ predicate on the "last_wrong_at" field.
func LastWrongAtNEQ(v time.Time) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldNEQ(FieldLastWrongAt, v))
}

// LastWrongAtIn applies the In predicate on the "last_wrong_at" field.
func LastWrongAtIn(vs ...time.Time) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldIn(FieldLastWrongAt, vs...))
}

// LastWrongAtNotIn applies the NotIn predicate on the "last_wrong_at" field.
func LastWrongAtNotIn(vs ...time.Time) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldNotIn(FieldLastWrongAt, vs...))
}

// LastWrongAtGT applies the GT predicate on the "last_wrong_at" field.
func LastWrongAtGT(v time.Time) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldGT(FieldLastWrongAt, v))
}

// LastWrongAtGTE applies the GTE predicate on the "last_wrong_at" field.
func LastWrongAtGTE(v time.Time) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldGTE(FieldLastWrongAt, v))
}

// LastWrongAtLT applies the LT predicate on the "last_wrong_at" field.
func LastWrongAtLT(v time.Time) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldLT(FieldLastWrongAt, v))
}

// LastWrongAtLTE applies the LTE predicate on the "last_wrong_at" field.
func LastWrongAtLTE(v time.Time) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldLTE(FieldLastWrongAt, v))
}

// LastWrongAtIsNil applies the IsNil predicate on the "last_wrong_at" field.
func LastWrongAtIsNil() predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldIsNull(FieldLastWrongAt))
}

// LastWrongAtNotNil applies the NotNil predicate on the "last_wrong_at" field.
func LastWrongAtNotNil() predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldNotNull(FieldLastWrongAt))
}

// StabilityScoreEQ applies the EQ predicate on the "stability_score" field.
func StabilityScoreEQ(v int64) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldEQ(FieldStabilityScore, v))
}

// StabilityScoreNEQ applies the NEQ predicate on the "stability_score" field.
func StabilityScoreNEQ(v int64) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldNEQ(FieldStabilityScore, v))
}

// StabilityScoreIn applies the In predicate on the "stability_score" field.
func StabilityScoreIn(vs ...int64) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldIn(FieldStabilityScore, vs...))
}

// StabilityScoreNotIn applies the NotIn predicate on the "stability_score" field.
func StabilityScoreNotIn(vs ...int64) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldNotIn(FieldStabilityScore, vs...))
}

// StabilityScoreGT applies the GT predicate on the "stability_score" field.
func StabilityScoreGT(v int64) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldGT(FieldStabilityScore, v))
}

// StabilityScoreGTE applies the GTE predicate on the "stability_score" field.
func StabilityScoreGTE(v int64) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldGTE(FieldStabilityScore, v))
}

// StabilityScoreLT applies the LT predicate on the "stability_score" field.
func StabilityScoreLT(v int64) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldLT(FieldStabilityScore, v))
}

// StabilityScoreLTE applies the LTE predicate on the "stability_score" field.
func StabilityScoreLTE(v int64) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldLTE(FieldStabilityScore, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v string) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v string) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...string) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...string) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldNotIn(FieldState, vs...))
}

// StateGT applies the GT predicate on the "state" field.
func StateGT(v string) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldGT(FieldState, v))
}

// StateGTE applies the GTE predicate on the "state" field.
func StateGTE(v string) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldGTE(FieldState, v))
}

// StateLT applies the LT predicate on the "state" field.
func StateLT(v string) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldLT(FieldState, v))
}

// StateLTE applies the LTE predicate on the "state" field.
func StateLTE(v string) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldLTE(FieldState, v))
}

// StateContains applies the Contains predicate on the "state" field.
func StateContains(v string) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldContains(FieldState, v))
}

// StateHasPrefix applies the HasPrefix predicate on the "state" field.
func StateHasPrefix(v string) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldHasPrefix(FieldState, v))
}

// StateHasSuffix applies the HasSuffix predicate on the "state" field.
func StateHasSuffix(v string) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldHasSuffix(FieldState, v))
}

// StateEqualFold applies the EqualFold predicate on the "state" field.
func StateEqualFold(v string) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldEqualFold(FieldState, v))
}

// StateContainsFold applies the ContainsFold predicate on the "state" field.
func StateContainsFold(v string) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldContainsFold(FieldState, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UnitKnowledge) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UnitKnowledge) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UnitKnowledge) predicate.UnitKnowledge {
	return predicate.UnitKnowledge(sql.NotPredicates(p))
}
