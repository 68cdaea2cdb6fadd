// Code generated by ent, DO NOT EDIT.

package irregularverb

import (
	"entgo.io/ent/dialect/sql"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldLTE(FieldID, id))
}

// Base applies equality check predicate on the "base" field. It's identical to BaseEQ.
func Base(v string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldEQ(FieldBase, v))
}

// Past applies equality check predicate on the "past" field. It's identical to PastEQ.
func Past(v string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldEQ(FieldPast, v))
}

// Participle applies equality check predicate on the "participle" field. It's identical to ParticipleEQ.
func Participle(v string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldEQ(FieldParticiple, v))
}

// Translation applies equality check predicate on the "translation" field. It's identical to TranslationEQ.
func Translation(v string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldEQ(FieldTranslation, v))
}

// BaseEQ applies the EQ predicate on the "base" field.
func BaseEQ(v string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldEQ(FieldBase, v))
}

// BaseNEQ applies the NEQ predicate on the "base" field.
func BaseNEQ(v string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldNEQ(FieldBase, v))
}

// BaseIn applies the In predicate on the "base" field.
func BaseIn(vs ...string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldIn(FieldBase, vs...))
}

// BaseNotIn applies the NotIn predicate on the "base" field.
func BaseNotIn(vs ...string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldNotIn(FieldBase, vs...))
}

// BaseGT applies the GT predicate on the "base" field.
func BaseGT(v string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldGT(FieldBase, v))
}

// BaseGTE applies the GTE predicate on the "base" field.
func BaseGTE(v string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldGTE(FieldBase, v))
}

// BaseLT applies the LT predicate on the "base" field.
func BaseLT(v string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldLT(FieldBase, v))
}

// BaseLTE applies the LTE predicate on the "base" field.
func BaseLTE(v string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldLTE(FieldBase, v))
}

// BaseContains applies the Contains predicate on the "base" field.
func BaseContains(v string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldContains(FieldBase, v))
}

// BaseHasPrefix applies the HasPrefix predicate on the "base" field.
func BaseHasPrefix(v string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldHasPrefix(FieldBase, v))
}

// BaseHasSuffix applies the HasSuffix predicate on the "base" field.
func BaseHasSuffix(v string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldHasSuffix(FieldBase, v))
}

// BaseEqualFold applies the EqualFold predicate on the "base" field.
func BaseEqualFold(v string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldEqualFold(FieldBase, v))
}

// BaseContainsFold applies the ContainsFold predicate on the "base" field.
func BaseContainsFold(v string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldContainsFold(FieldBase, v))
}

// PastEQ applies the EQ predicate on the "past" field.
func PastEQ(v string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldEQ(FieldPast, v))
}

// PastNEQ applies the NEQ predicate on the "past" field.
func PastNEQ(v string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldNEQ(FieldPast, v))
}

// PastIn applies the In predicate on the "past" field.
func PastIn(vs ...string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldIn(FieldPast, vs...))
}

// PastNotIn applies the NotIn predicate on the "past" field.
func PastNotIn(vs ...string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldNotIn(FieldPast, vs...))
}

// PastGT applies the GT predicate on the "past" field.
func PastGT(v string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldGT(FieldPast, v))
}

// PastGTE applies the GTE predicate on the "past" field.
func PastGTE(v string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldGTE(FieldPast, v))
}

// PastLT applies the LT predicate on the "past" field.
func PastLT(v string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldLT(FieldPast, v))
}

// PastLTE applies the LTE predicate on the "past" field.
func PastLTE(v string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldLTE(FieldPast, v))
}

// PastContains applies the Contains predicate on the "past" field.
func PastContains(v string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldContains(FieldPast, v))
}

// PastHasPrefix applies the HasPrefix predicate on the "past" field.
func PastHasPrefix(v string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldHasPrefix(FieldPast, v))
}

// PastHasSuffix applies the HasSuffix predicate on the "past" field.
func PastHasSuffix(v string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldHasSuffix(FieldPast, v))
}

// PastEqualFold applies the EqualFold predicate on the "past" field.
func PastEqualFold(v string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldEqualFold(FieldPast, v))
}

// PastContainsFold applies the ContainsFold predicate on the "past" field.
func PastContainsFold(v string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldContainsFold(FieldPast, v))
}

// ParticipleEQ applies the EQ predicate on the "participle" field.
func ParticipleEQ(v string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldEQ(FieldParticiple, v))
}

// ParticipleNEQ applies the NEQ predicate on the "participle" field.
func ParticipleNEQ(v string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldNEQ(FieldParticiple, v))
}

// ParticipleIn applies the In predicate on the "participle" field.
func ParticipleIn(vs ...string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldIn(FieldParticiple, vs...))
}

// ParticipleNotIn applies the NotIn predicate on the "participle" field.
func ParticipleNotIn(vs ...string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldNotIn(FieldParticiple, vs...))
}

// ParticipleGT applies the GT predicate on the "participle" field.
func ParticipleGT(v string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldGT(FieldParticiple, v))
}

// ParticipleGTE applies the GTE predicate on the "participle" field.
func ParticipleGTE(v string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldGTE(FieldParticiple, v))
}

// ParticipleLT applies the LT predicate on the "participle" field.
func ParticipleLT(v string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldLT(FieldParticiple, v))
}

// ParticipleLTE applies the LTE predicate on the "participle" field.
func ParticipleLTE(v string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldLTE(FieldParticiple, v))
}

// ParticipleContains applies the Contains predicate on the "participle" field.
func ParticipleContains(v string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldContains(FieldParticiple, v))
}

// ParticipleHasPrefix applies the HasPrefix predicate on the "participle" field.
func ParticipleHasPrefix(v string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldHasPrefix(FieldParticiple, v))
}

// ParticipleHasSuffix applies the HasSuffix predicate on the "participle" field.
func ParticipleHasSuffix(v string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldHasSuffix(FieldParticiple, v))
}

// ParticipleEqualFold applies the EqualFold predicate on the "participle" field.
func ParticipleEqualFold(v string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldEqualFold(FieldParticiple, v))
}

// ParticipleContainsFold applies the ContainsFold predicate on the "participle" field.
func ParticipleContainsFold(v string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldContainsFold(FieldParticiple, v))
}

// TranslationEQ applies the EQ predicate on the "translation" field.
func TranslationEQ(v string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldEQ(FieldTranslation, v))
}

// TranslationNEQ applies the NEQ predicate on the "translation" field.
func TranslationNEQ(v string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldNEQ(FieldTranslation, v))
}

// TranslationIn applies the In predicate on the "translation" field.
func TranslationIn(vs ...string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldIn(FieldTranslation, vs...))
}

// TranslationNotIn applies the NotIn predicate on the "translation" field.
func TranslationNotIn(vs ...string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldNotIn(FieldTranslation, vs...))
}

// TranslationGT applies the GT predicate on the "translation" field.
func TranslationGT(v string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldGT(FieldTranslation, v))
}

// TranslationGTE applies the GTE predicate on the "translation" field.
func TranslationGTE(v string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldGTE(FieldTranslation, v))
}

// TranslationLT applies the LT predicate on the "translation" field.
func TranslationLT(v string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldLT(FieldTranslation, v))
}

// TranslationLTE applies the LTE predicate on the "translation" field.
func TranslationLTE(v string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldLTE(FieldTranslation, v))
}

// TranslationContains applies the Contains predicate on the "translation" field.
func TranslationContains(v string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldContains(FieldTranslation, v))
}

// TranslationHasPrefix applies the HasPrefix predicate on the "translation" field.
func TranslationHasPrefix(v string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldHasPrefix(FieldTranslation, v))
}

// TranslationHasSuffix applies the HasSuffix predicate on the "translation" field.
func TranslationHasSuffix(v string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldHasSuffix(FieldTranslation, v))
}

// TranslationEqualFold applies the EqualFold predicate on the "translation" field.
func TranslationEqualFold(v string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldEqualFold(FieldTranslation, v))
}

// TranslationContainsFold applies the ContainsFold predicate on the "translation" field.
func TranslationContainsFold(v string) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.FieldContainsFold(FieldTranslation, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.IrregularVerb) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.IrregularVerb) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.IrregularVerb) predicate.IrregularVerb {
	return predicate.IrregularVerb(sql.NotPredicates(p))
}
