// Code generated by ent, DO NOT EDIT.

package vocabsense

import (
	"entgo.io/ent/dialect/sql"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldLTE(FieldID, id))
}

// Word applies equality check predicate on the "word" field. It's identical to WordEQ.
func Word(v string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldEQ(FieldWord, v))
}

// Translation applies equality check predicate on the "translation" field. It's identical to TranslationEQ.
func Translation(v string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldEQ(FieldTranslation, v))
}

// PackSlug applies equality check predicate on the "pack_slug" field. It's identical to PackSlugEQ.
func PackSlug(v string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldEQ(FieldPackSlug, v))
}

// ClusterSlug applies equality check predicate on the "cluster_slug" field. It's identical to ClusterSlugEQ.
func ClusterSlug(v string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldEQ(FieldClusterSlug, v))
}

// WordEQ applies the EQ predicate on the "word" field.
func WordEQ(v string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldEQ(FieldWord, v))
}

// WordNEQ applies the NEQ predicate on the "word" field.
func WordNEQ(v string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldNEQ(FieldWord, v))
}

// WordIn applies the In predicate on the "word" field.
func WordIn(vs ...string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldIn(FieldWord, vs...))
}

// WordNotIn applies the NotIn predicate on the "word" field.
func WordNotIn(vs ...string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldNotIn(FieldWord, vs...))
}

// WordGT applies the GT predicate on the "word" field.
func WordGT(v string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldGT(FieldWord, v))
}

// WordGTE applies the GTE predicate on the "word" field.
func WordGTE(v string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldGTE(FieldWord, v))
}

// WordLT applies the LT predicate on the "word" field.
func WordLT(v string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldLT(FieldWord, v))
}

// WordLTE applies the LTE predicate on the "word" field.
func WordLTE(v string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldLTE(FieldWord, v))
}

// WordContains applies the Contains predicate on the "word" field.
func WordContains(v string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldContains(FieldWord, v))
}

// WordHasPrefix applies the HasPrefix predicate on the "word" field.
func WordHasPrefix(v string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldHasPrefix(FieldWord, v))
}

// WordHasSuffix applies the HasSuffix predicate on the "word" field.
func WordHasSuffix(v string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldHasSuffix(FieldWord, v))
}

// WordEqualFold applies the EqualFold predicate on the "word" field.
func WordEqualFold(v string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldEqualFold(FieldWord, v))
}

// WordContainsFold applies the ContainsFold predicate on the "word" field.
func WordContainsFold(v string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldContainsFold(FieldWord, v))
}

// TranslationEQ applies the EQ predicate on the "translation" field.
func TranslationEQ(v string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldEQ(FieldTranslation, v))
}

// TranslationNEQ applies the NEQ predicate on the "translation" field.
func TranslationNEQ(v string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldNEQ(FieldTranslation, v))
}

// TranslationIn applies the In predicate on the "translation" field.
func TranslationIn(vs ...string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldIn(FieldTranslation, vs...))
}

// TranslationNotIn applies the NotIn predicate on the "translation" field.
func TranslationNotIn(vs ...string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldNotIn(FieldTranslation, vs...))
}

// TranslationGT applies the GT predicate on the "translation" field.
func TranslationGT(v string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldGT(FieldTranslation, v))
}

// TranslationGTE applies the GTE predicate on the "translation" field.
func TranslationGTE(v string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldGTE(FieldTranslation, v))
}

// TranslationLT applies the LT predicate on the "translation" field.
func TranslationLT(v string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldLT(FieldTranslation, v))
}

// TranslationLTE applies the LTE predicate on the "translation" field.
func TranslationLTE(v string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldLTE(FieldTranslation, v))
}

// TranslationContains applies the Contains predicate on the "translation" field.
func TranslationContains(v string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldContains(FieldTranslation, v))
}

// TranslationHasPrefix applies the HasPrefix predicate on the "translation" field.
func TranslationHasPrefix(v string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldHasPrefix(FieldTranslation, v))
}

// TranslationHasSuffix applies the HasSuffix predicate on the "translation" field.
func TranslationHasSuffix(v string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldHasSuffix(FieldTranslation, v))
}

// TranslationEqualFold applies the EqualFold predicate on the "translation" field.
func TranslationEqualFold(v string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldEqualFold(FieldTranslation, v))
}

// TranslationContainsFold applies the ContainsFold predicate on the "translation" field.
func TranslationContainsFold(v string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldContainsFold(FieldTranslation, v))
}

// PackSlugEQ applies the EQ predicate on the "pack_slug" field.
func PackSlugEQ(v string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldEQ(FieldPackSlug, v))
}

// PackSlugNEQ applies the NEQ predicate on the "pack_slug" field.
func PackSlugNEQ(v string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldNEQ(FieldPackSlug, v))
}

// PackSlugIn applies the In predicate on the "pack_slug" field.
func PackSlugIn(vs ...string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldIn(FieldPackSlug, vs...))
}

// PackSlugNotIn applies the NotIn predicate on the "pack_slug" field.
func PackSlugNotIn(vs ...string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldNotIn(FieldPackSlug, vs...))
}

// PackSlugGT applies the GT predicate on the "pack_slug" field.
func PackSlugGT(v string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldGT(FieldPackSlug, v))
}

// PackSlugGTE applies the GTE predicate on the "pack_slug" field.
func PackSlugGTE(v string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldGTE(FieldPackSlug, v))
}

// PackSlugLT applies the LT predicate on the "pack_slug" field.
func PackSlugLT(v string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldLT(FieldPackSlug, v))
}

// PackSlugLTE applies the LTE predicate on the "pack_slug" field.
func PackSlugLTE(v string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldLTE(FieldPackSlug, v))
}

// PackSlugContains applies the Contains predicate on the "pack_slug" field.
func PackSlugContains(v string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldContains(FieldPackSlug, v))
}

// PackSlugHasPrefix applies the HasPrefix predicate on the "pack_slug" field.
func PackSlugHasPrefix(v string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldHasPrefix(FieldPackSlug, v))
}

// PackSlugHasSuffix applies the HasSuffix predicate on the "pack_slug" field.
func PackSlugHasSuffix(v string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldHasSuffix(FieldPackSlug, v))
}

// PackSlugEqualFold applies the EqualFold predicate on the "pack_slug" field.
func PackSlugEqualFold(v string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldEqualFold(FieldPackSlug, v))
}

// PackSlugContainsFold applies the ContainsFold predicate on the "pack_slug" field.
func PackSlugContainsFold(v string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldContainsFold(FieldPackSlug, v))
}

// ClusterSlugEQ applies the EQ predicate on the "cluster_slug" field.
func ClusterSlugEQ(v string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldEQ(FieldClusterSlug, v))
}

// ClusterSlugNEQ applies the NEQ predicate on the "cluster_slug" field.
func ClusterSlugNEQ(v string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldNEQ(FieldClusterSlug, v))
}

// ClusterSlugIn applies the In predicate on the "cluster_slug" field.
func ClusterSlugIn(vs ...string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldIn(FieldClusterSlug, vs...))
}

// ClusterSlugNotIn applies the NotIn predicate on the "cluster_slug" field.
func ClusterSlugNotIn(vs ...string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldNotIn(FieldClusterSlug, vs...))
}

// ClusterSlugGT applies the GT predicate on the "cluster_slug" field.
func ClusterSlugGT(v string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldGT(FieldClusterSlug, v))
}

// ClusterSlugGTE applies the GTE predicate on the "cluster_slug" field.
func ClusterSlugGTE(v string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldGTE(FieldClusterSlug, v))
}

// ClusterSlugLT applies the LT predicate on the "cluster_slug" field.
func ClusterSlugLT(v string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldLT(FieldClusterSlug, v))
}

// ClusterSlugLTE applies the LTE predicate on the "cluster_slug" field.
func ClusterSlugLTE(v string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldLTE(FieldClusterSlug, v))
}

// ClusterSlugContains applies the Contains predicate on the "cluster_slug" field.
func ClusterSlugContains(v string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldContains(FieldClusterSlug, v))
}

// ClusterSlugHasPrefix applies the HasPrefix predicate on the "cluster_slug" field.
func ClusterSlugHasPrefix(v string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldHasPrefix(FieldClusterSlug, v))
}

// ClusterSlugHasSuffix applies the HasSuffix predicate on the "cluster_slug" field.
func ClusterSlugHasSuffix(v string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldHasSuffix(FieldClusterSlug, v))
}

// ClusterSlugEqualFold applies the EqualFold predicate on the "cluster_slug" field.
func ClusterSlugEqualFold(v string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldEqualFold(FieldClusterSlug, v))
}

// ClusterSlugContainsFold applies the ContainsFold predicate on the "cluster_slug" field.
func ClusterSlugContainsFold(v string) predicate.VocabSense {
	return predicate.VocabSense(sql.FieldContainsFold(FieldClusterSlug, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.VocabSense) predicate.VocabSense {
	return predicate.VocabSense(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.VocabSense) predicate.VocabSense {
	return predicate.VocabSense(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.VocabSense) predicate.VocabSense {
	return predicate.VocabSense(sql.NotPredicates(p))
}
