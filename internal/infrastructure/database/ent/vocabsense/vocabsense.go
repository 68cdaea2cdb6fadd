// Code generated by ent, DO NOT EDIT.

package vocabsense

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the vocabsense type in the database.
	Label = "vocab_sense"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldWord holds the string denoting the word field in the database.
	FieldWord = "word"
	// FieldTranslation holds the string denoting the translation field in the database.
	FieldTranslation = "translation"
	// FieldPackSlug holds the string denoting the pack_slug field in the database.
	FieldPackSlug = "pack_slug"
	// FieldClusterSlug holds the string denoting the cluster_slug field in the database.
	FieldClusterSlug = "cluster_slug"
	// Table holds the table name of the vocabsense in the database.
	Table = "vocab_senses"
)

// Columns holds all SQL columns for vocabsense fields.
var Columns = []string{
	FieldID,
	FieldWord,
	FieldTranslation,
	FieldPackSlug,
	FieldClusterSlug,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// WordValidator is a validator for the "word" field. It is called by the builders before save.
	WordValidator func(string) error
	// DefaultTranslation holds the default value on creation for the "translation" field.
	DefaultTranslation string
	// DefaultPackSlug holds the default value on creation for the "pack_slug" field.
	DefaultPackSlug string
	// DefaultClusterSlug holds the default value on creation for the "cluster_slug" field.
	DefaultClusterSlug string
)

// OrderOption defines the ordering options for the VocabSense queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWord orders the results by the word field.
func ByWord(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWord, opts...).ToFunc()
}

// ByTranslation orders the results by the translation field.
func ByTranslation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTranslation, opts...).ToFunc()
}

// ByPackSlug orders the results by the pack_slug field.
func ByPackSlug(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPackSlug, opts...).ToFunc()
}

// ByClusterSlug orders the results by the cluster_slug field.
func ByClusterSlug(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClusterSlug, opts...).ToFunc()
}
