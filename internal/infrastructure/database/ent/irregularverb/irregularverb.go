// Code generated by ent, DO NOT EDIT.

package irregularverb

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the irregularverb type in the database.
	Label = "irregular_verb"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldBase holds the string denoting the base field in the database.
	FieldBase = "base"
	// FieldPast holds the string denoting the past field in the database.
	FieldPast = "past"
	// FieldParticiple holds the string denoting the participle field in the database.
	FieldParticiple = "participle"
	// FieldTranslation holds the string denoting the translation field in the database.
	FieldTranslation = "translation"
	// Table holds the table name of the irregularverb in the database.
	Table = "irregular_verbs"
)

// Columns holds all SQL columns for irregularverb fields.
var Columns = []string{
	FieldID,
	FieldBase,
	FieldPast,
	FieldParticiple,
	FieldTranslation,
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
	// BaseValidator is a validator for the "base" field. It is called by the builders before save.
	BaseValidator func(string) error
	// PastValidator is a validator for the "past" field. It is called by the builders before save.
	PastValidator func(string) error
	// ParticipleValidator is a validator for the "participle" field. It is called by the builders before save.
	ParticipleValidator func(string) error
	// DefaultTranslation holds the default value on creation for the "translation" field.
	DefaultTranslation string
)

// OrderOption defines the ordering options for the IrregularVerb queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBase orders the results by the base field.
func ByBase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBase, opts...).ToFunc()
}

// ByPast orders the results by the past field.
func ByPast(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPast, opts...).ToFunc()
}

// ByParticiple orders the results by the participle field.
func ByParticiple(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParticiple, opts...).ToFunc()
}

// ByTranslation orders the results by the translation field.
func ByTranslation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTranslation, opts...).ToFunc()
}
