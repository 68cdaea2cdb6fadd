// Code generated by ent, DO NOT EDIT.

package userxp

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the userxp type in the database.
	Label = "user_xp"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldXpTotal holds the string denoting the xp_total field in the database.
	FieldXpTotal = "xp_total"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the userxp in the database.
	Table = "user_xp"
)

// Columns holds all SQL columns for userxp fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldXpTotal,
	FieldLevel,
	FieldUpdatedAt,
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
	// DefaultXpTotal holds the default value on creation for the "xp_total" field.
	DefaultXpTotal int64
	// DefaultLevel holds the default value on creation for the "level" field.
	DefaultLevel int64
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the UserXp queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByXpTotal orders the results by the xp_total field.
func ByXpTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldXpTotal, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
