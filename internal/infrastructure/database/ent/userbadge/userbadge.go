// Code generated by ent, DO NOT EDIT.

package userbadge

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the userbadge type in the database.
	Label = "user_badge"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldBadgeSlug holds the string denoting the badge_slug field in the database.
	FieldBadgeSlug = "badge_slug"
	// FieldAwardedAt holds the string denoting the awarded_at field in the database.
	FieldAwardedAt = "awarded_at"
	// Table holds the table name of the userbadge in the database.
	Table = "user_badges"
)

// Columns holds all SQL columns for userbadge fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldBadgeSlug,
	FieldAwardedAt,
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
	// BadgeSlugValidator is a validator for the "badge_slug" field. It is called by the builders before save.
	BadgeSlugValidator func(string) error
	// DefaultAwardedAt holds the default value on creation for the "awarded_at" field.
	DefaultAwardedAt func() time.Time
)

// OrderOption defines the ordering options for the UserBadge queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByBadgeSlug orders the results by the badge_slug field.
func ByBadgeSlug(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBadgeSlug, opts...).ToFunc()
}

// ByAwardedAt orders the results by the awarded_at field.
func ByAwardedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAwardedAt, opts...).ToFunc()
}
