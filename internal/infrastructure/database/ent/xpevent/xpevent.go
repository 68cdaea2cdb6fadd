// Code generated by ent, DO NOT EDIT.

package xpevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the xpevent type in the database.
	Label = "xp_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldSourceSlug holds the string denoting the source_slug field in the database.
	FieldSourceSlug = "source_slug"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldDedupeKey holds the string denoting the dedupe_key field in the database.
	FieldDedupeKey = "dedupe_key"
	// FieldAwardedOn holds the string denoting the awarded_on field in the database.
	FieldAwardedOn = "awarded_on"
	// FieldXp holds the string denoting the xp field in the database.
	FieldXp = "xp"
	// FieldPerfect holds the string denoting the perfect field in the database.
	FieldPerfect = "perfect"
	// FieldMeta holds the string denoting the meta field in the database.
	FieldMeta = "meta"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the xpevent in the database.
	Table = "xp_events"
)

// Columns holds all SQL columns for xpevent fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldSource,
	FieldSourceSlug,
	FieldSessionID,
	FieldDedupeKey,
	FieldAwardedOn,
	FieldXp,
	FieldPerfect,
	FieldMeta,
	FieldCreatedAt,
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
	// SourceValidator is a validator for the "source" field. It is called by the builders before save.
	SourceValidator func(string) error
	// DefaultSourceSlug holds the default value on creation for the "source_slug" field.
	DefaultSourceSlug string
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// DedupeKeyValidator is a validator for the "dedupe_key" field. It is called by the builders before save.
	DedupeKeyValidator func(string) error
	// AwardedOnValidator is a validator for the "awarded_on" field. It is called by the builders before save.
	AwardedOnValidator func(string) error
	// DefaultPerfect holds the default value on creation for the "perfect" field.
	DefaultPerfect bool
	// DefaultMeta holds the default value on creation for the "meta" field.
	DefaultMeta map[string]string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the XpEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// BySourceSlug orders the results by the source_slug field.
func BySourceSlug(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceSlug, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByDedupeKey orders the results by the dedupe_key field.
func ByDedupeKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDedupeKey, opts...).ToFunc()
}

// ByAwardedOn orders the results by the awarded_on field.
func ByAwardedOn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAwardedOn, opts...).ToFunc()
}

// ByXp orders the results by the xp field.
func ByXp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldXp, opts...).ToFunc()
}

// ByPerfect orders the results by the perfect field.
func ByPerfect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPerfect, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
