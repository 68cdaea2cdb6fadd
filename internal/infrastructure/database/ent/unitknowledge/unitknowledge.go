// Code generated by ent, DO NOT EDIT.

package unitknowledge

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the unitknowledge type in the database.
	Label = "unit_knowledge"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldUnitType holds the string denoting the unit_type field in the database.
	FieldUnitType = "unit_type"
	// FieldUnitID holds the string denoting the unit_id field in the database.
	FieldUnitID = "unit_id"
	// FieldTotalAttempts holds the string denoting the total_attempts field in the database.
	FieldTotalAttempts = "total_attempts"
	// FieldCorrectCount holds the string denoting the correct_count field in the database.
	FieldCorrectCount = "correct_count"
	// FieldWrongCount holds the string denoting the wrong_count field in the database.
	FieldWrongCount = "wrong_count"
	// FieldLastAttemptAt holds the string denoting the last_attempt_at field in the database.
	FieldLastAttemptAt = "last_attempt_at"
	// FieldLastCorrectAt holds the string denoting the last_correct_at field in the database.
	FieldLastCorrectAt = "last_correct_at"
	// FieldLastWrongAt holds the string denoting the last_wrong_at field in the database.
	FieldLastWrongAt = "last_wrong_at"
	// FieldStabilityScore holds the string denoting the stability_score field in the database.
	FieldStabilityScore = "stability_score"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the unitknowledge in the database.
	Table = "unit_knowledge"
)

// Columns holds all SQL columns for unitknowledge fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldUnitType,
	FieldUnitID,
	FieldTotalAttempts,
	FieldCorrectCount,
	FieldWrongCount,
	FieldLastAttemptAt,
	FieldLastCorrectAt,
	FieldLastWrongAt,
	FieldStabilityScore,
	FieldState,
	FieldCreatedAt,
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
	// UnitTypeValidator is a validator for the "unit_type" field. It is called by the builders before save.
	UnitTypeValidator func(string) error
	// DefaultTotalAttempts holds the default value on creation for the "total_attempts" field.
	DefaultTotalAttempts int64
	// DefaultCorrectCount holds the default value on creation for the "correct_count" field.
	DefaultCorrectCount int64
	// DefaultWrongCount holds the default value on creation for the "wrong_count" field.
	DefaultWrongCount int64
	// DefaultStabilityScore holds the default value on creation for the "stability_score" field.
	DefaultStabilityScore int64
	// StateValidator is a validator for the "state" field. It is called by the builders before save.
	StateValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the UnitKnowledge queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByUnitType orders the results by the unit_type field.
func ByUnitType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnitType, opts...).ToFunc()
}

// ByUnitID orders the results by the unit_id field.
func ByUnitID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnitID, opts...).ToFunc()
}

// ByTotalAttempts orders the results by the total_attempts field.
func ByTotalAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalAttempts, opts...).ToFunc()
}

// ByCorrectCount orders the results by the correct_count field.
func ByCorrectCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectCount, opts...).ToFunc()
}

// ByWrongCount orders the results by the wrong_count field.
func ByWrongCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWrongCount, opts...).ToFunc()
}

// ByLastAttemptAt orders the results by the last_attempt_at field.
func ByLastAttemptAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastAttemptAt, opts...).ToFunc()
}

// ByLastCorrectAt orders the results by the last_correct_at field.
func ByLastCorrectAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastCorrectAt, opts...).ToFunc()
}

// ByLastWrongAt orders the results by the last_wrong_at field.
func ByLastWrongAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastWrongAt, opts...).ToFunc()
}

// ByStabilityScore orders the results by the stability_score field.
func ByStabilityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStabilityScore, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
