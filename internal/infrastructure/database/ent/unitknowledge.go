// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/unitknowledge"
)

// UnitKnowledge is the model entity for the UnitKnowledge schema.
type UnitKnowledge struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID int64 `json:"user_id,omitempty"`
	// UnitType holds the value of the "unit_type" field.
	UnitType string `json:"unit_type,omitempty"`
	// UnitID holds the value of the "unit_id" field.
	UnitID int64 `json:"unit_id,omitempty"`
	// TotalAttempts holds the value of the "total_attempts" field.
	TotalAttempts int64 `json:"total_attempts,omitempty"`
	// CorrectCount holds the value of the "correct_count" field.
	CorrectCount int64 `json:"correct_count,omitempty"`
	// WrongCount holds the value of the "wrong_count" field.
	WrongCount int64 `json:"wrong_count,omitempty"`
	// LastAttemptAt holds the value of the "last_attempt_at" field.
	LastAttemptAt time.Time `json:"last_attempt_at,omitempty"`
	// LastCorrectAt holds the value of the "last_correct_at" field.
	LastCorrectAt *time.Time `json:"last_correct_at,omitempty"`
	// LastWrongAt holds the value of the "last_wrong_at" field.
	LastWrongAt *time.Time `json:"last_wrong_at,omitempty"`
	// StabilityScore holds the value of the "stability_score" field.
	StabilityScore int64 `json:"stability_score,omitempty"`
	// State holds the value of the "state" field.
	State string `json:"state,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UnitKnowledge) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case unitknowledge.FieldID, unitknowledge.FieldUserID, unitknowledge.FieldUnitID, unitknowledge.FieldTotalAttempts, unitknowledge.FieldCorrectCount, unitknowledge.FieldWrongCount, unitknowledge.FieldStabilityScore:
			values[i] = new(sql.NullInt64)
		case unitknowledge.FieldUnitType, unitknowledge.FieldState:
			values[i] = new(sql.NullString)
		case unitknowledge.FieldLastAttemptAt, unitknowledge.FieldLastCorrectAt, unitknowledge.FieldLastWrongAt, unitknowledge.FieldCreatedAt, unitknowledge.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UnitKnowledge fields.
func (uk *UnitKnowledge) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case unitknowledge.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			uk.ID = int(value.Int64)
		case unitknowledge.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				uk.UserID = value.Int64
			}
		case unitknowledge.FieldUnitType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit_type", values[i])
			} else if value.Valid {
				uk.UnitType = value.String
			}
		case unitknowledge.FieldUnitID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field unit_id", values[i])
			} else if value.Valid {
				uk.UnitID = value.Int64
			}
		case unitknowledge.FieldTotalAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_attempts", values[i])
			} else if value.Valid {
				uk.TotalAttempts = value.Int64
			}
		case unitknowledge.FieldCorrectCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_count", values[i])
			} else if value.Valid {
				uk.CorrectCount = value.Int64
			}
		case unitknowledge.FieldWrongCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field wrong_count", values[i])
			} else if value.Valid {
				uk.WrongCount = value.Int64
			}
		case unitknowledge.FieldLastAttemptAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_attempt_at", values[i])
			} else if value.Valid {
				uk.LastAttemptAt = value.Time
			}
		case unitknowledge.FieldLastCorrectAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_correct_at", values[i])
			} else if value.Valid {
				uk.LastCorrectAt = new(time.Time)
				*uk.LastCorrectAt = value.Time
			}
		case unitknowledge.FieldLastWrongAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_wrong_at", values[i])
			} else if value.Valid {
				uk.LastWrongAt = new(time.Time)
				*uk.LastWrongAt = value.Time
			}
		case unitknowledge.FieldStabilityScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field stability_score", values[i])
			} else if value.Valid {
				uk.StabilityScore = value.Int64
			}
		case unitknowledge.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				uk.State = value.String
			}
		case unitknowledge.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				uk.CreatedAt = value.Time
			}
		case unitknowledge.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				uk.UpdatedAt = value.Time
			}
		default:
			uk.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UnitKnowledge.
// This includes values selected through modifiers, order, etc.
func (uk *UnitKnowledge) Value(name string) (ent.Value, error) {
	return uk.selectValues.Get(name)
}

// Update returns a builder for updating this UnitKnowledge.
// Note that you need to call UnitKnowledge.Unwrap() before calling this method if this UnitKnowledge
// was returned from a transaction, and the transaction was committed or rolled back.
func (uk *UnitKnowledge) Update() *UnitKnowledgeUpdateOne {
	return NewUnitKnowledgeClient(uk.config).UpdateOne(uk)
}

// Unwrap unwraps the UnitKnowledge entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (uk *UnitKnowledge) Unwrap() *UnitKnowledge {
	_tx, ok := uk.config.driver.(*txDriver)
	if !ok {
		panic("ent: UnitKnowledge is not a transactional entity")
	}
	uk.config.driver = _tx.drv
	return uk
}

// String implements the fmt.Stringer.
func (uk *UnitKnowledge) String() string {
	var builder strings.Builder
	builder.WriteString("UnitKnowledge(")
	builder.WriteString(fmt.Sprintf("id=%v, ", uk.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", uk.UserID))
	builder.WriteString(", ")
	builder.WriteString("unit_type=")
	builder.WriteString(uk.UnitType)
	builder.WriteString(", ")
	builder.WriteString("unit_id=")
	builder.WriteString(fmt.Sprintf("%v", uk.UnitID))
	builder.WriteString(", ")
	builder.WriteString("total_attempts=")
	builder.WriteString(fmt.Sprintf("%v", uk.TotalAttempts))
	builder.WriteString(", ")
	builder.WriteString("correct_count=")
	builder.WriteString(fmt.Sprintf("%v", uk.CorrectCount))
	builder.WriteString(", ")
	builder.WriteString("wrong_count=")
	builder.WriteString(fmt.Sprintf("%v", uk.WrongCount))
	builder.WriteString(", ")
	builder.WriteString("last_attempt_at=")
	builder.WriteString(uk.LastAttemptAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := uk.LastCorrectAt; v != nil {
		builder.WriteString("last_correct_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := uk.LastWrongAt; v != nil {
		builder.WriteString("last_wrong_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("stability_score=")
	builder.WriteString(fmt.Sprintf("%v", uk.StabilityScore))
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(uk.State)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(uk.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(uk.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UnitKnowledges is a parsable slice of UnitKnowledge.
type UnitKnowledges []*UnitKnowledge
