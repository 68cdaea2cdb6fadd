// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/userxp"
)

// UserXp is the model entity for the UserXp schema.
type UserXp struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID int64 `json:"user_id,omitempty"`
	// XpTotal holds the value of the "xp_total" field.
	XpTotal int64 `json:"xp_total,omitempty"`
	// Level holds the value of the "level" field.
	Level int64 `json:"level,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UserXp) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case userxp.FieldID, userxp.FieldUserID, userxp.FieldXpTotal, userxp.FieldLevel:
			values[i] = new(sql.NullInt64)
		case userxp.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UserXp fields.
func (ux *UserXp) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case userxp.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			ux.ID = int(value.Int64)
		case userxp.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				ux.UserID = value.Int64
			}
		case userxp.FieldXpTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field xp_total", values[i])
			} else if value.Valid {
				ux.XpTotal = value.Int64
			}
		case userxp.FieldLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				ux.Level = value.Int64
			}
		case userxp.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				ux.UpdatedAt = value.Time
			}
		default:
			ux.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UserXp.
// This includes values selected through modifiers, order, etc.
func (ux *UserXp) Value(name string) (ent.Value, error) {
	return ux.selectValues.Get(name)
}

// Update returns a builder for updating this UserXp.
// Note that you need to call UserXp.Unwrap() before calling this method if this UserXp
// was returned from a transaction, and the transaction was committed or rolled back.
func (ux *UserXp) Update() *UserXpUpdateOne {
	return NewUserXpClient(ux.config).UpdateOne(ux)
}

// Unwrap unwraps the UserXp entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ux *UserXp) Unwrap() *UserXp {
	_tx, ok := ux.config.driver.(*txDriver)
	if !ok {
		panic("ent: UserXp is not a transactional entity")
	}
	ux.config.driver = _tx.drv
	return ux
}

// String implements the fmt.Stringer.
func (ux *UserXp) String() string {
	var builder strings.Builder
	builder.WriteString("UserXp(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ux.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", ux.UserID))
	builder.WriteString(", ")
	builder.WriteString("xp_total=")
	builder.WriteString(fmt.Sprintf("%v", ux.XpTotal))
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(fmt.Sprintf("%v", ux.Level))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(ux.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UserXps is a parsable slice of UserXp.
type UserXps []*UserXp
