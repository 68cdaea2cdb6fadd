// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/userbadge"
)

// UserBadge is the model entity for the UserBadge schema.
type UserBadge struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID int64 `json:"user_id,omitempty"`
	// BadgeSlug holds the value of the "badge_slug" field.
	BadgeSlug string `json:"badge_slug,omitempty"`
	// AwardedAt holds the value of the "awarded_at" field.
	AwardedAt    time.Time `json:"awarded_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UserBadge) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case userbadge.FieldID, userbadge.FieldUserID:
			values[i] = new(sql.NullInt64)
		case userbadge.FieldBadgeSlug:
			values[i] = new(sql.NullString)
		case userbadge.FieldAwardedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UserBadge fields.
func (ub *UserBadge) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case userbadge.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			ub.ID = int(value.Int64)
		case userbadge.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				ub.UserID = value.Int64
			}
		case userbadge.FieldBadgeSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field badge_slug", values[i])
			} else if value.Valid {
				ub.BadgeSlug = value.String
			}
		case userbadge.FieldAwardedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field awarded_at", values[i])
			} else if value.Valid {
				ub.AwardedAt = value.Time
			}
		default:
			ub.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UserBadge.
// This includes values selected through modifiers, order, etc.
func (ub *UserBadge) Value(name string) (ent.Value, error) {
	return ub.selectValues.Get(name)
}

// Update returns a builder for updating this UserBadge.
// Note that you need to call UserBadge.Unwrap() before calling this method if this UserBadge
// was returned from a transaction, and the transaction was committed or rolled back.
func (ub *UserBadge) Update() *UserBadgeUpdateOne {
	return NewUserBadgeClient(ub.config).UpdateOne(ub)
}

// Unwrap unwraps the UserBadge entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ub *UserBadge) Unwrap() *UserBadge {
	_tx, ok := ub.config.driver.(*txDriver)
	if !ok {
		panic("ent: UserBadge is not a transactional entity")
	}
	ub.config.driver = _tx.drv
	return ub
}

// String implements the fmt.Stringer.
func (ub *UserBadge) String() string {
	var builder strings.Builder
	builder.WriteString("UserBadge(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ub.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", ub.UserID))
	builder.WriteString(", ")
	builder.WriteString("badge_slug=")
	builder.WriteString(ub.BadgeSlug)
	builder.WriteString(", ")
	builder.WriteString("awarded_at=")
	builder.WriteString(ub.AwardedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UserBadges is a parsable slice of UserBadge.
type UserBadges []*UserBadge
