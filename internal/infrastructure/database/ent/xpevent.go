// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/xpevent"
)

// XpEvent is the model entity for the XpEvent schema.
type XpEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID int64 `json:"user_id,omitempty"`
	// Source holds the value of the "source" field.
	Source string `json:"source,omitempty"`
	// SourceSlug holds the value of the "source_slug" field.
	SourceSlug string `json:"source_slug,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// DedupeKey holds the value of the "dedupe_key" field.
	DedupeKey string `json:"dedupe_key,omitempty"`
	// AwardedOn holds the value of the "awarded_on" field.
	AwardedOn string `json:"awarded_on,omitempty"`
	// Xp holds the value of the "xp" field.
	Xp int64 `json:"xp,omitempty"`
	// Perfect holds the value of the "perfect" field.
	Perfect bool `json:"perfect,omitempty"`
	// Meta holds the value of the "meta" field.
	Meta map[string]string `json:"meta,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*XpEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case xpevent.FieldMeta:
			values[i] = new([]byte)
		case xpevent.FieldPerfect:
			values[i] = new(sql.NullBool)
		case xpevent.FieldID, xpevent.FieldUserID, xpevent.FieldXp:
			values[i] = new(sql.NullInt64)
		case xpevent.FieldSource, xpevent.FieldSourceSlug, xpevent.FieldSessionID, xpevent.FieldDedupeKey, xpevent.FieldAwardedOn:
			values[i] = new(sql.NullString)
		case xpevent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the XpEvent fields.
func (xe *XpEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case xpevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			xe.ID = int(value.Int64)
		case xpevent.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				xe.UserID = value.Int64
			}
		case xpevent.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				xe.Source = value.String
			}
		case xpevent.FieldSourceSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_slug", values[i])
			} else if value.Valid {
				xe.SourceSlug = value.String
			}
		case xpevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				xe.SessionID = value.String
			}
		case xpevent.FieldDedupeKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dedupe_key", values[i])
			} else if value.Valid {
				xe.DedupeKey = value.String
			}
		case xpevent.FieldAwardedOn:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field awarded_on", values[i])
			} else if value.Valid {
				xe.AwardedOn = value.String
			}
		case xpevent.FieldXp:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field xp", values[i])
			} else if value.Valid {
				xe.Xp = value.Int64
			}
		case xpevent.FieldPerfect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field perfect", values[i])
			} else if value.Valid {
				xe.Perfect = value.Bool
			}
		case xpevent.FieldMeta:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field meta", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &xe.Meta); err != nil {
					return fmt.Errorf("unmarshal field meta: %w", err)
				}
			}
		case xpevent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				xe.CreatedAt = value.Time
			}
		default:
			xe.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the XpEvent.
// This includes values selected through modifiers, order, etc.
func (xe *XpEvent) Value(name string) (ent.Value, error) {
	return xe.selectValues.Get(name)
}

// Update returns a builder for updating this XpEvent.
// Note that you need to call XpEvent.Unwrap() before calling this method if this XpEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (xe *XpEvent) Update() *XpEventUpdateOne {
	return NewXpEventClient(xe.config).UpdateOne(xe)
}

// Unwrap unwraps the XpEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (xe *XpEvent) Unwrap() *XpEvent {
	_tx, ok := xe.config.driver.(*txDriver)
	if !ok {
		panic("ent: XpEvent is not a transactional entity")
	}
	xe.config.driver = _tx.drv
	return xe
}

// String implements the fmt.Stringer.
func (xe *XpEvent) String() string {
	var builder strings.Builder
	builder.WriteString("XpEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", xe.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", xe.UserID))
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(xe.Source)
	builder.WriteString(", ")
	builder.WriteString("source_slug=")
	builder.WriteString(xe.SourceSlug)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(xe.SessionID)
	builder.WriteString(", ")
	builder.WriteString("dedupe_key=")
	builder.WriteString(xe.DedupeKey)
	builder.WriteString(", ")
	builder.WriteString("awarded_on=")
	builder.WriteString(xe.AwardedOn)
	builder.WriteString(", ")
	builder.WriteString("xp=")
	builder.WriteString(fmt.Sprintf("%v", xe.Xp))
	builder.WriteString(", ")
	builder.WriteString("perfect=")
	builder.WriteString(fmt.Sprintf("%v", xe.Perfect))
	builder.WriteString(", ")
	builder.WriteString("meta=")
	builder.WriteString(fmt.Sprintf("%v", xe.Meta))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(xe.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// XpEvents is a parsable slice of XpEvent.
type XpEvents []*XpEvent
