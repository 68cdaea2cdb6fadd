// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/irregularverb"
)

// IrregularVerb is the model entity for the IrregularVerb schema.
type IrregularVerb struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Base holds the value of the "base" field.
	Base string `json:"base,omitempty"`
	// Past holds the value of the "past" field.
	Past string `json:"past,omitempty"`
	// Participle holds the value of the "participle" field.
	Participle string `json:"participle,omitempty"`
	// Translation holds the value of the "translation" field.
	Translation  string `json:"translation,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*IrregularVerb) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case irregularverb.FieldID:
			values[i] = new(sql.NullInt64)
		case irregularverb.FieldBase, irregularverb.FieldPast, irregularverb.FieldParticiple, irregularverb.FieldTranslation:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the IrregularVerb fields.
func (iv *IrregularVerb) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case irregularverb.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			iv.ID = int(value.Int64)
		case irregularverb.FieldBase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field base", values[i])
			} else if value.Valid {
				iv.Base = value.String
			}
		case irregularverb.FieldPast:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field past", values[i])
			} else if value.Valid {
				iv.Past = value.String
			}
		case irregularverb.FieldParticiple:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field participle", values[i])
			} else if value.Valid {
				iv.Participle = value.String
			}
		case irregularverb.FieldTranslation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field translation", values[i])
			} else if value.Valid {
				iv.Translation = value.String
			}
		default:
			iv.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the IrregularVerb.
// This includes values selected through modifiers, order, etc.
func (iv *IrregularVerb) Value(name string) (ent.Value, error) {
	return iv.selectValues.Get(name)
}

// Update returns a builder for updating this IrregularVerb.
// Note that you need to call IrregularVerb.Unwrap() before calling this method if this IrregularVerb
// was returned from a transaction, and the transaction was committed or rolled back.
func (iv *IrregularVerb) Update() *IrregularVerbUpdateOne {
	return NewIrregularVerbClient(iv.config).UpdateOne(iv)
}

// Unwrap unwraps the IrregularVerb entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (iv *IrregularVerb) Unwrap() *IrregularVerb {
	_tx, ok := iv.config.driver.(*txDriver)
	if !ok {
		panic("ent: IrregularVerb is not a transactional entity")
	}
	iv.config.driver = _tx.drv
	return iv
}

// String implements the fmt.Stringer.
func (iv *IrregularVerb) String() string {
	var builder strings.Builder
	builder.WriteString("IrregularVerb(")
	builder.WriteString(fmt.Sprintf("id=%v, ", iv.ID))
	builder.WriteString("base=")
	builder.WriteString(iv.Base)
	builder.WriteString(", ")
	builder.WriteString("past=")
	builder.WriteString(iv.Past)
	builder.WriteString(", ")
	builder.WriteString("participle=")
	builder.WriteString(iv.Participle)
	builder.WriteString(", ")
	builder.WriteString("translation=")
	builder.WriteString(iv.Translation)
	builder.WriteByte(')')
	return builder.String()
}

// IrregularVerbs is a parsable slice of IrregularVerb.
type IrregularVerbs []*IrregularVerb
