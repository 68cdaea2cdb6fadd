// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/vocabpack"
)

// VocabPack is the model entity for the VocabPack schema.
type VocabPack struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Slug holds the value of the "slug" field.
	Slug string `json:"slug,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Language holds the value of the "language" field.
	Language string `json:"language,omitempty"`
	// Flagship holds the value of the "flagship" field.
	Flagship     bool `json:"flagship,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*VocabPack) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case vocabpack.FieldFlagship:
			values[i] = new(sql.NullBool)
		case vocabpack.FieldID:
			values[i] = new(sql.NullInt64)
		case vocabpack.FieldSlug, vocabpack.FieldName, vocabpack.FieldDescription, vocabpack.FieldLanguage:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the VocabPack fields.
func (vp *VocabPack) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case vocabpack.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			vp.ID = int(value.Int64)
		case vocabpack.FieldSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slug", values[i])
			} else if value.Valid {
				vp.Slug = value.String
			}
		case vocabpack.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				vp.Name = value.String
			}
		case vocabpack.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				vp.Description = value.String
			}
		case vocabpack.FieldLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language", values[i])
			} else if value.Valid {
				vp.Language = value.String
			}
		case vocabpack.FieldFlagship:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field flagship", values[i])
			} else if value.Valid {
				vp.Flagship = value.Bool
			}
		default:
			vp.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the VocabPack.
// This includes values selected through modifiers, order, etc.
func (vp *VocabPack) Value(name string) (ent.Value, error) {
	return vp.selectValues.Get(name)
}

// Update returns a builder for updating this VocabPack.
// Note that you need to call VocabPack.Unwrap() before calling this method if this VocabPack
// was returned from a transaction, and the transaction was committed or rolled back.
func (vp *VocabPack) Update() *VocabPackUpdateOne {
	return NewVocabPackClient(vp.config).UpdateOne(vp)
}

// Unwrap unwraps the VocabPack entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (vp *VocabPack) Unwrap() *VocabPack {
	_tx, ok := vp.config.driver.(*txDriver)
	if !ok {
		panic("ent: VocabPack is not a transactional entity")
	}
	vp.config.driver = _tx.drv
	return vp
}

// String implements the fmt.Stringer.
func (vp *VocabPack) String() string {
	var builder strings.Builder
	builder.WriteString("VocabPack(")
	builder.WriteString(fmt.Sprintf("id=%v, ", vp.ID))
	builder.WriteString("slug=")
	builder.WriteString(vp.Slug)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(vp.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(vp.Description)
	builder.WriteString(", ")
	builder.WriteString("language=")
	builder.WriteString(vp.Language)
	builder.WriteString(", ")
	builder.WriteString("flagship=")
	builder.WriteString(fmt.Sprintf("%v", vp.Flagship))
	builder.WriteByte(')')
	return builder.String()
}

// VocabPacks is a parsable slice of VocabPack.
type VocabPacks []*VocabPack
