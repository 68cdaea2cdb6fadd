// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/vocabsense"
)

// VocabSense is the model entity for the VocabSense schema.
type VocabSense struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Word holds the value of the "word" field.
	Word string `json:"word,omitempty"`
	// Translation holds the value of the "translation" field.
	Translation string `json:"translation,omitempty"`
	// PackSlug holds the value of the "pack_slug" field.
	PackSlug string `json:"pack_slug,omitempty"`
	// ClusterSlug holds the value of the "cluster_slug" field.
	ClusterSlug  string `json:"cluster_slug,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*VocabSense) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case vocabsense.FieldID:
			values[i] = new(sql.NullInt64)
		case vocabsense.FieldWord, vocabsense.FieldTranslation, vocabsense.FieldPackSlug, vocabsense.FieldClusterSlug:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the VocabSense fields.
func (vs *VocabSense) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case vocabsense.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			vs.ID = int(value.Int64)
		case vocabsense.FieldWord:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field word", values[i])
			} else if value.Valid {
				vs.Word = value.String
			}
		case vocabsense.FieldTranslation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field translation", values[i])
			} else if value.Valid {
				vs.Translation = value.String
			}
		case vocabsense.FieldPackSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pack_slug", values[i])
			} else if value.Valid {
				vs.PackSlug = value.String
			}
		case vocabsense.FieldClusterSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cluster_slug", values[i])
			} else if value.Valid {
				vs.ClusterSlug = value.String
			}
		default:
			vs.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the VocabSense.
// This includes values selected through modifiers, order, etc.
func (vs *VocabSense) Value(name string) (ent.Value, error) {
	return vs.selectValues.Get(name)
}

// Update returns a builder for updating this VocabSense.
// Note that you need to call VocabSense.Unwrap() before calling this method if this VocabSense
// was returned from a transaction, and the transaction was committed or rolled back.
func (vs *VocabSense) Update() *VocabSenseUpdateOne {
	return NewVocabSenseClient(vs.config).UpdateOne(vs)
}

// Unwrap unwraps the VocabSense entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (vs *VocabSense) Unwrap() *VocabSense {
	_tx, ok := vs.config.driver.(*txDriver)
	if !ok {
		panic("ent: VocabSense is not a transactional entity")
	}
	vs.config.driver = _tx.drv
	return vs
}

// String implements the fmt.Stringer.
func (vs *VocabSense) String() string {
	var builder strings.Builder
	builder.WriteString("VocabSense(")
	builder.WriteString(fmt.Sprintf("id=%v, ", vs.ID))
	builder.WriteString("word=")
	builder.WriteString(vs.Word)
	builder.WriteString(", ")
	builder.WriteString("translation=")
	builder.WriteString(vs.Translation)
	builder.WriteString(", ")
	builder.WriteString("pack_slug=")
	builder.WriteString(vs.PackSlug)
	builder.WriteString(", ")
	builder.WriteString("cluster_slug=")
	builder.WriteString(vs.ClusterSlug)
	builder.WriteByte(')')
	return builder.String()
}

// VocabSenses is a parsable slice of VocabSense.
type VocabSenses []*VocabSense
