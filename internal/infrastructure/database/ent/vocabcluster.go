// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/vocabcluster"
)

// VocabCluster is the model entity for the VocabCluster schema.
type VocabCluster struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Slug holds the value of the "slug" field.
	Slug string `json:"slug,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Topic holds the value of the "topic" field.
	Topic        string `json:"topic,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*VocabCluster) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case vocabcluster.FieldID:
			values[i] = new(sql.NullInt64)
		case vocabcluster.FieldSlug, vocabcluster.FieldName, vocabcluster.FieldTopic:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the VocabCluster fields.
func (vc *VocabCluster) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case vocabcluster.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			vc.ID = int(value.Int64)
		case vocabcluster.FieldSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slug", values[i])
			} else if value.Valid {
				vc.Slug = value.String
			}
		case vocabcluster.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				vc.Name = value.String
			}
		case vocabcluster.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				vc.Topic = value.String
			}
		default:
			vc.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the VocabCluster.
// This includes values selected through modifiers, order, etc.
func (vc *VocabCluster) Value(name string) (ent.Value, error) {
	return vc.selectValues.Get(name)
}

// Update returns a builder for updating this VocabCluster.
// Note that you need to call VocabCluster.Unwrap() before calling this method if this VocabCluster
// was returned from a transaction, and the transaction was committed or rolled back.
func (vc *VocabCluster) Update() *VocabClusterUpdateOne {
	return NewVocabClusterClient(vc.config).UpdateOne(vc)
}

// Unwrap unwraps the VocabCluster entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (vc *VocabCluster) Unwrap() *VocabCluster {
	_tx, ok := vc.config.driver.(*txDriver)
	if !ok {
		panic("ent: VocabCluster is not a transactional entity")
	}
	vc.config.driver = _tx.drv
	return vc
}

// String implements the fmt.Stringer.
func (vc *VocabCluster) String() string {
	var builder strings.Builder
	builder.WriteString("VocabCluster(")
	builder.WriteString(fmt.Sprintf("id=%v, ", vc.ID))
	builder.WriteString("slug=")
	builder.WriteString(vc.Slug)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(vc.Name)
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(vc.Topic)
	builder.WriteByte(')')
	return builder.String()
}

// VocabClusters is a parsable slice of VocabCluster.
type VocabClusters []*VocabCluster
