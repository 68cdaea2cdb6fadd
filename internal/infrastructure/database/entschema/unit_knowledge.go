package entschema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UnitKnowledge holds the schema definition for the unit_knowledge table.
// One row per (learner, unit); updates go through the upsert on the unique
// index.
type UnitKnowledge struct {
	ent.Schema
}

// Fields of the UnitKnowledge.
func (UnitKnowledge) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("user_id"),
		field.String("unit_type").NotEmpty(),
		field.Int64("unit_id"),
		field.Int64("total_attempts").Default(0),
		field.Int64("correct_count").Default(0),
		field.Int64("wrong_count").Default(0),
		field.Time("last_attempt_at"),
		field.Time("last_correct_at").Optional().Nillable(),
		field.Time("last_wrong_at").Optional().Nillable(),
		field.Int64("stability_score").Default(0),
		field.String("state").NotEmpty(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the UnitKnowledge.
func (UnitKnowledge) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "unit_type", "unit_id").Unique(),
		index.Fields("user_id", "unit_type", "state"),
	}
}

// Annotations of the UnitKnowledge.
func (UnitKnowledge) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{
			Table: "unit_knowledge",
		},
	}
}
