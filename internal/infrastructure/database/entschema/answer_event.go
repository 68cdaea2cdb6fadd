package entschema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent holds the schema definition for the answer_events table.
// Rows are append-only; every graded answer becomes one row.
type AnswerEvent struct {
	ent.Schema
}

// Fields of the AnswerEvent.
func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("user_id"),
		field.String("kind").NotEmpty(),
		field.String("context_slug").Default(""),
		field.String("session_id").NotEmpty(),
		field.String("prompt").Default(""),
		field.String("expected").Default(""),
		field.String("given").Default(""),
		field.Bool("correct"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the AnswerEvent.
func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "session_id"),
		index.Fields("user_id", "created_at"),
		index.Fields("user_id", "kind", "context_slug"),
	}
}

// Annotations of the AnswerEvent.
func (AnswerEvent) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{
			Table: "answer_events",
		},
	}
}
