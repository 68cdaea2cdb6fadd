package entschema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// XpEvent holds the schema definition for the xp_events table. The unique
// (user_id, dedupe_key, awarded_on) index is the once-per-day award guard;
// concurrent completions race on the insert and the loser gets a constraint
// error.
type XpEvent struct {
	ent.Schema
}

// Fields of the XpEvent.
func (XpEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("user_id"),
		field.String("source").NotEmpty(),
		field.String("source_slug").Default(""),
		field.String("session_id").NotEmpty(),
		field.String("dedupe_key").NotEmpty(),
		field.String("awarded_on").NotEmpty(),
		field.Int64("xp"),
		field.Bool("perfect").Default(false),
		field.JSON("meta", map[string]string{}).
			Default(map[string]string{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the XpEvent.
func (XpEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "dedupe_key", "awarded_on").Unique(),
		index.Fields("user_id", "session_id"),
	}
}

// Annotations of the XpEvent.
func (XpEvent) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{
			Table: "xp_events",
		},
	}
}
