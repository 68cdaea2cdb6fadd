package entschema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UserXp holds the schema definition for the user_xp table.
type UserXp struct {
	ent.Schema
}

// Fields of the UserXp.
func (UserXp) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("user_id"),
		field.Int64("xp_total").Default(0),
		field.Int64("level").Default(0),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the UserXp.
func (UserXp) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id").Unique(),
	}
}

// Annotations of the UserXp.
func (UserXp) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{
			Table: "user_xp",
		},
	}
}
