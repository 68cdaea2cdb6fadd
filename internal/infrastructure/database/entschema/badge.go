package entschema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Badge holds the schema definition for the badges catalog table.
type Badge struct {
	ent.Schema
}

// Fields of the Badge.
func (Badge) Fields() []ent.Field {
	return []ent.Field{
		field.String("slug").NotEmpty(),
		field.String("name").NotEmpty(),
		field.String("description").Default(""),
		field.String("icon").Default(""),
	}
}

// Indexes of the Badge.
func (Badge) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("slug").Unique(),
	}
}

// Annotations of the Badge.
func (Badge) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{
			Table: "badges",
		},
	}
}

// UserBadge holds the schema definition for the user_badges table. The unique
// (user_id, badge_slug) index makes each badge a once-per-learner grant.
type UserBadge struct {
	ent.Schema
}

// Fields of the UserBadge.
func (UserBadge) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("user_id"),
		field.String("badge_slug").NotEmpty(),
		field.Time("awarded_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the UserBadge.
func (UserBadge) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "badge_slug").Unique(),
	}
}

// Annotations of the UserBadge.
func (UserBadge) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{
			Table: "user_badges",
		},
	}
}
