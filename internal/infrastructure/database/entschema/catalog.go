package entschema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// VocabPack holds the schema definition for the vocab_packs table. At most
// one pack should carry the flagship flag; it anchors the cold-start
// suggestion and the foundation badge.
type VocabPack struct {
	ent.Schema
}

// Fields of the VocabPack.
func (VocabPack) Fields() []ent.Field {
	return []ent.Field{
		field.String("slug").NotEmpty(),
		field.String("name").NotEmpty(),
		field.String("description").Default(""),
		field.String("language").Default("en"),
		field.Bool("flagship").Default(false),
	}
}

// Indexes of the VocabPack.
func (VocabPack) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("slug").Unique(),
	}
}

// Annotations of the VocabPack.
func (VocabPack) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{
			Table: "vocab_packs",
		},
	}
}

// VocabCluster holds the schema definition for the vocab_clusters table.
type VocabCluster struct {
	ent.Schema
}

// Fields of the VocabCluster.
func (VocabCluster) Fields() []ent.Field {
	return []ent.Field{
		field.String("slug").NotEmpty(),
		field.String("name").NotEmpty(),
		field.String("topic").Default(""),
	}
}

// Indexes of the VocabCluster.
func (VocabCluster) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("slug").Unique(),
	}
}

// Annotations of the VocabCluster.
func (VocabCluster) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{
			Table: "vocab_clusters",
		},
	}
}

// VocabSense holds the schema definition for the vocab_senses table.
type VocabSense struct {
	ent.Schema
}

// Fields of the VocabSense.
func (VocabSense) Fields() []ent.Field {
	return []ent.Field{
		field.String("word").NotEmpty(),
		field.String("translation").Default(""),
		field.String("pack_slug").Default(""),
		field.String("cluster_slug").Default(""),
	}
}

// Indexes of the VocabSense.
func (VocabSense) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("word"),
		index.Fields("pack_slug"),
		index.Fields("cluster_slug"),
	}
}

// Annotations of the VocabSense.
func (VocabSense) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{
			Table: "vocab_senses",
		},
	}
}

// IrregularVerb holds the schema definition for the irregular_verbs table.
// Forms with accepted variants keep them slash-separated, e.g. "got/gotten".
type IrregularVerb struct {
	ent.Schema
}

// Fields of the IrregularVerb.
func (IrregularVerb) Fields() []ent.Field {
	return []ent.Field{
		field.String("base").NotEmpty(),
		field.String("past").NotEmpty(),
		field.String("participle").NotEmpty(),
		field.String("translation").Default(""),
	}
}

// Indexes of the IrregularVerb.
func (IrregularVerb) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("base").Unique(),
	}
}

// Annotations of the IrregularVerb.
func (IrregularVerb) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{
			Table: "irregular_verbs",
		},
	}
}
