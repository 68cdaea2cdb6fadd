// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt64},
		{Name: "kind", Type: field.TypeString},
		{Name: "context_slug", Type: field.TypeString, Default: ""},
		{Name: "session_id", Type: field.TypeString},
		{Name: "prompt", Type: field.TypeString, Default: ""},
		{Name: "expected", Type: field.TypeString, Default: ""},
		{Name: "given", Type: field.TypeString, Default: ""},
		{Name: "correct", Type: field.TypeBool},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_user_id_session_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1], AnswerEventsColumns[4]},
			},
			{
				Name:    "answerevent_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1], AnswerEventsColumns[9]},
			},
			{
				Name:    "answerevent_user_id_kind_context_slug",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1], AnswerEventsColumns[2], AnswerEventsColumns[3]},
			},
		},
	}
	// BadgesColumns holds the columns for the "badges" table.
	BadgesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "slug", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Default: ""},
		{Name: "icon", Type: field.TypeString, Default: ""},
	}
	// BadgesTable holds the schema information for the "badges" table.
	BadgesTable = &schema.Table{
		Name:       "badges",
		Columns:    BadgesColumns,
		PrimaryKey: []*schema.Column{BadgesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "badge_slug",
				Unique:  true,
				Columns: []*schema.Column{BadgesColumns[1]},
			},
		},
	}
	// IrregularVerbsColumns holds the columns for the "irregular_verbs" table.
	IrregularVerbsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "base", Type: field.TypeString},
		{Name: "past", Type: field.TypeString},
		{Name: "participle", Type: field.TypeString},
		{Name: "translation", Type: field.TypeString, Default: ""},
	}
	// IrregularVerbsTable holds the schema information for the "irregular_verbs" table.
	IrregularVerbsTable = &schema.Table{
		Name:       "irregular_verbs",
		Columns:    IrregularVerbsColumns,
		PrimaryKey: []*schema.Column{IrregularVerbsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "irregularverb_base",
				Unique:  true,
				Columns: []*schema.Column{IrregularVerbsColumns[1]},
			},
		},
	}
	// UnitKnowledgeColumns holds the columns for the "unit_knowledge" table.
	UnitKnowledgeColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt64},
		{Name: "unit_type", Type: field.TypeString},
		{Name: "unit_id", Type: field.TypeInt64},
		{Name: "total_attempts", Type: field.TypeInt64, Default: 0},
		{Name: "correct_count", Type: field.TypeInt64, Default: 0},
		{Name: "wrong_count", Type: field.TypeInt64, Default: 0},
		{Name: "last_attempt_at", Type: field.TypeTime},
		{Name: "last_correct_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_wrong_at", Type: field.TypeTime, Nullable: true},
		{Name: "stability_score", Type: field.TypeInt64, Default: 0},
		{Name: "state", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UnitKnowledgeTable holds the schema information for the "unit_knowledge" table.
	UnitKnowledgeTable = &schema.Table{
		Name:       "unit_knowledge",
		Columns:    UnitKnowledgeColumns,
		PrimaryKey: []*schema.Column{UnitKnowledgeColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "unitknowledge_user_id_unit_type_unit_id",
				Unique:  true,
				Columns: []*schema.Column{UnitKnowledgeColumns[1], UnitKnowledgeColumns[2], UnitKnowledgeColumns[3]},
			},
			{
				Name:    "unitknowledge_user_id_unit_type_state",
				Unique:  false,
				Columns: []*schema.Column{UnitKnowledgeColumns[1], UnitKnowledgeColumns[2], UnitKnowledgeColumns[11]},
			},
		},
	}
	// UserBadgesColumns holds the columns for the "user_badges" table.
	UserBadgesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt64},
		{Name: "badge_slug", Type: field.TypeString},
		{Name: "awarded_at", Type: field.TypeTime},
	}
	// UserBadgesTable holds the schema information for the "user_badges" table.
	UserBadgesTable = &schema.Table{
		Name:       "user_badges",
		Columns:    UserBadgesColumns,
		PrimaryKey: []*schema.Column{UserBadgesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "userbadge_user_id_badge_slug",
				Unique:  true,
				Columns: []*schema.Column{UserBadgesColumns[1], UserBadgesColumns[2]},
			},
		},
	}
	// UserXpColumns holds the columns for the "user_xp" table.
	UserXpColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt64},
		{Name: "xp_total", Type: field.TypeInt64, Default: 0},
		{Name: "level", Type: field.TypeInt64, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UserXpTable holds the schema information for the "user_xp" table.
	UserXpTable = &schema.Table{
		Name:       "user_xp",
		Columns:    UserXpColumns,
		PrimaryKey: []*schema.Column{UserXpColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "userxp_user_id",
				Unique:  true,
				Columns: []*schema.Column{UserXpColumns[1]},
			},
		},
	}
	// VocabClustersColumns holds the columns for the "vocab_clusters" table.
	VocabClustersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "slug", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString, Default: ""},
	}
	// VocabClustersTable holds the schema information for the "vocab_clusters" table.
	VocabClustersTable = &schema.Table{
		Name:       "vocab_clusters",
		Columns:    VocabClustersColumns,
		PrimaryKey: []*schema.Column{VocabClustersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "vocabcluster_slug",
				Unique:  true,
				Columns: []*schema.Column{VocabClustersColumns[1]},
			},
		},
	}
	// VocabPacksColumns holds the columns for the "vocab_packs" table.
	VocabPacksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "slug", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Default: ""},
		{Name: "language", Type: field.TypeString, Default: "en"},
		{Name: "flagship", Type: field.TypeBool, Default: false},
	}
	// VocabPacksTable holds the schema information for the "vocab_packs" table.
	VocabPacksTable = &schema.Table{
		Name:       "vocab_packs",
		Columns:    VocabPacksColumns,
		PrimaryKey: []*schema.Column{VocabPacksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "vocabpack_slug",
				Unique:  true,
				Columns: []*schema.Column{VocabPacksColumns[1]},
			},
		},
	}
	// VocabSensesColumns holds the columns for the "vocab_senses" table.
	VocabSensesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "word", Type: field.TypeString},
		{Name: "translation", Type: field.TypeString, Default: ""},
		{Name: "pack_slug", Type: field.TypeString, Default: ""},
		{Name: "cluster_slug", Type: field.TypeString, Default: ""},
	}
	// VocabSensesTable holds the schema information for the "vocab_senses" table.
	VocabSensesTable = &schema.Table{
		Name:       "vocab_senses",
		Columns:    VocabSensesColumns,
		PrimaryKey: []*schema.Column{VocabSensesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "vocabsense_word",
				Unique:  false,
				Columns: []*schema.Column{VocabSensesColumns[1]},
			},
			{
				Name:    "vocabsense_pack_slug",
				Unique:  false,
				Columns: []*schema.Column{VocabSensesColumns[3]},
			},
			{
				Name:    "vocabsense_cluster_slug",
				Unique:  false,
				Columns: []*schema.Column{VocabSensesColumns[4]},
			},
		},
	}
	// XpEventsColumns holds the columns for the "xp_events" table.
	XpEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt64},
		{Name: "source", Type: field.TypeString},
		{Name: "source_slug", Type: field.TypeString, Default: ""},
		{Name: "session_id", Type: field.TypeString},
		{Name: "dedupe_key", Type: field.TypeString},
		{Name: "awarded_on", Type: field.TypeString},
		{Name: "xp", Type: field.TypeInt64},
		{Name: "perfect", Type: field.TypeBool, Default: false},
		{Name: "meta", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// XpEventsTable holds the schema information for the "xp_events" table.
	XpEventsTable = &schema.Table{
		Name:       "xp_events",
		Columns:    XpEventsColumns,
		PrimaryKey: []*schema.Column{XpEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "xpevent_user_id_dedupe_key_awarded_on",
				Unique:  true,
				Columns: []*schema.Column{XpEventsColumns[1], XpEventsColumns[5], XpEventsColumns[6]},
			},
			{
				Name:    "xpevent_user_id_session_id",
				Unique:  false,
				Columns: []*schema.Column{XpEventsColumns[1], XpEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		BadgesTable,
		IrregularVerbsTable,
		UnitKnowledgeTable,
		UserBadgesTable,
		UserXpTable,
		VocabClustersTable,
		VocabPacksTable,
		VocabSensesTable,
		XpEventsTable,
	}
)

func init() {
	AnswerEventsTable.Annotation = &entsql.Annotation{
		Table: "answer_events",
	}
	BadgesTable.Annotation = &entsql.Annotation{
		Table: "badges",
	}
	IrregularVerbsTable.Annotation = &entsql.Annotation{
		Table: "irregular_verbs",
	}
	UnitKnowledgeTable.Annotation = &entsql.Annotation{
		Table: "unit_knowledge",
	}
	UserBadgesTable.Annotation = &entsql.Annotation{
		Table: "user_badges",
	}
	UserXpTable.Annotation = &entsql.Annotation{
		Table: "user_xp",
	}
	VocabClustersTable.Annotation = &entsql.Annotation{
		Table: "vocab_clusters",
	}
	VocabPacksTable.Annotation = &entsql.Annotation{
		Table: "vocab_packs",
	}
	VocabSensesTable.Annotation = &entsql.Annotation{
		Table: "vocab_senses",
	}
	XpEventsTable.Annotation = &entsql.Annotation{
		Table: "xp_events",
	}
}
