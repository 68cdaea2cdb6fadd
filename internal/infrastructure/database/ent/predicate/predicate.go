// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnswerEvent is the predicate function for answerevent builders.
type AnswerEvent func(*sql.Selector)

// Badge is the predicate function for badge builders.
type Badge func(*sql.Selector)

// IrregularVerb is the predicate function for irregularverb builders.
type IrregularVerb func(*sql.Selector)

// UnitKnowledge is the predicate function for unitknowledge builders.
type UnitKnowledge func(*sql.Selector)

// UserBadge is the predicate function for userbadge builders.
type UserBadge func(*sql.Selector)

// UserXp is the predicate function for userxp builders.
type UserXp func(*sql.Selector)

// VocabCluster is the predicate function for vocabcluster builders.
type VocabCluster func(*sql.Selector)

// VocabPack is the predicate function for vocabpack builders.
type VocabPack func(*sql.Selector)

// VocabSense is the predicate function for vocabsense builders.
type VocabSense func(*sql.Selector)

// XpEvent is the predicate function for xpevent builders.
type XpEvent func(*sql.Selector)
