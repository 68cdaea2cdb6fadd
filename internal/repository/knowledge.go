package repository

import (
	"context"

	"github.com/eslsoft/lingua/internal/entity"
)

// ListKnowledgeQuery holds parameters for listing a learner's knowledge rows.
type ListKnowledgeQuery struct {
	Pagination
	FilterOrder

	UserID int64
}

// UnitKnowledgeRepository abstracts persistence for per-unit mastery records.
// Get returns (nil, nil) when no record exists yet; a missing row is the
// implicit zero state, not an error.
type UnitKnowledgeRepository interface {
	Get(ctx context.Context, userID int64, unitType entity.UnitType, unitID int64) (*entity.UnitKnowledge, error)
	Upsert(ctx context.Context, knowledge *entity.UnitKnowledge) (*entity.UnitKnowledge, error)
	ListByStates(ctx context.Context, userID int64, unitType entity.UnitType, states []entity.KnowledgeState) ([]entity.UnitKnowledge, error)
	List(ctx context.Context, query *ListKnowledgeQuery) ([]entity.UnitKnowledge, int64, error)
}
