package usecase

import (
	"context"
	"time"

	"github.com/eslsoft/lingua/internal/entity"
	"github.com/eslsoft/lingua/internal/repository"
)

// KnowledgeUsecase tracks per-unit mastery from the answer log.
type KnowledgeUsecase interface {
	RecordAnswer(ctx context.Context, userID int64, unitType entity.UnitType, unitID int64, correct bool) (*entity.UnitKnowledge, error)
	RecordSessionBatch(ctx context.Context, userID int64, unitType entity.UnitType, unitID int64, total, correct int64) (*entity.UnitKnowledge, error)
	ListKnowledge(ctx context.Context, query *repository.ListKnowledgeQuery) ([]entity.UnitKnowledge, int64, error)
}

// NewKnowledgeUsecase wires the repository with default behaviour.
func NewKnowledgeUsecase(repo repository.UnitKnowledgeRepository) KnowledgeUsecase {
	return &knowledgeUsecase{
		repo:  repo,
		clock: time.Now,
	}
}

type knowledgeUsecase struct {
	repo  repository.UnitKnowledgeRepository
	clock func() time.Time
}

func (u *knowledgeUsecase) RecordAnswer(ctx context.Context, userID int64, unitType entity.UnitType, unitID int64, correct bool) (*entity.UnitKnowledge, error) {
	knowledge, err := u.load(ctx, userID, unitType, unitID)
	if err != nil {
		return nil, err
	}

	knowledge.ApplyAnswer(u.clock(), correct)
	return u.repo.Upsert(ctx, knowledge)
}

func (u *knowledgeUsecase) RecordSessionBatch(ctx context.Context, userID int64, unitType entity.UnitType, unitID int64, total, correct int64) (*entity.UnitKnowledge, error) {
	if total <= 0 {
		return nil, entity.ErrInvalidBatchTotal
	}

	knowledge, err := u.load(ctx, userID, unitType, unitID)
	if err != nil {
		return nil, err
	}

	knowledge.ApplyBatch(u.clock(), total, correct)
	return u.repo.Upsert(ctx, knowledge)
}

func (u *knowledgeUsecase) ListKnowledge(ctx context.Context, query *repository.ListKnowledgeQuery) ([]entity.UnitKnowledge, int64, error) {
	return u.repo.List(ctx, query)
}

// load fetches the existing record or starts from the implicit zero state.
func (u *knowledgeUsecase) load(ctx context.Context, userID int64, unitType entity.UnitType, unitID int64) (*entity.UnitKnowledge, error) {
	if userID <= 0 {
		return nil, entity.ErrInvalidLearnerID
	}
	if !unitType.Valid() {
		return nil, entity.ErrInvalidUnitType
	}
	if unitID <= 0 {
		return nil, entity.ErrInvalidUnitID
	}

	existing, err := u.repo.Get(ctx, userID, unitType, unitID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	return &entity.UnitKnowledge{
		UserID:   userID,
		UnitType: unitType,
		UnitID:   unitID,
		State:    entity.KnowledgeStateNew,
	}, nil
}
