package repository

import (
	"context"
	"fmt"
	"strings"

	"entgo.io/ent/dialect/sql"
	"github.com/samber/lo"

	"github.com/eslsoft/lingua/internal/entity"
	entdb "github.com/eslsoft/lingua/internal/infrastructure/database/ent"
	entunitknowledge "github.com/eslsoft/lingua/internal/infrastructure/database/ent/unitknowledge"
	"github.com/eslsoft/lingua/internal/repository"
	"github.com/eslsoft/lingua/pkg/filterexpr"
)

type UnitKnowledgeRepository struct {
	client *entdb.Client
}

// NewUnitKnowledgeRepository constructs an ent-backed mastery store.
func NewUnitKnowledgeRepository(client *entdb.Client) repository.UnitKnowledgeRepository {
	return &UnitKnowledgeRepository{client: client}
}

type listKnowledgeParams struct {
	UnitTypes     []string
	States        []string
	State         *string
	WrongMin      *int64
	WrongMax      *int64
	AttemptsMin   *int64
	AttemptsMax   *int64
	StabilityMin  *int64
	StabilityMax  *int64
	OrderKey      string
	OrderDesc     bool
	OrderTiebreak string
}

func (r *UnitKnowledgeRepository) Get(ctx context.Context, userID int64, unitType entity.UnitType, unitID int64) (*entity.UnitKnowledge, error) {
	rec, err := r.client.UnitKnowledge.Query().
		Where(
			entunitknowledge.UserIDEQ(userID),
			entunitknowledge.UnitTypeEQ(string(unitType)),
			entunitknowledge.UnitIDEQ(unitID),
		).
		First(ctx)
	if err != nil {
		if entdb.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get unit knowledge: %w", err)
	}
	return mapEntUnitKnowledge(rec), nil
}

func (r *UnitKnowledgeRepository) Upsert(ctx context.Context, knowledge *entity.UnitKnowledge) (*entity.UnitKnowledge, error) {
	builder := r.client.UnitKnowledge.Create().
		SetUserID(knowledge.UserID).
		SetUnitType(string(knowledge.UnitType)).
		SetUnitID(knowledge.UnitID).
		SetTotalAttempts(knowledge.TotalAttempts).
		SetCorrectCount(knowledge.CorrectCount).
		SetWrongCount(knowledge.WrongCount).
		SetLastAttemptAt(knowledge.LastAttemptAt).
		SetNillableLastCorrectAt(knowledge.LastCorrectAt).
		SetNillableLastWrongAt(knowledge.LastWrongAt).
		SetStabilityScore(knowledge.StabilityScore).
		SetState(string(knowledge.State)).
		SetCreatedAt(knowledge.CreatedAt).
		SetUpdatedAt(knowledge.UpdatedAt)

	err := builder.
		OnConflictColumns(
			entunitknowledge.FieldUserID,
			entunitknowledge.FieldUnitType,
			entunitknowledge.FieldUnitID,
		).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("upsert unit knowledge: %w", err)
	}

	return r.Get(ctx, knowledge.UserID, knowledge.UnitType, knowledge.UnitID)
}

func (r *UnitKnowledgeRepository) ListByStates(ctx context.Context, userID int64, unitType entity.UnitType, states []entity.KnowledgeState) ([]entity.UnitKnowledge, error) {
	qbuilder := r.client.UnitKnowledge.Query().
		Where(
			entunitknowledge.UserIDEQ(userID),
			entunitknowledge.UnitTypeEQ(string(unitType)),
		)
	if len(states) > 0 {
		raw := lo.Map(states, func(s entity.KnowledgeState, _ int) string { return string(s) })
		qbuilder.Where(entunitknowledge.StateIn(raw...))
	}

	rows, err := qbuilder.Order(entunitknowledge.ByUnitID()).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list unit knowledge by state: %w", err)
	}
	return mapEntUnitKnowledgeRows(rows), nil
}

func (r *UnitKnowledgeRepository) List(ctx context.Context, query *repository.ListKnowledgeQuery) ([]entity.UnitKnowledge, int64, error) {
	var params listKnowledgeParams
	if err := filterexpr.Bind(query, &params, listKnowledgeSchema); err != nil {
		return nil, 0, err
	}

	qbuilder := r.client.UnitKnowledge.Query().
		Where(entunitknowledge.UserIDEQ(query.UserID))

	applyKnowledgeFilters(qbuilder, params)

	total, err := qbuilder.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count unit knowledge: %w", err)
	}

	applyKnowledgeOrdering(qbuilder, params)

	offset := query.Offset()
	if offset > 0 {
		qbuilder.Offset(int(offset))
	}
	if query.PageSize > 0 {
		qbuilder.Limit(int(query.PageSize))
	}

	rows, err := qbuilder.All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list unit knowledge: %w", err)
	}

	return mapEntUnitKnowledgeRows(rows), int64(total), nil
}

// normalizeFilterValues lowercases, trims and dedupes the raw values from a
// CEL "in" list; empty entries are dropped.
func normalizeFilterValues(in []string) []string {
	values := lo.FilterMap(in, func(item string, _ int) (string, bool) {
		trimmed := strings.ToLower(strings.TrimSpace(item))
		return trimmed, trimmed != ""
	})
	return lo.Uniq(values)
}

func applyKnowledgeFilters(q *entdb.UnitKnowledgeQuery, params listKnowledgeParams) {
	if types := normalizeFilterValues(params.UnitTypes); len(types) > 0 {
		q.Where(entunitknowledge.UnitTypeIn(types...))
	}
	if states := normalizeFilterValues(params.States); len(states) > 0 {
		q.Where(entunitknowledge.StateIn(states...))
	}
	if params.State != nil {
		q.Where(entunitknowledge.StateEQ(*params.State))
	}
	if params.WrongMin != nil {
		q.Where(entunitknowledge.WrongCountGTE(*params.WrongMin))
	}
	if params.WrongMax != nil {
		q.Where(entunitknowledge.WrongCountLTE(*params.WrongMax))
	}
	if params.AttemptsMin != nil {
		q.Where(entunitknowledge.TotalAttemptsGTE(*params.AttemptsMin))
	}
	if params.AttemptsMax != nil {
		q.Where(entunitknowledge.TotalAttemptsLTE(*params.AttemptsMax))
	}
	if params.StabilityMin != nil {
		q.Where(entunitknowledge.StabilityScoreGTE(*params.StabilityMin))
	}
	if params.StabilityMax != nil {
		q.Where(entunitknowledge.StabilityScoreLTE(*params.StabilityMax))
	}
}

func applyKnowledgeOrdering(q *entdb.UnitKnowledgeQuery, params listKnowledgeParams) {
	for _, term := range []struct {
		key  string
		desc bool
	}{
		{key: params.OrderKey, desc: params.OrderDesc},
		{key: params.OrderTiebreak},
	} {
		switch term.key {
		case "updated_at":
			if term.desc {
				q.Order(entunitknowledge.ByUpdatedAt(sql.OrderDesc(), sql.OrderNullsLast()))
			} else {
				q.Order(entunitknowledge.ByUpdatedAt(sql.OrderAsc(), sql.OrderNullsLast()))
			}
		case "last_attempt_at":
			if term.desc {
				q.Order(entunitknowledge.ByLastAttemptAt(sql.OrderDesc(), sql.OrderNullsLast()))
			} else {
				q.Order(entunitknowledge.ByLastAttemptAt(sql.OrderAsc(), sql.OrderNullsLast()))
			}
		case "wrong_count":
			if term.desc {
				q.Order(entunitknowledge.ByWrongCount(sql.OrderDesc(), sql.OrderNullsLast()))
			} else {
				q.Order(entunitknowledge.ByWrongCount(sql.OrderAsc(), sql.OrderNullsLast()))
			}
		case "total_attempts":
			if term.desc {
				q.Order(entunitknowledge.ByTotalAttempts(sql.OrderDesc(), sql.OrderNullsLast()))
			} else {
				q.Order(entunitknowledge.ByTotalAttempts(sql.OrderAsc(), sql.OrderNullsLast()))
			}
		case "stability_score":
			if term.desc {
				q.Order(entunitknowledge.ByStabilityScore(sql.OrderDesc(), sql.OrderNullsLast()))
			} else {
				q.Order(entunitknowledge.ByStabilityScore(sql.OrderAsc(), sql.OrderNullsLast()))
			}
		case "id":
			if term.desc {
				q.Order(entunitknowledge.ByID(sql.OrderDesc()))
			} else {
				q.Order(entunitknowledge.ByID())
			}
		}
	}
}

func mapEntUnitKnowledgeRows(rows []*entdb.UnitKnowledge) []entity.UnitKnowledge {
	result := make([]entity.UnitKnowledge, 0, len(rows))
	for _, row := range rows {
		if mapped := mapEntUnitKnowledge(row); mapped != nil {
			result = append(result, *mapped)
		}
	}
	return result
}

func mapEntUnitKnowledge(rec *entdb.UnitKnowledge) *entity.UnitKnowledge {
	if rec == nil {
		return nil
	}
	out := &entity.UnitKnowledge{
		ID:             int64(rec.ID),
		UserID:         rec.UserID,
		UnitType:       entity.ParseUnitType(rec.UnitType),
		UnitID:         rec.UnitID,
		TotalAttempts:  rec.TotalAttempts,
		CorrectCount:   rec.CorrectCount,
		WrongCount:     rec.WrongCount,
		LastAttemptAt:  rec.LastAttemptAt,
		StabilityScore: rec.StabilityScore,
		State:          entity.ParseKnowledgeState(rec.State),
		CreatedAt:      rec.CreatedAt,
		UpdatedAt:      rec.UpdatedAt,
	}
	if rec.LastCorrectAt != nil {
		at := *rec.LastCorrectAt
		out.LastCorrectAt = &at
	}
	if rec.LastWrongAt != nil {
		at := *rec.LastWrongAt
		out.LastWrongAt = &at
	}
	return out
}
