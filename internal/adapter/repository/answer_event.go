package repository

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"

	"github.com/eslsoft/lingua/internal/entity"
	entdb "github.com/eslsoft/lingua/internal/infrastructure/database/ent"
	entanswerevent "github.com/eslsoft/lingua/internal/infrastructure/database/ent/answerevent"
	"github.com/eslsoft/lingua/internal/repository"
)

type AnswerEventRepository struct {
	client *entdb.Client
}

// NewAnswerEventRepository constructs an ent-backed answer log.
func NewAnswerEventRepository(client *entdb.Client) repository.AnswerEventRepository {
	return &AnswerEventRepository{client: client}
}

func (r *AnswerEventRepository) Create(ctx context.Context, event *entity.AnswerEvent) (*entity.AnswerEvent, error) {
	rec, err := r.client.AnswerEvent.Create().
		SetUserID(event.UserID).
		SetKind(string(event.Kind)).
		SetContextSlug(event.ContextSlug).
		SetSessionID(event.SessionID).
		SetPrompt(event.Prompt).
		SetExpected(event.Expected).
		SetGiven(event.Given).
		SetCorrect(event.Correct).
		SetCreatedAt(event.CreatedAt).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create answer event: %w", err)
	}
	return mapEntAnswerEvent(rec), nil
}

func (r *AnswerEventRepository) ListBySession(ctx context.Context, query *repository.SessionEventsQuery) ([]entity.AnswerEvent, error) {
	qbuilder := r.client.AnswerEvent.Query().
		Where(
			entanswerevent.UserIDEQ(query.UserID),
			entanswerevent.SessionIDEQ(query.SessionID),
		)
	if query.Kind.Valid() {
		qbuilder.Where(entanswerevent.KindEQ(string(query.Kind)))
	}

	rows, err := qbuilder.
		Order(entanswerevent.ByCreatedAt(), entanswerevent.ByID()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list session events: %w", err)
	}
	return mapEntAnswerEvents(rows), nil
}

func (r *AnswerEventRepository) ListRecent(ctx context.Context, userID int64, limit int) ([]entity.AnswerEvent, error) {
	qbuilder := r.client.AnswerEvent.Query().
		Where(entanswerevent.UserIDEQ(userID)).
		Order(
			entanswerevent.ByCreatedAt(sql.OrderDesc()),
			entanswerevent.ByID(sql.OrderDesc()),
		)
	if limit > 0 {
		qbuilder.Limit(limit)
	}

	rows, err := qbuilder.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list recent events: %w", err)
	}
	return mapEntAnswerEvents(rows), nil
}

func (r *AnswerEventRepository) AccuracyByContext(ctx context.Context, userID int64, kind entity.ExerciseKind) ([]repository.ContextAccuracy, error) {
	var rows []struct {
		ContextSlug string `json:"context_slug"`
		Total       int64  `json:"total"`
		Correct     int64  `json:"correct"`
	}

	err := r.client.AnswerEvent.Query().
		Where(
			entanswerevent.UserIDEQ(userID),
			entanswerevent.KindEQ(string(kind)),
			entanswerevent.ContextSlugNEQ(""),
		).
		GroupBy(entanswerevent.FieldContextSlug).
		Aggregate(
			entdb.As(entdb.Count(), "total"),
			func(s *sql.Selector) string {
				correct := s.C(entanswerevent.FieldCorrect)
				return sql.As("sum(case when "+correct+" then 1 else 0 end)", "correct")
			},
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate context accuracy: %w", err)
	}

	result := make([]repository.ContextAccuracy, 0, len(rows))
	for _, row := range rows {
		result = append(result, repository.ContextAccuracy{
			Kind:    kind,
			Slug:    row.ContextSlug,
			Total:   row.Total,
			Correct: row.Correct,
		})
	}
	return result, nil
}

func (r *AnswerEventRepository) LatestContext(ctx context.Context, userID int64) (*repository.ContextRef, error) {
	rec, err := r.client.AnswerEvent.Query().
		Where(
			entanswerevent.UserIDEQ(userID),
			entanswerevent.ContextSlugNEQ(""),
		).
		Order(
			entanswerevent.ByCreatedAt(sql.OrderDesc()),
			entanswerevent.ByID(sql.OrderDesc()),
		).
		First(ctx)
	if err != nil {
		if entdb.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find latest context: %w", err)
	}
	return &repository.ContextRef{
		Kind: entity.ParseExerciseKind(rec.Kind),
		Slug: rec.ContextSlug,
	}, nil
}

func mapEntAnswerEvents(rows []*entdb.AnswerEvent) []entity.AnswerEvent {
	result := make([]entity.AnswerEvent, 0, len(rows))
	for _, row := range rows {
		if mapped := mapEntAnswerEvent(row); mapped != nil {
			result = append(result, *mapped)
		}
	}
	return result
}

func mapEntAnswerEvent(rec *entdb.AnswerEvent) *entity.AnswerEvent {
	if rec == nil {
		return nil
	}
	return &entity.AnswerEvent{
		ID:          int64(rec.ID),
		UserID:      rec.UserID,
		Kind:        entity.ParseExerciseKind(rec.Kind),
		ContextSlug: rec.ContextSlug,
		SessionID:   rec.SessionID,
		Prompt:      rec.Prompt,
		Expected:    rec.Expected,
		Given:       rec.Given,
		Correct:     rec.Correct,
		CreatedAt:   rec.CreatedAt,
	}
}
