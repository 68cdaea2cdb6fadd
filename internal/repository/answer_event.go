package repository

import (
	"context"

	"github.com/eslsoft/lingua/internal/entity"
)

// SessionEventsQuery selects the answer log of one session for one learner.
type SessionEventsQuery struct {
	UserID    int64
	SessionID string
	Kind      entity.ExerciseKind
}

// ContextRef names a practice surface an answer event came from.
type ContextRef struct {
	Kind entity.ExerciseKind
	Slug string
}

// ContextAccuracy is the aggregated accuracy of one practice surface.
type ContextAccuracy struct {
	Kind    entity.ExerciseKind
	Slug    string
	Total   int64
	Correct int64
}

// Accuracy returns correct/total, zero when nothing was answered.
func (a ContextAccuracy) Accuracy() float64 {
	if a.Total == 0 {
		return 0
	}
	return float64(a.Correct) / float64(a.Total)
}

// AnswerEventRepository abstracts the append-only answer log.
type AnswerEventRepository interface {
	Create(ctx context.Context, event *entity.AnswerEvent) (*entity.AnswerEvent, error)
	ListBySession(ctx context.Context, query *SessionEventsQuery) ([]entity.AnswerEvent, error)
	ListRecent(ctx context.Context, userID int64, limit int) ([]entity.AnswerEvent, error)
	AccuracyByContext(ctx context.Context, userID int64, kind entity.ExerciseKind) ([]ContextAccuracy, error)
	LatestContext(ctx context.Context, userID int64) (*ContextRef, error)
}
