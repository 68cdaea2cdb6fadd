package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/eslsoft/lingua/internal/entity"
	"github.com/eslsoft/lingua/internal/repository"
)

// SessionUsecase reduces a session's answer log into a summary. It is a
// read-only reducer: an empty session is a valid result, not an error.
type SessionUsecase interface {
	Summarize(ctx context.Context, userID int64, sessionID string, kind entity.ExerciseKind) (*entity.SessionSummary, error)
}

// NewSessionUsecase wires the session summary aggregator.
func NewSessionUsecase(events repository.AnswerEventRepository, xpEvents repository.XpEventRepository) SessionUsecase {
	return &sessionUsecase{
		events:   events,
		xpEvents: xpEvents,
	}
}

type sessionUsecase struct {
	events   repository.AnswerEventRepository
	xpEvents repository.XpEventRepository
}

func (u *sessionUsecase) Summarize(ctx context.Context, userID int64, sessionID string, kind entity.ExerciseKind) (*entity.SessionSummary, error) {
	if userID <= 0 {
		return nil, entity.ErrInvalidLearnerID
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, entity.ErrInvalidSessionID
	}

	log, err := u.events.ListBySession(ctx, &repository.SessionEventsQuery{
		UserID:    userID,
		SessionID: sessionID,
		Kind:      kind,
	})
	if err != nil {
		return nil, err
	}

	summary := &entity.SessionSummary{
		SessionID: sessionID,
		Kind:      kind,
	}

	for _, event := range log {
		summary.Total++
		if event.Correct {
			continue
		}
		summary.Wrong++
		if len(summary.WrongItems) < entity.WrongAnswerLimit {
			summary.WrongItems = append(summary.WrongItems, entity.WrongAnswer{
				Prompt:   event.Prompt,
				Expected: event.Expected,
			})
		}
	}
	summary.Correct = summary.Total - summary.Wrong
	if summary.Total > 0 {
		summary.Accuracy = float64(summary.Correct) / float64(summary.Total)
		started := earliest(log)
		summary.StartedAt = &started
	}

	completion, err := u.xpEvents.FindBySession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if completion != nil {
		completedAt := completion.CreatedAt
		summary.CompletedAt = &completedAt
	}

	return summary, nil
}

func earliest(log []entity.AnswerEvent) time.Time {
	first := log[0].CreatedAt
	for _, event := range log[1:] {
		if event.CreatedAt.Before(first) {
			first = event.CreatedAt
		}
	}
	return first
}
