package usecase

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/lingua/internal/entity"
	"github.com/eslsoft/lingua/internal/repository"
)

// AnswerUsecase appends answer events and feeds them into the knowledge
// tracker. The event write is authoritative; the mastery update is a
// best-effort secondary signal.
type AnswerUsecase interface {
	SubmitAnswer(ctx context.Context, event *entity.AnswerEvent, unitType entity.UnitType, unitID int64) (*entity.AnswerEvent, error)
}

// NewAnswerUsecase wires the answer log with the knowledge tracker.
func NewAnswerUsecase(events repository.AnswerEventRepository, knowledge KnowledgeUsecase, logger logrus.FieldLogger) AnswerUsecase {
	return &answerUsecase{
		events:    events,
		knowledge: knowledge,
		logger:    logger,
		clock:     time.Now,
	}
}

type answerUsecase struct {
	events    repository.AnswerEventRepository
	knowledge KnowledgeUsecase
	logger    logrus.FieldLogger
	clock     func() time.Time
}

func (u *answerUsecase) SubmitAnswer(ctx context.Context, event *entity.AnswerEvent, unitType entity.UnitType, unitID int64) (*entity.AnswerEvent, error) {
	if event == nil {
		return nil, entity.ErrInvalidAnswer
	}

	event.Normalize(u.clock())
	if err := event.Validate(); err != nil {
		return nil, err
	}

	created, err := u.events.Create(ctx, event)
	if err != nil {
		return nil, err
	}

	// Mastery tracking must never block the answer itself: the event is
	// already durable, so a failed knowledge write is logged and dropped.
	if unitType != entity.UnitTypeUnspecified && unitID > 0 {
		if _, err := u.knowledge.RecordAnswer(ctx, event.UserID, unitType, unitID, event.Correct); err != nil {
			u.logger.WithError(err).WithFields(logrus.Fields{
				"user_id":   event.UserID,
				"unit_type": unitType,
				"unit_id":   unitID,
			}).Warn("knowledge update failed after answer")
		}
	}

	return created, nil
}
