package entity

import (
	"strings"
	"time"
)

// AnswerEvent is one recorded answer. Events are append-only: once written
// they are never updated or deleted, and every downstream aggregate
// (knowledge, summaries, suggestions) is derived from them.
type AnswerEvent struct {
	ID          int64
	UserID      int64
	Kind        ExerciseKind
	ContextSlug string
	SessionID   string
	Prompt      string
	Expected    string
	Given       string
	Correct     bool
	CreatedAt   time.Time
}

// Normalize trims free-form fields and stamps the creation time.
func (e *AnswerEvent) Normalize(now time.Time) {
	e.ContextSlug = strings.TrimSpace(e.ContextSlug)
	e.SessionID = strings.TrimSpace(e.SessionID)
	e.Prompt = strings.TrimSpace(e.Prompt)
	e.Expected = strings.TrimSpace(e.Expected)
	e.Given = strings.TrimSpace(e.Given)
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
}

// Validate checks the required fields before the event touches storage.
func (e *AnswerEvent) Validate() error {
	if e.UserID <= 0 {
		return ErrInvalidLearnerID
	}
	if !e.Kind.Valid() {
		return ErrInvalidAnswer
	}
	if e.ContextSlug == "" || e.SessionID == "" {
		return ErrInvalidAnswer
	}
	return nil
}
