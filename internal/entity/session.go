package entity

import "time"

// WrongAnswerLimit caps how many wrong items a summary samples for feedback.
const WrongAnswerLimit = 10

// WrongAnswer is one sampled miss, shown back to the learner after a session.
type WrongAnswer struct {
	Prompt   string
	Expected string
}

// SessionSummary reduces one session's answer log into totals. A session with
// no answers yet is a valid, empty summary rather than an error.
type SessionSummary struct {
	SessionID   string
	Kind        ExerciseKind
	Total       int64
	Correct     int64
	Wrong       int64
	Accuracy    float64
	StartedAt   *time.Time
	CompletedAt *time.Time
	WrongItems  []WrongAnswer
}
