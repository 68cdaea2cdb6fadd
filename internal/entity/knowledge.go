package entity

import "time"

// UnitKnowledge is the per-(learner, unit) mastery record. Counters only ever
// grow; State and StabilityScore are derived from the counters and the
// relative order of the last correct/wrong timestamps, never set on their own.
type UnitKnowledge struct {
	ID             int64
	UserID         int64
	UnitType       UnitType
	UnitID         int64
	TotalAttempts  int64
	CorrectCount   int64
	WrongCount     int64
	LastAttemptAt  time.Time
	LastCorrectAt  *time.Time
	LastWrongAt    *time.Time
	StabilityScore int64
	State          KnowledgeState
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ApplyAnswer folds a single answer into the record and rederives the
// knowledge state from the updated counters and recency timestamps.
func (k *UnitKnowledge) ApplyAnswer(now time.Time, correct bool) {
	first := k.TotalAttempts == 0

	k.TotalAttempts++
	if correct {
		k.CorrectCount++
		at := now
		k.LastCorrectAt = &at
	} else {
		k.WrongCount++
		at := now
		k.LastWrongAt = &at
	}
	k.LastAttemptAt = now

	switch {
	case first:
		if correct {
			k.State = KnowledgeStateMastered
		} else {
			k.State = KnowledgeStateUnstable
		}
	case k.LastCorrectAt == nil || (k.LastWrongAt != nil && k.LastWrongAt.After(*k.LastCorrectAt)):
		k.State = KnowledgeStateUnstable
	case k.LastWrongAt == nil || k.LastCorrectAt.After(*k.LastWrongAt):
		if k.CorrectCount-k.WrongCount >= 1 {
			k.State = KnowledgeStateMastered
		} else {
			k.State = KnowledgeStateImproving
		}
	default:
		// Identical timestamps carry no recency signal.
		k.State = KnowledgeStateUnstable
	}

	k.rescore(now)
}

// ApplyBatch folds a whole-session batch of answers targeting this unit into
// the record. There is no per-answer recency signal inside a batch, so the
// state transition compares the batch accuracy against the accuracy implied
// by the counters before the batch. The correct count is clamped to [0,total].
func (k *UnitKnowledge) ApplyBatch(now time.Time, total, correct int64) {
	if correct < 0 {
		correct = 0
	}
	if correct > total {
		correct = total
	}

	priorTotal := k.TotalAttempts
	priorCorrect := k.CorrectCount
	accuracy := float64(correct) / float64(total)

	k.TotalAttempts += total
	k.CorrectCount += correct
	k.WrongCount += total - correct
	k.LastAttemptAt = now
	if correct > 0 {
		at := now
		k.LastCorrectAt = &at
	}
	if correct < total {
		at := now
		k.LastWrongAt = &at
	}

	switch {
	case priorTotal == 0:
		switch {
		case accuracy == 1:
			k.State = KnowledgeStateMastered
		case accuracy >= 0.7:
			k.State = KnowledgeStateImproving
		default:
			k.State = KnowledgeStateUnstable
		}
	case accuracy == 1:
		k.State = KnowledgeStateMastered
	default:
		prior := float64(priorCorrect) / float64(priorTotal)
		if accuracy >= prior {
			k.State = KnowledgeStateImproving
		} else {
			k.State = KnowledgeStateUnstable
		}
	}

	k.rescore(now)
}

func (k *UnitKnowledge) rescore(now time.Time) {
	k.StabilityScore = k.CorrectCount*2 - k.WrongCount*3
	if k.CreatedAt.IsZero() {
		k.CreatedAt = now
	}
	k.UpdatedAt = now
}
