package entity

import (
	"testing"
	"time"
)

func TestApplyAnswerFirstAttempt(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	k := &UnitKnowledge{UserID: 1, UnitType: UnitTypeSense, UnitID: 7}
	k.ApplyAnswer(now, true)
	if k.State != KnowledgeStateMastered {
		t.Fatalf("first correct answer: state = %s, want %s", k.State, KnowledgeStateMastered)
	}
	if k.TotalAttempts != 1 || k.CorrectCount != 1 || k.WrongCount != 0 {
		t.Fatalf("unexpected counters: %d/%d/%d", k.TotalAttempts, k.CorrectCount, k.WrongCount)
	}
	if k.StabilityScore != 2 {
		t.Fatalf("stability = %d, want 2", k.StabilityScore)
	}

	k = &UnitKnowledge{UserID: 1, UnitType: UnitTypeSense, UnitID: 8}
	k.ApplyAnswer(now, false)
	if k.State != KnowledgeStateUnstable {
		t.Fatalf("first wrong answer: state = %s, want %s", k.State, KnowledgeStateUnstable)
	}
	if k.StabilityScore != -3 {
		t.Fatalf("stability = %d, want -3", k.StabilityScore)
	}
}

func TestApplyAnswerRecencyRules(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	at := func(minutes int) time.Time { return base.Add(time.Duration(minutes) * time.Minute) }

	// correct_count=3, wrong_count=1 with the last correct after the last
	// wrong: diff 2 >= 1, mastered.
	k := &UnitKnowledge{}
	k.ApplyAnswer(at(0), true)
	k.ApplyAnswer(at(1), false)
	k.ApplyAnswer(at(2), true)
	k.ApplyAnswer(at(3), true)
	if k.CorrectCount != 3 || k.WrongCount != 1 {
		t.Fatalf("counters = %d/%d, want 3/1", k.CorrectCount, k.WrongCount)
	}
	if k.State != KnowledgeStateMastered {
		t.Fatalf("state = %s, want %s", k.State, KnowledgeStateMastered)
	}

	// correct_count=1, wrong_count=1, correct most recent: diff 0, improving.
	k = &UnitKnowledge{}
	k.ApplyAnswer(at(0), false)
	k.ApplyAnswer(at(1), true)
	if k.State != KnowledgeStateImproving {
		t.Fatalf("state = %s, want %s", k.State, KnowledgeStateImproving)
	}

	// A wrong answer after a correct one flips to unstable regardless of
	// historical counts.
	k = &UnitKnowledge{}
	for i := 0; i < 9; i++ {
		k.ApplyAnswer(at(i), true)
	}
	k.ApplyAnswer(at(10), false)
	if k.State != KnowledgeStateUnstable {
		t.Fatalf("state after late miss = %s, want %s", k.State, KnowledgeStateUnstable)
	}
	if k.StabilityScore != 9*2-3 {
		t.Fatalf("stability = %d, want %d", k.StabilityScore, 9*2-3)
	}
}

func TestApplyAnswerTimestamps(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	k := &UnitKnowledge{}
	k.ApplyAnswer(base, true)
	if k.LastCorrectAt == nil || !k.LastCorrectAt.Equal(base) {
		t.Fatalf("last correct at = %v, want %v", k.LastCorrectAt, base)
	}
	if k.LastWrongAt != nil {
		t.Fatalf("last wrong at = %v, want nil", k.LastWrongAt)
	}

	later := base.Add(time.Minute)
	k.ApplyAnswer(later, false)
	if k.LastCorrectAt == nil || !k.LastCorrectAt.Equal(base) {
		t.Fatalf("last correct at moved on a wrong answer: %v", k.LastCorrectAt)
	}
	if k.LastWrongAt == nil || !k.LastWrongAt.Equal(later) {
		t.Fatalf("last wrong at = %v, want %v", k.LastWrongAt, later)
	}
	if !k.LastAttemptAt.Equal(later) {
		t.Fatalf("last attempt at = %v, want %v", k.LastAttemptAt, later)
	}
}

func TestApplyBatchFirstAttempt(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		total   int64
		correct int64
		want    KnowledgeState
	}{
		{"perfect", 10, 10, KnowledgeStateMastered},
		{"seventy percent", 10, 7, KnowledgeStateImproving},
		{"below threshold", 10, 6, KnowledgeStateUnstable},
		{"all wrong", 5, 0, KnowledgeStateUnstable},
	}
	for _, tc := range cases {
		k := &UnitKnowledge{}
		k.ApplyBatch(now, tc.total, tc.correct)
		if k.State != tc.want {
			t.Fatalf("%s: state = %s, want %s", tc.name, k.State, tc.want)
		}
	}
}

func TestApplyBatchAgainstPriorAccuracy(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	// Prior accuracy 0.5; a 0.8 batch rose, a 0.3 batch fell, a 0.5 batch ties.
	prior := func() *UnitKnowledge {
		k := &UnitKnowledge{}
		k.ApplyBatch(base, 10, 5)
		return k
	}

	k := prior()
	k.ApplyBatch(base.Add(time.Hour), 10, 8)
	if k.State != KnowledgeStateImproving {
		t.Fatalf("rising accuracy: state = %s, want %s", k.State, KnowledgeStateImproving)
	}

	k = prior()
	k.ApplyBatch(base.Add(time.Hour), 10, 3)
	if k.State != KnowledgeStateUnstable {
		t.Fatalf("falling accuracy: state = %s, want %s", k.State, KnowledgeStateUnstable)
	}

	k = prior()
	k.ApplyBatch(base.Add(time.Hour), 10, 5)
	if k.State != KnowledgeStateImproving {
		t.Fatalf("tied accuracy: state = %s, want %s", k.State, KnowledgeStateImproving)
	}

	k = prior()
	k.ApplyBatch(base.Add(time.Hour), 10, 10)
	if k.State != KnowledgeStateMastered {
		t.Fatalf("perfect batch: state = %s, want %s", k.State, KnowledgeStateMastered)
	}
}

func TestApplyBatchClampsCorrect(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	k := &UnitKnowledge{}
	k.ApplyBatch(now, 5, 9)
	if k.CorrectCount != 5 || k.WrongCount != 0 {
		t.Fatalf("counters = %d/%d, want 5/0", k.CorrectCount, k.WrongCount)
	}

	k = &UnitKnowledge{}
	k.ApplyBatch(now, 5, -2)
	if k.CorrectCount != 0 || k.WrongCount != 5 {
		t.Fatalf("counters = %d/%d, want 0/5", k.CorrectCount, k.WrongCount)
	}
}
