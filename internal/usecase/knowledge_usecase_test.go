package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/eslsoft/lingua/internal/entity"
)

func newTestKnowledgeUsecase(repo *fakeKnowledgeRepo, now time.Time) *knowledgeUsecase {
	u := NewKnowledgeUsecase(repo).(*knowledgeUsecase)
	u.clock = func() time.Time { return now }
	return u
}

func TestRecordAnswerCreatesRecord(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC)
	repo := newFakeKnowledgeRepo()
	u := newTestKnowledgeUsecase(repo, now)

	got, err := u.RecordAnswer(ctx, 1, entity.UnitTypeSense, 42, true)
	if err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}
	if got.ID == 0 {
		t.Fatal("expected persisted record to receive an ID")
	}
	if got.State != entity.KnowledgeStateMastered {
		t.Fatalf("state = %s, want %s", got.State, entity.KnowledgeStateMastered)
	}
	if got.TotalAttempts != 1 || got.CorrectCount != 1 {
		t.Fatalf("counters = %d/%d", got.TotalAttempts, got.CorrectCount)
	}
}

func TestRecordAnswerAccumulates(t *testing.T) {
	ctx := context.Background()
	repo := newFakeKnowledgeRepo()
	base := time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC)

	for i, correct := range []bool{true, false, true, true} {
		u := newTestKnowledgeUsecase(repo, base.Add(time.Duration(i)*time.Minute))
		if _, err := u.RecordAnswer(ctx, 1, entity.UnitTypeIrregular, 5, correct); err != nil {
			t.Fatalf("RecordAnswer #%d: %v", i, err)
		}
	}

	stored, err := repo.Get(ctx, 1, entity.UnitTypeIrregular, 5)
	if err != nil || stored == nil {
		t.Fatalf("Get: %v, %v", stored, err)
	}
	if stored.TotalAttempts != 4 || stored.CorrectCount != 3 || stored.WrongCount != 1 {
		t.Fatalf("counters = %d/%d/%d", stored.TotalAttempts, stored.CorrectCount, stored.WrongCount)
	}
	if stored.State != entity.KnowledgeStateMastered {
		t.Fatalf("state = %s, want %s", stored.State, entity.KnowledgeStateMastered)
	}
	if stored.StabilityScore != 3*2-1*3 {
		t.Fatalf("stability = %d", stored.StabilityScore)
	}
}

func TestRecordAnswerValidation(t *testing.T) {
	ctx := context.Background()
	u := newTestKnowledgeUsecase(newFakeKnowledgeRepo(), time.Now())

	if _, err := u.RecordAnswer(ctx, 0, entity.UnitTypeSense, 1, true); !errors.Is(err, entity.ErrInvalidLearnerID) {
		t.Fatalf("err = %v, want ErrInvalidLearnerID", err)
	}
	if _, err := u.RecordAnswer(ctx, 1, entity.UnitType("verb"), 1, true); !errors.Is(err, entity.ErrInvalidUnitType) {
		t.Fatalf("err = %v, want ErrInvalidUnitType", err)
	}
	if _, err := u.RecordAnswer(ctx, 1, entity.UnitTypeSense, 0, true); !errors.Is(err, entity.ErrInvalidUnitID) {
		t.Fatalf("err = %v, want ErrInvalidUnitID", err)
	}
}

func TestRecordSessionBatch(t *testing.T) {
	ctx := context.Background()
	repo := newFakeKnowledgeRepo()
	base := time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC)

	u := newTestKnowledgeUsecase(repo, base)
	got, err := u.RecordSessionBatch(ctx, 1, entity.UnitTypeCluster, 3, 10, 8)
	if err != nil {
		t.Fatalf("RecordSessionBatch: %v", err)
	}
	if got.State != entity.KnowledgeStateImproving {
		t.Fatalf("first batch state = %s, want %s", got.State, entity.KnowledgeStateImproving)
	}

	// Accuracy fell from 0.8 to 0.5: unstable.
	u = newTestKnowledgeUsecase(repo, base.Add(time.Hour))
	got, err = u.RecordSessionBatch(ctx, 1, entity.UnitTypeCluster, 3, 10, 5)
	if err != nil {
		t.Fatalf("RecordSessionBatch: %v", err)
	}
	if got.State != entity.KnowledgeStateUnstable {
		t.Fatalf("second batch state = %s, want %s", got.State, entity.KnowledgeStateUnstable)
	}
	if got.TotalAttempts != 20 || got.CorrectCount != 13 {
		t.Fatalf("counters = %d/%d", got.TotalAttempts, got.CorrectCount)
	}
}

func TestRecordSessionBatchRejectsNonPositiveTotal(t *testing.T) {
	ctx := context.Background()
	u := newTestKnowledgeUsecase(newFakeKnowledgeRepo(), time.Now())

	if _, err := u.RecordSessionBatch(ctx, 1, entity.UnitTypeCluster, 3, 0, 0); !errors.Is(err, entity.ErrInvalidBatchTotal) {
		t.Fatalf("err = %v, want ErrInvalidBatchTotal", err)
	}
	if _, err := u.RecordSessionBatch(ctx, 1, entity.UnitTypeCluster, 3, -5, 0); !errors.Is(err, entity.ErrInvalidBatchTotal) {
		t.Fatalf("err = %v, want ErrInvalidBatchTotal", err)
	}
}
