package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/eslsoft/lingua/internal/entity"
)

func seedSessionEvents(t *testing.T, repo *fakeAnswerEventRepo, userID int64, sessionID string, start time.Time, results []bool) {
	t.Helper()
	ctx := context.Background()
	for i, correct := range results {
		_, err := repo.Create(ctx, &entity.AnswerEvent{
			UserID:      userID,
			Kind:        entity.ExerciseKindPack,
			ContextSlug: "shop",
			SessionID:   sessionID,
			Prompt:      fmt.Sprintf("prompt-%d", i),
			Expected:    fmt.Sprintf("expected-%d", i),
			Given:       "given",
			Correct:     correct,
			CreatedAt:   start.Add(time.Duration(i) * time.Second),
		})
		if err != nil {
			t.Fatalf("seed event: %v", err)
		}
	}
}

func TestSummarize(t *testing.T) {
	ctx := context.Background()
	events := newFakeAnswerEventRepo()
	xpEvents := newFakeXpEventRepo()
	u := NewSessionUsecase(events, xpEvents)

	start := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	seedSessionEvents(t, events, 1, "sess-1", start, []bool{true, false, true, true, false})

	summary, err := u.Summarize(ctx, 1, "sess-1", entity.ExerciseKindPack)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if summary.Total != 5 || summary.Correct != 3 || summary.Wrong != 2 {
		t.Fatalf("totals = %d/%d/%d", summary.Total, summary.Correct, summary.Wrong)
	}
	if summary.Accuracy != 0.6 {
		t.Fatalf("accuracy = %v, want 0.6", summary.Accuracy)
	}
	if summary.StartedAt == nil || !summary.StartedAt.Equal(start) {
		t.Fatalf("started at = %v, want %v", summary.StartedAt, start)
	}
	if summary.CompletedAt != nil {
		t.Fatalf("completed at = %v, want nil before completion", summary.CompletedAt)
	}
	if len(summary.WrongItems) != 2 {
		t.Fatalf("wrong items = %d, want 2", len(summary.WrongItems))
	}
	if summary.WrongItems[0].Prompt != "prompt-1" {
		t.Fatalf("wrong item prompt = %s", summary.WrongItems[0].Prompt)
	}
}

func TestSummarizeEmptySession(t *testing.T) {
	ctx := context.Background()
	u := NewSessionUsecase(newFakeAnswerEventRepo(), newFakeXpEventRepo())

	summary, err := u.Summarize(ctx, 1, "sess-empty", entity.ExerciseKindPack)
	if err != nil {
		t.Fatalf("an unanswered session is not an error: %v", err)
	}
	if summary.Total != 0 || summary.Accuracy != 0 {
		t.Fatalf("summary = %+v", summary)
	}
	if summary.StartedAt != nil {
		t.Fatalf("started at = %v, want nil", summary.StartedAt)
	}
}

func TestSummarizeCapsWrongSamples(t *testing.T) {
	ctx := context.Background()
	events := newFakeAnswerEventRepo()
	u := NewSessionUsecase(events, newFakeXpEventRepo())

	results := make([]bool, 25)
	seedSessionEvents(t, events, 1, "sess-1", time.Now(), results)

	summary, err := u.Summarize(ctx, 1, "sess-1", entity.ExerciseKindPack)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if summary.Wrong != 25 {
		t.Fatalf("wrong = %d, want 25", summary.Wrong)
	}
	if len(summary.WrongItems) != entity.WrongAnswerLimit {
		t.Fatalf("sampled %d wrong items, want %d", len(summary.WrongItems), entity.WrongAnswerLimit)
	}
}

func TestSummarizeIncludesCompletion(t *testing.T) {
	ctx := context.Background()
	events := newFakeAnswerEventRepo()
	xpEvents := newFakeXpEventRepo()
	u := NewSessionUsecase(events, xpEvents)

	start := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	seedSessionEvents(t, events, 1, "sess-1", start, []bool{true, true})

	completedAt := start.Add(5 * time.Minute)
	if _, err := xpEvents.Create(ctx, &entity.XpEvent{
		UserID:    1,
		SessionID: "sess-1",
		DedupeKey: "pack:shop:all",
		AwardedOn: "2025-06-01",
		Xp:        20,
		CreatedAt: completedAt,
	}); err != nil {
		t.Fatalf("seed xp event: %v", err)
	}

	summary, err := u.Summarize(ctx, 1, "sess-1", entity.ExerciseKindPack)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if summary.CompletedAt == nil || !summary.CompletedAt.Equal(completedAt) {
		t.Fatalf("completed at = %v, want %v", summary.CompletedAt, completedAt)
	}
}

func TestSummarizeValidation(t *testing.T) {
	ctx := context.Background()
	u := NewSessionUsecase(newFakeAnswerEventRepo(), newFakeXpEventRepo())

	if _, err := u.Summarize(ctx, 1, "  ", entity.ExerciseKindPack); !errors.Is(err, entity.ErrInvalidSessionID) {
		t.Fatalf("err = %v, want ErrInvalidSessionID", err)
	}
	if _, err := u.Summarize(ctx, 0, "sess", entity.ExerciseKindPack); !errors.Is(err, entity.ErrInvalidLearnerID) {
		t.Fatalf("err = %v, want ErrInvalidLearnerID", err)
	}
}
