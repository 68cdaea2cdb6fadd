package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/eslsoft/lingua/internal/entity"
)

type suggestionFixture struct {
	knowledge *fakeKnowledgeRepo
	events    *fakeAnswerEventRepo
	catalog   *fakeCatalogRepo
	usecase   SuggestionUsecase
}

func newSuggestionFixture() *suggestionFixture {
	f := &suggestionFixture{
		knowledge: newFakeKnowledgeRepo(),
		events:    newFakeAnswerEventRepo(),
		catalog:   newFakeCatalogRepo(),
	}
	f.usecase = NewSuggestionUsecase(f.knowledge, f.events, f.catalog)
	return f
}

func (f *suggestionFixture) seedKnowledge(t *testing.T, unitType entity.UnitType, unitID int64, state entity.KnowledgeState, wrong int64) {
	t.Helper()
	_, err := f.knowledge.Upsert(context.Background(), &entity.UnitKnowledge{
		UserID:        1,
		UnitType:      unitType,
		UnitID:        unitID,
		TotalAttempts: wrong + 1,
		CorrectCount:  1,
		WrongCount:    wrong,
		State:         state,
		LastAttemptAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("seed knowledge: %v", err)
	}
}

func (f *suggestionFixture) seedAnswer(t *testing.T, kind entity.ExerciseKind, slug, expected string, correct bool, at time.Time) {
	t.Helper()
	_, err := f.events.Create(context.Background(), &entity.AnswerEvent{
		UserID:      1,
		Kind:        kind,
		ContextSlug: slug,
		SessionID:   "sess",
		Prompt:      "prompt",
		Expected:    expected,
		Given:       "given",
		Correct:     correct,
		CreatedAt:   at,
	})
	if err != nil {
		t.Fatalf("seed answer: %v", err)
	}
}

func TestPracticeWeakIrregularVerbOrdering(t *testing.T) {
	ctx := context.Background()
	f := newSuggestionFixture()

	f.catalog.verbs[1] = entity.IrregularVerb{ID: 1, Base: "go", Past: "went", Participle: "gone"}
	f.catalog.verbs[2] = entity.IrregularVerb{ID: 2, Base: "eat", Past: "ate", Participle: "eaten"}
	f.catalog.verbs[3] = entity.IrregularVerb{ID: 3, Base: "see", Past: "saw", Participle: "seen"}
	f.catalog.verbs[4] = entity.IrregularVerb{ID: 4, Base: "run", Past: "ran", Participle: "run"}

	f.seedKnowledge(t, entity.UnitTypeIrregular, 1, entity.KnowledgeStateImproving, 5)
	f.seedKnowledge(t, entity.UnitTypeIrregular, 2, entity.KnowledgeStateUnstable, 1)
	f.seedKnowledge(t, entity.UnitTypeIrregular, 3, entity.KnowledgeStateUnstable, 4)
	f.seedKnowledge(t, entity.UnitTypeIrregular, 4, entity.KnowledgeStateMastered, 9)

	got, err := f.usecase.Practice(ctx, 1)
	if err != nil {
		t.Fatalf("Practice: %v", err)
	}

	// Unstable first (most misses first), improving after; mastered excluded.
	want := []string{"see", "eat", "go"}
	if len(got.IrregularVerbs) != len(want) {
		t.Fatalf("suggestions = %+v, want %d entries", got.IrregularVerbs, len(want))
	}
	for i, title := range want {
		if got.IrregularVerbs[i].Title != title {
			t.Fatalf("position %d = %s, want %s", i, got.IrregularVerbs[i].Title, title)
		}
	}
}

func TestPracticeDropsUnresolvableVerbs(t *testing.T) {
	ctx := context.Background()
	f := newSuggestionFixture()

	f.catalog.verbs[1] = entity.IrregularVerb{ID: 1, Base: "go", Past: "went", Participle: "gone"}
	f.seedKnowledge(t, entity.UnitTypeIrregular, 1, entity.KnowledgeStateUnstable, 2)
	f.seedKnowledge(t, entity.UnitTypeIrregular, 99, entity.KnowledgeStateUnstable, 8)

	got, err := f.usecase.Practice(ctx, 1)
	if err != nil {
		t.Fatalf("Practice: %v", err)
	}
	if len(got.IrregularVerbs) != 1 || got.IrregularVerbs[0].Title != "go" {
		t.Fatalf("suggestions = %+v", got.IrregularVerbs)
	}
}

func TestPracticeWeakPacksBelowThreshold(t *testing.T) {
	ctx := context.Background()
	f := newSuggestionFixture()
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	f.catalog.packs["shop"] = entity.VocabPack{ID: 1, Slug: "shop", Name: "At the Shop"}
	f.catalog.packs["travel"] = entity.VocabPack{ID: 2, Slug: "travel", Name: "Travel"}

	// shop: 50% accuracy, travel: 100%.
	f.seedAnswer(t, entity.ExerciseKindPack, "shop", "milk", true, base)
	f.seedAnswer(t, entity.ExerciseKindPack, "shop", "bread", false, base.Add(time.Second))
	f.seedAnswer(t, entity.ExerciseKindPack, "travel", "ticket", true, base.Add(2*time.Second))

	got, err := f.usecase.Practice(ctx, 1)
	if err != nil {
		t.Fatalf("Practice: %v", err)
	}
	if len(got.Packs) != 1 || got.Packs[0].Title != "At the Shop" {
		t.Fatalf("packs = %+v", got.Packs)
	}
	if got.Packs[0].Href != "/practice/packs/shop" {
		t.Fatalf("href = %s", got.Packs[0].Href)
	}
}

func TestNextActionPrefersOutstandingVocabularySurface(t *testing.T) {
	ctx := context.Background()
	f := newSuggestionFixture()
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	f.catalog.packs["shop"] = entity.VocabPack{ID: 1, Slug: "shop", Name: "At the Shop"}
	f.catalog.clusters["food"] = entity.VocabCluster{ID: 1, Slug: "food", Name: "Food words"}
	f.catalog.senses[10] = entity.VocabSense{ID: 10, Word: "bread", PackSlug: "shop"}

	f.seedKnowledge(t, entity.UnitTypeSense, 10, entity.KnowledgeStateUnstable, 3)

	// Recent practice references the outstanding word on both surfaces; the
	// pack wins the tie.
	f.seedAnswer(t, entity.ExerciseKindPack, "shop", "bread", false, base)
	f.seedAnswer(t, entity.ExerciseKindCluster, "food", "bread", false, base.Add(time.Second))

	got, err := f.usecase.NextAction(ctx, 1)
	if err != nil {
		t.Fatalf("NextAction: %v", err)
	}
	if got.Kind != entity.SuggestionKindPack || got.Href != "/practice/packs/shop" {
		t.Fatalf("suggestion = %+v", got)
	}
}

func TestNextActionFallsBackToIrregularDrill(t *testing.T) {
	ctx := context.Background()
	f := newSuggestionFixture()

	// Outstanding vocabulary exists but no recent events reference it.
	f.catalog.senses[10] = entity.VocabSense{ID: 10, Word: "bread", PackSlug: "shop"}
	f.seedKnowledge(t, entity.UnitTypeSense, 10, entity.KnowledgeStateUnstable, 3)

	got, err := f.usecase.NextAction(ctx, 1)
	if err != nil {
		t.Fatalf("NextAction: %v", err)
	}
	if got.Kind != entity.SuggestionKindIrregular {
		t.Fatalf("suggestion = %+v", got)
	}
}

func TestNextActionResumesLatestContext(t *testing.T) {
	ctx := context.Background()
	f := newSuggestionFixture()
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	f.catalog.clusters["food"] = entity.VocabCluster{ID: 1, Slug: "food", Name: "Food words"}
	f.seedAnswer(t, entity.ExerciseKindCluster, "food", "bread", true, base)

	got, err := f.usecase.NextAction(ctx, 1)
	if err != nil {
		t.Fatalf("NextAction: %v", err)
	}
	if got.Kind != entity.SuggestionKindCluster || got.Href != "/practice/clusters/food" {
		t.Fatalf("suggestion = %+v", got)
	}
}

func TestNextActionFlagshipThenBrowse(t *testing.T) {
	ctx := context.Background()
	f := newSuggestionFixture()

	f.catalog.packs[entity.FlagshipPackSlug] = entity.VocabPack{
		ID:       1,
		Slug:     entity.FlagshipPackSlug,
		Name:     "Everyday Basics",
		Flagship: true,
	}

	got, err := f.usecase.NextAction(ctx, 1)
	if err != nil {
		t.Fatalf("NextAction: %v", err)
	}
	if got.Kind != entity.SuggestionKindPack || got.Title != "Everyday Basics" {
		t.Fatalf("suggestion = %+v", got)
	}

	// Without a flagship pack the chain still ends somewhere navigable.
	empty := newSuggestionFixture()
	got, err = empty.usecase.NextAction(ctx, 1)
	if err != nil {
		t.Fatalf("NextAction: %v", err)
	}
	if got == nil || got.Kind != entity.SuggestionKindBrowse || got.Href == "" {
		t.Fatalf("suggestion = %+v", got)
	}
}

func TestNextActionNeverEmptyWithHistory(t *testing.T) {
	ctx := context.Background()
	f := newSuggestionFixture()

	// One answer event against a pack that has since been removed from the
	// catalog: the chain must still produce something.
	f.seedAnswer(t, entity.ExerciseKindPack, "gone-pack", "bread", true, time.Now())

	got, err := f.usecase.NextAction(ctx, 1)
	if err != nil {
		t.Fatalf("NextAction: %v", err)
	}
	if got == nil || got.Href == "" {
		t.Fatalf("suggestion = %+v", got)
	}
}
