package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/eslsoft/lingua/internal/entity"
	"github.com/eslsoft/lingua/internal/repository"
)

const (
	// weakUnitLimit caps each weak-signal source.
	weakUnitLimit = 10
	// weakAccuracyThreshold marks a practice surface as worth revisiting.
	weakAccuracyThreshold = 0.9
	// recentAnswerWindow bounds how many events back NextAction looks when
	// matching outstanding vocabulary to a practice surface.
	recentAnswerWindow = 200
)

// SuggestionUsecase ranks "what to practice next" from the learner's weak
// signals: shaky irregular verbs, low-accuracy packs and clusters, and a
// single best next action for the home surface.
type SuggestionUsecase interface {
	Practice(ctx context.Context, userID int64) (*entity.PracticeSuggestions, error)
	NextAction(ctx context.Context, userID int64) (*entity.Suggestion, error)
}

// NewSuggestionUsecase wires the ranker.
func NewSuggestionUsecase(
	knowledge repository.UnitKnowledgeRepository,
	events repository.AnswerEventRepository,
	catalog repository.CatalogRepository,
) SuggestionUsecase {
	return &suggestionUsecase{
		knowledge: knowledge,
		events:    events,
		catalog:   catalog,
	}
}

type suggestionUsecase struct {
	knowledge repository.UnitKnowledgeRepository
	events    repository.AnswerEventRepository
	catalog   repository.CatalogRepository
}

var weakStates = []entity.KnowledgeState{
	entity.KnowledgeStateUnstable,
	entity.KnowledgeStateImproving,
}

func (u *suggestionUsecase) Practice(ctx context.Context, userID int64) (*entity.PracticeSuggestions, error) {
	if userID <= 0 {
		return nil, entity.ErrInvalidLearnerID
	}

	verbs, err := u.weakIrregularVerbs(ctx, userID)
	if err != nil {
		return nil, err
	}
	packs, err := u.weakPacks(ctx, userID)
	if err != nil {
		return nil, err
	}
	clusters, err := u.weakClusters(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &entity.PracticeSuggestions{
		IrregularVerbs: verbs,
		Packs:          packs,
		Clusters:       clusters,
	}, nil
}

func (u *suggestionUsecase) weakIrregularVerbs(ctx context.Context, userID int64) ([]entity.Suggestion, error) {
	rows, err := u.knowledge.ListByStates(ctx, userID, entity.UnitTypeIrregular, weakStates)
	if err != nil {
		return nil, err
	}

	// Unstable before improving, most misses first, unit id breaks ties so
	// the ordering is deterministic.
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].State != rows[j].State {
			return rows[i].State == entity.KnowledgeStateUnstable
		}
		if rows[i].WrongCount != rows[j].WrongCount {
			return rows[i].WrongCount > rows[j].WrongCount
		}
		return rows[i].UnitID < rows[j].UnitID
	})
	if len(rows) > weakUnitLimit {
		rows = rows[:weakUnitLimit]
	}

	ids := lo.Map(rows, func(k entity.UnitKnowledge, _ int) int64 { return k.UnitID })
	resolved, err := u.catalog.ListVerbsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := lo.SliceToMap(resolved, func(v entity.IrregularVerb) (int64, entity.IrregularVerb) {
		return v.ID, v
	})

	suggestions := make([]entity.Suggestion, 0, len(rows))
	for _, row := range rows {
		verb, ok := byID[row.UnitID]
		if !ok {
			// Stale knowledge rows for removed verbs are dropped silently.
			continue
		}
		suggestions = append(suggestions, entity.Suggestion{
			Kind:        entity.SuggestionKindIrregular,
			Title:       verb.Base,
			Description: fmt.Sprintf("%s – %s – %s", verb.Base, verb.Past, verb.Participle),
			Href:        "/practice/irregular-verbs?verb=" + verb.Base,
		})
	}
	return suggestions, nil
}

func (u *suggestionUsecase) weakPacks(ctx context.Context, userID int64) ([]entity.Suggestion, error) {
	return u.weakContexts(ctx, userID, entity.ExerciseKindPack)
}

func (u *suggestionUsecase) weakClusters(ctx context.Context, userID int64) ([]entity.Suggestion, error) {
	return u.weakContexts(ctx, userID, entity.ExerciseKindCluster)
}

func (u *suggestionUsecase) weakContexts(ctx context.Context, userID int64, kind entity.ExerciseKind) ([]entity.Suggestion, error) {
	stats, err := u.events.AccuracyByContext(ctx, userID, kind)
	if err != nil {
		return nil, err
	}

	weak := lo.Filter(stats, func(s repository.ContextAccuracy, _ int) bool {
		return s.Total > 0 && s.Accuracy() < weakAccuracyThreshold
	})
	sort.Slice(weak, func(i, j int) bool {
		if weak[i].Accuracy() != weak[j].Accuracy() {
			return weak[i].Accuracy() < weak[j].Accuracy()
		}
		return weak[i].Slug < weak[j].Slug
	})
	if len(weak) > weakUnitLimit {
		weak = weak[:weakUnitLimit]
	}

	suggestions := make([]entity.Suggestion, 0, len(weak))
	for _, s := range weak {
		suggestion, err := u.contextSuggestion(ctx, kind, s.Slug, fmt.Sprintf("%.0f%% accuracy so far", s.Accuracy()*100))
		if err != nil {
			return nil, err
		}
		if suggestion != nil {
			suggestions = append(suggestions, *suggestion)
		}
	}
	return suggestions, nil
}

// NextAction builds the single home-surface suggestion. The fallback chain is
// total: once a learner has any history at all, some branch always yields a
// concrete, navigable target.
func (u *suggestionUsecase) NextAction(ctx context.Context, userID int64) (*entity.Suggestion, error) {
	if userID <= 0 {
		return nil, entity.ErrInvalidLearnerID
	}

	outstanding, err := u.knowledge.ListByStates(ctx, userID, entity.UnitTypeSense, weakStates)
	if err != nil {
		return nil, err
	}

	if len(outstanding) > 0 {
		suggestion, err := u.surfaceForOutstanding(ctx, userID, outstanding)
		if err != nil {
			return nil, err
		}
		if suggestion != nil {
			return suggestion, nil
		}
		return &entity.Suggestion{
			Kind:        entity.SuggestionKindIrregular,
			Title:       "Drill irregular verbs",
			Description: "A quick round of irregular verb forms",
			Href:        "/practice/irregular-verbs",
		}, nil
	}

	latest, err := u.events.LatestContext(ctx, userID)
	if err != nil {
		return nil, err
	}
	if latest != nil {
		suggestion, err := u.contextSuggestion(ctx, latest.Kind, latest.Slug, "Pick up where you left off")
		if err != nil {
			return nil, err
		}
		if suggestion != nil {
			return suggestion, nil
		}
	}

	flagship, err := u.catalog.FlagshipPack(ctx)
	if err != nil {
		return nil, err
	}
	if flagship != nil {
		return &entity.Suggestion{
			Kind:        entity.SuggestionKindPack,
			Title:       flagship.Name,
			Description: "A good place to start",
			Href:        "/practice/packs/" + flagship.Slug,
		}, nil
	}

	return &entity.Suggestion{
		Kind:        entity.SuggestionKindBrowse,
		Title:       "Browse vocabulary packs",
		Description: "Find a topic you care about",
		Href:        "/packs",
	}, nil
}

// surfaceForOutstanding picks the pack or cluster most associated with the
// learner's still-unlearned senses by counting recent answer events that
// reference them. Packs win ties; nil means neither surface has signal.
func (u *suggestionUsecase) surfaceForOutstanding(ctx context.Context, userID int64, outstanding []entity.UnitKnowledge) (*entity.Suggestion, error) {
	ids := lo.Map(outstanding, func(k entity.UnitKnowledge, _ int) int64 { return k.UnitID })
	senses, err := u.catalog.ListSensesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	terms := make(map[string]struct{}, len(senses))
	for _, sense := range senses {
		terms[strings.ToLower(sense.Word)] = struct{}{}
	}
	if len(terms) == 0 {
		return nil, nil
	}

	recent, err := u.events.ListRecent(ctx, userID, recentAnswerWindow)
	if err != nil {
		return nil, err
	}

	counts := make(map[repository.ContextRef]int)
	for _, event := range recent {
		if event.Kind != entity.ExerciseKindPack && event.Kind != entity.ExerciseKindCluster {
			continue
		}
		if _, ok := terms[strings.ToLower(event.Expected)]; !ok {
			continue
		}
		counts[repository.ContextRef{Kind: event.Kind, Slug: event.ContextSlug}]++
	}
	if len(counts) == 0 {
		return nil, nil
	}

	var best repository.ContextRef
	bestCount := -1
	for ref, count := range counts {
		if count > bestCount || (count == bestCount && refLess(ref, best)) {
			best = ref
			bestCount = count
		}
	}

	return u.contextSuggestion(ctx, best.Kind, best.Slug, "You still have words to learn here")
}

// refLess orders packs before clusters, then by slug, for deterministic ties.
func refLess(a, b repository.ContextRef) bool {
	if a.Kind != b.Kind {
		return a.Kind == entity.ExerciseKindPack
	}
	return a.Slug < b.Slug
}

// contextSuggestion resolves a practice surface to display data. Surfaces
// that no longer exist in the catalog yield nil rather than an error.
func (u *suggestionUsecase) contextSuggestion(ctx context.Context, kind entity.ExerciseKind, slug, description string) (*entity.Suggestion, error) {
	switch kind {
	case entity.ExerciseKindPack:
		pack, err := u.catalog.GetPack(ctx, slug)
		if err != nil {
			if errors.Is(err, entity.ErrPackNotFound) {
				return nil, nil
			}
			return nil, err
		}
		return &entity.Suggestion{
			Kind:        entity.SuggestionKindPack,
			Title:       pack.Name,
			Description: description,
			Href:        "/practice/packs/" + pack.Slug,
		}, nil
	case entity.ExerciseKindCluster:
		cluster, err := u.catalog.GetCluster(ctx, slug)
		if err != nil {
			if errors.Is(err, entity.ErrClusterNotFound) {
				return nil, nil
			}
			return nil, err
		}
		return &entity.Suggestion{
			Kind:        entity.SuggestionKindCluster,
			Title:       cluster.Name,
			Description: description,
			Href:        "/practice/clusters/" + cluster.Slug,
		}, nil
	case entity.ExerciseKindIrregular:
		return &entity.Suggestion{
			Kind:        entity.SuggestionKindIrregular,
			Title:       "Irregular verbs",
			Description: description,
			Href:        "/practice/irregular-verbs",
		}, nil
	default:
		return nil, nil
	}
}
