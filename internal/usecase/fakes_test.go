package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/eslsoft/lingua/internal/entity"
	"github.com/eslsoft/lingua/internal/repository"
)

// In-memory repository fakes shared by the usecase tests.

type knowledgeKey struct {
	userID   int64
	unitType entity.UnitType
	unitID   int64
}

type fakeKnowledgeRepo struct {
	mu    sync.RWMutex
	seq   int64
	items map[knowledgeKey]*entity.UnitKnowledge
}

func newFakeKnowledgeRepo() *fakeKnowledgeRepo {
	return &fakeKnowledgeRepo{items: make(map[knowledgeKey]*entity.UnitKnowledge)}
}

func cloneKnowledge(k *entity.UnitKnowledge) *entity.UnitKnowledge {
	if k == nil {
		return nil
	}
	clone := *k
	if k.LastCorrectAt != nil {
		at := *k.LastCorrectAt
		clone.LastCorrectAt = &at
	}
	if k.LastWrongAt != nil {
		at := *k.LastWrongAt
		clone.LastWrongAt = &at
	}
	return &clone
}

func (r *fakeKnowledgeRepo) Get(ctx context.Context, userID int64, unitType entity.UnitType, unitID int64) (*entity.UnitKnowledge, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if item, ok := r.items[knowledgeKey{userID, unitType, unitID}]; ok {
		return cloneKnowledge(item), nil
	}
	return nil, nil
}

func (r *fakeKnowledgeRepo) Upsert(ctx context.Context, knowledge *entity.UnitKnowledge) (*entity.UnitKnowledge, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	key := knowledgeKey{knowledge.UserID, knowledge.UnitType, knowledge.UnitID}
	clone := cloneKnowledge(knowledge)
	if existing, ok := r.items[key]; ok {
		clone.ID = existing.ID
	} else {
		r.seq++
		clone.ID = r.seq
	}
	r.items[key] = clone
	return cloneKnowledge(clone), nil
}

func (r *fakeKnowledgeRepo) ListByStates(ctx context.Context, userID int64, unitType entity.UnitType, states []entity.KnowledgeState) ([]entity.UnitKnowledge, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []entity.UnitKnowledge
	for key, item := range r.items {
		if key.userID != userID || key.unitType != unitType {
			continue
		}
		for _, state := range states {
			if item.State == state {
				result = append(result, *cloneKnowledge(item))
				break
			}
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].UnitID < result[j].UnitID })
	return result, nil
}

func (r *fakeKnowledgeRepo) List(ctx context.Context, query *repository.ListKnowledgeQuery) ([]entity.UnitKnowledge, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []entity.UnitKnowledge
	for key, item := range r.items {
		if key.userID == query.UserID {
			result = append(result, *cloneKnowledge(item))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, int64(len(result)), nil
}

type fakeAnswerEventRepo struct {
	mu     sync.RWMutex
	seq    int64
	events []entity.AnswerEvent
}

func newFakeAnswerEventRepo() *fakeAnswerEventRepo {
	return &fakeAnswerEventRepo{}
}

func (r *fakeAnswerEventRepo) Create(ctx context.Context, event *entity.AnswerEvent) (*entity.AnswerEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	stored := *event
	stored.ID = r.seq
	r.events = append(r.events, stored)
	return &stored, nil
}

func (r *fakeAnswerEventRepo) ListBySession(ctx context.Context, query *repository.SessionEventsQuery) ([]entity.AnswerEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []entity.AnswerEvent
	for _, event := range r.events {
		if event.UserID != query.UserID || event.SessionID != query.SessionID {
			continue
		}
		if query.Kind.Valid() && event.Kind != query.Kind {
			continue
		}
		result = append(result, event)
	}
	return result, nil
}

func (r *fakeAnswerEventRepo) ListRecent(ctx context.Context, userID int64, limit int) ([]entity.AnswerEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []entity.AnswerEvent
	for _, event := range r.events {
		if event.UserID == userID {
			result = append(result, event)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *fakeAnswerEventRepo) AccuracyByContext(ctx context.Context, userID int64, kind entity.ExerciseKind) ([]repository.ContextAccuracy, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	totals := make(map[string]*repository.ContextAccuracy)
	for _, event := range r.events {
		if event.UserID != userID || event.Kind != kind {
			continue
		}
		acc, ok := totals[event.ContextSlug]
		if !ok {
			acc = &repository.ContextAccuracy{Kind: kind, Slug: event.ContextSlug}
			totals[event.ContextSlug] = acc
		}
		acc.Total++
		if event.Correct {
			acc.Correct++
		}
	}
	result := make([]repository.ContextAccuracy, 0, len(totals))
	for _, acc := range totals {
		result = append(result, *acc)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Slug < result[j].Slug })
	return result, nil
}

func (r *fakeAnswerEventRepo) LatestContext(ctx context.Context, userID int64) (*repository.ContextRef, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var latest *entity.AnswerEvent
	for i := range r.events {
		event := &r.events[i]
		if event.UserID != userID {
			continue
		}
		if latest == nil || event.CreatedAt.After(latest.CreatedAt) {
			latest = event
		}
	}
	if latest == nil {
		return nil, nil
	}
	return &repository.ContextRef{Kind: latest.Kind, Slug: latest.ContextSlug}, nil
}

type fakeXpEventRepo struct {
	mu     sync.RWMutex
	seq    int64
	events []entity.XpEvent

	// forceConflict makes the next Create fail as a lost unique-insert race.
	forceConflict bool
}

func newFakeXpEventRepo() *fakeXpEventRepo {
	return &fakeXpEventRepo{}
}

func (r *fakeXpEventRepo) Create(ctx context.Context, event *entity.XpEvent) (*entity.XpEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.forceConflict {
		r.forceConflict = false
		return nil, entity.ErrDuplicateXpEvent
	}
	for _, existing := range r.events {
		if existing.UserID == event.UserID && existing.DedupeKey == event.DedupeKey && existing.AwardedOn == event.AwardedOn {
			return nil, entity.ErrDuplicateXpEvent
		}
	}
	r.seq++
	stored := *event
	stored.ID = r.seq
	r.events = append(r.events, stored)
	return &stored, nil
}

func (r *fakeXpEventRepo) LatestByDedupeKey(ctx context.Context, userID int64, dedupeKey string) (*entity.XpEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var latest *entity.XpEvent
	for i := range r.events {
		event := &r.events[i]
		if event.UserID != userID || event.DedupeKey != dedupeKey {
			continue
		}
		if latest == nil || event.CreatedAt.After(latest.CreatedAt) {
			latest = event
		}
	}
	if latest == nil {
		return nil, nil
	}
	clone := *latest
	return &clone, nil
}

func (r *fakeXpEventRepo) FindBySession(ctx context.Context, userID int64, sessionID string) (*entity.XpEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.events {
		event := &r.events[i]
		if event.UserID == userID && event.SessionID == sessionID {
			clone := *event
			return &clone, nil
		}
	}
	return nil, nil
}

type fakeUserXpRepo struct {
	mu    sync.RWMutex
	items map[int64]*entity.UserXp
}

func newFakeUserXpRepo() *fakeUserXpRepo {
	return &fakeUserXpRepo{items: make(map[int64]*entity.UserXp)}
}

func (r *fakeUserXpRepo) Get(ctx context.Context, userID int64) (*entity.UserXp, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if item, ok := r.items[userID]; ok {
		clone := *item
		return &clone, nil
	}
	return nil, nil
}

func (r *fakeUserXpRepo) Save(ctx context.Context, userXp *entity.UserXp) (*entity.UserXp, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *userXp
	if clone.ID == 0 {
		clone.ID = int64(len(r.items) + 1)
	}
	r.items[userXp.UserID] = &clone
	result := clone
	return &result, nil
}

type badgeGrant struct {
	userID int64
	slug   string
}

type fakeBadgeRepo struct {
	mu      sync.RWMutex
	catalog map[string]entity.Badge
	grants  map[badgeGrant]time.Time
}

func newFakeBadgeRepo() *fakeBadgeRepo {
	return &fakeBadgeRepo{
		catalog: map[string]entity.Badge{
			entity.BadgePerfectFoundation: {
				ID:   1,
				Slug: entity.BadgePerfectFoundation,
				Name: "Perfect Foundation",
			},
		},
		grants: make(map[badgeGrant]time.Time),
	}
}

func (r *fakeBadgeRepo) GetBySlug(ctx context.Context, slug string) (*entity.Badge, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if badge, ok := r.catalog[slug]; ok {
		return &badge, nil
	}
	return nil, entity.ErrBadgeNotFound
}

func (r *fakeBadgeRepo) HasBadge(ctx context.Context, userID int64, slug string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.grants[badgeGrant{userID, slug}]
	return ok, nil
}

func (r *fakeBadgeRepo) Grant(ctx context.Context, userID int64, slug string, at time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	key := badgeGrant{userID, slug}
	if _, ok := r.grants[key]; ok {
		return entity.ErrBadgeAlreadyEarned
	}
	r.grants[key] = at
	return nil
}

type fakeCatalogRepo struct {
	packs    map[string]entity.VocabPack
	clusters map[string]entity.VocabCluster
	senses   map[int64]entity.VocabSense
	verbs    map[int64]entity.IrregularVerb
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		packs:    make(map[string]entity.VocabPack),
		clusters: make(map[string]entity.VocabCluster),
		senses:   make(map[int64]entity.VocabSense),
		verbs:    make(map[int64]entity.IrregularVerb),
	}
}

func (r *fakeCatalogRepo) GetPack(ctx context.Context, slug string) (*entity.VocabPack, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if pack, ok := r.packs[slug]; ok {
		return &pack, nil
	}
	return nil, entity.ErrPackNotFound
}

func (r *fakeCatalogRepo) FlagshipPack(ctx context.Context) (*entity.VocabPack, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, pack := range r.packs {
		if pack.Flagship {
			found := pack
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeCatalogRepo) GetCluster(ctx context.Context, slug string) (*entity.VocabCluster, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if cluster, ok := r.clusters[slug]; ok {
		return &cluster, nil
	}
	return nil, entity.ErrClusterNotFound
}

func (r *fakeCatalogRepo) ListSensesByIDs(ctx context.Context, ids []int64) ([]entity.VocabSense, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var result []entity.VocabSense
	for _, id := range ids {
		if sense, ok := r.senses[id]; ok {
			result = append(result, sense)
		}
	}
	return result, nil
}

func (r *fakeCatalogRepo) ListVerbsByIDs(ctx context.Context, ids []int64) ([]entity.IrregularVerb, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var result []entity.IrregularVerb
	for _, id := range ids {
		if verb, ok := r.verbs[id]; ok {
			result = append(result, verb)
		}
	}
	return result, nil
}
