package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/lingua/internal/entity"
)

func discardLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type rewardFixture struct {
	xpEvents *fakeXpEventRepo
	userXp   *fakeUserXpRepo
	badges   *fakeBadgeRepo
	usecase  *rewardUsecase
}

func newRewardFixture(now time.Time) *rewardFixture {
	f := &rewardFixture{
		xpEvents: newFakeXpEventRepo(),
		userXp:   newFakeUserXpRepo(),
		badges:   newFakeBadgeRepo(),
	}
	u := NewRewardUsecase(f.xpEvents, f.userXp, f.badges, time.UTC, discardLogger()).(*rewardUsecase)
	u.clock = func() time.Time { return now }
	f.usecase = u
	return f
}

func baseParams() AwardParams {
	return AwardParams{
		Source:     "pack",
		SourceSlug: "shop",
		SessionID:  "sess-1",
		DedupeKey:  "pack:shop:en-pl:all",
		Mode:       "all",
		Eligible:   true,
	}
}

func TestAwardXpFirstGrant(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 5, 10, 18, 30, 0, 0, time.UTC)
	f := newRewardFixture(now)

	result, err := f.usecase.AwardXpAndBadges(ctx, 1, baseParams())
	if err != nil {
		t.Fatalf("AwardXpAndBadges: %v", err)
	}
	if result.XpAwarded != 10 {
		t.Fatalf("xp awarded = %d, want 10", result.XpAwarded)
	}
	if result.XpTotal != 10 || result.Level != 0 || result.XpIntoLevel != 10 || result.XpToNextLevel != 50 {
		t.Fatalf("unexpected result: %+v", result)
	}

	stored, err := f.xpEvents.LatestByDedupeKey(ctx, 1, "pack:shop:en-pl:all")
	if err != nil || stored == nil {
		t.Fatalf("event missing: %v", err)
	}
	if stored.AwardedOn != "2025-05-10" {
		t.Fatalf("awarded on = %s", stored.AwardedOn)
	}
}

func TestAwardXpPerfectAmount(t *testing.T) {
	ctx := context.Background()
	f := newRewardFixture(time.Date(2025, 5, 10, 18, 30, 0, 0, time.UTC))

	params := baseParams()
	params.Perfect = true
	params.SourceSlug = "travel"
	params.DedupeKey = "pack:travel:en-pl:all"

	result, err := f.usecase.AwardXpAndBadges(ctx, 1, params)
	if err != nil {
		t.Fatalf("AwardXpAndBadges: %v", err)
	}
	if result.XpAwarded != 20 {
		t.Fatalf("xp awarded = %d, want 20", result.XpAwarded)
	}
}

func TestAwardXpSameDayIsIdempotent(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 5, 10, 18, 30, 0, 0, time.UTC)
	f := newRewardFixture(now)

	first, err := f.usecase.AwardXpAndBadges(ctx, 1, baseParams())
	if err != nil {
		t.Fatalf("first call: %v", err)
	}

	f.usecase.clock = func() time.Time { return now.Add(2 * time.Hour) }
	second, err := f.usecase.AwardXpAndBadges(ctx, 1, baseParams())
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if second.XpAwarded != 0 {
		t.Fatalf("second award = %d, want 0", second.XpAwarded)
	}
	if second.XpTotal != first.XpTotal {
		t.Fatalf("xp total changed: %d -> %d", first.XpTotal, second.XpTotal)
	}
}

func TestAwardXpNextDayNeedsRepeatQualification(t *testing.T) {
	ctx := context.Background()
	day1 := time.Date(2025, 5, 10, 18, 30, 0, 0, time.UTC)
	f := newRewardFixture(day1)

	if _, err := f.usecase.AwardXpAndBadges(ctx, 1, baseParams()); err != nil {
		t.Fatalf("day one: %v", err)
	}

	f.usecase.clock = func() time.Time { return day1.AddDate(0, 0, 1) }

	// Re-running a fully mastered session earns nothing.
	result, err := f.usecase.AwardXpAndBadges(ctx, 1, baseParams())
	if err != nil {
		t.Fatalf("day two, unqualified: %v", err)
	}
	if result.XpAwarded != 0 {
		t.Fatalf("unqualified repeat awarded %d xp", result.XpAwarded)
	}

	params := baseParams()
	params.RepeatQualified = true
	result, err = f.usecase.AwardXpAndBadges(ctx, 1, params)
	if err != nil {
		t.Fatalf("day two, qualified: %v", err)
	}
	if result.XpAwarded != 10 {
		t.Fatalf("qualified repeat awarded %d xp, want 10", result.XpAwarded)
	}
	if result.XpTotal != 20 {
		t.Fatalf("xp total = %d, want 20", result.XpTotal)
	}
}

func TestAwardXpIneligible(t *testing.T) {
	ctx := context.Background()
	f := newRewardFixture(time.Date(2025, 5, 10, 18, 30, 0, 0, time.UTC))

	params := baseParams()
	params.Eligible = false
	result, err := f.usecase.AwardXpAndBadges(ctx, 1, params)
	if err != nil {
		t.Fatalf("AwardXpAndBadges: %v", err)
	}
	if result.XpAwarded != 0 || result.XpTotal != 0 {
		t.Fatalf("ineligible call granted xp: %+v", result)
	}
}

func TestAwardXpLostInsertRace(t *testing.T) {
	ctx := context.Background()
	f := newRewardFixture(time.Date(2025, 5, 10, 18, 30, 0, 0, time.UTC))
	f.xpEvents.forceConflict = true

	result, err := f.usecase.AwardXpAndBadges(ctx, 1, baseParams())
	if err != nil {
		t.Fatalf("a lost race must not be an error: %v", err)
	}
	if result.XpAwarded != 0 {
		t.Fatalf("lost race awarded %d xp", result.XpAwarded)
	}
	if result.XpTotal != 0 {
		t.Fatalf("xp total = %d, want 0", result.XpTotal)
	}
}

func TestAwardXpLevelRollover(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 5, 10, 18, 30, 0, 0, time.UTC)
	f := newRewardFixture(now)

	if _, err := f.userXp.Save(ctx, &entity.UserXp{UserID: 1, XpTotal: 45, Level: 0}); err != nil {
		t.Fatalf("seed user xp: %v", err)
	}

	result, err := f.usecase.AwardXpAndBadges(ctx, 1, baseParams())
	if err != nil {
		t.Fatalf("AwardXpAndBadges: %v", err)
	}
	if result.XpTotal != 55 || result.Level != 1 || result.XpIntoLevel != 5 || result.XpToNextLevel != 100 {
		t.Fatalf("unexpected level progress: %+v", result)
	}

	stored, err := f.userXp.Get(ctx, 1)
	if err != nil || stored == nil {
		t.Fatalf("user xp missing: %v", err)
	}
	if stored.Level != 1 {
		t.Fatalf("cached level = %d, want 1", stored.Level)
	}
}

func TestAwardBadgeOnPerfectFlagshipRun(t *testing.T) {
	ctx := context.Background()
	f := newRewardFixture(time.Date(2025, 5, 10, 18, 30, 0, 0, time.UTC))

	params := baseParams()
	params.SourceSlug = entity.FlagshipPackSlug
	params.DedupeKey = "pack:" + entity.FlagshipPackSlug + ":all"
	params.Perfect = true

	result, err := f.usecase.AwardXpAndBadges(ctx, 1, params)
	if err != nil {
		t.Fatalf("AwardXpAndBadges: %v", err)
	}
	if len(result.Badges) != 1 || result.Badges[0].Slug != entity.BadgePerfectFoundation {
		t.Fatalf("badges = %+v", result.Badges)
	}

	// The badge is earned at most once, even across days.
	f.usecase.clock = func() time.Time { return time.Date(2025, 5, 11, 9, 0, 0, 0, time.UTC) }
	params.RepeatQualified = true
	result, err = f.usecase.AwardXpAndBadges(ctx, 1, params)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if len(result.Badges) != 0 {
		t.Fatalf("badge granted twice: %+v", result.Badges)
	}
}

func TestAwardBadgeRequiresAllMode(t *testing.T) {
	ctx := context.Background()
	f := newRewardFixture(time.Date(2025, 5, 10, 18, 30, 0, 0, time.UTC))

	params := baseParams()
	params.SourceSlug = entity.FlagshipPackSlug
	params.Perfect = true
	params.Mode = "quick"

	result, err := f.usecase.AwardXpAndBadges(ctx, 1, params)
	if err != nil {
		t.Fatalf("AwardXpAndBadges: %v", err)
	}
	if len(result.Badges) != 0 {
		t.Fatalf("badge granted outside all-items mode: %+v", result.Badges)
	}
}

func TestAwardXpReferenceZone(t *testing.T) {
	ctx := context.Background()
	zone := time.FixedZone("UTC+12", 12*3600)

	f := newRewardFixture(time.Time{})
	u := NewRewardUsecase(f.xpEvents, f.userXp, f.badges, zone, discardLogger()).(*rewardUsecase)
	// 23:30 UTC on the 10th is already the 11th in the reference zone.
	u.clock = func() time.Time { return time.Date(2025, 5, 10, 23, 30, 0, 0, time.UTC) }

	if _, err := u.AwardXpAndBadges(ctx, 1, baseParams()); err != nil {
		t.Fatalf("AwardXpAndBadges: %v", err)
	}
	stored, err := f.xpEvents.LatestByDedupeKey(ctx, 1, baseParams().DedupeKey)
	if err != nil || stored == nil {
		t.Fatalf("event missing: %v", err)
	}
	if stored.AwardedOn != "2025-05-11" {
		t.Fatalf("awarded on = %s, want 2025-05-11", stored.AwardedOn)
	}
}

func TestAwardXpValidation(t *testing.T) {
	ctx := context.Background()
	f := newRewardFixture(time.Now())

	params := baseParams()
	params.DedupeKey = "  "
	if _, err := f.usecase.AwardXpAndBadges(ctx, 1, params); err != entity.ErrInvalidDedupeKey {
		t.Fatalf("err = %v, want ErrInvalidDedupeKey", err)
	}

	params = baseParams()
	params.SessionID = ""
	if _, err := f.usecase.AwardXpAndBadges(ctx, 1, params); err != entity.ErrInvalidSessionID {
		t.Fatalf("err = %v, want ErrInvalidSessionID", err)
	}
}
