package entity

import "time"

// XP amounts granted on session completion.
const (
	XpPerfectSession = 20
	XpSession        = 10
)

// FlagshipPackSlug is the designated starter pack: completing it perfectly in
// "all items" mode earns the foundation badge.
const FlagshipPackSlug = "everyday-basics"

// BadgePerfectFoundation is earned at most once, for a perfect full run of
// the flagship pack.
const BadgePerfectFoundation = "perfect-foundation"

// AwardDateLayout formats the awarded-on calendar date in the reference zone.
const AwardDateLayout = "2006-01-02"

// XpEvent is one successful reward grant. Rows are append-only; the unique
// (user, dedupe key, awarded-on) index is the once-per-day guard.
type XpEvent struct {
	ID         int64
	UserID     int64
	Source     string
	SourceSlug string
	SessionID  string
	DedupeKey  string
	AwardedOn  string
	Xp         int64
	Perfect    bool
	Meta       map[string]string
	CreatedAt  time.Time
}

// UserXp is a learner's cumulative experience. XpTotal only ever grows;
// Level is a cache, always recomputed from XpTotal via the leveling curve.
type UserXp struct {
	ID        int64
	UserID    int64
	XpTotal   int64
	Level     int64
	UpdatedAt time.Time
}

// Badge is a static catalog entry.
type Badge struct {
	ID          int64
	Slug        string
	Name        string
	Description string
	Icon        string
}

// UserBadge marks a badge as earned; a learner earns each badge at most once.
type UserBadge struct {
	ID        int64
	UserID    int64
	BadgeSlug string
	AwardedAt time.Time
}

// AwardResult is what a session-completion call reports back to the learner.
type AwardResult struct {
	XpAwarded     int64
	XpTotal       int64
	Level         int64
	XpIntoLevel   int64
	XpToNextLevel int64
	Badges        []Badge
}
