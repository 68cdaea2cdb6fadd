package repository

import (
	"context"
	"time"

	"github.com/eslsoft/lingua/internal/entity"
)

// XpEventRepository abstracts the append-only reward log. Create must return
// entity.ErrDuplicateXpEvent when the (user, dedupe key, awarded-on) unique
// constraint is violated, so that callers can treat a lost race as "no award".
type XpEventRepository interface {
	Create(ctx context.Context, event *entity.XpEvent) (*entity.XpEvent, error)
	LatestByDedupeKey(ctx context.Context, userID int64, dedupeKey string) (*entity.XpEvent, error)
	FindBySession(ctx context.Context, userID int64, sessionID string) (*entity.XpEvent, error)
}

// UserXpRepository abstracts the cumulative per-learner xp row.
// Get returns (nil, nil) for a learner with no xp yet.
type UserXpRepository interface {
	Get(ctx context.Context, userID int64) (*entity.UserXp, error)
	Save(ctx context.Context, userXp *entity.UserXp) (*entity.UserXp, error)
}

// BadgeRepository abstracts the badge catalog and per-learner grants. Grant
// must return entity.ErrBadgeAlreadyEarned on the (user, badge) unique
// constraint.
type BadgeRepository interface {
	GetBySlug(ctx context.Context, slug string) (*entity.Badge, error)
	HasBadge(ctx context.Context, userID int64, slug string) (bool, error)
	Grant(ctx context.Context, userID int64, slug string, at time.Time) error
}
