package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/lingua/internal/entity"
	"github.com/eslsoft/lingua/internal/repository"
	"github.com/eslsoft/lingua/pkg/leveling"
)

// AwardParams carries everything a session-completion call hands the reward
// engine. DedupeKey identifies "this kind of completion" (at most one grant
// per key per calendar day); RepeatQualified must be true on any grant after
// the first for a key, so re-running an already-mastered session cannot farm
// a second day's reward.
type AwardParams struct {
	Source          string
	SourceSlug      string
	SessionID       string
	DedupeKey       string
	Mode            string
	Perfect         bool
	Eligible        bool
	RepeatQualified bool
	Meta            map[string]string
}

// RewardUsecase grants experience and badges on session completion.
type RewardUsecase interface {
	AwardXpAndBadges(ctx context.Context, userID int64, params AwardParams) (*entity.AwardResult, error)
}

// NewRewardUsecase wires the reward engine. The location fixes which calendar
// day "today" is, regardless of server region.
func NewRewardUsecase(
	xpEvents repository.XpEventRepository,
	userXp repository.UserXpRepository,
	badges repository.BadgeRepository,
	location *time.Location,
	logger logrus.FieldLogger,
) RewardUsecase {
	return &rewardUsecase{
		xpEvents: xpEvents,
		userXp:   userXp,
		badges:   badges,
		location: location,
		logger:   logger,
		clock:    time.Now,
	}
}

type rewardUsecase struct {
	xpEvents repository.XpEventRepository
	userXp   repository.UserXpRepository
	badges   repository.BadgeRepository
	location *time.Location
	logger   logrus.FieldLogger
	clock    func() time.Time
}

func (u *rewardUsecase) AwardXpAndBadges(ctx context.Context, userID int64, params AwardParams) (*entity.AwardResult, error) {
	if userID <= 0 {
		return nil, entity.ErrInvalidLearnerID
	}
	if strings.TrimSpace(params.DedupeKey) == "" {
		return nil, entity.ErrInvalidDedupeKey
	}
	if strings.TrimSpace(params.SessionID) == "" {
		return nil, entity.ErrInvalidSessionID
	}

	now := u.clock().In(u.location)
	today := now.Format(entity.AwardDateLayout)

	latest, err := u.xpEvents.LatestByDedupeKey(ctx, userID, params.DedupeKey)
	if err != nil {
		return nil, err
	}
	hasAnyAward := latest != nil
	awardedToday := latest != nil && latest.AwardedOn == today

	grant := !awardedToday && params.Eligible && (!hasAnyAward || params.RepeatQualified)

	var awarded int64
	if grant {
		amount := int64(entity.XpSession)
		if params.Perfect {
			amount = entity.XpPerfectSession
		}
		_, err := u.xpEvents.Create(ctx, &entity.XpEvent{
			UserID:     userID,
			Source:     params.Source,
			SourceSlug: params.SourceSlug,
			SessionID:  params.SessionID,
			DedupeKey:  params.DedupeKey,
			AwardedOn:  today,
			Xp:         amount,
			Perfect:    params.Perfect,
			Meta:       params.Meta,
			CreatedAt:  now,
		})
		switch {
		case errors.Is(err, entity.ErrDuplicateXpEvent):
			// Lost the race to a concurrent completion: the first writer
			// wins and this call degrades to a zero award.
			u.logger.WithFields(logrus.Fields{
				"user_id":    userID,
				"dedupe_key": params.DedupeKey,
			}).Info("xp award lost insert race, treating as no award")
		case err != nil:
			return nil, err
		default:
			awarded = amount
		}
	}

	total, err := u.applyXp(ctx, userID, awarded, now)
	if err != nil {
		return nil, err
	}

	progress := leveling.Compute(total)
	result := &entity.AwardResult{
		XpAwarded:     awarded,
		XpTotal:       total,
		Level:         progress.Level,
		XpIntoLevel:   progress.XpIntoLevel,
		XpToNextLevel: progress.XpToNextLevel,
	}

	// Badge grants are a soft side effect: failures are logged, never
	// surfaced to the learner.
	if badge := u.grantFlagshipBadge(ctx, userID, params, now); badge != nil {
		result.Badges = append(result.Badges, *badge)
	}

	return result, nil
}

// applyXp adds the award to the learner's total and refreshes the cached
// level. A zero award only reads the current total.
func (u *rewardUsecase) applyXp(ctx context.Context, userID, amount int64, now time.Time) (int64, error) {
	current, err := u.userXp.Get(ctx, userID)
	if err != nil {
		return 0, err
	}
	if current == nil {
		current = &entity.UserXp{UserID: userID}
	}
	if amount == 0 {
		return current.XpTotal, nil
	}

	current.XpTotal += amount
	current.Level = leveling.Compute(current.XpTotal).Level
	current.UpdatedAt = now

	saved, err := u.userXp.Save(ctx, current)
	if err != nil {
		return 0, err
	}
	return saved.XpTotal, nil
}

func (u *rewardUsecase) grantFlagshipBadge(ctx context.Context, userID int64, params AwardParams, now time.Time) *entity.Badge {
	if params.Source != string(entity.ExerciseKindPack) ||
		params.SourceSlug != entity.FlagshipPackSlug ||
		params.Mode != "all" || !params.Perfect {
		return nil
	}

	log := u.logger.WithFields(logrus.Fields{
		"user_id": userID,
		"badge":   entity.BadgePerfectFoundation,
	})

	earned, err := u.badges.HasBadge(ctx, userID, entity.BadgePerfectFoundation)
	if err != nil {
		log.WithError(err).Warn("badge lookup failed")
		return nil
	}
	if earned {
		return nil
	}

	if err := u.badges.Grant(ctx, userID, entity.BadgePerfectFoundation, now); err != nil {
		if !errors.Is(err, entity.ErrBadgeAlreadyEarned) {
			log.WithError(err).Warn("badge grant failed")
		}
		return nil
	}

	badge, err := u.badges.GetBySlug(ctx, entity.BadgePerfectFoundation)
	if err != nil {
		log.WithError(err).Warn("badge catalog lookup failed")
		return nil
	}
	return badge
}
