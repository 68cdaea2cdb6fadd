package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/eslsoft/lingua/internal/entity"
	entdb "github.com/eslsoft/lingua/internal/infrastructure/database/ent"
	entbadge "github.com/eslsoft/lingua/internal/infrastructure/database/ent/badge"
	entuserbadge "github.com/eslsoft/lingua/internal/infrastructure/database/ent/userbadge"
	entuserxp "github.com/eslsoft/lingua/internal/infrastructure/database/ent/userxp"
	entxpevent "github.com/eslsoft/lingua/internal/infrastructure/database/ent/xpevent"
	"github.com/eslsoft/lingua/internal/repository"
)

type XpEventRepository struct {
	client *entdb.Client
}

// NewXpEventRepository constructs an ent-backed reward log.
func NewXpEventRepository(client *entdb.Client) repository.XpEventRepository {
	return &XpEventRepository{client: client}
}

func (r *XpEventRepository) Create(ctx context.Context, event *entity.XpEvent) (*entity.XpEvent, error) {
	builder := r.client.XpEvent.Create().
		SetUserID(event.UserID).
		SetSource(event.Source).
		SetSourceSlug(event.SourceSlug).
		SetSessionID(event.SessionID).
		SetDedupeKey(event.DedupeKey).
		SetAwardedOn(event.AwardedOn).
		SetXp(event.Xp).
		SetPerfect(event.Perfect).
		SetCreatedAt(event.CreatedAt)
	if event.Meta != nil {
		builder.SetMeta(event.Meta)
	}

	rec, err := builder.Save(ctx)
	if err != nil {
		return nil, translateXpEventError(err)
	}
	return mapEntXpEvent(rec), nil
}

func (r *XpEventRepository) LatestByDedupeKey(ctx context.Context, userID int64, dedupeKey string) (*entity.XpEvent, error) {
	rec, err := r.client.XpEvent.Query().
		Where(
			entxpevent.UserIDEQ(userID),
			entxpevent.DedupeKeyEQ(dedupeKey),
		).
		Order(
			entxpevent.ByCreatedAt(sql.OrderDesc()),
			entxpevent.ByID(sql.OrderDesc()),
		).
		First(ctx)
	if err != nil {
		if entdb.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find latest xp event: %w", err)
	}
	return mapEntXpEvent(rec), nil
}

func (r *XpEventRepository) FindBySession(ctx context.Context, userID int64, sessionID string) (*entity.XpEvent, error) {
	rec, err := r.client.XpEvent.Query().
		Where(
			entxpevent.UserIDEQ(userID),
			entxpevent.SessionIDEQ(sessionID),
		).
		First(ctx)
	if err != nil {
		if entdb.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find session xp event: %w", err)
	}
	return mapEntXpEvent(rec), nil
}

// translateXpEventError maps a violated award unique index to the domain
// duplicate error. Postgres reports code 23505; sqlite surfaces through ent's
// constraint error.
func translateXpEventError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return entity.ErrDuplicateXpEvent
	}
	if entdb.IsConstraintError(err) {
		return entity.ErrDuplicateXpEvent
	}
	return fmt.Errorf("create xp event: %w", err)
}

func mapEntXpEvent(rec *entdb.XpEvent) *entity.XpEvent {
	if rec == nil {
		return nil
	}
	out := &entity.XpEvent{
		ID:         int64(rec.ID),
		UserID:     rec.UserID,
		Source:     rec.Source,
		SourceSlug: rec.SourceSlug,
		SessionID:  rec.SessionID,
		DedupeKey:  rec.DedupeKey,
		AwardedOn:  rec.AwardedOn,
		Xp:         rec.Xp,
		Perfect:    rec.Perfect,
		CreatedAt:  rec.CreatedAt,
	}
	if len(rec.Meta) > 0 {
		out.Meta = make(map[string]string, len(rec.Meta))
		for k, v := range rec.Meta {
			out.Meta[k] = v
		}
	}
	return out
}

type UserXpRepository struct {
	client *entdb.Client
}

// NewUserXpRepository constructs the cumulative xp store.
func NewUserXpRepository(client *entdb.Client) repository.UserXpRepository {
	return &UserXpRepository{client: client}
}

func (r *UserXpRepository) Get(ctx context.Context, userID int64) (*entity.UserXp, error) {
	rec, err := r.client.UserXp.Query().
		Where(entuserxp.UserIDEQ(userID)).
		First(ctx)
	if err != nil {
		if entdb.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user xp: %w", err)
	}
	return mapEntUserXp(rec), nil
}

func (r *UserXpRepository) Save(ctx context.Context, userXp *entity.UserXp) (*entity.UserXp, error) {
	err := r.client.UserXp.Create().
		SetUserID(userXp.UserID).
		SetXpTotal(userXp.XpTotal).
		SetLevel(userXp.Level).
		SetUpdatedAt(userXp.UpdatedAt).
		OnConflictColumns(entuserxp.FieldUserID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("save user xp: %w", err)
	}
	return r.Get(ctx, userXp.UserID)
}

func mapEntUserXp(rec *entdb.UserXp) *entity.UserXp {
	if rec == nil {
		return nil
	}
	return &entity.UserXp{
		ID:        int64(rec.ID),
		UserID:    rec.UserID,
		XpTotal:   rec.XpTotal,
		Level:     rec.Level,
		UpdatedAt: rec.UpdatedAt,
	}
}

type BadgeRepository struct {
	client *entdb.Client
}

// NewBadgeRepository constructs the badge catalog and grant store.
func NewBadgeRepository(client *entdb.Client) repository.BadgeRepository {
	return &BadgeRepository{client: client}
}

func (r *BadgeRepository) GetBySlug(ctx context.Context, slug string) (*entity.Badge, error) {
	rec, err := r.client.Badge.Query().
		Where(entbadge.SlugEQ(slug)).
		First(ctx)
	if err != nil {
		if entdb.IsNotFound(err) {
			return nil, entity.ErrBadgeNotFound
		}
		return nil, fmt.Errorf("get badge: %w", err)
	}
	return &entity.Badge{
		ID:          int64(rec.ID),
		Slug:        rec.Slug,
		Name:        rec.Name,
		Description: rec.Description,
		Icon:        rec.Icon,
	}, nil
}

func (r *BadgeRepository) HasBadge(ctx context.Context, userID int64, slug string) (bool, error) {
	exists, err := r.client.UserBadge.Query().
		Where(
			entuserbadge.UserIDEQ(userID),
			entuserbadge.BadgeSlugEQ(slug),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("check badge grant: %w", err)
	}
	return exists, nil
}

func (r *BadgeRepository) Grant(ctx context.Context, userID int64, slug string, at time.Time) error {
	err := r.client.UserBadge.Create().
		SetUserID(userID).
		SetBadgeSlug(slug).
		SetAwardedAt(at).
		Exec(ctx)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return entity.ErrBadgeAlreadyEarned
		}
		if entdb.IsConstraintError(err) {
			return entity.ErrBadgeAlreadyEarned
		}
		return fmt.Errorf("grant badge: %w", err)
	}
	return nil
}
