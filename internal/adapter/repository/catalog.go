package repository

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/eslsoft/lingua/internal/entity"
	entdb "github.com/eslsoft/lingua/internal/infrastructure/database/ent"
	entirregularverb "github.com/eslsoft/lingua/internal/infrastructure/database/ent/irregularverb"
	entvocabcluster "github.com/eslsoft/lingua/internal/infrastructure/database/ent/vocabcluster"
	entvocabpack "github.com/eslsoft/lingua/internal/infrastructure/database/ent/vocabpack"
	entvocabsense "github.com/eslsoft/lingua/internal/infrastructure/database/ent/vocabsense"
	"github.com/eslsoft/lingua/internal/repository"
)

type CatalogRepository struct {
	client *entdb.Client
}

// NewCatalogRepository constructs the ent-backed practice-surface catalog.
func NewCatalogRepository(client *entdb.Client) repository.CatalogRepository {
	return &CatalogRepository{client: client}
}

func (r *CatalogRepository) GetPack(ctx context.Context, slug string) (*entity.VocabPack, error) {
	rec, err := r.client.VocabPack.Query().
		Where(entvocabpack.SlugEQ(slug)).
		First(ctx)
	if err != nil {
		if entdb.IsNotFound(err) {
			return nil, entity.ErrPackNotFound
		}
		return nil, fmt.Errorf("get pack: %w", err)
	}
	return mapEntVocabPack(rec), nil
}

func (r *CatalogRepository) FlagshipPack(ctx context.Context) (*entity.VocabPack, error) {
	rec, err := r.client.VocabPack.Query().
		Where(entvocabpack.FlagshipEQ(true)).
		First(ctx)
	if err != nil {
		if entdb.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get flagship pack: %w", err)
	}
	return mapEntVocabPack(rec), nil
}

func (r *CatalogRepository) GetCluster(ctx context.Context, slug string) (*entity.VocabCluster, error) {
	rec, err := r.client.VocabCluster.Query().
		Where(entvocabcluster.SlugEQ(slug)).
		First(ctx)
	if err != nil {
		if entdb.IsNotFound(err) {
			return nil, entity.ErrClusterNotFound
		}
		return nil, fmt.Errorf("get cluster: %w", err)
	}
	return &entity.VocabCluster{
		ID:    int64(rec.ID),
		Slug:  rec.Slug,
		Name:  rec.Name,
		Topic: rec.Topic,
	}, nil
}

func (r *CatalogRepository) ListSensesByIDs(ctx context.Context, ids []int64) ([]entity.VocabSense, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.client.VocabSense.Query().
		Where(entvocabsense.IDIn(lo.Map(ids, func(id int64, _ int) int { return int(id) })...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list senses: %w", err)
	}

	result := make([]entity.VocabSense, 0, len(rows))
	for _, row := range rows {
		result = append(result, entity.VocabSense{
			ID:          int64(row.ID),
			Word:        row.Word,
			Translation: row.Translation,
			PackSlug:    row.PackSlug,
			ClusterSlug: row.ClusterSlug,
		})
	}
	return result, nil
}

func (r *CatalogRepository) ListVerbsByIDs(ctx context.Context, ids []int64) ([]entity.IrregularVerb, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.client.IrregularVerb.Query().
		Where(entirregularverb.IDIn(lo.Map(ids, func(id int64, _ int) int { return int(id) })...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list irregular verbs: %w", err)
	}

	result := make([]entity.IrregularVerb, 0, len(rows))
	for _, row := range rows {
		result = append(result, entity.IrregularVerb{
			ID:          int64(row.ID),
			Base:        row.Base,
			Past:        row.Past,
			Participle:  row.Participle,
			Translation: row.Translation,
		})
	}
	return result, nil
}

func mapEntVocabPack(rec *entdb.VocabPack) *entity.VocabPack {
	if rec == nil {
		return nil
	}
	return &entity.VocabPack{
		ID:          int64(rec.ID),
		Slug:        rec.Slug,
		Name:        rec.Name,
		Description: rec.Description,
		Language:    rec.Language,
		Flagship:    rec.Flagship,
	}
}
