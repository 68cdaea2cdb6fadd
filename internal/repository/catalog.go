package repository

import (
	"context"

	"github.com/eslsoft/lingua/internal/entity"
)

// CatalogRepository abstracts the static practice-surface catalog: packs,
// clusters, senses and the irregular-verb drill list. List methods silently
// skip ids that do not resolve.
type CatalogRepository interface {
	GetPack(ctx context.Context, slug string) (*entity.VocabPack, error)
	FlagshipPack(ctx context.Context) (*entity.VocabPack, error)
	GetCluster(ctx context.Context, slug string) (*entity.VocabCluster, error)
	ListSensesByIDs(ctx context.Context, ids []int64) ([]entity.VocabSense, error)
	ListVerbsByIDs(ctx context.Context, ids []int64) ([]entity.IrregularVerb, error)
}
