package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/review360-api/internal/models"
	appErrors "github.com/noah-isme/review360-api/pkg/errors"
)

const catalogCacheKey = "catalog:questions"

type questionLister interface {
	ListOrdered(ctx context.Context) ([]models.Question, error)
}

// CatalogService serves the seeded question catalog, optionally backed by a
// cache. The catalog is immutable at runtime so cached copies never go stale;
// derived results are never cached anywhere.
type CatalogService struct {
	repo   questionLister
	cache  *CacheService
	logger *zap.Logger
}

// NewCatalogService constructs a catalog service.
func NewCatalogService(repo questionLister, cache *CacheService, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{repo: repo, cache: cache, logger: logger}
}

// Questions returns the catalog ascending by display order.
func (s *CatalogService) Questions(ctx context.Context) ([]models.Question, error) {
	if s.cache.Enabled() {
		var cached []models.Question
		if hit, err := s.cache.Get(ctx, catalogCacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	questions, err := s.repo.ListOrdered(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load question catalog")
	}

	if s.cache.Enabled() {
		if err := s.cache.Set(ctx, catalogCacheKey, questions, 0); err != nil {
			s.logger.Warn("catalog cache write failed", zap.Error(err))
		}
	}
	return questions, nil
}
