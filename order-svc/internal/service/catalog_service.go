package service

import (
	"context"
	"fmt"

	"cardapio/order-svc/internal/domain"

	"go.uber.org/zap"
)

type CatalogService struct {
	store  MenuCatalogStore
	cache  CatalogCache
	logger *zap.Logger
}

func NewCatalogService(store MenuCatalogStore, cache CatalogCache, logger *zap.Logger) *CatalogService {
	return &CatalogService{store: store, cache: cache, logger: logger.Named("catalog")}
}

// Snapshot returns the whole menu, served from cache when possible. Cache
// failures only cost a trip to the store.
func (s *CatalogService) Snapshot(ctx context.Context) (*domain.Catalog, error) {
	if s.cache != nil {
		catalog, found, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn("catalog cache read failed", zap.Error(err))
		} else if found {
			return catalog, nil
		}
	}

	items, err := s.store.ListMenuItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	groups, err := s.store.ListVariationGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("list variation groups: %w", err)
	}
	variations, err := s.store.ListVariations(ctx)
	if err != nil {
		return nil, fmt.Errorf("list variations: %w", err)
	}
	catalog := &domain.Catalog{MenuItems: items, VariationGroups: groups, Variations: variations}

	if s.cache != nil {
		if err := s.cache.Set(ctx, catalog); err != nil {
			s.logger.Warn("catalog cache write failed", zap.Error(err))
		}
	}
	return catalog, nil
}

func (s *CatalogService) ListMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	return s.store.ListMenuItems(ctx)
}

func (s *CatalogService) ListVariations(ctx context.Context) ([]domain.Variation, error) {
	return s.store.ListVariations(ctx)
}

func (s *CatalogService) ListVariationGroups(ctx context.Context) ([]domain.VariationGroup, error) {
	return s.store.ListVariationGroups(ctx)
}

func (s *CatalogService) CreateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	if err := item.Validate(); err != nil {
		return &ValidationError{Message: err.Error()}
	}
	if err := s.store.CreateMenuItem(ctx, item); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CatalogService) CreateVariation(ctx context.Context, variation *domain.Variation) error {
	if err := variation.Validate(); err != nil {
		return &ValidationError{Message: err.Error()}
	}
	if err := s.store.CreateVariation(ctx, variation); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CatalogService) CreateVariationGroup(ctx context.Context, group *domain.VariationGroup) error {
	if err := group.Validate(); err != nil {
		return &ValidationError{Message: err.Error()}
	}
	if err := s.store.CreateVariationGroup(ctx, group); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// Quote prices a cart against the current menu.
func (s *CatalogService) Quote(ctx context.Context, drafts []LineDraft) (Quote, error) {
	if len(drafts) == 0 {
		return Quote{}, newValidationError("items", "cart is empty")
	}
	catalog, err := s.Snapshot(ctx)
	if err != nil {
		return Quote{}, err
	}
	return NewPricingEngine(*catalog).Quote(drafts)
}

func (s *CatalogService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("catalog cache invalidation failed", zap.Error(err))
	}
}
