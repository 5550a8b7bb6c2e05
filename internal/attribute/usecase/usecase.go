package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/fekuna/omnipos-catalog-service/internal/attribute"
	"github.com/fekuna/omnipos-catalog-service/internal/attribute/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/catalogcache"
	"github.com/fekuna/omnipos-catalog-service/internal/category"
	"github.com/fekuna/omnipos-catalog-service/internal/hierarchy"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
)

type attributeUseCase struct {
	repo       attribute.Repository
	categories category.Repository
	cache      *catalogcache.Cache
	logger     logger.ZapLogger
}

func NewAttributeUseCase(repo attribute.Repository, categories category.Repository, cache *catalogcache.Cache, log logger.ZapLogger) attribute.UseCase {
	return &attributeUseCase{
		repo:       repo,
		categories: categories,
		cache:      cache,
		logger:     log,
	}
}

func (uc *attributeUseCase) FindAttributes(ctx context.Context, filters dto.AttributeFilters) (*dto.PaginatedAttributes, error) {
	f, err := filters.Normalize()
	if err != nil {
		return nil, err
	}

	// 1. Cache
	cacheKey, err := catalogcache.Key(catalogcache.AttributesPrefix, f)
	if err != nil {
		uc.logger.Warn("attribute cache key unavailable", zap.Error(err))
	} else {
		var cached dto.PaginatedAttributes
		if uc.cache.Get(ctx, cacheKey, &cached) {
			return &cached, nil
		}
	}

	// 2. Category scope, resolved once and shared by both queries and the classification
	query := dto.NewAttributeQuery(f)
	var scope *hierarchy.Scope
	if f.HasCategories() {
		categories, err := uc.categories.ListCategories(ctx)
		if err != nil {
			return nil, fmt.Errorf("load categories: %w", err)
		}
		scope, err = hierarchy.NewIndex(categories).Resolve(f.CategoryIDs)
		if err != nil {
			return nil, err
		}
		query.Links = dto.NewLinkFilter(scope.Requested(), scope.Inherited(), f.LinkTypes)
	}

	// 3. Total and page
	var (
		total int
		rows  []model.AttributeSummary
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = uc.repo.Count(gctx, query)
		return err
	})
	g.Go(func() error {
		var err error
		rows, err = uc.repo.FindPage(gctx, query)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// 4. Classification
	views := make([]dto.AttributeView, len(rows))
	for i, row := range rows {
		views[i] = dto.NewAttributeView(row)
	}
	if scope != nil && len(rows) > 0 {
		ids := make([]int64, len(rows))
		for i, row := range rows {
			ids[i] = row.ID
		}
		links, err := uc.repo.FindDirectLinks(ctx, ids)
		if err != nil {
			return nil, err
		}
		for i := range views {
			linkType := scope.Classify(links[views[i].ID])
			views[i].LinkedType = &linkType
		}
	}

	result := &dto.PaginatedAttributes{
		Data:       views,
		Total:      total,
		Page:       f.Page,
		Limit:      f.Limit,
		TotalPages: dto.TotalPages(total, f.Limit),
	}

	// 5. Cache
	if cacheKey != "" {
		uc.cache.Set(ctx, cacheKey, result)
	}

	return result, nil
}
