package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/fekuna/omnipos-catalog-service/internal/catalogcache"
	"github.com/fekuna/omnipos-catalog-service/internal/category"
	"github.com/fekuna/omnipos-catalog-service/internal/category/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/hierarchy"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
)

type categoryUseCase struct {
	repo   category.Repository
	cache  *catalogcache.Cache
	logger logger.ZapLogger
}

func NewCategoryUseCase(repo category.Repository, cache *catalogcache.Cache, log logger.ZapLogger) category.UseCase {
	return &categoryUseCase{
		repo:   repo,
		cache:  cache,
		logger: log,
	}
}

func (uc *categoryUseCase) BuildTree(ctx context.Context, includeCounts bool) ([]*dto.CategoryNode, error) {
	// 1. Cache
	cacheKey := catalogcache.TreeKey(includeCounts)
	var cached []*dto.CategoryNode
	if uc.cache.Get(ctx, cacheKey, &cached) {
		return cached, nil
	}

	// 2. Load the graph and, if asked, both counts
	var (
		categories      []model.Category
		attributeCounts map[int64]int
		productCounts   map[int64]int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		categories, err = uc.repo.ListCategories(gctx)
		return err
	})
	if includeCounts {
		g.Go(func() error {
			var err error
			attributeCounts, err = uc.repo.CountDirectAttributes(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			productCounts, err = uc.repo.CountProducts(gctx)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// 3. Forest
	forest, err := hierarchy.NewIndex(categories).Forest()
	if err != nil {
		return nil, err
	}

	tree := make([]*dto.CategoryNode, len(forest))
	for i, root := range forest {
		tree[i] = toNode(root, includeCounts, attributeCounts, productCounts)
	}

	// 4. Cache
	uc.cache.Set(ctx, cacheKey, tree)

	return tree, nil
}

// toNode converts a subtree without recursing, so depth costs heap and not stack.
func toNode(root *hierarchy.TreeNode, includeCounts bool, attributeCounts, productCounts map[int64]int) *dto.CategoryNode {
	newNode := func(n *hierarchy.TreeNode) *dto.CategoryNode {
		node := &dto.CategoryNode{
			ID:       n.ID,
			Name:     n.Name,
			Children: make([]*dto.CategoryNode, len(n.Children)),
		}
		if includeCounts {
			attributes, products := attributeCounts[n.ID], productCounts[n.ID]
			node.AssociatedAttributes = &attributes
			node.ProductsCount = &products
		}
		return node
	}

	type pair struct {
		src *hierarchy.TreeNode
		dst *dto.CategoryNode
	}
	out := newNode(root)
	stack := []pair{{root, out}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for i, child := range p.src.Children {
			p.dst.Children[i] = newNode(child)
			stack = append(stack, pair{child, p.dst.Children[i]})
		}
	}
	return out
}
