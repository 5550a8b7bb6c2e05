package category

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

type Repository interface {
	// ListCategories returns every category ordered by id.
	ListCategories(ctx context.Context) ([]model.Category, error)

	CountDirectAttributes(ctx context.Context) (map[int64]int, error)
	CountProducts(ctx context.Context) (map[int64]int, error)
}
