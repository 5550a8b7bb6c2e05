package attribute

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/attribute/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

type Repository interface {
	Count(ctx context.Context, query *dto.AttributeQuery) (int, error)
	FindPage(ctx context.Context, query *dto.AttributeQuery) ([]model.AttributeSummary, error)

	// FindDirectLinks returns the directly linked category ids of each attribute.
	FindDirectLinks(ctx context.Context, attributeIDs []int64) (map[int64][]int64, error)
}
