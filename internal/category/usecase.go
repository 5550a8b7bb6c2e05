package category

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/category/dto"
)

type UseCase interface {
	BuildTree(ctx context.Context, includeCounts bool) ([]*dto.CategoryNode, error)
}
