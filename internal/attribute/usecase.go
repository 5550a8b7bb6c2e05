package attribute

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/attribute/dto"
)

type UseCase interface {
	FindAttributes(ctx context.Context, filters dto.AttributeFilters) (*dto.PaginatedAttributes, error)
}
