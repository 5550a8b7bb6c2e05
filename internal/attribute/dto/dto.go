package dto

import (
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

type AttributeView struct {
	ID              int64               `json:"id"`
	Name            string              `json:"name"`
	Type            model.AttributeType `json:"type"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
	ProductsInUse   int                 `json:"productsInUse"`
	ProductCategory string              `json:"productCategory,omitempty"`
	LinkedType      *model.LinkType     `json:"linkedType,omitempty"`
}

type PaginatedAttributes struct {
	Data       []AttributeView `json:"data"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"totalPages"`
}

func NewAttributeView(s model.AttributeSummary) AttributeView {
	return AttributeView{
		ID:              s.ID,
		Name:            s.Name,
		Type:            s.Type,
		CreatedAt:       s.CreatedAt.UTC(),
		UpdatedAt:       s.UpdatedAt.UTC(),
		ProductsInUse:   s.ProductsInUse,
		ProductCategory: s.ProductCategory,
	}
}

// TotalPages is ceil(total/limit).
func TotalPages(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
