package dto

// CategoryNode is one category of the tree with its children in storage order.
// The counts are present only when requested and never include descendants.
type CategoryNode struct {
	ID                   int64           `json:"id"`
	Name                 string          `json:"name"`
	Children             []*CategoryNode `json:"children"`
	AssociatedAttributes *int            `json:"associatedAttributes,omitempty"`
	ProductsCount        *int            `json:"productsCount,omitempty"`
}

// TreeResponse wraps the forest so it can travel as a single document.
type TreeResponse struct {
	Data []*CategoryNode `json:"data"`
}

type TreeRequest struct {
	IncludeCounts bool `json:"includeCounts"`
}
