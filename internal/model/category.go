package model

type Category struct {
	ID       int64  `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	ParentID *int64 `db:"parent_id" json:"parentId,omitempty"` // Nullable, roots have none
}

// IsRoot reports whether the category has no parent.
func (c Category) IsRoot() bool {
	return c.ParentID == nil
}

// CategoryCount is a per-category aggregate, e.g. direct attributes or products.
type CategoryCount struct {
	CategoryID int64 `db:"category_id"`
	Count      int   `db:"count"`
}
