package model

import "time"

type AttributeType string

const (
	AttributeTypeShortText   AttributeType = "Short Text"
	AttributeTypeLongText    AttributeType = "Long Text"
	AttributeTypeDropdown    AttributeType = "Dropdown"
	AttributeTypeMultiSelect AttributeType = "Multi Select"
	AttributeTypeURL         AttributeType = "URL"
)

// LinkType classifies how an attribute applies to a set of categories. It is derived
// per request and never stored.
type LinkType string

const (
	LinkTypeDirect    LinkType = "DIRECT"
	LinkTypeInherited LinkType = "INHERITED"
	LinkTypeGlobal    LinkType = "GLOBAL"
)

func (t LinkType) Valid() bool {
	switch t {
	case LinkTypeDirect, LinkTypeInherited, LinkTypeGlobal:
		return true
	}
	return false
}

type Attribute struct {
	ID        int64         `db:"id" json:"id"`
	Name      string        `db:"name" json:"name"`
	Type      AttributeType `db:"type" json:"type"`
	CreatedAt time.Time     `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time     `db:"updated_at" json:"updatedAt"`
}

// AttributeSummary is an attribute row joined with its usage aggregates.
type AttributeSummary struct {
	Attribute
	ProductsInUse   int    `db:"products_in_use"`
	ProductCategory string `db:"product_category"` // Distinct direct category names, ", " joined
}

// AttributeValue joins one product to one attribute. Only counted, never exposed.
type AttributeValue struct {
	ID          int64  `db:"id"`
	Value       string `db:"value"`
	ProductID   int64  `db:"product_id"`
	AttributeID int64  `db:"attribute_id"`
}

// AttributeLink is a direct attribute to category association.
type AttributeLink struct {
	AttributeID int64 `db:"attribute_id"`
	CategoryID  int64 `db:"category_id"`
}
