package seed

import "github.com/fekuna/omnipos-catalog-service/internal/model"

type Dataset struct {
	Categories []CategorySeed
	Attributes []AttributeSeed
	Products   []ProductSeed
}

// CategorySeed names its parent, which must appear earlier in the list.
type CategorySeed struct {
	Name   string
	Parent string
}

type AttributeSeed struct {
	Name       string
	Type       model.AttributeType
	Categories []string
}

type ProductSeed struct {
	Name        string
	Description string
	Category    string
	Values      []ValueSeed
}

type ValueSeed struct {
	Attribute string
	Value     string
}

// Demo is the sample catalog: two food and beauty hierarchies, global and
// category-bound attributes and three products with attribute values.
func Demo() Dataset {
	return Dataset{
		Categories: []CategorySeed{
			{Name: "Beauty"},
			{Name: "Children & Toys"},
			{Name: "Fashion"},
			{Name: "Food & Grocery"},
			{Name: "Beverages", Parent: "Food & Grocery"},
			{Name: "Noodles", Parent: "Food & Grocery"},
			{Name: "Facial Cleanser", Parent: "Beauty"},
			{Name: "Carbonated Drinks", Parent: "Beverages"},
			{Name: "Cocoa & Malted Drinks", Parent: "Beverages"},
			{Name: "Coffee", Parent: "Beverages"},
			{Name: "Flavoured Drinks", Parent: "Beverages"},
			{Name: "Health & Energy Drinks", Parent: "Beverages"},
		},
		Attributes: []AttributeSeed{
			{Name: "ASIN", Type: model.AttributeTypeShortText},
			{Name: "Allow Reviews", Type: model.AttributeTypeDropdown},
			{Name: "Backorders", Type: model.AttributeTypeDropdown},
			{Name: "Brand", Type: model.AttributeTypeShortText},
			{Name: "Collection", Type: model.AttributeTypeMultiSelect},
			{Name: "Organic Flavour", Type: model.AttributeTypeDropdown, Categories: []string{"Flavoured Drinks"}},
			{Name: "Flavour", Type: model.AttributeTypeDropdown, Categories: []string{"Noodles", "Flavoured Drinks"}},
			{Name: "Color", Type: model.AttributeTypeShortText, Categories: []string{"Noodles", "Flavoured Drinks"}},
			{Name: "Product Benefits", Type: model.AttributeTypeShortText, Categories: []string{"Facial Cleanser", "Food & Grocery"}},
			{Name: "Caffeine Content", Type: model.AttributeTypeShortText, Categories: []string{"Beverages"}},
			{Name: "Sugar Content", Type: model.AttributeTypeShortText, Categories: []string{"Beverages"}},
			{Name: "Pocket Number", Type: model.AttributeTypeShortText},
			{Name: "Product Dimensions", Type: model.AttributeTypeShortText},
			{Name: "Tags", Type: model.AttributeTypeMultiSelect},
			{Name: "Usage Instructions", Type: model.AttributeTypeLongText},
			{Name: "Preferred URL", Type: model.AttributeTypeURL},
		},
		Products: []ProductSeed{
			{
				Name:        "XiangPiaoPiao Milk Tea",
				Description: "Original flavor milk tea powder",
				Category:    "Flavoured Drinks",
				Values: []ValueSeed{
					{"Flavour", "Original"},
					{"Color", "Brown"},
					{"Brand", "XiangPiaoPiao"},
					{"Product Benefits", "Instant preparation, great taste"},
					{"Sugar Content", "Medium"},
				},
			},
			{
				Name:        "Strawberry Flavoured Drink",
				Description: "Refreshing strawberry flavored beverage",
				Category:    "Flavoured Drinks",
				Values: []ValueSeed{
					{"Flavour", "Strawberry"},
					{"Color", "Pink"},
					{"Brand", "RefreshCo"},
					{"Sugar Content", "High"},
				},
			},
			{
				Name:        "Energy Boost Drink",
				Description: "Energy drink with vitamins",
				Category:    "Health & Energy Drinks",
				Values: []ValueSeed{
					{"Flavour", "Berry"},
					{"Brand", "EnergyMax"},
					{"Caffeine Content", "80mg"},
					{"Product Benefits", "Energy boost, vitamin enriched"},
				},
			},
		},
	}
}

// Validate checks that every name reference resolves and that names are unique.
func (d Dataset) Validate() error {
	categories := map[string]bool{}
	for _, c := range d.Categories {
		if categories[c.Name] {
			return errorf("duplicate category %q", c.Name)
		}
		if c.Parent != "" && !categories[c.Parent] {
			return errorf("category %q: parent %q must be declared before it", c.Name, c.Parent)
		}
		categories[c.Name] = true
	}

	attributes := map[string]bool{}
	for _, a := range d.Attributes {
		if attributes[a.Name] {
			return errorf("duplicate attribute %q", a.Name)
		}
		for _, c := range a.Categories {
			if !categories[c] {
				return errorf("attribute %q: unknown category %q", a.Name, c)
			}
		}
		attributes[a.Name] = true
	}

	for _, p := range d.Products {
		if !categories[p.Category] {
			return errorf("product %q: unknown category %q", p.Name, p.Category)
		}
		for _, v := range p.Values {
			if !attributes[v.Attribute] {
				return errorf("product %q: unknown attribute %q", p.Name, v.Attribute)
			}
		}
	}
	return nil
}
