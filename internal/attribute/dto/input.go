package dto

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

const (
	DefaultPage      = 1
	DefaultLimit     = 25
	DefaultSortBy    = "name"
	DefaultSortOrder = "ASC"
)

// SortColumns maps the sortable fields to their columns. Anything else sorts by name.
var SortColumns = map[string]string{
	"name":      "a.name",
	"type":      "a.type",
	"createdAt": "a.created_at",
	"updatedAt": "a.updated_at",
}

// AttributeFilters is the input of FindAttributes. After Normalize its JSON encoding is
// the cache key material, so field order here is part of the key format.
type AttributeFilters struct {
	Search        string           `json:"search"`
	Page          int              `json:"page" validate:"gte=0"`
	Limit         int              `json:"limit" validate:"gte=0"`
	SortBy        string           `json:"sortBy"`
	SortOrder     string           `json:"sortOrder" validate:"omitempty,oneof=ASC DESC"`
	CategoryIDs   []int64          `json:"categoryIds" validate:"dive,gt=0"`
	LinkTypes     []model.LinkType `json:"linkTypes" validate:"dive,oneof=DIRECT INHERITED GLOBAL"`
	NotApplicable bool             `json:"notApplicable"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		return name
	})
	return v
}

// Normalize validates f and returns the canonical form: defaults applied, enums
// upper-cased, id and link type lists sorted and deduplicated, search lower-cased.
func (f AttributeFilters) Normalize() (AttributeFilters, error) {
	n := AttributeFilters{
		Search:        strings.ToLower(strings.TrimSpace(f.Search)),
		Page:          f.Page,
		Limit:         f.Limit,
		SortBy:        f.SortBy,
		SortOrder:     strings.ToUpper(strings.TrimSpace(f.SortOrder)),
		NotApplicable: f.NotApplicable,
	}

	if len(f.CategoryIDs) > 0 {
		n.CategoryIDs = slices.Clone(f.CategoryIDs)
		slices.Sort(n.CategoryIDs)
		n.CategoryIDs = slices.Compact(n.CategoryIDs)
	}
	if len(f.LinkTypes) > 0 {
		n.LinkTypes = make([]model.LinkType, 0, len(f.LinkTypes))
		for _, t := range f.LinkTypes {
			n.LinkTypes = append(n.LinkTypes, model.LinkType(strings.ToUpper(strings.TrimSpace(string(t)))))
		}
		slices.Sort(n.LinkTypes)
		n.LinkTypes = slices.Compact(n.LinkTypes)
	}

	if err := validate.Struct(n); err != nil {
		return AttributeFilters{}, validationError(err)
	}

	if n.Page == 0 {
		n.Page = DefaultPage
	}
	if n.Limit == 0 {
		n.Limit = DefaultLimit
	}
	if _, ok := SortColumns[n.SortBy]; !ok {
		n.SortBy = DefaultSortBy
	}
	if n.SortOrder == "" {
		n.SortOrder = DefaultSortOrder
	}
	// Offset must stay representable.
	if n.Page-1 > math.MaxInt/n.Limit {
		return AttributeFilters{}, apperror.Validation("page is out of range for the given limit")
	}
	return n, nil
}

// Offset is the number of rows skipped before the requested page.
func (f AttributeFilters) Offset() int {
	return (f.Page - 1) * f.Limit
}

// HasCategories reports whether the query is scoped to categories, which is also
// what decides whether results carry a link classification.
func (f AttributeFilters) HasCategories() bool {
	return len(f.CategoryIDs) > 0
}

func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperror.ValidationWrap("invalid attribute filters", err)
	}
	fe := fieldErrs[0]
	var msg string
	switch fe.Tag() {
	case "gte":
		msg = fmt.Sprintf("%s must not be negative", fe.Field())
	case "gt":
		msg = fmt.Sprintf("%s must contain positive ids", baseField(fe.Field()))
	case "oneof":
		msg = fmt.Sprintf("%s must be one of [%s], got %q", baseField(fe.Field()), fe.Param(), fe.Value())
	default:
		msg = fmt.Sprintf("%s is invalid", fe.Field())
	}
	return apperror.ValidationWrap(msg, err)
}

// baseField strips the element index validator adds for dived slices: "linkTypes[0]".
func baseField(field string) string {
	name, _, _ := strings.Cut(field, "[")
	return name
}

// AttributeQuery is what the repository executes: the filtered, sorted page window.
type AttributeQuery struct {
	Search    string
	Links     *LinkFilter
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}

// LinkFilter keeps an attribute when it matches any enabled classification:
// direct when linked to a requested category, inherited when linked to an ancestor but
// to no requested category, global when it has no links at all.
type LinkFilter struct {
	Requested []int64
	Inherited []int64

	Direct        bool
	InheritedOnly bool
	Global        bool
}

// NewLinkFilter enables the given link types, or all of them when none are given. The
// latter is the applicable set (requested and ancestors) plus global attributes.
func NewLinkFilter(requested, inherited []int64, linkTypes []model.LinkType) *LinkFilter {
	f := &LinkFilter{Requested: requested, Inherited: inherited}
	if len(linkTypes) == 0 {
		f.Direct, f.InheritedOnly, f.Global = true, true, true
		return f
	}
	for _, t := range linkTypes {
		switch t {
		case model.LinkTypeDirect:
			f.Direct = true
		case model.LinkTypeInherited:
			f.InheritedOnly = true
		case model.LinkTypeGlobal:
			f.Global = true
		}
	}
	return f
}

func NewAttributeQuery(f AttributeFilters) *AttributeQuery {
	return &AttributeQuery{
		Search:    f.Search,
		SortBy:    f.SortBy,
		SortOrder: f.SortOrder,
		Limit:     f.Limit,
		Offset:    f.Offset(),
	}
}
