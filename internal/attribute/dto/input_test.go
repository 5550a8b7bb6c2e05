package dto

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

func TestNormalizeDefaults(t *testing.T) {
	f, err := AttributeFilters{}.Normalize()
	require.NoError(t, err)

	assert.Equal(t, AttributeFilters{Page: 1, Limit: 25, SortBy: "name", SortOrder: "ASC"}, f)
	assert.Equal(t, 0, f.Offset())
	assert.False(t, f.HasCategories())
}

func TestNormalizeCanonicalizes(t *testing.T) {
	f, err := AttributeFilters{
		Search:      "  Colour ",
		Page:        3,
		Limit:       10,
		SortBy:      "updatedAt",
		SortOrder:   "desc",
		CategoryIDs: []int64{5, 2, 5, 1},
		LinkTypes:   []model.LinkType{"global", "DIRECT", "Global"},
	}.Normalize()
	require.NoError(t, err)

	assert.Equal(t, "colour", f.Search)
	assert.Equal(t, "updatedAt", f.SortBy)
	assert.Equal(t, "DESC", f.SortOrder)
	assert.Equal(t, []int64{1, 2, 5}, f.CategoryIDs)
	assert.Equal(t, []model.LinkType{model.LinkTypeDirect, model.LinkTypeGlobal}, f.LinkTypes)
	assert.Equal(t, 20, f.Offset())
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	in := AttributeFilters{CategoryIDs: []int64{3, 1}}
	_, err := in.Normalize()
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 1}, in.CategoryIDs)
}

func TestNormalizeUnknownSortByFallsBack(t *testing.T) {
	f, err := AttributeFilters{SortBy: "id; DROP TABLE attributes"}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, "name", f.SortBy)
}

func TestNormalizeRejects(t *testing.T) {
	tests := []struct {
		name    string
		filters AttributeFilters
		message string
	}{
		{"negative page", AttributeFilters{Page: -2}, "page must not be negative"},
		{"negative limit", AttributeFilters{Limit: -1}, "limit must not be negative"},
		{"sort order", AttributeFilters{SortOrder: "up"}, `sortOrder must be one of [ASC DESC], got "UP"`},
		{"link type", AttributeFilters{LinkTypes: []model.LinkType{"sibling"}}, `linkTypes must be one of [DIRECT INHERITED GLOBAL], got "SIBLING"`},
		{"category id", AttributeFilters{CategoryIDs: []int64{-4}}, "categoryIds must contain positive ids"},
		{"offset overflow", AttributeFilters{Page: math.MaxInt, Limit: 2}, "page is out of range for the given limit"},
		{"offset overflow default limit", AttributeFilters{Page: math.MaxInt / 10}, "page is out of range for the given limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.filters.Normalize()
			require.Error(t, err)
			assert.True(t, apperror.IsValidation(err))
			assert.Equal(t, tt.message, apperror.PublicMessage(err))
		})
	}
}

func TestNormalizeKeepsOffsetNonNegative(t *testing.T) {
	f, err := AttributeFilters{Page: math.MaxInt/25 + 1}.Normalize()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, f.Offset(), 0)

	f, err = AttributeFilters{Page: 1, Limit: math.MaxInt}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, 0, f.Offset())
}

func TestNewLinkFilter(t *testing.T) {
	all := NewLinkFilter([]int64{3}, []int64{1, 2}, nil)
	assert.True(t, all.Direct)
	assert.True(t, all.InheritedOnly)
	assert.True(t, all.Global)

	some := NewLinkFilter([]int64{3}, []int64{1, 2}, []model.LinkType{model.LinkTypeInherited})
	assert.False(t, some.Direct)
	assert.True(t, some.InheritedOnly)
	assert.False(t, some.Global)
	assert.Equal(t, []int64{1, 2}, some.Inherited)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 25))
	assert.Equal(t, 1, TotalPages(25, 25))
	assert.Equal(t, 2, TotalPages(26, 25))
	assert.Equal(t, 7, TotalPages(7, 1))
}
