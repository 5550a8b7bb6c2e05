package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

func ptr(id int64) *int64 { return &id }

// Food & Grocery(1) -> Beverages(2) -> Flavoured Drinks(3), Coffee(4); Beauty(5) -> Facial Cleanser(6)
func catalogFixture() []model.Category {
	return []model.Category{
		{ID: 6, Name: "Facial Cleanser", ParentID: ptr(5)},
		{ID: 1, Name: "Food & Grocery"},
		{ID: 3, Name: "Flavoured Drinks", ParentID: ptr(2)},
		{ID: 2, Name: "Beverages", ParentID: ptr(1)},
		{ID: 4, Name: "Coffee", ParentID: ptr(2)},
		{ID: 5, Name: "Beauty"},
	}
}

func TestAncestors(t *testing.T) {
	ix := NewIndex(catalogFixture())

	tests := []struct {
		name string
		id   int64
		want []int64
	}{
		{"root has none", 1, []int64{}},
		{"child of root", 2, []int64{1}},
		{"grandchild", 3, []int64{1, 2}},
		{"other tree", 6, []int64{5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ix.Ancestors(tt.id)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, got.ToSlice())
		})
	}
}

func TestAncestorsUnknownCategory(t *testing.T) {
	ix := NewIndex(catalogFixture())

	_, err := ix.Ancestors(99)
	assert.True(t, apperror.IsNotFound(err))
}

func TestAncestorsDetectsCycle(t *testing.T) {
	tests := []struct {
		name       string
		categories []model.Category
		start      int64
	}{
		{"self parent", []model.Category{{ID: 1, Name: "Loop", ParentID: ptr(1)}}, 1},
		{"two node cycle", []model.Category{
			{ID: 1, Name: "A", ParentID: ptr(2)},
			{ID: 2, Name: "B", ParentID: ptr(1)},
		}, 1},
		{"cycle above start", []model.Category{
			{ID: 1, Name: "A", ParentID: ptr(2)},
			{ID: 2, Name: "B", ParentID: ptr(3)},
			{ID: 3, Name: "C", ParentID: ptr(2)},
		}, 1},
		{"missing parent", []model.Category{{ID: 1, Name: "Orphan", ParentID: ptr(42)}}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewIndex(tt.categories).Ancestors(tt.start)
			require.Error(t, err)
			assert.True(t, apperror.IsGraphIntegrity(err))
		})
	}
}

func TestResolve(t *testing.T) {
	ix := NewIndex(catalogFixture())

	scope, err := ix.Resolve([]int64{3, 6})
	require.NoError(t, err)

	assert.Equal(t, []int64{3, 6}, scope.Requested())
	assert.Equal(t, []int64{1, 2, 5}, scope.Ancestors())
	assert.Equal(t, []int64{1, 2, 3, 5, 6}, scope.Applicable())
	assert.Equal(t, []int64{1, 2, 5}, scope.Inherited())
}

func TestResolveRequestedAncestorIsNotInherited(t *testing.T) {
	ix := NewIndex(catalogFixture())

	scope, err := ix.Resolve([]int64{2, 3})
	require.NoError(t, err)

	assert.Equal(t, []int64{1}, scope.Inherited())
	assert.Equal(t, []int64{1, 2, 3}, scope.Applicable())
}

func TestResolveFailsOnAnyUnknownID(t *testing.T) {
	ix := NewIndex(catalogFixture())

	_, err := ix.Resolve([]int64{2, 404})
	assert.True(t, apperror.IsNotFound(err))
}

func TestClassify(t *testing.T) {
	ix := NewIndex(catalogFixture())

	tests := []struct {
		name      string
		requested []int64
		links     []int64
		want      model.LinkType
	}{
		{"unlinked is global", []int64{3}, nil, model.LinkTypeGlobal},
		{"unlinked is global for roots", []int64{1}, []int64{}, model.LinkTypeGlobal},
		{"linked to requested", []int64{2}, []int64{2}, model.LinkTypeDirect},
		{"linked to parent", []int64{3}, []int64{2}, model.LinkTypeInherited},
		{"linked to grandparent", []int64{3}, []int64{1}, model.LinkTypeInherited},
		{"direct wins over inherited", []int64{3}, []int64{1, 3}, model.LinkTypeDirect},
		{"linked to descendant only", []int64{2}, []int64{3}, model.LinkTypeGlobal},
		{"linked to unrelated tree", []int64{3}, []int64{6}, model.LinkTypeGlobal},
		{"any requested category counts", []int64{4, 6}, []int64{5}, model.LinkTypeInherited},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope, err := ix.Resolve(tt.requested)
			require.NoError(t, err)
			assert.Equal(t, tt.want, scope.Classify(tt.links))
		})
	}
}

func TestForest(t *testing.T) {
	ix := NewIndex(catalogFixture())

	forest, err := ix.Forest()
	require.NoError(t, err)
	require.Len(t, forest, 2)

	food := forest[0]
	assert.Equal(t, "Food & Grocery", food.Name)
	require.Len(t, food.Children, 1)
	beverages := food.Children[0]
	assert.Equal(t, int64(2), beverages.ID)
	require.Len(t, beverages.Children, 2)
	assert.Equal(t, int64(3), beverages.Children[0].ID)
	assert.Equal(t, int64(4), beverages.Children[1].ID)
	assert.NotNil(t, beverages.Children[0].Children)
	assert.Empty(t, beverages.Children[0].Children)

	beauty := forest[1]
	assert.Equal(t, int64(5), beauty.ID)
	require.Len(t, beauty.Children, 1)
	assert.Equal(t, "Facial Cleanser", beauty.Children[0].Name)
}

func TestForestContainsEveryCategoryOnce(t *testing.T) {
	categories := catalogFixture()
	forest, err := NewIndex(categories).Forest()
	require.NoError(t, err)

	seen := map[int64]int{}
	var walk func(nodes []*TreeNode)
	walk = func(nodes []*TreeNode) {
		for _, n := range nodes {
			seen[n.ID]++
			walk(n.Children)
		}
	}
	walk(forest)

	assert.Len(t, seen, len(categories))
	for id, n := range seen {
		assert.Equalf(t, 1, n, "category %d", id)
	}
}

func TestForestRejectsCycles(t *testing.T) {
	categories := append(catalogFixture(),
		model.Category{ID: 7, Name: "A", ParentID: ptr(8)},
		model.Category{ID: 8, Name: "B", ParentID: ptr(7)},
	)

	_, err := NewIndex(categories).Forest()
	assert.True(t, apperror.IsGraphIntegrity(err))
}

func TestForestEmpty(t *testing.T) {
	forest, err := NewIndex(nil).Forest()
	require.NoError(t, err)
	assert.Empty(t, forest)
}
