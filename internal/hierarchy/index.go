// Package hierarchy resolves the category forest in memory: ancestor closures, attribute
// link classification and tree assembly. An Index is built once per request from a single
// read of the categories table, so no walk costs more than one round trip.
package hierarchy

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

// Index is an adjacency view of the category graph.
type Index struct {
	nodes    map[int64]model.Category
	children map[int64][]int64
	roots    []int64
}

func NewIndex(categories []model.Category) *Index {
	sorted := make([]model.Category, len(categories))
	copy(sorted, categories)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	ix := &Index{
		nodes:    make(map[int64]model.Category, len(sorted)),
		children: make(map[int64][]int64),
	}
	for _, c := range sorted {
		ix.nodes[c.ID] = c
		if c.ParentID == nil {
			ix.roots = append(ix.roots, c.ID)
			continue
		}
		ix.children[*c.ParentID] = append(ix.children[*c.ParentID], c.ID)
	}
	return ix
}

func (ix *Index) Len() int {
	return len(ix.nodes)
}

func (ix *Index) Has(id int64) bool {
	_, ok := ix.nodes[id]
	return ok
}

// Children returns the ids of id's direct children in storage order.
func (ix *Index) Children(id int64) []int64 {
	return ix.children[id]
}

// Ancestors walks parent references upward from id and returns every strict ancestor.
// A parent chain that revisits a node, or points at a category that does not exist,
// is reported as a GraphIntegrityError instead of looping.
func (ix *Index) Ancestors(id int64) (mapset.Set[int64], error) {
	current, ok := ix.nodes[id]
	if !ok {
		return nil, apperror.NotFound("categories")
	}

	ancestors := mapset.NewThreadUnsafeSet[int64]()
	for current.ParentID != nil {
		parentID := *current.ParentID
		if parentID == id || ancestors.Contains(parentID) {
			return nil, apperror.GraphIntegrity("category %d: parent chain revisits category %d", id, parentID)
		}
		parent, ok := ix.nodes[parentID]
		if !ok {
			return nil, apperror.GraphIntegrity("category %d references missing parent %d", current.ID, parentID)
		}
		ancestors.Add(parentID)
		current = parent
	}
	return ancestors, nil
}

// Resolve validates the requested ids and folds their ancestor closures into a Scope.
// Any unknown id fails the whole request.
func (ix *Index) Resolve(requested []int64) (*Scope, error) {
	for _, id := range requested {
		if !ix.Has(id) {
			return nil, apperror.NotFound("categories")
		}
	}

	scope := &Scope{
		requested: mapset.NewThreadUnsafeSet(requested...),
		ancestors: mapset.NewThreadUnsafeSet[int64](),
	}
	for _, id := range requested {
		ancestors, err := ix.Ancestors(id)
		if err != nil {
			return nil, err
		}
		scope.ancestors = scope.ancestors.Union(ancestors)
	}
	return scope, nil
}
