package hierarchy

import (
	"slices"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

// Scope is the requested category set together with the union of its strict ancestors.
type Scope struct {
	requested mapset.Set[int64]
	ancestors mapset.Set[int64]
}

func (s *Scope) Requested() []int64 {
	return sortedIDs(s.requested)
}

func (s *Scope) Ancestors() []int64 {
	return sortedIDs(s.ancestors)
}

// Applicable is the requested ids plus every ancestor.
func (s *Scope) Applicable() []int64 {
	return sortedIDs(s.requested.Union(s.ancestors))
}

// Inherited is the ancestors that were not requested themselves.
func (s *Scope) Inherited() []int64 {
	return sortedIDs(s.ancestors.Difference(s.requested))
}

// Classify derives the link type of an attribute from its direct category links.
// GLOBAL covers both unlinked attributes and links unrelated to the scope.
func (s *Scope) Classify(directLinks []int64) model.LinkType {
	if len(directLinks) == 0 {
		return model.LinkTypeGlobal
	}
	for _, id := range directLinks {
		if s.requested.Contains(id) {
			return model.LinkTypeDirect
		}
	}
	for _, id := range directLinks {
		if s.ancestors.Contains(id) {
			return model.LinkTypeInherited
		}
	}
	return model.LinkTypeGlobal
}

func sortedIDs(set mapset.Set[int64]) []int64 {
	ids := set.ToSlice()
	slices.Sort(ids)
	return ids
}
