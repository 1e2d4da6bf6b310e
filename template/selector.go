// Package template maps classified pages onto the pages of a fixed design
// template: a candidate pool per slide type, a deterministic selection
// policy, and the shape inventory contract of the external inventory tool.
package template

import (
	"deckglow/model"
)

// Pools maps each slide type to its ordered, non-empty list of candidate
// template page indices. The catalog is fixed at build time for a given
// template; Default matches the bundled design.
type Pools map[model.SlideType][]int

// genericContent is the fallback template page for unmapped labels.
const genericContent = 18

// DefaultPools returns the candidate catalog for the bundled template.
func DefaultPools() Pools {
	return Pools{
		model.SlideTitle:          {0, 1, 4},
		model.SlideAgenda:         {6, 7},
		model.SlideSection:        {15, 16, 17},
		model.SlideContentBullets: {18, 19, 20},
		model.SlideContentImage:   {21, 22},
		model.SlideContent:        {18, 19, 20},
		model.SlideEnding:         {31, 32},
		model.SlideOther:          {genericContent},
	}
}

// Selector picks template pages for classified user pages. It is pure:
// the same label and page index always select the same template page.
type Selector struct {
	pools Pools
}

// NewSelector creates a selector over the given pools. Labels missing
// from the pools fall back to the generic content page.
func NewSelector(pools Pools) *Selector {
	return &Selector{pools: pools}
}

// Select returns the template page index for a page with the given label
// at the given position. The deck's first page keeps the lead title
// candidate; every other page round-robins through its label's pool so
// repeated labels get visual variety.
func (s *Selector) Select(label model.SlideType, pageIndex int) int {
	candidates := s.pools[label]
	if len(candidates) == 0 {
		candidates = []int{genericContent}
	}

	if pageIndex == 0 && label == model.SlideTitle {
		return candidates[0]
	}
	return candidates[pageIndex%len(candidates)]
}

// Sequence maps every page of a classified deck to its template page, in
// order. Pages must already carry their SlideType.
func (s *Selector) Sequence(pages []*model.Page) []int {
	seq := make([]int, len(pages))
	for i, page := range pages {
		seq[i] = s.Select(page.SlideType, page.Index)
	}
	return seq
}
