// Package classify assigns a semantic slide type to each page of a
// normalized deck.
//
// Classification is a deterministic, ordered rule cascade over aggregates
// of a single page: the first matching rule wins and later rules are
// shadowed. The order is a deliberate precedence policy — reordering the
// rules changes results, so they live in one auditable table.
package classify

import (
	"strings"

	"deckglow/model"
)

// Classifier applies the rule cascade with a fixed keyword table. The
// zero-cost way to get one with the default tables is New; a Classifier
// is immutable and safe for concurrent use.
type Classifier struct {
	keywords Keywords
	rules    []rule
}

// rule is one step of the cascade. The name shows up in debug output and
// tests; the predicate reads the precomputed page facts only.
type rule struct {
	name    string
	label   model.SlideType
	matches func(*pageFacts) bool
}

// pageFacts bundles everything the predicates may look at. Built once per
// Classify call; read-only afterwards.
type pageFacts struct {
	page      *model.Page
	layout    string // case-folded layout name
	allText   string // all shape text joined, original case
	stats     pageStats
	candidate *model.Shape // title candidate, may be nil
	keywords  Keywords
}

// New returns a classifier with the default keyword tables.
func New() *Classifier {
	return NewWithKeywords(DefaultKeywords())
}

// NewWithKeywords returns a classifier using the given keyword tables.
// Missing concepts fall back to the defaults.
func NewWithKeywords(k Keywords) *Classifier {
	c := &Classifier{keywords: DefaultKeywords().Merge(k)}
	c.rules = cascade()
	return c
}

// Classify returns the semantic type of the page. It is total: every
// page, including one with no shapes or no text, receives exactly one
// label from the closed set. Neither argument is mutated.
func (c *Classifier) Classify(page *model.Page, meta model.Meta) model.SlideType {
	st := aggregate(page)
	facts := &pageFacts{
		page:      page,
		layout:    fold(page.LayoutName),
		allText:   st.allText(),
		stats:     st,
		candidate: st.titleCandidate(meta.Height),
		keywords:  c.keywords,
	}

	for _, r := range c.rules {
		if r.matches(facts) {
			return r.label
		}
	}
	return model.SlideOther
}

// Classify applies the default classifier to a single page.
func Classify(page *model.Page, meta model.Meta) model.SlideType {
	return New().Classify(page, meta)
}

// cascade returns the ordered rule table. Precedence notes:
//
//   - The layout-name rules outrank every content heuristic, so a deck
//     with honest layout names classifies without guessing.
//   - The title rules (c, d) run before the section rule (g) even though
//     g's conditions are stricter; a short section page with a headline
//     can therefore land on title. That shadowing is intentional and
//     preserved.
func cascade() []rule {
	return []rule{
		{
			name:  "layout name says title",
			label: model.SlideTitle,
			matches: func(f *pageFacts) bool {
				return strings.Contains(f.layout, "title") &&
					!strings.Contains(f.layout, "agenda")
			},
		},
		{
			name:  "layout name says agenda",
			label: model.SlideAgenda,
			matches: func(f *pageFacts) bool {
				return f.keywords.Match(ConceptAgendaLayout, f.layout)
			},
		},
		{
			name:  "first page with a headline",
			label: model.SlideTitle,
			matches: func(f *pageFacts) bool {
				return f.page.Index == 0 &&
					f.candidate != nil &&
					len(f.stats.textShapes) <= 3
			},
		},
		{
			name:  "sparse page with a headline",
			label: model.SlideTitle,
			matches: func(f *pageFacts) bool {
				return len(f.stats.textShapes) <= 2 &&
					f.stats.totalTextLen <= 80 &&
					f.candidate != nil
			},
		},
		{
			name:  "agenda keyword in text",
			label: model.SlideAgenda,
			matches: func(f *pageFacts) bool {
				return f.keywords.Match(ConceptAgenda, f.allText)
			},
		},
		{
			name:  "bullet-heavy contents page",
			label: model.SlideAgenda,
			matches: func(f *pageFacts) bool {
				return f.stats.bulletRatio() >= 0.5 &&
					f.keywords.Match(ConceptContents, f.allText)
			},
		},
		{
			name:  "short page with section keyword in headline",
			label: model.SlideSection,
			matches: func(f *pageFacts) bool {
				if len(f.stats.textShapes) > 2 || f.stats.totalTextLen > 60 {
					return false
				}
				if f.candidate == nil {
					return false
				}
				return f.keywords.Match(ConceptSection, f.candidate.TextContent())
			},
		},
		{
			name:  "ending keyword in text",
			label: model.SlideEnding,
			matches: func(f *pageFacts) bool {
				return f.keywords.Match(ConceptEnding, f.allText)
			},
		},
		{
			name:  "picture with light text",
			label: model.SlideContentImage,
			matches: func(f *pageFacts) bool {
				return f.stats.pictureCount > 0 && f.stats.totalTextLen <= 120
			},
		},
		{
			name:  "bullet-dominated content",
			label: model.SlideContentBullets,
			matches: func(f *pageFacts) bool {
				return f.stats.bulletRatio() >= 0.4
			},
		},
		{
			name:  "any text at all",
			label: model.SlideContent,
			matches: func(f *pageFacts) bool {
				return f.stats.totalTextLen > 0
			},
		},
		{
			name:    "fallback",
			label:   model.SlideOther,
			matches: func(f *pageFacts) bool { return true },
		},
	}
}
