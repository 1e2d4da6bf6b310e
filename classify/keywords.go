package classify

import (
	"strings"

	"golang.org/x/text/cases"
)

// Concept identifies one keyword concept in the classifier's tables.
type Concept string

// The concepts the rule cascade matches against.
const (
	// ConceptAgenda marks agenda/outline slides by their body text.
	ConceptAgenda Concept = "agenda"
	// ConceptAgendaLayout marks agenda slides by their layout name.
	ConceptAgendaLayout Concept = "agenda_layout"
	// ConceptContents is the narrower table-of-contents set used by the
	// bullet-heavy agenda rule.
	ConceptContents Concept = "contents"
	// ConceptSection marks section-divider slides.
	ConceptSection Concept = "section"
	// ConceptEnding marks closing slides (thanks, Q&A).
	ConceptEnding Concept = "ending"
)

// Keywords maps concepts to the keyword lists matched against slide text.
// Matching is substring-based after Unicode case folding, so entries may
// be any language or case.
type Keywords map[Concept][]string

// DefaultKeywords returns the built-in keyword tables: English primary
// with Chinese equivalents.
func DefaultKeywords() Keywords {
	return Keywords{
		ConceptAgenda:       {"agenda", "contents", "outline", "目录", "议程"},
		ConceptAgendaLayout: {"agenda", "目录"},
		ConceptContents:     {"agenda", "目录", "contents"},
		ConceptSection:      {"section", "part", "chapter", "模块", "篇"},
		ConceptEnding:       {"thank you", "thanks", "q&a", "questions", "谢谢", "结束"},
	}
}

// Merge overlays non-empty concept lists from other onto a copy of k.
func (k Keywords) Merge(other Keywords) Keywords {
	merged := make(Keywords, len(k))
	for c, words := range k {
		merged[c] = words
	}
	for c, words := range other {
		if len(words) > 0 {
			merged[c] = words
		}
	}
	return merged
}

// Match reports whether text contains any keyword of the concept,
// case-insensitively. An unknown concept never matches.
func (k Keywords) Match(c Concept, text string) bool {
	words := k[c]
	if len(words) == 0 || text == "" {
		return false
	}
	folded := fold(text)
	for _, w := range words {
		if strings.Contains(folded, fold(w)) {
			return true
		}
	}
	return false
}

// fold normalizes text for caseless comparison. A Caser is not safe for
// concurrent use, so each call builds its own.
func fold(s string) string {
	return cases.Fold().String(s)
}
