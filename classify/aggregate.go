package classify

import (
	"strings"
	"unicode/utf8"

	"deckglow/model"
)

// pageStats is the immutable aggregate computed over a page's shapes
// before the rule cascade runs. It is produced by a single fold over the
// shape sequence; rules read it, nothing mutates it afterwards.
type pageStats struct {
	textShapes   []*model.Shape
	pictureCount int

	totalTextLen int // sum of trimmed text lengths, in runes
	totalLines   int // non-empty physical lines across all text shapes
	bulletLines  int // lines matching the bullet-marker pattern
}

// aggregate folds over the page's shapes.
func aggregate(page *model.Page) pageStats {
	var st pageStats
	for _, s := range page.Shapes {
		if s.IsPictorial() {
			st.pictureCount++
		}
		if s.Text == nil {
			continue
		}

		text := *s.Text
		st.textShapes = append(st.textShapes, s)
		st.totalTextLen += utf8.RuneCountInString(text)

		for _, line := range strings.Split(text, "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			st.totalLines++
			if IsBulletLine(line) {
				st.bulletLines++
			}
		}
	}
	return st
}

// bulletRatio is the fraction of non-empty lines carrying bullet markers;
// 0 when the page has no lines at all.
func (st pageStats) bulletRatio() float64 {
	if st.totalLines == 0 {
		return 0
	}
	return float64(st.bulletLines) / float64(st.totalLines)
}

// allText joins the text of every text shape with spaces, for keyword
// matching across shape boundaries.
func (st pageStats) allText() string {
	parts := make([]string, len(st.textShapes))
	for i, s := range st.textShapes {
		parts[i] = s.TextContent()
	}
	return strings.Join(parts, " ")
}

// Title candidates must carry short text: more than this many runes and a
// shape is body copy, not a title.
const maxTitleLen = 60

// The area score is boosted when the shape's vertical center sits in the
// upper part of the slide.
const (
	titleUpperBand  = 0.35
	titleUpperBoost = 1.3
)

// titleCandidate picks the shape most likely to be the page's headline:
// the largest text shape with text in (0, 60] runes, with upper-slide
// placement weighting the area. The first shape in document order wins
// ties.
func (st pageStats) titleCandidate(deckHeight int) *model.Shape {
	var best *model.Shape
	bestScore := -1.0

	for _, s := range st.textShapes {
		textLen := utf8.RuneCountInString(s.TextContent())
		if textLen == 0 || textLen > maxTitleLen {
			continue
		}

		score := float64(s.Geometry.Area())
		if s.Geometry.VCenterRatio(deckHeight) < titleUpperBand {
			score *= titleUpperBoost
		}

		if score > bestScore {
			bestScore = score
			best = s
		}
	}
	return best
}
