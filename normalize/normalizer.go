// Package normalize converts a parsed presentation into the normalized
// deck tree consumed by the rest of the pipeline.
//
// Normalization is purely structural: geometry is copied defensively
// (absent or malformed values are already 0 at the read layer, negatives
// are clamped here), text is trimmed with empty results stored as nil, and
// shape kinds pass through as stable tokens. No classification, filtering,
// or cross-shape aggregation happens in this package.
package normalize

import (
	"strings"

	"deckglow/model"
	"deckglow/pptx"
)

// Source is the read contract the normalizer consumes. *pptx.Reader
// satisfies it; tests substitute hand-built fixtures.
type Source interface {
	// SlideSize returns the slide dimensions in EMUs.
	SlideSize() (width, height int)
	// Slides returns the slides in presentation order.
	Slides() []*pptx.Slide
}

var _ Source = (*pptx.Reader)(nil)

// Deck builds exactly one normalized deck from the source document.
func Deck(src Source) *model.Deck {
	width, height := src.SlideSize()
	deck := model.NewDeck(width, height)

	for _, slide := range src.Slides() {
		page := model.NewPage(slide.LayoutName)
		for _, s := range slide.Shapes {
			page.AddShape(normalizeShape(s))
		}
		deck.AddPage(page)
	}
	return deck
}

func normalizeShape(s pptx.Shape) *model.Shape {
	shape := &model.Shape{
		Name:     s.Name,
		Kind:     shapeKind(s),
		Geometry: model.NewGeometry(s.Left, s.Top, s.Width, s.Height),
		HasText:  s.HasText,
	}

	// Text is stored trimmed, and only when something remains after
	// trimming. An empty text frame yields nil, never "".
	if s.HasText {
		if txt := strings.TrimSpace(s.Text); txt != "" {
			shape.Text = &txt
		}
	}
	return shape
}

// shapeKind returns the shape's kind token, falling back to a generic
// token when the reader reported none.
func shapeKind(s pptx.Shape) string {
	if s.Kind == "" {
		return model.KindAutoShape
	}
	return s.Kind
}
