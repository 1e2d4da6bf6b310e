package model

// SlideType is the semantic role assigned to a page by classification.
type SlideType string

// The closed set of slide types. Classification is total: every page
// receives exactly one of these values.
const (
	SlideTitle          SlideType = "title"
	SlideAgenda         SlideType = "agenda"
	SlideSection        SlideType = "section"
	SlideContentBullets SlideType = "content_bullets"
	SlideContentImage   SlideType = "content_image"
	SlideContent        SlideType = "content"
	SlideEnding         SlideType = "ending"
	SlideOther          SlideType = "other"
)

// SlideTypes lists every valid slide type in declaration order.
var SlideTypes = []SlideType{
	SlideTitle,
	SlideAgenda,
	SlideSection,
	SlideContentBullets,
	SlideContentImage,
	SlideContent,
	SlideEnding,
	SlideOther,
}

// Valid reports whether t is a member of the closed slide-type set.
func (t SlideType) Valid() bool {
	for _, st := range SlideTypes {
		if t == st {
			return true
		}
	}
	return false
}

// Page represents a single slide in a normalized deck.
type Page struct {
	// Index is the 0-based position of the page in the deck. Page 0 is
	// eligible for first-page-is-title treatment during classification.
	Index int `json:"index"`

	// LayoutName is the name of the slide layout the page was built on.
	// It comes straight from the source document and may be empty.
	LayoutName string `json:"layout_name"`

	// Shapes holds the page's shapes in document order.
	Shapes []*Shape `json:"shapes"`

	// SlideType is filled in by classification; empty before that.
	SlideType SlideType `json:"slide_type,omitempty"`
}

// NewPage creates an empty page with the given layout name.
func NewPage(layoutName string) *Page {
	return &Page{
		LayoutName: layoutName,
		Shapes:     make([]*Shape, 0),
	}
}

// AddShape appends a shape to the page, assigning its index.
func (p *Page) AddShape(s *Shape) {
	s.Index = len(p.Shapes)
	p.Shapes = append(p.Shapes, s)
}

// TextShapes returns the page's shapes that carry non-empty text, in
// shape order.
func (p *Page) TextShapes() []*Shape {
	var shapes []*Shape
	for _, s := range p.Shapes {
		if s.Text != nil {
			shapes = append(shapes, s)
		}
	}
	return shapes
}
