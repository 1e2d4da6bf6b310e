package pptx

import "strings"

// Shape kind tokens reported by the reader. The set is open: future
// element kinds get their own tokens without breaking consumers.
const (
	KindAutoShape    = "AUTO_SHAPE"
	KindConnector    = "CONNECTOR"
	KindGraphicFrame = "GRAPHIC_FRAME"
	KindGroup        = "GROUP"
	KindMedia        = "MEDIA"
	KindPicture      = "PICTURE"
	KindPlaceholder  = "PLACEHOLDER"
	KindTextBox      = "TEXT_BOX"
)

// Slide represents a parsed slide.
type Slide struct {
	Index      int     // 0-indexed slide number in presentation order
	LayoutName string  // Name of the slide layout, may be empty
	Shapes     []Shape // Shapes in document order
}

// Shape is a single element on a slide, as read from the document.
type Shape struct {
	Name        string // Shape name from the non-visual properties
	Kind        string // Kind token (see constants above)
	Placeholder string // Placeholder type (title, ctrTitle, body, ...), or ""

	// Position and size in EMUs. Missing or malformed values are 0.
	Left   int
	Top    int
	Width  int
	Height int

	// HasText reports the presence of a text body, even an empty one.
	HasText bool

	// Text is the raw text content: paragraph texts joined with newlines.
	// May be empty or whitespace-only; callers trim as needed.
	Text string
}

// Text returns all text on the slide, shape texts separated by blank lines.
func (s *Slide) Text() string {
	var b strings.Builder
	for _, shape := range s.Shapes {
		if !shape.HasText || strings.TrimSpace(shape.Text) == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(shape.Text)
	}
	return b.String()
}
