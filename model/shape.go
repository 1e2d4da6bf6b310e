package model

// Shape kind tokens the pipeline cares about. Kind is an open enumeration:
// any stable token from the source document is allowed, but pictures and
// media must be distinguishable from everything else.
const (
	KindPicture      = "PICTURE"
	KindMedia        = "MEDIA"
	KindTextBox      = "TEXT_BOX"
	KindPlaceholder  = "PLACEHOLDER"
	KindGraphicFrame = "GRAPHIC_FRAME"
	KindGroup        = "GROUP"
	KindAutoShape    = "AUTO_SHAPE"
)

// Shape represents a single visual element on a page.
type Shape struct {
	// Index is unique within the owning page and stable across the
	// pipeline.
	Index int `json:"index"`

	// Name is the shape's name from the source document, if any.
	Name string `json:"name,omitempty"`

	// Kind is the shape's coarse category as a stable string token.
	Kind string `json:"shape_type"`

	// Geometry is the shape's position and size in EMUs.
	Geometry Geometry `json:"geometry"`

	// HasText reports whether the shape has a text container, regardless
	// of whether that container holds any text.
	HasText bool `json:"has_text_frame"`

	// Text is the trimmed text content. It is nil when the shape has no
	// text container or the content is empty after trimming; it never
	// holds an empty or whitespace-only string.
	Text *string `json:"text"`
}

// IsPictorial reports whether the shape is a picture or media element.
func (s *Shape) IsPictorial() bool {
	return s.Kind == KindPicture || s.Kind == KindMedia
}

// TextContent returns the shape's text, or "" when Text is nil.
func (s *Shape) TextContent() string {
	if s.Text == nil {
		return ""
	}
	return *s.Text
}
