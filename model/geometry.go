package model

// Geometry represents a shape's bounding box in EMUs. All values are
// non-negative; absent values in the source default to 0.
type Geometry struct {
	Left   int `json:"left_emu"`
	Top    int `json:"top_emu"`
	Width  int `json:"width_emu"`
	Height int `json:"height_emu"`
}

// NewGeometry creates a bounding box, clamping negative inputs to 0.
func NewGeometry(left, top, width, height int) Geometry {
	return Geometry{
		Left:   clampNonNegative(left),
		Top:    clampNonNegative(top),
		Width:  clampNonNegative(width),
		Height: clampNonNegative(height),
	}
}

func clampNonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// Right returns the right edge coordinate.
func (g Geometry) Right() int {
	return g.Left + g.Width
}

// Bottom returns the bottom edge coordinate. The origin is the slide's
// top-left corner, so bottom is top plus height.
func (g Geometry) Bottom() int {
	return g.Top + g.Height
}

// Area returns the box area in square EMUs.
func (g Geometry) Area() int64 {
	return int64(g.Width) * int64(g.Height)
}

// VCenterRatio returns the vertical center of the box as a fraction of
// the page height: 0 is the top edge, 1 the bottom. Returns 0 when
// pageHeight is not positive.
func (g Geometry) VCenterRatio(pageHeight int) float64 {
	if pageHeight <= 0 {
		return 0
	}
	return (float64(g.Top) + float64(g.Height)/2) / float64(pageHeight)
}
