package model

// Deck is the root of a normalized presentation document.
type Deck struct {
	// Width and Height are the slide dimensions in EMUs.
	Width  int `json:"slide_width_emu"`
	Height int `json:"slide_height_emu"`

	// Pages holds the slides in presentation order. A page's Index always
	// matches its position in this slice.
	Pages []*Page `json:"slides"`
}

// Meta carries the deck-level values the classifier needs alongside a
// single page.
type Meta struct {
	SlideCount int `json:"slide_count"`
	Width      int `json:"slide_width_emu"`
	Height     int `json:"slide_height_emu"`
}

// NewDeck creates an empty deck with the given slide dimensions.
func NewDeck(width, height int) *Deck {
	return &Deck{
		Width:  width,
		Height: height,
		Pages:  make([]*Page, 0),
	}
}

// AddPage appends a page to the deck, assigning its index.
func (d *Deck) AddPage(page *Page) {
	page.Index = len(d.Pages)
	d.Pages = append(d.Pages, page)
}

// PageCount returns the number of pages in the deck.
func (d *Deck) PageCount() int {
	return len(d.Pages)
}

// Meta returns the deck-level metadata record.
func (d *Deck) Meta() Meta {
	return Meta{
		SlideCount: len(d.Pages),
		Width:      d.Width,
		Height:     d.Height,
	}
}
