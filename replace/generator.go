// Package replace builds the per-shape paragraph instructions that carry
// the user's text onto a rearranged template document.
//
// The output is the sole artifact the external replace tool consumes:
// slide keys map to shape keys map to ordered paragraph specs. Pages the
// template has no inventory for, and pages without any text, produce no
// instructions — the template's own default content stays untouched.
package replace

import (
	"strings"

	"deckglow/classify"
	"deckglow/model"
	"deckglow/template"
)

// Paragraph is one formatted paragraph instruction for the replace tool.
type Paragraph struct {
	Text      string `json:"text"`
	Bold      bool   `json:"bold,omitempty"`
	Alignment string `json:"alignment,omitempty"`
	Bullet    bool   `json:"bullet,omitempty"`
	Level     *int   `json:"level,omitempty"`
}

// AlignCenter is the alignment token for centered title paragraphs.
const AlignCenter = "CENTER"

// ShapeReplacement holds the ordered paragraphs for one template shape.
type ShapeReplacement struct {
	Paragraphs []Paragraph `json:"paragraphs"`
}

// Replacement maps "slide-N" keys to per-shape paragraph instructions.
type Replacement map[string]map[string]ShapeReplacement

// Generate assigns each page's texts to the corresponding template
// page's shapes. Texts are taken in shape order; template shapes are
// taken by ascending numeric key. Assignment stops when either side is
// exhausted: surplus template shapes stay unassigned and surplus user
// texts are dropped, never spilling onto another page.
func Generate(pages []*model.Page, inv template.Inventory) Replacement {
	repl := make(Replacement)

	for _, page := range pages {
		slideKey := template.SlideKey(page.Index)
		shapes, ok := inv[slideKey]
		if !ok {
			continue // template and user deck lengths may differ
		}

		texts := pageTexts(page)
		if len(texts) == 0 {
			continue
		}

		keys := inv.ShapeKeys(slideKey)
		assigned := make(map[string]ShapeReplacement)
		for i, key := range keys {
			if i >= len(texts) {
				break
			}
			assigned[key] = ShapeReplacement{
				Paragraphs: formatParagraphs(texts[i], i == 0, shapes[key]),
			}
		}

		if len(assigned) > 0 {
			repl[slideKey] = assigned
		}
	}
	return repl
}

// pageTexts collects the page's non-empty texts in shape order.
func pageTexts(page *model.Page) []string {
	var texts []string
	for _, s := range page.TextShapes() {
		texts = append(texts, s.TextContent())
	}
	return texts
}

// formatParagraphs decides how one text renders into the target shape.
// The first assigned shape on a page, and any shape whose placeholder
// role is a title, renders as a single bold title paragraph; everything
// else that looks like a list renders as stripped bullet paragraphs.
func formatParagraphs(text string, first bool, shape template.ShapeInfo) []Paragraph {
	isTitle := first || shape.IsTitleRole()

	lines := splitLines(text)
	isBulletList := len(lines) > 1 || anyBulletLine(lines)

	if isBulletList && !isTitle {
		paras := make([]Paragraph, 0, len(lines))
		level := 0
		for _, line := range lines {
			paras = append(paras, Paragraph{
				Text:   classify.StripMarker(line),
				Bullet: true,
				Level:  &level,
			})
		}
		return paras
	}

	para := Paragraph{Text: text}
	if isTitle {
		para.Bold = true
		if shape.PlaceholderType == template.RoleCenterTitle {
			para.Alignment = AlignCenter
		}
	}
	return []Paragraph{para}
}

// splitLines splits on line breaks, trims each line, and drops empties.
func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

func anyBulletLine(lines []string) bool {
	for _, line := range lines {
		if classify.IsBulletLine(line) {
			return true
		}
	}
	return false
}
