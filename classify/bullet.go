package classify

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Bullet glyphs recognized at the start of a line. The set covers the
// markers slide authors type by hand; automatic bullets never reach the
// text content.
var bulletRunes = map[rune]bool{
	'•': true,
	'-': true,
	'·': true,
	'●': true,
	'○': true,
	'▶': true,
}

var (
	// listMarkerRe matches a numeric or single-letter list marker
	// followed by '.' or ')' and whitespace, e.g. "1. ", "12) ", "a. ".
	listMarkerRe = regexp.MustCompile(`^(\d+|[A-Za-z])[.)]\s+`)

	// The strip patterns are looser than detection: trailing whitespace
	// after the marker is optional so "1." alone still loses its prefix.
	stripGlyphRe  = regexp.MustCompile(`^[•\-·●○▶]\s*`)
	stripNumberRe = regexp.MustCompile(`^\d+[.)]\s*`)
	stripLetterRe = regexp.MustCompile(`^[A-Za-z][.)]\s*`)
)

// IsBulletLine reports whether the line starts with a bullet glyph or a
// numeric/alphabetic list marker. Leading whitespace is ignored; blank
// lines are never bullets.
func IsBulletLine(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(line)
	if bulletRunes[r] {
		return true
	}
	return listMarkerRe.MatchString(line)
}

// StripMarker removes a leading bullet glyph and/or list marker from the
// line. The substitutions run in sequence, so "- 1) item" reduces to
// "item". Lines without markers come back unchanged.
func StripMarker(line string) string {
	line = stripGlyphRe.ReplaceAllString(line, "")
	line = stripNumberRe.ReplaceAllString(line, "")
	line = stripLetterRe.ReplaceAllString(line, "")
	return line
}
