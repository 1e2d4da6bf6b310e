package classify

import "testing"

func TestIsBulletLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"• First point", true},
		{"- dashed item", true},
		{"· dotted item", true},
		{"● filled item", true},
		{"○ hollow item", true},
		{"▶ arrow item", true},
		{"1. numbered", true},
		{"12) numbered paren", true},
		{"a. lettered", true},
		{"B) lettered paren", true},
		{"   • indented bullet", true},
		{"", false},
		{"   ", false},
		{"plain sentence", false},
		{"1either", false},          // no separator
		{"1.5 million users", false}, // decimal, not a marker
		{"ab. two letters", false},
		{"(parenthetical)", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			if got := IsBulletLine(tt.line); got != tt.want {
				t.Errorf("IsBulletLine(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestStripMarker(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"• First point", "First point"},
		{"- dashed item", "dashed item"},
		{"1. numbered", "numbered"},
		{"12) numbered paren", "numbered paren"},
		{"a) lettered", "lettered"},
		{"- 1) both markers", "both markers"},
		{"plain sentence", "plain sentence"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			if got := StripMarker(tt.line); got != tt.want {
				t.Errorf("StripMarker(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

// Stripping an already-stripped line must be a no-op.
func TestStripMarkerIdempotent(t *testing.T) {
	lines := []string{
		"• First point",
		"- dashed item",
		"1. numbered",
		"b) lettered",
		"plain sentence",
	}
	for _, line := range lines {
		stripped := StripMarker(line)
		if again := StripMarker(stripped); again != stripped {
			t.Errorf("StripMarker(%q) = %q, but stripping again gave %q", line, stripped, again)
		}
	}
}
