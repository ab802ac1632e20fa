package scene

import "testing"

func TestParseCategoryRoundTrip(t *testing.T) {
	for _, c := range Categories() {
		if got := ParseCategory(c.String()); got != c {
			t.Errorf("ParseCategory(%q) = %v, want %v", c.String(), got, c)
		}
	}
}

func TestParseCategoryUnknown(t *testing.T) {
	for _, s := range []string{"", "warehouse", "FARM", "plant"} {
		if got := ParseCategory(s); got != Unknown {
			t.Errorf("ParseCategory(%q) = %v, want Unknown", s, got)
		}
	}
}

func TestStyleTableTotal(t *testing.T) {
	styles := DefaultStyles()
	for _, c := range Categories() {
		s := styles.Style(c)
		if s.Radius <= 0 {
			t.Errorf("category %v has non-positive radius", c)
		}
		if s.Glyph == 0 {
			t.Errorf("category %v has no glyph", c)
		}
	}
	// Lookup for a category value outside the table falls back to Unknown.
	partial := StyleTable{Unknown: styles[Unknown]}
	if got := partial.Style(Farm); got != styles[Unknown] {
		t.Errorf("missing entry should fall back to Unknown, got %+v", got)
	}
}
