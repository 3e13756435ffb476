package pie

import (
	"strings"
	"testing"
)

func TestNormalizeColor(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"NamedColor", "red", "#ff0000"},
		{"NamedColorUpper", "Blue", "#0000ff"},
		{"HexUpper", "#E74C3C", "#e74c3c"},
		{"HexLower", "#3498db", "#3498db"},
		{"UnknownPassthrough", "blurple", "blurple"},
		{"EmptyPassthrough", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeColor(tt.in); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestTextColorFor(t *testing.T) {
	tests := []struct {
		name       string
		background string
		want       string
	}{
		{"White", "#ffffff", "#000000"},
		{"Black", "#000000", "#ffffff"},
		{"DarkGray", "#202020", "#ffffff"},
		{"NamedWhite", "white", "#000000"},
		{"Unparseable", "blurple", "#000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TextColorFor(tt.background); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestPalette(t *testing.T) {
	colors := Palette(5)
	if len(colors) != 5 {
		t.Fatalf("expected 5 colors, got %d", len(colors))
	}
	seen := make(map[string]bool, len(colors))
	for _, c := range colors {
		if !strings.HasPrefix(c, "#") || len(c) != 7 {
			t.Errorf("expected #rrggbb color, got %q", c)
		}
		if seen[c] {
			t.Errorf("duplicate palette color %q", c)
		}
		seen[c] = true
	}
}

func TestPalette_Empty(t *testing.T) {
	if got := Palette(0); got != nil {
		t.Errorf("expected nil for zero count, got %v", got)
	}
}
