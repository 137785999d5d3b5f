package main

import (
	"strings"
	"testing"

	"github.com/sdahlbac/palettegen/colorspace"
	"github.com/sdahlbac/palettegen/palette"
)

func TestEntryItem_FilterValue(t *testing.T) {
	item := entryItem{palette.Entry{Hex: "#3366cc"}}
	if item.FilterValue() != "#3366cc" {
		t.Errorf("Expected filter value '#3366cc', got '%s'", item.FilterValue())
	}
}

func TestSwatchDelegate_Row(t *testing.T) {
	e := palette.Entry{Hex: "#3366CC", HSL: colorspace.HSL{H: 220, S: 60, L: 50}, Locked: true}

	tests := []struct {
		name     string
		delegate swatchDelegate
		selected bool
		want     []string
	}{
		{
			name:     "normal text",
			delegate: swatchDelegate{},
			selected: true,
			want:     []string{"› ", "● ", "#3366cc", "hsl(220, 60%, 50%)", "white  5.37:1 AA ", "black  3.91:1 Fail"},
		},
		{
			name:     "large text",
			delegate: swatchDelegate{largeText: true},
			want:     []string{"white  5.37:1 AAA", "black  3.91:1 AA"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := tt.delegate.row(e, tt.selected)
			for _, w := range tt.want {
				if !strings.Contains(row, w) {
					t.Errorf("Expected %q in row %q", w, row)
				}
			}
		})
	}
}

func TestSwatchDelegate_RowUnselectedUnlocked(t *testing.T) {
	row := swatchDelegate{}.row(palette.Entry{Hex: "#ffffff"}, false)
	if strings.Contains(row, "›") || strings.Contains(row, "●") {
		t.Errorf("Expected no cursor or lock mark, got %q", row)
	}
	if !strings.Contains(row, "black 21.00:1 AAA") {
		t.Errorf("Expected black on white to score 21:1, got %q", row)
	}
}

func TestSwatchDelegate_RowInvalidHex(t *testing.T) {
	row := swatchDelegate{}.row(palette.Entry{Hex: "nope"}, false)
	if !strings.Contains(row, "nope") {
		t.Errorf("Expected raw value in row, got %q", row)
	}
	if strings.Contains(row, ":1") {
		t.Errorf("Expected no contrast scores for an invalid colour, got %q", row)
	}
}

func TestSwatchDelegate_Dimensions(t *testing.T) {
	d := swatchDelegate{}
	if d.Height() != 1 || d.Spacing() != 0 {
		t.Errorf("Expected single-line rows, got height %d spacing %d", d.Height(), d.Spacing())
	}
	if d.Update(nil, nil) != nil {
		t.Error("Expected delegate Update to do nothing")
	}
}

func TestAccentsView(t *testing.T) {
	if accentsView(nil) != "" {
		t.Error("Expected empty view without accents")
	}

	view := accentsView(palette.New().Accents("#ff0000"))
	for _, want := range []string{"accents", "#00ffff", "complementary", "#00ff00", "triadic"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected %q in %q", want, view)
		}
	}
}
