package colour

import (
	"errors"
	"testing"
)

func TestSortPalette(t *testing.T) {
	input := []RGB{
		{R: 0, G: 0, B: 255},     // blue, h=240
		{R: 255, G: 0, B: 0},     // red, h=0
		{R: 0, G: 255, B: 0},     // green, h=120
		{R: 128, G: 128, B: 128}, // grey, s=0, v=0.5
	}

	tests := []struct {
		name string
		key  SortKey
		want []RGB
	}{
		{
			name: "none preserves order",
			key:  SortNone,
			want: []RGB{input[0], input[1], input[2], input[3]},
		},
		{
			name: "hue ascending",
			key:  SortHue,
			// Grey has hue 0 and shares it with red; stable sort keeps grey
			// after red because red comes first in the input.
			want: []RGB{input[1], input[3], input[2], input[0]},
		},
		{
			name: "saturation descending",
			key:  SortSaturation,
			want: []RGB{input[0], input[1], input[2], input[3]},
		},
		{
			name: "value descending",
			key:  SortValue,
			want: []RGB{input[0], input[1], input[2], input[3]},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPalette(input)
			sorted, err := SortPalette(p, tt.key)
			if err != nil {
				t.Fatalf("SortPalette returned error: %v", err)
			}
			if len(sorted.Colours) != len(tt.want) {
				t.Fatalf("SortPalette returned %d colours, want %d", len(sorted.Colours), len(tt.want))
			}
			for i, want := range tt.want {
				if sorted.Colours[i] != want {
					t.Errorf("position %d: got %v, want %v", i, sorted.Colours[i], want)
				}
			}
		})
	}
}

func TestSortPaletteDoesNotMutateInput(t *testing.T) {
	input := []RGB{
		{R: 0, G: 0, B: 255},
		{R: 255, G: 0, B: 0},
	}
	p := NewPalette(input)

	if _, err := SortPalette(p, SortHue); err != nil {
		t.Fatalf("SortPalette returned error: %v", err)
	}
	if p.Colours[0] != (RGB{R: 0, G: 0, B: 255}) || p.Colours[1] != (RGB{R: 255, G: 0, B: 0}) {
		t.Errorf("input palette was modified: %v", p.Colours)
	}
}

func TestSortPaletteStable(t *testing.T) {
	// Red and green share value 1.0; a stable value sort keeps them in input
	// order ahead of the darker colour.
	input := []RGB{
		{R: 255, G: 0, B: 0},
		{R: 0, G: 255, B: 0},
		{R: 64, G: 64, B: 64},
	}
	sorted, err := SortPalette(NewPalette(input), SortValue)
	if err != nil {
		t.Fatalf("SortPalette returned error: %v", err)
	}

	want := []RGB{input[0], input[1], input[2]}
	for i := range want {
		if sorted.Colours[i] != want[i] {
			t.Errorf("position %d: got %v, want %v", i, sorted.Colours[i], want[i])
		}
	}
}

func TestSortPaletteUnknownKey(t *testing.T) {
	_, err := SortPalette(NewPalette([]RGB{{R: 255}}), SortKey("luminance"))
	if err == nil {
		t.Fatal("SortPalette succeeded with unknown key, want error")
	}
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("error = %v, want ErrInvalidParameter", err)
	}
}

func TestIsValidSortKey(t *testing.T) {
	for _, key := range ValidSortKeys() {
		if !IsValidSortKey(key) {
			t.Errorf("IsValidSortKey(%q) = false, want true", key)
		}
	}
	if IsValidSortKey(SortKey("chroma")) {
		t.Error("IsValidSortKey(chroma) = true, want false")
	}
}
