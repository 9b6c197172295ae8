package colour

import (
	"errors"
	"image"
	"image/color"
	"slices"
	"testing"
)

// quadrantImage builds a test image with one solid colour per quadrant.
func quadrantImage(size int, colours [4]color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	half := size / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			q := 0
			if x >= half {
				q = 1
			}
			if y >= half {
				q += 2
			}
			img.SetRGBA(x, y, colours[q])
		}
	}
	return img
}

var testQuadrants = [4]color.RGBA{
	{R: 255, A: 255},
	{G: 255, A: 255},
	{B: 255, A: 255},
	{R: 255, G: 255, A: 255},
}

func TestExtractPalette(t *testing.T) {
	img := quadrantImage(100, testQuadrants)

	opts := DefaultExtractOptions()
	opts.Colours = 4
	opts.Resize = 0.2

	palette, err := ExtractPalette(img, opts)
	if err != nil {
		t.Fatalf("ExtractPalette returned error: %v", err)
	}
	if len(palette) != 4 {
		t.Fatalf("ExtractPalette returned %d colours, want 4", len(palette))
	}
	for _, hex := range palette {
		if !IsHex(hex) {
			t.Errorf("palette entry %q is not a 6-digit hex colour", hex)
		}
	}
}

func TestExtractPaletteDeterministic(t *testing.T) {
	img := quadrantImage(80, testQuadrants)

	// The dominant method delegates initialization to its library and makes
	// no reproducibility promise, so only the seeded methods are checked.
	for _, method := range []Method{MethodCentroid, MethodMixture} {
		t.Run(string(method), func(t *testing.T) {
			opts := DefaultExtractOptions()
			opts.Colours = 3
			opts.Resize = 0.25
			opts.Method = method
			opts.Seed = 99

			first, err := ExtractPalette(img, opts)
			if err != nil {
				t.Fatalf("first ExtractPalette returned error: %v", err)
			}
			second, err := ExtractPalette(img, opts)
			if err != nil {
				t.Fatalf("second ExtractPalette returned error: %v", err)
			}
			if !slices.Equal(first, second) {
				t.Errorf("same options produced different palettes: %v vs %v", first, second)
			}
		})
	}
}

func TestExtractPaletteSorted(t *testing.T) {
	img := quadrantImage(100, testQuadrants)

	opts := DefaultExtractOptions()
	opts.Colours = 4
	opts.Resize = 0.2
	opts.SortKey = SortHue

	palette, err := ExtractPalette(img, opts)
	if err != nil {
		t.Fatalf("ExtractPalette returned error: %v", err)
	}

	prev := -1.0
	for _, hex := range palette {
		rgb, err := ParseHex(hex)
		if err != nil {
			t.Fatalf("ParseHex(%q) returned error: %v", hex, err)
		}
		h, _, _ := rgb.HSV()
		if h < prev {
			t.Fatalf("palette %v is not sorted by hue", palette)
		}
		prev = h
	}
}

// recordingTransformer captures its input and substitutes a fixed palette.
type recordingTransformer struct {
	seen   []string
	result []string
}

func (r *recordingTransformer) Transform(palette []string) ([]string, error) {
	r.seen = append([]string(nil), palette...)
	out := make([]string, len(palette))
	for i := range out {
		out[i] = r.result[i%len(r.result)]
	}
	return out, nil
}

func TestExtractPaletteColourblindSafe(t *testing.T) {
	img := quadrantImage(60, testQuadrants)

	transformer := &recordingTransformer{result: []string{"#0072b2", "#d55e00"}}
	opts := DefaultExtractOptions()
	opts.Colours = 2
	opts.Resize = 0.25
	opts.ColourblindSafe = true
	opts.Transformer = transformer

	palette, err := ExtractPalette(img, opts)
	if err != nil {
		t.Fatalf("ExtractPalette returned error: %v", err)
	}

	if len(transformer.seen) != 2 {
		t.Errorf("transformer received %d colours, want 2", len(transformer.seen))
	}
	if !slices.Equal(palette, []string{"#0072b2", "#d55e00"}) {
		t.Errorf("palette = %v, want the substituted colours", palette)
	}
}

// shrinkingTransformer violates the equal-length contract.
type shrinkingTransformer struct{}

func (shrinkingTransformer) Transform(palette []string) ([]string, error) {
	return palette[:len(palette)-1], nil
}

func TestExtractPaletteTransformerContract(t *testing.T) {
	img := quadrantImage(60, testQuadrants)

	opts := DefaultExtractOptions()
	opts.Colours = 2
	opts.Resize = 0.25
	opts.ColourblindSafe = true
	opts.Transformer = shrinkingTransformer{}

	if _, err := ExtractPalette(img, opts); err == nil {
		t.Fatal("ExtractPalette succeeded with a contract-violating transformer, want error")
	}
}

func TestExtractPaletteValidation(t *testing.T) {
	img := quadrantImage(20, testQuadrants)

	tests := []struct {
		name   string
		mutate func(*ExtractOptions)
	}{
		{name: "zero colours", mutate: func(o *ExtractOptions) { o.Colours = 0 }},
		{name: "negative colours", mutate: func(o *ExtractOptions) { o.Colours = -1 }},
		{name: "zero resize", mutate: func(o *ExtractOptions) { o.Resize = 0 }},
		{name: "resize above one", mutate: func(o *ExtractOptions) { o.Resize = 1.5 }},
		{name: "negative resize", mutate: func(o *ExtractOptions) { o.Resize = -0.5 }},
		{name: "unknown method", mutate: func(o *ExtractOptions) { o.Method = "median-cut" }},
		{name: "unknown sort key", mutate: func(o *ExtractOptions) { o.SortKey = "luminance" }},
		{name: "colourblind without transformer", mutate: func(o *ExtractOptions) {
			o.ColourblindSafe = true
			o.Transformer = nil
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultExtractOptions()
			tt.mutate(&opts)

			_, err := ExtractPalette(img, opts)
			if err == nil {
				t.Fatal("ExtractPalette succeeded, want error")
			}
			if !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("error = %v, want ErrInvalidParameter", err)
			}
		})
	}
}

func TestExtractPaletteNilImage(t *testing.T) {
	_, err := ExtractPalette(nil, DefaultExtractOptions())
	if err == nil {
		t.Fatal("ExtractPalette succeeded with nil image, want error")
	}
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("error = %v, want ErrInvalidParameter", err)
	}
}

func TestExtractPaletteTooManyColours(t *testing.T) {
	img := quadrantImage(4, testQuadrants)

	opts := DefaultExtractOptions()
	opts.Colours = 100
	opts.Resize = 1.0

	_, err := ExtractPalette(img, opts)
	if err == nil {
		t.Fatal("ExtractPalette succeeded with more colours than pixels, want error")
	}
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("error = %v, want ErrInvalidParameter", err)
	}
}
