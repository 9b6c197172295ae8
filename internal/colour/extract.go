// Package colour provides colour extraction and palette manipulation functionality.
package colour

import (
	"fmt"
	"image"

	imageutil "github.com/jmylchreest/swatch/internal/image"
)

// ExtractOptions configures a palette extraction.
type ExtractOptions struct {
	// Colours is the number of palette entries to produce.
	Colours int

	// Resize is the downsampling fraction in (0, 1] applied to both image
	// dimensions before clustering.
	Resize float64

	// Method selects the clustering strategy.
	Method Method

	// ColourblindSafe routes the clustered colours through Transformer
	// before sorting.
	ColourblindSafe bool

	// SortKey orders the final palette by an HSV dimension.
	SortKey SortKey

	// Seed drives centroid and mixture initialization, making extraction
	// reproducible for identical inputs.
	Seed int64

	// Transformer performs the colourblind-safe substitution. Only consulted
	// when ColourblindSafe is set.
	Transformer Transformer
}

// DefaultExtractOptions returns the default extraction configuration.
func DefaultExtractOptions() ExtractOptions {
	return ExtractOptions{
		Colours:     8,
		Resize:      0.1,
		Method:      MethodCentroid,
		SortKey:     SortNone,
		Seed:        1,
		Transformer: OkabeItoTransformer{},
	}
}

// Validate checks the extraction configuration. Every violation wraps
// ErrInvalidParameter and is reported before any pixel is read.
func (o ExtractOptions) Validate() error {
	if o.Colours < 1 {
		return fmt.Errorf("%w: colour count must be at least 1, got %d", ErrInvalidParameter, o.Colours)
	}
	if o.Resize <= 0 || o.Resize > 1 {
		return fmt.Errorf("%w: resize fraction must be in (0, 1], got %v", ErrInvalidParameter, o.Resize)
	}
	if !IsValidMethod(o.Method) {
		return fmt.Errorf("%w: unknown method %q (valid methods: %v)", ErrInvalidParameter, o.Method, ValidMethods())
	}
	if !IsValidSortKey(o.SortKey) {
		return fmt.Errorf("%w: unknown sort key %q (valid keys: %v)", ErrInvalidParameter, o.SortKey, ValidSortKeys())
	}
	if o.ColourblindSafe && o.Transformer == nil {
		return fmt.Errorf("%w: colourblind-safe extraction requires a transformer", ErrInvalidParameter)
	}
	return nil
}

// ExtractPalette runs the full pipeline on an image: downsample, cluster,
// optionally substitute colourblind-safe alternatives, then sort. It returns
// exactly opts.Colours 6-digit hex colour codes.
func ExtractPalette(img image.Image, opts ExtractOptions) ([]string, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if img == nil {
		return nil, fmt.Errorf("%w: image cannot be nil", ErrInvalidParameter)
	}

	pixels, err := imageutil.Sample(img, opts.Resize)
	if err != nil {
		return nil, fmt.Errorf("failed to sample image: %w", err)
	}

	clusterer, err := NewClusterer(opts.Method, opts.Seed)
	if err != nil {
		return nil, err
	}
	colours, err := clusterer.Cluster(pixels, opts.Colours)
	if err != nil {
		return nil, err
	}

	palette := NewPalette(colours)
	if opts.ColourblindSafe {
		palette, err = substitute(palette, opts.Transformer)
		if err != nil {
			return nil, err
		}
	}

	palette, err = SortPalette(palette, opts.SortKey)
	if err != nil {
		return nil, err
	}
	return palette.ToHex(), nil
}

// substitute applies the colourblind-safe transformer and enforces its
// contract: an equal-length, order-preserving sequence of valid hex colours.
func substitute(p *Palette, transformer Transformer) (*Palette, error) {
	transformed, err := transformer.Transform(p.ToHex())
	if err != nil {
		return nil, fmt.Errorf("colourblind-safe substitution failed: %w", err)
	}
	if len(transformed) != p.Len() {
		return nil, fmt.Errorf("colourblind-safe substitution returned %d colours, want %d", len(transformed), p.Len())
	}

	colours := make([]RGB, len(transformed))
	for i, hex := range transformed {
		rgb, err := ParseHex(hex)
		if err != nil {
			return nil, fmt.Errorf("colourblind-safe substitution returned %q at index %d: %w", hex, i, err)
		}
		colours[i] = rgb
	}
	return NewPalette(colours), nil
}
