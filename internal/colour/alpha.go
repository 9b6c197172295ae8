// Package colour provides colour extraction and palette manipulation functionality.
package colour

import (
	"fmt"
)

// LengthMismatchWarning is the non-fatal signal emitted when AttachAlpha
// receives palette and alpha sequences of different lengths (and neither has
// length 1). The call still succeeds, zipped to the shorter length.
type LengthMismatchWarning struct {
	PaletteLen int
	AlphaLen   int
	Used       int
}

// String describes the truncation that was applied.
func (w *LengthMismatchWarning) String() string {
	return fmt.Sprintf("palette has %d colours but %d alpha values were given; using the first %d pairs",
		w.PaletteLen, w.AlphaLen, w.Used)
}

// AttachAlpha attaches per-colour transparency to a list of 6-digit hex
// colours, producing 8-digit "#rrggbbaa" codes (00 = transparent, ff =
// opaque). Output is normalized to lowercase.
//
// A single alpha value is broadcast across the palette; a single colour is
// broadcast across the alphas. Otherwise mismatched lengths zip to the
// shorter sequence and a LengthMismatchWarning is returned alongside the
// result. All alphas must lie in [0, 1] and all colours must be strict
// 6-digit hex codes; either violation fails the whole call before any
// encoding happens.
func AttachAlpha(palette []string, alphas []float64) ([]string, *LengthMismatchWarning, error) {
	if len(palette) == 0 {
		return nil, nil, fmt.Errorf("%w: palette must contain at least one colour", ErrInvalidParameter)
	}
	if len(alphas) == 0 {
		return nil, nil, fmt.Errorf("%w: at least one alpha value is required", ErrInvalidParameter)
	}

	// Eager validation: the call fails atomically, never per-element.
	for i, a := range alphas {
		if a < 0 || a > 1 {
			return nil, nil, fmt.Errorf("%w: alpha[%d] = %v is outside [0, 1]", ErrInvalidParameter, i, a)
		}
	}
	for i, hex := range palette {
		if !IsHex(hex) {
			return nil, nil, fmt.Errorf("%w: palette[%d] = %q is not a 6-digit hex colour", ErrInvalidParameter, i, hex)
		}
	}

	var warning *LengthMismatchWarning
	n := len(palette)
	switch {
	case len(alphas) == len(palette):
		// Nothing to reconcile.
	case len(alphas) == 1:
		broadcast := make([]float64, len(palette))
		for i := range broadcast {
			broadcast[i] = alphas[0]
		}
		alphas = broadcast
	case len(palette) == 1:
		broadcast := make([]string, len(alphas))
		for i := range broadcast {
			broadcast[i] = palette[0]
		}
		palette = broadcast
		n = len(palette)
	default:
		n = min(len(palette), len(alphas))
		warning = &LengthMismatchWarning{
			PaletteLen: len(palette),
			AlphaLen:   len(alphas),
			Used:       n,
		}
	}

	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = WithAlphaHex(palette[i], alphas[i])
	}
	return out, warning, nil
}
