// Package colour provides colour extraction and palette manipulation functionality.
package colour

import (
	"fmt"
	"slices"
)

// SortKey selects the HSV dimension used to order a palette.
type SortKey string

const (
	// SortNone preserves clustering order.
	SortNone SortKey = "none"

	// SortHue orders ascending by hue.
	SortHue SortKey = "hue"

	// SortSaturation orders descending by saturation.
	SortSaturation SortKey = "saturation"

	// SortValue orders descending by value (brightness).
	SortValue SortKey = "value"
)

// ValidSortKeys returns the list of supported sort keys.
func ValidSortKeys() []SortKey {
	return []SortKey{SortNone, SortHue, SortSaturation, SortValue}
}

// IsValidSortKey checks if the given sort key is supported.
func IsValidSortKey(key SortKey) bool {
	for _, valid := range ValidSortKeys() {
		if key == valid {
			return true
		}
	}
	return false
}

// SortPalette returns a new palette ordered by the chosen HSV dimension.
// The sort is stable: colours with equal keys keep their relative input
// order. The input palette is not modified.
func SortPalette(p *Palette, key SortKey) (*Palette, error) {
	if !IsValidSortKey(key) {
		return nil, fmt.Errorf("%w: unknown sort key %q (valid keys: %v)", ErrInvalidParameter, key, ValidSortKeys())
	}

	colours := make([]RGB, len(p.Colours))
	copy(colours, p.Colours)

	if key == SortNone {
		return NewPalette(colours), nil
	}

	slices.SortStableFunc(colours, func(a, b RGB) int {
		ah, as, av := a.HSV()
		bh, bs, bv := b.HSV()

		var x, y float64
		switch key {
		case SortHue:
			x, y = ah, bh
		case SortSaturation:
			// Descending.
			x, y = bs, as
		case SortValue:
			// Descending.
			x, y = bv, av
		}

		if x < y {
			return -1
		}
		if x > y {
			return 1
		}
		return 0
	})

	return NewPalette(colours), nil
}
