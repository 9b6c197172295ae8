// Package colour provides colour extraction and palette manipulation functionality.
package colour

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Transformer substitutes a sequence of hex colours with colourblind-safe
// alternatives. Implementations must return an equal-length, order-preserving
// sequence of 6-digit hex colours.
type Transformer interface {
	Transform(palette []string) ([]string, error)
}

// NopTransformer returns the palette unchanged. Used in tests and as a stand-in
// when no substitution strategy is configured.
type NopTransformer struct{}

// Transform returns a copy of the input palette.
func (NopTransformer) Transform(palette []string) ([]string, error) {
	out := make([]string, len(palette))
	copy(out, palette)
	return out, nil
}

// okabeIto is the eight-colour qualitative palette by Okabe and Ito,
// distinguishable under the common forms of colour vision deficiency.
var okabeIto = []string{
	"#000000", // black
	"#e69f00", // orange
	"#56b4e9", // sky blue
	"#009e73", // bluish green
	"#f0e442", // yellow
	"#0072b2", // blue
	"#d55e00", // vermillion
	"#cc79a7", // reddish purple
}

// OkabeItoTransformer substitutes each colour with its perceptually nearest
// neighbour from the Okabe-Ito palette, measured in CIE Lab.
type OkabeItoTransformer struct{}

// Transform maps every palette entry onto the Okabe-Ito palette.
func (OkabeItoTransformer) Transform(palette []string) ([]string, error) {
	safe := make([]colorful.Color, len(okabeIto))
	for i, hex := range okabeIto {
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("bad substitution palette entry %q: %w", hex, err)
		}
		safe[i] = c
	}

	out := make([]string, len(palette))
	for i, hex := range palette {
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed hex colour %q", ErrInvalidParameter, hex)
		}

		nearest := 0
		minDist := c.DistanceLab(safe[0])
		for j := 1; j < len(safe); j++ {
			if d := c.DistanceLab(safe[j]); d < minDist {
				minDist = d
				nearest = j
			}
		}
		out[i] = okabeIto[nearest]
	}
	return out, nil
}
