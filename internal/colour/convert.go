// Package colour provides colour extraction and palette manipulation functionality.
package colour

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	hexPattern      = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
	hexAlphaPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{8}$`)
)

// IsHex reports whether s is a strict 6-digit hex colour code ("#RRGGBB").
func IsHex(s string) bool {
	return hexPattern.MatchString(s)
}

// ParseHex parses a strict 6-digit hex colour code ("#RRGGBB", case
// insensitive) into an RGB. Anything else is rejected rather than coerced.
func ParseHex(s string) (RGB, error) {
	if !hexPattern.MatchString(s) {
		return RGB{}, fmt.Errorf("%w: malformed hex colour %q (expected #RRGGBB)", ErrInvalidParameter, s)
	}
	r, _ := strconv.ParseUint(s[1:3], 16, 8)
	g, _ := strconv.ParseUint(s[3:5], 16, 8)
	b, _ := strconv.ParseUint(s[5:7], 16, 8)
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// ParseHexAlpha parses an 8-digit hex colour code ("#RRGGBBAA") into an RGB
// and an alpha in [0, 1]. A 6-digit code is accepted and treated as opaque.
func ParseHexAlpha(s string) (RGB, float64, error) {
	if hexPattern.MatchString(s) {
		rgb, err := ParseHex(s)
		return rgb, 1.0, err
	}
	if !hexAlphaPattern.MatchString(s) {
		return RGB{}, 0, fmt.Errorf("%w: malformed hex colour %q (expected #RRGGBB or #RRGGBBAA)", ErrInvalidParameter, s)
	}
	rgb, err := ParseHex(s[:7])
	if err != nil {
		return RGB{}, 0, err
	}
	a, _ := strconv.ParseUint(s[7:9], 16, 8)
	return rgb, float64(a) / 255.0, nil
}

// HSV returns the colour's hue (0-360), saturation (0-1) and value (0-1).
func (rgb RGB) HSV() (h, s, v float64) {
	c := colorful.Color{
		R: float64(rgb.R) / 255.0,
		G: float64(rgb.G) / 255.0,
		B: float64(rgb.B) / 255.0,
	}
	return c.Hsv()
}

// HSVToRGB converts hue (0-360), saturation (0-1) and value (0-1) to RGB.
// Inverse of RGB.HSV to within one step per 8-bit channel.
func HSVToRGB(h, s, v float64) RGB {
	r, g, b := colorful.Hsv(h, s, v).Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// alphaHexByte encodes an alpha in [0, 1] as two lowercase hex digits,
// rounding to the nearest 8-bit value (00 = transparent, ff = opaque).
func alphaHexByte(alpha float64) string {
	return fmt.Sprintf("%02x", uint8(math.Round(alpha*255)))
}

// WithAlphaHex appends an alpha channel to a 6-digit hex colour, producing an
// 8-digit "#rrggbbaa" code. The result is normalized to lowercase. The caller
// is expected to have validated both the hex code and the alpha range.
func WithAlphaHex(hexColour string, alpha float64) string {
	return strings.ToLower(hexColour) + alphaHexByte(alpha)
}
