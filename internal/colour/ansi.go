// Package colour provides colour extraction and palette manipulation functionality.
package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// ColourPreview returns an ANSI-coloured preview string for a colour.
// Width specifies how many characters wide the colour block should be.
// Uses background colour with spaces for a solid block.
func ColourPreview(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	bgColour := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bgColour + strings.Repeat(" ", width) + ansiReset
}

// FormatColourWithPreview formats a colour with its preview and hex code.
func FormatColourWithPreview(rgb RGB, width int) string {
	return fmt.Sprintf("%s %s", ColourPreview(rgb, width), rgb.Hex())
}

// FormatAlphaColourWithPreview formats an 8-digit hex colour with a preview
// block composited over white, so transparency is visible in the terminal.
func FormatAlphaColourWithPreview(hex string, width int) (string, error) {
	rgb, alpha, err := ParseHexAlpha(hex)
	if err != nil {
		return "", err
	}

	over := RGB{
		R: compositeChannel(rgb.R, alpha),
		G: compositeChannel(rgb.G, alpha),
		B: compositeChannel(rgb.B, alpha),
	}
	return fmt.Sprintf("%s %s", ColourPreview(over, width), strings.ToLower(hex)), nil
}

// compositeChannel blends a channel over a white background at the given
// alpha (source-over).
func compositeChannel(v uint8, alpha float64) uint8 {
	return uint8(alpha*float64(v) + (1-alpha)*255 + 0.5)
}
