// Swatch - image-derived colour palettes
//
// Swatch extracts representative colour palettes from images for use in
// charts, presentations and publications.
package main

import (
	"github.com/jmylchreest/swatch/internal/cli"
)

func main() {
	cli.Execute()
}
