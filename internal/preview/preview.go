// Package preview renders extracted palettes as labeled swatch grids.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/jmylchreest/swatch/internal/colour"
)

// Layout computes the grid shape for n swatches: a near-square grid filled
// row-major, columns = ceil(sqrt(n)). Pure function, independent of the
// extraction pipeline.
func Layout(n int) (rows, cols int) {
	if n <= 0 {
		return 0, 0
	}
	cols = int(math.Ceil(math.Sqrt(float64(n))))
	rows = (n + cols - 1) / cols
	return rows, cols
}

// Renderer displays a palette of hex colour codes. Rendering never affects
// the palette values themselves.
type Renderer interface {
	Render(palette []string, title string) error
}

// NopRenderer discards the palette. Used when display is disabled and in
// pipeline tests.
type NopRenderer struct{}

// Render does nothing.
func (NopRenderer) Render([]string, string) error { return nil }

// PNGRenderer writes the palette as a grid of labeled swatches to a PNG
// file. Both 6-digit and 8-digit (alpha) codes are accepted; alpha entries
// are composited over white so transparency is visible.
type PNGRenderer struct {
	// Path is the output PNG file.
	Path string

	// CellSize is the swatch edge length in pixels. Defaults to 120.
	CellSize int
}

const titleBarHeight = 28

// Render draws the grid and writes it to the configured path.
func (r *PNGRenderer) Render(palette []string, title string) error {
	if len(palette) == 0 {
		return fmt.Errorf("cannot render an empty palette")
	}

	img, err := r.grid(palette, title)
	if err != nil {
		return err
	}

	file, err := os.Create(r.Path)
	if err != nil {
		return fmt.Errorf("failed to create preview file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode preview: %w", err)
	}
	return nil
}

// grid builds the swatch grid image.
func (r *PNGRenderer) grid(palette []string, title string) (image.Image, error) {
	cell := r.CellSize
	if cell <= 0 {
		cell = 120
	}

	rows, cols := Layout(len(palette))
	top := 0
	if title != "" {
		top = titleBarHeight
	}

	img := image.NewRGBA(image.Rect(0, 0, cols*cell, top+rows*cell))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	if title != "" {
		drawLabel(img, title, 8, (titleBarHeight+basicfont.Face7x13.Height)/2, color.Black)
	}

	for i, hex := range palette {
		rgb, alpha, err := colour.ParseHexAlpha(hex)
		if err != nil {
			return nil, err
		}

		// Composite over white for display.
		fill := color.RGBA{
			R: blend(rgb.R, alpha),
			G: blend(rgb.G, alpha),
			B: blend(rgb.B, alpha),
			A: 255,
		}

		col := i % cols
		row := i / cols
		rect := image.Rect(col*cell, top+row*cell, (col+1)*cell, top+(row+1)*cell)
		draw.Draw(img, rect, image.NewUniform(fill), image.Point{}, draw.Src)

		label := hex
		labelColour := labelFor(fill)
		lx := rect.Min.X + (cell-len(label)*basicfont.Face7x13.Advance)/2
		ly := rect.Max.Y - 10
		drawLabel(img, label, lx, ly, labelColour)
	}

	return img, nil
}

func blend(v uint8, alpha float64) uint8 {
	return uint8(alpha*float64(v) + (1-alpha)*255 + 0.5)
}

// labelFor picks black or white for legibility against the swatch fill.
func labelFor(c color.RGBA) color.Color {
	// Rec. 601 luma is close enough for label contrast.
	luma := 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
	if luma > 128 {
		return color.Black
	}
	return color.White
}

func drawLabel(img *image.RGBA, text string, x, y int, c color.Color) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
