// Package cli provides the command-line interface for Swatch.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/image"
	"github.com/jmylchreest/swatch/internal/preview"
)

var (
	// Extract command flags
	extractColours     int
	extractResize      float64
	extractMethod      = methodFlag(colour.MethodCentroid)
	extractColourblind bool
	extractSort        = sortKeyFlag(colour.SortNone)
	extractSeed        int64
	extractFormat      string
	extractOutput      string
	extractPreview     bool
	extractPreviewPNG  string
	extractTitle       string
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <image>",
	Short: "Extract a colour palette from an image",
	Long: `Extract a colour palette from an image using pixel clustering.

The image is downsampled by the resize fraction, clustered into the
requested number of representative colours, optionally substituted with
colourblind-safe alternatives, and sorted by the chosen HSV dimension.

The image argument may be a file, a directory (a random supported image is
picked) or an HTTP(S) URL. Supported formats: JPEG, PNG, GIF, WebP.

Examples:
  # Extract 8 colours (default) from an image
  swatch extract wallpaper.jpg

  # Extract 5 colours with Gaussian mixture modelling, sorted by hue
  swatch extract -c 5 -m mixture --sort hue photo.png

  # Colourblind-safe palette with a terminal preview
  swatch extract --colourblind-safe --preview wallpaper.jpg

  # Save a labeled swatch grid alongside the hex output
  swatch extract --preview-png palette.png --title "Sunset tones" sunset.jpg

  # Deterministic extraction for reproducible documents
  swatch extract --seed 42 --format json chart-source.png`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().IntVarP(&extractColours, "colours", "c", 8, "number of colours to extract")
	extractCmd.Flags().Float64Var(&extractResize, "resize", 0.1, "downsampling fraction in (0, 1]")
	extractCmd.Flags().VarP(&extractMethod, "method", "m", "clustering method (centroid, mixture, dominant)")
	extractCmd.Flags().BoolVar(&extractColourblind, "colourblind-safe", false, "substitute colourblind-safe alternatives")
	extractCmd.Flags().Var(&extractSort, "sort", "palette order (none, hue, saturation, value)")
	extractCmd.Flags().Int64Var(&extractSeed, "seed", 1, "random seed for reproducible clustering")
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", "hex", "output format (hex, rgb, json, table)")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "output file (default: stdout)")
	extractCmd.Flags().BoolVar(&extractPreview, "preview", false, "show colour previews in the terminal")
	extractCmd.Flags().StringVar(&extractPreviewPNG, "preview-png", "", "write a labeled swatch grid to a PNG file")
	extractCmd.Flags().StringVar(&extractTitle, "title", "", "title for the swatch grid preview")
}

// runExtract executes the extract command.
func runExtract(cmd *cobra.Command, args []string) error {
	source, err := image.ResolvePath(args[0])
	if err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}
	logger.Debug("loading image", "source", source)

	img, err := image.NewSmartLoader().Load(source)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}
	bounds := img.Bounds()
	logger.Debug("image loaded", "width", bounds.Dx(), "height", bounds.Dy())

	opts := colour.DefaultExtractOptions()
	opts.Colours = extractColours
	opts.Resize = extractResize
	opts.Method = colour.Method(extractMethod)
	opts.ColourblindSafe = extractColourblind
	opts.SortKey = colour.SortKey(extractSort)
	opts.Seed = extractSeed

	logger.Debug("extracting palette",
		"colours", opts.Colours, "method", opts.Method, "sort", opts.SortKey, "seed", opts.Seed)

	palette, err := colour.ExtractPalette(img, opts)
	if err != nil {
		return fmt.Errorf("failed to extract palette: %w", err)
	}
	logger.Debug("palette extracted", "colours", len(palette))

	output, err := formatPalette(palette, extractFormat, extractPreview)
	if err != nil {
		return err
	}
	if err := writeOutput(output, extractOutput); err != nil {
		return err
	}

	if extractPreviewPNG != "" {
		renderer := &preview.PNGRenderer{Path: extractPreviewPNG}
		if err := renderer.Render(palette, extractTitle); err != nil {
			return fmt.Errorf("failed to render preview: %w", err)
		}
		logger.Info("preview written", "path", extractPreviewPNG)
	}

	return nil
}
