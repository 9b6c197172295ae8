// Package cli provides the command-line interface for Swatch.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/preview"
)

var (
	// Alpha command flags
	alphaValues     []float64
	alphaFormat     string
	alphaOutput     string
	alphaPreview    bool
	alphaPreviewPNG string
	alphaTitle      string
)

// alphaCmd represents the alpha command
var alphaCmd = &cobra.Command{
	Use:   "alpha <hex-colour>...",
	Short: "Attach per-colour transparency to a palette",
	Long: `Attach alpha channels to a list of 6-digit hex colours, producing 8-digit
"#rrggbbaa" codes (00 = transparent, ff = opaque).

A single alpha value is applied to every colour. With multiple values,
colours and alphas are paired up; mismatched lengths are zipped to the
shorter sequence with a warning.

Examples:
  # Half-transparent palette
  swatch alpha -a 0.5 "#ff0000" "#00ff00" "#0000ff"

  # Per-colour alphas
  swatch alpha -a 1.0 -a 0.75 -a 0.5 "#264653" "#2a9d8f" "#e9c46a"

  # Preview the result as a swatch grid
  swatch alpha -a 0.3 --preview-png faded.png "#264653" "#2a9d8f"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAlpha,
}

func init() {
	alphaCmd.Flags().Float64SliceVarP(&alphaValues, "alpha", "a", []float64{1.0}, "alpha value(s) in [0, 1]")
	alphaCmd.Flags().StringVarP(&alphaFormat, "format", "f", "hex", "output format (hex, json)")
	alphaCmd.Flags().StringVarP(&alphaOutput, "output", "o", "", "output file (default: stdout)")
	alphaCmd.Flags().BoolVar(&alphaPreview, "preview", false, "show colour previews in the terminal")
	alphaCmd.Flags().StringVar(&alphaPreviewPNG, "preview-png", "", "write a labeled swatch grid to a PNG file")
	alphaCmd.Flags().StringVar(&alphaTitle, "title", "", "title for the swatch grid preview")
}

// runAlpha executes the alpha command.
func runAlpha(cmd *cobra.Command, args []string) error {
	result, warning, err := colour.AttachAlpha(args, alphaValues)
	if err != nil {
		return fmt.Errorf("failed to attach alpha: %w", err)
	}
	if warning != nil {
		logger.Warn("length mismatch",
			"palette", warning.PaletteLen, "alphas", warning.AlphaLen, "used", warning.Used)
	}

	output, err := formatAlphaPalette(result, alphaFormat, alphaPreview)
	if err != nil {
		return err
	}
	if err := writeOutput(output, alphaOutput); err != nil {
		return err
	}

	if alphaPreviewPNG != "" {
		renderer := &preview.PNGRenderer{Path: alphaPreviewPNG}
		if err := renderer.Render(result, alphaTitle); err != nil {
			return fmt.Errorf("failed to render preview: %w", err)
		}
		logger.Info("preview written", "path", alphaPreviewPNG)
	}

	return nil
}
