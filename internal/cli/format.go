// Package cli provides the command-line interface for Swatch.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/jmylchreest/swatch/internal/colour"
)

// isTerminal reports whether stdout supports ANSI colour previews.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// formatPalette formats a palette of 6-digit hex colours for output.
func formatPalette(palette []string, format string, showPreview bool) (string, error) {
	colours, err := parsePalette(palette)
	if err != nil {
		return "", err
	}

	preview := showPreview && isTerminal()
	switch format {
	case "hex":
		var sb strings.Builder
		for _, c := range colours.Colours {
			if preview {
				sb.WriteString(colour.FormatColourWithPreview(c, 8))
			} else {
				sb.WriteString(c.Hex())
			}
			sb.WriteString("\n")
		}
		return sb.String(), nil

	case "rgb":
		var sb strings.Builder
		for _, c := range colours.Colours {
			if preview {
				sb.WriteString(colour.FormatColourWithPreview(c, 8) + "  " + c.String())
			} else {
				sb.WriteString(c.String())
			}
			sb.WriteString("\n")
		}
		return sb.String(), nil

	case "json":
		jsonBytes, err := colours.ToJSON()
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(jsonBytes) + "\n", nil

	case "table":
		table := NewTable([]string{"#", "Hex", "RGB", "HSV"})
		for i, c := range colours.Colours {
			h, s, v := c.HSV()
			table.AddRow([]string{
				fmt.Sprintf("%d", i+1),
				c.Hex(),
				c.String(),
				fmt.Sprintf("hsv(%.0f, %.2f, %.2f)", h, s, v),
			})
		}
		return table.Render(), nil

	default:
		return "", fmt.Errorf("unsupported format: %s (supported: hex, rgb, json, table)", format)
	}
}

// formatAlphaPalette formats a palette of 8-digit hex colours for output.
func formatAlphaPalette(palette []string, format string, showPreview bool) (string, error) {
	switch format {
	case "hex":
		var sb strings.Builder
		for _, hex := range palette {
			if showPreview && isTerminal() {
				line, err := colour.FormatAlphaColourWithPreview(hex, 8)
				if err != nil {
					return "", err
				}
				sb.WriteString(line)
			} else {
				sb.WriteString(hex)
			}
			sb.WriteString("\n")
		}
		return sb.String(), nil

	case "json":
		jsonBytes, err := json.MarshalIndent(struct {
			Count   int      `json:"count"`
			Colours []string `json:"colours"`
		}{Count: len(palette), Colours: palette}, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(jsonBytes) + "\n", nil

	default:
		return "", fmt.Errorf("unsupported format: %s (supported: hex, json)", format)
	}
}

// parsePalette converts hex strings back into a Palette for formatting.
func parsePalette(palette []string) (*colour.Palette, error) {
	colours := make([]colour.RGB, len(palette))
	for i, hex := range palette {
		rgb, err := colour.ParseHex(hex)
		if err != nil {
			return nil, err
		}
		colours[i] = rgb
	}
	return colour.NewPalette(colours), nil
}

// writeOutput writes the formatted output to a file or stdout.
func writeOutput(output, path string) error {
	if path == "" {
		fmt.Print(output)
		return nil
	}
	if err := os.WriteFile(path, []byte(output), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	logger.Debug("output written", "path", path)
	return nil
}
