// Package image provides utilities for loading and sampling images.
package image

import (
	"bytes"
	"context"
	"crypto/rand"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"io"
	"math/big"
	"os"
	"path/filepath"
	"slices"
	"strings"

	_ "golang.org/x/image/webp" // Register WebP format

	httputil "github.com/jmylchreest/swatch/internal/util/http"
)

// supportedExtensions lists the image file extensions considered when
// scanning a directory.
var supportedExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

// Loader handles loading images from various sources.
type Loader interface {
	// Load loads an image from the given path or URL.
	Load(path string) (image.Image, error)
}

// SmartLoader loads images from local files and HTTP(S) URLs.
// Supported formats: JPEG, PNG, GIF, WebP.
type SmartLoader struct{}

// NewSmartLoader creates a new SmartLoader instance.
func NewSmartLoader() *SmartLoader {
	return &SmartLoader{}
}

// Load loads an image from either a local file path or an HTTP(S) URL.
func (l *SmartLoader) Load(path string) (image.Image, error) {
	if isURL(path) {
		data, err := httputil.Fetch(context.Background(), path, httputil.FetchOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to fetch image from URL: %w", err)
		}
		return decode(bytes.NewReader(data))
	}

	file, err := os.Open(path) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	return decode(file)
}

func decode(r io.Reader) (image.Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}
	return img, nil
}

// ResolvePath resolves an image source that may be a file, a directory or a
// URL. Directories are scanned for supported images and one is selected at
// random; files and URLs are returned as-is.
func ResolvePath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("image path cannot be empty")
	}
	if isURL(path) {
		return path, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("image file or directory not found: %s", path)
		}
		return "", fmt.Errorf("failed to access image path: %w", err)
	}
	if !info.IsDir() {
		return path, nil
	}

	candidates, err := scanDirectory(path)
	if err != nil {
		return "", err
	}
	return pickRandom(candidates)
}

// scanDirectory returns the supported image files directly inside dirPath.
// It does not recurse into subdirectories, but follows symlinks.
func scanDirectory(dirPath string) ([]string, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var images []string
	for _, entry := range entries {
		fullPath := filepath.Join(dirPath, entry.Name())

		// Stat the target so symlinked files count and directories don't.
		info, err := os.Stat(fullPath)
		if err != nil || info.IsDir() {
			continue
		}
		if slices.Contains(supportedExtensions, strings.ToLower(filepath.Ext(entry.Name()))) {
			images = append(images, fullPath)
		}
	}

	if len(images) == 0 {
		return nil, fmt.Errorf("no supported image files found in directory: %s", dirPath)
	}
	return images, nil
}

// pickRandom selects one path using crypto/rand so repeated wallpaper-style
// invocations do not repeat a pattern.
func pickRandom(paths []string) (string, error) {
	index, err := rand.Int(rand.Reader, big.NewInt(int64(len(paths))))
	if err != nil {
		return "", fmt.Errorf("failed to generate random number: %w", err)
	}
	return paths[index.Int64()], nil
}

func isURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}
