// Package colour provides colour extraction and palette manipulation functionality.
package colour

import "errors"

var (
	// ErrInvalidParameter indicates a caller-supplied value outside its valid
	// range: colour counts, resize fractions, alpha values, hex codes, method
	// and sort-key names. Check with errors.Is.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrClusteringFailure indicates that a clustering strategy could not
	// produce the requested number of colours after its retry path was
	// exhausted.
	ErrClusteringFailure = errors.New("clustering failure")
)
