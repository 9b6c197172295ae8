// Package cli provides the command-line interface for Swatch.
package cli

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/jmylchreest/swatch/internal/colour"
)

// methodFlag is a pflag.Value for the clustering method, rejecting unknown
// names at parse time instead of deep in the pipeline.
type methodFlag colour.Method

var _ pflag.Value = (*methodFlag)(nil)

func (m *methodFlag) String() string { return string(*m) }

func (m *methodFlag) Set(v string) error {
	if !colour.IsValidMethod(colour.Method(v)) {
		return fmt.Errorf("unknown method %q (valid methods: %v)", v, colour.ValidMethods())
	}
	*m = methodFlag(v)
	return nil
}

func (m *methodFlag) Type() string { return "method" }

// sortKeyFlag is a pflag.Value for the palette sort key.
type sortKeyFlag colour.SortKey

var _ pflag.Value = (*sortKeyFlag)(nil)

func (s *sortKeyFlag) String() string { return string(*s) }

func (s *sortKeyFlag) Set(v string) error {
	if !colour.IsValidSortKey(colour.SortKey(v)) {
		return fmt.Errorf("unknown sort key %q (valid keys: %v)", v, colour.ValidSortKeys())
	}
	*s = sortKeyFlag(v)
	return nil
}

func (s *sortKeyFlag) Type() string { return "sort-key" }
