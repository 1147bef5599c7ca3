package config

import (
	"fmt"

	"github.com/lgbarn/gridboard-go/internal/errors"
)

// OutputFormat selects how boards are written.
type OutputFormat int

const (
	Text   OutputFormat = iota // Labelled character grid
	JSON                       // One JSON document per board
	Layout                     // Layout text, one line per board
)

// String returns the flag name of the format.
func (f OutputFormat) String() string {
	switch f {
	case Text:
		return "text"
	case JSON:
		return "json"
	case Layout:
		return "layout"
	default:
		return fmt.Sprintf("OutputFormat(%d)", int(f))
	}
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies the output form
	Format OutputFormat

	// ShowLabels adds row numbers and column letters to text output
	ShowLabels bool

	// EmptySymbol marks an empty cell in text output
	EmptySymbol byte

	// HighlightSymbol marks a legal destination in text output
	HighlightSymbol byte

	// IndentJSON pretty-prints JSON output
	IndentJSON bool

	// JSONPerBoard writes each board as its own JSON document instead of
	// one document holding every board
	JSONPerBoard bool

	// Color renders text output with ANSI colours: pieces by side and a
	// background behind legal destinations in place of HighlightSymbol
	Color bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:          Text,
		ShowLabels:      true,
		EmptySymbol:     '-',
		HighlightSymbol: '*',
		IndentJSON:      true,
	}
}

// Validate checks the format and that the marker symbols are distinct
// printable characters.
func (o *OutputConfig) Validate() error {
	if o.Format < Text || o.Format > Layout {
		return fmt.Errorf("unknown output format %d: %w", int(o.Format), errors.ErrInvalidConfig)
	}
	for _, s := range []byte{o.EmptySymbol, o.HighlightSymbol} {
		if s <= ' ' || s > '~' {
			return fmt.Errorf("output symbol %q is not printable: %w", s, errors.ErrInvalidConfig)
		}
	}
	if o.EmptySymbol == o.HighlightSymbol {
		return fmt.Errorf("empty and highlight symbols are both %q: %w", o.EmptySymbol, errors.ErrInvalidConfig)
	}
	return nil
}
