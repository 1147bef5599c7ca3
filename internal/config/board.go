package config

import (
	"fmt"

	"github.com/lgbarn/gridboard-go/internal/errors"
	"github.com/lgbarn/gridboard-go/internal/layout"
)

// BoardConfig holds settings for how layouts become grids.
type BoardConfig struct {
	// Rows and Columns force the grid size; 0 takes it from the layout.
	Rows    int
	Columns int

	// DefaultLayout is processed when the starting layout is requested.
	DefaultLayout string
}

// NewBoardConfig creates a BoardConfig with default values.
func NewBoardConfig() *BoardConfig {
	return &BoardConfig{
		DefaultLayout: layout.Standard8x8,
	}
}

// Validate checks that forced dimensions are not negative.
func (b *BoardConfig) Validate() error {
	if b.Rows < 0 || b.Columns < 0 {
		return fmt.Errorf("board size %dx%d: %w", b.Rows, b.Columns, errors.ErrInvalidConfig)
	}
	return nil
}
