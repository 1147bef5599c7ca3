package config

import (
	"fmt"
	"io"

	"github.com/lgbarn/gridboard-go/internal/errors"
)

// DuplicateConfig holds settings for duplicate board detection.
type DuplicateConfig struct {
	// Suppress enables duplicate suppression
	Suppress bool

	// ExactMatch also compares layout text, ruling out hash collisions
	ExactMatch bool

	// MaxCapacity bounds the number of remembered boards; 0 is unlimited
	MaxCapacity int

	// DuplicateFile receives the layouts of suppressed boards when set
	DuplicateFile io.Writer
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{}
}

// Validate rejects a negative capacity.
func (d *DuplicateConfig) Validate() error {
	if d.MaxCapacity < 0 {
		return fmt.Errorf("negative duplicate capacity %d: %w", d.MaxCapacity, errors.ErrInvalidConfig)
	}
	return nil
}
