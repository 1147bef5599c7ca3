package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithLabels controls row and column labels in text output.
func (b *ConfigBuilder) WithLabels(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowLabels = enabled
	return b
}

// WithSymbols sets the empty-cell and highlight markers.
func (b *ConfigBuilder) WithSymbols(empty, highlight byte) *ConfigBuilder {
	b.cfg.Output.EmptySymbol = empty
	b.cfg.Output.HighlightSymbol = highlight
	return b
}

// WithJSONPerBoard writes one JSON document per board.
func (b *ConfigBuilder) WithJSONPerBoard(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONPerBoard = enabled
	return b
}

// WithColor enables ANSI colours in text output.
func (b *ConfigBuilder) WithColor(enabled bool) *ConfigBuilder {
	b.cfg.Output.Color = enabled
	return b
}

// WithBoardSize forces the grid size.
func (b *ConfigBuilder) WithBoardSize(rows, columns int) *ConfigBuilder {
	b.cfg.Board.Rows = rows
	b.cfg.Board.Columns = columns
	return b
}

// WithHighlight sets the cell whose legal destinations are shown.
func (b *ConfigBuilder) WithHighlight(cell string) *ConfigBuilder {
	b.cfg.Highlight = cell
	return b
}

// WithDuplicateSuppression enables duplicate suppression.
func (b *ConfigBuilder) WithDuplicateSuppression(enabled bool) *ConfigBuilder {
	b.cfg.Duplicate.Suppress = enabled
	return b
}

// WithExactMatch makes duplicate detection compare layout text.
func (b *ConfigBuilder) WithExactMatch(enabled bool) *ConfigBuilder {
	b.cfg.Duplicate.ExactMatch = enabled
	return b
}

// WithWorkers sets the number of parallel workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the diagnostics writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
