// Package output writes boards as labelled text, layout lines or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/gridboard-go/internal/board"
	"github.com/lgbarn/gridboard-go/internal/config"
	"github.com/lgbarn/gridboard-go/internal/layout"
	"github.com/lgbarn/gridboard-go/internal/pieces"
)

// BoardWriter is the interface for writing boards to output.
// Different implementations handle different output formats.
type BoardWriter interface {
	// WriteBoard writes a single board to the output.
	WriteBoard(f *Frame) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer for cfg.Output.Format.
func NewWriter(w io.Writer, cfg *config.Config) BoardWriter {
	switch cfg.Output.Format {
	case config.JSON:
		if cfg.Output.JSONPerBoard {
			return NewJSONWriterSingle(w, cfg)
		}
		return NewJSONWriter(w, cfg)
	case config.Layout:
		return NewLayoutWriter(w)
	default:
		return NewTextWriter(w, cfg)
	}
}

// TextWriter writes boards as a character grid, one rank per line, with row
// numbers on the left and column letters underneath. Legal destinations of
// a highlighted piece are marked with the highlight symbol: in place of an
// empty cell, or after the symbol of a piece that could be captured.
type TextWriter struct {
	w   io.Writer
	cfg *config.OutputConfig
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{w: w, cfg: cfg.Output}
}

// WriteBoard writes the board followed by a blank line.
func (tw *TextWriter) WriteBoard(f *Frame) error {
	if f.Source != "" {
		if _, err := fmt.Fprintf(tw.w, "%s\n", f.Source); err != nil {
			return err
		}
	}
	_, err := io.WriteString(tw.w, RenderText(f, tw.cfg)+"\n")
	return err
}

// Flush is a no-op; TextWriter writes immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// ANSI escapes used by colour text output.
const (
	ansiReset          = "\x1b[0m"
	ansiWhite          = "\x1b[37m"
	ansiYellow         = "\x1b[33m"
	ansiBlueBackground = "\x1b[44m"
)

// RenderText returns the text form of a frame, each line ending in a newline.
func RenderText(f *Frame, cfg *config.OutputConfig) string {
	g := f.Grid
	rows, columns := g.Rows(), g.Columns()
	cellWidth := len(board.ColumnLetters(columns-1)) + 1
	if f.Moves != nil && !cfg.Color {
		cellWidth++ // room for a capture mark
	}
	labelWidth := len(fmt.Sprint(rows))

	var b strings.Builder
	var line strings.Builder
	for r, row := range g.Cells() {
		line.Reset()
		if cfg.ShowLabels {
			fmt.Fprintf(&line, "%*d ", labelWidth, rows-r)
		}
		for c, p := range row {
			text, width := cellText(f, p, board.At(r, c), cfg)
			line.WriteString(pad(text, width, cellWidth))
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteByte('\n')
	}

	if cfg.ShowLabels {
		line.Reset()
		line.WriteString(strings.Repeat(" ", labelWidth+1))
		for c := 0; c < columns; c++ {
			letters := board.ColumnLetters(c)
			line.WriteString(pad(letters, len(letters), cellWidth))
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteByte('\n')
	}
	return b.String()
}

// cellText returns the text of one cell and its visible width, which
// excludes any ANSI escapes.
func cellText(f *Frame, p *board.Piece, c board.Coordinate, cfg *config.OutputConfig) (string, int) {
	mark := f.highlighted(c)
	if cfg.Color {
		return colorCellText(p, mark, cfg), 1
	}
	switch {
	case p == nil && mark:
		return string(cfg.HighlightSymbol), 1
	case p == nil:
		return string(cfg.EmptySymbol), 1
	case mark:
		return string([]byte{p.Symbol(), cfg.HighlightSymbol}), 2
	default:
		return string(p.Symbol()), 1
	}
}

// colorCellText draws light pieces white and dark pieces yellow, with a blue
// background behind legal destinations.
func colorCellText(p *board.Piece, mark bool, cfg *config.OutputConfig) string {
	var b strings.Builder
	if mark {
		b.WriteString(ansiBlueBackground)
	}
	if p == nil {
		b.WriteByte(cfg.EmptySymbol)
	} else {
		if side, ok := pieces.SideOf(p); ok {
			if side == pieces.Light {
				b.WriteString(ansiWhite)
			} else {
				b.WriteString(ansiYellow)
			}
		}
		b.WriteByte(p.Symbol())
	}
	if b.Len() == 1 {
		return b.String()
	}
	b.WriteString(ansiReset)
	return b.String()
}

// pad appends spaces to s, whose visible width is visible, up to width.
func pad(s string, visible, width int) string {
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}

// LayoutWriter writes each board as one line of layout text.
type LayoutWriter struct {
	w io.Writer
}

// NewLayoutWriter creates a new layout writer.
func NewLayoutWriter(w io.Writer) *LayoutWriter {
	return &LayoutWriter{w: w}
}

// WriteBoard writes the board's layout text.
func (lw *LayoutWriter) WriteBoard(f *Frame) error {
	_, err := fmt.Fprintln(lw.w, layout.Format(f.Grid))
	return err
}

// Flush is a no-op; LayoutWriter writes immediately.
func (lw *LayoutWriter) Flush() error {
	return nil
}

// Close closes the layout writer.
func (lw *LayoutWriter) Close() error {
	return nil
}
