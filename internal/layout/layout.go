// Package layout reads and writes board layouts in a FEN-like text form
// generalised to any grid size: ranks from top to bottom separated by '/',
// decimal runs of empty cells, and one letter per piece.
//
//	"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"
//	"x10X/12/K11"
package layout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/gridboard-go/internal/board"
	"github.com/lgbarn/gridboard-go/internal/errors"
	"github.com/lgbarn/gridboard-go/internal/pieces"
)

// Standard8x8 is the standard chess starting layout.
const Standard8x8 = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// RankSeparator separates ranks in layout text.
const RankSeparator = '/'

// KindFunc converts a layout symbol into a piece kind.
type KindFunc func(symbol byte) (board.Kind, error)

// Options controls Parse.
type Options struct {
	// Source names the layout in error messages.
	Source string

	// Rows and Columns force the grid size. Zero infers it from the text.
	Rows    int
	Columns int

	// Kinds maps symbols to kinds. Defaults to pieces.ByteKind.
	Kinds KindFunc
}

// placement is a piece symbol found while scanning a layout.
type placement struct {
	at     board.Coordinate
	symbol byte
	offset int
}

// Parse builds a grid from layout text using the default piece kinds.
func Parse(text string) (*board.Grid, error) {
	return ParseWithOptions(text, Options{})
}

// ParseWithOptions builds a grid from layout text.
func ParseWithOptions(text string, opts Options) (*board.Grid, error) {
	kinds := opts.Kinds
	if kinds == nil {
		kinds = pieces.ByteKind
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &errors.LayoutError{Err: errors.ErrInvalidLayout, Source: opts.Source, Got: "empty layout"}
	}

	ranks := strings.Split(text, string(RankSeparator))
	width := -1
	var placements []placement

	for r, rank := range ranks {
		n, found, err := scanRank(rank, r, opts.Source)
		if err != nil {
			return nil, err
		}
		if width >= 0 && n != width {
			return nil, &errors.LayoutError{
				Err:    errors.ErrInvalidLayout,
				Source: opts.Source,
				Line:   r + 1,
				Got:    fmt.Sprintf("rank of %d cells, want %d", n, width),
			}
		}
		width = n
		placements = append(placements, found...)
	}

	rows, columns := len(ranks), width
	if (opts.Rows != 0 && opts.Rows != rows) || (opts.Columns != 0 && opts.Columns != columns) {
		return nil, &errors.LayoutError{
			Err:    errors.ErrInvalidLayout,
			Source: opts.Source,
			Got:    fmt.Sprintf("%dx%d layout for %dx%d grid", rows, columns, opts.Rows, opts.Columns),
		}
	}

	g, err := board.New(rows, columns)
	if err != nil {
		return nil, err
	}

	for _, pl := range placements {
		kind, err := kinds(pl.symbol)
		if err != nil {
			return nil, &errors.LayoutError{
				Err:    err,
				Source: opts.Source,
				Line:   pl.at.Row + 1,
				Column: pl.offset + 1,
				Got:    string(pl.symbol),
			}
		}
		if err := g.Place(board.NewPiece(g, kind), pl.at); err != nil {
			return nil, errors.Wrapf(err, "layout %s", opts.Source)
		}
	}

	return g, nil
}

// scanRank returns the width of one rank and the pieces it names.
func scanRank(rank string, row int, source string) (int, []placement, error) {
	var found []placement
	column := 0
	run := 0
	inRun := false

	for i := 0; i < len(rank); i++ {
		c := rank[i]
		switch {
		case c >= '0' && c <= '9':
			if !inRun && c == '0' {
				return 0, nil, &errors.LayoutError{Err: errors.ErrInvalidLayout, Source: source, Line: row + 1, Column: i + 1, Got: "0"}
			}
			run = run*10 + int(c-'0')
			inRun = true
			if run > board.MaxCells {
				return 0, nil, &errors.LayoutError{Err: errors.ErrInvalidLayout, Source: source, Line: row + 1, Column: i + 1, Got: "oversized run"}
			}
		case (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'):
			column += run
			run, inRun = 0, false
			found = append(found, placement{at: board.At(row, column), symbol: c, offset: i})
			column++
		default:
			return 0, nil, &errors.LayoutError{Err: errors.ErrInvalidLayout, Source: source, Line: row + 1, Column: i + 1, Got: string(c)}
		}
	}
	column += run

	if column == 0 {
		return 0, nil, &errors.LayoutError{Err: errors.ErrInvalidLayout, Source: source, Line: row + 1, Got: "empty rank"}
	}
	return column, found, nil
}

// Format renders a grid as layout text. Pieces whose kind has no symbol are
// written as '?', which Parse rejects.
func Format(g *board.Grid) string {
	var b strings.Builder
	for r, row := range g.Cells() {
		if r > 0 {
			b.WriteByte(RankSeparator)
		}
		empty := 0
		for _, p := range row {
			if p == nil {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteByte(p.Symbol())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
	}
	return b.String()
}
