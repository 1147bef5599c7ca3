package output

import (
	"github.com/lgbarn/gridboard-go/internal/board"
	"github.com/lgbarn/gridboard-go/internal/errors"
)

// Frame is one board ready to be written.
type Frame struct {
	// Source names where the board came from (file name, "arg 2", "stdin").
	Source string

	Grid *board.Grid

	// Highlight is the piece whose legal destinations Moves holds.
	// Both are nil when nothing is highlighted.
	Highlight *board.Piece
	Moves     board.Matrix
}

// NewFrame wraps g for writing. When at is non-nil, the piece on that cell is
// highlighted along with its legal destinations; an empty cell is an error.
func NewFrame(source string, g *board.Grid, at *board.Coordinate) (*Frame, error) {
	f := &Frame{Source: source, Grid: g}
	if at == nil {
		return f, nil
	}

	p, err := g.PieceAt(*at)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, &errors.PositionError{
			Err:     errors.ErrEmptyPosition,
			Op:      "highlight",
			Row:     at.Row,
			Column:  at.Column,
			Rows:    g.Rows(),
			Columns: g.Columns(),
		}
	}

	moves, err := p.PossibleMoves(g)
	if err != nil {
		return nil, err
	}
	f.Highlight, f.Moves = p, moves
	return f, nil
}

// highlighted reports whether c is a legal destination of the highlighted piece.
func (f *Frame) highlighted(c board.Coordinate) bool {
	return f.Moves != nil && f.Moves.At(c)
}
