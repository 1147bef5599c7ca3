package board

import (
	"github.com/google/uuid"

	"github.com/lgbarn/gridboard-go/internal/errors"
)

// View is the read-only face of a Grid handed to piece kinds.
type View interface {
	Rows() int
	Columns() int
	PositionExists(c Coordinate) bool
	PieceAt(c Coordinate) (*Piece, error)
	IsOccupied(c Coordinate) (bool, error)
}

// Kind computes the movement shape of a family of pieces. PossibleMoves
// returns a Rows() x Columns() matrix marking every cell a piece standing at
// from could move to, ignoring turn order, check and any other rule-layer
// constraint.
type Kind interface {
	PossibleMoves(v View, from Coordinate) Matrix
}

// Symboler is implemented by kinds that render as a single letter.
type Symboler interface {
	Symbol() byte
}

// Piece is a placeable entity bound to exactly one grid. It records the
// grid's ID rather than the grid itself; callers hold the grid and pass it to
// the legality queries. Position is written only by the grid's Place, Remove
// and Move.
type Piece struct {
	id     uuid.UUID
	gridID uuid.UUID
	kind   Kind

	pos    Coordinate
	placed bool
}

// NewPiece creates an unplaced piece of the given kind bound to g.
// A nil kind never has a legal move.
func NewPiece(g *Grid, kind Kind) *Piece {
	p := &Piece{id: uuid.New(), kind: kind}
	if g != nil {
		p.gridID = g.id
	}
	return p
}

// ID returns the piece's identifier.
func (p *Piece) ID() uuid.UUID {
	return p.id
}

// GridID returns the identifier of the grid the piece is bound to.
func (p *Piece) GridID() uuid.UUID {
	return p.gridID
}

// Kind returns the piece's movement kind.
func (p *Piece) Kind() Kind {
	return p.kind
}

// Symbol returns the kind's letter, or '?' if the kind has none.
func (p *Piece) Symbol() byte {
	if s, ok := p.kind.(Symboler); ok {
		return s.Symbol()
	}
	return '?'
}

// Position returns the piece's cell and whether it is placed.
func (p *Piece) Position() (Coordinate, bool) {
	return p.pos, p.placed
}

// Placed reports whether the piece currently occupies a cell.
func (p *Piece) Placed() bool {
	return p.placed
}

// PossibleMoves returns the legality matrix for the piece's current cell on g.
func (p *Piece) PossibleMoves(g *Grid) (Matrix, error) {
	if err := p.check(g); err != nil {
		return nil, err
	}
	if !p.placed {
		return nil, errors.Wrapf(errors.ErrNotPlaced, "piece %s", p.id)
	}
	if p.kind == nil {
		return NewMatrix(g.rows, g.columns), nil
	}

	m := p.kind.PossibleMoves(g, p.pos)
	if !m.HasShape(g.rows, g.columns) {
		return nil, errors.Wrapf(errors.ErrMatrixShape,
			"piece %s: got %dx%d, want %dx%d", p.id, m.Rows(), m.Columns(), g.rows, g.columns)
	}
	return m, nil
}

// PossibleMove reports whether the piece could move to c.
func (p *Piece) PossibleMove(g *Grid, c Coordinate) (bool, error) {
	if err := p.check(g); err != nil {
		return false, err
	}
	if !g.PositionExists(c) {
		return false, g.positionError("possible move", c, errors.ErrOutOfBounds)
	}
	m, err := p.PossibleMoves(g)
	if err != nil {
		return false, err
	}
	return m[c.Row][c.Column], nil
}

// HasAnyPossibleMove reports whether the piece has at least one legal
// destination. Both axes are scanned to their own extent, so non-square
// grids are fully covered.
func (p *Piece) HasAnyPossibleMove(g *Grid) (bool, error) {
	m, err := p.PossibleMoves(g)
	if err != nil {
		return false, err
	}
	return m.Any(), nil
}

func (p *Piece) check(g *Grid) error {
	if g == nil || p.gridID != g.id {
		return errors.Wrapf(errors.ErrForeignPiece, "piece %s", p.id)
	}
	return nil
}
