package board

import (
	"github.com/google/uuid"

	"github.com/lgbarn/gridboard-go/internal/errors"
)

// MaxCells bounds rows*columns so a grid's backing slice stays allocatable.
const MaxCells = 1 << 24

// Grid is a fixed-size rectangular board whose cells each hold at most one
// piece. It is the only type that binds pieces to cells or unbinds them, and
// it keeps every placed piece's coordinate equal to the cell holding it.
type Grid struct {
	id      uuid.UUID
	rows    int
	columns int

	// cells is row-major: cell (r, c) is cells[r*columns+c].
	cells []*Piece

	// occupied counts the non-nil entries of cells.
	occupied int
}

// New creates an empty grid with the given dimensions.
func New(rows, columns int) (*Grid, error) {
	if rows < 1 || columns < 1 {
		return nil, errors.Wrapf(errors.ErrInvalidDimensions,
			"creating %dx%d grid: must have at least 1 row and 1 column", rows, columns)
	}
	if rows > MaxCells/columns {
		return nil, errors.Wrapf(errors.ErrInvalidDimensions,
			"creating %dx%d grid: more than %d cells", rows, columns, MaxCells)
	}
	return &Grid{
		id:      uuid.New(),
		rows:    rows,
		columns: columns,
		cells:   make([]*Piece, rows*columns),
	}, nil
}

// ID returns the grid's identifier. Pieces created for this grid carry it.
func (g *Grid) ID() uuid.UUID {
	return g.id
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Columns returns the number of columns.
func (g *Grid) Columns() int {
	return g.columns
}

// Len returns the number of occupied cells.
func (g *Grid) Len() int {
	return g.occupied
}

// PositionExists reports whether c lies within the grid.
func (g *Grid) PositionExists(c Coordinate) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Column >= 0 && c.Column < g.columns
}

// PieceAt returns the piece at c, or nil for an empty cell.
func (g *Grid) PieceAt(c Coordinate) (*Piece, error) {
	if !g.PositionExists(c) {
		return nil, g.positionError("piece", c, errors.ErrOutOfBounds)
	}
	return g.cells[g.index(c)], nil
}

// IsOccupied reports whether the cell at c holds a piece.
func (g *Grid) IsOccupied(c Coordinate) (bool, error) {
	p, err := g.PieceAt(c)
	if err != nil {
		return false, err
	}
	return p != nil, nil
}

// Place binds p to the empty cell at c and records c as p's position.
// The grid and p are unchanged when an error is returned.
func (g *Grid) Place(p *Piece, c Coordinate) error {
	occupied, err := g.IsOccupied(c)
	if err != nil {
		return err
	}
	if occupied {
		return g.positionError("place", c, errors.ErrPositionOccupied)
	}
	if err := g.checkPiece("place", p, c); err != nil {
		return err
	}
	if p.placed {
		return g.positionError("place", c, errors.ErrPiecePlaced)
	}

	g.bind(p, c)
	return nil
}

// Remove unbinds and returns the piece at c, leaving it unplaced.
// It returns nil without error when the cell is empty.
func (g *Grid) Remove(c Coordinate) (*Piece, error) {
	p, err := g.PieceAt(c)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}

	g.unbind(c)
	return p, nil
}

// Move relocates the piece at from to to, removing and returning any piece
// already at to. The grid is unchanged when an error is returned.
func (g *Grid) Move(from, to Coordinate) (*Piece, error) {
	p, err := g.PieceAt(from)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, g.positionError("move", from, errors.ErrEmptyPosition)
	}
	captured, err := g.PieceAt(to)
	if err != nil {
		return nil, err
	}
	if captured == p {
		return nil, g.positionError("move", to, errors.ErrPositionOccupied)
	}

	g.unbind(from)
	if captured != nil {
		g.unbind(to)
	}
	g.bind(p, to)
	return captured, nil
}

// Find returns the cell holding p. The second result is false when p is nil,
// unplaced, or bound to another grid.
func (g *Grid) Find(p *Piece) (Coordinate, bool) {
	if p == nil || p.gridID != g.id || !p.placed {
		return Coordinate{}, false
	}
	if !g.PositionExists(p.pos) || g.cells[g.index(p.pos)] != p {
		return Coordinate{}, false
	}
	return p.pos, true
}

// Pieces returns the placed pieces in row-major order.
func (g *Grid) Pieces() []*Piece {
	out := make([]*Piece, 0, g.occupied)
	for _, p := range g.cells {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

// Cells returns a copy of the grid contents indexed [row][column].
// Mutating the copy does not affect the grid.
func (g *Grid) Cells() [][]*Piece {
	out := make([][]*Piece, g.rows)
	for r := range out {
		row := make([]*Piece, g.columns)
		copy(row, g.cells[r*g.columns:(r+1)*g.columns])
		out[r] = row
	}
	return out
}

func (g *Grid) index(c Coordinate) int {
	return c.Row*g.columns + c.Column
}

// bind and unbind update both sides of the cell/piece relation together.
func (g *Grid) bind(p *Piece, c Coordinate) {
	g.cells[g.index(c)] = p
	g.occupied++
	p.pos = c
	p.placed = true
}

func (g *Grid) unbind(c Coordinate) {
	i := g.index(c)
	p := g.cells[i]
	g.cells[i] = nil
	g.occupied--
	p.pos = Coordinate{}
	p.placed = false
}

func (g *Grid) checkPiece(op string, p *Piece, c Coordinate) error {
	if p == nil {
		return g.positionError(op, c, errors.ErrNilPiece)
	}
	if p.gridID != g.id {
		return g.positionError(op, c, errors.ErrForeignPiece)
	}
	return nil
}

func (g *Grid) positionError(op string, c Coordinate, err error) error {
	return &errors.PositionError{
		Err:     err,
		Op:      op,
		Row:     c.Row,
		Column:  c.Column,
		Rows:    g.rows,
		Columns: g.columns,
	}
}
