package testutil

import (
	"testing"

	"github.com/lgbarn/gridboard-go/internal/board"
	"github.com/lgbarn/gridboard-go/internal/layout"
)

// StaticKind is a piece kind whose legality matrix lists fixed cells,
// independent of where the piece stands. Cells outside the grid are ignored.
type StaticKind struct {
	Legal []board.Coordinate
	Label byte
}

// PossibleMoves returns a matrix with exactly the Legal cells set.
func (k StaticKind) PossibleMoves(v board.View, _ board.Coordinate) board.Matrix {
	m := board.NewMatrix(v.Rows(), v.Columns())
	for _, c := range k.Legal {
		m.Set(c)
	}
	return m
}

// Symbol returns Label, or 'S' when unset.
func (k StaticKind) Symbol() byte {
	if k.Label == 0 {
		return 'S'
	}
	return k.Label
}

// MustGrid creates a grid and calls t.Fatal if the dimensions are rejected.
func MustGrid(t *testing.T, rows, columns int) *board.Grid {
	t.Helper()
	g, err := board.New(rows, columns)
	if err != nil {
		t.Fatalf("board.New(%d, %d): %v", rows, columns, err)
	}
	return g
}

// MustPlace creates a piece of the given kind on g and places it at c.
// It calls t.Fatal if the placement fails.
func MustPlace(t *testing.T, g *board.Grid, kind board.Kind, c board.Coordinate) *board.Piece {
	t.Helper()
	p := board.NewPiece(g, kind)
	if err := g.Place(p, c); err != nil {
		t.Fatalf("Place(%v): %v", c, err)
	}
	return p
}

// MustParseLayout parses layout text and calls t.Fatal on failure.
func MustParseLayout(t *testing.T, text string) *board.Grid {
	t.Helper()
	g, err := layout.Parse(text)
	if err != nil {
		t.Fatalf("failed to parse layout %q: %v", text, err)
	}
	return g
}

// MustCoordinate parses notation for a grid with the given row count and
// calls t.Fatal on failure.
func MustCoordinate(t *testing.T, text string, rows int) board.Coordinate {
	t.Helper()
	c, err := board.ParseCoordinate(text, rows)
	if err != nil {
		t.Fatalf("ParseCoordinate(%q): %v", text, err)
	}
	return c
}
