package board

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	gberrors "github.com/lgbarn/gridboard-go/internal/errors"
)

// fixed marks the listed cells regardless of position.
type fixed []Coordinate

func (f fixed) PossibleMoves(v View, _ Coordinate) Matrix {
	m := NewMatrix(v.Rows(), v.Columns())
	for _, c := range f {
		m.Set(c)
	}
	return m
}

// misshapen returns a matrix of the wrong size.
type misshapen struct{ rows, columns int }

func (k misshapen) PossibleMoves(View, Coordinate) Matrix { return NewMatrix(k.rows, k.columns) }

// orthogonal steps one cell up, down, left or right into empty cells.
type orthogonal struct{}

func (orthogonal) PossibleMoves(v View, from Coordinate) Matrix {
	m := NewMatrix(v.Rows(), v.Columns())
	for _, d := range []Coordinate{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		to := from.Offset(d.Row, d.Column)
		if occupied, err := v.IsOccupied(to); err == nil && !occupied {
			m.Set(to)
		}
	}
	return m
}

type symbolKind struct{ inert }

func (symbolKind) Symbol() byte { return 'Z' }

func placed(t *testing.T, g *Grid, kind Kind, c Coordinate) *Piece {
	t.Helper()
	p := NewPiece(g, kind)
	if err := g.Place(p, c); err != nil {
		t.Fatalf("Place(%v): %v", c, err)
	}
	return p
}

func TestNewPiece(t *testing.T) {
	g := mustNew(t, 8, 8)
	p := NewPiece(g, inert{})

	if p.GridID() != g.ID() {
		t.Error("GridID does not match owning grid")
	}
	if p.Placed() {
		t.Error("new piece is placed")
	}
	if _, ok := p.Position(); ok {
		t.Error("new piece has a position")
	}
	if NewPiece(g, inert{}).ID() == p.ID() {
		t.Error("two pieces share an ID")
	}
}

func TestPiece_Symbol(t *testing.T) {
	g := mustNew(t, 1, 1)
	if got := NewPiece(g, symbolKind{}).Symbol(); got != 'Z' {
		t.Errorf("Symbol() = %q; want 'Z'", got)
	}
	if got := NewPiece(g, inert{}).Symbol(); got != '?' {
		t.Errorf("Symbol() = %q; want '?'", got)
	}
}

func TestPossibleMoves(t *testing.T) {
	g := mustNew(t, 3, 3)
	p := placed(t, g, orthogonal{}, At(1, 1))
	placed(t, g, inert{}, At(0, 1))

	m, err := p.PossibleMoves(g)
	if err != nil {
		t.Fatalf("PossibleMoves: %v", err)
	}
	want := []Coordinate{At(1, 0), At(1, 2), At(2, 1)}
	if diff := cmp.Diff(want, m.Coordinates()); diff != "" {
		t.Errorf("legal cells mismatch (-want +got):\n%s", diff)
	}
}

func TestPossibleMove(t *testing.T) {
	g := mustNew(t, 8, 8)
	p := placed(t, g, fixed{At(3, 3), At(7, 0)}, At(0, 0))

	tests := []struct {
		name string
		at   Coordinate
		want bool
	}{
		{"legal", At(3, 3), true},
		{"legal corner", At(7, 0), true},
		{"illegal", At(3, 4), false},
		{"own cell", At(0, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.PossibleMove(g, tt.at)
			if err != nil {
				t.Fatalf("PossibleMove(%v): %v", tt.at, err)
			}
			if got != tt.want {
				t.Errorf("PossibleMove(%v) = %v; want %v", tt.at, got, tt.want)
			}
		})
	}
}

func TestPossibleMove_OutOfBounds(t *testing.T) {
	g := mustNew(t, 8, 8)
	p := placed(t, g, fixed{At(0, 1)}, At(0, 0))

	for _, c := range []Coordinate{At(8, 0), At(0, 8), At(-1, -1)} {
		got, err := p.PossibleMove(g, c)
		if !errors.Is(err, gberrors.ErrOutOfBounds) {
			t.Errorf("PossibleMove(%v) error = %v; want ErrOutOfBounds", c, err)
		}
		if got {
			t.Errorf("PossibleMove(%v) = true alongside error", c)
		}
	}
}

func TestHasAnyPossibleMove(t *testing.T) {
	tests := []struct {
		name          string
		rows, columns int
		legal         fixed
		want          bool
	}{
		{"all false", 8, 8, nil, false},
		{"single legal", 8, 8, fixed{At(5, 6)}, true},
		{"wide grid last column", 2, 9, fixed{At(1, 8)}, true},
		{"tall grid last row", 9, 2, fixed{At(8, 1)}, true},
		{"wide grid all false", 3, 10, nil, false},
		{"single cell grid", 1, 1, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustNew(t, tt.rows, tt.columns)
			p := placed(t, g, tt.legal, At(0, 0))
			got, err := p.HasAnyPossibleMove(g)
			if err != nil {
				t.Fatalf("HasAnyPossibleMove: %v", err)
			}
			if got != tt.want {
				t.Errorf("HasAnyPossibleMove() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestLegalityQueries_Errors(t *testing.T) {
	g := mustNew(t, 4, 4)
	other := mustNew(t, 4, 4)

	unplaced := NewPiece(g, fixed{At(1, 1)})
	onGrid := placed(t, g, fixed{At(1, 1)}, At(0, 0))
	bad := placed(t, g, misshapen{4, 3}, At(3, 3))
	short := placed(t, g, misshapen{3, 4}, At(2, 2))

	tests := []struct {
		name  string
		piece *Piece
		grid  *Grid
		want  error
	}{
		{"unplaced", unplaced, g, gberrors.ErrNotPlaced},
		{"other grid", onGrid, other, gberrors.ErrForeignPiece},
		{"nil grid", onGrid, nil, gberrors.ErrForeignPiece},
		{"too few columns", bad, g, gberrors.ErrMatrixShape},
		{"too few rows", short, g, gberrors.ErrMatrixShape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.piece.PossibleMoves(tt.grid); !errors.Is(err, tt.want) {
				t.Errorf("PossibleMoves error = %v; want %v", err, tt.want)
			}
			if _, err := tt.piece.PossibleMove(tt.grid, At(1, 1)); !errors.Is(err, tt.want) {
				t.Errorf("PossibleMove error = %v; want %v", err, tt.want)
			}
			if _, err := tt.piece.HasAnyPossibleMove(tt.grid); !errors.Is(err, tt.want) {
				t.Errorf("HasAnyPossibleMove error = %v; want %v", err, tt.want)
			}
		})
	}
}

func TestPossibleMoves_NilKind(t *testing.T) {
	g := mustNew(t, 2, 5)
	p := placed(t, g, nil, At(1, 4))

	m, err := p.PossibleMoves(g)
	if err != nil {
		t.Fatalf("PossibleMoves: %v", err)
	}
	if !m.HasShape(2, 5) || m.Any() {
		t.Errorf("nil kind matrix = %v; want all-false 2x5", m)
	}
}

func TestPossibleMoves_DoesNotMutate(t *testing.T) {
	g := mustNew(t, 5, 5)
	p := placed(t, g, orthogonal{}, At(2, 2))
	before := g.Cells()

	if _, err := p.PossibleMoves(g); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(before, g.Cells(), cmp.AllowUnexported(Piece{})); diff != "" {
		t.Errorf("grid changed by legality query:\n%s", diff)
	}
	if pos, _ := p.Position(); pos != At(2, 2) {
		t.Errorf("piece moved to %v", pos)
	}
}
