package testutil

import (
	"testing"

	"github.com/lgbarn/gridboard-go/internal/board"
)

func TestStaticKind(t *testing.T) {
	g := MustGrid(t, 3, 4)
	kind := StaticKind{Legal: []board.Coordinate{board.At(2, 3), board.At(0, 0), board.At(9, 9)}}
	p := MustPlace(t, g, kind, board.At(1, 1))

	m, err := p.PossibleMoves(g)
	AssertNoError(t, err)
	AssertMatrix(t, m, []board.Coordinate{board.At(0, 0), board.At(2, 3)})
	AssertEqual(t, p.Symbol(), byte('S'))
	AssertEqual(t, StaticKind{Label: 'W'}.Symbol(), byte('W'))
}

func TestMustHelpers(t *testing.T) {
	g := MustParseLayout(t, "2k/3")
	AssertEqual(t, g.Rows(), 2)
	AssertEqual(t, g.Columns(), 3)

	c := MustCoordinate(t, "c2", g.Rows())
	AssertEqual(t, c, board.At(0, 2))

	p, err := g.PieceAt(c)
	AssertNoError(t, err)
	AssertNotNil(t, p)
}
