package pieces_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/gridboard-go/internal/board"
	"github.com/lgbarn/gridboard-go/internal/errors"
	"github.com/lgbarn/gridboard-go/internal/pieces"
	"github.com/lgbarn/gridboard-go/internal/testutil"
)

func movesOf(t *testing.T, g *board.Grid, p *board.Piece) []board.Coordinate {
	t.Helper()
	m, err := p.PossibleMoves(g)
	require.NoError(t, err)
	require.True(t, m.HasShape(g.Rows(), g.Columns()), "matrix shape")
	return m.Coordinates()
}

func TestSide(t *testing.T) {
	assert.Equal(t, "light", pieces.Light.String())
	assert.Equal(t, "dark", pieces.Dark.String())
	assert.Equal(t, pieces.Dark, pieces.Light.Opposite())
	assert.Equal(t, pieces.Light, pieces.Dark.Opposite())
}

func TestSideOf(t *testing.T) {
	g := testutil.MustGrid(t, 4, 4)

	side, ok := pieces.SideOf(board.NewPiece(g, pieces.Rook(pieces.Dark)))
	assert.True(t, ok)
	assert.Equal(t, pieces.Dark, side)

	_, ok = pieces.SideOf(board.NewPiece(g, testutil.StaticKind{}))
	assert.False(t, ok, "kind without a side")

	_, ok = pieces.SideOf(nil)
	assert.False(t, ok, "nil piece")
}

func TestByteKind(t *testing.T) {
	tests := []struct {
		symbol byte
		side   pieces.Side
	}{
		{'K', pieces.Light}, {'Q', pieces.Light}, {'R', pieces.Light}, {'B', pieces.Light},
		{'N', pieces.Light}, {'P', pieces.Light}, {'X', pieces.Light},
		{'k', pieces.Dark}, {'q', pieces.Dark}, {'r', pieces.Dark}, {'b', pieces.Dark},
		{'n', pieces.Dark}, {'p', pieces.Dark}, {'x', pieces.Dark},
	}

	for _, tt := range tests {
		t.Run(string(tt.symbol), func(t *testing.T) {
			kind, err := pieces.ByteKind(tt.symbol)
			require.NoError(t, err)
			assert.Equal(t, tt.symbol, kind.(board.Symboler).Symbol())
			assert.Equal(t, tt.side, kind.(pieces.Sided).Side())
		})
	}
}

func TestByteKind_Unknown(t *testing.T) {
	for _, symbol := range []byte{'Z', 'a', '1', '/', ' '} {
		kind, err := pieces.ByteKind(symbol)
		assert.ErrorIs(t, err, errors.ErrUnknownSymbol, "symbol %q", symbol)
		assert.Nil(t, kind)
	}
}

func TestKnight(t *testing.T) {
	t.Run("corner", func(t *testing.T) {
		g := testutil.MustGrid(t, 8, 8)
		n := testutil.MustPlace(t, g, pieces.Knight(pieces.Light), board.At(7, 0))
		assert.ElementsMatch(t, []board.Coordinate{board.At(5, 1), board.At(6, 2)}, movesOf(t, g, n))
	})

	t.Run("center", func(t *testing.T) {
		g := testutil.MustGrid(t, 8, 8)
		n := testutil.MustPlace(t, g, pieces.Knight(pieces.Light), board.At(4, 4))
		assert.Len(t, movesOf(t, g, n), 8)
	})

	t.Run("own piece blocks landing", func(t *testing.T) {
		g := testutil.MustGrid(t, 8, 8)
		n := testutil.MustPlace(t, g, pieces.Knight(pieces.Light), board.At(7, 0))
		testutil.MustPlace(t, g, pieces.Pawn(pieces.Light), board.At(5, 1))
		assert.Equal(t, []board.Coordinate{board.At(6, 2)}, movesOf(t, g, n))
	})

	t.Run("enemy can be captured", func(t *testing.T) {
		g := testutil.MustGrid(t, 8, 8)
		n := testutil.MustPlace(t, g, pieces.Knight(pieces.Light), board.At(7, 0))
		testutil.MustPlace(t, g, pieces.Pawn(pieces.Dark), board.At(5, 1))
		assert.ElementsMatch(t, []board.Coordinate{board.At(5, 1), board.At(6, 2)}, movesOf(t, g, n))
	})

	t.Run("sideless occupant blocks", func(t *testing.T) {
		g := testutil.MustGrid(t, 8, 8)
		n := testutil.MustPlace(t, g, pieces.Knight(pieces.Light), board.At(7, 0))
		testutil.MustPlace(t, g, testutil.StaticKind{}, board.At(5, 1))
		assert.Equal(t, []board.Coordinate{board.At(6, 2)}, movesOf(t, g, n))
	})

	t.Run("jumps over pieces", func(t *testing.T) {
		g := testutil.MustParseLayout(t, "8/8/8/8/8/PPP5/PNP5/PPP5")
		n, err := g.PieceAt(board.At(6, 1))
		require.NoError(t, err)
		assert.ElementsMatch(t, []board.Coordinate{board.At(4, 0), board.At(4, 2), board.At(5, 3), board.At(7, 3)}, movesOf(t, g, n))
	})
}

func TestKing(t *testing.T) {
	g := testutil.MustGrid(t, 8, 8)
	center := testutil.MustPlace(t, g, pieces.King(pieces.Light), board.At(3, 3))
	corner := testutil.MustPlace(t, g, pieces.King(pieces.Dark), board.At(0, 7))

	assert.Len(t, movesOf(t, g, center), 8)
	assert.ElementsMatch(t, []board.Coordinate{board.At(0, 6), board.At(1, 6), board.At(1, 7)}, movesOf(t, g, corner))
}

func TestRook(t *testing.T) {
	t.Run("open board", func(t *testing.T) {
		g := testutil.MustGrid(t, 8, 8)
		r := testutil.MustPlace(t, g, pieces.Rook(pieces.Light), board.At(0, 0))
		assert.Len(t, movesOf(t, g, r), 14)
	})

	t.Run("blocked rays", func(t *testing.T) {
		g := testutil.MustParseLayout(t, "R1p5/8/8/8/8/8/8/P7")
		r, err := g.PieceAt(board.At(0, 0))
		require.NoError(t, err)

		want := []board.Coordinate{board.At(0, 1), board.At(0, 2)}
		for row := 1; row <= 6; row++ {
			want = append(want, board.At(row, 0))
		}
		assert.ElementsMatch(t, want, movesOf(t, g, r))
	})

	t.Run("wide grid", func(t *testing.T) {
		g := testutil.MustGrid(t, 3, 10)
		r := testutil.MustPlace(t, g, pieces.Rook(pieces.Dark), board.At(0, 0))
		moves := movesOf(t, g, r)
		assert.Len(t, moves, 11)
		assert.Contains(t, moves, board.At(0, 9))
	})
}

func TestBishop(t *testing.T) {
	g := testutil.MustGrid(t, 8, 8)
	b := testutil.MustPlace(t, g, pieces.Bishop(pieces.Light), board.At(7, 2))

	want := []board.Coordinate{
		board.At(6, 1), board.At(5, 0),
		board.At(6, 3), board.At(5, 4), board.At(4, 5), board.At(3, 6), board.At(2, 7),
	}
	assert.ElementsMatch(t, want, movesOf(t, g, b))
}

func TestQueen(t *testing.T) {
	g := testutil.MustGrid(t, 8, 8)
	q := testutil.MustPlace(t, g, pieces.Queen(pieces.Light), board.At(3, 3))
	assert.Len(t, movesOf(t, g, q), 27)
}

func TestPawn(t *testing.T) {
	t.Run("light advances towards row zero", func(t *testing.T) {
		g := testutil.MustGrid(t, 8, 8)
		p := testutil.MustPlace(t, g, pieces.Pawn(pieces.Light), board.At(6, 4))
		assert.Equal(t, []board.Coordinate{board.At(5, 4)}, movesOf(t, g, p))
	})

	t.Run("dark advances away from row zero", func(t *testing.T) {
		g := testutil.MustGrid(t, 8, 8)
		p := testutil.MustPlace(t, g, pieces.Pawn(pieces.Dark), board.At(1, 4))
		assert.Equal(t, []board.Coordinate{board.At(2, 4)}, movesOf(t, g, p))
	})

	t.Run("captures diagonally", func(t *testing.T) {
		g := testutil.MustGrid(t, 8, 8)
		p := testutil.MustPlace(t, g, pieces.Pawn(pieces.Light), board.At(6, 4))
		testutil.MustPlace(t, g, pieces.Knight(pieces.Dark), board.At(5, 3))
		testutil.MustPlace(t, g, pieces.Knight(pieces.Light), board.At(5, 5))
		assert.ElementsMatch(t, []board.Coordinate{board.At(5, 3), board.At(5, 4)}, movesOf(t, g, p))
	})

	t.Run("blocked ahead", func(t *testing.T) {
		g := testutil.MustGrid(t, 8, 8)
		p := testutil.MustPlace(t, g, pieces.Pawn(pieces.Light), board.At(6, 4))
		testutil.MustPlace(t, g, pieces.Pawn(pieces.Dark), board.At(5, 4))
		has, err := p.HasAnyPossibleMove(g)
		require.NoError(t, err)
		assert.False(t, has)
	})

	t.Run("last row", func(t *testing.T) {
		g := testutil.MustGrid(t, 8, 8)
		p := testutil.MustPlace(t, g, pieces.Pawn(pieces.Light), board.At(0, 0))
		assert.Empty(t, movesOf(t, g, p))
	})
}

func TestWall(t *testing.T) {
	g := testutil.MustGrid(t, 3, 3)
	w := testutil.MustPlace(t, g, pieces.Wall(pieces.Light), board.At(1, 1))

	has, err := w.HasAnyPossibleMove(g)
	require.NoError(t, err)
	assert.False(t, has)
	assert.Equal(t, byte('X'), w.Symbol())
}

func TestStandardLayout_MobilePieces(t *testing.T) {
	g := testutil.MustParseLayout(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR")

	mobile := map[pieces.Side]int{}
	for _, p := range g.Pieces() {
		has, err := p.HasAnyPossibleMove(g)
		require.NoError(t, err)
		if has {
			side, _ := pieces.SideOf(p)
			mobile[side]++
		}
	}
	assert.Equal(t, 10, mobile[pieces.Light], "eight pawns and two knights")
	assert.Equal(t, 10, mobile[pieces.Dark], "eight pawns and two knights")
}
