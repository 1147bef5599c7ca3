// Package pieces provides concrete piece kinds for the board package:
// leapers, sliders, steppers and immobile blockers, each belonging to a side.
// They compute raw movement shape only; turn order and check are left to the
// rule layer.
package pieces

import (
	"fmt"
	"unicode"

	"github.com/lgbarn/gridboard-go/internal/board"
	"github.com/lgbarn/gridboard-go/internal/errors"
)

// Side identifies which player a piece belongs to.
type Side uint8

const (
	Light Side = iota
	Dark
)

// String returns the string representation of a side.
func (s Side) String() string {
	if s == Light {
		return "light"
	}
	return "dark"
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == Light {
		return Dark
	}
	return Light
}

// Sided is implemented by kinds that belong to a side.
type Sided interface {
	Side() Side
}

// SideOf returns the side of p's kind. The second result is false for nil
// pieces and kinds without a side.
func SideOf(p *board.Piece) (Side, bool) {
	if p == nil {
		return 0, false
	}
	s, ok := p.Kind().(Sided)
	if !ok {
		return 0, false
	}
	return s.Side(), true
}

// Offset is a relative step in rows and columns.
type Offset struct {
	DR, DC int
}

var (
	knightOffsets = []Offset{
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
		{1, -2}, {1, 2}, {2, -1}, {2, 1},
	}
	kingOffsets = []Offset{
		{-1, -1}, {-1, 0}, {-1, 1}, {0, -1},
		{0, 1}, {1, -1}, {1, 0}, {1, 1},
	}
	straightDirections = []Offset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalDirections = []Offset{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	allDirections      = append(append([]Offset{}, straightDirections...), diagonalDirections...)
)

// symbolFor returns letter in upper case for Light and lower case for Dark.
func symbolFor(side Side, letter byte) byte {
	if side == Dark {
		return byte(unicode.ToLower(rune(letter)))
	}
	return byte(unicode.ToUpper(rune(letter)))
}

// Knight returns a leaper with the (1,2) jump.
func Knight(side Side) *Leaper { return NewLeaper(side, 'N', knightOffsets) }

// King returns a leaper that steps one cell in any direction.
func King(side Side) *Leaper { return NewLeaper(side, 'K', kingOffsets) }

// Rook returns a slider along ranks and files.
func Rook(side Side) *Slider { return NewSlider(side, 'R', straightDirections) }

// Bishop returns a slider along diagonals.
func Bishop(side Side) *Slider { return NewSlider(side, 'B', diagonalDirections) }

// Queen returns a slider along ranks, files and diagonals.
func Queen(side Side) *Slider { return NewSlider(side, 'Q', allDirections) }

// Pawn returns a stepper that advances towards the opponent.
func Pawn(side Side) *Stepper { return NewStepper(side, 'P') }

// Wall returns an immobile blocker.
func Wall(side Side) *Blocker { return NewBlocker(side, 'X') }

// ByteKind converts a layout symbol to a new kind: K, Q, R, B, N, P and X
// for Light, lower case for Dark.
func ByteKind(symbol byte) (board.Kind, error) {
	side := Light
	if unicode.IsLower(rune(symbol)) {
		side = Dark
	}
	switch unicode.ToUpper(rune(symbol)) {
	case 'K':
		return King(side), nil
	case 'Q':
		return Queen(side), nil
	case 'R':
		return Rook(side), nil
	case 'B':
		return Bishop(side), nil
	case 'N':
		return Knight(side), nil
	case 'P':
		return Pawn(side), nil
	case 'X':
		return Wall(side), nil
	default:
		return nil, fmt.Errorf("%q: %w", symbol, errors.ErrUnknownSymbol)
	}
}

// canLand reports whether a piece of side may end its move at c: the cell
// must exist and be empty or hold a piece of the other side.
func canLand(v board.View, side Side, c board.Coordinate) bool {
	occupant, err := v.PieceAt(c)
	if err != nil {
		return false
	}
	if occupant == nil {
		return true
	}
	return isEnemy(occupant, side)
}

func isEnemy(p *board.Piece, side Side) bool {
	other, ok := SideOf(p)
	return ok && other != side
}
