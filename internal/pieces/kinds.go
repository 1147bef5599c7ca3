package pieces

import "github.com/lgbarn/gridboard-go/internal/board"

// Leaper jumps to fixed offsets regardless of intervening pieces.
type Leaper struct {
	side    Side
	symbol  byte
	offsets []Offset
}

// NewLeaper creates a leaper with the given offsets.
func NewLeaper(side Side, letter byte, offsets []Offset) *Leaper {
	return &Leaper{side: side, symbol: symbolFor(side, letter), offsets: offsets}
}

// Side returns the leaper's side.
func (l *Leaper) Side() Side { return l.side }

// Symbol returns the leaper's letter.
func (l *Leaper) Symbol() byte { return l.symbol }

// PossibleMoves marks every offset target that is empty or holds an enemy.
func (l *Leaper) PossibleMoves(v board.View, from board.Coordinate) board.Matrix {
	m := board.NewMatrix(v.Rows(), v.Columns())
	for _, off := range l.offsets {
		to := from.Offset(off.DR, off.DC)
		if canLand(v, l.side, to) {
			m.Set(to)
		}
	}
	return m
}

// Slider moves any distance along its directions until blocked. A ray stops
// at the first occupied cell, which is included when it holds an enemy.
type Slider struct {
	side       Side
	symbol     byte
	directions []Offset
}

// NewSlider creates a slider along the given directions.
func NewSlider(side Side, letter byte, directions []Offset) *Slider {
	return &Slider{side: side, symbol: symbolFor(side, letter), directions: directions}
}

// Side returns the slider's side.
func (s *Slider) Side() Side { return s.side }

// Symbol returns the slider's letter.
func (s *Slider) Symbol() byte { return s.symbol }

// PossibleMoves walks each ray from the piece's cell.
func (s *Slider) PossibleMoves(v board.View, from board.Coordinate) board.Matrix {
	m := board.NewMatrix(v.Rows(), v.Columns())
	for _, dir := range s.directions {
		if dir.DR == 0 && dir.DC == 0 {
			continue
		}
		to := from.Offset(dir.DR, dir.DC)
		for v.PositionExists(to) {
			occupant, err := v.PieceAt(to)
			if err != nil {
				break
			}
			if occupant != nil {
				if isEnemy(occupant, s.side) {
					m.Set(to)
				}
				break
			}
			m.Set(to)
			to = to.Offset(dir.DR, dir.DC)
		}
	}
	return m
}

// Stepper advances one cell towards the opponent into an empty cell and
// captures one cell diagonally forward. Light advances towards row 0.
type Stepper struct {
	side   Side
	symbol byte
}

// NewStepper creates a stepper.
func NewStepper(side Side, letter byte) *Stepper {
	return &Stepper{side: side, symbol: symbolFor(side, letter)}
}

// Side returns the stepper's side.
func (s *Stepper) Side() Side { return s.side }

// Symbol returns the stepper's letter.
func (s *Stepper) Symbol() byte { return s.symbol }

// Forward returns the row delta of an advance.
func (s *Stepper) Forward() int {
	if s.side == Light {
		return -1
	}
	return 1
}

// PossibleMoves marks the advance and diagonal captures.
func (s *Stepper) PossibleMoves(v board.View, from board.Coordinate) board.Matrix {
	m := board.NewMatrix(v.Rows(), v.Columns())
	dr := s.Forward()

	ahead := from.Offset(dr, 0)
	if occupied, err := v.IsOccupied(ahead); err == nil && !occupied {
		m.Set(ahead)
	}
	for _, dc := range []int{-1, 1} {
		diag := from.Offset(dr, dc)
		occupant, err := v.PieceAt(diag)
		if err == nil && occupant != nil && isEnemy(occupant, s.side) {
			m.Set(diag)
		}
	}
	return m
}

// Blocker never moves.
type Blocker struct {
	side   Side
	symbol byte
}

// NewBlocker creates a blocker.
func NewBlocker(side Side, letter byte) *Blocker {
	return &Blocker{side: side, symbol: symbolFor(side, letter)}
}

// Side returns the blocker's side.
func (b *Blocker) Side() Side { return b.side }

// Symbol returns the blocker's letter.
func (b *Blocker) Symbol() byte { return b.symbol }

// PossibleMoves returns an all-false matrix.
func (b *Blocker) PossibleMoves(v board.View, _ board.Coordinate) board.Matrix {
	return board.NewMatrix(v.Rows(), v.Columns())
}
