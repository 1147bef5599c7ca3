// Package board provides the grid-and-piece substrate for rectangular board
// games: coordinates, a bounds- and occupancy-checked grid, and the piece
// contract concrete piece kinds implement to report their legal destinations.
//
// A Grid and the pieces bound to it form one unit of state with no internal
// locking. Callers serialise access to a grid; independent grids share nothing.
package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/gridboard-go/internal/errors"
)

// Coordinate addresses a grid cell by zero-based row and column.
// Row 0 is the top row as rendered; bounds are validated by the Grid.
type Coordinate struct {
	Row    int
	Column int
}

// At returns the coordinate (row, column).
func At(row, column int) Coordinate {
	return Coordinate{Row: row, Column: column}
}

// Offset returns the coordinate shifted by dr rows and dc columns.
func (c Coordinate) Offset(dr, dc int) Coordinate {
	return Coordinate{Row: c.Row + dr, Column: c.Column + dc}
}

// String returns the raw (row,column) form.
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Column)
}

// Notation renders the coordinate as column letters followed by a 1-based
// row number counted from the bottom of a grid with the given row count,
// e.g. row 6, column 4 on an 8-row grid is "e2". Columns past 'z' continue
// as "aa", "ab", ... Coordinates that cannot be rendered fall back to String.
func (c Coordinate) Notation(rows int) string {
	if c.Row < 0 || c.Column < 0 || c.Row >= rows {
		return c.String()
	}
	return ColumnLetters(c.Column) + strconv.Itoa(rows-c.Row)
}

// ColumnLetters returns the letter label of a zero-based column index.
func ColumnLetters(column int) string {
	if column < 0 {
		return "?"
	}
	var buf []byte
	for n := column + 1; n > 0; n = (n - 1) / 26 {
		buf = append(buf, byte('a'+(n-1)%26))
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// maxColumnLetters bounds the letter prefix accepted by ParseCoordinate.
const maxColumnLetters = 6

// ParseCoordinate converts notation such as "e2" into a Coordinate for a grid
// with the given row count. Letters are case-insensitive. Only the syntax is
// checked; the resulting coordinate may still lie outside a particular grid.
func ParseCoordinate(text string, rows int) (Coordinate, error) {
	s := strings.ToLower(strings.TrimSpace(text))

	i := 0
	for i < len(s) && s[i] >= 'a' && s[i] <= 'z' {
		i++
	}
	if i == 0 || i > maxColumnLetters || i == len(s) {
		return Coordinate{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidCoordinate)
	}

	column := 0
	for _, ch := range s[:i] {
		column = column*26 + int(ch-'a'+1)
	}
	column--

	for _, ch := range s[i:] {
		if ch < '0' || ch > '9' {
			return Coordinate{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidCoordinate)
		}
	}
	number, err := strconv.Atoi(s[i:])
	if err != nil || number < 1 {
		return Coordinate{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidCoordinate)
	}

	return Coordinate{Row: rows - number, Column: column}, nil
}
