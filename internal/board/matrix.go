package board

// Matrix is a legality matrix: Matrix[row][column] is true where a piece
// could move. A well-formed matrix has one row per grid row and one entry per
// grid column in every row.
type Matrix [][]bool

// NewMatrix returns an all-false matrix shaped rows x columns.
func NewMatrix(rows, columns int) Matrix {
	if rows < 0 {
		rows = 0
	}
	if columns < 0 {
		columns = 0
	}
	m := make(Matrix, rows)
	cells := make([]bool, rows*columns)
	for i := range m {
		m[i] = cells[i*columns : (i+1)*columns : (i+1)*columns]
	}
	return m
}

// Rows returns the number of rows in the matrix.
func (m Matrix) Rows() int {
	return len(m)
}

// Columns returns the length of the first row, or 0 for an empty matrix.
func (m Matrix) Columns() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// HasShape reports whether every row exists and has exactly columns entries.
func (m Matrix) HasShape(rows, columns int) bool {
	if len(m) != rows {
		return false
	}
	for _, row := range m {
		if len(row) != columns {
			return false
		}
	}
	return true
}

// Contains reports whether c indexes an entry of the matrix.
func (m Matrix) Contains(c Coordinate) bool {
	return c.Row >= 0 && c.Row < len(m) && c.Column >= 0 && c.Column < len(m[c.Row])
}

// At returns the entry at c, false when c is outside the matrix.
func (m Matrix) At(c Coordinate) bool {
	if !m.Contains(c) {
		return false
	}
	return m[c.Row][c.Column]
}

// Set marks c as a legal destination. It reports false, leaving the matrix
// untouched, when c is outside the matrix.
func (m Matrix) Set(c Coordinate) bool {
	if !m.Contains(c) {
		return false
	}
	m[c.Row][c.Column] = true
	return true
}

// Any reports whether at least one entry is true. Each row is scanned to its
// own length, so non-square matrices are covered completely.
func (m Matrix) Any() bool {
	for _, row := range m {
		for _, legal := range row {
			if legal {
				return true
			}
		}
	}
	return false
}

// Count returns the number of true entries.
func (m Matrix) Count() int {
	n := 0
	for _, row := range m {
		for _, legal := range row {
			if legal {
				n++
			}
		}
	}
	return n
}

// Coordinates lists the true entries in row-major order.
func (m Matrix) Coordinates() []Coordinate {
	var out []Coordinate
	for i, row := range m {
		for j, legal := range row {
			if legal {
				out = append(out, Coordinate{Row: i, Column: j})
			}
		}
	}
	return out
}
