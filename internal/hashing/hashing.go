// Package hashing provides duplicate detection for boards.
package hashing

import (
	"github.com/lgbarn/gridboard-go/internal/board"
	"github.com/lgbarn/gridboard-go/internal/layout"
)

// DuplicateDetector tracks seen boards for duplicate detection.
type DuplicateDetector struct {
	// hashTable stores seen signatures by Zobrist hash
	hashTable map[uint64][]BoardSignature
	// useExactMatch compares layout text as well (slower but collision-free)
	useExactMatch bool
	// maxCapacity bounds stored signatures; 0 is unlimited
	maxCapacity int
	// stored counts signatures in hashTable
	stored int
	// duplicateCount tracks number of duplicates found
	duplicateCount int
}

// BoardSignature stores identifying information about a board.
type BoardSignature struct {
	// Hash is the Zobrist hash of the occupancy
	Hash uint64
	// WeakHash is a fast hash for quick comparison
	WeakHash HashCode
	// Rows and Columns are the grid dimensions
	Rows, Columns int
	// Pieces is the number of occupied cells
	Pieces int
	// Layout is the layout text, kept only for exact matching
	Layout string
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]BoardSignature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// Signature computes the signature of g.
func (d *DuplicateDetector) Signature(g *board.Grid) BoardSignature {
	sig := BoardSignature{
		Hash:     GenerateZobristHash(g),
		WeakHash: WeakHash(g),
		Rows:     g.Rows(),
		Columns:  g.Columns(),
		Pieces:   g.Len(),
	}
	if d.useExactMatch {
		sig.Layout = layout.Format(g)
	}
	return sig
}

// CheckAndAdd checks if a board is a duplicate and adds it to the hash table.
// Returns true if the board is a duplicate. Once the detector is full, new
// boards are still checked but no longer remembered.
func (d *DuplicateDetector) CheckAndAdd(g *board.Grid) bool {
	if g == nil {
		return false
	}

	sig := d.Signature(g)

	if d.contains(sig) {
		d.duplicateCount++
		return true
	}

	d.remember(sig)
	return false
}

// contains reports whether a matching signature is already stored.
func (d *DuplicateDetector) contains(sig BoardSignature) bool {
	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			return true
		}
	}
	return false
}

// remember stores sig unless the detector is full. It reports whether sig was stored.
func (d *DuplicateDetector) remember(sig BoardSignature) bool {
	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.stored++
	return true
}

// signaturesMatch checks if two board signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b BoardSignature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	if a.Rows != b.Rows || a.Columns != b.Columns || a.Pieces != b.Pieces {
		return false
	}
	if d.useExactMatch && a.Layout != b.Layout {
		return false
	}
	return true
}

// IsFull returns true if the detector has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.stored >= d.maxCapacity
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique boards remembered.
func (d *DuplicateDetector) UniqueCount() int {
	return d.stored
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]BoardSignature)
	d.stored = 0
	d.duplicateCount = 0
}
