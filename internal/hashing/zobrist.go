package hashing

import "github.com/lgbarn/gridboard-go/internal/board"

// zobristSeed fixes the key stream so fingerprints are stable across runs.
const zobristSeed uint64 = 0x9e3779b97f4a7c15

// HashCode is a fast, collision-prone board checksum.
type HashCode uint32

// splitmix64 is the finaliser of the SplitMix64 generator.
func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// ZobristKey returns the key for symbol standing on the cell with the given
// row-major index. Keys are derived rather than tabled so any grid size works.
func ZobristKey(index int, symbol byte) uint64 {
	return splitmix64(zobristSeed ^ uint64(index)<<8 ^ uint64(symbol))
}

// dimensionKey distinguishes grids whose cells coincide in row-major order.
func dimensionKey(rows, columns int) uint64 {
	return splitmix64(^zobristSeed ^ uint64(uint32(rows))<<32 ^ uint64(uint32(columns)))
}

// GenerateZobristHash returns the Zobrist hash of the grid's occupancy: the
// XOR of one key per occupied cell and symbol, plus a key for the dimensions.
// Moving a piece from a to b changes the hash by ZobristKey(a,s)^ZobristKey(b,s).
func GenerateZobristHash(g *board.Grid) uint64 {
	hash := dimensionKey(g.Rows(), g.Columns())
	for r, row := range g.Cells() {
		for c, p := range row {
			if p != nil {
				hash ^= ZobristKey(r*g.Columns()+c, p.Symbol())
			}
		}
	}
	return hash
}

// WeakHash returns a cheap checksum used to confirm Zobrist matches.
func WeakHash(g *board.Grid) HashCode {
	var h HashCode
	for r, row := range g.Cells() {
		for c, p := range row {
			if p != nil {
				h += HashCode(p.Symbol()) * HashCode(r*g.Columns()+c+1)
			}
		}
	}
	return h + HashCode(g.Len())
}
