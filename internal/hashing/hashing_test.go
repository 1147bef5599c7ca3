package hashing

import (
	"testing"

	"github.com/lgbarn/gridboard-go/internal/board"
	"github.com/lgbarn/gridboard-go/internal/layout"
	"github.com/lgbarn/gridboard-go/internal/testutil"
)

func TestZobristHashConsistency(t *testing.T) {
	// Two independently parsed grids with the same layout hash the same
	g1 := testutil.MustParseLayout(t, layout.Standard8x8)
	g2 := testutil.MustParseLayout(t, layout.Standard8x8)

	hash1 := GenerateZobristHash(g1)
	hash2 := GenerateZobristHash(g2)

	if hash1 != hash2 {
		t.Errorf("Identical boards produced different hashes: %x != %x", hash1, hash2)
	}
	if WeakHash(g1) != WeakHash(g2) {
		t.Errorf("Identical boards produced different weak hashes: %x != %x", WeakHash(g1), WeakHash(g2))
	}
}

func TestZobristHashDifferentPositions(t *testing.T) {
	g1 := testutil.MustParseLayout(t, layout.Standard8x8)
	g2 := testutil.MustParseLayout(t, layout.Standard8x8)

	// Move e2 to e4
	if _, err := g2.Move(board.At(6, 4), board.At(4, 4)); err != nil {
		t.Fatal(err)
	}

	if GenerateZobristHash(g1) == GenerateZobristHash(g2) {
		t.Error("Different positions produced the same hash")
	}
}

func TestZobristHashIncremental(t *testing.T) {
	g := testutil.MustParseLayout(t, layout.Standard8x8)
	before := GenerateZobristHash(g)

	from, to := board.At(6, 4), board.At(4, 4)
	if _, err := g.Move(from, to); err != nil {
		t.Fatal(err)
	}

	want := before ^ ZobristKey(6*8+4, 'P') ^ ZobristKey(4*8+4, 'P')
	if got := GenerateZobristHash(g); got != want {
		t.Errorf("hash after move = %x, want %x", got, want)
	}
}

func TestZobristHashDimensions(t *testing.T) {
	// Same cells in row-major order, different shapes
	wide := testutil.MustParseLayout(t, "K3")
	tall := testutil.MustParseLayout(t, "K1/2")

	if GenerateZobristHash(wide) == GenerateZobristHash(tall) {
		t.Error("Grids of different shape produced the same hash")
	}

	empty1 := testutil.MustGrid(t, 2, 3)
	empty2 := testutil.MustGrid(t, 3, 2)
	if GenerateZobristHash(empty1) == GenerateZobristHash(empty2) {
		t.Error("Empty grids of different shape produced the same hash")
	}
}

func TestDuplicateDetector(t *testing.T) {
	detector := NewDuplicateDetector(false, 0)
	g := testutil.MustParseLayout(t, layout.Standard8x8)

	// First board should not be a duplicate
	if detector.CheckAndAdd(g) {
		t.Error("First board was marked as duplicate")
	}

	// A separately parsed copy should be a duplicate
	if !detector.CheckAndAdd(testutil.MustParseLayout(t, layout.Standard8x8)) {
		t.Error("Duplicate board was not detected")
	}

	if detector.DuplicateCount() != 1 {
		t.Errorf("Expected 1 duplicate, got %d", detector.DuplicateCount())
	}
	if detector.CheckAndAdd(nil) {
		t.Error("nil grid was marked as duplicate")
	}
}

func TestDuplicateDetectorDifferentBoards(t *testing.T) {
	for _, exact := range []bool{false, true} {
		detector := NewDuplicateDetector(exact, 0)

		layouts := []string{layout.Standard8x8, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR", "K3", "K1/2", "k3"}
		for _, text := range layouts {
			if detector.CheckAndAdd(testutil.MustParseLayout(t, text)) {
				t.Errorf("exact=%v: %s was incorrectly marked as duplicate", exact, text)
			}
		}

		if detector.DuplicateCount() != 0 {
			t.Errorf("Expected 0 duplicates, got %d", detector.DuplicateCount())
		}
		if detector.UniqueCount() != len(layouts) {
			t.Errorf("Expected %d unique boards, got %d", len(layouts), detector.UniqueCount())
		}
	}
}

func TestDuplicateDetectorExactMatch(t *testing.T) {
	detector := NewDuplicateDetector(true, 0)
	g := testutil.MustParseLayout(t, "x10X/12/K11")

	sig := detector.Signature(g)
	if sig.Layout != "x10X/12/K11" {
		t.Errorf("Layout = %q, want the layout text", sig.Layout)
	}

	detector.CheckAndAdd(g)
	if !detector.CheckAndAdd(testutil.MustParseLayout(t, "x10X/12/K11")) {
		t.Error("Exact duplicate was not detected")
	}
}

func TestDuplicateDetectorCapacity(t *testing.T) {
	detector := NewDuplicateDetector(false, 2)

	for _, text := range []string{"K2", "1K1", "2K"} {
		detector.CheckAndAdd(testutil.MustParseLayout(t, text))
	}

	if !detector.IsFull() {
		t.Error("Expected detector to be full")
	}
	if detector.UniqueCount() != 2 {
		t.Errorf("Expected 2 unique boards, got %d", detector.UniqueCount())
	}

	// Remembered boards are still detected, forgotten ones are not
	if !detector.CheckAndAdd(testutil.MustParseLayout(t, "K2")) {
		t.Error("Remembered board was not detected")
	}
	if detector.CheckAndAdd(testutil.MustParseLayout(t, "2K")) {
		t.Error("Board beyond capacity was detected")
	}
}

func TestDuplicateDetectorReset(t *testing.T) {
	detector := NewDuplicateDetector(false, 0)
	g := testutil.MustParseLayout(t, layout.Standard8x8)

	detector.CheckAndAdd(g)
	detector.CheckAndAdd(g)

	if detector.DuplicateCount() != 1 {
		t.Errorf("Expected 1 duplicate before reset, got %d", detector.DuplicateCount())
	}

	detector.Reset()

	if detector.DuplicateCount() != 0 {
		t.Errorf("Expected 0 duplicates after reset, got %d", detector.DuplicateCount())
	}
	if detector.UniqueCount() != 0 {
		t.Errorf("Expected 0 unique boards after reset, got %d", detector.UniqueCount())
	}
}
