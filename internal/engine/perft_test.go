package engine_test

import (
	"testing"

	"github.com/urav06/blitz-chess/internal/engine"
)

// TestPerftInitialPosition checks the generator against the published node
// counts for the starting position. Any generation or transition bug shows
// up as a count mismatch long before a scenario test would catch it.
// https://www.chessprogramming.org/Perft_Results
func TestPerftInitialPosition(t *testing.T) {
	want := []int64{1, 20, 400, 8902, 197281}

	pos := engine.NewInitialPosition()
	for depth, nodes := range want {
		if got := engine.Perft(pos, depth); got != nodes {
			t.Errorf("Perft(initial, %d) = %d, want %d", depth, got, nodes)
		}
	}
}

// TestPerftParallelAgrees checks the root-split walker returns the same
// counts as the sequential one.
func TestPerftParallelAgrees(t *testing.T) {
	pos := engine.NewInitialPosition()
	for depth := 1; depth <= 4; depth++ {
		sequential := engine.Perft(pos, depth)
		if got := engine.PerftParallel(pos, depth); got != sequential {
			t.Errorf("PerftParallel(initial, %d) = %d, want %d", depth, got, sequential)
		}
	}
}
