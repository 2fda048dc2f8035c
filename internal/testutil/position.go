package testutil

import (
	"testing"

	"golang.org/x/exp/slices"

	"github.com/urav06/blitz-chess/internal/chess"
	"github.com/urav06/blitz-chess/internal/engine"
)

// Sq converts an algebraic square name like "e4" into a Square.
// It fails the test on malformed input so typos surface at the bad literal.
func Sq(tb testing.TB, name string) chess.Square {
	tb.Helper()
	if len(name) != 2 || name[0] < 'a' || name[0] > 'h' || name[1] < '1' || name[1] > '8' {
		tb.Fatalf("bad square name %q", name)
	}
	return chess.SquareAt(int(name[1]-'1'), int(name[0]-'a'))
}

// NewPosition builds a position from explicit placements for scenario tests.
// Rights default to none; the caller sets Rights, EnPassant and the clocks
// on the returned value when a scenario needs them.
func NewPosition(toMove chess.Color, pieces map[chess.Square]chess.Piece) engine.Position {
	p := engine.Position{
		ToMove:         toMove,
		FullmoveNumber: 1,
	}
	for sq, piece := range pieces {
		p.Board.Place(piece, sq)
	}
	return p
}

// SortedMoves returns a sorted copy of the moves. Move is an ordered packed
// value, so sorting gives a canonical order for comparing generated sets.
func SortedMoves(moves []chess.Move) []chess.Move {
	sorted := slices.Clone(moves)
	slices.Sort(sorted)
	return sorted
}

// MoveTo returns the move in moves landing on target, and whether one exists.
// Scenario tests use it to pick a specific move out of a generated set.
func MoveTo(moves []chess.Move, target chess.Square) (chess.Move, bool) {
	for _, m := range moves {
		if m.Target() == target {
			return m, true
		}
	}
	return 0, false
}
