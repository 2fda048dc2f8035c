package engine_test

import (
	"testing"

	"github.com/urav06/blitz-chess/internal/chess"
	"github.com/urav06/blitz-chess/internal/engine"
	"github.com/urav06/blitz-chess/internal/testutil"
)

// mv builds a normal move between two named squares.
func mv(tb testing.TB, from, to string) chess.Move {
	tb.Helper()
	return chess.NewMove(testutil.Sq(tb, from), testutil.Sq(tb, to))
}

// TestNewInitialPosition checks the standard starting layout and state.
func TestNewInitialPosition(t *testing.T) {
	pos := engine.NewInitialPosition()

	if pos.ToMove != chess.White {
		t.Errorf("ToMove = %v, want White", pos.ToMove)
	}
	if pos.Rights != chess.AllCastlingRights {
		t.Errorf("Rights = %04b, want all", pos.Rights)
	}
	if pos.HasEnPassant {
		t.Error("HasEnPassant = true in the initial position")
	}
	if pos.HalfmoveClock != 0 || pos.FullmoveNumber != 1 {
		t.Errorf("clocks = %d, %d, want 0, 1", pos.HalfmoveClock, pos.FullmoveNumber)
	}

	if len(pos.Board.Pieces()) != 32 {
		t.Errorf("initial board has %d pieces, want 32", len(pos.Board.Pieces()))
	}

	checks := []struct {
		sq    string
		kind  chess.PieceKind
		color chess.Color
	}{
		{"e1", chess.King, chess.White},
		{"e8", chess.King, chess.Black},
		{"d1", chess.Queen, chess.White},
		{"a1", chess.Rook, chess.White},
		{"h8", chess.Rook, chess.Black},
		{"b2", chess.Pawn, chess.White},
		{"g7", chess.Pawn, chess.Black},
	}
	for _, c := range checks {
		p, ok := pos.Board.PieceAt(testutil.Sq(t, c.sq))
		if !ok || p.Kind() != c.kind || p.Color() != c.color {
			t.Errorf("piece at %s = %v %v, want %v %v", c.sq, p.Color(), p.Kind(), c.color, c.kind)
		}
	}
	if _, ok := pos.Board.PieceAt(testutil.Sq(t, "e4")); ok {
		t.Error("e4 occupied in the initial position")
	}
}

// TestApplyNormalMove checks relocation, the uniform post-updates and that
// the original position is untouched.
func TestApplyNormalMove(t *testing.T) {
	pos := engine.NewInitialPosition()
	next := pos.Apply(mv(t, "g1", "f3"))

	if !pos.Board.IsEmpty(testutil.Sq(t, "e4")) {
		t.Error("sanity: e4 should still be empty")
	}
	if pos.Board.IsEmpty(testutil.Sq(t, "g1")) {
		t.Error("Apply() mutated the original position")
	}

	knight, ok := next.Board.PieceAt(testutil.Sq(t, "f3"))
	if !ok || knight.Kind() != chess.Knight {
		t.Fatalf("piece on f3 = %v, want a knight", knight)
	}
	if !knight.HasMoved() {
		t.Error("moved knight lost its has-moved flag")
	}
	if !next.Board.IsEmpty(testutil.Sq(t, "g1")) {
		t.Error("g1 still occupied after the knight left")
	}

	if next.ToMove != chess.Black {
		t.Errorf("ToMove = %v, want Black", next.ToMove)
	}
	if next.HalfmoveClock != 1 {
		t.Errorf("HalfmoveClock = %d, want 1", next.HalfmoveClock)
	}
	if next.FullmoveNumber != 1 {
		t.Errorf("FullmoveNumber = %d, want 1 after a White move", next.FullmoveNumber)
	}
	if next.HasEnPassant {
		t.Error("knight move set an en-passant target")
	}
}

// TestApplyCapture checks that a capture replaces the occupant and resets
// the halfmove clock.
func TestApplyCapture(t *testing.T) {
	pos := testutil.NewPosition(chess.White, map[chess.Square]chess.Piece{
		testutil.Sq(t, "e1"): chess.NewPiece(chess.King, chess.White),
		testutil.Sq(t, "d4"): chess.NewPiece(chess.Knight, chess.White),
		testutil.Sq(t, "e6"): chess.NewPiece(chess.Bishop, chess.Black),
		testutil.Sq(t, "e8"): chess.NewPiece(chess.King, chess.Black),
	})
	pos.HalfmoveClock = 7

	next := pos.Apply(mv(t, "d4", "e6"))

	p, ok := next.Board.PieceAt(testutil.Sq(t, "e6"))
	if !ok || p.Kind() != chess.Knight || p.Color() != chess.White {
		t.Errorf("piece on e6 = %v, want the white knight", p)
	}
	if next.HalfmoveClock != 0 {
		t.Errorf("HalfmoveClock = %d after a capture, want 0", next.HalfmoveClock)
	}
	if len(next.Board.Pieces()) != 3 {
		t.Errorf("board has %d pieces, want 3", len(next.Board.Pieces()))
	}
}

// TestApplyPromotion checks pawn removal and new-piece placement, with and
// without a capture on the promotion square.
func TestApplyPromotion(t *testing.T) {
	base := testutil.NewPosition(chess.White, map[chess.Square]chess.Piece{
		testutil.Sq(t, "a1"): chess.NewPiece(chess.King, chess.White),
		testutil.Sq(t, "e7"): chess.NewPiece(chess.Pawn, chess.White),
		testutil.Sq(t, "f8"): chess.NewPiece(chess.Rook, chess.Black),
		testutil.Sq(t, "h6"): chess.NewPiece(chess.King, chess.Black),
	})

	t.Run("push", func(t *testing.T) {
		next := base.Apply(chess.NewPromotion(testutil.Sq(t, "e7"), testutil.Sq(t, "e8"), chess.Queen))
		p, ok := next.Board.PieceAt(testutil.Sq(t, "e8"))
		if !ok || p.Kind() != chess.Queen || p.Color() != chess.White {
			t.Errorf("piece on e8 = %v, want a white queen", p)
		}
		if !next.Board.IsEmpty(testutil.Sq(t, "e7")) {
			t.Error("pawn still on e7 after promoting")
		}
		if next.HalfmoveClock != 0 {
			t.Errorf("HalfmoveClock = %d after a pawn move, want 0", next.HalfmoveClock)
		}
	})

	t.Run("capture", func(t *testing.T) {
		next := base.Apply(chess.NewPromotion(testutil.Sq(t, "e7"), testutil.Sq(t, "f8"), chess.Knight))
		p, ok := next.Board.PieceAt(testutil.Sq(t, "f8"))
		if !ok || p.Kind() != chess.Knight || p.Color() != chess.White {
			t.Errorf("piece on f8 = %v, want a white knight", p)
		}
		if len(next.Board.Pieces()) != 3 {
			t.Errorf("board has %d pieces, want 3 after the rook is captured", len(next.Board.Pieces()))
		}
	})
}

// TestApplyEnPassant checks that the captured pawn disappears from the
// square beside the capturer, not the target square.
func TestApplyEnPassant(t *testing.T) {
	pos := testutil.NewPosition(chess.White, map[chess.Square]chess.Piece{
		testutil.Sq(t, "e1"): chess.NewPiece(chess.King, chess.White),
		testutil.Sq(t, "d5"): chess.NewPiece(chess.Pawn, chess.White),
		testutil.Sq(t, "e5"): chess.NewPiece(chess.Pawn, chess.Black),
		testutil.Sq(t, "e8"): chess.NewPiece(chess.King, chess.Black),
	})
	pos.EnPassant = testutil.Sq(t, "e6")
	pos.HasEnPassant = true

	next := pos.Apply(chess.NewEnPassant(testutil.Sq(t, "d5"), testutil.Sq(t, "e6")))

	if p, ok := next.Board.PieceAt(testutil.Sq(t, "e6")); !ok || p.Kind() != chess.Pawn || p.Color() != chess.White {
		t.Errorf("piece on e6 = %v, want the white pawn", p)
	}
	if !next.Board.IsEmpty(testutil.Sq(t, "e5")) {
		t.Error("captured pawn still on e5")
	}
	if !next.Board.IsEmpty(testutil.Sq(t, "d5")) {
		t.Error("capturer still on d5")
	}
	if next.HalfmoveClock != 0 {
		t.Errorf("HalfmoveClock = %d, want 0", next.HalfmoveClock)
	}
	if next.HasEnPassant {
		t.Error("en-passant target survived the capture")
	}
}

// TestApplyCastling checks both relocations and the rights forfeiture for
// both sides and colours.
func TestApplyCastling(t *testing.T) {
	tests := []struct {
		name     string
		color    chess.Color
		kingFrom string
		kingTo   string
		rookFrom string
		rookTo   string
	}{
		{"white kingside", chess.White, "e1", "g1", "h1", "f1"},
		{"white queenside", chess.White, "e1", "c1", "a1", "d1"},
		{"black kingside", chess.Black, "e8", "g8", "h8", "f8"},
		{"black queenside", chess.Black, "e8", "c8", "a8", "d8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := testutil.NewPosition(tt.color, map[chess.Square]chess.Piece{
				testutil.Sq(t, "e1"):       chess.NewPiece(chess.King, chess.White),
				testutil.Sq(t, "e8"):       chess.NewPiece(chess.King, chess.Black),
				testutil.Sq(t, tt.rookFrom): chess.NewPiece(chess.Rook, tt.color),
			})
			pos.Rights = chess.AllCastlingRights

			next := pos.Apply(chess.NewCastling(testutil.Sq(t, tt.kingFrom), testutil.Sq(t, tt.kingTo)))

			if p, ok := next.Board.PieceAt(testutil.Sq(t, tt.kingTo)); !ok || p.Kind() != chess.King {
				t.Errorf("no king on %s after castling", tt.kingTo)
			}
			if p, ok := next.Board.PieceAt(testutil.Sq(t, tt.rookTo)); !ok || p.Kind() != chess.Rook {
				t.Errorf("no rook on %s after castling", tt.rookTo)
			}
			if !next.Board.IsEmpty(testutil.Sq(t, tt.kingFrom)) || !next.Board.IsEmpty(testutil.Sq(t, tt.rookFrom)) {
				t.Error("castling left a piece behind")
			}
			if next.Rights.Any(tt.color) {
				t.Errorf("%v still holds castling rights after castling", tt.color)
			}
			if !next.Rights.Any(tt.color.Other()) {
				t.Error("castling touched the opponent's rights")
			}
		})
	}
}

// TestApplyEnPassantTarget checks that only a pawn double advance sets the
// target and that the very next move clears it.
func TestApplyEnPassantTarget(t *testing.T) {
	pos := engine.NewInitialPosition()

	afterDouble := pos.Apply(mv(t, "e2", "e4"))
	if !afterDouble.HasEnPassant {
		t.Fatal("double push did not set an en-passant target")
	}
	if afterDouble.EnPassant != testutil.Sq(t, "e3") {
		t.Errorf("EnPassant = %v, want e3", afterDouble.EnPassant)
	}

	afterReply := afterDouble.Apply(mv(t, "g8", "f6"))
	if afterReply.HasEnPassant {
		t.Error("en-passant target survived the reply move")
	}

	afterSingle := pos.Apply(mv(t, "e2", "e3"))
	if afterSingle.HasEnPassant {
		t.Error("single pawn push set an en-passant target")
	}
}

// TestApplyCastlingRights covers the forfeiture rules: king moves, rook
// moves off the origin square, and captures landing on an origin square.
func TestApplyCastlingRights(t *testing.T) {
	newBase := func(t *testing.T) engine.Position {
		pos := testutil.NewPosition(chess.White, map[chess.Square]chess.Piece{
			testutil.Sq(t, "e1"): chess.NewPiece(chess.King, chess.White),
			testutil.Sq(t, "a1"): chess.NewPiece(chess.Rook, chess.White),
			testutil.Sq(t, "h1"): chess.NewPiece(chess.Rook, chess.White),
			testutil.Sq(t, "e8"): chess.NewPiece(chess.King, chess.Black),
			testutil.Sq(t, "a8"): chess.NewPiece(chess.Rook, chess.Black),
			testutil.Sq(t, "h8"): chess.NewPiece(chess.Rook, chess.Black),
		})
		pos.Rights = chess.AllCastlingRights
		return pos
	}

	t.Run("king move loses both", func(t *testing.T) {
		next := newBase(t).Apply(mv(t, "e1", "e2"))
		if next.Rights.Any(chess.White) {
			t.Errorf("Rights = %04b, want no White rights", next.Rights)
		}
		if !next.Rights.Has(chess.Black, chess.Kingside) || !next.Rights.Has(chess.Black, chess.Queenside) {
			t.Error("king move touched Black's rights")
		}
	})

	t.Run("rook move loses one side", func(t *testing.T) {
		next := newBase(t).Apply(mv(t, "h1", "h5"))
		if next.Rights.Has(chess.White, chess.Kingside) {
			t.Error("kingside right survived the h1 rook leaving")
		}
		if !next.Rights.Has(chess.White, chess.Queenside) {
			t.Error("queenside right lost with the a1 rook unmoved")
		}
	})

	t.Run("capture on origin loses opponent right", func(t *testing.T) {
		next := newBase(t).Apply(mv(t, "h1", "h8"))
		if next.Rights.Has(chess.Black, chess.Kingside) {
			t.Error("Black kingside right survived the capture on h8")
		}
		if !next.Rights.Has(chess.Black, chess.Queenside) {
			t.Error("capture on h8 cleared Black's queenside right")
		}
		if next.Rights.Has(chess.White, chess.Kingside) {
			t.Error("White kingside right survived the h1 rook leaving")
		}
	})

	t.Run("non-rook move keeps rights", func(t *testing.T) {
		pos := newBase(t)
		pos.Board.Place(chess.NewPiece(chess.Knight, chess.White), testutil.Sq(t, "b1"))
		next := pos.Apply(mv(t, "b1", "c3"))
		if next.Rights != chess.AllCastlingRights {
			t.Errorf("Rights = %04b, want all", next.Rights)
		}
	})
}

// TestApplyFullmoveNumber checks the counter increments exactly after a
// Black move.
func TestApplyFullmoveNumber(t *testing.T) {
	pos := engine.NewInitialPosition()

	afterWhite := pos.Apply(mv(t, "e2", "e4"))
	if afterWhite.FullmoveNumber != 1 {
		t.Errorf("FullmoveNumber = %d after White's move, want 1", afterWhite.FullmoveNumber)
	}

	afterBlack := afterWhite.Apply(mv(t, "e7", "e5"))
	if afterBlack.FullmoveNumber != 2 {
		t.Errorf("FullmoveNumber = %d after Black's move, want 2", afterBlack.FullmoveNumber)
	}
}

// TestApplySequenceInvariants plays a short game and checks, after every
// move, that exactly one king of each colour remains and that castling
// rights never grow.
func TestApplySequenceInvariants(t *testing.T) {
	moves := []chess.Move{
		mv(t, "e2", "e4"), mv(t, "e7", "e5"),
		mv(t, "g1", "f3"), mv(t, "b8", "c6"),
		mv(t, "f1", "c4"), mv(t, "f8", "c5"),
		chess.NewCastling(testutil.Sq(t, "e1"), testutil.Sq(t, "g1")), mv(t, "g8", "f6"),
		mv(t, "a2", "a4"), mv(t, "h8", "f8"),
	}

	pos := engine.NewInitialPosition()
	for i, m := range moves {
		prev := pos
		pos = pos.Apply(m)

		for _, c := range []chess.Color{chess.White, chess.Black} {
			kings := 0
			for _, pl := range pos.Board.Pieces() {
				if pl.Piece.Kind() == chess.King && pl.Piece.Color() == c {
					kings++
				}
			}
			if kings != 1 {
				t.Fatalf("after move %d (%v): %d %v kings, want 1", i+1, m, kings, c)
			}
		}

		if pos.Rights&prev.Rights != pos.Rights {
			t.Fatalf("after move %d (%v): rights grew from %04b to %04b", i+1, m, prev.Rights, pos.Rights)
		}
	}

	if pos.Rights.Any(chess.White) {
		t.Error("White rights remain after castling")
	}
	if pos.Rights.Has(chess.Black, chess.Kingside) {
		t.Error("Black kingside right remains after the h8 rook moved")
	}
	if !pos.Rights.Has(chess.Black, chess.Queenside) {
		t.Error("Black queenside right lost without cause")
	}
}
