// Package engine implements the rules of chess over the value types in
// internal/chess: position state, the move transition, attack detection and
// legal-move generation.
package engine

import "github.com/urav06/blitz-chess/internal/chess"

// Position is the complete game state: the board plus whose turn it is,
// the remaining castling rights, the en-passant target if any, and the two
// move counters. It is a plain value; Apply returns a new Position and
// never mutates its receiver, so copies held by callers stay valid.
type Position struct {
	Board  chess.Board
	ToMove chess.Color
	Rights chess.CastlingRights

	// EnPassant is the square a double-stepping pawn skipped over, valid
	// only while HasEnPassant is true.
	EnPassant    chess.Square
	HasEnPassant bool

	HalfmoveClock  int
	FullmoveNumber int
}

var backRank = [8]chess.PieceKind{
	chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
	chess.King, chess.Bishop, chess.Knight, chess.Rook,
}

// NewInitialPosition returns the standard starting position with White to
// move and all castling rights intact.
func NewInitialPosition() Position {
	p := Position{
		ToMove:         chess.White,
		Rights:         chess.AllCastlingRights,
		FullmoveNumber: 1,
	}
	for file := 0; file < chess.BoardSize; file++ {
		p.Board.Place(chess.NewPiece(backRank[file], chess.White), chess.SquareAt(0, file))
		p.Board.Place(chess.NewPiece(chess.Pawn, chess.White), chess.SquareAt(1, file))
		p.Board.Place(chess.NewPiece(chess.Pawn, chess.Black), chess.SquareAt(6, file))
		p.Board.Place(chess.NewPiece(backRank[file], chess.Black), chess.SquareAt(7, file))
	}
	return p
}

// Apply plays the move and returns the resulting position. The move must be
// well formed for the position; applying a move whose source square is empty
// is a caller bug and panics. Apply does not check legality: the generator
// only ever yields moves that already passed the legality filter.
func (p Position) Apply(m chess.Move) Position {
	moved, ok := p.Board.PieceAt(m.Source())
	if !ok {
		panic("apply: no piece on " + m.Source().String())
	}

	next := p
	captured := false

	switch m.Kind() {
	case chess.NormalMove:
		_, captured = next.Board.MovePiece(m.Source(), m.Target())

	case chess.PromotionMove:
		kind, _ := m.Promotion()
		next.Board.Lift(m.Source())
		promoted := chess.NewPiece(kind, moved.Color()).WithMoved()
		_, captured = next.Board.Place(promoted, m.Target())

	case chess.EnPassantMove:
		next.Board.MovePiece(m.Source(), m.Target())
		next.Board.Lift(m.EnPassantCapture())
		captured = true

	case chess.CastlingMove:
		next.Board.MovePiece(m.Source(), m.Target())
		rookFrom, rookTo := m.CastlingRookSquares()
		next.Board.MovePiece(rookFrom, rookTo)
	}

	// En-passant target: set only by a pawn double advance, cleared otherwise.
	next.HasEnPassant = false
	next.EnPassant = 0
	if moved.Kind() == chess.Pawn && abs(m.Target().Rank()-m.Source().Rank()) == 2 {
		skipped := (m.Source().Rank() + m.Target().Rank()) / 2
		next.EnPassant = chess.SquareAt(skipped, m.Source().File())
		next.HasEnPassant = true
	}

	if moved.Kind() == chess.Pawn || captured {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock++
	}

	// Castling rights: a king move forfeits both of the mover's rights; a
	// rook leaving its origin square forfeits that one right. A capture
	// landing on the opponent's rook origin forfeits the opponent's right
	// either way.
	if moved.Kind() == chess.King {
		next.Rights = next.Rights.LoseAll(p.ToMove)
	} else {
		next.Rights = next.Rights.LoseForRookAt(m.Source(), p.ToMove)
	}
	next.Rights = next.Rights.LoseForRookAt(m.Target(), p.ToMove.Other())

	if p.ToMove == chess.Black {
		next.FullmoveNumber++
	}
	next.ToMove = p.ToMove.Other()

	return next
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
