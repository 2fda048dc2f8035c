package engine

import "github.com/urav06/blitz-chess/internal/chess"

type offset struct{ dr, df int }

var (
	knightOffsets = [8]offset{
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
		{1, -2}, {1, 2}, {2, -1}, {2, 1},
	}
	kingOffsets = [8]offset{
		{-1, -1}, {-1, 0}, {-1, 1}, {0, -1},
		{0, 1}, {1, -1}, {1, 0}, {1, 1},
	}
	diagonalDirs = [4]offset{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs = [4]offset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// IsSquareAttacked reports whether any piece of the given colour has a
// pseudo-legal capture reaching the square. It is purely positional: whether
// the attacking side is itself in check does not matter.
func IsSquareAttacked(b *chess.Board, sq chess.Square, by chess.Color) bool {
	for _, o := range knightOffsets {
		if attackerAt(b, sq, o, by, chess.Knight) {
			return true
		}
	}

	for _, o := range kingOffsets {
		if attackerAt(b, sq, o, by, chess.King) {
			return true
		}
	}

	// A pawn attacks the two squares diagonally ahead of it, so the
	// attacker sits one step behind sq from the attacker's point of view.
	for _, lat := range [2]chess.Lateral{chess.Left, chess.Right} {
		if from, ok := sq.Forward(by, -1, lat); ok {
			if p, ok := b.PieceAt(from); ok && p.Color() == by && p.Kind() == chess.Pawn {
				return true
			}
		}
	}

	for _, dir := range diagonalDirs {
		if p, ok := firstAlongRay(b, sq, dir); ok && p.Color() == by {
			if k := p.Kind(); k == chess.Bishop || k == chess.Queen {
				return true
			}
		}
	}

	for _, dir := range straightDirs {
		if p, ok := firstAlongRay(b, sq, dir); ok && p.Color() == by {
			if k := p.Kind(); k == chess.Rook || k == chess.Queen {
				return true
			}
		}
	}

	return false
}

// attackerAt reports whether a piece of the given colour and kind stands at
// the fixed offset from sq.
func attackerAt(b *chess.Board, sq chess.Square, o offset, by chess.Color, kind chess.PieceKind) bool {
	from, ok := sq.Offset(o.dr, o.df)
	if !ok {
		return false
	}
	p, ok := b.PieceAt(from)
	return ok && p.Color() == by && p.Kind() == kind
}

// firstAlongRay returns the first piece met walking from sq in the given
// direction, or false if the ray runs off the board empty.
func firstAlongRay(b *chess.Board, sq chess.Square, dir offset) (chess.Piece, bool) {
	cur := sq
	for {
		next, ok := cur.Offset(dir.dr, dir.df)
		if !ok {
			return 0, false
		}
		if p, ok := b.PieceAt(next); ok {
			return p, true
		}
		cur = next
	}
}

// FindKing returns the square of the colour's king. Every reachable position
// has exactly one king per colour; a board without one is a caller bug and
// panics.
func FindKing(b *chess.Board, c chess.Color) chess.Square {
	for _, pl := range b.Pieces() {
		if pl.Piece.Kind() == chess.King && pl.Piece.Color() == c {
			return pl.Square
		}
	}
	panic("no " + c.String() + " king on board")
}

// IsInCheck reports whether the side to move's king is attacked.
func IsInCheck(p *Position) bool {
	king := FindKing(&p.Board, p.ToMove)
	return IsSquareAttacked(&p.Board, king, p.ToMove.Other())
}
