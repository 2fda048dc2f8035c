package engine

import "github.com/urav06/blitz-chess/internal/chess"

// LegalMoves returns every legal move for the side to move. The slice is
// freshly built on each call; an empty result means checkmate or stalemate
// depending on whether the king is attacked.
func LegalMoves(p *Position) []chess.Move {
	candidates := pseudoLegalMoves(p)
	legal := make([]chess.Move, 0, len(candidates))
	for _, m := range candidates {
		if isLegal(p, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// LegalMovesFrom returns the legal moves whose source is the given square.
func LegalMovesFrom(p *Position, sq chess.Square) []chess.Move {
	var legal []chess.Move
	for _, m := range pseudoLegalMoves(p) {
		if m.Source() == sq && isLegal(p, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// isLegal plays the candidate on a copy of the position and checks whether
// the mover's king is attacked afterwards. The copy is a plain value copy,
// so sibling candidates never see each other's simulation.
func isLegal(p *Position, m chess.Move) bool {
	next := p.Apply(m)
	king := FindKing(&next.Board, p.ToMove)
	return !IsSquareAttacked(&next.Board, king, p.ToMove.Other())
}

// pseudoLegalMoves enumerates moves that obey piece movement and occupancy
// rules without regard to whether they leave the mover's king attacked.
func pseudoLegalMoves(p *Position) []chess.Move {
	moves := make([]chess.Move, 0, 64)
	for _, pl := range p.Board.Pieces() {
		if pl.Piece.Color() != p.ToMove {
			continue
		}
		switch pl.Piece.Kind() {
		case chess.Pawn:
			moves = pawnMoves(p, pl.Square, moves)
		case chess.Knight:
			moves = stepMoves(p, pl.Square, knightOffsets[:], moves)
		case chess.Bishop:
			moves = slidingMoves(p, pl.Square, diagonalDirs[:], moves)
		case chess.Rook:
			moves = slidingMoves(p, pl.Square, straightDirs[:], moves)
		case chess.Queen:
			moves = slidingMoves(p, pl.Square, diagonalDirs[:], moves)
			moves = slidingMoves(p, pl.Square, straightDirs[:], moves)
		case chess.King:
			moves = stepMoves(p, pl.Square, kingOffsets[:], moves)
			moves = castlingMoves(p, pl.Square, moves)
		}
	}
	return moves
}

// stepMoves emits one move per tabulated offset, skipping only squares
// occupied by the mover's own pieces. Used for knights and kings.
func stepMoves(p *Position, from chess.Square, offsets []offset, moves []chess.Move) []chess.Move {
	for _, o := range offsets {
		to, ok := from.Offset(o.dr, o.df)
		if !ok {
			continue
		}
		if occupant, ok := p.Board.PieceAt(to); ok && occupant.Color() == p.ToMove {
			continue
		}
		moves = append(moves, chess.NewMove(from, to))
	}
	return moves
}

// slidingMoves walks each ray until blocked, including the blocking square
// when an enemy piece stands there.
func slidingMoves(p *Position, from chess.Square, dirs []offset, moves []chess.Move) []chess.Move {
	for _, dir := range dirs {
		cur := from
		for {
			to, ok := cur.Offset(dir.dr, dir.df)
			if !ok {
				break
			}
			if occupant, ok := p.Board.PieceAt(to); ok {
				if occupant.Color() != p.ToMove {
					moves = append(moves, chess.NewMove(from, to))
				}
				break
			}
			moves = append(moves, chess.NewMove(from, to))
			cur = to
		}
	}
	return moves
}

// pawnMoves emits pushes, captures, en-passant captures and promotions for
// the pawn on from. A push or capture landing on the far rank becomes four
// promotion moves instead of a normal one.
func pawnMoves(p *Position, from chess.Square, moves []chess.Move) []chess.Move {
	color := p.ToMove

	if to, ok := from.Forward(color, 1, chess.Straight); ok && p.Board.IsEmpty(to) {
		moves = pawnAdvance(from, to, color, moves)

		if from.Rank() == color.PawnRank() {
			if to2, ok := from.Forward(color, 2, chess.Straight); ok && p.Board.IsEmpty(to2) {
				moves = append(moves, chess.NewMove(from, to2))
			}
		}
	}

	for _, lat := range [2]chess.Lateral{chess.Left, chess.Right} {
		to, ok := from.Forward(color, 1, lat)
		if !ok {
			continue
		}
		if occupant, ok := p.Board.PieceAt(to); ok {
			if occupant.Color() != color {
				moves = pawnAdvance(from, to, color, moves)
			}
		} else if p.HasEnPassant && to == p.EnPassant {
			moves = append(moves, chess.NewEnPassant(from, to))
		}
	}

	return moves
}

// pawnAdvance appends the move from->to, expanded into the four promotions
// when to is the far rank.
func pawnAdvance(from, to chess.Square, color chess.Color, moves []chess.Move) []chess.Move {
	if to.Rank() != color.PromotionRank() {
		return append(moves, chess.NewMove(from, to))
	}
	for _, kind := range chess.Promotable {
		moves = append(moves, chess.NewPromotion(from, to, kind))
	}
	return moves
}

// castlingMoves emits a castling move per side when the right is still held,
// the corridor between king and rook is empty, the king is not currently
// attacked, and no square on the king's path is attacked.
func castlingMoves(p *Position, from chess.Square, moves []chess.Move) []chess.Move {
	color := p.ToMove
	rank := color.HomeRank()
	opponent := color.Other()

sides:
	for _, side := range [2]chess.CastlingSide{chess.Kingside, chess.Queenside} {
		if !p.Rights.Has(color, side) {
			continue
		}
		for _, file := range side.CorridorFiles() {
			if !p.Board.IsEmpty(chess.SquareAt(rank, file)) {
				continue sides
			}
		}
		if IsSquareAttacked(&p.Board, from, opponent) {
			continue
		}
		for _, file := range side.KingPathFiles() {
			if IsSquareAttacked(&p.Board, chess.SquareAt(rank, file), opponent) {
				continue sides
			}
		}
		moves = append(moves, chess.NewCastling(from, chess.SquareAt(rank, side.KingTargetFile())))
	}

	return moves
}
