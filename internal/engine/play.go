package engine

import (
	"github.com/urav06/blitz-chess/internal/chess"
	"github.com/urav06/blitz-chess/internal/errors"
)

// Play validates the move against the position before applying it, for
// callers whose moves do not come from the generator (a UI or a protocol
// adapter). Moves taken from LegalMoves can be passed to Apply directly.
func Play(p Position, m chess.Move) (Position, error) {
	piece, ok := p.Board.PieceAt(m.Source())
	if !ok {
		return Position{}, moveError(errors.ErrNoPiece, p, m)
	}
	if piece.Color() != p.ToMove {
		return Position{}, moveError(errors.ErrWrongColor, p, m)
	}
	for _, legal := range LegalMovesFrom(&p, m.Source()) {
		if legal == m {
			return p.Apply(m), nil
		}
	}
	return Position{}, moveError(errors.ErrIllegalMove, p, m)
}

func moveError(err error, p Position, m chess.Move) error {
	return &errors.MoveError{Err: err, Move: m.String(), Side: p.ToMove.String()}
}
